package lexer

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/treewright/treewright/internal/token"
)

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int  // current line number
	column       int  // current column number
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		l.readPosition++
		l.column++
		return
	}

	r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += w
	l.column++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) peekCharAt(offset int) rune {
	pos := l.readPosition
	for i := 0; i < offset; i++ {
		if pos >= len(l.input) {
			return 0
		}
		_, w := utf8.DecodeRuneInString(l.input[pos:])
		pos += w
	}
	if pos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[pos:])
	return r
}

// NextToken scans and returns the next token. Comments and whitespace
// are skipped; lexical problems surface as ILLEGAL tokens whose Literal
// carries the message.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()

	line, col := l.line, l.column

	switch l.ch {
	case 0:
		return token.Token{Type: token.EOF, Line: line, Column: col}
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			return l.emit(token.EQ, "==", line, col)
		}
		return l.emit(token.ASSIGN, "=", line, col)
	case '+':
		switch l.peekChar() {
		case '+':
			l.readChar()
			return l.emit(token.INC, "++", line, col)
		case '=':
			l.readChar()
			return l.emit(token.PLUS_ASSIGN, "+=", line, col)
		}
		return l.emit(token.PLUS, "+", line, col)
	case '-':
		switch l.peekChar() {
		case '-':
			l.readChar()
			return l.emit(token.DEC, "--", line, col)
		case '=':
			l.readChar()
			return l.emit(token.MINUS_ASSIGN, "-=", line, col)
		}
		return l.emit(token.MINUS, "-", line, col)
	case '*':
		if l.peekChar() == '=' {
			l.readChar()
			return l.emit(token.STAR_ASSIGN, "*=", line, col)
		}
		return l.emit(token.STAR, "*", line, col)
	case '/':
		if l.peekChar() == '=' {
			l.readChar()
			return l.emit(token.SLASH_ASSIGN, "/=", line, col)
		}
		return l.emit(token.SLASH, "/", line, col)
	case '%':
		if l.peekChar() == '=' {
			l.readChar()
			return l.emit(token.PERCENT_ASSIGN, "%=", line, col)
		}
		return l.emit(token.PERCENT, "%", line, col)
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			return l.emit(token.NOT_EQ, "!=", line, col)
		}
		return l.emit(token.BANG, "!", line, col)
	case '~':
		return l.emit(token.TILDE, "~", line, col)
	case '&':
		switch l.peekChar() {
		case '&':
			l.readChar()
			return l.emit(token.AND, "&&", line, col)
		case '=':
			l.readChar()
			return l.emit(token.AMP_ASSIGN, "&=", line, col)
		}
		return l.emit(token.AMP, "&", line, col)
	case '|':
		switch l.peekChar() {
		case '|':
			l.readChar()
			return l.emit(token.OR, "||", line, col)
		case '=':
			l.readChar()
			return l.emit(token.PIPE_ASSIGN, "|=", line, col)
		}
		return l.emit(token.PIPE, "|", line, col)
	case '^':
		if l.peekChar() == '=' {
			l.readChar()
			return l.emit(token.CARET_ASSIGN, "^=", line, col)
		}
		return l.emit(token.CARET, "^", line, col)
	case '<':
		switch l.peekChar() {
		case '=':
			l.readChar()
			return l.emit(token.LT_EQ, "<=", line, col)
		case '<':
			l.readChar()
			if l.peekChar() == '=' {
				l.readChar()
				return l.emit(token.SHL_ASSIGN, "<<=", line, col)
			}
			return l.emit(token.SHL, "<<", line, col)
		}
		return l.emit(token.LT, "<", line, col)
	case '>':
		switch l.peekChar() {
		case '=':
			l.readChar()
			return l.emit(token.GT_EQ, ">=", line, col)
		case '>':
			l.readChar()
			if l.peekChar() == '>' {
				l.readChar()
				if l.peekChar() == '=' {
					l.readChar()
					return l.emit(token.USHR_ASSIGN, ">>>=", line, col)
				}
				return l.emit(token.USHR, ">>>", line, col)
			}
			if l.peekChar() == '=' {
				l.readChar()
				return l.emit(token.SHR_ASSIGN, ">>=", line, col)
			}
			return l.emit(token.SHR, ">>", line, col)
		}
		return l.emit(token.GT, ">", line, col)
	case '?':
		return l.emit(token.QUESTION, "?", line, col)
	case ':':
		return l.emit(token.COLON, ":", line, col)
	case ',':
		return l.emit(token.COMMA, ",", line, col)
	case ';':
		return l.emit(token.SEMICOLON, ";", line, col)
	case '.':
		if l.peekChar() == '.' && l.peekCharAt(1) == '.' {
			l.readChar()
			l.readChar()
			return l.emit(token.ELLIPSIS, "...", line, col)
		}
		return l.emit(token.DOT, ".", line, col)
	case '@':
		return l.emit(token.AT, "@", line, col)
	case '(':
		return l.emit(token.LPAREN, "(", line, col)
	case ')':
		return l.emit(token.RPAREN, ")", line, col)
	case '{':
		return l.emit(token.LBRACE, "{", line, col)
	case '}':
		return l.emit(token.RBRACE, "}", line, col)
	case '[':
		return l.emit(token.LBRACKET, "[", line, col)
	case ']':
		return l.emit(token.RBRACKET, "]", line, col)
	case '"':
		return l.readString(line, col)
	case '\'':
		return l.readCharLiteral(line, col)
	}

	if isLetter(l.ch) {
		lexeme := l.readIdentifier()
		tok := token.Token{
			Type:    token.LookupIdent(lexeme),
			Lexeme:  lexeme,
			Literal: lexeme,
			Line:    line,
			Column:  col,
		}
		return tok
	}
	if unicode.IsDigit(l.ch) {
		return l.readNumber(line, col)
	}

	tok := token.Token{
		Type:    token.ILLEGAL,
		Lexeme:  string(l.ch),
		Literal: "illegal character " + strconv.QuoteRune(l.ch),
		Line:    line,
		Column:  col,
	}
	l.readChar()
	return tok
}

func (l *Lexer) emit(t token.TokenType, lexeme string, line, col int) token.Token {
	l.readChar()
	return token.Token{Type: t, Lexeme: lexeme, Line: line, Column: col}
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
			l.readChar()
		}
		if l.ch == '/' && l.peekChar() == '/' {
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
			continue
		}
		if l.ch == '/' && l.peekChar() == '*' {
			l.readChar()
			l.readChar()
			for {
				if l.ch == 0 {
					return
				}
				if l.ch == '*' && l.peekChar() == '/' {
					l.readChar()
					l.readChar()
					break
				}
				l.readChar()
			}
			continue
		}
		return
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || unicode.IsDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func (l *Lexer) readNumber(line, col int) token.Token {
	start := l.position
	for unicode.IsDigit(l.ch) {
		l.readChar()
	}
	// Integral suffix: 10L
	if l.ch == 'L' || l.ch == 'l' {
		l.readChar()
	}
	lexeme := l.input[start:l.position]
	digits := lexeme
	if last := digits[len(digits)-1]; last == 'L' || last == 'l' {
		digits = digits[:len(digits)-1]
	}
	value, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return token.Token{
			Type:    token.ILLEGAL,
			Lexeme:  lexeme,
			Literal: "malformed numeric literal " + strconv.Quote(lexeme),
			Line:    line,
			Column:  col,
		}
	}
	return token.Token{Type: token.INT, Lexeme: lexeme, Literal: value, Line: line, Column: col}
}

func (l *Lexer) readString(line, col int) token.Token {
	l.readChar() // consume opening quote
	var out []rune
	for l.ch != '"' {
		if l.ch == 0 || l.ch == '\n' {
			return token.Token{
				Type:    token.ILLEGAL,
				Lexeme:  string(out),
				Literal: "unterminated string literal",
				Line:    line,
				Column:  col,
			}
		}
		if l.ch == '\\' {
			l.readChar()
			out = append(out, unescape(l.ch))
			l.readChar()
			continue
		}
		out = append(out, l.ch)
		l.readChar()
	}
	l.readChar() // consume closing quote
	value := string(out)
	return token.Token{
		Type:    token.STRING,
		Lexeme:  strconv.Quote(value),
		Literal: value,
		Line:    line,
		Column:  col,
	}
}

func (l *Lexer) readCharLiteral(line, col int) token.Token {
	l.readChar() // consume opening quote
	if l.ch == 0 || l.ch == '\n' {
		return token.Token{
			Type:    token.ILLEGAL,
			Literal: "unterminated character literal",
			Line:    line,
			Column:  col,
		}
	}
	ch := l.ch
	if ch == '\\' {
		l.readChar()
		ch = unescape(l.ch)
	}
	l.readChar()
	if l.ch != '\'' {
		return token.Token{
			Type:    token.ILLEGAL,
			Literal: "unterminated character literal",
			Line:    line,
			Column:  col,
		}
	}
	l.readChar() // consume closing quote
	return token.Token{
		Type:    token.CHAR,
		Lexeme:  strconv.QuoteRune(ch),
		Literal: string(ch),
		Line:    line,
		Column:  col,
	}
}

func unescape(ch rune) rune {
	switch ch {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case '0':
		return 0
	case '\\':
		return '\\'
	case '\'':
		return '\''
	case '"':
		return '"'
	}
	return ch
}

func isLetter(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_' || ch == '$'
}
