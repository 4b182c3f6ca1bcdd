package token

type TokenType string

// Token is a single lexical unit of a source file.
// Lexeme is the exact source text; Literal holds the decoded value for
// literals (int64 for INT, string for STRING/CHAR and identifiers).
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal any
	Line    int
	Column  int
}

const (
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	// Identifiers and literals
	IDENT  TokenType = "IDENT"
	INT    TokenType = "INT"
	STRING TokenType = "STRING"
	CHAR   TokenType = "CHAR"

	// Operators
	ASSIGN   TokenType = "="
	PLUS     TokenType = "+"
	MINUS    TokenType = "-"
	STAR     TokenType = "*"
	SLASH    TokenType = "/"
	PERCENT  TokenType = "%"
	BANG     TokenType = "!"
	TILDE    TokenType = "~"
	AMP      TokenType = "&"
	PIPE     TokenType = "|"
	CARET    TokenType = "^"
	LT       TokenType = "<"
	GT       TokenType = ">"
	QUESTION TokenType = "?"
	COLON    TokenType = ":"

	EQ     TokenType = "=="
	NOT_EQ TokenType = "!="
	LT_EQ  TokenType = "<="
	GT_EQ  TokenType = ">="
	AND    TokenType = "&&"
	OR     TokenType = "||"
	SHL    TokenType = "<<"
	SHR    TokenType = ">>"
	USHR   TokenType = ">>>"
	INC    TokenType = "++"
	DEC    TokenType = "--"

	PLUS_ASSIGN    TokenType = "+="
	MINUS_ASSIGN   TokenType = "-="
	STAR_ASSIGN    TokenType = "*="
	SLASH_ASSIGN   TokenType = "/="
	PERCENT_ASSIGN TokenType = "%="
	AMP_ASSIGN     TokenType = "&="
	PIPE_ASSIGN    TokenType = "|="
	CARET_ASSIGN   TokenType = "^="
	SHL_ASSIGN     TokenType = "<<="
	SHR_ASSIGN     TokenType = ">>="
	USHR_ASSIGN    TokenType = ">>>="

	// Delimiters
	COMMA     TokenType = ","
	SEMICOLON TokenType = ";"
	DOT       TokenType = "."
	ELLIPSIS  TokenType = "..."
	AT        TokenType = "@"
	LPAREN    TokenType = "("
	RPAREN    TokenType = ")"
	LBRACE    TokenType = "{"
	RBRACE    TokenType = "}"
	LBRACKET  TokenType = "["
	RBRACKET  TokenType = "]"

	// Keywords
	CLASS     TokenType = "CLASS"
	ENUM      TokenType = "ENUM"
	NEW       TokenType = "NEW"
	THIS      TokenType = "THIS"
	SUPER     TokenType = "SUPER"
	IF        TokenType = "IF"
	ELSE      TokenType = "ELSE"
	WHILE     TokenType = "WHILE"
	DO        TokenType = "DO"
	FOR       TokenType = "FOR"
	SWITCH    TokenType = "SWITCH"
	CASE      TokenType = "CASE"
	DEFAULT   TokenType = "DEFAULT"
	BREAK     TokenType = "BREAK"
	CONTINUE  TokenType = "CONTINUE"
	RETURN    TokenType = "RETURN"
	TRUE      TokenType = "TRUE"
	FALSE     TokenType = "FALSE"
	NULL      TokenType = "NULL"
	PUBLIC    TokenType = "PUBLIC"
	PRIVATE   TokenType = "PRIVATE"
	PROTECTED TokenType = "PROTECTED"
	STATIC    TokenType = "STATIC"
	FINAL     TokenType = "FINAL"
	ABSTRACT  TokenType = "ABSTRACT"
	VOID      TokenType = "VOID"
	PRIMITIVE TokenType = "PRIMITIVE" // boolean, byte, short, char, int, long, float, double
)

var keywords = map[string]TokenType{
	"class":     CLASS,
	"enum":      ENUM,
	"new":       NEW,
	"this":      THIS,
	"super":     SUPER,
	"if":        IF,
	"else":      ELSE,
	"while":     WHILE,
	"do":        DO,
	"for":       FOR,
	"switch":    SWITCH,
	"case":      CASE,
	"default":   DEFAULT,
	"break":     BREAK,
	"continue":  CONTINUE,
	"return":    RETURN,
	"true":      TRUE,
	"false":     FALSE,
	"null":      NULL,
	"public":    PUBLIC,
	"private":   PRIVATE,
	"protected": PROTECTED,
	"static":    STATIC,
	"final":     FINAL,
	"abstract":  ABSTRACT,
	"void":      VOID,
	"boolean":   PRIMITIVE,
	"byte":      PRIMITIVE,
	"short":     PRIMITIVE,
	"char":      PRIMITIVE,
	"int":       PRIMITIVE,
	"long":      PRIMITIVE,
	"float":     PRIMITIVE,
	"double":    PRIMITIVE,
}

// LookupIdent returns the keyword token type for ident, or IDENT.
func LookupIdent(ident string) TokenType {
	if t, ok := keywords[ident]; ok {
		return t
	}
	return IDENT
}
