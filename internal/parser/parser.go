package parser

import (
	"fmt"

	"github.com/treewright/treewright/internal/ast"
	"github.com/treewright/treewright/internal/diagnostics"
	"github.com/treewright/treewright/internal/pipeline"
	"github.com/treewright/treewright/internal/token"
)

// MaxRecursionDepth bounds expression nesting to keep malformed input
// from exhausting the stack.
const MaxRecursionDepth = 500

// Operator precedence levels, lowest binds loosest.
const (
	_ int = iota
	LOWEST
	ASSIGNMENT // = += -= ...
	TERNARY    // ?:
	LOGIC_OR   // ||
	LOGIC_AND  // &&
	BIT_OR     // |
	BIT_XOR    // ^
	BIT_AND    // &
	EQUALITY   // == !=
	RELATIONAL // < > <= >=
	SHIFT      // << >> >>>
	SUM        // + -
	PRODUCT    // * / %
	UNARY      // ! ~ -x ++x
	POSTFIX    // x++ . [ (
)

var precedences = map[token.TokenType]int{
	token.ASSIGN:         ASSIGNMENT,
	token.PLUS_ASSIGN:    ASSIGNMENT,
	token.MINUS_ASSIGN:   ASSIGNMENT,
	token.STAR_ASSIGN:    ASSIGNMENT,
	token.SLASH_ASSIGN:   ASSIGNMENT,
	token.PERCENT_ASSIGN: ASSIGNMENT,
	token.AMP_ASSIGN:     ASSIGNMENT,
	token.PIPE_ASSIGN:    ASSIGNMENT,
	token.CARET_ASSIGN:   ASSIGNMENT,
	token.SHL_ASSIGN:     ASSIGNMENT,
	token.SHR_ASSIGN:     ASSIGNMENT,
	token.USHR_ASSIGN:    ASSIGNMENT,
	token.QUESTION:       TERNARY,
	token.OR:             LOGIC_OR,
	token.AND:            LOGIC_AND,
	token.PIPE:           BIT_OR,
	token.CARET:          BIT_XOR,
	token.AMP:            BIT_AND,
	token.EQ:             EQUALITY,
	token.NOT_EQ:         EQUALITY,
	token.LT:             RELATIONAL,
	token.GT:             RELATIONAL,
	token.LT_EQ:          RELATIONAL,
	token.GT_EQ:          RELATIONAL,
	token.SHL:            SHIFT,
	token.SHR:            SHIFT,
	token.USHR:           SHIFT,
	token.PLUS:           SUM,
	token.MINUS:          SUM,
	token.STAR:           PRODUCT,
	token.SLASH:          PRODUCT,
	token.PERCENT:        PRODUCT,
	token.INC:            POSTFIX,
	token.DEC:            POSTFIX,
	token.DOT:            POSTFIX,
	token.LBRACKET:       POSTFIX,
	token.LPAREN:         POSTFIX,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

type Parser struct {
	stream *token.Stream
	ctx    *pipeline.PipelineContext

	curToken  token.Token
	peekToken token.Token

	depth int

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn
}

func New(stream *token.Stream, ctx *pipeline.PipelineContext) *Parser {
	p := &Parser{stream: stream, ctx: ctx}

	p.prefixParseFns = map[token.TokenType]prefixParseFn{
		token.IDENT:  p.parseIdentifier,
		token.THIS:   p.parseIdentifier,
		token.INT:    p.parseLiteral,
		token.STRING: p.parseLiteral,
		token.CHAR:   p.parseLiteral,
		token.TRUE:   p.parseLiteral,
		token.FALSE:  p.parseLiteral,
		token.NULL:   p.parseLiteral,
		token.BANG:   p.parsePrefixUnary,
		token.TILDE:  p.parsePrefixUnary,
		token.MINUS:  p.parsePrefixUnary,
		token.PLUS:   p.parsePrefixUnary,
		token.INC:    p.parsePrefixUnary,
		token.DEC:    p.parsePrefixUnary,
		token.LPAREN: p.parseParenOrCast,
		token.NEW:    p.parseNew,
	}

	p.infixParseFns = map[token.TokenType]infixParseFn{
		token.ASSIGN:         p.parseAssignment,
		token.PLUS_ASSIGN:    p.parseAssignment,
		token.MINUS_ASSIGN:   p.parseAssignment,
		token.STAR_ASSIGN:    p.parseAssignment,
		token.SLASH_ASSIGN:   p.parseAssignment,
		token.PERCENT_ASSIGN: p.parseAssignment,
		token.AMP_ASSIGN:     p.parseAssignment,
		token.PIPE_ASSIGN:    p.parseAssignment,
		token.CARET_ASSIGN:   p.parseAssignment,
		token.SHL_ASSIGN:     p.parseAssignment,
		token.SHR_ASSIGN:     p.parseAssignment,
		token.USHR_ASSIGN:    p.parseAssignment,
		token.QUESTION:       p.parseTernary,
		token.OR:             p.parseBinary,
		token.AND:            p.parseBinary,
		token.PIPE:           p.parseBinary,
		token.CARET:          p.parseBinary,
		token.AMP:            p.parseBinary,
		token.EQ:             p.parseBinary,
		token.NOT_EQ:         p.parseBinary,
		token.LT:             p.parseBinary,
		token.GT:             p.parseBinary,
		token.LT_EQ:          p.parseBinary,
		token.GT_EQ:          p.parseBinary,
		token.SHL:            p.parseBinary,
		token.SHR:            p.parseBinary,
		token.USHR:           p.parseBinary,
		token.PLUS:           p.parseBinary,
		token.MINUS:          p.parseBinary,
		token.STAR:           p.parseBinary,
		token.SLASH:          p.parseBinary,
		token.PERCENT:        p.parseBinary,
		token.INC:            p.parsePostfixUnary,
		token.DEC:            p.parsePostfixUnary,
		token.DOT:            p.parseFieldAccess,
		token.LBRACKET:       p.parseArrayAccess,
		token.LPAREN:         p.parseCall,
	}

	// Read two tokens, so curToken and peekToken are both set.
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.stream.Next()
}

func (p *Parser) curTokenIs(t token.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.TokenType) bool { return p.peekToken.Type == t }

// expectPeek advances when the next token has the wanted type, and
// reports a P002 diagnostic otherwise.
func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.errorAt(diagnostics.ErrP002, p.peekToken,
		fmt.Sprintf("expected %s, got %s", t, describeToken(p.peekToken)))
	return false
}

func (p *Parser) errorAt(code diagnostics.ErrorCode, tok token.Token, msg string) {
	p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(code, tok, msg))
}

// peekAhead returns the token n positions after peekToken (n=0 is the
// token right after peekToken).
func (p *Parser) peekAhead(n int) token.Token {
	toks := p.stream.Peek(n + 1)
	if len(toks) <= n {
		return token.Token{Type: token.EOF}
	}
	return toks[n]
}

func describeToken(tok token.Token) string {
	if tok.Type == token.EOF {
		return "end of file"
	}
	if tok.Lexeme != "" {
		return fmt.Sprintf("%q", tok.Lexeme)
	}
	return string(tok.Type)
}

// skipToStatementBoundary advances past the current statement after an
// error, so one mistake does not cascade.
func (p *Parser) skipToStatementBoundary() {
	for !p.curTokenIs(token.SEMICOLON) &&
		!p.curTokenIs(token.RBRACE) &&
		!p.curTokenIs(token.EOF) {
		p.nextToken()
	}
}
