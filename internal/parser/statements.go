package parser

import (
	"fmt"

	"github.com/treewright/treewright/internal/ast"
	"github.com/treewright/treewright/internal/diagnostics"
	"github.com/treewright/treewright/internal/jtype"
	"github.com/treewright/treewright/internal/token"
)

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.LBRACE:
		return p.parseBlock(false)
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.DO:
		return p.parseDoWhile()
	case token.FOR:
		return p.parseFor()
	case token.SWITCH:
		return p.parseSwitch()
	case token.BREAK:
		stmt := &ast.Break{Id: ast.NewID(), Token: p.curToken}
		p.expectPeek(token.SEMICOLON)
		return stmt
	case token.CONTINUE:
		stmt := &ast.Continue{Id: ast.NewID(), Token: p.curToken}
		p.expectPeek(token.SEMICOLON)
		return stmt
	case token.RETURN:
		return p.parseReturn()
	case token.SEMICOLON:
		return &ast.Empty{Id: ast.NewID(), Token: p.curToken}
	case token.PRIMITIVE, token.FINAL:
		return p.parseLocalVariableDeclarations()
	case token.IDENT:
		if p.isLocalVarDeclAhead() {
			return p.parseLocalVariableDeclarations()
		}
		return p.parseExpressionStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		p.skipToStatementBoundary()
		return nil
	}
	stmt, ok := expr.(ast.Statement)
	if !ok {
		p.errorAt(diagnostics.ErrP001, expr.GetToken(),
			fmt.Sprintf("%T is not a statement", expr))
		p.skipToStatementBoundary()
		return nil
	}
	p.expectPeek(token.SEMICOLON)
	return stmt
}

// parseBlock parses '{ ... }'. The current token must be the opening
// brace.
func (p *Parser) parseBlock(static bool) *ast.Block {
	block := &ast.Block{Id: ast.NewID(), Token: p.curToken, Static: static}
	p.nextToken()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		if stmt := p.parseStatement(); stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}
	if p.curTokenIs(token.EOF) {
		p.errorAt(diagnostics.ErrP002, p.curToken, "expected } before end of file")
	}
	block.RBraceToken = p.curToken
	return block
}

func (p *Parser) parseIf() ast.Statement {
	stmt := &ast.If{Id: ast.NewID(), Token: p.curToken}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Then = p.parseStatement()
	if p.peekTokenIs(token.ELSE) {
		p.nextToken()
		p.nextToken()
		stmt.Else = p.parseStatement()
	}
	return stmt
}

func (p *Parser) parseWhile() ast.Statement {
	stmt := &ast.WhileLoop{Id: ast.NewID(), Token: p.curToken}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Body = p.parseStatement()
	return stmt
}

func (p *Parser) parseDoWhile() ast.Statement {
	stmt := &ast.DoWhileLoop{Id: ast.NewID(), Token: p.curToken}
	p.nextToken()
	stmt.Body = p.parseStatement()
	if !p.expectPeek(token.WHILE) {
		return nil
	}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	p.expectPeek(token.SEMICOLON)
	return stmt
}

func (p *Parser) parseFor() ast.Statement {
	stmt := &ast.ForLoop{Id: ast.NewID(), Token: p.curToken}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()

	// Init: empty, a declaration, or an expression statement.
	switch {
	case p.curTokenIs(token.SEMICOLON):
		// no init
	case p.curTokenIs(token.PRIMITIVE), p.curTokenIs(token.FINAL):
		stmt.Init = p.parseLocalVariableDeclarations()
	case p.curTokenIs(token.IDENT) && p.isLocalVarDeclAhead():
		stmt.Init = p.parseLocalVariableDeclarations()
	default:
		init := p.parseExpression(LOWEST)
		if s, ok := init.(ast.Statement); ok {
			stmt.Init = s
		}
		p.expectPeek(token.SEMICOLON)
	}
	p.nextToken()

	if !p.curTokenIs(token.SEMICOLON) {
		stmt.Condition = p.parseExpression(LOWEST)
		p.expectPeek(token.SEMICOLON)
	}
	p.nextToken()

	for !p.curTokenIs(token.RPAREN) && !p.curTokenIs(token.EOF) {
		stmt.Update = append(stmt.Update, p.parseExpression(LOWEST))
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
		p.nextToken()
	}
	p.nextToken()
	stmt.Body = p.parseStatement()
	return stmt
}

func (p *Parser) parseSwitch() ast.Statement {
	stmt := &ast.Switch{Id: ast.NewID(), Token: p.curToken}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Selector = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	p.nextToken()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		c := p.parseCase()
		if c == nil {
			p.skipToStatementBoundary()
			p.nextToken()
			continue
		}
		stmt.Cases = append(stmt.Cases, c)
	}
	return stmt
}

// parseCase parses one 'case expr:' or 'default:' arm, leaving the
// current token on the next arm or the closing brace.
func (p *Parser) parseCase() *ast.Case {
	c := &ast.Case{Id: ast.NewID(), Token: p.curToken}
	switch p.curToken.Type {
	case token.CASE:
		p.nextToken()
		c.Pattern = p.parseExpression(LOWEST)
		if !p.expectPeek(token.COLON) {
			return nil
		}
	case token.DEFAULT:
		if !p.expectPeek(token.COLON) {
			return nil
		}
	default:
		p.errorAt(diagnostics.ErrP001, p.curToken,
			fmt.Sprintf("expected case or default, got %s", describeToken(p.curToken)))
		return nil
	}
	p.nextToken()
	for !p.curTokenIs(token.CASE) && !p.curTokenIs(token.DEFAULT) &&
		!p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		if stmt := p.parseStatement(); stmt != nil {
			c.Statements = append(c.Statements, stmt)
		}
		p.nextToken()
	}
	return c
}

func (p *Parser) parseReturn() ast.Statement {
	stmt := &ast.Return{Id: ast.NewID(), Token: p.curToken}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
		return stmt
	}
	p.nextToken()
	stmt.Expr = p.parseExpression(LOWEST)
	p.expectPeek(token.SEMICOLON)
	return stmt
}

// isLocalVarDeclAhead distinguishes `Foo x = ...` from expressions when
// the current token is an identifier: a (qualified) name, optional
// array dims, then another identifier means a declaration.
func (p *Parser) isLocalVarDeclAhead() bool {
	i := 0
	next := func() token.Token {
		if i == 0 {
			i++
			return p.peekToken
		}
		tok := p.peekAhead(i - 1)
		i++
		return tok
	}
	tok := next()
	for tok.Type == token.DOT {
		if next().Type != token.IDENT {
			return false
		}
		tok = next()
	}
	for tok.Type == token.LBRACKET {
		if next().Type != token.RBRACKET {
			return false
		}
		tok = next()
	}
	return tok.Type == token.IDENT
}

// parseLocalVariableDeclarations parses `[final] Type a [= e] {, b [= e]} ;`.
// The current token is the first modifier or the type; on return it is
// the semicolon.
func (p *Parser) parseLocalVariableDeclarations() ast.Statement {
	decl := &ast.VariableDeclarations{Id: ast.NewID(), Token: p.curToken}
	for p.curTokenIs(token.FINAL) {
		decl.Modifiers |= jtype.FlagFinal
		p.nextToken()
	}
	decl.TypeExpr = p.parseTypeRef()
	if !p.expectPeek(token.IDENT) {
		p.skipToStatementBoundary()
		return nil
	}
	p.parseNamedVariableList(decl)
	p.expectPeek(token.SEMICOLON)
	return decl
}
