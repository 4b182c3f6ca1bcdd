package parser

import (
	"fmt"

	"github.com/treewright/treewright/internal/ast"
	"github.com/treewright/treewright/internal/diagnostics"
	"github.com/treewright/treewright/internal/token"
)

func (p *Parser) parseExpression(precedence int) ast.Expression {
	p.depth++
	defer func() { p.depth-- }()

	if p.depth > MaxRecursionDepth {
		p.errorAt(diagnostics.ErrP004, p.curToken,
			"expression too complex: recursion depth limit exceeded")
		p.skipToStatementBoundary()
		return nil
	}

	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.errorAt(diagnostics.ErrP001, p.curToken,
			fmt.Sprintf("unexpected token %s in expression", describeToken(p.curToken)))
		return nil
	}
	leftExp := prefix()

	for leftExp != nil && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}
		p.nextToken()
		leftExp = infix(leftExp)
	}

	return leftExp
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{
		Id:    ast.NewID(),
		Token: p.curToken,
		Value: p.curToken.Lexeme,
	}
}

func (p *Parser) parseLiteral() ast.Expression {
	lit := &ast.Literal{Id: ast.NewID(), Token: p.curToken, Value: p.curToken.Literal}
	switch p.curToken.Type {
	case token.INT:
		lit.Kind = ast.LiteralInt
	case token.STRING:
		lit.Kind = ast.LiteralString
	case token.CHAR:
		lit.Kind = ast.LiteralChar
	case token.TRUE:
		lit.Kind = ast.LiteralBool
		lit.Value = true
	case token.FALSE:
		lit.Kind = ast.LiteralBool
		lit.Value = false
	case token.NULL:
		lit.Kind = ast.LiteralNull
		lit.Value = nil
	}
	return lit
}

func (p *Parser) parsePrefixUnary() ast.Expression {
	expr := &ast.Unary{
		Id:       ast.NewID(),
		Token:    p.curToken,
		Operator: p.curToken.Lexeme,
	}
	p.nextToken()
	expr.Expr = p.parseExpression(UNARY)
	return expr
}

func (p *Parser) parsePostfixUnary(left ast.Expression) ast.Expression {
	return &ast.Unary{
		Id:       ast.NewID(),
		Token:    p.curToken,
		Operator: p.curToken.Lexeme,
		Expr:     left,
		Postfix:  true,
	}
}

func (p *Parser) parseBinary(left ast.Expression) ast.Expression {
	expr := &ast.Binary{
		Id:       ast.NewID(),
		Token:    p.curToken,
		Left:     left,
		Operator: p.curToken.Lexeme,
	}
	precedence := precedences[p.curToken.Type]
	p.nextToken()
	expr.Right = p.parseExpression(precedence)
	return expr
}

func (p *Parser) parseTernary(cond ast.Expression) ast.Expression {
	expr := &ast.Ternary{
		Id:        ast.NewID(),
		Token:     p.curToken,
		Condition: cond,
	}
	p.nextToken()
	expr.TruePart = p.parseExpression(LOWEST)
	if !p.expectPeek(token.COLON) {
		return nil
	}
	p.nextToken()
	// Right-associative: a ? b : c ? d : e nests in the else part.
	expr.FalsePart = p.parseExpression(TERNARY - 1)
	return expr
}

// parseAssignment handles simple and compound assignment. The target
// must be a name, a field access or an array access.
func (p *Parser) parseAssignment(left ast.Expression) ast.Expression {
	switch left.(type) {
	case *ast.Identifier, *ast.FieldAccess, *ast.ArrayAccess:
	default:
		p.errorAt(diagnostics.ErrP003, p.curToken,
			fmt.Sprintf("invalid assignment target %T", left))
		return nil
	}

	opToken := p.curToken
	p.nextToken()
	// Right-associative: a = b = c parses as a = (b = c).
	value := p.parseExpression(ASSIGNMENT - 1)

	if opToken.Type == token.ASSIGN {
		return &ast.Assignment{
			Id:       ast.NewID(),
			Token:    opToken,
			Variable: left,
			Value:    value,
		}
	}
	return &ast.AssignmentOperation{
		Id:       ast.NewID(),
		Token:    opToken,
		Variable: left,
		Operator: opToken.Lexeme[:len(opToken.Lexeme)-1],
		Value:    value,
	}
}

func (p *Parser) parseFieldAccess(left ast.Expression) ast.Expression {
	dotToken := p.curToken
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := &ast.Identifier{Id: ast.NewID(), Token: p.curToken, Value: p.curToken.Lexeme}
	return &ast.FieldAccess{
		Id:     ast.NewID(),
		Token:  dotToken,
		Target: left,
		Name:   name,
	}
}

func (p *Parser) parseArrayAccess(left ast.Expression) ast.Expression {
	expr := &ast.ArrayAccess{
		Id:      ast.NewID(),
		Token:   p.curToken,
		Indexed: left,
	}
	p.nextToken()
	expr.Index = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return expr
}

// parseCall turns a name or field access followed by '(' into a method
// invocation.
func (p *Parser) parseCall(left ast.Expression) ast.Expression {
	call := &ast.MethodInvocation{Id: ast.NewID(), Token: p.curToken}
	switch callee := left.(type) {
	case *ast.Identifier:
		call.Name = callee
	case *ast.FieldAccess:
		call.Target = callee.Target
		call.Name = callee.Name
	default:
		p.errorAt(diagnostics.ErrP001, p.curToken,
			fmt.Sprintf("cannot invoke %T", left))
		return nil
	}
	call.Arguments = p.parseArguments()
	return call
}

// parseArguments parses '(' expr, ... ')'. The current token must be
// the opening parenthesis.
func (p *Parser) parseArguments() []ast.Expression {
	var args []ast.Expression
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return args
	}
	p.nextToken()
	args = append(args, p.parseExpression(LOWEST))
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		args = append(args, p.parseExpression(LOWEST))
	}
	if !p.expectPeek(token.RPAREN) {
		return args
	}
	return args
}

// parseParenOrCast disambiguates '(T) expr' casts from grouped
// expressions by looking ahead for a type spelling followed by a token
// that can begin a cast operand.
func (p *Parser) parseParenOrCast() ast.Expression {
	if p.isCastAhead() {
		return p.parseTypeCast()
	}
	lparen := p.curToken
	p.nextToken()
	inner := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return &ast.Parentheses{Id: ast.NewID(), Token: lparen, Expr: inner}
}

// isCastAhead reports whether the tokens after the current '(' spell a
// type followed by ')' and a cast operand. Primitive types are always
// casts; class names only when the operand token makes an expression
// like (x) - y impossible to misread.
func (p *Parser) isCastAhead() bool {
	if p.peekTokenIs(token.PRIMITIVE) {
		return true
	}
	if !p.peekTokenIs(token.IDENT) {
		return false
	}
	// Window: peekToken is the first name part; scan the rest.
	i := 0
	next := func() token.Token {
		tok := p.peekAhead(i)
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
	if tok.Type != token.RPAREN {
		return false
	}
	switch next().Type {
	case token.IDENT, token.INT, token.STRING, token.CHAR, token.THIS,
		token.TRUE, token.FALSE, token.NULL, token.NEW, token.BANG, token.TILDE:
		return true
	}
	return false
}

func (p *Parser) parseTypeCast() ast.Expression {
	expr := &ast.TypeCast{Id: ast.NewID(), Token: p.curToken}
	p.nextToken()
	expr.TypeExpr = p.parseTypeRef()
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	p.nextToken()
	expr.Expr = p.parseExpression(UNARY)
	return expr
}

// parseTypeRef parses a type spelling: a primitive or (qualified) class
// name plus array dimensions. The current token must be the first name
// part; on return it is the last token of the spelling.
func (p *Parser) parseTypeRef() *ast.TypeRef {
	ref := &ast.TypeRef{
		Token:     p.curToken,
		Name:      p.curToken.Lexeme,
		Primitive: p.curTokenIs(token.PRIMITIVE) || p.curTokenIs(token.VOID),
	}
	for p.peekTokenIs(token.DOT) && p.peekAhead(0).Type == token.IDENT {
		p.nextToken()
		p.nextToken()
		ref.Name += "." + p.curToken.Lexeme
	}
	for p.peekTokenIs(token.LBRACKET) && p.peekAhead(0).Type == token.RBRACKET {
		p.nextToken()
		p.nextToken()
		ref.Dims++
	}
	return ref
}

// parseNew parses constructor invocations and array creations.
func (p *Parser) parseNew() ast.Expression {
	newToken := p.curToken
	if !p.peekTokenIs(token.IDENT) && !p.peekTokenIs(token.PRIMITIVE) {
		p.errorAt(diagnostics.ErrP001, p.peekToken,
			fmt.Sprintf("expected type after new, got %s", describeToken(p.peekToken)))
		return nil
	}
	p.nextToken()
	ref := &ast.TypeRef{
		Token:     p.curToken,
		Name:      p.curToken.Lexeme,
		Primitive: p.curTokenIs(token.PRIMITIVE),
	}
	for p.peekTokenIs(token.DOT) && p.peekAhead(0).Type == token.IDENT {
		p.nextToken()
		p.nextToken()
		ref.Name += "." + p.curToken.Lexeme
	}

	if p.peekTokenIs(token.LBRACKET) {
		arr := &ast.NewArray{Id: ast.NewID(), Token: newToken, TypeExpr: ref}
		for p.peekTokenIs(token.LBRACKET) {
			p.nextToken()
			if p.peekTokenIs(token.RBRACKET) {
				p.nextToken()
				ref.Dims++
				continue
			}
			p.nextToken()
			arr.Dimensions = append(arr.Dimensions, p.parseExpression(LOWEST))
			if !p.expectPeek(token.RBRACKET) {
				return nil
			}
		}
		return arr
	}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	return &ast.NewClass{
		Id:        ast.NewID(),
		Token:     newToken,
		TypeExpr:  ref,
		Arguments: p.parseArguments(),
	}
}
