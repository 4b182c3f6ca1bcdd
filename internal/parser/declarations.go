package parser

import (
	"fmt"

	"github.com/treewright/treewright/internal/ast"
	"github.com/treewright/treewright/internal/diagnostics"
	"github.com/treewright/treewright/internal/jtype"
	"github.com/treewright/treewright/internal/token"
)

// ParseCompilationUnit parses a whole source file: a sequence of class
// and enum declarations.
func (p *Parser) ParseCompilationUnit() *ast.CompilationUnit {
	unit := &ast.CompilationUnit{Id: ast.NewID(), Token: p.curToken}
	for !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.SEMICOLON) {
			p.nextToken()
			continue
		}
		annotations := p.parseAnnotations()
		modifiers := p.parseModifiers()
		if p.curTokenIs(token.CLASS) || p.curTokenIs(token.ENUM) {
			if cd := p.parseClassDeclaration(annotations, modifiers); cd != nil {
				unit.Classes = append(unit.Classes, cd)
			}
		} else {
			p.errorAt(diagnostics.ErrP001, p.curToken,
				fmt.Sprintf("expected class or enum declaration, got %s", describeToken(p.curToken)))
			p.skipToStatementBoundary()
		}
		p.nextToken()
	}
	return unit
}

func (p *Parser) parseAnnotations() []*ast.Annotation {
	var annotations []*ast.Annotation
	for p.curTokenIs(token.AT) {
		an := &ast.Annotation{Id: ast.NewID(), Token: p.curToken}
		if !p.expectPeek(token.IDENT) {
			p.skipToStatementBoundary()
			return annotations
		}
		an.Name = &ast.Identifier{Id: ast.NewID(), Token: p.curToken, Value: p.curToken.Lexeme}
		if p.peekTokenIs(token.LPAREN) {
			p.nextToken()
			an.Arguments = p.parseArguments()
		}
		annotations = append(annotations, an)
		p.nextToken()
	}
	return annotations
}

func (p *Parser) parseModifiers() jtype.Flag {
	var flags jtype.Flag
	for {
		switch p.curToken.Type {
		case token.PUBLIC, token.PRIVATE, token.PROTECTED,
			token.STATIC, token.FINAL, token.ABSTRACT:
			f, _ := jtype.ModifierFlag(p.curToken.Lexeme)
			flags |= f
			p.nextToken()
		default:
			return flags
		}
	}
}

// parseClassDeclaration parses `class Name { ... }` or `enum Name { ... }`.
// The current token is the class/enum keyword.
func (p *Parser) parseClassDeclaration(annotations []*ast.Annotation, modifiers jtype.Flag) *ast.ClassDeclaration {
	cd := &ast.ClassDeclaration{
		Id:          ast.NewID(),
		Token:       p.curToken,
		Modifiers:   modifiers,
		Annotations: annotations,
	}
	if p.curTokenIs(token.ENUM) {
		cd.Kind = ast.ClassKindEnum
	}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	cd.Name = &ast.Identifier{Id: ast.NewID(), Token: p.curToken, Value: p.curToken.Lexeme}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	cd.Body = p.parseClassBody(cd.Name.Value, cd.Kind)
	return cd
}

// parseClassBody parses the member block of a class or enum. The current
// token is the opening brace; on return it is the closing one.
func (p *Parser) parseClassBody(className string, kind ast.ClassKind) *ast.Block {
	body := &ast.Block{Id: ast.NewID(), Token: p.curToken}
	p.nextToken()

	if kind == ast.ClassKindEnum {
		if set := p.parseEnumValues(className); set != nil {
			body.Statements = append(body.Statements, set)
		}
		p.nextToken()
	}

	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		if member := p.parseMember(className); member != nil {
			body.Statements = append(body.Statements, member)
		}
		p.nextToken()
	}
	if p.curTokenIs(token.EOF) {
		p.errorAt(diagnostics.ErrP002, p.curToken, "expected } before end of file")
	}
	body.RBraceToken = p.curToken
	return body
}

// parseEnumValues parses the leading constant list of an enum body,
// through the separating semicolon when one is present.
func (p *Parser) parseEnumValues(className string) *ast.EnumValueSet {
	if !p.curTokenIs(token.IDENT) {
		return nil
	}
	set := &ast.EnumValueSet{Id: ast.NewID(), Token: p.curToken}
	for p.curTokenIs(token.IDENT) {
		ev := &ast.EnumValue{
			Id:    ast.NewID(),
			Token: p.curToken,
			Name:  &ast.Identifier{Id: ast.NewID(), Token: p.curToken, Value: p.curToken.Lexeme},
		}
		if p.peekTokenIs(token.LPAREN) {
			p.nextToken()
			ev.Initializer = &ast.NewClass{
				Id:        ast.NewID(),
				Token:     ev.Token,
				TypeExpr:  &ast.TypeRef{Token: ev.Token, Name: className},
				Arguments: p.parseArguments(),
			}
		}
		set.Values = append(set.Values, ev)
		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
		p.nextToken()
	}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return set
}

// parseMember parses one class-body member: an initializer block, a
// field, a method or a constructor.
func (p *Parser) parseMember(className string) ast.Statement {
	annotations := p.parseAnnotations()
	modifiers := p.parseModifiers()

	switch p.curToken.Type {
	case token.SEMICOLON:
		return nil
	case token.LBRACE:
		return p.parseBlock(modifiers.Has(jtype.FlagStatic))
	case token.IDENT:
		if p.curToken.Lexeme == className && p.peekTokenIs(token.LPAREN) {
			return p.parseConstructor(annotations, modifiers)
		}
	case token.VOID, token.PRIMITIVE:
	default:
		p.errorAt(diagnostics.ErrP001, p.curToken,
			fmt.Sprintf("unexpected token %s in class body", describeToken(p.curToken)))
		p.skipToStatementBoundary()
		return nil
	}

	typeToken := p.curToken
	typeRef := p.parseTypeRef()
	if !p.expectPeek(token.IDENT) {
		p.skipToStatementBoundary()
		return nil
	}

	if p.peekTokenIs(token.LPAREN) {
		return p.parseMethod(annotations, modifiers, typeRef)
	}

	decl := &ast.VariableDeclarations{
		Id:          ast.NewID(),
		Token:       typeToken,
		Modifiers:   modifiers,
		Annotations: annotations,
		TypeExpr:    typeRef,
	}
	p.parseNamedVariableList(decl)
	p.expectPeek(token.SEMICOLON)
	return decl
}

// parseMethod parses a method from its name onward. The current token
// is the method name.
func (p *Parser) parseMethod(annotations []*ast.Annotation, modifiers jtype.Flag, returnType *ast.TypeRef) ast.Statement {
	md := &ast.MethodDeclaration{
		Id:             ast.NewID(),
		Token:          p.curToken,
		Modifiers:      modifiers,
		Annotations:    annotations,
		ReturnTypeExpr: returnType,
		Name:           &ast.Identifier{Id: ast.NewID(), Token: p.curToken, Value: p.curToken.Lexeme},
	}
	p.nextToken()
	md.Params = p.parseParams()
	if p.peekTokenIs(token.LBRACE) {
		p.nextToken()
		md.Body = p.parseBlock(false)
		return md
	}
	p.expectPeek(token.SEMICOLON)
	return md
}

// parseConstructor parses `Name(params) { ... }`. Constructors carry no
// return-type expression. The current token is the name.
func (p *Parser) parseConstructor(annotations []*ast.Annotation, modifiers jtype.Flag) ast.Statement {
	md := &ast.MethodDeclaration{
		Id:            ast.NewID(),
		Token:         p.curToken,
		Modifiers:     modifiers,
		Annotations:   annotations,
		Name:          &ast.Identifier{Id: ast.NewID(), Token: p.curToken, Value: p.curToken.Lexeme},
		IsConstructor: true,
	}
	p.nextToken()
	md.Params = p.parseParams()
	if !p.expectPeek(token.LBRACE) {
		return md
	}
	md.Body = p.parseBlock(false)
	return md
}

// parseParams parses `( [final] Type[...] name, ... )`. Each parameter
// becomes its own declaration holding exactly one named variable. The
// current token is the opening parenthesis; on return it is the closing
// one.
func (p *Parser) parseParams() []*ast.VariableDeclarations {
	var params []*ast.VariableDeclarations
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params
	}
	p.nextToken()
	for {
		vd := &ast.VariableDeclarations{Id: ast.NewID(), Token: p.curToken}
		for p.curTokenIs(token.FINAL) {
			vd.Modifiers |= jtype.FlagFinal
			p.nextToken()
		}
		vd.TypeExpr = p.parseTypeRef()
		if p.peekTokenIs(token.ELLIPSIS) {
			p.nextToken()
			vd.Varargs = true
		}
		if !p.expectPeek(token.IDENT) {
			return params
		}
		nv := &ast.NamedVariable{
			Id:    ast.NewID(),
			Token: p.curToken,
			Name:  &ast.Identifier{Id: ast.NewID(), Token: p.curToken, Value: p.curToken.Lexeme},
		}
		for p.peekTokenIs(token.LBRACKET) && p.peekAhead(0).Type == token.RBRACKET {
			p.nextToken()
			p.nextToken()
			nv.Dims++
		}
		vd.Variables = append(vd.Variables, nv)
		params = append(params, vd)
		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
		p.nextToken()
	}
	p.expectPeek(token.RPAREN)
	return params
}

// parseNamedVariableList parses `a [dims] [= e] {, b [dims] [= e]}` into
// decl. The current token must be the first name; on return it is the
// last token before the terminating semicolon.
func (p *Parser) parseNamedVariableList(decl *ast.VariableDeclarations) {
	for {
		nv := &ast.NamedVariable{
			Id:    ast.NewID(),
			Token: p.curToken,
			Name:  &ast.Identifier{Id: ast.NewID(), Token: p.curToken, Value: p.curToken.Lexeme},
		}
		for p.peekTokenIs(token.LBRACKET) && p.peekAhead(0).Type == token.RBRACKET {
			p.nextToken()
			p.nextToken()
			nv.Dims++
		}
		if p.peekTokenIs(token.ASSIGN) {
			p.nextToken()
			p.nextToken()
			nv.Initializer = p.parseExpression(LOWEST)
		}
		decl.Variables = append(decl.Variables, nv)
		if !p.peekTokenIs(token.COMMA) {
			return
		}
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			p.skipToStatementBoundary()
			return
		}
	}
}
