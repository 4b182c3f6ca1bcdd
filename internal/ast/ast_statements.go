package ast

import (
	"github.com/google/uuid"

	"github.com/treewright/treewright/internal/token"
)

// Block is a brace-delimited statement sequence. Inside a class body a
// bare block is an initializer block; Static distinguishes `static {}`
// from `{}`.
type Block struct {
	Id          uuid.UUID
	Token       token.Token // '{'
	Static      bool
	Statements  []Statement
	RBraceToken token.Token
}

func (b *Block) ID() uuid.UUID         { return b.Id }
func (b *Block) GetToken() token.Token { return b.Token }
func (b *Block) Accept(v Visitor)      { v.VisitBlock(b) }
func (b *Block) statementNode()        {}

type If struct {
	Id        uuid.UUID
	Token     token.Token // 'if'
	Condition Expression
	Then      Statement
	Else      Statement // nil when absent
}

func (i *If) ID() uuid.UUID         { return i.Id }
func (i *If) GetToken() token.Token { return i.Token }
func (i *If) Accept(v Visitor)      { v.VisitIf(i) }
func (i *If) statementNode()        {}

type WhileLoop struct {
	Id        uuid.UUID
	Token     token.Token // 'while'
	Condition Expression
	Body      Statement
}

func (w *WhileLoop) ID() uuid.UUID         { return w.Id }
func (w *WhileLoop) GetToken() token.Token { return w.Token }
func (w *WhileLoop) Accept(v Visitor)      { v.VisitWhileLoop(w) }
func (w *WhileLoop) statementNode()        {}

type DoWhileLoop struct {
	Id        uuid.UUID
	Token     token.Token // 'do'
	Body      Statement
	Condition Expression
}

func (d *DoWhileLoop) ID() uuid.UUID         { return d.Id }
func (d *DoWhileLoop) GetToken() token.Token { return d.Token }
func (d *DoWhileLoop) Accept(v Visitor)      { v.VisitDoWhileLoop(d) }
func (d *DoWhileLoop) statementNode()        {}

// ForLoop is the classic three-part for statement.
type ForLoop struct {
	Id        uuid.UUID
	Token     token.Token // 'for'
	Init      Statement   // *VariableDeclarations, expression statement, or nil
	Condition Expression  // nil when absent
	Update    []Expression
	Body      Statement
}

func (f *ForLoop) ID() uuid.UUID         { return f.Id }
func (f *ForLoop) GetToken() token.Token { return f.Token }
func (f *ForLoop) Accept(v Visitor)      { v.VisitForLoop(f) }
func (f *ForLoop) statementNode()        {}

type Switch struct {
	Id       uuid.UUID
	Token    token.Token // 'switch'
	Selector Expression
	Cases    []*Case
}

func (s *Switch) ID() uuid.UUID         { return s.Id }
func (s *Switch) GetToken() token.Token { return s.Token }
func (s *Switch) Accept(v Visitor)      { v.VisitSwitch(s) }
func (s *Switch) statementNode()        {}

// Case is one switch arm; Pattern is nil for `default:`.
type Case struct {
	Id         uuid.UUID
	Token      token.Token // 'case' or 'default'
	Pattern    Expression
	Statements []Statement
}

func (c *Case) ID() uuid.UUID         { return c.Id }
func (c *Case) GetToken() token.Token { return c.Token }
func (c *Case) Accept(v Visitor)      { v.VisitCase(c) }
func (c *Case) statementNode()        {}

type Break struct {
	Id    uuid.UUID
	Token token.Token
}

func (b *Break) ID() uuid.UUID         { return b.Id }
func (b *Break) GetToken() token.Token { return b.Token }
func (b *Break) Accept(v Visitor)      { v.VisitBreak(b) }
func (b *Break) statementNode()        {}

type Continue struct {
	Id    uuid.UUID
	Token token.Token
}

func (c *Continue) ID() uuid.UUID         { return c.Id }
func (c *Continue) GetToken() token.Token { return c.Token }
func (c *Continue) Accept(v Visitor)      { v.VisitContinue(c) }
func (c *Continue) statementNode()        {}

type Return struct {
	Id    uuid.UUID
	Token token.Token
	Expr  Expression // nil for bare return
}

func (r *Return) ID() uuid.UUID         { return r.Id }
func (r *Return) GetToken() token.Token { return r.Token }
func (r *Return) Accept(v Visitor)      { v.VisitReturn(r) }
func (r *Return) statementNode()        {}

// Empty is a lone semicolon.
type Empty struct {
	Id    uuid.UUID
	Token token.Token
}

func (e *Empty) ID() uuid.UUID         { return e.Id }
func (e *Empty) GetToken() token.Token { return e.Token }
func (e *Empty) Accept(v Visitor)      { v.VisitEmpty(e) }
func (e *Empty) statementNode()        {}
