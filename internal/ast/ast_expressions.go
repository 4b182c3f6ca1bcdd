package ast

import (
	"github.com/google/uuid"

	"github.com/treewright/treewright/internal/jtype"
	"github.com/treewright/treewright/internal/token"
)

// Identifier is a bare name. FieldType is the resolved variable binding
// when the name denotes one; the attribution pass fills it in and leaves
// it nil for names that are not variable references (types, methods).
type Identifier struct {
	Id        uuid.UUID
	Token     token.Token
	Value     string
	FieldType *jtype.Variable
}

func (i *Identifier) ID() uuid.UUID         { return i.Id }
func (i *Identifier) GetToken() token.Token { return i.Token }
func (i *Identifier) Accept(v Visitor)      { v.VisitIdentifier(i) }
func (i *Identifier) expressionNode()       {}
func (i *Identifier) statementNode()        {}

// FieldAccess is dot access, e.g. obj.field. FieldType is the resolved
// field binding when attribution could determine it.
type FieldAccess struct {
	Id        uuid.UUID
	Token     token.Token // the '.' token
	Target    Expression
	Name      *Identifier
	FieldType *jtype.Variable
}

func (fa *FieldAccess) ID() uuid.UUID         { return fa.Id }
func (fa *FieldAccess) GetToken() token.Token { return fa.Token }
func (fa *FieldAccess) Accept(v Visitor)      { v.VisitFieldAccess(fa) }
func (fa *FieldAccess) expressionNode()       {}
func (fa *FieldAccess) statementNode()        {}

// ArrayAccess is indexing, e.g. arr[i].
type ArrayAccess struct {
	Id      uuid.UUID
	Token   token.Token // the '[' token
	Indexed Expression
	Index   Expression
}

func (aa *ArrayAccess) ID() uuid.UUID         { return aa.Id }
func (aa *ArrayAccess) GetToken() token.Token { return aa.Token }
func (aa *ArrayAccess) Accept(v Visitor)      { v.VisitArrayAccess(aa) }
func (aa *ArrayAccess) expressionNode()       {}
func (aa *ArrayAccess) statementNode()        {}

// MethodInvocation is a call, e.g. obj.run(a, b) or run(a, b).
type MethodInvocation struct {
	Id        uuid.UUID
	Token     token.Token // the '(' token
	Target    Expression  // nil for unqualified calls
	Name      *Identifier
	Arguments []Expression
}

func (mi *MethodInvocation) ID() uuid.UUID         { return mi.Id }
func (mi *MethodInvocation) GetToken() token.Token { return mi.Token }
func (mi *MethodInvocation) Accept(v Visitor)      { v.VisitMethodInvocation(mi) }
func (mi *MethodInvocation) expressionNode()       {}
func (mi *MethodInvocation) statementNode()        {}

// Assignment is simple assignment, l = r.
type Assignment struct {
	Id       uuid.UUID
	Token    token.Token // '='
	Variable Expression
	Value    Expression
}

func (a *Assignment) ID() uuid.UUID         { return a.Id }
func (a *Assignment) GetToken() token.Token { return a.Token }
func (a *Assignment) Accept(v Visitor)      { v.VisitAssignment(a) }
func (a *Assignment) expressionNode()       {}
func (a *Assignment) statementNode()        {}

// AssignmentOperation is compound assignment, l += r and friends. The
// target is both read and written.
type AssignmentOperation struct {
	Id       uuid.UUID
	Token    token.Token // the operator token
	Variable Expression
	Operator string // "+", "-", ... without the '='
	Value    Expression
}

func (ao *AssignmentOperation) ID() uuid.UUID         { return ao.Id }
func (ao *AssignmentOperation) GetToken() token.Token { return ao.Token }
func (ao *AssignmentOperation) Accept(v Visitor)      { v.VisitAssignmentOperation(ao) }
func (ao *AssignmentOperation) expressionNode()       {}
func (ao *AssignmentOperation) statementNode()        {}

// Unary covers prefix (!x, -x, ++x) and postfix (x++) operators.
type Unary struct {
	Id       uuid.UUID
	Token    token.Token
	Operator string
	Expr     Expression
	Postfix  bool
}

func (u *Unary) ID() uuid.UUID         { return u.Id }
func (u *Unary) GetToken() token.Token { return u.Token }
func (u *Unary) Accept(v Visitor)      { v.VisitUnary(u) }
func (u *Unary) expressionNode()       {}
func (u *Unary) statementNode()        {}

type Binary struct {
	Id       uuid.UUID
	Token    token.Token
	Left     Expression
	Operator string
	Right    Expression
}

func (b *Binary) ID() uuid.UUID         { return b.Id }
func (b *Binary) GetToken() token.Token { return b.Token }
func (b *Binary) Accept(v Visitor)      { v.VisitBinary(b) }
func (b *Binary) expressionNode()       {}

// Ternary is the conditional expression c ? t : f.
type Ternary struct {
	Id        uuid.UUID
	Token     token.Token // '?'
	Condition Expression
	TruePart  Expression
	FalsePart Expression
}

func (t *Ternary) ID() uuid.UUID         { return t.Id }
func (t *Ternary) GetToken() token.Token { return t.Token }
func (t *Ternary) Accept(v Visitor)      { v.VisitTernary(t) }
func (t *Ternary) expressionNode()       {}

// TypeCast is (T) expr. A cast can never be an assignment target.
type TypeCast struct {
	Id       uuid.UUID
	Token    token.Token // '('
	TypeExpr *TypeRef
	Expr     Expression
}

func (tc *TypeCast) ID() uuid.UUID         { return tc.Id }
func (tc *TypeCast) GetToken() token.Token { return tc.Token }
func (tc *TypeCast) Accept(v Visitor)      { v.VisitTypeCast(tc) }
func (tc *TypeCast) expressionNode()       {}

// Parentheses is an explicitly grouped expression.
type Parentheses struct {
	Id    uuid.UUID
	Token token.Token // '('
	Expr  Expression
}

func (p *Parentheses) ID() uuid.UUID         { return p.Id }
func (p *Parentheses) GetToken() token.Token { return p.Token }
func (p *Parentheses) Accept(v Visitor)      { v.VisitParentheses(p) }
func (p *Parentheses) expressionNode()       {}

type LiteralKind int

const (
	LiteralInt LiteralKind = iota
	LiteralString
	LiteralChar
	LiteralBool
	LiteralNull
)

type Literal struct {
	Id    uuid.UUID
	Token token.Token
	Kind  LiteralKind
	Value any
}

func (l *Literal) ID() uuid.UUID         { return l.Id }
func (l *Literal) GetToken() token.Token { return l.Token }
func (l *Literal) Accept(v Visitor)      { v.VisitLiteral(l) }
func (l *Literal) expressionNode()       {}

// NewClass is a constructor invocation, new T(args).
type NewClass struct {
	Id        uuid.UUID
	Token     token.Token // 'new'
	TypeExpr  *TypeRef
	Arguments []Expression
}

func (nc *NewClass) ID() uuid.UUID         { return nc.Id }
func (nc *NewClass) GetToken() token.Token { return nc.Token }
func (nc *NewClass) Accept(v Visitor)      { v.VisitNewClass(nc) }
func (nc *NewClass) expressionNode()       {}
func (nc *NewClass) statementNode()        {}

// NewArray is an array creation, new T[d0][d1].
type NewArray struct {
	Id         uuid.UUID
	Token      token.Token // 'new'
	TypeExpr   *TypeRef
	Dimensions []Expression
}

func (na *NewArray) ID() uuid.UUID         { return na.Id }
func (na *NewArray) GetToken() token.Token { return na.Token }
func (na *NewArray) Accept(v Visitor)      { v.VisitNewArray(na) }
func (na *NewArray) expressionNode()       {}
