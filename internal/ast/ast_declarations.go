package ast

import (
	"github.com/google/uuid"

	"github.com/treewright/treewright/internal/jtype"
	"github.com/treewright/treewright/internal/token"
)

type ClassKind int

const (
	ClassKindClass ClassKind = iota
	ClassKindEnum
)

// ClassDeclaration represents a class or enum declaration.
type ClassDeclaration struct {
	Id          uuid.UUID
	Token       token.Token // 'class' or 'enum'
	Kind        ClassKind
	Modifiers   jtype.Flag
	Annotations []*Annotation
	Name        *Identifier
	Body        *Block
}

func (cd *ClassDeclaration) ID() uuid.UUID         { return cd.Id }
func (cd *ClassDeclaration) GetToken() token.Token { return cd.Token }
func (cd *ClassDeclaration) Accept(v Visitor)      { v.VisitClassDeclaration(cd) }
func (cd *ClassDeclaration) statementNode()        {}

// MethodDeclaration represents a method or constructor declaration.
// Constructors have no return-type expression (ReturnTypeExpr is nil).
type MethodDeclaration struct {
	Id             uuid.UUID
	Token          token.Token // the name token
	Modifiers      jtype.Flag
	Annotations    []*Annotation
	ReturnTypeExpr *TypeRef // nil for constructors
	Name           *Identifier
	Params         []*VariableDeclarations
	Body           *Block // nil for abstract methods
	IsConstructor  bool
}

func (md *MethodDeclaration) ID() uuid.UUID         { return md.Id }
func (md *MethodDeclaration) GetToken() token.Token { return md.Token }
func (md *MethodDeclaration) Accept(v Visitor)      { v.VisitMethodDeclaration(md) }
func (md *MethodDeclaration) statementNode()        {}

// VariableDeclarations is one declaration statement: a type followed by
// one or more named variables. Fields, method parameters and locals all
// use this shape; a method parameter holds exactly one named variable.
type VariableDeclarations struct {
	Id          uuid.UUID
	Token       token.Token // first token of the type
	Modifiers   jtype.Flag
	Annotations []*Annotation
	TypeExpr    *TypeRef
	Varargs     bool // type spelled with a trailing ellipsis
	Variables   []*NamedVariable
}

func (vd *VariableDeclarations) ID() uuid.UUID         { return vd.Id }
func (vd *VariableDeclarations) GetToken() token.Token { return vd.Token }
func (vd *VariableDeclarations) Accept(v Visitor)      { v.VisitVariableDeclarations(vd) }
func (vd *VariableDeclarations) statementNode()        {}

// NamedVariable is a single declared name with an optional initializer.
// VariableType is attached by the attribution pass; it stays nil when
// the pass has not run.
type NamedVariable struct {
	Id           uuid.UUID
	Token        token.Token // the name token
	Name         *Identifier
	Dims         int // extra array dims after the name: int x[]
	Initializer  Expression
	VariableType *jtype.Variable
}

func (nv *NamedVariable) ID() uuid.UUID         { return nv.Id }
func (nv *NamedVariable) GetToken() token.Token { return nv.Token }
func (nv *NamedVariable) Accept(v Visitor)      { v.VisitNamedVariable(nv) }

// EnumValueSet is the leading constant list of an enum body.
type EnumValueSet struct {
	Id     uuid.UUID
	Token  token.Token
	Values []*EnumValue
}

func (es *EnumValueSet) ID() uuid.UUID         { return es.Id }
func (es *EnumValueSet) GetToken() token.Token { return es.Token }
func (es *EnumValueSet) Accept(v Visitor)      { v.VisitEnumValueSet(es) }
func (es *EnumValueSet) statementNode()        {}

// EnumValue is a single enum constant; Initializer is the implicit
// constructor invocation when the constant carries arguments, nil
// otherwise.
type EnumValue struct {
	Id          uuid.UUID
	Token       token.Token
	Name        *Identifier
	Initializer Expression // *NewClass or nil
}

func (ev *EnumValue) ID() uuid.UUID         { return ev.Id }
func (ev *EnumValue) GetToken() token.Token { return ev.Token }
func (ev *EnumValue) Accept(v Visitor)      { v.VisitEnumValue(ev) }

// Annotation is a marker or single-argument annotation on a declaration.
type Annotation struct {
	Id        uuid.UUID
	Token     token.Token // '@'
	Name      *Identifier
	Arguments []Expression
}

func (an *Annotation) ID() uuid.UUID         { return an.Id }
func (an *Annotation) GetToken() token.Token { return an.Token }
func (an *Annotation) Accept(v Visitor)      { v.VisitAnnotation(an) }
func (an *Annotation) statementNode()        {}
