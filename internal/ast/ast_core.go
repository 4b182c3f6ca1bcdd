// Package ast defines the immutable syntax tree the analysis passes
// operate on. Nodes are built once by the parser, attributed in place by
// the analyzer stage, and never mutated afterwards; concurrent reads
// need no locking.
//
// Every node carries a UUID assigned at construction. The id is the
// node's stable identity: trait views built at different times over the
// same node compare equal through it.
package ast

import (
	"github.com/google/uuid"

	"github.com/treewright/treewright/internal/jtype"
	"github.com/treewright/treewright/internal/token"
)

// Node is the base interface for all syntax tree nodes.
type Node interface {
	// ID uniquely identifies this node within its tree, stable across
	// repeated traversals.
	ID() uuid.UUID
	GetToken() token.Token
	Accept(v Visitor)
}

// Statement is a Node that can appear in statement position.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that produces (or targets) a value.
type Expression interface {
	Node
	expressionNode()
}

// NewID mints a fresh node id. The parser calls this for every node it
// builds; synthetic test trees should too when identity matters.
func NewID() uuid.UUID { return uuid.New() }

// TypeRef is the syntactic spelling of a declared type: a primitive or
// class name plus array dimensions. It is not a Node; it has no
// identity and never participates in read-effect dispatch.
type TypeRef struct {
	Token     token.Token
	Name      string
	Dims      int
	Primitive bool
}

// Type resolves the spelling to the jtype model.
func (t *TypeRef) Type() jtype.Type {
	if t == nil {
		return nil
	}
	return jtype.Of(t.Name, t.Dims)
}

func (t *TypeRef) String() string {
	if t == nil {
		return ""
	}
	s := t.Name
	for i := 0; i < t.Dims; i++ {
		s += "[]"
	}
	return s
}

// CompilationUnit is the root node of a parsed source file.
type CompilationUnit struct {
	Id      uuid.UUID
	Token   token.Token
	File    string
	Classes []*ClassDeclaration
}

func (cu *CompilationUnit) ID() uuid.UUID         { return cu.Id }
func (cu *CompilationUnit) GetToken() token.Token { return cu.Token }
func (cu *CompilationUnit) Accept(v Visitor)      { v.VisitCompilationUnit(cu) }
