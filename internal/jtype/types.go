// Package jtype is the resolved-type model attached to the syntax tree
// by the attribution pass. Types are plain values; variable bindings are
// identity-compared pointers (one *Variable per binding in a tree).
package jtype

import "strings"

// Type is the interface for all resolved types.
type Type interface {
	String() string
	typeNode()
}

// Primitive is a built-in value type. Void doubles as the return-type
// sentinel for callables that declare no return type (constructors,
// synthesized initializers).
type Primitive string

const (
	Boolean Primitive = "boolean"
	Byte    Primitive = "byte"
	Short   Primitive = "short"
	Char    Primitive = "char"
	Int     Primitive = "int"
	Long    Primitive = "long"
	Float   Primitive = "float"
	Double  Primitive = "double"
	Void    Primitive = "void"
)

func (p Primitive) String() string { return string(p) }
func (p Primitive) typeNode()      {}

// IsPrimitiveName reports whether name spells a primitive type.
func IsPrimitiveName(name string) bool {
	switch Primitive(name) {
	case Boolean, Byte, Short, Char, Int, Long, Float, Double, Void:
		return true
	}
	return false
}

// Class is a named reference type.
type Class struct {
	Name string
}

func (c *Class) String() string { return c.Name }
func (c *Class) typeNode()      {}

// Array wraps an element type.
type Array struct {
	Elem Type
}

func (a *Array) String() string {
	if a.Elem == nil {
		return "?[]"
	}
	return a.Elem.String() + "[]"
}
func (a *Array) typeNode() {}

// Of builds the resolved type for a declared type name with dims extra
// array dimensions.
func Of(name string, dims int) Type {
	var t Type
	if IsPrimitiveName(name) {
		t = Primitive(name)
	} else {
		t = &Class{Name: name}
	}
	for i := 0; i < dims; i++ {
		t = &Array{Elem: t}
	}
	return t
}

// Variable is a resolved variable binding: a field, parameter or local.
// Bindings are unique per declaration; the attribution pass creates one
// and every reference shares the pointer, so identity comparison is
// binding comparison.
type Variable struct {
	Name  string
	Owner Type // declaring class, or nil for locals of unattributed trees
	Type  Type
	Flags Flag
}

func (v *Variable) typeNode() {}

func (v *Variable) String() string {
	var sb strings.Builder
	if v.Owner != nil {
		sb.WriteString(v.Owner.String())
		sb.WriteString(".")
	}
	sb.WriteString(v.Name)
	return sb.String()
}

// HasFlags reports whether all given flags are set on the binding.
func (v *Variable) HasFlags(flags Flag) bool {
	return v.Flags&flags == flags
}
