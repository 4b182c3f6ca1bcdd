// Package effects answers read-effect queries over attributed trees:
// whether evaluating an expression reads the value of a given variable
// binding.
package effects

import (
	"fmt"

	"github.com/treewright/treewright/internal/ast"
	"github.com/treewright/treewright/internal/jtype"
)

// Side distinguishes how an expression position uses a variable: as a
// value (rvalue) or as an assignment target (lvalue). A bare name on the
// left of a simple assignment is written, not read; the same name
// anywhere else is read.
type Side int

const (
	RValue Side = iota
	LValue
)

func (s Side) String() string {
	switch s {
	case RValue:
		return "rvalue"
	case LValue:
		return "lvalue"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

// VariableSide pairs a binding with the side it occurs on, for callers
// that batch or cache read queries per occurrence.
type VariableSide struct {
	Variable *jtype.Variable
	Side     Side
}

// Reads reports whether evaluating n reads vs.Variable on vs.Side.
func (vs VariableSide) Reads(n ast.Node) bool {
	return ReadsOnSide(n, vs.Variable, vs.Side)
}
