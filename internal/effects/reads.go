package effects

import (
	"fmt"

	"github.com/treewright/treewright/internal/ast"
	"github.com/treewright/treewright/internal/jtype"
)

// Reads reports whether evaluating n reads the value of v. It is the
// rvalue form of ReadsOnSide.
func Reads(n ast.Node, v *jtype.Variable) bool {
	return ReadsOnSide(n, v, RValue)
}

// ReadsOnSide reports whether n, occurring on the given side, reads the
// value of v. Bindings compare by pointer identity, so shadowed
// variables with the same name never alias.
//
// The analysis is syntactic and per-binding. Three rules carry the
// side logic:
//
//   - a bare name as an assignment target is not a read of that name;
//   - the target and index of a field or array access are read even
//     when the access itself is being assigned: writing a[i] or x.f
//     needs the values of a, i and x;
//   - everything reached in any other position is queried as rvalue.
//
// Querying LValue on a node that cannot be an assignment target is a
// programming error and panics. Node kinds this package does not know
// are conservatively treated as reading everything.
func ReadsOnSide(n ast.Node, v *jtype.Variable, side Side) bool {
	if n == nil || v == nil {
		return false
	}
	if side == LValue {
		switch n.(type) {
		case *ast.Identifier, *ast.FieldAccess, *ast.ArrayAccess:
		default:
			panic(fmt.Sprintf("%T cannot be an assignment target", n))
		}
	}

	switch e := n.(type) {
	case *ast.Identifier:
		return side == RValue && e.FieldType == v

	case *ast.FieldAccess:
		if side == RValue && e.FieldType == v {
			return true
		}
		return ReadsOnSide(e.Target, v, RValue)

	case *ast.ArrayAccess:
		return ReadsOnSide(e.Indexed, v, RValue) || ReadsOnSide(e.Index, v, RValue)

	case *ast.Assignment:
		return ReadsOnSide(e.Variable, v, LValue) || ReadsOnSide(e.Value, v, RValue)

	case *ast.AssignmentOperation:
		// x += e desugars to x = x + e: the target is read too.
		return ReadsOnSide(e.Variable, v, RValue) || ReadsOnSide(e.Value, v, RValue)

	case *ast.Unary:
		// ++ and -- read their operand before writing it.
		return ReadsOnSide(e.Expr, v, RValue)

	case *ast.Binary:
		return ReadsOnSide(e.Left, v, RValue) || ReadsOnSide(e.Right, v, RValue)

	case *ast.Ternary:
		return ReadsOnSide(e.Condition, v, RValue) ||
			ReadsOnSide(e.TruePart, v, RValue) ||
			ReadsOnSide(e.FalsePart, v, RValue)

	case *ast.TypeCast:
		return ReadsOnSide(e.Expr, v, RValue)

	case *ast.Parentheses:
		return ReadsOnSide(e.Expr, v, RValue)

	case *ast.MethodInvocation:
		if ReadsOnSide(e.Target, v, RValue) {
			return true
		}
		for _, a := range e.Arguments {
			if ReadsOnSide(a, v, RValue) {
				return true
			}
		}
		return false

	case *ast.NewClass:
		for _, a := range e.Arguments {
			if ReadsOnSide(a, v, RValue) {
				return true
			}
		}
		return false

	case *ast.NewArray:
		for _, d := range e.Dimensions {
			if ReadsOnSide(d, v, RValue) {
				return true
			}
		}
		return false

	case *ast.Literal, *ast.Break, *ast.Continue, *ast.Empty, *ast.Annotation:
		return false

	case *ast.CompilationUnit, *ast.ClassDeclaration, *ast.MethodDeclaration,
		*ast.VariableDeclarations, *ast.NamedVariable, *ast.EnumValueSet,
		*ast.EnumValue, *ast.Block, *ast.If, *ast.WhileLoop, *ast.DoWhileLoop,
		*ast.ForLoop, *ast.Switch, *ast.Case, *ast.Return:
		for _, child := range ast.Children(e) {
			if ReadsOnSide(child, v, RValue) {
				return true
			}
		}
		return false

	default:
		// Unknown node kinds read everything until taught otherwise.
		return true
	}
}
