package trait

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/treewright/treewright/internal/ast"
	"github.com/treewright/treewright/internal/jtype"
	"github.com/treewright/treewright/internal/validate"
)

// Parameter is a view over one formal parameter of a callable.
type Parameter interface {
	Element
	// Type is the resolved parameter type, derived from the attributed
	// binding when present and from the declared spelling otherwise.
	Type() jtype.Type
	// Variable is the attributed binding, or nil on unattributed trees.
	Variable() *jtype.Variable
	// OwningCallable is the callable declaring this parameter.
	OwningCallable() Callable
	// Position is the zero-based index among the owning callable's
	// parameters. It panics when the parameter cannot be found there,
	// which indicates a corrupted cursor.
	Position() int
	// IsVarArgs reports whether this is a trailing variable-arity
	// parameter. It panics on unattributed trees.
	IsVarArgs() bool
	// Cursor is the tree position the view was built at.
	Cursor() *ast.Cursor
}

// ParameterOf builds a Parameter view over the named variable at c. The
// cursor must run named variable -> parameter declaration -> method
// declaration; fields and locals share the first two links but not the
// third and yield an invalid result.
func ParameterOf(c *ast.Cursor) *validate.Validated[Parameter] {
	if c == nil || c.Value() == nil {
		return validate.Invalid[Parameter]("parameter", nil, "no node at cursor")
	}
	nv, ok := c.Value().(*ast.NamedVariable)
	if !ok {
		return validate.Invalid[Parameter]("parameter", c.Value(),
			fmt.Sprintf("%T is not a named variable", c.Value()))
	}

	parent := c.Parent()
	if parent == nil {
		return validate.Invalid[Parameter]("parameter", nv, "named variable has no enclosing declaration")
	}
	vd, ok := parent.Value().(*ast.VariableDeclarations)
	if !ok {
		return validate.Invalid[Parameter]("parameter", nv,
			fmt.Sprintf("enclosing %T is not a variable declaration", parent.Value()))
	}

	grandparent := parent.Parent()
	if grandparent == nil {
		return validate.Invalid[Parameter]("parameter", nv, "declaration has no enclosing callable")
	}
	owner := CallableOf(grandparent)
	if !owner.IsValid() {
		return validate.AsInvalid[Parameter](owner)
	}
	md := grandparent.Value().(*ast.MethodDeclaration)
	if !containsDeclaration(md.Params, vd) {
		return validate.Invalid[Parameter]("parameter", nv,
			"declaration is not among the callable's parameters")
	}

	return validate.Valid[Parameter]("parameter", &parameter{cursor: c, decl: vd, nv: nv})
}

func containsDeclaration(params []*ast.VariableDeclarations, vd *ast.VariableDeclarations) bool {
	for _, p := range params {
		if p == vd {
			return true
		}
	}
	return false
}

type parameter struct {
	cursor *ast.Cursor
	decl   *ast.VariableDeclarations
	nv     *ast.NamedVariable
}

func (p *parameter) ID() uuid.UUID       { return p.nv.Id }
func (p *parameter) Name() string        { return p.nv.Name.Value }
func (p *parameter) Cursor() *ast.Cursor { return p.cursor }

func (p *parameter) Variable() *jtype.Variable { return p.nv.VariableType }

func (p *parameter) Type() jtype.Type {
	if p.nv.VariableType != nil {
		return p.nv.VariableType.Type
	}
	t := p.decl.TypeExpr.Type()
	for i := 0; i < p.nv.Dims; i++ {
		t = &jtype.Array{Elem: t}
	}
	if p.decl.Varargs {
		t = &jtype.Array{Elem: t}
	}
	return t
}

// OwningCallable re-derives the callable from the ancestor chain rather
// than holding a back-reference, so parameter and callable views never
// form an ownership cycle.
func (p *parameter) OwningCallable() Callable {
	return CallableOf(p.cursor.Parent().Parent()).MustValue()
}

func (p *parameter) Position() int {
	for i, other := range p.OwningCallable().Parameters() {
		if Equals(p, other) {
			return i
		}
	}
	panic(fmt.Sprintf("parameter %s not found in its owning callable", p.Name()))
}

func (p *parameter) IsVarArgs() bool {
	if p.nv.VariableType == nil {
		panic(fmt.Sprintf("parameter %s has no attributed variable type", p.Name()))
	}
	return p.nv.VariableType.HasFlags(jtype.FlagVarargs)
}
