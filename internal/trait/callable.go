package trait

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/treewright/treewright/internal/ast"
	"github.com/treewright/treewright/internal/jtype"
	"github.com/treewright/treewright/internal/validate"
)

// Callable is a view over something that can be invoked or run: a
// method, a constructor, or a synthesized initializer.
type Callable interface {
	Element
	// ReturnType is the resolved return type; callables without a
	// return-type expression (constructors, initializers) report void.
	ReturnType() jtype.Type
	// Parameters returns the formal parameters in declaration order.
	// Repeated calls return the same views.
	Parameters() []Parameter
	// Cursor is the tree position the view was built at.
	Cursor() *ast.Cursor
}

// CallableOf builds a Callable view over the node at c. Only method and
// constructor declarations qualify; anything else yields an invalid
// result. Initializer blocks have their own constructors,
// StaticInitializerOf and InstanceInitializerOf.
func CallableOf(c *ast.Cursor) *validate.Validated[Callable] {
	if c == nil || c.Value() == nil {
		return validate.Invalid[Callable]("callable", nil, "no node at cursor")
	}
	md, ok := c.Value().(*ast.MethodDeclaration)
	if !ok {
		return validate.Invalid[Callable]("callable", c.Value(),
			fmt.Sprintf("%T is not a method declaration", c.Value()))
	}
	return validate.Valid[Callable]("callable", &methodCallable{cursor: c, decl: md})
}

// methodCallable views a method or constructor declaration.
type methodCallable struct {
	cursor *ast.Cursor
	decl   *ast.MethodDeclaration

	once   sync.Once
	params []Parameter
}

func (m *methodCallable) ID() uuid.UUID      { return m.decl.Id }
func (m *methodCallable) Name() string       { return m.decl.Name.Value }
func (m *methodCallable) Cursor() *ast.Cursor { return m.cursor }

func (m *methodCallable) ReturnType() jtype.Type {
	if m.decl.ReturnTypeExpr == nil {
		return jtype.Void
	}
	return m.decl.ReturnTypeExpr.Type()
}

// Parameters materializes the parameter views once and reuses them, so
// positions observed by one caller agree with every other caller.
func (m *methodCallable) Parameters() []Parameter {
	m.once.Do(func() {
		for _, vd := range m.decl.Params {
			vdCursor := ast.NewCursor(m.cursor, vd)
			for _, nv := range vd.Variables {
				m.params = append(m.params, &parameter{
					cursor: ast.NewCursor(vdCursor, nv),
					decl:   vd,
					nv:     nv,
				})
			}
		}
	})
	return m.params
}
