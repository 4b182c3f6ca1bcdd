package trait

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/treewright/treewright/internal/ast"
	"github.com/treewright/treewright/internal/config"
	"github.com/treewright/treewright/internal/jtype"
	"github.com/treewright/treewright/internal/validate"
)

// initializerMethod is the shared shape of the synthesized initializer
// callables. Both anchor on the class body block: the class has no
// declaration node for them. The static and instance variants are
// distinct view types, so Equals keeps them apart even though they
// share the block's id.
type initializerMethod struct {
	cursor *ast.Cursor
	body   *ast.Block
	name   string
}

func (im *initializerMethod) ID() uuid.UUID          { return im.body.Id }
func (im *initializerMethod) Name() string           { return im.name }
func (im *initializerMethod) ReturnType() jtype.Type { return jtype.Void }
func (im *initializerMethod) Parameters() []Parameter { return nil }
func (im *initializerMethod) Cursor() *ast.Cursor    { return im.cursor }

type staticInitializer struct{ initializerMethod }

type instanceInitializer struct{ initializerMethod }

// StaticInitializerOf builds the synthesized <clinit> callable for the
// class whose body block is at c. The cursor must sit on a class body:
// a block whose parent is the class declaration owning it.
func StaticInitializerOf(c *ast.Cursor) *validate.Validated[Callable] {
	body, err := classBodyAt(c)
	if err != nil {
		return validate.Invalid[Callable]("static initializer", cursorValue(c), err.Error())
	}
	return validate.Valid[Callable]("static initializer", &staticInitializer{initializerMethod{
		cursor: c,
		body:   body,
		name:   config.StaticInitializerName,
	}})
}

// InstanceInitializerOf builds the synthesized <obinit> callable for the
// class whose body block is at c.
func InstanceInitializerOf(c *ast.Cursor) *validate.Validated[Callable] {
	body, err := classBodyAt(c)
	if err != nil {
		return validate.Invalid[Callable]("instance initializer", cursorValue(c), err.Error())
	}
	return validate.Valid[Callable]("instance initializer", &instanceInitializer{initializerMethod{
		cursor: c,
		body:   body,
		name:   config.InstanceInitializerName,
	}})
}

// classBodyAt checks that c sits on the body block of a class
// declaration and returns the block.
func classBodyAt(c *ast.Cursor) (*ast.Block, error) {
	if c == nil || c.Value() == nil {
		return nil, fmt.Errorf("no node at cursor")
	}
	body, ok := c.Value().(*ast.Block)
	if !ok {
		return nil, fmt.Errorf("%T is not a class body", c.Value())
	}
	parent := c.Parent()
	if parent == nil {
		return nil, fmt.Errorf("block has no enclosing class")
	}
	cd, ok := parent.Value().(*ast.ClassDeclaration)
	if !ok || cd.Body != body {
		return nil, fmt.Errorf("block is not the body of its enclosing class")
	}
	return body, nil
}

func cursorValue(c *ast.Cursor) any {
	if c == nil {
		return nil
	}
	return c.Value()
}
