package ast_test

import (
	"testing"

	"github.com/treewright/treewright/internal/ast"
	"github.com/treewright/treewright/internal/token"
)

// tinyTree builds class C { void m() { x = 1; } } by hand.
func tinyTree() (*ast.CompilationUnit, *ast.Identifier) {
	target := &ast.Identifier{Id: ast.NewID(), Value: "x"}
	assign := &ast.Assignment{
		Id:       ast.NewID(),
		Variable: target,
		Value:    &ast.Literal{Id: ast.NewID(), Kind: ast.LiteralInt, Value: int64(1)},
	}
	method := &ast.MethodDeclaration{
		Id:   ast.NewID(),
		Name: &ast.Identifier{Id: ast.NewID(), Value: "m"},
		Body: &ast.Block{Id: ast.NewID(), Statements: []ast.Statement{assign}},
	}
	class := &ast.ClassDeclaration{
		Id:   ast.NewID(),
		Name: &ast.Identifier{Id: ast.NewID(), Value: "C"},
		Body: &ast.Block{Id: ast.NewID(), Statements: []ast.Statement{method}},
	}
	unit := &ast.CompilationUnit{Id: ast.NewID(), Classes: []*ast.ClassDeclaration{class}}
	return unit, target
}

func TestCursorAtFindsByIdentity(t *testing.T) {
	unit, target := tinyTree()

	c := ast.CursorAt(unit, target)
	if c == nil {
		t.Fatal("target not found")
	}
	if c.Value() != ast.Node(target) {
		t.Fatal("cursor must point at the target node")
	}

	// Chain: identifier <- assignment <- block <- method <- body <- class <- unit.
	path := c.Path()
	if len(path) != 7 {
		t.Fatalf("expected chain of 7, got %d", len(path))
	}
	if path[len(path)-1] != ast.Node(unit) {
		t.Fatal("chain must end at the root")
	}
}

func TestCursorAtMissesForeignNodes(t *testing.T) {
	unit, _ := tinyTree()
	foreign := &ast.Identifier{Id: ast.NewID(), Value: "x"}

	if c := ast.CursorAt(unit, foreign); c != nil {
		t.Fatal("a node outside the tree must not be found")
	}
	if c := ast.CursorAt(nil, foreign); c != nil {
		t.Fatal("nil root finds nothing")
	}
	if c := ast.CursorAt(unit, nil); c != nil {
		t.Fatal("nil target finds nothing")
	}
}

func TestFirstEnclosing(t *testing.T) {
	unit, target := tinyTree()
	c := ast.CursorAt(unit, target)

	enclosing := c.FirstEnclosing(func(n ast.Node) bool {
		_, ok := n.(*ast.MethodDeclaration)
		return ok
	})
	if enclosing == nil {
		t.Fatal("expected to find the enclosing method")
	}
	if _, ok := enclosing.Value().(*ast.MethodDeclaration); !ok {
		t.Fatalf("expected method declaration, got %T", enclosing.Value())
	}

	none := c.FirstEnclosing(func(n ast.Node) bool {
		_, ok := n.(*ast.ForLoop)
		return ok
	})
	if none != nil {
		t.Fatal("no for loop encloses the target")
	}
}

func TestNodeIdentityIsStable(t *testing.T) {
	unit, target := tinyTree()
	if target.ID() != target.ID() {
		t.Fatal("a node's id must not change")
	}
	other := &ast.Identifier{Id: ast.NewID(), Token: token.Token{}, Value: "x"}
	if target.ID() == other.ID() {
		t.Fatal("distinct nodes must get distinct ids")
	}
	_ = unit
}
