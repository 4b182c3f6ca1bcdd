package effects_test

import (
	"strings"
	"testing"

	"github.com/treewright/treewright/internal/analyzer"
	"github.com/treewright/treewright/internal/ast"
	"github.com/treewright/treewright/internal/effects"
	"github.com/treewright/treewright/internal/jtype"
	"github.com/treewright/treewright/internal/lexer"
	"github.com/treewright/treewright/internal/parser"
	"github.com/treewright/treewright/internal/pipeline"
)

// harness parses a method body and exposes its bindings and statements.
type harness struct {
	t     *testing.T
	unit  *ast.CompilationUnit
	stmts []ast.Statement
}

// newHarness wraps body in a method whose parameters make the usual
// suspects available: an array a, indexes i and j, values v and y, an
// object o with field f (declared on the class), and a scalar x.
func newHarness(t *testing.T, body string) *harness {
	t.Helper()
	src := `
class H {
    int f;
    H o;
    void m(int[] a, int i, int j, int v, int x, int y) {
` + body + `
    }
}`
	ctx := pipeline.New(
		&lexer.Processor{},
		&parser.Processor{},
		&analyzer.Processor{},
	).Run(&pipeline.PipelineContext{FilePath: "test.java", SourceCode: src})
	if len(ctx.Errors) > 0 {
		var msgs []string
		for _, e := range ctx.Errors {
			msgs = append(msgs, e.Error())
		}
		t.Fatalf("unexpected diagnostics:\n%s", strings.Join(msgs, "\n"))
	}
	unit := ctx.AstRoot.(*ast.CompilationUnit)
	var md *ast.MethodDeclaration
	for _, stmt := range unit.Classes[0].Body.Statements {
		if m, ok := stmt.(*ast.MethodDeclaration); ok {
			md = m
		}
	}
	return &harness{t: t, unit: unit, stmts: md.Body.Statements}
}

// binding finds the attributed variable declared under the unit.
func (h *harness) binding(name string) *jtype.Variable {
	h.t.Helper()
	var found *jtype.Variable
	var walk func(n ast.Node)
	walk = func(n ast.Node) {
		if nv, ok := n.(*ast.NamedVariable); ok && nv.VariableType != nil && nv.VariableType.Name == name {
			found = nv.VariableType
		}
		for _, c := range ast.Children(n) {
			walk(c)
		}
	}
	walk(h.unit)
	if found == nil {
		h.t.Fatalf("no attributed binding named %s", name)
	}
	return found
}

// expr returns the expression of statement index idx.
func (h *harness) expr(idx int) ast.Expression {
	h.t.Helper()
	e, ok := h.stmts[idx].(ast.Expression)
	if !ok {
		h.t.Fatalf("statement %d is %T, not an expression", idx, h.stmts[idx])
	}
	return e
}

func TestSimpleAssignmentDoesNotReadTarget(t *testing.T) {
	h := newHarness(t, "x = y;")
	e := h.expr(0)

	if effects.Reads(e, h.binding("x")) {
		t.Fatal("x = y must not read x")
	}
	if !effects.Reads(e, h.binding("y")) {
		t.Fatal("x = y must read y")
	}
}

func TestArrayStoreReadsEverything(t *testing.T) {
	h := newHarness(t, "a[i] = v;")
	e := h.expr(0)

	for _, name := range []string{"a", "i", "v"} {
		if !effects.Reads(e, h.binding(name)) {
			t.Fatalf("a[i] = v must read %s", name)
		}
	}
}

func TestFieldStoreReadsTargetOnly(t *testing.T) {
	h := newHarness(t, "o.f = 1;")
	e := h.expr(0)

	if !effects.Reads(e, h.binding("o")) {
		t.Fatal("o.f = 1 must read o")
	}
	if effects.Reads(e, h.binding("f")) {
		t.Fatal("o.f = 1 must not read f")
	}
}

func TestThisFieldStoreDoesNotReadField(t *testing.T) {
	h := newHarness(t, "this.f = v;\nx = this.f;")

	if effects.Reads(h.expr(0), h.binding("f")) {
		t.Fatal("this.f = v must not read f")
	}
	if !effects.Reads(h.expr(1), h.binding("f")) {
		t.Fatal("x = this.f must read f")
	}
}

func TestCompoundAssignmentReadsTarget(t *testing.T) {
	h := newHarness(t, "x += y;")
	e := h.expr(0)

	if !effects.Reads(e, h.binding("x")) {
		t.Fatal("x += y reads x")
	}
	if !effects.Reads(e, h.binding("y")) {
		t.Fatal("x += y reads y")
	}
}

func TestIncrementReadsOperand(t *testing.T) {
	h := newHarness(t, "x++;\n--y;")
	if !effects.Reads(h.expr(0), h.binding("x")) {
		t.Fatal("x++ reads x")
	}
	if !effects.Reads(h.expr(1), h.binding("y")) {
		t.Fatal("--y reads y")
	}
}

func TestShadowedBindingsDoNotAlias(t *testing.T) {
	h := newHarness(t, "{ int s = x; s = 1; }\nint s = y;")

	// Two distinct bindings named s: the block local and the outer one.
	var bindings []*jtype.Variable
	var walk func(n ast.Node)
	walk = func(n ast.Node) {
		if nv, ok := n.(*ast.NamedVariable); ok && nv.VariableType != nil && nv.VariableType.Name == "s" {
			bindings = append(bindings, nv.VariableType)
		}
		for _, c := range ast.Children(n) {
			walk(c)
		}
	}
	walk(h.unit)
	if len(bindings) != 2 || bindings[0] == bindings[1] {
		t.Fatal("expected two distinct bindings named s")
	}

	block := h.stmts[0].(*ast.Block)
	inner := block.Statements[1].(*ast.Assignment)
	if effects.Reads(inner, bindings[0]) {
		t.Fatal("s = 1 does not read the inner s")
	}
	if effects.Reads(inner, bindings[1]) {
		t.Fatal("s = 1 never touches the outer s")
	}
}

func TestCallReadsTargetAndArguments(t *testing.T) {
	h := newHarness(t, "o.run(x);\nrun(y);")

	first := h.expr(0)
	if !effects.Reads(first, h.binding("o")) || !effects.Reads(first, h.binding("x")) {
		t.Fatal("o.run(x) reads o and x")
	}
	if effects.Reads(first, h.binding("y")) {
		t.Fatal("o.run(x) does not read y")
	}
	if !effects.Reads(h.expr(1), h.binding("y")) {
		t.Fatal("run(y) reads y")
	}
}

func TestCompositeExpressions(t *testing.T) {
	h := newHarness(t, `
x = i < j ? v : y;
x = (int) v;
x = (v);
x = new int[i];
o = new H();
x = -v;
x = a[i] + a[j];`)

	cases := []struct {
		idx   int
		reads []string
	}{
		{0, []string{"i", "j", "v", "y"}},
		{1, []string{"v"}},
		{2, []string{"v"}},
		{3, []string{"i"}},
		{4, nil},
		{5, []string{"v"}},
		{6, []string{"a", "i", "j"}},
	}
	for _, tc := range cases {
		e := h.expr(tc.idx)
		for _, name := range tc.reads {
			if !effects.Reads(e, h.binding(name)) {
				t.Errorf("statement %d must read %s", tc.idx, name)
			}
		}
		if effects.Reads(e, h.binding("f")) {
			t.Errorf("statement %d must not read f", tc.idx)
		}
	}
}

func TestStatementsRecurse(t *testing.T) {
	h := newHarness(t, `
if (x > 0) { v = i; } else { v = j; }
while (y > 0) { y--; }
return;`)

	ifStmt := h.stmts[0]
	for _, name := range []string{"x", "i", "j"} {
		if !effects.Reads(ifStmt, h.binding(name)) {
			t.Fatalf("if statement must read %s", name)
		}
	}
	if !effects.Reads(h.stmts[1], h.binding("y")) {
		t.Fatal("while loop reads y")
	}
	if effects.Reads(h.stmts[2], h.binding("x")) {
		t.Fatal("bare return reads nothing")
	}
}

func TestLiteralsAndNilReadNothing(t *testing.T) {
	h := newHarness(t, "x = 1;")
	assign := h.expr(0).(*ast.Assignment)

	if effects.Reads(assign.Value, h.binding("x")) {
		t.Fatal("a literal reads nothing")
	}
	if effects.Reads(nil, h.binding("x")) {
		t.Fatal("nil node reads nothing")
	}
	if effects.Reads(assign, nil) {
		t.Fatal("nil binding is never read")
	}
}

func TestLValueQueryOnNonTargetPanics(t *testing.T) {
	h := newHarness(t, "x = y + v;")
	sum := h.expr(0).(*ast.Assignment).Value

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for lvalue query on a binary expression")
		}
	}()
	effects.ReadsOnSide(sum, h.binding("y"), effects.LValue)
}

func TestVariableSide(t *testing.T) {
	h := newHarness(t, "x = y;")
	assign := h.expr(0).(*ast.Assignment)

	target := effects.VariableSide{Variable: h.binding("x"), Side: effects.LValue}
	if target.Reads(assign.Variable) {
		t.Fatal("x on the lvalue side is not a read")
	}
	value := effects.VariableSide{Variable: h.binding("y"), Side: effects.RValue}
	if !value.Reads(assign) {
		t.Fatal("x = y reads y")
	}
}

func TestExplicitSides(t *testing.T) {
	h := newHarness(t, "x = y;")
	assign := h.expr(0).(*ast.Assignment)
	x := h.binding("x")

	if effects.ReadsOnSide(assign.Variable, x, effects.LValue) {
		t.Fatal("x as assignment target is not a read")
	}
	if !effects.ReadsOnSide(assign.Variable, x, effects.RValue) {
		t.Fatal("the same node queried as rvalue is a read")
	}
}
