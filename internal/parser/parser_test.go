package parser_test

import (
	"strings"
	"testing"

	"github.com/treewright/treewright/internal/ast"
	"github.com/treewright/treewright/internal/jtype"
	"github.com/treewright/treewright/internal/lexer"
	"github.com/treewright/treewright/internal/parser"
	"github.com/treewright/treewright/internal/pipeline"
)

// parseUnit runs lexer and parser over input and fails on diagnostics.
func parseUnit(t *testing.T, input string) *ast.CompilationUnit {
	t.Helper()
	ctx := &pipeline.PipelineContext{FilePath: "test.java", SourceCode: input}
	ctx = (&lexer.Processor{}).Process(ctx)
	ctx = (&parser.Processor{}).Process(ctx)
	if len(ctx.Errors) > 0 {
		var msgs []string
		for _, err := range ctx.Errors {
			msgs = append(msgs, err.Error())
		}
		t.Fatalf("parsing failed:\n%s\ninput: %s", strings.Join(msgs, "\n"), input)
	}
	unit, ok := ctx.AstRoot.(*ast.CompilationUnit)
	if !ok {
		t.Fatalf("expected compilation unit, got %T", ctx.AstRoot)
	}
	return unit
}

// parseStatements wraps body statements in a class method and returns
// them parsed.
func parseStatements(t *testing.T, body string) []ast.Statement {
	t.Helper()
	unit := parseUnit(t, "class T { void m() {\n"+body+"\n} }")
	md := firstMethod(t, unit)
	return md.Body.Statements
}

func firstClass(t *testing.T, unit *ast.CompilationUnit) *ast.ClassDeclaration {
	t.Helper()
	if len(unit.Classes) == 0 {
		t.Fatal("expected at least one class")
	}
	return unit.Classes[0]
}

func firstMethod(t *testing.T, unit *ast.CompilationUnit) *ast.MethodDeclaration {
	t.Helper()
	for _, stmt := range firstClass(t, unit).Body.Statements {
		if md, ok := stmt.(*ast.MethodDeclaration); ok {
			return md
		}
	}
	t.Fatal("expected a method declaration")
	return nil
}

func TestClassWithFieldAndMethod(t *testing.T) {
	unit := parseUnit(t, `
public class Point {
    private int x;
    private int y = 1;

    public int getX() {
        return x;
    }
}`)
	cd := firstClass(t, unit)
	if cd.Name.Value != "Point" {
		t.Fatalf("expected class Point, got %s", cd.Name.Value)
	}
	if !cd.Modifiers.Has(jtype.FlagPublic) {
		t.Fatal("expected public class")
	}
	if cd.Kind != ast.ClassKindClass {
		t.Fatalf("expected plain class, got kind %d", cd.Kind)
	}

	var fields []*ast.VariableDeclarations
	for _, stmt := range cd.Body.Statements {
		if vd, ok := stmt.(*ast.VariableDeclarations); ok {
			fields = append(fields, vd)
		}
	}
	if len(fields) != 2 {
		t.Fatalf("expected 2 field declarations, got %d", len(fields))
	}
	if !fields[0].Modifiers.Has(jtype.FlagPrivate) {
		t.Fatal("expected private field")
	}
	if fields[1].Variables[0].Initializer == nil {
		t.Fatal("expected initializer on y")
	}

	md := firstMethod(t, unit)
	if md.Name.Value != "getX" || md.ReturnTypeExpr.Name != "int" {
		t.Fatalf("unexpected method %s %s", md.ReturnTypeExpr, md.Name.Value)
	}
	if md.IsConstructor {
		t.Fatal("getX is not a constructor")
	}
}

func TestConstructor(t *testing.T) {
	unit := parseUnit(t, `
class Point {
    Point(int x) {
        this.x = x;
    }
}`)
	md := firstMethod(t, unit)
	if !md.IsConstructor {
		t.Fatal("expected a constructor")
	}
	if md.ReturnTypeExpr != nil {
		t.Fatal("constructors carry no return type expression")
	}
	if len(md.Params) != 1 {
		t.Fatalf("expected 1 parameter, got %d", len(md.Params))
	}
}

func TestVarargsParameter(t *testing.T) {
	unit := parseUnit(t, `class T { void log(String fmt, int... values) {} }`)
	md := firstMethod(t, unit)
	if len(md.Params) != 2 {
		t.Fatalf("expected 2 parameters, got %d", len(md.Params))
	}
	if md.Params[0].Varargs {
		t.Fatal("fmt is not varargs")
	}
	if !md.Params[1].Varargs {
		t.Fatal("values should be varargs")
	}
	if md.Params[1].Variables[0].Name.Value != "values" {
		t.Fatalf("unexpected parameter name %s", md.Params[1].Variables[0].Name.Value)
	}
}

func TestInitializerBlocks(t *testing.T) {
	unit := parseUnit(t, `
class T {
    static { counter = 0; }
    { instances++; }
}`)
	cd := firstClass(t, unit)
	var blocks []*ast.Block
	for _, stmt := range cd.Body.Statements {
		if b, ok := stmt.(*ast.Block); ok {
			blocks = append(blocks, b)
		}
	}
	if len(blocks) != 2 {
		t.Fatalf("expected 2 initializer blocks, got %d", len(blocks))
	}
	if !blocks[0].Static || blocks[1].Static {
		t.Fatal("expected one static and one instance block in order")
	}
}

func TestEnumDeclaration(t *testing.T) {
	unit := parseUnit(t, `
enum Direction {
    NORTH, SOUTH(1), EAST, WEST;

    int weight;
}`)
	cd := firstClass(t, unit)
	if cd.Kind != ast.ClassKindEnum {
		t.Fatal("expected an enum")
	}
	set, ok := cd.Body.Statements[0].(*ast.EnumValueSet)
	if !ok {
		t.Fatalf("expected enum value set first, got %T", cd.Body.Statements[0])
	}
	if len(set.Values) != 4 {
		t.Fatalf("expected 4 constants, got %d", len(set.Values))
	}
	if set.Values[0].Initializer != nil {
		t.Fatal("NORTH has no constructor arguments")
	}
	nc, ok := set.Values[1].Initializer.(*ast.NewClass)
	if !ok {
		t.Fatalf("expected NewClass initializer on SOUTH, got %T", set.Values[1].Initializer)
	}
	if nc.TypeExpr.Name != "Direction" || len(nc.Arguments) != 1 {
		t.Fatalf("unexpected SOUTH initializer %s(%d args)", nc.TypeExpr.Name, len(nc.Arguments))
	}
}

func TestAnnotations(t *testing.T) {
	unit := parseUnit(t, `
class T {
    @Override
    @Deprecated("since 2")
    void m() {}
}`)
	md := firstMethod(t, unit)
	if len(md.Annotations) != 2 {
		t.Fatalf("expected 2 annotations, got %d", len(md.Annotations))
	}
	if md.Annotations[0].Name.Value != "Override" || len(md.Annotations[0].Arguments) != 0 {
		t.Fatal("expected marker @Override first")
	}
	if md.Annotations[1].Name.Value != "Deprecated" || len(md.Annotations[1].Arguments) != 1 {
		t.Fatal("expected @Deprecated with one argument")
	}
}

func TestOperatorPrecedence(t *testing.T) {
	stmts := parseStatements(t, "r = a + b * c;")
	assign := stmts[0].(*ast.Assignment)
	sum, ok := assign.Value.(*ast.Binary)
	if !ok || sum.Operator != "+" {
		t.Fatalf("expected + at the top, got %T", assign.Value)
	}
	product, ok := sum.Right.(*ast.Binary)
	if !ok || product.Operator != "*" {
		t.Fatalf("expected * under +, got %T", sum.Right)
	}
}

func TestAssignmentRightAssociative(t *testing.T) {
	stmts := parseStatements(t, "a = b = c;")
	outer := stmts[0].(*ast.Assignment)
	if _, ok := outer.Variable.(*ast.Identifier); !ok {
		t.Fatalf("expected identifier target, got %T", outer.Variable)
	}
	inner, ok := outer.Value.(*ast.Assignment)
	if !ok {
		t.Fatalf("expected nested assignment on the right, got %T", outer.Value)
	}
	if inner.Variable.(*ast.Identifier).Value != "b" {
		t.Fatal("expected b = c nested")
	}
}

func TestCompoundAssignmentOperator(t *testing.T) {
	stmts := parseStatements(t, "x += 2;")
	op, ok := stmts[0].(*ast.AssignmentOperation)
	if !ok {
		t.Fatalf("expected assignment operation, got %T", stmts[0])
	}
	if op.Operator != "+" {
		t.Fatalf("expected operator +, got %q", op.Operator)
	}
}

func TestCastVersusParentheses(t *testing.T) {
	stmts := parseStatements(t, "a = (int) b;\nc = (b) + d;\ne = (Foo) f;")

	if _, ok := stmts[0].(*ast.Assignment).Value.(*ast.TypeCast); !ok {
		t.Fatalf("(int) b should parse as a cast, got %T", stmts[0].(*ast.Assignment).Value)
	}
	if bin, ok := stmts[1].(*ast.Assignment).Value.(*ast.Binary); !ok || bin.Operator != "+" {
		t.Fatalf("(b) + d should parse as addition, got %T", stmts[1].(*ast.Assignment).Value)
	}
	cast, ok := stmts[2].(*ast.Assignment).Value.(*ast.TypeCast)
	if !ok {
		t.Fatalf("(Foo) f should parse as a cast, got %T", stmts[2].(*ast.Assignment).Value)
	}
	if cast.TypeExpr.Name != "Foo" {
		t.Fatalf("unexpected cast type %s", cast.TypeExpr.Name)
	}
}

func TestTernaryNestsRight(t *testing.T) {
	stmts := parseStatements(t, "r = a ? b : c ? d : e;")
	tern := stmts[0].(*ast.Assignment).Value.(*ast.Ternary)
	if _, ok := tern.FalsePart.(*ast.Ternary); !ok {
		t.Fatalf("expected nested ternary in the else part, got %T", tern.FalsePart)
	}
}

func TestMethodInvocationForms(t *testing.T) {
	stmts := parseStatements(t, "run();\nthis.run(1, 2);\nobj.inner.run(x);")

	unqualified := stmts[0].(*ast.MethodInvocation)
	if unqualified.Target != nil || unqualified.Name.Value != "run" {
		t.Fatal("expected unqualified call run()")
	}

	qualified := stmts[1].(*ast.MethodInvocation)
	if id, ok := qualified.Target.(*ast.Identifier); !ok || id.Value != "this" {
		t.Fatalf("expected this target, got %T", qualified.Target)
	}
	if len(qualified.Arguments) != 2 {
		t.Fatalf("expected 2 arguments, got %d", len(qualified.Arguments))
	}

	chained := stmts[2].(*ast.MethodInvocation)
	if fa, ok := chained.Target.(*ast.FieldAccess); !ok || fa.Name.Value != "inner" {
		t.Fatalf("expected obj.inner target, got %T", chained.Target)
	}
}

func TestLocalDeclarationVersusExpression(t *testing.T) {
	stmts := parseStatements(t, "Foo x = make();\nfoo.bar(x);\nint[] grid = null;")

	decl, ok := stmts[0].(*ast.VariableDeclarations)
	if !ok {
		t.Fatalf("Foo x should be a declaration, got %T", stmts[0])
	}
	if decl.TypeExpr.Name != "Foo" || decl.Variables[0].Name.Value != "x" {
		t.Fatal("unexpected declaration shape")
	}

	if _, ok := stmts[1].(*ast.MethodInvocation); !ok {
		t.Fatalf("foo.bar(x) should stay an expression statement, got %T", stmts[1])
	}

	arr, ok := stmts[2].(*ast.VariableDeclarations)
	if !ok {
		t.Fatalf("int[] grid should be a declaration, got %T", stmts[2])
	}
	if arr.TypeExpr.Dims != 1 {
		t.Fatalf("expected one array dimension, got %d", arr.TypeExpr.Dims)
	}
}

func TestControlFlowStatements(t *testing.T) {
	stmts := parseStatements(t, `
if (a < b) { x = 1; } else x = 2;
while (a > 0) a--;
do { a++; } while (a < 10);
for (int i = 0; i < n; i++) total += i;
switch (k) {
case 1:
    x = 1;
    break;
default:
    x = 0;
}
return x;`)

	ifStmt := stmts[0].(*ast.If)
	if ifStmt.Else == nil {
		t.Fatal("expected else branch")
	}

	if _, ok := stmts[1].(*ast.WhileLoop); !ok {
		t.Fatalf("expected while, got %T", stmts[1])
	}
	if _, ok := stmts[2].(*ast.DoWhileLoop); !ok {
		t.Fatalf("expected do-while, got %T", stmts[2])
	}

	forLoop := stmts[3].(*ast.ForLoop)
	if _, ok := forLoop.Init.(*ast.VariableDeclarations); !ok {
		t.Fatalf("expected declaration init, got %T", forLoop.Init)
	}
	if forLoop.Condition == nil || len(forLoop.Update) != 1 {
		t.Fatal("expected condition and one update")
	}

	sw := stmts[4].(*ast.Switch)
	if len(sw.Cases) != 2 {
		t.Fatalf("expected 2 cases, got %d", len(sw.Cases))
	}
	if sw.Cases[0].Pattern == nil || sw.Cases[1].Pattern != nil {
		t.Fatal("expected case then default")
	}
	if len(sw.Cases[0].Statements) != 2 {
		t.Fatalf("expected 2 statements in case 1, got %d", len(sw.Cases[0].Statements))
	}

	ret := stmts[5].(*ast.Return)
	if ret.Expr == nil {
		t.Fatal("expected return value")
	}
}

func TestNewExpressions(t *testing.T) {
	stmts := parseStatements(t, "p = new Point(1, 2);\na = new int[3][];")

	nc := stmts[0].(*ast.Assignment).Value.(*ast.NewClass)
	if nc.TypeExpr.Name != "Point" || len(nc.Arguments) != 2 {
		t.Fatal("unexpected constructor call")
	}

	na := stmts[1].(*ast.Assignment).Value.(*ast.NewArray)
	if len(na.Dimensions) != 1 {
		t.Fatalf("expected 1 sized dimension, got %d", len(na.Dimensions))
	}
	if na.TypeExpr.Dims != 1 {
		t.Fatalf("expected 1 empty dimension on the type, got %d", na.TypeExpr.Dims)
	}
}

func TestArrayAccessChain(t *testing.T) {
	stmts := parseStatements(t, "m[i][j] = v;")
	assign := stmts[0].(*ast.Assignment)
	outer, ok := assign.Variable.(*ast.ArrayAccess)
	if !ok {
		t.Fatalf("expected array access target, got %T", assign.Variable)
	}
	if _, ok := outer.Indexed.(*ast.ArrayAccess); !ok {
		t.Fatalf("expected nested array access, got %T", outer.Indexed)
	}
}
