package analysis_test

import (
	"testing"

	"github.com/treewright/treewright/internal/ast"
	"github.com/treewright/treewright/pkg/analysis"
)

const src = `
class Counter {
    int count;

    Counter(int start) {
        this.count = start;
    }

    void add(int delta) {
        count += delta;
    }
}`

func TestParseAndQuery(t *testing.T) {
	res := analysis.Parse("Counter.java", src)
	if !res.Ok() {
		t.Fatalf("unexpected diagnostics: %v", res.Errors)
	}
	if res.Unit == nil || len(res.Unit.Classes) != 1 {
		t.Fatal("expected one class")
	}

	var add *ast.MethodDeclaration
	for _, stmt := range res.Unit.Classes[0].Body.Statements {
		if md, ok := stmt.(*ast.MethodDeclaration); ok && md.Name.Value == "add" {
			add = md
		}
	}
	if add == nil {
		t.Fatal("method add not found")
	}

	callable := analysis.CallableOf(analysis.CursorAt(res.Unit, add)).MustValue()
	params := callable.Parameters()
	if len(params) != 1 || params[0].Name() != "delta" {
		t.Fatalf("unexpected parameters %v", params)
	}

	delta := analysis.VariableNamed(res.Unit, "delta")
	count := analysis.VariableNamed(res.Unit, "count")
	if delta == nil || count == nil {
		t.Fatal("bindings not attributed")
	}

	body := add.Body.Statements[0]
	if !analysis.Reads(body, delta) {
		t.Fatal("count += delta reads delta")
	}
	if !analysis.Reads(body, count) {
		t.Fatal("count += delta reads count too")
	}

	ctorBody := func() ast.Statement {
		for _, stmt := range res.Unit.Classes[0].Body.Statements {
			if md, ok := stmt.(*ast.MethodDeclaration); ok && md.IsConstructor {
				return md.Body.Statements[0]
			}
		}
		return nil
	}()
	if analysis.Reads(ctorBody, count) {
		t.Fatal("this.count = start writes count without reading it")
	}
}

func TestParseReportsErrors(t *testing.T) {
	res := analysis.Parse("Bad.java", `class T { void m() { x = } }`)
	if res.Ok() {
		t.Fatal("expected diagnostics")
	}
	if res.Unit == nil {
		t.Fatal("a broken file still yields a unit")
	}
}

func TestIsSourceFile(t *testing.T) {
	if !analysis.IsSourceFile("Point.java") {
		t.Fatal("expected .java to qualify")
	}
	if analysis.IsSourceFile("point.go") {
		t.Fatal(".go is not a source file here")
	}
}
