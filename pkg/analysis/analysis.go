// Package analysis is the public surface of the engine: parse a source
// file, take trait views over its tree, and ask read-effect questions.
//
//	res := analysis.Parse("Point.java", src)
//	cursor := analysis.CursorAt(res.Unit, someNode)
//	callable := analysis.CallableOf(cursor).MustValue()
package analysis

import (
	"strings"

	"github.com/treewright/treewright/internal/analyzer"
	"github.com/treewright/treewright/internal/ast"
	"github.com/treewright/treewright/internal/config"
	"github.com/treewright/treewright/internal/diagnostics"
	"github.com/treewright/treewright/internal/effects"
	"github.com/treewright/treewright/internal/jtype"
	"github.com/treewright/treewright/internal/lexer"
	"github.com/treewright/treewright/internal/parser"
	"github.com/treewright/treewright/internal/pipeline"
	"github.com/treewright/treewright/internal/trait"
	"github.com/treewright/treewright/internal/validate"
)

// Re-exported view and analysis types, so most callers only import this
// package.
type (
	Cursor    = ast.Cursor
	Element   = trait.Element
	Callable  = trait.Callable
	Parameter = trait.Parameter
	Variable  = jtype.Variable
	Side      = effects.Side
)

const (
	RValue = effects.RValue
	LValue = effects.LValue
)

// Result is the outcome of parsing and attributing one source file.
type Result struct {
	Unit   *ast.CompilationUnit
	Errors []*diagnostics.DiagnosticError
}

// Ok reports whether the run produced no diagnostics.
func (r *Result) Ok() bool { return len(r.Errors) == 0 }

// Parse runs the full pipeline (lexing, parsing, attribution) over one
// source file. The returned tree is attributed and immutable; a tree
// with diagnostics is still returned as far as it was built.
func Parse(filePath, source string) *Result {
	ctx := pipeline.New(
		&lexer.Processor{},
		&parser.Processor{},
		&analyzer.Processor{},
	).Run(&pipeline.PipelineContext{
		FilePath:   filePath,
		SourceCode: source,
	})

	res := &Result{Errors: ctx.Errors}
	if unit, ok := ctx.AstRoot.(*ast.CompilationUnit); ok {
		res.Unit = unit
	}
	return res
}

// IsSourceFile reports whether path has a recognized source extension.
func IsSourceFile(path string) bool {
	for _, ext := range config.SourceFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// CursorAt locates target inside root by node identity.
func CursorAt(root ast.Node, target ast.Node) *Cursor {
	return ast.CursorAt(root, target)
}

// CallableOf builds a Callable view over a method or constructor
// declaration cursor.
func CallableOf(c *Cursor) *validate.Validated[Callable] {
	return trait.CallableOf(c)
}

// StaticInitializerOf builds the synthesized static initializer of the
// class whose body block is at c.
func StaticInitializerOf(c *Cursor) *validate.Validated[Callable] {
	return trait.StaticInitializerOf(c)
}

// InstanceInitializerOf builds the synthesized instance initializer of
// the class whose body block is at c.
func InstanceInitializerOf(c *Cursor) *validate.Validated[Callable] {
	return trait.InstanceInitializerOf(c)
}

// ParameterOf builds a Parameter view over a named variable cursor.
func ParameterOf(c *Cursor) *validate.Validated[Parameter] {
	return trait.ParameterOf(c)
}

// Equals compares two trait views by kind and node identity.
func Equals(a, b Element) bool { return trait.Equals(a, b) }

// Reads reports whether evaluating n reads the value of v.
func Reads(n ast.Node, v *Variable) bool { return effects.Reads(n, v) }

// ReadsOnSide is Reads with an explicit side for the queried position.
func ReadsOnSide(n ast.Node, v *Variable, side Side) bool {
	return effects.ReadsOnSide(n, v, side)
}

// VariableNamed finds the attributed binding declared under root with
// the given name, searching declarations in source order. It returns
// nil when no declaration with that name was attributed.
func VariableNamed(root ast.Node, name string) *Variable {
	var found *Variable
	var walk func(n ast.Node)
	walk = func(n ast.Node) {
		if found != nil {
			return
		}
		if nv, ok := n.(*ast.NamedVariable); ok {
			if nv.VariableType != nil && nv.VariableType.Name == name {
				found = nv.VariableType
				return
			}
		}
		for _, c := range ast.Children(n) {
			walk(c)
		}
	}
	if root != nil {
		walk(root)
	}
	return found
}
