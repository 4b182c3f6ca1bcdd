// Package analyzer is the attribution pass: it resolves names against
// the scope structure of the tree and attaches *jtype.Variable bindings
// to declarations and references. Attribution is best-effort: a name
// that cannot be resolved keeps a nil binding, only duplicate
// declarations are reported.
package analyzer

import (
	"fmt"

	"github.com/treewright/treewright/internal/ast"
	"github.com/treewright/treewright/internal/diagnostics"
	"github.com/treewright/treewright/internal/jtype"
	"github.com/treewright/treewright/internal/pipeline"
	"github.com/treewright/treewright/internal/symbols"
	"github.com/treewright/treewright/internal/token"
)

// Processor is the attribution pipeline stage.
type Processor struct{}

func (ap *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	unit, ok := ctx.AstRoot.(*ast.CompilationUnit)
	if !ok || unit == nil {
		return ctx
	}
	for _, cd := range unit.Classes {
		attributeClass(cd, ctx)
	}
	return ctx
}

func attributeClass(cd *ast.ClassDeclaration, ctx *pipeline.PipelineContext) {
	if cd.Name == nil || cd.Body == nil {
		return
	}
	w := &walker{
		ctx:   ctx,
		class: &jtype.Class{Name: cd.Name.Value},
		table: symbols.NewSymbolTable(symbols.ScopeClass),
	}

	// Fields and enum constants are visible to every member regardless
	// of declaration order, so they are bound before any body is walked.
	for _, stmt := range cd.Body.Statements {
		switch m := stmt.(type) {
		case *ast.VariableDeclarations:
			w.declareFields(m)
		case *ast.EnumValueSet:
			w.declareEnumValues(m)
		}
	}

	for _, stmt := range cd.Body.Statements {
		switch m := stmt.(type) {
		case *ast.MethodDeclaration:
			w.attributeCallable(m)
		case *ast.VariableDeclarations:
			for _, nv := range m.Variables {
				if nv.Initializer != nil {
					nv.Initializer.Accept(w)
				}
			}
		case *ast.EnumValueSet:
			for _, ev := range m.Values {
				if ev.Initializer != nil {
					ev.Initializer.Accept(w)
				}
			}
		case *ast.Block:
			w.inScope(symbols.ScopeMethod, func() {
				m.Accept(w)
			})
		}
	}
}

// walker resolves names while descending one class body. It implements
// ast.Visitor; scope handling lives in the declaration and block visits.
type walker struct {
	ctx   *pipeline.PipelineContext
	class *jtype.Class
	table *symbols.SymbolTable
}

func (w *walker) errorAt(tok token.Token, msg string) {
	err := diagnostics.NewError(diagnostics.ErrA001, tok, msg)
	err.File = w.ctx.FilePath
	w.ctx.Errors = append(w.ctx.Errors, err)
}

func (w *walker) inScope(st symbols.ScopeType, fn func()) {
	w.table = symbols.NewEnclosedSymbolTable(w.table, st)
	fn()
	w.table = w.table.Outer()
}

// declaredType resolves the type a named variable gets from its
// declaration: the spelled type plus trailing dims on the name, plus
// one array dimension for a varargs parameter.
func declaredType(vd *ast.VariableDeclarations, nv *ast.NamedVariable) jtype.Type {
	if vd.TypeExpr == nil {
		return nil
	}
	t := vd.TypeExpr.Type()
	for i := 0; i < nv.Dims; i++ {
		t = &jtype.Array{Elem: t}
	}
	if vd.Varargs {
		t = &jtype.Array{Elem: t}
	}
	return t
}

func (w *walker) declareFields(vd *ast.VariableDeclarations) {
	for _, nv := range vd.Variables {
		v := &jtype.Variable{
			Name:  nv.Name.Value,
			Owner: w.class,
			Type:  declaredType(vd, nv),
			Flags: vd.Modifiers,
		}
		if !w.table.Define(v.Name, v) {
			w.errorAt(nv.Token, fmt.Sprintf("duplicate field %s in class %s", v.Name, w.class.Name))
			continue
		}
		nv.VariableType = v
	}
}

func (w *walker) declareEnumValues(set *ast.EnumValueSet) {
	for _, ev := range set.Values {
		v := &jtype.Variable{
			Name:  ev.Name.Value,
			Owner: w.class,
			Type:  w.class,
			Flags: jtype.FlagPublic | jtype.FlagStatic | jtype.FlagFinal,
		}
		if !w.table.Define(v.Name, v) {
			w.errorAt(ev.Token, fmt.Sprintf("duplicate enum constant %s in %s", v.Name, w.class.Name))
		}
	}
}

// attributeCallable binds the parameters of a method or constructor and
// walks its body in a fresh method scope.
func (w *walker) attributeCallable(md *ast.MethodDeclaration) {
	w.inScope(symbols.ScopeMethod, func() {
		for _, vd := range md.Params {
			flags := vd.Modifiers
			if vd.Varargs {
				flags |= jtype.FlagVarargs
			}
			for _, nv := range vd.Variables {
				v := &jtype.Variable{
					Name:  nv.Name.Value,
					Owner: w.class,
					Type:  declaredType(vd, nv),
					Flags: flags,
				}
				if !w.table.Define(v.Name, v) {
					w.errorAt(nv.Token, fmt.Sprintf("duplicate parameter %s in %s", v.Name, md.Name.Value))
					continue
				}
				nv.VariableType = v
			}
		}
		if md.Body != nil {
			md.Body.Accept(w)
		}
	})
}

func (w *walker) VisitCompilationUnit(n *ast.CompilationUnit) {
	for _, cd := range n.Classes {
		attributeClass(cd, w.ctx)
	}
}

func (w *walker) VisitClassDeclaration(n *ast.ClassDeclaration) {
	attributeClass(n, w.ctx)
}

func (w *walker) VisitMethodDeclaration(n *ast.MethodDeclaration) {
	w.attributeCallable(n)
}

// VisitVariableDeclarations handles local declarations. The initializer
// is walked before the name is bound, so `int x = x;` does not resolve
// to itself.
func (w *walker) VisitVariableDeclarations(n *ast.VariableDeclarations) {
	for _, nv := range n.Variables {
		if nv.Initializer != nil {
			nv.Initializer.Accept(w)
		}
		v := &jtype.Variable{
			Name:  nv.Name.Value,
			Owner: w.class,
			Type:  declaredType(n, nv),
			Flags: n.Modifiers,
		}
		if !w.table.Define(v.Name, v) {
			w.errorAt(nv.Token, fmt.Sprintf("duplicate local variable %s", v.Name))
			continue
		}
		nv.VariableType = v
	}
}

func (w *walker) VisitNamedVariable(n *ast.NamedVariable) {
	if n.Initializer != nil {
		n.Initializer.Accept(w)
	}
}

func (w *walker) VisitEnumValueSet(n *ast.EnumValueSet) {
	for _, ev := range n.Values {
		ev.Accept(w)
	}
}

func (w *walker) VisitEnumValue(n *ast.EnumValue) {
	if n.Initializer != nil {
		n.Initializer.Accept(w)
	}
}

// Annotation names are not variable references.
func (w *walker) VisitAnnotation(n *ast.Annotation) {
	for _, a := range n.Arguments {
		a.Accept(w)
	}
}

func (w *walker) VisitBlock(n *ast.Block) {
	w.inScope(symbols.ScopeBlock, func() {
		for _, s := range n.Statements {
			s.Accept(w)
		}
	})
}

func (w *walker) VisitIf(n *ast.If) {
	n.Condition.Accept(w)
	n.Then.Accept(w)
	if n.Else != nil {
		n.Else.Accept(w)
	}
}

func (w *walker) VisitWhileLoop(n *ast.WhileLoop) {
	n.Condition.Accept(w)
	n.Body.Accept(w)
}

func (w *walker) VisitDoWhileLoop(n *ast.DoWhileLoop) {
	n.Body.Accept(w)
	n.Condition.Accept(w)
}

// VisitForLoop opens a scope around the whole loop so an init
// declaration stays visible in the condition, updates and body.
func (w *walker) VisitForLoop(n *ast.ForLoop) {
	w.inScope(symbols.ScopeBlock, func() {
		if n.Init != nil {
			n.Init.Accept(w)
		}
		if n.Condition != nil {
			n.Condition.Accept(w)
		}
		for _, u := range n.Update {
			u.Accept(w)
		}
		n.Body.Accept(w)
	})
}

func (w *walker) VisitSwitch(n *ast.Switch) {
	n.Selector.Accept(w)
	for _, c := range n.Cases {
		c.Accept(w)
	}
}

func (w *walker) VisitCase(n *ast.Case) {
	if n.Pattern != nil {
		n.Pattern.Accept(w)
	}
	for _, s := range n.Statements {
		s.Accept(w)
	}
}

func (w *walker) VisitBreak(n *ast.Break)       {}
func (w *walker) VisitContinue(n *ast.Continue) {}
func (w *walker) VisitEmpty(n *ast.Empty)       {}
func (w *walker) VisitLiteral(n *ast.Literal)   {}

func (w *walker) VisitReturn(n *ast.Return) {
	if n.Expr != nil {
		n.Expr.Accept(w)
	}
}

func (w *walker) VisitIdentifier(n *ast.Identifier) {
	if n.Value == "this" {
		return
	}
	if v, ok := w.table.Resolve(n.Value); ok {
		n.FieldType = v
	}
}

// VisitFieldAccess binds `this.f` to the field of the current class;
// other targets stay unbound because the type of the target is unknown
// without full type checking.
func (w *walker) VisitFieldAccess(n *ast.FieldAccess) {
	n.Target.Accept(w)
	if id, ok := n.Target.(*ast.Identifier); ok && id.Value == "this" {
		if v, ok := w.table.ResolveField(n.Name.Value); ok {
			n.FieldType = v
		}
	}
}

func (w *walker) VisitArrayAccess(n *ast.ArrayAccess) {
	n.Indexed.Accept(w)
	n.Index.Accept(w)
}

// VisitMethodInvocation skips the method name: it names a method, not a
// variable.
func (w *walker) VisitMethodInvocation(n *ast.MethodInvocation) {
	if n.Target != nil {
		n.Target.Accept(w)
	}
	for _, a := range n.Arguments {
		a.Accept(w)
	}
}

func (w *walker) VisitAssignment(n *ast.Assignment) {
	n.Variable.Accept(w)
	n.Value.Accept(w)
}

func (w *walker) VisitAssignmentOperation(n *ast.AssignmentOperation) {
	n.Variable.Accept(w)
	n.Value.Accept(w)
}

func (w *walker) VisitUnary(n *ast.Unary) {
	n.Expr.Accept(w)
}

func (w *walker) VisitBinary(n *ast.Binary) {
	n.Left.Accept(w)
	n.Right.Accept(w)
}

func (w *walker) VisitTernary(n *ast.Ternary) {
	n.Condition.Accept(w)
	n.TruePart.Accept(w)
	n.FalsePart.Accept(w)
}

func (w *walker) VisitTypeCast(n *ast.TypeCast) {
	n.Expr.Accept(w)
}

func (w *walker) VisitParentheses(n *ast.Parentheses) {
	n.Expr.Accept(w)
}

func (w *walker) VisitNewClass(n *ast.NewClass) {
	for _, a := range n.Arguments {
		a.Accept(w)
	}
}

func (w *walker) VisitNewArray(n *ast.NewArray) {
	for _, d := range n.Dimensions {
		d.Accept(w)
	}
}
