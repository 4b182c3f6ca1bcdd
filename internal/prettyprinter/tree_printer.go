// Package prettyprinter renders a structural outline of a syntax tree,
// one node per line. Attributed references show the binding they
// resolved to, which makes the output a cheap fixture format for
// analysis tests and the main payload of the parse command.
package prettyprinter

import (
	"bytes"
	"fmt"

	"github.com/treewright/treewright/internal/ast"
)

type TreePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

// Print renders the tree rooted at n and returns the outline.
func (p *TreePrinter) Print(n ast.Node) string {
	p.buf.Reset()
	p.indent = 0
	p.printNode(n)
	return p.buf.String()
}

func (p *TreePrinter) line(format string, args ...any) {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString("  ")
	}
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteByte('\n')
}

func (p *TreePrinter) children(n ast.Node) {
	p.indent++
	for _, c := range ast.Children(n) {
		p.printNode(c)
	}
	p.indent--
}

func (p *TreePrinter) printNode(n ast.Node) {
	if n == nil {
		return
	}
	switch n := n.(type) {
	case *ast.CompilationUnit:
		p.line("CompilationUnit %s", n.File)
		p.children(n)
	case *ast.ClassDeclaration:
		kind := "class"
		if n.Kind == ast.ClassKindEnum {
			kind = "enum"
		}
		p.line("ClassDeclaration %s %s", kind, n.Name.Value)
		p.indent++
		if n.Body != nil {
			for _, s := range n.Body.Statements {
				p.printNode(s)
			}
		}
		p.indent--
	case *ast.MethodDeclaration:
		switch {
		case n.IsConstructor:
			p.line("ConstructorDeclaration %s", n.Name.Value)
		case n.ReturnTypeExpr != nil:
			p.line("MethodDeclaration %s %s", n.ReturnTypeExpr, n.Name.Value)
		default:
			p.line("MethodDeclaration %s", n.Name.Value)
		}
		p.indent++
		for _, vd := range n.Params {
			p.printNode(vd)
		}
		if n.Body != nil {
			p.printNode(n.Body)
		}
		p.indent--
	case *ast.VariableDeclarations:
		suffix := ""
		if n.Varargs {
			suffix = "..."
		}
		p.line("VariableDeclarations %s%s", n.TypeExpr, suffix)
		p.indent++
		for _, nv := range n.Variables {
			p.printNode(nv)
		}
		p.indent--
	case *ast.NamedVariable:
		if n.VariableType != nil {
			p.line("NamedVariable %s : %s", n.Name.Value, n.VariableType.Type)
		} else {
			p.line("NamedVariable %s", n.Name.Value)
		}
		if n.Initializer != nil {
			p.indent++
			p.printNode(n.Initializer)
			p.indent--
		}
	case *ast.EnumValueSet:
		p.line("EnumValues")
		p.children(n)
	case *ast.EnumValue:
		p.line("EnumValue %s", n.Name.Value)
		if n.Initializer != nil {
			p.indent++
			p.printNode(n.Initializer)
			p.indent--
		}
	case *ast.Annotation:
		p.line("Annotation @%s", n.Name.Value)
		p.indent++
		for _, a := range n.Arguments {
			p.printNode(a)
		}
		p.indent--
	case *ast.Block:
		if n.Static {
			p.line("Block static")
		} else {
			p.line("Block")
		}
		p.children(n)
	case *ast.If:
		p.line("If")
		p.children(n)
	case *ast.WhileLoop:
		p.line("While")
		p.children(n)
	case *ast.DoWhileLoop:
		p.line("DoWhile")
		p.children(n)
	case *ast.ForLoop:
		p.line("For")
		p.children(n)
	case *ast.Switch:
		p.line("Switch")
		p.children(n)
	case *ast.Case:
		if n.Pattern == nil {
			p.line("Default")
		} else {
			p.line("Case")
		}
		p.children(n)
	case *ast.Break:
		p.line("Break")
	case *ast.Continue:
		p.line("Continue")
	case *ast.Return:
		p.line("Return")
		p.children(n)
	case *ast.Empty:
		p.line("Empty")
	case *ast.Identifier:
		if n.FieldType != nil {
			p.line("Identifier %s -> %s", n.Value, n.FieldType)
		} else {
			p.line("Identifier %s", n.Value)
		}
	case *ast.FieldAccess:
		if n.FieldType != nil {
			p.line("FieldAccess .%s -> %s", n.Name.Value, n.FieldType)
		} else {
			p.line("FieldAccess .%s", n.Name.Value)
		}
		p.indent++
		p.printNode(n.Target)
		p.indent--
	case *ast.ArrayAccess:
		p.line("ArrayAccess")
		p.children(n)
	case *ast.MethodInvocation:
		p.line("MethodInvocation %s", n.Name.Value)
		p.indent++
		if n.Target != nil {
			p.printNode(n.Target)
		}
		for _, a := range n.Arguments {
			p.printNode(a)
		}
		p.indent--
	case *ast.Assignment:
		p.line("Assignment =")
		p.children(n)
	case *ast.AssignmentOperation:
		p.line("Assignment %s=", n.Operator)
		p.children(n)
	case *ast.Unary:
		if n.Postfix {
			p.line("Unary postfix %s", n.Operator)
		} else {
			p.line("Unary %s", n.Operator)
		}
		p.children(n)
	case *ast.Binary:
		p.line("Binary %s", n.Operator)
		p.children(n)
	case *ast.Ternary:
		p.line("Ternary")
		p.children(n)
	case *ast.TypeCast:
		p.line("TypeCast (%s)", n.TypeExpr)
		p.children(n)
	case *ast.Parentheses:
		p.line("Parentheses")
		p.children(n)
	case *ast.Literal:
		switch n.Kind {
		case ast.LiteralString:
			p.line("Literal %q", n.Value)
		case ast.LiteralNull:
			p.line("Literal null")
		default:
			p.line("Literal %v", n.Value)
		}
	case *ast.NewClass:
		p.line("NewClass %s", n.TypeExpr)
		p.children(n)
	case *ast.NewArray:
		p.line("NewArray %s", n.TypeExpr)
		p.children(n)
	default:
		p.line("%T", n)
		p.children(n)
	}
}
