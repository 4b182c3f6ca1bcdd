package ast

// Visitor dispatches over every node kind in the tree. Accept calls the
// method for the node's concrete type; traversal into children is the
// visitor's responsibility.
type Visitor interface {
	VisitCompilationUnit(n *CompilationUnit)
	VisitClassDeclaration(n *ClassDeclaration)
	VisitMethodDeclaration(n *MethodDeclaration)
	VisitVariableDeclarations(n *VariableDeclarations)
	VisitNamedVariable(n *NamedVariable)
	VisitEnumValueSet(n *EnumValueSet)
	VisitEnumValue(n *EnumValue)
	VisitAnnotation(n *Annotation)
	VisitBlock(n *Block)
	VisitIf(n *If)
	VisitWhileLoop(n *WhileLoop)
	VisitDoWhileLoop(n *DoWhileLoop)
	VisitForLoop(n *ForLoop)
	VisitSwitch(n *Switch)
	VisitCase(n *Case)
	VisitBreak(n *Break)
	VisitContinue(n *Continue)
	VisitReturn(n *Return)
	VisitEmpty(n *Empty)
	VisitIdentifier(n *Identifier)
	VisitFieldAccess(n *FieldAccess)
	VisitArrayAccess(n *ArrayAccess)
	VisitMethodInvocation(n *MethodInvocation)
	VisitAssignment(n *Assignment)
	VisitAssignmentOperation(n *AssignmentOperation)
	VisitUnary(n *Unary)
	VisitBinary(n *Binary)
	VisitTernary(n *Ternary)
	VisitTypeCast(n *TypeCast)
	VisitParentheses(n *Parentheses)
	VisitLiteral(n *Literal)
	VisitNewClass(n *NewClass)
	VisitNewArray(n *NewArray)
}

// Children returns a node's direct children in source order. Nil
// children are skipped. The switch is exhaustive over the node set;
// a new kind must be added here before cursors can descend into it.
func Children(n Node) []Node {
	var out []Node
	add := func(c Node) {
		if c != nil {
			out = append(out, c)
		}
	}
	addIdent := func(id *Identifier) {
		if id != nil {
			out = append(out, id)
		}
	}
	switch n := n.(type) {
	case *CompilationUnit:
		for _, c := range n.Classes {
			add(c)
		}
	case *ClassDeclaration:
		for _, a := range n.Annotations {
			add(a)
		}
		addIdent(n.Name)
		if n.Body != nil {
			add(n.Body)
		}
	case *MethodDeclaration:
		for _, a := range n.Annotations {
			add(a)
		}
		addIdent(n.Name)
		for _, p := range n.Params {
			add(p)
		}
		if n.Body != nil {
			add(n.Body)
		}
	case *VariableDeclarations:
		for _, a := range n.Annotations {
			add(a)
		}
		for _, nv := range n.Variables {
			add(nv)
		}
	case *NamedVariable:
		addIdent(n.Name)
		if n.Initializer != nil {
			add(n.Initializer)
		}
	case *EnumValueSet:
		for _, ev := range n.Values {
			add(ev)
		}
	case *EnumValue:
		addIdent(n.Name)
		if n.Initializer != nil {
			add(n.Initializer)
		}
	case *Annotation:
		addIdent(n.Name)
		for _, a := range n.Arguments {
			add(a)
		}
	case *Block:
		for _, s := range n.Statements {
			add(s)
		}
	case *If:
		add(n.Condition)
		add(n.Then)
		if n.Else != nil {
			add(n.Else)
		}
	case *WhileLoop:
		add(n.Condition)
		add(n.Body)
	case *DoWhileLoop:
		add(n.Body)
		add(n.Condition)
	case *ForLoop:
		if n.Init != nil {
			add(n.Init)
		}
		if n.Condition != nil {
			add(n.Condition)
		}
		for _, u := range n.Update {
			add(u)
		}
		add(n.Body)
	case *Switch:
		add(n.Selector)
		for _, c := range n.Cases {
			add(c)
		}
	case *Case:
		if n.Pattern != nil {
			add(n.Pattern)
		}
		for _, s := range n.Statements {
			add(s)
		}
	case *Return:
		if n.Expr != nil {
			add(n.Expr)
		}
	case *Identifier:
		// leaf
	case *FieldAccess:
		add(n.Target)
		addIdent(n.Name)
	case *ArrayAccess:
		add(n.Indexed)
		add(n.Index)
	case *MethodInvocation:
		if n.Target != nil {
			add(n.Target)
		}
		addIdent(n.Name)
		for _, a := range n.Arguments {
			add(a)
		}
	case *Assignment:
		add(n.Variable)
		add(n.Value)
	case *AssignmentOperation:
		add(n.Variable)
		add(n.Value)
	case *Unary:
		add(n.Expr)
	case *Binary:
		add(n.Left)
		add(n.Right)
	case *Ternary:
		add(n.Condition)
		add(n.TruePart)
		add(n.FalsePart)
	case *TypeCast:
		add(n.Expr)
	case *Parentheses:
		add(n.Expr)
	case *NewClass:
		for _, a := range n.Arguments {
			add(a)
		}
	case *NewArray:
		for _, d := range n.Dimensions {
			add(d)
		}
	case *Break, *Continue, *Empty, *Literal:
		// leaves
	}
	return out
}
