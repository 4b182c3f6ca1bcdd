// Package symbols implements the lexically scoped symbol table used by
// the attribution pass to resolve names to declared variables.
package symbols

import (
	"github.com/treewright/treewright/internal/jtype"
)

type ScopeType int

const (
	ScopeClass ScopeType = iota // fields of the enclosing class
	ScopeMethod                 // parameters of the enclosing callable
	ScopeBlock
)

// SymbolTable is one lexical scope. Scopes nest through outer; a name
// defined in an inner scope shadows the same name further out.
type SymbolTable struct {
	store     map[string]*jtype.Variable
	outer     *SymbolTable
	scopeType ScopeType
}

func NewSymbolTable(scopeType ScopeType) *SymbolTable {
	return &SymbolTable{
		store:     make(map[string]*jtype.Variable),
		scopeType: scopeType,
	}
}

func NewEnclosedSymbolTable(outer *SymbolTable, scopeType ScopeType) *SymbolTable {
	st := NewSymbolTable(scopeType)
	st.outer = outer
	return st
}

// Outer returns the enclosing scope, or nil at the outermost one.
func (s *SymbolTable) Outer() *SymbolTable {
	return s.outer
}

func (s *SymbolTable) IsClassScope() bool  { return s.scopeType == ScopeClass }
func (s *SymbolTable) IsMethodScope() bool { return s.scopeType == ScopeMethod }

// Define binds name in this scope. It reports false when the name is
// already bound here; shadowing an outer binding is fine.
func (s *SymbolTable) Define(name string, v *jtype.Variable) bool {
	if _, exists := s.store[name]; exists {
		return false
	}
	s.store[name] = v
	return true
}

// Resolve walks the scope chain from the innermost scope outward.
func (s *SymbolTable) Resolve(name string) (*jtype.Variable, bool) {
	if v, ok := s.store[name]; ok {
		return v, true
	}
	if s.outer != nil {
		return s.outer.Resolve(name)
	}
	return nil, false
}

// ResolveLocal looks only in this scope, ignoring outer ones.
func (s *SymbolTable) ResolveLocal(name string) (*jtype.Variable, bool) {
	v, ok := s.store[name]
	return v, ok
}

// ResolveField resolves name against the nearest enclosing class scope,
// skipping any method and block scopes in between.
func (s *SymbolTable) ResolveField(name string) (*jtype.Variable, bool) {
	for t := s; t != nil; t = t.outer {
		if t.scopeType != ScopeClass {
			continue
		}
		if v, ok := t.store[name]; ok {
			return v, true
		}
	}
	return nil, false
}
