// Package symbols implements emlang's scope-chain symbol table: no
// overload sets, no forward declarations, no case folding. Lookup is
// case-sensitive (spec.md §9's resolved open question: "the emlang
// identifier grammar carries no case-insensitivity tradition, so do not
// add one").
package symbols

import (
	"github.com/byacherx/emlangc/internal/token"
	"github.com/byacherx/emlangc/internal/types"
)

// Symbol is one declared name: a variable, constant, or function,
// matching spec.md §3's data model (name, type, const/function flags,
// source position).
type Symbol struct {
	Name       string
	Type       types.Type // for functions, the return type
	IsConst    bool
	IsFunction bool
	Params     []types.Type // parameter types, functions only
	IsExtern   bool
	Pos        token.Position
}

// Table is one lexical scope, chained to its parent via Outer.
type Table struct {
	symbols map[string]*Symbol
	Outer   *Table
}

// NewTable creates the root (global) scope.
func NewTable() *Table {
	return &Table{symbols: make(map[string]*Symbol)}
}

// NewEnclosedTable creates a new scope nested inside outer.
func NewEnclosedTable(outer *Table) *Table {
	t := NewTable()
	t.Outer = outer
	return t
}

// Define inserts sym into the current scope, overwriting any existing
// entry of the same name in this scope (callers must check
// ExistsInCurrentScope first to detect redeclaration errors).
func (t *Table) Define(sym *Symbol) {
	t.symbols[sym.Name] = sym
}

// Resolve looks up name in the current scope, then each enclosing scope
// in turn.
func (t *Table) Resolve(name string) (*Symbol, bool) {
	if sym, ok := t.symbols[name]; ok {
		return sym, true
	}
	if t.Outer != nil {
		return t.Outer.Resolve(name)
	}
	return nil, false
}

// ExistsInCurrentScope reports whether name is already bound in this
// exact scope, without consulting outer scopes.
func (t *Table) ExistsInCurrentScope(name string) bool {
	_, ok := t.symbols[name]
	return ok
}

// IsGlobal reports whether this table has no outer scope.
func (t *Table) IsGlobal() bool {
	return t.Outer == nil
}
