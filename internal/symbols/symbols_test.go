package symbols

import (
	"testing"

	"github.com/byacherx/emlangc/internal/types"
)

func TestDefineAndResolveInSameScope(t *testing.T) {
	global := NewTable()
	global.Define(&Symbol{Name: "x", Type: types.Int32})

	sym, ok := global.Resolve("x")
	if !ok {
		t.Fatal("expected to resolve x in its own scope")
	}
	if !sym.Type.Equals(types.Int32) {
		t.Errorf("resolved type = %v, want int32", sym.Type)
	}
}

func TestResolveWalksOuterScopes(t *testing.T) {
	global := NewTable()
	global.Define(&Symbol{Name: "g", Type: types.Bool})

	inner := NewEnclosedTable(global)
	inner.Define(&Symbol{Name: "l", Type: types.Int32})

	if _, ok := inner.Resolve("g"); !ok {
		t.Error("inner scope should resolve a global symbol via Outer chain")
	}
	if _, ok := global.Resolve("l"); ok {
		t.Error("outer scope must not see an inner scope's symbols")
	}
}

func TestShadowing(t *testing.T) {
	global := NewTable()
	global.Define(&Symbol{Name: "x", Type: types.Int32})

	inner := NewEnclosedTable(global)
	inner.Define(&Symbol{Name: "x", Type: types.Bool})

	sym, _ := inner.Resolve("x")
	if !sym.Type.Equals(types.Bool) {
		t.Errorf("inner scope's x should shadow the outer one; got %v", sym.Type)
	}
	outerSym, _ := global.Resolve("x")
	if !outerSym.Type.Equals(types.Int32) {
		t.Error("shadowing must not mutate the outer scope's binding")
	}
}

func TestExistsInCurrentScope(t *testing.T) {
	global := NewTable()
	global.Define(&Symbol{Name: "x", Type: types.Int32})
	inner := NewEnclosedTable(global)

	if !global.ExistsInCurrentScope("x") {
		t.Error("x was defined directly in global, should exist there")
	}
	if inner.ExistsInCurrentScope("x") {
		t.Error("ExistsInCurrentScope must not consult outer scopes")
	}
}

func TestIsGlobal(t *testing.T) {
	global := NewTable()
	inner := NewEnclosedTable(global)
	if !global.IsGlobal() {
		t.Error("root table should report IsGlobal")
	}
	if inner.IsGlobal() {
		t.Error("enclosed table should not report IsGlobal")
	}
}

func TestResolveMiss(t *testing.T) {
	global := NewTable()
	if _, ok := global.Resolve("missing"); ok {
		t.Error("Resolve should report false for an undeclared name")
	}
}
