package builtins

import (
	"testing"

	"github.com/byacherx/emlangc/internal/types"
)

func TestLookupKnownEntry(t *testing.T) {
	entry, ok := Lookup("print_int")
	if !ok {
		t.Fatal("expected print_int to be registered")
	}
	if entry.LinkName != "emlang_print_int" {
		t.Errorf("LinkName = %q, want emlang_print_int", entry.LinkName)
	}
	if len(entry.Params) != 1 || !entry.Params[0].Equals(types.Int32) {
		t.Errorf("Params = %v, want [int32]", entry.Params)
	}
	if !entry.Return.Equals(types.Unit) {
		t.Errorf("Return = %v, want unit", entry.Return)
	}
}

func TestLookupMissingEntry(t *testing.T) {
	if _, ok := Lookup("does_not_exist"); ok {
		t.Error("expected an unknown name to report false")
	}
}

func TestAllReturnsNonEmptyCatalogue(t *testing.T) {
	all := All()
	if len(all) == 0 {
		t.Fatal("expected a non-empty builtin catalogue")
	}
}

func TestNoDuplicateNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, e := range All() {
		if seen[e.Name] {
			t.Errorf("duplicate builtin name %q", e.Name)
		}
		seen[e.Name] = true
	}
}

func TestEveryEntryHasALinkName(t *testing.T) {
	for _, e := range All() {
		if e.LinkName == "" {
			t.Errorf("builtin %q has no link name", e.Name)
		}
	}
}
