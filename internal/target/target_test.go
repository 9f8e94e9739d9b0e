package target

import "testing"

func TestDefaultIsWellFormed(t *testing.T) {
	if Default.Triple == "" || Default.DataLayout == "" {
		t.Fatalf("Default target must carry both a triple and a data layout, got %+v", Default)
	}
}

func TestLookupKnownTriple(t *testing.T) {
	cfg, ok := Lookup("aarch64-unknown-linux-gnu")
	if !ok {
		t.Fatal("expected aarch64-unknown-linux-gnu to be a known triple")
	}
	if cfg.Triple != "aarch64-unknown-linux-gnu" {
		t.Errorf("Triple = %q", cfg.Triple)
	}
	if cfg.DataLayout == "" {
		t.Error("expected a non-empty data layout for a known triple")
	}
}

func TestLookupUnknownTriple(t *testing.T) {
	if _, ok := Lookup("sparc64-sun-solaris"); ok {
		t.Error("expected an unrecognised triple to miss")
	}
}

func TestParseEmptyTripleErrors(t *testing.T) {
	if _, err := Parse(""); err == nil {
		t.Error("expected Parse(\"\") to error")
	}
}

func TestParseUnknownTripleStillAccepted(t *testing.T) {
	cfg, err := Parse("sparc64-sun-solaris")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Triple != "sparc64-sun-solaris" {
		t.Errorf("Triple = %q", cfg.Triple)
	}
	if cfg.DataLayout != "" {
		t.Errorf("expected empty data layout for unrecognised triple, got %q", cfg.DataLayout)
	}
}

func TestParseKnownTriple(t *testing.T) {
	cfg, err := Parse("wasm32-unknown-unknown")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DataLayout == "" {
		t.Error("expected a known data layout for wasm32-unknown-unknown")
	}
}
