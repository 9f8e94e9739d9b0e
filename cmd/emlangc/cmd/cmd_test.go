package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func TestResolveOutputPath(t *testing.T) {
	cases := []struct {
		input, explicit string
		emitLLVM        bool
		want            string
	}{
		{"foo.em", "", false, "foo.o"},
		{"foo.em", "", true, "foo.ll"},
		{"dir/foo.em", "", false, "dir/foo.o"},
		{"foo.em", "out.bin", false, "out.bin"},
		{"foo.em", "out.bin", true, "out.bin"},
	}
	for _, c := range cases {
		if got := resolveOutputPath(c.input, c.explicit, c.emitLLVM); got != c.want {
			t.Errorf("resolveOutputPath(%q, %q, %v) = %q, want %q", c.input, c.explicit, c.emitLLVM, got, c.want)
		}
	}
}

func TestOptimisationFlag(t *testing.T) {
	reset := func() { optO0, optO1, optO2, optO3 = false, false, false, false }
	defer reset()

	reset()
	if got := optimisationFlag(); got != "-O0" {
		t.Errorf("default optimisationFlag() = %q, want -O0", got)
	}

	reset()
	optO2 = true
	if got := optimisationFlag(); got != "-O2" {
		t.Errorf("optimisationFlag() with O2 = %q, want -O2", got)
	}

	reset()
	optO3 = true
	if got := optimisationFlag(); got != "-O3" {
		t.Errorf("optimisationFlag() with O3 = %q, want -O3", got)
	}
}

// testFlags builds a command carrying the same flag set as rootCmd, so
// applyFileConfig's flags.Changed checks exercise real cobra flag state
// rather than a bare struct.
func testFlags() *cobra.Command {
	cc := &cobra.Command{Use: "test"}
	cc.Flags().StringVarP(&outputFile, "output", "o", "", "")
	cc.Flags().BoolVar(&optO0, "O0", false, "")
	cc.Flags().BoolVar(&optO1, "O1", false, "")
	cc.Flags().BoolVar(&optO2, "O2", false, "")
	cc.Flags().BoolVar(&optO3, "O3", false, "")
	cc.Flags().BoolVar(&emitLLVM, "emit-llvm", false, "")
	cc.Flags().BoolVar(&debugMode, "debug", false, "")
	return cc
}

func resetGlobals() {
	outputFile = ""
	optO0, optO1, optO2, optO3 = false, false, false, false
	emitLLVM = false
	debugMode = false
}

func TestApplyFileConfigFillsUnsetFlags(t *testing.T) {
	resetGlobals()
	defer resetGlobals()

	cc := testFlags()
	cfg := fileConfig{Output: "cfg-out.o", EmitLLVM: true, DebugTrace: true, OptLevel: "O2"}
	applyFileConfig(cc, cfg)

	if outputFile != "cfg-out.o" {
		t.Errorf("outputFile = %q, want cfg-out.o", outputFile)
	}
	if !emitLLVM {
		t.Error("expected emitLLVM to be set from file config")
	}
	if !debugMode {
		t.Error("expected debugMode to be set from file config")
	}
	if !optO2 {
		t.Error("expected optO2 to be set from file config's opt_level: O2")
	}
}

func TestApplyFileConfigDoesNotOverrideExplicitFlags(t *testing.T) {
	resetGlobals()
	defer resetGlobals()

	cc := testFlags()
	if err := cc.Flags().Set("output", "explicit.o"); err != nil {
		t.Fatal(err)
	}
	cfg := fileConfig{Output: "cfg-out.o"}
	applyFileConfig(cc, cfg)

	if outputFile != "explicit.o" {
		t.Errorf("outputFile = %q, want explicit.o (user flag must win)", outputFile)
	}
}

func TestApplyFileConfigOptLevelIgnoredWhenAnyOptFlagExplicit(t *testing.T) {
	resetGlobals()
	defer resetGlobals()

	cc := testFlags()
	if err := cc.Flags().Set("O1", "true"); err != nil {
		t.Fatal(err)
	}
	cfg := fileConfig{OptLevel: "O3"}
	applyFileConfig(cc, cfg)

	if optO3 {
		t.Error("file config's opt_level must not override an explicitly-passed optimisation flag")
	}
	if !optO1 {
		t.Error("the explicitly-passed O1 flag must remain set")
	}
}

func TestLoadFileConfigMissingFileReturnsZeroValue(t *testing.T) {
	dir := t.TempDir()
	cfg, err := loadFileConfig(filepath.Join(dir, "prog.em"))
	if err != nil {
		t.Fatalf("unexpected error for a missing .emlangc.yaml: %v", err)
	}
	if cfg != (fileConfig{}) {
		t.Errorf("expected a zero-value fileConfig, got %+v", cfg)
	}
}

func TestLoadFileConfigReadsYAMLFromSourceDirectory(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, ".emlangc.yaml")
	contents := "output: built.o\nemit_llvm: true\nopt_level: O2\n"
	if err := os.WriteFile(yamlPath, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadFileConfig(filepath.Join(dir, "prog.em"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Output != "built.o" {
		t.Errorf("Output = %q, want built.o", cfg.Output)
	}
	if !cfg.EmitLLVM {
		t.Error("expected EmitLLVM to be true")
	}
	if cfg.OptLevel != "O2" {
		t.Errorf("OptLevel = %q, want O2", cfg.OptLevel)
	}
}
