package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"

	"github.com/byacherx/emlangc/internal/ast"
	"github.com/byacherx/emlangc/internal/codegen"
	"github.com/byacherx/emlangc/internal/diag"
	"github.com/byacherx/emlangc/internal/lexer"
	"github.com/byacherx/emlangc/internal/parser"
	"github.com/byacherx/emlangc/internal/semantic"
	"github.com/byacherx/emlangc/internal/target"
)

var (
	outputFile string
	optO0      bool
	optO1      bool
	optO2      bool
	optO3      bool
	emitLLVM   bool
	debugMode  bool
)

// runCompile drives the full pipeline described in spec.md §1/§7: lex,
// parse, analyse, generate — checking has_errors() after each stage and
// stopping before the next one.
func runCompile(cc *cobra.Command, args []string) error {
	filename := args[0]

	cfg, err := loadFileConfig(filename)
	if err != nil {
		return fmt.Errorf("failed to read .emlangc.yaml: %w", err)
	}
	applyFileConfig(cc, cfg)

	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	source := string(content)

	report := diag.NewReporter(source)

	if debugMode {
		fmt.Fprintf(os.Stderr, "[emlangc] lexing %s\n", filename)
	}
	tokens := lexer.Tokenize(source, filename, report)
	if debugMode {
		dumpDebugJSON("tokens", len(tokens))
	}
	if report.HasErrors() {
		return reportAndFail(report)
	}

	if debugMode {
		fmt.Fprintf(os.Stderr, "[emlangc] parsing (%d tokens)\n", len(tokens))
	}
	p := parser.New(tokens, report)
	program := p.Parse()
	if debugMode {
		fmt.Fprintln(os.Stderr, ast.Dump(program))
	}
	if report.HasErrors() {
		return reportAndFail(report)
	}

	if debugMode {
		fmt.Fprintf(os.Stderr, "[emlangc] semantic analysis\n")
	}
	analyzer := semantic.New(report, filename)
	if !analyzer.Analyze(program) {
		return reportAndFail(report)
	}

	tcfg := target.Default
	if cfg.Target != "" {
		parsed, err := target.Parse(cfg.Target)
		if err != nil {
			return fmt.Errorf("invalid target in .emlangc.yaml: %w", err)
		}
		tcfg = parsed
	}

	if debugMode {
		fmt.Fprintf(os.Stderr, "[emlangc] generating LLVM IR (triple=%s)\n", tcfg.Triple)
	}
	gen := codegen.New(report, analyzer, tcfg)
	module := gen.Generate(program)
	if report.HasErrors() {
		return reportAndFail(report)
	}

	ir := module.String()
	if debugMode {
		dumpDebugJSON("module", map[string]any{
			"triple":      tcfg.Triple,
			"data_layout": tcfg.DataLayout,
			"functions":   len(module.Funcs),
			"globals":     len(module.Globals),
		})
	}

	outPath := resolveOutputPath(filename, outputFile, emitLLVM)
	if emitLLVM {
		if err := os.WriteFile(outPath, []byte(ir), 0o644); err != nil {
			return fmt.Errorf("failed to write output file %s: %w", outPath, err)
		}
		fmt.Printf("Compiled %s -> %s\n", filename, outPath)
		return nil
	}

	if err := assembleObject(ir, outPath, optimisationFlag()); err != nil {
		return err
	}
	fmt.Printf("Compiled %s -> %s\n", filename, outPath)
	return nil
}

// applyFileConfig fills in flag values the caller left at their zero
// default from the project config file, without overriding anything the
// user explicitly passed on the command line.
func applyFileConfig(cc *cobra.Command, cfg fileConfig) {
	flags := cc.Flags()
	if cfg.Output != "" && !flags.Changed("output") {
		outputFile = cfg.Output
	}
	if cfg.EmitLLVM && !flags.Changed("emit-llvm") {
		emitLLVM = true
	}
	if cfg.DebugTrace && !flags.Changed("debug") {
		debugMode = true
	}
	if !flags.Changed("O0") && !flags.Changed("O1") && !flags.Changed("O2") && !flags.Changed("O3") {
		switch cfg.OptLevel {
		case "O1":
			optO1 = true
		case "O2":
			optO2 = true
		case "O3":
			optO3 = true
		}
	}
}

// dumpDebugJSON pretty-prints one `--debug` stage payload to stderr via
// tidwall/pretty, matching SPEC_FULL.md's ambient-stack note that
// `--debug` output reuses the pack's JSON-formatting dependency rather
// than a hand-rolled indenter.
func dumpDebugJSON(stage string, payload any) {
	raw, err := json.Marshal(map[string]any{"stage": stage, "data": payload})
	if err != nil {
		return
	}
	fmt.Fprintln(os.Stderr, string(pretty.Pretty(raw)))
}

func reportAndFail(report *diag.Reporter) error {
	fmt.Fprint(os.Stderr, report.FormatAll(true))
	return fmt.Errorf("compilation failed with %d error(s)", report.ErrorCount())
}

func resolveOutputPath(input, explicit string, emitLLVM bool) string {
	if explicit != "" {
		return explicit
	}
	ext := filepath.Ext(input)
	base := strings.TrimSuffix(input, ext)
	if emitLLVM {
		return base + ".ll"
	}
	return base + ".o"
}

func optimisationFlag() string {
	switch {
	case optO3:
		return "-O3"
	case optO2:
		return "-O2"
	case optO1:
		return "-O1"
	default:
		return "-O0"
	}
}

// assembleObject hands textual IR to the system `llc` to produce an
// object file. llir/llvm is an IR *builder*, not an assembler or
// optimiser (spec.md §9 treats the native back-end as an external
// collaborator, not something this module reimplements), so object-code
// emission is the one place emlangc necessarily shells out, the same way
// a real LLVM front-end's -c path does.
func assembleObject(ir, outPath, optFlag string) error {
	tmp, err := os.CreateTemp("", "emlangc-*.ll")
	if err != nil {
		return fmt.Errorf("failed to create temporary IR file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(ir); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temporary IR file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temporary IR file: %w", err)
	}

	cmd := exec.Command("llc", optFlag, "-filetype=obj", tmp.Name(), "-o", outPath)
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("llc failed to assemble %s: %w", outPath, err)
	}
	return nil
}
