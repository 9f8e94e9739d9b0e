// Package codegen lowers an analysed (error-free) emlang AST into a
// verified LLVM module, per spec.md §4.6. The generator is organised as
// three co-operating lowering passes — declaration, statement, expression
// — sharing one Generator context and its value map (spec.md §9 notes
// the original's CGExpr/CGDecl/CGStmt trio; here that becomes one struct
// with a method per node kind, since Go has no need for the original's
// dynamic-dispatch back-references between visitors).
//
// Built on github.com/llir/llvm, a pure-Go LLVM IR construction library
// (no cgo, no system LLVM install required) — named in SPEC_FULL.md's
// DOMAIN STACK section as an out-of-pack addition, since nothing else in
// the pack targets LLVM IR directly.
package codegen

import (
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	irtypes "github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"github.com/byacherx/emlangc/internal/ast"
	"github.com/byacherx/emlangc/internal/builtins"
	"github.com/byacherx/emlangc/internal/diag"
	"github.com/byacherx/emlangc/internal/semantic"
	"github.com/byacherx/emlangc/internal/target"
	"github.com/byacherx/emlangc/internal/token"
	"github.com/byacherx/emlangc/internal/types"
)

// binding is one value-map entry: the IR address (an alloca or a global)
// together with its emlang source type, since LLVM's pointer type alone
// cannot tell a signed int32* apart from an unsigned uint32* once the
// element type is just "i32" (spec.md §4 "IR value map" / §9 "opaque
// pointers... keep the value map's source-type column").
type binding struct {
	addr value.Value
	ty   types.Type
}

// Generator lowers one analysed Program to one *ir.Module. It is created
// fresh per compilation; nothing here is package-level mutable state
// (spec.md §5: "No process-wide mutable state").
type Generator struct {
	report *diag.Reporter
	sem    *semantic.Analyzer
	cfg    target.Config

	module *ir.Module

	curFn      *ir.Func
	entryBlock *ir.Block
	curBlock   *ir.Block

	// scopes is the value map's scope stack: innermost last. Function
	// entry pushes one scope, function exit pops it (spec.md §4: "The map
	// implements scope save/restore around function bodies").
	scopes []map[string]*binding

	funcs map[string]*ir.Func // emlang function name -> emitted ir.Func
	// externs tracks which builtin extern declarations have already been
	// emitted, so a builtin used twice is only declared once (spec.md §6:
	// "code generator emits matching extern declarations on first use").
	externs map[string]*ir.Func

	strCounter int
}

// New creates a Generator targeting cfg, reporting internal/codegen
// errors to report and reading type annotations from sem (the side table
// populated by a prior, successful Analyze call).
func New(report *diag.Reporter, sem *semantic.Analyzer, cfg target.Config) *Generator {
	return &Generator{
		report:  report,
		sem:     sem,
		cfg:     cfg,
		funcs:   make(map[string]*ir.Func),
		externs: make(map[string]*ir.Func),
	}
}

// Generate lowers program to a verified *ir.Module. Callers must only
// invoke this when the Reporter has zero errors after semantic analysis
// (spec.md §3's invariant); Generate does not re-check this itself, since
// the pipeline driver owns that gate (spec.md §7's propagation policy).
func (g *Generator) Generate(program *ast.Program) *ir.Module {
	g.module = ir.NewModule()
	g.module.TargetTriple = g.cfg.Triple
	g.module.TargetDataLayout = g.cfg.DataLayout

	var funcDecls []*ast.FunctionDeclStatement
	var loose []ast.Statement

	for _, stmt := range program.Statements {
		switch n := stmt.(type) {
		case *ast.FunctionDeclStatement:
			funcDecls = append(funcDecls, n)
		case *ast.VarDeclStatement:
			g.genGlobalVarDecl(n)
		default:
			loose = append(loose, n)
		}
	}

	for _, decl := range funcDecls {
		g.declareFunctionSignature(decl)
	}
	for _, decl := range funcDecls {
		if decl.Body != nil {
			g.genFunctionBody(decl)
		}
	}

	if len(loose) > 0 {
		g.genSyntheticMain(loose)
	}

	g.verifyModule()
	return g.module
}

// pushScope / popScope implement the value map's scope save/restore
// discipline (spec.md §4, §5: "every push has a matching pop before the
// function returns").
func (g *Generator) pushScope() {
	g.scopes = append(g.scopes, make(map[string]*binding))
}

func (g *Generator) popScope() {
	g.scopes = g.scopes[:len(g.scopes)-1]
}

func (g *Generator) define(name string, addr value.Value, ty types.Type) {
	g.scopes[len(g.scopes)-1][name] = &binding{addr: addr, ty: ty}
}

func (g *Generator) resolve(name string) (*binding, bool) {
	for i := len(g.scopes) - 1; i >= 0; i-- {
		if b, ok := g.scopes[i][name]; ok {
			return b, true
		}
	}
	return nil, false
}

// internalError reports a fatal codegen defect (spec.md §7: "Only these
// are fatal... IR verification failure"). It is also used for the
// handful of invariants Generate relies on (a malformed AST reaching
// codegen after a supposedly error-free analysis pass).
func (g *Generator) internalError(pos token.Position, format string, args ...any) {
	g.report.Errorf(diag.CategoryCodeGen, pos, format, args...)
}

// verifyModule runs the structural check described in spec.md §4.6: every
// emitted function must have a terminator in each of its blocks. llir/llvm
// is a pure-Go IR *builder*, not a binding to the real LLVM verifier pass
// (that lives in the native back-end this design treats as an external
// collaborator, spec.md §1), so this is the closest in-process equivalent
// available without invoking LLVM's C API; it catches the one invariant
// codegen itself must never violate.
func (g *Generator) verifyModule() {
	for _, fn := range g.module.Funcs {
		for _, block := range fn.Blocks {
			if block.Term == nil {
				g.report.Errorf(diag.CategoryCodeGen, token.Position{}, "internal error: function %q has an unterminated block %q", fn.Name(), block.Name())
			}
		}
	}
}

// builtinFunc returns (declaring on first use) the extern ir.Func for a
// builtins.Entry, matching spec.md §6's "emits matching extern
// declarations on first use".
func (g *Generator) builtinFunc(name string) *ir.Func {
	if fn, ok := g.externs[name]; ok {
		return fn
	}
	entry, ok := builtins.Lookup(name)
	if !ok {
		return nil
	}
	params := make([]*ir.Param, len(entry.Params))
	for i, pt := range entry.Params {
		params[i] = ir.NewParam("", g.lowerType(pt))
	}
	fn := g.module.NewFunc(entry.LinkName, g.lowerType(entry.Return), params...)
	g.externs[name] = fn
	return fn
}

// nextStringName returns a fresh, deterministic name for a string literal
// global (spec.md §5: "Code generation emits IR in source order...
// guaranteeing deterministic IR").
func (g *Generator) nextStringName() string {
	g.strCounter++
	return fmt.Sprintf(".str.%d", g.strCounter)
}

// genSyntheticMain wraps top-level non-declaration statements (permitted
// by spec.md §3's Program grammar, which allows any Statement at the top
// level) into an implicit `function main(): int32` so they still lower
// to a function body rather than being rejected outright. A source file
// that declares `main` and also has loose top-level statements is
// reported as a codegen error instead of getting a second `main`.
func (g *Generator) genSyntheticMain(loose []ast.Statement) {
	if _, exists := g.funcs["main"]; exists {
		g.internalError(loose[0].Pos(), "top-level statements cannot be combined with a declared main function")
		return
	}
	fnType := irtypes.I32
	fn := g.module.NewFunc("main", fnType)
	g.funcs["main"] = fn
	entry := fn.NewBlock("entry")
	g.curFn = fn
	g.entryBlock = entry
	g.curBlock = entry
	g.pushScope()
	for _, stmt := range loose {
		g.genStatement(stmt)
	}
	if g.curBlock.Term == nil {
		g.curBlock.NewRet(constant.NewInt(irtypes.I32, 0))
	}
	g.popScope()
	g.curFn = nil
}
