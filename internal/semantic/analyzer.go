// Package semantic implements emlang's single-pass semantic analyser:
// lexical scoping, type annotation, lvalue/constness checks, and
// control-flow validity (spec.md §4.5).
//
// The Analyzer's top-level struct shape and one-file-per-concern split
// (statements.go, declarations.go, control_flow.go, operators.go,
// literals.go, identifiers.go) drops every DWScript-only concern
// (classes, interfaces, records, enums, sets, properties, exceptions,
// contracts, lambdas, overload resolution, helpers, units), since the
// Language has none of them. Rather than annotating by mutating a
// `Type *TypeAnnotation` field on each AST node, this analyser records
// every expression's type in a side table keyed by node identity
// (spec.md §3: "the semantic analyser records analysis results in a side
// table... never by mutation").
package semantic

import (
	"github.com/byacherx/emlangc/internal/ast"
	"github.com/byacherx/emlangc/internal/builtins"
	"github.com/byacherx/emlangc/internal/diag"
	"github.com/byacherx/emlangc/internal/symbols"
	"github.com/byacherx/emlangc/internal/types"
)

// Analyzer walks a Program once, mutating only its own scope stack and
// the supplied diag.Reporter (spec.md §4.5's contract: "mutating only the
// error reporter and the scope stack").
type Analyzer struct {
	report  *diag.Reporter
	global  *symbols.Table
	current *symbols.Table

	// annotations is the side table spec.md §3 mandates: expression node
	// identity -> resolved type. Never read by the parser; written and
	// read only here and by internal/codegen.
	annotations map[ast.Expression]types.Type

	currentReturn *types.Type // nil outside any function body
	filename      string
}

// New creates an Analyzer reporting to report. It pre-populates the
// global scope with every builtins.All() entry as a function symbol
// (spec.md §4.5: "On entry it pre-populates the global scope with every
// entry from the built-ins registry as function symbols").
func New(report *diag.Reporter, filename string) *Analyzer {
	global := symbols.NewTable()
	a := &Analyzer{
		report:      report,
		global:      global,
		current:     global,
		annotations: make(map[ast.Expression]types.Type),
		filename:    filename,
	}
	for _, b := range builtins.All() {
		global.Define(&symbols.Symbol{
			Name:       b.Name,
			Type:       b.Return,
			IsFunction: true,
			IsExtern:   true,
			Params:     b.Params,
		})
	}
	return a
}

// Analyze walks program once and reports true iff no Error-severity
// diagnostic was recorded (spec.md §4.5's contract).
func (a *Analyzer) Analyze(program *ast.Program) bool {
	for _, stmt := range program.Statements {
		a.analyzeStatement(stmt)
	}
	return !a.report.HasErrors()
}

// TypeOf returns the type annotation recorded for an expression node by a
// prior Analyze call. Codegen relies on this instead of recomputing
// types, per the side-table contract.
func (a *Analyzer) TypeOf(e ast.Expression) types.Type {
	if t, ok := a.annotations[e]; ok {
		return t
	}
	return types.ErrType
}

func (a *Analyzer) annotate(e ast.Expression, t types.Type) types.Type {
	a.annotations[e] = t
	return t
}

func (a *Analyzer) pushScope() {
	a.current = symbols.NewEnclosedTable(a.current)
}

func (a *Analyzer) popScope() {
	a.current = a.current.Outer
}

// resolveTypeName converts a parsed *ast.TypeName into a structured Type,
// reporting and returning types.ErrType for an unknown base name (which
// the parser should never produce, since it only accepts type-keyword
// tokens, but codegen and the analyser must still handle it defensively).
func (a *Analyzer) resolveTypeName(tn *ast.TypeName) types.Type {
	base, ok := types.FromKeyword(tn.Name)
	if !ok {
		a.report.Errorf(diag.CategorySemantic, tn.Pos(), "unknown type %q", tn.Name)
		return types.ErrType
	}
	for i := 0; i < tn.PointerRank; i++ {
		base = types.PointerTo(base)
	}
	return base
}
