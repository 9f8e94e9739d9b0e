// Package diag implements the emlang compiler's diagnostic reporter: a
// single, explicitly-owned, non-singleton object threaded by reference
// through every pipeline stage (spec.md §9, "Error reporter... Do not
// make it a singleton").
package diag

import (
	"fmt"
	"strings"

	"github.com/byacherx/emlangc/internal/token"
)

// Severity classifies a Diagnostic's importance, per spec.md §6.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "Error"
	case SeverityWarning:
		return "Warning"
	default:
		return "Info"
	}
}

// Category is the coarse taxonomy from spec.md §7.
type Category int

const (
	CategoryLexical Category = iota
	CategorySyntactic
	CategorySemantic
	CategoryCodeGen
)

func (c Category) String() string {
	switch c {
	case CategoryLexical:
		return "lexical"
	case CategorySyntactic:
		return "syntactic"
	case CategorySemantic:
		return "semantic"
	default:
		return "codegen"
	}
}

// Diagnostic is a single reported problem: its severity, taxonomy
// category, message, and source position.
type Diagnostic struct {
	Severity Severity
	Category Category
	Message  string
	Pos      token.Position
	File     string
}

// Format renders the diagnostic as spec.md §6's one-line form, with an
// optional indented source-context snippet below it.
func (d Diagnostic) Format(source string, color bool) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s at %d:%d: %s", d.Severity, d.Pos.Line, d.Pos.Column, d.Message))

	if line := sourceLine(source, d.Pos.Line); line != "" {
		sb.WriteString("\n    ")
		sb.WriteString(line)
		sb.WriteString("\n    ")
		sb.WriteString(strings.Repeat(" ", max(d.Pos.Column-1, 0)))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
	}

	return sb.String()
}

func sourceLine(source string, line int) string {
	if source == "" || line < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return ""
	}
	return lines[line-1]
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Reporter accumulates diagnostics across every stage of a single
// compilation. It is owned by the driver and passed by pointer; nothing
// in this package keeps a package-level instance.
type Reporter struct {
	diagnostics []Diagnostic
	source      string
}

// NewReporter creates an empty Reporter. source is the original input
// text, kept only to render context snippets.
func NewReporter(source string) *Reporter {
	return &Reporter{source: source}
}

// Add records a diagnostic. It never panics and never unwinds the
// caller's stack, matching spec.md §7's non-throwing propagation policy.
func (r *Reporter) Add(d Diagnostic) {
	r.diagnostics = append(r.diagnostics, d)
}

// Errorf is a convenience for recording an Error-severity diagnostic.
func (r *Reporter) Errorf(category Category, pos token.Position, format string, args ...any) {
	r.Add(Diagnostic{
		Severity: SeverityError,
		Category: category,
		Message:  fmt.Sprintf(format, args...),
		Pos:      pos,
	})
}

// HasErrors reports whether any Error-severity diagnostic was recorded.
// Code generation must only run when this is false after semantic
// analysis (spec.md §3 invariant, §7 propagation policy).
func (r *Reporter) HasErrors() bool {
	for _, d := range r.diagnostics {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// ErrorCount returns the number of Error-severity diagnostics.
func (r *Reporter) ErrorCount() int {
	n := 0
	for _, d := range r.diagnostics {
		if d.Severity == SeverityError {
			n++
		}
	}
	return n
}

// Diagnostics returns the accumulated diagnostics in report order.
func (r *Reporter) Diagnostics() []Diagnostic {
	return r.diagnostics
}

// FormatAll renders every diagnostic followed by a one-line summary.
func (r *Reporter) FormatAll(color bool) string {
	if len(r.diagnostics) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, d := range r.diagnostics {
		sb.WriteString(d.Format(r.source, color))
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("%d error(s), %d warning(s)\n", r.ErrorCount(), r.countSeverity(SeverityWarning)))
	return sb.String()
}

func (r *Reporter) countSeverity(s Severity) int {
	n := 0
	for _, d := range r.diagnostics {
		if d.Severity == s {
			n++
		}
	}
	return n
}
