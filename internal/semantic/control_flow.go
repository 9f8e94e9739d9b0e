package semantic

import (
	"github.com/byacherx/emlangc/internal/ast"
	"github.com/byacherx/emlangc/internal/diag"
)

// checkConditionType implements spec.md §4.5's If/While truthiness rule:
// the condition must be bool, numeric, or pointer (C-style truthiness for
// numerics and pointers).
func (a *Analyzer) checkConditionType(cond ast.Expression) {
	ty := a.analyzeExpression(cond)
	if ty.IsBoolean() || ty.IsNumeric() || ty.IsPointer() {
		return
	}
	a.report.Errorf(diag.CategorySemantic, cond.Pos(), "condition must be bool, numeric, or pointer, got %s", ty)
}

// analyzeIfStatement analyses condition, consequence, and alternative,
// each branch in its own pushed scope (spec.md §4.5).
func (a *Analyzer) analyzeIfStatement(n *ast.IfStatement) {
	a.checkConditionType(n.Condition)

	a.pushScope()
	a.analyzeBlockBody(n.Consequence)
	a.popScope()

	if n.Alternative != nil {
		a.pushScope()
		a.analyzeBlockBody(n.Alternative)
		a.popScope()
	}
}

// analyzeWhileStatement analyses condition and body, the body in its own
// pushed scope (spec.md §4.5).
func (a *Analyzer) analyzeWhileStatement(n *ast.WhileStatement) {
	a.checkConditionType(n.Condition)

	a.pushScope()
	a.analyzeBlockBody(n.Body)
	a.popScope()
}

// analyzeForStatement treats `for (init; cond; incr) body` as lexically
// equivalent to `{ init; while (cond) { body; incr; } }` (spec.md §4.6's
// codegen lowering, which this analyser's scoping must match): init's
// declarations live in an outer scope enclosing both the condition/
// increment and the body, and the body gets its own nested scope exactly
// like a plain While.
func (a *Analyzer) analyzeForStatement(n *ast.ForStatement) {
	a.pushScope()
	if n.Init != nil {
		a.analyzeStatement(n.Init)
	}
	if n.Condition != nil {
		a.checkConditionType(n.Condition)
	}

	a.pushScope()
	a.analyzeBlockBody(n.Body)
	a.popScope()

	if n.Increment != nil {
		a.analyzeExpression(n.Increment)
	}
	a.popScope()
}
