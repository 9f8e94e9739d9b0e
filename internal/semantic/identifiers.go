package semantic

import (
	"github.com/byacherx/emlangc/internal/ast"
	"github.com/byacherx/emlangc/internal/diag"
	"github.com/byacherx/emlangc/internal/types"
)

// analyzeIdentifier implements spec.md §4.5's Identifier obligation: a
// scope-chain lookup, with an "undefined identifier" error and the error
// type on miss so the walk continues without cascading.
func (a *Analyzer) analyzeIdentifier(n *ast.Identifier) types.Type {
	sym, ok := a.current.Resolve(n.Name)
	if !ok {
		a.report.Errorf(diag.CategorySemantic, n.Pos(), "undefined identifier: %s", n.Name)
		return a.annotate(n, types.ErrType)
	}
	return a.annotate(n, sym.Type)
}
