package semantic

import (
	"github.com/byacherx/emlangc/internal/ast"
	"github.com/byacherx/emlangc/internal/diag"
	"github.com/byacherx/emlangc/internal/symbols"
	"github.com/byacherx/emlangc/internal/types"
)

// analyzeFunctionDecl implements spec.md §4.5's function-declaration
// obligation, covering both a regular function (Body != nil) and an
// extern declaration (Body == nil): duplicate check in the outer scope,
// define the function symbol before the body so recursive calls resolve,
// push a parameter scope, analyse the body under the declared return
// type, then restore the enclosing scope and return type.
func (a *Analyzer) analyzeFunctionDecl(n *ast.FunctionDeclStatement) {
	if a.current.ExistsInCurrentScope(n.Name.Name) {
		a.report.Errorf(diag.CategorySemantic, n.Pos(), "duplicate symbol: %s", n.Name.Name)
	}

	returnTy := types.Unit
	if n.ReturnType != nil {
		returnTy = a.resolveTypeName(n.ReturnType)
	}

	paramTypes := make([]types.Type, len(n.Params))
	for i, p := range n.Params {
		paramTypes[i] = a.resolveTypeName(p.Type)
	}

	sym := &symbols.Symbol{
		Name:       n.Name.Name,
		Type:       returnTy,
		IsFunction: true,
		IsExtern:   n.IsExtern,
		Params:     paramTypes,
		Pos:        n.Pos(),
	}
	a.current.Define(sym)

	if n.Body == nil {
		return
	}

	a.pushScope()
	for i, p := range n.Params {
		pSym := &symbols.Symbol{Name: p.Name.Name, Type: paramTypes[i], Pos: p.Name.Pos()}
		if a.current.ExistsInCurrentScope(p.Name.Name) {
			a.report.Errorf(diag.CategorySemantic, p.Name.Pos(), "duplicate symbol: %s", p.Name.Name)
		}
		a.current.Define(pSym)
		a.annotate(p.Name, paramTypes[i])
	}

	prevReturn := a.currentReturn
	a.currentReturn = &returnTy
	a.analyzeBlockBody(n.Body)
	a.currentReturn = prevReturn

	a.popScope()
}
