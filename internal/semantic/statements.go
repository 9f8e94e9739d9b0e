package semantic

import (
	"github.com/byacherx/emlangc/internal/ast"
	"github.com/byacherx/emlangc/internal/diag"
	"github.com/byacherx/emlangc/internal/symbols"
	"github.com/byacherx/emlangc/internal/types"
)

// analyzeStatement dispatches on the statement's concrete type, per
// spec.md §4.5's per-node obligations.
func (a *Analyzer) analyzeStatement(s ast.Statement) {
	switch n := s.(type) {
	case *ast.BlockStatement:
		a.pushScope()
		a.analyzeBlockBody(n)
		a.popScope()
	case *ast.ExpressionStatement:
		a.analyzeExpression(n.Expression)
	case *ast.EmptyStatement:
		// nothing to analyse: a parser recovery placeholder.
	case *ast.VarDeclStatement:
		a.analyzeVarDecl(n)
	case *ast.FunctionDeclStatement:
		a.analyzeFunctionDecl(n)
	case *ast.IfStatement:
		a.analyzeIfStatement(n)
	case *ast.WhileStatement:
		a.analyzeWhileStatement(n)
	case *ast.ForStatement:
		a.analyzeForStatement(n)
	case *ast.ReturnStatement:
		a.analyzeReturnStatement(n)
	default:
		a.report.Errorf(diag.CategorySemantic, s.Pos(), "internal error: unhandled statement %T", n)
	}
}

// analyzeBlockBody analyses a block's statements in the *current* scope,
// for callers (function bodies, if/while/for) that have already pushed
// the scope the block's declarations should land in.
func (a *Analyzer) analyzeBlockBody(n *ast.BlockStatement) {
	for _, stmt := range n.Statements {
		a.analyzeStatement(stmt)
	}
}

// analyzeVarDecl implements spec.md §4.5: duplicate-in-current-scope is
// an error; an initialiser's type must be compatible with the declared
// type, or becomes the inferred type when no annotation is given.
func (a *Analyzer) analyzeVarDecl(n *ast.VarDeclStatement) {
	if a.current.ExistsInCurrentScope(n.Name.Name) {
		a.report.Errorf(diag.CategorySemantic, n.Pos(), "duplicate symbol: %s", n.Name.Name)
	}

	var declared types.Type
	hasDeclared := n.Type != nil
	if hasDeclared {
		declared = a.resolveTypeName(n.Type)
	}

	var resolved types.Type
	if n.Init != nil {
		initTy := a.analyzeExpression(n.Init)
		if hasDeclared {
			if !types.Compatible(declared, initTy) {
				a.report.Errorf(diag.CategorySemantic, n.Init.Pos(), "cannot initialise %s with value of type %s", declared, initTy)
			}
			resolved = declared
		} else {
			resolved = concretize(initTy)
		}
	} else {
		if hasDeclared {
			resolved = declared
		} else {
			a.report.Errorf(diag.CategorySemantic, n.Pos(), "variable %s needs either a declared type or an initialiser", n.Name.Name)
			resolved = types.ErrType
		}
	}

	sym := &symbols.Symbol{
		Name:    n.Name.Name,
		Type:    resolved,
		IsConst: n.IsConst,
		Pos:     n.Pos(),
	}
	a.current.Define(sym)
	a.annotate(n.Name, resolved)
}

// concretize resolves the abstract `number` literal type to a concrete
// default (int32) when a variable declaration has no explicit type
// annotation to widen into.
func concretize(t types.Type) types.Type {
	if t.Kind == types.KindNumber {
		return types.Int32
	}
	return t
}

// analyzeReturnStatement implements spec.md §4.5: outside any function is
// an error; with a value, the value's type must be compatible with the
// current function's return type; without a value, the current
// function's return type must be void.
func (a *Analyzer) analyzeReturnStatement(n *ast.ReturnStatement) {
	if a.currentReturn == nil {
		a.report.Errorf(diag.CategorySemantic, n.Pos(), "return outside function")
		if n.ReturnValue != nil {
			a.analyzeExpression(n.ReturnValue)
		}
		return
	}
	if n.ReturnValue == nil {
		if !a.currentReturn.IsUnit() {
			a.report.Errorf(diag.CategorySemantic, n.Pos(), "return type mismatch: expected %s, got unit", a.currentReturn)
		}
		return
	}
	valueTy := a.analyzeExpression(n.ReturnValue)
	if !types.Compatible(*a.currentReturn, valueTy) {
		a.report.Errorf(diag.CategorySemantic, n.Pos(), "return type mismatch")
	}
}
