package semantic

import (
	"github.com/byacherx/emlangc/internal/ast"
	"github.com/byacherx/emlangc/internal/diag"
	"github.com/byacherx/emlangc/internal/types"
)

// analyzeExpression dispatches on the expression's concrete type and
// annotates it in the side table, per spec.md §4.5's per-node
// obligations.
func (a *Analyzer) analyzeExpression(e ast.Expression) types.Type {
	switch n := e.(type) {
	case *ast.IntegerLiteral:
		return a.annotate(n, types.Number)
	case *ast.FloatLiteral:
		return a.annotate(n, types.Number)
	case *ast.StringLiteral:
		return a.annotate(n, types.String)
	case *ast.CharLiteral:
		return a.annotate(n, types.Char)
	case *ast.BoolLiteral:
		return a.annotate(n, types.Bool)
	case *ast.NullLiteral:
		return a.annotate(n, types.Null)
	case *ast.Identifier:
		return a.analyzeIdentifier(n)
	case *ast.BinaryExpression:
		return a.analyzeBinaryExpression(n)
	case *ast.UnaryExpression:
		return a.analyzeUnaryExpression(n)
	case *ast.DereferenceExpression:
		return a.analyzeDereferenceExpression(n)
	case *ast.AddressOfExpression:
		return a.analyzeAddressOfExpression(n)
	case *ast.AssignmentExpression:
		return a.analyzeAssignmentExpression(n)
	case *ast.CallExpression:
		return a.analyzeCallExpression(n)
	case *ast.ArrayLiteral:
		return a.analyzeArrayLiteral(n)
	case *ast.IndexExpression:
		return a.analyzeIndexExpression(n)
	case *ast.CastExpression:
		return a.analyzeCastExpression(n)
	case *ast.MemberExpression:
		// Reserved for future struct support (spec.md §4.6); no symbol
		// table entry exists yet for any member name, so this always
		// resolves to the error type without emitting a diagnostic that
		// would be more confusing than helpful about an unsupported
		// feature.
		a.analyzeExpression(n.Object)
		return a.annotate(n, types.ErrType)
	case *ast.ObjectLiteral:
		for _, f := range n.Fields {
			a.analyzeExpression(f.Value)
		}
		return a.annotate(n, types.ErrType)
	default:
		return types.ErrType
	}
}

func (a *Analyzer) analyzeArrayLiteral(n *ast.ArrayLiteral) types.Type {
	elem := types.ErrType
	for i, el := range n.Elements {
		t := a.analyzeExpression(el)
		if i == 0 {
			elem = t
		}
	}
	return a.annotate(n, types.PointerTo(elem))
}

func (a *Analyzer) analyzeIndexExpression(n *ast.IndexExpression) types.Type {
	arrTy := a.analyzeExpression(n.Array)
	a.analyzeExpression(n.Index)
	elem, ok := types.PointeeOf(arrTy)
	if !ok {
		a.report.Errorf(diag.CategorySemantic, n.Pos(), "cannot index into non-array/non-pointer type %s", arrTy)
		return a.annotate(n, types.ErrType)
	}
	return a.annotate(n, elem)
}

func (a *Analyzer) analyzeCastExpression(n *ast.CastExpression) types.Type {
	a.analyzeExpression(n.Operand)
	target := a.resolveTypeName(n.TargetTy)
	return a.annotate(n, target)
}
