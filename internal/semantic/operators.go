package semantic

import (
	"github.com/byacherx/emlangc/internal/ast"
	"github.com/byacherx/emlangc/internal/diag"
	"github.com/byacherx/emlangc/internal/types"
)

var arithmeticOps = map[string]bool{"+": true, "-": true, "*": true, "/": true, "%": true}
var relationalOps = map[string]bool{"<": true, "<=": true, ">": true, ">=": true}
var equalityOps = map[string]bool{"==": true, "!=": true}
var logicalOps = map[string]bool{"&&": true, "||": true}
var bitwiseShiftOps = map[string]bool{"&": true, "|": true, "^": true, "<<": true, ">>": true}

// analyzeBinaryExpression implements spec.md §4.5's per-category binary
// operator rules.
func (a *Analyzer) analyzeBinaryExpression(n *ast.BinaryExpression) types.Type {
	lt := a.analyzeExpression(n.Left)
	rt := a.analyzeExpression(n.Right)

	switch {
	case arithmeticOps[n.Operator]:
		if !lt.IsNumeric() || !rt.IsNumeric() {
			a.report.Errorf(diag.CategorySemantic, n.Pos(), "operator %q requires numeric operands, got %s and %s", n.Operator, lt, rt)
			return a.annotate(n, types.ErrType)
		}
		common, ok := types.CommonType(lt, rt)
		if !ok {
			a.report.Errorf(diag.CategorySemantic, n.Pos(), "incompatible numeric operand types %s and %s", lt, rt)
			return a.annotate(n, types.ErrType)
		}
		return a.annotate(n, common)

	case relationalOps[n.Operator]:
		if !lt.IsNumeric() || !rt.IsNumeric() {
			a.report.Errorf(diag.CategorySemantic, n.Pos(), "operator %q requires numeric operands, got %s and %s", n.Operator, lt, rt)
			return a.annotate(n, types.ErrType)
		}
		if _, ok := types.CommonType(lt, rt); !ok {
			a.report.Errorf(diag.CategorySemantic, n.Pos(), "incompatible numeric operand types %s and %s", lt, rt)
			return a.annotate(n, types.ErrType)
		}
		return a.annotate(n, types.Bool)

	case equalityOps[n.Operator]:
		nullPointerPair := (lt.IsNull() && rt.IsPointer()) || (lt.IsPointer() && rt.IsNull())
		if !nullPointerPair && !types.Compatible(lt, rt) && !types.Compatible(rt, lt) {
			a.report.Errorf(diag.CategorySemantic, n.Pos(), "operator %q requires compatible operands, got %s and %s", n.Operator, lt, rt)
			return a.annotate(n, types.ErrType)
		}
		return a.annotate(n, types.Bool)

	case logicalOps[n.Operator]:
		if !lt.IsBoolean() || !rt.IsBoolean() {
			a.report.Errorf(diag.CategorySemantic, n.Pos(), "operator %q requires bool operands, got %s and %s", n.Operator, lt, rt)
			return a.annotate(n, types.ErrType)
		}
		return a.annotate(n, types.Bool)

	case bitwiseShiftOps[n.Operator]:
		if !lt.IsInteger() || !rt.IsInteger() {
			a.report.Errorf(diag.CategorySemantic, n.Pos(), "operator %q requires integer operands, got %s and %s", n.Operator, lt, rt)
			return a.annotate(n, types.ErrType)
		}
		common, ok := types.CommonType(lt, rt)
		if !ok {
			a.report.Errorf(diag.CategorySemantic, n.Pos(), "incompatible integer operand types %s and %s", lt, rt)
			return a.annotate(n, types.ErrType)
		}
		return a.annotate(n, common)

	default:
		a.report.Errorf(diag.CategorySemantic, n.Pos(), "unknown binary operator %q", n.Operator)
		return a.annotate(n, types.ErrType)
	}
}

// analyzeUnaryExpression implements spec.md §4.5: '-' numeric, '!' bool,
// '~' integer.
func (a *Analyzer) analyzeUnaryExpression(n *ast.UnaryExpression) types.Type {
	operandTy := a.analyzeExpression(n.Operand)
	switch n.Operator {
	case "-":
		if !operandTy.IsNumeric() {
			a.report.Errorf(diag.CategorySemantic, n.Pos(), "unary '-' requires a numeric operand, got %s", operandTy)
			return a.annotate(n, types.ErrType)
		}
		return a.annotate(n, operandTy)
	case "!":
		if !operandTy.IsBoolean() {
			a.report.Errorf(diag.CategorySemantic, n.Pos(), "unary '!' requires a bool operand, got %s", operandTy)
			return a.annotate(n, types.ErrType)
		}
		return a.annotate(n, types.Bool)
	case "~":
		if !operandTy.IsInteger() {
			a.report.Errorf(diag.CategorySemantic, n.Pos(), "unary '~' requires an integer operand, got %s", operandTy)
			return a.annotate(n, types.ErrType)
		}
		return a.annotate(n, operandTy)
	default:
		a.report.Errorf(diag.CategorySemantic, n.Pos(), "unknown unary operator %q", n.Operator)
		return a.annotate(n, types.ErrType)
	}
}

// analyzeDereferenceExpression requires a pointer operand and yields its
// pointee (spec.md §4.5).
func (a *Analyzer) analyzeDereferenceExpression(n *ast.DereferenceExpression) types.Type {
	operandTy := a.analyzeExpression(n.Operand)
	pointee, ok := types.PointeeOf(operandTy)
	if !ok {
		a.report.Errorf(diag.CategorySemantic, n.Pos(), "cannot dereference non-pointer type %s", operandTy)
		return a.annotate(n, types.ErrType)
	}
	return a.annotate(n, pointee)
}

// analyzeAddressOfExpression requires an lvalue (identifier) operand and
// yields pointee* (spec.md §4.5).
func (a *Analyzer) analyzeAddressOfExpression(n *ast.AddressOfExpression) types.Type {
	ident, ok := n.Operand.(*ast.Identifier)
	if !ok {
		a.report.Errorf(diag.CategorySemantic, n.Pos(), "address-of requires an lvalue operand")
		a.analyzeExpression(n.Operand)
		return a.annotate(n, types.ErrType)
	}
	operandTy := a.analyzeIdentifier(ident)
	return a.annotate(n, types.PointerTo(operandTy))
}

// analyzeAssignmentExpression implements spec.md §4.5: the target must be
// an lvalue (a non-constant identifier, or a dereference of a pointer),
// and the value type must be compatible with the target type. The result
// type is the target type.
func (a *Analyzer) analyzeAssignmentExpression(n *ast.AssignmentExpression) types.Type {
	targetTy := a.analyzeAssignmentTarget(n.Target)
	valueTy := a.analyzeExpression(n.Value)
	if !targetTy.IsError() && !types.Compatible(targetTy, valueTy) {
		a.report.Errorf(diag.CategorySemantic, n.Pos(), "cannot assign value of type %s to target of type %s", valueTy, targetTy)
	}
	return a.annotate(n, targetTy)
}

func (a *Analyzer) analyzeAssignmentTarget(target ast.Expression) types.Type {
	switch t := target.(type) {
	case *ast.Identifier:
		sym, ok := a.current.Resolve(t.Name)
		if !ok {
			a.report.Errorf(diag.CategorySemantic, t.Pos(), "undefined identifier: %s", t.Name)
			return a.annotate(t, types.ErrType)
		}
		if sym.IsConst {
			a.report.Errorf(diag.CategorySemantic, t.Pos(), "cannot assign to const: %s", t.Name)
		}
		return a.annotate(t, sym.Type)
	case *ast.DereferenceExpression:
		return a.analyzeDereferenceExpression(t)
	default:
		// The parser already reported "invalid assignment target"; still
		// analyse the sub-expression so downstream passes see consistent
		// annotations.
		return a.analyzeExpression(target)
	}
}

// analyzeCallExpression implements spec.md §4.5: the callee must resolve
// to a function symbol; the analyser records the declared return type as
// the call's type. Argument arity/type checking against the concrete
// LLVM signature happens at codegen time, per spec.md §4.5.
func (a *Analyzer) analyzeCallExpression(n *ast.CallExpression) types.Type {
	for _, arg := range n.Args {
		a.analyzeExpression(arg)
	}
	if n.Callee == nil {
		return a.annotate(n, types.ErrType)
	}
	sym, ok := a.current.Resolve(n.Callee.Name)
	if !ok {
		a.report.Errorf(diag.CategorySemantic, n.Pos(), "undefined identifier: %s", n.Callee.Name)
		return a.annotate(n, types.ErrType)
	}
	if !sym.IsFunction {
		a.report.Errorf(diag.CategorySemantic, n.Pos(), "%s is not callable", n.Callee.Name)
		return a.annotate(n, types.ErrType)
	}
	return a.annotate(n, sym.Type)
}
