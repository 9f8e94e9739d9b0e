package codegen

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	irtypes "github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"github.com/byacherx/emlangc/internal/ast"
	"github.com/byacherx/emlangc/internal/types"
)

// signedICmpPreds / unsignedICmpPreds / fcmpPreds map relational and
// equality operators to the LLVM predicate matching each operand kind
// (spec.md §4.6: "signed vs. unsigned comparison picks a different LLVM
// predicate for the same source operator").
var signedICmpPreds = map[string]enum.IPred{
	"<": enum.IPredSLT, "<=": enum.IPredSLE,
	">": enum.IPredSGT, ">=": enum.IPredSGE,
	"==": enum.IPredEQ, "!=": enum.IPredNE,
}

var unsignedICmpPreds = map[string]enum.IPred{
	"<": enum.IPredULT, "<=": enum.IPredULE,
	">": enum.IPredUGT, ">=": enum.IPredUGE,
	"==": enum.IPredEQ, "!=": enum.IPredNE,
}

var fcmpPreds = map[string]enum.FPred{
	"<": enum.FPredOLT, "<=": enum.FPredOLE,
	">": enum.FPredOGT, ">=": enum.FPredOGE,
	"==": enum.FPredOEQ, "!=": enum.FPredONE,
}

// genBinaryExpression lowers one binary operator, dispatching on the
// common operand type the analyser already computed (spec.md §4.6).
func (g *Generator) genBinaryExpression(n *ast.BinaryExpression) value.Value {
	switch n.Operator {
	case "&&":
		return g.genShortCircuit(n, true)
	case "||":
		return g.genShortCircuit(n, false)
	}

	resultTy := g.sem.TypeOf(n)
	leftTy := g.sem.TypeOf(n.Left)
	rightTy := g.sem.TypeOf(n.Right)

	operandTy := resultTy
	if resultTy.IsBoolean() {
		// Relational/equality results are bool, but the operands'
		// *common* numeric type (not the result) decides the opcode.
		if common, ok := types.CommonType(leftTy, rightTy); ok {
			operandTy = common
		} else {
			operandTy = leftTy
		}
	}

	left := g.genExpression(n.Left)
	right := g.genExpression(n.Right)
	llTy := g.lowerType(operandTy)
	left = g.convertOperand(left, leftTy, operandTy, llTy)
	right = g.convertOperand(right, rightTy, operandTy, llTy)

	switch {
	case operandTy.IsFloatingPoint():
		return g.genFloatBinary(n.Operator, left, right)
	case operandTy.IsUnsignedInteger():
		return g.genUnsignedIntBinary(n.Operator, left, right)
	default:
		return g.genSignedIntBinary(n.Operator, left, right)
	}
}

// convertOperand converts v (whose static type is from) to the shared
// operand type both sides of a binary op must agree on, taking the
// signed/unsigned int->float split into account.
func (g *Generator) convertOperand(v value.Value, from, to types.Type, llTarget irtypes.Type) value.Value {
	if from.Equals(to) {
		return v
	}
	if from.IsUnsignedInteger() {
		return g.convertUnsigned(v, llTarget)
	}
	return g.convertToLLVM(v, llTarget)
}

func (g *Generator) genSignedIntBinary(op string, l, r value.Value) value.Value {
	switch op {
	case "+":
		return g.curBlock.NewAdd(l, r)
	case "-":
		return g.curBlock.NewSub(l, r)
	case "*":
		return g.curBlock.NewMul(l, r)
	case "/":
		return g.curBlock.NewSDiv(l, r)
	case "%":
		return g.curBlock.NewSRem(l, r)
	case "&":
		return g.curBlock.NewAnd(l, r)
	case "|":
		return g.curBlock.NewOr(l, r)
	case "^":
		return g.curBlock.NewXor(l, r)
	case "<<":
		return g.curBlock.NewShl(l, r)
	case ">>":
		return g.curBlock.NewAShr(l, r)
	default:
		if pred, ok := signedICmpPreds[op]; ok {
			return g.curBlock.NewICmp(pred, l, r)
		}
		return l
	}
}

func (g *Generator) genUnsignedIntBinary(op string, l, r value.Value) value.Value {
	switch op {
	case "+":
		return g.curBlock.NewAdd(l, r)
	case "-":
		return g.curBlock.NewSub(l, r)
	case "*":
		return g.curBlock.NewMul(l, r)
	case "/":
		return g.curBlock.NewUDiv(l, r)
	case "%":
		return g.curBlock.NewURem(l, r)
	case "&":
		return g.curBlock.NewAnd(l, r)
	case "|":
		return g.curBlock.NewOr(l, r)
	case "^":
		return g.curBlock.NewXor(l, r)
	case "<<":
		return g.curBlock.NewShl(l, r)
	case ">>":
		return g.curBlock.NewLShr(l, r)
	default:
		if pred, ok := unsignedICmpPreds[op]; ok {
			return g.curBlock.NewICmp(pred, l, r)
		}
		return l
	}
}

func (g *Generator) genFloatBinary(op string, l, r value.Value) value.Value {
	switch op {
	case "+":
		return g.curBlock.NewFAdd(l, r)
	case "-":
		return g.curBlock.NewFSub(l, r)
	case "*":
		return g.curBlock.NewFMul(l, r)
	case "/":
		return g.curBlock.NewFDiv(l, r)
	case "%":
		return g.curBlock.NewFRem(l, r)
	default:
		if pred, ok := fcmpPreds[op]; ok {
			return g.curBlock.NewFCmp(pred, l, r)
		}
		return l
	}
}

// genShortCircuit lowers `&&`/`||` with real control-flow short-circuit
// evaluation rather than an eager bitwise AND/OR, per spec.md §4.6's note
// that logical operators "must not evaluate the right operand when the
// left already determines the result". wantTrue is true for `&&` (skip
// the right operand when the left is already false) and false for `||`
// (skip it when the left is already true).
func (g *Generator) genShortCircuit(n *ast.BinaryExpression, wantTrue bool) value.Value {
	left := g.genExpression(n.Left)
	leftBlock := g.curBlock

	rhsBlock := g.curFn.NewBlock("logic.rhs")
	mergeBlock := g.curFn.NewBlock("logic.end")

	if wantTrue {
		g.curBlock.NewCondBr(left, rhsBlock, mergeBlock)
	} else {
		g.curBlock.NewCondBr(left, mergeBlock, rhsBlock)
	}

	g.curBlock = rhsBlock
	right := g.genExpression(n.Right)
	rhsEndBlock := g.curBlock
	if g.curBlock.Term == nil {
		g.curBlock.NewBr(mergeBlock)
	}

	g.curBlock = mergeBlock
	phi := g.curBlock.NewPhi(
		ir.NewIncoming(left, leftBlock),
		ir.NewIncoming(right, rhsEndBlock),
	)
	return phi
}

// genUnaryExpression lowers '-', '!', '~' (spec.md §4.2).
func (g *Generator) genUnaryExpression(n *ast.UnaryExpression) value.Value {
	operand := g.genExpression(n.Operand)
	operandTy := g.sem.TypeOf(n.Operand)

	switch n.Operator {
	case "-":
		if operandTy.IsFloatingPoint() {
			return g.curBlock.NewFNeg(operand)
		}
		return g.curBlock.NewSub(zeroLike(operand), operand)
	case "!":
		return g.curBlock.NewXor(operand, constant.NewInt(irtypes.I1, 1))
	case "~":
		return g.curBlock.NewXor(operand, constant.NewInt(operand.Type().(*irtypes.IntType), -1))
	default:
		return operand
	}
}

// zeroLike returns the zero constant of v's own integer type, used by
// unary negation (`0 - x`), since llir/llvm has no dedicated integer-negate
// instruction.
func zeroLike(v value.Value) value.Value {
	it, ok := v.Type().(*irtypes.IntType)
	if !ok {
		return constant.NewInt(irtypes.I32, 0)
	}
	return constant.NewInt(it, 0)
}
