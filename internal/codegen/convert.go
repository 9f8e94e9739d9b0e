package codegen

import (
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	irtypes "github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"github.com/byacherx/emlangc/internal/types"
)

// convert lowers one implicit or explicit conversion step described by
// spec.md §4.4's compatibility/cast tables: widening within a numeric
// family, signed/unsigned integer <-> float, null -> pointer, and the
// identity case. Source and target arrive as emlang types.Type so the
// signedness each op needs (an LLVM integer alone carries none) is
// always available.
func (g *Generator) convert(v value.Value, from, to types.Type) value.Value {
	if from.Equals(to) {
		return v
	}
	if from.IsUnsignedInteger() {
		return g.convertUnsigned(v, g.lowerType(to))
	}
	if from.IsFloatingPoint() && to.IsUnsignedInteger() {
		if dst, ok := g.lowerType(to).(*irtypes.IntType); ok {
			return g.curBlock.NewFPToUI(v, dst)
		}
	}
	return g.convertToLLVM(v, g.lowerType(to))
}

// convertToLLVM converts v (an emlang numeric/pointer operand) to target,
// an LLVM type, using the widest reasonable rule since codegen has
// usually already lost the precise emlang source Type by the time a
// call-argument or return conversion reaches here (spec.md §4.6's
// "arguments and return values are converted the same way an assignment
// would be").
func (g *Generator) convertToLLVM(v value.Value, target irtypes.Type) value.Value {
	srcTy := v.Type()
	if srcTy.Equal(target) {
		return v
	}

	switch src := srcTy.(type) {
	case *irtypes.IntType:
		switch dst := target.(type) {
		case *irtypes.IntType:
			if dst.BitSize > src.BitSize {
				return g.curBlock.NewSExt(v, dst)
			}
			return g.curBlock.NewTrunc(v, dst)
		case *irtypes.FloatType:
			return g.curBlock.NewSIToFP(v, dst)
		case *irtypes.PointerType:
			return g.curBlock.NewIntToPtr(v, dst)
		}
	case *irtypes.FloatType:
		switch dst := target.(type) {
		case *irtypes.FloatType:
			if isWiderFloat(dst, src) {
				return g.curBlock.NewFPExt(v, dst)
			}
			return g.curBlock.NewFPTrunc(v, dst)
		case *irtypes.IntType:
			return g.curBlock.NewFPToSI(v, dst)
		}
	case *irtypes.PointerType:
		switch dst := target.(type) {
		case *irtypes.PointerType:
			return g.curBlock.NewBitCast(v, dst)
		case *irtypes.IntType:
			return g.curBlock.NewPtrToInt(v, dst)
		}
	}
	// Already-compatible shapes (e.g. identical pointee after lowering)
	// or a conversion this design doesn't model: pass the value through
	// unchanged rather than emit an invalid cast.
	return v
}

func isWiderFloat(a, b *irtypes.FloatType) bool {
	return floatRank(a) > floatRank(b)
}

func floatRank(t *irtypes.FloatType) int {
	switch t.Kind {
	case irtypes.FloatKindDouble:
		return 1
	default:
		return 0
	}
}

// convertUnsigned is the unsigned-source counterpart of convertToLLVM's
// int->float branch, used by binary-expression lowering when the static
// type says the operand is an unsigned integer (LLVM's SIToFP/UIToFP
// split is the one place signedness matters beyond opcode choice).
func (g *Generator) convertUnsigned(v value.Value, target irtypes.Type) value.Value {
	srcTy := v.Type()
	it, ok := srcTy.(*irtypes.IntType)
	if !ok {
		return g.convertToLLVM(v, target)
	}
	switch dst := target.(type) {
	case *irtypes.IntType:
		if dst.BitSize > it.BitSize {
			return g.curBlock.NewZExt(v, dst)
		}
		return g.curBlock.NewTrunc(v, dst)
	case *irtypes.FloatType:
		return g.curBlock.NewUIToFP(v, dst)
	default:
		return g.convertToLLVM(v, target)
	}
}

func zeroInt(t *irtypes.IntType) value.Value         { return constant.NewInt(t, 0) }
func zeroFloat(t *irtypes.FloatType) value.Value     { return constant.NewFloat(t, 0) }
func zeroPointer(t *irtypes.PointerType) value.Value { return constant.NewNull(t) }

func neICmpPred() enum.IPred  { return enum.IPredNE }
func oneFCmpPred() enum.FPred { return enum.FPredONE }
