package codegen

import (
	irtypes "github.com/llir/llvm/ir/types"

	"github.com/byacherx/emlangc/internal/types"
)

// lowerType maps a resolved emlang types.Type to its LLVM representation,
// per spec.md §4.6's type-lowering table. Signedness has no bearing on
// the chosen LLVM integer type (LLVM integers carry no sign; signed vs.
// unsigned only selects which arithmetic/comparison opcode a later
// expression lowering picks) — width decides the slot, op decides the
// behaviour.
//
// Arrays have no dedicated Kind: spec.md §4.4 models an array literal's
// type as a pointer to its element type (the same representation as a
// language-level pointer), so KindPointer's case covers both.
func (g *Generator) lowerType(t types.Type) irtypes.Type {
	switch t.Kind {
	case types.KindBool:
		return irtypes.I1
	case types.KindSignedInt, types.KindUnsignedInt:
		return intTypeForBits(t.Bits)
	case types.KindFloat32:
		return irtypes.Float
	case types.KindFloat64:
		return irtypes.Double
	case types.KindChar:
		return irtypes.I8
	case types.KindString:
		return irtypes.NewPointer(irtypes.I8)
	case types.KindPointer:
		if t.Pointee == nil {
			return irtypes.NewPointer(irtypes.I8)
		}
		return irtypes.NewPointer(g.lowerType(*t.Pointee))
	case types.KindNull:
		return irtypes.NewPointer(irtypes.I8)
	case types.KindUnit:
		return irtypes.Void
	case types.KindNumber:
		// An unconcretized literal that reached codegen defaults to the
		// same int32 slot the analyser's concretize() picks.
		return irtypes.I32
	default:
		return irtypes.I32
	}
}

// intTypeForBits picks the integer width spec.md §4.4 defines (8/16/32/64),
// defaulting to the 32-bit slot, since a bare numeric literal is an
// int32.
func intTypeForBits(bits int) *irtypes.IntType {
	switch bits {
	case 8:
		return irtypes.I8
	case 16:
		return irtypes.I16
	case 64:
		return irtypes.I64
	default:
		return irtypes.I32
	}
}
