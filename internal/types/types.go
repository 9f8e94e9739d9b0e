// Package types implements emlang's structured type representation.
//
// spec.md §4.4 models types as canonical strings and asks string
// predicates to classify them; spec.md §9 explicitly asks for the
// opposite internally ("introduce a structured Type sum... Parse the
// string at lex/parse time; operate on the structured form internally;
// stringify only for diagnostics"). Type is that structured sum: a Kind
// tag plus the payload each kind needs (bit width/signedness for
// integers, pointee for pointers). String() remains available and is
// used only for diagnostics and IR value-map bookkeeping.
package types

import "fmt"

// Kind is the closed tag set of type categories.
type Kind int

const (
	KindSignedInt Kind = iota
	KindUnsignedInt
	KindFloat32
	KindFloat64
	KindBool
	KindChar
	KindString
	KindUnit // void/unit
	KindNull
	KindNumber // unannotated numeric literal
	KindPointer
	KindError // sentinel result type for failed analysis, compatible with nothing
)

// Type is an immutable value type; two Types are interchangeable when
// Equals reports true, regardless of identity.
type Type struct {
	Kind    Kind
	Bits    int   // bit width, for SignedInt/UnsignedInt/Float kinds
	Pointee *Type // non-nil only when Kind == KindPointer
}

// Singleton primitive values. Integer/float Types are otherwise
// constructed via the helpers below so callers never hand-roll a Bits
// value that doesn't match the vocabulary in spec.md §3.
var (
	Int8    = Type{Kind: KindSignedInt, Bits: 8}
	Int16   = Type{Kind: KindSignedInt, Bits: 16}
	Int32   = Type{Kind: KindSignedInt, Bits: 32}
	Int64   = Type{Kind: KindSignedInt, Bits: 64}
	ISize   = Type{Kind: KindSignedInt, Bits: 64} // pointer-sized; assumes a 64-bit target
	Uint8   = Type{Kind: KindUnsignedInt, Bits: 8}
	Uint16  = Type{Kind: KindUnsignedInt, Bits: 16}
	Uint32  = Type{Kind: KindUnsignedInt, Bits: 32}
	Uint64  = Type{Kind: KindUnsignedInt, Bits: 64}
	USize   = Type{Kind: KindUnsignedInt, Bits: 64}
	Float32 = Type{Kind: KindFloat32, Bits: 32}
	Float64 = Type{Kind: KindFloat64, Bits: 64}
	Bool    = Type{Kind: KindBool, Bits: 1}
	Char    = Type{Kind: KindChar, Bits: 8}
	String  = Type{Kind: KindString}
	Unit    = Type{Kind: KindUnit}
	Null    = Type{Kind: KindNull}
	Number  = Type{Kind: KindNumber}
	ErrType = Type{Kind: KindError}
)

// PointerTo returns the pointer type T* for pointee T.
func PointerTo(pointee Type) Type {
	p := pointee
	return Type{Kind: KindPointer, Pointee: &p}
}

// PointeeOf returns the pointee of a pointer type and true, or the zero
// Type and false if t is not a pointer.
func PointeeOf(t Type) (Type, bool) {
	if t.Kind != KindPointer || t.Pointee == nil {
		return Type{}, false
	}
	return *t.Pointee, true
}

// String renders the canonical display form described in spec.md §3:
// signed/unsigned integers and floats by name, pointers by appending
// "*" to the pointee's form.
func (t Type) String() string {
	switch t.Kind {
	case KindSignedInt:
		switch t.Bits {
		case 8:
			return "int8"
		case 16:
			return "int16"
		case 32:
			return "int32"
		default:
			return "int64"
		}
	case KindUnsignedInt:
		switch t.Bits {
		case 8:
			return "uint8"
		case 16:
			return "uint16"
		case 32:
			return "uint32"
		default:
			return "uint64"
		}
	case KindFloat32:
		return "float"
	case KindFloat64:
		return "double"
	case KindBool:
		return "bool"
	case KindChar:
		return "char"
	case KindString:
		return "string"
	case KindUnit:
		return "unit"
	case KindNull:
		return "null"
	case KindNumber:
		return "number"
	case KindPointer:
		return fmt.Sprintf("%s*", t.Pointee.String())
	default:
		return "error"
	}
}

// Equals reports structural equality: same Kind, same Bits for sized
// kinds, and recursively equal Pointee for pointers.
func (t Type) Equals(other Type) bool {
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case KindSignedInt, KindUnsignedInt, KindFloat32, KindFloat64:
		return t.Bits == other.Bits
	case KindPointer:
		if t.Pointee == nil || other.Pointee == nil {
			return t.Pointee == other.Pointee
		}
		return t.Pointee.Equals(*other.Pointee)
	default:
		return true
	}
}

func (t Type) IsPrimitive() bool {
	switch t.Kind {
	case KindSignedInt, KindUnsignedInt, KindFloat32, KindFloat64, KindBool, KindChar, KindString, KindUnit:
		return true
	default:
		return false
	}
}

func (t Type) IsSignedInteger() bool   { return t.Kind == KindSignedInt }
func (t Type) IsUnsignedInteger() bool { return t.Kind == KindUnsignedInt }
func (t Type) IsInteger() bool         { return t.IsSignedInteger() || t.IsUnsignedInteger() }
func (t Type) IsFloatingPoint() bool   { return t.Kind == KindFloat32 || t.Kind == KindFloat64 }
func (t Type) IsNumeric() bool {
	return t.IsInteger() || t.IsFloatingPoint() || t.Kind == KindNumber
}
func (t Type) IsBoolean() bool { return t.Kind == KindBool }
func (t Type) IsChar() bool    { return t.Kind == KindChar }
func (t Type) IsString() bool  { return t.Kind == KindString }
func (t Type) IsUnit() bool    { return t.Kind == KindUnit }
func (t Type) IsPointer() bool { return t.Kind == KindPointer }
func (t Type) IsNull() bool    { return t.Kind == KindNull }
func (t Type) IsError() bool   { return t.Kind == KindError }

// integerRank orders a signed or unsigned integer family by bit width,
// used by CommonType to find the "larger" member of a family.
func integerRank(t Type) int {
	switch t.Bits {
	case 8:
		return 0
	case 16:
		return 1
	case 32:
		return 2
	default:
		return 3
	}
}
