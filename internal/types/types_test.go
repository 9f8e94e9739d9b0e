package types

import "testing"

func TestTypeStringForm(t *testing.T) {
	cases := []struct {
		ty   Type
		want string
	}{
		{Int8, "int8"}, {Int16, "int16"}, {Int32, "int32"}, {Int64, "int64"},
		{Uint8, "uint8"}, {Uint32, "uint32"}, {Uint64, "uint64"},
		{Float32, "float"}, {Float64, "double"},
		{Bool, "bool"}, {Char, "char"}, {String, "string"},
		{Unit, "unit"}, {Null, "null"}, {Number, "number"}, {ErrType, "error"},
		{PointerTo(Int32), "int32*"},
		{PointerTo(PointerTo(Char)), "char**"},
	}
	for _, c := range cases {
		if got := c.ty.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestPointerToAndPointeeOf(t *testing.T) {
	p := PointerTo(Int32)
	if !p.IsPointer() {
		t.Fatal("PointerTo result must be a pointer type")
	}
	pointee, ok := PointeeOf(p)
	if !ok || !pointee.Equals(Int32) {
		t.Errorf("PointeeOf(%v) = %v, %v; want Int32, true", p, pointee, ok)
	}
	if _, ok := PointeeOf(Int32); ok {
		t.Error("PointeeOf on a non-pointer must report false")
	}
}

func TestEquals(t *testing.T) {
	if !Int32.Equals(Int32) {
		t.Error("Int32 should equal itself")
	}
	if Int32.Equals(Int64) {
		t.Error("Int32 should not equal Int64")
	}
	if Int32.Equals(Uint32) {
		t.Error("Int32 should not equal Uint32 (different Kind)")
	}
	if !PointerTo(Int32).Equals(PointerTo(Int32)) {
		t.Error("structurally equal pointer types should be Equals")
	}
	if PointerTo(Int32).Equals(PointerTo(Int64)) {
		t.Error("pointers to different pointees must not be Equals")
	}
	if !Unit.Equals(Unit) {
		t.Error("unit-like kinds should be equal regardless of payload")
	}
}

func TestPredicates(t *testing.T) {
	if !Int32.IsSignedInteger() || Int32.IsUnsignedInteger() {
		t.Error("Int32 classification wrong")
	}
	if !Uint32.IsUnsignedInteger() || Uint32.IsSignedInteger() {
		t.Error("Uint32 classification wrong")
	}
	if !Float32.IsFloatingPoint() || !Float64.IsFloatingPoint() {
		t.Error("Float32/Float64 should be floating point")
	}
	if !Number.IsNumeric() || !Int32.IsNumeric() || !Float64.IsNumeric() {
		t.Error("Number/Int32/Float64 should all be numeric")
	}
	if String.IsNumeric() {
		t.Error("String should not be numeric")
	}
	if !Bool.IsBoolean() || !Char.IsChar() || !String.IsString() || !Unit.IsUnit() {
		t.Error("singleton predicate mismatch")
	}
	if !Null.IsNull() || !ErrType.IsError() {
		t.Error("Null/ErrType predicate mismatch")
	}
	if !PointerTo(Int32).IsPointer() {
		t.Error("pointer predicate mismatch")
	}
}

func TestIsPrimitive(t *testing.T) {
	for _, ty := range []Type{Int32, Uint64, Float32, Float64, Bool, Char, String, Unit} {
		if !ty.IsPrimitive() {
			t.Errorf("%v should be primitive", ty)
		}
	}
	for _, ty := range []Type{Null, Number, ErrType, PointerTo(Int32)} {
		if ty.IsPrimitive() {
			t.Errorf("%v should not be primitive", ty)
		}
	}
}
