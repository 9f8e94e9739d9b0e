package types

import "testing"

func TestImplicitlyConvertibleTo(t *testing.T) {
	cases := []struct {
		from, to Type
		want     bool
	}{
		{Int32, Int32, true},
		{Number, Int32, true},
		{Number, Float64, true},
		{Number, Number, true}, // identity
		{Int8, Int32, true},
		{Int32, Int8, false}, // narrowing is not implicit
		{Uint8, Uint64, true},
		{Int32, Uint32, false}, // families never mix
		{Float32, Float64, true},
		{Float64, Float32, false},
		{Null, PointerTo(Int32), true},
		{Null, Int32, false},
	}
	for _, c := range cases {
		if got := ImplicitlyConvertibleTo(c.from, c.to); got != c.want {
			t.Errorf("ImplicitlyConvertibleTo(%v, %v) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestCompatible(t *testing.T) {
	cases := []struct {
		expected, actual Type
		want             bool
	}{
		{Int32, Int32, true},
		{Int32, Number, true},
		{Bool, Bool, true},
		{Char, Char, true},
		{Char, String, true}, // single-char string literal case
		{PointerTo(Int32), Null, true},
		{Null, PointerTo(Int32), true},
		{Int32, String, false},
		{Bool, Int32, false},
	}
	for _, c := range cases {
		if got := Compatible(c.expected, c.actual); got != c.want {
			t.Errorf("Compatible(%v, %v) = %v, want %v", c.expected, c.actual, got, c.want)
		}
	}
}

func TestCommonType(t *testing.T) {
	cases := []struct {
		a, b Type
		want Type
		ok   bool
	}{
		{Number, Number, Number, true},
		{Number, Int32, Int32, true},
		{Int32, Number, Int32, true},
		{Int8, Int32, Int32, true},
		{Int32, Int8, Int32, true},
		{Float32, Float64, Float64, true},
		{Float64, Int32, Float64, true},
		{Uint8, Uint64, Uint64, true},
		{Int32, Uint32, Type{}, false}, // mixed signedness, neither is `number`
		{Int32, String, Type{}, false},
	}
	for _, c := range cases {
		got, ok := CommonType(c.a, c.b)
		if ok != c.ok {
			t.Errorf("CommonType(%v, %v) ok = %v, want %v", c.a, c.b, ok, c.ok)
			continue
		}
		if ok && !got.Equals(c.want) {
			t.Errorf("CommonType(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestFromKeywordCanonicalisation(t *testing.T) {
	cases := []struct {
		kw   string
		want Type
	}{
		{"int", Int32},
		{"int32", Int32},
		{"float", Float32},
		{"double", Float64},
		{"str", String},
		{"string", String},
		{"void", Unit},
		{"unit", Unit},
	}
	for _, c := range cases {
		got, ok := FromKeyword(c.kw)
		if !ok || !got.Equals(c.want) {
			t.Errorf("FromKeyword(%q) = %v, %v; want %v, true", c.kw, got, ok, c.want)
		}
	}
	if _, ok := FromKeyword("nope"); ok {
		t.Error("FromKeyword should reject unknown keywords")
	}
}

func TestParseTypeString(t *testing.T) {
	got, ok := ParseTypeString("int32**")
	if !ok {
		t.Fatal("ParseTypeString should accept pointer suffixes")
	}
	want := PointerTo(PointerTo(Int32))
	if !got.Equals(want) {
		t.Errorf("ParseTypeString(int32**) = %v, want %v", got, want)
	}
	if _, ok := ParseTypeString("bogus*"); ok {
		t.Error("ParseTypeString should reject an unknown base type")
	}
}
