package types

// ImplicitlyConvertibleTo reports whether a value of type from can be
// used where a value of type to is expected without an explicit cast,
// per spec.md §4.4's implicit-conversion rules:
//
//   - identity
//   - number -> any concrete numeric
//   - widening within the signed-integer family, the unsigned-integer
//     family, and the floating family
//   - null -> any pointer type
//   - string <-> str (both spellings denote KindString, so this is
//     already identity)
func ImplicitlyConvertibleTo(from, to Type) bool {
	if from.Equals(to) {
		return true
	}
	if from.Kind == KindNumber && to.IsNumeric() && to.Kind != KindNumber {
		return true
	}
	if from.Kind == KindNull && to.Kind == KindPointer {
		return true
	}
	if from.IsSignedInteger() && to.IsSignedInteger() {
		return integerRank(from) <= integerRank(to)
	}
	if from.IsUnsignedInteger() && to.IsUnsignedInteger() {
		return integerRank(from) <= integerRank(to)
	}
	if from.Kind == KindFloat32 && to.Kind == KindFloat64 {
		return true
	}
	return false
}

// Compatible implements spec.md §4.4's compatible(expected, actual):
// equal types, implicit conversion, or one of the explicitly allowed
// literal-target pairs (number->numeric, boolean->bool, char->char,
// string->char for a single-character string, null<->pointer).
func Compatible(expected, actual Type) bool {
	if expected.Equals(actual) {
		return true
	}
	if ImplicitlyConvertibleTo(actual, expected) {
		return true
	}
	if actual.Kind == KindNumber && expected.IsNumeric() {
		return true
	}
	if expected.Kind == KindBool && actual.Kind == KindBool {
		return true
	}
	if expected.Kind == KindChar && actual.Kind == KindChar {
		return true
	}
	if expected.Kind == KindChar && actual.Kind == KindString {
		return true // single-character string literal case, validated by the analyser
	}
	if expected.Kind == KindPointer && actual.Kind == KindNull {
		return true
	}
	if expected.Kind == KindNull && actual.Kind == KindPointer {
		return true
	}
	return false
}

// CommonType returns the "larger" type in a shared numeric family for a
// binary operation over two compatible numeric operands, per spec.md
// §4.4. Signed and unsigned families never mix implicitly; ok is false
// for a mixed non-number pair.
func CommonType(a, b Type) (result Type, ok bool) {
	if a.Kind == KindNumber && b.Kind == KindNumber {
		return Number, true
	}
	if a.Kind == KindNumber && b.IsNumeric() {
		return b, true
	}
	if b.Kind == KindNumber && a.IsNumeric() {
		return a, true
	}
	if !a.IsNumeric() || !b.IsNumeric() {
		return Type{}, false
	}
	if a.IsFloatingPoint() || b.IsFloatingPoint() {
		if a.IsFloatingPoint() && b.IsFloatingPoint() {
			if a.Bits >= b.Bits {
				return a, true
			}
			return b, true
		}
		if a.IsFloatingPoint() {
			return a, true
		}
		return b, true
	}
	if a.IsSignedInteger() && b.IsSignedInteger() {
		if integerRank(a) >= integerRank(b) {
			return a, true
		}
		return b, true
	}
	if a.IsUnsignedInteger() && b.IsUnsignedInteger() {
		if integerRank(a) >= integerRank(b) {
			return a, true
		}
		return b, true
	}
	// mixed signed/unsigned family, neither side is `number`: an error
	// per spec.md §4.4.
	return Type{}, false
}
