package types

import "strings"

// FromKeyword maps a type-name keyword spelling to its structured Type.
// It implements spec.md §9's third open question: the bare "int" keyword
// canonicalises to int32, and the type keyword "float" is always the
// 32-bit float ("double" is the distinct 64-bit spelling). Pointer
// suffixes ("*") are stripped by the caller (the parser builds PointerTo
// nesting itself); this only resolves the base-name table.
func FromKeyword(name string) (Type, bool) {
	switch name {
	case "int8":
		return Int8, true
	case "int16":
		return Int16, true
	case "int32", "int":
		return Int32, true
	case "int64":
		return Int64, true
	case "isize":
		return ISize, true
	case "uint8":
		return Uint8, true
	case "uint16":
		return Uint16, true
	case "uint32":
		return Uint32, true
	case "uint64":
		return Uint64, true
	case "usize":
		return USize, true
	case "float":
		return Float32, true
	case "double":
		return Float64, true
	case "bool":
		return Bool, true
	case "char":
		return Char, true
	case "str", "string":
		return String, true
	case "void", "unit":
		return Unit, true
	default:
		return Type{}, false
	}
}

// ParseTypeString parses a canonical display-form string (as produced by
// Type.String, with trailing "*" for pointers) back into a structured
// Type. It exists for diagnostics round-tripping and for any component
// that only has the string form available; normal construction during
// parsing goes through FromKeyword and PointerTo directly.
func ParseTypeString(s string) (Type, bool) {
	depth := 0
	for strings.HasSuffix(s, "*") {
		s = strings.TrimSuffix(s, "*")
		depth++
	}
	base, ok := FromKeyword(s)
	if !ok {
		return Type{}, false
	}
	for i := 0; i < depth; i++ {
		base = PointerTo(base)
	}
	return base, true
}
