// Package builtins is the static catalogue of emlang's runtime library
// surface: every `emlang_`-prefixed C-ABI function the semantic analyser
// pre-registers as a function symbol and the code generator emits an
// extern declaration for on first use (spec.md §6's "Built-in runtime
// contract").
//
// The catalogue is a pure function over no external state (spec.md §9:
// "make the registry a pure function returning an immutable table"),
// a package-level-registry shape matching the exact C signatures in
// original_source/library/include/{io,math,string,memory}.h.
package builtins

import "github.com/byacherx/emlangc/internal/types"

// Entry is one catalogue record: a surface name exposed to emlang source,
// its parameter and return types, and the link-time symbol name of the
// C-ABI function it resolves to.
type Entry struct {
	Name     string
	Params   []types.Type
	Return   types.Type
	LinkName string
}

var charPtr = types.PointerTo(types.Char)
var voidPtr = types.PointerTo(types.Uint8)

// registry is built once by its package-level initialiser and never
// mutated by this package afterwards; All() hands out that same slice,
// not a copy (spec.md §9).
var registry = buildRegistry()

// All returns the full builtin catalogue in declaration order.
func All() []Entry {
	return registry
}

// Lookup finds a builtin entry by its emlang-visible name.
func Lookup(name string) (Entry, bool) {
	for _, e := range registry {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

func buildRegistry() []Entry {
	return []Entry{
		// I/O (original_source/library/include/io.h, emlang_io.h)
		{"print_int", []types.Type{types.Int32}, types.Unit, "emlang_print_int"},
		{"print_str", []types.Type{charPtr}, types.Unit, "emlang_print_str"},
		{"print_char", []types.Type{types.Char}, types.Unit, "emlang_print_char"},
		{"print_float", []types.Type{types.Float32}, types.Unit, "emlang_print_float"},
		{"println", nil, types.Unit, "emlang_println"},
		{"read_int", nil, types.Int32, "emlang_read_int"},
		{"read_char", nil, types.Char, "emlang_read_char"},
		{"read_float", nil, types.Float32, "emlang_read_float"},
		{"print_hex", []types.Type{types.Int32}, types.Unit, "emlang_print_hex"},
		{"print_binary", []types.Type{types.Int32}, types.Unit, "emlang_print_binary"},

		// Math (original_source/library/include/math.h, emlang_math.h)
		{"abs", []types.Type{types.Int32}, types.Int32, "emlang_abs"},
		{"pow", []types.Type{types.Int32, types.Int32}, types.Int32, "emlang_pow"},
		{"sqrt", []types.Type{types.Int32}, types.Int32, "emlang_sqrt"},
		{"random", []types.Type{types.Int32, types.Int32}, types.Int32, "emlang_random"},
		{"min", []types.Type{types.Int32, types.Int32}, types.Int32, "emlang_min"},
		{"max", []types.Type{types.Int32, types.Int32}, types.Int32, "emlang_max"},
		{"gcd", []types.Type{types.Int32, types.Int32}, types.Int32, "emlang_gcd"},
		{"lcm", []types.Type{types.Int32, types.Int32}, types.Int32, "emlang_lcm"},
		{"factorial", []types.Type{types.Int32}, types.Int32, "emlang_factorial"},
		{"fibonacci", []types.Type{types.Int32}, types.Int32, "emlang_fibonacci"},
		{"is_prime", []types.Type{types.Int32}, types.Int32, "emlang_is_prime"},
		{"mod", []types.Type{types.Int32, types.Int32}, types.Int32, "emlang_mod"},

		// Strings (original_source/library/include/string.h)
		{"strlen", []types.Type{charPtr}, types.Int32, "emlang_strlen"},
		{"strcmp", []types.Type{charPtr, charPtr}, types.Int32, "emlang_strcmp"},
		{"strcpy", []types.Type{charPtr, charPtr, types.Int32}, charPtr, "emlang_strcpy"},
		{"strcat", []types.Type{charPtr, charPtr, types.Int32}, charPtr, "emlang_strcat"},
		{"strncmp", []types.Type{charPtr, charPtr, types.Int32}, types.Int32, "emlang_strncmp"},
		{"to_upper", []types.Type{charPtr}, charPtr, "emlang_to_upper"},
		{"to_lower", []types.Type{charPtr}, charPtr, "emlang_to_lower"},
		{"is_numeric", []types.Type{charPtr}, types.Int32, "emlang_is_numeric"},
		{"trim", []types.Type{charPtr}, charPtr, "emlang_trim"},

		// Memory (original_source/library/include/memory.h)
		{"malloc", []types.Type{types.Int32}, voidPtr, "emlang_malloc"},
		{"free", []types.Type{voidPtr}, types.Unit, "emlang_free"},
		{"memset", []types.Type{voidPtr, types.Int32, types.Int32}, types.Unit, "emlang_memset"},
		{"calloc", []types.Type{types.Int32, types.Int32}, voidPtr, "emlang_calloc"},
		{"realloc", []types.Type{voidPtr, types.Int32}, voidPtr, "emlang_realloc"},
		{"memcmp", []types.Type{voidPtr, voidPtr, types.Int32}, types.Int32, "emlang_memcmp"},
		{"memcpy", []types.Type{voidPtr, voidPtr, types.Int32}, voidPtr, "emlang_memcpy"},
		{"memmove", []types.Type{voidPtr, voidPtr, types.Int32}, voidPtr, "emlang_memmove"},
	}
}
