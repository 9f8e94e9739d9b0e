package codegen

import (
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	irtypes "github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"github.com/byacherx/emlangc/internal/ast"
	"github.com/byacherx/emlangc/internal/types"
)

// genExpression lowers one expression to an SSA value, dispatching on its
// concrete type (spec.md §4.6's per-node lowering table). The result's
// source type is always recoverable via g.sem.TypeOf(e), since codegen
// never recomputes a type the analyser already annotated.
func (g *Generator) genExpression(e ast.Expression) value.Value {
	switch n := e.(type) {
	case *ast.IntegerLiteral:
		return g.genIntegerLiteral(n)
	case *ast.FloatLiteral:
		return g.genFloatLiteral(n)
	case *ast.BoolLiteral:
		v := int64(0)
		if n.Value {
			v = 1
		}
		return constant.NewInt(irtypes.I1, v)
	case *ast.CharLiteral:
		return constant.NewInt(irtypes.I8, int64(n.Value))
	case *ast.StringLiteral:
		return g.genStringLiteral(n)
	case *ast.NullLiteral:
		return constant.NewNull(irtypes.NewPointer(irtypes.I8))
	case *ast.Identifier:
		return g.genIdentifierLoad(n)
	case *ast.BinaryExpression:
		return g.genBinaryExpression(n)
	case *ast.UnaryExpression:
		return g.genUnaryExpression(n)
	case *ast.DereferenceExpression:
		return g.genDereference(n)
	case *ast.AddressOfExpression:
		return g.genAddressOf(n)
	case *ast.AssignmentExpression:
		return g.genAssignment(n)
	case *ast.CallExpression:
		return g.genCall(n)
	case *ast.ArrayLiteral:
		return g.genArrayLiteral(n)
	case *ast.IndexExpression:
		return g.genIndex(n)
	case *ast.CastExpression:
		return g.genCast(n)
	default:
		g.internalError(e.Pos(), "internal error: codegen has no lowering for expression %T", n)
		return constant.NewInt(irtypes.I32, 0)
	}
}

func (g *Generator) genIntegerLiteral(n *ast.IntegerLiteral) value.Value {
	ty := g.sem.TypeOf(n)
	it, ok := g.lowerType(ty).(*irtypes.IntType)
	if !ok {
		it = irtypes.I32
	}
	return constant.NewInt(it, n.Value)
}

func (g *Generator) genFloatLiteral(n *ast.FloatLiteral) value.Value {
	ty := g.sem.TypeOf(n)
	ft, ok := g.lowerType(ty).(*irtypes.FloatType)
	if !ok {
		ft = irtypes.Float
	}
	return constant.NewFloat(ft, n.Value)
}

// genStringLiteral emits a private global `[N x i8]` holding the
// NUL-terminated bytes and returns a pointer to its first element
// (spec.md §4.6: "a string literal lowers to a file-private global
// constant byte array plus a pointer to its first element").
func (g *Generator) genStringLiteral(n *ast.StringLiteral) value.Value {
	data := append([]byte(n.Value), 0)
	arr := constant.NewCharArray(data)
	global := g.module.NewGlobalDef(g.nextStringName(), arr)
	global.Immutable = true
	global.Linkage = enum.LinkagePrivate
	zero := constant.NewInt(irtypes.I32, 0)
	return constant.NewGetElementPtr(arr.Typ, global, zero, zero)
}

// genIdentifierLoad resolves name against the value map and loads its
// current value (spec.md §4.6: reads go through a load from the
// variable's alloca/global address).
func (g *Generator) genIdentifierLoad(n *ast.Identifier) value.Value {
	b, ok := g.resolve(n.Name)
	if !ok {
		g.internalError(n.Pos(), "internal error: codegen found no binding for %q", n.Name)
		return constant.NewInt(irtypes.I32, 0)
	}
	return g.curBlock.NewLoad(g.lowerType(b.ty), b.addr)
}

// genDereference loads through a pointer value (spec.md §4.2 `*p`).
func (g *Generator) genDereference(n *ast.DereferenceExpression) value.Value {
	ptr := g.genExpression(n.Operand)
	resultTy := g.sem.TypeOf(n)
	return g.curBlock.NewLoad(g.lowerType(resultTy), ptr)
}

// genAddressOf takes the address of an identifier's value-map slot
// directly, without a load (spec.md §4.2 `&x` is only valid over an
// identifier).
func (g *Generator) genAddressOf(n *ast.AddressOfExpression) value.Value {
	id, ok := n.Operand.(*ast.Identifier)
	if !ok {
		g.internalError(n.Pos(), "internal error: address-of target is not an identifier")
		return constant.NewNull(irtypes.NewPointer(irtypes.I8))
	}
	b, ok := g.resolve(id.Name)
	if !ok {
		g.internalError(n.Pos(), "internal error: codegen found no binding for %q", id.Name)
		return constant.NewNull(irtypes.NewPointer(irtypes.I8))
	}
	return b.addr
}

// genAssignment lowers `target = value`, storing to the target's
// value-map address (identifier) or dereferenced pointer (spec.md §4.2).
// The expression's own value is the stored value, matching emlang's
// C-style assignment-as-expression semantics.
func (g *Generator) genAssignment(n *ast.AssignmentExpression) value.Value {
	rhs := g.genExpression(n.Value)
	rhs = g.convert(rhs, g.sem.TypeOf(n.Value), g.sem.TypeOf(n.Target))

	switch target := n.Target.(type) {
	case *ast.Identifier:
		b, ok := g.resolve(target.Name)
		if !ok {
			g.internalError(n.Pos(), "internal error: codegen found no binding for %q", target.Name)
			return rhs
		}
		g.curBlock.NewStore(rhs, b.addr)
	case *ast.DereferenceExpression:
		ptr := g.genExpression(target.Operand)
		g.curBlock.NewStore(rhs, ptr)
	case *ast.IndexExpression:
		addr := g.genIndexAddress(target)
		g.curBlock.NewStore(rhs, addr)
	default:
		g.internalError(n.Pos(), "internal error: unsupported assignment target %T", target)
	}
	return rhs
}

// genCall lowers a direct call to a named function, per spec.md §4.2's
// "calls target only named functions" restriction: the callee is looked
// up in g.funcs (user functions) then g.builtinFunc (the runtime
// registry), declaring the extern on first use.
func (g *Generator) genCall(n *ast.CallExpression) value.Value {
	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		args[i] = g.genExpression(a)
	}

	fn := g.funcs[n.Callee.Name]
	if fn == nil {
		fn = g.builtinFunc(n.Callee.Name)
	}
	if fn == nil {
		g.internalError(n.Pos(), "internal error: codegen found no function for call to %q", n.Callee.Name)
		return constant.NewInt(irtypes.I32, 0)
	}
	if len(args) != len(fn.Params) {
		g.internalError(n.Pos(), "argument count mismatch in call to %q: got %d, want %d", n.Callee.Name, len(args), len(fn.Params))
		return constant.NewInt(irtypes.I32, 0)
	}

	for i, p := range fn.Params {
		if i < len(args) {
			args[i] = g.convertToLLVM(args[i], p.Typ)
		}
	}

	return g.curBlock.NewCall(fn, args...)
}

// genArrayLiteral allocates a stack array sized to the literal, stores
// each element, and yields a pointer to its first element — the same
// "array is a pointer" representation the analyser assigns (spec.md
// §4.4's PointerTo(elem) array typing).
func (g *Generator) genArrayLiteral(n *ast.ArrayLiteral) value.Value {
	elemTy := types.Int32
	if full := g.sem.TypeOf(n); full.Kind == types.KindPointer && full.Pointee != nil {
		elemTy = *full.Pointee
	}
	llElem := g.lowerType(elemTy)
	arrTy := irtypes.NewArray(uint64(len(n.Elements)), llElem)
	alloca := g.entryBlock.NewAlloca(arrTy)

	zero := constant.NewInt(irtypes.I32, 0)
	for i, el := range n.Elements {
		v := g.genExpression(el)
		v = g.convert(v, g.sem.TypeOf(el), elemTy)
		idx := constant.NewInt(irtypes.I32, int64(i))
		elemPtr := g.curBlock.NewGetElementPtr(arrTy, alloca, zero, idx)
		g.curBlock.NewStore(v, elemPtr)
	}

	firstPtr := g.curBlock.NewGetElementPtr(arrTy, alloca, zero, zero)
	return firstPtr
}

// genIndexAddress computes the element address for `arr[idx]` without
// loading it, shared by genIndex (load) and genAssignment (store).
func (g *Generator) genIndexAddress(n *ast.IndexExpression) value.Value {
	arr := g.genExpression(n.Array)
	idx := g.genExpression(n.Index)
	elemTy := g.sem.TypeOf(n)
	return g.curBlock.NewGetElementPtr(g.lowerType(elemTy), arr, idx)
}

func (g *Generator) genIndex(n *ast.IndexExpression) value.Value {
	addr := g.genIndexAddress(n)
	elemTy := g.sem.TypeOf(n)
	return g.curBlock.NewLoad(g.lowerType(elemTy), addr)
}

// genCast lowers an explicit cast expression using the same conversion
// machinery as an implicit assignment/argument conversion (spec.md
// §4.4's cast table is a superset of the implicit-conversion table).
func (g *Generator) genCast(n *ast.CastExpression) value.Value {
	v := g.genExpression(n.Operand)
	from := g.sem.TypeOf(n.Operand)
	to := g.sem.TypeOf(n)
	return g.convert(v, from, to)
}
