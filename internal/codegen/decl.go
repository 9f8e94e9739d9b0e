package codegen

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	irtypes "github.com/llir/llvm/ir/types"

	"github.com/byacherx/emlangc/internal/ast"
	"github.com/byacherx/emlangc/internal/types"
)

// resolveTypeName resolves a parsed type name to its structured Type,
// applying PointerRank wrapping, matching the semantic analyser's own
// resolveTypeName (spec.md §4.4); codegen keeps a private copy since
// declaration lowering runs over the AST directly rather than through
// the analyser's side table for signature shapes.
func resolveTypeName(tn *ast.TypeName) types.Type {
	if tn == nil {
		return types.Unit
	}
	base, ok := types.FromKeyword(tn.Name)
	if !ok {
		base = types.ErrType
	}
	for i := 0; i < tn.PointerRank; i++ {
		base = types.PointerTo(base)
	}
	return base
}

// declareFunctionSignature emits the ir.Func header for n — its
// parameters and return type — without a body, so mutually recursive
// and forward-referencing calls can resolve against g.funcs regardless
// of declaration order (spec.md §4.6: "function signatures are declared
// before any body is lowered").
func (g *Generator) declareFunctionSignature(n *ast.FunctionDeclStatement) {
	retTy := types.Unit
	if n.ReturnType != nil {
		retTy = resolveTypeName(n.ReturnType)
	}

	params := make([]*ir.Param, len(n.Params))
	for i, p := range n.Params {
		params[i] = ir.NewParam(p.Name.Name, g.lowerType(resolveTypeName(p.Type)))
	}

	fn := g.module.NewFunc(n.Name.Name, g.lowerType(retTy), params...)
	if n.IsExtern {
		fn.Linkage = enum.LinkageExternal
	}
	g.funcs[n.Name.Name] = fn
}

// genFunctionBody lowers n's statements into the ir.Func previously
// declared by declareFunctionSignature. Parameters are copied into
// entry-block allocas (spec.md §4.6: "every named value — parameter or
// local — gets an alloca in the function's entry block, not an SSA
// register directly"), which keeps reassignment in the body a plain
// store rather than re-wiring phi nodes.
func (g *Generator) genFunctionBody(n *ast.FunctionDeclStatement) {
	fn := g.funcs[n.Name.Name]
	entry := fn.NewBlock("entry")
	g.curFn = fn
	g.entryBlock = entry
	g.curBlock = entry
	g.pushScope()

	for i, p := range n.Params {
		pt := resolveTypeName(p.Type)
		alloca := g.entryBlock.NewAlloca(g.lowerType(pt))
		g.curBlock.NewStore(fn.Params[i], alloca)
		g.define(p.Name.Name, alloca, pt)
	}

	g.genBlock(n.Body)

	if g.curBlock.Term == nil {
		if _, ok := fn.Sig.RetType.(*irtypes.VoidType); ok {
			g.curBlock.NewRet(nil)
		} else {
			g.curBlock.NewRet(constant.NewZeroInitializer(fn.Sig.RetType))
		}
	}

	g.popScope()
	g.curFn = nil
	g.entryBlock = nil
	g.curBlock = nil
}

// globalScope is index 0 of g.scopes: file-level `let`/`const`
// declarations, pushed once and never popped so every function body can
// see them without re-declaration.
func (g *Generator) globalScope() map[string]*binding {
	if len(g.scopes) == 0 {
		g.scopes = append(g.scopes, make(map[string]*binding))
	}
	return g.scopes[0]
}

// genGlobalVarDecl lowers a top-level `let`/`const` to an LLVM global
// (spec.md §4.6: "a global variable's initialiser must be a constant
// expression"). A non-constant initialiser is an internal/codegen error
// here rather than a semantic-analysis error, since constancy is purely
// a codegen-level concern in this design (the analyser only checks the
// initialiser's *type*, per spec.md §4.5).
func (g *Generator) genGlobalVarDecl(n *ast.VarDeclStatement) {
	declTy := types.Int32
	if n.Type != nil {
		declTy = resolveTypeName(n.Type)
	}

	init := g.constantInitializer(n.Init, declTy)
	if init == nil {
		g.internalError(n.Pos(), "global %q needs a constant initialiser", n.Name.Name)
		init = constant.NewZeroInitializer(g.lowerType(declTy))
	}

	global := g.module.NewGlobalDef(n.Name.Name, init)
	global.Immutable = n.IsConst
	g.globalScope()[n.Name.Name] = &binding{addr: global, ty: declTy}
}

// constantInitializer folds the handful of expression shapes spec.md
// §4.6 requires a global initialiser to support: literals and unary
// negation of a numeric literal. Anything else returns nil.
func (g *Generator) constantInitializer(e ast.Expression, want types.Type) constant.Constant {
	switch n := e.(type) {
	case *ast.IntegerLiteral:
		it, ok := g.lowerType(want).(*irtypes.IntType)
		if !ok {
			it = irtypes.I32
		}
		return constant.NewInt(it, n.Value)
	case *ast.FloatLiteral:
		ft, ok := g.lowerType(want).(*irtypes.FloatType)
		if !ok {
			ft = irtypes.Float
		}
		return constant.NewFloat(ft, n.Value)
	case *ast.BoolLiteral:
		v := int64(0)
		if n.Value {
			v = 1
		}
		return constant.NewInt(irtypes.I1, v)
	case *ast.CharLiteral:
		return constant.NewInt(irtypes.I8, int64(n.Value))
	case *ast.NullLiteral:
		pt, ok := g.lowerType(want).(*irtypes.PointerType)
		if !ok {
			pt = irtypes.NewPointer(irtypes.I8)
		}
		return constant.NewNull(pt)
	case *ast.UnaryExpression:
		if n.Operator != "-" {
			return nil
		}
		switch operand := n.Operand.(type) {
		case *ast.IntegerLiteral:
			it, ok := g.lowerType(want).(*irtypes.IntType)
			if !ok {
				it = irtypes.I32
			}
			return constant.NewInt(it, -operand.Value)
		case *ast.FloatLiteral:
			ft, ok := g.lowerType(want).(*irtypes.FloatType)
			if !ok {
				ft = irtypes.Float
			}
			return constant.NewFloat(ft, -operand.Value)
		default:
			return nil
		}
	default:
		return nil
	}
}
