package codegen

import (
	irtypes "github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"github.com/byacherx/emlangc/internal/ast"
	"github.com/byacherx/emlangc/internal/types"
)

// genStatement lowers one statement, dispatching on its concrete type
// (spec.md §4.6's per-node lowering table).
func (g *Generator) genStatement(s ast.Statement) {
	switch n := s.(type) {
	case *ast.BlockStatement:
		g.pushScope()
		g.genBlock(n)
		g.popScope()
	case *ast.ExpressionStatement:
		g.genExpression(n.Expression)
	case *ast.EmptyStatement:
		// nothing to emit.
	case *ast.VarDeclStatement:
		g.genLocalVarDecl(n)
	case *ast.FunctionDeclStatement:
		// Nested function declarations are not reachable here: spec.md
		// §3's grammar only allows them at the top level, and Generate
		// lowers all top-level functions before any body runs.
	case *ast.IfStatement:
		g.genIfStatement(n)
	case *ast.WhileStatement:
		g.genWhileStatement(n)
	case *ast.ForStatement:
		g.genForStatement(n)
	case *ast.ReturnStatement:
		g.genReturnStatement(n)
	default:
		g.internalError(s.Pos(), "internal error: codegen has no lowering for statement %T", n)
	}
}

// genBlock lowers a block's statements in the *current* scope, mirroring
// the semantic analyser's analyzeBlockBody split between "push a scope"
// and "lower the statements in it" (spec.md §4.6).
func (g *Generator) genBlock(n *ast.BlockStatement) {
	for _, stmt := range n.Statements {
		if g.curBlock.Term != nil {
			// Dead code after a terminator (e.g. statements following an
			// unconditional return): nothing left to attach them to.
			return
		}
		g.genStatement(stmt)
	}
}

// genLocalVarDecl allocates an entry-block slot for a local `let`/`const`
// and, if present, stores its initialiser (spec.md §4.6).
func (g *Generator) genLocalVarDecl(n *ast.VarDeclStatement) {
	var declTy types.Type
	switch {
	case n.Type != nil:
		declTy = resolveTypeName(n.Type)
	case n.Init != nil:
		declTy = g.sem.TypeOf(n.Init)
		if declTy.Kind == types.KindNumber || declTy.IsError() {
			declTy = types.Int32
		}
	default:
		declTy = types.Int32
	}

	alloca := g.entryBlock.NewAlloca(g.lowerType(declTy))
	g.define(n.Name.Name, alloca, declTy)

	if n.Init != nil {
		v := g.genExpression(n.Init)
		v = g.convert(v, g.sem.TypeOf(n.Init), declTy)
		g.curBlock.NewStore(v, alloca)
	}
}

// genIfStatement lowers to the classic then/else/merge block triangle
// (spec.md §4.6).
func (g *Generator) genIfStatement(n *ast.IfStatement) {
	cond := g.genExpression(n.Condition)
	cond = g.truthy(cond, g.sem.TypeOf(n.Condition))

	thenBlock := g.curFn.NewBlock("if.then")
	mergeBlock := g.curFn.NewBlock("if.end")

	var elseBlock = mergeBlock
	if n.Alternative != nil {
		elseBlock = g.curFn.NewBlock("if.else")
	}
	g.curBlock.NewCondBr(cond, thenBlock, elseBlock)

	g.curBlock = thenBlock
	g.pushScope()
	g.genBlock(n.Consequence)
	g.popScope()
	if g.curBlock.Term == nil {
		g.curBlock.NewBr(mergeBlock)
	}

	if n.Alternative != nil {
		g.curBlock = elseBlock
		g.pushScope()
		g.genBlock(n.Alternative)
		g.popScope()
		if g.curBlock.Term == nil {
			g.curBlock.NewBr(mergeBlock)
		}
	}

	g.curBlock = mergeBlock
}

// genWhileStatement lowers to the cond/body/exit triangle called out by
// spec.md §4.6's own worked example ("the emitted IR contains exactly
// three basic blocks forming the loop").
func (g *Generator) genWhileStatement(n *ast.WhileStatement) {
	condBlock := g.curFn.NewBlock("while.cond")
	bodyBlock := g.curFn.NewBlock("while.body")
	exitBlock := g.curFn.NewBlock("while.exit")

	if g.curBlock.Term == nil {
		g.curBlock.NewBr(condBlock)
	}

	g.curBlock = condBlock
	cond := g.genExpression(n.Condition)
	cond = g.truthy(cond, g.sem.TypeOf(n.Condition))
	g.curBlock.NewCondBr(cond, bodyBlock, exitBlock)

	g.curBlock = bodyBlock
	g.pushScope()
	g.genBlock(n.Body)
	g.popScope()
	if g.curBlock.Term == nil {
		g.curBlock.NewBr(condBlock)
	}

	g.curBlock = exitBlock
}

// genForStatement lowers `for (init; cond; incr) body` as the semantic
// analyser type-checked it: lexically `{ init; while (cond) { body;
// incr; } }` (spec.md §4.6). Init's scope encloses the loop; the body
// gets its own nested scope, matching analyzeForStatement.
func (g *Generator) genForStatement(n *ast.ForStatement) {
	g.pushScope()
	if n.Init != nil {
		g.genStatement(n.Init)
	}

	condBlock := g.curFn.NewBlock("for.cond")
	bodyBlock := g.curFn.NewBlock("for.body")
	exitBlock := g.curFn.NewBlock("for.exit")

	if g.curBlock.Term == nil {
		g.curBlock.NewBr(condBlock)
	}

	g.curBlock = condBlock
	if n.Condition != nil {
		cond := g.genExpression(n.Condition)
		cond = g.truthy(cond, g.sem.TypeOf(n.Condition))
		g.curBlock.NewCondBr(cond, bodyBlock, exitBlock)
	} else {
		g.curBlock.NewBr(bodyBlock)
	}

	g.curBlock = bodyBlock
	g.pushScope()
	g.genBlock(n.Body)
	g.popScope()
	if g.curBlock.Term == nil {
		if n.Increment != nil {
			g.genExpression(n.Increment)
		}
		g.curBlock.NewBr(condBlock)
	}

	g.curBlock = exitBlock
	g.popScope()
}

// genReturnStatement lowers a value or bare return, converting the value
// to the enclosing function's declared return type (spec.md §4.6).
func (g *Generator) genReturnStatement(n *ast.ReturnStatement) {
	if n.ReturnValue == nil {
		g.curBlock.NewRet(nil)
		return
	}
	v := g.genExpression(n.ReturnValue)
	retTy := g.curFn.Sig.RetType
	if _, ok := retTy.(*irtypes.VoidType); ok {
		g.curBlock.NewRet(nil)
		return
	}
	v = g.convertToLLVM(v, retTy)
	g.curBlock.NewRet(v)
}

// truthy coerces a condition value to i1: numerics and pointers compare
// not-equal to their zero value, bools pass through unchanged (spec.md
// §4.5/§4.6's C-style condition truthiness).
func (g *Generator) truthy(v value.Value, t types.Type) value.Value {
	if t.Kind == types.KindBool {
		return v
	}
	llTy := g.lowerType(t)
	switch tt := llTy.(type) {
	case *irtypes.IntType:
		zero := zeroInt(tt)
		return g.curBlock.NewICmp(neICmpPred(), v, zero)
	case *irtypes.FloatType:
		zero := zeroFloat(tt)
		return g.curBlock.NewFCmp(oneFCmpPred(), v, zero)
	case *irtypes.PointerType:
		zero := zeroPointer(tt)
		return g.curBlock.NewICmp(neICmpPred(), v, zero)
	default:
		return v
	}
}
