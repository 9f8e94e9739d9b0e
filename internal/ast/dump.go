package ast

import (
	"fmt"
	"strings"
)

// Dump renders a Program as an indented tree, supplementing the feature
// the original dumper (compiler/ast/dumper.cpp) provides for `--debug`
// output. It walks the closed node set directly rather than via a
// visitor, matching the size of the grammar.
func Dump(p *Program) string {
	var sb strings.Builder
	sb.WriteString("Program\n")
	for _, s := range p.Statements {
		dumpStatement(&sb, s, 1)
	}
	return sb.String()
}

func indent(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
}

func dumpStatement(sb *strings.Builder, s Statement, depth int) {
	if s == nil {
		indent(sb, depth)
		sb.WriteString("<nil>\n")
		return
	}
	switch n := s.(type) {
	case *BlockStatement:
		indent(sb, depth)
		sb.WriteString("Block\n")
		for _, st := range n.Statements {
			dumpStatement(sb, st, depth+1)
		}
	case *ExpressionStatement:
		indent(sb, depth)
		sb.WriteString("ExpressionStatement\n")
		dumpExpression(sb, n.Expression, depth+1)
	case *EmptyStatement:
		indent(sb, depth)
		sb.WriteString("EmptyStatement\n")
	case *IfStatement:
		indent(sb, depth)
		sb.WriteString("If\n")
		dumpExpression(sb, n.Condition, depth+1)
		dumpStatement(sb, n.Consequence, depth+1)
		if n.Alternative != nil {
			dumpStatement(sb, n.Alternative, depth+1)
		}
	case *WhileStatement:
		indent(sb, depth)
		sb.WriteString("While\n")
		dumpExpression(sb, n.Condition, depth+1)
		dumpStatement(sb, n.Body, depth+1)
	case *ForStatement:
		indent(sb, depth)
		sb.WriteString("For\n")
		if n.Init != nil {
			dumpStatement(sb, n.Init, depth+1)
		}
		if n.Condition != nil {
			dumpExpression(sb, n.Condition, depth+1)
		}
		if n.Increment != nil {
			dumpExpression(sb, n.Increment, depth+1)
		}
		dumpStatement(sb, n.Body, depth+1)
	case *ReturnStatement:
		indent(sb, depth)
		sb.WriteString("Return\n")
		if n.ReturnValue != nil {
			dumpExpression(sb, n.ReturnValue, depth+1)
		}
	case *VarDeclStatement:
		indent(sb, depth)
		kw := "Let"
		if n.IsConst {
			kw = "Const"
		}
		ty := "<inferred>"
		if n.Type != nil {
			ty = n.Type.String()
		}
		fmt.Fprintf(sb, "%s %s: %s\n", kw, n.Name.Name, ty)
		if n.Init != nil {
			dumpExpression(sb, n.Init, depth+1)
		}
	case *FunctionDeclStatement:
		indent(sb, depth)
		ret := "void"
		if n.ReturnType != nil {
			ret = n.ReturnType.String()
		}
		prefix := ""
		if n.IsExtern {
			prefix += "extern "
		}
		if n.IsAsync {
			prefix += "async "
		}
		if n.IsUnsafe {
			prefix += "unsafe "
		}
		fmt.Fprintf(sb, "%sFunction %s -> %s\n", prefix, n.Name.Name, ret)
		for _, p := range n.Params {
			indent(sb, depth+1)
			fmt.Fprintf(sb, "Param %s: %s\n", p.Name.Name, p.Type.String())
		}
		if n.Body != nil {
			dumpStatement(sb, n.Body, depth+1)
		}
	default:
		indent(sb, depth)
		fmt.Fprintf(sb, "UnknownStatement(%T)\n", n)
	}
}

func dumpExpression(sb *strings.Builder, e Expression, depth int) {
	if e == nil {
		indent(sb, depth)
		sb.WriteString("<nil>\n")
		return
	}
	switch n := e.(type) {
	case *Identifier:
		indent(sb, depth)
		fmt.Fprintf(sb, "Identifier(%s)\n", n.Name)
	case *IntegerLiteral:
		indent(sb, depth)
		fmt.Fprintf(sb, "IntegerLiteral(%d)\n", n.Value)
	case *FloatLiteral:
		indent(sb, depth)
		fmt.Fprintf(sb, "FloatLiteral(%g)\n", n.Value)
	case *StringLiteral:
		indent(sb, depth)
		fmt.Fprintf(sb, "StringLiteral(%q)\n", n.Value)
	case *CharLiteral:
		indent(sb, depth)
		fmt.Fprintf(sb, "CharLiteral(%q)\n", n.Value)
	case *BoolLiteral:
		indent(sb, depth)
		fmt.Fprintf(sb, "BoolLiteral(%t)\n", n.Value)
	case *NullLiteral:
		indent(sb, depth)
		sb.WriteString("NullLiteral\n")
	case *BinaryExpression:
		indent(sb, depth)
		fmt.Fprintf(sb, "Binary(%s)\n", n.Operator)
		dumpExpression(sb, n.Left, depth+1)
		dumpExpression(sb, n.Right, depth+1)
	case *UnaryExpression:
		indent(sb, depth)
		fmt.Fprintf(sb, "Unary(%s)\n", n.Operator)
		dumpExpression(sb, n.Operand, depth+1)
	case *AssignmentExpression:
		indent(sb, depth)
		sb.WriteString("Assignment\n")
		dumpExpression(sb, n.Target, depth+1)
		dumpExpression(sb, n.Value, depth+1)
	case *CallExpression:
		indent(sb, depth)
		fmt.Fprintf(sb, "Call(%s)\n", n.Callee.Name)
		for _, a := range n.Args {
			dumpExpression(sb, a, depth+1)
		}
	case *MemberExpression:
		indent(sb, depth)
		fmt.Fprintf(sb, "Member(.%s)\n", n.Member)
		dumpExpression(sb, n.Object, depth+1)
	case *IndexExpression:
		indent(sb, depth)
		sb.WriteString("Index\n")
		dumpExpression(sb, n.Array, depth+1)
		dumpExpression(sb, n.Index, depth+1)
	case *ArrayLiteral:
		indent(sb, depth)
		sb.WriteString("Array\n")
		for _, el := range n.Elements {
			dumpExpression(sb, el, depth+1)
		}
	case *ObjectLiteral:
		indent(sb, depth)
		sb.WriteString("Object\n")
		for _, f := range n.Fields {
			indent(sb, depth+1)
			fmt.Fprintf(sb, "%s:\n", f.Key)
			dumpExpression(sb, f.Value, depth+2)
		}
	case *CastExpression:
		indent(sb, depth)
		fmt.Fprintf(sb, "Cast(%s)\n", n.TargetTy.String())
		dumpExpression(sb, n.Operand, depth+1)
	case *DereferenceExpression:
		indent(sb, depth)
		sb.WriteString("Dereference\n")
		dumpExpression(sb, n.Operand, depth+1)
	case *AddressOfExpression:
		indent(sb, depth)
		sb.WriteString("AddressOf\n")
		dumpExpression(sb, n.Operand, depth+1)
	default:
		indent(sb, depth)
		fmt.Fprintf(sb, "UnknownExpression(%T)\n", n)
	}
}
