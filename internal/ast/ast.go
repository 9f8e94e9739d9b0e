// Package ast defines emlang's abstract syntax tree: a closed set of
// expression, statement, and declaration node variants, every one
// carrying its source position (spec.md §3). Nodes are immutable once
// the parser constructs them; semantic analysis results live in a side
// table in internal/semantic, never by mutating a node (spec.md §3, §9).
package ast

import (
	"bytes"
	"strings"

	"github.com/byacherx/emlangc/internal/token"
)

// Node is the common interface every AST variant implements.
type Node interface {
	Pos() token.Position
	String() string
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node appearing in a statement position, including the
// declaration forms (spec.md §3 models declarations as statements at the
// grammar level).
type Statement interface {
	Node
	statementNode()
}

// Program is the parser's root: an ordered sequence of top-level
// statements, each parent uniquely owning its children (no shared
// sub-trees, no cycles).
type Program struct {
	Statements []Statement
}

func (p *Program) Pos() token.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return token.Position{}
}

func (p *Program) String() string {
	var sb strings.Builder
	for _, s := range p.Statements {
		sb.WriteString(s.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// TypeName is the parsed form of a type annotation: a base keyword name
// (already canonicalised, e.g. "int" -> "int32", by the parser) plus a
// pointer-indirection depth for trailing "*" suffixes.
type TypeName struct {
	Token       token.Token
	Name        string
	PointerRank int
}

func (t *TypeName) Pos() token.Position { return t.Token.Pos }
func (t *TypeName) String() string {
	return t.Name + strings.Repeat("*", t.PointerRank)
}

// ---- Expressions ----

type Identifier struct {
	Token token.Token
	Name  string
}

func (e *Identifier) expressionNode()      {}
func (e *Identifier) Pos() token.Position  { return e.Token.Pos }
func (e *Identifier) String() string       { return e.Name }

type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (e *IntegerLiteral) expressionNode()     {}
func (e *IntegerLiteral) Pos() token.Position { return e.Token.Pos }
func (e *IntegerLiteral) String() string      { return e.Token.Literal }

type FloatLiteral struct {
	Token token.Token
	Value float64
}

func (e *FloatLiteral) expressionNode()     {}
func (e *FloatLiteral) Pos() token.Position { return e.Token.Pos }
func (e *FloatLiteral) String() string      { return e.Token.Literal }

type StringLiteral struct {
	Token token.Token
	Value string
}

func (e *StringLiteral) expressionNode()     {}
func (e *StringLiteral) Pos() token.Position { return e.Token.Pos }
func (e *StringLiteral) String() string      { return "\"" + e.Value + "\"" }

type CharLiteral struct {
	Token token.Token
	Value rune
}

func (e *CharLiteral) expressionNode()     {}
func (e *CharLiteral) Pos() token.Position { return e.Token.Pos }
func (e *CharLiteral) String() string      { return "'" + string(e.Value) + "'" }

type BoolLiteral struct {
	Token token.Token
	Value bool
}

func (e *BoolLiteral) expressionNode()     {}
func (e *BoolLiteral) Pos() token.Position { return e.Token.Pos }
func (e *BoolLiteral) String() string      { return e.Token.Literal }

type NullLiteral struct {
	Token token.Token
}

func (e *NullLiteral) expressionNode()     {}
func (e *NullLiteral) Pos() token.Position { return e.Token.Pos }
func (e *NullLiteral) String() string      { return "null" }

// BinaryExpression covers arithmetic, comparison, logical, bitwise, and
// shift operators (spec.md §4.2's precedence table).
type BinaryExpression struct {
	Token    token.Token
	Left     Expression
	Operator string
	Right    Expression
}

func (e *BinaryExpression) expressionNode()     {}
func (e *BinaryExpression) Pos() token.Position { return e.Token.Pos }
func (e *BinaryExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(e.Left.String())
	out.WriteString(" " + e.Operator + " ")
	out.WriteString(e.Right.String())
	out.WriteString(")")
	return out.String()
}

// UnaryExpression covers prefix '-', '!' and '~'. Prefix '&' and '*'
// parse to AddressOfExpression and DereferenceExpression instead.
type UnaryExpression struct {
	Token    token.Token
	Operator string
	Operand  Expression
}

func (e *UnaryExpression) expressionNode()     {}
func (e *UnaryExpression) Pos() token.Position { return e.Token.Pos }
func (e *UnaryExpression) String() string {
	return "(" + e.Operator + e.Operand.String() + ")"
}

// AssignmentExpression is right-associative; Target is only valid when
// it resolves to an lvalue (identifier or DereferenceExpression), but the
// node is always constructed so later passes can report related errors
// (spec.md §4.2 tie-break rule).
type AssignmentExpression struct {
	Token  token.Token
	Target Expression
	Value  Expression
}

func (e *AssignmentExpression) expressionNode()     {}
func (e *AssignmentExpression) Pos() token.Position { return e.Token.Pos }
func (e *AssignmentExpression) String() string {
	return e.Target.String() + " = " + e.Value.String()
}

// CallExpression targets only a named function identifier (spec.md §4.2:
// "calls target only named functions in the current design").
type CallExpression struct {
	Token    token.Token
	Callee   *Identifier
	Args     []Expression
}

func (e *CallExpression) expressionNode()     {}
func (e *CallExpression) Pos() token.Position { return e.Token.Pos }
func (e *CallExpression) String() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.String()
	}
	return e.Callee.String() + "(" + strings.Join(args, ", ") + ")"
}

// MemberExpression is reserved for future struct support (spec.md §4.6:
// "Member access is specified for future struct support").
type MemberExpression struct {
	Token  token.Token
	Object Expression
	Member string
}

func (e *MemberExpression) expressionNode()     {}
func (e *MemberExpression) Pos() token.Position { return e.Token.Pos }
func (e *MemberExpression) String() string      { return e.Object.String() + "." + e.Member }

type IndexExpression struct {
	Token token.Token
	Array Expression
	Index Expression
}

func (e *IndexExpression) expressionNode()     {}
func (e *IndexExpression) Pos() token.Position { return e.Token.Pos }
func (e *IndexExpression) String() string {
	return e.Array.String() + "[" + e.Index.String() + "]"
}

// ArrayLiteral is a fixed-size `[e0, e1, ...]` aggregate.
type ArrayLiteral struct {
	Token    token.Token
	Elements []Expression
}

func (e *ArrayLiteral) expressionNode()     {}
func (e *ArrayLiteral) Pos() token.Position { return e.Token.Pos }
func (e *ArrayLiteral) String() string {
	parts := make([]string, len(e.Elements))
	for i, el := range e.Elements {
		parts[i] = el.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ObjectField is one `key: value` pair of an ObjectLiteral.
type ObjectField struct {
	Key   string
	Value Expression
}

// ObjectLiteral is a `{k: v, ...}` aggregate, reserved for future struct
// support alongside MemberExpression.
type ObjectLiteral struct {
	Token  token.Token
	Fields []ObjectField
}

func (e *ObjectLiteral) expressionNode()     {}
func (e *ObjectLiteral) Pos() token.Position { return e.Token.Pos }
func (e *ObjectLiteral) String() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Key + ": " + f.Value.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// CastExpression is the explicit cast feature referenced by spec.md
// §4.4's compatibility rule ("the cast expression ... is required").
type CastExpression struct {
	Token    token.Token
	TargetTy *TypeName
	Operand  Expression
}

func (e *CastExpression) expressionNode()     {}
func (e *CastExpression) Pos() token.Position { return e.Token.Pos }
func (e *CastExpression) String() string {
	return "(" + e.TargetTy.String() + ")" + e.Operand.String()
}

// DereferenceExpression is prefix `*p`.
type DereferenceExpression struct {
	Token   token.Token
	Operand Expression
}

func (e *DereferenceExpression) expressionNode()     {}
func (e *DereferenceExpression) Pos() token.Position { return e.Token.Pos }
func (e *DereferenceExpression) String() string      { return "*" + e.Operand.String() }

// AddressOfExpression is prefix `&x`; only valid over an identifier.
type AddressOfExpression struct {
	Token   token.Token
	Operand Expression
}

func (e *AddressOfExpression) expressionNode()     {}
func (e *AddressOfExpression) Pos() token.Position { return e.Token.Pos }
func (e *AddressOfExpression) String() string      { return "&" + e.Operand.String() }
