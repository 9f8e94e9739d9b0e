package ast

import (
	"strings"

	"github.com/byacherx/emlangc/internal/token"
)

type BlockStatement struct {
	Token      token.Token
	Statements []Statement
}

func (s *BlockStatement) statementNode()      {}
func (s *BlockStatement) Pos() token.Position { return s.Token.Pos }
func (s *BlockStatement) String() string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for _, stmt := range s.Statements {
		sb.WriteString("  ")
		sb.WriteString(stmt.String())
		sb.WriteString("\n")
	}
	sb.WriteString("}")
	return sb.String()
}

type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

func (s *ExpressionStatement) statementNode()      {}
func (s *ExpressionStatement) Pos() token.Position { return s.Token.Pos }
func (s *ExpressionStatement) String() string      { return s.Expression.String() + ";" }

// EmptyStatement is returned at a panic-mode recovery point (spec.md
// §4.2: "an empty statement is returned for the failing position").
type EmptyStatement struct {
	Token token.Token
}

func (s *EmptyStatement) statementNode()      {}
func (s *EmptyStatement) Pos() token.Position { return s.Token.Pos }
func (s *EmptyStatement) String() string      { return ";" }

type IfStatement struct {
	Token       token.Token
	Condition   Expression
	Consequence *BlockStatement
	Alternative *BlockStatement // nil when no else clause
}

func (s *IfStatement) statementNode()      {}
func (s *IfStatement) Pos() token.Position { return s.Token.Pos }
func (s *IfStatement) String() string {
	var sb strings.Builder
	sb.WriteString("if (")
	sb.WriteString(s.Condition.String())
	sb.WriteString(") ")
	sb.WriteString(s.Consequence.String())
	if s.Alternative != nil {
		sb.WriteString(" else ")
		sb.WriteString(s.Alternative.String())
	}
	return sb.String()
}

type WhileStatement struct {
	Token     token.Token
	Condition Expression
	Body      *BlockStatement
}

func (s *WhileStatement) statementNode()      {}
func (s *WhileStatement) Pos() token.Position { return s.Token.Pos }
func (s *WhileStatement) String() string {
	return "while (" + s.Condition.String() + ") " + s.Body.String()
}

// ForStatement is the C-style `for (init; cond; incr) body` form (the
// fully-specified parser production spec.md §9 asks for, supplementing
// the original's unimplemented stub). Init may be a *VarDeclStatement, an
// *ExpressionStatement, or nil; Condition defaults to `true` when
// omitted; Increment may be nil.
type ForStatement struct {
	Token     token.Token
	Init      Statement
	Condition Expression
	Increment Expression
	Body      *BlockStatement
}

func (s *ForStatement) statementNode()      {}
func (s *ForStatement) Pos() token.Position { return s.Token.Pos }
func (s *ForStatement) String() string {
	var sb strings.Builder
	sb.WriteString("for (")
	if s.Init != nil {
		sb.WriteString(s.Init.String())
	}
	sb.WriteString("; ")
	if s.Condition != nil {
		sb.WriteString(s.Condition.String())
	}
	sb.WriteString("; ")
	if s.Increment != nil {
		sb.WriteString(s.Increment.String())
	}
	sb.WriteString(") ")
	sb.WriteString(s.Body.String())
	return sb.String()
}

type ReturnStatement struct {
	Token       token.Token
	ReturnValue Expression // nil for a bare `return;`
}

func (s *ReturnStatement) statementNode()      {}
func (s *ReturnStatement) Pos() token.Position { return s.Token.Pos }
func (s *ReturnStatement) String() string {
	if s.ReturnValue == nil {
		return "return;"
	}
	return "return " + s.ReturnValue.String() + ";"
}

// VarDeclStatement covers both `let` and `const` declarations.
type VarDeclStatement struct {
	Token   token.Token
	Name    *Identifier
	Type    *TypeName // nil when the type is inferred from Init
	Init    Expression
	IsConst bool
}

func (s *VarDeclStatement) statementNode()      {}
func (s *VarDeclStatement) Pos() token.Position { return s.Token.Pos }
func (s *VarDeclStatement) String() string {
	var sb strings.Builder
	if s.IsConst {
		sb.WriteString("const ")
	} else {
		sb.WriteString("let ")
	}
	sb.WriteString(s.Name.String())
	if s.Type != nil {
		sb.WriteString(": " + s.Type.String())
	}
	if s.Init != nil {
		sb.WriteString(" = " + s.Init.String())
	}
	sb.WriteString(";")
	return sb.String()
}

// Parameter is one `name: type` entry of a function's parameter list.
type Parameter struct {
	Token token.Token
	Name  *Identifier
	Type  *TypeName
}

// FunctionDeclStatement covers both regular and extern function
// declarations: an extern declaration has Body == nil.
type FunctionDeclStatement struct {
	Token      token.Token
	Name       *Identifier
	Params     []*Parameter
	ReturnType *TypeName // nil means void
	Body       *BlockStatement
	IsExtern   bool
	IsAsync    bool
	IsUnsafe   bool
}

func (s *FunctionDeclStatement) statementNode()      {}
func (s *FunctionDeclStatement) Pos() token.Position { return s.Token.Pos }
func (s *FunctionDeclStatement) String() string {
	var sb strings.Builder
	if s.IsExtern {
		sb.WriteString("extern ")
	}
	if s.IsAsync {
		sb.WriteString("async ")
	}
	if s.IsUnsafe {
		sb.WriteString("unsafe ")
	}
	sb.WriteString("function ")
	sb.WriteString(s.Name.String())
	sb.WriteString("(")
	parts := make([]string, len(s.Params))
	for i, p := range s.Params {
		parts[i] = p.Name.String() + ": " + p.Type.String()
	}
	sb.WriteString(strings.Join(parts, ", "))
	sb.WriteString(")")
	if s.ReturnType != nil {
		sb.WriteString(": " + s.ReturnType.String())
	}
	if s.Body != nil {
		sb.WriteString(" ")
		sb.WriteString(s.Body.String())
	} else {
		sb.WriteString(";")
	}
	return sb.String()
}
