package ast

import (
	"testing"

	"github.com/byacherx/emlangc/internal/token"
)

func TestProgramPosUsesFirstStatement(t *testing.T) {
	stmt := &ExpressionStatement{Token: token.Token{Pos: token.Position{Line: 2, Column: 3}}}
	p := &Program{Statements: []Statement{stmt}}
	if got := p.Pos(); got != (token.Position{Line: 2, Column: 3}) {
		t.Errorf("Program.Pos() = %v, want %v", got, token.Position{Line: 2, Column: 3})
	}
}

func TestProgramPosEmpty(t *testing.T) {
	p := &Program{}
	if got := p.Pos(); got != (token.Position{}) {
		t.Errorf("empty Program.Pos() = %v, want zero value", got)
	}
}

func TestTypeNameString(t *testing.T) {
	tn := &TypeName{Name: "int32", PointerRank: 2}
	if got, want := tn.String(), "int32**"; got != want {
		t.Errorf("TypeName.String() = %q, want %q", got, want)
	}
}

func TestBinaryExpressionString(t *testing.T) {
	expr := &BinaryExpression{
		Left:     &Identifier{Name: "a"},
		Operator: "+",
		Right:    &IntegerLiteral{Token: token.Token{Literal: "1"}},
	}
	if got, want := expr.String(), "(a + 1)"; got != want {
		t.Errorf("BinaryExpression.String() = %q, want %q", got, want)
	}
}

func TestCallExpressionString(t *testing.T) {
	call := &CallExpression{
		Callee: &Identifier{Name: "f"},
		Args:   []Expression{&IntegerLiteral{Token: token.Token{Literal: "1"}}, &Identifier{Name: "x"}},
	}
	if got, want := call.String(), "f(1, x)"; got != want {
		t.Errorf("CallExpression.String() = %q, want %q", got, want)
	}
}

func TestArrayLiteralString(t *testing.T) {
	arr := &ArrayLiteral{Elements: []Expression{
		&IntegerLiteral{Token: token.Token{Literal: "1"}},
		&IntegerLiteral{Token: token.Token{Literal: "2"}},
	}}
	if got, want := arr.String(), "[1, 2]"; got != want {
		t.Errorf("ArrayLiteral.String() = %q, want %q", got, want)
	}
}

func TestCastExpressionString(t *testing.T) {
	cast := &CastExpression{
		TargetTy: &TypeName{Name: "float"},
		Operand:  &IntegerLiteral{Token: token.Token{Literal: "5"}},
	}
	if got, want := cast.String(), "(float)5"; got != want {
		t.Errorf("CastExpression.String() = %q, want %q", got, want)
	}
}
