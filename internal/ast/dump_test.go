package ast

import (
	"strings"
	"testing"

	"github.com/byacherx/emlangc/internal/token"
)

func TestDumpRendersDeclarationAndBody(t *testing.T) {
	program := &Program{
		Statements: []Statement{
			&FunctionDeclStatement{
				Name:       &Identifier{Name: "add"},
				ReturnType: &TypeName{Name: "int32"},
				Params: []*Parameter{
					{Name: &Identifier{Name: "a"}, Type: &TypeName{Name: "int32"}},
				},
				Body: &BlockStatement{Statements: []Statement{
					&ReturnStatement{ReturnValue: &BinaryExpression{
						Left:     &Identifier{Name: "a"},
						Operator: "+",
						Right:    &IntegerLiteral{Token: token.Token{Literal: "1"}, Value: 1},
					}},
				}},
			},
		},
	}

	out := Dump(program)
	for _, want := range []string{
		"Program", "Function add -> int32", "Param a: int32",
		"Return", "Binary(+)", "Identifier(a)", "IntegerLiteral(1)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Dump output missing %q:\n%s", want, out)
		}
	}
}

func TestDumpExternFunctionPrefix(t *testing.T) {
	program := &Program{Statements: []Statement{
		&FunctionDeclStatement{IsExtern: true, Name: &Identifier{Name: "print_int"}},
	}}
	out := Dump(program)
	if !strings.Contains(out, "extern Function print_int -> void") {
		t.Errorf("expected extern prefix in dump:\n%s", out)
	}
}

func TestDumpNilStatement(t *testing.T) {
	program := &Program{Statements: []Statement{nil}}
	out := Dump(program)
	if !strings.Contains(out, "<nil>") {
		t.Errorf("expected <nil> placeholder for a nil statement:\n%s", out)
	}
}
