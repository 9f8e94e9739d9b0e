package token

import "testing"

func TestLookupIdentKeywords(t *testing.T) {
	tests := []struct {
		literal string
		want    Kind
	}{
		{"let", LET},
		{"const", CONST},
		{"function", FUNCTION},
		{"extern", EXTERN},
		{"if", IF},
		{"else", ELSE},
		{"while", WHILE},
		{"for", FOR},
		{"return", RETURN},
		{"true", BOOL},
		{"false", BOOL},
		{"null", NULL_LITERAL},
		{"int32", KW_INT32},
		{"int", KW_INT},
		{"float", KW_FLOAT},
		{"double", KW_DOUBLE},
		{"foo", IDENT},
		{"_bar123", IDENT},
	}
	for _, tt := range tests {
		if got := LookupIdent(tt.literal); got != tt.want {
			t.Errorf("LookupIdent(%q) = %v, want %v", tt.literal, got, tt.want)
		}
	}
}

func TestKindClassifiers(t *testing.T) {
	if !INT.IsLiteral() {
		t.Error("INT should be a literal kind")
	}
	if !LET.IsKeyword() {
		t.Error("LET should be a keyword kind")
	}
	if !KW_INT32.IsTypeKeyword() {
		t.Error("KW_INT32 should be a type keyword")
	}
	if KW_INT32.IsLiteral() {
		t.Error("KW_INT32 should not be a literal kind")
	}
	if !PLUS.IsOperator() {
		t.Error("PLUS should be an operator kind")
	}
	if !LPAREN.IsDelimiter() {
		t.Error("LPAREN should be a delimiter kind")
	}
	if EOF.IsOperator() || EOF.IsDelimiter() || EOF.IsKeyword() {
		t.Error("EOF should not classify as any of those")
	}
}

func TestPositionString(t *testing.T) {
	p := Position{Line: 3, Column: 9}
	if got, want := p.String(), "3:9"; got != want {
		t.Errorf("Position.String() = %q, want %q", got, want)
	}
}

func TestTokenString(t *testing.T) {
	tok := New(IDENT, "x", Position{Line: 1, Column: 1})
	if got, want := tok.String(), `IDENT("x")@1:1`; got != want {
		t.Errorf("Token.String() = %q, want %q", got, want)
	}
}

func TestKindStringUnknown(t *testing.T) {
	var k Kind = 9999
	if got := k.String(); got != "UNKNOWN" {
		t.Errorf("Kind.String() for out-of-range = %q, want UNKNOWN", got)
	}
}
