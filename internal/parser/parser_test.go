package parser

import (
	"testing"

	"github.com/byacherx/emlangc/internal/ast"
	"github.com/byacherx/emlangc/internal/diag"
	"github.com/byacherx/emlangc/internal/lexer"
)

func parseProgram(t *testing.T, src string) (*ast.Program, *diag.Reporter) {
	t.Helper()
	report := diag.NewReporter(src)
	toks := lexer.Tokenize(src, "test.em", report)
	p := New(toks, report)
	program := p.Parse()
	return program, report
}

func TestParseFunctionDecl(t *testing.T) {
	src := `function add(a: int32, b: int32): int32 {
		return a + b;
	}`
	program, report := parseProgram(t, src)
	if report.HasErrors() {
		t.Fatalf("unexpected errors: %s", report.FormatAll(false))
	}
	if len(program.Statements) != 1 {
		t.Fatalf("got %d top-level statements, want 1", len(program.Statements))
	}
	fn, ok := program.Statements[0].(*ast.FunctionDeclStatement)
	if !ok {
		t.Fatalf("statement is %T, want *ast.FunctionDeclStatement", program.Statements[0])
	}
	if fn.Name.Name != "add" {
		t.Errorf("fn.Name = %q, want add", fn.Name.Name)
	}
	if len(fn.Params) != 2 {
		t.Fatalf("got %d params, want 2", len(fn.Params))
	}
	if fn.Params[0].Type.Name != "int32" || fn.Params[0].Type.PointerRank != 0 {
		t.Errorf("param 0 type = %+v, want int32 rank 0", fn.Params[0].Type)
	}
	if fn.ReturnType.Name != "int32" {
		t.Errorf("fn.ReturnType = %q, want int32", fn.ReturnType.Name)
	}
	if len(fn.Body.Statements) != 1 {
		t.Fatalf("body has %d statements, want 1", len(fn.Body.Statements))
	}
	ret, ok := fn.Body.Statements[0].(*ast.ReturnStatement)
	if !ok {
		t.Fatalf("body[0] is %T, want *ast.ReturnStatement", fn.Body.Statements[0])
	}
	bin, ok := ret.ReturnValue.(*ast.BinaryExpression)
	if !ok {
		t.Fatalf("return value is %T, want *ast.BinaryExpression", ret.ReturnValue)
	}
	if bin.Operator != "+" {
		t.Errorf("operator = %q, want +", bin.Operator)
	}
}

func TestParseExternFunctionDecl(t *testing.T) {
	src := `extern function print_int(x: int32): unit;`
	program, report := parseProgram(t, src)
	if report.HasErrors() {
		t.Fatalf("unexpected errors: %s", report.FormatAll(false))
	}
	fn := program.Statements[0].(*ast.FunctionDeclStatement)
	if !fn.IsExtern {
		t.Error("expected IsExtern = true")
	}
	if fn.Body != nil {
		t.Error("extern declaration must have no body")
	}
}

func TestParseVarDeclWithAndWithoutType(t *testing.T) {
	program, report := parseProgram(t, "let x: int32 = 5; const y = 3.0;")
	if report.HasErrors() {
		t.Fatalf("unexpected errors: %s", report.FormatAll(false))
	}
	if len(program.Statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(program.Statements))
	}
	v1 := program.Statements[0].(*ast.VarDeclStatement)
	if v1.IsConst || v1.Type == nil || v1.Type.Name != "int32" {
		t.Errorf("v1 = %+v, want non-const with int32 type", v1)
	}
	v2 := program.Statements[1].(*ast.VarDeclStatement)
	if !v2.IsConst || v2.Type != nil {
		t.Errorf("v2 = %+v, want const with inferred type", v2)
	}
	if _, ok := v2.Init.(*ast.FloatLiteral); !ok {
		t.Errorf("v2.Init is %T, want *ast.FloatLiteral", v2.Init)
	}
}

func TestOperatorPrecedence(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"1 + 2 * 3;", "(1 + (2 * 3))"},
		{"(1 + 2) * 3;", "((1 + 2) * 3)"},
		{"a = b = 1;", "a = b = 1"},
		{"1 < 2 && 3 > 4;", "((1 < 2) && (3 > 4))"},
		{"-a * b;", "((-a) * b)"},
		{"!a && !b;", "((!a) && (!b))"},
	}
	for _, c := range cases {
		program, report := parseProgram(t, c.src)
		if report.HasErrors() {
			t.Fatalf("%q: unexpected errors: %s", c.src, report.FormatAll(false))
		}
		exprStmt, ok := program.Statements[0].(*ast.ExpressionStatement)
		if !ok {
			t.Fatalf("%q: statement is %T, want *ast.ExpressionStatement", c.src, program.Statements[0])
		}
		if got := exprStmt.Expression.String(); got != c.want {
			t.Errorf("%q -> %q, want %q", c.src, got, c.want)
		}
	}
}

func TestParseIfElseIfChain(t *testing.T) {
	src := `if (a) { return 1; } else if (b) { return 2; } else { return 3; }`
	program, report := parseProgram(t, src)
	if report.HasErrors() {
		t.Fatalf("unexpected errors: %s", report.FormatAll(false))
	}
	stmt := program.Statements[0].(*ast.IfStatement)
	if stmt.Alternative == nil || len(stmt.Alternative.Statements) != 1 {
		t.Fatal("expected a wrapped else-if alternative block")
	}
	if _, ok := stmt.Alternative.Statements[0].(*ast.IfStatement); !ok {
		t.Errorf("alternative[0] is %T, want nested *ast.IfStatement", stmt.Alternative.Statements[0])
	}
}

func TestParseWhileStatement(t *testing.T) {
	program, report := parseProgram(t, "while (x < 10) { x = x + 1; }")
	if report.HasErrors() {
		t.Fatalf("unexpected errors: %s", report.FormatAll(false))
	}
	stmt := program.Statements[0].(*ast.WhileStatement)
	if stmt.Condition == nil || stmt.Body == nil {
		t.Fatal("while statement missing condition or body")
	}
}

func TestParseForStatement(t *testing.T) {
	program, report := parseProgram(t, "for (let i: int32 = 0; i < 10; i = i + 1) { print_int(i); }")
	if report.HasErrors() {
		t.Fatalf("unexpected errors: %s", report.FormatAll(false))
	}
	stmt := program.Statements[0].(*ast.ForStatement)
	if stmt.Init == nil || stmt.Condition == nil || stmt.Increment == nil || stmt.Body == nil {
		t.Fatalf("for statement missing a clause: %+v", stmt)
	}
	if _, ok := stmt.Init.(*ast.VarDeclStatement); !ok {
		t.Errorf("for-init is %T, want *ast.VarDeclStatement", stmt.Init)
	}
}

func TestParseCallAndIndexAndMember(t *testing.T) {
	program, report := parseProgram(t, "foo(1, 2); arr[0]; obj.field;")
	if report.HasErrors() {
		t.Fatalf("unexpected errors: %s", report.FormatAll(false))
	}
	call := program.Statements[0].(*ast.ExpressionStatement).Expression.(*ast.CallExpression)
	if call.Callee.Name != "foo" || len(call.Args) != 2 {
		t.Errorf("call = %+v", call)
	}
	idx := program.Statements[1].(*ast.ExpressionStatement).Expression.(*ast.IndexExpression)
	if idx.Array.String() != "arr" {
		t.Errorf("index array = %q, want arr", idx.Array.String())
	}
	member := program.Statements[2].(*ast.ExpressionStatement).Expression.(*ast.MemberExpression)
	if member.Member != "field" {
		t.Errorf("member = %q, want field", member.Member)
	}
}

func TestParsePointerOperators(t *testing.T) {
	program, report := parseProgram(t, "let p: int32* = &x; let v: int32 = *p;")
	if report.HasErrors() {
		t.Fatalf("unexpected errors: %s", report.FormatAll(false))
	}
	p := program.Statements[0].(*ast.VarDeclStatement)
	if p.Type.PointerRank != 1 {
		t.Errorf("pointer rank = %d, want 1", p.Type.PointerRank)
	}
	if _, ok := p.Init.(*ast.AddressOfExpression); !ok {
		t.Errorf("init is %T, want *ast.AddressOfExpression", p.Init)
	}
	v := program.Statements[1].(*ast.VarDeclStatement)
	if _, ok := v.Init.(*ast.DereferenceExpression); !ok {
		t.Errorf("init is %T, want *ast.DereferenceExpression", v.Init)
	}
}

func TestParseCastExpression(t *testing.T) {
	program, report := parseProgram(t, "let x: float = (float)(5);")
	if report.HasErrors() {
		t.Fatalf("unexpected errors: %s", report.FormatAll(false))
	}
	v := program.Statements[0].(*ast.VarDeclStatement)
	cast, ok := v.Init.(*ast.CastExpression)
	if !ok {
		t.Fatalf("init is %T, want *ast.CastExpression", v.Init)
	}
	if cast.TargetTy.Name != "float" {
		t.Errorf("cast target = %q, want float", cast.TargetTy.Name)
	}
}

func TestParseArrayLiteral(t *testing.T) {
	program, report := parseProgram(t, "let a = [1, 2, 3];")
	if report.HasErrors() {
		t.Fatalf("unexpected errors: %s", report.FormatAll(false))
	}
	v := program.Statements[0].(*ast.VarDeclStatement)
	arr, ok := v.Init.(*ast.ArrayLiteral)
	if !ok {
		t.Fatalf("init is %T, want *ast.ArrayLiteral", v.Init)
	}
	if len(arr.Elements) != 3 {
		t.Errorf("got %d elements, want 3", len(arr.Elements))
	}
}

func TestSyntaxErrorRecoveryContinuesToNextStatement(t *testing.T) {
	src := "let x: = 5; let y: int32 = 2;"
	program, report := parseProgram(t, src)
	if !report.HasErrors() {
		t.Fatal("expected a syntax error for the malformed first declaration")
	}
	// Recovery must not abandon the rest of the program.
	found := false
	for _, stmt := range program.Statements {
		if v, ok := stmt.(*ast.VarDeclStatement); ok && v.Name != nil && v.Name.Name == "y" {
			found = true
		}
	}
	if !found {
		t.Error("expected parser to recover and still parse the second declaration")
	}
}
