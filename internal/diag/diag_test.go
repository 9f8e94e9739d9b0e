package diag

import (
	"strings"
	"testing"

	"github.com/byacherx/emlangc/internal/token"
)

func TestReporterAccumulatesAndCounts(t *testing.T) {
	r := NewReporter("let x = 1;\n")
	if r.HasErrors() {
		t.Fatal("fresh reporter must have no errors")
	}
	r.Errorf(CategorySyntactic, token.Position{Line: 1, Column: 5}, "unexpected %s", "token")
	r.Add(Diagnostic{Severity: SeverityWarning, Category: CategorySemantic, Message: "unused variable", Pos: token.Position{Line: 1, Column: 1}})

	if !r.HasErrors() {
		t.Fatal("expected HasErrors to be true after Errorf")
	}
	if got := r.ErrorCount(); got != 1 {
		t.Errorf("ErrorCount() = %d, want 1", got)
	}
	if got := len(r.Diagnostics()); got != 2 {
		t.Errorf("len(Diagnostics()) = %d, want 2", got)
	}
}

func TestFormatAllEmpty(t *testing.T) {
	r := NewReporter("")
	if got := r.FormatAll(false); got != "" {
		t.Errorf("FormatAll() on empty reporter = %q, want empty string", got)
	}
}

func TestFormatAllIncludesSourceSnippetAndSummary(t *testing.T) {
	src := "let x = ;\n"
	r := NewReporter(src)
	r.Errorf(CategorySyntactic, token.Position{Line: 1, Column: 9}, "expected expression")

	out := r.FormatAll(false)
	if !strings.Contains(out, "Error at 1:9") {
		t.Errorf("FormatAll() = %q, missing position prefix", out)
	}
	if !strings.Contains(out, src[:len(src)-1]) {
		t.Errorf("FormatAll() = %q, missing source snippet", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("FormatAll() = %q, missing caret", out)
	}
	if !strings.Contains(out, "1 error(s), 0 warning(s)") {
		t.Errorf("FormatAll() = %q, missing summary line", out)
	}
}

func TestDiagnosticFormatColor(t *testing.T) {
	d := Diagnostic{Severity: SeverityError, Category: CategoryLexical, Message: "bad char", Pos: token.Position{Line: 1, Column: 1}}
	plain := d.Format("x", false)
	colored := d.Format("x", true)
	if strings.Contains(plain, "\033[") {
		t.Error("plain format should not contain ANSI escapes")
	}
	if !strings.Contains(colored, "\033[") {
		t.Error("colored format should contain ANSI escapes")
	}
}

func TestSeverityAndCategoryStrings(t *testing.T) {
	cases := []struct {
		sev  Severity
		want string
	}{
		{SeverityError, "Error"},
		{SeverityWarning, "Warning"},
		{SeverityInfo, "Info"},
	}
	for _, c := range cases {
		if got := c.sev.String(); got != c.want {
			t.Errorf("Severity.String() = %q, want %q", got, c.want)
		}
	}

	catCases := []struct {
		cat  Category
		want string
	}{
		{CategoryLexical, "lexical"},
		{CategorySyntactic, "syntactic"},
		{CategorySemantic, "semantic"},
		{CategoryCodeGen, "codegen"},
	}
	for _, c := range catCases {
		if got := c.cat.String(); got != c.want {
			t.Errorf("Category.String() = %q, want %q", got, c.want)
		}
	}
}
