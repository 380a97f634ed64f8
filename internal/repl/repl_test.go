package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/peter-r-g/CodeItOut/colors"
	"github.com/peter-r-g/CodeItOut/script"
)

func newREPL(t *testing.T) (*REPL, *bytes.Buffer) {
	t.Helper()
	colors.Enabled = false
	var out bytes.Buffer
	r, err := New(func() (*script.Script, error) { return script.New(), nil }, &out)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return r, &out
}

func TestBalanced(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"number x = 1;", true},
		{"if (x) {", false},
		{"if (x) {\n x = 1;\n}", true},
		{"string s = \"{\";", true},
		{"char c = '(';", true},
		{"// {", true},
		{"/* { */ x = 1;", true},
		{"/* open", false},
		{"string s = \"open", false},
	}

	for _, tt := range tests {
		if got := Balanced(tt.src); got != tt.want {
			t.Errorf("Balanced(%q): Expected %v, got %v", tt.src, tt.want, got)
		}
	}
}

func TestEvalKeepsState(t *testing.T) {
	r, out := newREPL(t)
	r.Eval("number x = 40;")
	r.Eval("x += 2;")
	r.Eval("return x;")

	if !strings.Contains(out.String(), "=> 42") {
		t.Errorf("Expected => 42, got %q", out.String())
	}
}

func TestEvalPrintsDiagnostics(t *testing.T) {
	r, out := newREPL(t)
	r.Eval("number x = \"no\";")
	if !strings.Contains(out.String(), "Expected Number, got String") {
		t.Errorf("Expected a type mismatch, got %q", out.String())
	}
}

func TestCommands(t *testing.T) {
	r, out := newREPL(t)
	r.Eval("number x = 1; string s = \"hi\";")

	r.Eval(":globals")
	if !strings.Contains(out.String(), "x Number = 1") || !strings.Contains(out.String(), "s String = hi") {
		t.Errorf("Expected both globals listed, got %q", out.String())
	}

	before := r.Script()
	r.Eval(":reset")
	if r.Script() == before || len(r.Script().GlobalNames()) != 0 {
		t.Error("Expected :reset to start a new script")
	}

	if r.Eval(":quit") {
		t.Error("Expected :quit to end the session")
	}
	if !r.Eval(":nope") || !strings.Contains(out.String(), "unknown command") {
		t.Error("Expected unknown commands to be reported")
	}
}
