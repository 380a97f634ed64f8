package analyzer

import (
	"strings"
	"testing"

	"github.com/peter-r-g/CodeItOut/internal/frontend/ast"
	"github.com/peter-r-g/CodeItOut/internal/frontend/lexer"
	"github.com/peter-r-g/CodeItOut/internal/frontend/parser"
	"github.com/peter-r-g/CodeItOut/internal/interop"
	"github.com/peter-r-g/CodeItOut/internal/optimizer"
	"github.com/peter-r-g/CodeItOut/internal/types"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	toks, _ := lexer.Lex(src, false)
	program, bag := parser.Parse(toks)
	if bag.HasErrors() {
		t.Fatalf("%q: unexpected parse diagnostics: %v", src, bag.Diagnostics())
	}
	return program
}

// analyze runs src through a fresh analyzer and returns the error messages
func analyze(t *testing.T, a *Analyzer, src string) (bool, []string) {
	t.Helper()
	a.Diagnostics().Clear()
	ok := a.Analyze(parse(t, src))

	messages := make([]string, 0)
	for _, d := range a.Diagnostics().Diagnostics() {
		messages = append(messages, d.Message)
	}
	return ok, messages
}

func contains(messages []string, substr string) bool {
	for _, m := range messages {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}

func TestValidPrograms(t *testing.T) {
	sources := []string{
		"number x = 2 + 3 * 4;",
		"var x = 1; x += 2;",
		"bool b = 1 < 2 && true;",
		"string s = \"a\" + \"b\"; return s;",
		"char c = 'a'; bool same = c == 'b';",
		"number x = 0; do { x += 1; } while (x < 3);",
		"for (number i = 0; i < 10; i += 1) { if (i == 5) { return i; } }",
		"number sq(number n) { return n * n; } number y = sq(3);",
		"number fact(number n) { if (n <= 1) { return 1; } return n * fact(n - 1); }",
		"number x = 1; { number x = 2; }",
		"bool b = !false; number n = -(1 + 2);",
		"void f() { return; } f();",
		"void log(number n) { number m = n; }",
		"number sign(number n) { if (n < 0) { return -1; } else { return 1; } }",
		"number spin() { while (true) { return 1; } }",
		"number first() { for (number i = 0; true; i += 1) { return i; } }",
		"number once() { do { return 1; } while (false); }",
		"var nested() { { return 1; } }",
	}

	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			ok, messages := analyze(t, New(), src)
			if !ok {
				t.Errorf("Expected analysis to pass, got %v", messages)
			}
		})
	}
}

func TestDiagnostics(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected string
	}{
		{"type mismatch", "number x = \"a\";", "Expected Number, got String"},
		{"condition", "if (1) { }", "Expected Boolean, got Number"},
		{"while condition", "while (\"s\") { }", "Expected Boolean, got String"},
		{"undefined variable", "number x = y;", "y is not defined"},
		{"undefined assignment", "y = 1;", "y is not defined"},
		{"redefinition", "number x = 1; number x = 2;", "x is already defined in 00000000-0000-0000-0000-000000000000"},
		{"multi-name redefinition", "number a, a;", "a is already defined in"},
		{"unsupported binary", "bool b = true + false;", `Binary operator + not supported for type "Boolean"`},
		{"unsupported compound", "string s = \"a\"; s -= \"b\";", `Binary operator - not supported for type "String"`},
		{"unsupported unary", "string s = -\"a\";", `Unary operator - not supported for type "String"`},
		{"missing type", "var x;", "Expected type in initial value"},
		{"undefined method", "f(1);", "f(Number) is not defined"},
		{"argument count", "void f(number a) { return; } f();", "Expected 1 argument(s), got 0"},
		{"missing argument", "void f(number a, string b) { return; } f(1);", `The parameter "b" of the "f" method was not provided`},
		{"argument type", "void f(number a) { return; } f(\"x\");", "Expected Number, got String"},
		{"method redefinition", "void f() { return; } void f() { return; }", "f() is already defined in"},
		{"return type", "number f() { return \"a\"; }", "Expected Number, got String"},
		{"void result", "void f() { return; } number x = f();", "Expected Number, got Nothing"},
		{"assignment", "number x = 1; x = \"a\";", "Expected Number, got String"},
		{"comparison result", "number x = 1 < 2;", "Expected Number, got Boolean"},
		{"missing return", "number f() { number z = 1; }", `The method "f()" can finish without returning a Number`},
		{"return on one branch", "number f(bool b) { if (b) { return 1; } }", "can finish without returning"},
		{"loop may not run", "string f(number n) { while (n < 3) { return \"a\"; } }", "can finish without returning a String"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, messages := analyze(t, New(), tt.src)
			if ok {
				t.Fatalf("Expected analysis to fail for %q", tt.src)
			}
			if !contains(messages, tt.expected) {
				t.Errorf("Expected %q in %v", tt.expected, messages)
			}
		})
	}
}

func TestAnalysisContinuesAfterErrors(t *testing.T) {
	_, messages := analyze(t, New(), "number x = a; string s = 1; bool b = c;")
	for _, expected := range []string{"a is not defined", "Expected String, got Number", "c is not defined"} {
		if !contains(messages, expected) {
			t.Errorf("Expected %q in %v", expected, messages)
		}
	}
}

func TestUndefinedOperandIsReportedOnce(t *testing.T) {
	_, messages := analyze(t, New(), "number x = y + 1;")
	if len(messages) != 1 {
		t.Errorf("Expected a single diagnostic, got %v", messages)
	}
}

func TestShadowingAllowed(t *testing.T) {
	ok, messages := analyze(t, New(), "number x = 1; { string x = \"a\"; x = \"b\"; } x = 2;")
	if !ok {
		t.Errorf("Expected shadowing to be allowed, got %v", messages)
	}
}

func TestInnerNamesAreNotVisibleOutside(t *testing.T) {
	_, messages := analyze(t, New(), "{ number inner = 1; } inner = 2;")
	if !contains(messages, "inner is not defined") {
		t.Errorf("Expected inner to be out of scope, got %v", messages)
	}

	_, messages = analyze(t, New(), "for (number i = 0; i < 1; i += 1) { } i = 2;")
	if !contains(messages, "i is not defined") {
		t.Errorf("Expected loop variable to be out of scope, got %v", messages)
	}
}

func TestVarInfersKind(t *testing.T) {
	a := New()
	if ok, messages := analyze(t, a, "var x = \"text\";"); !ok {
		t.Fatalf("Unexpected diagnostics: %v", messages)
	}
	if kind, _ := a.GlobalKind("x"); kind != types.String {
		t.Errorf("Expected x to be String, got %v", kind)
	}
}

func TestRecordsArgumentTypes(t *testing.T) {
	program := parse(t, "void f(var a, number b) { return; } f(\"s\", 2);")
	a := New()
	if !a.Analyze(program) {
		t.Fatalf("Unexpected diagnostics: %v", a.Diagnostics().Diagnostics())
	}

	call := program.Statements[1].(*ast.MethodCall)
	if len(call.ArgumentTypes) != 2 || call.ArgumentTypes[0] != types.String || call.ArgumentTypes[1] != types.Number {
		t.Errorf("Expected [String Number], got %v", call.ArgumentTypes)
	}
}

func TestGlobalsPersist(t *testing.T) {
	a := New()
	if ok, messages := analyze(t, a, "number x = 1; number twice(number n) { return n * 2; }"); !ok {
		t.Fatalf("Unexpected diagnostics: %v", messages)
	}
	if ok, messages := analyze(t, a, "x = twice(x);"); !ok {
		t.Errorf("Expected globals to persist, got %v", messages)
	}
	if _, messages := analyze(t, a, "number x = 2;"); !contains(messages, "x is already defined") {
		t.Errorf("Expected redefinition of a persisted global, got %v", messages)
	}
}

func TestFailedRunDoesNotLeakGlobals(t *testing.T) {
	a := New()
	if ok, _ := analyze(t, a, "number x = 1; y = 2;"); ok {
		t.Fatal("Expected analysis to fail")
	}
	if a.HasGlobal("x") {
		t.Error("Expected x to be rolled back")
	}
	if ok, messages := analyze(t, a, "number x = 1;"); !ok {
		t.Errorf("Expected x to be declarable again, got %v", messages)
	}
}

func TestHostRegistrations(t *testing.T) {
	a := New()
	a.MethodAdded(interop.NewNative("Wait", types.Nothing, []interop.Param{{Name: "seconds", Kind: types.Number}}, nil))
	a.MethodAdded(interop.NewNative("Print", types.Nothing, []interop.Param{{Name: "value", Kind: types.Variable}}, nil))
	a.VariableAdded(interop.NewVariable("Health", types.Number, true, false, func() any { return 1.0 }, nil))
	a.VariableAdded(interop.NewVariable("Sink", types.String, false, true, nil, func(any) {}))

	if ok, messages := analyze(t, a, "Wait(2); Print(\"a\"); Print(true); number h = Health; Sink = \"x\";"); !ok {
		t.Errorf("Unexpected diagnostics: %v", messages)
	}

	tests := []struct {
		src      string
		expected string
	}{
		{"Health = 2;", "Health is not writable"},
		{"string s = Sink;", "Sink is not readable"},
		{"Wait(\"soon\");", "Expected Number, got String"},
	}
	for _, tt := range tests {
		if _, messages := analyze(t, a, tt.src); !contains(messages, tt.expected) {
			t.Errorf("%q: expected %q in %v", tt.src, tt.expected, messages)
		}
	}
}

func TestDeclareGlobal(t *testing.T) {
	a := New()
	if err := a.DeclareGlobal("limit", types.Number, nil); err != nil {
		t.Fatalf("DeclareGlobal failed: %v", err)
	}
	if err := a.DeclareGlobal("limit", types.Number, nil); err == nil {
		t.Error("Expected a second declaration to fail")
	}
	if ok, messages := analyze(t, a, "limit += 1;"); !ok {
		t.Errorf("Unexpected diagnostics: %v", messages)
	}
}

func TestRemovedMethodIsUndefined(t *testing.T) {
	a := New()

	optimized, _, _ := optimizer.Optimize(parse(t, "void f() { }"))
	if !a.Analyze(optimized) {
		t.Fatalf("Unexpected diagnostics: %v", a.Diagnostics().Diagnostics())
	}
	if a.HasGlobal("f()") {
		t.Error("Expected the removed method to be absent")
	}

	if _, messages := analyze(t, a, "f();"); !contains(messages, "f() is not defined") {
		t.Errorf("Expected f() to be undefined, got %v", messages)
	}
}

func TestTypeCheckStack(t *testing.T) {
	var s TypeCheckStack
	if _, ok := s.Check(types.Number); !ok {
		t.Error("Expected an empty stack to accept anything")
	}

	s.Push(types.Boolean)
	if expected, ok := s.Check(types.Number); ok || expected != types.Boolean {
		t.Errorf("Expected a Boolean mismatch, got %v %v", expected, ok)
	}
	if _, ok := s.Check(types.Variable); !ok {
		t.Error("Expected Variable to match loosely")
	}

	s.Push(types.Variable)
	if _, ok := s.Check(types.String); !ok {
		t.Error("Expected a Variable expectation to accept anything")
	}
	s.Pop()
	s.Pop()
	s.Pop()
	if s.Len() != 0 {
		t.Errorf("Expected an empty stack, got %d", s.Len())
	}
}
