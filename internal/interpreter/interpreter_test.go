package interpreter

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/peter-r-g/CodeItOut/internal/frontend/ast"
	"github.com/peter-r-g/CodeItOut/internal/frontend/lexer"
	"github.com/peter-r-g/CodeItOut/internal/frontend/parser"
	"github.com/peter-r-g/CodeItOut/internal/interop"
	"github.com/peter-r-g/CodeItOut/internal/optimizer"
	"github.com/peter-r-g/CodeItOut/internal/semantics/analyzer"
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

type session struct {
	analyzer    *analyzer.Analyzer
	interpreter *Interpreter
}

func newSession() *session {
	return &session{analyzer: analyzer.New(), interpreter: New()}
}

func (s *session) register(m *interop.Method) {
	s.analyzer.MethodAdded(m)
	s.interpreter.MethodAdded(m)
}

func (s *session) run(t *testing.T, src string) any {
	t.Helper()
	program := parse(t, src)
	if !s.analyzer.Analyze(program) {
		t.Fatalf("%q: unexpected analysis diagnostics: %v", src, s.analyzer.Diagnostics().Diagnostics())
	}
	result, err := s.interpreter.Interpret(program)
	if err != nil {
		t.Fatalf("%q: unexpected error: %v", src, err)
	}
	return result
}

func TestPrograms(t *testing.T) {
	tests := []struct {
		src      string
		expected any
	}{
		{"return 2 + 3 * 4;", 14.0},
		{"return 10 - 3 - 2;", 9.0},
		{"return 8 / 4 / 2;", 4.0},
		{"return 10 - (3 - 2) == 10 - 3 - 2;", true},
		{"number x = 0; do { x += 1; } while (x < 3); return x;", 3.0},
		{"number x = 10; do { x += 1; } while (false); return x;", 11.0},
		{"number i = 0; while (i < 5) { i += 2; } return i;", 6.0},
		{"number sum = 0; for (number i = 1; i <= 4; i += 1) { sum += i; } return sum;", 10.0},
		{"for (number i = 0; i < 10; i += 1) { if (i == 5) { return i; } } return -1;", 5.0},
		{"number fact(number n) { if (n <= 1) { return 1; } return n * fact(n - 1); } return fact(5);", 120.0},
		{"string greet(string who) { return \"hi \" + who; } return greet(\"sand\");", "hi sand"},
		{"number f(number n) { return n; } number f(string s) { return 2; } return f(\"x\") + f(1);", 3.0},
		{"number x = 1; { number x = 2; x += 5; } return x;", 1.0},
		{"number x = 1; { x = 7; } return x;", 7.0},
		{"var v = 'a'; return v == 'a';", true},
		{"bool b = !(1 > 2) && true; return b;", true},
		{"number a, b = 4; return a + b;", 8.0},
		{"number n; return n;", 0.0},
		{"string s; return s;", ""},
		{"void f() { return; } f(); return 1;", 1.0},
		{"number x = 1; if (x > 1) { x = 2; } else { x = 3; } return x;", 3.0},
	}

	for _, tt := range tests {
		result := newSession().run(t, tt.src)
		if result != tt.expected {
			t.Errorf("%q: Expected %v, got %v", tt.src, tt.expected, result)
		}
	}
}

func TestProgramWithoutReturnIsNil(t *testing.T) {
	if result := newSession().run(t, "number x = 1;"); result != nil {
		t.Errorf("Expected nil, got %v", result)
	}
}

func TestReturnInsideCallDoesNotEndCaller(t *testing.T) {
	src := "number one() { return 1; } number x = one(); x += one(); return x;"
	if result := newSession().run(t, src); result != 2.0 {
		t.Errorf("Expected 2, got %v", result)
	}
}

func TestGlobalsPersistBetweenRuns(t *testing.T) {
	s := newSession()
	s.run(t, "number counter = 1; number double(number n) { return n * 2; }")

	if result := s.run(t, "counter += 1; return double(counter);"); result != 4.0 {
		t.Errorf("Expected 4, got %v", result)
	}

	value, ok := s.interpreter.Global("counter")
	if !ok || value != 2.0 {
		t.Errorf("Expected counter to be 2, got %v (%v)", value, ok)
	}

	names := make([]string, 0)
	for _, entry := range s.interpreter.Globals() {
		names = append(names, entry.Key)
	}
	if len(names) != 2 || names[0] != "counter" || names[1] != "double(Number)" {
		t.Errorf("Expected [counter double(Number)], got %v", names)
	}
}

func TestOperandsAreNotShortCircuited(t *testing.T) {
	s := newSession()
	calls := 0
	s.register(interop.NewNative("tick", types.Boolean, nil, func([]any) (any, error) {
		calls++
		return false, nil
	}))

	s.run(t, "bool b = tick() && tick(); b = tick() || true;")
	if calls != 3 {
		t.Errorf("Expected 3 calls, got %d", calls)
	}
}

func TestNativeMethods(t *testing.T) {
	s := newSession()
	s.register(interop.NewNative("add", types.Number,
		[]interop.Param{{Name: "a", Kind: types.Number}, {Name: "b", Kind: types.Number}},
		func(args []any) (any, error) {
			return args[0].(float64) + args[1].(float64), nil
		}))

	if result := s.run(t, "return add(2, add(3, 4));"); result != 9.0 {
		t.Errorf("Expected 9, got %v", result)
	}
}

func TestNativeErrorsStopExecution(t *testing.T) {
	s := newSession()
	boom := errors.New("boom")
	s.register(interop.NewNative("fail", types.Nothing, nil, func([]any) (any, error) {
		return nil, boom
	}))

	program := parse(t, "number x = 1; fail(); x = 2;")
	if !s.analyzer.Analyze(program) {
		t.Fatalf("unexpected analysis diagnostics: %v", s.analyzer.Diagnostics().Diagnostics())
	}
	if _, err := s.interpreter.Interpret(program); errors.Cause(err) != boom {
		t.Errorf("Expected boom, got %v", err)
	}
	if value, _ := s.interpreter.Global("x"); value != 1.0 {
		t.Errorf("Expected x to stay 1, got %v", value)
	}
}

func TestHostVariables(t *testing.T) {
	s := newSession()
	stored := 5.0
	v := interop.NewVariable("speed", types.Number, true, true,
		func() any { return stored },
		func(value any) { stored = value.(float64) })
	s.analyzer.VariableAdded(v)
	s.interpreter.VariableAdded(v)

	if result := s.run(t, "speed += 2; return speed * 10;"); result != 70.0 {
		t.Errorf("Expected 70, got %v", result)
	}
	if stored != 7.0 {
		t.Errorf("Expected the setter to store 7, got %v", stored)
	}
}

func TestCallFromHost(t *testing.T) {
	s := newSession()
	s.run(t, "number sq(number n) { return n * n; }")

	value, ok := s.interpreter.Global("sq(Number)")
	if !ok {
		t.Fatal("Expected sq(Number) to be a global")
	}
	m, ok := value.(*interop.Method)
	if !ok {
		t.Fatalf("Expected a method, got %T", value)
	}

	result, err := s.interpreter.Call(m, []any{6.0})
	if err != nil || result != 36.0 {
		t.Errorf("Expected 36, got %v (%v)", result, err)
	}

	if _, err := s.interpreter.Call(m, nil); errors.Cause(err) != ErrRuntime {
		t.Errorf("Expected a runtime error for a missing argument, got %v", err)
	}
}

func TestUnanalyzedFaultsAreRuntimeErrors(t *testing.T) {
	sources := []string{
		"return missing;",
		"missing = 1;",
		"return nowhere(1);",
		"return \"a\" - 1;",
		"if (1) { return 1; }",
	}

	for _, src := range sources {
		_, err := New().Interpret(parse(t, src))
		if errors.Cause(err) != ErrRuntime {
			t.Errorf("%q: Expected a runtime error, got %v", src, err)
		}
	}
}

func TestUnanalyzedCallsUseRuntimeKinds(t *testing.T) {
	result, err := New().Interpret(parse(t, "number f(number n) { return n + 1; } return f(1);"))
	if err != nil || result != 2.0 {
		t.Errorf("Expected 2, got %v (%v)", result, err)
	}
}

// Folding a literal expression must give what the interpreter computes
func TestFoldingAgreesWithEvaluation(t *testing.T) {
	sources := []string{
		"return 7 / 2 - 3 * 4;",
		"return 10 % 4 + -3;",
		"return \"ab\" + \"cd\" == \"abcd\";",
		"return !(2 >= 3) || false;",
		"return 'a' != 'b';",
		"return 1 < 2 == true;",
	}

	for _, src := range sources {
		expected, err := New().Interpret(parse(t, src))
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", src, err)
		}

		folded, _, _ := optimizer.Optimize(parse(t, src))
		got, err := New().Interpret(folded)
		if err != nil {
			t.Fatalf("%q: unexpected error after folding: %v", src, err)
		}
		if got != expected {
			t.Errorf("%q: Expected %v, got %v", src, expected, got)
		}
	}
}
