package types

import (
	"testing"

	"github.com/peter-r-g/CodeItOut/internal/tokens"
)

func TestKindNames(t *testing.T) {
	tests := []struct {
		kind       Kind
		name       string
		identifier string
		display    string
		host       HostType
	}{
		{Nothing, "Nothing", "void", "Nothing", HostVoid},
		{Variable, "Variable", "var", "Any", HostValue},
		{Boolean, "Boolean", "bool", "Boolean", HostBool},
		{Character, "Character", "char", "Character", HostChar},
		{Number, "Number", "number", "Number", HostNumber},
		{Method, "Method", "", "Method", HostMethod},
		{String, "String", "string", "String", HostString},
	}

	for _, tt := range tests {
		if got := tt.kind.Name(); got != tt.name {
			t.Errorf("Name() = %q, want %q", got, tt.name)
		}
		if got := tt.kind.Identifier(); got != tt.identifier {
			t.Errorf("%s.Identifier() = %q, want %q", tt.name, got, tt.identifier)
		}
		if got := tt.kind.String(); got != tt.display {
			t.Errorf("%s.String() = %q, want %q", tt.name, got, tt.display)
		}
		if got := tt.kind.Host(); got != tt.host {
			t.Errorf("%s.Host() = %q, want %q", tt.name, got, tt.host)
		}
	}
}

func TestByIdentifier(t *testing.T) {
	for _, k := range []Kind{Nothing, Variable, Boolean, Character, Number, String} {
		got, ok := ByIdentifier(k.Identifier())
		if !ok || got != k {
			t.Errorf("ByIdentifier(%q) = %v, %v", k.Identifier(), got, ok)
		}
	}

	for _, word := range []string{"", "int", "Number", "method"} {
		if _, ok := ByIdentifier(word); ok {
			t.Errorf("Expected %q to have no kind", word)
		}
	}
}

func TestByHost(t *testing.T) {
	for _, k := range All() {
		got, ok := ByHost(k.Host())
		if !ok || got != k {
			t.Errorf("ByHost(%q) = %v, %v, want %v", k.Host(), got, ok, k)
		}
	}
	if _, ok := ByHost(HostScript); ok {
		t.Error("Expected HostScript to have no kind")
	}
	if _, ok := ByHost("int"); ok {
		t.Error("Expected unknown host type to have no kind")
	}
}

type typedStub struct{}

func (typedStub) ScriptKind() Kind { return Method }

func TestOf(t *testing.T) {
	tests := []struct {
		value any
		want  Kind
		ok    bool
	}{
		{nil, Nothing, true},
		{true, Boolean, true},
		{'x', Character, true},
		{1.5, Number, true},
		{"s", String, true},
		{typedStub{}, Method, true},
		{42, Nothing, false},
	}

	for _, tt := range tests {
		got, ok := Of(tt.value)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Of(%#v) = %v, %v, want %v, %v", tt.value, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDefaults(t *testing.T) {
	if Boolean.Default() != false {
		t.Error("Expected Boolean default false")
	}
	if Character.Default() != rune(0) {
		t.Error("Expected Character default 0")
	}
	if Number.Default() != float64(0) {
		t.Error("Expected Number default 0")
	}
	if String.Default() != "" {
		t.Error("Expected String default empty")
	}
	if Nothing.Default() != nil || Variable.Default() != nil {
		t.Error("Expected Nothing and Variable defaults to be nil")
	}
}

func TestCompatible(t *testing.T) {
	for _, k := range All() {
		if !Compatible(k, Variable) || !Compatible(Variable, k) {
			t.Errorf("Expected %s to be compatible with Variable in both directions", k)
		}
		if !Compatible(k, k) {
			t.Errorf("Expected %s to be compatible with itself", k)
		}
	}
	if Compatible(Number, String) {
		t.Error("Expected Number and String to be incompatible")
	}
}

func TestOperatorMatrix(t *testing.T) {
	supported := map[Kind][]Operator{
		Boolean:   {OpAnd, OpOr, OpEqual, OpNotEqual},
		Character: {OpEqual, OpNotEqual},
		Number: {OpAdd, OpSub, OpMul, OpDiv, OpMod, OpPow, OpEqual, OpNotEqual,
			OpGreater, OpGreaterEqual, OpLess, OpLessEqual},
		String: {OpAdd, OpEqual, OpNotEqual},
	}
	binaryOps := []Operator{OpAdd, OpSub, OpMul, OpDiv, OpMod, OpPow, OpEqual, OpNotEqual,
		OpGreater, OpGreaterEqual, OpLess, OpLessEqual, OpAnd, OpOr}

	for _, k := range All() {
		want := map[Operator]bool{}
		for _, op := range supported[k] {
			want[op] = true
		}
		for _, op := range binaryOps {
			_, ok := k.Binary(op)
			if ok != want[op] {
				t.Errorf("%s.Binary(%s) supported = %v, want %v", k, op, ok, want[op])
			}
		}
	}

	if _, ok := Boolean.Unary(OpNot); !ok {
		t.Error("Expected Boolean to support unary !")
	}
	if _, ok := Number.Unary(OpSub); !ok {
		t.Error("Expected Number to support unary -")
	}
	if _, ok := String.Unary(OpSub); ok {
		t.Error("Expected String to reject unary -")
	}
	if _, ok := Variable.Binary(OpAdd); ok {
		t.Error("Expected Variable to have no operators")
	}
}

func TestNumberOperations(t *testing.T) {
	tests := []struct {
		op   Operator
		l, r float64
		want any
	}{
		{OpAdd, 2, 3, 5.0},
		{OpSub, 2, 3, -1.0},
		{OpMul, 2, 3, 6.0},
		{OpDiv, 3, 2, 1.5},
		{OpMod, 7, 3, 1.0},
		{OpPow, 2, 10, 1024.0},
		{OpEqual, 1, 1.0005, true},
		{OpEqual, 1, 1.01, false},
		{OpNotEqual, 1, 1.0005, false},
		{OpLess, 1, 2, true},
		{OpGreaterEqual, 2, 2, true},
	}

	for _, tt := range tests {
		fn, ok := Number.Binary(tt.op)
		if !ok {
			t.Fatalf("Number does not support %s", tt.op)
		}
		got, err := fn(tt.l, tt.r)
		if err != nil {
			t.Fatalf("%v %s %v: %v", tt.l, tt.op, tt.r, err)
		}
		if got != tt.want {
			t.Errorf("%v %s %v = %v, want %v", tt.l, tt.op, tt.r, got, tt.want)
		}
	}
}

func TestBinaryRejectsWrongOperand(t *testing.T) {
	fn, _ := String.Binary(OpAdd)
	if _, err := fn("a", 1.0); err == nil {
		t.Error("Expected an error for a Number right operand")
	}
}

func TestCompare(t *testing.T) {
	if !Number.Compare(0.1+0.2, 0.3) {
		t.Error("Expected numbers within tolerance to compare equal")
	}
	if Number.Compare(1.0, 2.0) {
		t.Error("Expected distinct numbers to differ")
	}
	if !String.Compare("a", "a") || String.Compare("a", "b") {
		t.Error("Unexpected String comparison")
	}
	if !Variable.Compare(true, true) {
		t.Error("Expected Variable comparison to use equality")
	}
}

func TestFromToken(t *testing.T) {
	tests := map[tokens.TOKEN]Operator{
		tokens.PLUS_TOKEN:         OpAdd,
		tokens.EXP_TOKEN:          OpPow,
		tokens.DOUBLE_EQUAL_TOKEN: OpEqual,
		tokens.AND_TOKEN:          OpAnd,
		tokens.NOT_TOKEN:          OpNot,
	}
	for tok, want := range tests {
		got, ok := FromToken(tok)
		if !ok || got != want {
			t.Errorf("FromToken(%q) = %v, %v, want %v", tok, got, ok, want)
		}
		if got.String() != string(tok) {
			t.Errorf("Operator %v prints %q, want %q", got, got.String(), tok)
		}
	}
	if _, ok := FromToken(tokens.EQUALS_TOKEN); ok {
		t.Error("Expected = to be no operator")
	}
}

func TestResultType(t *testing.T) {
	if ResultType(OpAdd, Number) != Number {
		t.Error("Expected + on Number to give Number")
	}
	if ResultType(OpLess, Number) != Boolean {
		t.Error("Expected < to give Boolean")
	}
	if ResultType(OpAdd, String) != String {
		t.Error("Expected + on String to give String")
	}
	if ResultType(OpNot, Boolean) != Boolean {
		t.Error("Expected ! to give Boolean")
	}
}
