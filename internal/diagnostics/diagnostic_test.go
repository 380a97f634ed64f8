package diagnostics

import (
	"testing"

	"github.com/peter-r-g/CodeItOut/internal/source"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{Informational, "info"},
		{Warning, "warning"},
		{Error, "error"},
		{Severity(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.severity.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tt.severity, got, tt.want)
		}
	}
}

func TestSeverityOrder(t *testing.T) {
	if !(Informational < Warning && Warning < Error) {
		t.Error("Expected Informational < Warning < Error")
	}
}

func TestDiagnosticBuilders(t *testing.T) {
	diag := NewError("x is not defined").
		WithCode(ErrUndefinedSymbol).
		At(source.Position{Line: 3, Column: 7}).
		WithHelp("declare x")

	if diag.Severity != Error {
		t.Errorf("Expected Error severity, got %s", diag.Severity)
	}
	if diag.Code != ErrUndefinedSymbol {
		t.Errorf("Expected code %s, got %s", ErrUndefinedSymbol, diag.Code)
	}
	if diag.Help != "declare x" {
		t.Errorf("Unexpected help %q", diag.Help)
	}
	if !diag.HasLocation() {
		t.Error("Expected diagnostic to have a location")
	}
	if got := diag.String(); got != "x is not defined at 3:7" {
		t.Errorf("Unexpected String() %q", got)
	}
}

func TestDiagnosticWithoutLocation(t *testing.T) {
	diag := NewInfo("Parsing took 1ms")

	if diag.HasLocation() {
		t.Error("Expected no location")
	}
	if diag.String() != "Parsing took 1ms" {
		t.Errorf("Unexpected String() %q", diag.String())
	}
}

func TestMessageBuilders(t *testing.T) {
	pos := source.Position{Line: 1, Column: 1}
	tests := []struct {
		name string
		diag *Diagnostic
		want string
		code string
	}{
		{"mismatch", TypeMismatch(pos, "Number", "String"), "Expected Number, got String", ErrTypeMismatch},
		{"undefined", Undefined(pos, "f()"), "f() is not defined", ErrUndefinedSymbol},
		{"redefined", Redefined(pos, "x", "scope"), "x is already defined in scope", ErrRedeclaredSymbol},
		{"unreadable", Unreadable("secret"), "secret is not readable", ErrUnreadable},
		{"unwritable", Unwritable("fixed"), "fixed is not writable", ErrUnwritable},
		{"binary", UnsupportedBinary(pos, "-", "String"), `Binary operator - not supported for type "String"`, ErrUnsupportedBinary},
		{"unary", UnsupportedUnary(pos, "!", "Number"), `Unary operator ! not supported for type "Number"`, ErrUnsupportedUnary},
		{"count", WrongArgumentCount(pos, 2, 1), "Expected 2 argument(s), got 1", ErrWrongArgumentCount},
		{"initial", MissingInitialType(pos), "Expected type in initial value", ErrMissingInitialType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.diag.Message != tt.want {
				t.Errorf("Message = %q, want %q", tt.diag.Message, tt.want)
			}
			if tt.diag.Code != tt.code {
				t.Errorf("Code = %q, want %q", tt.diag.Code, tt.code)
			}
			if tt.diag.Severity != Error {
				t.Errorf("Severity = %s, want error", tt.diag.Severity)
			}
		})
	}
}
