package script

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/peter-r-g/CodeItOut/internal/interop"
	"github.com/peter-r-g/CodeItOut/internal/types"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		raw  any
		host HostType
		kind types.Kind
	}{
		{nil, HostVoid, types.Nothing},
		{true, HostBool, types.Boolean},
		{'x', HostChar, types.Character},
		{1.5, HostNumber, types.Number},
		{"s", HostString, types.String},
	}

	for _, tt := range tests {
		v, err := From(tt.raw)
		if err != nil {
			t.Fatalf("From(%v): %v", tt.raw, err)
		}
		if v.Host() != tt.host || v.Type() != tt.kind {
			t.Errorf("From(%v): Expected %s/%s, got %s/%s", tt.raw, tt.host, tt.kind, v.Host(), v.Type())
		}
	}
}

func TestFromUnsupported(t *testing.T) {
	if _, err := From(42); errors.Cause(err) != ErrTypeUnsupported {
		t.Errorf("Expected ErrTypeUnsupported, got %v", err)
	}
}

func TestFromVariableReadsThrough(t *testing.T) {
	current := "a"
	v := MustFrom(interop.NewVariable("name", types.String, true, false, func() any { return current }, nil))
	if v.Raw() != "a" {
		t.Errorf("Expected a, got %v", v.Raw())
	}
	current = "b"
	if v.Raw() != "b" {
		t.Errorf("Expected b, got %v", v.Raw())
	}
	if v.Type() != types.String {
		t.Errorf("Expected String, got %s", v.Type())
	}
}

func TestValueEqual(t *testing.T) {
	if !MustFrom(0.1 + 0.2).Equal(MustFrom(0.3)) {
		t.Error("Expected numbers within tolerance to be equal")
	}
	if MustFrom("1").Equal(MustFrom(1.0)) {
		t.Error("Expected values of different types to differ")
	}
	if MustFrom(MustFrom(true)) != MustFrom(true) {
		t.Error("Expected From to pass a Value through")
	}
}

func TestValueString(t *testing.T) {
	if got := MustFrom(14.0).String(); got != "Value(Type: float64, Value: 14)" {
		t.Errorf("Expected Value(Type: float64, Value: 14), got %s", got)
	}
}
