package script

import (
	"fmt"

	"github.com/peter-r-g/CodeItOut/internal/interop"
	"github.com/peter-r-g/CodeItOut/internal/types"
)

// HostType names the Go representation behind a SandScript type
type HostType = types.HostType

const (
	HostVoid   = types.HostVoid
	HostBool   = types.HostBool
	HostChar   = types.HostChar
	HostNumber = types.HostNumber
	HostString = types.HostString
	HostValue  = types.HostValue
	HostMethod = types.HostMethod
	HostScript = types.HostScript
)

// Method is a callable script or host method
type Method = interop.Method

// Value wraps a raw value at the boundary between a script and its host.
// The host type and kind are derived together and always agree.
type Value struct {
	host HostType
	kind types.Kind
	raw  any
}

// From wraps raw. A host variable cell is read through its getter each
// time the value is read.
func From(raw any) (Value, error) {
	switch v := raw.(type) {
	case Value:
		return v, nil
	case *Value:
		if v == nil {
			return From(nil)
		}
		return *v, nil
	case *interop.Variable:
		return Value{host: v.Kind.Host(), kind: v.Kind, raw: v}, nil
	}

	kind, ok := types.Of(raw)
	if !ok {
		return Value{}, newError(ErrTypeUnsupported, "The type \"%T\" is unsupported", raw)
	}
	return Value{host: kind.Host(), kind: kind, raw: raw}, nil
}

// MustFrom is From for values known to be supported
func MustFrom(raw any) Value {
	v, err := From(raw)
	if err != nil {
		panic(err)
	}
	return v
}

// Raw returns the wrapped value
func (v Value) Raw() any {
	if variable, ok := v.raw.(*interop.Variable); ok {
		return variable.Get()
	}
	return v.raw
}

func (v Value) Host() HostType   { return v.host }
func (v Value) Type() types.Kind { return v.kind }

// IsNothing reports whether the value is void
func (v Value) IsNothing() bool {
	return v.kind == types.Nothing
}

// IsVariable reports whether v reads through a host variable
func (v Value) IsVariable() bool {
	_, ok := v.raw.(*interop.Variable)
	return ok
}

// cell is what the interpreter stores: the raw value or the variable behind it
func (v Value) cell() any {
	return v.raw
}

// Equal compares host types and then the raw values through the kind
func (v Value) Equal(other Value) bool {
	return v.host == other.host && v.kind.Compare(v.Raw(), other.Raw())
}

func (v Value) String() string {
	return fmt.Sprintf("Value(Type: %s, Value: %s)", v.host, types.Format(v.Raw()))
}

func wrap(raw any) any {
	if v, err := From(raw); err == nil {
		return v
	}
	return raw
}

func unwrap(raw any) any {
	switch v := raw.(type) {
	case Value:
		return v.Raw()
	case *Value:
		if v == nil {
			return nil
		}
		return v.Raw()
	}
	return raw
}
