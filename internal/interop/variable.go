package interop

import "github.com/peter-r-g/CodeItOut/internal/types"

// Variable is a host value exposed to scripts through a getter and setter
type Variable struct {
	Name     string
	Kind     types.Kind
	CanRead  bool
	CanWrite bool

	get func() any
	set func(any)
}

func NewVariable(name string, kind types.Kind, canRead, canWrite bool, get func() any, set func(any)) *Variable {
	return &Variable{
		Name:     name,
		Kind:     kind,
		CanRead:  canRead,
		CanWrite: canWrite,
		get:      get,
		set:      set,
	}
}

func (v *Variable) ScriptKind() types.Kind {
	return v.Kind
}

// Get reads the host value. An unreadable variable yields the kind's default.
func (v *Variable) Get() any {
	if v.get == nil {
		return v.Kind.Default()
	}
	return v.get()
}

// Set writes the host value. Writes to an unwritable variable are dropped.
func (v *Variable) Set(value any) {
	if v.set != nil {
		v.set(value)
	}
}

// Listener is notified of every host method and variable added to a script
type Listener interface {
	MethodAdded(m *Method)
	VariableAdded(v *Variable)
}
