package script

import (
	"github.com/peter-r-g/CodeItOut/internal/interop"
	"github.com/peter-r-g/CodeItOut/internal/types"
)

// Param describes one host method parameter
type Param struct {
	Name string
	Type HostType
}

// MethodSpec describes a host method. The first parameter must be the
// HostScript handle. Invoke receives the remaining arguments in order,
// with HostValue parameters wrapped in a Value.
type MethodSpec struct {
	// Names the method is callable under. One spec may register several.
	Names   []string
	Params  []Param
	Returns HostType
	Invoke  func(s *Script, args []any) (any, error)
}

// VariableSpec describes a host variable backed by a getter and setter
type VariableSpec struct {
	Names    []string
	Type     HostType
	CanRead  bool
	CanWrite bool
	Get      func() any
	Set      func(any)
}

func parameterKind(host HostType) (types.Kind, bool) {
	if host == HostVoid || host == HostScript {
		return types.Nothing, false
	}
	return types.ByHost(host)
}

// RegisterMethod validates spec and adds one method per name. Every
// listener sees each method as it is added.
func (s *Script) RegisterMethod(spec MethodSpec) error {
	returnHost := spec.Returns
	if returnHost == "" {
		returnHost = HostVoid
	}
	returns, ok := types.ByHost(returnHost)
	if !ok {
		return newError(ErrReturnTypeUnsupported, "The return type %s is not supported", returnHost)
	}

	if len(spec.Params) == 0 || spec.Params[0].Type != HostScript {
		return newError(ErrParameter, "First parameter must be of type Script.")
	}

	params := make([]interop.Param, 0, len(spec.Params)-1)
	for _, p := range spec.Params[1:] {
		kind, ok := parameterKind(p.Type)
		if !ok {
			return newError(ErrParameter, "Parameter type %q is unsupported.", p.Type)
		}
		params = append(params, interop.Param{Name: p.Name, Kind: kind})
	}

	thunk := s.thunk(spec, spec.Params[1:])
	for _, name := range spec.Names {
		m := interop.NewNative(name, returns, params, thunk)
		s.methods = append(s.methods, m)
		for _, l := range s.listeners {
			l.MethodAdded(m)
		}
	}
	return nil
}

// thunk adapts spec.Invoke to raw interpreter values
func (s *Script) thunk(spec MethodSpec, params []Param) interop.NativeFunc {
	return func(args []any) (any, error) {
		converted := make([]any, len(args))
		for i, arg := range args {
			if i < len(params) && params[i].Type == HostValue {
				converted[i] = wrap(arg)
			} else {
				converted[i] = unwrap(arg)
			}
		}

		if spec.Invoke == nil {
			return nil, nil
		}
		result, err := spec.Invoke(s, converted)
		if err != nil {
			return nil, err
		}
		return unwrap(result), nil
	}
}

// RegisterVariable validates spec and adds one variable per name
func (s *Script) RegisterVariable(spec VariableSpec) error {
	kind, ok := parameterKind(spec.Type)
	if !ok {
		return newError(ErrTypeUnsupported, "The type %q is unsupported", spec.Type)
	}

	for _, name := range spec.Names {
		if spec.CanRead && spec.Get == nil {
			return newError(ErrUnreadable, "The property %q is unreadable", name)
		}
		if spec.CanWrite && spec.Set == nil {
			return newError(ErrUnwritable, "The property %q is unwritable", name)
		}
	}

	for _, name := range spec.Names {
		v := interop.NewVariable(name, kind, spec.CanRead, spec.CanWrite, spec.Get, spec.Set)
		s.variables = append(s.variables, v)
		for _, l := range s.listeners {
			l.VariableAdded(v)
		}
	}
	return nil
}

// Methods returns every registered host method
func (s *Script) Methods() []*Method {
	return append([]*Method(nil), s.methods...)
}
