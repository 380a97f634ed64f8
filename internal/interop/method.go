package interop

import (
	"github.com/pkg/errors"

	"github.com/peter-r-g/CodeItOut/internal/frontend/ast"
	"github.com/peter-r-g/CodeItOut/internal/types"
)

// NativeFunc is the thunk behind a host method. It receives the raw
// argument values in parameter order.
type NativeFunc func(args []any) (any, error)

// Param is one named, typed method parameter
type Param struct {
	Name string
	Kind types.Kind
}

// Method is a callable value, either declared by a script or provided by the host
type Method struct {
	Name      string
	Returns   types.Kind
	Params    []Param
	Signature Signature

	decl   *ast.MethodDeclaration
	native NativeFunc
}

// FromDeclaration wraps a script method declaration
func FromDeclaration(decl *ast.MethodDeclaration) *Method {
	params := make([]Param, len(decl.Parameters))
	for i, p := range decl.Parameters {
		params[i] = Param{Name: p.Name.Name(), Kind: p.Type.Kind}
	}
	m := &Method{
		Name:    decl.Name.Name(),
		Returns: decl.ReturnType.Kind,
		Params:  params,
		decl:    decl,
	}
	m.Signature = m.signature()
	return m
}

// NewNative wraps a host thunk under name
func NewNative(name string, returns types.Kind, params []Param, fn NativeFunc) *Method {
	m := &Method{
		Name:    name,
		Returns: returns,
		Params:  params,
		native:  fn,
	}
	m.Signature = m.signature()
	return m
}

func (m *Method) signature() Signature {
	kinds := make([]types.Kind, len(m.Params))
	for i, p := range m.Params {
		kinds[i] = p.Kind
	}
	return Signature{Name: m.Name, Params: kinds}
}

func (m *Method) ScriptKind() types.Kind {
	return types.Method
}

func (m *Method) IsNative() bool {
	return m.native != nil
}

// Declaration returns the script declaration, nil for host methods
func (m *Method) Declaration() *ast.MethodDeclaration {
	return m.decl
}

// Invoke runs a host method
func (m *Method) Invoke(args []any) (any, error) {
	if m.native == nil {
		return nil, errors.Errorf("%s is not a host method", m.Signature)
	}
	result, err := m.native(args)
	if err != nil {
		return nil, errors.Wrapf(err, "calling %s", m.Signature)
	}
	return result, nil
}

// Equal reports whether two methods have the same return kind and matching signatures
func (m *Method) Equal(other *Method) bool {
	if other == nil {
		return false
	}
	return m == other || (m.Returns == other.Returns && m.Signature.Matches(other.Signature))
}

func (m *Method) String() string {
	return m.Signature.String()
}
