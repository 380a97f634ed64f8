package interpreter

import (
	"github.com/pkg/errors"

	"github.com/peter-r-g/CodeItOut/internal/frontend/ast"
	"github.com/peter-r-g/CodeItOut/internal/interop"
	"github.com/peter-r-g/CodeItOut/internal/semantics/table"
	"github.com/peter-r-g/CodeItOut/internal/types"
)

// ErrRuntime is the cause of every fault raised while interpreting. A
// tree that passed analysis should never produce one.
var ErrRuntime = errors.New("runtime error")

func runtimeError(format string, args ...any) error {
	return errors.Wrapf(ErrRuntime, format, args...)
}

// Interpreter evaluates trees against scopes that outlive a single tree.
// It mirrors the analyzer's scopes with values in place of kinds.
type Interpreter struct {
	variables *table.Manager[string, any]
	methods   *table.Manager[interop.Signature, *interop.Method]
	returning bool
}

func New() *Interpreter {
	return &Interpreter{
		variables: table.NewManager[string, any](table.Equal[string]),
		methods:   table.NewManager[interop.Signature, *interop.Method](interop.SignatureMatches),
	}
}

// Interpret evaluates node and returns the value of the first return
// statement reached at program level.
func (i *Interpreter) Interpret(node ast.Node) (any, error) {
	i.returning = false
	result, err := i.visit(node)
	i.returning = false
	if err != nil {
		return nil, err
	}
	return result, nil
}

// MethodAdded registers a host method in the root scope
func (i *Interpreter) MethodAdded(m *interop.Method) {
	i.variables.Root().AddOrUpdate(m.Signature.String(), m)
	i.methods.Root().AddOrUpdate(m.Signature, m)
}

// VariableAdded registers a host variable in the root scope
func (i *Interpreter) VariableAdded(v *interop.Variable) {
	i.variables.Root().AddOrUpdate(v.Name, v)
}

// DeclareGlobal declares a root value. A method value also registers its signature.
func (i *Interpreter) DeclareGlobal(name string, value any) error {
	if err := i.variables.Root().Declare(name, value); err != nil {
		return err
	}
	if m, ok := value.(*interop.Method); ok {
		i.methods.Root().AddOrUpdate(m.Signature, m)
	}
	return nil
}

// HasGlobal reports whether name is declared in the root scope without
// reading host variables.
func (i *Interpreter) HasGlobal(name string) bool {
	return i.variables.Root().Contains(name, false)
}

// Globals returns the root entries in declaration order. Host variables
// are returned as the *interop.Variable cell.
func (i *Interpreter) Globals() []table.Entry[string, any] {
	return i.variables.Root().Entries()
}

// Global reads a root value through any host getter
func (i *Interpreter) Global(name string) (any, bool) {
	value, ok := i.variables.Root().Get(name)
	if !ok {
		return nil, false
	}
	return read(value), true
}

func read(value any) any {
	if v, ok := value.(*interop.Variable); ok {
		return v.Get()
	}
	return value
}

// Call invokes m with raw argument values
func (i *Interpreter) Call(m *interop.Method, args []any) (any, error) {
	if len(args) != len(m.Params) {
		return nil, runtimeError("%s expects %d argument(s), got %d", m.Signature, len(m.Params), len(args))
	}
	if m.IsNative() {
		result, err := m.Invoke(args)
		if err != nil {
			return nil, err
		}
		return result, nil
	}

	decl := m.Declaration()
	seed := make([]table.Entry[string, any], len(args))
	for idx, param := range m.Params {
		seed[idx] = table.Entry[string, any]{Key: param.Name, Value: args[idx]}
	}

	leave := i.variables.Enter(decl.ScopeID, seed...)
	defer leave()

	result, err := i.visitBlock(decl.Body)
	i.returning = false
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (i *Interpreter) enter(id ast.ScopeID) func() {
	leaveVariables := i.variables.Enter(id)
	leaveMethods := i.methods.Enter(id)
	return func() {
		leaveMethods()
		leaveVariables()
	}
}

func kindOf(value any) types.Kind {
	kind, _ := types.Of(value)
	return kind
}

func (i *Interpreter) condition(e ast.Expression) (bool, error) {
	value, err := i.visit(e)
	if err != nil {
		return false, err
	}
	b, ok := value.(bool)
	if !ok {
		return false, runtimeError("condition evaluated to %s, not a Boolean", kindOf(value))
	}
	return b, nil
}
