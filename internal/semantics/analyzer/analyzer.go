package analyzer

import (
	"github.com/peter-r-g/CodeItOut/internal/diagnostics"
	"github.com/peter-r-g/CodeItOut/internal/frontend/ast"
	"github.com/peter-r-g/CodeItOut/internal/interop"
	"github.com/peter-r-g/CodeItOut/internal/phase"
	"github.com/peter-r-g/CodeItOut/internal/semantics/table"
	"github.com/peter-r-g/CodeItOut/internal/types"
)

// Analyzer type checks trees against scopes that outlive a single tree.
// The root scopes keep the globals and top-level methods of every
// successful Analyze call.
type Analyzer struct {
	diagnostics *diagnostics.DiagnosticBag

	variables *table.Manager[string, types.Kind]
	methods   *table.Manager[interop.Signature, *interop.Method]
	externals *table.Manager[string, *interop.Variable]

	expected TypeCheckStack
	returns  []types.Kind
}

func New() *Analyzer {
	return &Analyzer{
		diagnostics: diagnostics.NewDiagnosticBag(phase.Analysis.String()),
		variables:   table.NewManager[string, types.Kind](table.Equal[string]),
		methods:     table.NewManager[interop.Signature, *interop.Method](interop.SignatureMatches),
		externals:   table.NewManager[string, *interop.Variable](table.Equal[string]),
	}
}

func (a *Analyzer) Diagnostics() *diagnostics.DiagnosticBag {
	return a.diagnostics
}

type snapshot struct {
	variables []table.Entry[string, types.Kind]
	methods   []table.Entry[interop.Signature, *interop.Method]
}

func (a *Analyzer) snapshot() snapshot {
	return snapshot{
		variables: a.variables.Root().Entries(),
		methods:   a.methods.Root().Entries(),
	}
}

func (a *Analyzer) restore(s snapshot) {
	a.variables.Root().Replace(s.variables)
	a.methods.Root().Replace(s.methods)
}

// Analyze walks node once and reports whether it raised no errors. A failed
// run leaves the root scopes as they were so the names it declared do not
// leak into later runs.
func (a *Analyzer) Analyze(node ast.Node) bool {
	before := a.diagnostics.ErrorCount()
	saved := a.snapshot()

	a.visit(node)

	if a.diagnostics.ErrorCount() > before {
		a.restore(saved)
		return false
	}
	return true
}

// Retain drops every root name keep rejects. Methods are kept by their
// signature text. A run that fails during interpretation uses it to forget
// the globals the analyzer accepted but the interpreter never created.
func (a *Analyzer) Retain(keep func(name string) bool) {
	a.variables.Root().Replace(retained(a.variables.Root().Entries(), func(name string) string { return name }, keep))
	a.methods.Root().Replace(retained(a.methods.Root().Entries(), interop.Signature.String, keep))
	a.externals.Root().Replace(retained(a.externals.Root().Entries(), func(name string) string { return name }, keep))
}

func retained[K, V any](entries []table.Entry[K, V], name func(K) string, keep func(string) bool) []table.Entry[K, V] {
	result := entries[:0]
	for _, e := range entries {
		if keep(name(e.Key)) {
			result = append(result, e)
		}
	}
	return result
}

// MethodAdded registers a host method in the root scope
func (a *Analyzer) MethodAdded(m *interop.Method) {
	a.variables.Root().AddOrUpdate(m.Signature.String(), types.Method)
	a.methods.Root().AddOrUpdate(m.Signature, m)
}

// VariableAdded registers a host variable in the root scope
func (a *Analyzer) VariableAdded(v *interop.Variable) {
	a.variables.Root().AddOrUpdate(v.Name, v.Kind)
	a.externals.Root().AddOrUpdate(v.Name, v)
}

// HasGlobal reports whether name is declared in the root scope
func (a *Analyzer) HasGlobal(name string) bool {
	return a.variables.Root().Contains(name, false)
}

// DeclareGlobal declares name in the root scope. A method value also
// registers its signature.
func (a *Analyzer) DeclareGlobal(name string, kind types.Kind, method *interop.Method) error {
	if err := a.variables.Root().Declare(name, kind); err != nil {
		return err
	}
	if method != nil {
		a.methods.Root().AddOrUpdate(method.Signature, method)
	}
	return nil
}

// GlobalKind returns the kind a global was declared with
func (a *Analyzer) GlobalKind(name string) (types.Kind, bool) {
	return a.variables.Root().Get(name)
}

func (a *Analyzer) enter(id ast.ScopeID) func() {
	leaveVariables := a.variables.Enter(id)
	leaveMethods := a.methods.Enter(id)
	leaveExternals := a.externals.Enter(id)
	return func() {
		leaveExternals()
		leaveMethods()
		leaveVariables()
	}
}

func (a *Analyzer) add(diag *diagnostics.Diagnostic) {
	a.diagnostics.Add(diag)
}

// check validates kind against the expected kind at pos
func (a *Analyzer) check(kind types.Kind, pos ast.Node) {
	if expected, ok := a.expected.Check(kind); !ok {
		a.add(diagnostics.TypeMismatch(ast.Start(pos), expected.String(), kind.String()))
	}
}

func (a *Analyzer) visitExpecting(kind types.Kind, node ast.Node) types.Kind {
	a.expected.Push(kind)
	defer a.expected.Pop()
	return a.visit(node)
}
