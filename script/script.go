package script

import (
	"io"

	"github.com/pkg/errors"

	"github.com/peter-r-g/CodeItOut/internal/diagnostics"
	"github.com/peter-r-g/CodeItOut/internal/interop"
	"github.com/peter-r-g/CodeItOut/internal/interpreter"
	"github.com/peter-r-g/CodeItOut/internal/phase"
	"github.com/peter-r-g/CodeItOut/internal/pipeline"
	"github.com/peter-r-g/CodeItOut/internal/semantics/analyzer"
	"github.com/peter-r-g/CodeItOut/internal/types"
)

// ErrRuntime is the cause of interpreter faults returned by Execute and Call
var ErrRuntime = interpreter.ErrRuntime

// Listener is notified of every host method and variable registered
type Listener = interop.Listener

// Script holds the state shared by every Execute call: the globals and
// methods declared so far and the registered host surface. A Script is
// not safe for concurrent use.
type Script struct {
	analyzer    *analyzer.Analyzer
	interpreter *interpreter.Interpreter
	listeners   []Listener
	methods     []*Method
	variables   []*interop.Variable
	options     pipeline.Options
}

type Option func(*Script)

// WithTimings records a timing diagnostic for every stage
func WithTimings() Option {
	return func(s *Script) { s.options.Timings = true }
}

// WithDebug prints stage banners and a summary to w
func WithDebug(w io.Writer) Option {
	return func(s *Script) {
		s.options.Debug = true
		s.options.Output = w
	}
}

// WithKeepNonEssential keeps whitespace and comment tokens
func WithKeepNonEssential() Option {
	return func(s *Script) { s.options.KeepNonEssential = true }
}

// WithTrace hands the output of each front stage to fn
func WithTrace(fn func(stage phase.Stage, output any)) Option {
	return func(s *Script) { s.options.Trace = fn }
}

// WithListener adds l after the analyzer and interpreter
func WithListener(l Listener) Option {
	return func(s *Script) { s.listeners = append(s.listeners, l) }
}

func New(opts ...Option) *Script {
	s := &Script{
		analyzer:    analyzer.New(),
		interpreter: interpreter.New(),
	}
	s.listeners = []Listener{s.analyzer, s.interpreter}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddListener subscribes l to later registrations
func (s *Script) AddListener(l Listener) {
	s.listeners = append(s.listeners, l)
}

// AddGlobal declares a global visible to every later Execute. A method
// value also becomes callable by its signature.
func (s *Script) AddGlobal(name string, value Value) error {
	if s.analyzer.HasGlobal(name) {
		return newError(ErrGlobalRedefined, "%q is already a defined global variable", name)
	}

	kind, ok := types.ByHost(value.Host())
	if !ok || kind != value.Type() {
		return newError(ErrTypeUnsupported, "The type %q is unsupported", value.Host())
	}

	method, _ := value.Raw().(*Method)
	if err := s.analyzer.DeclareGlobal(name, kind, method); err != nil {
		return errors.Wrapf(err, "declaring %s", name)
	}
	if err := s.interpreter.DeclareGlobal(name, value.cell()); err != nil {
		return errors.Wrapf(err, "declaring %s", name)
	}
	return nil
}

// Call invokes m in this script. Value arguments are unwrapped.
func (s *Script) Call(m *Method, args ...any) (Value, error) {
	raw := make([]any, len(args))
	for i, arg := range args {
		raw[i] = unwrap(arg)
	}

	result, err := s.interpreter.Call(m, raw)
	if err != nil {
		return Value{}, err
	}
	return From(result)
}

// CallValue invokes the method held by v
func (s *Script) CallValue(v Value, args ...any) (Value, error) {
	m, ok := v.Raw().(*Method)
	if !ok {
		return Value{}, newError(ErrTypeMismatch, "Expected %q, got %q", types.Method.Name(), v.Type().Name())
	}
	return s.Call(m, args...)
}

// Execute runs text. The value is nil when analysis failed or a fault
// stopped interpretation. The diagnostics are always returned.
func (s *Script) Execute(text string) (*Value, *diagnostics.Collection, error) {
	result, err := pipeline.New(s.analyzer, s.interpreter, s.options).Run(text)
	if err != nil {
		return nil, result.Diagnostics, err
	}
	if result.Halted {
		return nil, result.Diagnostics, nil
	}

	value, err := From(result.Value)
	if err != nil {
		return nil, result.Diagnostics, err
	}
	return &value, result.Diagnostics, nil
}

// Execute runs text in a new Script and returns it for further use
func Execute(text string, opts ...Option) (*Script, *Value, *diagnostics.Collection, error) {
	s := New(opts...)
	value, diags, err := s.Execute(text)
	return s, value, diags, err
}

// Globals is a snapshot of every global by name
func (s *Script) Globals() map[string]Value {
	globals := make(map[string]Value)
	for _, entry := range s.interpreter.Globals() {
		if v, err := From(entry.Value); err == nil {
			globals[entry.Key] = v
		}
	}
	return globals
}

// GlobalNames lists the globals in declaration order
func (s *Script) GlobalNames() []string {
	entries := s.interpreter.Globals()
	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Key
	}
	return names
}

// Global returns a single global
func (s *Script) Global(name string) (Value, bool) {
	raw, ok := s.interpreter.Global(name)
	if !ok {
		return Value{}, false
	}
	v, err := From(raw)
	return v, err == nil
}
