package pipeline

import (
	"io"
	"os"
	"time"

	"github.com/peter-r-g/CodeItOut/colors"
	"github.com/peter-r-g/CodeItOut/internal/diagnostics"
	"github.com/peter-r-g/CodeItOut/internal/frontend/ast"
	"github.com/peter-r-g/CodeItOut/internal/frontend/lexer"
	"github.com/peter-r-g/CodeItOut/internal/frontend/parser"
	"github.com/peter-r-g/CodeItOut/internal/interpreter"
	"github.com/peter-r-g/CodeItOut/internal/optimizer"
	"github.com/peter-r-g/CodeItOut/internal/phase"
	"github.com/peter-r-g/CodeItOut/internal/semantics/analyzer"
)

// TraceFunc receives the output of a stage: the token slice after
// lexing, the program after parsing and the optimized tree after
// optimization.
type TraceFunc func(stage phase.Stage, output any)

// Options controls a single run
type Options struct {
	// KeepNonEssential keeps whitespace and comment tokens
	KeepNonEssential bool
	// Timings records an informational timing diagnostic per stage
	Timings bool
	// Debug prints a banner before each stage
	Debug bool
	// Output receives debug banners, stderr when nil
	Output io.Writer
	Trace  TraceFunc
}

// Pipeline runs source text through every stage against an analyzer and
// interpreter that keep their globals between runs.
type Pipeline struct {
	analyzer    *analyzer.Analyzer
	interpreter *interpreter.Interpreter
	opts        Options
}

// Result is the outcome of one run
type Result struct {
	Value       any
	Diagnostics *diagnostics.Collection
	// Changes is the number of optimizer rewrites
	Changes int
	// Halted is set when analysis failed and the tree was not interpreted
	Halted bool
}

func New(a *analyzer.Analyzer, i *interpreter.Interpreter, opts Options) *Pipeline {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	return &Pipeline{analyzer: a, interpreter: i, opts: opts}
}

func (p *Pipeline) banner(stage phase.Stage) {
	if p.opts.Debug {
		colors.CYAN.Fprintf(p.opts.Output, "\n[Phase %d] %s\n", int(stage)+1, stage)
	}
}

func (p *Pipeline) trace(stage phase.Stage, output any) {
	if p.opts.Trace != nil {
		p.opts.Trace(stage, output)
	}
}

func (p *Pipeline) finish(result *Result, bag *diagnostics.DiagnosticBag, started time.Time) {
	if p.opts.Timings {
		bag.Time(time.Since(started))
	}
	result.Diagnostics.AddStageAndClear(bag)
}

// Run executes text. Only semantic analysis errors stop the run before
// interpretation. An interpreter fault is returned as the error and the
// diagnostics gathered so far are still returned in the result.
func (p *Pipeline) Run(text string) (*Result, error) {
	result := &Result{Diagnostics: diagnostics.NewCollection()}

	p.banner(phase.Lexing)
	started := time.Now()
	toks, bag := lexer.Lex(text, p.opts.KeepNonEssential)
	p.finish(result, bag, started)
	p.trace(phase.Lexing, toks)

	p.banner(phase.Parsing)
	started = time.Now()
	program, bag := parser.Parse(toks)
	p.finish(result, bag, started)
	p.trace(phase.Parsing, program)

	p.banner(phase.Optimization)
	started = time.Now()
	var tree ast.Node
	tree, bag, result.Changes = optimizer.Optimize(program)
	p.finish(result, bag, started)
	p.trace(phase.Optimization, tree)

	p.banner(phase.Analysis)
	started = time.Now()
	ok := p.analyzer.Analyze(tree)
	p.finish(result, p.analyzer.Diagnostics(), started)
	if !ok {
		result.Halted = true
		p.summary(result, nil)
		return result, nil
	}

	p.banner(phase.Interpretation)
	bag = diagnostics.NewDiagnosticBag(phase.Interpretation.String())
	started = time.Now()
	value, err := p.interpreter.Interpret(tree)
	p.finish(result, bag, started)
	p.summary(result, err)
	if err != nil {
		p.analyzer.Retain(p.interpreter.HasGlobal)
		return result, err
	}

	result.Value = value
	return result, nil
}
