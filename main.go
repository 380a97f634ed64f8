//go:build !js && !wasm

package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/kr/pretty"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/peter-r-g/CodeItOut/colors"
	"github.com/peter-r-g/CodeItOut/internal/config"
	"github.com/peter-r-g/CodeItOut/internal/frontend/ast"
	"github.com/peter-r-g/CodeItOut/internal/hostlib"
	"github.com/peter-r-g/CodeItOut/internal/phase"
	"github.com/peter-r-g/CodeItOut/internal/repl"
	"github.com/peter-r-g/CodeItOut/internal/server"
	"github.com/peter-r-g/CodeItOut/internal/store"
	"github.com/peter-r-g/CodeItOut/internal/tokens"
	"github.com/peter-r-g/CodeItOut/internal/types"
	"github.com/peter-r-g/CodeItOut/script"
)

const version = "0.1.0"

type options struct {
	cfg        *config.Config
	showTokens bool
	showAST    bool
}

func main() {
	configPath := flag.String("config", "", "Load settings from a TOML or YAML file")
	debug := flag.Bool("d", false, "Enable debug output")
	showVersion := flag.Bool("v", false, "Show version")
	flag.BoolVar(debug, "debug", false, "Enable debug output")
	flag.BoolVar(showVersion, "version", false, "Show version")
	timings := flag.Bool("time", false, "Report how long each stage took")
	showTokens := flag.Bool("tokens", false, "Print the token stream")
	showAST := flag.Bool("ast", false, "Print the optimized tree")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	host := flag.String("host", "", "Host surface: gameplay, mapmaking or none")
	state := flag.String("state", "", "Restore globals from and save them to a SQLite file")
	interactive := flag.Bool("repl", false, "Start an interactive session")
	serve := flag.String("serve", "", "Serve /exec over WebSocket on this address")
	watch := flag.Bool("watch", false, "Run the file again whenever it changes")

	flag.Parse()

	if *showVersion {
		fmt.Printf("SandScript version %s\n", version)
		os.Exit(0)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fail(err)
		}
		cfg = loaded
	}

	// Flags override the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "d", "debug":
			cfg.Debug = *debug
		case "time":
			cfg.Timings = *timings
		case "host":
			cfg.Host = *host
		case "state":
			cfg.State = *state
		}
	})
	colors.Enabled = colors.Enabled && cfg.Color && !*noColor

	opts := options{cfg: cfg, showTokens: *showTokens, showAST: *showAST}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch args := flag.Args(); {
	case *interactive:
		err = runREPL(opts)
	case *serve != "":
		colors.CYAN.Fprintf(os.Stderr, "serving ws://%s/exec\n", *serve)
		err = server.New(func() (*script.Script, error) { return newScript(opts, io.Discard) }).ListenAndServe(ctx, *serve)
	case len(args) == 0:
		fmt.Fprintln(os.Stderr, "Usage: sandscript [options] <file>...")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		flag.PrintDefaults()
		os.Exit(1)
	case *watch:
		if len(args) != 1 {
			fail(errors.New("-watch takes exactly one file"))
		}
		err = watchFile(ctx, opts, args[0])
	default:
		if cfg.State != "" && len(args) != 1 {
			fail(errors.New("-state takes exactly one file"))
		}
		if !runFiles(ctx, opts, args) {
			os.Exit(1)
		}
	}

	if err != nil {
		fail(err)
	}
}

func fail(err error) {
	colors.RED.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

// newScript builds a script with the configured host, globals and debug output
func newScript(opts options, debugOut io.Writer) (*script.Script, error) {
	var scriptOpts []script.Option
	if opts.cfg.Timings {
		scriptOpts = append(scriptOpts, script.WithTimings())
	}
	if opts.cfg.Debug {
		scriptOpts = append(scriptOpts, script.WithDebug(debugOut))
	}
	if opts.cfg.KeepNonEssential {
		scriptOpts = append(scriptOpts, script.WithKeepNonEssential())
	}
	if opts.showTokens || opts.showAST {
		scriptOpts = append(scriptOpts, script.WithTrace(func(stage phase.Stage, output any) {
			trace(opts, debugOut, stage, output)
		}))
	}

	s := script.New(scriptOpts...)
	host, err := hostlib.ByName(opts.cfg.Host)
	if err != nil {
		return nil, err
	}
	if host != nil {
		if err := host.Register(s); err != nil {
			return nil, err
		}
	}
	if err := opts.cfg.ApplyGlobals(s); err != nil {
		return nil, err
	}
	return s, nil
}

func trace(opts options, w io.Writer, stage phase.Stage, output any) {
	switch {
	case stage == phase.Lexing && opts.showTokens:
		for _, tok := range output.([]tokens.Token) {
			tok.Debug(w, "<tokens>")
		}
	case stage == phase.Optimization && opts.showAST:
		fmt.Fprintf(w, "%# v\n", pretty.Formatter(output.(ast.Node)))
	}
}

// runFile executes one file and writes everything it reports to out
func runFile(ctx context.Context, opts options, path string, out io.Writer) bool {
	text, err := os.ReadFile(path)
	if err != nil {
		colors.RED.Fprintf(out, "%s: %v\n", path, err)
		return false
	}

	s, err := newScript(opts, out)
	if err != nil {
		colors.RED.Fprintf(out, "%s: %v\n", path, err)
		return false
	}

	var st *store.Store
	if opts.cfg.State != "" {
		if st, err = store.Open(ctx, opts.cfg.State); err != nil {
			colors.RED.Fprintf(out, "%s: %v\n", path, err)
			return false
		}
		defer st.Close()
		if _, err := st.Restore(ctx, s); err != nil {
			colors.RED.Fprintf(out, "%s: %v\n", path, err)
			return false
		}
	}

	value, diags, err := s.Execute(string(text))
	if diags.Len() > 0 {
		diags.EmitAll(out, path, string(text))
	}
	if err != nil {
		colors.RED.Fprintf(out, "%s: runtime error: %v\n", path, err)
		return false
	}
	if value == nil {
		return false
	}
	if !value.IsNothing() {
		colors.GREEN.Fprintf(out, "%s => %s\n", path, types.Format(value.Raw()))
	}

	if st != nil {
		if _, err := st.Save(ctx, s); err != nil {
			colors.RED.Fprintf(out, "%s: %v\n", path, err)
			return false
		}
	}
	return true
}

// runFiles executes every file concurrently, one Script each, and prints
// the output in argument order
func runFiles(ctx context.Context, opts options, paths []string) bool {
	outputs := make([]bytes.Buffer, len(paths))
	results := make([]bool, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			results[i] = runFile(ctx, opts, path, &outputs[i])
			return nil
		})
	}
	_ = g.Wait()

	ok := true
	for i := range paths {
		os.Stdout.Write(outputs[i].Bytes())
		ok = ok && results[i]
	}
	return ok
}

func runREPL(opts options) error {
	r, err := repl.New(func() (*script.Script, error) { return newScript(opts, os.Stderr) }, os.Stdout)
	if err != nil {
		return err
	}
	return r.Run()
}
