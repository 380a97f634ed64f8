package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/pkg/errors"

	"github.com/peter-r-g/CodeItOut/colors"
	"github.com/peter-r-g/CodeItOut/internal/types"
	"github.com/peter-r-g/CodeItOut/script"
)

const (
	historyFile = ".sandscript_history"
	promptMain  = ">> "
	promptCont  = ".. "
	source      = "<repl>"
)

const helpText = `Commands:
  :globals  List the globals of the session
  :reset    Start over with a new script
  :help     Show this help
  :quit     Exit
`

// Factory builds the script a session runs against
type Factory func() (*script.Script, error)

// REPL evaluates input against one persistent Script
type REPL struct {
	factory Factory
	script  *script.Script
	out     io.Writer
}

func New(factory Factory, out io.Writer) (*REPL, error) {
	s, err := factory()
	if err != nil {
		return nil, err
	}
	return &REPL{factory: factory, script: s, out: out}, nil
}

// Script returns the current session script
func (r *REPL) Script() *script.Script {
	return r.script
}

// Eval handles one complete input. It returns false once the session should end.
func (r *REPL) Eval(input string) bool {
	trimmed := strings.TrimSpace(input)
	switch trimmed {
	case "":
		return true
	case ":quit", ":q":
		return false
	case ":help":
		fmt.Fprint(r.out, helpText)
		return true
	case ":globals":
		r.printGlobals()
		return true
	case ":reset":
		s, err := r.factory()
		if err != nil {
			colors.RED.Fprintf(r.out, "reset failed: %v\n", err)
			return true
		}
		r.script = s
		colors.GREEN.Fprintln(r.out, "session reset")
		return true
	}

	if strings.HasPrefix(trimmed, ":") {
		colors.RED.Fprintf(r.out, "unknown command %s\n", trimmed)
		return true
	}

	value, diags, err := r.script.Execute(input)
	if diags.Len() > 0 {
		diags.EmitAll(r.out, source, input)
	}
	if err != nil {
		colors.RED.Fprintf(r.out, "runtime error: %v\n", err)
		return true
	}
	if value != nil && !value.IsNothing() {
		colors.GREEN.Fprintf(r.out, "=> %s\n", types.Format(value.Raw()))
	}
	return true
}

func (r *REPL) printGlobals() {
	globals := r.script.Globals()
	for _, name := range r.script.GlobalNames() {
		v := globals[name]
		colors.CYAN.Fprint(r.out, name)
		fmt.Fprintf(r.out, " %s = %s\n", v.Type(), types.Format(v.Raw()))
	}
}

// Run reads input until :quit or end of input. Lines are joined until
// every brace and parenthesis is closed.
func (r *REPL) Run() error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetMultiLineMode(true)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	colors.CYAN.Fprintln(r.out, "SandScript REPL. Type :help for commands.")
	for {
		input, err := read(ln)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			return errors.Wrap(err, "reading input")
		}

		ln.AppendHistory(strings.ReplaceAll(input, "\n", " "))
		if !r.Eval(input) {
			return nil
		}
	}
}

func read(ln *liner.State) (string, error) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if err != nil {
			return "", err
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		if Balanced(b.String()) {
			return b.String(), nil
		}
	}
}

// Balanced reports whether src closes every brace and parenthesis it
// opens. Delimiters inside literals and comments are ignored.
func Balanced(src string) bool {
	depth := 0
	for i := 0; i < len(src); i++ {
		switch c := src[i]; {
		case c == '"' || c == '\'':
			end := strings.IndexByte(src[i+1:], c)
			if end < 0 {
				return false
			}
			i += end + 1
		case strings.HasPrefix(src[i:], "//"):
			end := strings.IndexByte(src[i:], '\n')
			if end < 0 {
				return depth <= 0
			}
			i += end
		case strings.HasPrefix(src[i:], "/*"):
			end := strings.Index(src[i+2:], "*/")
			if end < 0 {
				return false
			}
			i += end + 3
		case c == '{' || c == '(':
			depth++
		case c == '}' || c == ')':
			depth--
		}
	}
	return depth <= 0
}
