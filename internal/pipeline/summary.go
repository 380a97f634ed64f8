package pipeline

import (
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/peter-r-g/CodeItOut/colors"
)

const defaultWidth = 40

// width is the banner width, capped so wide terminals stay readable
func width() int {
	w, _, err := term.GetSize(int(os.Stderr.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	if w > 80 {
		return 80
	}
	return w
}

func (p *Pipeline) summary(result *Result, err error) {
	if !p.opts.Debug {
		return
	}

	rule := strings.Repeat("═", width())
	out := p.opts.Output
	colors.CYAN.Fprintln(out, rule)
	colors.CYAN.Fprintln(out, "        EXECUTION SUMMARY")
	colors.CYAN.Fprintln(out, rule)

	colors.WHITE.Fprintf(out, "Diagnostics: %d\n", result.Diagnostics.Len())
	colors.WHITE.Fprintf(out, "Optimizations: %d\n", result.Changes)
	switch {
	case result.Halted:
		colors.RED.Fprintln(out, "✗ Stopped after semantic analysis")
	case err != nil:
		colors.RED.Fprintf(out, "✗ %v\n", err)
	default:
		colors.GREEN.Fprintln(out, "✓ Interpreted")
	}
}
