package diagnostics

import (
	"fmt"
	"io"
	"strings"

	"github.com/peter-r-g/CodeItOut/colors"
	"github.com/peter-r-g/CodeItOut/internal/source"
)

const (
	STR_MULTIPLIER = "%*d | "
	LINE_POS       = "%s--> %s:%d:%d\n"
)

// Emitter handles the rendering and output of diagnostics
type Emitter struct {
	writer      io.Writer
	filename    string
	lines       []string
	highlighter *SyntaxHighlighter
}

// NewEmitter creates an emitter that renders diagnostics raised against src
func NewEmitter(w io.Writer, filename, src string) *Emitter {
	if filename == "" {
		filename = "<script>"
	}
	return &Emitter{
		writer:      w,
		filename:    filename,
		lines:       source.Lines(src),
		highlighter: NewSyntaxHighlighter(colors.Enabled),
	}
}

func (e *Emitter) Emit(diag *Diagnostic) {
	e.printHeader(diag)

	if diag.HasLocation() {
		e.printLocation(diag)
	}

	if diag.Help != "" {
		e.printHelp(diag.Help)
	}

	fmt.Fprintln(e.writer)
}

func severityColor(severity Severity) colors.COLOR {
	switch severity {
	case Error:
		return colors.BOLD_RED
	case Warning:
		return colors.BOLD_YELLOW
	default:
		return colors.BOLD_CYAN
	}
}

func (e *Emitter) printHeader(diag *Diagnostic) {
	color := severityColor(diag.Severity)

	color.Fprint(e.writer, diag.Severity.String())
	if diag.Code != "" {
		fmt.Fprintf(e.writer, "[%s]", diag.Code)
	}
	fmt.Fprint(e.writer, ": ")
	color.Fprintln(e.writer, diag.Message)
}

func (e *Emitter) printLocation(diag *Diagnostic) {
	loc := diag.Location
	lineNumWidth := len(fmt.Sprintf("%d", loc.Line))

	colors.BLUE.Fprintf(e.writer, LINE_POS, strings.Repeat(" ", lineNumWidth), e.filename, loc.Line, loc.Column)

	if loc.Line < 1 || loc.Line > len(e.lines) {
		return
	}

	fmt.Fprint(e.writer, strings.Repeat(" ", lineNumWidth))
	colors.GREY.Fprintln(e.writer, " |")

	// Previous line for context (if not empty)
	if loc.Line > 1 {
		if prev := e.lines[loc.Line-2]; strings.TrimSpace(prev) != "" {
			colors.GREY.Fprintf(e.writer, STR_MULTIPLIER, lineNumWidth, loc.Line-1)
			colors.GREY.Fprintln(e.writer, prev)
		}
	}

	colors.GREY.Fprintf(e.writer, STR_MULTIPLIER, lineNumWidth, loc.Line)
	fmt.Fprintln(e.writer, e.highlighter.HighlightLine(e.lines[loc.Line-1]))

	fmt.Fprint(e.writer, strings.Repeat(" ", lineNumWidth))
	colors.GREY.Fprint(e.writer, " | ")
	padding := loc.Column - 1
	if padding < 0 {
		padding = 0
	}
	fmt.Fprint(e.writer, strings.Repeat(" ", padding))
	severityColor(diag.Severity).Fprintln(e.writer, "^")
}

func (e *Emitter) printHelp(help string) {
	colors.GREEN.Fprint(e.writer, "  = help: ")
	fmt.Fprintln(e.writer, help)
}
