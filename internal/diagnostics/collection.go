package diagnostics

import (
	"fmt"
	"io"
	"strings"

	"github.com/peter-r-g/CodeItOut/colors"
)

const (
	executeFailedMsg          = "\nExecution failed with %d error(s)"
	andWarningMsg             = " and %d warning(s)"
	executeSuccessWithWarning = "\nExecution succeeded with %d warning(s)\n"
)

// Collection aggregates the diagnostics of every stage of one execution.
type Collection struct {
	all []*Diagnostic
}

func NewCollection() *Collection {
	return &Collection{all: make([]*Diagnostic, 0)}
}

// AddStageAndClear moves every diagnostic of a stage into the collection
// and clears the bag so the stage can reuse it.
func (c *Collection) AddStageAndClear(bag *DiagnosticBag) {
	c.all = append(c.all, bag.Diagnostics()...)
	bag.Clear()
}

// Add appends a single diagnostic.
func (c *Collection) Add(diag *Diagnostic) {
	c.all = append(c.all, diag)
}

// All returns every diagnostic in the order it was raised.
func (c *Collection) All() []*Diagnostic {
	result := make([]*Diagnostic, len(c.all))
	copy(result, c.all)
	return result
}

func (c *Collection) bySeverity(severity Severity) []*Diagnostic {
	result := make([]*Diagnostic, 0)
	for _, d := range c.all {
		if d.Severity == severity {
			result = append(result, d)
		}
	}
	return result
}

func (c *Collection) Errors() []*Diagnostic {
	return c.bySeverity(Error)
}

func (c *Collection) Warnings() []*Diagnostic {
	return c.bySeverity(Warning)
}

func (c *Collection) Informationals() []*Diagnostic {
	return c.bySeverity(Informational)
}

func (c *Collection) HasErrors() bool {
	for _, d := range c.all {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

func (c *Collection) Len() int {
	return len(c.all)
}

// Contains reports whether any diagnostic message contains substr.
func (c *Collection) Contains(substr string) bool {
	for _, d := range c.all {
		if strings.Contains(d.Message, substr) {
			return true
		}
	}
	return false
}

// EmitAll renders every diagnostic against src, followed by a summary line.
func (c *Collection) EmitAll(w io.Writer, filename, src string) {
	emitter := NewEmitter(w, filename, src)
	for _, diag := range c.all {
		emitter.Emit(diag)
	}
	c.printSummary(w)
}

// EmitAllToString renders the collection into a string with ANSI codes
func (c *Collection) EmitAllToString(filename, src string) string {
	var buf strings.Builder
	c.EmitAll(&buf, filename, src)
	return buf.String()
}

// EmitAllToHTML renders the collection as HTML
func (c *Collection) EmitAllToHTML(filename, src string) string {
	return colors.ConvertANSIToHTML(c.EmitAllToString(filename, src))
}

func (c *Collection) printSummary(w io.Writer) {
	errorCount := len(c.Errors())
	warnCount := len(c.Warnings())

	if errorCount > 0 {
		colors.RED.Fprintf(w, executeFailedMsg, errorCount)
		if warnCount > 0 {
			colors.RED.Fprintf(w, andWarningMsg, warnCount)
		}
		fmt.Fprintln(w)
	} else if warnCount > 0 {
		colors.ORANGE.Fprintf(w, executeSuccessWithWarning, warnCount)
	}
}
