package diagnostics

import (
	"github.com/peter-r-g/CodeItOut/internal/source"
)

// Severity represents the severity level of a diagnostic
type Severity int

const (
	Informational Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Informational:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic is one leveled, optionally located message raised by a pipeline stage.
type Diagnostic struct {
	Severity Severity
	Message  string
	Code     string          // Code like "P0001"
	Stage    string          // Name of the stage that raised it
	Location source.Position // source.Zero when there is no specific location
	Help     string          // Suggestion for fixing the problem
}

// NewError creates a new error diagnostic
func NewError(message string) *Diagnostic {
	return &Diagnostic{Severity: Error, Message: message}
}

// NewWarning creates a new warning diagnostic
func NewWarning(message string) *Diagnostic {
	return &Diagnostic{Severity: Warning, Message: message}
}

// NewInfo creates a new informational diagnostic
func NewInfo(message string) *Diagnostic {
	return &Diagnostic{Severity: Informational, Message: message}
}

// WithCode sets the diagnostic code
func (d *Diagnostic) WithCode(code string) *Diagnostic {
	d.Code = code
	return d
}

// At sets the source location
func (d *Diagnostic) At(loc source.Position) *Diagnostic {
	d.Location = loc
	return d
}

// WithHelp sets helpful suggestion for fixing the problem
func (d *Diagnostic) WithHelp(help string) *Diagnostic {
	d.Help = help
	return d
}

// HasLocation reports whether the diagnostic points at a specific position.
func (d *Diagnostic) HasLocation() bool {
	return !d.Location.IsZero()
}

func (d *Diagnostic) String() string {
	if !d.HasLocation() {
		return d.Message
	}
	return d.Message + " at " + d.Location.String()
}
