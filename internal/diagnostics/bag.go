package diagnostics

import (
	"sync"
	"time"

	"github.com/dustin/go-humanize"
)

// DiagnosticBag collects the diagnostics raised by one pipeline stage.
type DiagnosticBag struct {
	stage       string
	diagnostics []*Diagnostic
	mu          sync.Mutex
	errorCount  int
	warnCount   int
}

// NewDiagnosticBag creates a new diagnostic bag for a stage
func NewDiagnosticBag(stage string) *DiagnosticBag {
	return &DiagnosticBag{
		stage:       stage,
		diagnostics: make([]*Diagnostic, 0),
	}
}

// Stage returns the name of the stage the bag belongs to
func (db *DiagnosticBag) Stage() string {
	return db.stage
}

// Add adds a diagnostic to the bag
func (db *DiagnosticBag) Add(diag *Diagnostic) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if diag.Stage == "" {
		diag.Stage = db.stage
	}
	db.diagnostics = append(db.diagnostics, diag)

	switch diag.Severity {
	case Error:
		db.errorCount++
	case Warning:
		db.warnCount++
	}
}

// Time records how long the stage took as an informational diagnostic.
func (db *DiagnosticBag) Time(elapsed time.Duration) {
	ms := float64(elapsed) / float64(time.Millisecond)
	db.Add(NewInfo(db.stage + " took " + humanize.FtoaWithDigits(ms, 3) + "ms").WithCode(InfoStageTiming))
}

// HasErrors returns true if there are any errors
func (db *DiagnosticBag) HasErrors() bool {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.errorCount > 0
}

// ErrorCount returns the number of errors
func (db *DiagnosticBag) ErrorCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.errorCount
}

// WarningCount returns the number of warnings
func (db *DiagnosticBag) WarningCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.warnCount
}

// Diagnostics returns a copy of all diagnostics (thread-safe)
func (db *DiagnosticBag) Diagnostics() []*Diagnostic {
	db.mu.Lock()
	defer db.mu.Unlock()
	result := make([]*Diagnostic, len(db.diagnostics))
	copy(result, db.diagnostics)
	return result
}

// Clear removes all diagnostics
func (db *DiagnosticBag) Clear() {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.diagnostics = make([]*Diagnostic, 0)
	db.errorCount = 0
	db.warnCount = 0
}
