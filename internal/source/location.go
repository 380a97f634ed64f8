package source

import (
	"fmt"
	"strings"
)

// Location represents a span of source code with start and end positions
type Location struct {
	Start Position
	End   Position
}

// NewLocation creates a new Location with the given start and end positions
func NewLocation(start, end Position) Location {
	return Location{Start: start, End: end}
}

// Contains checks if the given position is within this location
func (l Location) Contains(pos Position) bool {
	if l.Start.Line > pos.Line || (l.Start.Line == pos.Line && l.Start.Column > pos.Column) {
		return false
	}
	if l.End.Line < pos.Line || (l.End.Line == pos.Line && l.End.Column < pos.Column) {
		return false
	}
	return true
}

func (l Location) String() string {
	if l.Start.IsZero() {
		return "location(unknown)"
	}
	return fmt.Sprintf("location(%d:%d - %d:%d)", l.Start.Line, l.Start.Column, l.End.Line, l.End.Column)
}

// Text extracts the text covered by l from src.
// Returns empty string if the span does not fit inside src.
func (l Location) Text(src string) string {
	if l.Start.Index < 0 || l.End.Index > len(src) || l.Start.Index > l.End.Index {
		return ""
	}
	return src[l.Start.Index:l.End.Index]
}

// Lines splits src into lines without their line terminators.
func Lines(src string) []string {
	if src == "" {
		return []string{}
	}
	lines := strings.Split(src, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Line returns the 1-indexed line of src, or false when it is out of range.
func Line(src string, line int) (string, bool) {
	lines := Lines(src)
	if line < 1 || line > len(lines) {
		return "", false
	}
	return lines[line-1], true
}
