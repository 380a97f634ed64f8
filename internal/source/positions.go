package source

import (
	"strconv"
	"unicode/utf8"
)

// Position represents a specific location in the source code with line, column, and index information.
type Position struct {
	Line   int // Line number in the source code, starting at 1.
	Column int // Column number in the source code, starting at 1.
	Index  int // Byte offset in the source code.
}

// Zero is the "no specific location" sentinel.
var Zero = Position{}

// Start is the position of the first character of any text.
func Start() Position {
	return Position{Line: 1, Column: 1}
}

// IsZero reports whether p is the Zero sentinel.
func (p Position) IsZero() bool {
	return p.Line == 0 && p.Column == 0
}

// Advance moves the position past r. A newline starts a new line at column 1.
func (p Position) Advance(r rune) Position {
	size := utf8.RuneLen(r)
	if size < 0 {
		size = 1
	}
	return p.AdvanceBytes(r, size)
}

// AdvanceBytes moves the position past r where r was decoded from size
// bytes of the source. An invalid byte decodes to utf8.RuneError with size 1.
func (p Position) AdvanceBytes(r rune, size int) Position {
	p.Index += size
	if r == '\n' {
		p.Line++
		p.Column = 1
		return p
	}
	p.Column++
	return p
}

// AdvanceString moves the position past every byte of s, one column per rune
// or invalid byte.
func (p Position) AdvanceString(s string) Position {
	for s != "" {
		r, size := utf8.DecodeRuneInString(s)
		p = p.AdvanceBytes(r, size)
		s = s[size:]
	}
	return p
}

func (p Position) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}
