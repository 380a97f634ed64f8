package types

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/peter-r-g/CodeItOut/internal/source"
)

// Cursor is the view of the lexer a literal kind scans with
type Cursor interface {
	Current() rune
	// Peek looks n characters past the current one, 0 past the end
	Peek(n int) rune
	Advance()
	EOF() bool
	Position() source.Position
	// Unclosed reports a literal of kind k opened at start that hit the end of its line or input
	Unclosed(k Kind, start source.Position)
}

// ScanLiteral consumes a literal of kind k at the cursor. It returns false
// without consuming anything when the input does not start one.
func (k Kind) ScanLiteral(c Cursor) (any, bool) {
	switch k {
	case Boolean:
		return scanBoolean(c)
	case Character:
		return scanCharacter(c)
	case Number:
		return scanNumber(c)
	case String:
		return scanString(c)
	}
	return nil, false
}

// AcceptsLiteral reports whether a decoded literal payload belongs to kind k
func (k Kind) AcceptsLiteral(value any) bool {
	if !k.IsLiteral() {
		return false
	}
	of, ok := Of(value)
	return ok && of == k
}

func isIdentifierRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func matchWord(c Cursor, word string) bool {
	for i, r := range word {
		if c.Peek(i) != r {
			return false
		}
	}
	return !isIdentifierRune(c.Peek(len(word)))
}

func scanBoolean(c Cursor) (any, bool) {
	for _, candidate := range []struct {
		word  string
		value bool
	}{{"true", true}, {"false", false}} {
		if c.Current() != rune(candidate.word[0]) || !matchWord(c, candidate.word) {
			continue
		}
		for range candidate.word {
			c.Advance()
		}
		return candidate.value, true
	}
	return nil, false
}

func scanCharacter(c Cursor) (any, bool) {
	if c.Current() != '\'' {
		return nil, false
	}
	start := c.Position()

	c.Advance()
	character := c.Current()
	c.Advance()

	if c.EOF() || c.Current() != '\'' {
		c.Unclosed(Character, start)
	} else {
		c.Advance()
	}
	return character, true
}

func scanNumber(c Cursor) (any, bool) {
	if !unicode.IsDigit(c.Current()) {
		return nil, false
	}

	var text strings.Builder
	digits := func() {
		for !c.EOF() && unicode.IsDigit(c.Current()) {
			text.WriteRune(c.Current())
			c.Advance()
		}
	}

	digits()
	if !c.EOF() && c.Current() == '.' {
		text.WriteRune('.')
		c.Advance()
		digits()
	}

	n, err := strconv.ParseFloat(strings.TrimSuffix(text.String(), "."), 64)
	if err != nil {
		return float64(0), true
	}
	return n, true
}

func scanString(c Cursor) (any, bool) {
	if c.Current() != '"' {
		return nil, false
	}
	start := c.Position()
	c.Advance()

	var text strings.Builder
	for !c.EOF() && c.Current() != '"' {
		text.WriteRune(c.Current())
		c.Advance()
	}

	if c.EOF() {
		c.Unclosed(String, start)
	} else {
		c.Advance()
	}
	return text.String(), true
}

// Format renders a raw value the way a host would print it
func Format(value any) string {
	switch v := value.(type) {
	case nil:
		return "nothing"
	case bool:
		return strconv.FormatBool(v)
	case rune:
		return string(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return v
	case interface{ String() string }:
		return v.String()
	}
	return ""
}
