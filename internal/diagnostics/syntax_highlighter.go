package diagnostics

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode"

	"github.com/peter-r-g/CodeItOut/colors"
	"github.com/peter-r-g/CodeItOut/internal/tokens"
	"github.com/peter-r-g/CodeItOut/internal/types"
)

// SyntaxHighlighter provides syntax highlighting for SandScript snippets
type SyntaxHighlighter struct {
	enabled bool
}

// NewSyntaxHighlighter creates a new syntax highlighter
func NewSyntaxHighlighter(enabled bool) *SyntaxHighlighter {
	return &SyntaxHighlighter{enabled: enabled}
}

// IsEnabled returns whether syntax highlighting is enabled
func (sh *SyntaxHighlighter) IsEnabled() bool {
	return sh.enabled
}

// Token represents a highlighted token
type Token struct {
	Text  string
	Color colors.COLOR
}

// Highlight splits a line of code into colored tokens
func (sh *SyntaxHighlighter) Highlight(line string) []Token {
	if !sh.enabled {
		return []Token{{Text: line, Color: colors.WHITE}}
	}

	var tokensSlice []Token
	i := 0

	for i < len(line) {
		if unicode.IsSpace(rune(line[i])) {
			start := i
			for i < len(line) && unicode.IsSpace(rune(line[i])) {
				i++
			}
			tokensSlice = append(tokensSlice, Token{Text: line[start:i], Color: colors.WHITE})
			continue
		}

		// String and character literals have no escapes
		if line[i] == '"' || line[i] == '\'' {
			quote := line[i]
			start := i
			i++
			for i < len(line) && line[i] != quote {
				i++
			}
			if i < len(line) {
				i++
			}
			color := colors.GREEN
			if quote == '\'' {
				color = colors.YELLOW
			}
			tokensSlice = append(tokensSlice, Token{Text: line[start:i], Color: color})
			continue
		}

		if unicode.IsDigit(rune(line[i])) {
			start := i
			for i < len(line) && (unicode.IsDigit(rune(line[i])) || line[i] == '.') {
				i++
			}
			tokensSlice = append(tokensSlice, Token{Text: line[start:i], Color: colors.YELLOW})
			continue
		}

		if unicode.IsLetter(rune(line[i])) || line[i] == '_' {
			start := i
			for i < len(line) && (unicode.IsLetter(rune(line[i])) || unicode.IsDigit(rune(line[i])) || line[i] == '_') {
				i++
			}
			word := line[start:i]

			var color colors.COLOR
			if tokens.IsKeyword(word) {
				color = colors.PURPLE
			} else if _, ok := types.ByIdentifier(word); ok {
				color = colors.ORANGE
			} else if word == "true" || word == "false" {
				color = colors.YELLOW
			} else {
				color = colors.WHITE
			}
			tokensSlice = append(tokensSlice, Token{Text: word, Color: color})
			continue
		}

		if i+1 < len(line) && line[i] == '/' && (line[i+1] == '/' || line[i+1] == '*') {
			tokensSlice = append(tokensSlice, Token{Text: line[i:], Color: colors.GREY})
			break
		}

		start := i
		i++
		tokensSlice = append(tokensSlice, Token{Text: line[start:i], Color: colors.WHITE})
	}

	return tokensSlice
}

// HighlightLine returns a highlighted line as a string ready for printing
func (sh *SyntaxHighlighter) HighlightLine(line string) string {
	if !sh.enabled {
		return line
	}

	var result strings.Builder
	for _, token := range sh.Highlight(line) {
		token.Color.Fprint(&result, token.Text)
	}
	return result.String()
}

// HighlightWithColor writes the highlighted line to writer
func (sh *SyntaxHighlighter) HighlightWithColor(line string, writer io.Writer) {
	fmt.Fprint(writer, sh.HighlightLine(line))
}

var colorCodeRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripColors removes ANSI color codes from a string
func StripColors(s string) string {
	return colorCodeRegex.ReplaceAllString(s, "")
}
