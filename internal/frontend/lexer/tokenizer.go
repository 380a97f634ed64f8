package lexer

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/peter-r-g/CodeItOut/internal/diagnostics"
	"github.com/peter-r-g/CodeItOut/internal/phase"
	"github.com/peter-r-g/CodeItOut/internal/source"
	"github.com/peter-r-g/CodeItOut/internal/tokens"
	"github.com/peter-r-g/CodeItOut/internal/types"
)

type regexHandler func(lex *Lexer, match string)

type regexPattern struct {
	regex   *regexp.Regexp
	handler regexHandler
}

type Lexer struct {
	diagnostics      *diagnostics.DiagnosticBag
	Tokens           []tokens.Token
	Position         source.Position
	sourceCode       string
	keepNonEssential bool
	patterns         []regexPattern
}

var (
	whitespacePattern  = regexp.MustCompile(`^\s+`)
	lineCommentPattern = regexp.MustCompile(`^//[^\n]*`)
	blockCommentRegex  = regexp.MustCompile(`^/\*[\s\S]*?\*/`)
	identifierPattern  = regexp.MustCompile(`^[_\pL\pN]+`)
)

// Lex turns text into tokens ending in exactly one EOF token.
func Lex(text string, keepNonEssential bool) ([]tokens.Token, *diagnostics.DiagnosticBag) {
	bag := diagnostics.NewDiagnosticBag(phase.Lexing.String())
	return New(text, keepNonEssential, bag).Tokenize(), bag
}

func New(content string, keepNonEssential bool, diag *diagnostics.DiagnosticBag) *Lexer {
	return &Lexer{
		sourceCode:       content,
		Tokens:           make([]tokens.Token, 0),
		Position:         source.Start(),
		keepNonEssential: keepNonEssential,
		diagnostics:      diag,
		patterns: []regexPattern{
			{whitespacePattern, nonEssentialHandler(tokens.WHITESPACE_TOKEN)},
			{lineCommentPattern, nonEssentialHandler(tokens.COMMENT_TOKEN)},
			{blockCommentRegex, nonEssentialHandler(tokens.MULTI_LINE_COMMENT_TOKEN)},
		},
	}
}

func (lex *Lexer) advance(match string) {
	lex.Position = lex.Position.AdvanceString(match)
}

func (lex *Lexer) push(token tokens.Token) {
	lex.Tokens = append(lex.Tokens, token)
}

func (lex *Lexer) remainder() string {
	return lex.sourceCode[lex.Position.Index:]
}

func (lex *Lexer) atEOF() bool {
	return lex.Position.Index >= len(lex.sourceCode)
}

// cursor is the view literal kinds scan through
type cursor struct {
	lex *Lexer
}

func (c cursor) Current() rune {
	return c.Peek(0)
}

func (c cursor) Peek(n int) rune {
	rest := c.lex.remainder()
	for ; n > 0 && rest != ""; n-- {
		_, size := utf8.DecodeRuneInString(rest)
		rest = rest[size:]
	}
	if rest == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return r
}

func (c cursor) Advance() {
	if c.lex.atEOF() {
		return
	}
	r, size := utf8.DecodeRuneInString(c.lex.remainder())
	c.lex.Position = c.lex.Position.AdvanceBytes(r, size)
}

func (c cursor) EOF() bool {
	return c.lex.atEOF()
}

func (c cursor) Position() source.Position {
	return c.lex.Position
}

func (c cursor) Unclosed(kind types.Kind, start source.Position) {
	code := diagnostics.ErrUnterminatedString
	if kind == types.Character {
		code = diagnostics.ErrUnterminatedChar
	}
	c.lex.diagnostics.Add(
		diagnostics.NewError(fmt.Sprintf("%s starting at %s was not closed", kind.Name(), start)).
			WithCode(code).
			At(start),
	)
}

func nonEssentialHandler(kind tokens.TOKEN) regexHandler {
	return func(lex *Lexer, match string) {
		start := lex.Position
		lex.advance(match)
		if lex.keepNonEssential {
			lex.push(tokens.NewToken(kind, match, match, start, lex.Position))
		}
	}
}

func (lex *Lexer) unclosedComment() bool {
	if !strings.HasPrefix(lex.remainder(), "/*") {
		return false
	}
	start := lex.Position
	rest := lex.remainder()
	lex.diagnostics.Add(
		diagnostics.NewError(fmt.Sprintf("Comment starting at %s was not closed", start)).
			WithCode(diagnostics.ErrUnterminatedComment).
			At(start),
	)
	lex.advance(rest)
	if lex.keepNonEssential {
		lex.push(tokens.NewToken(tokens.MULTI_LINE_COMMENT_TOKEN, rest, rest, start, lex.Position))
	}
	return true
}

func (lex *Lexer) literal() bool {
	for _, kind := range types.LiteralKinds {
		start := lex.Position
		value, ok := kind.ScanLiteral(cursor{lex})
		if !ok {
			continue
		}
		raw := lex.sourceCode[start.Index:lex.Position.Index]
		lex.push(tokens.NewToken(tokens.LITERAL_TOKEN, raw, value, start, lex.Position))
		return true
	}
	return false
}

func (lex *Lexer) identifier() bool {
	word := identifierPattern.FindString(lex.remainder())
	if word == "" {
		return false
	}
	start := lex.Position
	lex.advance(word)
	if kind, ok := tokens.Keyword(word); ok {
		lex.push(tokens.NewToken(kind, word, nil, start, lex.Position))
	} else {
		lex.push(tokens.NewToken(tokens.IDENTIFIER_TOKEN, word, word, start, lex.Position))
	}
	return true
}

// operator prefers two character operators over one character ones
func (lex *Lexer) operator() bool {
	rest := lex.remainder()
	for _, width := range []int{2, 1} {
		if len(rest) < width {
			continue
		}
		text := rest[:width]
		kind, ok := tokens.Operator(text)
		if !ok {
			continue
		}
		start := lex.Position
		lex.advance(text)
		lex.push(tokens.NewToken(kind, text, nil, start, lex.Position))
		return true
	}
	return false
}

func (lex *Lexer) unknown() {
	rest := lex.remainder()
	r, size := utf8.DecodeRuneInString(rest)
	text := rest[:size]
	start := lex.Position
	message := fmt.Sprintf("Unknown token '%c'", r)
	if r == utf8.RuneError && size == 1 {
		message = fmt.Sprintf("Invalid UTF-8 byte 0x%02x", rest[0])
	}
	lex.diagnostics.Add(
		diagnostics.NewError(message).
			WithCode(diagnostics.ErrUnknownToken).
			At(start),
	)
	// Skip the bad character and continue tokenizing to find more errors
	lex.advance(text)
	lex.push(tokens.NewToken(tokens.NONE_TOKEN, text, nil, start, lex.Position))
}

func (lex *Lexer) next() {
	for _, pattern := range lex.patterns {
		if match := pattern.regex.FindString(lex.remainder()); match != "" {
			pattern.handler(lex, match)
			return
		}
	}

	switch {
	case lex.unclosedComment():
	case lex.literal():
	case lex.identifier():
	case lex.operator():
	default:
		lex.unknown()
	}
}

// Tokenize scans the whole source and appends the EOF token.
func (lex *Lexer) Tokenize() []tokens.Token {
	if strings.TrimSpace(lex.sourceCode) == "" {
		lex.diagnostics.Add(diagnostics.NewError("No code provided").WithCode(diagnostics.ErrNoCode))
		lex.Position = lex.Position.AdvanceString(lex.sourceCode)
		lex.push(tokens.NewToken(tokens.EOF_TOKEN, "", nil, lex.Position, lex.Position))
		return lex.Tokens
	}

	for !lex.atEOF() {
		lex.next()
	}

	lex.push(tokens.NewToken(tokens.EOF_TOKEN, "", nil, lex.Position, lex.Position))
	return lex.Tokens
}

// Debug prints every token to w
func (lex *Lexer) Debug(w io.Writer, filename string) {
	for _, token := range lex.Tokens {
		token.Debug(w, filename)
	}
}
