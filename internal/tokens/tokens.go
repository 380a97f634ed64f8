package tokens

import (
	"fmt"
	"io"
	"math"

	"github.com/peter-r-g/CodeItOut/colors"
	"github.com/peter-r-g/CodeItOut/internal/source"
)

type TOKEN string

const (
	NONE_TOKEN TOKEN = "none"

	LITERAL_TOKEN    TOKEN = "literal"
	IDENTIFIER_TOKEN TOKEN = "identifier"

	//keywords
	IF_TOKEN     TOKEN = "if"
	ELSE_TOKEN   TOKEN = "else"
	DO_TOKEN     TOKEN = "do"
	WHILE_TOKEN  TOKEN = "while"
	FOR_TOKEN    TOKEN = "for"
	RETURN_TOKEN TOKEN = "return"

	//non-essential
	WHITESPACE_TOKEN         TOKEN = "whitespace"
	COMMENT_TOKEN            TOKEN = "comment"
	MULTI_LINE_COMMENT_TOKEN TOKEN = "multi-line comment"

	//logical operators
	AND_TOKEN TOKEN = "&&"
	OR_TOKEN  TOKEN = "||"
	NOT_TOKEN TOKEN = "!"

	//arithmetic operators
	PLUS_TOKEN  TOKEN = "+"
	MINUS_TOKEN TOKEN = "-"
	MUL_TOKEN   TOKEN = "*"
	DIV_TOKEN   TOKEN = "/"
	MOD_TOKEN   TOKEN = "%"
	EXP_TOKEN   TOKEN = "^"

	//assignment operators
	EQUALS_TOKEN       TOKEN = "="
	PLUS_EQUALS_TOKEN  TOKEN = "+="
	MINUS_EQUALS_TOKEN TOKEN = "-="
	MUL_EQUALS_TOKEN   TOKEN = "*="
	DIV_EQUALS_TOKEN   TOKEN = "/="
	MOD_EQUALS_TOKEN   TOKEN = "%="

	//comparison operators
	DOUBLE_EQUAL_TOKEN  TOKEN = "=="
	NOT_EQUAL_TOKEN     TOKEN = "!="
	LESS_TOKEN          TOKEN = "<"
	LESS_EQUAL_TOKEN    TOKEN = "<="
	GREATER_TOKEN       TOKEN = ">"
	GREATER_EQUAL_TOKEN TOKEN = ">="

	//delimiters
	OPEN_PAREN      TOKEN = "("
	CLOSE_PAREN     TOKEN = ")"
	OPEN_CURLY      TOKEN = "{"
	CLOSE_CURLY     TOKEN = "}"
	OPEN_BRACKET    TOKEN = "["
	CLOSE_BRACKET   TOKEN = "]"
	COMMA_TOKEN     TOKEN = ","
	DOT_TOKEN       TOKEN = "."
	SEMICOLON_TOKEN TOKEN = ";"

	EOF_TOKEN TOKEN = "end_of_file"
)

// NoPrecedence marks a token that is not an operator in the given position.
const NoPrecedence = math.MaxInt

var keyWordsMap = map[string]TOKEN{
	"do":     DO_TOKEN,
	"else":   ELSE_TOKEN,
	"for":    FOR_TOKEN,
	"if":     IF_TOKEN,
	"return": RETURN_TOKEN,
	"while":  WHILE_TOKEN,
}

var operatorMap = map[string]TOKEN{
	"&&": AND_TOKEN,
	"*":  MUL_TOKEN,
	"*=": MUL_EQUALS_TOKEN,
	"!":  NOT_TOKEN,
	"!=": NOT_EQUAL_TOKEN,
	",":  COMMA_TOKEN,
	"=":  EQUALS_TOKEN,
	"==": DOUBLE_EQUAL_TOKEN,
	">":  GREATER_TOKEN,
	">=": GREATER_EQUAL_TOKEN,
	"^":  EXP_TOKEN,
	"{":  OPEN_CURLY,
	"(":  OPEN_PAREN,
	"[":  OPEN_BRACKET,
	"<":  LESS_TOKEN,
	"<=": LESS_EQUAL_TOKEN,
	"-":  MINUS_TOKEN,
	"-=": MINUS_EQUALS_TOKEN,
	"%":  MOD_TOKEN,
	"%=": MOD_EQUALS_TOKEN,
	".":  DOT_TOKEN,
	"||": OR_TOKEN,
	"+":  PLUS_TOKEN,
	"+=": PLUS_EQUALS_TOKEN,
	")":  CLOSE_PAREN,
	"}":  CLOSE_CURLY,
	"]":  CLOSE_BRACKET,
	";":  SEMICOLON_TOKEN,
	"/":  DIV_TOKEN,
	"/=": DIV_EQUALS_TOKEN,
}

// Keyword returns the keyword kind for an identifier spelling.
func Keyword(word string) (TOKEN, bool) {
	kind, ok := keyWordsMap[word]
	return kind, ok
}

func IsKeyword(token string) bool {
	_, ok := keyWordsMap[token]
	return ok
}

// Operator returns the operator or delimiter kind spelled by text.
func Operator(text string) (TOKEN, bool) {
	kind, ok := operatorMap[text]
	return kind, ok
}

func (k TOKEN) IsKeyword() bool {
	return IsKeyword(string(k))
}

// IsNonEssential reports whether the kind carries no meaning for execution.
func (k TOKEN) IsNonEssential() bool {
	return k == WHITESPACE_TOKEN || k == COMMENT_TOKEN || k == MULTI_LINE_COMMENT_TOKEN
}

func (k TOKEN) IsAssignment() bool {
	switch k {
	case EQUALS_TOKEN, PLUS_EQUALS_TOKEN, MINUS_EQUALS_TOKEN,
		MUL_EQUALS_TOKEN, DIV_EQUALS_TOKEN, MOD_EQUALS_TOKEN:
		return true
	}
	return false
}

// BinaryOfAssignment maps a compound assignment to its binary operator.
// Plain "=" and every other kind map to NONE_TOKEN.
func (k TOKEN) BinaryOfAssignment() TOKEN {
	switch k {
	case MUL_EQUALS_TOKEN:
		return MUL_TOKEN
	case MINUS_EQUALS_TOKEN:
		return MINUS_TOKEN
	case MOD_EQUALS_TOKEN:
		return MOD_TOKEN
	case PLUS_EQUALS_TOKEN:
		return PLUS_TOKEN
	case DIV_EQUALS_TOKEN:
		return DIV_TOKEN
	}
	return NONE_TOKEN
}

func (k TOKEN) UnaryPrecedence() int {
	switch k {
	case PLUS_TOKEN, MINUS_TOKEN, NOT_TOKEN:
		return 2
	}
	return NoPrecedence
}

func (k TOKEN) BinaryPrecedence() int {
	switch k {
	case DOT_TOKEN:
		return 1
	case MUL_TOKEN, DIV_TOKEN, MOD_TOKEN:
		return 3
	case PLUS_TOKEN, MINUS_TOKEN:
		return 4
	case LESS_TOKEN, LESS_EQUAL_TOKEN, GREATER_TOKEN, GREATER_EQUAL_TOKEN:
		return 6
	case DOUBLE_EQUAL_TOKEN, NOT_EQUAL_TOKEN:
		return 7
	case AND_TOKEN:
		return 11
	case OR_TOKEN:
		return 12
	}
	return NoPrecedence
}

// IsComparison reports whether the operator always produces a boolean.
func (k TOKEN) IsComparison() bool {
	switch k {
	case DOUBLE_EQUAL_TOKEN, NOT_EQUAL_TOKEN, GREATER_TOKEN, GREATER_EQUAL_TOKEN,
		LESS_TOKEN, LESS_EQUAL_TOKEN, NOT_TOKEN:
		return true
	}
	return false
}

// Token is one lexeme. Value is the exact source text so that a token stream
// with non-essential tokens reproduces its input. Literal is the decoded payload:
// bool, rune, float64 or string for literals and the spelling for identifiers.
type Token struct {
	Kind    TOKEN
	Value   string
	Literal any
	Start   source.Position
	End     source.Position
}

// Debug writes the token and its position to w
func (t *Token) Debug(w io.Writer, filename string) {
	colors.GREY.Fprintf(w, "%s:%d:%d ", filename, t.Start.Line, t.Start.Column)
	if t.Value == string(t.Kind) {
		fmt.Fprintf(w, "%q\n", t.Value)
	} else {
		fmt.Fprintf(w, "%q ('%v')\n", t.Value, t.Kind)
	}
}

// Text returns the identifier spelling or the raw lexeme.
func (t Token) Text() string {
	if s, ok := t.Literal.(string); ok && t.Kind != LITERAL_TOKEN {
		return s
	}
	return t.Value
}

func NewToken(kind TOKEN, value string, literal any, start source.Position, end source.Position) Token {
	return Token{
		Kind:    kind,
		Value:   value,
		Literal: literal,
		Start:   start,
		End:     end,
	}
}
