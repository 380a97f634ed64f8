package tokens

import "testing"

func TestKeywordLookup(t *testing.T) {
	for _, word := range []string{"do", "else", "for", "if", "return", "while"} {
		kind, ok := Keyword(word)
		if !ok {
			t.Errorf("Expected %q to be a keyword", word)
			continue
		}
		if string(kind) != word {
			t.Errorf("Expected kind %q, got %q", word, kind)
		}
	}

	if IsKeyword("number") {
		t.Error("Type identifiers must not be keywords")
	}
}

func TestOperatorLookup(t *testing.T) {
	tests := []struct {
		text string
		want TOKEN
	}{
		{"&&", AND_TOKEN},
		{"||", OR_TOKEN},
		{"+=", PLUS_EQUALS_TOKEN},
		{"<=", LESS_EQUAL_TOKEN},
		{"^", EXP_TOKEN},
		{";", SEMICOLON_TOKEN},
	}

	for _, tt := range tests {
		got, ok := Operator(tt.text)
		if !ok || got != tt.want {
			t.Errorf("Operator(%q) = %q, %v; expected %q", tt.text, got, ok, tt.want)
		}
	}

	if _, ok := Operator("&"); ok {
		t.Error("Expected single ampersand to be unknown")
	}
}

func TestPrecedenceTables(t *testing.T) {
	if MUL_TOKEN.BinaryPrecedence() >= PLUS_TOKEN.BinaryPrecedence() {
		t.Error("Expected multiplication to bind tighter than addition")
	}
	if AND_TOKEN.BinaryPrecedence() >= OR_TOKEN.BinaryPrecedence() {
		t.Error("Expected && to bind tighter than ||")
	}
	if EXP_TOKEN.BinaryPrecedence() != NoPrecedence {
		t.Error("Expected ^ to have no binary precedence")
	}
	if NOT_TOKEN.UnaryPrecedence() != 2 || MUL_TOKEN.UnaryPrecedence() != NoPrecedence {
		t.Error("Unexpected unary precedence table")
	}
}

func TestBinaryOfAssignment(t *testing.T) {
	tests := map[TOKEN]TOKEN{
		EQUALS_TOKEN:       NONE_TOKEN,
		PLUS_EQUALS_TOKEN:  PLUS_TOKEN,
		MINUS_EQUALS_TOKEN: MINUS_TOKEN,
		MUL_EQUALS_TOKEN:   MUL_TOKEN,
		DIV_EQUALS_TOKEN:   DIV_TOKEN,
		MOD_EQUALS_TOKEN:   MOD_TOKEN,
	}

	for assign, want := range tests {
		if !assign.IsAssignment() {
			t.Errorf("Expected %q to be an assignment operator", assign)
		}
		if got := assign.BinaryOfAssignment(); got != want {
			t.Errorf("Expected %q to map to %q, got %q", assign, want, got)
		}
	}

	if PLUS_TOKEN.IsAssignment() {
		t.Error("Expected + not to be an assignment operator")
	}
}
