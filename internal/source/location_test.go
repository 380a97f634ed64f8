package source

import "testing"

func TestPositionAdvance(t *testing.T) {
	pos := Start()
	pos = pos.AdvanceString("ab\ncd")

	if pos.Line != 2 {
		t.Errorf("Expected line 2, got %d", pos.Line)
	}
	if pos.Column != 3 {
		t.Errorf("Expected column 3, got %d", pos.Column)
	}
	if pos.Index != 5 {
		t.Errorf("Expected index 5, got %d", pos.Index)
	}
}

func TestPositionAdvanceInvalidUTF8(t *testing.T) {
	text := "a\xffb\xe2\x82"
	pos := Start().AdvanceString(text)

	if pos.Index != len(text) {
		t.Errorf("Expected index %d, got %d", len(text), pos.Index)
	}
	if pos.Column != 6 {
		t.Errorf("Expected column 6, got %d", pos.Column)
	}

	pos = Start().Advance('\u00e9')
	if pos.Index != 2 || pos.Column != 2 {
		t.Errorf("Expected index 2 column 2, got index %d column %d", pos.Index, pos.Column)
	}
}

func TestPositionString(t *testing.T) {
	if got := (Position{Line: 3, Column: 14}).String(); got != "3:14" {
		t.Errorf("Expected 3:14, got %s", got)
	}
	if !Zero.IsZero() {
		t.Error("Expected Zero to report IsZero")
	}
	if Start().IsZero() {
		t.Error("Expected Start not to be zero")
	}
}

func TestLocationText(t *testing.T) {
	src := "number x = 12;"
	start := Start().AdvanceString("number ")
	end := start.AdvanceString("x")

	loc := NewLocation(start, end)
	if got := loc.Text(src); got != "x" {
		t.Errorf("Expected %q, got %q", "x", got)
	}
	if !loc.Contains(start) {
		t.Error("Expected location to contain its start")
	}

	bad := Location{Start: Position{Index: 4}, End: Position{Index: 99}}
	if got := bad.Text(src); got != "" {
		t.Errorf("Expected empty text for out of range span, got %q", got)
	}
}

func TestLine(t *testing.T) {
	src := "first\r\nsecond\nthird"

	tests := []struct {
		line int
		want string
		ok   bool
	}{
		{1, "first", true},
		{2, "second", true},
		{3, "third", true},
		{0, "", false},
		{4, "", false},
	}

	for _, tt := range tests {
		got, ok := Line(src, tt.line)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Line(%d) = %q, %v; expected %q, %v", tt.line, got, ok, tt.want, tt.ok)
		}
	}
}
