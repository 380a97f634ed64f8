package phase

import "testing"

func TestStageNames(t *testing.T) {
	tests := []struct {
		stage Stage
		want  string
	}{
		{Lexing, "Lexical analysis"},
		{Parsing, "Parsing"},
		{Optimization, "Optimization"},
		{Analysis, "Semantic analysis"},
		{Interpretation, "Interpretation"},
		{Stage(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.stage.String(); got != tt.want {
			t.Errorf("Stage(%d).String() = %q, want %q", tt.stage, got, tt.want)
		}
	}
}

func TestStageOrder(t *testing.T) {
	for i := 0; i < len(Stages)-1; i++ {
		if Next[Stages[i]] != Stages[i+1] {
			t.Errorf("Expected %s to be followed by %s", Stages[i], Stages[i+1])
		}
	}
	if _, ok := Next[Interpretation]; ok {
		t.Error("Expected Interpretation to be the last stage")
	}
}

func TestOnlyAnalysisIsFatal(t *testing.T) {
	for _, s := range Stages {
		if s.IsFatal() != (s == Analysis) {
			t.Errorf("Unexpected IsFatal() for %s", s)
		}
	}
}
