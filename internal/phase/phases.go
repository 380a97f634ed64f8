package phase

// Stage identifies one step of an Execute run
//
// Stage progression is sequential:
// - Lexing -> Parsing -> Optimization -> Analysis -> Interpretation
//
// Only a failed Analysis stops the progression. Every other stage hands its
// best effort output to the next one.
type Stage int

const (
	Lexing Stage = iota
	Parsing
	Optimization
	Analysis
	Interpretation
)

// Stages lists every stage in execution order
var Stages = []Stage{Lexing, Parsing, Optimization, Analysis, Interpretation}

// Next maps each stage to the stage that consumes its output
var Next = map[Stage]Stage{
	Lexing:       Parsing,
	Parsing:      Optimization,
	Optimization: Analysis,
	Analysis:     Interpretation,
}

// String is the stage name used in diagnostics and timings
func (s Stage) String() string {
	switch s {
	case Lexing:
		return "Lexical analysis"
	case Parsing:
		return "Parsing"
	case Optimization:
		return "Optimization"
	case Analysis:
		return "Semantic analysis"
	case Interpretation:
		return "Interpretation"
	default:
		return "Unknown"
	}
}

// IsFatal reports whether errors raised in s stop the run
func (s Stage) IsFatal() bool {
	return s == Analysis
}
