package analyzer

import "github.com/peter-r-g/CodeItOut/internal/types"

// TypeCheckStack holds the kinds demanded by the syntactic positions
// currently being visited. Leaves check themselves against the top.
type TypeCheckStack struct {
	kinds []types.Kind
}

func (s *TypeCheckStack) Push(kind types.Kind) {
	s.kinds = append(s.kinds, kind)
}

func (s *TypeCheckStack) Pop() {
	if len(s.kinds) > 0 {
		s.kinds = s.kinds[:len(s.kinds)-1]
	}
}

func (s *TypeCheckStack) Len() int {
	return len(s.kinds)
}

// Check is the loose check of kind against the top of the stack. An empty
// stack accepts anything. The expected kind is returned for diagnostics.
func (s *TypeCheckStack) Check(kind types.Kind) (types.Kind, bool) {
	if len(s.kinds) == 0 {
		return types.Variable, true
	}
	expected := s.kinds[len(s.kinds)-1]
	return expected, types.Compatible(kind, expected)
}
