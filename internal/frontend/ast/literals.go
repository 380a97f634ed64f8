package ast

import (
	"github.com/peter-r-g/CodeItOut/internal/source"
	"github.com/peter-r-g/CodeItOut/internal/tokens"
	"github.com/peter-r-g/CodeItOut/internal/types"
)

// Literal is a constant value of a literal kind
type Literal struct {
	Token tokens.Token
	Kind  types.Kind
	source.Location
}

func (l *Literal) INode()                {} // Implements Node interface
func (l *Literal) Expr()                 {} // Expr is a marker interface for all expressions
func (l *Literal) Loc() *source.Location { return &l.Location }
func (l *Literal) Value() any            { return l.Token.Literal }

// NewLiteral builds a literal holding value at pos, for folded constants
func NewLiteral(kind types.Kind, value any, pos source.Position) *Literal {
	text := types.Format(value)
	tok := tokens.NewToken(tokens.LITERAL_TOKEN, text, value, pos, pos.AdvanceString(text))
	return &Literal{
		Token:    tok,
		Kind:     kind,
		Location: source.NewLocation(tok.Start, tok.End),
	}
}

// IsLiteral reports whether n is a literal and returns it
func IsLiteral(n Node) (*Literal, bool) {
	l, ok := n.(*Literal)
	return l, ok
}

// VariableType is the type keyword of a declaration, parameter or return type
type VariableType struct {
	Token tokens.Token
	Kind  types.Kind
	source.Location
}

func (v *VariableType) INode()                {} // Implements Node interface
func (v *VariableType) Loc() *source.Location { return &v.Location }
