package ast

import (
	"github.com/peter-r-g/CodeItOut/internal/source"
)

// Node is the base interface for all AST nodes
type Node interface {
	INode()
	Loc() *source.Location
}

// Expression represents any node that produces a value
type Expression interface {
	Node
	Expr()
}

// Statement represents any node that performs an action
type Statement interface {
	Node
	Stmt()
}

// Scoped is implemented by nodes that own a scope container.
// The id is assigned once by the parser and copied forward by rewrites.
type Scoped interface {
	Node
	Scope() ScopeID
}

// NoOperation is the explicit placeholder for a removed or missing node
type NoOperation struct {
	source.Location
}

func (n *NoOperation) INode()                {} // Implements Node interface
func (n *NoOperation) Expr()                 {} // A missing expression is still an expression
func (n *NoOperation) Stmt()                 {} // A missing statement is still a statement
func (n *NoOperation) Loc() *source.Location { return &n.Location }

// NoOp creates a NoOperation at pos
func NoOp(pos source.Position) *NoOperation {
	return &NoOperation{Location: source.NewLocation(pos, pos)}
}

// IsNoOp reports whether n is a NoOperation
func IsNoOp(n Node) bool {
	_, ok := n.(*NoOperation)
	return ok
}

// Start returns the start position of n or source.Zero for a nil node
func Start(n Node) source.Position {
	if n == nil {
		return source.Zero
	}
	return n.Loc().Start
}
