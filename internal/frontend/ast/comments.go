package ast

import "github.com/peter-r-g/CodeItOut/internal/source"

// Comment keeps a source comment. It carries no runtime meaning.
type Comment struct {
	Contents  string
	MultiLine bool
	source.Location
}

func (c *Comment) INode()                {} // Implements Node interface
func (c *Comment) Stmt()                 {} // Stmt is a marker interface for all statements
func (c *Comment) Loc() *source.Location { return &c.Location }

// Whitespace keeps the exact run of whitespace it was parsed from
type Whitespace struct {
	Contents string
	source.Location
}

func (w *Whitespace) INode()                {} // Implements Node interface
func (w *Whitespace) Stmt()                 {} // Stmt is a marker interface for all statements
func (w *Whitespace) Loc() *source.Location { return &w.Location }
