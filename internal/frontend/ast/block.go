package ast

import (
	"github.com/google/uuid"

	"github.com/peter-r-g/CodeItOut/internal/source"
)

// ScopeID identifies the scope container a node owns in every tree walk
type ScopeID = uuid.UUID

// NewScopeID returns a fresh scope id
func NewScopeID() ScopeID {
	return uuid.New()
}

// Program is the whole parsed script. It shares the root scope.
type Program struct {
	Statements []Node
	source.Location
}

func (p *Program) INode()                {} // Implements Node interface
func (p *Program) Stmt()                 {} // Stmt is a marker interface for all statements
func (p *Program) Loc() *source.Location { return &p.Location }

// Block represents a braced statement list or a synthetic single statement body
type Block struct {
	Statements []Node
	ScopeID    ScopeID
	source.Location
}

func (b *Block) INode()                {} // Implements Node interface
func (b *Block) Stmt()                 {} // Stmt is a marker interface for all statements
func (b *Block) Loc() *source.Location { return &b.Location }
func (b *Block) Scope() ScopeID        { return b.ScopeID }

// If represents an if statement. False is a NoOperation when there is no else.
type If struct {
	Condition Expression
	True      Node
	False     Node
	source.Location
}

func (i *If) INode()                {} // Implements Node interface
func (i *If) Stmt()                 {} // Stmt is a marker interface for all statements
func (i *If) Loc() *source.Location { return &i.Location }

// For represents for (declaration; condition; iterator) body.
// The declaration lives in the loop's own scope.
type For struct {
	Declaration *VariableDeclaration
	Condition   Expression
	Iterator    *Assignment
	Body        *Block
	ScopeID     ScopeID
	source.Location
}

func (f *For) INode()                {} // Implements Node interface
func (f *For) Stmt()                 {} // Stmt is a marker interface for all statements
func (f *For) Loc() *source.Location { return &f.Location }
func (f *For) Scope() ScopeID        { return f.ScopeID }

// While represents a while loop
type While struct {
	Condition Expression
	Body      *Block
	source.Location
}

func (w *While) INode()                {} // Implements Node interface
func (w *While) Stmt()                 {} // Stmt is a marker interface for all statements
func (w *While) Loc() *source.Location { return &w.Location }

// DoWhile represents a do { } while (condition) loop
type DoWhile struct {
	Body      *Block
	Condition Expression
	source.Location
}

func (d *DoWhile) INode()                {} // Implements Node interface
func (d *DoWhile) Stmt()                 {} // Stmt is a marker interface for all statements
func (d *DoWhile) Loc() *source.Location { return &d.Location }

// Return ends the program or the enclosing method. Expression is a NoOperation for a bare return.
type Return struct {
	Expression Node
	source.Location
}

func (r *Return) INode()                {} // Implements Node interface
func (r *Return) Stmt()                 {} // Stmt is a marker interface for all statements
func (r *Return) Loc() *source.Location { return &r.Location }

// MethodDeclaration represents returnType name(type param, ...) { body }
type MethodDeclaration struct {
	ReturnType *VariableType
	Name       *Variable
	Parameters []*Parameter
	Body       *Block
	ScopeID    ScopeID
	source.Location
}

func (m *MethodDeclaration) INode()                {} // Implements Node interface
func (m *MethodDeclaration) Stmt()                 {} // Stmt is a marker interface for all statements
func (m *MethodDeclaration) Loc() *source.Location { return &m.Location }
func (m *MethodDeclaration) Scope() ScopeID        { return m.ScopeID }

// Parameter is one typed parameter of a method declaration
type Parameter struct {
	Type *VariableType
	Name *Variable
	source.Location
}

func (p *Parameter) INode()                {} // Implements Node interface
func (p *Parameter) Loc() *source.Location { return &p.Location }
