package ast

import (
	"github.com/peter-r-g/CodeItOut/internal/source"
	"github.com/peter-r-g/CodeItOut/internal/tokens"
	"github.com/peter-r-g/CodeItOut/internal/types"
)

// BinaryOperator represents left op right. Its location is the left operand's.
type BinaryOperator struct {
	Left     Expression
	Operator tokens.Token
	Right    Expression
	source.Location
}

func (b *BinaryOperator) INode()                {} // Implements Node interface
func (b *BinaryOperator) Expr()                 {} // Expr is a marker interface for all expressions
func (b *BinaryOperator) Loc() *source.Location { return &b.Location }

// UnaryOperator represents a prefix operator
type UnaryOperator struct {
	Operator tokens.Token
	Operand  Expression
	source.Location
}

func (u *UnaryOperator) INode()                {} // Implements Node interface
func (u *UnaryOperator) Expr()                 {} // Expr is a marker interface for all expressions
func (u *UnaryOperator) Loc() *source.Location { return &u.Location }

// MethodCall is both a statement and an expression.
// ArgumentTypes is filled in by semantic analysis.
type MethodCall struct {
	Name          tokens.Token
	Arguments     []Expression
	ArgumentTypes []types.Kind
	source.Location
}

func (m *MethodCall) INode()                {} // Implements Node interface
func (m *MethodCall) Expr()                 {} // Expr is a marker interface for all expressions
func (m *MethodCall) Stmt()                 {} // Stmt is a marker interface for all statements
func (m *MethodCall) Loc() *source.Location { return &m.Location }
func (m *MethodCall) MethodName() string    { return m.Name.Text() }

// Variable is a reference to a named variable
type Variable struct {
	Token tokens.Token
	source.Location
}

func (v *Variable) INode()                {} // Implements Node interface
func (v *Variable) Expr()                 {} // Expr is a marker interface for all expressions
func (v *Variable) Loc() *source.Location { return &v.Location }
func (v *Variable) Name() string          { return v.Token.Text() }

// Assignment represents name op expression where op is = or a compound operator
type Assignment struct {
	Variable   *Variable
	Operator   tokens.Token
	Expression Expression
	source.Location
}

func (a *Assignment) INode()                {} // Implements Node interface
func (a *Assignment) Stmt()                 {} // Stmt is a marker interface for all statements
func (a *Assignment) Loc() *source.Location { return &a.Location }

// VariableDeclaration declares one or more names of a type. Default is a
// NoOperation when there is no initializer.
type VariableDeclaration struct {
	Type    *VariableType
	Names   []*Variable
	Default Expression
	source.Location
}

func (v *VariableDeclaration) INode()                {} // Implements Node interface
func (v *VariableDeclaration) Stmt()                 {} // Stmt is a marker interface for all statements
func (v *VariableDeclaration) Loc() *source.Location { return &v.Location }

// VariableNames returns the declared names in order
func (v *VariableDeclaration) VariableNames() []string {
	names := make([]string, len(v.Names))
	for i, name := range v.Names {
		names[i] = name.Name()
	}
	return names
}
