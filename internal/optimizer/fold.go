package optimizer

import (
	"github.com/peter-r-g/CodeItOut/internal/frontend/ast"
	"github.com/peter-r-g/CodeItOut/internal/types"
)

// Folding uses the left literal's operator matrix. Anything the matrix
// rejects is left in place for the analyzer to report.

func (o *Optimizer) visitBinary(b *ast.BinaryOperator) ast.Node {
	left := o.expr(b.Left)
	right := o.expr(b.Right)
	rebuilt := &ast.BinaryOperator{Left: left, Operator: b.Operator, Right: right, Location: b.Location}

	leftLit, lok := ast.IsLiteral(left)
	rightLit, rok := ast.IsLiteral(right)
	if !lok || !rok {
		return rebuilt
	}

	op, ok := types.FromToken(b.Operator.Kind)
	if !ok {
		return rebuilt
	}
	fn, ok := leftLit.Kind.Binary(op)
	if !ok {
		return rebuilt
	}
	value, err := fn(leftLit.Value(), rightLit.Value())
	if err != nil {
		return rebuilt
	}
	return o.literal(value, leftLit, rebuilt)
}

func (o *Optimizer) visitUnary(u *ast.UnaryOperator) ast.Node {
	operand := o.expr(u.Operand)
	rebuilt := &ast.UnaryOperator{Operator: u.Operator, Operand: operand, Location: u.Location}

	lit, ok := ast.IsLiteral(operand)
	if !ok {
		return rebuilt
	}
	op, ok := types.FromToken(u.Operator.Kind)
	if !ok {
		return rebuilt
	}
	fn, ok := lit.Kind.Unary(op)
	if !ok {
		return rebuilt
	}
	value, err := fn(lit.Value())
	if err != nil {
		return rebuilt
	}
	return o.literal(value, lit, rebuilt)
}

// literal replaces fallback with the folded value at the position of at
func (o *Optimizer) literal(value any, at *ast.Literal, fallback ast.Node) ast.Node {
	kind, ok := types.Of(value)
	if !ok || !kind.IsLiteral() {
		return fallback
	}
	return o.change(ast.NewLiteral(kind, value, at.Location.Start))
}
