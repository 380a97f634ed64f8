package interpreter

import (
	"github.com/pkg/errors"

	"github.com/peter-r-g/CodeItOut/internal/frontend/ast"
	"github.com/peter-r-g/CodeItOut/internal/interop"
	"github.com/peter-r-g/CodeItOut/internal/tokens"
	"github.com/peter-r-g/CodeItOut/internal/types"
)

func (i *Interpreter) visit(node ast.Node) (any, error) {
	switch n := node.(type) {
	case nil:
		return nil, nil
	case *ast.Program:
		return i.visitProgram(n)
	case *ast.Block:
		return i.visitBlock(n)
	case *ast.Return:
		result, err := i.visit(n.Expression)
		if err != nil {
			return nil, err
		}
		i.returning = true
		return result, nil
	case *ast.Assignment:
		return nil, i.visitAssignment(n)
	case *ast.BinaryOperator:
		return i.visitBinary(n)
	case *ast.UnaryOperator:
		return i.visitUnary(n)
	case *ast.If:
		ok, err := i.condition(n.Condition)
		if err != nil {
			return nil, err
		}
		if ok {
			return i.visit(n.True)
		}
		return i.visit(n.False)
	case *ast.For:
		return i.visitFor(n)
	case *ast.While:
		return i.visitWhile(n)
	case *ast.DoWhile:
		return i.visitDoWhile(n)
	case *ast.MethodDeclaration:
		m := interop.FromDeclaration(n)
		i.variables.Current().Set(m.Signature.String(), m)
		i.methods.Current().Set(m.Signature, m)
		return nil, nil
	case *ast.MethodCall:
		return i.visitMethodCall(n)
	case *ast.VariableDeclaration:
		return nil, i.visitVariableDeclaration(n)
	case *ast.Variable:
		value, _, ok := i.variables.Current().Lookup(n.Name())
		if !ok {
			return nil, runtimeError("%s is not defined", n.Name())
		}
		return read(value), nil
	case *ast.Literal:
		return n.Value(), nil
	default:
		// NoOperation, Comment and Whitespace do nothing
		return nil, nil
	}
}

func (i *Interpreter) statements(list []ast.Node) (any, error) {
	for _, stmt := range list {
		result, err := i.visit(stmt)
		if err != nil {
			return nil, err
		}
		if i.returning {
			return result, nil
		}
	}
	return nil, nil
}

func (i *Interpreter) visitProgram(p *ast.Program) (any, error) {
	result, err := i.statements(p.Statements)
	i.returning = false
	return result, err
}

func (i *Interpreter) visitBlock(b *ast.Block) (any, error) {
	if b == nil {
		return nil, nil
	}
	leave := i.enter(b.ScopeID)
	defer leave()
	return i.statements(b.Statements)
}

func (i *Interpreter) visitAssignment(n *ast.Assignment) error {
	name := n.Variable.Name()
	cell, owner, ok := i.variables.Current().Lookup(name)
	if !ok {
		return runtimeError("%s is not defined", name)
	}

	var value any
	if binary := n.Operator.Kind.BinaryOfAssignment(); binary != tokens.NONE_TOKEN {
		current := read(cell)
		op, _ := types.FromToken(binary)
		fn, ok := kindOf(current).Binary(op)
		if !ok {
			return runtimeError("Binary operator %s not supported for type %q", op, kindOf(current))
		}
		right, err := i.visit(n.Expression)
		if err != nil {
			return err
		}
		if value, err = fn(current, right); err != nil {
			return errors.Wrap(ErrRuntime, err.Error())
		}
	} else {
		var err error
		if value, err = i.visit(n.Expression); err != nil {
			return err
		}
	}

	if external, ok := cell.(*interop.Variable); ok {
		external.Set(value)
		return nil
	}
	owner.Set(name, value)
	return nil
}

// Both operands are always evaluated. && and || do not short-circuit.
func (i *Interpreter) visitBinary(n *ast.BinaryOperator) (any, error) {
	left, err := i.visit(n.Left)
	if err != nil {
		return nil, err
	}

	op, _ := types.FromToken(n.Operator.Kind)
	fn, ok := kindOf(left).Binary(op)
	if !ok {
		return nil, runtimeError("Binary operator %s not supported for type %q", n.Operator.Value, kindOf(left))
	}

	right, err := i.visit(n.Right)
	if err != nil {
		return nil, err
	}
	result, err := fn(left, right)
	if err != nil {
		return nil, errors.Wrap(ErrRuntime, err.Error())
	}
	return result, nil
}

func (i *Interpreter) visitUnary(n *ast.UnaryOperator) (any, error) {
	operand, err := i.visit(n.Operand)
	if err != nil {
		return nil, err
	}

	op, _ := types.FromToken(n.Operator.Kind)
	fn, ok := kindOf(operand).Unary(op)
	if !ok {
		return nil, runtimeError("Unary operator %s not supported for type %q", n.Operator.Value, kindOf(operand))
	}
	result, err := fn(operand)
	if err != nil {
		return nil, errors.Wrap(ErrRuntime, err.Error())
	}
	return result, nil
}

func (i *Interpreter) visitFor(n *ast.For) (any, error) {
	leave := i.enter(n.ScopeID)
	defer leave()

	if n.Declaration != nil {
		if err := i.visitVariableDeclaration(n.Declaration); err != nil {
			return nil, err
		}
	}

	for {
		ok, err := i.condition(n.Condition)
		if err != nil || !ok {
			return nil, err
		}

		result, err := i.visitBlock(n.Body)
		if err != nil {
			return nil, err
		}
		if i.returning {
			return result, nil
		}

		if n.Iterator != nil {
			if err := i.visitAssignment(n.Iterator); err != nil {
				return nil, err
			}
		}
	}
}

func (i *Interpreter) visitWhile(n *ast.While) (any, error) {
	for {
		ok, err := i.condition(n.Condition)
		if err != nil || !ok {
			return nil, err
		}

		result, err := i.visitBlock(n.Body)
		if err != nil {
			return nil, err
		}
		if i.returning {
			return result, nil
		}
	}
}

func (i *Interpreter) visitDoWhile(n *ast.DoWhile) (any, error) {
	for {
		result, err := i.visitBlock(n.Body)
		if err != nil {
			return nil, err
		}
		if i.returning {
			return result, nil
		}

		ok, err := i.condition(n.Condition)
		if err != nil || !ok {
			return nil, err
		}
	}
}

func (i *Interpreter) visitMethodCall(n *ast.MethodCall) (any, error) {
	args := make([]any, len(n.Arguments))
	for idx, arg := range n.Arguments {
		value, err := i.visit(arg)
		if err != nil {
			return nil, err
		}
		args[idx] = value
	}

	// Calls that were not analyzed are resolved by their runtime kinds
	var signature interop.Signature
	if len(n.ArgumentTypes) == len(args) {
		signature = interop.CallSignature(n)
	} else {
		kinds := make([]types.Kind, len(args))
		for idx, arg := range args {
			kinds[idx] = kindOf(arg)
		}
		signature = interop.NewSignature(n.MethodName(), kinds...)
	}

	m, _, ok := i.methods.Current().Lookup(signature)
	if !ok {
		return nil, runtimeError("%s is not defined", signature)
	}
	return i.Call(m, args)
}

// Each name is declared in the current scope. A missing or empty initial
// value falls back to the declared kind's default.
func (i *Interpreter) visitVariableDeclaration(n *ast.VariableDeclaration) error {
	value, err := i.visit(n.Default)
	if err != nil {
		return err
	}
	if value == nil {
		value = n.Type.Kind.Default()
	}

	for _, name := range n.Names {
		i.variables.Current().Set(name.Name(), value)
	}
	return nil
}
