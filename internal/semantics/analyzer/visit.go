package analyzer

import (
	"github.com/peter-r-g/CodeItOut/internal/diagnostics"
	"github.com/peter-r-g/CodeItOut/internal/frontend/ast"
	"github.com/peter-r-g/CodeItOut/internal/interop"
	"github.com/peter-r-g/CodeItOut/internal/tokens"
	"github.com/peter-r-g/CodeItOut/internal/types"
)

func (a *Analyzer) visit(node ast.Node) types.Kind {
	switch n := node.(type) {
	case nil:
		return types.Nothing
	case *ast.Program:
		for _, stmt := range n.Statements {
			a.visit(stmt)
		}
		return types.Nothing
	case *ast.Block:
		return a.visitBlock(n)
	case *ast.Return:
		return a.visitReturn(n)
	case *ast.Assignment:
		return a.visitAssignment(n)
	case *ast.BinaryOperator:
		return a.visitBinary(n)
	case *ast.UnaryOperator:
		return a.visitUnary(n)
	case *ast.If:
		a.visitExpecting(types.Boolean, n.Condition)
		a.visit(n.True)
		a.visit(n.False)
		return types.Nothing
	case *ast.For:
		return a.visitFor(n)
	case *ast.While:
		a.visitExpecting(types.Boolean, n.Condition)
		a.visitBody(n.Body)
		return types.Nothing
	case *ast.DoWhile:
		a.visitBody(n.Body)
		a.visitExpecting(types.Boolean, n.Condition)
		return types.Nothing
	case *ast.MethodDeclaration:
		return a.visitMethodDeclaration(n)
	case *ast.MethodCall:
		return a.visitMethodCall(n)
	case *ast.Parameter:
		return n.Type.Kind
	case *ast.VariableDeclaration:
		return a.visitVariableDeclaration(n)
	case *ast.Variable:
		return a.visitVariable(n)
	case *ast.VariableType:
		return n.Kind
	case *ast.Literal:
		a.check(n.Kind, n)
		return n.Kind
	default:
		// NoOperation, Comment and Whitespace carry no type
		return types.Nothing
	}
}

func (a *Analyzer) visitBody(b *ast.Block) {
	if b != nil {
		a.visitBlock(b)
	}
}

func (a *Analyzer) visitBlock(b *ast.Block) types.Kind {
	leave := a.enter(b.ScopeID)
	defer leave()

	for _, stmt := range b.Statements {
		a.visit(stmt)
	}
	return types.Nothing
}

// A return inside a method is checked against the declared return kind
func (a *Analyzer) visitReturn(r *ast.Return) types.Kind {
	result := a.visit(r.Expression)
	if len(a.returns) == 0 {
		a.check(result, r)
		return result
	}

	expected := a.returns[len(a.returns)-1]
	if !types.Compatible(result, expected) {
		a.add(diagnostics.TypeMismatch(r.Location.Start, expected.String(), result.String()))
	}
	return result
}

func (a *Analyzer) visitAssignment(n *ast.Assignment) types.Kind {
	name := n.Variable.Name()
	kind, _, ok := a.variables.Current().Lookup(name)
	if !ok {
		a.add(diagnostics.Undefined(n.Location.Start, name))
		a.visitExpecting(types.Variable, n.Expression)
		return types.Nothing
	}

	if external, _, ok := a.externals.Current().Lookup(name); ok && !external.CanWrite {
		a.add(diagnostics.Unwritable(name).At(n.Location.Start))
		return types.Nothing
	}

	if binary := n.Operator.Kind.BinaryOfAssignment(); binary != tokens.NONE_TOKEN {
		op, _ := types.FromToken(binary)
		if _, ok := kind.Binary(op); !ok {
			a.add(diagnostics.UnsupportedBinary(n.Location.Start, op.String(), kind.String()))
		}
	}

	a.visitExpecting(kind, n.Expression)
	return types.Nothing
}

// operand visits an operand and reports whether it raised new errors
func (a *Analyzer) operand(expected types.Kind, node ast.Node) (types.Kind, bool) {
	before := a.diagnostics.ErrorCount()
	kind := a.visitExpecting(expected, node)
	return kind, a.diagnostics.ErrorCount() == before
}

func (a *Analyzer) visitBinary(n *ast.BinaryOperator) types.Kind {
	left, clean := a.operand(types.Variable, n.Left)
	if !clean && left == types.Nothing {
		// the operand was already reported
		a.visitExpecting(types.Variable, n.Right)
		return types.Variable
	}
	a.visitExpecting(left, n.Right)

	op, _ := types.FromToken(n.Operator.Kind)
	result := types.ResultType(op, left)
	a.check(result, n)

	if _, ok := left.Binary(op); !ok {
		a.add(diagnostics.UnsupportedBinary(n.Location.Start, n.Operator.Value, left.String()))
	}
	return result
}

func (a *Analyzer) visitUnary(n *ast.UnaryOperator) types.Kind {
	operand, clean := a.operand(types.Variable, n.Operand)
	if !clean && operand == types.Nothing {
		return types.Variable
	}

	op, _ := types.FromToken(n.Operator.Kind)
	result := types.ResultType(op, operand)
	a.check(result, n)

	if _, ok := operand.Unary(op); !ok {
		a.add(diagnostics.UnsupportedUnary(n.Location.Start, n.Operator.Value, operand.String()))
	}
	return result
}

func (a *Analyzer) visitFor(n *ast.For) types.Kind {
	leave := a.enter(n.ScopeID)
	defer leave()

	if n.Declaration != nil {
		a.visit(n.Declaration)
	}
	a.visitExpecting(types.Boolean, n.Condition)
	if n.Iterator != nil {
		a.visitExpecting(types.Nothing, n.Iterator)
	}
	a.visitBody(n.Body)
	return types.Nothing
}

func (a *Analyzer) visitMethodDeclaration(n *ast.MethodDeclaration) types.Kind {
	method := interop.FromDeclaration(n)
	signature := method.Signature

	if _, ok := a.methods.Current().Get(signature); ok {
		a.add(diagnostics.Redefined(n.Location.Start, signature.String(), a.methods.Current().ID().String()))
		return types.Nothing
	}
	a.variables.Current().Set(signature.String(), types.Method)
	a.methods.Current().Set(signature, method)

	leave := a.enter(n.ScopeID)
	defer leave()

	for _, param := range n.Parameters {
		name := param.Name.Name()
		if err := a.variables.Current().Declare(name, param.Type.Kind); err != nil {
			a.add(diagnostics.Redefined(param.Location.Start, name, a.variables.Current().ID().String()))
		}
	}

	a.returns = append(a.returns, method.Returns)
	a.visitBody(n.Body)
	a.returns = a.returns[:len(a.returns)-1]

	if method.Returns != types.Nothing && !terminates(n.Body) {
		a.add(diagnostics.MissingReturn(n.Location.Start, signature.String(), method.Returns.String()))
	}
	return types.Nothing
}

// candidate finds the nearest method sharing the call's name
func (a *Analyzer) candidate(name string) (*interop.Method, bool) {
	for scope := a.methods.Current(); scope != nil; scope = scope.Parent() {
		for _, e := range scope.Entries() {
			if e.Key.Name == name {
				return e.Value, true
			}
		}
	}
	return nil, false
}

func (a *Analyzer) visitMethodCall(n *ast.MethodCall) types.Kind {
	kinds := make([]types.Kind, len(n.Arguments))
	for i, arg := range n.Arguments {
		kinds[i] = a.visitExpecting(types.Variable, arg)
	}
	n.ArgumentTypes = kinds

	signature := interop.CallSignature(n)
	method, _, ok := a.methods.Current().Lookup(signature)
	if ok {
		a.check(method.Returns, n)
		return method.Returns
	}

	method, ok = a.candidate(signature.Name)
	if !ok {
		a.add(diagnostics.Undefined(n.Location.Start, signature.String()))
		return types.Nothing
	}

	if len(kinds) != len(method.Params) {
		a.add(diagnostics.WrongArgumentCount(n.Location.Start, len(method.Params), len(kinds)))
	}
	for i, param := range method.Params {
		if i >= len(kinds) {
			a.add(diagnostics.MissingArgument(n.Location.Start, param.Name, method.Name))
			continue
		}
		if !types.Compatible(kinds[i], param.Kind) {
			a.add(diagnostics.TypeMismatch(ast.Start(n.Arguments[i]), param.Kind.String(), kinds[i].String()))
		}
	}
	a.check(method.Returns, n)
	return method.Returns
}

// visitVariableDeclaration infers a var declaration from its initial value
func (a *Analyzer) visitVariableDeclaration(n *ast.VariableDeclaration) types.Kind {
	declared := n.Type.Kind
	value := a.visitExpecting(declared, n.Default)

	kind := declared
	if kind == types.Variable && value != types.Nothing {
		kind = value
	}
	if kind == types.Nothing || kind == types.Variable {
		a.add(diagnostics.MissingInitialType(n.Location.Start))
	}

	scope := a.variables.Current()
	for _, name := range n.Names {
		if err := scope.Declare(name.Name(), kind); err != nil {
			a.add(diagnostics.Redefined(name.Location.Start, name.Name(), scope.ID().String()))
		}
	}
	return types.Nothing
}

func (a *Analyzer) visitVariable(n *ast.Variable) types.Kind {
	name := n.Name()
	kind, _, ok := a.variables.Current().Lookup(name)
	if !ok {
		a.add(diagnostics.Undefined(n.Location.Start, name))
		return types.Nothing
	}

	if external, _, ok := a.externals.Current().Lookup(name); ok && !external.CanRead {
		a.add(diagnostics.Unreadable(name).At(n.Location.Start))
		return external.Kind
	}

	a.check(kind, n)
	return kind
}
