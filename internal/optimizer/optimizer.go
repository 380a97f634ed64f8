package optimizer

import (
	"github.com/peter-r-g/CodeItOut/internal/diagnostics"
	"github.com/peter-r-g/CodeItOut/internal/frontend/ast"
	"github.com/peter-r-g/CodeItOut/internal/interop"
	"github.com/peter-r-g/CodeItOut/internal/phase"
	"github.com/peter-r-g/CodeItOut/internal/semantics/table"
	"github.com/peter-r-g/CodeItOut/internal/types"
)

// Optimizer rewrites a tree bottom-up. It folds constants, drops code that
// can never run and removes methods with empty bodies along with their calls.
type Optimizer struct {
	diagnostics *diagnostics.DiagnosticBag
	// true for a removed declaration, false for a kept one
	methods *table.Manager[interop.Signature, bool]
	changes int
}

// Optimize runs a single pass over node
func Optimize(node ast.Node) (ast.Node, *diagnostics.DiagnosticBag, int) {
	bag := diagnostics.NewDiagnosticBag(phase.Optimization.String())
	o := New(bag)
	result := o.Optimize(node)
	return result, bag, o.Changes()
}

func New(bag *diagnostics.DiagnosticBag) *Optimizer {
	return &Optimizer{
		diagnostics: bag,
		methods:     table.NewManager[interop.Signature, bool](interop.SignatureMatches),
	}
}

func (o *Optimizer) Optimize(node ast.Node) ast.Node {
	return o.visit(node)
}

// Changes is the number of rewrites made so far
func (o *Optimizer) Changes() int {
	return o.changes
}

func (o *Optimizer) change(n ast.Node) ast.Node {
	o.changes++
	return n
}

func (o *Optimizer) noop(n ast.Node) ast.Node {
	return o.change(ast.NoOp(ast.Start(n)))
}

func (o *Optimizer) visit(node ast.Node) ast.Node {
	switch n := node.(type) {
	case nil:
		return nil
	case *ast.Program:
		return o.visitProgram(n)
	case *ast.Block:
		return o.visitBlock(n)
	case *ast.Return:
		return &ast.Return{Expression: o.visit(n.Expression), Location: n.Location}
	case *ast.Assignment:
		return o.visitAssignment(n)
	case *ast.BinaryOperator:
		return o.visitBinary(n)
	case *ast.UnaryOperator:
		return o.visitUnary(n)
	case *ast.If:
		return o.visitIf(n)
	case *ast.For:
		return o.visitFor(n)
	case *ast.While:
		return o.visitWhile(n)
	case *ast.DoWhile:
		return o.visitDoWhile(n)
	case *ast.MethodDeclaration:
		return o.visitMethodDeclaration(n)
	case *ast.MethodCall:
		return o.visitMethodCall(n)
	case *ast.VariableDeclaration:
		return o.visitVariableDeclaration(n)
	case *ast.Comment, *ast.Whitespace:
		return o.noop(n)
	default:
		// Variables, literals, types, parameters and no-ops are leaves
		return n
	}
}

func (o *Optimizer) expr(e ast.Expression) ast.Expression {
	if e == nil {
		return nil
	}
	result := o.visit(e)
	if expr, ok := result.(ast.Expression); ok {
		return expr
	}
	return ast.NoOp(ast.Start(result))
}

func (o *Optimizer) statements(list []ast.Node) []ast.Node {
	result := make([]ast.Node, 0, len(list))
	for _, stmt := range list {
		if optimized := o.visit(stmt); !ast.IsNoOp(optimized) {
			result = append(result, optimized)
		}
	}
	return result
}

func (o *Optimizer) visitProgram(p *ast.Program) ast.Node {
	statements := o.statements(p.Statements)
	if len(statements) == 0 {
		return o.noop(p)
	}
	return &ast.Program{Statements: statements, Location: p.Location}
}

func (o *Optimizer) visitBlock(b *ast.Block) ast.Node {
	leave := o.methods.Enter(b.ScopeID)
	defer leave()

	statements := o.statements(b.Statements)
	if len(statements) == 0 {
		return o.noop(b)
	}
	return &ast.Block{Statements: statements, ScopeID: b.ScopeID, Location: b.Location}
}

// block returns nil when the optimized body vanished
func (o *Optimizer) block(b *ast.Block) *ast.Block {
	if b == nil {
		return nil
	}
	optimized, _ := o.visitBlock(b).(*ast.Block)
	return optimized
}

func (o *Optimizer) visitAssignment(a *ast.Assignment) *ast.Assignment {
	if a == nil {
		return nil
	}
	return &ast.Assignment{
		Variable:   a.Variable,
		Operator:   a.Operator,
		Expression: o.expr(a.Expression),
		Location:   a.Location,
	}
}

func (o *Optimizer) visitVariableDeclaration(v *ast.VariableDeclaration) *ast.VariableDeclaration {
	if v == nil {
		return nil
	}
	return &ast.VariableDeclaration{
		Type:     v.Type,
		Names:    v.Names,
		Default:  o.expr(v.Default),
		Location: v.Location,
	}
}

func isFalse(n ast.Node) bool {
	lit, ok := ast.IsLiteral(n)
	if !ok {
		return false
	}
	b, ok := lit.Value().(bool)
	return ok && !b
}

func (o *Optimizer) visitIf(i *ast.If) ast.Node {
	condition := o.expr(i.Condition)
	if isFalse(condition) {
		return o.change(o.visit(i.False))
	}

	trueBranch := o.visit(i.True)
	falseBranch := o.visit(i.False)
	if ast.IsNoOp(trueBranch) && ast.IsNoOp(falseBranch) {
		return o.noop(i)
	}
	return &ast.If{Condition: condition, True: trueBranch, False: falseBranch, Location: i.Location}
}

// The loop declaration is dropped with the loop when the condition is constant false.
func (o *Optimizer) visitFor(f *ast.For) ast.Node {
	leave := o.methods.Enter(f.ScopeID)
	defer leave()

	declaration := o.visitVariableDeclaration(f.Declaration)
	condition := o.expr(f.Condition)
	if isFalse(condition) {
		return o.noop(f)
	}

	body := o.block(f.Body)
	if body == nil {
		return o.noop(f)
	}

	return &ast.For{
		Declaration: declaration,
		Condition:   condition,
		Iterator:    o.visitAssignment(f.Iterator),
		Body:        body,
		ScopeID:     f.ScopeID,
		Location:    f.Location,
	}
}

func (o *Optimizer) visitWhile(w *ast.While) ast.Node {
	condition := o.expr(w.Condition)
	if isFalse(condition) {
		return o.noop(w)
	}

	body := o.block(w.Body)
	if body == nil {
		return o.noop(w)
	}
	return &ast.While{Condition: condition, Body: body, Location: w.Location}
}

// A do-while runs its body once, so a constant false condition leaves the body.
func (o *Optimizer) visitDoWhile(d *ast.DoWhile) ast.Node {
	body := o.block(d.Body)
	condition := o.expr(d.Condition)

	if body == nil {
		return o.noop(d)
	}
	if isFalse(condition) {
		return o.change(body)
	}
	return &ast.DoWhile{Body: body, Condition: condition, Location: d.Location}
}

func (o *Optimizer) visitMethodDeclaration(m *ast.MethodDeclaration) ast.Node {
	signature := interop.DeclarationSignature(m)

	leave := o.methods.Enter(m.ScopeID)
	body := o.block(m.Body)
	leave()

	if body == nil {
		o.methods.Current().Set(signature, true)
		return o.noop(m)
	}

	o.methods.Current().Set(signature, false)
	return &ast.MethodDeclaration{
		ReturnType: m.ReturnType,
		Name:       m.Name,
		Parameters: m.Parameters,
		Body:       body,
		ScopeID:    m.ScopeID,
		Location:   m.Location,
	}
}

// callSignature types literal arguments by their kind and everything else
// as the Variable wildcard.
func callSignature(call *ast.MethodCall) interop.Signature {
	params := make([]types.Kind, len(call.Arguments))
	for i, arg := range call.Arguments {
		params[i] = types.Variable
		if lit, ok := ast.IsLiteral(arg); ok {
			params[i] = lit.Kind
		}
	}
	return interop.NewSignature(call.MethodName(), params...)
}

// removed reports whether a call only matches removed declarations
func (o *Optimizer) removed(signature interop.Signature) bool {
	found := false
	for scope := o.methods.Current(); scope != nil; scope = scope.Parent() {
		for _, e := range scope.Entries() {
			if !e.Key.Matches(signature) {
				continue
			}
			if !e.Value {
				return false
			}
			found = true
		}
	}
	return found
}

func (o *Optimizer) visitMethodCall(call *ast.MethodCall) ast.Node {
	arguments := make([]ast.Expression, len(call.Arguments))
	for i, arg := range call.Arguments {
		arguments[i] = o.expr(arg)
	}
	rewritten := &ast.MethodCall{
		Name:          call.Name,
		Arguments:     arguments,
		ArgumentTypes: call.ArgumentTypes,
		Location:      call.Location,
	}

	if o.removed(callSignature(rewritten)) {
		return o.noop(call)
	}
	return rewritten
}
