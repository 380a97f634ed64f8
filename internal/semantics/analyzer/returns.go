package analyzer

import (
	"github.com/peter-r-g/CodeItOut/internal/frontend/ast"
)

// terminates reports whether every path through node ends in a return.
// SandScript has no break, so a loop whose condition is the literal true
// can only be left by returning.
func terminates(node ast.Node) bool {
	switch n := node.(type) {
	case *ast.Return:
		return true
	case *ast.Block:
		if n == nil {
			return false
		}
		for _, stmt := range n.Statements {
			if terminates(stmt) {
				return true
			}
		}
		return false
	case *ast.If:
		return terminates(n.True) && terminates(n.False)
	case *ast.While:
		return isTrue(n.Condition)
	case *ast.For:
		return isTrue(n.Condition)
	case *ast.DoWhile:
		return terminates(n.Body) || isTrue(n.Condition)
	}
	return false
}

func isTrue(n ast.Node) bool {
	lit, ok := n.(*ast.Literal)
	if !ok {
		return false
	}
	value, ok := lit.Value().(bool)
	return ok && value
}
