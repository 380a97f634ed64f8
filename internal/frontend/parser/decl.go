package parser

import (
	"fmt"

	"github.com/peter-r-g/CodeItOut/internal/diagnostics"
	"github.com/peter-r-g/CodeItOut/internal/frontend/ast"
	"github.com/peter-r-g/CodeItOut/internal/source"
	"github.com/peter-r-g/CodeItOut/internal/tokens"
	"github.com/peter-r-g/CodeItOut/internal/types"
)

// parseVariableDecl parses type name[, name...] [= expression].
// A for loop header allows only one name.
func (p *Parser) parseVariableDecl(allowMany bool) *ast.VariableDeclaration {
	typ := p.parseVariableType()
	names := []*ast.Variable{p.parseVariable()}

	if allowMany {
		for p.match(tokens.COMMA_TOKEN) {
			p.advance()
			names = append(names, p.parseVariable())
		}
	}

	var value ast.Expression = p.empty()
	if p.match(tokens.EQUALS_TOKEN) {
		p.advance()
		value = p.parseExpr()
	}

	return &ast.VariableDeclaration{
		Type:     typ,
		Names:    names,
		Default:  value,
		Location: p.makeLocation(typ.Start),
	}
}

// parseVariableType reads a type keyword. An unknown type is reported and not consumed.
func (p *Parser) parseVariableType() *ast.VariableType {
	tok := p.peek()

	kind, ok := types.ByIdentifier(tok.Text())
	if ok {
		p.advance()
	} else {
		p.diagnostics.Add(
			diagnostics.NewError(fmt.Sprintf("Unknown variable type %s", tok.Text())).
				WithCode(diagnostics.ErrUnknownVariableType).
				At(tok.Start),
		)
	}

	return &ast.VariableType{
		Token:    tok,
		Kind:     kind,
		Location: source.NewLocation(tok.Start, tok.End),
	}
}

func (p *Parser) parseVariable() *ast.Variable {
	tok := p.peek()
	p.expect(tokens.IDENTIFIER_TOKEN)

	return &ast.Variable{
		Token:    tok,
		Location: source.NewLocation(tok.Start, tok.End),
	}
}

// parseAssignment parses name op expression. A bad operator is reported and still consumed.
func (p *Parser) parseAssignment() *ast.Assignment {
	variable := p.parseVariable()
	op := p.peek()

	if !op.Kind.IsAssignment() {
		p.diagnostics.Add(
			diagnostics.NewError(fmt.Sprintf("Unknown assignment operator %s", op.Kind)).
				WithCode(diagnostics.ErrUnknownAssignment).
				At(op.Start),
		)
	}
	p.advance()

	return &ast.Assignment{
		Variable:   variable,
		Operator:   op,
		Expression: p.parseExpr(),
		Location:   p.makeLocation(variable.Start),
	}
}

// parseMethodDecl parses returnType name(type param, ...) block
func (p *Parser) parseMethodDecl() *ast.MethodDeclaration {
	returnType := p.parseVariableType()
	name := p.parseVariable()

	p.expect(tokens.OPEN_PAREN)
	params := make([]*ast.Parameter, 0)
	if !p.match(tokens.CLOSE_PAREN) {
		params = append(params, p.parseParameter())
		for p.match(tokens.COMMA_TOKEN) {
			p.advance()
			params = append(params, p.parseParameter())
		}
	}
	p.expect(tokens.CLOSE_PAREN)

	return &ast.MethodDeclaration{
		ReturnType: returnType,
		Name:       name,
		Parameters: params,
		Body:       p.parseBlock(),
		ScopeID:    ast.NewScopeID(),
		Location:   p.makeLocation(returnType.Start),
	}
}

func (p *Parser) parseParameter() *ast.Parameter {
	typ := p.parseVariableType()
	name := p.parseVariable()

	return &ast.Parameter{
		Type:     typ,
		Name:     name,
		Location: p.makeLocation(typ.Start),
	}
}

// parseMethodCall parses name(arguments) as a statement or an expression
func (p *Parser) parseMethodCall() *ast.MethodCall {
	name := p.peek()
	p.expect(tokens.IDENTIFIER_TOKEN)
	p.expect(tokens.OPEN_PAREN)

	args := make([]ast.Expression, 0)
	if !p.match(tokens.CLOSE_PAREN) {
		args = append(args, p.parseExpr())
	}
	for p.match(tokens.COMMA_TOKEN) {
		p.advance()
		args = append(args, p.parseExpr())
	}
	p.expect(tokens.CLOSE_PAREN)

	return &ast.MethodCall{
		Name:      name,
		Arguments: args,
		Location:  p.makeLocation(name.Start),
	}
}
