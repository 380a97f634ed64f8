package parser

import (
	"github.com/peter-r-g/CodeItOut/internal/diagnostics"
	"github.com/peter-r-g/CodeItOut/internal/frontend/ast"
	"github.com/peter-r-g/CodeItOut/internal/tokens"
)

// parseStatementList parses statements up to EOF or a closing brace.
// A semicolon after each statement is optional.
func (p *Parser) parseStatementList() []ast.Node {
	statements := make([]ast.Node, 0)

	for !p.isAtEnd() && !p.match(tokens.CLOSE_CURLY) {
		statements = append(statements, p.parseStmt())
		if p.match(tokens.SEMICOLON_TOKEN) {
			p.advance()
		}
	}

	return statements
}

// parseBlock parses { statements } or a single statement as a synthetic block
func (p *Parser) parseBlock() *ast.Block {
	start := p.peek().Start

	if !p.match(tokens.OPEN_CURLY) {
		stmt := p.parseStmt()
		return &ast.Block{
			Statements: []ast.Node{stmt},
			ScopeID:    ast.NewScopeID(),
			Location:   p.makeLocation(start),
		}
	}

	p.expect(tokens.OPEN_CURLY)
	statements := make([]ast.Node, 0)
	if !p.match(tokens.CLOSE_CURLY) {
		statements = p.parseStatementList()
	}
	p.expect(tokens.CLOSE_CURLY)

	return &ast.Block{
		Statements: statements,
		ScopeID:    ast.NewScopeID(),
		Location:   p.makeLocation(start),
	}
}

func (p *Parser) parseStmt() ast.Node {
	tok := p.peek()

	switch tok.Kind {
	case tokens.IF_TOKEN:
		return p.parseIfStmt()
	case tokens.FOR_TOKEN:
		return p.parseForStmt()
	case tokens.DO_TOKEN:
		return p.parseDoWhileStmt()
	case tokens.WHILE_TOKEN:
		return p.parseWhileStmt()
	case tokens.RETURN_TOKEN:
		return p.parseReturnStmt()
	case tokens.IDENTIFIER_TOKEN:
		second := p.next()
		switch {
		case second.Kind == tokens.OPEN_PAREN:
			return p.parseMethodCall()
		case second.Kind == tokens.IDENTIFIER_TOKEN && p.peekAt(2).Kind == tokens.OPEN_PAREN:
			return p.parseMethodDecl()
		case second.Kind == tokens.IDENTIFIER_TOKEN:
			return p.parseVariableDecl(true)
		default:
			return p.parseAssignment()
		}
	case tokens.OPEN_CURLY:
		return p.parseBlock()
	case tokens.WHITESPACE_TOKEN:
		p.advance()
		return &ast.Whitespace{Contents: tok.Value, Location: p.makeLocation(tok.Start)}
	case tokens.COMMENT_TOKEN, tokens.MULTI_LINE_COMMENT_TOKEN:
		p.advance()
		return &ast.Comment{
			Contents:  tok.Value,
			MultiLine: tok.Kind == tokens.MULTI_LINE_COMMENT_TOKEN,
			Location:  p.makeLocation(tok.Start),
		}
	default:
		p.unexpectedResult("statement", tok, diagnostics.ErrExpectedStatement)
		return p.skipToken()
	}
}

// parseReturnStmt parses return [expression]
func (p *Parser) parseReturnStmt() *ast.Return {
	start := p.expect(tokens.RETURN_TOKEN).Start

	var value ast.Node = p.empty()
	if !p.match(tokens.SEMICOLON_TOKEN) {
		value = p.parseExpr()
	}

	return &ast.Return{Expression: value, Location: p.makeLocation(start)}
}

// parseIfStmt parses if ( condition ) block [;] [else block]
func (p *Parser) parseIfStmt() *ast.If {
	start := p.expect(tokens.IF_TOKEN).Start
	p.expect(tokens.OPEN_PAREN)
	condition := p.parseExpr()
	p.expect(tokens.CLOSE_PAREN)

	trueBlock := p.parseBlock()
	if p.match(tokens.SEMICOLON_TOKEN) {
		p.advance()
	}

	var falseBlock ast.Node = p.empty()
	if p.match(tokens.ELSE_TOKEN) {
		p.advance()
		falseBlock = p.parseBlock()
	}

	return &ast.If{
		Condition: condition,
		True:      trueBlock,
		False:     falseBlock,
		Location:  p.makeLocation(start),
	}
}

// parseForStmt parses for ( type name [= e] ; condition ; assignment ) block
func (p *Parser) parseForStmt() *ast.For {
	start := p.expect(tokens.FOR_TOKEN).Start
	p.expect(tokens.OPEN_PAREN)
	declaration := p.parseVariableDecl(false)
	p.expect(tokens.SEMICOLON_TOKEN)
	condition := p.parseExpr()
	p.expect(tokens.SEMICOLON_TOKEN)
	iterator := p.parseAssignment()
	p.expect(tokens.CLOSE_PAREN)

	return &ast.For{
		Declaration: declaration,
		Condition:   condition,
		Iterator:    iterator,
		Body:        p.parseBlock(),
		ScopeID:     ast.NewScopeID(),
		Location:    p.makeLocation(start),
	}
}

// parseWhileStmt parses while ( condition ) block
func (p *Parser) parseWhileStmt() *ast.While {
	start := p.expect(tokens.WHILE_TOKEN).Start
	p.expect(tokens.OPEN_PAREN)
	condition := p.parseExpr()
	p.expect(tokens.CLOSE_PAREN)

	return &ast.While{
		Condition: condition,
		Body:      p.parseBlock(),
		Location:  p.makeLocation(start),
	}
}

// parseDoWhileStmt parses do block while ( condition )
func (p *Parser) parseDoWhileStmt() *ast.DoWhile {
	start := p.expect(tokens.DO_TOKEN).Start
	body := p.parseBlock()

	p.expect(tokens.WHILE_TOKEN)
	p.expect(tokens.OPEN_PAREN)
	condition := p.parseExpr()
	p.expect(tokens.CLOSE_PAREN)

	return &ast.DoWhile{
		Body:      body,
		Condition: condition,
		Location:  p.makeLocation(start),
	}
}
