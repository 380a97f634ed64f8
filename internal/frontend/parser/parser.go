package parser

import (
	"fmt"

	"github.com/peter-r-g/CodeItOut/internal/diagnostics"
	"github.com/peter-r-g/CodeItOut/internal/frontend/ast"
	"github.com/peter-r-g/CodeItOut/internal/phase"
	"github.com/peter-r-g/CodeItOut/internal/source"
	"github.com/peter-r-g/CodeItOut/internal/tokens"
	"github.com/peter-r-g/CodeItOut/internal/types"
)

// Parser holds temporary state during parsing of one token stream.
// It never stops at the first error: mismatches are reported and the
// tree is completed with NoOperation placeholders.
type Parser struct {
	tokens      []tokens.Token
	current     int // current position in tokens
	diagnostics *diagnostics.DiagnosticBag
}

// Parse builds a program from a token stream ending in EOF.
func Parse(toks []tokens.Token) (*ast.Program, *diagnostics.DiagnosticBag) {
	bag := diagnostics.NewDiagnosticBag(phase.Parsing.String())
	if len(toks) == 0 {
		toks = []tokens.Token{tokens.NewToken(tokens.EOF_TOKEN, "", nil, source.Start(), source.Start())}
	}

	parser := &Parser{
		tokens:      toks,
		current:     0,
		diagnostics: bag,
	}

	return parser.parseProgram(), bag
}

// parseProgram parses the whole token stream
func (p *Parser) parseProgram() *ast.Program {
	statements := p.parseStatementList()
	if tok := p.peek(); tok.Kind != tokens.EOF_TOKEN {
		p.unexpectedToken(tokens.EOF_TOKEN, tok)
	}

	return &ast.Program{Statements: statements}
}

// Expressions

// parseExpr climbs precedence. Lower precedence binds tighter, and binary
// operators of equal precedence associate to the right, so 10 - 3 - 2 is 9.
// A unary operator cannot directly follow another one.
func (p *Parser) parseExpr() ast.Expression {
	return p.parseExprPrecedence(tokens.NoPrecedence)
}

func (p *Parser) parseExprPrecedence(parent int) ast.Expression {
	var left ast.Expression

	if unary := p.peek().Kind.UnaryPrecedence(); unary != tokens.NoPrecedence && unary < parent {
		op := p.advance()
		operand := p.parseExprPrecedence(unary)
		left = &ast.UnaryOperator{
			Operator: op,
			Operand:  operand,
			Location: p.makeLocation(op.Start),
		}
	} else {
		left = p.parsePrimary()
	}

	for {
		precedence := p.peek().Kind.BinaryPrecedence()
		if precedence == tokens.NoPrecedence || precedence > parent {
			break
		}

		op := p.advance()
		right := p.parseExprPrecedence(precedence)
		left = &ast.BinaryOperator{
			Left:     left,
			Operator: op,
			Right:    right,
			Location: p.makeLocation(ast.Start(left)),
		}
	}

	return left
}

func (p *Parser) parsePrimary() ast.Expression {
	tok := p.peek()

	switch {
	case tok.Kind == tokens.OPEN_PAREN:
		p.advance()
		expr := p.parseExpr()
		p.expect(tokens.CLOSE_PAREN)
		return expr
	case tok.Kind == tokens.LITERAL_TOKEN:
		p.advance()
		for _, kind := range types.LiteralKinds {
			if kind.AcceptsLiteral(tok.Literal) {
				return &ast.Literal{
					Token:    tok,
					Kind:     kind,
					Location: source.NewLocation(tok.Start, tok.End),
				}
			}
		}
		p.diagnostics.Add(
			diagnostics.NewError(fmt.Sprintf("The literal %q was not consumed", tok.Value)).
				WithCode(diagnostics.ErrUnconsumedLiteral).
				At(tok.Start),
		)
		return p.empty()
	case tok.Kind == tokens.IDENTIFIER_TOKEN && p.next().Kind == tokens.OPEN_PAREN:
		return p.parseMethodCall()
	case tok.Kind == tokens.IDENTIFIER_TOKEN:
		return p.parseVariable()
	default:
		p.unexpectedResult("primary expression", tok, diagnostics.ErrExpectedPrimary)
		return p.skipToken()
	}
}

// Token helpers

func (p *Parser) peekAt(offset int) tokens.Token {
	idx := p.current + offset
	if idx < 0 {
		return p.tokens[0]
	}
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[idx]
}

func (p *Parser) peek() tokens.Token {
	return p.peekAt(0)
}

func (p *Parser) next() tokens.Token {
	return p.peekAt(1)
}

func (p *Parser) previous() tokens.Token {
	return p.peekAt(-1)
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == tokens.EOF_TOKEN
}

func (p *Parser) advance() tokens.Token {
	tok := p.peek()
	if p.current < len(p.tokens) {
		p.current++
	}
	return tok
}

func (p *Parser) match(kinds ...tokens.TOKEN) bool {
	for _, kind := range kinds {
		if p.peek().Kind == kind {
			return true
		}
	}
	return false
}

// expect consumes a token of kind. On a mismatch it reports and leaves the token in place.
func (p *Parser) expect(kind tokens.TOKEN) tokens.Token {
	if p.match(kind) {
		return p.advance()
	}
	p.unexpectedToken(kind, p.peek())
	return p.peek()
}

func (p *Parser) unexpectedToken(expected tokens.TOKEN, got tokens.Token) {
	p.diagnostics.Add(
		diagnostics.NewError(fmt.Sprintf("Expected %s, got %s", expected, got.Kind)).
			WithCode(diagnostics.ErrUnexpectedToken).
			At(got.Start),
	)
}

func (p *Parser) unexpectedResult(expected string, got tokens.Token, code string) {
	p.diagnostics.Add(
		diagnostics.NewError(fmt.Sprintf("Expected %s, got %s", expected, got.Kind)).
			WithCode(code).
			At(got.Start),
	)
}

// empty creates a NoOperation at the current token
func (p *Parser) empty() *ast.NoOperation {
	return ast.NoOp(p.peek().Start)
}

// skipToken reports the current token as not a statement and consumes it
func (p *Parser) skipToken() *ast.NoOperation {
	noop := p.empty()
	p.advance()
	return noop
}

// makeLocation creates a source location from start to the end of the last consumed token
func (p *Parser) makeLocation(start source.Position) source.Location {
	end := start
	if p.current > 0 {
		end = p.previous().End
	}
	return source.NewLocation(start, end)
}
