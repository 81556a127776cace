package parser

import (
	"newt/internal/ast"
	"newt/internal/diag"
	"newt/internal/token"
)

// parseItem выбирает распознаватель по первому токену.
func (p *Parser) parseItem() (*ast.Func, bool) {
	switch p.peek().Kind {
	case token.KwExtern:
		return p.parseExternFunc()
	case token.KwFunc:
		return p.parseFunc()
	default:
		p.errorAtPeek(diag.SynUnexpectedTopItem, "expected 'func' or 'extern'")
		return nil, false
	}
}

// extern func name() -> Type;
func (p *Parser) parseExternFunc() (*ast.Func, bool) {
	start := p.advance().Span
	if _, ok := p.expect(token.KwFunc, diag.SynUnexpectedToken, "'func' after 'extern'"); !ok {
		return nil, false
	}
	fn, ok := p.parseDecl()
	if !ok {
		return nil, false
	}
	if p.at(token.LBrace) {
		p.errorAtPeek(diag.SynUnexpectedToken, "expected ';', extern functions cannot have a body")
		return nil, false
	}
	semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "';' after extern declaration")
	if !ok {
		return nil, false
	}
	fn.Extern = true
	fn.Span = start.Cover(semi.Span)
	return fn, true
}

// func name() -> Type { expr }
func (p *Parser) parseFunc() (*ast.Func, bool) {
	start := p.advance().Span
	fn, ok := p.parseDecl()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.LBrace, diag.SynExpectBody, "'{' to open function body"); !ok {
		return nil, false
	}
	body, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	closing, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "'}' to close function body")
	if !ok {
		return nil, false
	}
	fn.Body = body
	fn.Span = start.Cover(closing.Span)
	return fn, true
}

func (p *Parser) parseDecl() (*ast.Func, bool) {
	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "function name")
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "'('"); !ok {
		return nil, false
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "')'"); !ok {
		return nil, false
	}
	if _, ok := p.expect(token.Arrow, diag.SynExpectArrow, "'->' before return type"); !ok {
		return nil, false
	}
	ty, ok := p.expect(token.Ident, diag.SynExpectType, "return type")
	if !ok {
		return nil, false
	}
	return &ast.Func{
		Name:     name.Name,
		NameSpan: name.Span,
		Result:   ast.TypeRef{Name: ty.Name, Span: ty.Span},
	}, true
}

func (p *Parser) parseExpr() (*ast.Expr, bool) {
	tok := p.peek()
	switch tok.Kind {
	case token.IntLit:
		p.advance()
		return &ast.Expr{Kind: ast.ExprInt, Span: tok.Span, Int: tok.Int}, true
	case token.Ident:
		p.advance()
		return &ast.Expr{Kind: ast.ExprName, Span: tok.Span, Name: tok.Name}, true
	case token.StringLit:
		p.advance()
		return &ast.Expr{Kind: ast.ExprString, Span: tok.Span, Str: tok.Str, Lit: tok.Lit}, true
	default:
		p.errorAtPeek(diag.SynExpectExpression, "expected expression")
		return nil, false
	}
}
