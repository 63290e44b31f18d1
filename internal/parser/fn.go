package parser

import (
	"candy/internal/ast"
	"candy/internal/diag"
	"candy/internal/token"
)

// parseFn parses one `fn` production:
//
//	fn = "fn" ident "(" [param] ")" "->" type [effects] block ;
//
// Always returns a well-formed *ast.FnDecl, substituting sentinel pieces
// for anything missing.
func (p *Parser) parseFn() *ast.FnDecl {
	startSpan := p.cur().Span

	if p.at(token.KwFn) {
		p.bump()
	} else {
		p.err(diag.ParseExpectedFn, p.cur().Span, "expected 'fn' to start a function declaration")
	}

	name := p.parseIdent(diag.ParseExpectedIdent, "expected a function name")

	p.expectKind(token.LParen, diag.ParseExpectedLParen, "expected '(' after function name")

	var params []ast.Param
	if !p.at(token.RParen) && !p.at(token.EOF) {
		params = append(params, p.parseParam())
	}

	p.expectKind(token.RParen, diag.ParseExpectedRParen, "expected ')' after parameter list")
	p.expectKind(token.Arrow, diag.ParseExpectedArrow, "expected '->' before the return type")

	ret := p.parseType()

	var effects ast.EffectSet
	if p.at(token.KwEffects) {
		effects = p.parseEffects()
	}

	body := p.parseBlock()

	return &ast.FnDecl{
		Name:    name,
		Params:  params,
		Ret:     ret,
		Effects: effects,
		Body:    body,
		Span:    coverSpans(startSpan, body.Span),
	}
}

// parseParam parses a single `ident ":" type` parameter. The grammar
// accepts at most one; callers only invoke this once per function.
func (p *Parser) parseParam() ast.Param {
	name := p.parseIdent(diag.ParseExpectedIdent, "expected a parameter name")
	p.expectKind(token.Colon, diag.ParseExpectedColon, "expected ':' after parameter name")
	ty := p.parseType()
	return ast.Param{Name: name, Ty: ty, Span: coverSpans(name.Span, ty.Span)}
}

// parseType parses `type = "secret" type | ident ;`. Identifiers `Int`,
// `Bool`, `Unit` lower to their dedicated variants; any other identifier
// becomes Named(name).
func (p *Parser) parseType() ast.Type {
	if p.at(token.KwSecret) {
		kw := p.bump()
		inner := p.parseType()
		return ast.Type{Kind: ast.TySecret, Inner: &inner, Span: coverSpans(kw.Span, inner.Span)}
	}

	if p.at(token.Ident) {
		t := p.bump()
		switch t.Text {
		case "Int":
			return ast.Type{Kind: ast.TyInt, Span: t.Span}
		case "Bool":
			return ast.Type{Kind: ast.TyBool, Span: t.Span}
		case "Unit":
			return ast.Type{Kind: ast.TyUnit, Span: t.Span}
		default:
			return ast.Type{Kind: ast.TyNamed, Name: t.Text, Span: t.Span}
		}
	}

	sp := p.cur().Span
	p.err(diag.ParseExpectedType, sp, "expected a type")
	p.bump()
	return ast.Type{Kind: ast.TyNamed, Name: "_error_", Span: sp}
}

// parseEffects parses `effects = "effects" "(" effect {"," effect} ")" ;`.
func (p *Parser) parseEffects() ast.EffectSet {
	p.bump() // 'effects'
	p.expectKind(token.LParen, diag.ParseExpectedLParen, "expected '(' after 'effects'")

	var set ast.EffectSet
	if !p.at(token.RParen) && !p.at(token.LBrace) && !p.at(token.EOF) {
		p.parseEffectItem(&set)
		for p.at(token.Comma) {
			p.bump()
			p.parseEffectItem(&set)
		}
	} else {
		p.err(diag.ParseExpectedEffect, p.cur().Span, "expected an effect name")
	}

	p.expectKind(token.RParen, diag.ParseExpectedRParen, "expected ')' to close the effects list")
	return set
}

// parseEffectItem parses one `"io" | "net" | "time" | "rand"` name,
// contextually recognized from its identifier text.
func (p *Parser) parseEffectItem(set *ast.EffectSet) {
	if p.at(token.Ident) {
		t := p.bump()
		eff, ok := ast.LookupEffect(t.Text)
		if !ok {
			p.err(diag.ParseUnknownEffect, t.Span, "unknown effect '"+t.Text+"'")
			return
		}
		set.Add(eff)
		return
	}
	sp := p.cur().Span
	p.err(diag.ParseExpectedEffect, sp, "expected an effect name")
	p.bump()
}
