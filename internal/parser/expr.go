package parser

import (
	"candy/internal/ast"
	"candy/internal/diag"
	"candy/internal/token"
)

// canStartExpr reports whether the current token can begin an `expr`
// production: intlit | strlit | true/false | move(...) | ident(...) |
// ident.
func (p *Parser) canStartExpr() bool {
	switch p.cur().Kind {
	case token.IntLit, token.StrLit, token.Ident:
		return true
	default:
		return false
	}
}

// parseExpr parses one `expr` production.
func (p *Parser) parseExpr() ast.Expr {
	t := p.cur()
	switch t.Kind {
	case token.IntLit:
		p.bump()
		return &ast.IntLitExpr{Value: t.Int, Sp: t.Span}
	case token.StrLit:
		p.bump()
		return &ast.StrLitExpr{Value: t.Text, Sp: t.Span}
	case token.Ident:
		return p.parseIdentExpr()
	default:
		sp := t.Span
		p.err(diag.ParseUnexpectedToken, sp, "expected an expression")
		p.bump()
		return &ast.VarExpr{Name: ast.Ident{Name: "_error_", Span: sp}, Sp: sp}
	}
}

// parseIdentExpr parses the identifier-led expression forms: `true`,
// `false`, `move(ident)`, `ident(args)`, or a bare `ident` variable read.
func (p *Parser) parseIdentExpr() ast.Expr {
	t := p.bump() // the leading identifier

	switch t.Text {
	case "true":
		return &ast.BoolLitExpr{Value: true, Sp: t.Span}
	case "false":
		return &ast.BoolLitExpr{Value: false, Sp: t.Span}
	case "move":
		if p.at(token.LParen) {
			return p.parseMoveExpr(t)
		}
	}

	if p.at(token.LParen) {
		return p.parseCallExpr(t)
	}

	return &ast.VarExpr{Name: ast.Ident{Name: t.Text, Span: t.Span}, Sp: t.Span}
}

// parseMoveExpr parses `"move" "(" ident ")"` after the leading "move"
// identifier token has already been consumed.
func (p *Parser) parseMoveExpr(moveTok token.Token) ast.Expr {
	p.bump() // '('
	name := p.parseIdent(diag.ParseExpectedIdent, "expected a name inside move(...)")
	rp, _ := p.expectKind(token.RParen, diag.ParseExpectedRParen, "expected ')' to close move(...)")
	return &ast.MoveExpr{Name: name, Sp: coverSpans(moveTok.Span, name.Span, rp)}
}

// parseCallExpr parses `ident "(" [expr {"," expr}] ")"` after the
// callee identifier token has already been consumed.
func (p *Parser) parseCallExpr(callee token.Token) ast.Expr {
	p.bump() // '('

	var args []ast.Expr
	if !p.at(token.RParen) && !p.at(token.EOF) {
		args = append(args, p.parseExpr())
		for p.at(token.Comma) {
			p.bump()
			args = append(args, p.parseExpr())
		}
	}

	rp, _ := p.expectKind(token.RParen, diag.ParseExpectedRParen, "expected ')' to close call arguments")

	sp := coverSpans(callee.Span, rp)
	return &ast.CallExpr{
		Callee: ast.Ident{Name: callee.Text, Span: callee.Span},
		Args:   args,
		Sp:     sp,
	}
}
