package parser

import (
	"candy/internal/ast"
	"candy/internal/diag"
	"candy/internal/source"
	"candy/internal/token"
)

// parseStmt parses one `stmt = let | return | if | expr ";" ;`. On a
// token that cannot start any statement, it records
// parse-unexpected-token and consumes exactly one token so the
// enclosing block loop always makes progress.
func (p *Parser) parseStmt() ast.Stmt {
	switch {
	case p.at(token.KwLet):
		return p.parseLet()
	case p.at(token.KwReturn):
		return p.parseReturn()
	case p.at(token.KwIf):
		return p.parseIf()
	case p.canStartExpr():
		return p.parseExprStmt()
	default:
		sp := p.cur().Span
		p.err(diag.ParseUnexpectedToken, sp, "unexpected token in statement position")
		p.bump()
		return &ast.ExprStmt{
			Expr: &ast.VarExpr{Name: ast.Ident{Name: "_error_", Span: sp}, Sp: sp},
			Sp:   sp,
		}
	}
}

// parseLet parses `let = "let" ident [":" type] "=" expr ";" ;`.
func (p *Parser) parseLet() ast.Stmt {
	kw := p.bump() // 'let'
	name := p.parseIdent(diag.ParseExpectedIdent, "expected a name after 'let'")

	var ty *ast.Type
	if p.at(token.Colon) {
		p.bump()
		t := p.parseType()
		ty = &t
	}

	p.expectKind(token.Eq, diag.ParseExpectedEq, "expected '=' in let binding")
	expr := p.parseExpr()
	semi := p.expectSemi()

	return &ast.LetStmt{
		Name: name,
		Ty:   ty,
		Expr: expr,
		Sp:   coverSpans(kw.Span, expr.Span(), semi),
	}
}

// parseReturn parses `return = "return" [expr] ";" ;`.
func (p *Parser) parseReturn() ast.Stmt {
	kw := p.bump() // 'return'

	var expr ast.Expr
	if !p.at(token.Semi) && p.canStartExpr() {
		expr = p.parseExpr()
	}

	semi := p.expectSemi()

	sp := kw.Span
	if expr != nil {
		sp = coverSpans(sp, expr.Span())
	}
	sp = coverSpans(sp, semi)

	return &ast.ReturnStmt{Expr: expr, Sp: sp}
}

// parseIf parses `if = "if" "(" expr ")" block ["else" block] ;`.
func (p *Parser) parseIf() ast.Stmt {
	kw := p.bump() // 'if'
	p.expectKind(token.LParen, diag.ParseExpectedLParen, "expected '(' after 'if'")
	cond := p.parseExpr()
	p.expectKind(token.RParen, diag.ParseExpectedRParen, "expected ')' after if condition")
	then := p.parseBlock()

	var elseBlk *ast.Block
	if p.at(token.KwElse) {
		p.bump()
		elseBlk = p.parseBlock()
	}

	sp := coverSpans(kw.Span, then.Span)
	if elseBlk != nil {
		sp = coverSpans(sp, elseBlk.Span)
	}

	return &ast.IfStmt{Cond: cond, Then: then, Else: elseBlk, Sp: sp}
}

// parseExprStmt parses `expr ";"`.
func (p *Parser) parseExprStmt() ast.Stmt {
	expr := p.parseExpr()
	semi := p.expectSemi()
	return &ast.ExprStmt{Expr: expr, Sp: coverSpans(expr.Span(), semi)}
}

// parseBlock parses `block = "{" { stmt } "}" ;`, always returning a
// non-nil *ast.Block.
func (p *Parser) parseBlock() *ast.Block {
	lb, _ := p.expectKind(token.LBrace, diag.ParseExpectedLBrace, "expected '{' to start a block")

	var stmts []ast.Stmt
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		stmts = append(stmts, p.parseStmt())
	}

	rb, _ := p.expectKind(token.RBrace, diag.ParseExpectedRBrace, "expected '}' to close a block")

	return &ast.Block{Stmts: stmts, Span: coverSpans(lb, rb)}
}

// expectSemi consumes the required trailing ';', returning its span (or
// the zero span when missing).
func (p *Parser) expectSemi() source.Span {
	sp, _ := p.expectKind(token.Semi, diag.ParseExpectedSemi, "expected ';'")
	return sp
}
