package parser

import (
	"candy/internal/ast"
	"candy/internal/diag"
	"candy/internal/token"
)

// parseProgram parses the top-level { fn | protocol } sequence. It is
// total: every token is eventually consumed, either by a successful
// fn/protocol production or by the top-level recovery branch below.
func (p *Parser) parseProgram() *ast.Program {
	firstSpan := p.cur().Span
	prog := &ast.Program{}

	for !p.at(token.EOF) {
		switch {
		case p.at(token.KwProtocol):
			prog.Protocols = append(prog.Protocols, p.parseProtocol())
		case p.at(token.KwFn), p.at(token.Ident):
			// Any identifier-shaped top-level start is treated as an
			// attempted function declaration missing its "fn" keyword;
			// parseFn itself records parse-expected-fn when "fn" isn't
			// actually there.
			prog.Funcs = append(prog.Funcs, p.parseFn())
		default:
			sp := p.cur().Span
			p.err(diag.ParseExpectedTopLevel, sp, "expected 'fn' or 'protocol' at top level")
			p.bump()
		}
	}

	prog.Span = coverSpans(firstSpan, p.lastSpan)
	return prog
}
