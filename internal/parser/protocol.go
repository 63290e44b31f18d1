package parser

import (
	"candy/internal/ast"
	"candy/internal/diag"
	"candy/internal/token"
)

// parseProtocol parses `protocol = "protocol" ident "{" { state_decl |
// transition } "}" ;`.
func (p *Parser) parseProtocol() *ast.ProtocolDecl {
	kw := p.bump() // 'protocol'
	name := p.parseIdent(diag.ParseExpectedIdent, "expected a protocol name")
	p.expectKind(token.LBrace, diag.ParseExpectedLBrace, "expected '{' to start protocol body")

	var states []ast.StateDecl
	var transitions []ast.TransitionDecl

	for !p.at(token.RBrace) && !p.at(token.EOF) {
		switch {
		case p.at(token.KwFinal):
			states = append(states, p.parseStateDecl(true))
		case p.at(token.KwState):
			states = append(states, p.parseStateDecl(false))
		case p.at(token.KwTransition):
			transitions = append(transitions, p.parseTransition())
		default:
			sp := p.cur().Span
			p.err(diag.ParseExpectedState, sp, "expected 'state', 'final state', or 'transition'")
			p.bump()
		}
	}

	rb, _ := p.expectKind(token.RBrace, diag.ParseExpectedRBrace, "expected '}' to close protocol body")

	return &ast.ProtocolDecl{
		Name:        name,
		States:      states,
		Transitions: transitions,
		Span:        coverSpans(kw.Span, rb),
	}
}

// parseStateDecl parses `state_decl = ["final"] "state" ident ";" ;`.
// isFinal reflects whether the leading "final" keyword was already seen
// by the caller's dispatch.
func (p *Parser) parseStateDecl(isFinal bool) ast.StateDecl {
	start := p.cur().Span
	if isFinal {
		p.bump() // 'final'
	}
	p.expectKind(token.KwState, diag.ParseExpectedState, "expected 'state'")
	name := p.parseIdent(diag.ParseExpectedIdent, "expected a state name")
	semi := p.expectSemi()

	return ast.StateDecl{
		Name:    name,
		IsFinal: isFinal,
		Span:    coverSpans(start, name.Span, semi),
	}
}

// parseTransition parses `transition = "transition" ident "->" ident ";" ;`.
func (p *Parser) parseTransition() ast.TransitionDecl {
	kw := p.bump() // 'transition'
	from := p.parseIdent(diag.ParseExpectedIdent, "expected a source state name")
	p.expectKind(token.Arrow, diag.ParseExpectedArrow, "expected '->' in transition")
	to := p.parseIdent(diag.ParseExpectedIdent, "expected a target state name")
	semi := p.expectSemi()

	return ast.TransitionDecl{
		From: from,
		To:   to,
		Span: coverSpans(kw.Span, to.Span, semi),
	}
}
