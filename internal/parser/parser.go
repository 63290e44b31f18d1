// Package parser implements Candy's hand-written recursive-descent
// parser: single-token lookahead, total under malformed input, and
// always returning a well-formed (possibly sentinel-filled) AST
// alongside whatever diagnostics recovery produced.
package parser

import (
	"candy/internal/ast"
	"candy/internal/diag"
	"candy/internal/lexer"
	"candy/internal/source"
	"candy/internal/token"
)

// Parser holds the state of a single-file parse: the full pre-lexed token
// stream (the lexer is total and cheap, so pre-lexing the whole file keeps
// `cur`/`bump` trivial compared to threading a streaming lexer's
// Peek/Push), the current position, and the report diagnostics accumulate
// into.
type Parser struct {
	file     string
	toks     []token.Token
	pos      int
	lastSpan source.Span
	rep      *diag.Report
}

// New creates a Parser over f's token stream, reporting into rep.
func New(f *source.File, rep *diag.Report) *Parser {
	return &Parser{
		file:     f.Path,
		toks:     lexer.LexAll(f),
		rep:      rep,
		lastSpan: source.Unknown(f.Path),
	}
}

// ParseFile parses src under path, returning the resulting AST and a
// fresh Report of every diagnostic recovery produced along the way. It
// always returns a non-nil Program.
func ParseFile(path string, src []byte) (*ast.Program, *diag.Report) {
	fs := source.NewFileSet()
	f := fs.AddVirtual(path, src)
	rep := diag.NewReport()
	p := New(f, rep)
	return p.parseProgram(), rep
}

func (p *Parser) cur() token.Token {
	return p.toks[p.pos]
}

// bump consumes the current token and returns it, recording its span as
// the parser's last-consumed span (used to close off Cover spans for
// multi-token productions).
func (p *Parser) bump() token.Token {
	t := p.toks[p.pos]
	if p.pos+1 < len(p.toks) {
		p.pos++
	}
	p.lastSpan = t.Span
	return t
}

func (p *Parser) at(k token.Kind) bool {
	return p.cur().Kind == k
}

func (p *Parser) err(code diag.Code, span source.Span, msg string) {
	p.rep.Add(diag.Diagnostic{Code: code, Severity: diag.SevError, Message: msg, Span: span})
}

// expectKind consumes a required token kind, or records a diagnostic
// without advancing past foreign input. Leaving the cursor in place
// lets whatever follows a missing punctuation token still be found by
// the next production.
func (p *Parser) expectKind(k token.Kind, code diag.Code, msg string) (source.Span, bool) {
	if p.at(k) {
		t := p.bump()
		return t.Span, true
	}
	p.err(code, p.cur().Span, msg)
	return source.Span{}, false
}

// parseIdent consumes a required identifier, or records a diagnostic and
// bumps one token, substituting the sentinel "_error_" identifier so the
// caller always gets a well-formed node.
func (p *Parser) parseIdent(code diag.Code, msg string) ast.Ident {
	if p.at(token.Ident) {
		t := p.bump()
		return ast.Ident{Name: t.Text, Span: t.Span}
	}
	sp := p.cur().Span
	p.err(code, sp, msg)
	p.bump()
	return ast.Ident{Name: "_error_", Span: sp}
}
