package token

import "candy/internal/source"

// Token is a single lexical unit with its span and, for literals and
// identifiers, its decoded payload.
type Token struct {
	Kind Kind
	Span source.Span
	Text string // raw lexeme; holds Ident text and StrLit contents
	Int  int64  // populated when Kind == IntLit
}

// String renders a token for trace/debug output, not for the diagnostic
// surface (which only ever reports spans and messages).
func (t Token) String() string {
	if t.Text != "" {
		return t.Kind.String() + "(" + t.Text + ")"
	}
	return t.Kind.String()
}
