// Package token defines the lexical token kinds produced by the lexer.
package token

// Kind identifies the lexical category of a Token. The set is closed: the
// lexer is total and always produces one of these, substituting Ident
// recovery tokens (including for an unterminated string) rather than
// failing.
type Kind uint8

const (
	Invalid Kind = iota
	EOF

	// Literals and identifiers.
	Ident
	IntLit
	StrLit

	// Keywords.
	KwFn
	KwLet
	KwReturn
	KwIf
	KwElse
	KwSecret
	KwEffects
	KwProtocol
	KwState
	KwTransition
	KwFinal

	// Punctuation.
	LParen
	RParen
	LBrace
	RBrace
	Colon
	Semi
	Comma
	Eq
	Arrow
)

var names = map[Kind]string{
	Invalid:      "invalid",
	EOF:          "eof",
	Ident:        "ident",
	IntLit:       "int-literal",
	StrLit:       "string-literal",
	KwFn:         "fn",
	KwLet:        "let",
	KwReturn:     "return",
	KwIf:         "if",
	KwElse:       "else",
	KwSecret:     "secret",
	KwEffects:    "effects",
	KwProtocol:   "protocol",
	KwState:      "state",
	KwTransition: "transition",
	KwFinal:      "final",
	LParen:       "(",
	RParen:       ")",
	LBrace:       "{",
	RBrace:       "}",
	Colon:        ":",
	Semi:         ";",
	Comma:        ",",
	Eq:           "=",
	Arrow:        "->",
}

func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return "unknown"
}

// keywords maps the closed set of reserved words to their Kind. Anything
// else lexes as Ident, including contextual words like "true", "false",
// "move", and the effect names ("io", "net", "time", "rand"), which the
// parser recognizes by their text rather than a dedicated Kind.
var keywords = map[string]Kind{
	"fn":         KwFn,
	"let":        KwLet,
	"return":     KwReturn,
	"if":         KwIf,
	"else":       KwElse,
	"secret":     KwSecret,
	"effects":    KwEffects,
	"protocol":   KwProtocol,
	"state":      KwState,
	"transition": KwTransition,
	"final":      KwFinal,
}

// LookupKeyword returns the Kind for a reserved word, or (Invalid, false)
// if lexeme is not one of the closed keyword set.
func LookupKeyword(lexeme string) (Kind, bool) {
	k, ok := keywords[lexeme]
	return k, ok
}
