package lexer

import (
	"math"

	"fortio.org/safecast"

	"candy/internal/source"
	"candy/internal/token"
)

// Lexer is a forward-only byte scanner producing Tokens from one file's
// content. It never returns an error; malformed input is handled by
// falling back to single-character or identifier recovery tokens so
// that later stages always see a well-formed stream.
type Lexer struct {
	file string
	c    cursor
}

// New creates a Lexer over f's content.
func New(f *source.File) *Lexer {
	return &Lexer{file: f.Path, c: newCursor(f.Content)}
}

func (lx *Lexer) spanFrom(start mark) source.Span {
	return source.Span{
		File:      lx.file,
		StartLine: start.line,
		StartCol:  start.col,
		EndLine:   lx.c.line,
		EndCol:    lx.c.col,
	}
}

// skipWS consumes any run of whitespace.
func (lx *Lexer) skipWS() {
	for {
		b := lx.c.peekByte()
		switch b {
		case ' ', '\t', '\r', '\n':
			lx.c.bumpByte()
		default:
			return
		}
	}
}

// LexAll repeatedly calls Next until Eof, which it includes exactly once.
func LexAll(f *source.File) []token.Token {
	lx := New(f)
	var out []token.Token
	for {
		t := lx.Next()
		out = append(out, t)
		if t.Kind == token.EOF {
			return out
		}
	}
}

// Next emits the single next token from the current position, applying
// the recognition rules in order.
func (lx *Lexer) Next() token.Token {
	lx.skipWS()

	start := lx.c.mark()

	if lx.c.eof() {
		return token.Token{Kind: token.EOF, Span: lx.spanFrom(start)}
	}

	b := lx.c.peekByte()

	switch b {
	case '(':
		lx.c.bumpByte()
		return token.Token{Kind: token.LParen, Span: lx.spanFrom(start)}
	case ')':
		lx.c.bumpByte()
		return token.Token{Kind: token.RParen, Span: lx.spanFrom(start)}
	case '{':
		lx.c.bumpByte()
		return token.Token{Kind: token.LBrace, Span: lx.spanFrom(start)}
	case '}':
		lx.c.bumpByte()
		return token.Token{Kind: token.RBrace, Span: lx.spanFrom(start)}
	case ':':
		lx.c.bumpByte()
		return token.Token{Kind: token.Colon, Span: lx.spanFrom(start)}
	case ';':
		lx.c.bumpByte()
		return token.Token{Kind: token.Semi, Span: lx.spanFrom(start)}
	case ',':
		lx.c.bumpByte()
		return token.Token{Kind: token.Comma, Span: lx.spanFrom(start)}
	case '=':
		lx.c.bumpByte()
		return token.Token{Kind: token.Eq, Span: lx.spanFrom(start)}
	case '-':
		lx.c.bumpByte()
		if lx.c.peekByte() == '>' {
			lx.c.bumpByte()
			return token.Token{Kind: token.Arrow, Span: lx.spanFrom(start)}
		}
		return token.Token{Kind: token.Ident, Text: "-", Span: lx.spanFrom(start)}
	case '"':
		return lx.scanString(start)
	}

	if isDecDigit(b) {
		return lx.scanNumber(start)
	}

	if isIdentStart(b) {
		return lx.scanIdentOrKeyword(start)
	}

	// Recovery: any other byte becomes a single-character Ident, decoded
	// as a full rune so a multi-byte UTF-8 character isn't split.
	r := lx.c.bumpRune()
	return token.Token{Kind: token.Ident, Text: string(r), Span: lx.spanFrom(start)}
}

func isDecDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isIdentStart(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}

func isIdentCont(b byte) bool {
	return isIdentStart(b) || isDecDigit(b)
}

// scanString handles `"…"` with no escapes. A newline or EOF before the
// closing quote is recovered as Ident("\""). Contents are consumed
// rune-wise so a multi-byte code point still counts as one column.
func (lx *Lexer) scanString(start mark) token.Token {
	lx.c.bumpByte() // opening quote
	var text []byte
	for {
		b := lx.c.peekByte()
		if b == '"' {
			lx.c.bumpByte()
			return token.Token{Kind: token.StrLit, Text: string(text), Span: lx.spanFrom(start)}
		}
		if lx.c.eof() || b == '\n' {
			return token.Token{Kind: token.Ident, Text: "\"", Span: lx.spanFrom(start)}
		}
		r := lx.c.bumpRune()
		text = append(text, string(r)...)
	}
}

// scanNumber handles ASCII-digit runs, parsed as signed 64-bit with
// overflow silently saturating to 0.
func (lx *Lexer) scanNumber(start mark) token.Token {
	var digits []byte
	for isDecDigit(lx.c.peekByte()) {
		digits = append(digits, lx.c.bumpByte())
	}
	v, overflow := parseSaturatingInt64(digits)
	if overflow {
		v = 0
	}
	return token.Token{Kind: token.IntLit, Int: v, Text: string(digits), Span: lx.spanFrom(start)}
}

// parseSaturatingInt64 parses an ASCII-digit-only byte slice as a signed
// 64-bit value, reporting overflow=true rather than panicking or wrapping
// if the magnitude exceeds int64's range. The digit run accumulates in
// uint64 (wide enough that only pathological inputs wrap it), then
// narrows to int64 through a checked conversion rather than a
// hand-rolled range comparison.
func parseSaturatingInt64(digits []byte) (value int64, overflow bool) {
	var acc uint64
	for _, d := range digits {
		digit := uint64(d - '0')
		if acc > (math.MaxUint64-digit)/10 {
			return 0, true
		}
		acc = acc*10 + digit
	}
	v, err := safecast.Conv[int64](acc)
	if err != nil {
		return 0, true
	}
	return v, false
}

// scanIdentOrKeyword handles ASCII-alphabetic-or-underscore runs,
// classifying the result against the closed keyword set.
func (lx *Lexer) scanIdentOrKeyword(start mark) token.Token {
	var text []byte
	for isIdentCont(lx.c.peekByte()) {
		text = append(text, lx.c.bumpByte())
	}
	lexeme := string(text)
	if kind, ok := token.LookupKeyword(lexeme); ok {
		return token.Token{Kind: kind, Text: lexeme, Span: lx.spanFrom(start)}
	}
	return token.Token{Kind: token.Ident, Text: lexeme, Span: lx.spanFrom(start)}
}
