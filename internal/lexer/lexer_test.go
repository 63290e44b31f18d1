package lexer_test

import (
	"testing"

	"candy/internal/lexer"
	"candy/internal/source"
	"candy/internal/token"
)

func lexAll(t *testing.T, src string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	f := fs.AddVirtual("t.candy", []byte(src))
	return lexer.LexAll(f)
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tk := range toks {
		out[i] = tk.Kind
	}
	return out
}

func TestLexAllEndsInExactlyOneEOF(t *testing.T) {
	toks := lexAll(t, "fn main() -> Unit { return; }")
	if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
		t.Fatalf("expected stream to end in Eof, got %v", kinds(toks))
	}
	for _, tk := range toks[:len(toks)-1] {
		if tk.Kind == token.EOF {
			t.Fatalf("Eof appeared before the end of the stream: %v", kinds(toks))
		}
	}
}

func TestKeywordsAndPunctuation(t *testing.T) {
	toks := lexAll(t, "fn let return if else secret effects protocol state transition final ( ) { } : ; , = ->")
	want := []token.Kind{
		token.KwFn, token.KwLet, token.KwReturn, token.KwIf, token.KwElse,
		token.KwSecret, token.KwEffects, token.KwProtocol, token.KwState,
		token.KwTransition, token.KwFinal,
		token.LParen, token.RParen, token.LBrace, token.RBrace,
		token.Colon, token.Semi, token.Comma, token.Eq, token.Arrow,
		token.EOF,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("token count mismatch: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestContextualWordsLexAsIdent(t *testing.T) {
	toks := lexAll(t, "true false move io net time rand")
	for _, tk := range toks[:len(toks)-1] {
		if tk.Kind != token.Ident {
			t.Fatalf("expected contextual word %q to lex as Ident, got %v", tk.Text, tk.Kind)
		}
	}
}

func TestLoneMinusRecoversAsIdent(t *testing.T) {
	toks := lexAll(t, "- ->")
	if toks[0].Kind != token.Ident || toks[0].Text != "-" {
		t.Fatalf("expected lone '-' to recover as Ident(\"-\"), got %v", toks[0])
	}
	if toks[1].Kind != token.Arrow {
		t.Fatalf("expected '->' to lex as Arrow, got %v", toks[1])
	}
}

func TestUnterminatedStringRecoversAsIdent(t *testing.T) {
	toks := lexAll(t, "\"abc\nlet")
	if toks[0].Kind != token.Ident || toks[0].Text != "\"" {
		t.Fatalf("expected unterminated string to recover as Ident(\"\\\"\"), got %v", toks[0])
	}
}

func TestIntLiteralOverflowSaturatesToZero(t *testing.T) {
	toks := lexAll(t, "99999999999999999999999999")
	if toks[0].Kind != token.IntLit || toks[0].Int != 0 {
		t.Fatalf("expected overflowing int literal to saturate to 0, got %v", toks[0])
	}
}

func TestSpanPositionsAreOrdered(t *testing.T) {
	toks := lexAll(t, "fn main\n() -> Unit {}")
	for _, tk := range toks {
		if tk.Span.StartLine > tk.Span.EndLine {
			t.Fatalf("token %v has start_line > end_line", tk)
		}
		if tk.Span.StartLine == tk.Span.EndLine && tk.Span.StartCol > tk.Span.EndCol {
			t.Fatalf("token %v has start_col > end_col on the same line", tk)
		}
	}
}

func TestNewlineResetsColumnAndAdvancesLine(t *testing.T) {
	toks := lexAll(t, "a\nb")
	if toks[0].Span.StartLine != 1 || toks[0].Span.StartCol != 1 {
		t.Fatalf("expected first ident at 1:1, got %v", toks[0].Span)
	}
	if toks[1].Span.StartLine != 2 || toks[1].Span.StartCol != 1 {
		t.Fatalf("expected second ident at 2:1, got %v", toks[1].Span)
	}
}

func TestUnknownByteRecoversAsSingleCharIdent(t *testing.T) {
	toks := lexAll(t, "@")
	if toks[0].Kind != token.Ident || toks[0].Text != "@" {
		t.Fatalf("expected '@' to recover as Ident(\"@\"), got %v", toks[0])
	}
}

func TestMultiByteRuneInStringCountsAsOneColumn(t *testing.T) {
	toks := lexAll(t, `"é";`)
	if toks[0].Kind != token.StrLit || toks[0].Text != "é" {
		t.Fatalf("expected StrLit(é), got %v", toks[0])
	}
	if toks[0].Span.EndCol != 4 {
		t.Fatalf("expected string literal to end at column 4, got %v", toks[0].Span)
	}
	if toks[1].Span.StartCol != 4 {
		t.Fatalf("expected ';' at column 4, got %v", toks[1].Span)
	}
}

func TestMultiByteRuneCountsAsOneColumn(t *testing.T) {
	toks := lexAll(t, "é;")
	if toks[0].Span.StartCol != 1 || toks[0].Span.EndCol != 2 {
		t.Fatalf("expected multi-byte rune to occupy exactly one column, got %v", toks[0].Span)
	}
	if toks[1].Span.StartCol != 2 {
		t.Fatalf("expected token after multi-byte rune at column 2, got %v", toks[1].Span)
	}
}
