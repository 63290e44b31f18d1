// Package lexer turns source bytes into a token stream. It is total: every
// input, however malformed, produces a finite stream ending in exactly one
// Eof token, by substituting single-char recovery tokens instead of
// failing.
package lexer

import "unicode/utf8"

// cursor tracks a byte offset into src alongside the 1-based line/column
// position that offset corresponds to. Column advances per rune, not per
// byte, so a multi-byte UTF-8 code point still counts as one column.
type cursor struct {
	src  []byte
	off  int
	line uint32
	col  uint32
}

func newCursor(src []byte) cursor {
	return cursor{src: src, off: 0, line: 1, col: 1}
}

func (c *cursor) eof() bool {
	return c.off >= len(c.src)
}

// peekByte returns the byte at the cursor, or 0 at EOF.
func (c *cursor) peekByte() byte {
	if c.eof() {
		return 0
	}
	return c.src[c.off]
}

// peekRune decodes the rune at the cursor without consuming it.
func (c *cursor) peekRune() (rune, int) {
	if c.eof() {
		return 0, 0
	}
	r, size := utf8.DecodeRune(c.src[c.off:])
	return r, size
}

// bumpByte consumes exactly one byte, advancing line/col for it. Used for
// ASCII punctuation and digits where byte-at-a-time consumption is safe.
func (c *cursor) bumpByte() byte {
	if c.eof() {
		return 0
	}
	b := c.src[c.off]
	c.off++
	if b == '\n' {
		c.line++
		c.col = 1
	} else {
		c.col++
	}
	return b
}

// bumpRune consumes one full rune (which may be several bytes), advancing
// col by exactly one regardless of its byte width.
func (c *cursor) bumpRune() rune {
	r, size := c.peekRune()
	if size == 0 {
		return 0
	}
	c.off += size
	if r == '\n' {
		c.line++
		c.col = 1
	} else {
		c.col++
	}
	return r
}

// mark is a saved (line, col) pair used to build a span once a token's
// extent is known.
type mark struct {
	line, col uint32
}

func (c *cursor) mark() mark {
	return mark{line: c.line, col: c.col}
}
