// Package source holds loaded files and the spans that point into them.
package source

import "fmt"

// Span is a contiguous range within a single file, expressed in 1-based
// line/column coordinates. The zero value is the "unknown" span used when
// no better location is available.
type Span struct {
	File      string
	StartLine uint32
	StartCol  uint32
	EndLine   uint32
	EndCol    uint32
}

// Unknown returns the zero-valued span for a given file name.
func Unknown(file string) Span {
	return Span{File: file}
}

// IsUnknown reports whether s carries no real position information.
func (s Span) IsUnknown() bool {
	return s.StartLine == 0 && s.StartCol == 0 && s.EndLine == 0 && s.EndCol == 0
}

// SinglePoint builds a zero-width span at one line/col.
func SinglePoint(file string, line, col uint32) Span {
	return Span{File: file, StartLine: line, StartCol: col, EndLine: line, EndCol: col}
}

// Cover returns the smallest span that contains both s and other. If the
// spans belong to different files, s is returned unchanged.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	cov := s
	if before(other.StartLine, other.StartCol, cov.StartLine, cov.StartCol) {
		cov.StartLine, cov.StartCol = other.StartLine, other.StartCol
	}
	if before(cov.EndLine, cov.EndCol, other.EndLine, other.EndCol) {
		cov.EndLine, cov.EndCol = other.EndLine, other.EndCol
	}
	return cov
}

func before(l1, c1, l2, c2 uint32) bool {
	if l1 != l2 {
		return l1 < l2
	}
	return c1 < c2
}

func (s Span) String() string {
	return fmt.Sprintf("%s:%d:%d-%d:%d", s.File, s.StartLine, s.StartCol, s.EndLine, s.EndCol)
}
