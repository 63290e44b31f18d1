package parser

import "candy/internal/source"

// coverSpans returns the smallest span covering every known (non-unknown,
// non-zero) span passed in, skipping any that came from a failed
// expectKind (which returns the zero Span rather than a real location).
// Using this instead of a bare chain of Span.Cover calls avoids a zero
// Span silently winning the cover when it happens to be the receiver.
func coverSpans(spans ...source.Span) source.Span {
	var result source.Span
	have := false
	for _, s := range spans {
		if s.IsUnknown() {
			continue
		}
		if !have {
			result = s
			have = true
			continue
		}
		result = result.Cover(s)
	}
	return result
}
