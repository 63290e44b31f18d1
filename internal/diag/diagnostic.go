package diag

import "candy/internal/source"

// Fix is an advisory patch hint: a (replace, with) string pair. It is
// never applied automatically — fixes are textual suggestions surfaced
// to a human or an LSP-like client, not mechanical rewrites.
type Fix struct {
	Replace string
	With    string
}

// Diagnostic captures one issue: a stable code, severity, human message,
// the span it applies to, and an optional fix hint.
type Diagnostic struct {
	Code     Code
	Severity Severity
	Message  string
	Span     source.Span
	Fix      *Fix
}
