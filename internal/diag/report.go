package diag

import "candy/internal/source"

// Report aggregates diagnostics in insertion order: an append-only log
// owned by whichever stage produced it, later merged by the pipeline.
// Report has no capacity cap and never reorders or deduplicates its
// entries. Diagnostic order is exactly traversal order, and the
// checker's single-pass, deterministic walk already guarantees that, so
// resorting would only risk breaking it.
type Report struct {
	items []Diagnostic
}

// NewReport returns an empty Report.
func NewReport() *Report {
	return &Report{}
}

// Add appends one diagnostic.
func (r *Report) Add(d Diagnostic) {
	r.items = append(r.items, d)
}

// Error appends an error-severity diagnostic with no fix hint.
func (r *Report) Error(code Code, span source.Span, msg string) {
	r.Add(Diagnostic{Code: code, Severity: SevError, Message: msg, Span: span})
}

// Warning appends a warning-severity diagnostic with no fix hint.
func (r *Report) Warning(code Code, span source.Span, msg string) {
	r.Add(Diagnostic{Code: code, Severity: SevWarning, Message: msg, Span: span})
}

// ErrorWithFix appends an error-severity diagnostic carrying a fix hint.
func (r *Report) ErrorWithFix(code Code, span source.Span, msg string, fix Fix) {
	r.Add(Diagnostic{Code: code, Severity: SevError, Message: msg, Span: span, Fix: &fix})
}

// Items returns the diagnostics in insertion order. Callers must not
// mutate the returned slice.
func (r *Report) Items() []Diagnostic {
	return r.items
}

// Len returns the number of diagnostics recorded.
func (r *Report) Len() int {
	return len(r.items)
}

// HasErrors reports whether any diagnostic carries SevError.
func (r *Report) HasErrors() bool {
	for _, d := range r.items {
		if d.Severity == SevError {
			return true
		}
	}
	return false
}

// IsOK is true iff no diagnostic has Error severity.
func (r *Report) IsOK() bool {
	return !r.HasErrors()
}

// Merge appends other's diagnostics after r's own, preserving each side's
// internal order. Used by the pipeline to union parser and checker
// diagnostics.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	r.items = append(r.items, other.items...)
}
