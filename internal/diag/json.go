package diag

import (
	"encoding/json"

	"candy/internal/source"
)

// spanJSON mirrors the wire span object.
type spanJSON struct {
	File      string `json:"file"`
	StartLine uint32 `json:"start_line"`
	StartCol  uint32 `json:"start_col"`
	EndLine   uint32 `json:"end_line"`
	EndCol    uint32 `json:"end_col"`
}

type fixJSON struct {
	Replace string `json:"replace"`
	With    string `json:"with"`
}

type diagnosticJSON struct {
	Code     Code     `json:"code"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Span     spanJSON `json:"span"`
	Fix      *fixJSON `json:"fix,omitempty"`
}

type reportJSON struct {
	Diagnostics []diagnosticJSON `json:"diagnostics"`
}

// MarshalJSON renders the report as the stable wire schema:
// {"diagnostics":[{code, severity, message, span, fix?}, ...]}. fix is
// omitted entirely when absent, never emitted as null.
func (r *Report) MarshalJSON() ([]byte, error) {
	out := reportJSON{Diagnostics: make([]diagnosticJSON, 0, len(r.items))}
	for _, d := range r.items {
		dj := diagnosticJSON{
			Code:     d.Code,
			Severity: d.Severity,
			Message:  d.Message,
			Span: spanJSON{
				File:      d.Span.File,
				StartLine: d.Span.StartLine,
				StartCol:  d.Span.StartCol,
				EndLine:   d.Span.EndLine,
				EndCol:    d.Span.EndCol,
			},
		}
		if d.Fix != nil {
			dj.Fix = &fixJSON{Replace: d.Fix.Replace, With: d.Fix.With}
		}
		out.Diagnostics = append(out.Diagnostics, dj)
	}
	return json.Marshal(out)
}

// UnmarshalJSON parses the wire schema back into a Report, so a consumer
// holding a serialized report can reconstruct an equivalent one.
func (r *Report) UnmarshalJSON(data []byte) error {
	var in reportJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	r.items = nil
	for _, dj := range in.Diagnostics {
		d := Diagnostic{
			Code:     dj.Code,
			Severity: dj.Severity,
			Message:  dj.Message,
			Span: source.Span{
				File:      dj.Span.File,
				StartLine: dj.Span.StartLine,
				StartCol:  dj.Span.StartCol,
				EndLine:   dj.Span.EndLine,
				EndCol:    dj.Span.EndCol,
			},
		}
		if dj.Fix != nil {
			d.Fix = &Fix{Replace: dj.Fix.Replace, With: dj.Fix.With}
		}
		r.items = append(r.items, d)
	}
	return nil
}
