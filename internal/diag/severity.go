// Package diag is the stable diagnostic model shared by every later pipeline
// stage: a closed code set, two severities, and an ordered report that
// serializes to the JSON schema agent-mode tooling depends on.
package diag

import (
	"encoding/json"
	"fmt"
)

// Severity distinguishes diagnostics that fail a check from those that
// merely inform. Candy has no Info level — only Error and Warning
// appear in the closed code set: every checker code is an error except
// main-duplicate, which is a warning.
type Severity uint8

const (
	SevWarning Severity = iota
	SevError
)

// String renders the exact wire strings the JSON schema requires.
func (s Severity) String() string {
	switch s {
	case SevError:
		return "Error"
	case SevWarning:
		return "Warning"
	default:
		return "Warning"
	}
}

// MarshalJSON renders Severity as its wire string rather than a number.
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON parses the exact wire strings back into a Severity.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	switch str {
	case "Error":
		*s = SevError
	case "Warning":
		*s = SevWarning
	default:
		return fmt.Errorf("unknown severity %q", str)
	}
	return nil
}
