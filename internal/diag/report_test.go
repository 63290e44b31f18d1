package diag_test

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"candy/internal/diag"
	"candy/internal/source"
)

func span(line, col uint32) source.Span {
	return source.SinglePoint("t.candy", line, col)
}

func TestIsOKIgnoresWarnings(t *testing.T) {
	rep := diag.NewReport()
	rep.Warning(diag.MainDuplicate, span(1, 1), "dup")
	if !rep.IsOK() {
		t.Fatal("a warnings-only report must be ok")
	}
	rep.Error(diag.MainMissing, span(1, 1), "missing")
	if rep.IsOK() || !rep.HasErrors() {
		t.Fatal("an error-carrying report must not be ok")
	}
}

func TestMergePreservesOrder(t *testing.T) {
	a := diag.NewReport()
	a.Error(diag.ParseExpectedFn, span(1, 1), "first")
	b := diag.NewReport()
	b.Error(diag.MainMissing, span(2, 1), "second")
	b.Warning(diag.MainDuplicate, span(3, 1), "third")

	a.Merge(b)
	got := a.Items()
	if len(got) != 3 {
		t.Fatalf("expected 3 diagnostics after merge, got %d", len(got))
	}
	if got[0].Message != "first" || got[1].Message != "second" || got[2].Message != "third" {
		t.Fatalf("merge reordered diagnostics: %+v", got)
	}

	a.Merge(nil)
	if a.Len() != 3 {
		t.Fatal("merging nil must be a no-op")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	rep := diag.NewReport()
	rep.Error(diag.UseAfterMove, span(2, 7), "'a' was already moved")
	rep.Warning(diag.MainDuplicate, span(4, 1), "a function named 'main' was already declared")
	rep.ErrorWithFix(diag.SecretCopy, span(5, 20),
		"secret value 'a' must be moved with move(...), not copied by bare name",
		diag.Fix{Replace: "let b = a;", With: "let b = move(a);"})

	raw, err := json.Marshal(rep)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded diag.Report
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(rep.Items(), decoded.Items()) {
		t.Fatalf("round trip changed the report:\nbefore %+v\nafter  %+v", rep.Items(), decoded.Items())
	}

	raw2, err := json.Marshal(&decoded)
	if err != nil {
		t.Fatalf("re-marshal: %v", err)
	}
	if string(raw) != string(raw2) {
		t.Fatalf("round trip changed the wire bytes:\n%s\nvs\n%s", raw, raw2)
	}
}

func TestFixOmittedNotNull(t *testing.T) {
	rep := diag.NewReport()
	rep.Error(diag.NameUnknown, span(1, 1), "unknown name 'x'")
	raw, err := json.Marshal(rep)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), "fix") {
		t.Fatalf("fix must be omitted when absent, got %s", raw)
	}
	if !strings.Contains(string(raw), `"severity":"Error"`) {
		t.Fatalf("severity must serialize as the string Error, got %s", raw)
	}
}

func TestSeverityUnmarshalRejectsUnknown(t *testing.T) {
	var s diag.Severity
	if err := json.Unmarshal([]byte(`"Fatal"`), &s); err == nil {
		t.Fatal("expected an error for an unknown severity string")
	}
}
