package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"candy/internal/diag"
)

// renderHuman prints one line per diagnostic — severity, code, message,
// span — followed by an indented fix: line when a fix hint is present.
// A report with no error-severity diagnostic prints the single line
// "ok" instead; its warnings are not listed. Colorizing is purely cosmetic: the text emitted with colorOn=false is
// byte-for-byte what a pipe or file redirect sees.
func renderHuman(w io.Writer, rep *diag.Report, colorOn bool) {
	prev := color.NoColor
	defer func() { color.NoColor = prev }()
	color.NoColor = !colorOn

	errorColor := color.New(color.FgRed, color.Bold)
	warnColor := color.New(color.FgYellow, color.Bold)
	codeColor := color.New(color.FgMagenta)
	fixColor := color.New(color.Faint)

	if rep.IsOK() {
		fmt.Fprintln(w, "ok")
		return
	}

	for _, d := range rep.Items() {
		sevText := errorColor.Sprint(d.Severity.String())
		if d.Severity == diag.SevWarning {
			sevText = warnColor.Sprint(d.Severity.String())
		}
		fmt.Fprintf(w, "%s: %s %s: %s\n", d.Span.String(), sevText, codeColor.Sprint(string(d.Code)), d.Message)
		if d.Fix != nil {
			fmt.Fprintf(w, "  %s %q -> %q\n", fixColor.Sprint("fix:"), d.Fix.Replace, d.Fix.With)
		}
	}
}

// applyMaxDiagnostics caps the diagnostics a report renders/serializes
// to max, leaving the underlying Report untouched; max<=0 means
// unlimited.
func applyMaxDiagnostics(rep *diag.Report, max int) *diag.Report {
	if max <= 0 || rep.Len() <= max {
		return rep
	}
	capped := diag.NewReport()
	for _, d := range rep.Items()[:max] {
		capped.Add(d)
	}
	return capped
}
