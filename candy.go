// Package candy is the library surface of the checker: a pure pipeline
// from source text to a diagnostic Report, composed from the lexer,
// parser, and checker packages. Parse failures short-circuit the
// pipeline; if parsing produced no error, checking always runs and its
// diagnostics are appended.
package candy

import (
	"candy/internal/ast"
	"candy/internal/checker"
	"candy/internal/diag"
	"candy/internal/parser"
)

// ParseFile parses src under path, returning the resulting AST (always
// non-nil) and a Report of every parse-time diagnostic.
func ParseFile(path string, src []byte) (*ast.Program, *diag.Report) {
	return parser.ParseFile(path, src)
}

// Typecheck runs the three checker phases over prog, returning a Report
// of every semantic diagnostic.
func Typecheck(prog *ast.Program) *diag.Report {
	return checker.Check(prog)
}

// Check runs the composed pipeline over src: parse, then — only if
// parsing produced no error-severity diagnostic — typecheck, appending
// the checker's diagnostics after the parser's. A parse failure
// short-circuits: the returned Report contains only the parser's
// diagnostics and the checker never runs.
func Check(path string, src []byte) *diag.Report {
	prog, rep := ParseFile(path, src)
	if rep.HasErrors() {
		return rep
	}
	rep.Merge(Typecheck(prog))
	return rep
}
