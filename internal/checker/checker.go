package checker

import (
	"candy/internal/ast"
	"candy/internal/diag"
)

// checker holds the state shared across the three analysis phases: the
// program being walked, the report every phase accumulates into, and
// the call-effects table Phase C's first pass builds for call-site
// effect inference.
type checker struct {
	prog    *ast.Program
	rep     *diag.Report
	effects map[string]ast.EffectSet
}

// Check runs the full three-phase analysis over prog, returning one
// Report with every diagnostic the phases produced, in phase order.
func Check(prog *ast.Program) *diag.Report {
	c := &checker{prog: prog, rep: diag.NewReport()}
	c.checkMainSignature()
	c.checkProtocols()
	c.checkFunctions()
	return c.rep
}
