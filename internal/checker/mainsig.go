package checker

import (
	"candy/internal/ast"
	"candy/internal/diag"
)

// checkMainSignature is Phase A: a function named `main` is required,
// and the first one must take zero parameters and return Unit. A second
// `main` is a warning — only the second; further duplicates are
// silent.
func (c *checker) checkMainSignature() {
	var mains []*ast.FnDecl
	for _, fn := range c.prog.Funcs {
		if fn.Name.Name == "main" {
			mains = append(mains, fn)
		}
	}

	if len(mains) == 0 {
		c.rep.Error(diag.MainMissing, c.prog.Span, "no function named 'main' was found")
		return
	}

	if len(mains) > 1 {
		c.rep.Warning(diag.MainDuplicate, mains[1].Span, "a function named 'main' was already declared")
	}

	main := mains[0]
	if len(main.Params) != 0 {
		c.rep.Error(diag.MainInvalidSignature, main.Span, "'main' must take no parameters")
	}
	if ret, _ := lowerType(main.Ret); ret != LUnit {
		c.rep.Error(diag.MainInvalidSignature, main.Ret.Span, "'main' must return Unit")
	}
}
