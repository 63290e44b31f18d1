package parser_test

import (
	"testing"

	"candy/internal/ast"
	"candy/internal/diag"
	"candy/internal/parser"
	"candy/internal/source"
)

func parse(t *testing.T, src string) (*ast.Program, *diag.Report) {
	t.Helper()
	prog, rep := parser.ParseFile("t.candy", []byte(src))
	if prog == nil {
		t.Fatal("ParseFile returned a nil Program (parser totality violated)")
	}
	return prog, rep
}

func TestParsesCleanMain(t *testing.T) {
	prog, rep := parse(t, `fn main() -> Unit { return; }`)
	if rep.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", rep.Items())
	}
	if len(prog.Funcs) != 1 || prog.Funcs[0].Name.Name != "main" {
		t.Fatalf("expected one fn named main, got %+v", prog.Funcs)
	}
	if prog.Funcs[0].Ret.Kind != ast.TyUnit {
		t.Fatalf("expected Unit return type, got %+v", prog.Funcs[0].Ret)
	}
}

func TestMissingFnKeywordRecovers(t *testing.T) {
	prog, rep := parse(t, `main() -> Unit { return; }`)
	if len(prog.Funcs) != 1 {
		t.Fatalf("expected recovery to still produce one fn, got %d", len(prog.Funcs))
	}
	found := false
	for _, d := range rep.Items() {
		if d.Code == diag.ParseExpectedFn {
			found = true
			if d.Span.StartLine != 1 || d.Span.StartCol != 1 {
				t.Fatalf("expected diagnostic at 1:1, got %v", d.Span)
			}
		}
	}
	if !found {
		t.Fatalf("expected parse-expected-fn diagnostic, got %+v", rep.Items())
	}
}

func TestParsesParamsAndEffects(t *testing.T) {
	prog, rep := parse(t, `fn g(x: secret Int) -> Int effects(io, net) { return x; }`)
	if rep.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", rep.Items())
	}
	fn := prog.Funcs[0]
	if len(fn.Params) != 1 || fn.Params[0].Name.Name != "x" {
		t.Fatalf("expected one param x, got %+v", fn.Params)
	}
	if !fn.Params[0].Ty.IsSecret() {
		t.Fatalf("expected param type to be secret, got %+v", fn.Params[0].Ty)
	}
	if fn.Ret.Kind != ast.TyInt {
		t.Fatalf("expected Int return type, got %+v", fn.Ret)
	}
	if !fn.Effects.Has(ast.EffectIo) || !fn.Effects.Has(ast.EffectNet) {
		t.Fatalf("expected io and net effects, got %+v", fn.Effects)
	}
}

func TestParsesLetIfMoveAndCall(t *testing.T) {
	src := `fn main() -> Unit {
		let a: secret Int = 1;
		let b: secret Int = move(a);
		if (true) { log("x"); } else { return; }
		return;
	}`
	prog, rep := parse(t, src)
	if rep.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", rep.Items())
	}
	body := prog.Funcs[0].Body
	if len(body.Stmts) != 4 {
		t.Fatalf("expected 4 statements, got %d", len(body.Stmts))
	}
	let1, ok := body.Stmts[0].(*ast.LetStmt)
	if !ok {
		t.Fatalf("expected LetStmt, got %T", body.Stmts[0])
	}
	if _, ok := let1.Expr.(*ast.IntLitExpr); !ok {
		t.Fatalf("expected IntLitExpr RHS, got %T", let1.Expr)
	}
	let2 := body.Stmts[1].(*ast.LetStmt)
	mv, ok := let2.Expr.(*ast.MoveExpr)
	if !ok || mv.Name.Name != "a" {
		t.Fatalf("expected move(a), got %+v", let2.Expr)
	}
	ifStmt, ok := body.Stmts[2].(*ast.IfStmt)
	if !ok {
		t.Fatalf("expected IfStmt, got %T", body.Stmts[2])
	}
	if ifStmt.Else == nil {
		t.Fatalf("expected an else block")
	}
	call := ifStmt.Then.Stmts[0].(*ast.ExprStmt).Expr.(*ast.CallExpr)
	if call.Callee.Name != "log" || len(call.Args) != 1 {
		t.Fatalf("expected log(\"x\") call, got %+v", call)
	}
}

func TestParsesProtocol(t *testing.T) {
	src := `protocol P {
		state Init;
		final state Done;
		transition Init -> Done;
	}`
	prog, rep := parse(t, src)
	if rep.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", rep.Items())
	}
	if len(prog.Protocols) != 1 {
		t.Fatalf("expected one protocol, got %d", len(prog.Protocols))
	}
	proto := prog.Protocols[0]
	if len(proto.States) != 2 || len(proto.Transitions) != 1 {
		t.Fatalf("expected 2 states and 1 transition, got %+v", proto)
	}
	if !proto.States[1].IsFinal {
		t.Fatalf("expected second state to be final")
	}
}

func TestParserTotalityOnGarbage(t *testing.T) {
	inputs := []string{
		"",
		"{{{{",
		"fn fn fn",
		"protocol",
		"let let let;",
		") -> -> -> {",
		"\x00\x01\x02",
		"fn main() -> Unit { let a: secret Int = 1; if (a { move(; } return",
	}
	for _, src := range inputs {
		prog, rep := parse(t, src)
		if prog == nil {
			t.Fatalf("ParseFile(%q) returned nil Program", src)
		}

		fs := source.NewFileSet()
		bound := fs.AddVirtual("t.candy", []byte(src)).LineCount() + 1
		for _, sp := range collectSpans(prog) {
			if sp.IsUnknown() {
				continue
			}
			if sp.EndLine > bound {
				t.Fatalf("ParseFile(%q) produced out-of-bounds span %v (line count %d)", src, sp, bound-1)
			}
		}
		_ = rep
	}
}

// collectSpans gathers every span in the tree, down through statements
// and expressions.
func collectSpans(prog *ast.Program) []source.Span {
	spans := []source.Span{prog.Span}
	var fromExpr func(e ast.Expr)
	fromExpr = func(e ast.Expr) {
		if e == nil {
			return
		}
		spans = append(spans, e.Span())
		if call, ok := e.(*ast.CallExpr); ok {
			for _, a := range call.Args {
				fromExpr(a)
			}
		}
	}
	var fromBlock func(b *ast.Block)
	fromBlock = func(b *ast.Block) {
		if b == nil {
			return
		}
		spans = append(spans, b.Span)
		for _, stmt := range b.Stmts {
			spans = append(spans, stmt.Span())
			switch st := stmt.(type) {
			case *ast.LetStmt:
				fromExpr(st.Expr)
			case *ast.ReturnStmt:
				fromExpr(st.Expr)
			case *ast.IfStmt:
				fromExpr(st.Cond)
				fromBlock(st.Then)
				fromBlock(st.Else)
			case *ast.ExprStmt:
				fromExpr(st.Expr)
			}
		}
	}
	for _, fn := range prog.Funcs {
		spans = append(spans, fn.Span, fn.Name.Span, fn.Ret.Span)
		for _, p := range fn.Params {
			spans = append(spans, p.Span, p.Ty.Span)
		}
		fromBlock(fn.Body)
	}
	for _, proto := range prog.Protocols {
		spans = append(spans, proto.Span, proto.Name.Span)
		for _, sd := range proto.States {
			spans = append(spans, sd.Span, sd.Name.Span)
		}
		for _, tr := range proto.Transitions {
			spans = append(spans, tr.Span, tr.From.Span, tr.To.Span)
		}
	}
	return spans
}

func TestUnknownEffectNameIsDiagnosed(t *testing.T) {
	_, rep := parse(t, `fn g() -> Unit effects(bogus) { return; }`)
	found := false
	for _, d := range rep.Items() {
		if d.Code == diag.ParseUnknownEffect {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected parse-unknown-effect diagnostic, got %+v", rep.Items())
	}
}
