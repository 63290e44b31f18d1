package checker

import (
	"fmt"

	"candy/internal/ast"
	"candy/internal/diag"
	"candy/internal/source"
)

// varInfo is one environment entry: a variable's lowered type, whether
// it is secret (from its `secret` annotation, or from its initializer
// when the binding has no annotation), and a latching "moved"
// flag. Latching means once true it stays true for the rest of the
// function body traversal, including into both arms of an `if` — a
// known, intentionally-preserved limitation rather than a per-branch
// join.
type varInfo struct {
	ty     LType
	secret bool
	moved  bool
}

// fnChecker carries the per-function state Phase C threads through one
// body traversal: the shared checker (for the report and the call-effect
// table), the function-flat variable environment, and the enclosing
// function's name/effects/return type needed to validate returns and
// synthesize effect-row fix hints.
type fnChecker struct {
	c          *checker
	env        map[string]*varInfo
	name       string
	curEffects ast.EffectSet
	retType    ast.Type
	retStr     string
}

// checkFunctions is Phase C: it first collects every declared
// function's effect row for call-site inference, then typechecks each
// function body in turn.
func (c *checker) checkFunctions() {
	c.effects = make(map[string]ast.EffectSet, len(c.prog.Funcs))
	for _, fn := range c.prog.Funcs {
		c.effects[fn.Name.Name] = fn.Effects
	}
	for _, fn := range c.prog.Funcs {
		c.checkFunction(fn)
	}
}

func (c *checker) checkFunction(fn *ast.FnDecl) {
	fc := &fnChecker{
		c:          c,
		env:        make(map[string]*varInfo, len(fn.Params)),
		name:       fn.Name.Name,
		curEffects: fn.Effects,
		retType:    fn.Ret,
		retStr:     fn.Ret.String(),
	}

	for _, param := range fn.Params {
		ty, secret := lowerType(param.Ty)
		if ty == LUnknown {
			c.rep.Error(diag.TypeUnknown, param.Ty.Span, "parameter '"+param.Name.Name+"' has an unknown type")
		}
		fc.env[param.Name.Name] = &varInfo{ty: ty, secret: secret}
	}

	fc.walkBlock(fn.Body)
}

// walkBlock walks a block's statements in order, sharing fc's
// environment across both arms of any nested `if`.
func (fc *fnChecker) walkBlock(b *ast.Block) {
	if b == nil {
		return
	}
	for _, stmt := range b.Stmts {
		fc.walkStmt(stmt)
	}
}

func (fc *fnChecker) walkStmt(stmt ast.Stmt) {
	switch st := stmt.(type) {
	case *ast.LetStmt:
		fc.walkLet(st)
	case *ast.ReturnStmt:
		fc.walkReturn(st)
	case *ast.IfStmt:
		fc.walkIf(st)
	case *ast.ExprStmt:
		fc.typeExpr(st.Expr)
	}
}

func (fc *fnChecker) walkLet(st *ast.LetStmt) {
	rhs := fc.typeExpr(st.Expr)

	var bindTy LType
	var bindSecret bool
	if st.Ty != nil {
		ty, secret := lowerType(*st.Ty)
		if ty == LUnknown {
			fc.c.rep.Error(diag.TypeUnknown, st.Ty.Span, "type annotation does not resolve to a known type")
		} else if typesDiffer(ty, rhs.Ty) {
			fc.c.rep.Error(diag.TypeMismatch, st.Ty.Span, "annotated type does not match the initializer's type")
		}
		bindTy, bindSecret = ty, secret
	} else {
		bindTy, bindSecret = rhs.Ty, rhs.IsSecret
	}

	if rhs.IsSecret && rhs.CopiedSecret {
		fix := diag.Fix{
			Replace: "let " + st.Name.Name + " = " + rhs.NameHint + ";",
			With:    "let " + st.Name.Name + " = move(" + rhs.NameHint + ");",
		}
		fc.c.rep.ErrorWithFix(diag.SecretCopy, st.Expr.Span(),
			"secret value '"+rhs.NameHint+"' must be moved with move(...), not copied by bare name", fix)
	}

	fc.env[st.Name.Name] = &varInfo{ty: bindTy, secret: bindSecret}
}

func (fc *fnChecker) walkReturn(st *ast.ReturnStmt) {
	retTy, _ := lowerType(fc.retType)

	var got *ExprTy
	if st.Expr != nil {
		ety := fc.typeExpr(st.Expr)
		got = &ety
	}

	switch {
	case retTy == LUnit && got == nil:
		// ok
	case retTy == LUnit && got != nil:
		fc.c.rep.Error(diag.ReturnMismatch, st.Sp, "return value provided but function returns Unit")
	case retTy != LUnit && got == nil:
		fc.c.rep.Error(diag.ReturnMismatch, st.Sp, "missing return value, expected "+retTy.String())
	default:
		if typesDiffer(retTy, got.Ty) {
			fc.c.rep.Error(diag.ReturnMismatch, st.Expr.Span(), "return type does not match, expected "+retTy.String())
		}
	}
}

func (fc *fnChecker) walkIf(st *ast.IfStmt) {
	cond := fc.typeExpr(st.Cond)
	if cond.Ty != LUnknown && cond.Ty != LBool {
		fc.c.rep.Error(diag.IfCondNotBool, st.Cond.Span(), "if condition must be Bool")
	}
	if cond.IsSecret {
		fc.c.rep.Error(diag.SecretBranch, st.Cond.Span(), "a secret value cannot be used as an if condition")
	}
	fc.walkBlock(st.Then)
	fc.walkBlock(st.Else)
}

// typeExpr types one expression, producing the ExprTy the surrounding
// statement needs.
func (fc *fnChecker) typeExpr(e ast.Expr) ExprTy {
	switch ex := e.(type) {
	case *ast.IntLitExpr:
		return ExprTy{Ty: LInt}
	case *ast.BoolLitExpr:
		return ExprTy{Ty: LBool}
	case *ast.StrLitExpr:
		return ExprTy{Ty: LUnknown}
	case *ast.VarExpr:
		return fc.typeVar(ex)
	case *ast.MoveExpr:
		return fc.typeMove(ex)
	case *ast.CallExpr:
		return fc.typeCall(ex)
	default:
		return ExprTy{Ty: LUnknown}
	}
}

func (fc *fnChecker) typeVar(ex *ast.VarExpr) ExprTy {
	v, ok := fc.env[ex.Name.Name]
	if !ok {
		fc.c.rep.Error(diag.NameUnknown, ex.Name.Span, "unknown name '"+ex.Name.Name+"'")
		return ExprTy{Ty: LUnknown}
	}
	if v.moved {
		fc.c.rep.Error(diag.UseAfterMove, ex.Sp, "'"+ex.Name.Name+"' was already moved")
		return ExprTy{Ty: LUnknown}
	}
	return ExprTy{Ty: v.ty, IsSecret: v.secret, CopiedSecret: v.secret, NameHint: ex.Name.Name}
}

func (fc *fnChecker) typeMove(ex *ast.MoveExpr) ExprTy {
	v, ok := fc.env[ex.Name.Name]
	if !ok {
		fc.c.rep.Error(diag.NameUnknown, ex.Name.Span, "unknown name '"+ex.Name.Name+"'")
		return ExprTy{Ty: LUnknown}
	}
	if v.moved {
		fc.c.rep.Error(diag.UseAfterMove, ex.Sp, "'"+ex.Name.Name+"' was already moved")
		return ExprTy{Ty: LUnknown}
	}
	v.moved = true
	return ExprTy{Ty: v.ty, IsSecret: v.secret, NameHint: ex.Name.Name}
}

// intrinsic describes one built-in callee's fixed arity, required
// effect, and return type.
type intrinsic struct {
	arity  int
	effect ast.Effect
	ret    LType
}

var intrinsics = map[string]intrinsic{
	"log":  {arity: 1, effect: ast.EffectIo, ret: LUnit},
	"now":  {arity: 0, effect: ast.EffectTime, ret: LInt},
	"rand": {arity: 0, effect: ast.EffectRand, ret: LInt},
}

func (fc *fnChecker) typeCall(ex *ast.CallExpr) ExprTy {
	if in, ok := intrinsics[ex.Callee.Name]; ok {
		if len(ex.Args) != in.arity {
			fc.c.rep.Error(diag.CallArity, ex.Sp,
				fmt.Sprintf("'%s' expects %d argument(s), got %d", ex.Callee.Name, in.arity, len(ex.Args)))
		}
		fc.requireEffect(ex.Sp, ex.Callee.Name, in.effect)
		for _, a := range ex.Args {
			fc.typeExpr(a)
		}
		return ExprTy{Ty: in.ret}
	}

	needed, known := fc.c.effects[ex.Callee.Name]
	if !known {
		fc.c.rep.Error(diag.NameUnknown, ex.Callee.Span, "unknown function '"+ex.Callee.Name+"'")
	} else {
		fc.requireEffects(ex.Sp, ex.Callee.Name, needed)
	}
	for _, a := range ex.Args {
		fc.typeExpr(a)
	}
	return ExprTy{Ty: LUnknown}
}

// effectFixHint builds the "augment the signature" fix advisory shared
// by undeclared-effect and effect-leak: the replace/with pair always
// rewrites fc's own signature line, naming the union of its current
// effects and whatever the call site still needs, alphabetically
// sorted.
func (fc *fnChecker) effectFixHint(union ast.EffectSet) diag.Fix {
	return diag.Fix{
		Replace: "fn " + fc.name + "(...) -> " + fc.retStr + " {",
		With:    "fn " + fc.name + "(...) -> " + fc.retStr + " effects(" + union.FormatEffectsClause() + ") {",
	}
}

// requireEffect checks a single intrinsic-required effect against fc's
// declared effect row, emitting undeclared-effect on a miss.
func (fc *fnChecker) requireEffect(span source.Span, calleeDesc string, need ast.Effect) {
	if fc.curEffects.Has(need) {
		return
	}
	union := fc.curEffects.Union(ast.NewEffectSet(need))
	msg := "call to '" + calleeDesc + "' requires effect '" + need.String() + "', which '" + fc.name + "' does not declare"
	fc.c.rep.ErrorWithFix(diag.UndeclaredEffect, span, msg, fc.effectFixHint(union))
}

// requireEffects checks a user function call's full needed effect set
// against fc's declared effect row, emitting effect-leak listing the
// full needed set on a miss.
func (fc *fnChecker) requireEffects(span source.Span, callee string, need ast.EffectSet) {
	missing := need.Minus(fc.curEffects)
	if missing.Empty() {
		return
	}
	union := fc.curEffects.Union(need)
	msg := "call to '" + callee + "' requires effects " + need.FormatList() + ", which '" + fc.name + "' does not declare"
	fc.c.rep.ErrorWithFix(diag.EffectLeak, span, msg, fc.effectFixHint(union))
}
