package ast

import "candy/internal/source"

// Ident is a name occurrence with its own span, distinct from the span of
// whatever construct it names.
type Ident struct {
	Name string
	Span source.Span
}

// Program is the root of the tree: every top-level function and protocol
// declaration, in source order.
type Program struct {
	Funcs     []*FnDecl
	Protocols []*ProtocolDecl
	Span      source.Span
}

// Param is a single function parameter. The grammar accepts at most
// one; Params may therefore hold 0 or 1 entries.
type Param struct {
	Name Ident
	Ty   Type
	Span source.Span
}

// FnDecl is a function declaration: name, optional parameter, return type,
// effect row, and body.
type FnDecl struct {
	Name    Ident
	Params  []Param
	Ret     Type
	Effects EffectSet
	Body    *Block
	Span    source.Span
}

// Block is a brace-delimited statement sequence.
type Block struct {
	Stmts []Stmt
	Span  source.Span
}

// Stmt is the interface implemented by every statement variant.
type Stmt interface {
	stmtNode()
	Span() source.Span
}

// LetStmt binds a name to the value of an expression, with an optional
// type annotation.
type LetStmt struct {
	Name Ident
	Ty   *Type // nil when no annotation is present
	Expr Expr
	Sp   source.Span
}

func (*LetStmt) stmtNode()           {}
func (s *LetStmt) Span() source.Span { return s.Sp }

// ReturnStmt returns from the enclosing function, optionally with a value.
type ReturnStmt struct {
	Expr Expr // nil when bare `return;`
	Sp   source.Span
}

func (*ReturnStmt) stmtNode()           {}
func (s *ReturnStmt) Span() source.Span { return s.Sp }

// IfStmt is a conditional with a mandatory then-block and an optional
// else-block. Both branches share the enclosing function's environment
// — there is no per-branch scoping.
type IfStmt struct {
	Cond Expr
	Then *Block
	Else *Block // nil when no else clause
	Sp   source.Span
}

func (*IfStmt) stmtNode()           {}
func (s *IfStmt) Span() source.Span { return s.Sp }

// ExprStmt evaluates an expression purely for its effects, discarding the
// value.
type ExprStmt struct {
	Expr Expr
	Sp   source.Span
}

func (*ExprStmt) stmtNode()           {}
func (s *ExprStmt) Span() source.Span { return s.Sp }

// Expr is the interface implemented by every expression variant.
type Expr interface {
	exprNode()
	Span() source.Span
}

// IntLitExpr is an integer literal.
type IntLitExpr struct {
	Value int64
	Sp    source.Span
}

func (*IntLitExpr) exprNode()           {}
func (e *IntLitExpr) Span() source.Span { return e.Sp }

// BoolLitExpr is `true` or `false`, recognized at the parser level from an
// identifier lexeme.
type BoolLitExpr struct {
	Value bool
	Sp    source.Span
}

func (*BoolLitExpr) exprNode()           {}
func (e *BoolLitExpr) Span() source.Span { return e.Sp }

// StrLitExpr is a string literal. It lowers to Unknown in the checker:
// strings have no first-class type on the surface.
type StrLitExpr struct {
	Value string
	Sp    source.Span
}

func (*StrLitExpr) exprNode()           {}
func (e *StrLitExpr) Span() source.Span { return e.Sp }

// VarExpr reads a binding by bare name. Reading a secret binding this
// way is a linearity event (copied_secret).
type VarExpr struct {
	Name Ident
	Sp   source.Span
}

func (*VarExpr) exprNode()           {}
func (e *VarExpr) Span() source.Span { return e.Sp }

// MoveExpr transfers ownership of a binding via `move(x)`.
type MoveExpr struct {
	Name Ident
	Sp   source.Span
}

func (*MoveExpr) exprNode()           {}
func (e *MoveExpr) Span() source.Span { return e.Sp }

// CallExpr invokes either an intrinsic (log/now/rand) or a user-declared
// function by name.
type CallExpr struct {
	Callee Ident
	Args   []Expr
	Sp     source.Span
}

func (*CallExpr) exprNode()           {}
func (e *CallExpr) Span() source.Span { return e.Sp }

// StateDecl is one `state`/`final state` declaration inside a protocol.
type StateDecl struct {
	Name    Ident
	IsFinal bool
	Span    source.Span
}

// TransitionDecl is one `transition From -> To;` declaration.
type TransitionDecl struct {
	From Ident
	To   Ident
	Span source.Span
}

// ProtocolDecl is a top-level `protocol Name { ... }` declaration.
type ProtocolDecl struct {
	Name        Ident
	States      []StateDecl
	Transitions []TransitionDecl
	Span        source.Span
}
