package diag

// Code is a stable, kebab-case machine identifier. Unlike the numeric
// code spaces some checkers use internally, Candy's wire contract *is*
// the kebab-case string, so Code is defined directly as that string
// rather than as an enum rendered through a lookup table.
type Code string

// Parser codes (closed set).
const (
	ParseExpectedTopLevel Code = "parse-expected-top-level"
	ParseExpectedFn       Code = "parse-expected-fn"
	ParseExpectedIdent    Code = "parse-expected-ident"
	ParseExpectedLParen   Code = "parse-expected-lparen"
	ParseExpectedRParen   Code = "parse-expected-rparen"
	ParseExpectedLBrace   Code = "parse-expected-lbrace"
	ParseExpectedRBrace   Code = "parse-expected-rbrace"
	ParseExpectedArrow    Code = "parse-expected-arrow"
	ParseExpectedColon    Code = "parse-expected-colon"
	ParseExpectedEq       Code = "parse-expected-eq"
	ParseExpectedSemi     Code = "parse-expected-semi"
	ParseExpectedType     Code = "parse-expected-type"
	ParseExpectedEffect   Code = "parse-expected-effect"
	ParseUnknownEffect    Code = "parse-unknown-effect"
	ParseExpectedState    Code = "parse-expected-state"
	ParseUnexpectedToken  Code = "parse-unexpected-token"
)

// Checker codes (closed set).
const (
	MainMissing                 Code = "main-missing"
	MainDuplicate               Code = "main-duplicate"
	MainInvalidSignature        Code = "main-invalid-signature"
	TypeUnknown                 Code = "type-unknown"
	TypeMismatch                Code = "type-mismatch"
	ReturnMismatch              Code = "return-mismatch"
	IfCondNotBool               Code = "if-cond-not-bool"
	NameUnknown                 Code = "name-unknown"
	SecretCopy                  Code = "secret-copy"
	SecretBranch                Code = "secret-branch"
	UseAfterMove                Code = "use-after-move"
	CallArity                   Code = "call-arity"
	UndeclaredEffect            Code = "undeclared-effect"
	EffectLeak                  Code = "effect-leak"
	ProtocolDuplicateState      Code = "protocol-duplicate-state"
	ProtocolEmpty               Code = "protocol-empty"
	ProtocolMissingInit         Code = "protocol-missing-init"
	ProtocolUnknownState        Code = "protocol-unknown-state"
	ProtocolDuplicateTransition Code = "protocol-duplicate-transition"
	ProtocolNondeterministic    Code = "protocol-nondeterministic"
	ProtocolFinalHasOutgoing    Code = "protocol-final-has-outgoing"
	ProtocolUnreachableState    Code = "protocol-unreachable-state"
	ProtocolDeadEndState        Code = "protocol-dead-end-state"
	ProtocolNoFinalReachable    Code = "protocol-no-final-reachable"
)

// Host code (CLI collaborator layer).
const (
	IOReadFailed Code = "io-read-failed"
)
