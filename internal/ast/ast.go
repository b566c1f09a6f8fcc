// Package ast defines the syntax-tree node variants from spec §3. Nodes
// are constructed once during parsing and never mutated afterward
// (spec §3 "Lifecycle"); the tree is a strict tree with no shared
// subtrees or cycles (spec §9). There is deliberately no Visitor
// interface here: pretty-printing and semantic analysis are explicit
// Non-goals (spec §1), so there is no second traversal consumer to design
// for — callers type-switch on Node the way a one-consumer tree is
// naturally walked in Go.
package ast

import (
	"github.com/jostylr/rix-lang/internal/oracle"
	"github.com/jostylr/rix-lang/internal/token"
)

// Node is implemented by every tree element. Pos and Original exist only
// for diagnostics (spec §3): "every node carries pos and original fields".
type Node interface {
	Pos() token.Position
	Original() string
}

// Expression is the marker interface for nodes usable as a value position.
type Expression interface {
	Node
	expressionNode()
}

// NodeInfo carries the two fields spec §3 requires on every node. It is
// embedded (by name, exported) in every concrete node the same way the
// teacher's AST package embeds a plain Token field in each node struct.
type NodeInfo struct {
	Position     token.Position
	OriginalText string
}

func (n NodeInfo) Pos() token.Position { return n.Position }
func (n NodeInfo) Original() string    { return n.OriginalText }

// Info builds the embeddable NodeInfo from a position and the verbatim
// source text — every prefix/infix parse function calls this once when it
// builds the node it returns.
func Info(pos token.Position, original string) NodeInfo {
	return NodeInfo{Position: pos, OriginalText: original}
}

func (*Number) expressionNode()                  {}
func (*String) expressionNode()                  {}
func (*UserIdentifier) expressionNode()          {}
func (*SystemIdentifier) expressionNode()        {}
func (*PlaceHolder) expressionNode()             {}
func (*Null) expressionNode()                    {}
func (*UnaryOperation) expressionNode()          {}
func (*BinaryOperation) expressionNode()         {}
func (*Grouping) expressionNode()                {}
func (*Tuple) expressionNode()                   {}
func (*Array) expressionNode()                    {}
func (*Set) expressionNode()                     {}
func (*Map) expressionNode()                     {}
func (*System) expressionNode()                  {}
func (*Matrix) expressionNode()                  {}
func (*Tensor) expressionNode()                  {}
func (*WithMetadata) expressionNode()            {}
func (*CodeBlock) expressionNode()               {}
func (*FunctionCall) expressionNode()            {}
func (*FunctionDefinition) expressionNode()      {}
func (*FunctionLambda) expressionNode()          {}
func (*PatternMatchingFunction) expressionNode() {}
func (*ParameterListExpr) expressionNode()       {}
func (*Pipe) expressionNode()                    {}
func (*ExplicitPipe) expressionNode()            {}
func (*PipeMap) expressionNode()                 {}
func (*PipeFilter) expressionNode()              {}
func (*PipeReduce) expressionNode()              {}
func (*PropertyAccess) expressionNode()          {}
func (*Derivative) expressionNode()              {}
func (*Integral) expressionNode()                {}
func (*EmbeddedLanguage) expressionNode()        {}

// --- Leaves --------------------------------------------------------------

// Number is a numeric literal preserved verbatim (spec §3: "preserved
// verbatim") — the parser never interprets its value as a Go number.
type Number struct {
	NodeInfo
	Value string
}

// String is a non-backtick string literal. Kind distinguishes a quoted
// string from a comment string ("quote" / "comment"); backtick strings
// never become a String node — they route to EmbeddedLanguage instead.
type String struct {
	NodeInfo
	Value string
	Kind  string
}

// UserIdentifier is an identifier the oracle did not recognize as a
// system symbol.
type UserIdentifier struct {
	NodeInfo
	Name string
}

// SystemIdentifier is an identifier the oracle resolved to a system
// symbol; SystemInfo is the descriptor the oracle returned.
type SystemIdentifier struct {
	NodeInfo
	Name       string
	SystemInfo oracle.Descriptor
}

// PlaceHolder is the `_k` positional placeholder used in explicit-pipe
// targets (spec glossary: "refers to the k-th positional element").
type PlaceHolder struct {
	NodeInfo
	Place int
}

// Null is the bare underscore literal (a null/hole symbol), distinct from
// PlaceHolder which always carries a numeric suffix.
type Null struct {
	NodeInfo
}

// --- Operators -------------------------------------------------------------

type UnaryOperation struct {
	NodeInfo
	Operator string
	Operand  Expression
}

type BinaryOperation struct {
	NodeInfo
	Operator string
	Left     Expression
	Right    Expression
}

// --- Grouping & collections --------------------------------------------

// Grouping is an explicit parenthesization preserved in the tree, distinct
// from Tuple (which requires a comma to have been present).
type Grouping struct {
	NodeInfo
	Expression Expression
}

type Tuple struct {
	NodeInfo
	Elements []Expression
}

type Array struct {
	NodeInfo
	Elements []Expression
}

type Set struct {
	NodeInfo
	Elements []Expression
}

// KeyValue is one `key := value` pair, used by Map and by metadata.
type KeyValue struct {
	Key   Expression
	Value Expression
}

type Map struct {
	NodeInfo
	Pairs []KeyValue
}

type System struct {
	NodeInfo
	Elements []Expression
}

// Matrix is a square-bracket container whose semicolon separators reached
// at most level 1 (spec §4.3).
type Matrix struct {
	NodeInfo
	Rows [][]Expression
}

// TensorRow is one row of a Tensor, annotated with the separator-level
// that followed it (0 for the final row, spec §8 invariant 7).
type TensorRow struct {
	Row            []Expression
	SeparatorLevel int
}

// Tensor is a square-bracket container whose semicolon separators reached
// level ≥ 2 (spec §4.3).
type Tensor struct {
	NodeInfo
	Structure    []TensorRow
	MaxDimension int
}

// MetadataEntry is one `key := value` attachment parsed inside a bracketed
// container (spec §4.3, §4.5).
type MetadataEntry struct {
	Name  string
	Value Expression
}

// WithMetadata wraps a primary expression with named metadata attachments.
// Primary is never nil even for a metadata-only input: it is an empty
// *Array, preserved literally per spec §9's first open question.
type WithMetadata struct {
	NodeInfo
	Primary  Expression
	Metadata []MetadataEntry
}

// CodeBlock is a double-brace container; always emitted regardless of
// statement count (spec §4.3).
type CodeBlock struct {
	NodeInfo
	Statements []Node
}

// --- Calls, definitions, parameters --------------------------------------

// Arguments is a function-call argument list (spec §3 "Function-call
// arguments"). Keyword order is not semantically preserved, but []KeyValue
// is still used instead of a map so tree construction and any later
// stripPositions-style comparison (spec §8 invariant 8) stay deterministic.
type Arguments struct {
	Positional []Expression
	Keyword    []KeyValue
}

type FunctionCall struct {
	NodeInfo
	Function  Expression
	Arguments Arguments
}

// Parameter is one formal parameter: a name with an optional default.
type Parameter struct {
	Name    string
	Default Expression // nil when absent
}

// ParameterList is the parameter specification (spec §3): positional and
// keyword parameters, shared boolean conditionals, and metadata. It is
// also emitted as a standalone expression node (ParameterListExpr) when a
// grouped expression contains a bare `;` before any arrow is seen
// (spec §4.1 "Deferred parameter recognition").
type ParameterList struct {
	Positional   []Parameter
	Keyword      []Parameter
	Conditionals []Expression
	Metadata     []MetadataEntry
}

// ParameterListExpr is the intermediate expression form spec §3 names
// "ParameterList(parameters)" — emitted when a grouped `(...)` body
// contains a `;` separator, before it is known whether an arrow will
// follow and lower it into a FunctionLambda/FunctionDefinition.
type ParameterListExpr struct {
	NodeInfo
	Parameters ParameterList
}

type FunctionDefinition struct {
	NodeInfo
	Name       string
	Parameters ParameterList
	Body       Expression
}

type FunctionLambda struct {
	NodeInfo
	Parameters ParameterList
	Body       Expression
}

// PatternCase is one `(params) -> body` arm of a PatternMatchingFunction.
type PatternCase struct {
	Parameters ParameterList
	Body       Expression
}

// PatternMatchingFunction is produced by `:=>` (spec §3, §4.5). Parameters
// mirrors the spec's literal field list; in practice it stays the zero
// value because each pattern carries its own parameter spec — kept for
// fidelity to spec §3's documented shape rather than normalized away.
type PatternMatchingFunction struct {
	NodeInfo
	Name       string
	Parameters ParameterList
	Patterns   []PatternCase
	Metadata   []MetadataEntry
}

// --- Pipes -----------------------------------------------------------------

// Pipe, ExplicitPipe, PipeMap, PipeFilter, PipeReduce all additionally
// carry Operator — the exact pipe symbol tokenized (e.g. "|>", "|>>") —
// so that the handful of pipe-family symbols spec §3 does not individually
// name a node for (see SPEC_FULL.md / DESIGN.md) are not lost to
// normalization; they still construct a Pipe node, with the original
// symbol preserved.
type Pipe struct {
	NodeInfo
	Operator string
	Left     Expression
	Right    Expression
}

type ExplicitPipe struct {
	NodeInfo
	Operator string
	Left     Expression
	Right    Expression
}

// PipeMap, PipeFilter, PipeReduce are the spec's "Map"/"Filter"/"Reduce"
// pipe-family nodes (spec §3). They are prefixed Pipe- in this Go encoding
// because the container node ast.Map already claims the bare name "Map"
// for the curly-brace map literal (spec §3 uses "Map" for both; Go cannot
// declare two exported types of the same name in one package).
type PipeMap struct {
	NodeInfo
	Operator string
	Left     Expression
	Right    Expression
}

type PipeFilter struct {
	NodeInfo
	Operator string
	Left     Expression
	Right    Expression
}

type PipeReduce struct {
	NodeInfo
	Operator string
	Left     Expression
	Right    Expression
}

// --- Property access, calculus, embedded language ------------------------

// PropertyAccess is produced by postfix `[...]` (spec §3), distinct from
// the postfix `(...)` of FunctionCall.
type PropertyAccess struct {
	NodeInfo
	Object   Expression
	Property Expression
}

// Derivative is the postfix-prime calculus form (spec §4.6). Variables,
// Evaluation, and Operations are nil when the corresponding optional
// clause was absent.
type Derivative struct {
	NodeInfo
	Function   Expression
	Order      int
	Variables  []Expression
	Evaluation []Expression
	Operations []Expression
}

// Integral is the prefix-prime calculus form (spec §4.6); Metadata
// defaults to {integrationConstant:"c", defaultValue:0} (spec §4.6).
type Integral struct {
	NodeInfo
	Function   Expression
	Order      int
	Variables  []Expression
	Evaluation []Expression
	Operations []Expression
	Metadata   []MetadataEntry
}

// EmbeddedLanguage carries a backtick-delimited foreign fragment verbatim
// (spec §4.7). Context is nil when the header had no parenthetical group.
type EmbeddedLanguage struct {
	NodeInfo
	Language string
	Context  *string
	Body     string
}

// --- Top-level wrappers ---------------------------------------------------

// Statement wraps exactly one expression (spec §3, §8 invariant 3); it
// appears only at top level or inside a CodeBlock.
type Statement struct {
	NodeInfo
	Expression Expression
}

func (*Statement) expressionNode() {}

// Comment is a standalone top-level node for a comment token; it is never
// wrapped in Statement (spec §4.8).
type Comment struct {
	NodeInfo
	Value string
	Kind  string
}

func (*Comment) expressionNode() {}
