// Package symbols is the Symbol Table component (spec §2, §4.1): a static
// map from built-in operator tokens to (precedence, associativity,
// fixity). It is deliberately a data table, not code — the same
// single-source-of-truth design the teacher's own operator table uses, so
// that the precedence ladder in spec §4.1 is visible as one slice literal
// rather than scattered across dispatch logic.
package symbols

// Associativity of a binary operator.
type Associativity int

const (
	AssocLeft Associativity = iota
	AssocRight
)

// Fixity of an operator entry.
type Fixity int

const (
	FixityInfix Fixity = iota
	FixityPrefix
	FixityPostfix
)

// Precedence levels from the spec §4.1 ladder. Two levels (30/40) are
// reserved for the host-supplied OR/AND keywords, which arrive only
// through the oracle (spec §4.1: "host-supplied") — no built-in token
// occupies them, but the constants are kept so the oracle adapter and the
// Pratt engine agree on where they sit relative to the built-in levels.
const (
	PrecStatement     = 0
	PrecArrowFamily   = 10
	PrecPipeFamily    = 20
	PrecArrow         = 25
	PrecLogicOr       = 30
	PrecLogicAnd      = 40
	PrecCondition     = 45
	PrecEquality      = 50
	PrecRelational    = 60
	PrecInterval      = 70
	PrecAdditive      = 80
	PrecMultiplicative = 90
	PrecPower         = 100
	PrecUnary         = 110
	PrecCalculusPrime = 115
	PrecPostfixCall   = 120
	PrecPropertyAccess = 130
)

// OperatorInfo describes one built-in operator token's binding behavior.
type OperatorInfo struct {
	Symbol     string
	Precedence int
	Assoc      Associativity
	Fixity     Fixity
}

// AllOperators is the single source of truth for every built-in operator
// token's position in the Pratt ladder (spec §4.1 table).
var AllOperators = []OperatorInfo{
	{":=", PrecArrowFamily, AssocRight, FixityInfix},
	{":=:", PrecArrowFamily, AssocRight, FixityInfix},
	{":<:", PrecArrowFamily, AssocRight, FixityInfix},
	{":>:", PrecArrowFamily, AssocRight, FixityInfix},
	{":<=:", PrecArrowFamily, AssocRight, FixityInfix},
	{":>=:", PrecArrowFamily, AssocRight, FixityInfix},
	{":=>", PrecArrowFamily, AssocRight, FixityInfix},
	{"=>", PrecArrowFamily, AssocRight, FixityInfix},
	{":->", PrecArrowFamily, AssocRight, FixityInfix},

	{"|>", PrecPipeFamily, AssocLeft, FixityInfix},
	{"||>", PrecPipeFamily, AssocLeft, FixityInfix},
	{"|>>", PrecPipeFamily, AssocLeft, FixityInfix},
	{"|>?", PrecPipeFamily, AssocLeft, FixityInfix},
	{"|>:", PrecPipeFamily, AssocLeft, FixityInfix},
	{"|+", PrecPipeFamily, AssocLeft, FixityInfix},
	{"|*", PrecPipeFamily, AssocLeft, FixityInfix},
	{"|:", PrecPipeFamily, AssocLeft, FixityInfix},
	{"|;", PrecPipeFamily, AssocLeft, FixityInfix},
	{"|^", PrecPipeFamily, AssocLeft, FixityInfix},
	{"|?", PrecPipeFamily, AssocLeft, FixityInfix},

	{"->", PrecArrow, AssocRight, FixityInfix},

	{"?", PrecCondition, AssocLeft, FixityInfix},

	{"=", PrecEquality, AssocLeft, FixityInfix},
	{"?=", PrecEquality, AssocLeft, FixityInfix},
	{"!=", PrecEquality, AssocLeft, FixityInfix},
	{"==", PrecEquality, AssocLeft, FixityInfix},

	{"<", PrecRelational, AssocLeft, FixityInfix},
	{">", PrecRelational, AssocLeft, FixityInfix},
	{"<=", PrecRelational, AssocLeft, FixityInfix},
	{">=", PrecRelational, AssocLeft, FixityInfix},
	{"?<", PrecRelational, AssocLeft, FixityInfix},
	{"?>", PrecRelational, AssocLeft, FixityInfix},
	{"?<=", PrecRelational, AssocLeft, FixityInfix},
	{"?>=", PrecRelational, AssocLeft, FixityInfix},

	{":", PrecInterval, AssocLeft, FixityInfix},

	{"+", PrecAdditive, AssocLeft, FixityInfix},
	{"-", PrecAdditive, AssocLeft, FixityInfix},

	{"*", PrecMultiplicative, AssocLeft, FixityInfix},
	{"/", PrecMultiplicative, AssocLeft, FixityInfix},
	{"//", PrecMultiplicative, AssocLeft, FixityInfix},
	{"%", PrecMultiplicative, AssocLeft, FixityInfix},
	{"/^", PrecMultiplicative, AssocLeft, FixityInfix},
	{"/~", PrecMultiplicative, AssocLeft, FixityInfix},
	{"/%", PrecMultiplicative, AssocLeft, FixityInfix},

	{"^", PrecPower, AssocRight, FixityInfix},
	{"**", PrecPower, AssocRight, FixityInfix},

	{"+", PrecUnary, AssocRight, FixityPrefix},
	{"-", PrecUnary, AssocRight, FixityPrefix},

	{"'", PrecCalculusPrime, AssocLeft, FixityPostfix},

	{"(", PrecPostfixCall, AssocLeft, FixityPostfix},
	{"[", PrecPostfixCall, AssocLeft, FixityPostfix},

	{".", PrecPropertyAccess, AssocLeft, FixityInfix},
}

// Lookup finds the operator entry for symbol with the given fixity. It
// returns ok=false for a symbol/fixity combination with no built-in entry
// (the caller then falls back to the oracle).
func Lookup(symbol string, fixity Fixity) (OperatorInfo, bool) {
	for _, op := range AllOperators {
		if op.Symbol == symbol && op.Fixity == fixity {
			return op, true
		}
	}
	return OperatorInfo{}, false
}

// InfixPrecedence is a convenience wrapper over Lookup for the common
// infix case the Pratt engine's main loop consults every iteration.
func InfixPrecedence(symbol string) (int, Associativity, bool) {
	op, ok := Lookup(symbol, FixityInfix)
	if !ok {
		// (, [ and ' are postfix operators handled by the Pratt engine's
		// infix dispatch table (spec §4.1); they still need a precedence
		// entry for the main loop's "p < minPrecedence" check.
		if symbol == "(" || symbol == "[" || symbol == "'" {
			op, ok = Lookup(symbol, FixityPostfix)
		}
	}
	if !ok {
		return 0, AssocLeft, false
	}
	return op.Precedence, op.Assoc, true
}
