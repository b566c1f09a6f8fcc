// Package oracle fixes the system-symbol oracle contract (spec §2 "Oracle
// Adapter", §6 "Input contract — Oracle", §9 "Oracle-driven operators").
// The oracle itself — the actual lookup table of system symbols — is
// supplied by the host; this package only adapts its descriptors into the
// shape the Pratt engine consults.
package oracle

// Kind is the category a system symbol resolves to.
type Kind string

const (
	KindFunction   Kind = "function"
	KindConstant   Kind = "constant"
	KindOperator   Kind = "operator"
	KindIdentifier Kind = "identifier"
)

// Associativity of an oracle-declared operator.
type Associativity string

const (
	AssocLeft  Associativity = "left"
	AssocRight Associativity = "right"
)

// Fixity of an oracle-declared operator.
type Fixity string

const (
	FixityInfix   Fixity = "infix"
	FixityPrefix  Fixity = "prefix"
	FixityPostfix Fixity = "postfix"
)

// DefaultPrecedence is used when an operator descriptor omits Precedence
// (spec §6: "Default precedence when omitted is the MULTIPLICATION level").
const DefaultPrecedence = 90

// Descriptor is what the oracle reports for one system-symbol name.
type Descriptor struct {
	Type Kind

	// Populated only when Type == KindOperator.
	Precedence    int
	Associativity Associativity
	OperatorType  Fixity
}

// Normalize fills in the documented defaults for an operator descriptor:
// precedence defaults to DefaultPrecedence, associativity to left, fixity
// to infix (spec §6).
func (d Descriptor) Normalize() Descriptor {
	if d.Type != KindOperator {
		return d
	}
	if d.Precedence == 0 {
		d.Precedence = DefaultPrecedence
	}
	if d.Associativity == "" {
		d.Associativity = AssocLeft
	}
	if d.OperatorType == "" {
		d.OperatorType = FixityInfix
	}
	return d
}

// Oracle is the pure, total function from identifier name to symbol
// descriptor. The host's lookup must be total: unknown names resolve to
// KindIdentifier, never an error (spec §6).
type Oracle interface {
	Lookup(name string) Descriptor
}

// Func adapts a bare function into an Oracle, mirroring the
// http.HandlerFunc adapter idiom so a host can pass a closure without
// declaring a named type.
type Func func(name string) Descriptor

func (f Func) Lookup(name string) Descriptor { return f(name) }

// None is an Oracle that treats every name as a plain identifier. Useful
// for parsing inputs that declare no system symbols, and in tests.
var None Oracle = Func(func(string) Descriptor {
	return Descriptor{Type: KindIdentifier}
})
