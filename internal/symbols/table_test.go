package symbols_test

import (
	"testing"

	"github.com/jostylr/rix-lang/internal/symbols"
)

func TestInfixPrecedenceLadder(t *testing.T) {
	cases := []struct {
		symbol string
		prec   int
		assoc  symbols.Associativity
	}{
		{":=", symbols.PrecArrowFamily, symbols.AssocRight},
		{"->", symbols.PrecArrow, symbols.AssocRight},
		{"|>", symbols.PrecPipeFamily, symbols.AssocLeft},
		{"=", symbols.PrecEquality, symbols.AssocLeft},
		{"<", symbols.PrecRelational, symbols.AssocLeft},
		{":", symbols.PrecInterval, symbols.AssocLeft},
		{"+", symbols.PrecAdditive, symbols.AssocLeft},
		{"*", symbols.PrecMultiplicative, symbols.AssocLeft},
		{"^", symbols.PrecPower, symbols.AssocRight},
		{".", symbols.PrecPropertyAccess, symbols.AssocLeft},
	}
	for _, tc := range cases {
		t.Run(tc.symbol, func(t *testing.T) {
			prec, assoc, ok := symbols.InfixPrecedence(tc.symbol)
			if !ok {
				t.Fatalf("InfixPrecedence(%q) not found", tc.symbol)
			}
			if prec != tc.prec {
				t.Errorf("precedence = %d, want %d", prec, tc.prec)
			}
			if assoc != tc.assoc {
				t.Errorf("associativity = %v, want %v", assoc, tc.assoc)
			}
		})
	}
}

func TestInfixPrecedenceFallsBackToPostfixForCallAndIndex(t *testing.T) {
	for _, sym := range []string{"(", "["} {
		if _, _, ok := symbols.InfixPrecedence(sym); !ok {
			t.Errorf("InfixPrecedence(%q) = not found, want the postfix entry", sym)
		}
	}
}

func TestLookupUnknownSymbolReportsNotFound(t *testing.T) {
	if _, ok := symbols.Lookup("@@@", symbols.FixityInfix); ok {
		t.Error("Lookup of a nonsense symbol should report not found")
	}
}

func TestUnaryOperatorsAreDistinctFromBinary(t *testing.T) {
	binPlus, ok := symbols.Lookup("+", symbols.FixityInfix)
	if !ok {
		t.Fatal("binary + not found")
	}
	prefixPlus, ok := symbols.Lookup("+", symbols.FixityPrefix)
	if !ok {
		t.Fatal("prefix + not found")
	}
	if binPlus.Precedence == prefixPlus.Precedence {
		t.Error("unary + should bind tighter than binary +")
	}
	if prefixPlus.Precedence != symbols.PrecUnary {
		t.Errorf("prefix + precedence = %d, want %d", prefixPlus.Precedence, symbols.PrecUnary)
	}
}
