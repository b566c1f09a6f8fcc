package oracle_test

import (
	"testing"

	"github.com/jostylr/rix-lang/internal/oracle"
)

func TestDescriptorNormalizeFillsDefaults(t *testing.T) {
	d := oracle.Descriptor{Type: oracle.KindOperator}.Normalize()
	if d.Precedence != oracle.DefaultPrecedence {
		t.Errorf("Precedence = %d, want %d", d.Precedence, oracle.DefaultPrecedence)
	}
	if d.Associativity != oracle.AssocLeft {
		t.Errorf("Associativity = %q, want left", d.Associativity)
	}
	if d.OperatorType != oracle.FixityInfix {
		t.Errorf("OperatorType = %q, want infix", d.OperatorType)
	}
}

func TestDescriptorNormalizeLeavesExplicitValues(t *testing.T) {
	d := oracle.Descriptor{
		Type:          oracle.KindOperator,
		Precedence:    150,
		Associativity: oracle.AssocRight,
		OperatorType:  oracle.FixityPrefix,
	}.Normalize()
	if d.Precedence != 150 || d.Associativity != oracle.AssocRight || d.OperatorType != oracle.FixityPrefix {
		t.Errorf("Normalize changed explicit values: %+v", d)
	}
}

func TestDescriptorNormalizeSkipsNonOperators(t *testing.T) {
	d := oracle.Descriptor{Type: oracle.KindConstant}.Normalize()
	if d.Precedence != 0 {
		t.Errorf("non-operator descriptor should not gain a precedence, got %d", d.Precedence)
	}
}

func TestFuncAdapter(t *testing.T) {
	var oc oracle.Oracle = oracle.Func(func(name string) oracle.Descriptor {
		if name == "pi" {
			return oracle.Descriptor{Type: oracle.KindConstant}
		}
		return oracle.Descriptor{Type: oracle.KindIdentifier}
	})
	if got := oc.Lookup("pi").Type; got != oracle.KindConstant {
		t.Errorf("Lookup(pi).Type = %q, want constant", got)
	}
	if got := oc.Lookup("x").Type; got != oracle.KindIdentifier {
		t.Errorf("Lookup(x).Type = %q, want identifier", got)
	}
}

func TestNoneOracleIsTotalIdentifier(t *testing.T) {
	if got := oracle.None.Lookup("anything"); got.Type != oracle.KindIdentifier {
		t.Errorf("None.Lookup(anything).Type = %q, want identifier", got.Type)
	}
}
