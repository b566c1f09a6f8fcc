package testsupport_test

import (
	"testing"

	"github.com/jostylr/rix-lang/internal/testsupport"
	"github.com/jostylr/rix-lang/internal/token"
)

func TestScanBasicArithmetic(t *testing.T) {
	toks := testsupport.Scan("3 + 4 * 2;", nil)
	wantTypes := []token.Kind{
		token.Number, token.Symbol, token.Number, token.Symbol, token.Number, token.Symbol, token.End,
	}
	if len(toks) != len(wantTypes) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(wantTypes), toks)
	}
	for i, want := range wantTypes {
		if toks[i].Type != want {
			t.Errorf("token %d: type = %s, want %s", i, toks[i].Type, want)
		}
	}
}

func TestScanMultiCharSymbolsGreedyMatch(t *testing.T) {
	toks := testsupport.Scan("a :=> b", nil)
	if toks[1].Value != ":=>" {
		t.Errorf("token 1 = %q, want %q", toks[1].Value, ":=>")
	}
}

func TestScanSemicolonSequence(t *testing.T) {
	toks := testsupport.Scan("[1,2;3,4;;5,6]", nil)
	var sawSingle, sawDouble bool
	for _, tok := range toks {
		if tok.Is(";") {
			sawSingle = true
		}
		if tok.Type == token.SemicolonSequence && tok.Count == 2 {
			sawDouble = true
		}
	}
	if !sawSingle {
		t.Error("expected a single ';' symbol token")
	}
	if !sawDouble {
		t.Error("expected a SemicolonSequence token with Count=2")
	}
}

func TestScanPlaceholderAndNull(t *testing.T) {
	toks := testsupport.Scan("_2 + _", nil)
	if toks[0].Type != token.PlaceHolder || toks[0].Place == nil || *toks[0].Place != 2 {
		t.Errorf("token 0 = %+v, want PlaceHolder{Place: 2}", toks[0])
	}
	if !toks[2].Is("_") {
		t.Errorf("token 2 = %+v, want bare '_' symbol", toks[2])
	}
}

func TestScanSystemIdentifier(t *testing.T) {
	toks := testsupport.Scan("sin(x)", map[string]bool{"sin": true})
	if toks[0].Subkind != token.SubkindSystem {
		t.Errorf("sin subkind = %q, want system", toks[0].Subkind)
	}
	if toks[2].Subkind != token.SubkindUser {
		t.Errorf("x subkind = %q, want user", toks[2].Subkind)
	}
}

func TestScanBacktickAndQuoteStrings(t *testing.T) {
	toks := testsupport.Scan("`py:print(1)` \"hi\"", nil)
	if toks[0].Type != token.String || toks[0].Subkind != token.SubkindBacktick {
		t.Errorf("token 0 = %+v, want backtick string", toks[0])
	}
	if toks[0].Value != "py:print(1)" {
		t.Errorf("backtick value = %q", toks[0].Value)
	}
	if toks[1].Type != token.String || toks[1].Subkind != token.SubkindQuote || toks[1].Value != "hi" {
		t.Errorf("token 1 = %+v, want quoted string 'hi'", toks[1])
	}
}
