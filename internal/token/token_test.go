package token_test

import (
	"testing"

	"github.com/jostylr/rix-lang/internal/token"
)

func TestTokenIs(t *testing.T) {
	cases := []struct {
		name   string
		tok    token.Token
		symbol string
		want   bool
	}{
		{"matching symbol", token.Token{Type: token.Symbol, Value: "+"}, "+", true},
		{"mismatched value", token.Token{Type: token.Symbol, Value: "+"}, "-", false},
		{"wrong type", token.Token{Type: token.Identifier, Value: "+"}, "+", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.tok.Is(tc.symbol); got != tc.want {
				t.Errorf("Is(%q) = %v, want %v", tc.symbol, got, tc.want)
			}
		})
	}
}

func TestTokenIsEnd(t *testing.T) {
	if (token.Token{Type: token.Number}).IsEnd() {
		t.Error("Number token reported IsEnd")
	}
	if !(token.Token{Type: token.End}).IsEnd() {
		t.Error("End token did not report IsEnd")
	}
}

func TestTokenString(t *testing.T) {
	tok := token.Token{
		Type:    token.Identifier,
		Subkind: token.SubkindSystem,
		Value:   "sin",
		Pos:     token.Position{Line: 3, Start: 10},
	}
	got := tok.String()
	want := `3:10 IDENTIFIER(system) "sin"`
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
