package diagnostics_test

import (
	"strings"
	"testing"

	"github.com/jostylr/rix-lang/internal/diagnostics"
	"github.com/jostylr/rix-lang/internal/token"
)

func TestParseErrorMessage(t *testing.T) {
	cases := []struct {
		name string
		code diagnostics.ErrorCode
		args []interface{}
		want string
	}{
		{"unmatched paren with arg", diagnostics.ErrUnmatchedParen, []interface{}{")"}, "unmatched ')'"},
		{"consecutive commas no args", diagnostics.ErrConsecutiveCommas, nil, "consecutive commas not allowed"},
		{"pattern match needs array", diagnostics.ErrPatternMatchNeedsArray, nil, "pattern matching should use array syntax, not brace syntax"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tok := token.Token{Pos: token.Position{Line: 1, Start: 5}}
			err := diagnostics.New(tc.code, tok, tc.args...)
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Error() = %q, want substring %q", err.Error(), tc.want)
			}
		})
	}
}

func TestParseErrorUnknownCodeFallsBackToCode(t *testing.T) {
	tok := token.Token{Pos: token.Position{Line: 2, Start: 1}}
	err := diagnostics.New(diagnostics.ErrorCode("P-MADE-UP"), tok)
	if !strings.Contains(err.Error(), "P-MADE-UP") {
		t.Errorf("Error() = %q, want it to contain the raw code", err.Error())
	}
}

func TestParseErrorCarriesPosition(t *testing.T) {
	tok := token.Token{Pos: token.Position{Line: 7, Start: 3}}
	err := diagnostics.New(diagnostics.ErrUnexpectedSymbol, tok, "!")
	if err.Token.Pos.Line != 7 || err.Token.Pos.Start != 3 {
		t.Errorf("Token position not preserved: %+v", err.Token.Pos)
	}
}
