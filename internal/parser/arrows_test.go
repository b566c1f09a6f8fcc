package parser_test

import (
	"testing"

	"github.com/jostylr/rix-lang/internal/ast"
)

// These exercise the four RHS shapes lowerPatternCases (arrows.go) accepts
// for `:=>` (spec §4.5): a single bare arrow-lambda, a plain array of
// arrow-lambdas (covered by TestPatternMatchingFunctionWithConditional in
// parser_test.go), an array nested one level deeper with no metadata, and
// an array-with-metadata whose primary is the array of lambdas.

func TestPatternMatchingBareLambda(t *testing.T) {
	expr := parseOne(t, "g :=> (x) -> x+1;")
	pm, ok := expr.(*ast.PatternMatchingFunction)
	if !ok {
		t.Fatalf("top node = %#v, want *ast.PatternMatchingFunction", expr)
	}
	if pm.Name != "g" {
		t.Errorf("Name = %q, want 'g'", pm.Name)
	}
	if len(pm.Patterns) != 1 {
		t.Fatalf("Patterns = %#v, want 1 case", pm.Patterns)
	}
	if len(pm.Patterns[0].Parameters.Positional) != 1 || pm.Patterns[0].Parameters.Positional[0].Name != "x" {
		t.Errorf("Patterns[0].Parameters.Positional = %#v, want [x]", pm.Patterns[0].Parameters.Positional)
	}
}

func TestPatternMatchingNestedArrayInArray(t *testing.T) {
	expr := parseOne(t, "g :=> [[ (x) -> x, (y) -> y*2 ]];")
	pm, ok := expr.(*ast.PatternMatchingFunction)
	if !ok {
		t.Fatalf("top node = %#v, want *ast.PatternMatchingFunction", expr)
	}
	if len(pm.Patterns) != 2 {
		t.Fatalf("Patterns = %#v, want 2 cases", pm.Patterns)
	}
	if len(pm.Metadata) != 0 {
		t.Errorf("Metadata = %#v, want none", pm.Metadata)
	}
}

func TestPatternMatchingMetadataWrappedArray(t *testing.T) {
	expr := parseOne(t, `g :=> [ [ (x) -> x, (y) -> y*2 ], tag := "t" ];`)
	pm, ok := expr.(*ast.PatternMatchingFunction)
	if !ok {
		t.Fatalf("top node = %#v, want *ast.PatternMatchingFunction", expr)
	}
	if len(pm.Patterns) != 2 {
		t.Fatalf("Patterns = %#v, want 2 cases", pm.Patterns)
	}
	if len(pm.Metadata) != 1 || pm.Metadata[0].Name != "tag" {
		t.Fatalf("Metadata = %#v, want [{tag, \"t\"}]", pm.Metadata)
	}
	str, ok := pm.Metadata[0].Value.(*ast.String)
	if !ok || str.Value != "t" {
		t.Errorf("Metadata[0].Value = %#v, want String(\"t\")", pm.Metadata[0].Value)
	}
}
