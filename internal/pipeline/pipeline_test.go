package pipeline_test

import (
	"testing"

	"github.com/jostylr/rix-lang/internal/oracle"
	"github.com/jostylr/rix-lang/internal/parser"
	"github.com/jostylr/rix-lang/internal/pipeline"
	"github.com/jostylr/rix-lang/internal/testsupport"
)

func TestPipelineRunsParserProcessor(t *testing.T) {
	ctx := pipeline.NewContext("3 + 4;", oracle.None)
	ctx.TokenStream = testsupport.NewStream(testsupport.Scan("3 + 4;", nil))

	p := pipeline.New(parser.Processor{})
	ctx = p.Run(ctx)

	if len(ctx.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", ctx.Errors)
	}
	if len(ctx.Program) != 1 {
		t.Fatalf("Program has %d nodes, want 1", len(ctx.Program))
	}
}

func TestPipelineCollectsParserError(t *testing.T) {
	ctx := pipeline.NewContext("(3,, 2);", oracle.None)
	ctx.TokenStream = testsupport.NewStream(testsupport.Scan("(3,, 2);", nil))

	p := pipeline.New(parser.Processor{})
	ctx = p.Run(ctx)

	if len(ctx.Errors) != 1 {
		t.Fatalf("got %d errors, want 1", len(ctx.Errors))
	}
}
