package parser

import "github.com/jostylr/rix-lang/internal/pipeline"

// Processor adapts Parser into a pipeline.Processor (spec §4.8, §5): it
// runs ParseProgram against the Context's TokenStream and Oracle, writing
// the resulting nodes and first ParseError back onto the Context —
// mirroring the teacher's own thin processor-to-component adapters in
// internal/pipeline.
type Processor struct{}

func (Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	parser := New(ctx.TokenStream, ctx.Oracle)
	ctx.Program = parser.ParseProgram()
	if err := parser.Err(); err != nil {
		ctx.Errors = append(ctx.Errors, err)
	}
	return ctx
}
