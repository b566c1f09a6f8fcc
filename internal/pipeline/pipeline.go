package pipeline

// Pipeline runs a sequence of Processor stages over one Context, the way a
// host embedding this parser would chain tokenizer → parser → (evaluator).
// The parser package itself only ever appears as a single stage; Pipeline
// is ambient wiring for a host, not something the parser core depends on.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes every stage in order, threading the context through. It does
// not stop on error: Context.Errors accumulates across stages, matching the
// non-recovering, single-pass nature of each individual stage.
func (p *Pipeline) Run(initial *Context) *Context {
	ctx := initial
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
	}
	return ctx
}
