package pipeline

import (
	"github.com/jostylr/rix-lang/internal/ast"
	"github.com/jostylr/rix-lang/internal/diagnostics"
	"github.com/jostylr/rix-lang/internal/oracle"
)

// Context holds the data a parser stage reads and writes when run as part
// of a larger host pipeline (tokenizer stage → parser stage → ...). The
// parser itself has no notion of a pipeline (spec §5: single invocation,
// no shared state beyond the parser instance); Context exists only as the
// handoff shape for a host that chains Processor stages together.
type Context struct {
	SourceCode  string
	FilePath    string
	TokenStream TokenStream
	Oracle      oracle.Oracle
	Program     []ast.Node
	Errors      []*diagnostics.ParseError
}

// NewContext creates an initialized Context for the given source text.
func NewContext(source string, oc oracle.Oracle) *Context {
	return &Context{
		SourceCode: source,
		Oracle:     oc,
		Errors:     []*diagnostics.ParseError{},
	}
}
