// Package pipeline fixes the TokenStream contract the parser consumes
// (spec §6) and a thin Processor stage wrapper so the parser can be slotted
// into a host pipeline the way the rest of this codebase's stages are.
package pipeline

import (
	"github.com/jostylr/rix-lang/internal/token"
)

// Processor is any pipeline stage that transforms a Context.
type Processor interface {
	Process(ctx *Context) *Context
}

// TokenStream is the buffered, lookahead-capable token source the tokenizer
// (an external collaborator) supplies to the parser.
type TokenStream interface {
	// Next consumes and returns the next token from the stream.
	Next() token.Token

	// Peek returns the next n tokens without consuming them. If the stream
	// has fewer than n remaining, it returns all remaining tokens plus a
	// trailing End sentinel padding to length n.
	Peek(n int) []token.Token
}
