package testsupport

import "github.com/jostylr/rix-lang/internal/token"

// SliceStream is a pipeline.TokenStream backed by a pre-built slice,
// used throughout parser tests in place of a real tokenizer's stream.
type SliceStream struct {
	tokens []token.Token
	pos    int
}

// NewStream wraps tokens (as produced by Scan, or built by hand) in a
// TokenStream. A trailing token.End is appended if tokens doesn't already
// end with one.
func NewStream(tokens []token.Token) *SliceStream {
	if len(tokens) == 0 || !tokens[len(tokens)-1].IsEnd() {
		tokens = append(tokens, token.Token{Type: token.End})
	}
	return &SliceStream{tokens: tokens}
}

func (s *SliceStream) Next() token.Token {
	if s.pos >= len(s.tokens) {
		return token.Token{Type: token.End}
	}
	t := s.tokens[s.pos]
	s.pos++
	return t
}

func (s *SliceStream) Peek(n int) []token.Token {
	out := make([]token.Token, 0, n)
	for i := 0; i < n; i++ {
		idx := s.pos + i
		if idx >= len(s.tokens) {
			out = append(out, token.Token{Type: token.End})
			continue
		}
		out = append(out, s.tokens[idx])
	}
	return out
}
