package parser

import (
	"strings"

	"github.com/jostylr/rix-lang/internal/ast"
	"github.com/jostylr/rix-lang/internal/diagnostics"
)

// parseBacktickString is the prefix handler used when the string token's
// Subkind is backtick (spec §4.7): its Value is the raw header+body text
// between the backticks, split by splitEmbeddedHeader.
func (p *Parser) parseBacktickString() ast.Expression {
	tok := p.cur
	p.nextToken()

	language, context, body, code, ok := splitEmbeddedHeader(tok.Value)
	if !ok {
		p.fail(code, tok)
		return nil
	}
	return &ast.EmbeddedLanguage{
		NodeInfo: ast.Info(tok.Pos, tok.Original),
		Language: language,
		Context:  context,
		Body:     body,
	}
}

// splitEmbeddedHeader implements the header micro-parser from spec §4.7's
// 5 steps.
//
//  1. Content beginning with `:`, or containing no `:` at all, is the
//     "RiX-String" fallback: language is the literal "RiX-String", context
//     is nil, and body is the content with one leading `:` stripped.
//  2. Otherwise locate the header colon: if the content begins with `(`,
//     find its matching `)` and take the first `:` after it; otherwise
//     (or if that search finds no colon) take the first `:` in the
//     content.
//  3. Header = content up to the header colon (trimmed); body = content
//     after the header colon, verbatim.
//  4. Parse the header: if it contains `(`, the matched `)` must be the
//     header's final character (else *invalid header format*); unmatched
//     `(` is *unmatched opening parenthesis*; `)` with no matching `(` is
//     *unmatched closing parenthesis*; a second top-level `(...)` group
//     is *multiple parenthetical groups*. Language = prefix before `(`
//     (trimmed); context = interior (trimmed, may be empty).
//  5. Emit EmbeddedLanguage(language, context, body).
func splitEmbeddedHeader(content string) (language string, context *string, body string, code diagnostics.ErrorCode, ok bool) {
	if strings.HasPrefix(content, ":") || !strings.Contains(content, ":") {
		return "RiX-String", nil, strings.TrimPrefix(content, ":"), "", true
	}

	colon := headerColonIndex(content)
	header := strings.TrimSpace(content[:colon])
	body = content[colon+1:]

	open, closeIdx := -1, -1
	depth := 0
	for i := 0; i < len(header); i++ {
		switch header[i] {
		case '(':
			if depth == 0 {
				if open >= 0 {
					return "", nil, "", diagnostics.ErrMultipleParenGroups, false
				}
				open = i
			}
			depth++
		case ')':
			depth--
			if depth < 0 {
				return "", nil, "", diagnostics.ErrUnmatchedCloseParen, false
			}
			if depth == 0 {
				closeIdx = i
			}
		}
	}
	if open < 0 {
		return header, nil, body, "", true
	}
	if depth != 0 {
		return "", nil, "", diagnostics.ErrUnmatchedOpenParen, false
	}
	if closeIdx != len(header)-1 {
		return "", nil, "", diagnostics.ErrInvalidHeaderFormat, false
	}

	language = strings.TrimSpace(header[:open])
	ctx := strings.TrimSpace(header[open+1 : closeIdx])
	context = &ctx
	return language, context, body, "", true
}

// headerColonIndex locates the header colon per spec §4.7 step 2: the
// first `:` after the matching `)` of a leading `(...)` group, falling
// back to the first `:` in the whole content when the content doesn't
// open with `(`, its group never closes, or no `:` follows the close
// (the precondition that content contains at least one `:` — guaranteed
// by splitEmbeddedHeader's step 1 check — makes that fallback always
// succeed).
func headerColonIndex(content string) int {
	if strings.HasPrefix(content, "(") {
		depth := 0
		for i, r := range content {
			switch r {
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 {
					if colon := strings.IndexByte(content[i+1:], ':'); colon >= 0 {
						return i + 1 + colon
					}
				}
			}
		}
	}
	return strings.IndexByte(content, ':')
}
