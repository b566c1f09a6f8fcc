// Package parser implements the Pratt Engine, Prefix/Infix Dispatchers,
// Bracket Disambiguators, Parameter/Argument Parsers, Arrow Lowering,
// Calculus Parser, and Embedded-Language Header Parser from spec §4. It
// consumes a token.Token stream (spec §6) plus an oracle.Oracle and
// produces the syntax tree described in spec §3.
//
// The dispatch tables below are the table-driven design the teacher's own
// Pratt parser uses (prefixParseFns/infixParseFns keyed by token kind),
// generalized here to this grammar's token set.
package parser

import (
	"github.com/jostylr/rix-lang/internal/ast"
	"github.com/jostylr/rix-lang/internal/diagnostics"
	"github.com/jostylr/rix-lang/internal/oracle"
	"github.com/jostylr/rix-lang/internal/pipeline"
	"github.com/jostylr/rix-lang/internal/symbols"
	"github.com/jostylr/rix-lang/internal/token"
)

type prefixParseFn func() ast.Expression
type infixParseFn func(left ast.Expression) ast.Expression

// Parser is a single-use, single-threaded cursor over a TokenStream
// (spec §5): it owns the stream by reference and holds no other mutable
// state beyond the current/peek tokens and the first error encountered.
type Parser struct {
	stream pipeline.TokenStream
	oracle oracle.Oracle

	cur  token.Token
	peek token.Token

	err *diagnostics.ParseError

	prefixParseFns map[string]prefixParseFn
	infixParseFns  map[string]infixParseFn
}

// New builds a Parser over stream using oc to resolve system symbols.
func New(stream pipeline.TokenStream, oc oracle.Oracle) *Parser {
	if oc == nil {
		oc = oracle.None
	}
	p := &Parser{stream: stream, oracle: oc}

	p.prefixParseFns = map[string]prefixParseFn{
		string(token.Number):      p.parseNumber,
		string(token.String):     p.parseStringOrEmbedded,
		string(token.Identifier): p.parseIdentifierPrefix,
		string(token.PlaceHolder): p.parsePlaceHolder,
		"_":                      p.parseNull,
		"+":                      p.parseUnaryPrefix,
		"-":                      p.parseUnaryPrefix,
		"'":                      p.parseIntegralPrefix,
		"(":                      p.parseParenOpen,
		"[":                      p.parseSquareOpen,
		"{":                      p.parseCurlyOpen,
		"{{":                     p.parseCodeBlockOpen,
	}

	p.infixParseFns = map[string]infixParseFn{
		":=":  p.parseBinaryInfix,
		":=:": p.parseBinaryInfix,
		":<:": p.parseBinaryInfix,
		":>:": p.parseBinaryInfix,
		":<=:": p.parseBinaryInfix,
		":>=:": p.parseBinaryInfix,
		"=>":  p.parseBinaryInfix,
		":->": p.parseFunctionDefinitionArrow,
		"->":  p.parseArrowLambda,
		":=>": p.parsePatternMatchingArrow,

		"|>":  p.parsePipe,
		"||>": p.parsePipe,
		"|>>": p.parsePipe,
		"|>?": p.parsePipe,
		"|>:": p.parsePipe,
		"|+":  p.parsePipe,
		"|*":  p.parsePipe,
		"|:":  p.parsePipe,
		"|;":  p.parsePipe,
		"|^":  p.parsePipe,
		"|?":  p.parsePipe,

		"?": p.parseBinaryInfix,

		"=":  p.parseBinaryInfix,
		"?=": p.parseBinaryInfix,
		"!=": p.parseBinaryInfix,
		"==": p.parseBinaryInfix,

		"<":   p.parseBinaryInfix,
		">":   p.parseBinaryInfix,
		"<=":  p.parseBinaryInfix,
		">=":  p.parseBinaryInfix,
		"?<":  p.parseBinaryInfix,
		"?>":  p.parseBinaryInfix,
		"?<=": p.parseBinaryInfix,
		"?>=": p.parseBinaryInfix,

		":": p.parseBinaryInfix,

		"+": p.parseBinaryInfix,
		"-": p.parseBinaryInfix,

		"*":  p.parseBinaryInfix,
		"/":  p.parseBinaryInfix,
		"//": p.parseBinaryInfix,
		"%":  p.parseBinaryInfix,
		"/^": p.parseBinaryInfix,
		"/~": p.parseBinaryInfix,
		"/%": p.parseBinaryInfix,

		"^":  p.parseBinaryInfix,
		"**": p.parseBinaryInfix,

		"'": p.parseDerivativePostfix,

		"(": p.parseCallArguments,
		"[": p.parseIndexAccess,
		".": p.parseDotAccess,
	}

	// Prime the cursor: two advances load cur and peek, matching the
	// teacher's own New() (which does the same double p.nextToken()).
	p.nextToken()
	p.nextToken()
	return p
}

// lookahead returns the next n tokens starting at (and including) the
// current token, without consuming anything. The bracket disambiguators
// do not call it: scanParenShape peeks the TokenStream directly.
func (p *Parser) lookahead(n int) []token.Token {
	toks := make([]token.Token, 0, n)
	if n > 0 {
		toks = append(toks, p.cur)
	}
	if n > 1 {
		toks = append(toks, p.peek)
	}
	if n > 2 {
		toks = append(toks, p.stream.Peek(n-2)...)
	}
	return toks
}

// ParseProgram runs the Statement Framing loop (spec §4.8) to completion
// or until the first error. It is the parser's sole public entry point
// beyond New.
func (p *Parser) ParseProgram() []ast.Node {
	var nodes []ast.Node
	for !p.cur.IsEnd() && p.err == nil {
		if p.curIsComment() {
			nodes = append(nodes, p.commentNode())
			p.nextToken()
			continue
		}
		expr := p.parseExpression(0)
		if p.err != nil {
			break
		}
		if p.curIsStatementTerminator() {
			nodes = append(nodes, &ast.Statement{
				NodeInfo:   ast.Info(expr.Pos(), expr.Original()),
				Expression: expr,
			})
			p.nextToken()
		} else {
			nodes = append(nodes, expr)
		}
	}
	return nodes
}

// Err returns the first ParseError raised, or nil if parsing succeeded.
// The parser instance must not be reused after this returns non-nil
// (spec §7).
func (p *Parser) Err() *diagnostics.ParseError {
	return p.err
}

func (p *Parser) curIsComment() bool {
	return p.cur.Type == token.String && p.cur.Subkind == token.SubkindComment
}

func (p *Parser) commentNode() ast.Node {
	return &ast.Comment{
		NodeInfo: ast.Info(p.cur.Pos, p.cur.Original),
		Value:    p.cur.Value,
		Kind:     "comment",
	}
}

func (p *Parser) curIsStatementTerminator() bool {
	return p.cur.Is(";") || p.cur.Type == token.SemicolonSequence
}

// --- cursor management -----------------------------------------------------

func (p *Parser) nextToken() {
	p.cur = p.peek
	p.peek = p.stream.Next()
}

// expect consumes the current token if it matches symbol, else raises
// ErrUnmatchedParen (the structural "unmatched bracket" category, spec
// §7 — expect is only ever called to close a bracket pair).
func (p *Parser) expect(symbol string) {
	if p.err != nil {
		return
	}
	if p.cur.Is(symbol) {
		p.nextToken()
		return
	}
	p.fail(diagnostics.ErrUnmatchedParen, p.cur, symbol)
}

func (p *Parser) fail(code diagnostics.ErrorCode, tok token.Token, args ...interface{}) {
	if p.err != nil {
		return
	}
	p.err = diagnostics.New(code, tok, args...)
}

// precedenceOf reports the right-binding precedence of p.cur, consulting
// the built-in symbol table first and the oracle second (spec §4.1,
// §9 "Oracle-driven operators").
func (p *Parser) precedenceOf(tok token.Token) (int, symbols.Associativity, bool) {
	if tok.Type == token.Symbol {
		return symbols.InfixPrecedence(tok.Value)
	}
	if tok.Type == token.Identifier && tok.Subkind == token.SubkindSystem {
		desc := p.oracle.Lookup(tok.Value).Normalize()
		if desc.Type == oracle.KindOperator && desc.OperatorType == oracle.FixityInfix {
			assoc := symbols.AssocLeft
			if desc.Associativity == oracle.AssocRight {
				assoc = symbols.AssocRight
			}
			return desc.Precedence, assoc, true
		}
	}
	return 0, symbols.AssocLeft, false
}

func dispatchKey(tok token.Token) string {
	if tok.Type == token.Symbol {
		return tok.Value
	}
	return string(tok.Type)
}
