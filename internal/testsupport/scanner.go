// Package testsupport provides a minimal, test-only scanner and a
// slice-backed TokenStream so parser tests can exercise real surface
// syntax without a production tokenizer — the tokenizer is an external
// collaborator out of scope for this module (spec §1). Scan implements
// just enough of the token grammar (spec §6) to express the literal
// end-to-end scenarios in spec §8; it is not a substitute tokenizer.
package testsupport

import (
	"strings"
	"unicode"

	"github.com/jostylr/rix-lang/internal/token"
)

// multiCharSymbols lists every multi-character symbol the parser's
// dispatch tables know about (spec §4.1), longest first so the scanner's
// greedy match never splits a longer operator into two shorter ones.
var multiCharSymbols = []string{
	":<=:", ":>=:",
	":=:", ":<:", ":>:", ":=>", ":->",
	"||>", "|>>", "|>?", "|>:",
	"?<=", "?>=",
	"//", "/^", "/~", "/%",
	":=", "=>", "->",
	"|>", "|+", "|*", "|:", "|;", "|^", "|?",
	"?=", "!=", "==", "<=", ">=", "?<", "?>",
	"**", "{{", "}}",
}

// Scan turns src into a token stream. systemNames marks which bare
// identifiers should carry token.SubkindSystem (mimicking what a real
// oracle-backed tokenizer would flag, spec §6 "Subkind: System").
func Scan(src string, systemNames map[string]bool) []token.Token {
	s := &scanner{src: []rune(src), systemNames: systemNames}
	return s.run()
}

type scanner struct {
	src         []rune
	pos         int
	line        int
	systemNames map[string]bool
	out         []token.Token
}

func (s *scanner) run() []token.Token {
	s.line = 1
	for s.pos < len(s.src) {
		s.skipSpaces()
		if s.pos >= len(s.src) {
			break
		}
		start := s.pos
		r := s.src[s.pos]

		switch {
		case r == '#':
			s.scanComment(start)
		case r == '"':
			s.scanQuoted(start, '"', token.SubkindQuote)
		case r == '`':
			s.scanQuoted(start, '`', token.SubkindBacktick)
		case unicode.IsDigit(r):
			s.scanNumber(start)
		case r == '_':
			s.scanUnderscore(start)
		case isIdentStart(r):
			s.scanIdentifier(start)
		case r == ';':
			s.scanSemicolons(start)
		default:
			s.scanSymbol(start)
		}
	}
	s.out = append(s.out, token.Token{Type: token.End, Pos: token.Position{Start: s.pos, End: s.pos, Line: s.line}})
	return s.out
}

func (s *scanner) skipSpaces() {
	for s.pos < len(s.src) {
		r := s.src[s.pos]
		if r == '\n' {
			s.line++
			s.pos++
			continue
		}
		if unicode.IsSpace(r) {
			s.pos++
			continue
		}
		break
	}
}

func (s *scanner) emit(t token.Token, start int) {
	t.Pos = token.Position{Start: start, End: s.pos, Line: s.line}
	t.Original = string(s.src[start:s.pos])
	s.out = append(s.out, t)
}

func (s *scanner) scanComment(start int) {
	for s.pos < len(s.src) && s.src[s.pos] != '\n' {
		s.pos++
	}
	text := string(s.src[start+1 : s.pos])
	s.emit(token.Token{Type: token.String, Subkind: token.SubkindComment, Value: strings.TrimSpace(text)}, start)
}

func (s *scanner) scanQuoted(start int, delim rune, subkind token.Subkind) {
	s.pos++ // opening delimiter
	bodyStart := s.pos
	for s.pos < len(s.src) && s.src[s.pos] != delim {
		if s.src[s.pos] == '\n' {
			s.line++
		}
		s.pos++
	}
	body := string(s.src[bodyStart:s.pos])
	if s.pos < len(s.src) {
		s.pos++ // closing delimiter
	}
	s.emit(token.Token{Type: token.String, Subkind: subkind, Value: body}, start)
}

func (s *scanner) scanNumber(start int) {
	for s.pos < len(s.src) && (unicode.IsDigit(s.src[s.pos]) || s.src[s.pos] == '.') {
		s.pos++
	}
	s.emit(token.Token{Type: token.Number, Value: string(s.src[start:s.pos])}, start)
}

func (s *scanner) scanUnderscore(start int) {
	s.pos++
	digitsStart := s.pos
	for s.pos < len(s.src) && unicode.IsDigit(s.src[s.pos]) {
		s.pos++
	}
	if s.pos == digitsStart {
		s.emit(token.Token{Type: token.Symbol, Value: "_"}, start)
		return
	}
	place := 0
	for _, d := range s.src[digitsStart:s.pos] {
		place = place*10 + int(d-'0')
	}
	s.emit(token.Token{Type: token.PlaceHolder, Place: &place}, start)
}

func (s *scanner) scanIdentifier(start int) {
	for s.pos < len(s.src) && isIdentPart(s.src[s.pos]) {
		s.pos++
	}
	name := string(s.src[start:s.pos])
	subkind := token.SubkindUser
	if s.systemNames[name] {
		subkind = token.SubkindSystem
	}
	s.emit(token.Token{Type: token.Identifier, Subkind: subkind, Value: name}, start)
}

func (s *scanner) scanSemicolons(start int) {
	count := 0
	for s.pos < len(s.src) && s.src[s.pos] == ';' {
		count++
		s.pos++
	}
	if count == 1 {
		s.emit(token.Token{Type: token.Symbol, Value: ";"}, start)
		return
	}
	s.emit(token.Token{Type: token.SemicolonSequence, Count: count}, start)
}

func (s *scanner) scanSymbol(start int) {
	remaining := string(s.src[s.pos:])
	for _, sym := range multiCharSymbols {
		if strings.HasPrefix(remaining, sym) {
			s.pos += len([]rune(sym))
			s.emit(token.Token{Type: token.Symbol, Value: sym}, start)
			return
		}
	}
	s.pos++
	s.emit(token.Token{Type: token.Symbol, Value: string(s.src[start])}, start)
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
