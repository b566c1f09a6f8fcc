package parser

import (
	"github.com/samber/lo"

	"github.com/jostylr/rix-lang/internal/ast"
	"github.com/jostylr/rix-lang/internal/diagnostics"
	"github.com/jostylr/rix-lang/internal/token"
)

// --- Parentheses (spec §4.3 "Parentheses") ----------------------------------

func (p *Parser) parseParenOpen() ast.Expression {
	open := p.cur
	p.nextToken()
	if p.cur.Is(")") {
		p.nextToken()
		return &ast.Tuple{NodeInfo: ast.Info(open.Pos, open.Original)}
	}

	sawSemicolon, sawComma := p.scanParenShape()
	switch {
	case sawSemicolon:
		params := p.parseParameterList(")")
		if p.err != nil {
			return nil
		}
		p.expect(")")
		return &ast.Grouping{
			NodeInfo: ast.Info(open.Pos, open.Original),
			Expression: &ast.ParameterListExpr{
				NodeInfo:   ast.Info(open.Pos, open.Original),
				Parameters: params,
			},
		}
	case sawComma:
		first := p.parseExpression(0)
		if p.err != nil {
			return nil
		}
		return p.parseParenTuple(open, first)
	default:
		expr := p.parseExpression(0)
		if p.err != nil {
			return nil
		}
		p.expect(")")
		return &ast.Grouping{NodeInfo: ast.Info(open.Pos, open.Original), Expression: expr}
	}
}

func (p *Parser) parseParenTuple(open token.Token, first ast.Expression) ast.Expression {
	elements := []ast.Expression{first}
	for p.cur.Is(",") {
		p.nextToken()
		if p.cur.Is(")") {
			break // trailing comma: no extra element
		}
		if p.cur.Is(",") {
			p.fail(diagnostics.ErrConsecutiveCommas, p.cur)
			return nil
		}
		el := p.parseExpression(0)
		if p.err != nil {
			return nil
		}
		elements = append(elements, el)
	}
	p.expect(")")
	return &ast.Tuple{NodeInfo: ast.Info(open.Pos, open.Original), Elements: elements}
}

// scanParenShape scans (without consuming) the whole top-level span inside
// an already-opened `(` for a bare `;` or `,`, stopping at the matching
// close (spec §9 "Deferred parameter recognition"). A `;` anywhere takes
// priority over a `,` regardless of order (spec §4.3).
func (p *Parser) scanParenShape() (sawSemicolon, sawComma bool) {
	depth := 0
	visit := func(t token.Token) (stop bool) {
		if t.IsEnd() {
			return true
		}
		if t.Type == token.Symbol {
			switch t.Value {
			case "(", "[", "{", "{{":
				depth++
				return false
			case ")", "]", "}", "}}":
				if depth == 0 {
					return true
				}
				depth--
				return false
			}
		}
		if depth == 0 {
			if t.Type == token.SemicolonSequence || t.Is(";") {
				sawSemicolon = true
			} else if t.Is(",") {
				sawComma = true
			}
		}
		return false
	}
	if visit(p.cur) {
		return
	}
	if visit(p.peek) {
		return
	}
	size := 32
	seen := 0
	for {
		toks := p.stream.Peek(size)
		for i := seen; i < len(toks); i++ {
			if visit(toks[i]) {
				return
			}
		}
		if len(toks) < size {
			return
		}
		seen = len(toks)
		size *= 2
	}
}

// --- Square brackets (spec §4.3 "Square brackets") --------------------------

func (p *Parser) parseSquareOpen() ast.Expression {
	open := p.cur
	p.nextToken()
	if p.cur.Is("]") {
		p.nextToken()
		return &ast.Array{NodeInfo: ast.Info(open.Pos, open.Original)}
	}

	var (
		currentRow   []ast.Expression
		structure    []ast.TensorRow
		metadata     []ast.MetadataEntry
		nonMetaCount int
		maxLevel     int
		sawSemicolon bool
		sawMetadata  bool
	)

	flush := func(level int) {
		structure = append(structure, ast.TensorRow{Row: currentRow, SeparatorLevel: level})
		if level > maxLevel {
			maxLevel = level
		}
		currentRow = nil
	}

	for {
		if p.cur.Is("]") {
			break
		}
		if p.cur.Is(",") {
			p.nextToken()
			continue
		}
		if p.cur.Is(";") || p.cur.Type == token.SemicolonSequence {
			sawSemicolon = true
			level := 1
			if p.cur.Type == token.SemicolonSequence {
				level = p.cur.Count
			}
			p.nextToken()
			flush(level)
			continue
		}

		el := p.parseExpression(0)
		if p.err != nil {
			return nil
		}
		if bop, ok := el.(*ast.BinaryOperation); ok && bop.Operator == ":=" {
			sawMetadata = true
			name, ok := metadataKeyName(bop.Left)
			if !ok {
				p.fail(diagnostics.ErrMetadataKeyInvalid, open)
				return nil
			}
			metadata = append(metadata, ast.MetadataEntry{Name: name, Value: bop.Right})
			continue
		}
		nonMetaCount++
		currentRow = append(currentRow, el)
	}

	if sawSemicolon {
		flush(0) // final row always carries separatorLevel 0 (spec §8 invariant 7)
	}
	p.expect("]")
	if p.err != nil {
		return nil
	}

	if sawMetadata && sawSemicolon {
		p.fail(diagnostics.ErrMixedMatrixMetadata, open)
		return nil
	}
	if sawMetadata {
		if nonMetaCount > 1 {
			p.fail(diagnostics.ErrMixedArrayMetadata, open)
			return nil
		}
		var primary ast.Expression
		if nonMetaCount == 1 {
			primary = currentRow[0]
		} else {
			// spec §9 open question: metadata-only input preserves an
			// explicit empty Array as primary, never a bare nil.
			primary = &ast.Array{NodeInfo: ast.Info(open.Pos, open.Original)}
		}
		return &ast.WithMetadata{NodeInfo: ast.Info(open.Pos, open.Original), Primary: primary, Metadata: metadata}
	}
	if sawSemicolon {
		if maxLevel <= 1 {
			rows := lo.Map(structure, func(r ast.TensorRow, _ int) []ast.Expression { return r.Row })
			return &ast.Matrix{NodeInfo: ast.Info(open.Pos, open.Original), Rows: rows}
		}
		return &ast.Tensor{
			NodeInfo:     ast.Info(open.Pos, open.Original),
			Structure:    structure,
			MaxDimension: maxLevel + 1,
		}
	}
	return &ast.Array{NodeInfo: ast.Info(open.Pos, open.Original), Elements: currentRow}
}

func metadataKeyName(expr ast.Expression) (string, bool) {
	switch e := expr.(type) {
	case *ast.UserIdentifier:
		return e.Name, true
	case *ast.SystemIdentifier:
		return e.Name, true
	case *ast.String:
		return e.Value, true
	}
	return "", false
}

// --- Curly braces (spec §4.3 "Curly braces") --------------------------------

func (p *Parser) parseCurlyOpen() ast.Expression {
	open := p.cur
	p.nextToken()

	var elements []ast.Expression
	usedSemicolon := false
	for {
		if p.cur.Is("}") {
			break
		}
		if p.cur.Is(",") {
			p.nextToken()
			continue
		}
		if p.cur.Is(";") || p.cur.Type == token.SemicolonSequence {
			usedSemicolon = true
			p.nextToken()
			continue
		}
		el := p.parseExpression(0)
		if p.err != nil {
			return nil
		}
		elements = append(elements, el)
	}
	p.expect("}")
	if p.err != nil {
		return nil
	}
	return p.classifyBrace(open, elements, usedSemicolon)
}

func isEquationOp(op string) bool {
	switch op {
	case ":=:", ":<:", ":>:", ":<=:", ":>=:":
		return true
	}
	return false
}

func (p *Parser) classifyBrace(open token.Token, elements []ast.Expression, usedSemicolon bool) ast.Expression {
	isPatternMatch := func(e ast.Expression) bool {
		_, ok := e.(*ast.PatternMatchingFunction)
		return ok
	}
	isEquation := func(e ast.Expression) bool {
		bop, ok := e.(*ast.BinaryOperation)
		return ok && isEquationOp(bop.Operator)
	}
	isAssign := func(e ast.Expression) bool {
		bop, ok := e.(*ast.BinaryOperation)
		return ok && bop.Operator == ":="
	}

	if lo.ContainsBy(elements, isPatternMatch) {
		p.fail(diagnostics.ErrPatternMatchNeedsArray, open)
		return nil
	}

	hasEquation := lo.ContainsBy(elements, isEquation)
	hasAssign := lo.ContainsBy(elements, isAssign)

	if hasEquation {
		if hasAssign {
			p.fail(diagnostics.ErrMixedEquationTypes, open)
			return nil
		}
		if !usedSemicolon && len(elements) > 1 {
			p.fail(diagnostics.ErrSystemNeedsEquations, open)
			return nil
		}
		if !lo.EveryBy(elements, isEquation) {
			p.fail(diagnostics.ErrSystemNeedsEquations, open)
			return nil
		}
		return &ast.System{NodeInfo: ast.Info(open.Pos, open.Original), Elements: elements}
	}

	if hasAssign {
		pairs := make([]ast.KeyValue, 0, len(elements))
		for _, e := range elements {
			bop, ok := e.(*ast.BinaryOperation)
			if !ok || bop.Operator != ":=" {
				p.fail(diagnostics.ErrMapNeedsKeyValuePairs, open)
				return nil
			}
			pairs = append(pairs, ast.KeyValue{Key: bop.Left, Value: bop.Right})
		}
		return &ast.Map{NodeInfo: ast.Info(open.Pos, open.Original), Pairs: pairs}
	}

	return &ast.Set{NodeInfo: ast.Info(open.Pos, open.Original), Elements: elements}
}

// --- Double curly braces (spec §4.3 "Double curly braces") ------------------

func (p *Parser) parseCodeBlockOpen() ast.Expression {
	open := p.cur
	p.nextToken()

	var statements []ast.Node
	for !p.cur.Is("}}") {
		if p.cur.IsEnd() {
			p.fail(diagnostics.ErrUnmatchedParen, open, "}}")
			return nil
		}
		if p.curIsComment() {
			statements = append(statements, p.commentNode())
			p.nextToken()
			continue
		}
		expr := p.parseExpression(0)
		if p.err != nil {
			return nil
		}
		if p.curIsStatementTerminator() {
			statements = append(statements, &ast.Statement{
				NodeInfo:   ast.Info(expr.Pos(), expr.Original()),
				Expression: expr,
			})
			p.nextToken()
		} else {
			statements = append(statements, expr)
		}
	}
	p.nextToken() // consume }}
	return &ast.CodeBlock{NodeInfo: ast.Info(open.Pos, open.Original), Statements: statements}
}
