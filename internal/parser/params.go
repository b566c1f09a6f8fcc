package parser

import (
	"github.com/samber/lo"

	"github.com/jostylr/rix-lang/internal/ast"
	"github.com/jostylr/rix-lang/internal/diagnostics"
)

// parseParameterList parses the body of a parenthesized parameter
// specification (spec §3, §4.4, §9 "Deferred parameter recognition"):
// `;`-separated sections, each comma-separated. Section 0 holds
// positional parameters (`name`, or `name := default` — a default does
// not move it to keyword, spec's literal `"(x, n := 5; a := 0)"`
// scenario), section 1 holds keyword-only parameters (each of which
// must carry a default, spec §8 invariant 5), and any further section
// holds `name := value` metadata. A `?cond` suffix on any individual
// parameter, in any section, is hoisted to the shared
// ParameterList.Conditionals (spec §3 "conditionals: boolean guards
// shared across the parameter list"). The caller has already consumed
// the opening `(`; closer is left unconsumed for the caller to `expect`.
func (p *Parser) parseParameterList(closer string) ast.ParameterList {
	var list ast.ParameterList
	section := 0

	for !p.cur.Is(closer) {
		if p.cur.Is(";") {
			section++
			p.nextToken()
			continue
		}
		if p.cur.Is(",") {
			p.nextToken()
			continue
		}

		tok := p.cur
		switch section {
		case 0, 1:
			param, cond, ok := p.parseOneParameter()
			if !ok {
				return list
			}
			if section == 1 && param.Default == nil {
				p.fail(diagnostics.ErrKeywordParamNeedsDefault, tok, param.Name)
				return list
			}
			if cond != nil {
				list.Conditionals = append(list.Conditionals, cond)
			}
			if section == 0 {
				list.Positional = append(list.Positional, param)
			} else {
				list.Keyword = append(list.Keyword, param)
			}
		default:
			entry := p.parseExpression(0)
			if p.err != nil {
				return list
			}
			bop, ok := entry.(*ast.BinaryOperation)
			if !ok || bop.Operator != ":=" {
				p.fail(diagnostics.ErrExpectedParamName, tok)
				return list
			}
			name, ok := metadataKeyName(bop.Left)
			if !ok {
				p.fail(diagnostics.ErrExpectedParamName, tok)
				return list
			}
			list.Metadata = append(list.Metadata, ast.MetadataEntry{Name: name, Value: bop.Right})
		}
	}
	return list
}

// parseOneParameter parses a single parameter-position expression —
// `name`, `name := default`, or `name ? cond` (and combinations) — via
// the same decomposeParamExpr used by arrow lowering (spec §4.5), so
// the explicit `(;...)` parameter-list path and the retroactive
// arrow-lowering path agree on what a parameter looks like. Returns
// ok=false if a ParseError was raised (the caller must stop).
func (p *Parser) parseOneParameter() (ast.Parameter, ast.Expression, bool) {
	tok := p.cur
	expr := p.parseExpression(0)
	if p.err != nil {
		return ast.Parameter{}, nil, false
	}
	param, cond, ok := decomposeParamExpr(expr)
	if !ok {
		p.fail(diagnostics.ErrExpectedParamName, tok)
		return ast.Parameter{}, nil, false
	}
	return param, cond, true
}

// parseCallArguments is the registered infix handler for postfix `(`
// (spec §4.4 "Call site"): positional arguments until a `;` switches to
// the keyword section, where a bare identifier is shorthand for
// `name := name` and anything else must be a `name := value` pair.
func (p *Parser) parseCallArguments(left ast.Expression) ast.Expression {
	open := p.cur
	p.nextToken()

	var args ast.Arguments
	section := 0
	for !p.cur.Is(")") {
		if p.cur.Is(";") {
			section++
			p.nextToken()
			continue
		}
		if p.cur.Is(",") {
			p.nextToken()
			continue
		}

		tok := p.cur
		expr := p.parseExpression(0)
		if p.err != nil {
			return nil
		}

		if section == 0 {
			args.Positional = append(args.Positional, expr)
			continue
		}

		if bop, ok := expr.(*ast.BinaryOperation); ok && bop.Operator == ":=" {
			if _, ok := metadataKeyName(bop.Left); !ok {
				p.fail(diagnostics.ErrExpectedParamName, tok)
				return nil
			}
			args.Keyword = append(args.Keyword, ast.KeyValue{Key: bop.Left, Value: bop.Right})
			continue
		}

		name, ok := identifierName(expr)
		if !ok {
			p.fail(diagnostics.ErrExpectedParamName, tok)
			return nil
		}
		shorthand := &ast.UserIdentifier{NodeInfo: ast.Info(expr.Pos(), expr.Original()), Name: name}
		args.Keyword = append(args.Keyword, ast.KeyValue{Key: expr, Value: shorthand})
	}
	p.expect(")")
	if p.err != nil {
		return nil
	}

	if dup := lo.FindDuplicatesBy(args.Keyword, func(kv ast.KeyValue) string {
		name, _ := metadataKeyName(kv.Key)
		return name
	}); len(dup) > 0 {
		p.fail(diagnostics.ErrExpectedParamName, open)
		return nil
	}

	return &ast.FunctionCall{
		NodeInfo:  ast.Info(left.Pos(), left.Original()),
		Function:  left,
		Arguments: args,
	}
}
