package parser

import (
	"github.com/jostylr/rix-lang/internal/ast"
	"github.com/jostylr/rix-lang/internal/diagnostics"
	"github.com/jostylr/rix-lang/internal/symbols"
	"github.com/jostylr/rix-lang/internal/token"
)

// Arrow lowering (spec §4.5): `->`, `:->` and `:=>` all retroactively
// reinterpret an already-parsed left-hand expression as a parameter
// specification. The three entry points below share decomposeParamExpr /
// convertArgsToParams for that reinterpretation.

// parseFunctionDefinitionArrow handles `name(params) :-> body` (spec §4.5
// "Function definition"): left must already be a FunctionCall whose
// Function is a bare name and whose Arguments lower into a ParameterList.
func (p *Parser) parseFunctionDefinitionArrow(left ast.Expression) ast.Expression {
	tok := p.cur
	if _, isCall := left.(*ast.FunctionCall); !isCall {
		p.fail(diagnostics.ErrExpectedParamName, tok)
		return nil
	}
	name, ok := identifierName(headExpr(left))
	if !ok {
		p.fail(diagnostics.ErrExpectedParamName, tok)
		return nil
	}
	params, ok := paramsFromLeft(left)
	if !ok {
		p.fail(diagnostics.ErrExpectedParamName, tok)
		return nil
	}
	p.nextToken()
	body := p.parseExpression(symbols.PrecArrowFamily)
	if p.err != nil {
		return nil
	}
	return &ast.FunctionDefinition{
		NodeInfo:   ast.Info(left.Pos(), left.Original()),
		Name:       name,
		Parameters: params,
		Body:       body,
	}
}

// parseArrowLambda handles plain `(params) -> body` anonymous functions
// (spec §4.5 "Function lambda"). A left side that does not lower into a
// parameter list (e.g. `_1 -> _1 + 1`) yields a plain BinaryOperation "->".
func (p *Parser) parseArrowLambda(left ast.Expression) ast.Expression {
	tok := p.cur
	params, ok := paramsFromLeft(left)
	p.nextToken()
	body := p.parseExpression(symbols.PrecArrow)
	if p.err != nil {
		return nil
	}
	if !ok {
		return &ast.BinaryOperation{NodeInfo: ast.Info(tok.Pos, tok.Original), Operator: tok.Value, Left: left, Right: body}
	}
	return &ast.FunctionLambda{
		NodeInfo:   ast.Info(left.Pos(), left.Original()),
		Parameters: params,
		Body:       body,
	}
}

// parsePatternMatchingArrow handles `:=>` (spec §4.5 "Pattern-matching
// function definition"). Left is either a named head (a bare identifier
// or a FunctionCall, e.g. `g`, `f(x)`) or an anonymous parameter spec
// (e.g. `(x)`, spec's literal `"{(x) :=> x+1, ...}"` scenario). Right is
// either an array of arrow-lambdas (optionally metadata-wrapped or
// nested one level), a single bare arrow-lambda, or — when neither
// shape matches — a plain body expression paired with left's own
// parameter spec as the lone pattern.
func (p *Parser) parsePatternMatchingArrow(left ast.Expression) ast.Expression {
	p.nextToken()
	rhs := p.parseExpression(symbols.PrecArrowFamily)
	if p.err != nil {
		return nil
	}

	name, _ := identifierName(headExpr(left))

	if cases, metadata, ok := lowerPatternCases(rhs); ok {
		return &ast.PatternMatchingFunction{
			NodeInfo: ast.Info(left.Pos(), left.Original()),
			Name:     name,
			Patterns: cases,
			Metadata: metadata,
		}
	}

	params, ok := paramsFromLeft(left)
	if !ok {
		p.fail(diagnostics.ErrExpectedParamName, token.Token{Pos: left.Pos()})
		return nil
	}
	return &ast.PatternMatchingFunction{
		NodeInfo: ast.Info(left.Pos(), left.Original()),
		Name:     name,
		Patterns: []ast.PatternCase{{Parameters: params, Body: rhs}},
	}
}

// headExpr extracts the identifier-bearing expression from left when left
// names a pattern-matching function's head: a bare identifier, or a
// FunctionCall's Function. Any other shape (e.g. a bare parameter
// grouping like `(x)`) has no head name, and identifierName on it
// correctly reports ok=false.
func headExpr(left ast.Expression) ast.Expression {
	if call, ok := left.(*ast.FunctionCall); ok {
		return call.Function
	}
	return left
}

// paramsFromLeft converts the already-parsed left-hand expression into a
// ParameterList, regardless of which of the syntactic shapes it arrived
// in (spec §4.5 "Arrow lowering"):
//   - a FunctionCall's Arguments       (`f(x, y := 1)`)
//   - a Grouping wrapping a
//     ParameterListExpr                (`(x; y > 0) -> ...`, from a `;`
//     that forced deferred parameter recognition, spec §9)
//   - a bare expression, tuple, or
//     single conditional/default       (`x -> x + 1`, `(x ? x<0) -> -x`)
func paramsFromLeft(left ast.Expression) (ast.ParameterList, bool) {
	switch v := left.(type) {
	case *ast.FunctionCall:
		return convertArgsToParams(v.Arguments), true
	case *ast.Grouping:
		if ple, ok := v.Expression.(*ast.ParameterListExpr); ok {
			return ple.Parameters, true
		}
		return paramsFromLeft(v.Expression)
	case *ast.ParameterListExpr:
		return v.Parameters, true
	case *ast.Tuple:
		var list ast.ParameterList
		for _, el := range v.Elements {
			if !addParam(&list, el) {
				return ast.ParameterList{}, false
			}
		}
		return list, true
	default:
		var list ast.ParameterList
		if !addParam(&list, left) {
			return ast.ParameterList{}, false
		}
		return list, true
	}
}

// addParam decomposes one parameter-position expression and appends it
// (and any conditional it carries) onto list. Returns false when expr
// does not decompose into a valid parameter.
func addParam(list *ast.ParameterList, expr ast.Expression) bool {
	param, cond, ok := decomposeParamExpr(expr)
	if !ok {
		return false
	}
	if cond != nil {
		list.Conditionals = append(list.Conditionals, cond)
	}
	list.Positional = append(list.Positional, param)
	return true
}

// convertArgsToParams folds a call-site Arguments list into a
// ParameterList: positional arguments become positional parameters
// (decomposed for defaults/conditionals), keyword arguments become keyword
// parameters directly.
func convertArgsToParams(args ast.Arguments) ast.ParameterList {
	var list ast.ParameterList
	for _, pos := range args.Positional {
		addParam(&list, pos)
	}
	for _, kv := range args.Keyword {
		name, _ := metadataKeyName(kv.Key)
		list.Keyword = append(list.Keyword, ast.Parameter{Name: name, Default: kv.Value})
	}
	return list
}

// decomposeParamExpr recursively unwraps a single parameter-position
// expression: `name`, `name := default`, or `param ? cond` (spec §4.4's
// shared-conditional shape, whose condition is hoisted into the caller's
// ParameterList.Conditionals since Parameter itself carries no
// conditional field).
func decomposeParamExpr(expr ast.Expression) (ast.Parameter, ast.Expression, bool) {
	switch v := expr.(type) {
	case *ast.BinaryOperation:
		switch v.Operator {
		case ":=":
			name, ok := identifierName(v.Left)
			if !ok {
				return ast.Parameter{}, nil, false
			}
			return ast.Parameter{Name: name, Default: v.Right}, nil, true
		case "?":
			param, innerCond, ok := decomposeParamExpr(v.Left)
			if !ok {
				return ast.Parameter{}, nil, false
			}
			if innerCond != nil {
				return param, innerCond, true // already-decomposed nested conditional keeps priority
			}
			return param, v.Right, true
		default:
			return ast.Parameter{}, nil, false
		}
	default:
		name, ok := identifierName(expr)
		if !ok {
			return ast.Parameter{}, nil, false
		}
		return ast.Parameter{Name: name}, nil, true
	}
}

// lowerPatternCases accepts the right-hand shapes spec §4.5/§9 allow for
// `:=>`'s multi-case form: a plain Array of FunctionLambda, a
// WithMetadata wrapping such an Array, an Array-of-Array (one extra
// nesting level), or a single bare FunctionLambda (naturally produced
// when `->` — tighter-binding than `:=>` — already lowered the whole
// right side to one lambda).
func lowerPatternCases(rhs ast.Expression) ([]ast.PatternCase, []ast.MetadataEntry, bool) {
	if lambda, ok := rhs.(*ast.FunctionLambda); ok {
		return []ast.PatternCase{{Parameters: lambda.Parameters, Body: lambda.Body}}, nil, true
	}

	var metadata []ast.MetadataEntry
	arr := rhs
	if wm, ok := rhs.(*ast.WithMetadata); ok {
		metadata = wm.Metadata
		arr = wm.Primary
	}

	array, ok := arr.(*ast.Array)
	if !ok {
		return nil, nil, false
	}

	elements := array.Elements
	if len(elements) == 1 {
		if inner, ok := elements[0].(*ast.Array); ok {
			elements = inner.Elements
		}
	}

	cases := make([]ast.PatternCase, 0, len(elements))
	for _, el := range elements {
		lambda, ok := el.(*ast.FunctionLambda)
		if !ok {
			return nil, nil, false
		}
		cases = append(cases, ast.PatternCase{Parameters: lambda.Parameters, Body: lambda.Body})
	}
	return cases, metadata, true
}
