package parser

import (
	"github.com/jostylr/rix-lang/internal/ast"
	"github.com/jostylr/rix-lang/internal/diagnostics"
	"github.com/jostylr/rix-lang/internal/token"
)

// Calculus operators (spec §4.6). A derivative is postfix: `f''[x](3)`.
// An integral is prefix: `''f[x](0,3)`. Both share the same trailing
// shape — an optional `[vars]` variable list, then an optional
// parenthesized argument list classified as either an Evaluation (plain
// values) or Operations (any argument itself containing a calculus
// operator).

// parseDerivativePostfix is the registered infix handler for postfix `'`.
func (p *Parser) parseDerivativePostfix(left ast.Expression) ast.Expression {
	start := p.cur
	order := 0
	for p.cur.Is("'") {
		order++
		p.nextToken()
	}

	variables := p.parseCalculusVariableList()
	if p.err != nil {
		return nil
	}

	evaluation, operations := p.parseCalculusArgList()
	if p.err != nil {
		return nil
	}

	return &ast.Derivative{
		NodeInfo:   ast.Info(left.Pos(), combineOriginal(left.Original(), start.Original)),
		Function:   left,
		Order:      order,
		Variables:  variables,
		Evaluation: evaluation,
		Operations: operations,
	}
}

// parseIntegralPrefix is the registered prefix handler for a leading run
// of `'`. It must be followed by a function name (spec §4.6 "requires
// function name after primes").
func (p *Parser) parseIntegralPrefix() ast.Expression {
	start := p.cur
	order := 0
	for p.cur.Is("'") {
		order++
		p.nextToken()
	}

	if !(p.cur.Type == token.Identifier) {
		p.fail(diagnostics.ErrExpectedFunctionName, p.cur)
		return nil
	}
	fn := p.parseIdentifierLeaf()
	if p.err != nil {
		return nil
	}

	variables := p.parseCalculusVariableList()
	if p.err != nil {
		return nil
	}

	evaluation, operations := p.parseCalculusArgList()
	if p.err != nil {
		return nil
	}

	return &ast.Integral{
		NodeInfo:   ast.Info(start.Pos, start.Original),
		Function:   fn,
		Order:      order,
		Variables:  variables,
		Evaluation: evaluation,
		Operations: operations,
		Metadata: []ast.MetadataEntry{
			{Name: "integrationConstant", Value: &ast.String{NodeInfo: ast.Info(start.Pos, start.Original), Value: "c", Kind: "quote"}},
			{Name: "defaultValue", Value: &ast.Number{NodeInfo: ast.Info(start.Pos, start.Original), Value: "0"}},
		},
	}
}

// parseCalculusVariableList parses an optional `[v1, v2, ...]` clause.
// Returns nil when no `[` is present.
func (p *Parser) parseCalculusVariableList() []ast.Expression {
	if !p.cur.Is("[") {
		return nil
	}
	open := p.cur
	p.nextToken()
	var vars []ast.Expression
	for !p.cur.Is("]") {
		if p.cur.Is(",") {
			p.nextToken()
			continue
		}
		if !(p.cur.Type == token.Identifier) {
			p.fail(diagnostics.ErrExpectedVariableName, p.cur)
			return nil
		}
		vars = append(vars, p.parseIdentifierLeaf())
		if p.err != nil {
			return nil
		}
		if !p.cur.Is(",") && !p.cur.Is("]") {
			p.fail(diagnostics.ErrExpectedCommaOrBracket, p.cur)
			return nil
		}
	}
	p.expect("]")
	_ = open
	return vars
}

// parseCalculusArgList parses an optional parenthesized argument list and
// classifies it: any argument that itself contains a calculus operator
// routes the whole list to Operations instead of Evaluation (spec §4.6).
func (p *Parser) parseCalculusArgList() (evaluation, operations []ast.Expression) {
	if !p.cur.Is("(") {
		return nil, nil
	}
	p.nextToken()
	var args []ast.Expression
	for !p.cur.Is(")") {
		if p.cur.Is(",") {
			p.nextToken()
			continue
		}
		arg := p.parseExpression(0)
		if p.err != nil {
			return nil, nil
		}
		args = append(args, arg)
	}
	p.expect(")")
	if p.err != nil {
		return nil, nil
	}
	for _, a := range args {
		if containsCalculusOp(a) {
			return nil, args
		}
	}
	return args, nil
}

// containsCalculusOp reports whether expr is, or contains, a Derivative or
// Integral (spec §4.6 "evaluation vs operations classification"). It
// descends only through unary and binary operations, groupings, function
// calls and property accesses; other node kinds are not searched.
func containsCalculusOp(expr ast.Expression) bool {
	switch v := expr.(type) {
	case *ast.Derivative, *ast.Integral:
		return true
	case *ast.UnaryOperation:
		return containsCalculusOp(v.Operand)
	case *ast.BinaryOperation:
		return containsCalculusOp(v.Left) || containsCalculusOp(v.Right)
	case *ast.Grouping:
		return containsCalculusOp(v.Expression)
	case *ast.FunctionCall:
		if containsCalculusOp(v.Function) {
			return true
		}
		for _, a := range v.Arguments.Positional {
			if containsCalculusOp(a) {
				return true
			}
		}
		for _, kv := range v.Arguments.Keyword {
			if containsCalculusOp(kv.Value) {
				return true
			}
		}
		return false
	case *ast.PropertyAccess:
		return containsCalculusOp(v.Object) || containsCalculusOp(v.Property)
	default:
		return false
	}
}

// combineOriginal joins the already-consumed left-hand source text with
// the starting token text of the postfix run that followed it, for the
// node's diagnostic Original field.
func combineOriginal(leftOriginal, tailOriginal string) string {
	return leftOriginal + tailOriginal
}
