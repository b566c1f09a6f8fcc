package parser

import (
	"github.com/jostylr/rix-lang/internal/ast"
	"github.com/jostylr/rix-lang/internal/diagnostics"
	"github.com/jostylr/rix-lang/internal/oracle"
	"github.com/jostylr/rix-lang/internal/symbols"
	"github.com/jostylr/rix-lang/internal/token"
)

// parseExpression is the Pratt Engine (spec §4.1): parse a prefix, then
// fold in infix operators whose right-binding precedence is at least
// minPrecedence.
func (p *Parser) parseExpression(minPrecedence int) ast.Expression {
	left := p.parsePrefix()
	if p.err != nil {
		return left
	}
	for {
		prec, assoc, ok := p.precedenceOf(p.cur)
		if !ok || prec < minPrecedence {
			return left
		}
		left = p.parseInfix(left, prec, assoc)
		if p.err != nil {
			return left
		}
	}
}

func (p *Parser) parsePrefix() ast.Expression {
	fn, ok := p.prefixParseFns[dispatchKey(p.cur)]
	if !ok {
		if p.cur.Type == token.Symbol {
			p.fail(diagnostics.ErrUnexpectedSymbol, p.cur, p.cur.Value)
		} else {
			p.fail(diagnostics.ErrNoPrefixParseFn, p.cur, dispatchKey(p.cur))
		}
		return nil
	}
	return fn()
}

func (p *Parser) parseInfix(left ast.Expression, prec int, assoc symbols.Associativity) ast.Expression {
	key := dispatchKey(p.cur)
	if fn, ok := p.infixParseFns[key]; ok {
		return fn(left)
	}
	// An oracle-declared infix operator with no dedicated handler: fold it
	// into a plain BinaryOperation using the generic formula (spec §9
	// "Oracle-driven operators").
	return p.parseOracleBinaryInfix(left, prec, assoc)
}

// --- Leaves ----------------------------------------------------------------

func (p *Parser) parseNumber() ast.Expression {
	tok := p.cur
	p.nextToken()
	return &ast.Number{NodeInfo: ast.Info(tok.Pos, tok.Original), Value: tok.Value}
}

func (p *Parser) parsePlaceHolder() ast.Expression {
	tok := p.cur
	p.nextToken()
	place := 0
	if tok.Place != nil {
		place = *tok.Place
	}
	return &ast.PlaceHolder{NodeInfo: ast.Info(tok.Pos, tok.Original), Place: place}
}

func (p *Parser) parseNull() ast.Expression {
	tok := p.cur
	p.nextToken()
	return &ast.Null{NodeInfo: ast.Info(tok.Pos, tok.Original)}
}

func (p *Parser) parseStringOrEmbedded() ast.Expression {
	if p.cur.Subkind == token.SubkindBacktick {
		return p.parseBacktickString()
	}
	tok := p.cur
	p.nextToken()
	return &ast.String{NodeInfo: ast.Info(tok.Pos, tok.Original), Value: tok.Value, Kind: string(tok.Subkind)}
}

// parseIdentifierPrefix is the registered prefix handler for identifiers
// (spec §4.2: "Identifiers marked System invoke the oracle"). A System
// identifier whose oracle descriptor is a prefix operator (e.g. NOT) is
// parsed as a UnaryOperation instead of a bare leaf (spec §9
// "Oracle-driven operators" plug into the Pratt engine at parse time).
func (p *Parser) parseIdentifierPrefix() ast.Expression {
	tok := p.cur
	if tok.Subkind != token.SubkindSystem {
		p.nextToken()
		return &ast.UserIdentifier{NodeInfo: ast.Info(tok.Pos, tok.Original), Name: tok.Value}
	}
	desc := p.oracle.Lookup(tok.Value).Normalize()
	if desc.Type == oracle.KindOperator && desc.OperatorType == oracle.FixityPrefix {
		p.nextToken()
		operand := p.parseExpression(desc.Precedence)
		if p.err != nil {
			return nil
		}
		return &ast.UnaryOperation{NodeInfo: ast.Info(tok.Pos, tok.Original), Operator: tok.Value, Operand: operand}
	}
	p.nextToken()
	return &ast.SystemIdentifier{NodeInfo: ast.Info(tok.Pos, tok.Original), Name: tok.Value, SystemInfo: desc}
}

// parseIdentifierLeaf builds an identifier node without considering the
// oracle-operator-as-prefix override — used where the grammar requires a
// bare name (calculus variable lists, integral function names).
func (p *Parser) parseIdentifierLeaf() ast.Expression {
	tok := p.cur
	p.nextToken()
	if tok.Subkind == token.SubkindSystem {
		desc := p.oracle.Lookup(tok.Value).Normalize()
		return &ast.SystemIdentifier{NodeInfo: ast.Info(tok.Pos, tok.Original), Name: tok.Value, SystemInfo: desc}
	}
	return &ast.UserIdentifier{NodeInfo: ast.Info(tok.Pos, tok.Original), Name: tok.Value}
}

func (p *Parser) parseUnaryPrefix() ast.Expression {
	tok := p.cur
	p.nextToken()
	operand := p.parseExpression(symbols.PrecUnary)
	if p.err != nil {
		return nil
	}
	return &ast.UnaryOperation{NodeInfo: ast.Info(tok.Pos, tok.Original), Operator: tok.Value, Operand: operand}
}

// --- Generic binary infix ---------------------------------------------------

// parseBinaryInfix handles every built-in binary operator that needs no
// node type beyond BinaryOperation. Precedence/associativity come from the
// built-in symbol table (spec §4.1's formula: right operand parses at
// p+1 for left-assoc, p for right-assoc).
func (p *Parser) parseBinaryInfix(left ast.Expression) ast.Expression {
	tok := p.cur
	prec, assoc, _ := symbols.InfixPrecedence(tok.Value)
	p.nextToken()
	nextMin := prec
	if assoc == symbols.AssocLeft {
		nextMin = prec + 1
	}
	right := p.parseExpression(nextMin)
	if p.err != nil {
		return nil
	}
	return &ast.BinaryOperation{NodeInfo: ast.Info(tok.Pos, tok.Original), Operator: tok.Value, Left: left, Right: right}
}

// parseOracleBinaryInfix is parseBinaryInfix's counterpart for
// oracle-declared infix operators (identifiers, not symbols).
func (p *Parser) parseOracleBinaryInfix(left ast.Expression, prec int, assoc symbols.Associativity) ast.Expression {
	tok := p.cur
	p.nextToken()
	nextMin := prec
	if assoc == symbols.AssocLeft {
		nextMin = prec + 1
	}
	right := p.parseExpression(nextMin)
	if p.err != nil {
		return nil
	}
	return &ast.BinaryOperation{NodeInfo: ast.Info(tok.Pos, tok.Original), Operator: tok.Value, Left: left, Right: right}
}

// --- Property access & pipes -----------------------------------------------

func (p *Parser) parseDotAccess(left ast.Expression) ast.Expression {
	tok := p.cur
	p.nextToken()
	prop := p.parseExpression(symbols.PrecPropertyAccess)
	if p.err != nil {
		return nil
	}
	return &ast.PropertyAccess{NodeInfo: ast.Info(tok.Pos, tok.Original), Object: left, Property: prop}
}

func (p *Parser) parseIndexAccess(left ast.Expression) ast.Expression {
	tok := p.cur
	p.nextToken()
	prop := p.parseExpression(0)
	if p.err != nil {
		return nil
	}
	p.expect("]")
	return &ast.PropertyAccess{NodeInfo: ast.Info(tok.Pos, tok.Original), Object: left, Property: prop}
}

func (p *Parser) parsePipe(left ast.Expression) ast.Expression {
	tok := p.cur
	prec, assoc, _ := symbols.InfixPrecedence(tok.Value)
	p.nextToken()
	nextMin := prec
	if assoc == symbols.AssocLeft {
		nextMin = prec + 1
	}
	right := p.parseExpression(nextMin)
	if p.err != nil {
		return nil
	}
	info := ast.Info(tok.Pos, tok.Original)
	switch tok.Value {
	case "||>":
		return &ast.ExplicitPipe{NodeInfo: info, Operator: tok.Value, Left: left, Right: right}
	case "|>>":
		return &ast.PipeMap{NodeInfo: info, Operator: tok.Value, Left: left, Right: right}
	case "|>?":
		return &ast.PipeFilter{NodeInfo: info, Operator: tok.Value, Left: left, Right: right}
	case "|:":
		return &ast.PipeReduce{NodeInfo: info, Operator: tok.Value, Left: left, Right: right}
	default:
		return &ast.Pipe{NodeInfo: info, Operator: tok.Value, Left: left, Right: right}
	}
}

// identifierName extracts the plain name from a UserIdentifier or
// SystemIdentifier node — used throughout arrow lowering and parameter
// conversion, where spec §4.5 repeatedly needs "the name" of an
// already-parsed expression.
func identifierName(e ast.Expression) (string, bool) {
	switch v := e.(type) {
	case *ast.UserIdentifier:
		return v.Name, true
	case *ast.SystemIdentifier:
		return v.Name, true
	}
	return "", false
}
