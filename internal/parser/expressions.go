package parser

import (
	"github.com/mtlang/interp/internal/ast"
	"github.com/mtlang/interp/internal/ierrors"
	"github.com/mtlang/interp/internal/token"
)

func (p *Parser) parseAdditive() (ast.Expression, error) {
	pos := p.cur.Pos
	first, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	terms := []ast.Expression{first}
	var ops []ast.BinOp
	for p.isKind(token.PLUS) || p.isKind(token.MINUS) {
		op := ast.OpAdd
		if p.isKind(token.MINUS) {
			op = ast.OpSub
		}
		p.consume()
		next, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		terms = append(terms, next)
		ops = append(ops, op)
	}
	if len(terms) == 1 {
		return terms[0], nil
	}
	return ast.NewAdditive(terms, ops, pos), nil
}

func (p *Parser) parseMultiplicative() (ast.Expression, error) {
	pos := p.cur.Pos
	first, err := p.parseAtomic()
	if err != nil {
		return nil, err
	}
	terms := []ast.Expression{first}
	var ops []ast.BinOp
	for p.isKind(token.STAR) || p.isKind(token.SLASH) {
		op := ast.OpMul
		if p.isKind(token.SLASH) {
			op = ast.OpDiv
		}
		p.consume()
		next, err := p.parseAtomic()
		if err != nil {
			return nil, err
		}
		terms = append(terms, next)
		ops = append(ops, op)
	}
	if len(terms) == 1 {
		return terms[0], nil
	}
	return ast.NewMultiplicative(terms, ops, pos), nil
}

func (p *Parser) parseAtomic() (ast.Expression, error) {
	pos := p.cur.Pos
	negated := false
	if p.isKind(token.MINUS) {
		p.consume()
		negated = true
	}

	var inner ast.Expression
	var err error
	switch p.cur.Kind {
	case token.IDENT:
		inner, err = p.parseIdentOrCall()
	case token.LPAREN:
		p.consume()
		var cond ast.Condition
		cond, err = p.parseOrCondition()
		if err == nil {
			_, err = p.expectBracket(token.RPAREN, ierrors.CtxAtomic)
		}
		if err == nil {
			inner = &ast.CondExpr{Cond: cond}
		}
	case token.NUMBER:
		t := p.consume()
		inner = ast.NewNumberLit(t.Num, t.Pos)
	case token.STRING:
		t := p.consume()
		inner = ast.NewStringLit(t.Str, t.Pos)
	case token.LBRACKET:
		inner, err = p.parseMatrixLit()
	default:
		err = &ierrors.SyntaxError{Kind: ierrors.MissingExpression, Pos: p.cur.Pos, Context: ierrors.CtxAtomic}
	}
	if err != nil {
		return nil, err
	}
	if negated {
		return ast.NewNegated(inner, pos), nil
	}
	return inner, nil
}

// parseIdentOrCall disambiguates IDENT "(" (a call) from a plain
// identifier reference, optionally indexed — this parser additionally
// allows IdRef indexing in read/expression position (SPEC_FULL.md §9
// item 6), beyond what original_source's parser supports.
func (p *Parser) parseIdentOrCall() (ast.Expression, error) {
	nameTok := p.consume()
	if p.isKind(token.LPAREN) {
		return p.parseCallTail(nameTok)
	}
	var idx *ast.IndexOp
	if p.isKind(token.LBRACKET) {
		var err error
		idx, err = p.parseIndexOp()
		if err != nil {
			return nil, err
		}
	}
	return ast.NewIdentifierRef(nameTok.Lexeme, idx, nameTok.Pos), nil
}

func (p *Parser) parseIndexOp() (*ast.IndexOp, error) {
	open := p.consume() // '['
	first, err := p.parseSelector()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COMMA, ierrors.CtxIndexOp); err != nil {
		return nil, unexpected(p.cur.Pos, ierrors.CtxIndexOp)
	}
	second, err := p.parseSelector()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectBracket(token.RBRACKET, ierrors.CtxIndexOp); err != nil {
		return nil, err
	}
	return ast.NewIndexOp(first, second, open.Pos), nil
}

func (p *Parser) parseSelector() (ast.Selector, error) {
	if p.isKind(token.COLON) {
		t := p.consume()
		return ast.NewDotsSelect(t.Pos), nil
	}
	if !p.isExprStart() {
		return nil, &ierrors.SyntaxError{Kind: ierrors.MissingSelector, Pos: p.cur.Pos, Context: ierrors.CtxSelector}
	}
	expr, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	return ast.AsSelector(expr), nil
}

// parseMatrixLit only assembles the row structure; row-length consistency
// is an execution-time concern (InvalidMatrixLiteral, spec.md §7), checked
// by internal/interp when the literal is evaluated, not here.
func (p *Parser) parseMatrixLit() (ast.Expression, error) {
	open := p.consume() // '['
	var rows [][]ast.Expression
	row, err := p.parseMatrixRow()
	if err != nil {
		return nil, err
	}
	rows = append(rows, row)
	for p.isKind(token.SEMI) {
		p.consume()
		row, err = p.parseMatrixRow()
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	if _, err := p.expectBracket(token.RBRACKET, ierrors.CtxMatrixLiteral); err != nil {
		return nil, err
	}
	return ast.NewMatrixLit(rows, open.Pos), nil
}

func (p *Parser) parseMatrixRow() ([]ast.Expression, error) {
	first, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	row := []ast.Expression{first}
	for p.isKind(token.COMMA) {
		p.consume()
		next, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		row = append(row, next)
	}
	return row, nil
}
