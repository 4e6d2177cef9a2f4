package parser

import (
	"github.com/mtlang/interp/internal/ast"
	"github.com/mtlang/interp/internal/token"
)

func (p *Parser) parseOrCondition() (ast.Condition, error) {
	pos := p.cur.Pos
	first, err := p.parseAndCondition()
	if err != nil {
		return nil, err
	}
	operands := []ast.Condition{first}
	for p.isKind(token.OR) {
		p.consume()
		next, err := p.parseAndCondition()
		if err != nil {
			return nil, err
		}
		operands = append(operands, next)
	}
	if len(operands) == 1 {
		return operands[0], nil
	}
	return ast.NewOr(operands, pos), nil
}

func (p *Parser) parseAndCondition() (ast.Condition, error) {
	pos := p.cur.Pos
	first, err := p.parseRelCondition()
	if err != nil {
		return nil, err
	}
	operands := []ast.Condition{first}
	for p.isKind(token.AND) {
		p.consume()
		next, err := p.parseRelCondition()
		if err != nil {
			return nil, err
		}
		operands = append(operands, next)
	}
	if len(operands) == 1 {
		return operands[0], nil
	}
	return ast.NewAnd(operands, pos), nil
}

var cmpOps = map[token.Kind]ast.CmpOp{
	token.LT: ast.CmpLT,
	token.LE: ast.CmpLE,
	token.GT: ast.CmpGT,
	token.GE: ast.CmpGE,
	token.EQ: ast.CmpEQ,
	token.NE: ast.CmpNE,
}

func (p *Parser) parseRelCondition() (ast.Condition, error) {
	pos := p.cur.Pos
	negated := false
	if p.isKind(token.NOT) {
		p.consume()
		negated = true
	}
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	if op, ok := cmpOps[p.cur.Kind]; ok {
		p.consume()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		return ast.NewRel(negated, left, &op, right, pos), nil
	}
	if negated {
		return ast.NewRel(true, left, nil, nil, pos), nil
	}
	// Collapsed singleton: a bare expression used directly as a condition.
	return &ast.ExprCond{Expr: left}, nil
}
