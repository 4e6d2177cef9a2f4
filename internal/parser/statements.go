package parser

import (
	"github.com/mtlang/interp/internal/ast"
	"github.com/mtlang/interp/internal/ierrors"
	"github.com/mtlang/interp/internal/token"
)

func (p *Parser) parseStatementBlock() (*ast.StatementBlock, error) {
	open, err := p.expectBracket(token.LBRACE, ierrors.CtxStatementBlock)
	if err != nil {
		return nil, err
	}
	var stmts []ast.Statement
	for !p.isKind(token.RBRACE) {
		if p.isKind(token.EOT) {
			return nil, &ierrors.SyntaxError{Kind: ierrors.MissingBracket, Pos: p.cur.Pos,
				Context: ierrors.CtxStatementBlock, Expected: token.RBRACE.String(), Actual: p.cur.Kind.String()}
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	p.consume() // '}'
	return ast.NewStatementBlock(stmts, open.Pos), nil
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.cur.Kind {
	case token.IF:
		return p.parseIf()
	case token.UNTIL:
		return p.parseUntil()
	case token.RETURN:
		return p.parseReturn()
	case token.LBRACE:
		return p.parseStatementBlock()
	case token.IDENT:
		return p.parseAssignOrCall()
	default:
		return nil, unexpected(p.cur.Pos, ierrors.CtxStatementBlock)
	}
}

func (p *Parser) parseIf() (ast.Statement, error) {
	kw := p.consume() // 'if'
	if _, err := p.expectBracket(token.LPAREN, ierrors.CtxIfStatement); err != nil {
		return nil, err
	}
	cond, err := p.parseOrCondition()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectBracket(token.RPAREN, ierrors.CtxIfStatement); err != nil {
		return nil, err
	}
	then, err := p.parseStatementBlock()
	if err != nil {
		return nil, err
	}
	var elseStmt ast.Statement
	if p.isKind(token.ELSE) {
		p.consume()
		switch p.cur.Kind {
		case token.LBRACE:
			elseStmt, err = p.parseStatementBlock()
		case token.IF:
			elseStmt, err = p.parseIf()
		default:
			err = &ierrors.SyntaxError{Kind: ierrors.MissingElseStatement, Pos: p.cur.Pos, Context: ierrors.CtxIfStatement}
		}
		if err != nil {
			return nil, err
		}
	}
	return ast.NewIf(cond, then, elseStmt, kw.Pos), nil
}

func (p *Parser) parseUntil() (ast.Statement, error) {
	kw := p.consume() // 'until'
	if _, err := p.expectBracket(token.LPAREN, ierrors.CtxUntilStatement); err != nil {
		return nil, err
	}
	cond, err := p.parseOrCondition()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectBracket(token.RPAREN, ierrors.CtxUntilStatement); err != nil {
		return nil, err
	}
	body, err := p.parseStatementBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewUntil(cond, body, kw.Pos), nil
}

func (p *Parser) parseReturn() (ast.Statement, error) {
	kw := p.consume() // 'return'
	if p.isExprStart() {
		expr, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		return ast.NewReturn(expr, kw.Pos), nil
	}
	return ast.NewReturn(nil, kw.Pos), nil
}

// isExprStart reports whether cur can begin an Additive expression,
// distinguishing a bare "return" from "return <expr>".
func (p *Parser) isExprStart() bool {
	switch p.cur.Kind {
	case token.MINUS, token.IDENT, token.LPAREN, token.NUMBER, token.STRING, token.LBRACKET:
		return true
	default:
		return false
	}
}

func (p *Parser) parseAssignOrCall() (ast.Statement, error) {
	nameTok := p.consume() // IDENT
	if p.isKind(token.LPAREN) {
		args, err := p.parseCallTail(nameTok)
		if err != nil {
			return nil, err
		}
		return args, nil
	}

	var idx *ast.IndexOp
	if p.isKind(token.LBRACKET) {
		var err error
		idx, err = p.parseIndexOp()
		if err != nil {
			return nil, err
		}
	}
	eq, err := p.expect(token.ASSIGN, ierrors.CtxAssignOrCall)
	if err != nil {
		return nil, err
	}
	rhs, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	target := ast.NewIdentifierRef(nameTok.Lexeme, idx, nameTok.Pos)
	return ast.NewAssign(target, rhs, eq.Pos), nil
}

// parseCallTail parses the "(" Args ")" suffix of a call whose name
// token has already been consumed.
func (p *Parser) parseCallTail(nameTok token.Token) (*ast.Call, error) {
	p.consume() // '('
	var args []ast.Expression
	if !p.isKind(token.RPAREN) {
		var err error
		args, err = p.parseArguments()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expectBracket(token.RPAREN, ierrors.CtxArguments); err != nil {
		return nil, err
	}
	return ast.NewCall(nameTok.Lexeme, args, nameTok.Pos), nil
}

func (p *Parser) parseArguments() ([]ast.Expression, error) {
	first, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	args := []ast.Expression{first}
	for p.isKind(token.COMMA) {
		p.consume()
		arg, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return args, nil
}
