package parser

import (
	"github.com/mtlang/interp/internal/ast"
	"github.com/mtlang/interp/internal/ierrors"
	"github.com/mtlang/interp/internal/token"
)

// Parse consumes the full token stream and returns the closed Program AST.
func (p *Parser) Parse() (*ast.Program, error) {
	if p.err != nil {
		return nil, p.err
	}
	prog := &ast.Program{Functions: map[string]*ast.FunctionDef{}}
	for !p.isKind(token.EOT) {
		fn, err := p.parseFunctionDef()
		if err != nil {
			// A lexical error turns cur into EOT, so any syntax error
			// seen after it is a consequence; report the lexical one.
			if p.err != nil {
				return nil, p.err
			}
			return nil, err
		}
		if _, dup := prog.Functions[fn.Name]; dup {
			return nil, &ierrors.SyntaxError{
				Kind: ierrors.FunctionDuplication,
				Pos:  fn.Pos(),
				Name: fn.Name,
			}
		}
		prog.Functions[fn.Name] = fn
		prog.Order = append(prog.Order, fn.Name)
	}
	return prog, p.err
}

func (p *Parser) parseFunctionDef() (*ast.FunctionDef, error) {
	nameTok, err := p.expectIdent(ierrors.CtxFunctionDef)
	if err != nil {
		return nil, err
	}
	if _, err := p.expectBracket(token.LPAREN, ierrors.CtxFunctionDef); err != nil {
		return nil, err
	}
	var params []string
	if p.isKind(token.IDENT) {
		params, err = p.parseParams()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expectBracket(token.RPAREN, ierrors.CtxFunctionDef); err != nil {
		return nil, err
	}
	body, err := p.parseStatementBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewFunctionDef(nameTok.Lexeme, params, body, nameTok.Pos), nil
}

func (p *Parser) parseParams() ([]string, error) {
	first, err := p.expectIdent(ierrors.CtxParams)
	if err != nil {
		return nil, err
	}
	params := []string{first.Lexeme}
	for p.isKind(token.COMMA) {
		p.consume()
		tok, err := p.expectIdent(ierrors.CtxParams)
		if err != nil {
			return nil, err
		}
		params = append(params, tok.Lexeme)
	}
	return params, nil
}
