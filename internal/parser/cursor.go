// Package parser implements the single-token-lookahead recursive-descent
// parser of SPEC_FULL.md §4.3, translating the grammar almost 1:1 from
// original_source/syntactic/analyzer.py into the closed ast node set.
package parser

import (
	"github.com/mtlang/interp/internal/ierrors"
	"github.com/mtlang/interp/internal/lexer"
	"github.com/mtlang/interp/internal/token"
)

// Parser holds the single-token lookahead invariant: cur is a token that
// has been classified but not yet consumed.
type Parser struct {
	lx  *lexer.Lexer
	cur token.Token
	err error // first lexical error encountered while priming cur, if any
}

// New constructs a Parser over lx, priming the lookahead token.
func New(lx *lexer.Lexer) *Parser {
	p := &Parser{lx: lx}
	p.advance()
	return p
}

func (p *Parser) advance() {
	tok, err := p.lx.Next()
	if err != nil {
		if p.err == nil {
			p.err = err
		}
		p.cur = token.Token{Kind: token.EOT}
		return
	}
	p.cur = tok
}

func (p *Parser) isKind(k token.Kind) bool { return p.cur.Kind == k }

func (p *Parser) consume() token.Token {
	t := p.cur
	p.advance()
	return t
}

// expect consumes cur if it matches k, else returns a TokenMismatch error.
func (p *Parser) expect(k token.Kind, ctx ierrors.Context) (token.Token, error) {
	if !p.isKind(k) {
		return token.Token{}, &ierrors.SyntaxError{
			Kind:     ierrors.TokenMismatch,
			Pos:      p.cur.Pos,
			Context:  ctx,
			Expected: k.String(),
			Actual:   p.cur.Kind.String(),
		}
	}
	return p.consume(), nil
}

func (p *Parser) expectBracket(k token.Kind, ctx ierrors.Context) (token.Token, error) {
	if !p.isKind(k) {
		return token.Token{}, &ierrors.SyntaxError{
			Kind:     ierrors.MissingBracket,
			Pos:      p.cur.Pos,
			Context:  ctx,
			Expected: k.String(),
			Actual:   p.cur.Kind.String(),
		}
	}
	return p.consume(), nil
}

func (p *Parser) expectIdent(ctx ierrors.Context) (token.Token, error) {
	if !p.isKind(token.IDENT) {
		return token.Token{}, &ierrors.SyntaxError{
			Kind:    ierrors.MissingIdentifier,
			Pos:     p.cur.Pos,
			Context: ctx,
			Actual:  p.cur.Kind.String(),
		}
	}
	return p.consume(), nil
}

func unexpected(pos token.Position, ctx ierrors.Context) error {
	return &ierrors.SyntaxError{Kind: ierrors.UnexpectedToken, Pos: pos, Context: ctx}
}
