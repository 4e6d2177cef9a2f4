// Package lexer implements the scanner described in SPEC_FULL.md §4.2: a
// one-character-lookahead tokenizer over a normalised character source,
// producing the closed token.Kind set and enforcing configurable size
// limits.
package lexer

import (
	"strconv"
	"strings"

	"github.com/mtlang/interp/internal/ierrors"
	"github.com/mtlang/interp/internal/source"
	"github.com/mtlang/interp/internal/token"
)

// Limits bounds the sizes the scanner accepts, matching
// original_source/lexical/analyzer.py's default_options.
type Limits struct {
	MaxStringSize       int
	MaxIdentifierLength int
	MaxNumberValue      float64
	MaxDecimalPrecision int
}

// DefaultLimits mirrors the reference implementation's defaults.
var DefaultLimits = Limits{
	MaxStringSize:       1024,
	MaxIdentifierLength: 256,
	MaxNumberValue:      2147483647,
	MaxDecimalPrecision: 8,
}

// Option configures a Lexer at construction time.
type Option func(*Lexer)

// WithLimits overrides the default size limits.
func WithLimits(l Limits) Option {
	return func(lx *Lexer) { lx.limits = l }
}

// Lexer scans a normalised character stream into tokens.
type Lexer struct {
	src    *source.Source
	limits Limits

	ch    rune
	chOK  bool
	chPos token.Position
}

// New constructs a Lexer over src, priming the one-character lookahead
// buffer as the reference analyzer's constructor does.
func New(src *source.Source, opts ...Option) *Lexer {
	lx := &Lexer{src: src, limits: DefaultLimits}
	for _, opt := range opts {
		opt(lx)
	}
	lx.advance()
	return lx
}

func (lx *Lexer) advance() {
	lx.ch, lx.chOK = lx.src.NextChar()
	lx.chPos = lx.src.Position()
}

func (lx *Lexer) atEOT() bool {
	return !lx.chOK
}

// Next returns the next token, or an error describing a lexical failure.
// After the source is exhausted, Next perpetually returns an EOT token.
func (lx *Lexer) Next() (token.Token, error) {
	lx.skipTrivia()

	if lx.atEOT() {
		return token.Token{Kind: token.EOT, Lexeme: "EOT", Pos: lx.chPos}, nil
	}

	if tok, ok := lx.tryExtensible(); ok {
		return tok, nil
	}
	if tok, ok := lx.tryInextensible(); ok {
		return tok, nil
	}
	if isDecimalDigit(lx.ch) {
		return lx.readNumber()
	}
	if lx.ch == '"' {
		return lx.readString()
	}
	if isAlpha(lx.ch) {
		return lx.readIdentifier()
	}

	return token.Token{}, ierrors.NewLexError(ierrors.InvalidToken, lx.chPos)
}

func (lx *Lexer) skipTrivia() {
	for !lx.atEOT() && (isSpace(lx.ch) || lx.ch == '#') {
		if lx.ch == '#' {
			lx.skipLineComment()
		} else {
			lx.advance()
		}
	}
}

func (lx *Lexer) skipLineComment() {
	for !lx.atEOT() && lx.ch != '\n' {
		lx.advance()
	}
}

func (lx *Lexer) tryExtensible() (token.Token, bool) {
	primary, ok := token.Extensible[lx.ch]
	if !ok {
		return token.Token{}, false
	}
	pos := lx.chPos
	first := lx.ch
	lx.advance()
	if !lx.atEOT() && lx.ch == '=' {
		lexeme := string(first) + "="
		kind := token.ExtensibleWithEq[lexeme]
		lx.advance()
		return token.Token{Kind: kind, Lexeme: lexeme, Pos: pos}, true
	}
	return token.Token{Kind: primary, Lexeme: string(first), Pos: pos}, true
}

func (lx *Lexer) tryInextensible() (token.Token, bool) {
	kind, ok := token.Inextensible[lx.ch]
	if !ok {
		return token.Token{}, false
	}
	pos := lx.chPos
	lexeme := string(lx.ch)
	lx.advance()
	return token.Token{Kind: kind, Lexeme: lexeme, Pos: pos}, true
}

func (lx *Lexer) readNumber() (token.Token, error) {
	pos := lx.chPos
	if lx.ch == '0' {
		return lx.readZeroStartingNumber(pos)
	}
	return lx.readRegularNumber(pos)
}

func (lx *Lexer) readZeroStartingNumber(pos token.Position) (token.Token, error) {
	lx.advance()
	if !lx.atEOT() && isDecimalDigit(lx.ch) {
		return token.Token{}, ierrors.NewLexError(ierrors.InvalidNumber, pos)
	}
	value := 0.0
	if !lx.atEOT() && lx.ch == '.' {
		dec, err := lx.readDecimalPart(pos)
		if err != nil {
			return token.Token{}, err
		}
		value = dec
	}
	return token.Token{Kind: token.NUMBER, Lexeme: formatNumberLexeme(value), Pos: pos, Num: value}, nil
}

func (lx *Lexer) readRegularNumber(pos token.Position) (token.Token, error) {
	value := 0.0
	for !lx.atEOT() && isDecimalDigit(lx.ch) {
		value = value*10 + float64(lx.ch-'0')
		if value >= lx.limits.MaxNumberValue {
			return token.Token{}, ierrors.NewLexError(ierrors.LargeNumber, pos)
		}
		lx.advance()
	}
	if !lx.atEOT() && lx.ch == '.' {
		dec, err := lx.readDecimalPart(pos)
		if err != nil {
			return token.Token{}, err
		}
		value += dec
	}
	return token.Token{Kind: token.NUMBER, Lexeme: formatNumberLexeme(value), Pos: pos, Num: value}, nil
}

func (lx *Lexer) readDecimalPart(pos token.Position) (float64, error) {
	lx.advance() // consume '.'
	value := 0.0
	decimals := 0
	for !lx.atEOT() && isDecimalDigit(lx.ch) {
		decimals++
		value = value*10 + float64(lx.ch-'0')
		if decimals > lx.limits.MaxDecimalPrecision {
			return 0, ierrors.NewLexError(ierrors.LargeDecimalPart, pos)
		}
		lx.advance()
	}
	if decimals == 0 {
		return 0, ierrors.NewLexError(ierrors.InvalidNumber, pos)
	}
	div := 1.0
	for i := 0; i < decimals; i++ {
		div *= 10
	}
	return value / div, nil
}

func (lx *Lexer) readString() (token.Token, error) {
	pos := lx.chPos
	lx.advance() // consume opening quote
	var sb strings.Builder
	for {
		if lx.atEOT() {
			return token.Token{}, ierrors.NewLexError(ierrors.InvalidString, pos)
		}
		if lx.ch == '"' {
			break
		}
		ch := lx.ch
		if ch == '$' {
			lx.advance()
			if lx.atEOT() {
				return token.Token{}, ierrors.NewLexError(ierrors.InvalidString, pos)
			}
			ch = lx.ch
		}
		sb.WriteRune(ch)
		if sb.Len() > lx.limits.MaxStringSize {
			return token.Token{}, ierrors.NewLexError(ierrors.LargeString, pos)
		}
		lx.advance()
	}
	lx.advance() // consume closing quote
	s := sb.String()
	return token.Token{Kind: token.STRING, Lexeme: s, Pos: pos, Str: s}, nil
}

// readIdentifier scans an identifier or keyword, enforcing MaxIdentifierLength.
func (lx *Lexer) readIdentifier() (token.Token, error) {
	pos := lx.chPos
	var sb strings.Builder
	for !lx.atEOT() && (isAlnum(lx.ch) || lx.ch == '_') {
		sb.WriteRune(lx.ch)
		if sb.Len() > lx.limits.MaxIdentifierLength {
			return token.Token{}, ierrors.NewLexError(ierrors.LargeIdentifier, pos)
		}
		lx.advance()
	}
	text := sb.String()
	kind := token.IDENT
	if kw, ok := token.Keywords[text]; ok {
		kind = kw
	}
	return token.Token{Kind: kind, Lexeme: text, Pos: pos}, nil
}

func formatNumberLexeme(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\v' || r == '\f' || r == '\r'
}

func isDecimalDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isAlnum(r rune) bool {
	return isAlpha(r) || isDecimalDigit(r)
}
