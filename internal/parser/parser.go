// Package parser builds Values from JASN tokens. Parsing stops at the first
// error, which is always a *errors.ParseError.
package parser

import (
	jerrors "github.com/KimNorgaard/go-jasn/errors"
	"github.com/KimNorgaard/go-jasn/internal/lexer"
	"github.com/KimNorgaard/go-jasn/internal/scalar"
	"github.com/KimNorgaard/go-jasn/internal/token"
	"github.com/KimNorgaard/go-jasn/value"
)

// DefaultMaxDepth is the nesting limit used when none is configured.
const DefaultMaxDepth = 1000

type prefixParseFn func() (value.Value, error)

// Parser holds the state of the parser.
type Parser struct {
	l *lexer.Lexer

	curToken token.Token

	depth    int
	maxDepth int

	prefixParseFns map[token.Type]prefixParseFn
}

// Option configures a Parser.
type Option func(*Parser)

// WithMaxDepth limits how deeply lists and maps may nest.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.maxDepth = n
		}
	}
}

// New creates a new parser reading from l.
func New(l *lexer.Lexer, opts ...Option) *Parser {
	p := &Parser{
		l:        l,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.prefixParseFns = make(map[token.Type]prefixParseFn)
	for _, t := range []token.Type{
		token.NULL, token.TRUE, token.FALSE, token.NUMBER, token.STRING,
		token.BASE64, token.HEX, token.TIMESTAMP, token.IDENT,
	} {
		p.registerPrefix(t, p.parseScalar)
	}
	p.registerPrefix(token.LBRACK, p.parseList)
	p.registerPrefix(token.LBRACE, p.parseMap)
	return p
}

// Parse parses a complete document: exactly one value followed by the end
// of input.
func (p *Parser) Parse() (value.Value, error) {
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	if p.curTokenIs(token.EOF) {
		return nil, p.errorf(jerrors.SyntaxError, jerrors.ErrEmptyDocument, "document contains no value")
	}

	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	if !p.curTokenIs(token.EOF) {
		return nil, p.errorf(jerrors.SyntaxError, jerrors.ErrTrailingContent, "unexpected %s after document value", token.Describe(p.curToken))
	}
	return v, nil
}

func (p *Parser) nextToken() error {
	tok, err := p.l.NextToken()
	if err != nil {
		return err
	}
	p.curToken = tok
	return nil
}

// The contract for all parse functions is that they are entered with
// p.curToken being the first token of the construct, and they must return
// with p.curToken pointing to the token *after* the construct.

func (p *Parser) parseValue() (value.Value, error) {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		return nil, p.unexpected("a value")
	}
	return prefix()
}

func (p *Parser) parseScalar() (value.Value, error) {
	v, ok, err := scalar.FromToken(p.curToken)
	if err != nil {
		return nil, jerrors.New(jerrors.LexError, p.curToken.Line, p.curToken.Column, err)
	}
	if !ok {
		return nil, p.errorf(jerrors.SyntaxError, jerrors.ErrUnexpectedToken, "bare word %q is not a value; quote it to make a string", p.curToken.Literal)
	}
	return v, p.nextToken()
}

func (p *Parser) parseList() (value.Value, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	if err := p.nextToken(); err != nil { // Consume '['
		return nil, err
	}

	items := []value.Value{}
	for !p.curTokenIs(token.RBRACK) {
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		items = append(items, v)

		if p.curTokenIs(token.COMMA) {
			if err := p.nextToken(); err != nil {
				return nil, err
			}
			continue
		}
		if !p.curTokenIs(token.RBRACK) {
			return nil, p.unexpected("',' or ']'")
		}
	}

	if err := p.nextToken(); err != nil { // Consume ']'
		return nil, err
	}
	return value.NewList(items...), nil
}

func (p *Parser) parseMap() (value.Value, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	if err := p.nextToken(); err != nil { // Consume '{'
		return nil, err
	}

	b := value.NewMapBuilder(0)
	for !p.curTokenIs(token.RBRACE) {
		keyTok := p.curToken
		if !token.IsKey(keyTok.Type) {
			return nil, p.unexpected("a key or '}'")
		}
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		if !p.curTokenIs(token.COLON) {
			return nil, p.unexpected("':' after key")
		}
		if err := p.nextToken(); err != nil {
			return nil, err
		}

		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		if err := b.Add(keyTok.Literal, v); err != nil {
			return nil, jerrors.New(jerrors.DuplicateKeyError, keyTok.Line, keyTok.Column, err)
		}

		if p.curTokenIs(token.COMMA) {
			if err := p.nextToken(); err != nil {
				return nil, err
			}
			continue
		}
		if !p.curTokenIs(token.RBRACE) {
			return nil, p.unexpected("',' or '}'")
		}
	}

	if err := p.nextToken(); err != nil { // Consume '}'
		return nil, err
	}
	return b.Build(), nil
}

func (p *Parser) enter() error {
	p.depth++
	if p.depth > p.maxDepth {
		return p.errorf(jerrors.SyntaxError, jerrors.ErrMaxDepth, "limit is %d", p.maxDepth)
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

func (p *Parser) registerPrefix(tokenType token.Type, fn prefixParseFn) {
	p.prefixParseFns[tokenType] = fn
}

func (p *Parser) curTokenIs(t token.Type) bool {
	return p.curToken.Type == t
}

func (p *Parser) unexpected(want string) error {
	return p.errorf(jerrors.SyntaxError, jerrors.ErrUnexpectedToken, "expected %s, got %s", want, token.Describe(p.curToken))
}

func (p *Parser) errorf(k jerrors.Kind, cause error, format string, args ...any) error {
	return jerrors.Newf(k, p.curToken.Line, p.curToken.Column, cause, format, args...)
}
