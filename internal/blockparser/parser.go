// Package blockparser builds Values from the JAML token stream produced by
// package indent. INDENT and DEDENT tokens play the part braces play in JASN.
package blockparser

import (
	jerrors "github.com/KimNorgaard/go-jasn/errors"
	"github.com/KimNorgaard/go-jasn/internal/indent"
	"github.com/KimNorgaard/go-jasn/internal/parser"
	"github.com/KimNorgaard/go-jasn/internal/scalar"
	"github.com/KimNorgaard/go-jasn/internal/token"
	"github.com/KimNorgaard/go-jasn/value"
)

// Parser holds the state of the parser.
type Parser struct {
	t *indent.Tokenizer

	curToken  token.Token
	peekToken token.Token

	depth    int
	maxDepth int
}

// Option configures a Parser.
type Option func(*Parser)

// WithMaxDepth limits how deeply blocks and compact collections may nest.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.maxDepth = n
		}
	}
}

// New creates a new parser reading from t.
func New(t *indent.Tokenizer, opts ...Option) *Parser {
	p := &Parser{
		t:        t,
		maxDepth: parser.DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses a complete document. The root is a block map, a block list or
// a single inline value on a line of its own.
func (p *Parser) Parse() (value.Value, error) {
	// Read two tokens, so curToken and peekToken are both set.
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	if err := p.nextToken(); err != nil {
		return nil, err
	}

	switch {
	case p.curTokenIs(token.EOF):
		return nil, p.errorf(jerrors.SyntaxError, jerrors.ErrEmptyDocument, "document contains no value")
	case p.curTokenIs(token.INDENT):
		return nil, p.errorf(jerrors.IndentError, jerrors.ErrUnexpectedIndent, "the first line must not be indented")
	}

	var v value.Value
	var err error
	if p.startsBlock() {
		v, err = p.parseBlock()
	} else {
		v, err = p.parseInlineLine()
	}
	if err != nil {
		return nil, err
	}

	if !p.curTokenIs(token.EOF) {
		return nil, p.errorf(jerrors.SyntaxError, jerrors.ErrTrailingContent, "unexpected %s after document value", token.Describe(p.curToken))
	}
	return v, nil
}

func (p *Parser) nextToken() error {
	tok, err := p.t.NextToken()
	if err != nil {
		return err
	}
	p.curToken = p.peekToken
	p.peekToken = tok
	return nil
}

// startsBlock reports whether the current line opens a block list or map.
func (p *Parser) startsBlock() bool {
	return p.curTokenIs(token.DASH) || p.isKeyStart()
}

func (p *Parser) isKeyStart() bool {
	return token.IsKey(p.curToken.Type) && p.peekTokenIs(token.COLON)
}

// parseBlock parses the lines of one indentation level. It returns with
// p.curToken on the DEDENT or EOF that ends the level.
func (p *Parser) parseBlock() (value.Value, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	if p.curTokenIs(token.DASH) {
		return p.parseBlockList()
	}
	return p.parseBlockMap()
}

func (p *Parser) parseBlockList() (value.Value, error) {
	items := []value.Value{}
	for !p.atLevelEnd() {
		if !p.curTokenIs(token.DASH) {
			return nil, p.unexpected("'-' starting a list item")
		}
		dash := p.curToken
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		v, err := p.parseHeaderValue(dash)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return value.NewList(items...), nil
}

func (p *Parser) parseBlockMap() (value.Value, error) {
	b := value.NewMapBuilder(0)
	for !p.atLevelEnd() {
		if !p.isKeyStart() {
			return nil, p.unexpected("a key followed by ':'")
		}
		keyTok := p.curToken
		if err := p.nextToken(); err != nil { // Consume key
			return nil, err
		}
		colon := p.curToken
		if err := p.nextToken(); err != nil { // Consume ':'
			return nil, err
		}
		if p.curToken.Line == colon.Line && p.curToken.Column == colon.Column+1 && !p.curTokenIs(token.NEWLINE) {
			return nil, p.errorf(jerrors.SyntaxError, jerrors.ErrUnexpectedToken, "expected a space after ':', got %s", token.Describe(p.curToken))
		}
		v, err := p.parseHeaderValue(keyTok)
		if err != nil {
			return nil, err
		}
		if err := b.Add(keyTok.Literal, v); err != nil {
			return nil, jerrors.New(jerrors.DuplicateKeyError, keyTok.Line, keyTok.Column, err)
		}
	}
	return b.Build(), nil
}

// parseHeaderValue parses what follows a "key:" or "-" header: either an
// inline value ending the line, or a nested block on the following lines.
// It returns with p.curToken on the first token of the next line.
func (p *Parser) parseHeaderValue(header token.Token) (value.Value, error) {
	if !p.curTokenIs(token.NEWLINE) {
		return p.parseInlineLine()
	}
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	if !p.curTokenIs(token.INDENT) {
		return nil, jerrors.Newf(jerrors.SyntaxError, header.Line, header.Column, jerrors.ErrMissingValue, "%s must be followed by a value or an indented block", token.Describe(header))
	}
	if err := p.nextToken(); err != nil { // Consume INDENT
		return nil, err
	}
	var v value.Value
	var err error
	if p.startsBlock() {
		v, err = p.parseBlock()
	} else {
		// A lone inline value may also sit on its own indented line.
		v, err = p.parseInlineLine()
		if err == nil && !p.atLevelEnd() {
			err = p.errorf(jerrors.SyntaxError, jerrors.ErrTrailingContent, "unexpected %s after nested value", token.Describe(p.curToken))
		}
	}
	if err != nil {
		return nil, err
	}
	if p.curTokenIs(token.DEDENT) {
		if err := p.nextToken(); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// parseInlineLine parses an inline value that must end its line, and steps
// onto the next line.
func (p *Parser) parseInlineLine() (value.Value, error) {
	v, err := p.parseInline()
	if err != nil {
		return nil, err
	}
	if !p.curTokenIs(token.NEWLINE) {
		return nil, p.errorf(jerrors.SyntaxError, jerrors.ErrTrailingContent, "unexpected %s after value", token.Describe(p.curToken))
	}
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	if p.curTokenIs(token.INDENT) {
		return nil, p.errorf(jerrors.IndentError, jerrors.ErrUnexpectedIndent, "a line ending in a value cannot be followed by an indented block")
	}
	return v, nil
}

// parseInline parses a scalar or a compact [..] or {..} collection. Compact
// collections follow the JASN element grammar and must close on the same
// line.
func (p *Parser) parseInline() (value.Value, error) {
	switch p.curToken.Type {
	case token.LBRACK:
		return p.parseCompactList()
	case token.LBRACE:
		return p.parseCompactMap()
	case token.NEWLINE, token.EOF, token.INDENT, token.DEDENT:
		return nil, p.unexpected("a value")
	}
	v, ok, err := scalar.FromToken(p.curToken)
	if err != nil {
		return nil, jerrors.New(jerrors.LexError, p.curToken.Line, p.curToken.Column, err)
	}
	if !ok {
		if p.curTokenIs(token.IDENT) {
			return nil, p.errorf(jerrors.SyntaxError, jerrors.ErrUnexpectedToken, "bare word %q is not a value; quote it to make a string", p.curToken.Literal)
		}
		return nil, p.unexpected("a value")
	}
	return v, p.nextToken()
}

func (p *Parser) parseCompactList() (value.Value, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	if err := p.nextToken(); err != nil { // Consume '['
		return nil, err
	}
	items := []value.Value{}
	for !p.curTokenIs(token.RBRACK) {
		v, err := p.parseInline()
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

func (p *Parser) parseCompactMap() (value.Value, error) {
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
		if !p.isKeyStart() {
			return nil, p.unexpected("a key followed by ':' or '}'")
		}
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		v, err := p.parseInline()
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

func (p *Parser) atLevelEnd() bool {
	return p.curTokenIs(token.DEDENT) || p.curTokenIs(token.EOF)
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

func (p *Parser) curTokenIs(t token.Type) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t token.Type) bool {
	return p.peekToken.Type == t
}

func (p *Parser) unexpected(want string) error {
	if p.curTokenIs(token.INDENT) {
		return p.errorf(jerrors.IndentError, jerrors.ErrUnexpectedIndent, "expected %s", want)
	}
	return p.errorf(jerrors.SyntaxError, jerrors.ErrUnexpectedToken, "expected %s, got %s", want, token.Describe(p.curToken))
}

func (p *Parser) errorf(k jerrors.Kind, cause error, format string, args ...any) error {
	return jerrors.Newf(k, p.curToken.Line, p.curToken.Column, cause, format, args...)
}
