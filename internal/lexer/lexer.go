// Package lexer tokenizes JASN source. The same scanner, switched into line
// mode, tokenizes the inline content of a single JAML line.
package lexer

import (
	"unicode/utf8"

	jerrors "github.com/KimNorgaard/go-jasn/errors"
	"github.com/KimNorgaard/go-jasn/internal/scalar"
	"github.com/KimNorgaard/go-jasn/internal/token"
)

// Lexer holds the state for tokenizing source text.
type Lexer struct {
	input  []byte
	pos    int
	line   int
	column int

	lineMode  bool
	hexPrefix scalar.HexPrefix
}

// Option configures a Lexer.
type Option func(*Lexer)

// WithHexPrefix selects the prefix recognized for hex binary literals.
func WithHexPrefix(p scalar.HexPrefix) Option {
	return func(l *Lexer) {
		if p != "" {
			l.hexPrefix = p
		}
	}
}

// WithLineMode makes the lexer scan one JAML line whose first byte sits at
// the given position. In line mode '#' starts a comment running to the end
// of input and a '-' followed by a blank or the end of input is a DASH.
func WithLineMode(line, column int) Option {
	return func(l *Lexer) {
		l.lineMode = true
		l.line = line
		l.column = column
	}
}

// New creates and returns a new Lexer over input.
func New(input []byte, opts ...Option) *Lexer {
	l := &Lexer{
		input:     input,
		line:      1,
		column:    1,
		hexPrefix: scalar.HexLong,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NextToken scans the input and returns the next token. A non-nil error is
// always a *errors.ParseError of kind LexError; the lexer must not be used
// after it fails.
func (l *Lexer) NextToken() (token.Token, error) {
	if err := l.skipWhitespace(); err != nil {
		return token.Token{}, err
	}
	tok := token.Token{Line: l.line, Column: l.column}
	if l.pos >= len(l.input) {
		tok.Type = token.EOF
		return tok, nil
	}

	c := l.input[l.pos]
	switch c {
	case '{', '}', '[', ']', ',', ':':
		tok.Type = token.Type(c)
		tok.Literal = string(c)
		l.advance(1)
		return tok, nil
	case '"', '\'':
		s, err := l.readQuoted(l.pos)
		if err != nil {
			return tok, err
		}
		tok.Type = token.STRING
		tok.Literal = s
		return tok, nil
	case '-':
		if l.lineMode && (l.pos+1 == len(l.input) || isBlank(l.input[l.pos+1])) {
			tok.Type = token.DASH
			tok.Literal = "-"
			l.advance(1)
			return tok, nil
		}
	}

	if scalar.IsWordByte(c) {
		return l.readWord(tok)
	}

	r, size := utf8.DecodeRune(l.input[l.pos:])
	if r == utf8.RuneError && size <= 1 {
		return tok, l.errorf(tok, jerrors.ErrInvalidUTF8, "byte 0x%02x", c)
	}
	return tok, l.errorf(tok, jerrors.ErrUnexpectedToken, "unexpected character %q", r)
}

// readWord scans a bare word: an identifier, keyword, number or the prefix of
// a binary or timestamp literal.
func (l *Lexer) readWord(tok token.Token) (token.Token, error) {
	start := l.pos
	end := start
	for end < len(l.input) && scalar.IsWordByte(l.input[end]) {
		end++
	}
	word := string(l.input[start:end])

	if end < len(l.input) && (l.input[end] == '"' || l.input[end] == '\'') {
		if typ, ok := scalar.PrefixType(word, l.hexPrefix); ok {
			if l.input[end] == '\'' {
				return tok, l.errorf(tok, jerrors.ErrUnexpectedToken, "%s literal needs a double-quoted payload", word)
			}
			l.advance(end - start)
			payload, n, err := scalar.RawPayload(l.input[end:])
			l.advance(n)
			if err != nil {
				return tok, jerrors.New(jerrors.LexError, l.line, l.column, err)
			}
			decoded, err := scalar.DecodeLiteral(typ, payload)
			if err != nil {
				return tok, jerrors.New(jerrors.LexError, tok.Line, tok.Column, err)
			}
			tok.Type = typ
			tok.Literal = decoded
			return tok, nil
		}
	}

	l.advance(end - start)
	tok.Literal = word
	switch {
	case scalar.IsIdentifier(word):
		tok.Type = token.LookupIdent(word)
	case isNumberStart(word[0]):
		if _, err := scalar.ParseNumber(word); err != nil {
			return tok, jerrors.New(jerrors.LexError, tok.Line, tok.Column, err)
		}
		tok.Type = token.NUMBER
	default:
		return tok, l.errorf(tok, jerrors.ErrUnexpectedToken, "unexpected %q", word)
	}
	return tok, nil
}

// readQuoted decodes the quoted string starting at byte offset at and moves
// past it.
func (l *Lexer) readQuoted(at int) (string, error) {
	s, n, err := scalar.Unquote(l.input[at:])
	if err != nil {
		l.advance(n)
		return "", jerrors.New(jerrors.LexError, l.line, l.column, err)
	}
	l.advance(n)
	return s, nil
}

func (l *Lexer) skipWhitespace() error {
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		switch {
		case c == ' ' || c == '\t':
			l.advance(1)
		case !l.lineMode && (c == '\n' || c == '\r'):
			l.advance(1)
		case l.lineMode && c == '#':
			l.advance(len(l.input) - l.pos)
		case !l.lineMode && c == '/' && l.peek(1) == '/':
			for l.pos < len(l.input) && l.input[l.pos] != '\n' {
				l.advance(1)
			}
		case !l.lineMode && c == '/' && l.peek(1) == '*':
			line, col := l.line, l.column
			l.advance(2)
			for {
				if l.pos >= len(l.input) {
					return jerrors.New(jerrors.LexError, line, col, jerrors.ErrUnterminatedComment)
				}
				if l.input[l.pos] == '*' && l.peek(1) == '/' {
					l.advance(2)
					break
				}
				l.advance(1)
			}
		default:
			return nil
		}
	}
	return nil
}

// advance moves n bytes forward, keeping line and column in step. Columns
// count runes.
func (l *Lexer) advance(n int) {
	for i := 0; i < n && l.pos < len(l.input); i++ {
		c := l.input[l.pos]
		l.pos++
		switch {
		case c == '\n':
			l.line++
			l.column = 1
		case c&0xC0 != 0x80:
			l.column++
		}
	}
}

func (l *Lexer) peek(off int) byte {
	if l.pos+off < len(l.input) {
		return l.input[l.pos+off]
	}
	return 0
}

func (l *Lexer) errorf(tok token.Token, cause error, format string, args ...any) error {
	return jerrors.Newf(jerrors.LexError, tok.Line, tok.Column, cause, format, args...)
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}

func isNumberStart(c byte) bool {
	return ('0' <= c && c <= '9') || c == '-' || c == '+' || c == '.'
}
