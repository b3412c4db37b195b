package indent

import (
	"bytes"

	jerrors "github.com/KimNorgaard/go-jasn/errors"
	"github.com/KimNorgaard/go-jasn/internal/lexer"
	"github.com/KimNorgaard/go-jasn/internal/scalar"
	"github.com/KimNorgaard/go-jasn/internal/token"
)

// Tokenizer reads JAML source one line at a time. Every content line yields
// the indentation events that lead to it, the tokens of its content and a
// closing NEWLINE. Blank and comment-only lines yield nothing.
type Tokenizer struct {
	input []byte
	pos   int
	line  int

	tracker   Tracker
	hexPrefix scalar.HexPrefix

	queue []token.Token
	eof   bool
}

// Option configures a Tokenizer.
type Option func(*Tokenizer)

// WithHexPrefix selects the prefix recognized for hex binary literals.
func WithHexPrefix(p scalar.HexPrefix) Option {
	return func(t *Tokenizer) {
		if p != "" {
			t.hexPrefix = p
		}
	}
}

// New creates a Tokenizer over input.
func New(input []byte, opts ...Option) *Tokenizer {
	t := &Tokenizer{
		input:     input,
		line:      1,
		hexPrefix: scalar.HexLong,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NextToken returns the next token. Errors are *errors.ParseError values of
// kind LexError or IndentError.
func (t *Tokenizer) NextToken() (token.Token, error) {
	for len(t.queue) == 0 {
		if err := t.readLine(); err != nil {
			return token.Token{}, err
		}
	}
	tok := t.queue[0]
	t.queue = t.queue[1:]
	return tok, nil
}

func (t *Tokenizer) readLine() error {
	if t.pos >= len(t.input) {
		t.finish()
		return nil
	}

	lineNo := t.line
	var raw []byte
	if end := bytes.IndexByte(t.input[t.pos:], '\n'); end >= 0 {
		raw = t.input[t.pos : t.pos+end]
		t.pos += end + 1
	} else {
		raw = t.input[t.pos:]
		t.pos = len(t.input)
	}
	t.line++
	raw = bytes.TrimSuffix(raw, []byte{'\r'})

	n := 0
	for n < len(raw) && (raw[n] == ' ' || raw[n] == '\t') {
		n++
	}
	ws, content := raw[:n], raw[n:]
	if len(content) == 0 || content[0] == '#' {
		return nil
	}
	col := n + 1

	depth, err := t.tracker.Measure(ws)
	if err != nil {
		return jerrors.New(jerrors.IndentError, lineNo, 1, err)
	}
	delta, err := t.tracker.Move(depth)
	if err != nil {
		return jerrors.New(jerrors.IndentError, lineNo, col, err)
	}
	switch {
	case delta > 0:
		t.emit(token.INDENT, lineNo, col)
	case delta < 0:
		for range -delta {
			t.emit(token.DEDENT, lineNo, col)
		}
	}

	l := lexer.New(content, lexer.WithLineMode(lineNo, col), lexer.WithHexPrefix(t.hexPrefix))
	for {
		tok, err := l.NextToken()
		if err != nil {
			return err
		}
		if tok.Type == token.EOF {
			t.emit(token.NEWLINE, tok.Line, tok.Column)
			return nil
		}
		t.queue = append(t.queue, tok)
	}
}

// finish closes every open level and ends the stream. Once at the end the
// tokenizer keeps returning EOF.
func (t *Tokenizer) finish() {
	if !t.eof {
		for range t.tracker.Open() {
			t.emit(token.DEDENT, t.line, 1)
		}
		_, _ = t.tracker.Move(0)
		t.eof = true
	}
	t.emit(token.EOF, t.line, 1)
}

func (t *Tokenizer) emit(typ token.Type, line, col int) {
	t.queue = append(t.queue, token.Token{Type: typ, Line: line, Column: col})
}
