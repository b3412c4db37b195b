package jasn

import (
	"fmt"

	"github.com/KimNorgaard/go-jasn/bind"
	"github.com/KimNorgaard/go-jasn/internal/blockparser"
	"github.com/KimNorgaard/go-jasn/internal/indent"
	"github.com/KimNorgaard/go-jasn/internal/lexer"
	"github.com/KimNorgaard/go-jasn/internal/parser"
	"github.com/KimNorgaard/go-jasn/value"
)

// ParseJASN parses a complete JASN document. Errors are *errors.ParseError
// values unless an option is invalid.
func ParseJASN(data []byte, opts ...ParseOption) (value.Value, error) {
	o, err := newParseOptions(opts)
	if err != nil {
		return nil, err
	}
	l := lexer.New(data, lexer.WithHexPrefix(o.hexPrefix))
	p := parser.New(l, parser.WithMaxDepth(o.maxDepth))
	return p.Parse()
}

// ParseJAML parses a complete JAML document. The indentation unit is taken
// from the first indented line and every later line must use whole multiples
// of it.
func ParseJAML(data []byte, opts ...ParseOption) (value.Value, error) {
	o, err := newParseOptions(opts)
	if err != nil {
		return nil, err
	}
	t := indent.New(data, indent.WithHexPrefix(o.hexPrefix))
	p := blockparser.New(t, blockparser.WithMaxDepth(o.maxDepth))
	return p.Parse()
}

// Parse parses data in the given syntax.
func Parse(data []byte, s Syntax, opts ...ParseOption) (value.Value, error) {
	switch s {
	case JASN:
		return ParseJASN(data, opts...)
	case JAML:
		return ParseJAML(data, opts...)
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownSyntax, int(s))
}

// Unmarshal parses data in the given syntax and decodes the result with c.
func Unmarshal[T any](data []byte, s Syntax, c bind.Codec[T], opts ...ParseOption) (T, error) {
	var zero T
	v, err := Parse(data, s, opts...)
	if err != nil {
		return zero, err
	}
	return bind.ToTyped(v, c)
}

// Marshal encodes t with c and formats the result in the given syntax.
func Marshal[T any](t T, s Syntax, c bind.Codec[T], opts ...FormatOption) []byte {
	return []byte(Format(bind.FromTyped(t, c), s, opts...))
}
