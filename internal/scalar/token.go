package scalar

import (
	"math"

	"github.com/KimNorgaard/go-jasn/internal/token"
	"github.com/KimNorgaard/go-jasn/value"
)

// FromToken converts a scalar token produced by the lexer into a Value. It
// returns ok == false for tokens that cannot start a scalar, including bare
// identifiers other than inf and nan.
func FromToken(tok token.Token) (v value.Value, ok bool, err error) {
	switch tok.Type {
	case token.NULL:
		return value.Null{}, true, nil
	case token.TRUE:
		return value.Bool(true), true, nil
	case token.FALSE:
		return value.Bool(false), true, nil
	case token.STRING:
		return value.String(tok.Literal), true, nil
	case token.NUMBER:
		v, err := ParseNumber(tok.Literal)
		return v, err == nil, err
	case token.BASE64, token.HEX:
		return value.NewBinary([]byte(tok.Literal)), true, nil
	case token.TIMESTAMP:
		t, err := ParseTimestamp(tok.Literal)
		if err != nil {
			return nil, false, err
		}
		return value.NewTimestamp(t), true, nil
	case token.IDENT:
		switch tok.Literal {
		case "inf":
			return value.Float(math.Inf(1)), true, nil
		case "nan":
			return value.Float(math.NaN()), true, nil
		}
	}
	return nil, false, nil
}
