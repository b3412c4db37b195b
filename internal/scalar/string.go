package scalar

import (
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	jerrors "github.com/KimNorgaard/go-jasn/errors"
)

// Unquote decodes the quoted string that starts at src[0], which must be a
// '"' or '\'' quote. It returns the decoded text and the number of bytes
// consumed including both quotes. On failure the returned offset points at
// the offending byte.
func Unquote(src []byte) (string, int, error) {
	if len(src) == 0 || (src[0] != '"' && src[0] != '\'') {
		return "", 0, fmt.Errorf("%w: missing opening quote", jerrors.ErrUnterminatedString)
	}
	quote := src[0]
	var b strings.Builder
	i := 1
	for {
		if i >= len(src) {
			return "", i, jerrors.ErrUnterminatedString
		}
		c := src[i]
		switch {
		case c == quote:
			return b.String(), i + 1, nil
		case c == '\n' || c == '\r':
			return "", i, jerrors.ErrUnterminatedString
		case c < 0x20 || c == 0x7f:
			return "", i, fmt.Errorf("%w: %U", jerrors.ErrControlCharacter, rune(c))
		case c == '\\':
			n, err := readEscape(src[i:], &b)
			if err != nil {
				return "", i, err
			}
			i += n
		case c < utf8.RuneSelf:
			b.WriteByte(c)
			i++
		default:
			r, size := utf8.DecodeRune(src[i:])
			if r == utf8.RuneError && size == 1 {
				return "", i, jerrors.ErrInvalidUTF8
			}
			b.WriteRune(r)
			i += size
		}
	}
}

// RawPayload returns the text between the double quotes that start src,
// without escape processing, as used by b64, hex and ts literals. The
// returned length includes both quotes; on failure it is the offset of the
// offending byte.
func RawPayload(src []byte) (string, int, error) {
	if len(src) == 0 || src[0] != '"' {
		return "", 0, fmt.Errorf("%w: missing opening quote", jerrors.ErrUnterminatedString)
	}
	for i := 1; i < len(src); i++ {
		switch c := src[i]; {
		case c == '"':
			return string(src[1:i]), i + 1, nil
		case c == '\\':
			return "", i, fmt.Errorf("%w: escapes are not allowed in prefixed literals", jerrors.ErrInvalidEscape)
		case c == '\n' || c == '\r':
			return "", i, jerrors.ErrUnterminatedString
		case c < 0x20 || c == 0x7f:
			return "", i, fmt.Errorf("%w: %U", jerrors.ErrControlCharacter, rune(c))
		}
	}
	return "", len(src), jerrors.ErrUnterminatedString
}

// readEscape decodes the escape sequence at the start of src, writes it to b
// and returns its length.
func readEscape(src []byte, b *strings.Builder) (int, error) {
	if len(src) < 2 {
		return 0, jerrors.ErrUnterminatedString
	}
	switch src[1] {
	case '"':
		b.WriteByte('"')
	case '\'':
		b.WriteByte('\'')
	case '\\':
		b.WriteByte('\\')
	case '/':
		b.WriteByte('/')
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case 'n':
		b.WriteByte('\n')
	case 'r':
		b.WriteByte('\r')
	case 't':
		b.WriteByte('\t')
	case 'u':
		r, ok := readHex4(src[2:])
		if !ok {
			return 0, fmt.Errorf("%w: \\u needs four hex digits", jerrors.ErrInvalidEscape)
		}
		n := 6
		if utf16.IsSurrogate(r) {
			if r >= 0xdc00 || len(src) < 12 || src[6] != '\\' || src[7] != 'u' {
				return 0, fmt.Errorf("%w: lone surrogate \\u%04x", jerrors.ErrInvalidEscape, r)
			}
			lo, ok := readHex4(src[8:])
			if !ok || lo < 0xdc00 || lo > 0xdfff {
				return 0, fmt.Errorf("%w: lone surrogate \\u%04x", jerrors.ErrInvalidEscape, r)
			}
			r = utf16.DecodeRune(r, lo)
			n = 12
		}
		b.WriteRune(r)
		return n, nil
	default:
		return 0, fmt.Errorf("%w: \\%c", jerrors.ErrInvalidEscape, src[1])
	}
	return 2, nil
}

func readHex4(src []byte) (rune, bool) {
	if len(src) < 4 {
		return 0, false
	}
	var r rune
	for _, c := range src[:4] {
		var d byte
		switch {
		case '0' <= c && c <= '9':
			d = c - '0'
		case 'a' <= c && c <= 'f':
			d = c - 'a' + 10
		case 'A' <= c && c <= 'F':
			d = c - 'A' + 10
		default:
			return 0, false
		}
		r = r<<4 | rune(d)
	}
	return r, true
}

// Keywords lists the bare words that can never be written as unquoted keys.
var Keywords = []string{"null", "true", "false", "inf", "nan"}

// IsIdentifier reports whether s matches [A-Za-z_][A-Za-z0-9_]*.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') {
			continue
		}
		if i > 0 && isDigit(c) {
			continue
		}
		return false
	}
	return true
}

// IsBareKey reports whether a map key can be written without quotes.
func IsBareKey(s string) bool {
	if !IsIdentifier(s) {
		return false
	}
	for _, kw := range Keywords {
		if s == kw {
			return false
		}
	}
	return true
}

// IsWordByte reports whether c can appear in a bare word: an identifier,
// keyword, number or literal prefix.
func IsWordByte(c byte) bool {
	return c == '_' || c == '.' || c == '+' || c == '-' ||
		isDigit(c) || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
