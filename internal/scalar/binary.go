package scalar

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"time"

	jerrors "github.com/KimNorgaard/go-jasn/errors"
	"github.com/KimNorgaard/go-jasn/internal/token"
)

// HexPrefix selects the prefix that introduces a hex binary literal.
type HexPrefix string

const (
	// HexLong is the current prefix, as in hex"4869".
	HexLong HexPrefix = "hex"
	// HexShort is the legacy single-letter prefix, as in h"4869".
	HexShort HexPrefix = "h"
)

// Valid reports whether p is a known prefix.
func (p HexPrefix) Valid() bool {
	return p == HexLong || p == HexShort
}

// PrefixType maps the word in front of a quote to the literal kind it
// introduces. It returns false when word is not a literal prefix.
func PrefixType(word string, hp HexPrefix) (token.Type, bool) {
	switch word {
	case "b64":
		return token.BASE64, true
	case "ts":
		return token.TIMESTAMP, true
	}
	if hp == "" {
		hp = HexLong
	}
	if word == string(hp) {
		return token.HEX, true
	}
	return "", false
}

// DecodeBase64 decodes standard padded base64.
func DecodeBase64(s string) ([]byte, error) {
	b, err := base64.StdEncoding.Strict().DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", jerrors.ErrInvalidBase64, err)
	}
	return b, nil
}

// DecodeHex decodes a hex payload of either case.
func DecodeHex(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", jerrors.ErrOddHexDigits, len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", jerrors.ErrInvalidHex, err)
	}
	return b, nil
}

// ParseTimestamp parses an RFC 3339 timestamp with optional fractional
// seconds and a Z or numeric offset. The T separator and the Z may be lower
// case.
func ParseTimestamp(s string) (time.Time, error) {
	if len(s) > 10 && (s[10] == 't' || s[len(s)-1] == 'z') {
		b := []byte(s)
		if b[10] == 't' {
			b[10] = 'T'
		}
		if b[len(b)-1] == 'z' {
			b[len(b)-1] = 'Z'
		}
		s = string(b)
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", jerrors.ErrInvalidTimestamp, s)
	}
	return t, nil
}

// DecodeLiteral validates the payload of a prefixed literal token and returns
// the decoded bytes as a string. Timestamps are returned unchanged.
func DecodeLiteral(t token.Type, payload string) (string, error) {
	switch t {
	case token.BASE64:
		b, err := DecodeBase64(payload)
		return string(b), err
	case token.HEX:
		b, err := DecodeHex(payload)
		return string(b), err
	case token.TIMESTAMP:
		_, err := ParseTimestamp(payload)
		return payload, err
	}
	return payload, nil
}
