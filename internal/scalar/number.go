// Package scalar holds the literal-level rules shared by the JASN and JAML
// lexers: numbers, quoted strings, binary payloads, timestamps and
// identifiers. Functions here are pure and position-free; callers attach the
// source position when they turn a failure into a parse error.
package scalar

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	jerrors "github.com/KimNorgaard/go-jasn/errors"
	"github.com/KimNorgaard/go-jasn/value"
)

// ParseNumber converts a numeric literal to an Int or a Float. A literal is
// a float when it carries a decimal point, an exponent, or is one of the
// keywords inf and nan; otherwise it is an integer.
func ParseNumber(lit string) (value.Value, error) {
	if IsFloat(lit) {
		f, err := ParseFloat(lit)
		if err != nil {
			return nil, err
		}
		return value.Float(f), nil
	}
	i, err := ParseInt(lit)
	if err != nil {
		return nil, err
	}
	return value.Int(i), nil
}

// IsFloat reports whether lit is written in float form.
func IsFloat(lit string) bool {
	s := trimSign(lit)
	switch s {
	case "inf", "nan":
		return true
	}
	if radix(s) != 10 {
		return false
	}
	return strings.ContainsAny(s, ".eE")
}

// ParseInt parses a signed decimal, 0x hex, 0b binary or 0o octal literal
// with optional single '_' separators between digits.
func ParseInt(lit string) (int64, error) {
	s := trimSign(lit)
	neg := len(lit) > 0 && lit[0] == '-'
	base := radix(s)
	if base != 10 {
		s = s[2:]
	}
	digits, err := stripSeparators(s, base)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", jerrors.ErrInvalidNumber, lit, err)
	}
	if base == 10 && len(digits) > 1 && digits[0] == '0' {
		return 0, fmt.Errorf("%w: %q: leading zero", jerrors.ErrInvalidNumber, lit)
	}
	mag, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %s", jerrors.ErrIntegerRange, lit)
		}
		return 0, fmt.Errorf("%w: %q", jerrors.ErrInvalidNumber, lit)
	}
	if neg {
		if mag > 1<<63 {
			return 0, fmt.Errorf("%w: %s", jerrors.ErrIntegerRange, lit)
		}
		if mag == 1<<63 {
			return math.MinInt64, nil
		}
		return -int64(mag), nil
	}
	if mag > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %s", jerrors.ErrIntegerRange, lit)
	}
	return int64(mag), nil
}

// ParseFloat parses a decimal float literal or one of inf, +inf, -inf, nan.
// Values beyond the double range saturate to infinity.
func ParseFloat(lit string) (float64, error) {
	s := trimSign(lit)
	neg := len(lit) > 0 && lit[0] == '-'
	switch s {
	case "inf":
		if neg {
			return math.Inf(-1), nil
		}
		return math.Inf(1), nil
	case "nan":
		return math.NaN(), nil
	}
	if !validFloat(s) {
		return 0, fmt.Errorf("%w: %q", jerrors.ErrInvalidNumber, lit)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %q", jerrors.ErrInvalidNumber, lit)
	}
	if neg {
		f = -f
	}
	return f, nil
}

func trimSign(s string) string {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		return s[1:]
	}
	return s
}

func radix(s string) int {
	if len(s) < 2 || s[0] != '0' {
		return 10
	}
	switch s[1] {
	case 'x', 'X':
		return 16
	case 'b', 'B':
		return 2
	case 'o', 'O':
		return 8
	}
	return 10
}

// stripSeparators validates the digits of s in the given base and removes
// '_' separators, which may only appear between two digits.
func stripSeparators(s string, base int) (string, error) {
	if s == "" {
		return "", errors.New("no digits")
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' {
			if i == 0 || i == len(s)-1 || s[i-1] == '_' {
				return "", errors.New("misplaced '_' separator")
			}
			continue
		}
		if !isDigitIn(c, base) {
			return "", fmt.Errorf("invalid digit %q", c)
		}
		b.WriteByte(c)
	}
	return b.String(), nil
}

func isDigitIn(c byte, base int) bool {
	switch base {
	case 2:
		return c == '0' || c == '1'
	case 8:
		return '0' <= c && c <= '7'
	case 16:
		return isDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
	default:
		return isDigit(c)
	}
}

// validFloat checks digits? ('.' digits?)? ([eE] [+-]? digits)? with at least
// one mantissa digit and at least one of the fraction or exponent parts.
func validFloat(s string) bool {
	i := 0
	intDigits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		intDigits++
	}
	if intDigits > 1 && s[0] == '0' {
		return false
	}
	fracDigits := 0
	hasDot := false
	if i < len(s) && s[i] == '.' {
		hasDot = true
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			fracDigits++
		}
	}
	if intDigits+fracDigits == 0 {
		return false
	}
	hasExp := false
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		hasExp = true
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		expDigits := 0
		for i < len(s) && isDigit(s[i]) {
			i++
			expDigits++
		}
		if expDigits == 0 {
			return false
		}
	}
	return i == len(s) && (hasDot || hasExp)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
