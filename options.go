package jasn

import (
	"fmt"

	"github.com/KimNorgaard/go-jasn/internal/formatter"
	"github.com/KimNorgaard/go-jasn/internal/parser"
	"github.com/KimNorgaard/go-jasn/internal/scalar"
)

// Hex literal prefixes accepted by HexPrefix and FormatHexPrefix.
const (
	HexLong  = string(scalar.HexLong)
	HexShort = string(scalar.HexShort)
)

type parseOptions struct {
	maxDepth  int
	hexPrefix scalar.HexPrefix
}

// ParseOption configures ParseJASN, ParseJAML and the Decoder.
type ParseOption func(*parseOptions) error

func newParseOptions(opts []ParseOption) (parseOptions, error) {
	o := parseOptions{
		maxDepth:  parser.DefaultMaxDepth,
		hexPrefix: scalar.HexLong,
	}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return parseOptions{}, err
		}
	}
	return o, nil
}

// MaxDepth limits how deeply lists and maps may nest. This bounds the
// recursion of the parsers on hostile input.
//
// The depth n must be a positive integer.
func MaxDepth(n int) ParseOption {
	return func(o *parseOptions) error {
		if n <= 0 {
			return fmt.Errorf("%w: max depth must be a positive integer", ErrInvalidOption)
		}
		o.maxDepth = n
		return nil
	}
}

// HexPrefix selects the spelling of hex binary literals the parsers
// accept: HexLong (hex"..", the default) or HexShort (h"..").
func HexPrefix(p string) ParseOption {
	return func(o *parseOptions) error {
		hp := scalar.HexPrefix(p)
		if !hp.Valid() {
			return fmt.Errorf("%w: hex prefix %q", ErrInvalidOption, p)
		}
		o.hexPrefix = hp
		return nil
	}
}

// QuoteStyle selects the quote character for strings and quoted keys.
type QuoteStyle = formatter.QuoteStyle

// Quote styles.
const (
	DoubleQuotes = formatter.Double
	SingleQuotes = formatter.Single
	// PreferDouble switches to single quotes only for text that contains a
	// double quote and no single quote.
	PreferDouble = formatter.PreferDouble
)

// BinaryEncoding selects how binary values are written.
type BinaryEncoding = formatter.BinaryEncoding

// Binary encodings.
const (
	Base64 = formatter.Base64
	Hex    = formatter.Hex
)

// FormatOption configures FormatJASN, FormatJAML and the Encoder.
type FormatOption func(*formatter.Options)

func newFormatOptions(opts []FormatOption) formatter.Options {
	o := formatter.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Indent sets the number of spaces per nesting level. For JASN, zero writes
// the whole value on one line; JAML always indents and treats zero as the
// default of two.
func Indent(n int) FormatOption {
	return func(o *formatter.Options) {
		o.Indent = max(n, 0)
	}
}

// Compact writes JASN on a single line with no trailing commas and only
// ASCII characters.
func Compact() FormatOption {
	return func(o *formatter.Options) {
		c := formatter.CompactOptions()
		o.Indent = c.Indent
		o.TrailingCommas = c.TrailingCommas
		o.EscapeUnicode = c.EscapeUnicode
	}
}

// Quotes sets the quote style.
func Quotes(s QuoteStyle) FormatOption {
	return func(o *formatter.Options) { o.QuoteStyle = s }
}

// Binary sets the encoding of binary values.
func Binary(e BinaryEncoding) FormatOption {
	return func(o *formatter.Options) { o.BinaryEncoding = e }
}

// TrailingCommas controls the comma after the last member of indented JASN
// collections. It is on by default.
func TrailingCommas(on bool) FormatOption {
	return func(o *formatter.Options) { o.TrailingCommas = on }
}

// QuoteKeys quotes every map key, not just those that are not identifiers.
func QuoteKeys(on bool) FormatOption {
	return func(o *formatter.Options) { o.QuoteKeys = on }
}

// LeadingPlus writes a '+' before non-negative numbers.
func LeadingPlus(on bool) FormatOption {
	return func(o *formatter.Options) { o.LeadingPlus = on }
}

// EscapeUnicode writes every non-ASCII character as a \u escape.
func EscapeUnicode(on bool) FormatOption {
	return func(o *formatter.Options) { o.EscapeUnicode = on }
}

// Zulu writes a zero UTC offset as Z rather than +00:00. It is on by
// default.
func Zulu(on bool) FormatOption {
	return func(o *formatter.Options) { o.UseZulu = on }
}

// Precision selects how many fractional second digits timestamps get.
type Precision = formatter.TimestampPrecision

// Timestamp precisions.
const (
	PrecisionAuto    = formatter.PrecisionAuto
	PrecisionSeconds = formatter.PrecisionSeconds
	PrecisionMillis  = formatter.PrecisionMillis
	PrecisionMicros  = formatter.PrecisionMicros
	PrecisionNanos   = formatter.PrecisionNanos
)

// TimestampPrecision writes timestamps with a fixed number of fractional
// second digits, truncating finer detail. The default, PrecisionAuto, writes
// only the digits needed, so it is the only lossless choice.
func TimestampPrecision(p Precision) FormatOption {
	return func(o *formatter.Options) { o.TimestampPrecision = p }
}

// InlineCollections lets JAML write lists and maps of at most n scalars on
// the line of their key, as in "ports: [80, 443]".
func InlineCollections(n int) FormatOption {
	return func(o *formatter.Options) { o.InlineLimit = max(n, 0) }
}

// FormatHexPrefix selects the prefix written before hex binary literals.
// Unknown prefixes are ignored.
func FormatHexPrefix(p string) FormatOption {
	return func(o *formatter.Options) {
		if hp := scalar.HexPrefix(p); hp.Valid() {
			o.HexPrefix = hp
		}
	}
}
