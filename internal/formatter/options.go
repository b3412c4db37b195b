package formatter

import (
	"time"

	"github.com/KimNorgaard/go-jasn/internal/scalar"
)

const defaultIndent = 2

// QuoteStyle selects the quote character used for strings and quoted keys.
type QuoteStyle int

const (
	// Double always uses "...".
	Double QuoteStyle = iota
	// Single always uses '...'.
	Single
	// PreferDouble uses '...' only when the text contains a double quote and
	// no single quote.
	PreferDouble
)

// BinaryEncoding selects how binary values are written.
type BinaryEncoding int

const (
	// Base64 writes b64"...".
	Base64 BinaryEncoding = iota
	// Hex writes hex"..." (or h"..." with the legacy prefix).
	Hex
)

// TimestampPrecision selects how many fractional second digits timestamps
// are written with.
type TimestampPrecision int

const (
	// PrecisionAuto writes as few digits as the value needs.
	PrecisionAuto TimestampPrecision = iota
	// PrecisionSeconds drops the fraction.
	PrecisionSeconds
	// PrecisionMillis writes exactly 3 digits.
	PrecisionMillis
	// PrecisionMicros writes exactly 6 digits.
	PrecisionMicros
	// PrecisionNanos writes exactly 9 digits.
	PrecisionNanos
)

// layout returns the time layout for p. Fixed precisions truncate.
func (p TimestampPrecision) layout() string {
	switch p {
	case PrecisionSeconds:
		return "2006-01-02T15:04:05Z07:00"
	case PrecisionMillis:
		return "2006-01-02T15:04:05.000Z07:00"
	case PrecisionMicros:
		return "2006-01-02T15:04:05.000000Z07:00"
	case PrecisionNanos:
		return "2006-01-02T15:04:05.000000000Z07:00"
	}
	return time.RFC3339Nano
}

// Options controls the output of both renderers.
type Options struct {
	// Indent is the number of spaces per level. Zero selects single-line
	// JASN output; JAML treats values below one as the default.
	Indent int
	// QuoteStyle picks the quote character for strings and keys.
	QuoteStyle QuoteStyle
	// BinaryEncoding picks base64 or hex for binary values.
	BinaryEncoding BinaryEncoding
	// HexPrefix is the prefix written before hex binary literals.
	HexPrefix scalar.HexPrefix
	// TrailingCommas ends every member of indented JASN output with a comma.
	TrailingCommas bool
	// QuoteKeys quotes every map key, even identifiers.
	QuoteKeys bool
	// LeadingPlus writes '+' before non-negative numbers.
	LeadingPlus bool
	// EscapeUnicode writes non-ASCII characters as \u escapes.
	EscapeUnicode bool
	// UseZulu writes a zero UTC offset as Z instead of +00:00.
	UseZulu bool
	// TimestampPrecision fixes the number of fractional second digits.
	// Anything but PrecisionAuto may lose sub-second detail.
	TimestampPrecision TimestampPrecision
	// InlineLimit lets JAML write collections of at most this many scalars
	// in compact [..] or {..} form. Zero disables it.
	InlineLimit int
}

// DefaultOptions returns the options for indented, human-oriented output.
func DefaultOptions() Options {
	return Options{
		Indent:         defaultIndent,
		QuoteStyle:     Double,
		BinaryEncoding: Base64,
		HexPrefix:      scalar.HexLong,
		TrailingCommas: true,
		UseZulu:        true,
	}
}

// CompactOptions returns the options for single-line JASN output.
func CompactOptions() Options {
	opts := DefaultOptions()
	opts.Indent = 0
	opts.TrailingCommas = false
	opts.EscapeUnicode = true
	return opts
}
