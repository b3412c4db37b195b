package jasn

import (
	"github.com/KimNorgaard/go-jasn/internal/formatter"
	"github.com/KimNorgaard/go-jasn/value"
)

// FormatJASN renders v as JASN. By default members are indented two spaces
// and followed by commas; see Compact for single-line output. The result has
// no trailing newline.
func FormatJASN(v value.Value, opts ...FormatOption) string {
	return formatter.JASN(v, newFormatOptions(opts))
}

// FormatJAML renders v as JAML. The result ends with a newline.
func FormatJAML(v value.Value, opts ...FormatOption) string {
	return formatter.JAML(v, newFormatOptions(opts))
}

// Format renders v in the given syntax. An unknown syntax renders as JASN.
func Format(v value.Value, s Syntax, opts ...FormatOption) string {
	if s == JAML {
		return FormatJAML(v, opts...)
	}
	return FormatJASN(v, opts...)
}
