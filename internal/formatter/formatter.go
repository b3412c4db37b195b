// Package formatter renders Values as JASN or JAML text. Rendering is total:
// every Value has an output, and the output parses back to an equal Value.
package formatter

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/KimNorgaard/go-jasn/internal/scalar"
	"github.com/KimNorgaard/go-jasn/value"
)

// Formatter accumulates output for a single rendering call.
type Formatter struct {
	b      strings.Builder
	opts   Options
	indent string
	depth  int
}

func newFormatter(opts Options) *Formatter {
	f := &Formatter{opts: opts}
	if opts.Indent > 0 {
		f.indent = strings.Repeat(" ", opts.Indent)
	}
	if f.opts.HexPrefix == "" {
		f.opts.HexPrefix = scalar.HexLong
	}
	return f
}

// JASN renders v in brace syntax. With Indent zero the output is a single
// line; otherwise every member sits on its own line.
func JASN(v value.Value, opts Options) string {
	f := newFormatter(opts)
	f.writeJASN(v)
	return f.b.String()
}

func (f *Formatter) writeIndent() {
	for i := 0; i < f.depth; i++ {
		f.b.WriteString(f.indent)
	}
}

func (f *Formatter) writeJASN(v value.Value) {
	switch n := v.(type) {
	case *value.List:
		if n.Len() == 0 {
			f.b.WriteString("[]")
			return
		}
		f.b.WriteByte('[')
		if f.indent == "" {
			for i, item := range n.Items() {
				if i > 0 {
					f.b.WriteByte(',')
				}
				f.writeJASN(item)
			}
		} else {
			f.depth++
			for i, item := range n.Items() {
				f.b.WriteByte('\n')
				f.writeIndent()
				f.writeJASN(item)
				if i < n.Len()-1 || f.opts.TrailingCommas {
					f.b.WriteByte(',')
				}
			}
			f.depth--
			f.b.WriteByte('\n')
			f.writeIndent()
		}
		f.b.WriteByte(']')

	case *value.Map:
		if n.Len() == 0 {
			f.b.WriteString("{}")
			return
		}
		f.b.WriteByte('{')
		if f.indent == "" {
			for i, e := range n.Entries() {
				if i > 0 {
					f.b.WriteByte(',')
				}
				f.writeKey(e.Key)
				f.b.WriteByte(':')
				f.writeJASN(e.Value)
			}
		} else {
			f.depth++
			for i, e := range n.Entries() {
				f.b.WriteByte('\n')
				f.writeIndent()
				f.writeKey(e.Key)
				f.b.WriteString(": ")
				f.writeJASN(e.Value)
				if i < n.Len()-1 || f.opts.TrailingCommas {
					f.b.WriteByte(',')
				}
			}
			f.depth--
			f.b.WriteByte('\n')
			f.writeIndent()
		}
		f.b.WriteByte('}')

	default:
		f.writeScalar(v)
	}
}

// writeCompact writes v on one line with ", " separators, the form used for
// inline collections inside JAML.
func (f *Formatter) writeCompact(v value.Value) {
	switch n := v.(type) {
	case *value.List:
		f.b.WriteByte('[')
		for i, item := range n.Items() {
			if i > 0 {
				f.b.WriteString(", ")
			}
			f.writeCompact(item)
		}
		f.b.WriteByte(']')
	case *value.Map:
		f.b.WriteByte('{')
		for i, e := range n.Entries() {
			if i > 0 {
				f.b.WriteString(", ")
			}
			f.writeKey(e.Key)
			f.b.WriteString(": ")
			f.writeCompact(e.Value)
		}
		f.b.WriteByte('}')
	default:
		f.writeScalar(v)
	}
}

func (f *Formatter) writeScalar(v value.Value) {
	switch n := v.(type) {
	case nil, value.Null:
		f.b.WriteString("null")
	case value.Bool:
		f.b.WriteString(strconv.FormatBool(bool(n)))
	case value.Int:
		if f.opts.LeadingPlus && n >= 0 {
			f.b.WriteByte('+')
		}
		f.b.WriteString(strconv.FormatInt(int64(n), 10))
	case value.Float:
		f.b.WriteString(f.formatFloat(float64(n)))
	case value.String:
		f.writeString(string(n))
	case value.Binary:
		f.writeBinary(n)
	case value.Timestamp:
		f.writeTimestamp(n)
	default:
		panic(fmt.Sprintf("jasn: unsupported value type %T", v))
	}
}

func (f *Formatter) formatFloat(x float64) string {
	var s string
	switch {
	case math.IsNaN(x):
		return "nan"
	case math.IsInf(x, 1):
		s = "inf"
	case math.IsInf(x, -1):
		return "-inf"
	default:
		abs := math.Abs(x)
		if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
			s = strconv.FormatFloat(x, 'e', -1, 64)
		} else {
			s = strconv.FormatFloat(x, 'f', -1, 64)
		}
		if !strings.ContainsAny(s, ".e") {
			s += ".0"
		}
	}
	if f.opts.LeadingPlus && s[0] != '-' {
		s = "+" + s
	}
	return s
}

func (f *Formatter) writeBinary(b value.Binary) {
	if f.opts.BinaryEncoding == Hex {
		f.b.WriteString(string(f.opts.HexPrefix))
		f.b.WriteByte('"')
		f.b.WriteString(hex.EncodeToString(b.Bytes()))
	} else {
		f.b.WriteString(`b64"`)
		f.b.WriteString(base64.StdEncoding.EncodeToString(b.Bytes()))
	}
	f.b.WriteByte('"')
}

func (f *Formatter) writeTimestamp(ts value.Timestamp) {
	s := ts.Time().Format(f.opts.TimestampPrecision.layout())
	if !f.opts.UseZulu && strings.HasSuffix(s, "Z") {
		s = strings.TrimSuffix(s, "Z") + "+00:00"
	}
	f.b.WriteString(`ts"`)
	f.b.WriteString(s)
	f.b.WriteByte('"')
}

func (f *Formatter) writeKey(k string) {
	if !f.opts.QuoteKeys && scalar.IsBareKey(k) {
		f.b.WriteString(k)
		return
	}
	f.writeString(k)
}

func (f *Formatter) quoteFor(s string) byte {
	switch f.opts.QuoteStyle {
	case Single:
		return '\''
	case PreferDouble:
		if strings.ContainsRune(s, '"') && !strings.ContainsRune(s, '\'') {
			return '\''
		}
	}
	return '"'
}

func (f *Formatter) writeString(s string) {
	quote := f.quoteFor(s)
	f.b.WriteByte(quote)
	for _, r := range s {
		switch {
		case r == rune(quote):
			f.b.WriteByte('\\')
			f.b.WriteByte(quote)
		case r == '\\':
			f.b.WriteString(`\\`)
		case r == '/':
			f.b.WriteString(`\/`)
		case r == '\n':
			f.b.WriteString(`\n`)
		case r == '\t':
			f.b.WriteString(`\t`)
		case r == '\r':
			f.b.WriteString(`\r`)
		case r == '\b':
			f.b.WriteString(`\b`)
		case r == '\f':
			f.b.WriteString(`\f`)
		case r < 0x20 || (0x7f <= r && r <= 0x9f):
			fmt.Fprintf(&f.b, `\u%04x`, r)
		case f.opts.EscapeUnicode && r > 0x7f:
			if r > 0xffff {
				hi, lo := utf16.EncodeRune(r)
				fmt.Fprintf(&f.b, `\u%04x\u%04x`, hi, lo)
			} else {
				fmt.Fprintf(&f.b, `\u%04x`, r)
			}
		default:
			f.b.WriteRune(r)
		}
	}
	f.b.WriteByte(quote)
}
