package jasn

import (
	"io"
	"strings"

	"github.com/KimNorgaard/go-jasn/value"
)

// Encoder writes documents to an output stream.
type Encoder struct {
	w      io.Writer
	syntax Syntax
	opts   []FormatOption
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, s Syntax, opts ...FormatOption) *Encoder {
	return &Encoder{w: w, syntax: s, opts: opts}
}

// Encode writes v followed by a newline.
func (e *Encoder) Encode(v value.Value) error {
	out := Format(v, e.syntax, e.opts...)
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, err := io.WriteString(e.w, out)
	return err
}
