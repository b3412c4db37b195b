package jasn

import (
	"fmt"
	"io"

	"github.com/KimNorgaard/go-jasn/value"
)

// Decoder reads a document from an input stream.
type Decoder struct {
	r      io.Reader
	syntax Syntax
	opts   []ParseOption
}

// NewDecoder returns a new decoder that reads from r.
//
// It is the caller's responsibility to call Close on r if required.
func NewDecoder(r io.Reader, s Syntax, opts ...ParseOption) *Decoder {
	return &Decoder{r: r, syntax: s, opts: opts}
}

// Decode reads the rest of the input and parses it as one document.
//
// Note: both notations need the whole document before they can report
// trailing content, so the input is read into memory first.
func (d *Decoder) Decode() (value.Value, error) {
	if d.r == nil {
		return nil, fmt.Errorf("jasn: Decode(nil reader)")
	}
	data, err := io.ReadAll(d.r)
	if err != nil {
		return nil, err
	}
	return Parse(data, d.syntax, d.opts...)
}
