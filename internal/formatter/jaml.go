package formatter

import "github.com/KimNorgaard/go-jasn/value"

// JAML renders v in indentation syntax. Non-empty collections become blocks
// nested one level per step; empty ones and, with InlineLimit, short
// collections of scalars are written in compact form. The output always ends
// with a newline.
func JAML(v value.Value, opts Options) string {
	if opts.Indent < 1 {
		opts.Indent = defaultIndent
	}
	f := newFormatter(opts)
	if f.isBlock(v) {
		f.writeBlock(v)
	} else {
		f.writeCompact(v)
		f.b.WriteByte('\n')
	}
	return f.b.String()
}

// isBlock reports whether v is written as an indented block rather than on
// the line of its key or dash.
func (f *Formatter) isBlock(v value.Value) bool {
	var n int
	var items []value.Value
	switch c := v.(type) {
	case *value.List:
		n = c.Len()
		items = c.Items()
	case *value.Map:
		n = c.Len()
		for _, e := range c.Entries() {
			items = append(items, e.Value)
		}
	default:
		return false
	}
	if n == 0 {
		return false
	}
	if n > f.opts.InlineLimit {
		return true
	}
	for _, item := range items {
		if isCollection(item) {
			return true
		}
	}
	return false
}

func (f *Formatter) writeBlock(v value.Value) {
	switch c := v.(type) {
	case *value.List:
		for _, item := range c.Items() {
			f.writeIndent()
			f.b.WriteByte('-')
			f.writeMember(item)
		}
	case *value.Map:
		for _, e := range c.Entries() {
			f.writeIndent()
			f.writeKey(e.Key)
			f.b.WriteByte(':')
			f.writeMember(e.Value)
		}
	}
}

// writeMember finishes a "-" or "key:" line with v, nesting blocks on the
// following lines.
func (f *Formatter) writeMember(v value.Value) {
	if f.isBlock(v) {
		f.b.WriteByte('\n')
		f.depth++
		f.writeBlock(v)
		f.depth--
		return
	}
	f.b.WriteByte(' ')
	f.writeCompact(v)
	f.b.WriteByte('\n')
}

func isCollection(v value.Value) bool {
	switch v.(type) {
	case *value.List, *value.Map:
		return true
	}
	return false
}
