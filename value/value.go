// Package value defines the typed data model shared by the JASN and JAML
// notations.
//
// A Value is one of Null, Bool, Int, Float, String, Binary, Timestamp, *List
// or *Map. Values are immutable once constructed: constructors copy their
// inputs and accessors hand out copies. Maps are always stored in byte-wise
// key order and never contain a duplicate key.
package value

import (
	"math"
	"slices"
	"time"
)

// Kind identifies the variant of a Value.
type Kind uint8

const (
	NullKind Kind = iota
	BoolKind
	IntKind
	FloatKind
	StringKind
	BinaryKind
	TimestampKind
	ListKind
	MapKind
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case NullKind:
		return "null"
	case BoolKind:
		return "bool"
	case IntKind:
		return "int"
	case FloatKind:
		return "float"
	case StringKind:
		return "string"
	case BinaryKind:
		return "binary"
	case TimestampKind:
		return "timestamp"
	case ListKind:
		return "list"
	case MapKind:
		return "map"
	default:
		return "unknown"
	}
}

// Value is the closed set of JASN values.
type Value interface {
	// Kind reports the variant of the value.
	Kind() Kind
	value()
}

// Null is the null value.
type Null struct{}

// Bool is a boolean value.
type Bool bool

// Int is a signed 64-bit integer value.
type Int int64

// Float is an IEEE-754 binary64 value, including infinities and NaN.
type Float float64

// String is a Unicode text value. Bytes that are not valid UTF-8 are
// written as U+FFFD by the formatters, so such a String does not survive a
// round trip through text.
type String string

func (Null) Kind() Kind   { return NullKind }
func (Bool) Kind() Kind   { return BoolKind }
func (Int) Kind() Kind    { return IntKind }
func (Float) Kind() Kind  { return FloatKind }
func (String) Kind() Kind { return StringKind }

func (Null) value()   {}
func (Bool) value()   {}
func (Int) value()    {}
func (Float) value()  {}
func (String) value() {}

// IsNaN reports whether f is a NaN.
func (f Float) IsNaN() bool { return math.IsNaN(float64(f)) }

// Binary is an owned byte sequence. Its identity is its content; the
// literal encoding it was written in is not retained.
type Binary struct {
	data string
}

// NewBinary returns a Binary holding a copy of b.
func NewBinary(b []byte) Binary {
	return Binary{data: string(b)}
}

func (Binary) Kind() Kind { return BinaryKind }
func (Binary) value()     {}

// Bytes returns a copy of the binary content.
func (b Binary) Bytes() []byte { return []byte(b.data) }

// Len returns the number of bytes.
func (b Binary) Len() int { return len(b.data) }

// Timestamp is an instant together with the UTC offset it was written with.
type Timestamp struct {
	t time.Time
}

// NewTimestamp returns a Timestamp for t. The offset of t's location at that
// instant is kept, truncated to whole minutes as RFC 3339 writes it; the
// location itself is replaced by a fixed zone. Only years 0 through 9999
// can be written as text.
func NewTimestamp(t time.Time) Timestamp {
	name, off := t.Zone()
	off -= off % 60
	if off == 0 && name == "UTC" {
		return Timestamp{t: t.UTC()}
	}
	return Timestamp{t: t.In(time.FixedZone("", off))}
}

func (Timestamp) Kind() Kind { return TimestampKind }
func (Timestamp) value()     {}

// Time returns the timestamp as a time.Time in its original offset.
func (ts Timestamp) Time() time.Time { return ts.t }

// Offset returns the UTC offset in seconds.
func (ts Timestamp) Offset() int {
	_, off := ts.t.Zone()
	return off
}

// List is an ordered sequence of values.
type List struct {
	items []Value
}

// NewList returns a list holding the given items. The slice is copied.
func NewList(items ...Value) *List {
	return &List{items: slices.Clone(items)}
}

func (*List) Kind() Kind { return ListKind }
func (*List) value()     {}

// Len returns the number of items.
func (l *List) Len() int { return len(l.items) }

// Index returns the i'th item.
func (l *List) Index(i int) Value { return l.items[i] }

// Items returns a copy of the items.
func (l *List) Items() []Value { return slices.Clone(l.items) }
