package bind

import (
	"math"
	"slices"
	"strings"
	"time"

	"github.com/KimNorgaard/go-jasn/value"
)

type funcCodec[T any] struct {
	decode func(value.Value) (T, error)
	encode func(T) value.Value
}

func (c funcCodec[T]) Decode(v value.Value) (T, error) { return c.decode(v) }
func (c funcCodec[T]) Encode(t T) value.Value          { return c.encode(t) }

// New builds a Codec from a pair of functions, for types the built-in
// codecs do not cover.
func New[T any](decode func(value.Value) (T, error), encode func(T) value.Value) Codec[T] {
	return funcCodec[T]{decode: decode, encode: encode}
}

// Built-in scalar codecs. Each accepts exactly one Value kind; there is no
// coercion between kinds.
var (
	Bool Codec[bool] = New(func(v value.Value) (bool, error) {
		b, ok := v.(value.Bool)
		if !ok {
			return false, mismatch("bool", v)
		}
		return bool(b), nil
	}, func(b bool) value.Value { return value.Bool(b) })

	Int Codec[int64] = New(func(v value.Value) (int64, error) {
		i, ok := v.(value.Int)
		if !ok {
			return 0, mismatch("int", v)
		}
		return int64(i), nil
	}, func(i int64) value.Value { return value.Int(i) })

	Int32 Codec[int32] = New(func(v value.Value) (int32, error) {
		i, ok := v.(value.Int)
		if !ok {
			return 0, mismatch("int32", v)
		}
		if i < math.MinInt32 || i > math.MaxInt32 {
			return 0, &Error{Kind: TypeMismatch, Expected: "int32", Got: "int out of range"}
		}
		return int32(i), nil
	}, func(i int32) value.Value { return value.Int(i) })

	Float Codec[float64] = New(func(v value.Value) (float64, error) {
		f, ok := v.(value.Float)
		if !ok {
			return 0, mismatch("float", v)
		}
		return float64(f), nil
	}, func(f float64) value.Value { return value.Float(f) })

	String Codec[string] = New(func(v value.Value) (string, error) {
		s, ok := v.(value.String)
		if !ok {
			return "", mismatch("string", v)
		}
		return string(s), nil
	}, func(s string) value.Value { return value.String(s) })

	Bytes Codec[[]byte] = New(func(v value.Value) ([]byte, error) {
		b, ok := v.(value.Binary)
		if !ok {
			return nil, mismatch("binary", v)
		}
		return b.Bytes(), nil
	}, func(b []byte) value.Value { return value.NewBinary(b) })

	Time Codec[time.Time] = New(func(v value.Value) (time.Time, error) {
		ts, ok := v.(value.Timestamp)
		if !ok {
			return time.Time{}, mismatch("timestamp", v)
		}
		return ts.Time(), nil
	}, func(t time.Time) value.Value { return value.NewTimestamp(t) })

	// Any passes Values through unchanged.
	Any Codec[value.Value] = New(func(v value.Value) (value.Value, error) {
		if v == nil {
			return value.Null{}, nil
		}
		return v, nil
	}, func(v value.Value) value.Value {
		if v == nil {
			return value.Null{}
		}
		return v
	})
)

// ListOf binds a list whose items all use c.
func ListOf[T any](c Codec[T]) Codec[[]T] {
	return New(func(v value.Value) ([]T, error) {
		l, ok := v.(*value.List)
		if !ok {
			return nil, mismatch("list", v)
		}
		out := make([]T, 0, l.Len())
		for i := range l.Len() {
			item, err := c.Decode(l.Index(i))
			if err != nil {
				return nil, within(err, indexSegment(i))
			}
			out = append(out, item)
		}
		return out, nil
	}, func(items []T) value.Value {
		vs := make([]value.Value, len(items))
		for i, item := range items {
			vs[i] = c.Encode(item)
		}
		return value.NewList(vs...)
	})
}

// MapOf binds a map whose values all use c.
func MapOf[T any](c Codec[T]) Codec[map[string]T] {
	return New(func(v value.Value) (map[string]T, error) {
		m, ok := v.(*value.Map)
		if !ok {
			return nil, mismatch("map", v)
		}
		out := make(map[string]T, m.Len())
		for _, e := range m.Entries() {
			item, err := c.Decode(e.Value)
			if err != nil {
				return nil, within(err, keySegment(e.Key))
			}
			out[e.Key] = item
		}
		return out, nil
	}, func(m map[string]T) value.Value {
		b := value.NewMapBuilder(len(m))
		for k, item := range m {
			// Keys of a Go map are unique, so Add cannot fail.
			_ = b.Add(k, c.Encode(item))
		}
		return b.Build()
	})
}

// Nullable binds null to a nil pointer and anything else through c.
func Nullable[T any](c Codec[T]) Codec[*T] {
	return New(func(v value.Value) (*T, error) {
		if v == nil || v.Kind() == value.NullKind {
			return nil, nil
		}
		t, err := c.Decode(v)
		if err != nil {
			return nil, err
		}
		return &t, nil
	}, func(p *T) value.Value {
		if p == nil {
			return value.Null{}
		}
		return c.Encode(*p)
	})
}

// Enum binds a string to one of a fixed set of variants. A variant value
// with several names encodes as the first name in byte order; a value with
// no name encodes as null.
func Enum[T comparable](variants map[string]T) Codec[T] {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	slices.Sort(names)

	byValue := make(map[T]string, len(variants))
	for _, name := range names {
		if _, ok := byValue[variants[name]]; !ok {
			byValue[variants[name]] = name
		}
	}
	expected := strings.Join(names, ", ")

	return New(func(v value.Value) (T, error) {
		var zero T
		s, ok := v.(value.String)
		if !ok {
			return zero, mismatch("string", v)
		}
		t, ok := variants[string(s)]
		if !ok {
			return zero, &Error{Kind: UnknownVariant, Expected: expected, Got: `"` + string(s) + `"`}
		}
		return t, nil
	}, func(t T) value.Value {
		name, ok := byValue[t]
		if !ok {
			return value.Null{}
		}
		return value.String(name)
	})
}
