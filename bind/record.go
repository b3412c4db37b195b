package bind

import (
	"github.com/KimNorgaard/go-jasn/value"
)

// Field describes one field of a record type R. Build fields with Required,
// Optional and OptionalOmitEmpty.
type Field[R any] struct {
	name      string
	required  bool
	omitEmpty bool
	decode    func(value.Value, *R) error
	encode    func(*R) value.Value
}

// Name returns the map key the field is bound to.
func (f Field[R]) Name() string { return f.name }

func newField[R, F any](name string, c Codec[F], get func(*R) *F) Field[R] {
	return Field[R]{
		name: name,
		decode: func(v value.Value, r *R) error {
			x, err := c.Decode(v)
			if err != nil {
				return err
			}
			*get(r) = x
			return nil
		},
		encode: func(r *R) value.Value {
			return c.Encode(*get(r))
		},
	}
}

// Required declares a field that must be present when decoding.
func Required[R, F any](name string, c Codec[F], get func(*R) *F) Field[R] {
	f := newField(name, c, get)
	f.required = true
	return f
}

// Optional declares a field that keeps its zero value when absent.
func Optional[R, F any](name string, c Codec[F], get func(*R) *F) Field[R] {
	return newField(name, c, get)
}

// OptionalOmitEmpty is Optional, and encoding leaves the key out when the
// encoded value is empty: null, false, zero, an empty string, binary, list
// or map, or the zero time.
func OptionalOmitEmpty[R, F any](name string, c Codec[F], get func(*R) *F) Field[R] {
	f := newField(name, c, get)
	f.omitEmpty = true
	return f
}

// RecordCodec binds a map to a record type R through its field table.
type RecordCodec[R any] struct {
	fields []Field[R]
	known  map[string]bool
	strict bool
}

// Record builds a codec for R from its fields. Field names must be unique.
func Record[R any](fields ...Field[R]) *RecordCodec[R] {
	known := make(map[string]bool, len(fields))
	for _, f := range fields {
		if known[f.Name()] {
			panic("bind: duplicate field name " + f.Name())
		}
		known[f.Name()] = true
	}
	return &RecordCodec[R]{fields: fields, known: known}
}

// Strict returns a copy of c that rejects map keys naming no field.
func (c *RecordCodec[R]) Strict() *RecordCodec[R] {
	out := *c
	out.strict = true
	return &out
}

// Decode builds a fresh R from a map. On failure it returns the zero R.
func (c *RecordCodec[R]) Decode(v value.Value) (R, error) {
	var zero, r R
	m, ok := v.(*value.Map)
	if !ok {
		return zero, mismatch("map", v)
	}
	for _, f := range c.fields {
		fv, ok := m.Get(f.name)
		if !ok {
			if f.required {
				return zero, &Error{Kind: MissingField, Path: keySegment(f.name)}
			}
			continue
		}
		if err := f.decode(fv, &r); err != nil {
			return zero, within(err, keySegment(f.name))
		}
	}
	if c.strict {
		for _, key := range m.Keys() {
			if !c.known[key] {
				return zero, &Error{Kind: UnknownField, Path: keySegment(key)}
			}
		}
	}
	return r, nil
}

// Encode writes every field of r to a map.
func (c *RecordCodec[R]) Encode(r R) value.Value {
	b := value.NewMapBuilder(len(c.fields))
	for _, f := range c.fields {
		fv := f.encode(&r)
		if f.omitEmpty && isEmpty(fv) {
			continue
		}
		// Field names are unique, checked by Record.
		_ = b.Add(f.name, fv)
	}
	return b.Build()
}

func isEmpty(v value.Value) bool {
	switch n := v.(type) {
	case nil, value.Null:
		return true
	case value.Bool:
		return !bool(n)
	case value.Int:
		return n == 0
	case value.Float:
		return n == 0
	case value.String:
		return n == ""
	case value.Binary:
		return n.Len() == 0
	case value.Timestamp:
		return n.Time().IsZero()
	case *value.List:
		return n.Len() == 0
	case *value.Map:
		return n.Len() == 0
	}
	return false
}
