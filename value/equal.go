package value

import (
	"encoding/binary"
	"hash/maphash"
	"math"
	"time"
)

// Equal reports whether a and b are the same variant with the same content.
// Int and Float never compare equal to each other. All NaNs are equal so that
// a formatted NaN reparses to an equal value.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case Null:
		return true
	case Bool:
		return x == b.(Bool)
	case Int:
		return x == b.(Int)
	case Float:
		y := b.(Float)
		if x.IsNaN() || y.IsNaN() {
			return x.IsNaN() && y.IsNaN()
		}
		return x == y
	case String:
		return x == b.(String)
	case Binary:
		return x.data == b.(Binary).data
	case Timestamp:
		y := b.(Timestamp)
		return x.t.Equal(y.t) && x.Offset() == y.Offset()
	case *List:
		y := b.(*List)
		if len(x.items) != len(y.items) {
			return false
		}
		for i := range x.items {
			if !Equal(x.items[i], y.items[i]) {
				return false
			}
		}
		return true
	case *Map:
		y := b.(*Map)
		if len(x.entries) != len(y.entries) {
			return false
		}
		for i := range x.entries {
			if x.entries[i].Key != y.entries[i].Key {
				return false
			}
			if !Equal(x.entries[i].Value, y.entries[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}

var seed = maphash.MakeSeed()

// Hash returns a hash of v consistent with Equal.
func Hash(v Value) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	writeHash(&h, v)
	return h.Sum64()
}

func writeHash(h *maphash.Hash, v Value) {
	var buf [8]byte
	if v == nil {
		h.WriteByte(0xff)
		return
	}
	h.WriteByte(byte(v.Kind()))
	switch x := v.(type) {
	case Null:
	case Bool:
		if x {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case Int:
		binary.LittleEndian.PutUint64(buf[:], uint64(x))
		h.Write(buf[:])
	case Float:
		f := float64(x)
		switch {
		case math.IsNaN(f):
			f = math.NaN()
		case f == 0:
			// 0.0 and -0.0 are Equal.
			f = 0
		}
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		h.Write(buf[:])
	case String:
		h.WriteString(string(x))
	case Binary:
		h.WriteString(x.data)
	case Timestamp:
		binary.LittleEndian.PutUint64(buf[:], uint64(x.t.Unix()))
		h.Write(buf[:])
		binary.LittleEndian.PutUint64(buf[:], uint64(x.t.Nanosecond())|uint64(uint32(int32(x.Offset())))<<32)
		h.Write(buf[:])
	case *List:
		binary.LittleEndian.PutUint64(buf[:], uint64(len(x.items)))
		h.Write(buf[:])
		for _, it := range x.items {
			writeHash(h, it)
		}
	case *Map:
		binary.LittleEndian.PutUint64(buf[:], uint64(len(x.entries)))
		h.Write(buf[:])
		for _, e := range x.entries {
			h.WriteString(e.Key)
			h.WriteByte(0)
			writeHash(h, e.Value)
		}
	}
}

// ToAny converts v into plain Go values: nil, bool, int64, float64, string,
// []byte, time.Time, []any and map[string]any.
func ToAny(v Value) any {
	switch x := v.(type) {
	case Bool:
		return bool(x)
	case Int:
		return int64(x)
	case Float:
		return float64(x)
	case String:
		return string(x)
	case Binary:
		return x.Bytes()
	case Timestamp:
		return x.Time()
	case *List:
		out := make([]any, len(x.items))
		for i, it := range x.items {
			out[i] = ToAny(it)
		}
		return out
	case *Map:
		out := make(map[string]any, len(x.entries))
		for _, e := range x.entries {
			out[e.Key] = ToAny(e.Value)
		}
		return out
	}
	return nil
}

// FromAny is the inverse of ToAny. Unsupported Go types yield ok == false.
func FromAny(v any) (Value, bool) {
	switch x := v.(type) {
	case nil:
		return Null{}, true
	case Value:
		return x, true
	case bool:
		return Bool(x), true
	case int:
		return Int(x), true
	case int64:
		return Int(x), true
	case float64:
		return Float(x), true
	case string:
		return String(x), true
	case []byte:
		return NewBinary(x), true
	case time.Time:
		return NewTimestamp(x), true
	case []any:
		items := make([]Value, len(x))
		for i, it := range x {
			iv, ok := FromAny(it)
			if !ok {
				return nil, false
			}
			items[i] = iv
		}
		return &List{items: items}, true
	case map[string]any:
		b := NewMapBuilder(len(x))
		for k, it := range x {
			iv, ok := FromAny(it)
			if !ok {
				return nil, false
			}
			// Go map keys are unique.
			_ = b.Add(k, iv)
		}
		return b.Build(), true
	}
	return nil, false
}
