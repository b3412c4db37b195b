// Package bind converts between Values and application types without
// reflection. Each bound type supplies a Codec, usually assembled from the
// built-in scalar codecs and a Record listing the type's fields:
//
//	type Server struct {
//		Host string
//		Port int64
//	}
//
//	var serverCodec = bind.Record(
//		bind.Required("host", bind.String, func(s *Server) *string { return &s.Host }),
//		bind.Optional("port", bind.Int, func(s *Server) *int64 { return &s.Port }),
//	)
//
// Decoding either succeeds completely or returns the zero value and an
// *Error; a record is never partially populated.
package bind

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/KimNorgaard/go-jasn/internal/scalar"
	"github.com/KimNorgaard/go-jasn/value"
)

// Codec converts between a Value and a T.
type Codec[T any] interface {
	Decode(v value.Value) (T, error)
	Encode(t T) value.Value
}

// ToTyped decodes v into a T.
func ToTyped[T any](v value.Value, c Codec[T]) (T, error) {
	return c.Decode(v)
}

// FromTyped encodes t as a Value.
func FromTyped[T any](t T, c Codec[T]) value.Value {
	return c.Encode(t)
}

// ErrorKind classifies a binding failure.
type ErrorKind int

const (
	// MissingField is a required record field absent from the map.
	MissingField ErrorKind = iota + 1
	// TypeMismatch is a Value of the wrong kind or out of range for the target.
	TypeMismatch
	// UnknownVariant is a string that names no enum variant.
	UnknownVariant
	// UnknownField is a map key a strict record does not declare.
	UnknownField
)

func (k ErrorKind) String() string {
	switch k {
	case MissingField:
		return "missing field"
	case TypeMismatch:
		return "type mismatch"
	case UnknownVariant:
		return "unknown variant"
	case UnknownField:
		return "unknown field"
	default:
		return "bind error"
	}
}

// Sentinels matched by *Error through errors.Is.
var (
	ErrMissingField   = errors.New("missing field")
	ErrTypeMismatch   = errors.New("type mismatch")
	ErrUnknownVariant = errors.New("unknown variant")
	ErrUnknownField   = errors.New("unknown field")
)

// Error describes where and why binding failed. Path locates the offending
// value from the root, as in .servers[2].port.
type Error struct {
	Kind     ErrorKind
	Path     string
	Expected string
	Got      string
}

func (e *Error) Error() string {
	path := e.Path
	if path == "" {
		path = "."
	}
	switch e.Kind {
	case MissingField:
		return fmt.Sprintf("bind: missing field at %s", path)
	case UnknownField:
		return fmt.Sprintf("bind: unknown field at %s", path)
	case UnknownVariant:
		return fmt.Sprintf("bind: unknown variant %s at %s, expected one of %s", e.Got, path, e.Expected)
	default:
		return fmt.Sprintf("bind: %s at %s: expected %s, got %s", e.Kind, path, e.Expected, e.Got)
	}
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrMissingField:
		return e.Kind == MissingField
	case ErrTypeMismatch:
		return e.Kind == TypeMismatch
	case ErrUnknownVariant:
		return e.Kind == UnknownVariant
	case ErrUnknownField:
		return e.Kind == UnknownField
	}
	return false
}

func mismatch(expected string, got value.Value) *Error {
	return &Error{Kind: TypeMismatch, Expected: expected, Got: describe(got)}
}

func describe(v value.Value) string {
	if v == nil {
		return "nothing"
	}
	return v.Kind().String()
}

// within prefixes the path of a binding error with seg.
func within(err error, seg string) error {
	var be *Error
	if !errors.As(err, &be) {
		return err
	}
	out := *be
	out.Path = seg + be.Path
	return &out
}

func keySegment(key string) string {
	if scalar.IsIdentifier(key) {
		return "." + key
	}
	return "[" + strconv.Quote(key) + "]"
}

func indexSegment(i int) string {
	return "[" + strconv.Itoa(i) + "]"
}
