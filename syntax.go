package jasn

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Syntax names one of the two notations.
type Syntax int

const (
	// JASN is the brace and bracket notation.
	JASN Syntax = iota
	// JAML is the indentation notation.
	JAML
)

// ParseSyntax returns the Syntax for a name. Both "jasn" and "a" select
// JASN; "jaml" and "b" select JAML. Case is ignored.
func ParseSyntax(name string) (Syntax, error) {
	switch strings.ToLower(name) {
	case "jasn", "a":
		return JASN, nil
	case "jaml", "b":
		return JAML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSyntax, name)
}

// SyntaxForPath picks a Syntax from a file extension, .jasn or .jaml. It
// reports false for any other extension.
func SyntaxForPath(path string) (Syntax, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jasn":
		return JASN, true
	case ".jaml":
		return JAML, true
	}
	return 0, false
}

func (s Syntax) String() string {
	switch s {
	case JASN:
		return "jasn"
	case JAML:
		return "jaml"
	}
	return fmt.Sprintf("Syntax(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s Syntax) MarshalText() ([]byte, error) {
	if s != JASN && s != JAML {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSyntax, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Syntax) UnmarshalText(text []byte) error {
	v, err := ParseSyntax(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
