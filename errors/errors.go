// Package errors defines the error values returned when parsing JASN and
// JAML documents.
//
// Every parse failure is a *ParseError carrying the error kind, the source
// position and a cause. The cause wraps one of the sentinel values below, so
// callers can test for both the broad kind and the specific problem:
//
//	if errors.Is(err, jerrors.ErrIndent) { ... }
//	if errors.Is(err, jerrors.ErrIndentMismatch) { ... }
package errors

import (
	"errors"
	"fmt"
)

// Kind classifies a parse error.
type Kind int

const (
	// LexError is a malformed literal.
	LexError Kind = iota + 1
	// SyntaxError is an unexpected token, unbalanced delimiter or trailing content.
	SyntaxError
	// IndentError is a JAML indentation problem.
	IndentError
	// DuplicateKeyError is a map literal that repeats a key.
	DuplicateKeyError
)

func (k Kind) String() string {
	switch k {
	case LexError:
		return "lex error"
	case SyntaxError:
		return "syntax error"
	case IndentError:
		return "indent error"
	case DuplicateKeyError:
		return "duplicate key error"
	default:
		return "error"
	}
}

// Kind sentinels. A *ParseError matches the one for its Kind with errors.Is.
var (
	ErrLex          = errors.New("lex error")
	ErrSyntax       = errors.New("syntax error")
	ErrIndent       = errors.New("indent error")
	ErrDuplicateKey = errors.New("duplicate key")
)

// Lexical causes.
var (
	ErrIntegerRange        = errors.New("integer out of range")
	ErrInvalidNumber       = errors.New("invalid number")
	ErrInvalidEscape       = errors.New("invalid escape")
	ErrUnterminatedString  = errors.New("unterminated string")
	ErrUnterminatedComment = errors.New("unterminated comment")
	ErrControlCharacter    = errors.New("control character in string")
	ErrInvalidUTF8         = errors.New("invalid utf-8")
	ErrInvalidBase64       = errors.New("invalid base64")
	ErrOddHexDigits        = errors.New("hex binary must have an even number of digits")
	ErrInvalidHex          = errors.New("invalid hex digit")
	ErrInvalidTimestamp    = errors.New("invalid timestamp")
)

// Structural causes.
var (
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrTrailingContent = errors.New("trailing content")
	ErrEmptyDocument   = errors.New("empty document")
	ErrMaxDepth        = errors.New("maximum nesting depth exceeded")
	ErrMissingValue    = errors.New("missing value")
)

// Indentation causes.
var (
	ErrMixedIndent      = errors.New("mixed tabs and spaces in indentation")
	ErrIndentMismatch   = errors.New("indentation mismatch")
	ErrInvalidDedent    = errors.New("dedent to a level that was never opened")
	ErrUnexpectedIndent = errors.New("unexpected indentation")
)

// ParseError is a single error that stopped parsing, with its position.
// Line and Column are 1-based.
type ParseError struct {
	Kind   Kind
	Line   int
	Column int
	Err    error
}

// New returns a ParseError of kind k at the given position.
func New(k Kind, line, column int, err error) *ParseError {
	return &ParseError{Kind: k, Line: line, Column: column, Err: err}
}

// Newf is like New but builds the cause from a sentinel and a detail message.
func Newf(k Kind, line, column int, cause error, format string, args ...any) *ParseError {
	return New(k, line, column, fmt.Errorf("%w: %s", cause, fmt.Sprintf(format, args...)))
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("jasn: %s at line %d, column %d: %v", e.Kind, e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for e's kind.
func (e *ParseError) Is(target error) bool {
	switch target {
	case ErrLex:
		return e.Kind == LexError
	case ErrSyntax:
		return e.Kind == SyntaxError
	case ErrIndent:
		return e.Kind == IndentError
	case ErrDuplicateKey:
		return e.Kind == DuplicateKeyError
	}
	return false
}
