package jasn

import "errors"

var (
	// ErrUnknownSyntax is returned for a syntax name or value that is
	// neither JASN nor JAML.
	ErrUnknownSyntax = errors.New("jasn: unknown syntax")

	// ErrInvalidOption is returned when a ParseOption is given an
	// unusable argument.
	ErrInvalidOption = errors.New("jasn: invalid option")
)
