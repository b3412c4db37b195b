// Package indent turns JAML source into a token stream in which indentation
// changes appear as INDENT and DEDENT tokens, the way braces would in JASN.
package indent

import (
	"fmt"
	"strings"

	jerrors "github.com/KimNorgaard/go-jasn/errors"
)

// Style is the indentation unit of a document: Count copies of Char.
type Style struct {
	Count int
	Char  byte
}

func (s Style) String() string {
	return fmt.Sprintf("%q", strings.Repeat(string(s.Char), s.Count))
}

func charName(c byte) string {
	if c == '\t' {
		return "tabs"
	}
	return "spaces"
}

// Tracker infers the indentation unit from the first indented line and keeps
// the stack of open depths. It is scoped to a single parse.
type Tracker struct {
	style  Style
	set    bool
	levels []int
}

// Measure validates a run of leading whitespace and returns its depth in
// units. The first non-empty run fixes the unit for the rest of the document.
func (t *Tracker) Measure(ws []byte) (int, error) {
	if len(ws) == 0 {
		return 0, nil
	}
	c := ws[0]
	for _, b := range ws[1:] {
		if b != c {
			return 0, fmt.Errorf("%w: %q", jerrors.ErrMixedIndent, ws)
		}
	}
	if !t.set {
		t.style = Style{Count: len(ws), Char: c}
		t.set = true
		return 1, nil
	}
	if c != t.style.Char {
		return 0, fmt.Errorf("%w: unit is %s, got %s", jerrors.ErrIndentMismatch, t.style, charName(c))
	}
	if len(ws)%t.style.Count != 0 {
		return 0, fmt.Errorf("%w: expected a multiple of %d, got %d", jerrors.ErrIndentMismatch, t.style.Count, len(ws))
	}
	return len(ws) / t.style.Count, nil
}

// Move makes depth the current level. It returns 1 when a new level was
// opened, -n when n levels were closed and 0 when the level is unchanged.
// Returning to a depth that was never opened is an error.
func (t *Tracker) Move(depth int) (int, error) {
	top := t.top()
	switch {
	case depth > top:
		t.levels = append(t.levels, depth)
		return 1, nil
	case depth == top:
		return 0, nil
	}
	closed := 0
	for depth < t.top() {
		t.levels = t.levels[:len(t.levels)-1]
		closed++
	}
	if depth != t.top() {
		return 0, fmt.Errorf("%w: depth %d", jerrors.ErrInvalidDedent, depth)
	}
	return -closed, nil
}

// Open returns the number of levels above the root that are still open.
func (t *Tracker) Open() int {
	return len(t.levels)
}

func (t *Tracker) top() int {
	if len(t.levels) == 0 {
		return 0
	}
	return t.levels[len(t.levels)-1]
}
