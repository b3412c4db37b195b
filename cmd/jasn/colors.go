package main

import (
	"fmt"

	"github.com/fatih/color"
)

type palette struct {
	ok, bad, add, del, hunk func(format string, a ...any) string
}

func newPalette(enabled bool) *palette {
	if !enabled {
		return &palette{ok: fmt.Sprintf, bad: fmt.Sprintf, add: fmt.Sprintf, del: fmt.Sprintf, hunk: fmt.Sprintf}
	}
	return &palette{
		ok:   sprintf(color.New(color.FgGreen)),
		bad:  sprintf(color.New(color.FgRed, color.Bold)),
		add:  sprintf(color.New(color.FgGreen)),
		del:  sprintf(color.New(color.FgRed)),
		hunk: sprintf(color.New(color.FgCyan)),
	}
}

// sprintf returns c's formatter with color forced on.
func sprintf(c *color.Color) func(format string, a ...any) string {
	c.EnableColor()
	return c.SprintfFunc()
}
