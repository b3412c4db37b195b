package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/KimNorgaard/go-jasn"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	inputs, err := readInputs(cc, args)
	if err != nil {
		return err
	}
	var w io.Writer = cc.Out
	if cfg.Quiet {
		w = os.Stderr
	}
	if failed := checkInputs(w, inputs, cfg.inputSyntax, cfg.colors(w), cfg.Quiet); failed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// checkInputs parses every input, prints one line per input and returns the
// number that failed. When quiet only failures are printed.
func checkInputs(w io.Writer, inputs []input, syntax func(string) jasn.Syntax, p *palette, quiet bool) int {
	failed := 0
	for _, in := range inputs {
		s := syntax(in.name)
		if _, err := jasn.Parse(in.data, s); err != nil {
			failed++
			slog.Debug("invalid document", "file", in.name, "syntax", s, "error", err)
			fmt.Fprintf(w, "%s %s: %v\n", p.bad("✗"), in.name, err)
			continue
		}
		if !quiet {
			fmt.Fprintf(w, "%s %s\n", p.ok("✓"), in.name)
		}
	}
	switch {
	case quiet:
	case failed == 0:
		fmt.Fprintf(w, "All %d file(s) are valid\n", len(inputs))
	default:
		fmt.Fprintf(w, "%d of %d file(s) are invalid\n", failed, len(inputs))
	}
	return failed
}
