package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/KimNorgaard/go-jasn"
)

func format(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	opts, err := cfg.formatOpts()
	if err != nil {
		return err
	}
	if modes := btoi(cfg.Write) + btoi(cfg.Check) + btoi(cfg.Output != ""); modes > 1 {
		return fmt.Errorf("%w: -w, -check and -o are exclusive", cli.ErrUsage)
	}
	if cfg.Write && len(args) == 0 {
		return fmt.Errorf("%w: -w needs file arguments", cli.ErrUsage)
	}

	inputs, err := readInputs(cc, args)
	if err != nil {
		return err
	}
	return cfg.formatInputs(cc.Out, inputs, opts)
}

// formatInputs formats every input and, depending on the flags, reports a
// diff, rewrites the source, writes the -o file or writes to stdout.
func (cfg *FmtConfig) formatInputs(stdout io.Writer, inputs []input, opts []jasn.FormatOption) error {
	p := cfg.colors(stdout)
	var out io.Writer = stdout
	var file bytes.Buffer
	toFile := cfg.Output != "" && cfg.Output != "-"
	if toFile {
		out = &file
	}
	unformatted := 0
	for _, in := range inputs {
		s := cfg.inputSyntax(in.name)
		formatted, err := formatInput(in, s, opts)
		if err != nil {
			return err
		}
		slog.Debug("formatted", "file", in.name, "syntax", s, "changed", formatted != string(in.data))

		switch {
		case cfg.Check:
			if formatted != string(in.data) {
				unformatted++
				reportUnformatted(stdout, in.name, string(in.data), formatted, p)
			}
		case cfg.Write:
			if formatted == string(in.data) {
				continue
			}
			if err := os.WriteFile(in.name, []byte(formatted), 0o644); err != nil {
				return fmt.Errorf("error writing %s: %w", in.name, err)
			}
		default:
			if _, err := io.WriteString(out, formatted); err != nil {
				return err
			}
		}
	}
	if toFile {
		if err := os.WriteFile(cfg.Output, file.Bytes(), 0o644); err != nil {
			return fmt.Errorf("error writing %s: %w", cfg.Output, err)
		}
	}
	if unformatted > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// formatInput reformats one document in its own notation.
func formatInput(in input, s jasn.Syntax, opts []jasn.FormatOption) (string, error) {
	v, err := jasn.Parse(in.data, s)
	if err != nil {
		return "", fmt.Errorf("error decoding %s: %w", in.name, err)
	}
	return withNewline(jasn.Format(v, s, opts...)), nil
}

func reportUnformatted(w io.Writer, name, want, got string, p *palette) {
	fmt.Fprintf(w, "%s %s: not formatted correctly\n", p.bad("✗"), name)
	fmt.Fprintln(w, p.hunk("--- %s", name))
	fmt.Fprintln(w, p.hunk("+++ %s (formatted)", name))
	fmt.Fprint(w, lineDiff(want, got, p))
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}
