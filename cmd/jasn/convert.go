package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/KimNorgaard/go-jasn"
	"github.com/KimNorgaard/go-jasn/value"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	render, err := cfg.renderer()
	if err != nil {
		return err
	}
	inputs, err := readInputs(cc, args)
	if err != nil {
		return err
	}
	for i, in := range inputs {
		s := cfg.inputSyntax(in.name)
		v, err := jasn.Parse(in.data, s)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", in.name, err)
		}
		out, err := render(v)
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", in.name, err)
		}
		slog.Debug("converted", "file", in.name, "from", s, "to", cfg.To)
		if i > 0 {
			if _, err := io.WriteString(cc.Out, "---\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(cc.Out, withNewline(out)); err != nil {
			return err
		}
	}
	return nil
}

func (cfg *ConvertConfig) renderer() (func(value.Value) (string, error), error) {
	if cfg.To == "" {
		return nil, fmt.Errorf("%w: -to is required", cli.ErrUsage)
	}
	if strings.EqualFold(cfg.To, "yaml") || strings.EqualFold(cfg.To, "yml") {
		return toYAML, nil
	}
	s, err := jasn.ParseSyntax(cfg.To)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	var opts []jasn.FormatOption
	if cfg.Compact {
		opts = append(opts, jasn.Compact())
	}
	return func(v value.Value) (string, error) {
		return jasn.Format(v, s, opts...), nil
	}, nil
}
