package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/KimNorgaard/go-jasn"
)

type MainConfig struct {
	Verbose bool `cli:"name=v aliases=verbose desc='log debug output to stderr'"`
	Color   bool `cli:"name=color desc='color output even when stdout is not a terminal'"`
	JASN    bool `cli:"name=jasn aliases=a desc='read input as jasn regardless of file extension'"`
	JAML    bool `cli:"name=jaml aliases=b desc='read input as jaml regardless of file extension'"`

	Main *cli.Command
}

// inputSyntax picks the notation for path: the -jasn or -jaml flag, else the
// file extension, else JASN.
func (cfg *MainConfig) inputSyntax(path string) jasn.Syntax {
	switch {
	case cfg.JAML:
		return jasn.JAML
	case cfg.JASN:
		return jasn.JASN
	}
	if s, ok := jasn.SyntaxForPath(path); ok {
		return s
	}
	return jasn.JASN
}

func (cfg *MainConfig) colors(w io.Writer) *palette {
	if cfg.Color {
		return newPalette(true)
	}
	f, ok := w.(*os.File)
	return newPalette(ok && isatty.IsTerminal(f.Fd()))
}

type FmtConfig struct {
	*MainConfig

	Indent             int    `cli:"name=indent desc='spaces per level (default 2; use -compact for one line)'"`
	Compact            bool   `cli:"name=compact desc='single-line ascii jasn output'"`
	Quotes             string `cli:"name=quotes desc='quote style: double, single or prefer'"`
	Binary             string `cli:"name=binary desc='binary encoding: base64 or hex'"`
	NoTrailingCommas   bool   `cli:"name=no-trailing-commas desc='omit the comma after the last member'"`
	QuoteKeys          bool   `cli:"name=quote-keys desc='quote every map key'"`
	EscapeUnicode      bool   `cli:"name=escape-unicode desc='write non-ascii characters as escapes'"`
	LeadingPlus        bool   `cli:"name=leading-plus desc='write + before non-negative numbers'"`
	NoZulu             bool   `cli:"name=no-zulu desc='write a zero utc offset as +00:00 instead of Z'"`
	TimestampPrecision string `cli:"name=timestamp-precision desc='fractional seconds: auto, seconds, milliseconds, microseconds or nanoseconds'"`
	Inline             int    `cli:"name=inline desc='jaml: write collections of at most n scalars inline'"`
	Check              bool   `cli:"name=check desc='report files that are not formatted and exit 1'"`
	Write              bool   `cli:"name=w desc='write the result back to the source file'"`
	Output             string `cli:"name=o desc='write the result to this file (- for stdout)'"`

	Fmt *cli.Command
}

// formatOpts turns the flags into format options. Indent is only passed
// through when set so that the default of two spaces applies otherwise.
func (cfg *FmtConfig) formatOpts() ([]jasn.FormatOption, error) {
	opts := []jasn.FormatOption{
		jasn.TrailingCommas(!cfg.NoTrailingCommas),
		jasn.QuoteKeys(cfg.QuoteKeys),
		jasn.EscapeUnicode(cfg.EscapeUnicode),
		jasn.LeadingPlus(cfg.LeadingPlus),
		jasn.Zulu(!cfg.NoZulu),
		jasn.InlineCollections(cfg.Inline),
	}
	if cfg.Indent > 0 {
		opts = append(opts, jasn.Indent(cfg.Indent))
	}
	if cfg.Compact {
		opts = append(opts, jasn.Compact())
	}
	if cfg.Quotes != "" {
		q, err := parseQuoteStyle(cfg.Quotes)
		if err != nil {
			return nil, err
		}
		opts = append(opts, jasn.Quotes(q))
	}
	if cfg.Binary != "" {
		b, err := parseBinaryEncoding(cfg.Binary)
		if err != nil {
			return nil, err
		}
		opts = append(opts, jasn.Binary(b))
	}
	if cfg.TimestampPrecision != "" {
		tp, err := parsePrecision(cfg.TimestampPrecision)
		if err != nil {
			return nil, err
		}
		opts = append(opts, jasn.TimestampPrecision(tp))
	}
	return opts, nil
}

func parseQuoteStyle(s string) (jasn.QuoteStyle, error) {
	switch strings.ToLower(s) {
	case "double", "d":
		return jasn.DoubleQuotes, nil
	case "single", "s":
		return jasn.SingleQuotes, nil
	case "prefer", "prefer-double":
		return jasn.PreferDouble, nil
	}
	return 0, fmt.Errorf("%w: unknown quote style %q", cli.ErrUsage, s)
}

func parseBinaryEncoding(s string) (jasn.BinaryEncoding, error) {
	switch strings.ToLower(s) {
	case "base64", "b64":
		return jasn.Base64, nil
	case "hex":
		return jasn.Hex, nil
	}
	return 0, fmt.Errorf("%w: unknown binary encoding %q", cli.ErrUsage, s)
}

func parsePrecision(s string) (jasn.Precision, error) {
	switch strings.ToLower(s) {
	case "auto":
		return jasn.PrecisionAuto, nil
	case "seconds", "s":
		return jasn.PrecisionSeconds, nil
	case "milliseconds", "millis", "ms":
		return jasn.PrecisionMillis, nil
	case "microseconds", "micros", "us":
		return jasn.PrecisionMicros, nil
	case "nanoseconds", "nanos", "ns":
		return jasn.PrecisionNanos, nil
	}
	return 0, fmt.Errorf("%w: unknown timestamp precision %q", cli.ErrUsage, s)
}

type CheckConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q aliases=quiet desc='print nothing on success and failures only, to stderr'"`

	Check *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	To      string `cli:"name=to desc='output notation: jasn, jaml or yaml'"`
	Compact bool   `cli:"name=compact desc='single-line jasn output'"`

	Convert *cli.Command
}
