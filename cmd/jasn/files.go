package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
)

// input is one document read from a file or from stdin ("-").
type input struct {
	name string
	data []byte
}

func readInputs(cc *cli.Context, args []string) ([]input, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	res := make([]input, 0, len(args))
	for _, file := range args {
		in, err := readInput(cc, file)
		if err != nil {
			return nil, err
		}
		res = append(res, in)
	}
	return res, nil
}

func readInput(cc *cli.Context, file string) (input, error) {
	var r io.Reader = cc.In
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return input{}, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return input{}, fmt.Errorf("error reading %s: %w", file, err)
	}
	return input{name: file, data: data}, nil
}

// withNewline ends s with a newline, as text files should be.
func withNewline(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}
