package iojson

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// InputReader reads raw command input from the file named by its flag, or
// from stdin when the flag is unset.
type InputReader struct {
	fileFlagValue string

	// Stdin overrides os.Stdin, for tests.
	Stdin io.Reader
}

func (r *InputReader) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "input",
		Aliases:     []string{"i"},
		Usage:       "path to input file (reads from stdin if not provided)",
		Destination: &r.fileFlagValue,
	}
}

func (r *InputReader) Read() ([]byte, error) {
	if r.fileFlagValue != "" {
		data, err := os.ReadFile(r.fileFlagValue)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		return data, nil
	}

	if r.Stdin != nil {
		return io.ReadAll(r.Stdin)
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, fmt.Errorf("no input provided (stdin is a terminal); use -i flag or pipe input")
	}
	return io.ReadAll(os.Stdin)
}
