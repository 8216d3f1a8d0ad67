package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
)

// parseInt64Args converts rest's positional strings to int64, rejecting
// more than maxArgs positional arguments.
func parseInt64Args(rest []string, maxArgs int) ([]int64, error) {
	if len(rest) > maxArgs {
		return nil, fmt.Errorf("%w: got %d, want at most %d", ErrInvalidArgCount, len(rest), maxArgs)
	}
	out := make([]int64, len(rest))
	for i, s := range rest {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("cmd/netgen: positional argument %d (%q): %w", i+1, s, err)
		}
		out[i] = v
	}
	return out, nil
}

// intArg returns args[i] if present, else def.
func intArg(args []int64, i int, def int64) int64 {
	if i < len(args) {
		return args[i]
	}
	return def
}

// boolArg treats a nonzero positional value as true, mirroring the
// original CLI's integer-flag convention (diagonal/reverse/wrap/rng).
func boolArg(args []int64, i int, def bool) bool {
	if i < len(args) {
		return args[i] != 0
	}
	return def
}

// writeOutput sends text to path if non-empty, else to stdout. When
// writing to a file it prints a one-line confirmation to stderr unless
// quiet is set.
func writeOutput(text, path string, quiet bool, stdout, stderr io.Writer) error {
	if path == "" {
		_, err := io.WriteString(stdout, text)
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("cmd/netgen: writing %s: %w", path, err)
	}
	if !quiet {
		fmt.Fprintf(stderr, "wrote %s\n", path)
	}
	return nil
}
