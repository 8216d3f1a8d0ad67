package dimacs

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// ParsedFile is the result of ParseGolden: the declared problem type, node
// and arc counts, and lightly-validated node/arc line contents. It exists
// solely to drive write/parse round-trip checks in tests.
type ParsedFile struct {
	Kind      string // "min", "max", or "asn"
	Nodes     int64
	Arcs      int64
	NodeLines int
	ArcLines  int
}

// ParseGolden validates that text is well-formed DIMACS flow-problem
// output: every line starts with a recognized type character, the problem
// line's field count matches its declared kind, and every node id on an
// "n"/"a" line falls within [1, Nodes]. It is intentionally not a full
// DIMACS parser — just enough structural validation to exercise property 8
// from a test, not a general-purpose DIMACS reader.
func ParseGolden(text string) (*ParsedFile, error) {
	scanner := bufio.NewScanner(strings.NewReader(text))
	var result ParsedFile
	sawProblem := false

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "c":
			// comment, no validation
		case "p":
			if len(fields) != 4 {
				return nil, fmt.Errorf("dimacs: malformed problem line %q", line)
			}
			kind := fields[1]
			if kind != "min" && kind != "max" && kind != "asn" {
				return nil, fmt.Errorf("dimacs: unknown problem kind %q", kind)
			}
			nodes, err := strconv.ParseInt(fields[2], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("dimacs: bad node count %q: %w", fields[2], err)
			}
			arcs, err := strconv.ParseInt(fields[3], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("dimacs: bad arc count %q: %w", fields[3], err)
			}
			result.Kind, result.Nodes, result.Arcs = kind, nodes, arcs
			sawProblem = true
		case "n":
			if !sawProblem {
				return nil, fmt.Errorf("dimacs: node line before problem line: %q", line)
			}
			if err := validateNodeLine(fields, result.Kind, result.Nodes); err != nil {
				return nil, err
			}
			result.NodeLines++
		case "a":
			if !sawProblem {
				return nil, fmt.Errorf("dimacs: arc line before problem line: %q", line)
			}
			if err := validateArcLine(fields, result.Kind, result.Nodes); err != nil {
				return nil, err
			}
			result.ArcLines++
		default:
			return nil, fmt.Errorf("dimacs: unrecognized line type %q", line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dimacs: scanning: %w", err)
	}
	if !sawProblem {
		return nil, fmt.Errorf("dimacs: missing problem line")
	}
	if int64(result.ArcLines) != result.Arcs {
		return nil, fmt.Errorf("dimacs: arc line count %d != declared %d", result.ArcLines, result.Arcs)
	}
	return &result, nil
}

func validateNodeLine(fields []string, kind string, nodes int64) error {
	var wantFields int
	switch kind {
	case "min", "max":
		wantFields = 3
	case "asn":
		wantFields = 2
	}
	if len(fields) != wantFields {
		return fmt.Errorf("dimacs: node line %q has %d fields, want %d", fields, len(fields), wantFields)
	}
	id, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return fmt.Errorf("dimacs: bad node id %q: %w", fields[1], err)
	}
	if id < 1 || id > nodes {
		return fmt.Errorf("dimacs: node id %d out of [1,%d]", id, nodes)
	}
	return nil
}

func validateArcLine(fields []string, kind string, nodes int64) error {
	var wantFields int
	switch kind {
	case "min":
		wantFields = 6
	case "max":
		wantFields = 4
	case "asn":
		wantFields = 4
	}
	if len(fields) != wantFields {
		return fmt.Errorf("dimacs: arc line %q has %d fields, want %d", fields, len(fields), wantFields)
	}
	for _, idx := range []int{1, 2} {
		id, err := strconv.ParseInt(fields[idx], 10, 64)
		if err != nil {
			return fmt.Errorf("dimacs: bad arc endpoint %q: %w", fields[idx], err)
		}
		if id < 1 || id > nodes {
			return fmt.Errorf("dimacs: arc endpoint %d out of [1,%d]", id, nodes)
		}
	}
	return nil
}
