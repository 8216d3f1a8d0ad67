package dimacs_test

import (
	"strings"
	"testing"

	"github.com/flowgen/netgen/dimacs"
	"github.com/flowgen/netgen/grid"
	"github.com/flowgen/netgen/netgen"
	"github.com/flowgen/netgen/params"
	"github.com/flowgen/netgen/rng"
)

// TestWriteMinCostRoundTrips checks that a generated min-cost-flow
// network, once written, parses cleanly and the parsed node/arc counts
// match what the generator produced.
func TestWriteMinCostRoundTrips(t *testing.T) {
	p, err := params.New(params.Config{
		Seed: 1, Nodes: 10, Sources: 3, Sinks: 3, Density: 30,
		MinCost: 10, MaxCost: 99, Supply: 1000,
		HiCost: 0, Capacitated: 100, MinCap: 100, MaxCap: 1000,
	})
	if err != nil {
		t.Fatalf("params.New: %v", err)
	}
	net, err := netgen.Generate(p, rng.New(p.Seed), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	text := dimacs.Write(net, dimacs.Header{Generator: "netgen", Seed: p.Seed}, true)

	if !strings.HasPrefix(text, "c netgen\n") {
		t.Fatalf("missing generator comment header: %q", text[:20])
	}
	if !strings.Contains(text, "p min 10 ") {
		t.Fatalf("missing min problem line: %q", text)
	}

	parsed, err := dimacs.ParseGolden(text)
	if err != nil {
		t.Fatalf("ParseGolden: %v", err)
	}
	if parsed.Kind != "min" {
		t.Fatalf("got kind %q, want min", parsed.Kind)
	}
	if parsed.Nodes != p.Nodes {
		t.Fatalf("got nodes %d, want %d", parsed.Nodes, p.Nodes)
	}
	if parsed.Arcs != net.ArcCount() {
		t.Fatalf("got arcs %d, want %d", parsed.Arcs, net.ArcCount())
	}
}

// TestWriteMaxFlowOmitsCost checks that max-flow arc lines have exactly
// the four-field form "a t h u", with the cost field omitted.
func TestWriteMaxFlowOmitsCost(t *testing.T) {
	p, err := params.New(params.Config{
		Seed: 1, Nodes: 10, Sources: 3, Sinks: 3, Density: 30,
		MinCost: 1, MaxCost: 1, Supply: 1000,
		HiCost: 0, Capacitated: 100, MinCap: 100, MaxCap: 1000,
	})
	if err != nil {
		t.Fatalf("params.New: %v", err)
	}
	net, err := netgen.Generate(p, rng.New(p.Seed), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	text := dimacs.Write(net, dimacs.Header{Generator: "netgen", Seed: p.Seed}, true)
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "a ") {
			if fields := strings.Fields(line); len(fields) != 4 {
				t.Fatalf("max-flow arc line has %d fields, want 4: %q", len(fields), line)
			}
		}
	}

	parsed, err := dimacs.ParseGolden(text)
	if err != nil {
		t.Fatalf("ParseGolden: %v", err)
	}
	if parsed.Kind != "max" {
		t.Fatalf("got kind %q, want max", parsed.Kind)
	}
}

// TestWriteAssignmentNodesOnlyPositiveSupply checks that assignment output
// emits exactly one "n" line per positive-supply node.
func TestWriteAssignmentNodesOnlyPositiveSupply(t *testing.T) {
	p, err := params.New(params.Config{
		Seed: 1, Nodes: 6, Sources: 3, Sinks: 3, Density: 10,
		MinCost: 10, MaxCost: 99, Supply: 3,
		HiCost: 0, Capacitated: 100, MinCap: 100, MaxCap: 1000,
	})
	if err != nil {
		t.Fatalf("params.New: %v", err)
	}
	net, err := netgen.Generate(p, rng.New(p.Seed), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	text := dimacs.Write(net, dimacs.Header{Generator: "netgen", Seed: p.Seed}, true)
	nodeLines := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "n ") {
			nodeLines++
		}
	}
	if nodeLines != 3 {
		t.Fatalf("got %d node lines, want 3 (one per positive-supply node)", nodeLines)
	}

	parsed, err := dimacs.ParseGolden(text)
	if err != nil {
		t.Fatalf("ParseGolden: %v", err)
	}
	if parsed.Kind != "asn" {
		t.Fatalf("got kind %q, want asn", parsed.Kind)
	}
}

// TestWriteGridRoundTrips checks the write/parse round trip against a
// grid network.
func TestWriteGridRoundTrips(t *testing.T) {
	p, err := grid.New(grid.Config{
		Seed: 1, Rows: 3, Cols: 4, Skeleton: 1,
		Diagonal: true,
		MinCost:  10, MaxCost: 99, Supply: 1000,
		HiCost: 0, Capacitated: 100, MinCap: 100, MaxCap: 1000,
	})
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	net, err := grid.Generate(p, rng.New(p.Seed), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	text := dimacs.Write(net, dimacs.Header{Generator: "grid", Seed: p.Seed}, true)
	parsed, err := dimacs.ParseGolden(text)
	if err != nil {
		t.Fatalf("ParseGolden: %v", err)
	}
	if parsed.Nodes != p.Nodes() {
		t.Fatalf("got nodes %d, want %d", parsed.Nodes, p.Nodes())
	}
	if parsed.Arcs != net.ArcCount() {
		t.Fatalf("got arcs %d, want %d", parsed.Arcs, net.ArcCount())
	}
}

// TestWriteTrailingNewline checks the file-vs-print trailing newline
// rule.
func TestWriteTrailingNewline(t *testing.T) {
	p, err := params.New(params.Config{
		Seed: 1, Nodes: 10, Sources: 3, Sinks: 3, Density: 30,
		MinCost: 10, MaxCost: 99, Supply: 1000,
		HiCost: 0, Capacitated: 100, MinCap: 100, MaxCap: 1000,
	})
	if err != nil {
		t.Fatalf("params.New: %v", err)
	}
	net, err := netgen.Generate(p, rng.New(p.Seed), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	forFile := dimacs.Write(net, dimacs.Header{Generator: "netgen", Seed: p.Seed}, false)
	if strings.HasSuffix(forFile, "\n") {
		t.Fatalf("file output should not end in newline")
	}
	forPrint := dimacs.Write(net, dimacs.Header{Generator: "netgen", Seed: p.Seed}, true)
	if !strings.HasSuffix(forPrint, "\n") {
		t.Fatalf("print output should end in newline")
	}
	if forPrint != forFile+"\n" {
		t.Fatalf("print/file outputs differ by more than trailing newline")
	}
}
