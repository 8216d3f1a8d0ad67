package netgen

import (
	"testing"

	"github.com/flowgen/netgen/params"
	"github.com/flowgen/netgen/rng"
)

// TestGenerateAssignment checks that sources==supply triggers the
// assignment classification, producing exactly nodes/2 unit-capacity
// matching arcs plus pickHead-driven fill within the density budget, and
// the ±1 supply vector.
func TestGenerateAssignment(t *testing.T) {
	p := mustParams(t, params.Config{
		Seed: 1, Nodes: 6, Sources: 3, Sinks: 3, Density: 10,
		MinCost: 10, MaxCost: 99, Supply: 3,
		HiCost: 0, Capacitated: 100, MinCap: 100, MaxCap: 1000,
	})

	net, err := Generate(p, rng.New(p.Seed), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if net.Type != params.Assignment {
		t.Fatalf("got type %v, want Assignment", net.Type)
	}

	wantSupply := []int64{1, 1, 1, -1, -1, -1}
	if len(net.Supply) != len(wantSupply) {
		t.Fatalf("supply length %d, want %d", len(net.Supply), len(wantSupply))
	}
	for i, w := range wantSupply {
		if net.Supply[i] != w {
			t.Fatalf("supply[%d] = %d, want %d", i, net.Supply[i], w)
		}
	}

	half := p.Nodes / 2
	matching := int64(0)
	for i, f := range net.From {
		if f <= half && net.Cap[i] == 1 {
			matching++
		}
	}
	if matching != half {
		t.Fatalf("matching arc count %d, want %d", matching, half)
	}
	if net.ArcCount() < half || net.ArcCount() > p.Density {
		t.Fatalf("arc count %d out of [%d,%d]", net.ArcCount(), half, p.Density)
	}
}

// TestGenerateAssignmentIsDeterministic checks the determinism invariant
// for the assignment code path specifically, since it takes a separate
// branch in Generate.
func TestGenerateAssignmentIsDeterministic(t *testing.T) {
	cfg := params.Config{
		Seed: 1, Nodes: 6, Sources: 3, Sinks: 3, Density: 10,
		MinCost: 10, MaxCost: 99, Supply: 3,
		HiCost: 0, Capacitated: 100, MinCap: 100, MaxCap: 1000,
	}
	p1 := mustParams(t, cfg)
	p2 := mustParams(t, cfg)

	n1, err := Generate(p1, rng.New(p1.Seed), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	n2, err := Generate(p2, rng.New(p2.Seed), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if n1.ArcCount() != n2.ArcCount() {
		t.Fatalf("arc counts diverged: %d != %d", n1.ArcCount(), n2.ArcCount())
	}
	for i := range n1.From {
		if n1.From[i] != n2.From[i] || n1.To[i] != n2.To[i] || n1.Cap[i] != n2.Cap[i] {
			t.Fatalf("arc %d diverged between identical assignment runs", i)
		}
	}
}
