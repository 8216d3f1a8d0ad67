package grid

import (
	"testing"

	"github.com/flowgen/netgen/params"
	"github.com/flowgen/netgen/rng"
)

func mustParams(t *testing.T, cfg Config) *Params {
	t.Helper()
	p, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return p
}

// TestGenerateGridDefault checks a default grid parameter set: it must
// classify as MinCostFlow, balance supply between the master source and
// master sink, and keep every arc endpoint within [1, rows*cols+2].
func TestGenerateGridDefault(t *testing.T) {
	p := mustParams(t, Config{
		Seed: 1, Rows: 3, Cols: 4, Skeleton: 1,
		Diagonal: true, Reverse: false, Wrap: false,
		MinCost: 10, MaxCost: 99, Supply: 1000,
		HiCost: 0, Capacitated: 100, MinCap: 100, MaxCap: 1000,
	})

	net, err := Generate(p, rng.New(p.Seed), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if net.Type != params.MinCostFlow {
		t.Fatalf("got type %v, want MinCostFlow", net.Type)
	}
	wantNodes := p.Rows*p.Cols + 2
	if net.Nodes != wantNodes {
		t.Fatalf("got %d nodes, want %d", net.Nodes, wantNodes)
	}

	var sum int64
	for _, s := range net.Supply {
		sum += s
	}
	if sum != 0 {
		t.Fatalf("supply does not balance: sum=%d", sum)
	}
	if net.Supply[0] != p.Supply {
		t.Fatalf("master source supply = %d, want %d", net.Supply[0], p.Supply)
	}
	if net.Supply[wantNodes-1] != -p.Supply {
		t.Fatalf("master sink supply = %d, want %d", net.Supply[wantNodes-1], -p.Supply)
	}

	for i, f := range net.From {
		if f < 1 || f > wantNodes {
			t.Fatalf("arc %d: tail %d out of [1,%d]", i, f, wantNodes)
		}
		if h := net.To[i]; h < 1 || h > wantNodes {
			t.Fatalf("arc %d: head %d out of [1,%d]", i, h, wantNodes)
		}
	}

	// rows master-source arcs + rows master-sink arcs + east + south
	// (unconditional) + SE + NE diagonals; no west/north/wrap arcs for
	// this scenario since Reverse and Wrap are both unset.
	wantEast := p.Rows * (p.Cols - 1)
	wantSouth := p.Cols * (p.Rows - 1)
	wantDiag := 2 * (p.Rows - 1) * (p.Cols - 1) // SE + NE, diagonal set, reverse unset
	wantTotal := 2*p.Rows + wantEast + wantSouth + wantDiag
	if net.ArcCount() != wantTotal {
		t.Fatalf("arc count %d, want %d", net.ArcCount(), wantTotal)
	}
}

// TestGenerateGridReverseAddsSymmetricArcs checks that Reverse adds exactly
// one west arc per east arc and one north arc per south arc.
func TestGenerateGridReverseAddsSymmetricArcs(t *testing.T) {
	base := Config{
		Seed: 1, Rows: 3, Cols: 4, Skeleton: 1,
		MinCost: 10, MaxCost: 99, Supply: 1000,
		HiCost: 0, Capacitated: 100, MinCap: 100, MaxCap: 1000,
	}
	withoutReverse := mustParams(t, base)
	base.Reverse = true
	withReverse := mustParams(t, base)

	n1, err := Generate(withoutReverse, rng.New(withoutReverse.Seed), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	n2, err := Generate(withReverse, rng.New(withReverse.Seed), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	wantExtra := withReverse.Rows*(withReverse.Cols-1) + withReverse.Cols*(withReverse.Rows-1)
	if n2.ArcCount()-n1.ArcCount() != wantExtra {
		t.Fatalf("reverse added %d arcs, want %d", n2.ArcCount()-n1.ArcCount(), wantExtra)
	}
}

// TestGenerateGridIsDeterministic checks the determinism invariant.
func TestGenerateGridIsDeterministic(t *testing.T) {
	cfg := Config{
		Seed: 1, Rows: 3, Cols: 4, Skeleton: 1,
		Diagonal: true, Reverse: true, Wrap: true,
		MinCost: 10, MaxCost: 99, Supply: 1000,
		HiCost: 20, Capacitated: 80, MinCap: 50, MaxCap: 500,
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
		if n1.From[i] != n2.From[i] || n1.To[i] != n2.To[i] ||
			n1.Cost[i] != n2.Cost[i] || n1.Cap[i] != n2.Cap[i] {
			t.Fatalf("arc %d diverged between identical runs", i)
		}
	}
}

// TestNewRejectsInvalidParameters covers validation failures.
func TestNewRejectsInvalidParameters(t *testing.T) {
	base := Config{
		Rows: 3, Cols: 4, Skeleton: 1,
		MinCost: 10, MaxCost: 99, Supply: 1000,
		HiCost: 0, Capacitated: 100, MinCap: 100, MaxCap: 1000,
	}

	cases := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero rows", func(c *Config) { c.Rows = 0 }},
		{"skeleton exceeds rows", func(c *Config) { c.Skeleton = c.Rows + 1 }},
		{"mincost above maxcost", func(c *Config) { c.MinCost, c.MaxCost = 100, 10 }},
		{"mincap above maxcap", func(c *Config) { c.MinCap, c.MaxCap = 2000, 10 }},
		{"hicost out of range", func(c *Config) { c.HiCost = 101 }},
		{"capacitated out of range", func(c *Config) { c.Capacitated = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.modify(&cfg)
			if _, err := New(cfg); err == nil {
				t.Fatalf("expected error for %s", tc.name)
			}
		})
	}
}
