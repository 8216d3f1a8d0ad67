package grid

import (
	"github.com/flowgen/netgen/params"
	"github.com/flowgen/netgen/rng"
)

// generator holds the mutable scratch state for one Generate call.
type generator struct {
	p     *Params
	r     rng.Source
	hooks *Hooks

	from, to, cost, cap []int64
}

func (g *generator) emit(from, to, cost, cap int64) {
	g.from = append(g.from, from)
	g.to = append(g.to, to)
	g.cost = append(g.cost, cost)
	g.cap = append(g.cap, cap)
}

// node returns the 1-based id of interior grid cell (i,j), 0-based. Node
// 1 is the master source, node rows*cols+2 is the master sink, and
// interior (i,j) = i*cols+j+2.
func (g *generator) node(i, j int64) int64 {
	return i*g.p.Cols + j + 2
}

func (g *generator) sink() int64 {
	return g.p.Rows*g.p.Cols + 2
}

func ceilDiv(a, b int64) int64 {
	if b == 0 {
		return a
	}
	return (a + b - 1) / b
}

// Generate runs the grid layout algorithm and returns the resulting
// Network. hooks may be nil.
func Generate(p *Params, r rng.Source, hooks *Hooks) (*Network, error) {
	g := &generator{p: p, r: r, hooks: hooks}

	if err := g.masterSourceArcs(); err != nil {
		return nil, err
	}
	if err := g.eastArcs(); err != nil {
		return nil, err
	}
	if p.Reverse {
		if err := g.westArcs(); err != nil {
			return nil, err
		}
	}
	if err := g.southArcs(); err != nil {
		return nil, err
	}
	if p.Reverse {
		if err := g.northArcs(); err != nil {
			return nil, err
		}
	}
	if p.Diagonal {
		if err := g.seDiagonals(); err != nil {
			return nil, err
		}
		if err := g.neDiagonals(); err != nil {
			return nil, err
		}
		if p.Reverse {
			if err := g.nwDiagonals(); err != nil {
				return nil, err
			}
			if err := g.swDiagonals(); err != nil {
				return nil, err
			}
		}
	}
	if err := g.masterSinkArcs(); err != nil {
		return nil, err
	}

	return g.network(), nil
}

func (g *generator) network() *Network {
	nodes := g.p.Nodes()
	supply := make([]int64, nodes)
	supply[0] = g.p.Supply
	supply[nodes-1] = -g.p.Supply
	return &Network{
		Nodes:  nodes,
		From:   g.from,
		To:     g.to,
		Cost:   g.cost,
		Cap:    g.cap,
		Supply: supply,
		Type:   params.MinCostFlow,
	}
}

// masterSourceArcs emits one uncapacitated-cost arc per row, from the
// master source (node 1) to that row's first interior node.
func (g *generator) masterSourceArcs() error {
	g.hooks.phase("master-source")
	for i := int64(0); i < g.p.Rows; i++ {
		g.emit(1, g.node(i, 0), 0, g.p.Supply)
	}
	return nil
}

// randomCostCap draws a plain (cost, cap) pair for a non-skeleton arc:
// exactly two draws, cost then capacity.
func (g *generator) randomCostCap() (cost, cap int64, err error) {
	cost, err = g.r.Generate(g.p.MinCost, g.p.MaxCost)
	if err != nil {
		return 0, 0, err
	}
	cap, err = g.r.Generate(g.p.MinCap, g.p.MaxCap)
	if err != nil {
		return 0, 0, err
	}
	return cost, cap, nil
}

// eastArcs draws the horizontal arcs along each row. Rows i<Skeleton use
// the hicost/capacitated override mechanic (mirroring the skeleton-arc
// treatment in netgen/skeleton.go's assignSkeletonAttributes); all other
// rows draw a plain random cost and capacity.
func (g *generator) eastArcs() error {
	g.hooks.phase("east")
	for i := int64(0); i < g.p.Rows; i++ {
		for j := int64(0); j < g.p.Cols-1; j++ {
			tail, head := g.node(i, j), g.node(i, j+1)

			if i < g.p.Skeleton {
				cost := g.p.MaxCost
				rollCost, err := g.r.Generate(1, 100)
				if err != nil {
					return err
				}
				if rollCost > g.p.HiCost {
					cost, err = g.r.Generate(g.p.MinCost, g.p.MaxCost)
					if err != nil {
						return err
					}
				}

				cap := g.p.Supply
				rollCap, err := g.r.Generate(1, 100)
				if err != nil {
					return err
				}
				if rollCap <= g.p.Capacitated {
					if g.p.Skeleton == 1 {
						cap = g.p.Supply
					} else {
						cap = ceilDiv(g.p.Supply, g.p.Skeleton)
					}
				}
				g.emit(tail, head, cost, cap)
				continue
			}

			cost, cap, err := g.randomCostCap()
			if err != nil {
				return err
			}
			g.emit(tail, head, cost, cap)
		}
	}
	return nil
}

// westArcs emits the reverse of each east arc, only present when Reverse
// is set.
func (g *generator) westArcs() error {
	g.hooks.phase("west")
	for i := int64(0); i < g.p.Rows; i++ {
		for j := int64(0); j < g.p.Cols-1; j++ {
			cost, cap, err := g.randomCostCap()
			if err != nil {
				return err
			}
			g.emit(g.node(i, j+1), g.node(i, j), cost, cap)
		}
	}
	return nil
}

// southArcs draws the vertical arcs down each column, including the
// wraparound arc when Wrap is set.
func (g *generator) southArcs() error {
	g.hooks.phase("south")
	for j := int64(0); j < g.p.Cols; j++ {
		for i := int64(0); i < g.p.Rows-1; i++ {
			cost, cap, err := g.randomCostCap()
			if err != nil {
				return err
			}
			g.emit(g.node(i, j), g.node(i+1, j), cost, cap)
		}
		if g.p.Wrap {
			cost, cap, err := g.randomCostCap()
			if err != nil {
				return err
			}
			g.emit(g.node(g.p.Rows-1, j), g.node(0, j), cost, cap)
		}
	}
	return nil
}

// northArcs is symmetric to southArcs in the reverse direction, only
// present when Reverse is set.
func (g *generator) northArcs() error {
	g.hooks.phase("north")
	for j := int64(0); j < g.p.Cols; j++ {
		for i := int64(0); i < g.p.Rows-1; i++ {
			cost, cap, err := g.randomCostCap()
			if err != nil {
				return err
			}
			g.emit(g.node(i+1, j), g.node(i, j), cost, cap)
		}
		if g.p.Wrap {
			cost, cap, err := g.randomCostCap()
			if err != nil {
				return err
			}
			g.emit(g.node(0, j), g.node(g.p.Rows-1, j), cost, cap)
		}
	}
	return nil
}

// seDiagonals draws the southeast diagonal arcs, including the wrap case
// when both Diagonal and Wrap are set.
func (g *generator) seDiagonals() error {
	g.hooks.phase("se-diagonal")
	for i := int64(0); i < g.p.Rows-1; i++ {
		for j := int64(0); j < g.p.Cols-1; j++ {
			cost, cap, err := g.randomCostCap()
			if err != nil {
				return err
			}
			g.emit(g.node(i, j), g.node(i+1, j+1), cost, cap)
		}
	}
	if g.p.Wrap {
		for j := int64(0); j < g.p.Cols-1; j++ {
			cost, cap, err := g.randomCostCap()
			if err != nil {
				return err
			}
			g.emit(g.node(g.p.Rows-1, j), g.node(0, j+1), cost, cap)
		}
	}
	return nil
}

// neDiagonals draws the northeast diagonal arcs.
func (g *generator) neDiagonals() error {
	g.hooks.phase("ne-diagonal")
	for i := int64(0); i < g.p.Rows-1; i++ {
		for j := int64(0); j < g.p.Cols-1; j++ {
			cost, cap, err := g.randomCostCap()
			if err != nil {
				return err
			}
			g.emit(g.node(i+1, j), g.node(i, j+1), cost, cap)
		}
	}
	return nil
}

// nwDiagonals emits the reverse of seDiagonals, only present when
// Reverse && Diagonal.
func (g *generator) nwDiagonals() error {
	g.hooks.phase("nw-diagonal")
	for i := int64(0); i < g.p.Rows-1; i++ {
		for j := int64(0); j < g.p.Cols-1; j++ {
			cost, cap, err := g.randomCostCap()
			if err != nil {
				return err
			}
			g.emit(g.node(i+1, j+1), g.node(i, j), cost, cap)
		}
	}
	return nil
}

// swDiagonals emits the reverse of neDiagonals, only present when
// Reverse && Diagonal.
func (g *generator) swDiagonals() error {
	g.hooks.phase("sw-diagonal")
	for i := int64(0); i < g.p.Rows-1; i++ {
		for j := int64(0); j < g.p.Cols-1; j++ {
			cost, cap, err := g.randomCostCap()
			if err != nil {
				return err
			}
			g.emit(g.node(i, j+1), g.node(i+1, j), cost, cap)
		}
	}
	return nil
}

// masterSinkArcs emits one arc per row from that row's last interior node
// into the master sink.
func (g *generator) masterSinkArcs() error {
	g.hooks.phase("master-sink")
	for i := int64(0); i < g.p.Rows; i++ {
		g.emit(g.node(i, g.p.Cols-1), g.sink(), 0, g.p.Supply)
	}
	return nil
}
