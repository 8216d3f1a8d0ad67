package netgen

import (
	"github.com/flowgen/netgen/params"
	"github.com/flowgen/netgen/rng"
)

// generator holds the mutable scratch state threaded through one Generate
// call: the arc arrays under construction, the supply vector, and the
// pick_head nodesLeft counter, which must persist across every pick_head
// invocation in a single run.
type generator struct {
	p     *params.Params
	r     rng.Source
	hooks *Hooks

	from, to, cost, cap []int64
	b                   []int64

	nodesLeft int64
}

func newGenerator(p *params.Params, r rng.Source, hooks *Hooks) *generator {
	return &generator{
		p:         p,
		r:         r,
		hooks:     hooks,
		b:         make([]int64, p.Nodes),
		nodesLeft: p.Nodes - p.Sinks + p.TSinks,
	}
}

func (g *generator) arcCount() int64 {
	return int64(len(g.from))
}

func (g *generator) emit(from, to, cost, cap int64) {
	g.from = append(g.from, from)
	g.to = append(g.to, to)
	g.cost = append(g.cost, cost)
	g.cap = append(g.cap, cap)
}

func (g *generator) network(problemType params.ProblemType) *Network {
	return &Network{
		Nodes:  g.p.Nodes,
		From:   g.from,
		To:     g.to,
		Cost:   g.cost,
		Cap:    g.cap,
		Supply: g.b,
		Type:   problemType,
	}
}

// Generate runs the NETGEN skeleton-and-fill algorithm and returns the
// resulting Network. hooks may be nil.
func Generate(p *params.Params, r rng.Source, hooks *Hooks) (*Network, error) {
	problemType := params.Classify(p)
	g := newGenerator(p, r, hooks)

	if problemType == params.Assignment {
		if err := g.runAssignment(); err != nil {
			return nil, err
		}
		return g.network(problemType), nil
	}

	if err := g.createSupply(); err != nil {
		return nil, err
	}
	pred, err := g.buildChains()
	if err != nil {
		return nil, err
	}
	if err := g.buildSkeletons(pred); err != nil {
		return nil, err
	}
	if err := g.fillTransshipmentSinks(); err != nil {
		return nil, err
	}
	return g.network(problemType), nil
}
