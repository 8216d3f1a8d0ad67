package netgen

import "github.com/flowgen/netgen/ilist"

// runAssignment builds a unit-capacity matching between the first nodes/2
// nodes and the remaining nodes/2, followed by pick_head-driven random
// fill out of each matched source.
func (g *generator) runAssignment() error {
	g.hooks.phase("assignment")

	nodes, sources := g.p.Nodes, g.p.Sources
	half := nodes / 2
	for i := int64(0); i < half; i++ {
		g.b[i] = 1
	}
	for i := half; i < nodes; i++ {
		g.b[i] = -1
	}

	skeleton := ilist.New(sources+1, nodes)
	for source := int64(1); source <= half; source++ {
		k, err := g.r.Generate(1, skeleton.Len())
		if err != nil {
			return err
		}
		index := skeleton.Choose(k)

		cost, err := g.r.Generate(g.p.MinCost, g.p.MaxCost)
		if err != nil {
			return err
		}
		g.emit(source, index, cost, 1)

		l := ilist.New(sources+1, nodes)
		l.RemoveValue(index)
		if err := g.pickHead(l, source); err != nil {
			return err
		}
	}
	return nil
}
