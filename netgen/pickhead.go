package netgen

import "github.com/flowgen/netgen/ilist"

// pickHead takes a scratch list of candidate head nodes and a desired
// tail, and emits zero or more additional random arcs
// out of desiredTail, deciding how many via the shared nodesLeft counter
// and the remaining density budget. Every call decrements nodesLeft by
// exactly one, regardless of how many arcs (if any) it emits.
func (g *generator) pickHead(l *ilist.List, desiredTail int64) error {
	nonSources := g.p.Nodes - g.p.Sources + g.p.TSources
	remaining := g.p.Density - g.arcCount()
	g.nodesLeft--

	if 2*g.nodesLeft >= remaining {
		return nil
	}

	var limit int64
	lhs := (remaining + nonSources - l.PseudoSize() - 1) / (g.nodesLeft + 1)
	if lhs >= nonSources-1 {
		limit = nonSources
	} else {
		// The guard above already returned when 2*nodesLeft >= remaining, so
		// here remaining > 2*nodesLeft >= nodesLeft, giving remaining >=
		// nodesLeft+1 and remaining/(nodesLeft+1) >= 1 under integer
		// division. upper is therefore always >= 0, so Generate(1, upper)
		// never sees a negative bound.
		upper := 2 * (remaining/(g.nodesLeft+1) - 1)
		for {
			v, err := g.r.Generate(1, upper)
			if err != nil {
				return err
			}
			limit = v
			if g.nodesLeft == 0 {
				limit = remaining
			}
			if g.nodesLeft*(nonSources-1) >= remaining-limit {
				break
			}
		}
	}

	for limit > 0 {
		limit--
		k, err := g.r.Generate(1, l.PseudoSize())
		if err != nil {
			return err
		}
		index := l.Choose(k)

		cap := g.p.Supply
		roll, err := g.r.Generate(1, 100)
		if err != nil {
			return err
		}
		if roll <= g.p.Capacitated {
			cap, err = g.r.Generate(g.p.MinCap, g.p.MaxCap)
			if err != nil {
				return err
			}
		}

		if index >= 1 && index <= g.p.Nodes {
			cost, err := g.r.Generate(g.p.MinCost, g.p.MaxCost)
			if err != nil {
				return err
			}
			g.emit(desiredTail, index, cost, cap)
		}
	}
	return nil
}
