package netgen

import "github.com/flowgen/netgen/ilist"

// buildSkeletons collects, for every source, its predecessor chain, picks
// a handful of sinks to drain it into, distributes
// supply among them, sort the resulting skeleton arcs by tail, and assign
// capacity/cost before emitting them — interleaved with pick_head calls
// that scatter extra random arcs out of each skeleton tail.
func (g *generator) buildSkeletons(pred []int64) error {
	g.hooks.phase("skeleton")

	sources := g.p.Sources

	for source := int64(1); source <= sources; source++ {
		tail, head, sortCount, err := g.collectChain(pred, source)
		if err != nil {
			return err
		}
		chainLength := sortCount

		sps := g.sinksPerSource(sortCount)

		sinkList, sps, err := g.selectSinks(source, sps)
		if err != nil {
			return err
		}

		tail, head, sortCount, err = g.distributeSupply(pred, source, sinkList, sps, chainLength, tail, head, sortCount)
		if err != nil {
			return err
		}

		shellSort(tail, head, sortCount)
		tail = append(tail, 0) // tail[sortCount+1] sentinel

		if err := g.assignSkeletonAttributes(tail, head, sortCount, source); err != nil {
			return err
		}
	}
	return nil
}

// collectChain walks pred from source back to itself, gathering the chain
// arcs (pred[node], node) into 1-based scratch arrays. tail[0]/head[0] are
// unused placeholders preserving 1-based indexing throughout.
func (g *generator) collectChain(pred []int64, source int64) (tail, head []int64, sortCount int64, err error) {
	tail, head = []int64{0}, []int64{0}
	node := pred[source]
	for node != source {
		t := pred[node]
		sortCount++
		tail = append(tail, t)
		head = append(head, node)
		node = pred[node]
	}
	return tail, head, sortCount, nil
}

// sinksPerSource computes how many sinks a source with sortCount chain
// links should drain into.
func (g *generator) sinksPerSource(sortCount int64) int64 {
	nodes, sources, sinks := g.p.Nodes, g.p.Sources, g.p.Sinks

	var sps int64
	if nodes == sources+sinks {
		sps = sinks/sources + 1
	} else {
		sps = 2 * (sortCount * sinks) / (nodes - sources - sinks)
	}
	if sps < 2 {
		sps = 2
	}
	if sps > sinks {
		sps = sinks
	}
	return sps
}

// selectSinks draws sps sinks at random for source, and for the last
// source additionally sweeps in every still-unassigned (zero-supply)
// sink so none are left stranded.
func (g *generator) selectSinks(source, sps int64) ([]int64, int64, error) {
	nodes, sinks, sources := g.p.Nodes, g.p.Sinks, g.p.Sources

	s := ilist.New(nodes-sinks, nodes-1)
	sinkList := make([]int64, 0, sps)
	for i := int64(0); i < sps; i++ {
		k, err := g.r.Generate(1, s.Len())
		if err != nil {
			return nil, 0, err
		}
		sinkList = append(sinkList, s.Choose(k))
	}

	if source == sources {
		for s.Len() > 0 {
			j := s.Choose(1)
			if g.b[j] == 0 {
				sinkList = append(sinkList, j)
				sps++
			}
		}
	}
	return sinkList, sps, nil
}

// distributeSupply splits source's supply across sinkList, appending sink
// arcs onto the already-collected chain scratch arrays and advancing
// sortCount.
func (g *generator) distributeSupply(
	pred []int64,
	source int64,
	sinkList []int64,
	sps, chainLength int64,
	tail, head []int64,
	sortCount int64,
) ([]int64, []int64, int64, error) {
	perSink := g.b[source-1] / sps
	k := pred[source]

	for i := int64(0); i < sps; i++ {
		sortCount++
		partial, err := g.r.Generate(1, perSink)
		if err != nil {
			return nil, nil, 0, err
		}
		j, err := g.r.Generate(0, sps-1)
		if err != nil {
			return nil, nil, 0, err
		}
		tail = append(tail, k)
		head = append(head, sinkList[i]+1)
		g.b[sinkList[i]] -= partial
		g.b[sinkList[j]] -= perSink - partial

		k = source
		steps, err := g.r.Generate(1, chainLength)
		if err != nil {
			return nil, nil, 0, err
		}
		for ; steps > 0; steps-- {
			k = pred[k]
		}
	}
	g.b[sinkList[0]] -= g.b[source-1] % sps

	return tail, head, sortCount, nil
}

// assignSkeletonAttributes walks the sorted skeleton arcs grouped by
// tail, assigns capacity/cost, emits them, and lets pick_head scatter
// extra arcs from each distinct tail.
func (g *generator) assignSkeletonAttributes(tail, head []int64, sortCount, source int64) error {
	nodes, sourcesLess := g.p.Nodes, g.p.Sources-g.p.TSources

	i := int64(1)
	for i <= sortCount {
		l := ilist.New(sourcesLess+1, nodes)
		l.RemoveValue(tail[i])
		it := tail[i]
		for i <= sortCount && tail[i] == it {
			l.RemoveValue(head[i])

			cap := g.p.Supply
			roll, err := g.r.Generate(1, 100)
			if err != nil {
				return err
			}
			if roll <= g.p.Capacitated {
				cap = g.b[source-1]
				if g.p.MinCap > cap {
					cap = g.p.MinCap
				}
			}

			cost := g.p.MaxCost
			roll2, err := g.r.Generate(1, 100)
			if err != nil {
				return err
			}
			if roll2 > g.p.HiCost {
				cost, err = g.r.Generate(g.p.MinCost, g.p.MaxCost)
				if err != nil {
					return err
				}
			}

			g.emit(it, head[i], cost, cap)
			i++
		}
		if err := g.pickHead(l, it); err != nil {
			return err
		}
	}
	return nil
}

// fillTransshipmentSinks runs pick_head once for each transshipment sink
// so it gets its own random arcs out of it.
func (g *generator) fillTransshipmentSinks() error {
	g.hooks.phase("transshipment-sinks")

	nodes, sinks, tsinks := g.p.Nodes, g.p.Sinks, g.p.TSinks
	sourcesLess := g.p.Sources - g.p.TSources

	for i := nodes - sinks + 1; i <= nodes-sinks+tsinks; i++ {
		l := ilist.New(sourcesLess+1, nodes)
		l.RemoveValue(i)
		if err := g.pickHead(l, i); err != nil {
			return err
		}
	}
	return nil
}

// shellSort sorts tail[1..sortCount] ascending, permuting head in lockstep,
// using the classic Shell-sort gap sequence sortCount/2, /4, ... down to 0.
// tail/head are 1-based; index 0 is a placeholder.
func shellSort(tail, head []int64, sortCount int64) {
	for gap := sortCount / 2; gap > 0; gap /= 2 {
		for i := gap + 1; i <= sortCount; i++ {
			j := i
			for j > gap && tail[j-gap] > tail[j] {
				tail[j], tail[j-gap] = tail[j-gap], tail[j]
				head[j], head[j-gap] = head[j-gap], head[j]
				j -= gap
			}
		}
	}
}
