package netgen

import "github.com/flowgen/netgen/ilist"

// buildChains threads every transshipment node into exactly one
// source-rooted predecessor cycle. pred is 1-based;
// pred[0] is unused. Following pred from any source in [1,sources]
// eventually returns to that source.
func (g *generator) buildChains() ([]int64, error) {
	g.hooks.phase("chains")

	nodes, sources, sinks := g.p.Nodes, g.p.Sources, g.p.Sinks
	pred := make([]int64, nodes+1)
	for i := int64(1); i <= sources; i++ {
		pred[i] = i
	}
	if sources <= 0 {
		return pred, nil
	}

	l := ilist.New(sources+1, nodes-sinks)
	t := nodes - sources - sinks
	split := (4*t + 9) / 10

	source := int64(1)
	i := t
	for ; i > split; i-- {
		k, err := g.r.Generate(1, l.Len())
		if err != nil {
			return nil, err
		}
		node := l.Choose(k)
		pred[node] = pred[source]
		pred[source] = node
		source = (source % sources) + 1
	}
	for ; i > 0; i-- {
		k, err := g.r.Generate(1, l.Len())
		if err != nil {
			return nil, err
		}
		node := l.Choose(k)
		src, err := g.r.Generate(1, sources)
		if err != nil {
			return nil, err
		}
		pred[node] = pred[src]
		pred[src] = node
	}
	return pred, nil
}
