package netgen

// createSupply spreads p.Supply across the source nodes so that
// sum(b[0..sources]) == supply and every other entry is zero. A network
// with zero sources has nothing to distribute; the loop bodies below are
// simply skipped.
func (g *generator) createSupply() error {
	g.hooks.phase("supply")

	sources := g.p.Sources
	if sources <= 0 {
		return nil
	}
	perSource := g.p.Supply / sources

	for i := int64(0); i < sources; i++ {
		partial, err := g.r.Generate(1, perSource)
		if err != nil {
			return err
		}
		g.b[i] += partial

		idx, err := g.r.Generate(0, sources-1)
		if err != nil {
			return err
		}
		g.b[idx] += perSource - partial
	}

	idx, err := g.r.Generate(0, sources-1)
	if err != nil {
		return err
	}
	g.b[idx] += g.p.Supply % sources
	return nil
}
