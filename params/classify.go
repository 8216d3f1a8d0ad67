package params

// Classify derives the ProblemType for p. If p carries a TypeOverride (set
// via Config.TypeOverride), it wins unconditionally rather than being
// re-derived afterward.
func Classify(p *Params) ProblemType {
	if p.typeOverride != nil {
		return *p.typeOverride
	}

	if p.Sources-p.TSources+p.Sinks-p.TSinks == p.Nodes &&
		p.Sources-p.TSources == p.Sinks-p.TSinks &&
		p.Sources == p.Supply {
		return Assignment
	}
	if p.MinCost == 1 && p.MaxCost == 1 {
		return MaxFlow
	}
	return MinCostFlow
}
