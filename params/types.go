package params

// RNGKind selects which rng.Source implementation backs a generation run.
type RNGKind int

const (
	// Netgen selects the bit-exact Lehmer generator (rng.NetgenRNG).
	Netgen RNGKind = iota
	// Standard selects the math/rand-backed generator (rng.StandardRNG).
	Standard
)

// String renders the RNGKind the way the CLI and comment headers expect.
func (k RNGKind) String() string {
	switch k {
	case Netgen:
		return "netgen"
	case Standard:
		return "standard"
	default:
		return "unknown"
	}
}

// ProblemType tags the flavor of network a parameter set describes.
type ProblemType int

const (
	// MinCostFlow is the general minimum-cost-flow problem type.
	MinCostFlow ProblemType = iota
	// MaxFlow is the maximum-flow problem type (unit costs).
	MaxFlow
	// Assignment is the bipartite assignment/matching problem type.
	Assignment
)

// String renders the ProblemType as its DIMACS problem-line keyword, for
// comment headers. The DIMACS writer does not call it; it writes the "p"
// line from its own switch on the type.
func (t ProblemType) String() string {
	switch t {
	case MinCostFlow:
		return "min"
	case MaxFlow:
		return "max"
	case Assignment:
		return "asn"
	default:
		return "unknown"
	}
}

// Config is the raw, pre-validation input to New. TypeOverride is nil
// unless the caller wants to force classification; the CLI never sets it.
type Config struct {
	Seed        int64
	Nodes       int64
	Sources     int64
	Sinks       int64
	Density     int64
	MinCost     int64
	MaxCost     int64
	Supply      int64
	TSources    int64
	TSinks      int64
	HiCost      int64
	Capacitated int64
	MinCap      int64
	MaxCap      int64
	RNGKind     RNGKind
	// TypeOverride, if non-nil, short-circuits Classify unconditionally.
	TypeOverride *ProblemType
}

// Params is the validated, immutable parameter record. Every field is a
// straight copy of the corresponding Config field after New has confirmed
// every invariant holds (and, for Seed<=0, substituted a fresh value — see
// seed.go). There is no way to construct a Params other than New, so any
// live Params instance is known-valid.
type Params struct {
	Seed        int64
	Nodes       int64
	Sources     int64
	Sinks       int64
	Density     int64
	MinCost     int64
	MaxCost     int64
	Supply      int64
	TSources    int64
	TSinks      int64
	HiCost      int64
	Capacitated int64
	MinCap      int64
	MaxCap      int64
	RNGKind     RNGKind

	typeOverride *ProblemType
}

// New validates cfg against every invariant and returns a frozen Params
// on success. If cfg.Seed<=0, the seed is replaced with a
// value drawn uniformly from [1, 99_999_999] via RandomSeed before the
// record is frozen.
func New(cfg Config) (*Params, error) {
	if cfg.Nodes < 0 || cfg.Sources < 0 || cfg.Sinks < 0 || cfg.Density < 0 ||
		cfg.Supply < 0 || cfg.TSources < 0 || cfg.TSinks < 0 ||
		cfg.MinCost < 0 || cfg.MaxCost < 0 || cfg.MinCap < 0 || cfg.MaxCap < 0 {
		return nil, paramErrorf("all counts must be >= 0")
	}
	if cfg.Sources+cfg.Sinks > cfg.Nodes {
		return nil, paramErrorf("sources+sinks (%d) exceeds nodes (%d)", cfg.Sources+cfg.Sinks, cfg.Nodes)
	}
	if cfg.Density < cfg.Nodes {
		return nil, paramErrorf("density (%d) must be >= nodes (%d)", cfg.Density, cfg.Nodes)
	}
	if cfg.MinCost > cfg.MaxCost {
		return nil, paramErrorf("mincost (%d) must be <= maxcost (%d)", cfg.MinCost, cfg.MaxCost)
	}
	if cfg.MinCap > cfg.MaxCap {
		return nil, paramErrorf("mincap (%d) must be <= maxcap (%d)", cfg.MinCap, cfg.MaxCap)
	}
	if cfg.TSources > cfg.Sources {
		return nil, paramErrorf("tsources (%d) must be <= sources (%d)", cfg.TSources, cfg.Sources)
	}
	if cfg.TSinks > cfg.Sinks {
		return nil, paramErrorf("tsinks (%d) must be <= sinks (%d)", cfg.TSinks, cfg.Sinks)
	}
	if cfg.HiCost < 0 || cfg.HiCost > 100 {
		return nil, paramErrorf("hicost (%d) must be in [0,100]", cfg.HiCost)
	}
	if cfg.Capacitated < 0 || cfg.Capacitated > 100 {
		return nil, paramErrorf("capacitated (%d) must be in [0,100]", cfg.Capacitated)
	}

	seed := cfg.Seed
	if seed <= 0 {
		var err error
		seed, err = RandomSeed()
		if err != nil {
			return nil, err
		}
	}

	return &Params{
		Seed:         seed,
		Nodes:        cfg.Nodes,
		Sources:      cfg.Sources,
		Sinks:        cfg.Sinks,
		Density:      cfg.Density,
		MinCost:      cfg.MinCost,
		MaxCost:      cfg.MaxCost,
		Supply:       cfg.Supply,
		TSources:     cfg.TSources,
		TSinks:       cfg.TSinks,
		HiCost:       cfg.HiCost,
		Capacitated:  cfg.Capacitated,
		MinCap:       cfg.MinCap,
		MaxCap:       cfg.MaxCap,
		RNGKind:      cfg.RNGKind,
		typeOverride: cfg.TypeOverride,
	}, nil
}
