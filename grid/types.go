package grid

import "github.com/flowgen/netgen/params"

// Config is the raw, pre-validation input to New.
type Config struct {
	Seed int64

	Rows, Cols int64
	// Skeleton is the number of leading rows (0-based i < Skeleton) whose
	// east arcs get the hicost/capacitated treatment instead of a plain
	// random draw.
	Skeleton int64
	Diagonal bool
	Reverse  bool
	Wrap     bool

	MinCost     int64
	MaxCost     int64
	Supply      int64
	HiCost      int64
	Capacitated int64
	MinCap      int64
	MaxCap      int64

	RNGKind params.RNGKind
}

// Params is the validated, immutable parameter record. There is no way to
// construct one other than New, so any live Params is known-valid.
type Params struct {
	Seed int64

	Rows, Cols int64
	Skeleton   int64
	Diagonal   bool
	Reverse    bool
	Wrap       bool

	MinCost     int64
	MaxCost     int64
	Supply      int64
	HiCost      int64
	Capacitated int64
	MinCap      int64
	MaxCap      int64

	RNGKind params.RNGKind
}

// Nodes returns rows*cols+2: the interior lattice plus master source and
// master sink.
func (p *Params) Nodes() int64 {
	return p.Rows*p.Cols + 2
}

// New validates cfg and returns a frozen Params on success.
func New(cfg Config) (*Params, error) {
	if cfg.Rows <= 0 || cfg.Cols <= 0 {
		return nil, paramErrorf("rows (%d) and cols (%d) must be > 0", cfg.Rows, cfg.Cols)
	}
	if cfg.Skeleton < 0 || cfg.Skeleton > cfg.Rows {
		return nil, paramErrorf("skeleton (%d) must be in [0,rows=%d]", cfg.Skeleton, cfg.Rows)
	}
	if cfg.MinCost < 0 || cfg.MaxCost < 0 || cfg.MinCost > cfg.MaxCost {
		return nil, paramErrorf("mincost/maxcost out of order: %d/%d", cfg.MinCost, cfg.MaxCost)
	}
	if cfg.MinCap < 0 || cfg.MaxCap < 0 || cfg.MinCap > cfg.MaxCap {
		return nil, paramErrorf("mincap/maxcap out of order: %d/%d", cfg.MinCap, cfg.MaxCap)
	}
	if cfg.Supply < 0 {
		return nil, paramErrorf("supply (%d) must be >= 0", cfg.Supply)
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
		seed, err = params.RandomSeed()
		if err != nil {
			return nil, err
		}
	}

	return &Params{
		Seed:        seed,
		Rows:        cfg.Rows,
		Cols:        cfg.Cols,
		Skeleton:    cfg.Skeleton,
		Diagonal:    cfg.Diagonal,
		Reverse:     cfg.Reverse,
		Wrap:        cfg.Wrap,
		MinCost:     cfg.MinCost,
		MaxCost:     cfg.MaxCost,
		Supply:      cfg.Supply,
		HiCost:      cfg.HiCost,
		Capacitated: cfg.Capacitated,
		MinCap:      cfg.MinCap,
		MaxCap:      cfg.MaxCap,
		RNGKind:     cfg.RNGKind,
	}, nil
}

// Network is the grid generator's output, shaped like netgen.Network so a
// single dimacs writer can serialize both. Grid networks always classify
// as MinCostFlow: the master source carries +Supply, the master sink
// carries -Supply, and every interior arc has a real cost.
type Network struct {
	Nodes  int64
	From   []int64
	To     []int64
	Cost   []int64
	Cap    []int64
	Supply []int64
	Type   params.ProblemType
}

// ArcCount reports the number of arcs currently held.
func (n *Network) ArcCount() int64 {
	return int64(len(n.From))
}

// NodeCount, ArcAt, SupplyAt, and Kind let dimacs.Write accept *Network
// without that package importing grid.
func (n *Network) NodeCount() int64 { return n.Nodes }

func (n *Network) ArcAt(i int64) (from, to, cost, cap int64) {
	return n.From[i], n.To[i], n.Cost[i], n.Cap[i]
}

func (n *Network) SupplyAt(i int64) int64 { return n.Supply[i] }

func (n *Network) Kind() params.ProblemType { return n.Type }

// Hooks lets a caller observe generator phase boundaries, mirroring
// netgen.Hooks.
type Hooks struct {
	OnPhase func(name string)
}

func (h *Hooks) phase(name string) {
	if h != nil && h.OnPhase != nil {
		h.OnPhase(name)
	}
}
