package netgen

import "github.com/flowgen/netgen/params"

// Network is the generator's output: parallel arc arrays plus a signed
// supply vector. Node ids in From/To are 1-based and lie in [1, Nodes].
// Supply is indexed 0-based; Supply[i] is the imbalance at node i+1.
type Network struct {
	Nodes  int64
	From   []int64
	To     []int64
	Cost   []int64
	Cap    []int64
	Supply []int64
	Type   params.ProblemType
}

// ArcCount reports the number of arcs currently held, mirroring the
// generator's internal arc_count bookkeeping used by pick_head.
func (n *Network) ArcCount() int64 {
	return int64(len(n.From))
}

// NodeCount, ArcAt, SupplyAt, and Kind let dimacs.Write accept *Network
// without that package importing netgen.
func (n *Network) NodeCount() int64 { return n.Nodes }

func (n *Network) ArcAt(i int64) (from, to, cost, cap int64) {
	return n.From[i], n.To[i], n.Cost[i], n.Cap[i]
}

func (n *Network) SupplyAt(i int64) int64 { return n.Supply[i] }

func (n *Network) Kind() params.ProblemType { return n.Type }

// Hooks lets a caller observe generator phase boundaries without the core
// algorithm taking any I/O dependency of its own: generation is
// single-threaded, fully synchronous, with no suspension points. A nil
// *Hooks, or a Hooks with a nil OnPhase, costs nothing beyond a nil check.
type Hooks struct {
	// OnPhase is invoked with a short phase name ("supply", "chains",
	// "skeleton", "transshipment-sinks", "assignment") as Generate enters
	// each stage.
	OnPhase func(name string)
}

func (h *Hooks) phase(name string) {
	if h != nil && h.OnPhase != nil {
		h.OnPhase(name)
	}
}
