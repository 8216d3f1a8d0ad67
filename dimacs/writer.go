package dimacs

import (
	"fmt"
	"strings"

	"github.com/flowgen/netgen/params"
)

// Network is the minimal read surface dimacs needs from a generated
// network. *netgen.Network and *grid.Network both satisfy it without
// either package importing dimacs.
type Network interface {
	NodeCount() int64
	ArcCount() int64
	ArcAt(i int64) (from, to, cost, cap int64)
	SupplyAt(i int64) int64
	Kind() params.ProblemType
}

// Header carries the comment-line metadata printed above the problem
// line: the parameters that produced the network, for reproducibility.
type Header struct {
	Generator string
	Seed      int64
	Fields    []string
}

// Write renders net as DIMACS flow-problem text. trailingNewline controls
// whether the final line ends in "\n": callers writing to a file pass
// false (the historical NETGEN behavior of omitting it), callers printing
// to a terminal pass true.
func Write(net Network, header Header, trailingNewline bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "c %s\n", header.Generator)
	fmt.Fprintf(&b, "c seed %d\n", header.Seed)
	for _, f := range header.Fields {
		fmt.Fprintf(&b, "c %s\n", f)
	}

	nodes, arcs := net.NodeCount(), net.ArcCount()
	switch net.Kind() {
	case params.MaxFlow:
		fmt.Fprintf(&b, "p max %d %d\n", nodes, arcs)
		writeMaxFlowNodes(&b, net, nodes)
		writeMaxFlowArcs(&b, net, arcs)
	case params.Assignment:
		fmt.Fprintf(&b, "p asn %d %d\n", nodes, arcs)
		writeAssignmentNodes(&b, net, nodes)
		writeAssignmentArcs(&b, net, arcs)
	default:
		fmt.Fprintf(&b, "p min %d %d\n", nodes, arcs)
		writeMinCostNodes(&b, net, nodes)
		writeMinCostArcs(&b, net, arcs)
	}

	out := b.String()
	if !trailingNewline {
		out = strings.TrimSuffix(out, "\n")
	}
	return out
}

func writeMinCostNodes(b *strings.Builder, net Network, nodes int64) {
	for i := int64(0); i < nodes; i++ {
		if s := net.SupplyAt(i); s != 0 {
			fmt.Fprintf(b, "n %d %d\n", i+1, s)
		}
	}
}

func writeMinCostArcs(b *strings.Builder, net Network, arcs int64) {
	for i := int64(0); i < arcs; i++ {
		tail, head, cost, cap := net.ArcAt(i)
		fmt.Fprintf(b, "a %d %d 0 %d %d\n", tail, head, cap, cost)
	}
}

func writeMaxFlowNodes(b *strings.Builder, net Network, nodes int64) {
	for i := int64(0); i < nodes; i++ {
		switch s := net.SupplyAt(i); {
		case s > 0:
			fmt.Fprintf(b, "n %d s\n", i+1)
		case s < 0:
			fmt.Fprintf(b, "n %d t\n", i+1)
		}
	}
}

func writeMaxFlowArcs(b *strings.Builder, net Network, arcs int64) {
	for i := int64(0); i < arcs; i++ {
		tail, head, _, cap := net.ArcAt(i)
		fmt.Fprintf(b, "a %d %d %d\n", tail, head, cap)
	}
}

func writeAssignmentNodes(b *strings.Builder, net Network, nodes int64) {
	for i := int64(0); i < nodes; i++ {
		if net.SupplyAt(i) > 0 {
			fmt.Fprintf(b, "n %d\n", i+1)
		}
	}
}

func writeAssignmentArcs(b *strings.Builder, net Network, arcs int64) {
	for i := int64(0); i < arcs; i++ {
		tail, head, cost, _ := net.ArcAt(i)
		fmt.Fprintf(b, "a %d %d %d\n", tail, head, cost)
	}
}
