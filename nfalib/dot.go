package nfalib

import (
	"fmt"
	"io"
	"sort"
)

// ExportDOT prints a Graphviz representation of the NFA to w. Output is
// deterministic: states and labels are emitted in sorted order.
func ExportDOT(w io.Writer, n *NFA) {
	fmt.Fprintln(w, "digraph NFA {")
	fmt.Fprintln(w, "    rankdir=LR;")

	for _, s := range sortedStates(n) {
		shape := "circle"
		if s == n.AcceptState {
			shape = "doublecircle"
		}
		fmt.Fprintf(w, "    q%d [shape=%s];\n", s, shape)
	}

	for _, from := range sortedKeys(n.Transitions) {
		row := n.Transitions[from]
		labels := make([]Label, 0, len(row))
		for l := range row {
			labels = append(labels, l)
		}
		sort.Slice(labels, func(i, j int) bool {
			if labels[i].Eps != labels[j].Eps {
				return labels[i].Eps
			}
			return labels[i].Ch < labels[j].Ch
		})
		for _, l := range labels {
			for _, to := range sortedKeys(row[l]) {
				fmt.Fprintf(w, "    q%d -> q%d [label=\"%s\"];\n", from, to, l)
			}
		}
	}

	fmt.Fprintf(w, "    _start [shape=point]; _start -> q%d;\n", n.StartState)
	fmt.Fprintln(w, "}")
}

// sortedStates collects every state the automaton mentions, start and
// accept included even when they have no outgoing edges.
func sortedStates(n *NFA) []State {
	seen := StateSet{n.StartState: {}, n.AcceptState: {}}
	for from, row := range n.Transitions {
		seen[from] = struct{}{}
		for _, dests := range row {
			for to := range dests {
				seen[to] = struct{}{}
			}
		}
	}
	return sortedKeys(seen)
}

func sortedKeys[V any](m map[State]V) []State {
	out := make([]State, 0, len(m))
	for s := range m {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
