// File: connected.go
// Role: Connected components via disjoint-set union over edges
// (spec.md §4.4 "Connected components ... Disjoint-set union over
// edges; linear time").
package decompose

import (
	"sort"

	"github.com/methylgraph/dmrcore/core"
)

// ConnectedComponents partitions g into connected components, each
// returned as a sorted-ascending member list. Components are ordered
// by ascending min member NodeID (spec.md §4.4 determinism clause).
// Isolated nodes (degree 0) form singleton components.
func ConnectedComponents(g *core.Graph) [][]core.NodeID {
	d := newDSU()
	for _, id := range g.NodesOfKind(core.KindDMR) {
		d.add(id)
	}
	for _, id := range g.NodesOfKind(core.KindGene) {
		d.add(id)
	}
	for _, e := range g.AllEdges() {
		d.union(e.DMR, e.Gene)
	}

	groups := d.groups()
	out := make([][]core.NodeID, 0, len(groups))
	for _, members := range groups {
		sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })
		out = append(out, members)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}
