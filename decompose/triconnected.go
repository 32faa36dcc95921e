// File: triconnected.go
// Role: Layered triconnected-component approximation (spec.md §4.4),
// an explicitly permitted shortcut of full Hopcroft-Tarjan SPQR
// decomposition, built from the same BiconnectedComponents primitive.
package decompose

import (
	"sort"

	"github.com/methylgraph/dmrcore/core"
)

// Triconnected is one candidate triconnected-component piece: its
// member nodes and the separation pair it was split on, if any
// (nil for a block reported as a singleton, i.e. never split).
type Triconnected struct {
	Members        []core.NodeID
	SeparationPair []core.NodeID // at most two entries
}

// TriconnectedComponents runs the spec.md §4.4 layered approximation
// over one connected component's DMR/gene membership:
//
//  1. If the component's DMR side has cardinality 1 (star-shaped), it
//     is skipped entirely (trivially no triconnectivity beyond K_{1,n}).
//  2. Each biconnected block with >3 nodes is split on the
//     articulation points of its own induced subgraph; each resulting
//     piece is reported with its separation pair.
//  3. Blocks with ≤3 nodes are reported as singletons (no split).
func TriconnectedComponents(g *core.Graph, componentMembers []core.NodeID) []Triconnected {
	dmrCount := 0
	for _, id := range componentMembers {
		if g.IsDMR(id) {
			dmrCount++
		}
	}
	if dmrCount == 1 {
		return nil
	}

	blocks, _ := BiconnectedComponents(g, componentMembers)

	var out []Triconnected
	for _, block := range blocks {
		if len(block) <= 3 {
			out = append(out, Triconnected{Members: block})
			continue
		}

		sub, err := g.SubgraphNodes(block)
		if err != nil {
			out = append(out, Triconnected{Members: block})
			continue
		}

		_, seps := BiconnectedComponents(sub, block)
		if len(seps) == 0 {
			out = append(out, Triconnected{Members: block})
			continue
		}

		pieces := splitOnSeparationPoints(sub, block, seps)
		out = append(out, pieces...)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Members[0] < out[j].Members[0] })
	return out
}

// splitOnSeparationPoints removes the separation points from block
// and reports each remaining connected piece (plus all separation
// points added back to every piece, whether or not the piece touched
// them), tagging each with at most the first two separation points.
func splitOnSeparationPoints(sub *core.Graph, block, seps []core.NodeID) []Triconnected {
	sepSet := make(map[core.NodeID]struct{}, len(seps))
	for _, s := range seps {
		sepSet[s] = struct{}{}
	}

	remaining := make(map[core.NodeID]struct{})
	for _, id := range block {
		if _, isSep := sepSet[id]; !isSep {
			remaining[id] = struct{}{}
		}
	}
	if len(remaining) == 0 {
		return []Triconnected{{Members: append([]core.NodeID(nil), block...)}}
	}

	rest, err := sub.Subgraph(remaining)
	if err != nil {
		return []Triconnected{{Members: append([]core.NodeID(nil), block...)}}
	}

	pairLabel := seps
	if len(pairLabel) > 2 {
		pairLabel = pairLabel[:2]
	}

	pieces := ConnectedComponents(rest)
	out := make([]Triconnected, 0, len(pieces))
	for _, piece := range pieces {
		members := append(append([]core.NodeID(nil), piece...), seps...)
		sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })
		out = append(out, Triconnected{Members: members, SeparationPair: pairLabel})
	}
	return out
}
