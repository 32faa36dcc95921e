// File: methods_vertices.go
// Role: Node-side membership queries (DMR vs. gene).
//
// Determinism:
//   - NodesOfKind returns ids sorted ascending.
//
// Concurrency:
//   - Node catalogs protected by muNodes.
package core

import (
	"sort"

	"github.com/methylgraph/dmrcore/idspace"
)

// Kind re-exports idspace.Kind so callers that only import core can
// name the DMR/gene side without a second import.
type Kind = idspace.Kind

// KindDMR and KindGene re-export idspace's side constants.
const (
	KindDMR  = idspace.KindDMR
	KindGene = idspace.KindGene
)

// NodesOfKind returns every node of the requested side, sorted ascending.
// Complexity: O(n log n) where n = |D| or |V| depending on kind.
func (g *Graph) NodesOfKind(k Kind) []NodeID {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	var src map[NodeID]struct{}
	if k == KindDMR {
		src = g.dmrs
	} else {
		src = g.genes
	}

	out := make([]NodeID, 0, len(src))
	for id := range src {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// HasNode reports whether n is present on either side of the graph.
func (g *Graph) HasNode(n NodeID) bool {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	if g.IsDMR(n) {
		_, ok := g.dmrs[n]
		return ok
	}
	_, ok := g.genes[n]
	return ok
}

// DMRCount returns |D|.
func (g *Graph) DMRCount() int {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	return len(g.dmrs)
}

// GeneCount returns |V|.
func (g *Graph) GeneCount() int {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	return len(g.genes)
}
