// File: component.go
// Role: Component classification (spec.md §4.4) for the components
// the Decompose orchestrator (decompose.go) produces.
//
// Note on categories: spec.md §4.4's operation-level rule names
// SINGLE_NODE for |C|=1, while the glossary's terse category list
// (EMPTY/TRIVIAL/SIMPLE/INTERESTING/COMPLEX) is the biclique-level
// table reused loosely. We follow the operation-level rule literally
// (it is the more specific, authoritative source) and record
// SINGLE_NODE as its own Category rather than forcing it into EMPTY
// or TRIVIAL.
package decompose

import (
	"sort"

	"github.com/methylgraph/dmrcore/biclique"
	"github.com/methylgraph/dmrcore/core"
)

// Category classifies a component per spec.md §4.4.
type Category uint8

const (
	SingleNode Category = iota
	Simple
	Interesting
	Complex
)

func (c Category) String() string {
	switch c {
	case SingleNode:
		return "SINGLE_NODE"
	case Simple:
		return "SIMPLE"
	case Complex:
		return "COMPLEX"
	default:
		return "INTERESTING"
	}
}

// Kind names which of the three decompositions produced a Component.
type Kind uint8

const (
	Connected Kind = iota
	Biconnected
	Triconnected
)

func (k Kind) String() string {
	switch k {
	case Biconnected:
		return "BICONNECTED"
	case Triconnected:
		return "TRICONNECTED"
	default:
		return "CONNECTED"
	}
}

// GraphType names which input graph a Component was computed against.
type GraphType uint8

const (
	Original GraphType = iota
	Split
)

func (g GraphType) String() string {
	if g == Split {
		return "SPLIT"
	}
	return "ORIGINAL"
}

// Component is one output row of a decomposition (spec.md §4.4
// "Output"): member ids, derived counts, density, category, and the
// biclique ids intersecting it.
type Component struct {
	GraphType      GraphType
	Kind           Kind
	Members        []core.NodeID
	DMRCount       int
	GeneCount      int
	EdgeCount      int
	Density        float64
	Category       Category
	SeparationPair []core.NodeID // triconnected pieces only
	BicliqueIDs    []int
}

// classify applies spec.md §4.4's category rules to one component.
func classify(g *core.Graph, members []core.NodeID, dmrCount, geneCount int, store *biclique.Store, bicliqueIDs []int) Category {
	if len(members) == 1 {
		return SingleNode
	}
	if dmrCount <= 1 || geneCount <= 1 {
		return Simple
	}

	dSet, vSet := splitSides(g, members)

	for _, id := range bicliqueIDs {
		b, ok := store.ByID(id)
		if !ok {
			continue
		}
		if sameSet(b.DMRs, dSet) && sameSet(b.Genes, vSet) {
			return Interesting
		}
	}

	interestingCount := 0
	geneUsage := make(map[core.NodeID]int)
	for _, id := range bicliqueIDs {
		b, ok := store.ByID(id)
		if !ok || b.Category() != biclique.Interesting {
			continue
		}
		interestingCount++
		for _, v := range b.Genes {
			geneUsage[v]++
		}
	}
	if interestingCount >= 2 {
		for _, count := range geneUsage {
			if count >= 2 {
				return Complex
			}
		}
	}

	return Interesting
}

func splitSides(g *core.Graph, members []core.NodeID) (dmrs, genes map[core.NodeID]struct{}) {
	dmrs = make(map[core.NodeID]struct{})
	genes = make(map[core.NodeID]struct{})
	for _, id := range members {
		if g.IsDMR(id) {
			dmrs[id] = struct{}{}
		} else {
			genes[id] = struct{}{}
		}
	}
	return
}

func sameSet(ids []core.NodeID, set map[core.NodeID]struct{}) bool {
	if len(ids) != len(set) {
		return false
	}
	for _, id := range ids {
		if _, ok := set[id]; !ok {
			return false
		}
	}
	return true
}

// density computes 2|E_C| / (|C|(|C|-1)), 0 for |C|<2.
func density(memberCount, edgeCount int) float64 {
	if memberCount < 2 {
		return 0
	}
	return float64(2*edgeCount) / float64(memberCount*(memberCount-1))
}

// countInducedEdges returns |E_C| for the subgraph induced by members.
func countInducedEdges(g *core.Graph, members []core.NodeID) int {
	count := 0
	memberSet := make(map[core.NodeID]struct{}, len(members))
	for _, id := range members {
		memberSet[id] = struct{}{}
	}
	for _, e := range g.AllEdges() {
		if _, ok := memberSet[e.DMR]; !ok {
			continue
		}
		if _, ok := memberSet[e.Gene]; !ok {
			continue
		}
		count++
	}
	return count
}

// bicliquesIntersecting returns the sorted, deduplicated union of
// biclique ids touching any member of members.
func bicliquesIntersecting(store *biclique.Store, members []core.NodeID) []int {
	seen := make(map[int]struct{})
	for _, id := range members {
		for _, bid := range store.BicliquesFor(id) {
			seen[bid] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

func newComponent(g *core.Graph, gt GraphType, kind Kind, members []core.NodeID, store *biclique.Store, sepPair []core.NodeID) Component {
	dSet, vSet := splitSides(g, members)
	edgeCount := countInducedEdges(g, members)
	bids := bicliquesIntersecting(store, members)

	return Component{
		GraphType:      gt,
		Kind:           kind,
		Members:        members,
		DMRCount:       len(dSet),
		GeneCount:      len(vSet),
		EdgeCount:      edgeCount,
		Density:        density(len(members), edgeCount),
		Category:       classify(g, members, len(dSet), len(vSet), store, bids),
		SeparationPair: sepPair,
		BicliqueIDs:    bids,
	}
}
