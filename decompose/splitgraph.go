// File: splitgraph.go
// Role: Build G_split = G_orig ∪ (every (d,v) pair any biclique in the
// cover claims), per spec.md §4.4.
package decompose

import (
	"github.com/methylgraph/dmrcore/biclique"
	"github.com/methylgraph/dmrcore/core"
)

// BuildSplitGraph returns a new core.Graph containing every edge of
// orig plus every (d,v) pair claimed by any biclique in store,
// regardless of whether that pair already exists in orig. Every
// cover-claimed pair is added tagged core.SourceNearby, so edges
// synthesized purely from the cover (not present in orig) cannot be told
// apart by tag; decompose never needs to distinguish them — that is
// package edgeclass's job, which recomputes
// membership directly against orig and store rather than inspecting
// G_split's tags.
func BuildSplitGraph(orig *core.Graph, store *biclique.Store) (*core.Graph, error) {
	b := core.NewBuilder(orig.GeneIDBase())

	for _, e := range orig.AllEdges() {
		tags := orig.EdgeSourceTags(e.DMR, e.Gene)
		if len(tags) == 0 {
			tags = []core.SourceTag{core.SourceNearby}
		}
		for _, tag := range tags {
			if err := b.AddEdge(e.DMR, e.Gene, tag); err != nil {
				return nil, err
			}
		}
	}
	for _, id := range orig.NodesOfKind(core.KindDMR) {
		if err := b.AddDMR(id); err != nil {
			return nil, err
		}
	}
	for _, id := range orig.NodesOfKind(core.KindGene) {
		if err := b.AddGene(id); err != nil {
			return nil, err
		}
	}

	for _, bc := range store.Bicliques() {
		for _, d := range bc.DMRs {
			for _, v := range bc.Genes {
				if err := b.AddEdge(d, v, core.SourceNearby); err != nil {
					return nil, err
				}
			}
		}
	}

	return b.Finalize()
}
