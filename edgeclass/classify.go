// File: classify.go
// Role: Per-component pairwise classification, adapted from
// edge_classification.py's classify_edges — restricted to one
// component's D_C×V_C pairs instead of the whole graph's node^2 scan,
// and comparing against E_cover (biclique.Store.CoversEdge) rather
// than G_split, since G_split = E_orig ∪ E_cover always contains an
// original edge regardless of whether the cover also claims it.
package edgeclass

import (
	"sort"

	"github.com/methylgraph/dmrcore/biclique"
	"github.com/methylgraph/dmrcore/core"
	"github.com/methylgraph/dmrcore/dmrerr"
)

// Classify partitions every (d,v) pair of one component, d ∈ D_C and
// v ∈ V_C, into permanent/false-positive/false-negative by comparing
// presence in orig (G_orig) against store's cover claims (E_cover).
// members is the component's full node list (both sides); componentID
// names it for the DegenerateCover error.
//
// Returns dmrerr.DegenerateCover when the component has at least one
// original edge but classification yields zero permanent edges
// (spec.md §4.6's fourth invariant).
func Classify(orig *core.Graph, store *biclique.Store, members []core.NodeID, componentID int) (*Classification, error) {
	var dmrs, genes []core.NodeID
	for _, n := range members {
		if orig.IsDMR(n) {
			dmrs = append(dmrs, n)
		} else {
			genes = append(genes, n)
		}
	}
	sort.Slice(dmrs, func(i, j int) bool { return dmrs[i] < dmrs[j] })
	sort.Slice(genes, func(i, j int) bool { return genes[i] < genes[j] })

	cls := &Classification{}
	origEdgesInComponent := 0

	for _, d := range dmrs {
		for _, v := range genes {
			inOrig := orig.HasEdge(d, v)
			inCover := store.CoversEdge(d, v)
			if !inOrig && !inCover {
				continue
			}

			switch {
			case inOrig && inCover:
				origEdgesInComponent++
				cls.Permanent = append(cls.Permanent, EdgeInfo{
					DMR: d, Gene: v, Label: Permanent, SourceTags: orig.EdgeSourceTags(d, v),
				})
			case inOrig && !inCover:
				origEdgesInComponent++
				cls.FalsePositive = append(cls.FalsePositive, EdgeInfo{
					DMR: d, Gene: v, Label: FalsePositive, SourceTags: orig.EdgeSourceTags(d, v),
				})
			default: // !inOrig && inCover
				cls.FalseNegative = append(cls.FalseNegative, EdgeInfo{
					DMR: d, Gene: v, Label: FalseNegative,
				})
			}
		}
	}

	if origEdgesInComponent > 0 && len(cls.Permanent) == 0 {
		return cls, dmrerr.NewDegenerateCover(componentID)
	}
	return cls, nil
}
