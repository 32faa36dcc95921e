// Package edgeclass implements the per-component edge classifier
// (spec component C6): partitioning E_orig ∪ E_cover into permanent,
// false-positive, and false-negative sets, grounded on
// original_source/biclique_analysis/edge_classification.py's
// classify_edges/validate_edge_classification pair, adapted from its
// whole-graph O(|nodes|^2) pairwise scan into a per-component scan
// restricted to each component's own DMR×gene pairs (spec.md §4.6:
// "classification runs only on pairs intersecting that component").
// E_cover membership comes from biclique.Store.CoversEdge rather than
// decompose's G_split, since G_split always contains an original edge
// whether or not any biclique also claims it.
//
// A component with at least one original edge but zero permanent
// edges after classification means the cover and the raw data
// disagree on every edge of that component; Classify reports this as
// dmrerr.DegenerateCover rather than silently emitting an empty
// permanent set.
package edgeclass
