// Package idspace assigns the integer NodeID space shared by DMRs and
// genes across a methylation-timepoint analysis run.
//
// A NodeID is a 64-bit unsigned integer. The low range [0, GeneIDBase)
// is reserved for DMRs; [GeneIDBase, +inf) is reserved for genes. DMR
// IDs are further partitioned per timepoint by disjoint offset windows
// assigned by the caller (see TimepointSpace) — idspace never invents
// or shares a mutable global counter for them. Gene IDs are assigned
// from one canonical, case-folded, lexicographically sorted symbol
// list built once per run and shared read-only across all timepoints.
//
// Classification of a NodeID as DMR or Gene is a pure function of its
// integer value (Classify), which is what makes the bipartition
// invariant in package core checkable without any per-node metadata.
package idspace
