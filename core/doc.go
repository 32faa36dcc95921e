// Package core holds the bipartite DMR↔gene graph (spec component C2)
// at the center of the analysis engine: BipartiteGraph G = (D ∪ V, E)
// with D the DMR-side node ids and V the gene-side node ids for one
// timepoint, built from ingested interaction rows and finalized into
// an immutable adjacency representation with per-side node indices.
//
// Construction is batch-oriented through Builder: callers resolve
// (dmr, gene) pairs via an idspace.TimepointSpace/GeneIndex, feed them
// through AddEdge, and call Finalize once. A bipartition violation
// (e.g. attempting a DMR-DMR or gene-gene edge) is rejected by AddEdge
// itself, so the rejected edge never enters the Builder; edges added
// before it stay in the Builder and are not rolled back.
//
// Once finalized, a Graph is read-only: algorithms in packages
// decompose, dominate, and edgeclass only read through its query
// methods (Neighbors, Degree, HasEdge, NodesOfKind, AllEdges,
// EdgeSourceTags, IsDMR, and the Subgraph copies). The locking strategy mirrors the
// teacher graph library (separate RWMutex for node membership vs.
// edges/adjacency) even though a single timepoint's Graph is, in
// practice, owned by one worker goroutine (spec.md §5) — defensive
// locking keeps concurrent read access (e.g. a reporting goroutine)
// safe without extra coordination.
package core
