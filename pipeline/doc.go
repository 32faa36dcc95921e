// Package pipeline implements the per-timepoint driver (spec
// component C8, spec.md §4.8): fetch rows, build the bipartite graph,
// load the biclique cover if present, decompose, dominate, classify
// edges, annotate, and persist — in the strict eight-step order
// spec.md §4.8 names. Logging follows thebtf-engram's
// internal/graph/edge_detector.go (chained zerolog calls at each
// stage boundary); the run-id convention (one uuid.New() per Run
// call) follows thebtf-engram/rawblock's per-unit-of-work UUIDs.
package pipeline
