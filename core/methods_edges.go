// File: methods_edges.go
// Role: Edge queries — Neighbors, Degree, HasEdge, EdgeCount, AllEdges.
//
// Determinism:
//   - Neighbors() returns ids sorted ascending.
//   - AllEdges() returns edges sorted by (DMR, Gene) ascending.
//
// Concurrency:
//   - Edge set and adjacency protected by muEdges.
package core

import "sort"

// Neighbors returns n's neighbors on the opposite side, sorted ascending.
// n may be a DMR or a gene id; an unknown id yields an empty, non-nil slice.
// Complexity: O(deg(n) log deg(n)).
func (g *Graph) Neighbors(n NodeID) []NodeID {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	var adj map[NodeID]struct{}
	if g.IsDMR(n) {
		adj = g.adjDMR[n]
	} else {
		adj = g.adjGene[n]
	}

	out := make([]NodeID, 0, len(adj))
	for id := range adj {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Degree returns |{e ∈ E : n ∈ e}| (spec.md §3 invariant iv).
// Complexity: O(1).
func (g *Graph) Degree(n NodeID) int {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	if g.IsDMR(n) {
		return len(g.adjDMR[n])
	}
	return len(g.adjGene[n])
}

// HasEdge reports whether (dmr, gene) ∈ E, in either argument order.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v NodeID) bool {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	dmr, gene := u, v
	if !g.IsDMR(dmr) {
		dmr, gene = v, u
	}
	_, ok := g.edges[EdgeKey{DMR: dmr, Gene: gene}]
	return ok
}

// EdgeSourceTags returns the source tags recorded for (dmr, gene), or
// nil if no such edge exists.
func (g *Graph) EdgeSourceTags(dmr, gene NodeID) []SourceTag {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	tags, ok := g.edges[EdgeKey{DMR: dmr, Gene: gene}]
	if !ok {
		return nil
	}
	out := make([]SourceTag, 0, len(tags))
	for t := range tags {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// EdgeCount returns |E|.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()
	return len(g.edges)
}

// AllEdges returns every EdgeKey in the graph, sorted by (DMR, Gene).
// Complexity: O(E log E).
func (g *Graph) AllEdges() []EdgeKey {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	out := make([]EdgeKey, 0, len(g.edges))
	for k := range g.edges {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DMR != out[j].DMR {
			return out[i].DMR < out[j].DMR
		}
		return out[i].Gene < out[j].Gene
	})

	return out
}
