// Package core defines the bipartite Graph type and its sentinel
// errors. All core APIs use separate sync.RWMutex locks internally
// (muNodes for node-side membership, muEdges for the edge set and
// adjacency), mirroring the teacher graph library's split-lock
// strategy to minimize contention under concurrent read access.
//
// This file declares NodeID, SourceTag, Graph, and the sentinel
// errors. Construction lives in builder.go (Builder/Finalize);
// queries live in methods_clone.go/methods_edges.go/methods_vertices.go.
//
// Errors:
//
//	ErrBipartitionViolation - edge crosses the bipartition (both ends DMR or both gene).
//	ErrSelfLoop             - an edge's two endpoints are identical.
//	ErrDegreeMismatch       - internal consistency check failed (degree sum ≠ 2|E|).
//	ErrEmptyNodeSet         - a Subgraph call kept no node present in the graph.
package core

import (
	"errors"
	"sync"

	"github.com/methylgraph/dmrcore/idspace"
)

// NodeID aliases idspace.NodeID so callers needn't import idspace just
// to reference the type package core already depends on.
type NodeID = idspace.NodeID

// SourceTag marks where an original-graph edge came from, per spec.md
// §4.6 ("a set of source tags... NEARBY, ENHANCER, PROMOTER, or
// COVER-only"). There is no COVER-only tag: when package decompose
// builds the split graph it adds cover-only pairs tagged SourceNearby,
// and package edgeclass labels them by comparing against the cover
// rather than by tag.
type SourceTag uint8

const (
	// SourceNearby marks an edge resolved from a row's nearby-gene column.
	SourceNearby SourceTag = iota
	// SourceEnhancer marks an edge resolved from an enhancer-gene column.
	SourceEnhancer
	// SourcePromoter marks an edge resolved from a promoter-gene column.
	SourcePromoter
)

func (t SourceTag) String() string {
	switch t {
	case SourceEnhancer:
		return "enhancer"
	case SourcePromoter:
		return "promoter"
	default:
		return "nearby"
	}
}

// Sentinel errors for core graph operations.
var (
	// ErrBipartitionViolation indicates an edge whose two endpoints are
	// both DMRs or both genes under the configured GeneIDBase.
	ErrBipartitionViolation = errors.New("core: edge crosses bipartition")

	// ErrSelfLoop indicates an edge endpoint equal to itself (impossible
	// under a well-formed bipartition, checked defensively).
	ErrSelfLoop = errors.New("core: self-loop not allowed in bipartite graph")

	// ErrDegreeMismatch indicates the internal consistency check
	// degree-sum == 2|E| failed; this signals a builder bug, not bad input.
	ErrDegreeMismatch = errors.New("core: degree sum does not match 2*|E|")

	// ErrEmptyNodeSet indicates Subgraph was given a keep set containing
	// no node present in the graph.
	ErrEmptyNodeSet = errors.New("core: empty node set for subgraph view")
)

// EdgeKey canonically identifies a bipartite edge by its DMR and gene
// endpoints (order is fixed: DMR first), independent of the order the
// caller happened to pass them to Builder.AddEdge.
type EdgeKey struct {
	DMR  NodeID
	Gene NodeID
}

// Graph is the immutable-after-Finalize bipartite DMR↔gene graph for
// one timepoint: G = (D ∪ V, E), D ∩ V = ∅, E ⊆ D × V.
//
// muNodes protects dmrs/genes; muEdges protects edges and the two
// adjacency maps. Graph values are produced exclusively by
// Builder.Finalize and are safe for concurrent reads thereafter.
type Graph struct {
	muNodes sync.RWMutex
	muEdges sync.RWMutex

	geneBase NodeID

	dmrs  map[NodeID]struct{}
	genes map[NodeID]struct{}

	// edges[EdgeKey] = set of SourceTags observed for that pair (a set,
	// so repeated ingestion of the same (dmr,gene,tag) triple dedups
	// for free; spec.md §3 invariant (iii): the edge set is a set).
	edges map[EdgeKey]map[SourceTag]struct{}

	// adjacency, mirrored both directions for O(1) Neighbors/Degree on
	// either side without distinguishing DMR-from-gene at the call site.
	adjDMR  map[NodeID]map[NodeID]struct{} // dmr -> gene neighbors
	adjGene map[NodeID]map[NodeID]struct{} // gene -> dmr neighbors
}

// GeneIDBase returns the gene/DMR boundary this graph was built with.
func (g *Graph) GeneIDBase() NodeID {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	return g.geneBase
}

// IsDMR reports whether n falls in this graph's DMR range.
func (g *Graph) IsDMR(n NodeID) bool {
	return idspace.Classify(n, g.GeneIDBase()) == idspace.KindDMR
}
