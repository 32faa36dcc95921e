// File: builder.go
// Role: Batch construction of an immutable Graph from ingested rows.
// Policy:
//   - Builder validates every edge against the bipartition as it is added.
//   - An edge rejected by AddEdge never enters the Builder. Edges added
//     earlier in the same batch are kept: the Builder does not roll them
//     back, and a later Finalize includes them.
//   - Finalize runs one more O(V+E) validation pass before sealing the
//     Graph, mirroring the teacher builder's BuildGraph orchestrator
//     (resolve config once, apply steps in order, wrap errors once).

package core

import (
	"fmt"

	"github.com/methylgraph/dmrcore/idspace"
)

// Builder accumulates nodes and edges for one timepoint's BipartiteGraph.
// It is not safe for concurrent use; each timepoint worker owns its own
// Builder (spec.md §5).
type Builder struct {
	geneBase NodeID
	dmrs     map[NodeID]struct{}
	genes    map[NodeID]struct{}
	edges    map[EdgeKey]map[SourceTag]struct{}
}

// NewBuilder creates a Builder for a graph whose gene ids begin at geneBase.
func NewBuilder(geneBase NodeID) *Builder {
	return &Builder{
		geneBase: geneBase,
		dmrs:     make(map[NodeID]struct{}),
		genes:    make(map[NodeID]struct{}),
		edges:    make(map[EdgeKey]map[SourceTag]struct{}),
	}
}

// AddDMR registers an isolated (or not-yet-edged) DMR node. Nodes with
// degree 0 are retained per spec.md §4.2; callers decide whether to
// prune them downstream. Returns ErrBipartitionViolation if id falls
// in the gene range.
func (b *Builder) AddDMR(id NodeID) error {
	if idspace.Classify(id, b.geneBase) != idspace.KindDMR {
		return fmt.Errorf("Builder.AddDMR(%d): %w", id, ErrBipartitionViolation)
	}
	b.dmrs[id] = struct{}{}
	return nil
}

// AddGene registers an isolated (or not-yet-edged) gene node. Returns
// ErrBipartitionViolation if id falls in the DMR range.
func (b *Builder) AddGene(id NodeID) error {
	if idspace.Classify(id, b.geneBase) != idspace.KindGene {
		return fmt.Errorf("Builder.AddGene(%d): %w", id, ErrBipartitionViolation)
	}
	b.genes[id] = struct{}{}
	return nil
}

// AddEdge registers a (dmr, gene) interaction tagged with its source
// column. Both endpoints are registered as nodes as a side effect.
// Returns ErrBipartitionViolation if dmr/gene are not on the expected
// sides, or ErrSelfLoop if they are equal (impossible for a correctly
// separated geneBase, checked defensively).
//
// Complexity: O(1) amortized.
func (b *Builder) AddEdge(dmr, gene NodeID, tag SourceTag) error {
	if dmr == gene {
		return fmt.Errorf("Builder.AddEdge(%d,%d): %w", dmr, gene, ErrSelfLoop)
	}
	if idspace.Classify(dmr, b.geneBase) != idspace.KindDMR {
		return fmt.Errorf("Builder.AddEdge: %d is not a DMR id: %w", dmr, ErrBipartitionViolation)
	}
	if idspace.Classify(gene, b.geneBase) != idspace.KindGene {
		return fmt.Errorf("Builder.AddEdge: %d is not a gene id: %w", gene, ErrBipartitionViolation)
	}

	b.dmrs[dmr] = struct{}{}
	b.genes[gene] = struct{}{}

	key := EdgeKey{DMR: dmr, Gene: gene}
	tags, ok := b.edges[key]
	if !ok {
		tags = make(map[SourceTag]struct{}, 1)
		b.edges[key] = tags
	}
	tags[tag] = struct{}{}

	return nil
}

// Finalize seals the Builder into an immutable Graph, running a final
// O(V+E) validation pass: every node is on the side its id implies
// (guaranteed by AddEdge/AddDMR/AddGene, re-checked here defensively),
// no self-loops exist, and degree-sum equals 2|E|.
//
// Complexity: O(V+E).
func (b *Builder) Finalize() (*Graph, error) {
	g := &Graph{
		geneBase: b.geneBase,
		dmrs:     make(map[NodeID]struct{}, len(b.dmrs)),
		genes:    make(map[NodeID]struct{}, len(b.genes)),
		edges:    make(map[EdgeKey]map[SourceTag]struct{}, len(b.edges)),
		adjDMR:   make(map[NodeID]map[NodeID]struct{}, len(b.dmrs)),
		adjGene:  make(map[NodeID]map[NodeID]struct{}, len(b.genes)),
	}

	for id := range b.dmrs {
		if idspace.Classify(id, b.geneBase) != idspace.KindDMR {
			return nil, fmt.Errorf("Builder.Finalize: dmr %d: %w", id, ErrBipartitionViolation)
		}
		g.dmrs[id] = struct{}{}
		g.adjDMR[id] = make(map[NodeID]struct{})
	}
	for id := range b.genes {
		if idspace.Classify(id, b.geneBase) != idspace.KindGene {
			return nil, fmt.Errorf("Builder.Finalize: gene %d: %w", id, ErrBipartitionViolation)
		}
		g.genes[id] = struct{}{}
		g.adjGene[id] = make(map[NodeID]struct{})
	}

	degreeSum := 0
	for key, tags := range b.edges {
		if key.DMR == key.Gene {
			return nil, fmt.Errorf("Builder.Finalize: %w", ErrSelfLoop)
		}
		if _, ok := g.dmrs[key.DMR]; !ok {
			return nil, fmt.Errorf("Builder.Finalize: dangling dmr %d: %w", key.DMR, ErrBipartitionViolation)
		}
		if _, ok := g.genes[key.Gene]; !ok {
			return nil, fmt.Errorf("Builder.Finalize: dangling gene %d: %w", key.Gene, ErrBipartitionViolation)
		}

		tagCopy := make(map[SourceTag]struct{}, len(tags))
		for t := range tags {
			tagCopy[t] = struct{}{}
		}
		g.edges[key] = tagCopy

		g.adjDMR[key.DMR][key.Gene] = struct{}{}
		g.adjGene[key.Gene][key.DMR] = struct{}{}
		degreeSum += 2
	}

	if degreeSum != 2*len(g.edges) {
		return nil, fmt.Errorf("Builder.Finalize: %w", ErrDegreeMismatch)
	}

	return g, nil
}
