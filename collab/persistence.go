// File: persistence.go
// Role: The Persistence contract, spec.md §6's "only non-trivial
// boundary the core requires" — every method the relational layer
// must provide, named after the spec's snake_case method list and
// translated into idiomatic Go signatures (context-first, error-last,
// as junjiewwang-perf-analysis's I/O-bound methods do).
package collab

import (
	"context"

	"github.com/methylgraph/dmrcore/annotate"
	"github.com/methylgraph/dmrcore/biclique"
	"github.com/methylgraph/dmrcore/core"
	"github.com/methylgraph/dmrcore/decompose"
	"github.com/methylgraph/dmrcore/dominate"
	"github.com/methylgraph/dmrcore/edgeclass"
)

// Persistence is the relational-layer collaborator the pipeline writes
// results through. Every method corresponds 1:1 to a bullet in
// spec.md §6's "Persistence collaborator contract".
type Persistence interface {
	// UpsertTimepoint creates or updates the named timepoint's metadata
	// row and returns its id.
	UpsertTimepoint(ctx context.Context, name, sheetName, description string, offset int) (TimepointID, error)

	// InsertGene records a gene symbol once (the gene-symbol→id map is
	// built before any timepoint runs, per spec.md §5). ok is false
	// when symbol is invalid (e.g. empty after case folding); the core
	// treats that as a skip, not a Persistence error.
	InsertGene(ctx context.Context, symbol string, masterID, description, source *string) (id GeneID, ok bool, err error)

	// InsertDMR records one DMR row for a timepoint.
	InsertDMR(ctx context.Context, timepointID TimepointID, dmrNumber int, areaStat *float64) (DMRID, error)

	// InsertBiclique records one biclique's membership and category.
	InsertBiclique(ctx context.Context, timepointID TimepointID, componentID ComponentID, dmrIDs, geneIDs []core.NodeID, category biclique.Category) (BicliqueID, error)

	// InsertComponent records one decomposition component row.
	InsertComponent(ctx context.Context, timepointID TimepointID, graphType decompose.GraphType, category decompose.Category, counts ComponentCounts, density float64) (ComponentID, error)

	// LinkComponentBiclique records a component/biclique intersection edge.
	LinkComponentBiclique(ctx context.Context, componentID ComponentID, bicliqueID BicliqueID) error

	// UpsertDMRAnnotation persists the merged annotation record for one
	// (timepoint, DMR) pair; biclique_ids arrive already merged by
	// package annotate.
	UpsertDMRAnnotation(ctx context.Context, timepointID TimepointID, dmrID DMRID, rec annotate.Record) error

	// UpsertGeneAnnotation persists the merged annotation record for
	// one (timepoint, gene) pair.
	UpsertGeneAnnotation(ctx context.Context, timepointID TimepointID, geneID GeneID, rec annotate.Record) error

	// InsertEdgeDetails records one classified edge's label and, for
	// permanent/false-positive edges, the source tag that produced it
	// in the raw data (editType is empty for false-negative edges,
	// which have no original-graph source).
	InsertEdgeDetails(ctx context.Context, timepointID TimepointID, dmrID DMRID, geneID GeneID, label edgeclass.Label, editType string) error

	// StoreDominatingSet replaces the prior dominating set for
	// timepointID with records.
	StoreDominatingSet(ctx context.Context, timepointID TimepointID, records []dominate.Record) error

	// ReplaceForTimepoint runs fn inside an atomic scope for
	// timepointID: spec.md §6's "idempotent re-runs" requirement means
	// a rerun must remove the timepoint's prior bicliques/components/
	// classifications before fn writes the new ones, and the whole
	// scope commits or rolls back as one unit.
	ReplaceForTimepoint(ctx context.Context, timepointID TimepointID, fn func(ctx context.Context) error) error
}
