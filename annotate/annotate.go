// File: annotate.go
// Role: The Annotator itself — an in-memory (timepoint, node) → Record
// table with upsert/merge semantics, grounded on
// upsert_dmr_timepoint_annotation / upsert_gene_timepoint_annotation.
package annotate

import (
	"sort"

	"github.com/methylgraph/dmrcore/core"
)

type key struct {
	timepoint string
	node      core.NodeID
}

// Annotator accumulates Records across repeated Upsert calls within
// and across timepoints. The zero value is ready to use.
type Annotator struct {
	records map[key]Record
}

// Upsert merges u into the existing Record for (timepoint, node),
// creating one if absent, and returns the merged result.
func (a *Annotator) Upsert(timepoint string, node core.NodeID, u Update) Record {
	if a.records == nil {
		a.records = make(map[key]Record)
	}
	k := key{timepoint, node}
	rec := a.records[k]

	if u.ComponentID != nil {
		rec.ComponentID = *u.ComponentID
	}
	if u.TriconnectedID != nil {
		rec.TriconnectedID = *u.TriconnectedID
	}
	if u.Degree != nil {
		rec.Degree = *u.Degree
	}
	if u.IsIsolate != nil {
		rec.IsIsolate = *u.IsIsolate
	}
	if u.GeneSubtype != nil {
		rec.GeneSubtype = *u.GeneSubtype
	}
	if u.Role != nil {
		rec.Role = mergeRole(rec.Role, *u.Role)
	}
	if len(u.BicliqueIDs) > 0 {
		rec.BicliqueIDs = mergeBicliqueIDs(rec.BicliqueIDs, u.BicliqueIDs)
	}

	a.records[k] = rec
	return rec
}

// Get returns the current Record for (timepoint, node), or false if
// no Upsert has touched it.
func (a *Annotator) Get(timepoint string, node core.NodeID) (Record, bool) {
	if a.records == nil {
		return Record{}, false
	}
	rec, ok := a.records[key{timepoint, node}]
	return rec, ok
}

// mergeRole applies spec.md §4.7's monotonic lattice: REGULAR→HUB,
// REGULAR→SPLIT, and once non-REGULAR the role never reverts; SPLIT is
// never replaced ("once split, always split").
func mergeRole(existing, incoming Role) Role {
	if incoming == Regular || existing == Split {
		return existing
	}
	return incoming
}

// mergeBicliqueIDs unions existing and incoming, sorted ascending
// (spec.md §4.7: "merged as sets, then serialized in ascending order").
func mergeBicliqueIDs(existing, incoming []int) []int {
	seen := make(map[int]struct{}, len(existing)+len(incoming))
	for _, id := range existing {
		seen[id] = struct{}{}
	}
	for _, id := range incoming {
		seen[id] = struct{}{}
	}
	out := make([]int, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}
