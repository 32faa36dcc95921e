package annotate

import "github.com/methylgraph/dmrcore/core"

// Role is a node's computed position within its timepoint's graph
// (spec.md §4.7's "Role definitions"). ISOLATE is tracked separately
// via Record.IsIsolate (a plain overwrite, not part of this lattice —
// spec.md §4.7 lists it among the definitions but its update rule is
// "overwritten", unlike HUB/SPLIT's monotonic stickiness).
type Role uint8

const (
	Regular Role = iota
	Hub
	Split
)

func (r Role) String() string {
	switch r {
	case Hub:
		return "HUB"
	case Split:
		return "SPLIT"
	default:
		return "REGULAR"
	}
}

// GeneSubtype names which row column resolved a gene edge, per
// spec.md §3's `gene sub-type ∈ {NEARBY, ENHANCER, PROMOTER, ∅}`. It
// has no meaning for a DMR-side Record.
type GeneSubtype uint8

const (
	SubtypeNone GeneSubtype = iota
	SubtypeNearby
	SubtypeEnhancer
	SubtypePromoter
)

func (s GeneSubtype) String() string {
	switch s {
	case SubtypeNearby:
		return "NEARBY"
	case SubtypeEnhancer:
		return "ENHANCER"
	case SubtypePromoter:
		return "PROMOTER"
	default:
		return ""
	}
}

// GeneSubtypeFromSourceTag maps a core.SourceTag to its annotation
// gene sub-type (spec.md §3 supplemented field; SPEC_FULL.md "Gene
// sub-type annotation").
func GeneSubtypeFromSourceTag(tag core.SourceTag) GeneSubtype {
	switch tag {
	case core.SourceEnhancer:
		return SubtypeEnhancer
	case core.SourcePromoter:
		return SubtypePromoter
	default:
		return SubtypeNearby
	}
}

// Record is one (timepoint, node) annotation, merged in place across
// repeated Upsert calls (spec.md §4.7).
type Record struct {
	ComponentID    int
	TriconnectedID int
	Degree         int
	Role           Role
	IsIsolate      bool
	BicliqueIDs    []int
	GeneSubtype    GeneSubtype
}

// Update carries the fields one Upsert call supplies. A nil pointer
// field means "not provided" (Python's keyword default None) and
// leaves the existing Record's value untouched; BicliqueIDs is always
// merged (a nil/empty slice is simply a no-op union).
type Update struct {
	ComponentID    *int
	TriconnectedID *int
	Degree         *int
	Role           *Role
	IsIsolate      *bool
	BicliqueIDs    []int
	GeneSubtype    *GeneSubtype
}
