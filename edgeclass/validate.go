// File: validate.go
// Role: Explicit invariant re-check, grounded on
// edge_classification.py's validate_edge_classification — exported
// separately from Classify so callers (tests, pipeline diagnostics)
// can re-verify a Classification without recomputing it.
package edgeclass

import "github.com/methylgraph/dmrcore/core"

// Validate reports whether the three sets of cls are pairwise disjoint.
// It does not check an edge's presence in orig or the cover against its
// label, does not detect a duplicate within Permanent, and does not
// re-check DegenerateCover; Classify already raises that at
// construction time.
func (c *Classification) Validate() bool {
	seen := make(map[edgeKey]Label)
	for _, e := range c.Permanent {
		seen[edgeKey{e.DMR, e.Gene}] = Permanent
	}
	for _, e := range c.FalsePositive {
		k := edgeKey{e.DMR, e.Gene}
		if _, dup := seen[k]; dup {
			return false
		}
		seen[k] = FalsePositive
	}
	for _, e := range c.FalseNegative {
		k := edgeKey{e.DMR, e.Gene}
		if _, dup := seen[k]; dup {
			return false
		}
		seen[k] = FalseNegative
	}
	return true
}

type edgeKey struct {
	dmr, gene core.NodeID
}
