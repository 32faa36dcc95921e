// File: validate.go
// Role: Validate a Store's claimed (dmr, gene) pairs against a
// core.Graph (spec.md §4.3's validation contract with C2).
package biclique

import "github.com/methylgraph/dmrcore/core"

// Validate checks every pair (d ∈ D_B, v ∈ V_B) of every biclique in s
// against g.HasEdge, recording the count of claimed-but-missing pairs
// on each Biclique's Missing field (seeding edgeclass's false-negative
// enumeration). Validate mutates s.bicliques in place and returns the
// total number of missing pairs found across the whole store.
func (s *Store) Validate(g *core.Graph) int {
	total := 0
	for i := range s.bicliques {
		b := &s.bicliques[i]
		missing := 0
		for _, d := range b.DMRs {
			for _, v := range b.Genes {
				if !g.HasEdge(d, v) {
					missing++
				}
			}
		}
		b.Missing = missing
		total += missing
	}
	return total
}
