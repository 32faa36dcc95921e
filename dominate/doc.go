// Package dominate implements the red-blue dominating-set solver
// (spec component C5): greedy selection of DMRs covering every
// positive-degree gene, via a max-heap with lazy-decrease-key
// invalidation (grounded on the teacher's dijkstra package, which
// uses the identical container/heap "push duplicate, ignore stale
// pop" strategy) followed by a post-hoc irredundancy minimization
// pass (grounded on original_source/rb_domination.py's
// minimize_dominating_set; the pass uses no heap, it re-checks the
// selected DMRs in a fixed sorted order).
//
// Selection prefers larger newly-dominated-gene count, then larger
// area_stat, then smaller NodeID (spec.md §4.5's tuple order
// (-utility, -area, dmr), which Go's min-heap realizes directly
// rather than via negation since heap.Interface.Less is
// caller-defined).
package dominate
