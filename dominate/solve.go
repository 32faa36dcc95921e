// File: solve.go
// Role: The greedy-with-lazy-heap dominating-set algorithm (spec.md
// §4.5), grounded step-for-step on original_source/rb_domination.py's
// greedy_rb_domination (degree-1 sweep, heap seeding, main loop,
// minimization) ported into the teacher's container/heap idiom.
package dominate

import (
	"container/heap"
	"sort"
	"time"

	"github.com/methylgraph/dmrcore/core"
)

// Record is one emitted selection: (d, area_at_selection,
// utility_at_selection, newly_dominated_count_at_selection, now),
// per spec.md §4.5 step 5.
type Record struct {
	DMR                 core.NodeID
	AreaAtSelection     float64
	UtilityAtSelection  int
	NewlyDominatedCount int
	SelectedAt          time.Time
}

// Options controls the solver. Minimize toggles the post-hoc
// irredundancy pass (spec.md §4.5 step 4), wired to
// config.Config.MinimizeDominatingSet.
type Options struct {
	Minimize bool
}

// Solve computes a dominating set S ⊆ D over g such that every gene
// of positive degree has a neighbor in S, minimizing |S| heuristically
// per spec.md §4.5. areaStat supplies each DMR's area_stat (DMRs
// absent from the map default to area 1.0, matching
// rb_domination.py's `area_col=None` fallback). now stamps every
// emitted Record's SelectedAt field uniformly (the whole run is one
// logical selection event; Solve never calls time.Now() itself so
// callers can test deterministically).
//
// If g has no genes of positive degree, S = ∅ (spec.md §4.5 "If the
// graph is empty, S = ∅").
func Solve(g *core.Graph, areaStat map[core.NodeID]float64, now time.Time, opts Options) []Record {
	dominated := make(map[core.NodeID]struct{})
	selected := make(map[core.NodeID]Record)

	genes := g.NodesOfKind(core.KindGene)
	positiveDegreeGenes := 0
	for _, v := range genes {
		if g.Degree(v) > 0 {
			positiveDegreeGenes++
		}
	}

	// Step 1: degree-1 sweep.
	for _, v := range genes {
		if g.Degree(v) != 1 {
			continue
		}
		if _, ok := dominated[v]; ok {
			continue
		}
		dmr := g.Neighbors(v)[0]
		if _, already := selected[dmr]; already {
			dominated[v] = struct{}{}
			continue
		}
		newly := markDominated(g, dmr, dominated)
		selected[dmr] = Record{
			DMR:                 dmr,
			AreaAtSelection:     areaOf(areaStat, dmr),
			UtilityAtSelection:  newly,
			NewlyDominatedCount: newly,
			SelectedAt:          now,
		}
	}

	// Step 2: heap seeding for every remaining DMR with ≥1 undominated neighbor.
	h := &utilHeap{}
	heap.Init(h)
	current := make(map[core.NodeID]utilEntry)
	for _, d := range g.NodesOfKind(core.KindDMR) {
		if _, already := selected[d]; already {
			continue
		}
		if entry, ok := seedEntry(g, d, dominated, areaStat); ok {
			current[d] = entry
			heap.Push(h, entry)
		}
	}

	// Step 3: main loop.
	for h.Len() > 0 && len(dominated) < positiveDegreeGenes {
		popped := heap.Pop(h).(utilEntry)

		cur, ok := current[popped.dmr]
		if !ok {
			continue // lazily invalidated: already selected or dropped
		}
		if cur != popped {
			// stale: current utility differs from what we popped.
			if cur.less(popped) {
				heap.Push(h, cur)
			}
			continue
		}

		delete(current, popped.dmr)
		newlyDominated := newlyDominatedNeighbors(g, popped.dmr, dominated)
		for _, v := range newlyDominated {
			dominated[v] = struct{}{}
		}
		selected[popped.dmr] = Record{
			DMR:                 popped.dmr,
			AreaAtSelection:     popped.area,
			UtilityAtSelection:  popped.utility,
			NewlyDominatedCount: len(newlyDominated),
			SelectedAt:          now,
		}

		affected := make(map[core.NodeID]struct{})
		for _, v := range newlyDominated {
			for _, d := range g.Neighbors(v) {
				if _, already := selected[d]; already {
					continue
				}
				if _, inMap := current[d]; inMap {
					affected[d] = struct{}{}
				}
			}
		}
		for d := range affected {
			if entry, ok := seedEntry(g, d, dominated, areaStat); ok {
				current[d] = entry
				heap.Push(h, entry)
			} else {
				delete(current, d)
			}
		}
	}

	records := make([]Record, 0, len(selected))
	for _, r := range selected {
		records = append(records, r)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].DMR < records[j].DMR })

	if opts.Minimize {
		records = minimize(g, records)
	}

	return records
}

// markDominated adds every undominated neighbor of dmr to dominated
// and returns the count newly added (the DMR's utility at the moment
// it was selected).
func markDominated(g *core.Graph, dmr core.NodeID, dominated map[core.NodeID]struct{}) int {
	newly := 0
	for _, v := range g.Neighbors(dmr) {
		if _, ok := dominated[v]; !ok {
			dominated[v] = struct{}{}
			newly++
		}
	}
	return newly
}

// newlyDominatedNeighbors returns dmr's neighbors not yet in dominated,
// without mutating dominated (the caller applies them after recording
// the selection, so the count and the affected-DMR recompute both see
// a consistent pre-update snapshot).
func newlyDominatedNeighbors(g *core.Graph, dmr core.NodeID, dominated map[core.NodeID]struct{}) []core.NodeID {
	var out []core.NodeID
	for _, v := range g.Neighbors(dmr) {
		if _, ok := dominated[v]; !ok {
			out = append(out, v)
		}
	}
	return out
}

// seedEntry computes dmr's current utility (undominated neighbor
// count) and returns its heap entry, or false if dmr would dominate
// no new gene.
func seedEntry(g *core.Graph, dmr core.NodeID, dominated map[core.NodeID]struct{}, areaStat map[core.NodeID]float64) (utilEntry, bool) {
	utility := 0
	for _, v := range g.Neighbors(dmr) {
		if _, ok := dominated[v]; !ok {
			utility++
		}
	}
	if utility == 0 {
		return utilEntry{}, false
	}
	return utilEntry{utility: utility, area: areaOf(areaStat, dmr), dmr: dmr}, true
}

func areaOf(areaStat map[core.NodeID]float64, dmr core.NodeID) float64 {
	if areaStat == nil {
		return 1.0
	}
	if a, ok := areaStat[dmr]; ok {
		return a
	}
	return 1.0
}

// minimize removes redundant DMRs in ascending NodeID order, repeating
// full passes until one removes nothing (spec.md §4.5 step 4).
func minimize(g *core.Graph, records []Record) []Record {
	byDMR := make(map[core.NodeID]Record, len(records))
	set := make(map[core.NodeID]struct{}, len(records))
	for _, r := range records {
		byDMR[r.DMR] = r
		set[r.DMR] = struct{}{}
	}

	for {
		removedAny := false
		ids := make([]core.NodeID, 0, len(set))
		for id := range set {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

		for _, d := range ids {
			if stillDominatedWithout(g, set, d) {
				delete(set, d)
				removedAny = true
			}
		}
		if !removedAny {
			break
		}
	}

	out := make([]Record, 0, len(set))
	for id := range set {
		out = append(out, byDMR[id])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DMR < out[j].DMR })
	return out
}

// stillDominatedWithout reports whether every gene neighbor of d is
// still dominated by some other member of set.
func stillDominatedWithout(g *core.Graph, set map[core.NodeID]struct{}, d core.NodeID) bool {
	for _, v := range g.Neighbors(d) {
		covered := false
		for _, other := range g.Neighbors(v) {
			if other == d {
				continue
			}
			if _, ok := set[other]; ok {
				covered = true
				break
			}
		}
		if !covered {
			return false
		}
	}
	return true
}
