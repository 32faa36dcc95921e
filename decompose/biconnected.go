// File: biconnected.go
// Role: Biconnected components via Tarjan's articulation-point DFS
// (spec.md §4.4), adapted from the teacher's dfs.DFS disc/low,
// pre/post-order walker shape but specialized to also track an edge
// stack, since plain visited-order hooks can't recover block
// membership on their own.
package decompose

import (
	"sort"

	"github.com/methylgraph/dmrcore/core"
)

// bicEdge is an unordered edge used for the Tarjan edge stack.
type bicEdge struct{ a, b core.NodeID }

// bicWalker carries Tarjan DFS state for one connected component.
type bicWalker struct {
	g        *core.Graph
	disc     map[core.NodeID]int
	low      map[core.NodeID]int
	parent   map[core.NodeID]core.NodeID
	timer    int
	stack    []bicEdge
	blocks   [][]core.NodeID
	articPts map[core.NodeID]struct{}
}

// BiconnectedComponents returns, for the connected component spanning
// members, the node sets of each biconnected block plus the set of
// articulation points. Blocks are returned with ascending-sorted
// members; order among blocks is unspecified (callers re-sort
// downstream by min member id, matching the rest of decompose's
// determinism clause).
func BiconnectedComponents(g *core.Graph, members []core.NodeID) (blocks [][]core.NodeID, articulationPoints []core.NodeID) {
	if len(members) == 0 {
		return nil, nil
	}

	w := &bicWalker{
		g:        g,
		disc:     make(map[core.NodeID]int),
		low:      make(map[core.NodeID]int),
		parent:   make(map[core.NodeID]core.NodeID),
		articPts: make(map[core.NodeID]struct{}),
	}

	root := members[0]
	w.dfs(root, true)
	if len(w.stack) > 0 {
		w.flushBlock()
	}

	for id := range w.articPts {
		articulationPoints = append(articulationPoints, id)
	}
	sort.Slice(articulationPoints, func(i, j int) bool { return articulationPoints[i] < articulationPoints[j] })

	return w.blocks, articulationPoints
}

func (w *bicWalker) dfs(u core.NodeID, isRoot bool) {
	w.timer++
	w.disc[u] = w.timer
	w.low[u] = w.timer

	children := 0
	for _, v := range w.g.Neighbors(u) {
		if _, seen := w.disc[v]; !seen {
			children++
			w.parent[v] = u
			w.stack = append(w.stack, bicEdge{u, v})

			w.dfs(v, false)

			if w.low[v] < w.low[u] {
				w.low[u] = w.low[v]
			}

			isArticulation := (isRoot && children > 1) || (!isRoot && w.low[v] >= w.disc[u])
			if isArticulation {
				w.articPts[u] = struct{}{}
				w.popBlockTo(bicEdge{u, v})
			}
		} else if v != w.parent[u] && w.disc[v] < w.disc[u] {
			// back edge
			w.stack = append(w.stack, bicEdge{u, v})
			if w.disc[v] < w.low[u] {
				w.low[u] = w.disc[v]
			}
		}
	}
}

// popBlockTo pops the edge stack down through and including target,
// emitting the node set of the resulting block.
func (w *bicWalker) popBlockTo(target bicEdge) {
	seen := make(map[core.NodeID]struct{})
	for len(w.stack) > 0 {
		e := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		seen[e.a] = struct{}{}
		seen[e.b] = struct{}{}
		if e == target {
			break
		}
	}
	w.emitBlock(seen)
}

// flushBlock emits whatever remains on the stack as the final block
// (the root component, if the whole traversal never hit an
// articulation point above it).
func (w *bicWalker) flushBlock() {
	seen := make(map[core.NodeID]struct{})
	for _, e := range w.stack {
		seen[e.a] = struct{}{}
		seen[e.b] = struct{}{}
	}
	w.stack = nil
	w.emitBlock(seen)
}

func (w *bicWalker) emitBlock(seen map[core.NodeID]struct{}) {
	if len(seen) == 0 {
		return
	}
	members := make([]core.NodeID, 0, len(seen))
	for id := range seen {
		members = append(members, id)
	}
	sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })
	w.blocks = append(w.blocks, members)
}
