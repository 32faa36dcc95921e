// File: heap.go
// Role: Max-utility priority queue with lazy-decrease-key, the same
// container/heap shape as the teacher's dijkstra.nodePQ but ordered by
// (utility desc, area desc, NodeID asc) instead of distance asc.
package dominate

import (
	"container/heap"

	"github.com/methylgraph/dmrcore/core"
)

// utilEntry is one candidate DMR selection, ordered so the heap's
// natural min-extraction yields the highest-utility, highest-area,
// lowest-id DMR first (spec.md §4.5 tuple (-utility, -area, dmr)).
type utilEntry struct {
	utility int
	area    float64
	dmr     core.NodeID
}

func (e utilEntry) less(o utilEntry) bool {
	if e.utility != o.utility {
		return e.utility > o.utility
	}
	if e.area != o.area {
		return e.area > o.area
	}
	return e.dmr < o.dmr
}

type utilHeap []utilEntry

func (h utilHeap) Len() int            { return len(h) }
func (h utilHeap) Less(i, j int) bool  { return h[i].less(h[j]) }
func (h utilHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *utilHeap) Push(x interface{}) { *h = append(*h, x.(utilEntry)) }
func (h *utilHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

var _ heap.Interface = (*utilHeap)(nil)
