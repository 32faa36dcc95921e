// File: dsu.go
// Role: Disjoint-set union over NodeIDs, grounded on the teacher's
// prim_kruskal.Kruskal union-find (path compression + union by rank),
// here keyed by core.NodeID instead of string vertex ids.
package decompose

import "github.com/methylgraph/dmrcore/core"

type dsu struct {
	parent map[core.NodeID]core.NodeID
	rank   map[core.NodeID]int
}

func newDSU() *dsu {
	return &dsu{
		parent: make(map[core.NodeID]core.NodeID),
		rank:   make(map[core.NodeID]int),
	}
}

func (d *dsu) add(id core.NodeID) {
	if _, ok := d.parent[id]; !ok {
		d.parent[id] = id
		d.rank[id] = 0
	}
}

// find walks up to the root with path compression.
func (d *dsu) find(id core.NodeID) core.NodeID {
	for d.parent[id] != id {
		d.parent[id] = d.parent[d.parent[id]]
		id = d.parent[id]
	}
	return id
}

// union merges the sets containing u and v, attaching the
// smaller-rank root under the larger one.
func (d *dsu) union(u, v core.NodeID) {
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return
	}
	if d.rank[ru] < d.rank[rv] {
		d.parent[ru] = rv
	} else {
		d.parent[rv] = ru
		if d.rank[ru] == d.rank[rv] {
			d.rank[ru]++
		}
	}
}

// groups returns the current partition as root → member list. Members
// are in map iteration order, not sorted; callers sort members and
// order groups by min member id themselves.
func (d *dsu) groups() map[core.NodeID][]core.NodeID {
	out := make(map[core.NodeID][]core.NodeID)
	for id := range d.parent {
		root := d.find(id)
		out[root] = append(out[root], id)
	}
	return out
}
