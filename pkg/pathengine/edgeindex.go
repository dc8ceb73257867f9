package pathengine

import "sort"

// EdgeServiceIndex is the reverse index from an edge to the set of services
// whose working path currently traverses it. A missing key means the empty
// set; callers must treat it that way rather than assuming presence.
type EdgeServiceIndex struct {
	index map[Edge]map[int]struct{}
}

// NewEdgeServiceIndex returns an empty index.
func NewEdgeServiceIndex() *EdgeServiceIndex {
	return &EdgeServiceIndex{index: make(map[Edge]map[int]struct{})}
}

// Services returns the services routed over e, in ascending order. Returns
// nil for an edge carrying no services.
func (ix *EdgeServiceIndex) Services(e Edge) []int {
	set, ok := ix.index[e]
	if !ok {
		return nil
	}
	out := make([]int, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Ints(out)
	return out
}

// Add records that service s traverses e.
func (ix *EdgeServiceIndex) Add(e Edge, s int) {
	set, ok := ix.index[e]
	if !ok {
		set = make(map[int]struct{})
		ix.index[e] = set
	}
	set[s] = struct{}{}
}

// Remove forgets that service s traverses e, pruning the entry once empty.
func (ix *EdgeServiceIndex) Remove(e Edge, s int) {
	set, ok := ix.index[e]
	if !ok {
		return
	}
	delete(set, s)
	if len(set) == 0 {
		delete(ix.index, e)
	}
}

// Rebuild discards all entries and repopulates from scratch by scanning
// every stored working path, mirroring the one-time full-rebuild the engine
// performs right after initial path computation.
func (ix *EdgeServiceIndex) Rebuild(table *ServicePathTable) {
	ix.index = make(map[Edge]map[int]struct{})
	for _, sp := range table.Iter() {
		for _, e := range sp.Path.Edges() {
			ix.Add(e, sp.Service)
		}
	}
}

// Update incrementally applies the edge-set delta between an old and a new
// working path for service s, keeping the index consistent without a full
// rebuild.
func (ix *EdgeServiceIndex) Update(s int, oldPath, newPath Path) {
	oldEdges := edgeSet(oldPath)
	newEdges := edgeSet(newPath)
	for e := range oldEdges {
		if _, keep := newEdges[e]; !keep {
			ix.Remove(e, s)
		}
	}
	for e := range newEdges {
		if _, had := oldEdges[e]; !had {
			ix.Add(e, s)
		}
	}
}

func edgeSet(p Path) map[Edge]struct{} {
	out := make(map[Edge]struct{})
	for _, e := range p.Edges() {
		out[e] = struct{}{}
	}
	return out
}

// All returns every edge currently carrying at least one service, in
// ascending order.
func (ix *EdgeServiceIndex) All() []Edge {
	out := make([]Edge, 0, len(ix.index))
	for e := range ix.index {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})
	return out
}
