package graph

import (
	"container/heap"
	"fmt"
)

// Mask is a predicate over edges; when non-nil, an edge for which it
// returns true is treated as absent by the search. Used by the backup
// repair ladder to query "the graph without e" without actually mutating
// the shared graph, avoiding a window where backup repair would observe a
// momentarily-edgeless graph (see DESIGN.md).
type Mask func(e Edge) bool

// Path is an ordered, simple node sequence with at least one node.
type Path struct {
	Nodes []NodeID
}

// Edges derives the canonical edge sequence traversed by the path.
func (p Path) Edges() []Edge {
	if len(p.Nodes) < 2 {
		return nil
	}
	out := make([]Edge, 0, len(p.Nodes)-1)
	for i := 0; i+1 < len(p.Nodes); i++ {
		out = append(out, NewEdge(p.Nodes[i], p.Nodes[i+1]))
	}
	return out
}

func (gr *Graph) maskedNeighbors(id NodeID, mask Mask) []NodeID {
	all := gr.Neighbors(id)
	if mask == nil {
		return all
	}
	out := all[:0:0]
	for _, n := range all {
		if !mask(NewEdge(id, n)) {
			out = append(out, n)
		}
	}
	return out
}

// ShortestPathWeighted returns the minimum total-weight simple path from src
// to snk, breaking ties by lexicographically smallest node sequence. Returns
// ErrNoPath if the nodes are not connected.
func (gr *Graph) ShortestPathWeighted(src, snk NodeID) (Path, error) {
	return gr.shortestPathWeightedMasked(src, snk, nil)
}

// ShortestPathWeightedMasked is ShortestPathWeighted over the graph with
// every edge matching mask treated as removed.
func (gr *Graph) ShortestPathWeightedMasked(src, snk NodeID, mask Mask) (Path, error) {
	return gr.shortestPathWeightedMasked(src, snk, mask)
}

type dijkstraItem struct {
	dist float64
	path []NodeID
}

type dijkstraHeap []dijkstraItem

func (h dijkstraHeap) Len() int { return len(h) }
func (h dijkstraHeap) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}
	return lexLess(h[i].path, h[j].path)
}
func (h dijkstraHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *dijkstraHeap) Push(x any)        { *h = append(*h, x.(dijkstraItem)) }
func (h *dijkstraHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

func lexLess(a, b []NodeID) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// shortestPathWeightedMasked is a binary-heap Dijkstra whose priority key is
// (distance, node-sequence) so the first time a node is finalized, it is
// finalized via the lexicographically smallest among all minimum-distance
// paths seen so far — giving the pinned tie-break for free from heap order,
// rather than as a post-hoc comparison pass.
func (gr *Graph) shortestPathWeightedMasked(src, snk NodeID, mask Mask) (Path, error) {
	if src == snk {
		return Path{Nodes: []NodeID{src}}, nil
	}
	h := &dijkstraHeap{{dist: 0, path: []NodeID{src}}}
	heap.Init(h)
	finalized := make(map[NodeID]bool)

	for h.Len() > 0 {
		item := heap.Pop(h).(dijkstraItem)
		u := item.path[len(item.path)-1]
		if finalized[u] {
			continue
		}
		finalized[u] = true
		if u == snk {
			return Path{Nodes: item.path}, nil
		}
		for _, v := range gr.maskedNeighbors(u, mask) {
			if finalized[v] {
				continue
			}
			w, ok := gr.Weight(NewEdge(u, v))
			if !ok {
				continue
			}
			np := make([]NodeID, len(item.path)+1)
			copy(np, item.path)
			np[len(item.path)] = v
			heap.Push(h, dijkstraItem{dist: item.dist + w, path: np})
		}
	}
	return Path{}, fmt.Errorf("%w: %d -> %d", ErrNoPath, src, snk)
}

// ShortestPathUnweightedBidirectional returns the minimum-hop simple path
// from src to snk using bidirectional breadth-first search. It returns the
// path through the first meeting node found, expanding the smaller frontier
// each round, frontier nodes in discovery order and neighbors in ascending
// NodeID order. The result is deterministic, but among several minimum-hop
// paths it is not necessarily the lexicographically smallest node sequence.
// Returns ErrNoPath if unconnected.
func (gr *Graph) ShortestPathUnweightedBidirectional(src, snk NodeID) (Path, error) {
	return gr.shortestPathUnweightedMasked(src, snk, nil)
}

// ShortestPathUnweightedMasked is the masked variant used by backup repair.
func (gr *Graph) ShortestPathUnweightedMasked(src, snk NodeID, mask Mask) (Path, error) {
	return gr.shortestPathUnweightedMasked(src, snk, mask)
}

func (gr *Graph) shortestPathUnweightedMasked(src, snk NodeID, mask Mask) (Path, error) {
	if src == snk {
		return Path{Nodes: []NodeID{src}}, nil
	}

	fParent := map[NodeID]NodeID{src: src}
	bParent := map[NodeID]NodeID{snk: snk}
	fFrontier := []NodeID{src}
	bFrontier := []NodeID{snk}

	meet, ok := NodeID(0), false
	if _, same := fParent[snk]; same {
		meet, ok = snk, true
	}

	for !ok && len(fFrontier) > 0 && len(bFrontier) > 0 {
		if len(fFrontier) <= len(bFrontier) {
			fFrontier, ok, meet = expandFrontier(gr, fFrontier, fParent, bParent, mask)
		} else {
			bFrontier, ok, meet = expandFrontier(gr, bFrontier, bParent, fParent, mask)
		}
	}
	if !ok {
		return Path{}, fmt.Errorf("%w: %d -> %d", ErrNoPath, src, snk)
	}

	var fwd []NodeID
	for n := meet; ; {
		fwd = append([]NodeID{n}, fwd...)
		if n == src {
			break
		}
		n = fParent[n]
	}
	for n := bParent[meet]; ; {
		if n == meet {
			break
		}
		fwd = append(fwd, n)
		if n == snk {
			break
		}
		n = bParent[n]
	}
	return Path{Nodes: fwd}, nil
}

// expandFrontier advances one BFS layer of `own` (visiting neighbors in
// ascending NodeID order for determinism), recording parents in ownParent,
// and reports whether any newly-discovered node already has a parent in
// otherParent (i.e. the two searches have met).
func expandFrontier(gr *Graph, frontier []NodeID, ownParent, otherParent map[NodeID]NodeID, mask Mask) ([]NodeID, bool, NodeID) {
	var next []NodeID
	for _, u := range frontier {
		for _, v := range gr.maskedNeighbors(u, mask) {
			if _, seen := ownParent[v]; seen {
				continue
			}
			ownParent[v] = u
			next = append(next, v)
			if _, met := otherParent[v]; met {
				return next, true, v
			}
		}
	}
	return next, false, 0
}
