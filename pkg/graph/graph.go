package graph

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph/simple"
)

// attrs holds the per-edge data: weight feeds Dijkstra, distance is carried
// but never used for path selection.
type attrs struct {
	weight   float64
	distance float64
}

// Graph is an undirected weighted network topology with no parallel edges.
// Node/edge storage is delegated to gonum's simple.WeightedUndirectedGraph;
// the shortest-path algorithms in shortestpath.go are hand-written on top of
// it rather than using gonum/graph/path, so this package can pin a
// deterministic tie-break (see shortestpath.go).
type Graph struct {
	g       *simple.WeightedUndirectedGraph
	live    map[Edge]attrs
	removed map[Edge]attrs
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		g:       simple.NewWeightedUndirectedGraph(0, 0),
		live:    make(map[Edge]attrs),
		removed: make(map[Edge]attrs),
	}
}

func (gr *Graph) ensureNode(id NodeID) {
	n := simple.Node(id)
	if gr.g.Node(int64(id)) == nil {
		gr.g.AddNode(n)
	}
}

// AddEdge inserts the canonical edge {a, b} with the given weight and
// distance. Returns ErrDuplicateEdge if the unordered pair already exists.
func (gr *Graph) AddEdge(a, b NodeID, weight, distance float64) error {
	e := NewEdge(a, b)
	if _, ok := gr.live[e]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateEdge, e)
	}
	gr.ensureNode(e.From)
	gr.ensureNode(e.To)
	we := gr.g.NewWeightedEdge(simple.Node(e.From), simple.Node(e.To), weight)
	gr.g.SetWeightedEdge(we)
	gr.live[e] = attrs{weight: weight, distance: distance}
	delete(gr.removed, e)
	return nil
}

// RemoveEdge takes the edge out of the live graph, remembering its
// attributes so RestoreEdge can bring it back losslessly.
func (gr *Graph) RemoveEdge(e Edge) error {
	a, ok := gr.live[e]
	if !ok {
		return fmt.Errorf("%w: %s", ErrEdgeNotFound, e)
	}
	gr.g.RemoveEdge(int64(e.From), int64(e.To))
	delete(gr.live, e)
	gr.removed[e] = a
	return nil
}

// RestoreEdge reinserts an edge previously taken out with RemoveEdge, with
// its original weight and distance.
func (gr *Graph) RestoreEdge(e Edge) error {
	a, ok := gr.removed[e]
	if !ok {
		return fmt.Errorf("%w: %s", ErrEdgeNotFound, e)
	}
	gr.ensureNode(e.From)
	gr.ensureNode(e.To)
	we := gr.g.NewWeightedEdge(simple.Node(e.From), simple.Node(e.To), a.weight)
	gr.g.SetWeightedEdge(we)
	gr.live[e] = a
	delete(gr.removed, e)
	return nil
}

// HasEdge reports whether e is currently present in the live graph.
func (gr *Graph) HasEdge(e Edge) bool {
	_, ok := gr.live[e]
	return ok
}

// Weight returns the weight of a live edge.
func (gr *Graph) Weight(e Edge) (float64, bool) {
	a, ok := gr.live[e]
	return a.weight, ok
}

// Distance returns the carried, selection-irrelevant distance of a live edge.
func (gr *Graph) Distance(e Edge) (float64, bool) {
	a, ok := gr.live[e]
	return a.distance, ok
}

// Neighbors returns the live neighbors of id in ascending NodeID order.
func (gr *Graph) Neighbors(id NodeID) []NodeID {
	it := gr.g.From(int64(id))
	out := make([]NodeID, 0, it.Len())
	for it.Next() {
		out = append(out, NodeID(it.Node().ID()))
	}
	sortNodeIDs(out)
	return out
}

// Nodes returns every node currently known to the graph, in ascending order.
func (gr *Graph) Nodes() []NodeID {
	it := gr.g.Nodes()
	out := make([]NodeID, 0, it.Len())
	for it.Next() {
		out = append(out, NodeID(it.Node().ID()))
	}
	sortNodeIDs(out)
	return out
}

// Edges returns every live edge, in canonical ascending order.
func (gr *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(gr.live))
	for e := range gr.live {
		out = append(out, e)
	}
	sortEdges(out)
	return out
}

func sortNodeIDs(ids []NodeID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}

func sortEdges(es []Edge) {
	sort.Slice(es, func(i, j int) bool {
		if es[i].From != es[j].From {
			return es[i].From < es[j].From
		}
		return es[i].To < es[j].To
	})
}
