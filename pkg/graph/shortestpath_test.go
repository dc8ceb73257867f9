package graph

import (
	"reflect"
	"testing"
)

func triangleGraph(t *testing.T) *Graph {
	t.Helper()
	g := New()
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	must(g.AddEdge(1, 2, 1, 1))
	must(g.AddEdge(2, 3, 1, 1))
	must(g.AddEdge(1, 3, 3, 3))
	return g
}

func TestShortestPathWeightedPrefersLowerWeight(t *testing.T) {
	g := triangleGraph(t)
	p, err := g.ShortestPathWeighted(1, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []NodeID{1, 2, 3}
	if !reflect.DeepEqual(p.Nodes, want) {
		t.Fatalf("expected %v, got %v", want, p.Nodes)
	}
}

func TestShortestPathWeightedMaskedFallsBackToDirectEdge(t *testing.T) {
	g := triangleGraph(t)
	mask := func(e Edge) bool { return e == NewEdge(1, 2) }
	p, err := g.ShortestPathWeightedMasked(1, 3, mask)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []NodeID{1, 3}
	if !reflect.DeepEqual(p.Nodes, want) {
		t.Fatalf("expected %v, got %v", want, p.Nodes)
	}
}

func TestShortestPathUnweightedBidirectionalHopCount(t *testing.T) {
	g := New()
	for _, e := range [][2]NodeID{{1, 2}, {2, 3}, {3, 4}, {1, 4}} {
		if err := g.AddEdge(e[0], e[1], 1, 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	p, err := g.ShortestPathUnweightedBidirectional(1, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Nodes) != 3 {
		t.Fatalf("expected a 2-hop path, got %v", p.Nodes)
	}
}

func TestShortestPathNoPath(t *testing.T) {
	g := New()
	if err := g.AddEdge(1, 2, 1, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := g.AddEdge(3, 4, 1, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := g.ShortestPathWeighted(1, 3); err == nil {
		t.Fatal("expected ErrNoPath for disconnected components")
	}
	if _, err := g.ShortestPathUnweightedBidirectional(1, 3); err == nil {
		t.Fatal("expected ErrNoPath for disconnected components")
	}
}

func TestEdgesDerivedFromPath(t *testing.T) {
	p := Path{Nodes: []NodeID{1, 2, 3}}
	want := []Edge{NewEdge(1, 2), NewEdge(2, 3)}
	if !reflect.DeepEqual(p.Edges(), want) {
		t.Fatalf("expected %v, got %v", want, p.Edges())
	}
}
