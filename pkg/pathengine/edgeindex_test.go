package pathengine

import (
	"reflect"
	"testing"

	"github.com/Flyecnu/network-simulation3/pkg/graph"
)

func TestEdgeServiceIndexRebuildAndQuery(t *testing.T) {
	table := NewServicePathTable()
	table.Set(0, pathOf(1, 2, 3))
	table.Set(1, pathOf(2, 3, 4))

	ix := NewEdgeServiceIndex()
	ix.Rebuild(table)

	if got := ix.Services(graph.NewEdge(2, 3)); !reflect.DeepEqual(got, []int{0, 1}) {
		t.Fatalf("expected [0 1] on shared edge, got %v", got)
	}
	if got := ix.Services(graph.NewEdge(1, 2)); !reflect.DeepEqual(got, []int{0}) {
		t.Fatalf("expected [0], got %v", got)
	}
	if got := ix.Services(graph.NewEdge(99, 100)); got != nil {
		t.Fatalf("expected nil for unknown edge, got %v", got)
	}
}

func TestEdgeServiceIndexUpdateAppliesDelta(t *testing.T) {
	ix := NewEdgeServiceIndex()
	old := pathOf(1, 2, 3)
	next := pathOf(1, 4, 3)
	ix.Add(graph.NewEdge(1, 2), 0)
	ix.Add(graph.NewEdge(2, 3), 0)

	ix.Update(0, old, next)

	if got := ix.Services(graph.NewEdge(1, 2)); got != nil {
		t.Fatalf("expected (1,2) dropped, got %v", got)
	}
	if got := ix.Services(graph.NewEdge(1, 4)); !reflect.DeepEqual(got, []int{0}) {
		t.Fatalf("expected [0] on new edge (1,4), got %v", got)
	}
}
