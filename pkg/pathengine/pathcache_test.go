package pathengine

import (
	"testing"

	"github.com/Flyecnu/network-simulation3/pkg/graph"
)

func pathOf(nodes ...NodeID) Path { return Path{Nodes: nodes} }

func TestPathCacheFindAvoidingReturnsOldestMatch(t *testing.T) {
	c := NewPathCache(4)
	c.Push(0, pathOf(1, 2, 3))
	c.Push(0, pathOf(1, 4, 3))

	p, ok := c.FindAvoiding(0, graph.NewEdge(1, 2))
	if !ok {
		t.Fatal("expected a cached path avoiding (1,2)")
	}
	if p.Nodes[1] != 4 {
		t.Fatalf("expected the second pushed path [1 4 3], got %v", p.Nodes)
	}
}

func TestPathCacheFindAvoidingNoMatch(t *testing.T) {
	c := NewPathCache(4)
	c.Push(0, pathOf(1, 2, 3))
	if _, ok := c.FindAvoiding(0, graph.NewEdge(1, 2)); ok {
		t.Fatal("expected no cached path avoids (1,2)")
	}
}

func TestPathCacheEvictsOldestBeyondCapacity(t *testing.T) {
	c := NewPathCache(1)
	c.Push(0, pathOf(1, 2))
	c.Push(0, pathOf(1, 3))
	p, ok := c.FindAvoiding(0, graph.NewEdge(9, 9999))
	if !ok || p.Nodes[1] != 3 {
		t.Fatalf("expected only the most recent path to remain, got %v (ok=%v)", p, ok)
	}
}
