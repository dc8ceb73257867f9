package graph

import "testing"

func TestAddEdgeRejectsDuplicate(t *testing.T) {
	g := New()
	if err := g.AddEdge(1, 2, 1, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := g.AddEdge(2, 1, 5, 5); err == nil {
		t.Fatal("expected ErrDuplicateEdge for reversed duplicate pair")
	}
}

func TestRemoveRestoreEdgeIsLossless(t *testing.T) {
	g := New()
	if err := g.AddEdge(1, 2, 3.5, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e := NewEdge(1, 2)

	if err := g.RemoveEdge(e); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.HasEdge(e) {
		t.Fatal("edge should be absent after RemoveEdge")
	}
	if err := g.RestoreEdge(e); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !g.HasEdge(e) {
		t.Fatal("edge should be present after RestoreEdge")
	}
	w, ok := g.Weight(e)
	if !ok || w != 3.5 {
		t.Fatalf("expected weight 3.5 preserved across restore, got %v (ok=%v)", w, ok)
	}
	d, ok := g.Distance(e)
	if !ok || d != 10 {
		t.Fatalf("expected distance 10 preserved across restore, got %v (ok=%v)", d, ok)
	}
}

func TestRemoveUnknownEdgeFails(t *testing.T) {
	g := New()
	if err := g.RemoveEdge(NewEdge(1, 2)); err == nil {
		t.Fatal("expected ErrEdgeNotFound")
	}
}

func TestRestoreUnknownEdgeFails(t *testing.T) {
	g := New()
	if err := g.RestoreEdge(NewEdge(1, 2)); err == nil {
		t.Fatal("expected ErrEdgeNotFound")
	}
}
