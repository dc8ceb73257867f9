package engine

import (
	"testing"

	"github.com/Flyecnu/network-simulation3/pkg/pathengine"
)

func triangleLinks() []LinkRecord {
	return []LinkRecord{
		{Src: 1, Snk: 2, Weight: 1, Distance: 1},
		{Src: 2, Snk: 3, Weight: 1, Distance: 1},
		{Src: 1, Snk: 3, Weight: 3, Distance: 3},
	}
}

func TestLoadRejectsDuplicateLink(t *testing.T) {
	pe := NewPathEngine(nil)
	links := append(triangleLinks(), LinkRecord{Src: 2, Snk: 1, Weight: 9, Distance: 9})
	if err := pe.Load(links, nil); err == nil {
		t.Fatal("expected ErrDuplicateEdge loading a reversed duplicate link")
	}
}

func TestLoadComputesInitialWorkingPaths(t *testing.T) {
	pe := NewPathEngine(nil)
	services := []ServiceRecord{{Src: 1, Snk: 3, Attributes: map[string]any{"band": "C"}}}
	if err := pe.Load(triangleLinks(), services); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap := pe.Snapshot()
	if len(snap.WorkingPaths) != 1 {
		t.Fatalf("expected 1 working path, got %d", len(snap.WorkingPaths))
	}
	wp := snap.WorkingPaths[0]
	want := []pathengine.NodeID{1, 2, 3}
	if len(wp.Nodes) != 3 || wp.Nodes[0] != want[0] || wp.Nodes[1] != want[1] || wp.Nodes[2] != want[2] {
		t.Fatalf("expected initial path %v, got %v", want, wp.Nodes)
	}
	if len(snap.BackupPaths) != 2 {
		t.Fatalf("expected 2 backup entries, got %d", len(snap.BackupPaths))
	}
}

func TestSnapshotIsMemoizedAcrossRevisions(t *testing.T) {
	pe := NewPathEngine(nil)
	if err := pe.Load(triangleLinks(), []ServiceRecord{{Src: 1, Snk: 3}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := pe.Snapshot()
	second := pe.Snapshot()
	if hits, _ := pe.snapshot.stats(); hits == 0 {
		t.Fatal("expected the second Snapshot() call to hit the revision cache")
	}
	if len(first.WorkingPaths) != len(second.WorkingPaths) {
		t.Fatal("expected identical snapshots before any mutating event")
	}

	if _, err := pe.SimulateFailure(1, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	third := pe.Snapshot()
	if len(third.FailedEdges) != 1 {
		t.Fatalf("expected 1 failed edge recorded after mutation, got %d", len(third.FailedEdges))
	}
}

func TestSimulateRecoveryRejectsLiveEdge(t *testing.T) {
	pe := NewPathEngine(nil)
	if err := pe.Load(triangleLinks(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := pe.SimulateRecovery(1, 2); err == nil {
		t.Fatal("expected error recovering a live edge")
	}
}
