package pathengine

import "sort"

// BackupMatrix maps a service to, for each edge on its working path, a
// precomputed protection path that avoids that edge. An entry is never
// stored for a path that itself contains the edge it is keyed on.
type BackupMatrix struct {
	entries map[int]map[Edge]Path
}

// NewBackupMatrix returns an empty matrix.
func NewBackupMatrix() *BackupMatrix {
	return &BackupMatrix{entries: make(map[int]map[Edge]Path)}
}

// Get returns the backup path for (s, e), if present.
func (b *BackupMatrix) Get(s int, e Edge) (Path, bool) {
	m, ok := b.entries[s]
	if !ok {
		return Path{}, false
	}
	p, ok := m[e]
	return p, ok
}

// Set records a backup path for (s, e).
func (b *BackupMatrix) Set(s int, e Edge, p Path) {
	m, ok := b.entries[s]
	if !ok {
		m = make(map[Edge]Path)
		b.entries[s] = m
	}
	m[e] = p
}

// Drop removes a single backup entry for (s, e).
func (b *BackupMatrix) Drop(s int, e Edge) {
	m, ok := b.entries[s]
	if !ok {
		return
	}
	delete(m, e)
	if len(m) == 0 {
		delete(b.entries, s)
	}
}

// DropService removes every backup entry belonging to s, used before a full
// rebuild after a working-path change.
func (b *BackupMatrix) DropService(s int) {
	delete(b.entries, s)
}

// Iter returns the (edge, path) entries for service s, in ascending edge
// order, for deterministic scanning.
func (b *BackupMatrix) Iter(s int) []BackupEntry {
	m := b.entries[s]
	out := make([]BackupEntry, 0, len(m))
	for e, p := range m {
		out = append(out, BackupEntry{Edge: e, Path: p})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Edge.From != out[j].Edge.From {
			return out[i].Edge.From < out[j].Edge.From
		}
		return out[i].Edge.To < out[j].Edge.To
	})
	return out
}

// Services returns every service index that has at least one backup entry,
// in ascending order. Used by the failed-edge scan in the failure state
// machine.
func (b *BackupMatrix) Services() []int {
	out := make([]int, 0, len(b.entries))
	for s := range b.entries {
		out = append(out, s)
	}
	sort.Ints(out)
	return out
}

// BackupEntry pairs an edge with its backup path, used by Iter.
type BackupEntry struct {
	Edge Edge
	Path Path
}
