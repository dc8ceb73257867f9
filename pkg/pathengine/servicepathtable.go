package pathengine

import "sort"

// ServicePathTable maps a service index to its current working path. A
// service absent from the table has no working path (the engine could not
// find one, or never tried).
type ServicePathTable struct {
	paths map[int]Path
}

// NewServicePathTable returns an empty table.
func NewServicePathTable() *ServicePathTable {
	return &ServicePathTable{paths: make(map[int]Path)}
}

// Get returns the working path for s and whether one is present.
func (t *ServicePathTable) Get(s int) (Path, bool) {
	p, ok := t.paths[s]
	return p, ok
}

// Set atomically replaces the working path for s. It does not by itself
// update EdgeServiceIndex; callers that need the two kept in sync should use
// FailureController.setWorkingPath, which calls Set and then applies the
// old-versus-new edge delta to the index.
func (t *ServicePathTable) Set(s int, p Path) {
	t.paths[s] = p
}

// Clear removes the working path for s entirely (the service is left
// without a route).
func (t *ServicePathTable) Clear(s int) {
	delete(t.paths, s)
}

// Iter returns every (service index, path) pair in ascending service-index
// order, the ordering invariant the rest of the package relies on for
// deterministic scans.
func (t *ServicePathTable) Iter() []ServicePath {
	out := make([]ServicePath, 0, len(t.paths))
	for s, p := range t.paths {
		out = append(out, ServicePath{Service: s, Path: p})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Service < out[j].Service })
	return out
}

// ServicePath pairs a service index with its working path, used by Iter.
type ServicePath struct {
	Service int
	Path    Path
}
