package pathengine

// DefaultPathCacheCapacity is the per-service FIFO depth used when an
// EngineConfig does not override it: large enough to behave as unbounded
// for any realistic per-service churn while still bounding memory.
const DefaultPathCacheCapacity = 256

// PathCache is a per-service, append-only FIFO of previously-used paths,
// consulted as a secondary fallback strategy once local recomputation has
// failed. It performs no validation of its own: a path it returns may
// reference edges that are no longer live, so callers must re-check edge
// membership against the current graph before adopting one.
type PathCache struct {
	capacity int
	paths    map[int][]Path
}

// NewPathCache returns a cache with the given per-service capacity. A
// capacity of 0 or less falls back to DefaultPathCacheCapacity.
func NewPathCache(capacity int) *PathCache {
	if capacity <= 0 {
		capacity = DefaultPathCacheCapacity
	}
	return &PathCache{capacity: capacity, paths: make(map[int][]Path)}
}

// Push appends p to s's FIFO, evicting the oldest entry once capacity is
// exceeded.
func (c *PathCache) Push(s int, p Path) {
	if len(p.Nodes) == 0 {
		return
	}
	q := append(c.paths[s], p)
	if len(q) > c.capacity {
		q = q[len(q)-c.capacity:]
	}
	c.paths[s] = q
}

// FindAvoiding returns the first stored path for s (oldest first) whose
// edge set does not contain e.
func (c *PathCache) FindAvoiding(s int, e Edge) (Path, bool) {
	for _, p := range c.paths[s] {
		if !containsEdge(p, e) {
			return p, true
		}
	}
	return Path{}, false
}

func containsEdge(p Path, e Edge) bool {
	for _, pe := range p.Edges() {
		if pe == e {
			return true
		}
	}
	return false
}
