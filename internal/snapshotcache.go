package engine

import (
	lru "github.com/hashicorp/golang-lru"
)

// snapshotCache memoizes Snapshot values by an opaque revision key, one
// entry per revision. The engine bumps the revision on every structural
// mutation, so only the entry for the current revision is ever read again;
// entries for older revisions are not purged but simply age out under ARC
// eviction. ARC's recency-based eviction is a fine policy here even though
// it would be wrong for pathengine.PathCache (see DESIGN.md): there is
// never more than one revision worth keeping around at once.
type snapshotCache struct {
	cache  *lru.ARCCache
	hits   int64
	misses int64
}

func newSnapshotCache(size int) *snapshotCache {
	if size <= 0 {
		size = 8
	}
	c, _ := lru.NewARC(size)
	return &snapshotCache{cache: c}
}

func (sc *snapshotCache) get(revision uint64) (Snapshot, bool) {
	v, ok := sc.cache.Get(revision)
	if !ok {
		sc.misses++
		return Snapshot{}, false
	}
	sc.hits++
	return v.(Snapshot), true
}

func (sc *snapshotCache) put(revision uint64, snap Snapshot) {
	sc.cache.Add(revision, snap)
}

// stats reports cumulative hit/miss counts, exposed for diagnostics.
func (sc *snapshotCache) stats() (hits, misses int64) {
	return sc.hits, sc.misses
}
