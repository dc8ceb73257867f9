package pathengine

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/Flyecnu/network-simulation3/pkg/graph"
)

// EventSummary reports the effect of a single failure or recovery event.
type EventSummary struct {
	WorkingPathsChanged   int
	BackupEntriesRepaired int
	Elapsed               time.Duration
}

// FailureController owns the failure/recovery state machine: it applies the
// working-path selection ladder and the backup-repair ladder, and keeps
// ServicePathTable, BackupMatrix and EdgeServiceIndex consistent with the
// live graph on every transition.
type FailureController struct {
	g        *graph.Graph
	services []Service
	table    *ServicePathTable
	backups  *BackupMatrix
	index    *EdgeServiceIndex
	cache    *PathCache
	failed   map[Edge]struct{}
	logger   *zap.Logger
}

// NewFailureController wires a controller over an already-populated graph
// and tables. services must be ordered and indexed so services[i].Index==i;
// a nil logger defaults to a no-op logger.
func NewFailureController(g *graph.Graph, services []Service, table *ServicePathTable, backups *BackupMatrix, index *EdgeServiceIndex, cache *PathCache, logger *zap.Logger) *FailureController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FailureController{
		g:        g,
		services: services,
		table:    table,
		backups:  backups,
		index:    index,
		cache:    cache,
		failed:   make(map[Edge]struct{}),
		logger:   logger,
	}
}

// IsFailed reports whether e is currently in the Failed state.
func (fc *FailureController) IsFailed(e Edge) bool {
	_, ok := fc.failed[e]
	return ok
}

// FailedEdges returns every edge currently in the Failed state, in canonical
// ascending order.
func (fc *FailureController) FailedEdges() []Edge {
	out := make([]Edge, 0, len(fc.failed))
	for e := range fc.failed {
		out = append(out, e)
	}
	sortEdgesLocal(out)
	return out
}

func sortEdgesLocal(es []Edge) {
	sort.Slice(es, func(i, j int) bool {
		if es[i].From != es[j].From {
			return es[i].From < es[j].From
		}
		return es[i].To < es[j].To
	})
}

func maskEdge(e Edge) graph.Mask {
	return func(x Edge) bool { return x == e }
}

func liveUnderMask(p Path, g *graph.Graph, mask graph.Mask) bool {
	for _, e := range p.Edges() {
		if mask != nil && mask(e) {
			return false
		}
		if !g.HasEdge(e) {
			return false
		}
	}
	return true
}

// selectWorkingPath applies the working-path selection ladder:
// precomputed backup, then local bidirectional-BFS recompute, then cache,
// then weighted Dijkstra recompute.
func (fc *FailureController) selectWorkingPath(svc Service, failedEdge Edge) (Path, bool) {
	if backup, ok := fc.backups.Get(svc.Index, failedEdge); ok && liveUnderMask(backup, fc.g, nil) {
		return backup, true
	}
	if p, err := fc.g.ShortestPathUnweightedBidirectional(svc.Src, svc.Snk); err == nil {
		return p, true
	}
	if p, ok := fc.cache.FindAvoiding(svc.Index, failedEdge); ok && liveUnderMask(p, fc.g, nil) {
		return p, true
	}
	if p, err := fc.g.ShortestPathWeighted(svc.Src, svc.Snk); err == nil {
		return p, true
	}
	return Path{}, false
}

// repairBackupEntry applies the backup-repair ladder: local
// bidirectional-BFS recompute excluding e, then cache, then weighted
// Dijkstra recompute — deliberately with no backup-first step.
func (fc *FailureController) repairBackupEntry(svc Service, e Edge) (Path, bool) {
	mask := maskEdge(e)
	if p, err := fc.g.ShortestPathUnweightedMasked(svc.Src, svc.Snk, mask); err == nil {
		return p, true
	}
	if p, ok := fc.cache.FindAvoiding(svc.Index, e); ok && liveUnderMask(p, fc.g, mask) {
		return p, true
	}
	if p, err := fc.g.ShortestPathWeightedMasked(svc.Src, svc.Snk, mask); err == nil {
		return p, true
	}
	return Path{}, false
}

// setWorkingPath pushes the old path (if any) into the cache, replaces the
// table entry, and applies the incremental EdgeServiceIndex delta.
func (fc *FailureController) setWorkingPath(s int, newPath Path, old Path, hadOld bool) {
	if hadOld {
		fc.cache.Push(s, old)
	}
	var oldForIndex Path
	if hadOld {
		oldForIndex = old
	}
	fc.table.Set(s, newPath)
	fc.index.Update(s, oldForIndex, newPath)
}

// rebuildBackups discards every existing backup entry for svc (pushing each
// into the cache first) and recomputes one entry per edge of the new
// working path.
func (fc *FailureController) rebuildBackups(svc Service, path Path) {
	for _, be := range fc.backups.Iter(svc.Index) {
		fc.cache.Push(svc.Index, be.Path)
	}
	fc.backups.DropService(svc.Index)
	for _, e := range path.Edges() {
		if p, ok := fc.repairBackupEntry(svc, e); ok {
			fc.backups.Set(svc.Index, e, p)
		}
	}
}

// OnFailure transitions e from Live to Failed. Rejects an edge that is
// already Failed or was never added to the graph.
func (fc *FailureController) OnFailure(e Edge) (EventSummary, error) {
	start := time.Now()
	if fc.IsFailed(e) {
		return EventSummary{}, errInvalidEvent(e, "already failed")
	}
	if !fc.g.HasEdge(e) {
		return EventSummary{}, errEdgeNotInGraph(e)
	}
	if err := fc.g.RemoveEdge(e); err != nil {
		return EventSummary{}, errInvalidEvent(e, err.Error())
	}
	fc.failed[e] = struct{}{}

	directlyAffected := fc.index.Services(e)
	handled := make(map[int]bool, len(directlyAffected))
	changed, repaired := 0, 0

	for _, s := range directlyAffected {
		handled[s] = true
		svc := fc.services[s]
		old, hadOld := fc.table.Get(s)
		if newPath, ok := fc.selectWorkingPath(svc, e); ok {
			fc.setWorkingPath(s, newPath, old, hadOld)
			fc.rebuildBackups(svc, newPath)
			changed++
			continue
		}
		if hadOld {
			fc.cache.Push(s, old)
			fc.index.Update(s, old, Path{})
		}
		fc.table.Clear(s)
		fc.backups.DropService(s)
	}

	for _, s := range fc.backups.Services() {
		if handled[s] {
			continue
		}
		oldBackup, ok := fc.backups.Get(s, e)
		if !ok {
			continue
		}
		svc := fc.services[s]
		if newBackup, ok := fc.repairBackupEntry(svc, e); ok {
			fc.cache.Push(s, oldBackup)
			fc.backups.Set(s, e, newBackup)
			repaired++
		} else {
			fc.backups.Drop(s, e)
		}
	}

	summary := EventSummary{WorkingPathsChanged: changed, BackupEntriesRepaired: repaired, Elapsed: time.Since(start)}
	fc.logger.Info("edge failed",
		zap.String("edge", e.Key()),
		zap.Int("working_paths_changed", summary.WorkingPathsChanged),
		zap.Int("backup_entries_repaired", summary.BackupEntriesRepaired),
		zap.Duration("elapsed", summary.Elapsed),
	)
	return summary, nil
}

// OnRecovery transitions e from Failed back to Live. It never re-optimizes
// any working or backup path: it only restores the edge to the graph and
// clears it from the failed set. Recovery never recomputes a working or
// backup path.
func (fc *FailureController) OnRecovery(e Edge) (EventSummary, error) {
	start := time.Now()
	if !fc.IsFailed(e) {
		return EventSummary{}, errInvalidEvent(e, "edge not failed")
	}
	if err := fc.g.RestoreEdge(e); err != nil {
		return EventSummary{}, errInvalidEvent(e, err.Error())
	}
	delete(fc.failed, e)

	summary := EventSummary{Elapsed: time.Since(start)}
	fc.logger.Info("edge recovered", zap.String("edge", e.Key()), zap.Duration("elapsed", summary.Elapsed))
	return summary, nil
}
