package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Flyecnu/network-simulation3/pkg/graph"
	"github.com/Flyecnu/network-simulation3/pkg/pathengine"
)

// LinkRecord is one row of loader input describing an undirected link.
type LinkRecord struct {
	Src      pathengine.NodeID
	Snk      pathengine.NodeID
	Weight   float64
	Distance float64
}

// ServiceRecord is one row of loader input describing a service request.
// Attributes is opaque loader-supplied data (OTU type, band, color ranges,
// relay affinities) carried through without influencing path selection.
type ServiceRecord struct {
	Src        pathengine.NodeID
	Snk        pathengine.NodeID
	Attributes map[string]any
}

// PathEngine owns the graph and every pkg/pathengine table for one network.
// It is the sole object external code interacts with: construct via Load,
// drive failures/recoveries via SimulateFailure/SimulateRecovery, and read
// state back via Snapshot.
type PathEngine struct {
	config *EngineConfig
	logger *zap.Logger

	g        *graph.Graph
	services []pathengine.Service
	table    *pathengine.ServicePathTable
	backups  *pathengine.BackupMatrix
	index    *pathengine.EdgeServiceIndex
	cache    *pathengine.PathCache
	ctrl     *pathengine.FailureController
	facade   *pathengine.SimulationFacade

	revision uint64
	snapshot *snapshotCache
}

// NewPathEngine returns an engine with no topology loaded yet. Call Load
// before issuing any events.
func NewPathEngine(config *EngineConfig) *PathEngine {
	if config == nil {
		config = DefaultEngineConfig()
	}
	return &PathEngine{
		config:   config,
		logger:   config.Logger,
		snapshot: newSnapshotCache(config.SnapshotCacheSize),
	}
}

// Load builds the graph from links, assigns zero-based service indices in
// the order given, computes each service's initial working path (weighted
// shortest path), builds the reverse index, and precomputes one backup
// entry per edge of every working path. Returns ErrDuplicateEdge if two
// links name the same unordered pair.
func (pe *PathEngine) Load(links []LinkRecord, serviceRecords []ServiceRecord) error {
	g := graph.New()
	for _, l := range links {
		if err := g.AddEdge(l.Src, l.Snk, l.Weight, l.Distance); err != nil {
			return fmt.Errorf("engine: loading link (%d,%d): %w", l.Src, l.Snk, err)
		}
	}

	services := make([]pathengine.Service, len(serviceRecords))
	for i, sr := range serviceRecords {
		services[i] = pathengine.Service{Index: i, Src: sr.Src, Snk: sr.Snk, Attributes: sr.Attributes}
	}

	table := pathengine.NewServicePathTable()
	for _, s := range services {
		if p, err := g.ShortestPathWeighted(s.Src, s.Snk); err == nil {
			table.Set(s.Index, p)
		}
	}

	index := pathengine.NewEdgeServiceIndex()
	index.Rebuild(table)

	backups := pathengine.NewBackupMatrix()
	for _, s := range services {
		path, ok := table.Get(s.Index)
		if !ok {
			continue
		}
		for _, e := range path.Edges() {
			mask := func(x pathengine.Edge) bool { return x == e }
			if bp, err := g.ShortestPathWeightedMasked(s.Src, s.Snk, mask); err == nil {
				backups.Set(s.Index, e, bp)
			}
		}
	}

	cache := pathengine.NewPathCache(pe.config.PathCacheCapacity)
	ctrl := pathengine.NewFailureController(g, services, table, backups, index, cache, pe.logger)

	pe.g = g
	pe.services = services
	pe.table = table
	pe.backups = backups
	pe.index = index
	pe.cache = cache
	pe.ctrl = ctrl
	pe.facade = pathengine.NewSimulationFacade(ctrl)
	pe.revision++

	pe.logger.Info("engine loaded",
		zap.Int("nodes", len(g.Nodes())),
		zap.Int("edges", len(g.Edges())),
		zap.Int("services", len(services)),
	)
	return nil
}

// SimulateFailure fails the edge {a, b}.
func (pe *PathEngine) SimulateFailure(a, b pathengine.NodeID) (pathengine.EventSummary, error) {
	summary, err := pe.facade.SimulateFailure(a, b)
	if err == nil {
		pe.revision++
	}
	return summary, err
}

// SimulateRecovery recovers the edge {a, b}.
func (pe *PathEngine) SimulateRecovery(a, b pathengine.NodeID) (pathengine.EventSummary, error) {
	summary, err := pe.facade.SimulateRecovery(a, b)
	if err == nil {
		pe.revision++
	}
	return summary, err
}

// Snapshot returns the current plain-value persistence output. Repeated
// calls between mutating events are served from the ARC-backed snapshot
// cache rather than rebuilt from the live tables.
func (pe *PathEngine) Snapshot() Snapshot {
	if snap, ok := pe.snapshot.get(pe.revision); ok {
		return snap
	}
	snap := pe.buildSnapshot()
	pe.snapshot.put(pe.revision, snap)
	return snap
}

func (pe *PathEngine) buildSnapshot() Snapshot {
	var working []WorkingPathRecord
	for _, sp := range pe.table.Iter() {
		working = append(working, WorkingPathRecord{
			Service: sp.Service,
			Nodes:   sp.Path.Nodes,
			Edges:   edgeKeys(sp.Path.Edges()),
		})
	}

	var backups []BackupPathRecord
	for _, s := range pe.backups.Services() {
		for _, be := range pe.backups.Iter(s) {
			backups = append(backups, BackupPathRecord{
				Service: s,
				Edge:    be.Edge.Key(),
				Nodes:   be.Path.Nodes,
				Edges:   edgeKeys(be.Path.Edges()),
			})
		}
	}

	var edgeIdx []EdgeServiceRecord
	for _, e := range pe.index.All() {
		edgeIdx = append(edgeIdx, EdgeServiceRecord{Edge: e.Key(), Services: pe.index.Services(e)})
	}

	failedKeys := edgeKeys(pe.ctrl.FailedEdges())

	return Snapshot{
		WorkingPaths:     working,
		BackupPaths:      backups,
		EdgeServiceIndex: edgeIdx,
		FailedEdges:      failedKeys,
	}
}

// Graph exposes the underlying topology for read-only inspection (e.g. a
// host wanting HasEdge before issuing an event through the facade).
func (pe *PathEngine) Graph() *graph.Graph { return pe.g }

// Services returns the loaded service list in index order.
func (pe *PathEngine) Services() []pathengine.Service { return pe.services }
