// Package pathengine implements the working/backup path bookkeeping and the
// failure-handling state machine that sits on top of pkg/graph: the
// ServicePathTable, BackupMatrix, EdgeServiceIndex, PathCache and
// FailureController described for the network's service routing layer.
package pathengine

import "github.com/Flyecnu/network-simulation3/pkg/graph"

// NodeID, Edge and Path are re-exported from pkg/graph so callers of this
// package never need to import graph directly for the common case.
type (
	NodeID = graph.NodeID
	Edge   = graph.Edge
	Path   = graph.Path
)

// Service is a request to carry traffic from Src to Snk. Index is the
// stable, zero-based identifier assigned at load time and is the ordering
// key every deterministic scan in this package uses. Attributes carries
// loader-supplied data (OTU type, band, color ranges, relay affinities) that
// is opaque to path selection.
type Service struct {
	Index      int
	Src        NodeID
	Snk        NodeID
	Attributes map[string]any
}
