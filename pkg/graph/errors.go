package graph

import "errors"

// Sentinel error kinds. Callers use errors.Is against these; the wrapping
// fmt.Errorf call always names the edge involved.
var (
	// ErrEdgeNotFound is returned when an operation references an edge that
	// is not currently present in the graph.
	ErrEdgeNotFound = errors.New("edge not in graph")
	// ErrDuplicateEdge is returned by AddEdge when the unordered pair already
	// exists.
	ErrDuplicateEdge = errors.New("duplicate edge")
	// ErrNoPath is returned by the shortest-path queries when source and
	// sink are not connected. Callers in pkg/pathengine treat this as "try
	// the next fallback strategy", never as a propagated failure.
	ErrNoPath = errors.New("no path between nodes")
)
