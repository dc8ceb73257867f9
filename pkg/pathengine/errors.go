package pathengine

import (
	"errors"
	"fmt"

	"github.com/Flyecnu/network-simulation3/pkg/graph"
)

// Sentinel error kinds. Every wrapping
// fmt.Errorf call names the edge or service involved so messages stay
// descriptive even when callers only check errors.Is.
var (
	// ErrEdgeNotInGraph mirrors graph.ErrEdgeNotFound at this package's
	// boundary: it is returned when a failure event names an edge that was
	// never added to the graph.
	ErrEdgeNotInGraph = errors.New("edge not in graph")
	// ErrDuplicateEdge is surfaced during load when two link records name
	// the same unordered pair. It is the same value as graph.ErrDuplicateEdge.
	ErrDuplicateEdge = graph.ErrDuplicateEdge
	// ErrNoPath never leaves this package: it is swallowed by the fallback
	// ladders and only ever observed internally as "try the next strategy".
	// It is the same value as graph.ErrNoPath.
	ErrNoPath = graph.ErrNoPath
	// ErrInvalidEvent is returned when a failure or recovery event violates
	// its state-machine precondition (failing an already-failed edge,
	// recovering an edge that is not failed, including one unknown to the
	// graph, or naming a self-loop).
	ErrInvalidEvent = errors.New("invalid event")
)

func errEdgeNotInGraph(e Edge) error {
	return fmt.Errorf("%w: edge %s", ErrEdgeNotInGraph, e)
}

func errInvalidEvent(e Edge, reason string) error {
	return fmt.Errorf("%w: edge %s: %s", ErrInvalidEvent, e, reason)
}
