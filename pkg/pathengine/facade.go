package pathengine

import "github.com/Flyecnu/network-simulation3/pkg/graph"

// SimulationFacade is the sole entry point external callers use to inject
// failure and recovery events. It rejects a self-loop {a, a} with
// ErrInvalidEvent, canonicalizes its edge argument, and delegates to a
// FailureController, whose OnFailure/OnRecovery check the state-machine
// preconditions; internal code downstream of this boundary may assume
// every edge it sees is already canonical.
type SimulationFacade struct {
	controller *FailureController
}

// NewSimulationFacade wraps a FailureController.
func NewSimulationFacade(fc *FailureController) *SimulationFacade {
	return &SimulationFacade{controller: fc}
}

// SimulateFailure canonicalizes {a, b} and applies a failure event.
func (f *SimulationFacade) SimulateFailure(a, b NodeID) (EventSummary, error) {
	if a == b {
		return EventSummary{}, errInvalidEvent(Edge{From: a, To: b}, "self-loop")
	}
	return f.controller.OnFailure(graph.NewEdge(a, b))
}

// SimulateRecovery canonicalizes {a, b} and applies a recovery event.
func (f *SimulationFacade) SimulateRecovery(a, b NodeID) (EventSummary, error) {
	if a == b {
		return EventSummary{}, errInvalidEvent(Edge{From: a, To: b}, "self-loop")
	}
	return f.controller.OnRecovery(graph.NewEdge(a, b))
}
