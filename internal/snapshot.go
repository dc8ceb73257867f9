package engine

import "github.com/Flyecnu/network-simulation3/pkg/pathengine"

// WorkingPathRecord is one row of the working_paths persistence output.
type WorkingPathRecord struct {
	Service int                 `json:"service"`
	Nodes   []pathengine.NodeID `json:"nodes"`
	Edges   []string            `json:"edges"`
}

// BackupPathRecord is one row of the backup_paths persistence output.
type BackupPathRecord struct {
	Service int                 `json:"service"`
	Edge    string              `json:"edge"`
	Nodes   []pathengine.NodeID `json:"nodes"`
	Edges   []string            `json:"edges"`
}

// EdgeServiceRecord is one row of the edge_service_index persistence output.
type EdgeServiceRecord struct {
	Edge     string `json:"edge"`
	Services []int  `json:"services"`
}

// Snapshot is the complete, plain-value persistence output: a
// point-in-time read-only view suitable for a
// collaborator to serialize without exposing any engine internals.
type Snapshot struct {
	WorkingPaths     []WorkingPathRecord `json:"working_paths"`
	BackupPaths      []BackupPathRecord  `json:"backup_paths"`
	EdgeServiceIndex []EdgeServiceRecord `json:"edge_service_index"`
	FailedEdges      []string            `json:"failed_edges"`
}

func edgeKeys(edges []pathengine.Edge) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.Key()
	}
	return out
}
