// Command pathengine-demo reads a small topology-and-services document from
// stdin, loads a PathEngine, and prints its initial snapshot as JSON. It is
// a harness for exercising the library, not the loader/interactive-loop/
// persistence stack (those remain external collaborators).
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	engine "github.com/Flyecnu/network-simulation3/internal"
	"github.com/Flyecnu/network-simulation3/pkg/pathengine"
)

// simulationInput is the JSON contract this demo accepts on stdin.
type simulationInput struct {
	Links []struct {
		Src      pathengine.NodeID `json:"src"`
		Snk      pathengine.NodeID `json:"snk"`
		Weight   float64           `json:"weight"`
		Distance float64           `json:"distance"`
	} `json:"links"`
	Services []struct {
		Src        pathengine.NodeID `json:"src"`
		Snk        pathengine.NodeID `json:"snk"`
		Attributes map[string]any    `json:"attributes"`
	} `json:"services"`
}

func main() {
	if err := run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer) error {
	raw, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("pathengine-demo: reading stdin: %w", err)
	}

	var input simulationInput
	if err := json.Unmarshal(raw, &input); err != nil {
		return fmt.Errorf("pathengine-demo: parsing input: %w", err)
	}

	links := make([]engine.LinkRecord, len(input.Links))
	for i, l := range input.Links {
		links[i] = engine.LinkRecord{Src: l.Src, Snk: l.Snk, Weight: l.Weight, Distance: l.Distance}
	}
	services := make([]engine.ServiceRecord, len(input.Services))
	for i, s := range input.Services {
		services[i] = engine.ServiceRecord{Src: s.Src, Snk: s.Snk, Attributes: s.Attributes}
	}

	pe := engine.NewPathEngine(engine.DefaultEngineConfig())
	if err := pe.Load(links, services); err != nil {
		return fmt.Errorf("pathengine-demo: %w", err)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(pe.Snapshot())
}
