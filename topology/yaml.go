// SPDX-License-Identifier: MIT
// Package: gyrostat/topology
//
// yaml.go — loading topologies from YAML documents.
//
// Format:
//
//	vertices: [1, 2, 3, 4, 5, 6]
//	edges:
//	  - [1, 2]
//	  - [1, 4]
//	  ...
//
// Each edge is a two-element [u, v] pair; validation is delegated to New,
// so the same ErrInvalidGraph semantics apply to file-sourced topologies.

package topology

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// topologyDoc is the on-disk shape of a topology file.
type topologyDoc struct {
	Vertices []int   `yaml:"vertices"`
	Edges    [][]int `yaml:"edges"`
}

// LoadTopology decodes a YAML topology document and builds a validated Graph.
func LoadTopology(r io.Reader) (*Graph, error) {
	var doc topologyDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("topology: decode: %w", err)
	}

	edges := make([]Edge, len(doc.Edges))
	for i, pair := range doc.Edges {
		if len(pair) != 2 {
			return nil, fmt.Errorf("edge %d: expected [u, v], got %d element(s): %w",
				i, len(pair), ErrInvalidGraph)
		}
		edges[i] = Edge{U: pair[0], V: pair[1]}
	}

	return New(doc.Vertices, edges)
}

// LoadTopologyFile opens path and delegates to LoadTopology.
func LoadTopologyFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("topology: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := LoadTopology(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
