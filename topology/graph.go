// SPDX-License-Identifier: MIT
// Package: gyrostat/topology
//
// graph.go — the validated, immutable Graph value type.
//
// Contract:
//   • New validates at construction: no self-loops, no dangling endpoints,
//     no duplicate vertex IDs. Parallel edges are allowed (edge multiset).
//   • The vertex order exposed by Vertices (and relied on by the spectral
//     adapter) is ascending vertex ID — deterministic for a given input.
//   • Degree counts incident edges with multiplicity.
//   • CycleRank = edges − vertices + components. Components is computed, not
//     assumed, so the rank is correct for disconnected inputs too; callers
//     needing connectivity (the spectral calculator) check Connected.
//
// Complexity:
//   • New: O(V log V + E). Degree: O(1). Components/Connected: O(V + E).

package topology

import (
	"fmt"
	"sort"
)

// Edge is an unordered pair of vertex IDs. U and V may appear in either
// order; (1,2) and (2,1) denote the same chain.
type Edge struct {
	U, V int
}

// Graph is an immutable branched-polymer topology: a vertex set plus an edge
// multiset. Construct via New, Alpha or LoadTopology; the zero value is not
// a valid Graph.
type Graph struct {
	vertices []int       // ascending vertex IDs
	index    map[int]int // vertex ID → position in vertices
	edges    []Edge      // input order preserved
	degree   []int       // per-index incident edge count, with multiplicity
}

// New builds a validated Graph from a vertex list and an edge list.
// Duplicate vertex IDs, self-loops and dangling endpoints all surface
// ErrInvalidGraph with context.
func New(vertices []int, edges []Edge) (*Graph, error) {
	if len(vertices) == 0 {
		return nil, fmt.Errorf("no vertices: %w", ErrInvalidGraph)
	}

	// Stable ascending order; duplicates become adjacent and are rejected.
	vs := make([]int, len(vertices))
	copy(vs, vertices)
	sort.Ints(vs)

	index := make(map[int]int, len(vs))
	for i, v := range vs {
		if i > 0 && vs[i-1] == v {
			return nil, fmt.Errorf("duplicate vertex %d: %w", v, ErrInvalidGraph)
		}
		index[v] = i
	}

	es := make([]Edge, len(edges))
	copy(es, edges)

	degree := make([]int, len(vs))
	for _, e := range es {
		if e.U == e.V {
			return nil, fmt.Errorf("self-loop at vertex %d: %w", e.U, ErrInvalidGraph)
		}
		iu, ok := index[e.U]
		if !ok {
			return nil, fmt.Errorf("edge (%d,%d): endpoint %d not in vertex set: %w",
				e.U, e.V, e.U, ErrInvalidGraph)
		}
		iv, ok := index[e.V]
		if !ok {
			return nil, fmt.Errorf("edge (%d,%d): endpoint %d not in vertex set: %w",
				e.U, e.V, e.V, ErrInvalidGraph)
		}
		degree[iu]++
		degree[iv]++
	}

	return &Graph{vertices: vs, index: index, edges: es, degree: degree}, nil
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of edges, counting parallels.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Vertices returns the vertex IDs in ascending order. The slice is a copy.
func (g *Graph) Vertices() []int {
	out := make([]int, len(g.vertices))
	copy(out, g.vertices)
	return out
}

// Edges returns the edge multiset in input order. The slice is a copy.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Index returns the dense matrix index of vertex v (its position in the
// ascending vertex order), or ErrUnknownVertex.
func (g *Graph) Index(v int) (int, error) {
	i, ok := g.index[v]
	if !ok {
		return 0, fmt.Errorf("vertex %d: %w", v, ErrUnknownVertex)
	}
	return i, nil
}

// Degree returns the number of edges incident to v, counting multiplicity,
// or ErrUnknownVertex.
func (g *Graph) Degree(v int) (int, error) {
	i, ok := g.index[v]
	if !ok {
		return 0, fmt.Errorf("vertex %d: %w", v, ErrUnknownVertex)
	}
	return g.degree[i], nil
}

// Components returns the number of connected components via breadth-first
// search over the edge multiset.
func (g *Graph) Components() int {
	n := len(g.vertices)

	// Index-based adjacency; parallel edges collapse harmlessly for reachability.
	adj := make([][]int, n)
	for _, e := range g.edges {
		iu, iv := g.index[e.U], g.index[e.V]
		adj[iu] = append(adj[iu], iv)
		adj[iv] = append(adj[iv], iu)
	}

	seen := make([]bool, n)
	components := 0
	queue := make([]int, 0, n)
	for start := 0; start < n; start++ {
		if seen[start] {
			continue
		}
		components++
		seen[start] = true
		queue = append(queue[:0], start)
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, w := range adj[u] {
				if !seen[w] {
					seen[w] = true
					queue = append(queue, w)
				}
			}
		}
	}

	return components
}

// Connected reports whether the graph has exactly one component.
func (g *Graph) Connected() bool { return g.Components() == 1 }

// CycleRank returns the first Betti number, edges − vertices + components:
// the number of independent cycles in the topology.
func (g *Graph) CycleRank() int {
	return len(g.edges) - len(g.vertices) + g.Components()
}
