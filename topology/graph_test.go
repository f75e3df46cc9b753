package topology_test

import (
	"testing"

	"github.com/lvmarek/gyrostat/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Validation rejects self-loops, dangling endpoints, duplicates and
// empty vertex sets with ErrInvalidGraph.
func TestNew_Validation(t *testing.T) {
	cases := []struct {
		name     string
		vertices []int
		edges    []topology.Edge
	}{
		{"self-loop", []int{1, 2}, []topology.Edge{{U: 1, V: 1}}},
		{"dangling endpoint", []int{1, 2}, []topology.Edge{{U: 1, V: 3}}},
		{"duplicate vertex", []int{1, 1, 2}, nil},
		{"empty vertex set", nil, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := topology.New(tc.vertices, tc.edges)
			assert.ErrorIs(t, err, topology.ErrInvalidGraph)
		})
	}
}

// TestGraph_ParallelEdges confirms the multiset semantics: parallel chains
// are distinct edges and degrees count them with multiplicity.
func TestGraph_ParallelEdges(t *testing.T) {
	g, err := topology.New([]int{1, 2}, []topology.Edge{{U: 1, V: 2}, {U: 2, V: 1}})
	require.NoError(t, err)

	assert.Equal(t, 2, g.EdgeCount())
	d, err := g.Degree(1)
	require.NoError(t, err)
	assert.Equal(t, 2, d)

	// Two vertices, two edges, one component: one independent cycle.
	assert.Equal(t, 1, g.CycleRank())
}

// TestGraph_DegreeUnknownVertex checks the ErrUnknownVertex query path.
func TestGraph_DegreeUnknownVertex(t *testing.T) {
	g, err := topology.New([]int{1, 2}, []topology.Edge{{U: 1, V: 2}})
	require.NoError(t, err)

	_, err = g.Degree(7)
	assert.ErrorIs(t, err, topology.ErrUnknownVertex)
}

// TestGraph_Components covers connectivity over one and two components.
func TestGraph_Components(t *testing.T) {
	// Two disjoint triangles.
	g, err := topology.New(
		[]int{1, 2, 3, 4, 5, 6},
		[]topology.Edge{
			{U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 1},
			{U: 4, V: 5}, {U: 5, V: 6}, {U: 6, V: 4},
		},
	)
	require.NoError(t, err)

	assert.Equal(t, 2, g.Components())
	assert.False(t, g.Connected())
	// 6 edges − 6 vertices + 2 components = 2 independent cycles.
	assert.Equal(t, 2, g.CycleRank())

	// An isolated vertex is its own component.
	h, err := topology.New([]int{1, 2, 3}, []topology.Edge{{U: 1, V: 2}})
	require.NoError(t, err)
	assert.Equal(t, 2, h.Components())
}

// TestAlpha pins the default topology: 6 vertices, 9 edges, 3-regular,
// connected, cycle rank 4.
func TestAlpha(t *testing.T) {
	g := topology.Alpha()

	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, 9, g.EdgeCount())
	assert.True(t, g.Connected())
	assert.Equal(t, 4, g.CycleRank(), "9 − 6 + 1 independent cycles")

	for _, v := range g.Vertices() {
		d, err := g.Degree(v)
		require.NoError(t, err)
		assert.Equal(t, 3, d, "K(3,3) is 3-regular")
	}
}

// TestGraph_AccessorsCopy ensures exposed slices do not alias internals.
func TestGraph_AccessorsCopy(t *testing.T) {
	g := topology.Alpha()

	vs := g.Vertices()
	vs[0] = 99
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, g.Vertices())

	es := g.Edges()
	es[0] = topology.Edge{U: 99, V: 98}
	assert.Equal(t, topology.Edge{U: 1, V: 2}, g.Edges()[0])
}
