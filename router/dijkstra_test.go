package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortestPath(t *testing.T) {
	g := NewDirectedWeightedGraph(4)
	e01 := g.AddEdge(Edge{From: 0, To: 1, Weight: 1})
	g.AddEdge(Edge{From: 0, To: 2, Weight: 5})
	e12 := g.AddEdge(Edge{From: 1, To: 2, Weight: 1})
	e23 := g.AddEdge(Edge{From: 2, To: 3, Weight: 1})

	info, ok := ShortestPath(g, 0, 3)
	require.True(t, ok)
	assert.Equal(t, 3.0, info.Weight)
	assert.Equal(t, []EdgeID{e01, e12, e23}, info.Edges)

	_, ok = ShortestPath(g, 3, 0)
	assert.False(t, ok)

	info, ok = ShortestPath(g, 2, 2)
	require.True(t, ok)
	assert.Zero(t, info.Weight)
	assert.Empty(t, info.Edges)
}

func TestShortestPath_ZeroWeightCycle(t *testing.T) {
	g := NewDirectedWeightedGraph(3)
	g.AddEdge(Edge{From: 0, To: 1, Weight: 0})
	g.AddEdge(Edge{From: 1, To: 0, Weight: 0})
	e := g.AddEdge(Edge{From: 1, To: 2, Weight: 2})

	info, ok := ShortestPath(g, 0, 2)
	require.True(t, ok)
	assert.Equal(t, 2.0, info.Weight)
	assert.Len(t, info.Edges, 2)
	assert.Equal(t, e, info.Edges[1])
}
