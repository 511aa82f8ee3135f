package router

import (
	"container/heap"
	"math"
)

// RouteInfo is a shortest path: its total weight and its edges in
// traversal order.
type RouteInfo struct {
	Weight float64
	Edges  []EdgeID
}

// ShortestPath runs Dijkstra from one vertex to another. Edge weights must
// be non-negative. The boolean is false when to is unreachable.
func ShortestPath(g *DirectedWeightedGraph, from, to VertexID) (RouteInfo, bool) {
	n := g.VertexCount()
	dist := make([]float64, n)
	prevEdge := make([]EdgeID, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		prevEdge[i] = -1
	}
	dist[from] = 0
	done := make([]bool, n)

	pq := &priorityQueue{}
	heap.Push(pq, pqItem{vertex: from, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(pq).(pqItem)
		v := item.vertex
		if done[v] {
			continue
		}
		done[v] = true
		if v == to {
			break
		}
		for _, eid := range g.IncidentEdges(v) {
			e := g.GetEdge(eid)
			if done[e.To] {
				continue
			}
			if d := dist[v] + e.Weight; d < dist[e.To] {
				dist[e.To] = d
				prevEdge[e.To] = eid
				heap.Push(pq, pqItem{vertex: e.To, dist: d})
			}
		}
	}

	if math.IsInf(dist[to], 1) {
		return RouteInfo{}, false
	}
	return RouteInfo{Weight: dist[to], Edges: reconstructPath(g, prevEdge, from, to)}, true
}

func reconstructPath(g *DirectedWeightedGraph, prevEdge []EdgeID, from, to VertexID) []EdgeID {
	var path []EdgeID
	for v := to; v != from; {
		eid := prevEdge[v]
		path = append(path, eid)
		v = g.GetEdge(eid).From
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

type pqItem struct {
	vertex VertexID
	dist   float64
}

type priorityQueue []pqItem

func (pq priorityQueue) Len() int { return len(pq) }

// Less breaks distance ties by vertex id so searches are reproducible.
func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].vertex < pq[j].vertex
}

func (pq priorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *priorityQueue) Push(x any) { *pq = append(*pq, x.(pqItem)) }

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
