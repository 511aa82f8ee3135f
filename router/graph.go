package router

// VertexID identifies a graph vertex.
type VertexID int

// EdgeID identifies a graph edge. Ids are assigned consecutively from 0.
type EdgeID int

// Edge is a directed weighted edge.
type Edge struct {
	From   VertexID
	To     VertexID
	Weight float64
}

// DirectedWeightedGraph is an adjacency-list graph with a fixed vertex count.
type DirectedWeightedGraph struct {
	edges     []Edge
	incidence [][]EdgeID // vertex -> outgoing edges
}

// NewDirectedWeightedGraph creates a graph with vertexCount vertices and no edges.
func NewDirectedWeightedGraph(vertexCount int) *DirectedWeightedGraph {
	return &DirectedWeightedGraph{incidence: make([][]EdgeID, vertexCount)}
}

// AddEdge appends an edge and returns its id.
func (g *DirectedWeightedGraph) AddEdge(e Edge) EdgeID {
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, e)
	g.incidence[e.From] = append(g.incidence[e.From], id)
	return id
}

// GetEdge returns the edge with the given id.
func (g *DirectedWeightedGraph) GetEdge(id EdgeID) Edge { return g.edges[id] }

// IncidentEdges returns the edges leaving v. The slice must not be modified.
func (g *DirectedWeightedGraph) IncidentEdges(v VertexID) []EdgeID { return g.incidence[v] }

// VertexCount returns the number of vertices.
func (g *DirectedWeightedGraph) VertexCount() int { return len(g.incidence) }

// EdgeCount returns the number of edges added so far.
func (g *DirectedWeightedGraph) EdgeCount() int { return len(g.edges) }
