package core

import "sort"

// AddVertex registers id. Adding an existing vertex is a no-op.
// Returns ErrEmptyVertexID for an empty id.
// Complexity: O(1)
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertex(id)

	return nil
}

func (g *Graph) addVertex(id string) {
	if _, ok := g.index[id]; ok {
		return
	}
	g.index[id] = len(g.order)
	g.order = append(g.order, id)
	g.adjacency[id] = make(map[string]int)
}

// HasVertex reports whether id is present. The empty ID is never present.
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[id]

	return ok
}

// AddEdge connects from→to, creating missing endpoints.
// Returns ErrEmptyVertexID, ErrLoopNotAllowed or ErrMultiEdgeNotAllowed.
// Complexity: O(1)
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.allowMulti && g.adjacency[from][to] > 0 {
		return ErrMultiEdgeNotAllowed
	}
	g.addVertex(from)
	g.addVertex(to)

	g.edges = append(g.edges, Edge{From: from, To: to, Directed: g.directed})
	g.adjacency[from][to]++
	if !g.directed && from != to {
		g.adjacency[to][from]++
	}

	return nil
}

// Vertices returns every vertex ID in insertion order.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]string(nil), g.order...)
}

// Edges returns a copy of every edge in insertion order.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]Edge(nil), g.edges...)
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// EdgeCount returns the number of edges; an undirected edge counts once.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// NeighborIDs returns the unique vertices reachable from id over one edge,
// sorted lexicographically.
// Returns ErrEmptyVertexID or ErrVertexNotFound.
// Complexity: O(d log d)
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	ids := make([]string, 0, len(adj))
	for to := range adj {
		ids = append(ids, to)
	}
	sort.Strings(ids)

	return ids, nil
}

// Reverse returns a new graph with the same vertices, in the same order,
// and every directed edge flipped. Undirected edges are copied unchanged.
// Complexity: O(V+E)
func (g *Graph) Reverse() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	r := &Graph{
		directed:   g.directed,
		allowMulti: g.allowMulti,
		allowLoops: g.allowLoops,
		index:      make(map[string]int, len(g.order)),
		adjacency:  make(map[string]map[string]int, len(g.order)),
		edges:      make([]Edge, 0, len(g.edges)),
	}
	for _, id := range g.order {
		r.addVertex(id)
	}
	for _, e := range g.edges {
		if e.Directed {
			e.From, e.To = e.To, e.From
		}
		r.edges = append(r.edges, e)
		r.adjacency[e.From][e.To]++
		if !e.Directed && e.From != e.To {
			r.adjacency[e.To][e.From]++
		}
	}

	return r
}
