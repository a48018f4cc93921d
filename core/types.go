// Package core defines a small thread-safe directed graph of named nodes,
// used to describe how simulation components are wired together.
//
// A Graph stores vertices by ID and edges in an adjacency map. Parallel
// edges and self-loops are opt-in, as is the default directedness of new
// edges. Reverse returns the transposed graph so that "who feeds X?" can be
// answered with the same traversals as "what does X feed?".
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is a connection From→To. Undirected edges are mirrored in the
// adjacency map but stored once.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Directed reports whether the edge is one-way.
	Directed bool
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of all new edges.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an in-memory graph keyed by vertex ID.
//
// mu guards every field below it. Vertex insertion order is kept so that
// callers can map IDs back to their own dense indices.
type Graph struct {
	mu sync.RWMutex

	directed   bool
	allowMulti bool
	allowLoops bool

	order []string
	index map[string]int
	edges []Edge

	// adjacency[from][to] counts the edges from→to (mirrored when undirected).
	adjacency map[string]map[string]int
}

// NewGraph creates an empty Graph. By default it is undirected, with no
// loops and no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		index:     make(map[string]int),
		adjacency: make(map[string]map[string]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
