// Package core defines the Graph, Vertex and Edge types of the flight
// network, the sentinel errors of the store and the NewGraph constructor.
//
// Errors:
//
//	ErrInvalidVertex  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrInvalidWeight  - edge weight is negative, NaN or infinite.
package core

import (
	"sync"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidVertex indicates that a vertex ID is empty.
	ErrInvalidVertex = errors.New("core: invalid vertex ID")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrInvalidWeight indicates a negative or non-finite edge weight.
	ErrInvalidWeight = errors.New("core: invalid edge weight")
)

// Vertex represents an airport (or any node) in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Attributes stores arbitrary payload; the store never interprets it.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Attributes stores opaque user data (name, location, ...).
	Attributes map[string]any
}

// Edge is an undirected weighted connection between two vertices.
//
// Edges returned by the Graph are canonical: From < To lexicographically.
type Edge struct {
	// From is the lexicographically smaller endpoint.
	From string

	// To is the lexicographically larger endpoint.
	To string

	// Weight is the non-negative cost of the edge (km for flight routes).
	Weight float64
}

// Canonical returns the edge with its endpoints ordered so that From < To.
func (e Edge) Canonical() Edge {
	if e.To < e.From {
		e.From, e.To = e.To, e.From
	}

	return e
}

// GraphStats is a read-only snapshot of catalog sizes.
type GraphStats struct {
	VertexCount   int
	EdgeCount     int
	IsolatedCount int     // vertices without any neighbor
	TotalWeight   float64 // sum of all edge weights, each undirected edge once
}

// Graph is the in-memory flight network.
//
// mu protects vertices and adjacency. adjacency is kept symmetric:
// adjacency[u][v] exists iff adjacency[v][u] exists, with the same weight.
type Graph struct {
	mu sync.RWMutex

	vertices  map[string]*Vertex            // vertex ID → Vertex
	adjacency map[string]map[string]float64 // u → v → weight
	edgeCount int                           // undirected edges, each counted once
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]*Vertex),
		adjacency: make(map[string]map[string]float64),
	}
}
