// Package hgraph implements the reversible bipartite incidence store at the
// center of the solver: a hypergraph instance supporting O(degree)
// delete/restore of vertices and hyperedges in LIFO order, as described by
// the construction and mutation rules in the project's design notes.
//
// NodeIdx, EdgeIdx and EntryIdx are distinct dense 32-bit index types so that
// a vertex id can never be accidentally passed where an edge id (or a raw
// incidence-slot index) is expected; this is the arena+index pattern, not a
// pointer graph — both sides of every incidence are arrays indexed by small
// integers, and the "back-reference" is just the slot index where the peer
// lives.
package hgraph

import (
	"github.com/katalvlaran/findminhs/revset"
	"github.com/katalvlaran/findminhs/skipvec"
)

// NodeIdx identifies a vertex. The zero value is a valid index (vertex 0);
// use InvalidNode as the sentinel for "no vertex".
type NodeIdx uint32

// EdgeIdx identifies a hyperedge. The zero value is a valid index (edge 0);
// use InvalidEdge as the sentinel for "no edge".
type EdgeIdx uint32

// EntryIdx identifies a slot within a node's or edge's incidence list.
type EntryIdx uint32

// Invalid sentinels for the three index spaces.
const (
	InvalidNode  NodeIdx  = ^NodeIdx(0)
	InvalidEdge  EdgeIdx  = ^EdgeIdx(0)
	InvalidEntry EntryIdx = ^EntryIdx(0)
)

// Valid reports whether idx is not the sentinel value.
func (idx NodeIdx) Valid() bool { return idx != InvalidNode }

// Valid reports whether idx is not the sentinel value.
func (idx EdgeIdx) Valid() bool { return idx != InvalidEdge }

// Valid reports whether idx is not the sentinel value.
func (idx EntryIdx) Valid() bool { return idx != InvalidEntry }

// NodeEntry is one slot of an edge's incidence list: the vertex occupying
// the slot, and the slot index that vertex's own incidence list uses to
// refer back to this edge (the cross-side back-reference).
type NodeEntry struct {
	Node  NodeIdx
	Entry EntryIdx
}

// EdgeEntry is one slot of a vertex's incidence list: the edge occupying
// the slot, and the slot index that edge's own incidence list uses to refer
// back to this vertex.
type EdgeEntry struct {
	Edge  EdgeIdx
	Entry EntryIdx
}

// Instance is a reversible bipartite incidence store over vertices and
// hyperedges. Between public operations it satisfies:
//
//  1. Bidirectional linkage: every live (e, j) in nodeIncidences[v] has
//     edgeIncidences[e][j] == (v, i) where i is (e, j)'s own slot, and
//     vice versa.
//  2. Sorted incidences: live entries in each incidence list are enumerated
//     in strictly increasing id order.
//  3. Live-consistency: v is live in edgeIncidences[e] iff e is live in
//     nodeIncidences[v] iff both v and e are live.
//  4. No empty edges at construction: every edge has degree >= 1.
//  5. LIFO reversibility: the delete/restore sequence on any container forms
//     a balanced, nested stack.
//
// The zero value is not usable; construct with New.
type Instance struct {
	nodes *revset.Set
	edges *revset.Set

	nodeIncidences []skipvec.Vec[EdgeEntry]
	edgeIncidences []skipvec.Vec[NodeEntry]

	numNodesTotal int
	numEdgesTotal int
}
