package hgraph

import "errors"

// Sentinel errors returned by New. Input tokenization errors (missing or
// malformed header lines, non-integer tokens) are the concern of the hsio
// package, which parses the textual format and feeds New the already
// tokenized (n, edgeLists) it needs; these sentinels cover the construction
// invariants that hold regardless of how the edge lists were produced.
var (
	// ErrZeroDegree indicates an edge with no incident vertices was supplied.
	ErrZeroDegree = errors.New("hgraph: edge has zero degree")

	// ErrVertexOutOfRange indicates an edge referenced a vertex id >= n.
	ErrVertexOutOfRange = errors.New("hgraph: vertex id out of range")
)
