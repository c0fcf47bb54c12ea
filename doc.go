// Package findminhs computes an exact minimum hitting set of a hypergraph:
// given H = (V, E) with V = {0,...,n-1} and E a family of non-empty
// subsets of V, it finds a smallest S subseteq V such that every edge in E
// shares at least one vertex with S. By duality this is also an exact
// minimum set cover solver.
//
// The search is a depth-first branch-and-bound over a reversible
// in-memory hypergraph, organized as a small stack of packages, leaves
// first:
//
//	revset/     — reversible live-set with O(1) delete/restore in LIFO order
//	skipvec/    — fixed-capacity sparse sequence with the same discipline
//	subsettrie/ — membership index answering "does any stored set ⊆ Q?"
//	hgraph/     — the bipartite vertex/edge incidence store itself
//	activity/   — per-vertex branching heuristic with decaying scores
//	reduce/     — subset/superset dominance rules applied at every node
//	packing/    — edge-packing lower bound (greedy + optional 2-opt + degree-sum)
//	solver/     — the branch-and-bound driver tying the above together
//	hsio/       — the PACE-style text format reader and result writer
//	cmd/findminhs/ — a CLI wrapping solver and hsio
//
// Every mutation on the hypergraph instance (and on the activity tracker
// that mirrors it) is paired with an exact, reverse-order restore; that
// discipline is the single safety invariant the whole search depends on.
//
//	go get github.com/katalvlaran/findminhs
package findminhs
