// Package reduce implements the two subset/superset dominance rules applied
// at every branch-and-bound node: an edge dominated by a subset edge is
// redundant (any hitting set that intersects the subset edge also
// intersects the superset one), and a vertex dominated by a vertex whose
// incident-edge set is a superset is redundant (the dominating vertex hits
// at least as much, so there is never a reason to prefer the dominated
// one). Both rules are applied to fixpoint, alternating between them since
// an edge deletion can expose new vertex dominance and vice versa.
package reduce

import (
	"sort"

	"github.com/katalvlaran/findminhs/hgraph"
	"github.com/katalvlaran/findminhs/subsettrie"
)

// Reducer holds scratch buffers reused across the whole search so that
// Reduce does not allocate a fresh working set at every node.
type Reducer struct {
	edgeOrder []hgraph.EdgeIdx
	vertOrder []hgraph.NodeIdx
	deleted   map[hgraph.NodeIdx]bool
}

// New returns a Reducer ready to run against inst-sized instances.
func New() *Reducer {
	return &Reducer{deleted: make(map[hgraph.NodeIdx]bool)}
}

// Reduce applies the edge-superset and vertex-subset rules to fixpoint,
// mirroring every deleted vertex into act so the activity tracker's live
// set stays synchronized with the instance. It returns a Reduction that can
// later undo exactly this call's deletions via Restore.
func (r *Reducer) Reduce(inst *hgraph.Instance, act Activity) *Reduction {
	rec := &Reduction{}
	for {
		changed := r.edgePass(inst, rec)
		if r.vertexPass(inst, rec, act) {
			changed = true
		}
		if !changed {
			break
		}
	}
	return rec
}

// Activity is the subset of activity.Tracker's surface the reducer needs,
// kept as a local interface so this package does not import activity (the
// solver wires the two together; the reducer should not know how the
// heuristic scores are computed, only that deletions must be mirrored).
type Activity interface {
	Delete(v hgraph.NodeIdx)
	Restore(v hgraph.NodeIdx)
}

// edgePass runs the edge-superset rule to fixpoint in one sorted sweep:
// live edges are visited in ascending (degree, id) order and inserted into
// a subset trie keyed by their sorted vertex sets; an edge whose vertex set
// is found to be a superset of an already-inserted (hence smaller-or-equal)
// edge is deleted instead of inserted. Transitivity of the subset relation
// means this single ascending sweep already reaches the edge rule's own
// fixpoint; no repeated sweeps are needed within one call.
func (r *Reducer) edgePass(inst *hgraph.Instance, rec *Reduction) bool {
	r.edgeOrder = r.edgeOrder[:0]
	r.edgeOrder = append(r.edgeOrder, inst.Edges()...)
	sort.Slice(r.edgeOrder, func(i, j int) bool {
		a, b := r.edgeOrder[i], r.edgeOrder[j]
		if da, db := inst.EdgeDegree(a), inst.EdgeDegree(b); da != db {
			return da < db
		}
		return a < b
	})

	trie := subsettrie.New[hgraph.EdgeIdx]()
	changed := false
	for _, e := range r.edgeOrder {
		query := sortedVertices(inst, e, nil)
		if _, dominated := trie.FindSubset(query); dominated {
			inst.DeleteEdge(e)
			rec.events = append(rec.events, event{kind: kindEdge, edge: e})
			changed = true
			continue
		}
		trie.Insert(append([]uint32(nil), query...), e)
	}
	return changed
}

// vertexPass runs the vertex-subset rule to fixpoint: for every pair of
// live vertices v1 != v2, if N(v1) (the sorted set of incident edge ids) is
// a subset of N(v2), v1 is redundant and is deleted. Equal incident-edge
// sets dominate each other; the smaller-id vertex survives so exactly one
// vertex is removed, never both.
func (r *Reducer) vertexPass(inst *hgraph.Instance, rec *Reduction, act Activity) bool {
	r.vertOrder = r.vertOrder[:0]
	r.vertOrder = append(r.vertOrder, inst.Nodes()...)

	edgeSets := make(map[hgraph.NodeIdx][]uint32, len(r.vertOrder))
	for _, v := range r.vertOrder {
		edgeSets[v] = sortedEdges(inst, v, nil)
	}

	for k := range r.deleted {
		delete(r.deleted, k)
	}
	changed := false
	for _, v1 := range r.vertOrder {
		if r.deleted[v1] {
			continue
		}
		for _, v2 := range r.vertOrder {
			if v1 == v2 || r.deleted[v2] {
				continue
			}
			if !isSubset(edgeSets[v1], edgeSets[v2]) {
				continue
			}
			if isSubset(edgeSets[v2], edgeSets[v1]) && v1 < v2 {
				// Equal incident-edge sets: keep the smaller id.
				continue
			}
			inst.DeleteNode(v1)
			act.Delete(v1)
			rec.events = append(rec.events, event{kind: kindNode, node: v1})
			r.deleted[v1] = true
			changed = true
			break
		}
	}
	return changed
}

func sortedVertices(inst *hgraph.Instance, e hgraph.EdgeIdx, buf []uint32) []uint32 {
	buf = buf[:0]
	for v := range inst.Edge(e) {
		buf = append(buf, uint32(v))
	}
	return buf
}

func sortedEdges(inst *hgraph.Instance, v hgraph.NodeIdx, buf []uint32) []uint32 {
	buf = buf[:0]
	for e := range inst.Node(v) {
		buf = append(buf, uint32(e))
	}
	return buf
}

// isSubset reports whether a (sorted ascending) is a subset of b (sorted
// ascending).
func isSubset(a, b []uint32) bool {
	i := 0
	for _, x := range a {
		for i < len(b) && b[i] < x {
			i++
		}
		if i >= len(b) || b[i] != x {
			return false
		}
		i++
	}
	return true
}
