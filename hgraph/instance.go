package hgraph

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/findminhs/revset"
	"github.com/katalvlaran/findminhs/skipvec"
)

// New builds an Instance over n vertices from edgeLists, where edgeLists[e]
// holds the vertex ids incident to edge e in input order. Construction
// follows four steps:
//
//  1. Allocate the live vertex and edge id sets.
//  2. Build each edge's incidence list, slots 0..degree-1 holding its
//     vertex ids in ascending order.
//  3. Flatten all (edge, slot) pairs and sort by (vertex id, edge id), which
//     groups each vertex's incidences into a contiguous run in ascending
//     edge-id order.
//  4. For each vertex, allocate its incidence list from the length of its
//     run, and back-patch each edge-side entry's Entry field to point at
//     the vertex-side slot that was just written.
//
// New returns ErrZeroDegree if any edge is empty, or ErrVertexOutOfRange if
// any vertex id is >= n.
func New(n int, edgeLists [][]uint32) (*Instance, error) {
	m := len(edgeLists)

	nodeIDs := make([]uint32, n)
	for i := range nodeIDs {
		nodeIDs[i] = uint32(i)
	}
	edgeIDs := make([]uint32, m)
	for i := range edgeIDs {
		edgeIDs[i] = uint32(i)
	}

	edgeIncidences := make([]skipvec.Vec[NodeEntry], m)
	for e, verts := range edgeLists {
		if len(verts) == 0 {
			return nil, fmt.Errorf("hgraph: edge %d: %w", e, ErrZeroDegree)
		}
		sorted := append([]uint32(nil), verts...)
		sort.Slice(sorted, func(a, b int) bool { return sorted[a] < sorted[b] })
		inc := skipvec.WithLen(len(sorted), NodeEntry{Node: InvalidNode, Entry: InvalidEntry})
		for j, v := range sorted {
			if int(v) >= n {
				return nil, fmt.Errorf("hgraph: edge %d: %w: %d", e, ErrVertexOutOfRange, v)
			}
			inc.Set(j, NodeEntry{Node: NodeIdx(v), Entry: InvalidEntry})
		}
		edgeIncidences[e] = *inc
	}

	type flatEntry struct {
		edge EdgeIdx
		slot int
	}
	flat := make([]flatEntry, 0, sumDegrees(edgeLists))
	for e := range edgeLists {
		for slot := 0; slot < edgeIncidences[e].Len(); slot++ {
			flat = append(flat, flatEntry{edge: EdgeIdx(e), slot: slot})
		}
	}
	sort.SliceStable(flat, func(i, j int) bool {
		vi := edgeIncidences[flat[i].edge].At(flat[i].slot).Node
		vj := edgeIncidences[flat[j].edge].At(flat[j].slot).Node
		if vi != vj {
			return vi < vj
		}
		return flat[i].edge < flat[j].edge
	})

	nodeIncidences := make([]skipvec.Vec[EdgeEntry], n)
	pos := 0
	for v := 0; v < n; v++ {
		start := pos
		for pos < len(flat) && edgeIncidences[flat[pos].edge].At(flat[pos].slot).Node == NodeIdx(v) {
			pos++
		}
		run := flat[start:pos]

		inc := skipvec.WithLen(len(run), EdgeEntry{Edge: InvalidEdge, Entry: InvalidEntry})
		for i, fe := range run {
			inc.Set(i, EdgeEntry{Edge: fe.edge, Entry: EntryIdx(fe.slot)})
			old := edgeIncidences[fe.edge].At(fe.slot)
			edgeIncidences[fe.edge].Set(fe.slot, NodeEntry{Node: old.Node, Entry: EntryIdx(i)})
		}
		nodeIncidences[v] = *inc
	}

	return &Instance{
		nodes:          revset.New(nodeIDs),
		edges:          revset.New(edgeIDs),
		nodeIncidences: nodeIncidences,
		edgeIncidences: edgeIncidences,
		numNodesTotal:  n,
		numEdgesTotal:  m,
	}, nil
}

func sumDegrees(edgeLists [][]uint32) int {
	total := 0
	for _, e := range edgeLists {
		total += len(e)
	}
	return total
}
