package hgraph_test

import (
	"testing"

	"github.com/katalvlaran/findminhs/hgraph"
	"github.com/stretchr/testify/require"
)

func triangle(t *testing.T) *hgraph.Instance {
	t.Helper()
	inst, err := hgraph.New(3, [][]uint32{{0, 1}, {1, 2}, {0, 2}})
	require.NoError(t, err)
	return inst
}

func nodesOf(inst *hgraph.Instance, v hgraph.NodeIdx) []hgraph.EdgeIdx {
	var out []hgraph.EdgeIdx
	for e := range inst.Node(v) {
		out = append(out, e)
	}
	return out
}

func edgeOf(inst *hgraph.Instance, e hgraph.EdgeIdx) []hgraph.NodeIdx {
	var out []hgraph.NodeIdx
	for v := range inst.Edge(e) {
		out = append(out, v)
	}
	return out
}

func TestNew_RejectsZeroDegreeEdge(t *testing.T) {
	_, err := hgraph.New(2, [][]uint32{{}})
	require.ErrorIs(t, err, hgraph.ErrZeroDegree)
}

func TestNew_RejectsOutOfRangeVertex(t *testing.T) {
	_, err := hgraph.New(2, [][]uint32{{0, 2}})
	require.ErrorIs(t, err, hgraph.ErrVertexOutOfRange)
}

func TestNew_BuildsSortedLinkedIncidences(t *testing.T) {
	inst := triangle(t)

	require.Equal(t, 3, inst.NumNodes())
	require.Equal(t, 3, inst.NumEdges())

	require.Equal(t, []hgraph.EdgeIdx{0, 2}, nodesOf(inst, 0))
	require.Equal(t, []hgraph.EdgeIdx{0, 1}, nodesOf(inst, 1))
	require.Equal(t, []hgraph.EdgeIdx{1, 2}, nodesOf(inst, 2))

	require.Equal(t, []hgraph.NodeIdx{0, 1}, edgeOf(inst, 0))
	require.Equal(t, []hgraph.NodeIdx{1, 2}, edgeOf(inst, 1))
	require.Equal(t, []hgraph.NodeIdx{0, 2}, edgeOf(inst, 2))
}

func TestInstance_DeleteNodeUnlinksFromEdgesOnly(t *testing.T) {
	inst := triangle(t)

	inst.DeleteNode(0)
	require.Equal(t, 2, inst.NumNodes())
	require.Equal(t, 3, inst.NumEdges(), "edges stay live; only the vertex's link to them is removed")
	require.Equal(t, []hgraph.NodeIdx{1}, edgeOf(inst, 0))
	require.Equal(t, []hgraph.NodeIdx{2}, edgeOf(inst, 2))

	inst.RestoreNode(0)
	require.Equal(t, []hgraph.NodeIdx{0, 1}, edgeOf(inst, 0))
	require.Equal(t, []hgraph.NodeIdx{0, 2}, edgeOf(inst, 2))
}

func TestInstance_DeleteIncidentEdgesRemovesCoveredEdges(t *testing.T) {
	inst := triangle(t)

	inst.DeleteNode(1)
	inst.DeleteIncidentEdges(1)

	require.ElementsMatch(t, []hgraph.EdgeIdx{2}, inst.Edges())
	require.Equal(t, []hgraph.NodeIdx{0, 2}, edgeOf(inst, 2))

	inst.RestoreIncidentEdges(1)
	inst.RestoreNode(1)

	require.ElementsMatch(t, []hgraph.EdgeIdx{0, 1, 2}, inst.Edges())
	require.Equal(t, []hgraph.NodeIdx{0, 1}, edgeOf(inst, 0))
	require.Equal(t, []hgraph.NodeIdx{1, 2}, edgeOf(inst, 1))
	require.Equal(t, []hgraph.NodeIdx{0, 2}, edgeOf(inst, 2))
}

func TestInstance_Degree1Edge(t *testing.T) {
	inst, err := hgraph.New(3, [][]uint32{{0, 1, 2}, {1}})
	require.NoError(t, err)

	e, v := inst.Degree1Edge()
	require.Equal(t, hgraph.EdgeIdx(1), e)
	require.Equal(t, hgraph.NodeIdx(1), v)

	inst.DeleteEdge(1)
	e, v = inst.Degree1Edge()
	require.False(t, e.Valid())
	require.False(t, v.Valid())
}

func TestInstance_MaxNodeDegree(t *testing.T) {
	inst := triangle(t)
	require.Equal(t, 2, inst.MaxNodeDegree())
}

func TestInstance_NestedDeleteRestoreIsFullyReversible(t *testing.T) {
	inst := triangle(t)

	inst.DeleteNode(0)
	inst.DeleteIncidentEdges(0)
	inst.DeleteNode(2)
	inst.DeleteIncidentEdges(2)
	inst.RestoreIncidentEdges(2)
	inst.RestoreNode(2)
	inst.RestoreIncidentEdges(0)
	inst.RestoreNode(0)

	require.ElementsMatch(t, []hgraph.NodeIdx{0, 1, 2}, inst.Nodes())
	require.ElementsMatch(t, []hgraph.EdgeIdx{0, 1, 2}, inst.Edges())
	require.Equal(t, []hgraph.EdgeIdx{0, 2}, nodesOf(inst, 0))
	require.Equal(t, []hgraph.EdgeIdx{0, 1}, nodesOf(inst, 1))
	require.Equal(t, []hgraph.EdgeIdx{1, 2}, nodesOf(inst, 2))
}
