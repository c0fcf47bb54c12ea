package hgraph

// Degree returns the number of live edges incident to v.
func (inst *Instance) Degree(v NodeIdx) int {
	return inst.nodeIncidences[v].Len()
}

// EdgeDegree returns the number of live vertices incident to e.
func (inst *Instance) EdgeDegree(e EdgeIdx) int {
	return inst.edgeIncidences[e].Len()
}

// Node yields the edges incident to v, in strictly ascending edge-id order.
func (inst *Instance) Node(v NodeIdx) func(yield func(EdgeIdx) bool) {
	return func(yield func(EdgeIdx) bool) {
		for _, entry := range inst.nodeIncidences[v].Iter {
			if !yield(entry.Edge) {
				return
			}
		}
	}
}

// Edge yields the vertices incident to e, in strictly ascending vertex-id
// order.
func (inst *Instance) Edge(e EdgeIdx) func(yield func(NodeIdx) bool) {
	return func(yield func(NodeIdx) bool) {
		for _, entry := range inst.edgeIncidences[e].Iter {
			if !yield(entry.Node) {
				return
			}
		}
	}
}

// Nodes returns the currently live vertex ids, in arbitrary order.
func (inst *Instance) Nodes() []NodeIdx {
	live := inst.nodes.Live()
	out := make([]NodeIdx, len(live))
	for i, id := range live {
		out[i] = NodeIdx(id)
	}
	return out
}

// Edges returns the currently live edge ids, in arbitrary order.
func (inst *Instance) Edges() []EdgeIdx {
	live := inst.edges.Live()
	out := make([]EdgeIdx, len(live))
	for i, id := range live {
		out[i] = EdgeIdx(id)
	}
	return out
}

// NumEdges returns the number of currently live edges.
func (inst *Instance) NumEdges() int {
	return inst.edges.Len()
}

// NumNodes returns the number of currently live vertices.
func (inst *Instance) NumNodes() int {
	return inst.nodes.Len()
}

// NumNodesTotal returns the vertex count at construction time, for sizing
// auxiliary buffers addressed by NodeIdx.
func (inst *Instance) NumNodesTotal() int {
	return inst.numNodesTotal
}

// NumEdgesTotal returns the edge count at construction time, for sizing
// auxiliary buffers addressed by EdgeIdx.
func (inst *Instance) NumEdgesTotal() int {
	return inst.numEdgesTotal
}

// MaxNodeDegree returns the maximum degree among currently live vertices,
// or 0 if there are none.
func (inst *Instance) MaxNodeDegree() int {
	max := 0
	for _, v := range inst.nodes.Live() {
		if d := inst.nodeIncidences[v].Len(); d > max {
			max = d
		}
	}
	return max
}

// Degree1Edge returns a currently live edge of degree 1 together with its
// single live vertex, or (InvalidEdge, InvalidNode) if none exists.
func (inst *Instance) Degree1Edge() (EdgeIdx, NodeIdx) {
	for _, e := range inst.edges.Live() {
		inc := &inst.edgeIncidences[e]
		if inc.Len() != 1 {
			continue
		}
		for _, entry := range inc.Iter {
			return EdgeIdx(e), entry.Node
		}
	}
	return InvalidEdge, InvalidNode
}
