package hgraph

// DeleteNode removes v from the live vertex set. For each of v's live
// incidences (e, j), the corresponding slot j is deleted from e's incidence
// list — but v's own incidence list is left untouched, so it can drive the
// symmetric RestoreNode later.
func (inst *Instance) DeleteNode(v NodeIdx) {
	for _, entry := range inst.nodeIncidences[v].Iter {
		inst.edgeIncidences[entry.Edge].Delete(int(entry.Entry))
	}
	inst.nodes.Delete(uint32(v))
}

// DeleteEdge removes e from the live edge set, symmetric to DeleteNode.
func (inst *Instance) DeleteEdge(e EdgeIdx) {
	for _, entry := range inst.edgeIncidences[e].Iter {
		inst.nodeIncidences[entry.Node].Delete(int(entry.Entry))
	}
	inst.edges.Delete(uint32(e))
}

// RestoreNode undoes the most recent unmatched DeleteNode(v).
func (inst *Instance) RestoreNode(v NodeIdx) {
	for _, entry := range inst.nodeIncidences[v].IterRev {
		inst.edgeIncidences[entry.Edge].Restore(int(entry.Entry))
	}
	inst.nodes.Restore(uint32(v))
}

// RestoreEdge undoes the most recent unmatched DeleteEdge(e).
func (inst *Instance) RestoreEdge(e EdgeIdx) {
	for _, entry := range inst.edgeIncidences[e].IterRev {
		inst.nodeIncidences[entry.Node].Restore(int(entry.Entry))
	}
	inst.edges.Restore(uint32(e))
}

// DeleteIncidentEdges deletes every edge still incident to v. v must
// already be deleted. v's incidence list is detached first (via Take) so
// that deleting each edge — which would otherwise try to mutate v's own
// incidence list while it is being iterated — does not alias it; since v
// is deleted, its own list does not need to stay in sync during this call.
func (inst *Instance) DeleteIncidentEdges(v NodeIdx) {
	debugAssert(inst.nodes.IsDeleted(uint32(v)), "node must be deleted before DeleteIncidentEdges")

	detached := inst.nodeIncidences[v].Take()
	for _, entry := range detached.Iter {
		inst.DeleteEdge(entry.Edge)
	}
	inst.nodeIncidences[v] = detached
}

// RestoreIncidentEdges undoes the most recent unmatched
// DeleteIncidentEdges(v). v must still be deleted.
func (inst *Instance) RestoreIncidentEdges(v NodeIdx) {
	debugAssert(inst.nodes.IsDeleted(uint32(v)), "node must be deleted before RestoreIncidentEdges")

	detached := inst.nodeIncidences[v].Take()
	for _, entry := range detached.IterRev {
		inst.RestoreEdge(entry.Edge)
	}
	inst.nodeIncidences[v] = detached
}
