package reduce

import "github.com/katalvlaran/findminhs/hgraph"

type eventKind uint8

const (
	kindEdge eventKind = iota
	kindNode
)

type event struct {
	kind eventKind
	edge hgraph.EdgeIdx
	node hgraph.NodeIdx
}

// Reduction records the deletions performed by one Reduce call, in the
// order they happened, so Restore can undo them in the reverse order and
// satisfy the LIFO discipline the underlying instance requires.
type Reduction struct {
	events []event
}

// Nodes returns the vertices this reduction deleted, in deletion order.
func (r *Reduction) Nodes() []hgraph.NodeIdx {
	var nodes []hgraph.NodeIdx
	for _, ev := range r.events {
		if ev.kind == kindNode {
			nodes = append(nodes, ev.node)
		}
	}
	return nodes
}

// Empty reports whether this reduction deleted anything at all. A caller
// can use this to skip bookkeeping when reduction was a no-op.
func (r *Reduction) Empty() bool {
	return len(r.events) == 0
}

// Restore undoes every deletion this reduction performed, in reverse
// order, restoring both the instance and the activity tracker.
func (r *Reduction) Restore(inst *hgraph.Instance, act Activity) {
	for i := len(r.events) - 1; i >= 0; i-- {
		ev := r.events[i]
		switch ev.kind {
		case kindEdge:
			inst.RestoreEdge(ev.edge)
		case kindNode:
			inst.RestoreNode(ev.node)
			act.Restore(ev.node)
		}
	}
}
