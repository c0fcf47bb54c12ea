package packing

import (
	"sort"

	"github.com/katalvlaran/findminhs/hgraph"
)

// degreeSumBound runs phase C: from packing alone the bound is |packing|,
// since each packed edge must be hit by a distinct vertex. This refines
// that bound by, for each packed edge, assigning its maximal-degree vertex
// to it (decrementing the residual degree of every other incident vertex),
// then greedily consuming the largest remaining residual degrees until they
// collectively cover every live edge.
//
// Ties for maximal-degree vertex within a packed edge are broken toward the
// last vertex encountered in ascending vertex-id order, matching the
// original solver this was ported from.
func (p *Packer) degreeSumBound(inst *hgraph.Instance, packing []hgraph.EdgeIdx, partialSize int) int {
	for _, v := range inst.Nodes() {
		p.residual[v] = inst.Degree(v)
	}

	coveredEdges := 0
	for _, e := range packing {
		maxV := hgraph.InvalidNode
		maxDeg := -1
		for v := range inst.Edge(e) {
			d := inst.Degree(v)
			if d >= maxDeg {
				maxDeg = d
				maxV = v
			}
		}
		coveredEdges += inst.Degree(maxV)

		for v := range inst.Edge(e) {
			p.residual[v]--
		}
		p.residual[maxV] = 0
	}

	p.liveDegs = p.liveDegs[:0]
	for _, v := range inst.Nodes() {
		p.liveDegs = append(p.liveDegs, p.residual[v])
	}
	sort.Sort(sort.Reverse(sort.IntSlice(p.liveDegs)))

	k := 0
	for _, d := range p.liveDegs {
		if coveredEdges >= inst.NumEdges() {
			break
		}
		coveredEdges += d
		k++
	}

	return partialSize + len(packing) + k
}
