// Package packing computes a lower bound on the size of any hitting set of
// the current live sub-instance, via a greedy disjoint edge packing
// (phase A), an optional 2-opt local-search refinement of that packing
// (phase B), and a degree-sum refinement of the resulting bound
// (phase C). All three phases are described in the project's design notes
// on the edge-packing lower bound; the Packer exists to hold the scratch
// buffers those phases reuse across the entire search rather than
// allocating on every call.
package packing

import (
	"sort"

	"github.com/katalvlaran/findminhs/hgraph"
	"github.com/katalvlaran/findminhs/subsettrie"
)

// Packer holds reusable scratch buffers for LowerBound. A single Packer
// should be constructed once per solve and reused across the whole search.
type Packer struct {
	sortBuf   []edgeSortEntry
	blockedE  []bool
	touchedE  []hgraph.EdgeIdx
	packing   []hgraph.EdgeIdx
	residual  []int
	liveDegs  []int
	hitBy     []int // index into packing, or -1
	blockedBy [][]hgraph.EdgeIdx
	available []uint32
	queryBuf  []uint32
	edgeVerts []uint32
	trie      *subsettrie.Trie[hgraph.EdgeIdx]
}

type edgeSortEntry struct {
	edge EdgeIdx
	sum  int
	max  int
}

// EdgeIdx is a local alias kept for readability within this package; it is
// identical to hgraph.EdgeIdx.
type EdgeIdx = hgraph.EdgeIdx

// NewPacker allocates scratch sized to inst's original vertex and edge
// counts.
func NewPacker(inst *hgraph.Instance) *Packer {
	n := inst.NumNodesTotal()
	m := inst.NumEdgesTotal()
	return &Packer{
		sortBuf:  make([]edgeSortEntry, 0, m),
		blockedE: make([]bool, m),
		touchedE: make([]hgraph.EdgeIdx, 0, m),
		packing:  make([]hgraph.EdgeIdx, 0, m),
		residual: make([]int, n),
		liveDegs: make([]int, 0, n),
	}
}

// LowerBound computes L = partialSize + |P| + k as described by phases A-C,
// where P is the (possibly locally-searched) disjoint edge packing and k is
// the degree-sum refinement count.
func (p *Packer) LowerBound(inst *hgraph.Instance, partialSize int, opts Options) int {
	packing := p.greedyPack(inst)
	if opts.LocalSearch {
		packing = p.localSearch(inst, packing)
	}
	return p.degreeSumBound(inst, packing, partialSize)
}

// greedyPack runs phase A: sort live edges by (degree-sum, max-degree)
// ascending, then scan and accept edges whose vertices are all untouched,
// marking every edge incident to an accepted edge's vertices as blocked.
func (p *Packer) greedyPack(inst *hgraph.Instance) []hgraph.EdgeIdx {
	edges := inst.Edges()

	p.sortBuf = p.sortBuf[:0]
	for _, e := range edges {
		sum, max := 0, 0
		for v := range inst.Edge(e) {
			d := inst.Degree(v)
			sum += d
			if d > max {
				max = d
			}
		}
		p.sortBuf = append(p.sortBuf, edgeSortEntry{edge: e, sum: sum, max: max})
	}
	sort.Slice(p.sortBuf, func(i, j int) bool {
		a, b := p.sortBuf[i], p.sortBuf[j]
		if a.sum != b.sum {
			return a.sum < b.sum
		}
		return a.max < b.max
	})

	p.packing = p.packing[:0]
	p.touchedE = p.touchedE[:0]
	for _, ent := range p.sortBuf {
		e := ent.edge
		if p.blockedE[e] {
			continue
		}
		p.packing = append(p.packing, e)
		for v := range inst.Edge(e) {
			for e2 := range inst.Node(v) {
				if !p.blockedE[e2] {
					p.blockedE[e2] = true
					p.touchedE = append(p.touchedE, e2)
				}
			}
		}
	}
	for _, e2 := range p.touchedE {
		p.blockedE[e2] = false
	}
	return p.packing
}
