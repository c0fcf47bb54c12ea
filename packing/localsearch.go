package packing

import (
	"github.com/katalvlaran/findminhs/hgraph"
	"github.com/katalvlaran/findminhs/subsettrie"
)

// localSearch runs phase B: repeatedly look for a 2-opt swap that removes
// one packing edge and replaces it with two vertex-disjoint edges that were
// each blocked by exactly that one packing edge, until no such swap exists.
func (p *Packer) localSearch(inst *hgraph.Instance, packing []hgraph.EdgeIdx) []hgraph.EdgeIdx {
	inPacking := make(map[hgraph.EdgeIdx]bool, len(packing))
	for _, e := range packing {
		inPacking[e] = true
	}
	remaining := make([]hgraph.EdgeIdx, 0, len(inst.Edges()))
	for _, e := range inst.Edges() {
		if !inPacking[e] {
			remaining = append(remaining, e)
		}
	}

	if cap(p.hitBy) < inst.NumNodesTotal() {
		p.hitBy = make([]int, inst.NumNodesTotal())
	}
	p.hitBy = p.hitBy[:inst.NumNodesTotal()]

	for {
		for i := range p.hitBy {
			p.hitBy[i] = -1
		}
		for i, pe := range packing {
			for v := range inst.Edge(pe) {
				p.hitBy[v] = i
			}
		}

		if cap(p.blockedBy) < len(packing) {
			p.blockedBy = make([][]hgraph.EdgeIdx, len(packing))
		}
		p.blockedBy = p.blockedBy[:len(packing)]
		for i := range p.blockedBy {
			p.blockedBy[i] = p.blockedBy[i][:0]
		}

		for _, r := range remaining {
			blockingIdx := -1
			ambiguous := false
			for v := range inst.Edge(r) {
				if p.hitBy[v] < 0 {
					continue
				}
				if blockingIdx >= 0 && blockingIdx != p.hitBy[v] {
					ambiguous = true
					break
				}
				blockingIdx = p.hitBy[v]
			}
			if blockingIdx >= 0 && !ambiguous {
				p.blockedBy[blockingIdx] = append(p.blockedBy[blockingIdx], r)
			}
		}

		removedIdx, added1, added2, found := p.findTwoOptSwap(inst, packing, p.blockedBy, p.hitBy)
		if !found {
			return packing
		}

		removed := packing[removedIdx]
		packing = removeEdge(packing, removed)
		packing = append(packing, added1, added2)
		delete(inPacking, removed)
		inPacking[added1] = true
		inPacking[added2] = true
		remaining = removeEdge(remaining, added1)
		remaining = removeEdge(remaining, added2)
		remaining = append(remaining, removed)

		for v := range inst.Edge(removed) {
			p.hitBy[v] = -1
		}
		const dummy = 0
		for v := range inst.Edge(added1) {
			p.hitBy[v] = dummy
		}
		for v := range inst.Edge(added2) {
			p.hitBy[v] = dummy
		}

		for _, candidate := range p.blockedBy[removedIdx] {
			if candidate == added1 || candidate == added2 {
				continue
			}
			free := true
			for v := range inst.Edge(candidate) {
				if p.hitBy[v] >= 0 {
					free = false
					break
				}
			}
			if free {
				packing = append(packing, candidate)
				inPacking[candidate] = true
				remaining = removeEdge(remaining, candidate)
				for v := range inst.Edge(candidate) {
					p.hitBy[v] = dummy
				}
			}
		}
	}
}

// findTwoOptSwap looks for a packing edge p_i and a pair of blocked edges
// b1, b2 such that removing p_i frees every vertex of b1 and b2 not shared
// with p_i, and b1, b2 are themselves vertex-disjoint. The search reuses a
// subset trie per blocking index: for each candidate blocked edge b, the
// query set is (currently-unhit vertices ∪ vertices(p_i)) \ vertices(b); if
// any previously-seen blocked edge of this blocking index is a subset of
// that query, the two form a valid swap.
func (p *Packer) findTwoOptSwap(
	inst *hgraph.Instance,
	packing []hgraph.EdgeIdx,
	blockedBy [][]hgraph.EdgeIdx,
	hitBy []int,
) (blockingIdx int, b1, b2 hgraph.EdgeIdx, found bool) {
	p.available = p.available[:0]
	for _, v := range inst.Nodes() {
		if hitBy[v] < 0 {
			p.available = append(p.available, uint32(v))
		}
	}
	sortUint32(p.available)

	for i, blocked := range blockedBy {
		if len(blocked) == 0 {
			continue
		}

		avail := append(p.available[:0:0], p.available...)
		for v := range inst.Edge(packing[i]) {
			avail = append(avail, uint32(v))
		}
		sortUint32(avail)

		p.trie = subsettrie.New[hgraph.EdgeIdx]()

		for _, blockedEdge := range blocked {
			p.edgeVerts = p.edgeVerts[:0]
			for v := range inst.Edge(blockedEdge) {
				p.edgeVerts = append(p.edgeVerts, uint32(v))
			}
			sortUint32(p.edgeVerts)

			query := setMinus(avail, p.edgeVerts, p.queryBuf[:0])
			p.queryBuf = query

			if other, ok := p.trie.FindSubset(query); ok {
				return i, blockedEdge, other, true
			}
			p.trie.Insert(append([]uint32(nil), p.edgeVerts...), blockedEdge)
		}
	}
	return 0, 0, 0, false
}

func removeEdge(s []hgraph.EdgeIdx, target hgraph.EdgeIdx) []hgraph.EdgeIdx {
	for i, e := range s {
		if e == target {
			s[i] = s[len(s)-1]
			return s[:len(s)-1]
		}
	}
	return s
}

func setMinus(avail, removeSorted, buf []uint32) []uint32 {
	buf = buf[:0]
	i, j := 0, 0
	for i < len(avail) {
		for j < len(removeSorted) && removeSorted[j] < avail[i] {
			j++
		}
		if j < len(removeSorted) && removeSorted[j] == avail[i] {
			i++
			j++
			continue
		}
		buf = append(buf, avail[i])
		i++
	}
	return buf
}

func sortUint32(s []uint32) {
	// Insertion sort: incidence degrees are small in practice, and this
	// avoids pulling in sort.Slice's interface-boxing overhead on a hot
	// path called once per candidate per blocking index.
	for i := 1; i < len(s); i++ {
		v := s[i]
		j := i - 1
		for j >= 0 && s[j] > v {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = v
	}
}
