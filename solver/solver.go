// Package solver implements the depth-first branch-and-bound search: a
// greedy warm start, then recursive reduction, lower-bound pruning, forced
// degree-1 moves, and activity-guided branching, all driven by the
// reversible delete/restore discipline the hgraph, reduce, packing and
// activity packages provide.
package solver

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/findminhs/activity"
	"github.com/katalvlaran/findminhs/hgraph"
	"github.com/katalvlaran/findminhs/packing"
	"github.com/katalvlaran/findminhs/reduce"
)

const bumpAmount = 1.0

type state struct {
	inst    *hgraph.Instance
	flags   Flags
	rng     *rand.Rand
	packer  *packing.Packer
	reducer *reduce.Reducer
	act     *activity.Tracker
	logger  Logger

	incompleteHS []hgraph.NodeIdx
	discarded    []hgraph.NodeIdx
	bestKnown    []hgraph.NodeIdx

	stats Stats
}

// Solve runs the full branch-and-bound search over inst and returns the
// summary Result together with the best hitting set found. inst is
// restored to its original live set before Solve returns, regardless of
// how the search proceeded. rng drives both the branch-order
// randomization and (under Flags.DisableActivity) the uniform vertex pick,
// so a fixed seed makes the run deterministic.
func Solve(inst *hgraph.Instance, rng *rand.Rand, flags Flags, opts ...Option) (Result, []hgraph.NodeIdx) {
	cfg := config{logger: nopLogger{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	start := time.Now()
	s := &state{
		inst:    inst,
		flags:   flags,
		rng:     rng,
		packer:  packing.NewPacker(inst),
		reducer: reduce.New(),
		act:     activity.New(inst),
		logger:  cfg.logger,
	}

	top := s.reduceTimed()
	greedy := s.greedyUpperBound()
	s.bestKnown = append([]hgraph.NodeIdx(nil), greedy...)

	s.solveRecursive(true)
	top.Restore(inst, s.act)

	result := Result{
		HSSize:     uint32(len(s.bestKnown)),
		GreedySize: uint32(len(greedy)),
		SolveTime:  time.Since(start),
		Stats:      s.stats,
	}
	return result, append([]hgraph.NodeIdx(nil), s.bestKnown...)
}

// reduceTimed applies the reducer once and folds the elapsed time into
// stats.SubsuperPruneTime, per the project's design notes on §4.5.
func (s *state) reduceTimed() *reduce.Reduction {
	begin := time.Now()
	red := s.reducer.Reduce(s.inst, s.act)
	s.stats.SubsuperPruneTime += time.Since(begin)
	return red
}

// greedyUpperBound computes an initial feasible hitting set by repeatedly
// taking a live vertex of maximal degree, then undoes every deletion it
// made so the instance is left exactly as found.
func (s *state) greedyUpperBound() []hgraph.NodeIdx {
	inst := s.inst
	var chosen []hgraph.NodeIdx
	for inst.NumEdges() > 0 {
		v := maxDegreeVertex(inst)
		chosen = append(chosen, v)
		inst.DeleteNode(v)
		inst.DeleteIncidentEdges(v)
	}
	for i := len(chosen) - 1; i >= 0; i-- {
		v := chosen[i]
		inst.RestoreIncidentEdges(v)
		inst.RestoreNode(v)
	}
	return chosen
}

func maxDegreeVertex(inst *hgraph.Instance) hgraph.NodeIdx {
	best := hgraph.InvalidNode
	bestDeg := -1
	for _, v := range inst.Nodes() {
		d := inst.Degree(v)
		if d > bestDeg || (d == bestDeg && v < best) {
			bestDeg = d
			best = v
		}
	}
	return best
}

// solveRecursive is one node of the search tree. first is true only for
// the call Solve makes directly, where the top-level reduction already
// ran and must not be repeated.
func (s *state) solveRecursive(first bool) {
	if s.inst.NumEdges() == 0 {
		if len(s.incompleteHS) < len(s.bestKnown) {
			s.bestKnown = append(s.bestKnown[:0], s.incompleteHS...)
		} else {
			s.logger.Printf("solver: base case reached with |incompleteHS|=%d >= |bestKnown|=%d; should have been pruned", len(s.incompleteHS), len(s.bestKnown))
		}
		return
	}

	var red *reduce.Reduction
	if !first {
		red = s.reduceTimed()
	}
	s.stats.Iterations++

	bound := s.packer.LowerBound(s.inst, len(s.incompleteHS), packing.Options{LocalSearch: s.flags.LocalSearch})
	if bound >= len(s.bestKnown) {
		s.bumpAndDecay()
		if red != nil {
			red.Restore(s.inst, s.act)
		}
		return
	}

	if e, v := s.inst.Degree1Edge(); e.Valid() {
		s.forcedInclude(v)
	} else {
		s.branchOn(s.pickBranchVertex())
	}

	if red != nil {
		red.Restore(s.inst, s.act)
	}
}

// bumpAndDecay rewards every vertex on the current path when a node is
// pruned: incompleteHS vertices on the include side, discarded vertices on
// the discard side, then decays every score.
func (s *state) bumpAndDecay() {
	scale := 1.0
	if s.flags.RelativeActivity {
		if depth := len(s.incompleteHS) + len(s.discarded); depth > 0 {
			scale = 1.0 / float64(depth)
		}
	}
	for _, v := range s.incompleteHS {
		s.act.Bump(v, bumpAmount*scale, 0)
	}
	for _, v := range s.discarded {
		s.act.Bump(v, 0, bumpAmount*scale)
	}
	s.act.Decay()
}

// forcedInclude applies the degree-1 forced move: v is the sole live
// vertex of some degree-1 edge, so it must belong to every hitting set of
// this sub-instance.
func (s *state) forcedInclude(v hgraph.NodeIdx) {
	s.incompleteHS = append(s.incompleteHS, v)
	s.inst.DeleteNode(v)
	s.act.Delete(v)
	s.inst.DeleteIncidentEdges(v)

	s.solveRecursive(false)

	s.inst.RestoreIncidentEdges(v)
	s.inst.RestoreNode(v)
	s.act.Restore(v)
	s.incompleteHS = s.incompleteHS[:len(s.incompleteHS)-1]
}

// pickBranchVertex selects the branching vertex, either via the activity
// heuristic or, under Flags.DisableActivity, uniformly at random among
// live vertices.
func (s *state) pickBranchVertex() hgraph.NodeIdx {
	if s.flags.DisableActivity {
		live := s.inst.Nodes()
		return live[s.rng.Intn(len(live))]
	}
	return s.act.Highest()
}

// branchOn explores the discard and include children of v, in an order
// randomized per call; the order is a diversification only and does not
// affect correctness since both children are always visited.
func (s *state) branchOn(v hgraph.NodeIdx) {
	includeFirst := s.rng.Intn(2) == 0
	if includeFirst {
		s.includeChild(v)
		s.discardChild(v)
	} else {
		s.discardChild(v)
		s.includeChild(v)
	}
}

func (s *state) discardChild(v hgraph.NodeIdx) {
	s.inst.DeleteNode(v)
	s.act.Delete(v)
	s.discarded = append(s.discarded, v)

	s.solveRecursive(false)

	s.discarded = s.discarded[:len(s.discarded)-1]
	s.inst.RestoreNode(v)
	s.act.Restore(v)
}

func (s *state) includeChild(v hgraph.NodeIdx) {
	s.inst.DeleteNode(v)
	s.act.Delete(v)
	s.inst.DeleteIncidentEdges(v)
	s.incompleteHS = append(s.incompleteHS, v)

	s.solveRecursive(false)

	s.incompleteHS = s.incompleteHS[:len(s.incompleteHS)-1]
	s.inst.RestoreIncidentEdges(v)
	s.inst.RestoreNode(v)
	s.act.Restore(v)
}
