// Package activity implements the per-vertex activity heuristic used by the
// solver to pick a branching vertex: two parallel exponentially-decayed
// scores per vertex (one for being included into the hitting set, one for
// being discarded), combined by taking the maximum and breaking ties by
// vertex id.
package activity

import "github.com/katalvlaran/findminhs/hgraph"

// DefaultDecay is the multiplicative decay applied to every score each time
// Decay is called without an intervening Bump.
const DefaultDecay = 0.95

// Option configures a Tracker at construction time, in the project's
// functional-option style (see packing.Options and solver.Flags for the
// sibling configuration surfaces).
type Option func(*Tracker)

// WithDecay overrides the default decay factor.
func WithDecay(decay float64) Option {
	return func(t *Tracker) { t.decay = decay }
}

// Tracker holds the include/discard scores for every vertex the instance
// was originally constructed with, plus a live mirror of the instance's
// vertex set so Highest only considers currently live vertices.
type Tracker struct {
	include []float64
	discard []float64
	live    []bool
	decay   float64
}

// New allocates a Tracker sized to inst.NumNodesTotal, with every currently
// live vertex marked live and every score at zero.
func New(inst *hgraph.Instance, opts ...Option) *Tracker {
	n := inst.NumNodesTotal()
	t := &Tracker{
		include: make([]float64, n),
		discard: make([]float64, n),
		live:    make([]bool, n),
		decay:   DefaultDecay,
	}
	for _, v := range inst.Nodes() {
		t.live[v] = true
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Delete marks v as no longer live, so Highest skips it. Mirrors an
// Instance.DeleteNode (or a reduction's removal) on the instance.
func (t *Tracker) Delete(v hgraph.NodeIdx) {
	t.live[v] = false
}

// Restore marks v as live again, undoing the most recent unmatched Delete.
func (t *Tracker) Restore(v hgraph.NodeIdx) {
	t.live[v] = true
}

// Bump adds inc to v's include-score and dis to its discard-score.
func (t *Tracker) Bump(v hgraph.NodeIdx, inc, dis float64) {
	t.include[v] += inc
	t.discard[v] += dis
}

// Decay multiplies every score (live or not) by the configured decay
// factor.
func (t *Tracker) Decay() {
	for i := range t.include {
		t.include[i] *= t.decay
		t.discard[i] *= t.decay
	}
}

// Highest returns the live vertex with the greatest combined
// max(include, discard) score, breaking ties toward the smaller vertex id.
// Returns hgraph.InvalidNode if no vertex is live.
func (t *Tracker) Highest() hgraph.NodeIdx {
	best := hgraph.InvalidNode
	bestScore := 0.0
	for v := 0; v < len(t.live); v++ {
		if !t.live[v] {
			continue
		}
		score := t.include[v]
		if t.discard[v] > score {
			score = t.discard[v]
		}
		if !best.Valid() || score > bestScore {
			best = hgraph.NodeIdx(v)
			bestScore = score
		}
	}
	return best
}
