package packing

// Options configures a single LowerBound call.
type Options struct {
	// LocalSearch enables the 2-opt local-search refinement of the greedy
	// packing before the degree-sum bound is computed from it.
	LocalSearch bool
}
