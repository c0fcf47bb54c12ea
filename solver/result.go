package solver

import "time"

// Stats are the counters accumulated over one solve.
type Stats struct {
	Iterations        uint64
	SubsuperPruneTime time.Duration
}

// Result is the summary a caller receives from Solve. The actual hitting
// set is returned alongside Result, not embedded in it, since most callers
// only need the size.
type Result struct {
	HSSize     uint32
	GreedySize uint32
	SolveTime  time.Duration
	Stats      Stats
}
