package hsio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/findminhs/hgraph"
	"github.com/katalvlaran/findminhs/solver"
)

// output is the wire shape shared by both formats; json struct tags double
// as the documentation of the field names the CLI emits.
type output struct {
	HittingSet        []uint32 `json:"hitting_set"`
	HSSize            uint32   `json:"hs_size"`
	GreedySize        uint32   `json:"greedy_size"`
	SolveTimeSeconds  float64  `json:"solve_time_seconds"`
	Iterations        uint64   `json:"iterations"`
	SubsuperPruneSecs float64  `json:"subsuper_prune_time_seconds"`
}

func toOutput(result solver.Result, hs []hgraph.NodeIdx) output {
	ids := make([]uint32, len(hs))
	for i, v := range hs {
		ids[i] = uint32(v)
	}
	return output{
		HittingSet:        ids,
		HSSize:            result.HSSize,
		GreedySize:        result.GreedySize,
		SolveTimeSeconds:  result.SolveTime.Seconds(),
		Iterations:        result.Stats.Iterations,
		SubsuperPruneSecs: result.Stats.SubsuperPruneTime.Seconds(),
	}
}

// WriteText renders result and hs as human-readable lines.
func WriteText(w io.Writer, result solver.Result, hs []hgraph.NodeIdx) error {
	o := toOutput(result, hs)
	_, err := fmt.Fprintf(w,
		"hitting set (size %d): %v\ngreedy upper bound: %d\nsolve time: %.6fs\niterations: %d\nsubset/superset reduction time: %.6fs\n",
		o.HSSize, o.HittingSet, o.GreedySize, o.SolveTimeSeconds, o.Iterations, o.SubsuperPruneSecs,
	)
	return err
}

// WriteJSON renders result and hs as a single JSON object.
func WriteJSON(w io.Writer, result solver.Result, hs []hgraph.NodeIdx) error {
	return json.NewEncoder(w).Encode(toOutput(result, hs))
}
