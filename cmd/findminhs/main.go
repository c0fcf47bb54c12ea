// Command findminhs reads a hypergraph in the PACE-style text format from
// stdin or a file, computes a minimum hitting set, and writes the result
// to stdout as text or JSON.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/katalvlaran/findminhs/hsio"
	"github.com/katalvlaran/findminhs/solver"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(args []string, stdin *os.File, stdout *os.File) int {
	fs := flag.NewFlagSet("findminhs", flag.ContinueOnError)
	localSearch := fs.Bool("local-search", false, "enable 2-opt local search refinement of the edge-packing lower bound")
	relativeActivity := fs.Bool("relative-activity", false, "scale activity bumps by 1/depth")
	disableActivity := fs.Bool("disable-activity", false, "pick the branching vertex uniformly at random instead of by activity score")
	seed := fs.Int64("seed", 1, "RNG seed for branch order and (if -disable-activity) vertex selection")
	format := fs.String("format", "text", `output format: "text" or "json"`)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	var in *os.File = stdin
	if fs.NArg() > 0 {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			log.Printf("findminhs: %v", err)
			return 1
		}
		defer f.Close()
		in = f
	}

	inst, err := hsio.Parse(in)
	if err != nil {
		log.Printf("findminhs: %v", err)
		return 1
	}

	flags := solver.Flags{
		LocalSearch:      *localSearch,
		RelativeActivity: *relativeActivity,
		DisableActivity:  *disableActivity,
	}
	rng := rand.New(rand.NewSource(*seed))
	result, hs := solver.Solve(inst, rng, flags, solver.WithLogger(log.Default()))

	switch *format {
	case "json":
		err = hsio.WriteJSON(stdout, result, hs)
	case "text":
		err = hsio.WriteText(stdout, result, hs)
	default:
		err = fmt.Errorf("findminhs: unknown -format %q, want \"text\" or \"json\"", *format)
	}
	if err != nil {
		log.Printf("findminhs: %v", err)
		return 1
	}
	return 0
}
