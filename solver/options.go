package solver

// Flags are the runtime-configurable feature toggles. The project exposes
// these as a plain struct rather than compile-time build tags, matching the
// sibling configuration surfaces (packing.Options, activity.Option).
type Flags struct {
	// LocalSearch enables the 2-opt refinement of the edge-packing lower
	// bound (packing.Options.LocalSearch).
	LocalSearch bool
	// RelativeActivity scales every activity bump by 1/depth, where depth
	// is the current |incompleteHS|+|discarded|.
	RelativeActivity bool
	// DisableActivity picks the branching vertex uniformly at random
	// instead of consulting the activity tracker.
	DisableActivity bool
}

// Logger receives the solver's diagnostic output. The standard library's
// *log.Logger satisfies this.
type Logger interface {
	Printf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}

// Option configures a solve beyond Flags, in the project's functional-
// option style.
type Option func(*config)

type config struct {
	logger Logger
}

// WithLogger directs diagnostic messages (currently just the "should have
// been pruned" warning) to logger instead of discarding them.
func WithLogger(logger Logger) Option {
	return func(c *config) { c.logger = logger }
}
