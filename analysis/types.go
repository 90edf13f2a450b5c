// Package analysis defines comparison criteria, options, and sentinel
// errors for benchmarking maze search strategies against one maze.
package analysis

import (
	"context"
	"errors"
	"fmt"

	"github.com/HashamMobeen/Maze-Solver/search"
)

// Sentinel errors for comparison runs.
var (
	// ErrMazeNil is returned if a nil maze pointer is passed.
	ErrMazeNil = errors.New("analysis: maze is nil")

	// ErrCriterion is returned for a Criterion outside the defined set.
	ErrCriterion = errors.New("analysis: unknown comparison criterion")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("analysis: invalid option supplied")
)

// Criterion selects the metric Rank orders by. Every criterion sorts
// ascending: fewer explored cells, shorter paths, or less elapsed time
// rank first.
type Criterion int

const (
	// ByExplored ranks by explored-cell count.
	ByExplored Criterion = iota
	// ByPathLength ranks by path length in cells; unsolved results sort last.
	ByPathLength
	// ByElapsed ranks by measured search duration.
	ByElapsed
)

// String returns the human-readable criterion name.
func (c Criterion) String() string {
	switch c {
	case ByExplored:
		return "explored"
	case ByPathLength:
		return "path-length"
	case ByElapsed:
		return "elapsed"
	default:
		return fmt.Sprintf("Criterion(%d)", int(c))
	}
}

// valid reports whether c is one of the defined criteria.
func (c Criterion) valid() bool {
	return c >= ByExplored && c <= ByElapsed
}

// Option configures Compare behavior via functional arguments.
// If an Option is invalid (e.g. zero runs), it is recorded internally and
// surfaced as ErrOptionViolation when Compare is invoked.
type Option func(*Options)

// Options holds parameters to customize a comparison run.
type Options struct {
	// Ctx allows cancellation and deadlines; it is threaded into the
	// canonical strategies when none are supplied explicitly.
	Ctx context.Context

	// Runs repeats each search this many times; Elapsed is averaged over
	// the repetitions. Explored count and path are deterministic and taken
	// from the first run.
	Runs int

	// Parallel runs the strategies in separate goroutines. Safe: the maze
	// is read-only and each search owns its state; timing stays per-run.
	Parallel bool

	// Strategies overrides the canonical BFS, A*, DFS line-up.
	Strategies []search.Strategy

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, a single run
// per strategy, sequential execution, and the canonical strategy line-up.
func DefaultOptions() Options {
	return Options{
		Ctx:  context.Background(),
		Runs: 1,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithRuns repeats each search n times and averages the elapsed time.
//
//	n ≥ 1: repeat n times
//	n < 1: invalid option → ErrOptionViolation
func WithRuns(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Runs must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Runs = n
	}
}

// WithParallel runs the strategies concurrently.
func WithParallel() Option {
	return func(o *Options) {
		o.Parallel = true
	}
}

// WithStrategies substitutes the strategies to compare.
// Supplying none is an ErrOptionViolation; a nil entry likewise.
func WithStrategies(strategies ...search.Strategy) Option {
	return func(o *Options) {
		if len(strategies) == 0 {
			o.err = fmt.Errorf("%w: at least one strategy required", ErrOptionViolation)
			return
		}
		for _, s := range strategies {
			if s == nil {
				o.err = fmt.Errorf("%w: nil strategy", ErrOptionViolation)
				return
			}
		}
		o.Strategies = strategies
	}
}
