// Package astar provides tunable options, the Manhattan heuristic, and
// error definitions for A* search over a maze.Maze.
package astar

import (
	"context"
	"errors"

	"github.com/HashamMobeen/Maze-Solver/maze"
)

// Sentinel errors for A* execution.
var (
	// ErrMazeNil is returned if a nil maze pointer is passed.
	ErrMazeNil = errors.New("astar: maze is nil")

	// ErrNeighbors is returned when fetching neighbors from the maze fails.
	ErrNeighbors = errors.New("astar: neighbor enumeration error")
)

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|: the exact remaining
// distance on an unobstructed grid, hence admissible and consistent for
// 4-directional unit-cost movement.
func Manhattan(a, b maze.Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// Option configures A* behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize A* execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnExpand is called once per cell on its final (non-stale) expansion,
	// with its confirmed distance g from Start.
	OnExpand func(p maze.Position, g int)
}

// DefaultOptions returns Options with a background context and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnExpand: func(maze.Position, int) {},
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

// WithOnExpand registers a callback to run on every final expansion.
func WithOnExpand(fn func(p maze.Position, g int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
