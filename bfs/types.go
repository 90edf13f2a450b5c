// Package bfs provides tunable options and error definitions for
// breadth-first search over a maze.Maze.
package bfs

import (
	"context"
	"errors"

	"github.com/HashamMobeen/Maze-Solver/maze"
)

// Sentinel errors for BFS execution.
var (
	// ErrMazeNil is returned if a nil maze pointer is passed.
	ErrMazeNil = errors.New("bfs: maze is nil")

	// ErrNeighbors is returned when fetching neighbors from the maze fails.
	ErrNeighbors = errors.New("bfs: neighbor enumeration error")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a cell is discovered and enqueued.
	// Receives the cell and its depth (edge count) from Start.
	OnEnqueue func(p maze.Position, depth int)

	// OnDequeue is called when a cell is dequeued for expansion.
	OnDequeue func(p maze.Position, depth int)
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(maze.Position, int) {},
		OnDequeue: func(maze.Position, int) {},
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

// WithOnEnqueue registers a callback to run when a cell is enqueued.
func WithOnEnqueue(fn func(p maze.Position, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run when a cell is dequeued.
func WithOnDequeue(fn func(p maze.Position, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}
