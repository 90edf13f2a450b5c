// Package dfs provides tunable options and error definitions for
// depth-first search over a maze.Maze.
package dfs

import (
	"context"
	"errors"

	"github.com/HashamMobeen/Maze-Solver/maze"
)

// Sentinel errors for DFS execution.
var (
	// ErrMazeNil is returned if a nil maze pointer is passed.
	ErrMazeNil = errors.New("dfs: maze is nil")

	// ErrNeighbors is returned when fetching neighbors from the maze fails.
	ErrNeighbors = errors.New("dfs: neighbor enumeration error")
)

// Option configures DFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize DFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnPush is called each time a cell is pushed onto the stack.
	// The same cell may be pushed more than once before it is expanded.
	OnPush func(p maze.Position)

	// OnExpand is called once per cell, when it is popped, found
	// unvisited, and expanded.
	OnExpand func(p maze.Position)
}

// DefaultOptions returns Options with a background context and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnPush:   func(maze.Position) {},
		OnExpand: func(maze.Position) {},
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

// WithOnPush registers a callback to run on every stack push.
func WithOnPush(fn func(p maze.Position)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// WithOnExpand registers a callback to run on every expansion.
func WithOnExpand(fn func(p maze.Position)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
