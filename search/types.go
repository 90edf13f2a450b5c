// Package search defines the shared contract between the maze search
// strategies: the Path and Result value types and the Strategy interface.
package search

import (
	"errors"
	"time"

	"github.com/HashamMobeen/Maze-Solver/maze"
)

// Sentinel errors shared by the search contract.
var (
	// ErrMazeNil is returned when a nil *maze.Maze is passed to a strategy.
	ErrMazeNil = errors.New("search: maze is nil")

	// ErrPathBroken indicates consecutive path positions that are not a
	// valid neighbor pair.
	ErrPathBroken = errors.New("search: path is not contiguous")

	// ErrPathRepeat indicates a position occurring twice within one path.
	ErrPathRepeat = errors.New("search: path repeats a position")

	// ErrPathEndpoints indicates a path that does not run Start → Goal.
	ErrPathEndpoints = errors.New("search: path endpoints are not start and goal")
)

// Result is the outcome of one strategy invocation on one maze.
// "No path" is a normal outcome: Found is false and Path is nil, never an
// error. Each Result is created fresh per invocation; strategies share no
// state between runs.
type Result struct {
	// Algorithm is the strategy identifier, e.g. "BFS".
	Algorithm string

	// Found reports whether a Start→Goal path exists.
	Found bool

	// Path is the Start→Goal cell sequence, nil when Found is false.
	Path Path

	// Explored counts cells actually expanded (removed from the frontier
	// and processed), not merely discovered.
	Explored int

	// Elapsed is the wall-clock duration of the search call only,
	// excluding maze construction.
	Elapsed time.Duration
}

// PathLen reports the path length in cells, 0 when no path was found.
func (r *Result) PathLen() int { return r.Path.Len() }

// Strategy is one search capability: consume a maze, produce a Result.
// The three concrete variants live in the bfs, dfs and astar packages.
// Errors are reserved for caller bugs (nil maze, cancelled context);
// an unsolvable maze is reported through Result.Found.
type Strategy interface {
	// Name returns the stable algorithm identifier.
	Name() string

	// Solve runs the search against m.
	Solve(m *maze.Maze) (*Result, error)
}

// strategyFunc adapts a name and a solve function to the Strategy interface.
type strategyFunc struct {
	name  string
	solve func(*maze.Maze) (*Result, error)
}

func (s strategyFunc) Name() string { return s.name }

func (s strategyFunc) Solve(m *maze.Maze) (*Result, error) { return s.solve(m) }

// NewStrategy wraps a solve function as a Strategy.
func NewStrategy(name string, solve func(*maze.Maze) (*Result, error)) Strategy {
	return strategyFunc{name: name, solve: solve}
}
