// Package dfs implements depth-first search over a maze.Maze. It finds
// a Start→Goal path — not necessarily the shortest one.
package dfs

import (
	"fmt"
	"time"

	"github.com/HashamMobeen/Maze-Solver/maze"
	"github.com/HashamMobeen/Maze-Solver/search"
)

// Name is the stable algorithm identifier DFS reports in its results.
const Name = "DFS"

// walker encapsulates mutable DFS state, owned by a single Solve call.
type walker struct {
	m        *maze.Maze
	opts     Options
	stack    []maze.Position
	visited  map[maze.Position]bool
	parent   map[maze.Position]maze.Position
	explored int
}

// Strategy wraps Solve with the given options as a search.Strategy.
func Strategy(opts ...Option) search.Strategy {
	return search.NewStrategy(Name, func(m *maze.Maze) (*search.Result, error) {
		return Solve(m, opts...)
	})
}

// Solve runs depth-first search on m from its Start cell.
//
// The frontier is an explicit LIFO stack. Unlike BFS, a cell is marked
// visited only when it is popped and expanded, so the same cell may sit on
// the stack several times; a popped cell that is already visited is
// skipped. Each actual expansion (post-visited-check) increments the
// explored counter. Parent back-links are recorded when a neighbor is
// first pushed and never rewritten, keeping the reconstructed path stable.
//
// Neighbors are pushed in the fixed priority order up, down, left, right;
// LIFO semantics therefore expand them in the reverse order, right first.
// This reversal is expected DFS behavior and is part of the deterministic
// exploration contract.
//
// The search succeeds when Goal is popped and expanded; when the stack
// empties first, the result reports Found=false.
// Complexity: O(rows×cols) time and memory.
func Solve(m *maze.Maze, opts ...Option) (*search.Result, error) {
	if m == nil {
		return nil, ErrMazeNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	startedAt := time.Now()
	n := m.Walkable()
	w := &walker{
		m:       m,
		opts:    o,
		stack:   make([]maze.Position, 0, n),
		visited: make(map[maze.Position]bool, n),
		parent:  make(map[maze.Position]maze.Position, n),
	}
	w.push(m.Start())

	res, err := w.run()
	if err != nil {
		return nil, err
	}
	res.Elapsed = time.Since(startedAt)

	return res, nil
}

// push fires OnPush and appends p to the stack.
func (w *walker) push(p maze.Position) {
	w.opts.OnPush(p)
	w.stack = append(w.stack, p)
}

// run processes the stack until Goal is expanded, the stack empties,
// or the context is cancelled.
func (w *walker) run() (*search.Result, error) {
	goal := w.m.Goal()
	for len(w.stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}

		cur := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		if w.visited[cur] {
			// Duplicate stack entry; this cell was already expanded.
			continue
		}
		w.visited[cur] = true
		w.explored++
		w.opts.OnExpand(cur)

		if cur == goal {
			return &search.Result{
				Algorithm: Name,
				Found:     true,
				Path:      search.Reconstruct(w.parent, w.m.Start(), goal),
				Explored:  w.explored,
			}, nil
		}

		if err := w.pushNeighbors(cur); err != nil {
			return nil, err
		}
	}

	return &search.Result{Algorithm: Name, Explored: w.explored}, nil
}

// pushNeighbors pushes the unvisited neighbors of cur in the fixed
// priority order, recording a parent link only on first discovery.
func (w *walker) pushNeighbors(cur maze.Position) error {
	neighbors, err := w.m.Neighbors(cur)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighbors, err)
	}
	for _, nbr := range neighbors {
		if w.visited[nbr] {
			continue
		}
		if _, seen := w.parent[nbr]; !seen {
			w.parent[nbr] = cur
		}
		w.push(nbr)
	}

	return nil
}
