// Package bfs implements breadth-first search over a maze.Maze,
// guaranteeing the shortest Start→Goal path in edge count.
package bfs

import (
	"fmt"
	"time"

	"github.com/HashamMobeen/Maze-Solver/maze"
	"github.com/HashamMobeen/Maze-Solver/search"
)

// Name is the stable algorithm identifier BFS reports in its results.
const Name = "BFS"

// queueItem pairs a cell with its BFS depth from Start.
type queueItem struct {
	pos   maze.Position
	depth int
}

// walker encapsulates mutable BFS state, owned by a single Solve call.
type walker struct {
	m        *maze.Maze
	opts     Options
	queue    []queueItem
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

// Solve runs breadth-first search on m from its Start cell.
//
// The frontier is a FIFO queue. A cell is marked visited the moment it is
// enqueued, so it can never be enqueued twice; parent back-links are
// recorded at the same moment. A cell counts as explored when it is
// dequeued, and the search succeeds the instant Goal is dequeued — the
// Goal cell itself is included in the explored count. When the queue
// empties first, the result reports Found=false.
//
// Returns ErrMazeNil for a nil maze and the context error on cancellation;
// an unsolvable maze is not an error.
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
		queue:   make([]queueItem, 0, n),
		visited: make(map[maze.Position]bool, n),
		parent:  make(map[maze.Position]maze.Position, n),
	}
	w.enqueue(m.Start(), 0)

	res, err := w.run()
	if err != nil {
		return nil, err
	}
	res.Elapsed = time.Since(startedAt)

	return res, nil
}

// enqueue marks p visited at depth d, fires OnEnqueue, and appends it to
// the queue. Visited-at-enqueue is the BFS correctness requirement: the
// first discovery of a cell is along a shortest path.
func (w *walker) enqueue(p maze.Position, d int) {
	w.visited[p] = true
	w.opts.OnEnqueue(p, d)
	w.queue = append(w.queue, queueItem{pos: p, depth: d})
}

// run processes the queue until Goal is dequeued, the queue empties,
// or the context is cancelled.
func (w *walker) run() (*search.Result, error) {
	goal := w.m.Goal()
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.opts.OnDequeue(item.pos, item.depth)
		w.explored++

		if item.pos == goal {
			return &search.Result{
				Algorithm: Name,
				Found:     true,
				Path:      search.Reconstruct(w.parent, w.m.Start(), goal),
				Explored:  w.explored,
			}, nil
		}

		if err := w.enqueueNeighbors(item); err != nil {
			return nil, err
		}
	}

	return &search.Result{Algorithm: Name, Explored: w.explored}, nil
}

// enqueueNeighbors discovers the unvisited neighbors of item in the fixed
// priority order and enqueues each exactly once.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.m.Neighbors(item.pos)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighbors, err)
	}
	for _, nbr := range neighbors {
		if w.visited[nbr] {
			continue
		}
		w.parent[nbr] = item.pos
		w.enqueue(nbr, item.depth+1)
	}

	return nil
}
