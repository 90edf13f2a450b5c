// Package astar implements A* search over a maze.Maze with the Manhattan
// heuristic, guaranteeing a shortest Start→Goal path while typically
// expanding fewer cells than BFS.
package astar

import (
	"container/heap"
	"fmt"
	"time"

	"github.com/HashamMobeen/Maze-Solver/maze"
	"github.com/HashamMobeen/Maze-Solver/search"
)

// Name is the stable algorithm identifier A* reports in its results.
const Name = "A*"

// Strategy wraps Solve with the given options as a search.Strategy.
func Strategy(opts ...Option) search.Strategy {
	return search.NewStrategy(Name, func(m *maze.Maze) (*search.Result, error) {
		return Solve(m, opts...)
	})
}

// Solve runs A* on m from its Start cell toward its Goal cell.
//
// The frontier is a min-heap ordered by f = g + h, where g is the
// confirmed edge count from Start and h the Manhattan distance to Goal.
// Entries with equal f are popped in discovery order (a monotonically
// increasing sequence number breaks ties), keeping results deterministic.
//
// Relaxation follows the lazy decrease-key pattern: finding a cheaper g
// for an already-enqueued cell pushes a duplicate entry instead of
// re-keying the old one. A popped entry is discarded as stale when its
// cell was already expanded or its recorded g exceeds the best known g.
// The explored counter increments once per cell, on its final expansion.
//
// The search succeeds when Goal pops with a valid entry; when the heap
// empties first, the result reports Found=false.
// Complexity: O(R×C log(R×C)) time, O(R×C) memory.
func Solve(m *maze.Maze, opts ...Option) (*search.Result, error) {
	if m == nil {
		return nil, ErrMazeNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	startedAt := time.Now()
	r := newRunner(m, o)
	res, err := r.process()
	if err != nil {
		return nil, err
	}
	res.Elapsed = time.Since(startedAt)

	return res, nil
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	m        *maze.Maze
	opts     Options
	goal     maze.Position
	pq       frontier
	seq      int                             // discovery counter for FIFO tie-breaks
	gScore   map[maze.Position]int           // best known g per discovered cell
	parent   map[maze.Position]maze.Position // predecessor on the best known path
	expanded map[maze.Position]bool          // cells with finalized g
	explored int
}

// newRunner seeds the heap with Start at g=0, f=h(Start).
func newRunner(m *maze.Maze, o Options) *runner {
	n := m.Walkable()
	r := &runner{
		m:        m,
		opts:     o,
		goal:     m.Goal(),
		pq:       make(frontier, 0, n),
		gScore:   make(map[maze.Position]int, n),
		parent:   make(map[maze.Position]maze.Position, n),
		expanded: make(map[maze.Position]bool, n),
	}
	heap.Init(&r.pq)
	start := m.Start()
	r.gScore[start] = 0
	heap.Push(&r.pq, &pqItem{pos: start, g: 0, f: Manhattan(start, r.goal)})

	return r
}

// process pops the lowest-f entry, skips stale ones, and relaxes the
// neighbors of each finally-expanded cell.
func (r *runner) process() (*search.Result, error) {
	for r.pq.Len() > 0 {
		select {
		case <-r.opts.Ctx.Done():
			return nil, r.opts.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*pqItem)
		if r.expanded[item.pos] || item.g > r.gScore[item.pos] {
			// Stale entry: the cell was finalized, or a cheaper path to it
			// was found after this entry was enqueued.
			continue
		}
		r.expanded[item.pos] = true
		r.explored++
		r.opts.OnExpand(item.pos, item.g)

		if item.pos == r.goal {
			return &search.Result{
				Algorithm: Name,
				Found:     true,
				Path:      search.Reconstruct(r.parent, r.m.Start(), r.goal),
				Explored:  r.explored,
			}, nil
		}

		if err := r.relax(item); err != nil {
			return nil, err
		}
	}

	return &search.Result{Algorithm: Name, Explored: r.explored}, nil
}

// relax attempts to improve the g of each neighbor of item, pushing a new
// heap entry on every strict improvement (lazy decrease-key).
func (r *runner) relax(item *pqItem) error {
	neighbors, err := r.m.Neighbors(item.pos)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighbors, err)
	}
	for _, nbr := range neighbors {
		if r.expanded[nbr] {
			continue
		}
		tentative := item.g + 1
		if best, seen := r.gScore[nbr]; seen && tentative >= best {
			continue
		}
		r.gScore[nbr] = tentative
		r.parent[nbr] = item.pos
		r.seq++
		heap.Push(&r.pq, &pqItem{
			pos: nbr,
			g:   tentative,
			f:   tentative + Manhattan(nbr, r.goal),
			seq: r.seq,
		})
	}

	return nil
}

// pqItem is one frontier entry: a cell with the g it was enqueued under,
// its priority f = g + h, and its discovery sequence number.
type pqItem struct {
	pos maze.Position
	g   int
	f   int
	seq int
}

// frontier is a min-heap of *pqItem ordered by f ascending, with equal-f
// entries ordered by discovery sequence (stable FIFO tie-break).
type frontier []*pqItem

func (q frontier) Len() int { return len(q) }

func (q frontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}

	return q[i].seq < q[j].seq
}

func (q frontier) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *frontier) Push(x interface{}) { *q = append(*q, x.(*pqItem)) }

func (q *frontier) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}
