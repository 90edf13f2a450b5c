// Package analysis runs the search strategies against one maze and ranks
// their results by a selectable criterion.
package analysis

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/HashamMobeen/Maze-Solver/astar"
	"github.com/HashamMobeen/Maze-Solver/bfs"
	"github.com/HashamMobeen/Maze-Solver/dfs"
	"github.com/HashamMobeen/Maze-Solver/maze"
	"github.com/HashamMobeen/Maze-Solver/search"
)

// algorithmOrder is the fixed total order over algorithm identity used to
// break criterion ties deterministically: BFS before A* before DFS.
var algorithmOrder = map[string]int{
	bfs.Name:   0,
	astar.Name: 1,
	dfs.Name:   2,
}

// Report aggregates one comparison run over a single maze.
type Report struct {
	// Results holds one result per strategy, in invocation order.
	Results []*search.Result

	// Ranked holds the same results ordered per the criterion.
	Ranked []*search.Result

	// Criterion is the metric Ranked was ordered by.
	Criterion Criterion

	// Runs is how many times each search was repeated.
	Runs int
}

// Names returns the ranked algorithm identifiers, best first.
func (r *Report) Names() []string {
	names := make([]string, len(r.Ranked))
	for i, res := range r.Ranked {
		names[i] = res.Algorithm
	}

	return names
}

// Solved reports whether every strategy found a path.
func (r *Report) Solved() bool {
	for _, res := range r.Results {
		if !res.Found {
			return false
		}
	}

	return true
}

// Compare runs the strategies against m and returns their results together
// with the ranking by criterion. Without WithStrategies, the canonical
// line-up BFS, A*, DFS is used, each wired to the configured context.
//
// A maze none of the strategies can solve is NOT an error: the Report
// simply carries Found=false results, ranked per the criterion's
// unsolved-last rule. Errors surface only for caller bugs: a nil maze,
// an unknown criterion, an invalid option, or a strategy failure.
//
// The function performs no I/O and mutates nothing it did not allocate.
func Compare(m *maze.Maze, by Criterion, opts ...Option) (*Report, error) {
	if m == nil {
		return nil, ErrMazeNil
	}
	if !by.valid() {
		return nil, fmt.Errorf("%w: %d", ErrCriterion, int(by))
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	strategies := o.Strategies
	if len(strategies) == 0 {
		strategies = []search.Strategy{
			bfs.Strategy(bfs.WithContext(o.Ctx)),
			astar.Strategy(astar.WithContext(o.Ctx)),
			dfs.Strategy(dfs.WithContext(o.Ctx)),
		}
	}

	results := make([]*search.Result, len(strategies))
	errs := make([]error, len(strategies))
	run := func(i int) {
		res, err := repeat(m, strategies[i], o.Runs)
		if err != nil {
			errs[i] = fmt.Errorf("analysis: %s: %w", strategies[i].Name(), err)
			return
		}
		results[i] = res
	}

	if o.Parallel {
		var wg sync.WaitGroup
		for i := range strategies {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				run(i)
			}(i)
		}
		wg.Wait()
	} else {
		for i := range strategies {
			run(i)
		}
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return &Report{
		Results:   results,
		Ranked:    Rank(results, by),
		Criterion: by,
		Runs:      o.Runs,
	}, nil
}

// repeat invokes s.Solve runs times and returns the first result with its
// Elapsed replaced by the average over all repetitions. Search output is
// deterministic, so only the timing varies between repetitions.
func repeat(m *maze.Maze, s search.Strategy, runs int) (*search.Result, error) {
	var first *search.Result
	var total time.Duration
	for i := 0; i < runs; i++ {
		res, err := s.Solve(m)
		if err != nil {
			return nil, err
		}
		if first == nil {
			first = res
		}
		total += res.Elapsed
	}
	first.Elapsed = total / time.Duration(runs)

	return first, nil
}

// Rank returns a new slice with results ordered ascending by the
// criterion. Unsolved results rank after solved ones under ByPathLength;
// criterion ties fall back to the fixed algorithm order BFS < A* < DFS,
// then to the identifier itself, so the ordering is a deterministic total
// order. The input slice is not mutated.
func Rank(results []*search.Result, by Criterion) []*search.Result {
	out := make([]*search.Result, len(results))
	copy(out, results)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		ka, kb := criterionKey(a, by), criterionKey(b, by)
		if ka != kb {
			return ka < kb
		}
		ra, rb := identityRank(a.Algorithm), identityRank(b.Algorithm)
		if ra != rb {
			return ra < rb
		}

		return a.Algorithm < b.Algorithm
	})

	return out
}

// Names returns the algorithm identifiers of results in order.
func Names(results []*search.Result) []string {
	names := make([]string, len(results))
	for i, res := range results {
		names[i] = res.Algorithm
	}

	return names
}

// criterionKey maps a result to its sortable metric value.
func criterionKey(r *search.Result, by Criterion) int64 {
	switch by {
	case ByPathLength:
		if !r.Found {
			return math.MaxInt64
		}
		return int64(r.PathLen())
	case ByElapsed:
		return int64(r.Elapsed)
	default:
		return int64(r.Explored)
	}
}

// identityRank places known algorithms in their fixed order and any
// unknown identifier after them.
func identityRank(name string) int {
	if r, ok := algorithmOrder[name]; ok {
		return r
	}

	return len(algorithmOrder)
}
