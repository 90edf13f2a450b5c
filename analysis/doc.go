// Package analysis captures per-run search telemetry and compares the
// strategies' results over a single maze.
//
// What
//
//   - Compare(m, by, opts...): runs the canonical BFS, A*, DFS line-up
//     (or any strategies supplied via WithStrategies) against one maze and
//     returns a Report with per-strategy results plus the ranking.
//   - Rank(results, by): pure ranking of existing results by explored
//     count, path length, or elapsed time, all ascending.
//   - WithRuns(n): repeat each search n times and average the elapsed
//     time — explored counts and paths are deterministic, so only timing
//     benefits from repetition.
//   - WithParallel(): run the strategies in separate goroutines. The maze
//     is read-only and every search owns its frontier, visited set and
//     parent map, so no synchronization is needed beyond the join; elapsed
//     time is still measured per algorithm.
//
// Determinism
//
//	Criterion ties are broken by the fixed identity order BFS < A* < DFS
//	(then by name for foreign strategies), so rankings are reproducible.
//	Under ByPathLength, unsolved results order after all solved ones.
//
// Errors
//
//	An unsolvable maze is not an error — Compare reports it through
//	Found=false results. ErrMazeNil, ErrCriterion and ErrOptionViolation
//	flag caller bugs; strategy errors (e.g. a cancelled context) are
//	wrapped with the strategy name.
package analysis
