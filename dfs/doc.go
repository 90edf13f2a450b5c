// Package dfs implements depth-first search over a maze.Maze with an
// explicit LIFO stack, returning a Start→Goal path plus exploration
// telemetry.
//
// What
//
//   - Explore cells depth-first from Start; returns *a* path, with no
//     shortest-path guarantee (use bfs or astar for optimality).
//   - Returns a search.Result with Found, Path, Explored and Elapsed.
//   - Supports functional hooks (OnPush, OnExpand) and cancellation via
//     WithContext.
//
// Correctness notes
//
//	Visited marking happens at pop time, not push time — the opposite of
//	BFS. A cell may therefore be pushed several times before it is first
//	expanded; every pop re-checks the visited set and skips duplicates, so
//	each cell is expanded (and counted) at most once. Parent links are
//	recorded at a neighbor's first push and never rewritten.
//
// Determinism
//
//	Neighbors are pushed in the fixed priority order up, down, left,
//	right. Because the stack is LIFO, siblings are expanded in reverse
//	push order — right before up. That reversal is deliberate, documented
//	behavior; it keeps explored counts and paths reproducible across runs.
//
// Complexity (R = rows, C = cols)
//
//   - Time:   O(R×C) (each cell expanded at most once, pushed O(degree) times)
//   - Memory: O(R×C)
//
// Errors
//
//   - ErrMazeNil      if the maze pointer is nil.
//   - ErrNeighbors    if neighbor enumeration fails (caller bug).
//   - context errors  if the supplied context is cancelled.
//
// An unsolvable maze is NOT an error: Solve returns Found=false.
package dfs
