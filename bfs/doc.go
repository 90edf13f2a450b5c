// Package bfs provides breadth-first search over a maze.Maze, returning
// the shortest Start→Goal path in edge count together with exploration
// telemetry.
//
// What
//
//   - Explore cells in non-decreasing distance (edge count) from Start
//     using a FIFO frontier.
//   - Returns a search.Result containing:
//   - Found: whether a path exists
//   - Path: the shortest Start→Goal cell sequence
//   - Explored: cells dequeued and expanded (Goal included)
//   - Elapsed: wall-clock time of the search call only
//   - Supports functional hooks (OnEnqueue, OnDequeue) and cancellation
//     via WithContext.
//
// Correctness notes
//
//	Cells are marked visited at enqueue time — never at dequeue — so each
//	cell is discovered exactly once, along a shortest path. Parent links
//	are recorded at the same moment and the path is rebuilt by walking
//	them back from Goal once Goal is dequeued. The search terminates the
//	instant Goal is dequeued, not when it is first discovered.
//
// Determinism
//
//	maze.Neighbors enumerates candidates in the fixed priority order
//	up, down, left, right, and BFS enqueues them in that order, so the
//	visit sequence, explored count, and path are fully reproducible.
//
// Complexity (R = rows, C = cols)
//
//   - Time:   O(R×C) (each cell enqueued and dequeued at most once)
//   - Memory: O(R×C) (queue, visited set, parent map)
//
// Errors
//
//   - ErrMazeNil      if the maze pointer is nil.
//   - ErrNeighbors    if neighbor enumeration fails (caller bug).
//   - context errors  if the supplied context is cancelled.
//
// An unsolvable maze is NOT an error: Solve returns Found=false.
package bfs
