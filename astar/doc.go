// Package astar implements A* search over a maze.Maze using the Manhattan
// distance heuristic and a min-heap frontier with stable FIFO tie-breaks.
//
// What
//
//   - Explore cells in increasing f = g + h, where g is the confirmed edge
//     count from Start and h the Manhattan distance to Goal.
//   - Returns a search.Result with Found, Path, Explored and Elapsed.
//   - Supports an OnExpand hook and cancellation via WithContext.
//
// Why
//
//   - The Manhattan heuristic is admissible and consistent for
//     4-directional unit-cost movement, so the first expansion of any cell
//     fixes its optimal g — A* returns a shortest path, like BFS, while
//     typically expanding fewer cells.
//
// Notes on implementation choices
//
//   - Lazy decrease-key (as in classic Dijkstra implementations): a strict
//     g improvement pushes a duplicate heap entry; stale entries — cells
//     already expanded, or entries whose g exceeds the best known g — are
//     discarded when popped rather than re-expanded.
//   - Equal-f entries pop in discovery order via a monotonically
//     increasing sequence number, so the traversal is fully deterministic.
//   - Explored counts final (non-stale) expansions only; Goal counts when
//     it pops.
//
// Complexity (N = R×C cells)
//
//   - Time:   O(N log N) — each cell expands once, each relaxation pushes
//     at most one heap entry of cost O(log N).
//   - Memory: O(N) for the heap, g-scores, parents and expanded set.
//
// Errors
//
//   - ErrMazeNil      if the maze pointer is nil.
//   - ErrNeighbors    if neighbor enumeration fails (caller bug).
//   - context errors  if the supplied context is cancelled.
//
// An unsolvable maze is NOT an error: Solve returns Found=false.
package astar
