// Package maze models a 2D grid maze as an immutable, rectangular
// collection of classified cells, and exposes the neighbor contract every
// search strategy in this module relies on.
//
// What
//
//   - Maze: rows×cols grid of CellKind (Open, Wall, Start, Goal) with
//     exactly one Start and exactly one Goal. Deep-copied at construction,
//     never mutated afterwards.
//   - Classify(p): bounds-checked cell lookup.
//   - Neighbors(p): up to four walkable neighbors in the fixed priority
//     order up, down, left, right. This ordering is an invariant — it
//     determines the exploration order of BFS, DFS and A*, and keeps their
//     explored counts and paths reproducible.
//   - Parse / String: the conventional text format ('S', 'G', '#', '.'),
//     round-trippable in both directions.
//   - Random / Backtracker / Empty: deterministic generators; seed with
//     WithSeed or WithRand for reproducible stochastic mazes.
//
// Why
//
//   - One validated, read-only grid serves any number of concurrent search
//     invocations without synchronization.
//   - Fail-fast construction: invalid input never reaches a search.
//
// Determinism
//
//	Neighbors always enumerates candidates in the same fixed order, and the
//	generators draw from an explicit seeded source, so identical inputs
//	always yield identical mazes and identical traversals over them.
//
// Complexity (R = rows, C = cols)
//
//   - Construction, parsing, generation: O(R×C)
//   - InBounds, Classify, Neighbors: O(1)
//
// Errors
//
//   - ErrInvalidMaze        class of every construction failure:
//   - ErrEmptyGrid        no rows or no columns
//   - ErrNonRectangular   rows of differing lengths
//   - ErrStartCount       zero or multiple Start cells
//   - ErrGoalCount        zero or multiple Goal cells
//   - ErrUnknownCell      unknown rune or kind value
//   - ErrOutOfBounds        Classify/Neighbors called with a malformed position
//   - ErrDimension          generator dimensions below the minimum
//   - ErrWallDensity        random wall density outside [0,1]
package maze
