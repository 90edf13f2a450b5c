// Package search defines the contract shared by the three maze search
// strategies in this module.
//
// A Strategy consumes a *maze.Maze and produces a *Result: the algorithm
// identifier, a path-found flag, the Start→Goal Path (cell count = length,
// edges = length-1), the number of cells actually expanded, and the elapsed
// wall-clock time of the search call. "No path" is a structured outcome
// (Found=false), never an error; Solve errors signal caller bugs such as a
// nil maze or a cancelled context.
//
// The concrete strategies live in bfs, dfs and astar; analysis consumes
// their Results. Path.Validate and Reconstruct centralize the contiguity
// check and the parent-walk path rebuild the strategies share.
package search
