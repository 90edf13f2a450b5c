// Package mazesolver is an in-memory toolkit for building, solving,
// and benchmarking 2D grid mazes — from the grid primitives to three
// interchangeable search strategies and their comparative metrics.
//
// 🚀 What is Maze-Solver?
//
//	A small, deterministic library that brings together:
//		• Grid primitives: immutable rectangular mazes with open, wall, start and goal cells
//		• Parsing & generation: text mazes (S/G/#/.), random fields, perfect backtracker mazes
//		• Traversals: BFS (shortest path), DFS (any path), A* (shortest path, fewer expansions)
//		• Analysis: per-run telemetry (explored cells, path length, elapsed time) and ranking
//
// ✨ Why choose Maze-Solver?
//
//   - Reproducible – fixed neighbor order (up, down, left, right) and stable
//     tie-breaking make every traversal fully deterministic
//   - Rock-solid guarantees – immutable grids, per-call search state, in-code docs & hooks
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – add custom hooks (OnEnqueue, OnExpand…) for custom logic
//
// Under the hood, everything is organized per concern:
//
//	maze/     — Maze, Position, CellKind; parsing, generation, neighbor contract
//	search/   — shared Strategy contract, Path and Result types
//	bfs/      — breadth-first search: optimal in edge count
//	dfs/      — depth-first search: finds a path, not the shortest
//	astar/    — A* with Manhattan heuristic: optimal, typically cheaper than BFS
//	analysis/ — runs the strategies against one maze and ranks the outcomes
//
// Quick ASCII example:
//
//	S . .
//	. # .
//	. . G
//
//	a 3×3 maze whose shortest path runs 5 cells around the central wall.
//
// Dive into each package's doc.go for contracts, complexity notes, and
// runnable examples.
package mazesolver
