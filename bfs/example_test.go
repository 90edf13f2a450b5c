package bfs_test

import (
	"fmt"

	"github.com/HashamMobeen/Maze-Solver/bfs"
	"github.com/HashamMobeen/Maze-Solver/maze"
)

// ExampleSolve finds the shortest path around the central wall of a 3×3
// maze: 5 cells, after dequeuing all 8 walkable cells.
func ExampleSolve() {
	m, err := maze.Parse("S..\n.#.\n..G")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := bfs.Solve(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("found:", res.Found)
	fmt.Println("explored:", res.Explored)
	fmt.Println("path:", res.Path)
	// Output:
	// found: true
	// explored: 8
	// path: [(0,0) (1,0) (2,0) (2,1) (2,2)]
}

// ExampleSolve_noPath shows the structured miss for a walled-off goal.
func ExampleSolve_noPath() {
	m, err := maze.Parse("S#G")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := bfs.Solve(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("found:", res.Found, "explored:", res.Explored)
	// Output:
	// found: false explored: 1
}
