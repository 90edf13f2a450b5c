package maze_test

import (
	"fmt"

	"github.com/HashamMobeen/Maze-Solver/maze"
)

// ExampleParse loads the conventional text format and reads the endpoints.
func ExampleParse() {
	m, err := maze.Parse("S..\n.#.\n..G")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(m)
	fmt.Println("start:", m.Start(), "goal:", m.Goal())
	// Output:
	// S..
	// .#.
	// ..G
	// start: (0,0) goal: (2,2)
}

// ExampleMaze_Neighbors shows the fixed priority order: up, down, left,
// right, with the central wall excluded.
func ExampleMaze_Neighbors() {
	m, err := maze.Parse("S..\n.#.\n..G")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	nbrs, err := m.Neighbors(maze.Position{Row: 1, Col: 0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(nbrs)
	// Output:
	// [(0,0) (2,0)]
}

// ExampleEmpty renders a minimal open room.
func ExampleEmpty() {
	m, err := maze.Empty(4, 4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(m)
	// Output:
	// ####
	// #S.#
	// #.G#
	// ####
}

// ExampleRandom pins both density extremes: 1 walls the whole interior
// except the endpoints, which are always placed last.
func ExampleRandom() {
	m, err := maze.Random(5, 7, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(m)
	// Output:
	// #######
	// #S#####
	// #######
	// #####G#
	// #######
}
