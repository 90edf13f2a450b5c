package search

import (
	"fmt"

	"github.com/HashamMobeen/Maze-Solver/maze"
)

// Path is an ordered Start→Goal cell sequence where each consecutive pair
// is a valid neighbor pair. Length counts cells; edges = Len()-1.
// A nil or empty Path means no path.
type Path []maze.Position

// Len reports the path length in cells.
func (p Path) Len() int { return len(p) }

// Edges reports the path length in edges, 0 for empty paths.
func (p Path) Edges() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// Validate checks that p is a well-formed solution for m: it starts at
// m.Start(), ends at m.Goal(), repeats no position, and every consecutive
// pair is a valid neighbor pair under the maze's neighbor rule.
// Returns ErrPathEndpoints, ErrPathRepeat, or ErrPathBroken accordingly.
func (p Path) Validate(m *maze.Maze) error {
	if m == nil {
		return ErrMazeNil
	}
	if len(p) == 0 || p[0] != m.Start() || p[len(p)-1] != m.Goal() {
		return fmt.Errorf("%w: got %v", ErrPathEndpoints, p)
	}
	seen := make(map[maze.Position]bool, len(p))
	for i, pos := range p {
		if seen[pos] {
			return fmt.Errorf("%w: %v at index %d", ErrPathRepeat, pos, i)
		}
		seen[pos] = true
		if i == 0 {
			continue
		}
		nbrs, err := m.Neighbors(p[i-1])
		if err != nil {
			return err
		}
		var adjacent bool
		for _, n := range nbrs {
			if n == pos {
				adjacent = true
				break
			}
		}
		if !adjacent {
			return fmt.Errorf("%w: %v does not follow %v", ErrPathBroken, pos, p[i-1])
		}
	}

	return nil
}

// Reconstruct rebuilds the Start→Goal path by walking parent back-links
// from goal to start, then reversing. The parent map must contain an entry
// for every discovered cell except start itself.
func Reconstruct(parent map[maze.Position]maze.Position, start, goal maze.Position) Path {
	path := Path{goal}
	for cur := goal; cur != start; {
		prev, ok := parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
