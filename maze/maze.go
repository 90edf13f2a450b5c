// Package maze provides an immutable rectangular grid of classified cells
// with a bounds-checked, fixed-order neighbor contract. It is the data model
// every search strategy in this module operates on.
package maze

import (
	"fmt"
	"strings"
)

// Maze is a rectangular grid of cells with exactly one Start and one Goal.
// It is immutable once built: New deep-copies its input and no mutation
// operations are exposed, so a Maze may be shared across concurrent
// searches without synchronization.
type Maze struct {
	cells [][]CellKind
	rows  int
	cols  int
	start Position
	goal  Position
}

// New constructs a Maze from a non-empty, rectangular 2D slice of kinds.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrUnknownCell, ErrStartCount,
// or ErrGoalCount (all wrapping ErrInvalidMaze) on invalid input.
// Complexity: O(rows×cols) time and memory.
func New(cells [][]CellKind) (*Maze, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(cells), len(cells[0])

	m := &Maze{
		cells: make([][]CellKind, rows),
		rows:  rows,
		cols:  cols,
	}
	var starts, goals int
	for r, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
		m.cells[r] = make([]CellKind, cols)
		copy(m.cells[r], row)
		for c, k := range row {
			switch k {
			case Open, Wall:
			case Start:
				starts++
				m.start = Position{Row: r, Col: c}
			case Goal:
				goals++
				m.goal = Position{Row: r, Col: c}
			default:
				return nil, fmt.Errorf("%w: kind %d at %v", ErrUnknownCell, uint8(k), Position{Row: r, Col: c})
			}
		}
	}
	if starts != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrStartCount, starts)
	}
	if goals != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrGoalCount, goals)
	}

	return m, nil
}

// Parse builds a Maze from the conventional multi-line text format:
// 'S'=start, 'G'=goal, '#'=wall, '.'=open. Leading and trailing blank
// space around the whole input is ignored; any other rune is rejected
// with ErrUnknownCell. Validation rules match New.
func Parse(s string) (*Maze, error) {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	cells := make([][]CellKind, len(lines))
	for r, line := range lines {
		row := make([]CellKind, 0, len(line))
		for _, ch := range line {
			k, err := KindOf(ch)
			if err != nil {
				return nil, fmt.Errorf("%w at row %d", err, r)
			}
			row = append(row, k)
		}
		cells[r] = row
	}

	return New(cells)
}

// Rows reports the number of rows.
func (m *Maze) Rows() int { return m.rows }

// Cols reports the number of columns.
func (m *Maze) Cols() int { return m.cols }

// Start returns the position of the unique Start cell.
func (m *Maze) Start() Position { return m.start }

// Goal returns the position of the unique Goal cell.
func (m *Maze) Goal() Position { return m.goal }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (m *Maze) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < m.rows && p.Col >= 0 && p.Col < m.cols
}

// Classify returns the kind of the cell at p.
// Returns ErrOutOfBounds if p lies outside the grid.
func (m *Maze) Classify(p Position) (CellKind, error) {
	if !m.InBounds(p) {
		return 0, fmt.Errorf("%w: %v in %d×%d grid", ErrOutOfBounds, p, m.rows, m.cols)
	}

	return m.cells[p.Row][p.Col], nil
}

// Neighbors returns the walkable neighbors of p in the fixed priority order
// up, down, left, right, excluding out-of-bounds and Wall cells. Up to four
// positions are produced. Returns ErrOutOfBounds for a malformed p.
// Complexity: O(1).
func (m *Maze) Neighbors(p Position) ([]Position, error) {
	if !m.InBounds(p) {
		return nil, fmt.Errorf("%w: %v in %d×%d grid", ErrOutOfBounds, p, m.rows, m.cols)
	}
	out := make([]Position, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Position{Row: p.Row + d[0], Col: p.Col + d[1]}
		if !m.InBounds(n) || m.cells[n.Row][n.Col] == Wall {
			continue
		}
		out = append(out, n)
	}

	return out, nil
}

// Walkable reports the number of non-wall cells (open + start + goal).
// Every search explores at most this many cells.
func (m *Maze) Walkable() int {
	var n int
	for _, row := range m.cells {
		for _, k := range row {
			if k != Wall {
				n++
			}
		}
	}

	return n
}

// String renders the maze in the text format accepted by Parse, one line
// per row, without a trailing newline. Parse(m.String()) reproduces m.
func (m *Maze) String() string {
	var b strings.Builder
	b.Grow(m.rows * (m.cols + 1))
	for r, row := range m.cells {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, k := range row {
			b.WriteRune(k.Rune())
		}
	}

	return b.String()
}
