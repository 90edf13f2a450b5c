// Package maze defines core types and sentinel errors for the maze
// subpackage of github.com/HashamMobeen/Maze-Solver.
package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze construction and lookups.
// All construction failures wrap ErrInvalidMaze, so callers may branch on
// the class with errors.Is(err, ErrInvalidMaze) or on the precise cause.
var (
	// ErrInvalidMaze is the class of every construction-time failure.
	ErrInvalidMaze = errors.New("maze: invalid maze")
	// ErrEmptyGrid indicates input has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: at least one row and one column required", ErrInvalidMaze)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrInvalidMaze)
	// ErrStartCount indicates zero or multiple Start cells.
	ErrStartCount = fmt.Errorf("%w: exactly one start cell required", ErrInvalidMaze)
	// ErrGoalCount indicates zero or multiple Goal cells.
	ErrGoalCount = fmt.Errorf("%w: exactly one goal cell required", ErrInvalidMaze)
	// ErrUnknownCell indicates a cell value or rune outside the known kinds.
	ErrUnknownCell = fmt.Errorf("%w: unknown cell", ErrInvalidMaze)

	// ErrOutOfBounds indicates a position outside [0,rows)×[0,cols).
	// Given a correctly constructed Maze this signals a caller bug.
	ErrOutOfBounds = errors.New("maze: position out of bounds")
)

// Position identifies a cell by row and column, row-major, zero-based.
type Position struct {
	Row, Col int
}

// String renders the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// CellKind classifies a single maze cell.
type CellKind uint8

const (
	// Open is a walkable cell.
	Open CellKind = iota
	// Wall is an impassable cell.
	Wall
	// Start is the unique walkable entry cell.
	Start
	// Goal is the unique walkable target cell.
	Goal
)

// Runes of the conventional text format, shared by Parse and Maze.String.
const (
	runeOpen  = '.'
	runeWall  = '#'
	runeStart = 'S'
	runeGoal  = 'G'
)

// String returns the canonical name of the kind, or "Unknown(n)" for
// values outside the defined set.
func (k CellKind) String() string {
	switch k {
	case Open:
		return "Open"
	case Wall:
		return "Wall"
	case Start:
		return "Start"
	case Goal:
		return "Goal"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(k))
	}
}

// Rune returns the text-format rune for the kind. Unknown kinds map to '?';
// New rejects them before they can reach a constructed Maze.
func (k CellKind) Rune() rune {
	switch k {
	case Open:
		return runeOpen
	case Wall:
		return runeWall
	case Start:
		return runeStart
	case Goal:
		return runeGoal
	default:
		return '?'
	}
}

// KindOf maps a text-format rune to its CellKind.
// Returns ErrUnknownCell for any rune outside {'.', '#', 'S', 'G'}.
func KindOf(r rune) (CellKind, error) {
	switch r {
	case runeOpen:
		return Open, nil
	case runeWall:
		return Wall, nil
	case runeStart:
		return Start, nil
	case runeGoal:
		return Goal, nil
	default:
		return 0, fmt.Errorf("%w: rune %q", ErrUnknownCell, r)
	}
}

// neighborOffsets is the fixed neighbor priority order: up, down, left, right.
// This ordering determines exploration order for every search strategy and
// must not change.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
