// generate.go — deterministic maze generators: bordered random fields,
// perfect backtracker mazes, and open rooms.
//
// Canonical model:
//   - Every generated maze is fully bordered by walls.
//   - Start sits at (1,1); Goal at (rows-2, cols-2).
//   - Stochastic generators draw from an explicit *rand.Rand; the same
//     seed and parameters always reproduce the same maze.
//
// Contract:
//   - rows ≥ minGenDim and cols ≥ minGenDim (else ErrDimension).
//   - Random: 0 ≤ wallDensity ≤ 1 (else ErrWallDensity). A dense field may
//     legitimately disconnect Start from Goal; searches then report no path.
//   - Backtracker: dimensions are rounded up to odd so corridors align;
//     the result is a perfect maze (every cell pair joined by one path).
//   - Returns only sentinel errors; never panics at runtime.
package maze

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for maze generation.
var (
	// ErrDimension indicates generator dimensions below the minimum.
	ErrDimension = errors.New("maze: generator dimensions too small")
	// ErrWallDensity indicates a wall density outside [0,1].
	ErrWallDensity = errors.New("maze: wall density must be within [0,1]")
)

const (
	// minGenDim keeps the bordered interior large enough to hold distinct
	// Start and Goal cells.
	minGenDim = 4
	// defaultGenSeed freezes unseeded stochastic generators so repeated
	// calls stay reproducible.
	defaultGenSeed = 42
)

// GenOption configures maze generation via functional arguments.
type GenOption func(*genConfig)

type genConfig struct {
	rng *rand.Rand
}

// WithSeed creates a fresh deterministic source seeded with seed.
func WithSeed(seed int64) GenOption {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies an explicit random source.
// Passing nil has no effect (the default seed is retained).
func WithRand(r *rand.Rand) GenOption {
	return func(c *genConfig) {
		if r != nil {
			c.rng = r
		}
	}
}

func newGenConfig(opts ...GenOption) genConfig {
	cfg := genConfig{rng: rand.New(rand.NewSource(defaultGenSeed))}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Random generates a bordered rows×cols maze whose interior cells become
// walls independently with probability wallDensity.
// Returns ErrDimension or ErrWallDensity on invalid parameters.
// Complexity: O(rows×cols).
func Random(rows, cols int, wallDensity float64, opts ...GenOption) (*Maze, error) {
	if rows < minGenDim || cols < minGenDim {
		return nil, fmt.Errorf("%w: rows=%d, cols=%d (each must be ≥ %d)", ErrDimension, rows, cols, minGenDim)
	}
	if wallDensity < 0 || wallDensity > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrWallDensity, wallDensity)
	}
	cfg := newGenConfig(opts...)

	cells := borderedGrid(rows, cols)
	for r := 1; r < rows-1; r++ {
		for c := 1; c < cols-1; c++ {
			if cfg.rng.Float64() < wallDensity {
				cells[r][c] = Wall
			}
		}
	}
	placeEndpoints(cells)

	return New(cells)
}

// Backtracker generates a perfect maze with the recursive-backtracking
// algorithm: every walkable cell is reachable and exactly one path joins
// any two of them. Even dimensions are rounded up to the next odd value.
// Returns ErrDimension on dimensions below the minimum.
// Complexity: O(rows×cols).
func Backtracker(rows, cols int, opts ...GenOption) (*Maze, error) {
	if rows < minGenDim || cols < minGenDim {
		return nil, fmt.Errorf("%w: rows=%d, cols=%d (each must be ≥ %d)", ErrDimension, rows, cols, minGenDim)
	}
	if rows%2 == 0 {
		rows++
	}
	if cols%2 == 0 {
		cols++
	}
	cfg := newGenConfig(opts...)

	// Start from solid walls and carve corridors on odd coordinates.
	cells := make([][]CellKind, rows)
	for r := range cells {
		cells[r] = make([]CellKind, cols)
		for c := range cells[r] {
			cells[r][c] = Wall
		}
	}
	carve(cells, 1, 1, cfg.rng)
	placeEndpoints(cells)

	return New(cells)
}

// carve opens (r,c) and recursively tunnels two cells at a time in a
// shuffled direction order, knocking down the wall between.
func carve(cells [][]CellKind, r, c int, rng *rand.Rand) {
	cells[r][c] = Open
	dirs := [4][2]int{{-2, 0}, {2, 0}, {0, -2}, {0, 2}}
	rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })
	for _, d := range dirs {
		nr, nc := r+d[0], c+d[1]
		if nr < 1 || nr >= len(cells)-1 || nc < 1 || nc >= len(cells[0])-1 {
			continue
		}
		if cells[nr][nc] != Wall {
			continue
		}
		cells[r+d[0]/2][c+d[1]/2] = Open
		carve(cells, nr, nc, rng)
	}
}

// Empty generates a bordered rows×cols maze with a fully open interior.
// Returns ErrDimension on dimensions below the minimum.
func Empty(rows, cols int) (*Maze, error) {
	if rows < minGenDim || cols < minGenDim {
		return nil, fmt.Errorf("%w: rows=%d, cols=%d (each must be ≥ %d)", ErrDimension, rows, cols, minGenDim)
	}
	cells := borderedGrid(rows, cols)
	placeEndpoints(cells)

	return New(cells)
}

// borderedGrid allocates an open grid walled along all four edges.
func borderedGrid(rows, cols int) [][]CellKind {
	cells := make([][]CellKind, rows)
	for r := range cells {
		cells[r] = make([]CellKind, cols)
		for c := range cells[r] {
			if r == 0 || r == rows-1 || c == 0 || c == cols-1 {
				cells[r][c] = Wall
			}
		}
	}

	return cells
}

// placeEndpoints pins Start to the top-left interior corner and Goal to the
// bottom-right interior corner, overriding whatever the generator left there.
func placeEndpoints(cells [][]CellKind) {
	rows, cols := len(cells), len(cells[0])
	cells[1][1] = Start
	cells[rows-2][cols-2] = Goal
}
