package dfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/HashamMobeen/Maze-Solver/dfs"
	"github.com/HashamMobeen/Maze-Solver/maze"
	"github.com/HashamMobeen/Maze-Solver/search"
)

func mustParse(t *testing.T, text string) *maze.Maze {
	t.Helper()
	m, err := maze.Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", text, err)
	}

	return m
}

// TestSolve_Errors verifies invalid-input rejection.
func TestSolve_Errors(t *testing.T) {
	if _, err := dfs.Solve(nil); !errors.Is(err, dfs.ErrMazeNil) {
		t.Errorf("nil maze: want ErrMazeNil, got %v", err)
	}
}

// TestSolve_PerimeterMaze solves the canonical 3×3 maze. DFS dives along
// the top edge and down the right side: 5 expansions, a 5-cell path.
func TestSolve_PerimeterMaze(t *testing.T) {
	m := mustParse(t, "S..\n.#.\n..G")
	res, err := dfs.Solve(m)
	if err != nil {
		t.Fatalf("Solve error: %v", err)
	}
	if !res.Found {
		t.Fatal("Found = false; want true")
	}
	if res.Algorithm != dfs.Name {
		t.Errorf("Algorithm = %q; want %q", res.Algorithm, dfs.Name)
	}
	wantPath := search.Path{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2},
	}
	if !reflect.DeepEqual(res.Path, wantPath) {
		t.Errorf("Path = %v; want %v", res.Path, wantPath)
	}
	if res.Explored != 5 {
		t.Errorf("Explored = %d; want 5", res.Explored)
	}
	if err := res.Path.Validate(m); err != nil {
		t.Errorf("path invalid: %v", err)
	}
}

// TestSolve_LIFOReversal pins the stack semantics: neighbors are pushed
// up,down,left,right, so siblings expand in reverse order — right first.
func TestSolve_LIFOReversal(t *testing.T) {
	m := mustParse(t, "S.\n.G")
	var expands []maze.Position
	res, err := dfs.Solve(m, dfs.WithOnExpand(func(p maze.Position) { expands = append(expands, p) }))
	if err != nil {
		t.Fatalf("Solve error: %v", err)
	}
	want := []maze.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}}
	if !reflect.DeepEqual(expands, want) {
		t.Errorf("expansion order = %v; want %v (right before down)", expands, want)
	}
	wantPath := search.Path{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}}
	if !reflect.DeepEqual(res.Path, wantPath) {
		t.Errorf("Path = %v; want %v", res.Path, wantPath)
	}
}

// TestSolve_DuplicatePushes allows a cell onto the stack twice but expands
// it once: in an open 3×3 room, the center is discovered from two sides
// before it ever reaches the top of the stack.
func TestSolve_DuplicatePushes(t *testing.T) {
	m := mustParse(t, "S..\n...\n..G")
	pushes := map[maze.Position]int{}
	expands := map[maze.Position]int{}
	res, err := dfs.Solve(m,
		dfs.WithOnPush(func(p maze.Position) { pushes[p]++ }),
		dfs.WithOnExpand(func(p maze.Position) { expands[p]++ }),
	)
	if err != nil {
		t.Fatalf("Solve error: %v", err)
	}
	if !res.Found {
		t.Fatal("Found = false; want true")
	}
	for p, n := range expands {
		if n != 1 {
			t.Errorf("cell %v expanded %d times; want 1", p, n)
		}
	}
	var multi bool
	for _, n := range pushes {
		if n > 1 {
			multi = true
		}
	}
	if !multi {
		t.Error("expected at least one cell pushed more than once before expansion")
	}
	if res.Explored != len(expands) {
		t.Errorf("Explored = %d; want %d (one per expansion)", res.Explored, len(expands))
	}
}

// TestSolve_NoPath treats a disconnected goal as a structured miss.
func TestSolve_NoPath(t *testing.T) {
	m := mustParse(t, "S.#.\n..#G")
	res, err := dfs.Solve(m)
	if err != nil {
		t.Fatalf("Solve error: %v", err)
	}
	if res.Found {
		t.Error("Found = true; want false")
	}
	if res.Path != nil {
		t.Errorf("Path = %v; want nil", res.Path)
	}
	if res.Explored != 4 {
		t.Errorf("Explored = %d; want 4 (the start component)", res.Explored)
	}
}

// TestSolve_LongerThanShortest pins DFS on a maze where diving right
// first is a long detour: the optimum runs 4 cells down the left edge,
// DFS returns 12 around the wall block.
func TestSolve_LongerThanShortest(t *testing.T) {
	m := mustParse(t, "S....\n.###.\n.....\nG####")
	res, err := dfs.Solve(m)
	if err != nil {
		t.Fatalf("Solve error: %v", err)
	}
	if !res.Found {
		t.Fatal("Found = false; want true")
	}
	if err := res.Path.Validate(m); err != nil {
		t.Fatalf("path invalid: %v", err)
	}
	if res.PathLen() != 12 {
		t.Errorf("PathLen = %d; want 12 (the right-first detour)", res.PathLen())
	}
	if res.Explored != 12 {
		t.Errorf("Explored = %d; want 12", res.Explored)
	}
}

// TestSolve_Deterministic compares two runs of the same search.
func TestSolve_Deterministic(t *testing.T) {
	m, err := maze.Random(15, 15, 0.3, maze.WithSeed(11))
	if err != nil {
		t.Fatalf("Random error: %v", err)
	}
	a, err := dfs.Solve(m)
	if err != nil {
		t.Fatalf("Solve error: %v", err)
	}
	b, err := dfs.Solve(m)
	if err != nil {
		t.Fatalf("Solve error: %v", err)
	}
	if a.Found != b.Found || a.Explored != b.Explored || !reflect.DeepEqual(a.Path, b.Path) {
		t.Error("two identical runs produced different results")
	}
}

// TestSolve_Cancellation verifies that a cancelled context halts DFS.
func TestSolve_Cancellation(t *testing.T) {
	m, err := maze.Backtracker(31, 31, maze.WithSeed(5))
	if err != nil {
		t.Fatalf("Backtracker error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := dfs.Solve(m, dfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("cancellation: want context.Canceled, got %v", err)
	}
}

// TestStrategy_Adapter ensures the Strategy wrapper matches Solve.
func TestStrategy_Adapter(t *testing.T) {
	m := mustParse(t, "S..\n.#.\n..G")
	s := dfs.Strategy()
	if s.Name() != dfs.Name {
		t.Errorf("Name() = %q; want %q", s.Name(), dfs.Name)
	}
	res, err := s.Solve(m)
	if err != nil {
		t.Fatalf("Solve error: %v", err)
	}
	if res.Explored != 5 {
		t.Errorf("Explored = %d; want 5", res.Explored)
	}
}
