package search_test

import (
	"errors"
	"reflect"
	"testing"

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

// TestPath_Lengths checks the cell/edge length convention.
func TestPath_Lengths(t *testing.T) {
	var empty search.Path
	if empty.Len() != 0 || empty.Edges() != 0 {
		t.Errorf("empty path: Len=%d Edges=%d; want 0, 0", empty.Len(), empty.Edges())
	}
	p := search.Path{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}}
	if p.Len() != 3 {
		t.Errorf("Len() = %d; want 3", p.Len())
	}
	if p.Edges() != 2 {
		t.Errorf("Edges() = %d; want 2", p.Edges())
	}
}

// TestPath_Validate covers well-formed and malformed solution paths.
func TestPath_Validate(t *testing.T) {
	m := mustParse(t, "S..\n.#.\n..G")
	cases := []struct {
		name string
		path search.Path
		err  error
	}{
		{"PerimeterOK", search.Path{
			{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2},
		}, nil},
		{"Empty", nil, search.ErrPathEndpoints},
		{"WrongStart", search.Path{
			{Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2},
		}, search.ErrPathEndpoints},
		{"Teleport", search.Path{
			{Row: 0, Col: 0}, {Row: 2, Col: 2},
		}, search.ErrPathBroken},
		{"ThroughWall", search.Path{
			{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}, {Row: 2, Col: 2},
		}, search.ErrPathBroken},
		{"Repeat", search.Path{
			{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 2},
		}, search.ErrPathRepeat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.path.Validate(m)
			if tc.err == nil && err != nil {
				t.Errorf("Validate() = %v; want nil", err)
			}
			if tc.err != nil && !errors.Is(err, tc.err) {
				t.Errorf("Validate() = %v; want %v", err, tc.err)
			}
		})
	}
	if err := (search.Path{}).Validate(nil); !errors.Is(err, search.ErrMazeNil) {
		t.Errorf("Validate(nil maze) = %v; want ErrMazeNil", err)
	}
}

// TestReconstruct walks parent links goal→start and reverses.
func TestReconstruct(t *testing.T) {
	start := maze.Position{Row: 0, Col: 0}
	goal := maze.Position{Row: 0, Col: 2}
	parent := map[maze.Position]maze.Position{
		{Row: 0, Col: 1}: start,
		goal:             {Row: 0, Col: 1},
	}
	got := search.Reconstruct(parent, start, goal)
	want := search.Path{start, {Row: 0, Col: 1}, goal}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Reconstruct = %v; want %v", got, want)
	}
}

// TestResult_PathLen checks the zero-value convention for misses.
func TestResult_PathLen(t *testing.T) {
	miss := &search.Result{Algorithm: "BFS"}
	if miss.PathLen() != 0 {
		t.Errorf("PathLen() = %d; want 0", miss.PathLen())
	}
}

// TestNewStrategy adapts a plain function to the Strategy interface.
func TestNewStrategy(t *testing.T) {
	m := mustParse(t, "SG")
	s := search.NewStrategy("fake", func(mm *maze.Maze) (*search.Result, error) {
		return &search.Result{Algorithm: "fake", Found: true, Explored: mm.Walkable()}, nil
	})
	if s.Name() != "fake" {
		t.Errorf("Name() = %q; want %q", s.Name(), "fake")
	}
	res, err := s.Solve(m)
	if err != nil {
		t.Fatalf("Solve error: %v", err)
	}
	if !res.Found || res.Explored != 2 {
		t.Errorf("Solve = %+v; want Found with Explored=2", res)
	}
}
