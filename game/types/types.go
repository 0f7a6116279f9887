package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidGrid is returned when grid dimensions or a position string cannot be used
var ErrInvalidGrid = errors.New("invalid grid")

// Point identifies a grid cell by row and column
type Point struct {
	Row, Col int
}

func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

// ParsePoint reads a "row,col" pair
func ParsePoint(s string) (Point, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 2 {
		return Point{}, fmt.Errorf("%w: position %q is not row,col", ErrInvalidGrid, s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Point{}, fmt.Errorf("%w: row in %q: %v", ErrInvalidGrid, s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Point{}, fmt.Errorf("%w: col in %q: %v", ErrInvalidGrid, s, err)
	}
	return Point{Row: row, Col: col}, nil
}

// WallPolicy decides what happens at the grid edge
type WallPolicy int

const (
	Bounded WallPolicy = iota // Edge blocks movement
	Wrap                      // Toroidal adjacency
)

func (w WallPolicy) String() string {
	switch w {
	case Wrap:
		return "wrap"
	case Bounded:
		return "bounded"
	default:
		return "unknown"
	}
}

// ParseWallPolicy accepts "wrap" or "bounded"
func ParseWallPolicy(s string) (WallPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wrap", "torus":
		return Wrap, nil
	case "bounded", "walls", "":
		return Bounded, nil
	default:
		return Bounded, fmt.Errorf("%w: unknown wall policy %q", ErrInvalidGrid, s)
	}
}

// Direction deltas in neighbor order: up, down, left, right
var Directions = [4]Point{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

// Grid holds the fixed dimensions and wall policy of a session
type Grid struct {
	Height int
	Width  int
	Walls  WallPolicy
}

// NewGrid validates dimensions
func NewGrid(height, width int, walls WallPolicy) (Grid, error) {
	if height < 1 || width < 1 {
		return Grid{}, fmt.Errorf("%w: %dx%d", ErrInvalidGrid, height, width)
	}
	return Grid{Height: height, Width: width, Walls: walls}, nil
}

// Cells returns the total number of cells
func (g Grid) Cells() int {
	return g.Height * g.Width
}

// Contains reports whether p lies inside [0,H)x[0,W)
func (g Grid) Contains(p Point) bool {
	return p.Row >= 0 && p.Row < g.Height && p.Col >= 0 && p.Col < g.Width
}

// Center returns the starting cell used for a fresh snake
func (g Grid) Center() Point {
	return Point{Row: g.Height / 2, Col: g.Width / 2}
}

// Neighbors returns the axis-aligned neighbors of p under the wall policy.
// Occupancy is not considered; callers filter blocked cells themselves.
func (g Grid) Neighbors(p Point) []Point {
	out := make([]Point, 0, 4)
	for _, d := range Directions {
		n := Point{Row: p.Row + d.Row, Col: p.Col + d.Col}
		if g.Walls == Wrap {
			n.Row = mod(n.Row, g.Height)
			n.Col = mod(n.Col, g.Width)
		} else if !g.Contains(n) {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Adjacent reports whether a and b are one step apart under the wall policy
func (g Grid) Adjacent(a, b Point) bool {
	for _, n := range g.Neighbors(a) {
		if n == b {
			return true
		}
	}
	return false
}

// ManhattanDistance between two cells, taking the short way around under Wrap
func (g Grid) ManhattanDistance(a, b Point) int {
	dr := abs(a.Row - b.Row)
	dc := abs(a.Col - b.Col)

	if g.Walls == Wrap {
		if dr > g.Height/2 {
			dr = g.Height - dr
		}
		if dc > g.Width/2 {
			dc = g.Width - dc
		}
	}

	return dr + dc
}

func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
