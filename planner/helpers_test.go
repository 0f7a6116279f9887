package planner

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zyedidia/generic/mapset"

	"snake-autopilot/game/types"
)

// parseBoard reads rows of '.' (free) and '#' (blocked)
func parseBoard(t *testing.T, walls types.WallPolicy, rows ...string) (types.Grid, mapset.Set[types.Point]) {
	t.Helper()
	grid, err := types.NewGrid(len(rows), len(rows[0]), walls)
	require.NoError(t, err)

	blocked := mapset.New[types.Point]()
	for r, row := range rows {
		require.Len(t, row, grid.Width)
		for c, ch := range row {
			if ch == '#' {
				blocked.Put(types.Point{Row: r, Col: c})
			}
		}
	}
	return grid, blocked
}

// bfsDistance is a plain breadth-first reference, -1 when unreachable
func bfsDistance(grid types.Grid, start, goal types.Point, blocked Blocked) int {
	dist := map[types.Point]int{start: 0}
	frontier := []types.Point{start}
	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]
		if cur == goal {
			return dist[cur]
		}
		for _, n := range grid.Neighbors(cur) {
			if _, seen := dist[n]; seen || blocked.Has(n) {
				continue
			}
			dist[n] = dist[cur] + 1
			frontier = append(frontier, n)
		}
	}
	return -1
}

// requireValidRoute checks endpoints, adjacency, simplicity and that only start may be blocked
func requireValidRoute(t *testing.T, grid types.Grid, route Route, start, goal types.Point, blocked Blocked) {
	t.Helper()
	require.NotEmpty(t, route)
	require.Equal(t, start, route[0], "route must start at head")
	require.Equal(t, goal, route[len(route)-1], "route must end at goal")

	seen := mapset.New[types.Point]()
	for i, p := range route {
		require.False(t, seen.Has(p), "route revisits %v", p)
		seen.Put(p)
		if i == 0 {
			continue
		}
		require.False(t, blocked.Has(p), "route passes through blocked cell %v", p)
		require.True(t, grid.Adjacent(route[i-1], p), "%v -> %v not adjacent", route[i-1], p)
	}
}

func freeCells(grid types.Grid, blocked Blocked) []types.Point {
	var out []types.Point
	for r := 0; r < grid.Height; r++ {
		for c := 0; c < grid.Width; c++ {
			p := types.Point{Row: r, Col: c}
			if !blocked.Has(p) {
				out = append(out, p)
			}
		}
	}
	return out
}

var boards = map[string][]string{
	"open": {
		"....",
		"....",
		"....",
		"....",
	},
	"wall": {
		".....",
		".###.",
		"...#.",
		"##.#.",
		".....",
	},
	"split": {
		"..#..",
		"..#..",
		"..#..",
		"..#..",
	},
}
