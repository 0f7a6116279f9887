package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zyedidia/generic/mapset"

	"snake-autopilot/game/types"
)

func TestShortestRouteWrapScenario(t *testing.T) {
	grid, err := types.NewGrid(5, 5, types.Wrap)
	require.NoError(t, err)

	head := types.Point{Row: 2, Col: 2}
	blocked := mapset.New[types.Point]()
	blocked.Put(head)

	route := ShortestRoute(grid, head, types.Point{Row: 2, Col: 4}, blocked)
	assert.Equal(t, Route{{Row: 2, Col: 2}, {Row: 2, Col: 3}, {Row: 2, Col: 4}}, route)
}

func TestShortestRouteWrapsAcrossEdge(t *testing.T) {
	grid, blocked := parseBoard(t, types.Wrap,
		".....",
		".....",
		".....",
	)
	start := types.Point{Row: 1, Col: 0}
	blocked.Put(start)

	route := ShortestRoute(grid, start, types.Point{Row: 1, Col: 4}, blocked)
	assert.Equal(t, Route{{Row: 1, Col: 0}, {Row: 1, Col: 4}}, route)
}

func TestShortestRouteMatchesBFS(t *testing.T) {
	for name, rows := range boards {
		for _, walls := range []types.WallPolicy{types.Bounded, types.Wrap} {
			t.Run(name+"/"+walls.String(), func(t *testing.T) {
				grid, blocked := parseBoard(t, walls, rows...)
				cells := freeCells(grid, blocked)

				for _, start := range cells {
					for _, goal := range cells {
						want := bfsDistance(grid, start, goal, blocked)
						route := ShortestRoute(grid, start, goal, blocked)
						if want < 0 {
							assert.Nil(t, route, "%v -> %v should be unreachable", start, goal)
							continue
						}
						requireValidRoute(t, grid, route, start, goal, blocked)
						assert.Equal(t, want, route.Steps(), "%v -> %v", start, goal)
					}
				}
			})
		}
	}
}

func TestShortestRouteBlockedStart(t *testing.T) {
	grid, blocked := parseBoard(t, types.Bounded,
		"###.",
		"....",
	)
	start := types.Point{Row: 0, Col: 0}

	route := ShortestRoute(grid, start, types.Point{Row: 0, Col: 3}, blocked)
	requireValidRoute(t, grid, route, start, types.Point{Row: 0, Col: 3}, blocked)
	assert.Equal(t, 5, route.Steps())
}

func TestShortestRouteUnreachable(t *testing.T) {
	grid, blocked := parseBoard(t, types.Bounded,
		"..#..",
		"..#..",
	)

	route := ShortestRoute(grid, types.Point{Row: 0, Col: 0}, types.Point{Row: 1, Col: 4}, blocked)
	assert.Nil(t, route)
}

func TestShortestRouteStartIsGoal(t *testing.T) {
	grid, blocked := parseBoard(t, types.Bounded, "...")
	p := types.Point{Row: 0, Col: 1}
	blocked.Put(p)

	route := ShortestRoute(grid, p, p, blocked)
	assert.Equal(t, Route{p}, route)
	assert.False(t, route.Actionable())
	_, ok := route.Next()
	assert.False(t, ok)
}

func TestShortestRouteDeterministic(t *testing.T) {
	grid, blocked := parseBoard(t, types.Wrap, boards["wall"]...)
	start, goal := types.Point{Row: 0, Col: 0}, types.Point{Row: 4, Col: 4}

	first := ShortestRoute(grid, start, goal, blocked)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ShortestRoute(grid, start, goal, blocked))
	}
}
