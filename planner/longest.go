package planner

import (
	"github.com/zyedidia/generic/queue"

	"snake-autopilot/game/types"
)

// DefaultExpansionBudget caps how many partial paths the longest-path search expands
const DefaultExpansionBudget = 5000

type partialPath struct {
	cells Route
}

func (p partialPath) contains(c types.Point) bool {
	for _, x := range p.cells {
		if x == c {
			return true
		}
	}
	return false
}

// LongestRoute searches breadth-first over simple paths from start to goal and keeps the
// longest one that reaches goal. At most budget paths are expanded. When no path reached
// goal within the budget it falls back to ShortestRoute, so a reachable goal always
// yields a route.
func LongestRoute(grid types.Grid, start, goal types.Point, blocked Blocked, budget int) Route {
	if start == goal {
		return Route{start}
	}

	var best Route
	q := queue.New[partialPath]()
	q.Enqueue(partialPath{cells: Route{start}})

	for expansions := 0; expansions < budget && !q.Empty(); expansions++ {
		path := q.Dequeue()
		last := path.cells[len(path.cells)-1]

		for _, next := range grid.Neighbors(last) {
			if blocked.Has(next) || path.contains(next) {
				continue
			}

			cells := make(Route, len(path.cells)+1)
			copy(cells, path.cells)
			cells[len(path.cells)] = next

			if next == goal {
				// Paths come off the queue in length order, so later finds are never shorter
				if len(cells) > len(best) {
					best = cells
				}
				continue
			}
			q.Enqueue(partialPath{cells: cells})
		}
	}

	if best == nil {
		return ShortestRoute(grid, start, goal, blocked)
	}
	return best
}
