package planner

import (
	"snake-autopilot/game/types"
)

// ShortestRoute runs uniform-cost search from start to goal over cells not in blocked.
// start itself may be blocked (it is the head). Returns nil when the goal is unreachable
// and a single-cell route when start == goal.
func ShortestRoute(grid types.Grid, start, goal types.Point, blocked Blocked) Route {
	costSoFar := map[types.Point]int{start: 0}
	cameFrom := make(map[types.Point]types.Point)

	queue := newFrontier()
	queue.push(start, 0)

	for queue.len() > 0 {
		item, _ := queue.pop()
		current := item.pos

		if current == goal {
			return reconstruct(cameFrom, start, goal)
		}
		if item.priority > costSoFar[current] {
			continue // stale entry
		}

		for _, next := range grid.Neighbors(current) {
			if blocked.Has(next) {
				continue
			}
			newCost := costSoFar[current] + stepCost(current, next)
			if old, seen := costSoFar[next]; seen && old <= newCost {
				continue
			}
			costSoFar[next] = newCost
			cameFrom[next] = current
			queue.push(next, newCost)
		}
	}

	return nil
}

// stepCost is uniform today; kept separate so weighted cells need no search changes
func stepCost(_, _ types.Point) int {
	return 1
}
