package planner

import (
	"snake-autopilot/game/types"
)

// TailBiasedRoute is A* towards goal whose heuristic is the Manhattan distance to tail
// rather than to goal. The frontier drifts along the body, which tends to keep the middle
// of the board open. The route reaches goal but is not necessarily shortest.
func TailBiasedRoute(grid types.Grid, start, goal, tail types.Point, blocked Blocked) Route {
	costSoFar := map[types.Point]int{start: 0}
	cameFrom := make(map[types.Point]types.Point)

	queue := newFrontier()
	queue.push(start, grid.ManhattanDistance(start, tail))

	for queue.len() > 0 {
		item, _ := queue.pop()
		current := item.pos

		if current == goal {
			return reconstruct(cameFrom, start, goal)
		}
		if item.priority > costSoFar[current]+grid.ManhattanDistance(current, tail) {
			continue
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
			queue.push(next, newCost+grid.ManhattanDistance(next, tail))
		}
	}

	return nil
}
