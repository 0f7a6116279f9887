package planner

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"snake-autopilot/game/entity"
	"snake-autopilot/game/types"
)

// ReachableCount flood-fills from start over cells not in blocked and returns how many
// free cells were reached. start itself is not counted.
func ReachableCount(grid types.Grid, start types.Point, blocked Blocked) int {
	visited := mapset.New[types.Point]()
	visited.Put(start)

	q := queue.New[types.Point]()
	q.Enqueue(start)
	count := 0

	for !q.Empty() {
		current := q.Dequeue()
		for _, next := range grid.Neighbors(current) {
			if visited.Has(next) || blocked.Has(next) {
				continue
			}
			visited.Put(next)
			count++
			q.Enqueue(next)
		}
	}

	return count
}

// Simulate replays route on a copy of snake the way the tick loop would.
// The tail is kept on the step where the head lands on target.
func Simulate(snake *entity.Snake, route Route, target types.Point) *entity.Snake {
	future := snake.Clone()
	for _, p := range route[1:] {
		future.Advance(p, p == target)
	}
	return future
}

// IsSafeAfter reports whether the hypothetical body still has at least as many
// reachable free cells as it has segments.
func IsSafeAfter(grid types.Grid, future *entity.Snake) bool {
	return ReachableCount(grid, future.GetHead(), future) >= future.Len()
}
