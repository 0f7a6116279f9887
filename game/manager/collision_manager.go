package manager

import (
	"snake-autopilot/game/entity"
	"snake-autopilot/game/types"
	"snake-autopilot/planner"
)

// CollisionType represents why a move cannot be taken
type CollisionType int

const (
	NoCollision   CollisionType = iota
	Trapped                     // No route, or the route was rejected as unsafe
	NoMove                      // Route shorter than two cells
	WallCollision               // Next cell outside the grid under Bounded walls
	NotAdjacent                 // Next cell is not one step from the head
	SelfCollision               // Next cell is part of the body
)

func (c CollisionType) String() string {
	switch c {
	case NoCollision:
		return "none"
	case Trapped:
		return "trapped"
	case NoMove:
		return "no-move"
	case WallCollision:
		return "wall"
	case NotAdjacent:
		return "not-adjacent"
	case SelfCollision:
		return "self"
	default:
		return "unknown"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckRoute classifies the move implied by route for snake
func (cm *CollisionManager) CheckRoute(snake *entity.Snake, route planner.Route) (CollisionType, types.Point) {
	if route == nil {
		return Trapped, types.Point{}
	}
	next, ok := route.Next()
	if !ok {
		return NoMove, types.Point{}
	}
	return cm.CheckMove(snake, next), next
}

// CheckMove checks all types of collisions for moving the head to pos
func (cm *CollisionManager) CheckMove(snake *entity.Snake, pos types.Point) CollisionType {
	if cm.isWallCollision(pos) {
		return WallCollision
	}
	if !cm.grid.Adjacent(snake.GetHead(), pos) {
		return NotAdjacent
	}
	if cm.isSelfCollision(snake, pos) {
		return SelfCollision
	}
	return NoCollision
}

// isWallCollision checks if a position is outside the grid
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// isSelfCollision checks the body, skipping the tail when it moves out of the way this tick
func (cm *CollisionManager) isSelfCollision(snake *entity.Snake, pos types.Point) bool {
	if !snake.Has(pos) {
		return false
	}
	return pos != snake.GetTail() || snake.Len() == 1
}

// IsFoodCollision checks if a position is the food cell
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
