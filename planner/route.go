package planner

import (
	"errors"
	"fmt"
	"strings"

	"snake-autopilot/game/types"
)

var (
	// ErrTrapped matches every outcome where no route is returned
	ErrTrapped = errors.New("snake is trapped")

	ErrNoRoute     = fmt.Errorf("%w: no route to target", ErrTrapped)
	ErrUnsafeRoute = fmt.Errorf("%w: route leaves no escape", ErrTrapped)
)

// Blocked answers whether a cell is unavailable to the search
type Blocked interface {
	Has(p types.Point) bool
}

// Route runs from the current head to the goal, consecutive cells adjacent
type Route []types.Point

// Actionable reports whether the route implies a move
func (r Route) Actionable() bool {
	return len(r) >= 2
}

// Next returns the cell the head should move to
func (r Route) Next() (types.Point, bool) {
	if !r.Actionable() {
		return types.Point{}, false
	}
	return r[1], true
}

// Steps is the number of moves in the route
func (r Route) Steps() int {
	if len(r) == 0 {
		return 0
	}
	return len(r) - 1
}

func (r Route) String() string {
	parts := make([]string, len(r))
	for i, p := range r {
		parts[i] = "(" + p.String() + ")"
	}
	return strings.Join(parts, " ")
}

// reconstruct walks predecessor links from goal back to start
func reconstruct(cameFrom map[types.Point]types.Point, start, goal types.Point) Route {
	route := Route{goal}
	for cur := goal; cur != start; {
		cur = cameFrom[cur]
		route = append(route, cur)
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	return route
}
