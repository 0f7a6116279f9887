// Package planner computes routes for the snake: shortest path, two survival strategies,
// and a reachability check that rejects routes leaving the snake boxed in.
package planner

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/bolt/v3"

	"snake-autopilot/game/entity"
	"snake-autopilot/game/types"
	"snake-autopilot/logging"
)

// Mode selects the search strategy
type Mode int

const (
	ShortestPath Mode = iota
	SurvivalLongestPath
	SurvivalTailBiased
)

func (m Mode) String() string {
	switch m {
	case ShortestPath:
		return "shortest"
	case SurvivalLongestPath:
		return "survival-longest"
	case SurvivalTailBiased:
		return "survival-tail"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode accepts the names produced by Mode.String
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "shortest", "dijkstra", "":
		return ShortestPath, nil
	case "survival-longest", "longest":
		return SurvivalLongestPath, nil
	case "survival-tail", "tail":
		return SurvivalTailBiased, nil
	default:
		return ShortestPath, fmt.Errorf("unknown planning mode %q", s)
	}
}

// Strategy produces a route from the snake head to target, or nil
type Strategy interface {
	Route(grid types.Grid, snake *entity.Snake, target types.Point) Route
}

type shortestStrategy struct{}

func (shortestStrategy) Route(grid types.Grid, snake *entity.Snake, target types.Point) Route {
	return ShortestRoute(grid, snake.GetHead(), target, snake)
}

type longestStrategy struct {
	budget int
}

func (s longestStrategy) Route(grid types.Grid, snake *entity.Snake, target types.Point) Route {
	return LongestRoute(grid, snake.GetHead(), target, snake, s.budget)
}

type tailBiasedStrategy struct{}

func (tailBiasedStrategy) Route(grid types.Grid, snake *entity.Snake, target types.Point) Route {
	return TailBiasedRoute(grid, snake.GetHead(), target, snake.GetTail(), snake)
}

// NewStrategy returns the strategy for mode
func NewStrategy(mode Mode, expansionBudget int) (Strategy, error) {
	switch mode {
	case ShortestPath:
		return shortestStrategy{}, nil
	case SurvivalLongestPath:
		if expansionBudget <= 0 {
			expansionBudget = DefaultExpansionBudget
		}
		return longestStrategy{budget: expansionBudget}, nil
	case SurvivalTailBiased:
		return tailBiasedStrategy{}, nil
	default:
		return nil, fmt.Errorf("unknown planning mode %d", int(mode))
	}
}

// Options configures a Planner
type Options struct {
	Mode            Mode
	SafetyCheck     bool
	ExpansionBudget int
}

// Planner is the per-tick entry point used by the game loop. It holds no search state
// between calls and may be shared by independent sessions.
type Planner struct {
	grid     types.Grid
	opts     Options
	strategy Strategy
	log      *bolt.Logger
}

func New(grid types.Grid, opts Options, log *bolt.Logger) (*Planner, error) {
	strategy, err := NewStrategy(opts.Mode, opts.ExpansionBudget)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logging.Discard()
	}
	return &Planner{grid: grid, opts: opts, strategy: strategy, log: log}, nil
}

func (p *Planner) Grid() types.Grid {
	return p.grid
}

func (p *Planner) Mode() Mode {
	return p.opts.Mode
}

// Plan returns the route from the snake head to target. It returns ErrNoRoute when the
// target is unreachable and ErrUnsafeRoute when the safety check rejects the route; the
// route is nil in both cases. A route of length 1 (head already on target) is returned
// as is; callers check Route.Actionable.
func (p *Planner) Plan(snake *entity.Snake, target types.Point) (Route, error) {
	route := p.strategy.Route(p.grid, snake, target)
	if route == nil {
		logging.NewEvent(p.log.Debug()).
			Add(logging.Mode(p.opts.Mode.String())).
			Add(logging.Position("head", snake.GetHead())).
			Add(logging.Position("target", target)).
			Msg("no route")
		return nil, ErrNoRoute
	}

	if p.opts.SafetyCheck && route.Actionable() {
		future := Simulate(snake, route, target)
		if !IsSafeAfter(p.grid, future) {
			logging.NewEvent(p.log.Debug()).
				Add(logging.Mode(p.opts.Mode.String())).
				Add(logging.RouteLen(len(route))).
				Add(logging.BodyLen(future.Len())).
				Msg("route rejected by reachability check")
			return nil, ErrUnsafeRoute
		}
	}

	logging.NewEvent(p.log.Trace()).
		Add(logging.Mode(p.opts.Mode.String())).
		Add(logging.Position("head", snake.GetHead())).
		Add(logging.RouteLen(len(route))).
		Msg("planned")
	return route, nil
}
