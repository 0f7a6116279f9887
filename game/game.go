package game

import (
	"context"
	"errors"
	"time"

	"github.com/felixgeelhaar/bolt/v3"
	"github.com/google/uuid"

	"snake-autopilot/game/entity"
	"snake-autopilot/game/manager"
	"snake-autopilot/game/types"
	"snake-autopilot/logging"
	"snake-autopilot/planner"
)

// Outcome describes how a session ended
type Outcome string

const (
	Running          Outcome = ""
	OutcomeTrapped   Outcome = "trapped"    // no route to the food
	OutcomeUnsafe    Outcome = "unsafe"     // route rejected by the reachability check
	OutcomeNoMove    Outcome = "no-move"    // route too short to move
	OutcomeCollision Outcome = "collision"  // next cell was a wall or the body
	OutcomeBoardFull Outcome = "board-full" // nowhere left to place food
	OutcomeStepLimit Outcome = "step-limit"
	OutcomeCancelled Outcome = "cancelled"
)

// Settings fixes everything a session needs. Sessions never share mutable state.
type Settings struct {
	Grid     types.Grid
	Planner  planner.Options
	Seed     uint64
	MaxSteps int // 0 means unlimited
}

// Game is the tick loop around the planner: one plan and one move per Update
type Game struct {
	UUID      string
	Grid      types.Grid
	Snake     *entity.Snake
	Food      types.Point
	Steps     int
	StartTime time.Time
	EndTime   time.Time
	Outcome   Outcome

	maxSteps     int
	planner      *planner.Planner
	foodMgr      *manager.FoodManager
	collisionMgr *manager.CollisionManager
	log          *bolt.Logger
}

func NewGame(settings Settings, log *bolt.Logger) (*Game, error) {
	if log == nil {
		log = logging.Discard()
	}
	p, err := planner.New(settings.Grid, settings.Planner, log)
	if err != nil {
		return nil, err
	}

	g := &Game{
		UUID:         uuid.New().String(),
		Grid:         settings.Grid,
		Snake:        entity.NewSnake(settings.Grid.Center()),
		StartTime:    time.Now(),
		maxSteps:     settings.MaxSteps,
		planner:      p,
		foodMgr:      manager.NewFoodManager(settings.Grid, settings.Seed),
		collisionMgr: manager.NewCollisionManager(settings.Grid),
		log:          log,
	}

	logging.NewEvent(log.Info()).
		Add(logging.Session(g.UUID)).
		Add(logging.Mode(settings.Planner.Mode.String())).
		Add(logging.Str("walls", settings.Grid.Walls.String())).
		Add(logging.Int("height", settings.Grid.Height)).
		Add(logging.Int("width", settings.Grid.Width)).
		Msg("session started")

	food, err := g.foodMgr.GenerateFood(g.Snake)
	if err != nil {
		// A 1x1 grid is already full
		g.finish(OutcomeBoardFull)
		return g, nil
	}
	g.Food = food
	return g, nil
}

// Update advances one tick and reports whether the session is still running
func (g *Game) Update() bool {
	if g.Outcome != Running {
		return false
	}
	if g.maxSteps > 0 && g.Steps >= g.maxSteps {
		g.finish(OutcomeStepLimit)
		return false
	}

	route, err := g.planner.Plan(g.Snake, g.Food)
	if err != nil {
		if errors.Is(err, planner.ErrUnsafeRoute) {
			g.finish(OutcomeUnsafe)
		} else {
			g.finish(OutcomeTrapped)
		}
		return false
	}

	collision, next := g.collisionMgr.CheckRoute(g.Snake, route)
	switch collision {
	case manager.NoCollision:
	case manager.NoMove:
		g.finish(OutcomeNoMove)
		return false
	default:
		g.finish(OutcomeCollision)
		return false
	}

	g.Steps++
	ate := g.collisionMgr.IsFoodCollision(next, g.Food)
	g.Snake.Advance(next, ate)
	if !ate {
		return true
	}

	g.Snake.Score++
	food, err := g.foodMgr.GenerateFood(g.Snake)
	if err != nil {
		g.finish(OutcomeBoardFull)
		return false
	}
	g.Food = food
	logging.NewEvent(g.log.Debug()).
		Add(logging.Session(g.UUID)).
		Add(logging.Int("score", g.Snake.Score)).
		Add(logging.Position("food", food)).
		Msg("food eaten")
	return true
}

// Run ticks until the session ends or ctx is done. A planning call is never interrupted;
// cancellation is observed between ticks.
func (g *Game) Run(ctx context.Context) manager.SessionRecord {
	for g.Outcome == Running {
		if ctx.Err() != nil {
			g.finish(OutcomeCancelled)
			break
		}
		g.Update()
	}
	return g.Record()
}

// Record summarises the session
func (g *Game) Record() manager.SessionRecord {
	return manager.SessionRecord{
		ID:        g.UUID,
		Mode:      g.planner.Mode().String(),
		Score:     g.Snake.Score,
		Length:    g.Snake.Len(),
		Steps:     g.Steps,
		Outcome:   string(g.Outcome),
		StartTime: g.StartTime,
		EndTime:   g.EndTime,
	}
}

func (g *Game) finish(outcome Outcome) {
	g.Outcome = outcome
	g.Snake.Dead = outcome != OutcomeBoardFull && outcome != OutcomeStepLimit && outcome != OutcomeCancelled
	g.Snake.GameOver = true
	g.EndTime = time.Now()

	logging.NewEvent(g.log.Info()).
		Add(logging.Session(g.UUID)).
		Add(logging.Outcome(string(outcome))).
		Add(logging.Int("score", g.Snake.Score)).
		Add(logging.BodyLen(g.Snake.Len())).
		Add(logging.Int("steps", g.Steps)).
		Msg("session ended")
}
