package game

import (
	"context"
	"runtime"

	"github.com/felixgeelhaar/bolt/v3"
	"golang.org/x/sync/errgroup"

	"snake-autopilot/game/manager"
	"snake-autopilot/logging"
)

// DefaultAgents runs one session per CPU core at a time
var DefaultAgents = runtime.NumCPU()

// Population runs many independent sessions, several at once. Every session gets its own
// Game, planner state and food RNG; only the StateManager is shared.
type Population struct {
	settings Settings
	agents   int
	stats    *manager.StateManager
	log      *bolt.Logger
}

func NewPopulation(settings Settings, agents int, stats *manager.StateManager, log *bolt.Logger) *Population {
	if agents < 1 {
		agents = DefaultAgents
	}
	if log == nil {
		log = logging.Discard()
	}
	return &Population{
		settings: settings,
		agents:   agents,
		stats:    stats,
		log:      log,
	}
}

// Run plays sessions games. Session i is seeded with Seed+i, so results do not depend
// on scheduling; they are returned and recorded in session order.
func (p *Population) Run(ctx context.Context, sessions int) ([]manager.SessionRecord, error) {
	records := make([]manager.SessionRecord, sessions)

	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(p.agents)

	for i := 0; i < sessions; i++ {
		settings := p.settings
		settings.Seed += uint64(i)

		grp.Go(func() error {
			g, err := NewGame(settings, p.log)
			if err != nil {
				return err
			}
			records[i] = g.Run(ctx)
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return nil, err
	}

	if p.stats != nil {
		for _, rec := range records {
			p.stats.Record(rec)
		}
	}

	logging.NewEvent(p.log.Info()).
		Add(logging.Int("sessions", sessions)).
		Add(logging.Int("agents", p.agents)).
		Msg("population finished")
	return records, nil
}
