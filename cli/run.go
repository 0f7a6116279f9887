package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"snake-autopilot/config"
	"snake-autopilot/game"
	"snake-autopilot/game/manager"
	"snake-autopilot/logging"
)

type runOptions struct {
	configPath string
	sessions   int
	agents     int
	mode       string
	walls      string
	height     int
	width      int
	seed       uint64
	maxSteps   int
	safety     bool
	budget     int
	statsPath  string
	logLevel   string
	logFormat  string
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate autopilot sessions",
		Long: `Simulate one or more sessions. Each session starts a snake at the board centre
and lets the planner chase food until it is trapped, the board fills or the step
limit is reached. Flags override values from --config.`,
		Example: `  snake-autopilot run --mode survival-tail --safety --sessions 8
  snake-autopilot run --config autopilot.yaml --stats stats.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSessions(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML or JSON config file")
	f.IntVarP(&opts.sessions, "sessions", "n", 1, "number of sessions to play")
	f.IntVar(&opts.agents, "agents", game.DefaultAgents, "sessions played at once")
	f.StringVarP(&opts.mode, "mode", "m", "shortest", "planning mode (shortest, survival-longest, survival-tail)")
	f.StringVar(&opts.walls, "walls", "bounded", "wall policy (bounded, wrap)")
	f.IntVar(&opts.height, "height", 20, "grid rows")
	f.IntVar(&opts.width, "width", 30, "grid columns")
	f.Uint64Var(&opts.seed, "seed", 1, "food placement seed")
	f.IntVar(&opts.maxSteps, "max-steps", 20000, "step limit per session, 0 for none")
	f.BoolVar(&opts.safety, "safety", false, "reject routes that leave too little room")
	f.IntVar(&opts.budget, "budget", 5000, "expansion budget for survival-longest")
	f.StringVar(&opts.statsPath, "stats", "", "JSON stats file to update")
	f.StringVar(&opts.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	f.StringVar(&opts.logFormat, "log-format", "console", "log format (console, json)")

	return cmd
}

// resolveConfig layers changed flags on top of the config file or defaults.
func resolveConfig(cmd *cobra.Command, opts *runOptions) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.NewLoader().LoadFile(opts.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	f := cmd.Flags()
	if f.Changed("sessions") {
		cfg.Simulation.Sessions = opts.sessions
	}
	if f.Changed("agents") {
		cfg.Simulation.Agents = opts.agents
	}
	if f.Changed("mode") {
		cfg.Planner.Mode = opts.mode
	}
	if f.Changed("walls") {
		cfg.Grid.Walls = opts.walls
	}
	if f.Changed("height") {
		cfg.Grid.Height = opts.height
	}
	if f.Changed("width") {
		cfg.Grid.Width = opts.width
	}
	if f.Changed("seed") {
		cfg.Simulation.Seed = opts.seed
	}
	if f.Changed("max-steps") {
		cfg.Simulation.MaxSteps = opts.maxSteps
	}
	if f.Changed("safety") {
		cfg.Planner.SafetyCheck = opts.safety
	}
	if f.Changed("budget") {
		cfg.Planner.ExpansionBudget = opts.budget
	}
	if f.Changed("stats") {
		cfg.Stats.Path = opts.statsPath
	}
	if f.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if f.Changed("log-format") {
		cfg.Log.Format = opts.logFormat
	}

	return cfg, cfg.Validate()
}

func runSessions(cmd *cobra.Command, opts *runOptions) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	settings, err := cfg.Settings()
	if err != nil {
		return err
	}

	log := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cmd.ErrOrStderr(),
	})

	stats, err := manager.NewStateManager(cfg.Stats.Path)
	if err != nil {
		return fmt.Errorf("failed to load stats: %w", err)
	}

	pop := game.NewPopulation(settings, cfg.Simulation.Agents, stats, log)
	records, err := pop.Run(cmd.Context(), cfg.Simulation.Sessions)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, rec := range records {
		fmt.Fprintf(out, "%s  score=%d length=%d steps=%d outcome=%s\n",
			rec.ID, rec.Score, rec.Length, rec.Steps, rec.Outcome)
	}
	fmt.Fprintf(out, "sessions=%d high=%d average=%.2f\n",
		len(records), stats.GetHighScore(), stats.AverageScore())

	if err := stats.Save(); err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}
	if cfg.Stats.Path != "" {
		fmt.Fprintf(out, "stats saved to %s\n", cfg.Stats.Path)
	}
	return nil
}
