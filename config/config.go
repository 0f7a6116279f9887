// Package config loads autopilot settings from YAML or JSON files.
package config

import (
	"errors"
	"fmt"

	"snake-autopilot/game"
	"snake-autopilot/game/types"
	"snake-autopilot/planner"
)

var (
	ErrConfigNotFound    = errors.New("config file not found")
	ErrUnsupportedFormat = errors.New("unsupported config format")
	ErrInvalidConfig     = errors.New("invalid config")
)

// Config is the file representation of a run
type Config struct {
	Grid       GridConfig       `yaml:"grid" json:"grid"`
	Planner    PlannerConfig    `yaml:"planner" json:"planner"`
	Simulation SimulationConfig `yaml:"simulation" json:"simulation"`
	Stats      StatsConfig      `yaml:"stats" json:"stats"`
	Log        LogConfig        `yaml:"log" json:"log"`
}

type GridConfig struct {
	Height int    `yaml:"height" json:"height"`
	Width  int    `yaml:"width" json:"width"`
	Walls  string `yaml:"walls" json:"walls"`
}

type PlannerConfig struct {
	Mode            string `yaml:"mode" json:"mode"`
	SafetyCheck     bool   `yaml:"safety_check" json:"safety_check"`
	ExpansionBudget int    `yaml:"expansion_budget" json:"expansion_budget"`
}

type SimulationConfig struct {
	Seed     uint64 `yaml:"seed" json:"seed"`
	MaxSteps int    `yaml:"max_steps" json:"max_steps"`
	Sessions int    `yaml:"sessions" json:"sessions"`
	Agents   int    `yaml:"agents" json:"agents"`
}

type StatsConfig struct {
	// Path of the JSON stats file; empty keeps stats in memory
	Path string `yaml:"path" json:"path"`
}

type LogConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
}

// Default mirrors the classic board: 20 rows, 30 columns, solid walls, shortest path
func Default() Config {
	return Config{
		Grid: GridConfig{
			Height: 20,
			Width:  30,
			Walls:  types.Bounded.String(),
		},
		Planner: PlannerConfig{
			Mode:            planner.ShortestPath.String(),
			ExpansionBudget: planner.DefaultExpansionBudget,
		},
		Simulation: SimulationConfig{
			Seed:     1,
			MaxSteps: 20000,
			Sessions: 1,
			Agents:   game.DefaultAgents,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate checks ranges and enum values
func (c Config) Validate() error {
	var errs []error
	if _, err := types.NewGrid(c.Grid.Height, c.Grid.Width, types.Bounded); err != nil {
		errs = append(errs, err)
	}
	if _, err := types.ParseWallPolicy(c.Grid.Walls); err != nil {
		errs = append(errs, err)
	}
	if _, err := planner.ParseMode(c.Planner.Mode); err != nil {
		errs = append(errs, err)
	}
	if c.Planner.ExpansionBudget < 0 {
		errs = append(errs, fmt.Errorf("expansion_budget must not be negative, got %d", c.Planner.ExpansionBudget))
	}
	if c.Simulation.MaxSteps < 0 {
		errs = append(errs, fmt.Errorf("max_steps must not be negative, got %d", c.Simulation.MaxSteps))
	}
	if c.Simulation.Sessions < 1 {
		errs = append(errs, fmt.Errorf("sessions must be at least 1, got %d", c.Simulation.Sessions))
	}
	switch c.Log.Format {
	case "", "json", "console":
	default:
		errs = append(errs, fmt.Errorf("log format %q is not json or console", c.Log.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Settings converts the config into game settings
func (c Config) Settings() (game.Settings, error) {
	if err := c.Validate(); err != nil {
		return game.Settings{}, err
	}

	walls, _ := types.ParseWallPolicy(c.Grid.Walls)
	mode, _ := planner.ParseMode(c.Planner.Mode)
	grid, err := types.NewGrid(c.Grid.Height, c.Grid.Width, walls)
	if err != nil {
		return game.Settings{}, err
	}

	return game.Settings{
		Grid: grid,
		Planner: planner.Options{
			Mode:            mode,
			SafetyCheck:     c.Planner.SafetyCheck,
			ExpansionBudget: c.Planner.ExpansionBudget,
		},
		Seed:     c.Simulation.Seed,
		MaxSteps: c.Simulation.MaxSteps,
	}, nil
}
