package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snake-autopilot/game/types"
	"snake-autopilot/planner"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	s, err := cfg.Settings()
	require.NoError(t, err)
	assert.Equal(t, types.Grid{Height: 20, Width: 30, Walls: types.Bounded}, s.Grid)
	assert.Equal(t, planner.ShortestPath, s.Planner.Mode)
	assert.Equal(t, planner.DefaultExpansionBudget, s.Planner.ExpansionBudget)
}

func TestLoadFileYAML(t *testing.T) {
	path := writeFile(t, "autopilot.yaml", `
grid:
  height: 12
  width: 16
  walls: wrap
planner:
  mode: survival-tail
  safety_check: true
simulation:
  seed: 99
  sessions: 4
stats:
  path: /tmp/stats.json
log:
  level: debug
  format: json
`)

	cfg, err := NewLoader().LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Grid.Height)
	assert.Equal(t, "wrap", cfg.Grid.Walls)
	assert.True(t, cfg.Planner.SafetyCheck)
	assert.Equal(t, uint64(99), cfg.Simulation.Seed)
	assert.Equal(t, 4, cfg.Simulation.Sessions)
	assert.Equal(t, 20000, cfg.Simulation.MaxSteps, "unset fields keep defaults")
	assert.Equal(t, "debug", cfg.Log.Level)

	s, err := cfg.Settings()
	require.NoError(t, err)
	assert.Equal(t, types.Wrap, s.Grid.Walls)
	assert.Equal(t, planner.SurvivalTailBiased, s.Planner.Mode)
	assert.True(t, s.Planner.SafetyCheck)
}

func TestLoadFileJSON(t *testing.T) {
	path := writeFile(t, "autopilot.json", `{"grid": {"height": 5, "width": 5, "walls": "bounded"}, "planner": {"mode": "survival-longest", "expansion_budget": 250}}`)

	cfg, err := NewLoader().LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 250, cfg.Planner.ExpansionBudget)

	s, err := cfg.Settings()
	require.NoError(t, err)
	assert.Equal(t, planner.SurvivalLongestPath, s.Planner.Mode)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := NewLoader().LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrConfigNotFound)

	_, err = NewLoader().LoadFile(writeFile(t, "autopilot.toml", "x = 1"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = NewLoader().LoadFile(writeFile(t, "unknown.yaml", "grid:\n  depth: 3\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewLoader().LoadFile(writeFile(t, "bad.yaml", "grid:\n  walls: sideways\nplanner:\n  mode: teleport\n"))
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "sideways")
	assert.Contains(t, err.Error(), "teleport")
}

func TestEnvExpansion(t *testing.T) {
	t.Setenv("AUTOPILOT_MODE", "survival-longest")
	t.Setenv("AUTOPILOT_SEED", "")

	cfg, err := NewLoader().Load(strings.NewReader(`
planner:
  mode: ${AUTOPILOT_MODE}
simulation:
  seed: ${AUTOPILOT_SEED:-7}
`), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "survival-longest", cfg.Planner.Mode)
	assert.Equal(t, uint64(7), cfg.Simulation.Seed)
}

func TestEnvExpansionRequired(t *testing.T) {
	_, err := NewLoader().Load(strings.NewReader("log:\n  level: ${AUTOPILOT_UNSET_LEVEL:?set a level}\n"), FormatYAML)
	assert.ErrorIs(t, err, ErrMissingEnvVar)

	strict := &Loader{ExpandEnv: true, StrictEnv: true}
	_, err = strict.Load(strings.NewReader("log:\n  level: ${AUTOPILOT_UNSET_LEVEL}\n"), FormatYAML)
	assert.ErrorIs(t, err, ErrMissingEnvVar)
}

func TestValidateRanges(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero height", func(c *Config) { c.Grid.Height = 0 }},
		{"negative budget", func(c *Config) { c.Planner.ExpansionBudget = -1 }},
		{"negative steps", func(c *Config) { c.Simulation.MaxSteps = -5 }},
		{"no sessions", func(c *Config) { c.Simulation.Sessions = 0 }},
		{"log format", func(c *Config) { c.Log.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestExampleConfigLoads(t *testing.T) {
	t.Setenv("AUTOPILOT_MODE", "")
	cfg, err := NewLoader().LoadFile(filepath.Join("..", "configs", "autopilot.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "survival-tail", cfg.Planner.Mode)
	assert.Equal(t, 8, cfg.Simulation.Sessions)
	assert.True(t, cfg.Planner.SafetyCheck)
}
