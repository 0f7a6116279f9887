package manager

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// SessionRecord is the outcome of one game
type SessionRecord struct {
	ID        string    `json:"id"`
	Mode      string    `json:"mode"`
	Score     int       `json:"score"`
	Length    int       `json:"length"`
	Steps     int       `json:"steps"`
	Outcome   string    `json:"outcome"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

type GameStats struct {
	HighScore    int             `json:"highScore"`
	ScoreHistory []int           `json:"scoreHistory"`
	Sessions     []SessionRecord `json:"sessions"`
}

// StateManager keeps the high score and session history. Safe for concurrent use so
// parallel agents can report into one manager.
type StateManager struct {
	path  string
	mu    sync.RWMutex
	stats GameStats
}

// NewStateManager loads stats from path if it exists. An empty path keeps stats in memory.
func NewStateManager(path string) (*StateManager, error) {
	sm := &StateManager{
		path: path,
		stats: GameStats{
			ScoreHistory: make([]int, 0),
			Sessions:     make([]SessionRecord, 0),
		},
	}
	if path == "" {
		return sm, nil
	}

	if err := sm.LoadStats(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	return sm, nil
}

func (sm *StateManager) SaveStats(filename string) error {
	sm.mu.RLock()
	data, err := json.MarshalIndent(sm.stats, "", "  ")
	sm.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}

	if dir := filepath.Dir(filename); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create stats directory: %w", err)
		}
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("write stats: %w", err)
	}
	return nil
}

func (sm *StateManager) LoadStats(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	var stats GameStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return fmt.Errorf("decode stats %s: %w", filename, err)
	}

	sm.mu.Lock()
	sm.stats = stats
	sm.mu.Unlock()
	return nil
}

// Save writes stats to the configured path; a no-op for in-memory managers
func (sm *StateManager) Save() error {
	if sm.path == "" {
		return nil
	}
	return sm.SaveStats(sm.path)
}

// Record adds a finished session and updates the high score
func (sm *StateManager) Record(rec SessionRecord) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if rec.Score > sm.stats.HighScore {
		sm.stats.HighScore = rec.Score
	}
	sm.stats.ScoreHistory = append(sm.stats.ScoreHistory, rec.Score)
	sm.stats.Sessions = append(sm.stats.Sessions, rec)
}

func (sm *StateManager) GetHighScore() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.stats.HighScore
}

func (sm *StateManager) GetScoreHistory() []int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	out := make([]int, len(sm.stats.ScoreHistory))
	copy(out, sm.stats.ScoreHistory)
	return out
}

func (sm *StateManager) GetSessions() []SessionRecord {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	out := make([]SessionRecord, len(sm.stats.Sessions))
	copy(out, sm.stats.Sessions)
	return out
}

// AverageScore over every recorded session
func (sm *StateManager) AverageScore() float64 {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	if len(sm.stats.ScoreHistory) == 0 {
		return 0
	}
	sum := 0
	for _, s := range sm.stats.ScoreHistory {
		sum += s
	}
	return float64(sum) / float64(len(sm.stats.ScoreHistory))
}
