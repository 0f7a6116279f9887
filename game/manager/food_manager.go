package manager

import (
	"errors"

	"golang.org/x/exp/rand"

	"snake-autopilot/game/entity"
	"snake-autopilot/game/types"
)

// ErrBoardFull is returned when the snake covers every cell
var ErrBoardFull = errors.New("no free cell left for food")

// maxFoodTries bounds rejection sampling before falling back to enumerating free cells
const maxFoodTries = 64

// FoodManager places food on uniformly random free cells. Each session owns one so
// seeded runs are reproducible.
type FoodManager struct {
	grid types.Grid
	rng  *rand.Rand
}

func NewFoodManager(grid types.Grid, seed uint64) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// GenerateFood returns a free cell outside the snake body
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (types.Point, error) {
	free := fm.grid.Cells() - snake.Len()
	if free <= 0 {
		return types.Point{}, ErrBoardFull
	}

	for i := 0; i < maxFoodTries; i++ {
		food := types.Point{
			Row: fm.rng.Intn(fm.grid.Height),
			Col: fm.rng.Intn(fm.grid.Width),
		}
		if !snake.Has(food) {
			return food, nil
		}
	}

	// Crowded board: pick uniformly among the cells that are actually free
	n := fm.rng.Intn(free)
	for r := 0; r < fm.grid.Height; r++ {
		for c := 0; c < fm.grid.Width; c++ {
			p := types.Point{Row: r, Col: c}
			if snake.Has(p) {
				continue
			}
			if n == 0 {
				return p, nil
			}
			n--
		}
	}
	return types.Point{}, ErrBoardFull
}
