package entity

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"snake-autopilot/game/types"
)

var (
	ErrEmptyBody     = errors.New("snake body is empty")
	ErrSelfIntersect   = errors.New("snake body intersects itself")
)

// Snake is the agent body, head at index 0 and tail last.
// occupied mirrors Body so occupancy tests are O(1).
type Snake struct {
	Body     []types.Point
	Score    int
	Dead     bool
	GameOver bool

	occupied mapset.Set[types.Point]
}

func NewSnake(startPos types.Point) *Snake {
	s := &Snake{
		Body:     []types.Point{startPos},
		occupied: mapset.New[types.Point](),
	}
	s.occupied.Put(startPos)
	return s
}

// NewSnakeFromBody builds a snake from a head-first body
func NewSnakeFromBody(body []types.Point) (*Snake, error) {
	if len(body) == 0 {
		return nil, ErrEmptyBody
	}

	s := &Snake{
		Body:     make([]types.Point, len(body)),
		occupied: mapset.New[types.Point](),
	}
	copy(s.Body, body)
	for _, p := range body {
		if s.occupied.Has(p) {
			return nil, fmt.Errorf("%w at %v", ErrSelfIntersect, p)
		}
		s.occupied.Put(p)
	}
	return s, nil
}

// Move prepends newHead to the body
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
	s.occupied.Put(newHead)
}

// RemoveTail drops the last segment and returns it
func (s *Snake) RemoveTail() types.Point {
	tail := s.Body[len(s.Body)-1]
	s.Body = s.Body[:len(s.Body)-1]
	// The tail may only share a cell with the new head when the head just moved onto it
	if len(s.Body) == 0 || s.Body[0] != tail {
		s.occupied.Remove(tail)
	}
	return tail
}

// Advance moves the head and drops the tail unless the snake grows this step
func (s *Snake) Advance(newHead types.Point, grow bool) {
	s.Move(newHead)
	if !grow {
		s.RemoveTail()
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) GetTail() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Has reports whether p is currently part of the body
func (s *Snake) Has(p types.Point) bool {
	return s.occupied.Has(p)
}

// Occupied returns the occupancy set. Callers must not mutate it.
func (s *Snake) Occupied() mapset.Set[types.Point] {
	return s.occupied
}

// Clone returns an independent copy for hypothetical simulation
func (s *Snake) Clone() *Snake {
	c := &Snake{
		Body:     make([]types.Point, len(s.Body)),
		Score:    s.Score,
		Dead:     s.Dead,
		GameOver: s.GameOver,
		occupied: mapset.New[types.Point](),
	}
	copy(c.Body, s.Body)
	for _, p := range c.Body {
		c.occupied.Put(p)
	}
	return c
}

// SelfIntersects reports whether the head shares a cell with any other segment
func (s *Snake) SelfIntersects() bool {
	head := s.GetHead()
	for _, p := range s.Body[1:] {
		if p == head {
			return true
		}
	}
	return false
}
