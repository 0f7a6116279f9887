package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snake-autopilot/game/types"
)

func assertInSync(t *testing.T, s *Snake) {
	t.Helper()
	assert.Equal(t, s.Len(), s.Occupied().Size(), "occupancy out of sync with body")
	for _, p := range s.Body {
		assert.True(t, s.Has(p), "body cell %v missing from occupancy", p)
	}
}

func TestAdvanceKeepsOccupancyInSync(t *testing.T) {
	s := NewSnake(types.Point{Row: 2, Col: 2})

	s.Advance(types.Point{Row: 2, Col: 3}, true)
	s.Advance(types.Point{Row: 2, Col: 4}, true)
	assert.Equal(t, []types.Point{{Row: 2, Col: 4}, {Row: 2, Col: 3}, {Row: 2, Col: 2}}, s.Body)
	assertInSync(t, s)

	s.Advance(types.Point{Row: 3, Col: 4}, false)
	assert.Equal(t, []types.Point{{Row: 3, Col: 4}, {Row: 2, Col: 4}, {Row: 2, Col: 3}}, s.Body)
	assert.False(t, s.Has(types.Point{Row: 2, Col: 2}))
	assertInSync(t, s)

	assert.Equal(t, types.Point{Row: 3, Col: 4}, s.GetHead())
	assert.Equal(t, types.Point{Row: 2, Col: 3}, s.GetTail())
}

func TestHeadOntoOldTail(t *testing.T) {
	s, err := NewSnakeFromBody([]types.Point{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 1, Col: 0}})
	require.NoError(t, err)

	s.Advance(types.Point{Row: 1, Col: 0}, false)
	assert.Equal(t, []types.Point{{Row: 1, Col: 0}, {Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}}, s.Body)
	assertInSync(t, s)
}

func TestNewSnakeFromBodyValidation(t *testing.T) {
	_, err := NewSnakeFromBody(nil)
	assert.ErrorIs(t, err, ErrEmptyBody)

	_, err = NewSnakeFromBody([]types.Point{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 0}})
	assert.ErrorIs(t, err, ErrSelfIntersect)
}

func TestCloneIsIndependent(t *testing.T) {
	s, err := NewSnakeFromBody([]types.Point{{Row: 1, Col: 1}, {Row: 1, Col: 2}})
	require.NoError(t, err)

	c := s.Clone()
	c.Advance(types.Point{Row: 0, Col: 1}, false)

	assert.Equal(t, []types.Point{{Row: 1, Col: 1}, {Row: 1, Col: 2}}, s.Body)
	assert.True(t, s.Has(types.Point{Row: 1, Col: 2}))
	assert.False(t, c.Has(types.Point{Row: 1, Col: 2}))
	assertInSync(t, s)
	assertInSync(t, c)
}

func TestSelfIntersects(t *testing.T) {
	s, err := NewSnakeFromBody([]types.Point{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}})
	require.NoError(t, err)
	assert.False(t, s.SelfIntersects())

	s.Move(types.Point{Row: 1, Col: 1})
	assert.True(t, s.SelfIntersects())
}
