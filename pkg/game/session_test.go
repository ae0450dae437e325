package game

import (
	"fmt"
	"testing"
	"time"

	"github.com/cbodonnell/reign/pkg/deck"
	"github.com/cbodonnell/reign/pkg/game/types"
	"github.com/cbodonnell/reign/pkg/kinematic"
	"github.com/cbodonnell/reign/pkg/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// zeroRNG always picks index 0.
type zeroRNG struct{}

func (zeroRNG) IntN(n int) int { return 0 }

func testDeck(n int, right types.EffectList) []*types.CardDefinition {
	cards := make([]*types.CardDefinition, n)
	for i := range n {
		cards[i] = &types.CardDefinition{
			ID:           fmt.Sprintf("card-%d", i),
			Title:        fmt.Sprintf("Card %d", i),
			LeftLabel:    "No",
			RightLabel:   "Yes",
			RightEffects: right,
		}
	}
	return cards
}

func swipe(s *Session, offset float64) {
	s.PressStart()
	s.DragSample(kinematic.Vector{X: offset})
	s.PressEnd()
	s.Update(1)
}

func fixedClock() func() time.Time {
	t := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Minute)
		return t
	}
}

func TestNewSession_Errors(t *testing.T) {
	_, err := NewSession(NewSessionOptions{})
	assert.ErrorIs(t, err, deck.ErrEmptyDeck)

	_, err = NewSession(NewSessionOptions{
		Deck:        testDeck(1, nil),
		StartValues: &types.Meters{Heart: 50, Gold: 50, Military: 101, Faith: 50},
	})
	assert.ErrorIs(t, err, ledger.ErrOutOfRange)
}

func TestSession_CommitAppliesEffectsAndPresentsNext(t *testing.T) {
	s, err := NewSession(NewSessionOptions{
		Deck: testDeck(3, types.EffectList{{Kind: types.ResourceGold, Delta: 10}, {Kind: types.ResourceFaith, Delta: -5}}),
		RNG:  zeroRNG{},
	})
	require.NoError(t, err)
	require.NotNil(t, s.Card())
	first := s.Card()

	swipe(s, 200)

	assert.Equal(t, types.Meters{Heart: 50, Gold: 60, Military: 50, Faith: 45}, s.Meters())
	assert.Equal(t, 1, s.Resolved())
	assert.False(t, s.Over())
	assert.NotSame(t, first, s.Card())
	assert.Equal(t, types.GestureIdle, s.GestureState())
}

func TestSession_LeftSwipeWithEmptyEffects(t *testing.T) {
	s, err := NewSession(NewSessionOptions{Deck: testDeck(2, nil)})
	require.NoError(t, err)

	swipe(s, -200)
	assert.Equal(t, types.Meters{Heart: 50, Gold: 50, Military: 50, Faith: 50}, s.Meters())
	decisions := s.Summary().Decisions
	require.Len(t, decisions, 1)
	assert.Equal(t, types.SideLeft, decisions[0].Side)
}

func TestSession_ShortDragDoesNotCommit(t *testing.T) {
	s, err := NewSession(NewSessionOptions{Deck: testDeck(2, types.EffectList{{Kind: types.ResourceHeart, Delta: 10}})})
	require.NoError(t, err)
	card := s.Card()

	swipe(s, 100)
	for range 60 {
		s.Update(1.0 / 60.0)
	}

	assert.Same(t, card, s.Card())
	assert.Equal(t, 0, s.Resolved())
	assert.Equal(t, 50, s.Meters().Heart)
}

func TestSession_EachCardOncePerPass(t *testing.T) {
	cards := testDeck(5, nil)
	s, err := NewSession(NewSessionOptions{Deck: cards})
	require.NoError(t, err)

	seen := map[string]int{}
	for range len(cards) {
		seen[s.Card().ID]++
		swipe(s, 200)
	}
	assert.Len(t, seen, len(cards))
	for id, count := range seen {
		assert.Equal(t, 1, count, id)
	}
}

func TestSession_EndsWhenMeterReachesBound(t *testing.T) {
	var reigns []types.Reign
	s, err := NewSession(NewSessionOptions{
		Deck:        testDeck(3, types.EffectList{{Kind: types.ResourceHeart, Delta: 10}, {Kind: types.ResourceHeart, Delta: 10}}),
		StartValues: &types.Meters{Heart: 95, Gold: 50, Military: 50, Faith: 50},
		Now:         fixedClock(),
		OnOver: func(r types.Reign) {
			reigns = append(reigns, r)
		},
	})
	require.NoError(t, err)
	card := s.Card()

	swipe(s, 200)

	assert.True(t, s.Over())
	assert.Equal(t, 100, s.Meters().Heart)
	assert.Same(t, card, s.Card(), "no new card is presented after the reign ends")
	require.Len(t, reigns, 1)
	assert.Equal(t, s.ID(), reigns[0].ID)
	assert.Equal(t, 1, reigns[0].CardsResolved)
	assert.Equal(t, []types.Ending{{Kind: types.ResourceHeart, Bound: types.BoundCeiling}}, reigns[0].Endings)
	assert.True(t, reigns[0].EndedAt.After(reigns[0].StartedAt))

	// Input after the end is ignored.
	swipe(s, 200)
	s.Abandon()
	assert.Len(t, reigns, 1)
	assert.Equal(t, 1, s.Resolved())
}

func TestSession_StartOnBoundIsOver(t *testing.T) {
	called := 0
	s, err := NewSession(NewSessionOptions{
		Deck:        testDeck(1, nil),
		StartValues: &types.Meters{Heart: 0, Gold: 50, Military: 50, Faith: 50},
		OnOver:      func(types.Reign) { called++ },
	})
	require.NoError(t, err)
	assert.True(t, s.Over())
	assert.Nil(t, s.Card())
	assert.Equal(t, 1, called)
}

func TestSession_NextCardDelay(t *testing.T) {
	s, err := NewSession(NewSessionOptions{
		Deck:          testDeck(2, nil),
		RNG:           zeroRNG{},
		NextCardDelay: 0.5,
	})
	require.NoError(t, err)
	first := s.Card()

	swipe(s, 200)
	assert.True(t, s.Waiting())
	assert.Same(t, first, s.Card())

	// Presses during the pause do not restart the spent card.
	s.PressStart()
	assert.Equal(t, types.GestureIdle, s.GestureState())

	s.Update(0.25)
	assert.True(t, s.Waiting())
	s.Update(0)
	assert.True(t, s.Waiting())
	s.Update(0.25)
	assert.False(t, s.Waiting())
	assert.NotSame(t, first, s.Card())
}

func TestSession_Abandon(t *testing.T) {
	var reign types.Reign
	s, err := NewSession(NewSessionOptions{
		Deck:   testDeck(2, nil),
		OnOver: func(r types.Reign) { reign = r },
	})
	require.NoError(t, err)

	swipe(s, -200)
	s.Abandon()

	assert.True(t, s.Over())
	assert.Equal(t, s.ID(), reign.ID)
	assert.False(t, reign.Ended())
	assert.Equal(t, 1, reign.CardsResolved)
}
