package deck

import (
	"fmt"
	"testing"

	"github.com/cbodonnell/reign/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequenceRNG returns values from a pre-set sequence.
type sequenceRNG struct {
	values []int
	idx    int
	calls  []int
}

func (r *sequenceRNG) IntN(n int) int {
	r.calls = append(r.calls, n)
	if len(r.values) == 0 {
		return n - 1
	}
	v := r.values[r.idx%len(r.values)] % n
	r.idx++
	return v
}

func testDeck(n int) []*types.CardDefinition {
	cards := make([]*types.CardDefinition, n)
	for i := range n {
		cards[i] = &types.CardDefinition{
			ID:    fmt.Sprintf("card-%d", i),
			Title: fmt.Sprintf("Card %d", i),
		}
	}
	return cards
}

func ids(cards []*types.CardDefinition) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.ID
	}
	return out
}

func TestNewSequencer_EmptyDeck(t *testing.T) {
	for _, deck := range [][]*types.CardDefinition{nil, {}} {
		s, err := NewSequencer(deck, NewSequencerOptions{})
		assert.ErrorIs(t, err, ErrEmptyDeck)
		assert.Nil(t, s)
	}
}

func TestSequencer_ShuffleIsPermutation(t *testing.T) {
	for _, n := range []int{1, 2, 5, 22} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			deck := testDeck(n)
			s, err := NewSequencer(deck, NewSequencerOptions{})
			require.NoError(t, err)

			s.Shuffle()
			assert.Equal(t, n, s.Remaining())

			drawn := make([]*types.CardDefinition, 0, n)
			for range n {
				drawn = append(drawn, s.Next())
			}
			assert.ElementsMatch(t, ids(deck), ids(drawn))
			assert.Equal(t, 1, s.Passes())
		})
	}
}

func TestSequencer_DurstenfeldIndices(t *testing.T) {
	rng := &sequenceRNG{values: []int{0}}
	s, err := NewSequencer(testDeck(5), NewSequencerOptions{RNG: rng})
	require.NoError(t, err)

	s.Shuffle()

	// One draw per index from last to first, each bounded by i+1.
	assert.Equal(t, []int{5, 4, 3, 2}, rng.calls)
}

func TestSequencer_KnownPermutation(t *testing.T) {
	// Always choosing j=0 rotates: i=2 swaps 0,2 -> [2,1,0]; i=1 swaps 0,1 -> [1,2,0].
	rng := &sequenceRNG{values: []int{0}}
	s, err := NewSequencer(testDeck(3), NewSequencerOptions{RNG: rng})
	require.NoError(t, err)

	got := []string{s.Next().ID, s.Next().ID, s.Next().ID}
	assert.Equal(t, []string{"card-1", "card-2", "card-0"}, got)
}

func TestSequencer_NextReshufflesOnEmpty(t *testing.T) {
	deck := testDeck(4)
	s, err := NewSequencer(deck, NewSequencerOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, s.Remaining())

	first := make([]*types.CardDefinition, 0, 4)
	for range 4 {
		first = append(first, s.Next())
	}
	assert.ElementsMatch(t, ids(deck), ids(first))
	assert.Equal(t, 0, s.Remaining())
	assert.Equal(t, 1, s.Passes())

	next := s.Next()
	require.NotNil(t, next)
	assert.Equal(t, 2, s.Passes())
	assert.Equal(t, 3, s.Remaining())
}

func TestSequencer_ShuffleDiscardsRemainder(t *testing.T) {
	s, err := NewSequencer(testDeck(6), NewSequencerOptions{ShuffleOnCreate: true})
	require.NoError(t, err)

	_ = s.Next()
	_ = s.Next()
	assert.Equal(t, 4, s.Remaining())

	s.Shuffle()
	assert.Equal(t, 6, s.Remaining())
}

func TestSequencer_DoesNotAliasCallerDeck(t *testing.T) {
	deck := testDeck(2)
	s, err := NewSequencer(deck, NewSequencerOptions{})
	require.NoError(t, err)

	deck[0] = &types.CardDefinition{ID: "intruder"}
	drawn := []string{s.Next().ID, s.Next().ID}
	assert.ElementsMatch(t, []string{"card-0", "card-1"}, drawn)
}

func TestSequencer_SingleCardRepeats(t *testing.T) {
	s, err := NewSequencer(testDeck(1), NewSequencerOptions{})
	require.NoError(t, err)
	for range 3 {
		assert.Equal(t, "card-0", s.Next().ID)
	}
	assert.Equal(t, 3, s.Passes())
}
