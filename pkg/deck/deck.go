package deck

import (
	"errors"
	"math/rand/v2"

	"github.com/cbodonnell/reign/pkg/game/types"
	"github.com/cbodonnell/reign/pkg/log"
	"github.com/cbodonnell/reign/pkg/queue"
)

// ErrEmptyDeck is returned when a sequencer is created from a deck with no cards.
var ErrEmptyDeck = errors.New("deck has no cards")

// RNG is the source of randomness used to shuffle.
type RNG interface {
	// IntN returns a uniformly random int in [0, n).
	IntN(n int) int
}

type defaultRNG struct{}

func (defaultRNG) IntN(n int) int {
	return rand.IntN(n)
}

// Sequencer hands out cards from a shuffled queue, reshuffling the full
// authored deck whenever the queue runs dry.
type Sequencer struct {
	// deck is the full authored deck. It is never modified.
	deck []*types.CardDefinition
	// active is the queue of cards left in the current pass.
	active *queue.InMemoryQueue[*types.CardDefinition]
	// rng is the source of randomness for shuffles.
	rng RNG
	// passes counts the number of shuffles performed.
	passes int
}

type NewSequencerOptions struct {
	// RNG overrides the random source. Defaults to math/rand/v2.
	RNG RNG
	// ShuffleOnCreate shuffles the queue immediately rather than on the first Next.
	ShuffleOnCreate bool
}

// NewSequencer creates a Sequencer for the given authored deck.
// The deck slice is copied, so later changes by the caller have no effect.
func NewSequencer(deck []*types.CardDefinition, opts NewSequencerOptions) (*Sequencer, error) {
	if len(deck) == 0 {
		return nil, ErrEmptyDeck
	}

	rng := opts.RNG
	if rng == nil {
		rng = defaultRNG{}
	}

	authored := make([]*types.CardDefinition, len(deck))
	copy(authored, deck)

	s := &Sequencer{
		deck:   authored,
		active: queue.NewInMemoryQueue[*types.CardDefinition](len(authored)),
		rng:    rng,
	}
	if opts.ShuffleOnCreate {
		s.Shuffle()
	}
	return s, nil
}

// Shuffle replaces the active queue with a uniformly random permutation of the
// full authored deck, discarding whatever was left in the queue.
func (s *Sequencer) Shuffle() {
	shuffled := make([]*types.CardDefinition, len(s.deck))
	copy(shuffled, s.deck)

	// Durstenfeld: swap i with a uniformly chosen index in [0, i].
	for i := len(shuffled) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	s.active.Clear()
	s.active.Enqueue(shuffled...)
	s.passes++
	log.Debug("Shuffled deck of %d cards (pass %d)", len(shuffled), s.passes)
}

// Next removes and returns the card at the front of the queue, reshuffling
// first if the queue is empty.
func (s *Sequencer) Next() *types.CardDefinition {
	if s.active.Size() == 0 {
		log.Debug("Deck is empty, reshuffling")
		s.Shuffle()
	}
	card, _ := s.active.Dequeue()
	return card
}

// Remaining returns the number of cards left before the next reshuffle.
func (s *Sequencer) Remaining() int {
	return s.active.Size()
}

// Size returns the number of cards in the authored deck.
func (s *Sequencer) Size() int {
	return len(s.deck)
}

// Passes returns how many times the deck has been shuffled.
func (s *Sequencer) Passes() int {
	return s.passes
}
