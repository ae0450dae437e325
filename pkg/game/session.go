package game

import (
	"fmt"
	"time"

	"github.com/cbodonnell/reign/pkg/deck"
	"github.com/cbodonnell/reign/pkg/game/types"
	"github.com/cbodonnell/reign/pkg/gesture"
	"github.com/cbodonnell/reign/pkg/kinematic"
	"github.com/cbodonnell/reign/pkg/ledger"
	"github.com/cbodonnell/reign/pkg/log"
	"github.com/google/uuid"
)

// Session wires one Sequencer, one Resolver and one Ledger together for a single reign.
//
// Each frame the caller delivers input (PressStart, DragSample, PressEnd) and then
// calls Update once. A committed card's effects go to the ledger; the next card is
// presented unless a meter has reached a bound.
type Session struct {
	id        string
	sequencer *deck.Sequencer
	resolver  *gesture.Resolver
	ledger    *ledger.Ledger

	// nextCardDelay is the pause in seconds between a commit and the next card.
	nextCardDelay float64
	// pendingDelay is the time left before the next card is presented.
	pendingDelay float64
	waiting      bool

	over      bool
	decisions []types.Decision
	startedAt time.Time
	endedAt   time.Time
	now       func() time.Time
	onOver    func(types.Reign)
}

type NewSessionOptions struct {
	// Deck is the authored deck. It must not be empty.
	Deck []*types.CardDefinition
	// RNG overrides the shuffle random source.
	RNG deck.RNG
	// StartValues overrides the starting meters.
	StartValues *types.Meters
	// Gesture configures the resolver. OnCommit is set by the session.
	Gesture gesture.NewResolverOptions
	// NextCardDelay is the pause in seconds between a commit and the next card.
	NextCardDelay float64
	// Now overrides the clock used for reign timestamps.
	Now func() time.Time
	// OnOver is called once when the reign ends.
	OnOver func(types.Reign)
}

// NewSession creates a session and presents its first card.
func NewSession(opts NewSessionOptions) (*Session, error) {
	sequencer, err := deck.NewSequencer(opts.Deck, deck.NewSequencerOptions{RNG: opts.RNG})
	if err != nil {
		return nil, fmt.Errorf("failed to create deck sequencer: %w", err)
	}

	var ledgerOpts []ledger.Option
	if opts.StartValues != nil {
		ledgerOpts = append(ledgerOpts, ledger.WithStartValues(*opts.StartValues))
	}
	l, err := ledger.New(ledgerOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create ledger: %w", err)
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	s := &Session{
		id:            uuid.NewString(),
		sequencer:     sequencer,
		ledger:        l,
		nextCardDelay: opts.NextCardDelay,
		now:           now,
		onOver:        opts.OnOver,
	}

	resolverOpts := opts.Gesture
	resolverOpts.OnCommit = s.handleCommit
	s.resolver = gesture.NewResolver(resolverOpts)

	s.startedAt = now()
	if l.CheckEnd() {
		// A start value on a bound ends the reign before any card is shown.
		s.finish()
		return s, nil
	}
	s.presentNext()

	log.Info("Started reign %s with a deck of %d cards", s.id, sequencer.Size())
	return s, nil
}

// PressStart forwards a press to the resolver.
func (s *Session) PressStart() {
	if s.over {
		return
	}
	s.resolver.OnPressStart()
}

// DragSample forwards a pointer position to the resolver.
func (s *Session) DragSample(pointer kinematic.Vector) {
	if s.over {
		return
	}
	s.resolver.OnDragSample(pointer)
}

// PressEnd forwards a release to the resolver.
func (s *Session) PressEnd() {
	if s.over {
		return
	}
	s.resolver.OnPressEnd()
}

// Update advances the session by dt seconds. It must be called after the
// frame's input has been delivered.
func (s *Session) Update(dt float64) {
	if s.over || dt <= 0 {
		return
	}

	if s.waiting {
		s.pendingDelay -= dt
		if s.pendingDelay <= 0 {
			s.waiting = false
			s.presentNext()
		}
		return
	}

	s.resolver.Tick(dt)
}

func (s *Session) handleCommit(report types.CommitReport) {
	if report.Card != nil {
		s.decisions = append(s.decisions, types.Decision{CardID: report.Card.ID, Side: report.Side})
	}

	ended := s.ledger.Apply(report.Effects)
	log.Debug("Resolved card %d (%s), meters: %s", len(s.decisions), report.Side, s.ledger.Values())
	if ended {
		s.finish()
		return
	}

	if s.nextCardDelay > 0 {
		s.pendingDelay = s.nextCardDelay
		s.waiting = true
		return
	}
	s.presentNext()
}

func (s *Session) presentNext() {
	s.resolver.Present(s.sequencer.Next())
}

func (s *Session) finish() {
	s.over = true
	s.endedAt = s.now()
	log.Info("Reign %s ended after %d cards: %s", s.id, len(s.decisions), s.ledger.Values())
	if s.onOver != nil {
		s.onOver(s.Summary())
	}
}

// Abandon ends the session without a meter reaching a bound.
// It is a no-op if the session is already over.
func (s *Session) Abandon() {
	if s.over {
		return
	}
	log.Info("Reign %s abandoned", s.id)
	s.finish()
}

// ID returns the reign identifier.
func (s *Session) ID() string {
	return s.id
}

// Over reports whether the reign has ended.
func (s *Session) Over() bool {
	return s.over
}

// Waiting reports whether the session is pausing before the next card.
func (s *Session) Waiting() bool {
	return s.waiting
}

// Card returns the presented card.
func (s *Session) Card() *types.CardDefinition {
	return s.resolver.Card()
}

// GestureState returns the resolver state.
func (s *Session) GestureState() types.GestureState {
	return s.resolver.State()
}

// VisualState returns the resolver's visual state.
func (s *Session) VisualState() types.VisualState {
	return s.resolver.VisualState()
}

// Meters returns a snapshot of the ledger.
func (s *Session) Meters() types.Meters {
	return s.ledger.Values()
}

// Endings returns the meters at a bound.
func (s *Session) Endings() []types.Ending {
	return s.ledger.Endings()
}

// Resolved returns the number of cards committed so far.
func (s *Session) Resolved() int {
	return len(s.decisions)
}

// Remaining returns the number of cards left before the next reshuffle.
func (s *Session) Remaining() int {
	return s.sequencer.Remaining()
}

// Summary returns the reign record. EndedAt is zero while the reign is in progress.
func (s *Session) Summary() types.Reign {
	decisions := make([]types.Decision, len(s.decisions))
	copy(decisions, s.decisions)
	return types.Reign{
		ID:            s.id,
		StartedAt:     s.startedAt,
		EndedAt:       s.endedAt,
		CardsResolved: len(s.decisions),
		Meters:        s.ledger.Values(),
		Endings:       s.ledger.Endings(),
		Decisions:     decisions,
	}
}
