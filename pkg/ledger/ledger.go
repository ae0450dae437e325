package ledger

import (
	"errors"
	"fmt"

	"github.com/cbodonnell/reign/pkg/game/constants"
	"github.com/cbodonnell/reign/pkg/game/types"
	"github.com/cbodonnell/reign/pkg/log"
)

// ErrOutOfRange matches any *OutOfRangeError with errors.Is.
var ErrOutOfRange = errors.New("meter value out of range")

// OutOfRangeError is returned when a start value lies outside the meter domain.
type OutOfRangeError struct {
	Kind  types.ResourceKind
	Value int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s start value %d is outside [%d, %d]", e.Kind, e.Value, constants.MeterMin, constants.MeterMax)
}

func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// Ledger owns the four meters. Apply is the only way to change them.
type Ledger struct {
	values [len(types.ResourceKinds)]int
}

type Option func(*options)

type options struct {
	start types.Meters
}

// WithStartValues overrides the default starting value of every meter.
func WithStartValues(start types.Meters) Option {
	return func(o *options) {
		o.start = start
	}
}

// New creates a Ledger with every meter at constants.MeterStart unless overridden.
func New(opts ...Option) (*Ledger, error) {
	o := &options{
		start: types.Meters{
			Heart:    constants.MeterStart,
			Gold:     constants.MeterStart,
			Military: constants.MeterStart,
			Faith:    constants.MeterStart,
		},
	}
	for _, opt := range opts {
		opt(o)
	}

	l := &Ledger{}
	for _, kind := range types.ResourceKinds {
		v := o.start.Get(kind)
		if v < constants.MeterMin || v > constants.MeterMax {
			return nil, &OutOfRangeError{Kind: kind, Value: v}
		}
		l.values[kind] = v
	}
	return l, nil
}

// Apply applies each effect in order, clamping after every step, and reports
// whether the game has ended. Effects with an unknown kind are skipped.
func (l *Ledger) Apply(effects types.EffectList) bool {
	for _, effect := range effects {
		if !effect.Kind.Valid() {
			log.Warn("Skipping effect with unknown resource kind %d", int(effect.Kind))
			continue
		}
		before := l.values[effect.Kind]
		// Saturating the delta to the meter span keeps the sum from overflowing.
		span := constants.MeterMax - constants.MeterMin
		delta := clamp(effect.Delta, -span, span)
		l.values[effect.Kind] = clamp(before+delta, constants.MeterMin, constants.MeterMax)
		log.Trace("Applied %+d to %s: %d -> %d", effect.Delta, effect.Kind, before, l.values[effect.Kind])
	}

	ended := l.CheckEnd()
	if ended {
		log.Debug("Meters reached a bound: %s", l.Values())
	}
	return ended
}

// CheckEnd returns true if any meter sits at its floor or ceiling.
func (l *Ledger) CheckEnd() bool {
	for _, v := range l.values {
		if v <= constants.MeterMin || v >= constants.MeterMax {
			return true
		}
	}
	return false
}

// Endings lists the meters that sit at a bound, in ResourceKinds order.
func (l *Ledger) Endings() []types.Ending {
	var endings []types.Ending
	for _, kind := range types.ResourceKinds {
		switch v := l.values[kind]; {
		case v <= constants.MeterMin:
			endings = append(endings, types.Ending{Kind: kind, Bound: types.BoundFloor})
		case v >= constants.MeterMax:
			endings = append(endings, types.Ending{Kind: kind, Bound: types.BoundCeiling})
		}
	}
	return endings
}

// Values returns a snapshot of the meters.
func (l *Ledger) Values() types.Meters {
	var m types.Meters
	for _, kind := range types.ResourceKinds {
		m.Set(kind, l.values[kind])
	}
	return m
}

// Get returns the current value of one meter.
func (l *Ledger) Get(kind types.ResourceKind) int {
	if !kind.Valid() {
		return 0
	}
	return l.values[kind]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
