package types

import (
	"fmt"

	"github.com/cbodonnell/reign/pkg/kinematic"
)

// Side is the direction a card was swiped.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "unknown"
}

// ParseSide parses "left" or "right" into a Side.
func ParseSide(s string) (Side, error) {
	switch s {
	case "left":
		return SideLeft, nil
	case "right":
		return SideRight, nil
	}
	return 0, fmt.Errorf("unknown side: %q", s)
}

func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Side) UnmarshalText(text []byte) error {
	parsed, err := ParseSide(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// GestureState is the state of the presented card's gesture.
type GestureState int

const (
	GestureIdle GestureState = iota
	GestureDragging
	GestureReturning
	GestureCommitted
)

func (s GestureState) String() string {
	switch s {
	case GestureIdle:
		return "Idle"
	case GestureDragging:
		return "Dragging"
	case GestureReturning:
		return "Returning"
	case GestureCommitted:
		return "Committed"
	}
	return "Unknown"
}

// CommitReport is emitted once the exit animation of a committed card completes.
type CommitReport struct {
	// Card is the card that was committed.
	Card *CardDefinition
	// Side is the side the card was swiped to.
	Side Side
	// Effects is the effect list of the chosen side.
	Effects EffectList
}

// VisualState is what the presentation layer needs to draw the active card.
type VisualState struct {
	// Position is the card's position in canvas units.
	Position kinematic.Vector
	// Rotation is the card's rotation in degrees.
	Rotation float64
	// LeftHintActive is true when the left option label should be shown.
	LeftHintActive bool
	// RightHintActive is true when the right option label should be shown.
	RightHintActive bool
}
