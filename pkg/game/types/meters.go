package types

import "fmt"

// Meters holds one value per ResourceKind.
type Meters struct {
	Heart    int `json:"heart"`
	Gold     int `json:"gold"`
	Military int `json:"military"`
	Faith    int `json:"faith"`
}

// Get returns the value of the meter for kind.
func (m Meters) Get(kind ResourceKind) int {
	switch kind {
	case ResourceHeart:
		return m.Heart
	case ResourceGold:
		return m.Gold
	case ResourceMilitary:
		return m.Military
	case ResourceFaith:
		return m.Faith
	}
	return 0
}

// Set sets the value of the meter for kind.
func (m *Meters) Set(kind ResourceKind, value int) {
	switch kind {
	case ResourceHeart:
		m.Heart = value
	case ResourceGold:
		m.Gold = value
	case ResourceMilitary:
		m.Military = value
	case ResourceFaith:
		m.Faith = value
	}
}

func (m Meters) String() string {
	return fmt.Sprintf("heart=%d gold=%d military=%d faith=%d", m.Heart, m.Gold, m.Military, m.Faith)
}

// Bound is the limit a meter ended a reign at.
type Bound int

const (
	BoundFloor Bound = iota
	BoundCeiling
)

func (b Bound) String() string {
	switch b {
	case BoundFloor:
		return "floor"
	case BoundCeiling:
		return "ceiling"
	}
	return "unknown"
}

func (b Bound) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *Bound) UnmarshalText(text []byte) error {
	switch string(text) {
	case "floor":
		*b = BoundFloor
	case "ceiling":
		*b = BoundCeiling
	default:
		return fmt.Errorf("unknown bound: %q", text)
	}
	return nil
}

// Ending names a meter that reached one of its bounds.
type Ending struct {
	Kind  ResourceKind `json:"kind"`
	Bound Bound        `json:"bound"`
}

func (e Ending) String() string {
	return fmt.Sprintf("%s:%s", e.Kind, e.Bound)
}
