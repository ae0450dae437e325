package types

import (
	"fmt"
	"strings"
)

// ResourceKind identifies one of the four meters.
type ResourceKind int

const (
	ResourceHeart ResourceKind = iota
	ResourceGold
	ResourceMilitary
	ResourceFaith
)

// ResourceKinds lists every ResourceKind in display order.
var ResourceKinds = [...]ResourceKind{
	ResourceHeart,
	ResourceGold,
	ResourceMilitary,
	ResourceFaith,
}

func (k ResourceKind) String() string {
	switch k {
	case ResourceHeart:
		return "heart"
	case ResourceGold:
		return "gold"
	case ResourceMilitary:
		return "military"
	case ResourceFaith:
		return "faith"
	}
	return "unknown"
}

// Valid reports whether k is one of the four known kinds.
func (k ResourceKind) Valid() bool {
	return k >= ResourceHeart && k <= ResourceFaith
}

// ParseResourceKind parses a resource name (case-insensitive) into a ResourceKind.
// Valid names are: heart, gold, military, faith.
func ParseResourceKind(s string) (ResourceKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "heart":
		return ResourceHeart, nil
	case "gold":
		return ResourceGold, nil
	case "military":
		return ResourceMilitary, nil
	case "faith":
		return ResourceFaith, nil
	default:
		return 0, fmt.Errorf("unknown resource kind: %q", s)
	}
}

func (k ResourceKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid resource kind: %d", int(k))
	}
	return []byte(k.String()), nil
}

func (k *ResourceKind) UnmarshalText(text []byte) error {
	parsed, err := ParseResourceKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Effect is a signed change to a single meter.
type Effect struct {
	Kind  ResourceKind `json:"kind" yaml:"kind"`
	Delta int          `json:"delta" yaml:"delta"`
}

// EffectList is an ordered sequence of effects. An empty list is a valid no-op.
type EffectList []Effect

// Copy returns a copy of the list that does not share its backing array.
func (l EffectList) Copy() EffectList {
	if l == nil {
		return nil
	}
	c := make(EffectList, len(l))
	copy(c, l)
	return c
}
