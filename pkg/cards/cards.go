package cards

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/cbodonnell/reign/pkg/game/types"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var deckFS embed.FS

// DefaultDeckFile is the embedded deck used when no deck file is given.
const DefaultDeckFile = "data/court.yaml"

// ErrInvalidCard is wrapped by every validation error returned by Parse.
var ErrInvalidCard = errors.New("invalid card")

// Deck is an authored deck of cards.
type Deck struct {
	Name     string
	Settings Settings
	Cards    []*types.CardDefinition
}

// Settings tunes play for a deck. Zero gesture values keep the game defaults.
type Settings struct {
	SwipeThreshold   float64 `yaml:"swipe_threshold"`
	RotationStrength float64 `yaml:"rotation_strength"`
	ReturnSpeed      float64 `yaml:"return_speed"`
	// NextCardDelay is nil when the deck does not set it. An explicit 0 disables the delay.
	NextCardDelay *float64 `yaml:"next_card_delay"`
}

// NextCardDelayOr returns the deck's next card delay, or def if the deck does not set one.
func (s Settings) NextCardDelayOr(def float64) float64 {
	if s.NextCardDelay == nil {
		return def
	}
	return *s.NextCardDelay
}

func (s Settings) validate() error {
	values := map[string]float64{
		"swipe_threshold":   s.SwipeThreshold,
		"rotation_strength": s.RotationStrength,
		"return_speed":      s.ReturnSpeed,
	}
	if s.NextCardDelay != nil {
		values["next_card_delay"] = *s.NextCardDelay
	}
	for name, v := range values {
		if v < 0 {
			return fmt.Errorf("%s must not be negative, got %v", name, v)
		}
	}
	return nil
}

type deckFile struct {
	Name     string      `yaml:"name"`
	Settings Settings    `yaml:"settings"`
	Cards    []cardEntry `yaml:"cards"`
}

type cardEntry struct {
	ID          string      `yaml:"id"`
	Title       string      `yaml:"title"`
	Description string      `yaml:"description"`
	Image       string      `yaml:"image"`
	Left        optionEntry `yaml:"left"`
	Right       optionEntry `yaml:"right"`
}

type optionEntry struct {
	Label   string        `yaml:"label"`
	Effects []effectEntry `yaml:"effects"`
}

type effectEntry struct {
	Kind  string `yaml:"kind"`
	Delta int    `yaml:"delta"`
}

// Parse decodes and validates a YAML deck.
func Parse(data []byte) (*Deck, error) {
	f := &deckFile{}
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("failed to decode deck: %w", err)
	}

	if len(f.Cards) == 0 {
		return nil, fmt.Errorf("deck %q: %w: no cards", f.Name, ErrInvalidCard)
	}

	if err := f.Settings.validate(); err != nil {
		return nil, fmt.Errorf("deck %q settings: %w: %v", f.Name, ErrInvalidCard, err)
	}

	deck := &Deck{
		Name:     f.Name,
		Settings: f.Settings,
		Cards:    make([]*types.CardDefinition, 0, len(f.Cards)),
	}
	ids := make(map[string]struct{}, len(f.Cards))
	for i, entry := range f.Cards {
		card, err := entry.toCard(i)
		if err != nil {
			return nil, err
		}
		if _, ok := ids[card.ID]; ok {
			return nil, fmt.Errorf("card %d: %w: duplicate id %q", i, ErrInvalidCard, card.ID)
		}
		ids[card.ID] = struct{}{}
		deck.Cards = append(deck.Cards, card)
	}

	return deck, nil
}

func (e cardEntry) toCard(index int) (*types.CardDefinition, error) {
	id := strings.TrimSpace(e.ID)
	if id == "" {
		id = fmt.Sprintf("card-%d", index)
	}
	if strings.TrimSpace(e.Title) == "" {
		return nil, fmt.Errorf("card %d (%s): %w: title is required", index, id, ErrInvalidCard)
	}

	left, err := e.Left.toEffects()
	if err != nil {
		return nil, fmt.Errorf("card %d (%s) left: %w: %v", index, id, ErrInvalidCard, err)
	}
	right, err := e.Right.toEffects()
	if err != nil {
		return nil, fmt.Errorf("card %d (%s) right: %w: %v", index, id, ErrInvalidCard, err)
	}

	return &types.CardDefinition{
		ID:           id,
		Title:        e.Title,
		Description:  e.Description,
		Image:        e.Image,
		LeftLabel:    e.Left.Label,
		LeftEffects:  left,
		RightLabel:   e.Right.Label,
		RightEffects: right,
	}, nil
}

func (o optionEntry) toEffects() (types.EffectList, error) {
	effects := make(types.EffectList, 0, len(o.Effects))
	for _, e := range o.Effects {
		kind, err := types.ParseResourceKind(e.Kind)
		if err != nil {
			return nil, err
		}
		effects = append(effects, types.Effect{Kind: kind, Delta: e.Delta})
	}
	return effects, nil
}

// LoadFile reads and parses a deck file from disk.
func LoadFile(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck file %s: %w", path, err)
	}
	deck, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse deck file %s: %w", path, err)
	}
	return deck, nil
}

// Default returns the embedded deck.
func Default() (*Deck, error) {
	data, err := deckFS.ReadFile(DefaultDeckFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded deck: %w", err)
	}
	return Parse(data)
}

// Load returns the deck at path, or the embedded deck if path is empty.
func Load(path string) (*Deck, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}
