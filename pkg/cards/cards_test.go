package cards

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cbodonnell/reign/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	data := []byte(`
name: Test
cards:
  - id: a
    title: Card A
    description: Something happens.
    left:
      label: No
      effects:
        - {kind: heart, delta: -5}
    right:
      label: Yes
      effects:
        - {kind: Gold, delta: 10}
        - {kind: gold, delta: 10}
  - title: Card B
    left:
      label: Ignore
    right:
      label: Act
      effects: []
`)
	deck, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, "Test", deck.Name)
	require.Len(t, deck.Cards, 2)

	a := deck.Cards[0]
	assert.Equal(t, "a", a.ID)
	assert.Equal(t, "Card A", a.Title)
	assert.Equal(t, "No", a.LeftLabel)
	assert.Equal(t, types.EffectList{{Kind: types.ResourceHeart, Delta: -5}}, a.LeftEffects)
	assert.Equal(t, types.EffectList{
		{Kind: types.ResourceGold, Delta: 10},
		{Kind: types.ResourceGold, Delta: 10},
	}, a.RightEffects, "effect order and duplicates are preserved")

	b := deck.Cards[1]
	assert.Equal(t, "card-1", b.ID)
	assert.Empty(t, b.LeftEffects)
	assert.Empty(t, b.RightEffects)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "no cards", data: "name: Empty\ncards: []\n"},
		{name: "missing title", data: "cards:\n  - id: a\n"},
		{name: "unknown kind", data: "cards:\n  - title: A\n    left:\n      effects:\n        - {kind: wood, delta: 1}\n"},
		{name: "duplicate id", data: "cards:\n  - {id: a, title: A}\n  - {id: a, title: B}\n"},
		{name: "negative setting", data: "settings: {swipe_threshold: -1}\ncards:\n  - {title: A}\n"},
		{name: "negative delay", data: "settings: {next_card_delay: -0.5}\ncards:\n  - {title: A}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.ErrorIs(t, err, ErrInvalidCard)
		})
	}

	_, err := Parse([]byte("cards: [unterminated"))
	assert.Error(t, err)
}

func TestParse_Settings(t *testing.T) {
	deck, err := Parse([]byte(`
settings:
  swipe_threshold: 120
  next_card_delay: 0.25
cards:
  - {title: A}
`))
	require.NoError(t, err)
	assert.Equal(t, 120.0, deck.Settings.SwipeThreshold)
	assert.Equal(t, 0.25, deck.Settings.NextCardDelayOr(0.5))

	deck, err = Parse([]byte("cards:\n  - {title: A}\n"))
	require.NoError(t, err)
	assert.Zero(t, deck.Settings)
	assert.Equal(t, 0.5, deck.Settings.NextCardDelayOr(0.5))
}

func TestParse_SettingsExplicitZeroDelay(t *testing.T) {
	deck, err := Parse([]byte("settings: {next_card_delay: 0}\ncards:\n  - {title: A}\n"))
	require.NoError(t, err)
	require.NotNil(t, deck.Settings.NextCardDelay)
	assert.Equal(t, 0.0, deck.Settings.NextCardDelayOr(0.5))
}

func TestDefault(t *testing.T) {
	deck, err := Default()
	require.NoError(t, err)
	assert.NotEmpty(t, deck.Name)
	assert.GreaterOrEqual(t, len(deck.Cards), 10)
	for _, card := range deck.Cards {
		assert.NotEmpty(t, card.LeftLabel, card.ID)
		assert.NotEmpty(t, card.RightLabel, card.ID)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cards:\n  - {id: only, title: Only}\n"), 0o644))

	deck, err := Load(path)
	require.NoError(t, err)
	require.Len(t, deck.Cards, 1)
	assert.Equal(t, "only", deck.Cards[0].ID)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	deck, err = Load("")
	require.NoError(t, err)
	assert.NotEmpty(t, deck.Cards)
}
