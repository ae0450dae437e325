package types

// CardDefinition is authored card content. It is never mutated after loading.
type CardDefinition struct {
	// ID is a stable identifier for the card, unique within a deck.
	ID string `json:"id" yaml:"id"`
	// Title is the headline drawn at the top of the card.
	Title string `json:"title" yaml:"title"`
	// Description is the body text of the card.
	Description string `json:"description" yaml:"description"`
	// Image is a reference to the card art, resolved by the presentation layer.
	Image string `json:"image,omitempty" yaml:"image,omitempty"`
	// LeftLabel is the text of the option chosen by swiping left.
	LeftLabel string `json:"leftLabel" yaml:"left_label"`
	// LeftEffects are applied when the card is swiped left.
	LeftEffects EffectList `json:"leftEffects" yaml:"left_effects"`
	// RightLabel is the text of the option chosen by swiping right.
	RightLabel string `json:"rightLabel" yaml:"right_label"`
	// RightEffects are applied when the card is swiped right.
	RightEffects EffectList `json:"rightEffects" yaml:"right_effects"`
}

// Effects returns the effect list for the given side.
func (c *CardDefinition) Effects(side Side) EffectList {
	if side == SideRight {
		return c.RightEffects
	}
	return c.LeftEffects
}

// Label returns the option label for the given side.
func (c *CardDefinition) Label(side Side) string {
	if side == SideRight {
		return c.RightLabel
	}
	return c.LeftLabel
}
