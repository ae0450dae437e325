package objects

import (
	"testing"

	"github.com/cbodonnell/reign/pkg/game/constants"
	"github.com/cbodonnell/reign/pkg/game/types"
	"github.com/stretchr/testify/assert"
)

func TestMeterFill(t *testing.T) {
	assert.Equal(t, float32(0), meterFill(constants.MeterMin))
	assert.Equal(t, float32(meterTrackHeight), meterFill(constants.MeterMax))
	assert.Equal(t, float32(meterTrackHeight)/2, meterFill(constants.MeterStart))
}

func TestPreviewKinds(t *testing.T) {
	card := &types.CardDefinition{
		LeftEffects:  types.EffectList{{Kind: types.ResourceGold, Delta: -10}, {Kind: types.ResourceFaith, Delta: 0}},
		RightEffects: types.EffectList{{Kind: types.ResourceHeart, Delta: 5}},
	}

	tests := []struct {
		name string
		vs   types.VisualState
		want map[types.ResourceKind]bool
	}{
		{name: "no hint", vs: types.VisualState{}, want: nil},
		{name: "left hint skips zero deltas", vs: types.VisualState{LeftHintActive: true}, want: map[types.ResourceKind]bool{types.ResourceGold: true}},
		{name: "right hint", vs: types.VisualState{RightHintActive: true}, want: map[types.ResourceKind]bool{types.ResourceHeart: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, previewKinds(card, tt.vs))
		})
	}

	assert.Nil(t, previewKinds(nil, types.VisualState{LeftHintActive: true}))
}

func TestMeterCenter(t *testing.T) {
	assert.Equal(t, ScreenWidth/8, meterCenter(0))
	assert.Equal(t, ScreenWidth*7/8, meterCenter(3))
}
