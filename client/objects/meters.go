package objects

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/reign/client/fonts"
	"github.com/cbodonnell/reign/pkg/game/constants"
	"github.com/cbodonnell/reign/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// MeterSource is the part of the game session the meter strip reads.
type MeterSource interface {
	Meters() types.Meters
	Card() *types.CardDefinition
	VisualState() types.VisualState
}

var (
	meterStripColor = color.RGBA{30, 24, 20, 255}
	meterTrackColor = color.RGBA{70, 60, 50, 255}
	meterLabelColor = color.RGBA{220, 210, 190, 255}
	meterColors     = map[types.ResourceKind]color.RGBA{
		types.ResourceHeart:    {200, 60, 80, 255},
		types.ResourceGold:     {220, 180, 40, 255},
		types.ResourceMilitary: {120, 130, 150, 255},
		types.ResourceFaith:    {150, 110, 200, 255},
	}
)

const (
	meterTrackWidth  = 16
	meterTrackHeight = 40
	meterTrackTop    = 8
)

// MetersObject draws the four meters across the top of the screen.
// While a side hint is active, the meters that side would move are marked.
type MetersObject struct {
	*BaseObject

	source MeterSource
}

func NewMetersObject(id string, source MeterSource) *MetersObject {
	return &MetersObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: 10}),
		source:     source,
	}
}

// meterCenter returns the horizontal center of the meter slot at index i.
func meterCenter(i int) int {
	slot := ScreenWidth / len(types.ResourceKinds)
	return slot*i + slot/2
}

// meterFill returns the filled height of a track for value.
func meterFill(value int) float32 {
	span := float32(constants.MeterMax - constants.MeterMin)
	return float32(meterTrackHeight) * float32(value-constants.MeterMin) / span
}

// previewKinds returns the kinds the currently hinted side would change.
func previewKinds(card *types.CardDefinition, vs types.VisualState) map[types.ResourceKind]bool {
	if card == nil {
		return nil
	}
	var effects types.EffectList
	switch {
	case vs.LeftHintActive:
		effects = card.Effects(types.SideLeft)
	case vs.RightHintActive:
		effects = card.Effects(types.SideRight)
	default:
		return nil
	}
	kinds := make(map[types.ResourceKind]bool, len(effects))
	for _, e := range effects {
		if e.Delta != 0 {
			kinds[e.Kind] = true
		}
	}
	return kinds
}

func (o *MetersObject) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, ScreenWidth, MeterBarHeight, meterStripColor, false)

	meters := o.source.Meters()
	preview := previewKinds(o.source.Card(), o.source.VisualState())
	for i, kind := range types.ResourceKinds {
		cx := meterCenter(i)
		left := float32(cx - meterTrackWidth/2)
		vector.DrawFilledRect(screen, left, meterTrackTop, meterTrackWidth, meterTrackHeight, meterTrackColor, false)

		fill := meterFill(meters.Get(kind))
		vector.DrawFilledRect(screen, left, meterTrackTop+meterTrackHeight-fill, meterTrackWidth, fill, meterColors[kind], false)

		if preview[kind] {
			vector.DrawFilledCircle(screen, float32(cx+meterTrackWidth), meterTrackTop+4, 4, meterLabelColor, true)
		}

		label := fmt.Sprintf("%s %d", kind, meters.Get(kind))
		drawCentered(screen, label, fonts.TTFSmallFont, cx, MeterBarHeight-6, meterLabelColor)
	}
}
