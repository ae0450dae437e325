package objects

import (
	"image/color"
	"math"

	"github.com/cbodonnell/reign/client/fonts"
	"github.com/cbodonnell/reign/client/input"
	"github.com/cbodonnell/reign/pkg/game/types"
	"github.com/cbodonnell/reign/pkg/kinematic"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
)

const (
	collisionTagCard    = "card"
	collisionTagPointer = "pointer"
)

var (
	cardColor        = color.RGBA{236, 224, 196, 255}
	cardBorderColor  = color.RGBA{120, 90, 50, 255}
	cardTextColor    = color.RGBA{40, 30, 20, 255}
	cardImageColor   = color.RGBA{200, 185, 150, 255}
	hintBackdrop     = color.RGBA{0, 0, 0, 170}
	hintTextColor    = color.White
	cardPaddingInner = 16
)

// CardController is the part of the game session a card object drives.
type CardController interface {
	Card() *types.CardDefinition
	VisualState() types.VisualState
	GestureState() types.GestureState
	PressStart()
	DragSample(pointer kinematic.Vector)
	PressEnd()
}

// CardObject draws the active card and turns pointer input into gesture input.
type CardObject struct {
	*BaseObject

	controller CardController
	pointer    *input.Pointer

	// space holds the card hitbox and a 1x1 pointer probe.
	space     *resolv.Space
	hitbox    *resolv.Object
	probe     *resolv.Object
	grabStart float64
	grabbing  bool

	face     *ebiten.Image
	faceCard *types.CardDefinition
}

func NewCardObject(id string, controller CardController) *CardObject {
	space := resolv.NewSpace(ScreenWidth, ScreenHeight, 16, 16)
	hitbox := resolv.NewObject(CardRestPosition.X-CardWidth/2, CardRestPosition.Y-CardHeight/2, CardWidth, CardHeight, collisionTagCard)
	probe := resolv.NewObject(0, 0, 1, 1, collisionTagPointer)
	space.Add(hitbox, probe)

	return &CardObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: 20}),
		controller: controller,
		pointer:    &input.Pointer{},
		space:      space,
		hitbox:     hitbox,
		probe:      probe,
	}
}

// Update delivers this frame's pointer input. The session is ticked by the
// scene after the object tree so input always precedes the tick.
func (o *CardObject) Update() error {
	o.HandlePointer(o.pointer.Poll())
	return nil
}

// HandlePointer applies one frame of pointer input.
func (o *CardObject) HandlePointer(frame input.PointerFrame) {
	if frame.JustPressed && o.hits(frame.Position) {
		o.grabbing = true
		o.grabStart = frame.Position.X
		o.controller.PressStart()
	}

	if o.grabbing && frame.Pressed && o.controller.GestureState() == types.GestureDragging {
		// The card follows the pointer relative to where it was grabbed.
		o.controller.DragSample(kinematic.Vector{
			X: CardRestPosition.X + frame.Position.X - o.grabStart,
			Y: frame.Position.Y,
		})
	}

	if frame.JustReleased && o.grabbing {
		o.grabbing = false
		o.controller.PressEnd()
	}
}

// hits reports whether p lies over the card at rest.
func (o *CardObject) hits(p kinematic.Vector) bool {
	o.probe.Position.X = p.X
	o.probe.Position.Y = p.Y
	o.probe.Update()
	return o.probe.Check(0, 0, collisionTagCard) != nil
}

func (o *CardObject) Draw(screen *ebiten.Image) {
	card := o.controller.Card()
	if card == nil {
		return
	}
	if card != o.faceCard {
		o.renderFace(card)
	}

	vs := o.controller.VisualState()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-CardWidth/2, -CardHeight/2)
	// Dragging right tilts the card clockwise in screen space.
	op.GeoM.Rotate(vs.Rotation * math.Pi / 180)
	op.GeoM.Translate(vs.Position.X, vs.Position.Y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(o.face, op)

	if vs.LeftHintActive {
		o.drawHint(screen, card.LeftLabel, ScreenWidth/4)
	}
	if vs.RightHintActive {
		o.drawHint(screen, card.RightLabel, ScreenWidth*3/4)
	}
}

func (o *CardObject) drawHint(screen *ebiten.Image, label string, cx int) {
	if label == "" {
		return
	}
	face := fonts.TTFTitleFont
	lines := wrapText(label, face, ScreenWidth/2-40)
	h := lineHeight(face)
	top := MeterBarHeight + 16
	vector.DrawFilledRect(screen, float32(cx-ScreenWidth/4+12), float32(top), float32(ScreenWidth/2-24), float32(h*len(lines)+16), hintBackdrop, false)
	for i, line := range lines {
		drawCentered(screen, line, face, cx, top+8+h*(i+1)-h/4, hintTextColor)
	}
}

// renderFace draws the static parts of card onto the cached face image.
func (o *CardObject) renderFace(card *types.CardDefinition) {
	o.faceCard = card
	if o.face == nil {
		o.face = ebiten.NewImage(CardWidth, CardHeight)
	}
	o.face.Clear()

	vector.DrawFilledRect(o.face, 0, 0, CardWidth, CardHeight, cardBorderColor, false)
	vector.DrawFilledRect(o.face, 4, 4, CardWidth-8, CardHeight-8, cardColor, false)

	titleFace := fonts.TTFTitleFont
	y := cardPaddingInner + lineHeight(titleFace)
	drawCentered(o.face, card.Title, titleFace, CardWidth/2, y, cardTextColor)

	// Placeholder frame for the card art; images are resolved by name only.
	artTop := float32(y + 12)
	artHeight := float32(110)
	vector.DrawFilledRect(o.face, float32(cardPaddingInner), artTop, float32(CardWidth-2*cardPaddingInner), artHeight, cardImageColor, false)
	if card.Image != "" {
		drawCentered(o.face, card.Image, fonts.TTFSmallFont, CardWidth/2, int(artTop+artHeight/2), cardTextColor)
	}

	bodyFace := fonts.TTFNormalFont
	y = int(artTop+artHeight) + 8
	for _, line := range wrapText(card.Description, bodyFace, CardWidth-2*cardPaddingInner) {
		y += lineHeight(bodyFace)
		if y > CardHeight-cardPaddingInner {
			break
		}
		drawCentered(o.face, line, bodyFace, CardWidth/2, y, cardTextColor)
	}
}

func (o *CardObject) Destroy() error {
	if o.face != nil {
		o.face.Deallocate()
		o.face = nil
	}
	return nil
}
