package objects

import (
	"image/color"
	"strings"

	"github.com/cbodonnell/reign/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
)

type TextOverlayObject struct {
	*BaseObject

	title string
	lines []string
}

// NewTextOverlayObject centers an upper-cased title with optional detail lines beneath it.
func NewTextOverlayObject(id string, title string, lines ...string) *TextOverlayObject {
	return &TextOverlayObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: 100}),
		title:      title,
		lines:      lines,
	}
}

func (o *TextOverlayObject) Draw(screen *ebiten.Image) {
	cx := screen.Bounds().Dx() / 2
	titleFace := fonts.TTFLargeFont
	bodyFace := fonts.TTFNormalFont

	height := lineHeight(titleFace) + len(o.lines)*lineHeight(bodyFace)
	y := screen.Bounds().Dy()/2 - height/2 + lineHeight(titleFace)
	drawCentered(screen, strings.ToUpper(o.title), titleFace, cx, y, color.White)

	for _, line := range o.lines {
		y += lineHeight(bodyFace)
		drawCentered(screen, line, bodyFace, cx, y, color.White)
	}
}
