package objects

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// wrapText splits s into lines no wider than width when drawn with face.
func wrapText(s string, face font.Face, width int) []string {
	var lines []string
	for _, paragraph := range strings.Split(s, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, word := range words[1:] {
			candidate := line + " " + word
			if font.MeasureString(face, candidate).Ceil() > width {
				lines = append(lines, line)
				line = word
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}

// drawCentered draws t centered horizontally on cx with its baseline at y.
func drawCentered(dst *ebiten.Image, t string, face font.Face, cx, y int, clr color.Color) {
	w := font.MeasureString(face, t).Ceil()
	text.Draw(dst, t, face, cx-w/2, y, clr)
}

// lineHeight returns the distance between baselines for face.
func lineHeight(face font.Face) int {
	return face.Metrics().Height.Ceil()
}
