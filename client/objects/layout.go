package objects

import "github.com/cbodonnell/reign/pkg/kinematic"

const (
	// ScreenWidth is the logical width of the screen.
	ScreenWidth = 640
	// ScreenHeight is the logical height of the screen.
	ScreenHeight = 480

	// CardWidth is the width of the active card.
	CardWidth = 260
	// CardHeight is the height of the active card.
	CardHeight = 300

	// MeterBarHeight is the height of the meter strip at the top of the screen.
	MeterBarHeight = 70
)

// CardRestPosition is the center of the card when it is not being dragged.
var CardRestPosition = kinematic.Vector{
	X: ScreenWidth / 2,
	Y: MeterBarHeight + (ScreenHeight-MeterBarHeight)/2,
}
