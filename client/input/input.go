package input

import (
	"github.com/cbodonnell/reign/pkg/kinematic"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Pointer tracks a single mouse or touch pointer across frames.
// Only the first touch is followed; other touches are ignored until it lifts.
type Pointer struct {
	touchID  ebiten.TouchID
	touching bool
	position kinematic.Vector

	touchIDs []ebiten.TouchID
}

// PointerFrame is the pointer input observed during one frame.
type PointerFrame struct {
	// Position is the latest pointer position in screen coordinates.
	Position kinematic.Vector
	// JustPressed is true on the frame the pointer went down.
	JustPressed bool
	// Pressed is true while the pointer is down.
	Pressed bool
	// JustReleased is true on the frame the pointer went up.
	JustReleased bool
}

// Poll reads this frame's pointer input. It must be called once per Update.
func (p *Pointer) Poll() PointerFrame {
	frame := PointerFrame{}

	if p.touching {
		if inpututil.IsTouchJustReleased(p.touchID) {
			p.touching = false
			frame.JustReleased = true
			frame.Position = p.position
			return frame
		}
		x, y := ebiten.TouchPosition(p.touchID)
		p.position = kinematic.Vector{X: float64(x), Y: float64(y)}
		frame.Pressed = true
		frame.Position = p.position
		return frame
	}

	p.touchIDs = inpututil.AppendJustPressedTouchIDs(p.touchIDs[:0])
	if len(p.touchIDs) > 0 {
		p.touchID = p.touchIDs[0]
		p.touching = true
		x, y := ebiten.TouchPosition(p.touchID)
		p.position = kinematic.Vector{X: float64(x), Y: float64(y)}
		frame.JustPressed = true
		frame.Pressed = true
		frame.Position = p.position
		return frame
	}

	x, y := ebiten.CursorPosition()
	p.position = kinematic.Vector{X: float64(x), Y: float64(y)}
	frame.Position = p.position
	frame.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	frame.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	frame.JustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	return frame
}

// IsPositiveJustPressed returns a boolean value indicating whether the generic positive input is just pressed.
// This is used to handle both keyboard and touch inputs.
func IsPositiveJustPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	return len(touchIDs) > 0
}

// IsNegativeJustPressed returns a boolean value indicating whether the generic negative input is just pressed.
func IsNegativeJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// IsDebugJustPressed returns a boolean value indicating whether the debug overlay toggle is just pressed.
func IsDebugJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF3)
}
