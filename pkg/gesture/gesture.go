package gesture

import (
	"math"

	"github.com/cbodonnell/reign/pkg/game/constants"
	"github.com/cbodonnell/reign/pkg/game/types"
	"github.com/cbodonnell/reign/pkg/kinematic"
	"github.com/cbodonnell/reign/pkg/log"
)

// Resolver runs the drag, return and exit state machine for the presented card.
// It is driven by one Tick per frame, with input delivered before the frame's Tick.
type Resolver struct {
	rest             kinematic.Vector
	threshold        float64
	rotationStrength float64
	returnSpeed      float64
	exitDuration     float64
	exitDistance     float64
	hintWidth        float64
	onCommit         func(types.CommitReport)

	card  *types.CardDefinition
	state types.GestureState
	// spent is set once the presented card has been committed. Presses are
	// ignored until the next Present.
	spent bool

	position     kinematic.Vector
	rotation     float64
	offset       float64
	leftHint     bool
	rightHint    bool
	exitSide     types.Side
	exitFrom     kinematic.Vector
	exitTo       kinematic.Vector
	exitRotation float64
	exitElapsed  float64
}

type NewResolverOptions struct {
	// RestPosition is where the card sits when it is not being dragged.
	RestPosition kinematic.Vector
	// Threshold is the horizontal distance from rest past which a release commits.
	Threshold float64
	// RotationStrength is the degrees of rotation per unit of offset.
	RotationStrength float64
	// ReturnSpeed is the rate of the ease back to rest after a short release.
	ReturnSpeed float64
	// ExitDuration is the duration of the exit animation in seconds.
	ExitDuration float64
	// ExitDistance is how far from rest the exit animation travels.
	ExitDistance float64
	// HintWidth is the offset past which an option hint is shown.
	HintWidth float64
	// OnCommit is called once the exit animation of a committed card completes.
	OnCommit func(types.CommitReport)
}

// NewResolver creates a Resolver. Zero valued options take their defaults from constants.
func NewResolver(opts NewResolverOptions) *Resolver {
	r := &Resolver{
		rest:             opts.RestPosition,
		threshold:        orDefault(opts.Threshold, constants.SwipeThreshold),
		rotationStrength: orDefault(opts.RotationStrength, constants.RotationStrength),
		returnSpeed:      orDefault(opts.ReturnSpeed, constants.ReturnSpeed),
		exitDuration:     orDefault(opts.ExitDuration, constants.ExitDuration),
		exitDistance:     orDefault(opts.ExitDistance, constants.ExitDistance),
		hintWidth:        orDefault(opts.HintWidth, constants.HintWidth),
		onCommit:         opts.OnCommit,
	}
	r.reset()
	return r
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

// SetOnCommit replaces the commit callback.
func (r *Resolver) SetOnCommit(fn func(types.CommitReport)) {
	r.onCommit = fn
}

func (r *Resolver) reset() {
	r.state = types.GestureIdle
	r.spent = false
	r.position = r.rest
	r.rotation = 0
	r.offset = 0
	r.leftHint = false
	r.rightHint = false
	r.exitElapsed = 0
}

// Present binds card and resets to Idle at rest. Any drag, return or exit in
// progress is discarded, and no commit is reported for the previous card.
func (r *Resolver) Present(card *types.CardDefinition) {
	if r.state == types.GestureCommitted {
		log.Debug("Discarding pending commit of card %q", r.cardID())
	}
	r.card = card
	r.reset()
	log.Debug("Presented card %q", r.cardID())
}

// OnPressStart starts a drag.
func (r *Resolver) OnPressStart() {
	if r.state != types.GestureIdle || r.card == nil || r.spent {
		log.Trace("Ignoring press start in state %s", r.state)
		return
	}
	r.state = types.GestureDragging
	log.Trace("Drag started on card %q", r.cardID())
}

// OnDragSample moves the card horizontally to follow the pointer.
// The vertical component of the pointer is ignored.
func (r *Resolver) OnDragSample(pointer kinematic.Vector) {
	if r.state != types.GestureDragging {
		log.Trace("Ignoring drag sample in state %s", r.state)
		return
	}
	r.offset = pointer.X - r.rest.X
	r.position = kinematic.Vector{X: pointer.X, Y: r.rest.Y}
	r.rotation = r.offset * r.rotationStrength
	r.leftHint = r.offset < -r.hintWidth
	r.rightHint = r.offset > r.hintWidth
}

// OnPressEnd either commits the card to a side or starts returning it to rest.
func (r *Resolver) OnPressEnd() {
	if r.state != types.GestureDragging {
		log.Trace("Ignoring press end in state %s", r.state)
		return
	}

	if math.Abs(r.offset) > r.threshold {
		r.exitSide = types.SideLeft
		direction := -1.0
		if r.offset > 0 {
			r.exitSide = types.SideRight
			direction = 1.0
		}
		r.exitFrom = r.position
		r.exitRotation = r.rotation
		r.exitTo = r.rest.Add(kinematic.Vector{X: direction * r.exitDistance})
		r.exitElapsed = 0
		r.state = types.GestureCommitted
		log.Debug("Card %q committed %s at offset %.1f", r.cardID(), r.exitSide, r.offset)
		return
	}

	r.state = types.GestureReturning
	r.leftHint = false
	r.rightHint = false
	log.Trace("Card %q returning from offset %.1f", r.cardID(), r.offset)
}

// Tick advances the return or exit animation by dt seconds.
// A non-positive dt never changes state.
func (r *Resolver) Tick(dt float64) {
	if dt <= 0 {
		return
	}

	switch r.state {
	case types.GestureReturning:
		r.position = kinematic.Approach(r.position, r.rest, dt, r.returnSpeed)
		r.rotation = kinematic.ApproachFloat(r.rotation, 0, dt, r.returnSpeed)
		r.offset = r.position.X - r.rest.X
		if kinematic.Distance(r.position, r.rest) < constants.SnapEpsilon {
			r.position = r.rest
			r.rotation = 0
			r.offset = 0
			r.state = types.GestureIdle
			log.Trace("Card %q back at rest", r.cardID())
		}
	case types.GestureCommitted:
		r.exitElapsed += dt
		t := r.exitElapsed / r.exitDuration
		r.position = kinematic.Lerp(r.exitFrom, r.exitTo, t)
		r.rotation = r.exitRotation
		if t >= 1 {
			r.finishExit()
		}
	}
}

func (r *Resolver) finishExit() {
	report := types.CommitReport{
		Card:    r.card,
		Side:    r.exitSide,
		Effects: r.card.Effects(r.exitSide).Copy(),
	}
	r.state = types.GestureIdle
	r.spent = true
	r.leftHint = false
	r.rightHint = false
	log.Debug("Card %q exited %s", r.cardID(), report.Side)

	// The callback may Present the next card, so state is settled first.
	if r.onCommit != nil {
		r.onCommit(report)
	}
}

// State returns the current gesture state.
func (r *Resolver) State() types.GestureState {
	return r.state
}

// Card returns the presented card, or nil if none has been presented.
func (r *Resolver) Card() *types.CardDefinition {
	return r.card
}

// Offset returns the last computed horizontal offset from rest.
func (r *Resolver) Offset() float64 {
	return r.offset
}

// RestPosition returns the rest position of the card.
func (r *Resolver) RestPosition() kinematic.Vector {
	return r.rest
}

// VisualState returns what the presentation layer needs to draw the card.
func (r *Resolver) VisualState() types.VisualState {
	return types.VisualState{
		Position:        r.position,
		Rotation:        r.rotation,
		LeftHintActive:  r.leftHint,
		RightHintActive: r.rightHint,
	}
}

func (r *Resolver) cardID() string {
	if r.card == nil {
		return ""
	}
	return r.card.ID
}
