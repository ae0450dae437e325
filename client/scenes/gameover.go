package scenes

import (
	"fmt"

	"github.com/cbodonnell/reign/client/objects"
	"github.com/cbodonnell/reign/pkg/game/types"
)

type GameOverScene struct {
	*BaseScene
}

var _ Scene = &GameOverScene{}

func NewGameOverScene(reign types.Reign) (Scene, error) {
	return &GameOverScene{
		BaseScene: NewBaseScene(objects.NewTextOverlayObject("overlay-gameover", "Your reign is over", gameOverLines(reign)...)),
	}, nil
}

// gameOverLines explains how reign ended.
func gameOverLines(reign types.Reign) []string {
	lines := make([]string, 0, len(reign.Endings)+2)
	if !reign.Ended() {
		lines = append(lines, "You abdicated the throne.")
	}
	for _, e := range reign.Endings {
		lines = append(lines, endingHeadline(e))
	}
	lines = append(lines, fmt.Sprintf("You ruled for %d decisions.", reign.CardsResolved))
	return lines
}

// endingHeadline describes the fall caused by e.
func endingHeadline(e types.Ending) string {
	switch e {
	case types.Ending{Kind: types.ResourceHeart, Bound: types.BoundFloor}:
		return "The people rose against you."
	case types.Ending{Kind: types.ResourceHeart, Bound: types.BoundCeiling}:
		return "The people loved you to ruin."
	case types.Ending{Kind: types.ResourceGold, Bound: types.BoundFloor}:
		return "The treasury ran dry."
	case types.Ending{Kind: types.ResourceGold, Bound: types.BoundCeiling}:
		return "The merchants bought your crown."
	case types.Ending{Kind: types.ResourceMilitary, Bound: types.BoundFloor}:
		return "Invaders found no one at the walls."
	case types.Ending{Kind: types.ResourceMilitary, Bound: types.BoundCeiling}:
		return "The generals took the throne."
	case types.Ending{Kind: types.ResourceFaith, Bound: types.BoundFloor}:
		return "The church declared you a heretic."
	case types.Ending{Kind: types.ResourceFaith, Bound: types.BoundCeiling}:
		return "The clergy ruled in your name."
	}
	return fmt.Sprintf("%s reached its %s.", e.Kind, e.Bound)
}
