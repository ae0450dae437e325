package scenes

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/reign/client/fonts"
	"github.com/cbodonnell/reign/client/objects"
	"github.com/cbodonnell/reign/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

var (
	backgroundColor = color.RGBA{52, 40, 32, 255}
	statusColor     = color.RGBA{200, 190, 170, 255}
)

type GameScene struct {
	*BaseScene

	// session is the reign being played.
	session *game.Session
}

var _ Scene = &GameScene{}

func NewGameScene(session *game.Session) (*GameScene, error) {
	root := objects.NewBaseObject("game-root", nil)
	if err := root.AddChild(objects.NewMetersObject("meters", session)); err != nil {
		return nil, fmt.Errorf("failed to add meters object: %v", err)
	}
	if err := root.AddChild(objects.NewCardObject("card", session)); err != nil {
		return nil, fmt.Errorf("failed to add card object: %v", err)
	}

	return &GameScene{
		BaseScene: NewBaseScene(root),
		session:   session,
	}, nil
}

// Update delivers input through the object tree and then advances the session by one tick.
func (s *GameScene) Update() error {
	if s.session.Over() {
		return nil
	}
	if err := s.BaseScene.Update(); err != nil {
		return err
	}
	s.session.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s.BaseScene.Draw(screen)

	status := fmt.Sprintf("Decisions: %d", s.session.Resolved())
	text.Draw(screen, status, fonts.TTFSmallFont, 8, objects.ScreenHeight-8, statusColor)
}

// Session returns the reign being played.
func (s *GameScene) Session() *game.Session {
	return s.session
}
