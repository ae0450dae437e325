package game

import (
	"context"
	"fmt"
	"time"

	"github.com/cbodonnell/reign/client/input"
	"github.com/cbodonnell/reign/client/objects"
	"github.com/cbodonnell/reign/client/scenes"
	"github.com/cbodonnell/reign/pkg/cards"
	"github.com/cbodonnell/reign/pkg/game"
	"github.com/cbodonnell/reign/pkg/game/constants"
	gametypes "github.com/cbodonnell/reign/pkg/game/types"
	"github.com/cbodonnell/reign/pkg/gesture"
	"github.com/cbodonnell/reign/pkg/log"
	"github.com/cbodonnell/reign/pkg/repositories"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	// recentReignsLimit is the number of archived reigns listed on the menu.
	recentReignsLimit = 5
	// repositoryTimeout bounds listing the archive for the menu.
	repositoryTimeout = 5 * time.Second
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// deck is the authored deck every reign draws from.
	deck *cards.Deck
	// repository lists archived reigns for the menu. It may be nil.
	repository repositories.Repository
	// archiveChan receives finished reigns. It may be nil.
	archiveChan chan<- gametypes.Reign
	// mode is the current game mode.
	mode GameMode
	// scene is the current scene.
	scene scenes.Scene
	// session is the reign in progress while in GameModePlay.
	session *game.Session
}

type GameMode int

const (
	GameModeMenu GameMode = iota
	GameModePlay
	GameModeOver
)

func (m GameMode) String() string {
	switch m {
	case GameModeMenu:
		return "Menu"
	case GameModePlay:
		return "Play"
	case GameModeOver:
		return "Over"
	}
	return "Unknown"
}

type NewGameOptions struct {
	Debug bool
	// Deck is the authored deck. It must not be empty.
	Deck *cards.Deck
	// Repository lists archived reigns on the menu.
	Repository repositories.Repository
	// ArchiveChan receives every finished reign. Archiving is skipped when nil.
	ArchiveChan chan<- gametypes.Reign
}

func NewGame(opts NewGameOptions) (ebiten.Game, error) {
	if opts.Deck == nil || len(opts.Deck.Cards) == 0 {
		return nil, fmt.Errorf("deck is empty")
	}

	g := &Game{
		debug:       opts.Debug,
		deck:        opts.Deck,
		repository:  opts.Repository,
		archiveChan: opts.ArchiveChan,
	}

	if err := g.loadMenu(); err != nil {
		return nil, fmt.Errorf("failed to load menu scene: %v", err)
	}

	return g, nil
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}

	return nil
}

func (g *Game) loadMenu() error {
	menu, err := scenes.NewMenuScene(scenes.MenuSceneOptions{
		DeckName: g.deck.Name,
		Recent:   g.recentReigns(),
		OnBegin:  g.loadGame,
	})
	if err != nil {
		return fmt.Errorf("failed to create menu scene: %v", err)
	}
	if err := g.SetScene(menu); err != nil {
		return fmt.Errorf("failed to set menu scene: %v", err)
	}
	g.session = nil
	g.mode = GameModeMenu
	return nil
}

// recentReigns lists archived reigns for the menu. Failures are logged and yield no reigns.
func (g *Game) recentReigns() []gametypes.Reign {
	if g.repository == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), repositoryTimeout)
	defer cancel()

	reigns, err := g.repository.ListReigns(ctx, recentReignsLimit)
	if err != nil {
		log.Error("Failed to list reigns: %v", err)
		return nil
	}
	recent := make([]gametypes.Reign, 0, len(reigns))
	for _, r := range reigns {
		recent = append(recent, *r)
	}
	return recent
}

func (g *Game) loadGame() error {
	settings := g.deck.Settings
	nextCardDelay := settings.NextCardDelayOr(constants.NextCardDelay)

	session, err := game.NewSession(game.NewSessionOptions{
		Deck: g.deck.Cards,
		Gesture: gesture.NewResolverOptions{
			RestPosition:     objects.CardRestPosition,
			Threshold:        settings.SwipeThreshold,
			RotationStrength: settings.RotationStrength,
			ReturnSpeed:      settings.ReturnSpeed,
		},
		NextCardDelay: nextCardDelay,
		OnOver:        g.archiveReign,
	})
	if err != nil {
		return fmt.Errorf("failed to create session: %v", err)
	}

	gameScene, err := scenes.NewGameScene(session)
	if err != nil {
		return fmt.Errorf("failed to create game scene: %v", err)
	}
	if err := g.SetScene(gameScene); err != nil {
		return fmt.Errorf("failed to set game scene: %v", err)
	}
	g.session = session
	g.mode = GameModePlay
	return nil
}

func (g *Game) loadGameOver() error {
	gameOver, err := scenes.NewGameOverScene(g.session.Summary())
	if err != nil {
		return fmt.Errorf("failed to create game over scene: %v", err)
	}
	if err := g.SetScene(gameOver); err != nil {
		return fmt.Errorf("failed to set game over scene: %v", err)
	}
	g.mode = GameModeOver
	return nil
}

// archiveReign hands a finished reign to the archive worker without blocking the frame.
func (g *Game) archiveReign(reign gametypes.Reign) {
	if g.archiveChan == nil {
		return
	}
	select {
	case g.archiveChan <- reign:
	default:
		log.Warn("Archive queue is full, dropping reign %s", reign.ID)
	}
}

func (g *Game) Update() error {
	if input.IsDebugJustPressed() {
		g.debug = !g.debug
	}

	// Handle input
	if err := g.handleInput(); err != nil {
		return fmt.Errorf("failed to handle input: %v", err)
	}

	// Update the current scene
	if err := g.scene.Update(); err != nil {
		return fmt.Errorf("failed to update scene: %v", err)
	}

	if g.mode == GameModePlay && g.session.Over() {
		if err := g.loadGameOver(); err != nil {
			return fmt.Errorf("failed to load game over scene: %v", err)
		}
	}

	return nil
}

func (g *Game) handleInput() error {
	switch g.mode {
	case GameModePlay:
		if input.IsNegativeJustPressed() {
			g.session.Abandon()
		}
	case GameModeOver:
		if input.IsPositiveJustPressed() {
			if err := g.loadMenu(); err != nil {
				return fmt.Errorf("failed to load menu scene: %v", err)
			}
		}
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n   TPS: %0.1f", ebiten.ActualTPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   Mode: %s", g.mode))

	if g.session == nil {
		return
	}

	vs := g.session.VisualState()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n   Reign: %s", g.session.ID()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n   Gesture: %s x=%0.1f rot=%0.1f", g.session.GestureState(), vs.Position.X, vs.Rotation))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n\n   Remaining: %d", g.session.Remaining()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return objects.ScreenWidth, objects.ScreenHeight
}
