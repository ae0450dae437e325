package scenes

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/reign/client/fonts"
	"github.com/cbodonnell/reign/client/objects"
	"github.com/cbodonnell/reign/pkg/game/types"
	"github.com/cbodonnell/reign/pkg/log"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

type MenuScene struct {
	*BaseScene

	deckName string
	recent   []types.Reign
	onBegin  func() error
	ui       *ebitenui.UI
	beginErr string
}

type MenuSceneOptions struct {
	// DeckName is shown under the title.
	DeckName string
	// Recent lists previously archived reigns, newest first.
	Recent []types.Reign
	// OnBegin is called when the begin button is pressed.
	OnBegin func() error
}

var _ Scene = &MenuScene{}

func NewMenuScene(opts MenuSceneOptions) (Scene, error) {
	return &MenuScene{
		BaseScene: NewBaseScene(objects.NewBaseObject("menu-root", nil)),
		deckName:  opts.DeckName,
		recent:    opts.Recent,
		onBegin:   opts.OnBegin,
	}, nil
}

func (s *MenuScene) Init() error {
	s.renderUI()
	return s.BaseScene.Init()
}

// recentReignLine formats an archived reign for the menu.
func recentReignLine(r types.Reign) string {
	cause := "abdicated"
	if r.Ended() {
		cause = endingHeadline(r.Endings[0])
	}
	return fmt.Sprintf("%s  %d cards  %s", r.EndedAt.Format("Jan 02 15:04"), r.CardsResolved, cause)
}

func (s *MenuScene) renderUI() {
	buttonImage := &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.NRGBA{R: 150, G: 120, B: 70, A: 255}),
		Hover:   image.NewNineSliceColor(color.NRGBA{R: 125, G: 95, B: 55, A: 255}),
		Pressed: image.NewNineSliceColor(color.NRGBA{R: 100, G: 75, B: 40, A: 255}),
	}

	titleFace := fonts.TTFLargeFont
	fontFace := fonts.TTFNormalFont
	smallFace := fonts.TTFSmallFont
	textColor := color.NRGBA{R: 236, G: 224, B: 196, A: 255}
	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{
		Position: widget.RowLayoutPositionCenter,
	})

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(16),
			widget.RowLayoutOpts.Padding(widget.Insets{
				Top:    90,
				Left:   120,
				Right:  120,
				Bottom: 40,
			}))),
	)

	rootContainer.AddChild(widget.NewText(
		widget.TextOpts.Text("REIGN", titleFace, textColor),
		widget.TextOpts.WidgetOpts(centered),
	))
	if s.deckName != "" {
		rootContainer.AddChild(widget.NewText(
			widget.TextOpts.Text(s.deckName, smallFace, textColor),
			widget.TextOpts.WidgetOpts(centered),
		))
	}

	button := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(centered),
		widget.ButtonOpts.Image(buttonImage),
		widget.ButtonOpts.Text("Begin Reign", fontFace, &widget.ButtonTextColor{
			Idle:     color.NRGBA{254, 255, 255, 255},
			Disabled: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
		}),
		widget.ButtonOpts.TextPadding(widget.Insets{
			Left:   30,
			Right:  30,
			Top:    5,
			Bottom: 5,
		}),
	)
	rootContainer.AddChild(button)

	if s.beginErr != "" {
		rootContainer.AddChild(widget.NewText(
			widget.TextOpts.Text(s.beginErr, fontFace, color.NRGBA{R: 255, G: 0, B: 0, A: 255}),
			widget.TextOpts.WidgetOpts(centered),
		))
		s.beginErr = ""
	}

	if len(s.recent) > 0 {
		rootContainer.AddChild(widget.NewText(
			widget.TextOpts.Text("Past reigns", fontFace, textColor),
			widget.TextOpts.WidgetOpts(centered),
		))
		for _, r := range s.recent {
			rootContainer.AddChild(widget.NewText(
				widget.TextOpts.Text(recentReignLine(r), smallFace, textColor),
				widget.TextOpts.WidgetOpts(centered),
			))
		}
	}

	button.ClickedEvent.AddHandler(func(args interface{}) {
		if err := s.onBegin(); err != nil {
			log.Error("Failed to begin reign: %v", err)
			s.beginErr = "Failed to begin reign. Please try again."
			s.renderUI()
		}
	})

	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (s *MenuScene) Update() error {
	s.ui.Update()
	return s.BaseScene.Update()
}

func (s *MenuScene) Draw(screen *ebiten.Image) {
	s.ui.Draw(screen)
	s.BaseScene.Draw(screen)
}
