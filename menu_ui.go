package main

import (
	"image/color"

	"github.com/milk9111/flagrun/ecs"
	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// menuUI is the centered panel shown between levels.
type menuUI struct {
	ui      *ebitenui.UI
	title   *widget.Text
	outcome ecs.EventKind
}

// newMenuUI builds the menu with Retry and Next buttons. Buttons use colored
// nine-slices and the built-in basic font, so no theme assets are needed.
func newMenuUI(g *Game) *menuUI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	title := widget.NewText(
		widget.TextOpts.Text("", &face, white),
		widget.TextOpts.WidgetOpts(center),
	)
	hint := widget.NewText(
		widget.TextOpts.Text("Enter/R retry   N next   F12 quit", &face, white),
		widget.TextOpts.WidgetOpts(center),
	)

	retryBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Retry", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(center),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.retry()
		}),
	)
	nextBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Next", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(center),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.next()
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(baseWidth/3, baseHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(retryBtn)
	panel.AddChild(nextBtn)
	panel.AddChild(hint)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	m := &menuUI{
		ui:    &ebitenui.UI{Container: root},
		title: title,
	}
	m.setTitle("")
	return m
}

// refresh updates the title when the level outcome changed.
func (m *menuUI) refresh(outcome ecs.EventKind, _ bool) {
	if outcome == m.outcome && m.title.Label != "" {
		return
	}
	m.outcome = outcome
	m.setTitle(outcome)
}

func (m *menuUI) setTitle(outcome ecs.EventKind) {
	switch outcome {
	case ecs.EventFlagReached:
		m.title.Label = "Level clear!"
	case ecs.EventPlayerFell:
		m.title.Label = "You fell"
	default:
		m.title.Label = "flagrun"
	}
}
