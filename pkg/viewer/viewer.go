// Package viewer opens a desktop window showing a rendered chart image.
package viewer

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/spectraplot/spectraplot/pkg/errors"
)

// Show opens a window displaying the image 1:1 and blocks until the window
// closes. Pressing escape or q closes it. Callers must not display
// concurrently: the window runs on the calling goroutine.
func Show(img image.Image, title string) error {
	if img == nil {
		return errors.New(errors.ErrDisplayFailed, errors.CategoryRender,
			"no image to display")
	}
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return errors.New(errors.ErrDisplayFailed, errors.CategoryRender,
			"image is empty")
	}

	if title == "" {
		title = "spectraplot"
	}

	g := &imageGame{
		img:    ebiten.NewImageFromImage(img),
		width:  bounds.Dx(),
		height: bounds.Dy(),
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		return errors.Wrap(err, errors.ErrDisplayFailed, errors.CategoryRender,
			"viewer window failed")
	}
	return nil
}

type imageGame struct {
	img    *ebiten.Image
	width  int
	height int
}

func (g *imageGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (g *imageGame) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.img, nil)
}

func (g *imageGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
