package chart

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"github.com/tdewolff/canvas/renderers/svg"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/spectraplot/spectraplot/pkg/errors"
	"github.com/spectraplot/spectraplot/pkg/viewer"
)

const millimetresPerInch = 25.4

// Display finishes a standalone figure: render to the configured filename,
// or, when no filename is set, render to a temporary PNG and open the
// interactive viewer on it. Non-standalone figures are left untouched so the
// caller can keep drawing.
func Display(f *Figure) error {
	if !f.Settings.Standalone {
		return nil
	}

	if f.Settings.Filename != "" {
		return Save(f, f.Settings.Filename)
	}

	path := filepath.Join(os.TempDir(),
		fmt.Sprintf("spectraplot-%s.png", uuid.NewString()))
	canvas, err := renderRaster(f, path)
	if err != nil {
		return err
	}
	return viewer.Show(canvas.Image(), f.Settings.Title)
}

// Save renders the figure to a file, choosing the format by extension.
func Save(f *Figure, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		_, err := renderRaster(f, path)
		return err
	case ".svg":
		return renderSVG(f, path)
	default:
		return errors.Newf(errors.ErrRenderUnsupportedFormat, errors.CategoryRender,
			"unsupported output format %q: use .png or .svg", filepath.Ext(path)).
			WithContext("path", path)
	}
}

// renderRaster draws the figure on a raster canvas, writes it to path as PNG,
// and returns the canvas so callers can reuse the rendered image.
func renderRaster(f *Figure, path string) (*vgimg.Canvas, error) {
	s := f.Settings
	c := vgimg.NewWith(
		vgimg.UseWH(
			vg.Length(s.FigureWidth)*vg.Inch,
			vg.Length(s.FigureHeight)*vg.Inch,
		),
		vgimg.UseDPI(int(s.DPI)),
	)
	f.Plot.Draw(draw.New(c))

	out, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRenderWriteFailed, errors.CategoryRender,
			"cannot create output file").WithContext("path", path)
	}
	defer out.Close()

	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(out); err != nil {
		return nil, errors.Wrap(err, errors.ErrRenderWriteFailed, errors.CategoryRender,
			"cannot encode PNG output").WithContext("path", path)
	}
	return c, nil
}

// renderSVG draws the figure through the canvas gonum renderer and writes an
// SVG file.
func renderSVG(f *Figure, path string) error {
	s := f.Settings
	c := canvas.New(
		s.FigureWidth*millimetresPerInch,
		s.FigureHeight*millimetresPerInch,
	)
	f.Plot.Draw(renderers.NewGonumPlot(c))

	if err := c.WriteFile(path, svg.Writer); err != nil {
		return errors.Wrap(err, errors.ErrRenderWriteFailed, errors.CategoryRender,
			"cannot write SVG output").WithContext("path", path)
	}
	return nil
}
