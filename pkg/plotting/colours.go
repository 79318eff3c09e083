package plotting

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot/plotter"
	ptext "gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/spectraplot/spectraplot/pkg/chart"
	"github.com/spectraplot/spectraplot/pkg/colorimetry"
	"github.com/spectraplot/spectraplot/pkg/dataset"
)

// ColourParameter is one colour sample for the segment and swatch plots:
// a colour, an optional x position, and optional lower/upper curve values.
// Nil Y0 and Y1 fall back to 0 and 1 when filling.
type ColourParameter struct {
	Name string
	RGB  colorimetry.RGB
	X    float64
	Y0   *float64
	Y1   *float64
}

// Float is a convenience for optional ColourParameter values.
func Float(v float64) *float64 { return &v }

// ColourParametersPlot fills the band between consecutive x positions with
// each sample's colour and optionally overlays the lower and upper curves in
// black. The axis limits derive from the data.
func ColourParametersPlot(params []ColourParameter, y0Plot, y1Plot bool, opts ...chart.Option) error {
	s := chart.DefaultSettings()
	s.XLabel = "Parameter"
	s.YLabel = "Colour"
	s = s.Apply(opts...)

	f := chart.New(s)
	if err := drawColourParameters(f, params, y0Plot, y1Plot); err != nil {
		return err
	}
	return finish(f)
}

// drawColourParameters draws the filled segments and curves and stores the
// data limits in the figure settings.
func drawColourParameters(f *chart.Figure, params []ColourParameter, y0Plot, y1Plot bool) error {
	for i := 0; i+1 < len(params); i++ {
		cur, next := params[i], params[i+1]

		y0, y1 := 0.0, 1.0
		y01, y11 := 0.0, 1.0
		if cur.Y0 != nil && next.Y0 != nil {
			y0 = *cur.Y0
			y01 = *next.Y0
		}
		if cur.Y1 != nil && next.Y1 != nil {
			y1 = *cur.Y1
			y11 = *next.Y1
		}

		quad, err := plotter.NewPolygon(plotter.XYs{
			{X: cur.X, Y: y0},
			{X: next.X, Y: y01},
			{X: next.X, Y: y11},
			{X: cur.X, Y: y1},
		})
		if err != nil {
			return err
		}
		c := rgba(cur.RGB)
		quad.Color = c
		quad.LineStyle.Color = c
		f.Plot.Add(quad)
	}

	if y0Plot && allY0Set(params) {
		if err := addCurve(f, params, func(p ColourParameter) float64 { return *p.Y0 }); err != nil {
			return err
		}
	}
	if y1Plot && allY1Set(params) {
		if err := addCurve(f, params, func(p ColourParameter) float64 { return *p.Y1 }); err != nil {
			return err
		}
	}

	xmin, xmax := math.Inf(1), math.Inf(-1)
	ymin, ymax := math.Inf(1), math.Inf(-1)
	for _, p := range params {
		xmin = math.Min(xmin, p.X)
		xmax = math.Max(xmax, p.X)

		y0, y1 := 0.0, 1.0
		if p.Y0 != nil {
			y0 = *p.Y0
		}
		if p.Y1 != nil {
			y1 = *p.Y1
		}
		ymin = math.Min(ymin, y0)
		ymax = math.Max(ymax, y1)
	}
	f.Settings.Limits = [4]float64{xmin, xmax, ymin, ymax}
	return nil
}

func allY0Set(params []ColourParameter) bool {
	for _, p := range params {
		if p.Y0 == nil {
			return false
		}
	}
	return len(params) > 0
}

func allY1Set(params []ColourParameter) bool {
	for _, p := range params {
		if p.Y1 == nil {
			return false
		}
	}
	return len(params) > 0
}

func addCurve(f *chart.Figure, params []ColourParameter, value func(ColourParameter) float64) error {
	pts := make(plotter.XYs, len(params))
	for i, p := range params {
		pts[i] = plotter.XY{X: p.X, Y: value(p)}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.Color = color.Black
	line.Width = vg.Points(2)
	f.Plot.Add(line)
	return nil
}

// SwatchLayout controls the swatch grid of MultiColourPlot.
type SwatchLayout struct {
	Width       float64
	Height      float64
	Spacing     float64
	Across      int
	TextDisplay bool
	TextOffset  float64
}

// DefaultSwatchLayout returns the standard 3-across unit-square grid.
func DefaultSwatchLayout() SwatchLayout {
	return SwatchLayout{
		Width:       1,
		Height:      1,
		Spacing:     0,
		Across:      3,
		TextDisplay: true,
		TextOffset:  0.075,
	}
}

// SingleColourPlot displays one colour swatch.
func SingleColourPlot(param ColourParameter, opts ...chart.Option) error {
	return MultiColourPlot([]ColourParameter{param}, DefaultSwatchLayout(), opts...)
}

// MultiColourPlot displays colour swatches in a row-major grid, with
// optional name captions inside each swatch.
func MultiColourPlot(params []ColourParameter, layout SwatchLayout, opts ...chart.Option) error {
	s := swatchSettings(len(params), layout)
	s = s.Apply(opts...)

	f := chart.New(s)
	if err := drawSwatches(f, params, layout); err != nil {
		return err
	}
	return finish(f)
}

// swatchSettings derives the tightened no-tick equal-aspect settings of a
// swatch grid with the given layout.
func swatchSettings(count int, layout SwatchLayout) chart.Settings {
	s := chart.DefaultSettings()
	s.NoTicks = true
	s.XTighten = true
	s.YTighten = true
	s.EqualAspect = true
	s.Limits = swatchLimits(count, layout)
	return s
}

func swatchLimits(count int, layout SwatchLayout) [4]float64 {
	columns := float64(count)
	if across := float64(layout.Across); columns > across {
		columns = across
	}
	xMax := columns*layout.Width + columns*layout.Spacing - layout.Spacing

	rows := math.Ceil(float64(count) / float64(layout.Across))
	yMin := -(rows - 1) * (layout.Height + layout.Spacing)

	return [4]float64{0, xMax, yMin, layout.Height}
}

// drawSwatches fills the grid rectangles and captions.
func drawSwatches(f *chart.Figure, params []ColourParameter, layout SwatchLayout) error {
	offsetX, offsetY := 0.0, 0.0

	var labelXYs plotter.XYs
	var labelTexts []string

	for i, p := range params {
		if i%layout.Across == 0 && i != 0 {
			offsetX = 0
			offsetY -= layout.Height + layout.Spacing
		}

		rect, err := plotter.NewPolygon(plotter.XYs{
			{X: offsetX, Y: offsetY},
			{X: offsetX + layout.Width, Y: offsetY},
			{X: offsetX + layout.Width, Y: offsetY + layout.Height},
			{X: offsetX, Y: offsetY + layout.Height},
		})
		if err != nil {
			return err
		}
		c := rgba(p.RGB)
		rect.Color = c
		rect.LineStyle.Color = c
		f.Plot.Add(rect)

		if p.Name != "" && layout.TextDisplay {
			labelXYs = append(labelXYs, plotter.XY{
				X: offsetX + layout.TextOffset,
				Y: offsetY + layout.TextOffset,
			})
			labelTexts = append(labelTexts, p.Name)
		}

		offsetX += layout.Width + layout.Spacing
	}

	if len(labelTexts) > 0 {
		labels, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    labelXYs,
			Labels: labelTexts,
		})
		if err != nil {
			return err
		}
		f.Plot.Add(labels)
	}
	return nil
}

// ColourCheckerPlot displays a colour rendition chart: its patches converted
// to sRGB over a dark backdrop, with a caption line under the grid.
func ColourCheckerPlot(name string, opts ...chart.Option) error {
	checker, err := dataset.ColourCheckers.Get(name)
	if err != nil {
		return err
	}

	params := make([]ColourParameter, 0, len(checker.Patches))
	for _, patch := range checker.Patches {
		xyz := colorimetry.XyYToXYZ(patch.XY, patch.Y)
		params = append(params, ColourParameter{
			Name: titleCase(patch.Label),
			RGB:  colorimetry.XYZTosRGB(xyz),
		})
	}

	layout := SwatchLayout{
		Width:       1,
		Height:      1,
		Spacing:     0.25,
		Across:      6,
		TextDisplay: true,
		TextOffset:  0.075,
	}

	s := swatchSettings(len(params), layout)
	s.Title = name
	s.Margins = [4]float64{-0.125, 0.125, -0.5, 0.125}
	s = s.Apply(opts...)

	f := chart.New(s)
	f.Plot.BackgroundColor = color.Gray{Y: 26}
	if err := drawSwatches(f, params, layout); err != nil {
		return err
	}

	across := float64(layout.Across)
	captionX := layout.Width*(across/2) + across*(layout.Spacing/2) - layout.Spacing/2
	captionY := -(float64(len(params))/across + layout.Spacing/2)

	srgb, err := dataset.Colourspaces.Get("sRGB")
	if err != nil {
		return err
	}
	caption, err := plotter.NewLabels(plotter.XYLabels{
		XYs: plotter.XYs{{X: captionX, Y: captionY}},
		Labels: []string{fmt.Sprintf("%s - %s - Colour Rendition Chart",
			name, srgb.Name)},
	})
	if err != nil {
		return err
	}
	caption.TextStyle[0].Color = color.Gray{Y: 242}
	caption.TextStyle[0].XAlign = ptext.XCenter
	f.Plot.Add(caption)

	return finish(f)
}
