package plotting

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	ptext "gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/spectraplot/spectraplot/pkg/chart"
	"github.com/spectraplot/spectraplot/pkg/colorimetry"
	"github.com/spectraplot/spectraplot/pkg/dataset"
	"github.com/spectraplot/spectraplot/pkg/quality"
)

// ColourRenderingIndexBarsPlot displays the general colour rendering index Ra
// of a light source followed by the eight special indices R1..R8, one bar
// each. The Ra bar is white; each Ri bar takes the colour of its test sample
// under the source.
func ColourRenderingIndexBarsPlot(source *colorimetry.SPD, opts ...chart.Option) error {
	cmfs, err := observer(dataset.CIE1931Observer)
	if err != nil {
		return err
	}
	result, err := quality.ColourRenderingIndex(source, cmfs)
	if err != nil {
		return err
	}

	values := []float64{result.Ra}
	colours := []color.RGBA{{R: 255, G: 255, B: 255, A: 255}}
	names := []string{"Ra"}
	for _, sample := range result.Samples {
		values = append(values, sample.Ri)
		xyz := colorimetry.XYZ{
			sample.XYZ[0] / 100, sample.XYZ[1] / 100, sample.XYZ[2] / 100,
		}
		colours = append(colours,
			rgba(colorimetry.NormaliseRGB(colorimetry.XYZTosRGB(xyz))))
		names = append(names, fmt.Sprintf("R%d", sample.Index))
	}

	positive := true
	for _, v := range values {
		if v < 0 {
			positive = false
		}
	}

	const width = 0.5
	s := chart.DefaultSettings()
	s.Title = fmt.Sprintf("Colour Rendering Index - %s", source.Name)
	s.Grid = true
	s.XTighten = true
	s.YTighten = true
	s.Limits = [4]float64{-width, 14 + width*2, -10, 110}
	if !positive {
		s.Limits[2] = -110
	}
	s.FigureWidth = 8
	s.FigureHeight = 8
	s = s.Apply(opts...)

	f := chart.New(s)

	for i, v := range values {
		bar, err := plotter.NewBarChart(plotter.Values{v}, vg.Points(20))
		if err != nil {
			return err
		}
		bar.XMin = float64(i)
		bar.Color = colours[i]
		f.Plot.Add(bar)
	}

	var xTicks []plot.Tick
	for i, name := range names {
		xTicks = append(xTicks, plot.Tick{Value: float64(i), Label: name})
	}
	f.Plot.X.Tick.Marker = plot.ConstantTicks(xTicks)

	var yTicks []plot.Tick
	yStart := 0.0
	if !positive {
		yStart = -100
	}
	for v := yStart; v <= 100; v += 10 {
		yTicks = append(yTicks, plot.Tick{Value: v, Label: fmt.Sprintf("%g", v)})
	}
	f.Plot.Y.Tick.Marker = plot.ConstantTicks(yTicks)

	// Bar values above (or below, for negative indices) each bar.
	var labelXYs plotter.XYs
	var labelTexts []string
	for i, v := range values {
		labelXYs = append(labelXYs, plotter.XY{X: float64(i), Y: v + 0.025*v})
		labelTexts = append(labelTexts, fmt.Sprintf("%.1f", v))
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    labelXYs,
		Labels: labelTexts,
	})
	if err != nil {
		return err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = ptext.XCenter
		labels.TextStyle[i].YAlign = ptext.YBottom
	}
	f.Plot.Add(labels)

	return finish(f)
}
