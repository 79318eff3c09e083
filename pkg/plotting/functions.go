package plotting

import (
	"fmt"
	"strings"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/spectraplot/spectraplot/pkg/chart"
	"github.com/spectraplot/spectraplot/pkg/dataset"
)

const curveSamples = 1000

// sampleCurve evaluates fn at evenly spaced points over [lo, hi].
func sampleCurve(fn dataset.ScalarFunction, lo, hi float64) plotter.XYs {
	pts := make(plotter.XYs, curveSamples)
	for i := range pts {
		x := lo + (hi-lo)*float64(i)/float64(curveSamples-1)
		pts[i] = plotter.XY{X: x, Y: fn(x)}
	}
	return pts
}

// curveSettings are the shared figure defaults of the function curve plots.
func curveSettings(title, xLabel, yLabel string, limits [4]float64) chart.Settings {
	s := chart.DefaultSettings()
	s.Title = title
	s.XLabel = xLabel
	s.YLabel = yLabel
	s.XTighten = true
	s.Legend = true
	s.LegendLocation = chart.LegendUpperLeft
	s.Grid = true
	s.Limits = limits
	s.FigureWidth = 8
	s.FigureHeight = 8
	return s
}

// drawCurves resolves each named function from the registry and adds its
// sampled curve with a legend entry.
func drawCurves(f *chart.Figure, registry *dataset.Registry[dataset.ScalarFunction], names []string, lo, hi float64) error {
	for _, name := range names {
		fn, err := registry.Get(name)
		if err != nil {
			return err
		}
		line, err := plotter.NewLine(sampleCurve(fn, lo, hi))
		if err != nil {
			return err
		}
		line.Color = f.NextColour()
		line.Width = vg.Points(2)
		f.Plot.Add(line)
		f.Plot.Legend.Add(name, line)
	}
	return nil
}

// SingleMunsellValueFunctionPlot displays one Munsell value function over the
// luminance domain.
func SingleMunsellValueFunctionPlot(function string, opts ...chart.Option) error {
	title := chart.WithTitle(fmt.Sprintf("%s - Munsell Value Function", function))
	return MultiMunsellValueFunctionPlot([]string{function},
		append([]chart.Option{title}, opts...)...)
}

// MultiMunsellValueFunctionPlot displays several Munsell value functions over
// the luminance domain. A nil slice selects the factory defaults.
func MultiMunsellValueFunctionPlot(functions []string, opts ...chart.Option) error {
	if functions == nil {
		functions = []string{"Munsell Value ASTM D1535-08",
			"Munsell Value McCamy 1987"}
	}

	s := curveSettings(
		fmt.Sprintf("%s - Munsell Functions", strings.Join(functions, ", ")),
		"Luminance Y", "Munsell Value V",
		[4]float64{0, 100, 0, 100})
	s = s.Apply(opts...)

	f := chart.New(s)
	if err := drawCurves(f, dataset.MunsellValueFunctions, functions, 0, 100); err != nil {
		return err
	}
	return finish(f)
}

// SingleLightnessFunctionPlot displays one Lightness function over the
// luminance domain.
func SingleLightnessFunctionPlot(function string, opts ...chart.Option) error {
	title := chart.WithTitle(fmt.Sprintf("%s - Lightness Function", function))
	return MultiLightnessFunctionPlot([]string{function},
		append([]chart.Option{title}, opts...)...)
}

// MultiLightnessFunctionPlot displays several Lightness functions over the
// luminance domain. A nil slice selects the factory defaults.
func MultiLightnessFunctionPlot(functions []string, opts ...chart.Option) error {
	if functions == nil {
		functions = []string{"Lightness 1976", "Lightness Wyszecki 1964"}
	}

	s := curveSettings(
		fmt.Sprintf("%s - Lightness Functions", strings.Join(functions, ", ")),
		"Luminance Y", "Lightness L*",
		[4]float64{0, 100, 0, 100})
	s = s.Apply(opts...)

	f := chart.New(s)
	if err := drawCurves(f, dataset.LightnessFunctions, functions, 0, 100); err != nil {
		return err
	}
	return finish(f)
}

// SingleTransferFunctionPlot displays one colourspace's opto-electronic
// transfer function over the unit domain.
func SingleTransferFunctionPlot(colourspace string, inverse bool, opts ...chart.Option) error {
	title := chart.WithTitle(fmt.Sprintf("%s - Transfer Function", colourspace))
	return MultiTransferFunctionPlot([]string{colourspace}, inverse,
		append([]chart.Option{title}, opts...)...)
}

// MultiTransferFunctionPlot displays several colourspaces' transfer functions
// over the unit domain, or their inverses. A nil slice selects the factory
// defaults.
func MultiTransferFunctionPlot(colourspaces []string, inverse bool, opts ...chart.Option) error {
	if colourspaces == nil {
		colourspaces = []string{"sRGB", "Rec. 709"}
	}

	s := curveSettings(
		fmt.Sprintf("%s - Transfer Functions", strings.Join(colourspaces, ", ")),
		"", "",
		[4]float64{0, 1, 0, 1})
	s = s.Apply(opts...)

	f := chart.New(s)
	for _, name := range colourspaces {
		space, err := dataset.Colourspaces.Get(name)
		if err != nil {
			return err
		}
		fn := space.TransferFunction
		if inverse {
			fn = space.InverseTransferFunction
		}

		line, err := plotter.NewLine(sampleCurve(dataset.ScalarFunction(fn), 0, 1))
		if err != nil {
			return err
		}
		line.Color = f.NextColour()
		line.Width = vg.Points(2)
		f.Plot.Add(line)
		f.Plot.Legend.Add(space.Name, line)
	}
	return finish(f)
}
