package plotting

import (
	"fmt"

	"gonum.org/v1/plot/plotter"
	ptext "gonum.org/v1/plot/text"

	"github.com/spectraplot/spectraplot/pkg/chart"
	"github.com/spectraplot/spectraplot/pkg/colorimetry"
)

// blackbodyRGB is the normalised sRGB colour of a blackbody distribution
// under the observer.
func blackbodyRGB(spd *colorimetry.SPD, cmfs *colorimetry.CMFS) colorimetry.RGB {
	xyz := colorimetry.SpectralToXYZ(spd, cmfs, nil)
	xyz = colorimetry.XYZ{xyz[0] / 100, xyz[1] / 100, xyz[2] / 100}
	return colorimetry.NormaliseRGB(colorimetry.XYZTosRGB(xyz))
}

// BlackbodySpectralRadiancePlot displays the spectral radiance of a blackbody
// at the given temperature as a filled spectrum, with a swatch of its
// perceived colour in the upper left corner. A zero temperature defaults to
// 3500 K and an empty name to "VY Canis Major".
func BlackbodySpectralRadiancePlot(temperature float64, cmfsName, blackbodyName string, opts ...chart.Option) error {
	if temperature == 0 {
		temperature = 3500
	}
	if blackbodyName == "" {
		blackbodyName = "VY Canis Major"
	}

	cmfs, err := observer(cmfsName)
	if err != nil {
		return err
	}
	start, end, steps := cmfs.Shape()
	spd := colorimetry.BlackbodySPD(temperature, start, end, steps)

	s := chart.DefaultSettings()
	s.Title = fmt.Sprintf("%s - Spectral Radiance", blackbodyName)
	s.XLabel = "Wavelength λ (nm)"
	s.YLabel = "W / (sr m²) / m"
	s.XTighten = true
	s = s.Apply(opts...)

	f := chart.New(s)
	if err := drawColourParameters(f, spdParameters(spd, cmfs), true, true); err != nil {
		return err
	}

	// Colour swatch against the data extent set by the spectrum.
	limits := f.Settings.Limits
	w, h := limits[1]-limits[0], limits[3]-limits[2]
	x0, x1 := limits[0]+0.05*w, limits[0]+0.2*w
	y0, y1 := limits[2]+0.78*h, limits[2]+0.95*h

	swatch, err := plotter.NewPolygon(plotter.XYs{
		{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1},
	})
	if err != nil {
		return err
	}
	c := rgba(blackbodyRGB(spd, cmfs))
	swatch.Color = c
	swatch.LineStyle.Color = c
	f.Plot.Add(swatch)

	caption, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: (x0 + x1) / 2, Y: y0 - 0.02*h}},
		Labels: []string{fmt.Sprintf("%gK", temperature)},
	})
	if err != nil {
		return err
	}
	caption.TextStyle[0].XAlign = ptext.XCenter
	caption.TextStyle[0].YAlign = ptext.YTop
	f.Plot.Add(caption)

	return finish(f)
}

// BlackbodyColoursPlot displays the perceived colour of blackbodies across a
// temperature range as a colour ramp. Zero arguments default to 150 K
// through 12500 K in steps of 50 K.
func BlackbodyColoursPlot(start, end, steps float64, cmfsName string, opts ...chart.Option) error {
	if start == 0 {
		start = 150
	}
	if end == 0 {
		end = 12500
	}
	if steps == 0 {
		steps = 50
	}

	cmfs, err := observer(cmfsName)
	if err != nil {
		return err
	}
	shapeStart, shapeEnd, shapeSteps := cmfs.Shape()

	var params []ColourParameter
	for t := start; t <= end+steps/2; t += steps {
		spd := colorimetry.BlackbodySPD(t, shapeStart, shapeEnd, shapeSteps)
		params = append(params, ColourParameter{
			X:   t,
			RGB: blackbodyRGB(spd, cmfs),
		})
	}

	s := chart.DefaultSettings()
	s.Title = "Blackbody Colours"
	s.XLabel = "Temperature K"
	s.XTighten = true
	s.NoYTicks = true
	s = s.Apply(opts...)

	return renderColourParameters(s, params, true, true)
}
