package plotting

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/spectraplot/spectraplot/pkg/chart"
	"github.com/spectraplot/spectraplot/pkg/colorimetry"
	"github.com/spectraplot/spectraplot/pkg/dataset"
)

// renderColourParameters is the shared tail of the segment based plots.
func renderColourParameters(s chart.Settings, params []ColourParameter, y0Plot, y1Plot bool) error {
	f := chart.New(s)
	if err := drawColourParameters(f, params, y0Plot, y1Plot); err != nil {
		return err
	}
	return finish(f)
}

// SingleSPDPlot displays a spectral power distribution as a filled spectrum:
// each wavelength band takes its own colour under the observer, capped by the
// distribution's curve.
func SingleSPDPlot(spd *colorimetry.SPD, cmfsName string, opts ...chart.Option) error {
	cmfs, err := observer(cmfsName)
	if err != nil {
		return err
	}

	s := chart.DefaultSettings()
	s.Title = fmt.Sprintf("%q - %s", spd.Name, cmfs.Name)
	s.XLabel = "Wavelength λ (nm)"
	s.YLabel = "Spectral Power Distribution"
	s.XTighten = true
	s = s.Apply(opts...)

	return renderColourParameters(s, spdParameters(spd, cmfs), true, true)
}

// spdParameters resamples the distribution on the observer's shape and
// colours each sample by its wavelength.
func spdParameters(spd *colorimetry.SPD, cmfs *colorimetry.CMFS) []ColourParameter {
	start, end, steps := cmfs.Shape()
	resampled := spd.Clone().Interpolate(start, end, steps)

	wls := resampled.Wavelengths()
	colours := make([]colorimetry.RGB, len(wls))
	for i, wl := range wls {
		colours[i] = colorimetry.XYZTosRGB(colorimetry.WavelengthToXYZ(wl, cmfs))
	}
	colours = normaliseAll(colours)

	params := make([]ColourParameter, len(wls))
	for i, wl := range wls {
		params[i] = ColourParameter{
			X:   wl,
			Y1:  Float(resampled.Value(wl)),
			RGB: colours[i],
		}
	}
	return params
}

// MultiSPDPlot displays several spectral power distributions as line plots
// with a legend. With useSPDColours each line takes the colour of its
// distribution under D65, optionally normalised to full brightness.
func MultiSPDPlot(spds []*colorimetry.SPD, cmfsName string, useSPDColours, normaliseColours bool, opts ...chart.Option) error {
	cmfs, err := observer(cmfsName)
	if err != nil {
		return err
	}

	var illuminant *colorimetry.SPD
	if useSPDColours {
		illuminant, err = dataset.IlluminantsRelativeSPDs.Get("D65")
		if err != nil {
			return err
		}
	}

	s := chart.DefaultSettings()
	s.XLabel = "Wavelength λ (nm)"
	s.YLabel = "Spectral Power Distribution"
	s.XTighten = true
	s.Legend = true
	s.LegendLocation = chart.LegendUpperLeft
	s = s.Apply(opts...)

	f := chart.New(s)

	xmin, xmax := math.Inf(1), math.Inf(-1)
	ymin, ymax := math.Inf(1), math.Inf(-1)
	for _, spd := range spds {
		pts := make(plotter.XYs, 0, len(spd.Wavelengths()))
		for _, wl := range spd.Wavelengths() {
			v := spd.Value(wl)
			pts = append(pts, plotter.XY{X: wl, Y: v})
			ymin = math.Min(ymin, v)
			ymax = math.Max(ymax, v)
		}
		start, end, _ := spd.Shape()
		xmin = math.Min(xmin, start)
		xmax = math.Max(xmax, end)

		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.Width = vg.Points(2)
		if useSPDColours {
			xyz := colorimetry.SpectralToXYZ(spd, cmfs, illuminant)
			xyz = colorimetry.XYZ{xyz[0] / 100, xyz[1] / 100, xyz[2] / 100}
			if normaliseColours {
				xyz = normaliseXYZ(xyz)
			}
			line.Color = rgba(colorimetry.XYZTosRGB(xyz))
		} else {
			line.Color = f.NextColour()
		}
		f.Plot.Add(line)
		f.Plot.Legend.Add(spd.Name, line)
	}
	f.Settings.Limits = [4]float64{xmin, xmax, ymin, ymax}

	return finish(f)
}

func normaliseXYZ(xyz colorimetry.XYZ) colorimetry.XYZ {
	max := math.Max(xyz[0], math.Max(xyz[1], xyz[2]))
	if max <= 0 {
		return xyz
	}
	return colorimetry.XYZ{xyz[0] / max, xyz[1] / max, xyz[2] / max}
}

// SingleCMFSPlot displays the three matching functions of an observer.
func SingleCMFSPlot(cmfsName string, opts ...chart.Option) error {
	title := chart.WithTitle(fmt.Sprintf("%q - Colour Matching Functions", cmfsName))
	return MultiCMFSPlot([]string{cmfsName}, append([]chart.Option{title}, opts...)...)
}

// MultiCMFSPlot displays the matching functions of several observers on one
// figure: x-bar in red, y-bar in green, z-bar in blue, dimmed by half per
// additional observer.
func MultiCMFSPlot(cmfsNames []string, opts ...chart.Option) error {
	s := chart.DefaultSettings()
	s.Title = fmt.Sprintf("%s - Colour Matching Functions", strings.Join(cmfsNames, ", "))
	s.XLabel = "Wavelength λ (nm)"
	s.YLabel = "Tristimulus Values"
	s.XTighten = true
	s.Legend = true
	s.Grid = true
	s.YAxisLine = true
	s = s.Apply(opts...)

	f := chart.New(s)

	xmin, xmax := math.Inf(1), math.Inf(-1)
	ymin, ymax := math.Inf(1), math.Inf(-1)
	for axis := 0; axis < 3; axis++ {
		base := [3]float64{}
		base[axis] = 1

		for i, name := range cmfsNames {
			cmfs, err := observer(name)
			if err != nil {
				return err
			}

			dim := math.Pow(0.5, float64(i))
			lineColour := rgba(colorimetry.RGB{
				base[0] * dim, base[1] * dim, base[2] * dim,
			})

			wls := cmfs.Wavelengths()
			values := cmfs.Axis(axis)
			pts := make(plotter.XYs, len(wls))
			for j, wl := range wls {
				pts[j] = plotter.XY{X: wl, Y: values[j]}
				ymin = math.Min(ymin, values[j])
				ymax = math.Max(ymax, values[j])
			}
			start, end, _ := cmfs.Shape()
			xmin = math.Min(xmin, start)
			xmax = math.Max(xmax, end)

			line, err := plotter.NewLine(pts)
			if err != nil {
				return err
			}
			line.Color = lineColour
			line.Width = vg.Points(2)
			f.Plot.Add(line)
			f.Plot.Legend.Add(
				fmt.Sprintf("%s - %s", cmfs.Labels[axis], cmfs.Name), line)
		}
	}
	f.Settings.Limits = [4]float64{xmin, xmax, ymin, ymax}

	return finish(f)
}

// SingleIlluminantRelativeSPDPlot displays a factory illuminant's relative
// spectral power distribution as a filled spectrum.
func SingleIlluminantRelativeSPDPlot(illuminant, cmfsName string, opts ...chart.Option) error {
	spd, err := dataset.IlluminantsRelativeSPDs.Get(illuminant)
	if err != nil {
		return err
	}
	title := chart.WithTitle(fmt.Sprintf("Illuminant %q - %s", illuminant, cmfsName))
	yLabel := chart.WithYLabel("Relative Spectral Power Distribution")
	return SingleSPDPlot(spd, cmfsName,
		append([]chart.Option{title, yLabel}, opts...)...)
}

// MultiIlluminantsRelativeSPDPlot displays several factory illuminants'
// relative spectral power distributions as line plots.
func MultiIlluminantsRelativeSPDPlot(illuminants []string, opts ...chart.Option) error {
	spds := make([]*colorimetry.SPD, 0, len(illuminants))
	for _, name := range illuminants {
		spd, err := dataset.IlluminantsRelativeSPDs.Get(name)
		if err != nil {
			return err
		}
		spds = append(spds, spd)
	}

	title := chart.WithTitle(fmt.Sprintf(
		"%s - Illuminants Relative Spectral Power Distribution",
		strings.Join(illuminants, ", ")))
	yLabel := chart.WithYLabel("Relative Spectral Power Distribution")
	return MultiSPDPlot(spds, dataset.CIE1931Observer, false, false,
		append([]chart.Option{title, yLabel}, opts...)...)
}

// VisibleSpectrumPlot displays the visible spectrum as a full-height colour
// ramp, one band per nanometre.
func VisibleSpectrumPlot(cmfsName string, opts ...chart.Option) error {
	cmfs, err := observer(cmfsName)
	if err != nil {
		return err
	}

	const start, end = 360.0, 830.0
	count := int(end-start) + 1
	wavelengths := make([]float64, count)
	colours := make([]colorimetry.RGB, count)
	for i := 0; i < count; i++ {
		wl := start + float64(i)
		wavelengths[i] = wl
		colours[i] = colorimetry.XYZTosRGB(colorimetry.WavelengthToXYZ(wl, cmfs))
	}
	colours = normaliseAll(colours)

	params := make([]ColourParameter, count)
	for i := range params {
		params[i] = ColourParameter{X: wavelengths[i], RGB: colours[i]}
	}

	s := chart.DefaultSettings()
	s.Title = fmt.Sprintf("The Visible Spectrum - %s", cmfsName)
	s.XLabel = "Wavelength λ (nm)"
	s.XTighten = true
	s = s.Apply(opts...)

	return renderColourParameters(s, params, true, true)
}
