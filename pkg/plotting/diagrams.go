package plotting

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"gonum.org/v1/plot/plotter"
	ptext "gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/spectraplot/spectraplot/pkg/chart"
	"github.com/spectraplot/spectraplot/pkg/colorimetry"
	"github.com/spectraplot/spectraplot/pkg/dataset"
	"github.com/spectraplot/spectraplot/pkg/progress"
)

// diagramSpec is the static description of a chromaticity diagram: its
// decoration, background bitmap prefix, annotated wavelengths, and the fixed
// bounding box framing the spectral locus.
type diagramSpec struct {
	title      string
	background string
	xLabel     string
	yLabel     string
	labels     []float64
	box        [4]float64
}

var cie1931Diagram = diagramSpec{
	title:      "CIE 1931 Chromaticity Diagram",
	background: "CIE_1931_Chromaticity_Diagram",
	xLabel:     "CIE x",
	yLabel:     "CIE y",
	labels: []float64{390, 460, 470, 480, 490, 500, 510, 520, 540, 560,
		580, 600, 620, 700},
	box: [4]float64{-0.1, 0.9, -0.1, 0.9},
}

var cie1960Diagram = diagramSpec{
	title:      "CIE 1960 UCS Chromaticity Diagram",
	background: "CIE_1960_UCS_Chromaticity_Diagram",
	xLabel:     "CIE u",
	yLabel:     "CIE v",
	labels:     ucsLabelWavelengths(),
	box:        [4]float64{-0.075, 0.675, -0.15, 0.6},
}

var cie1976Diagram = diagramSpec{
	title:      "CIE 1976 UCS Chromaticity Diagram",
	background: "CIE_1976_UCS_Chromaticity_Diagram",
	xLabel:     `CIE u"`,
	yLabel:     `CIE v"`,
	labels:     ucsLabelWavelengths(),
	box:        [4]float64{-0.1, 0.7, -0.1, 0.7},
}

// ucsLabelWavelengths is every 10 nm from 420 to 640, plus 680.
func ucsLabelWavelengths() []float64 {
	var wls []float64
	for wl := 420.0; wl <= 640; wl += 10 {
		wls = append(wls, wl)
	}
	return append(wls, 680)
}

func transform1931() diagramTransform {
	return colorimetry.XYZToxy
}

func transform1960() diagramTransform {
	return func(v colorimetry.XYZ) colorimetry.Vec2 {
		return colorimetry.UCSTouv(colorimetry.XYZToUCS(v))
	}
}

// transform1976 projects through CIE Luv relative to illuminant D50 under the
// 1931 standard observer.
func transform1976() (diagramTransform, error) {
	d50, err := dataset.IlluminantChromaticity(dataset.CIE1931Observer, "D50")
	if err != nil {
		return nil, err
	}
	return func(v colorimetry.XYZ) colorimetry.Vec2 {
		return colorimetry.LuvTouv(colorimetry.XYZToLuv(v, d50), d50)
	}, nil
}

// diagramSettings are the figure defaults shared by a diagram and the plots
// composed on top of it.
func diagramSettings(d diagramSpec, cmfsName string) chart.Settings {
	s := chart.DefaultSettings()
	s.Title = fmt.Sprintf("%s - %s", d.title, cmfsName)
	s.XLabel = d.xLabel
	s.YLabel = d.yLabel
	s.Grid = true
	s.BoundingBox = &[4]float64{d.box[0], d.box[1], d.box[2], d.box[3]}
	s.FigureWidth = 8
	s.FigureHeight = 8
	return s
}

// drawChromaticityDiagram draws the background bitmap, the closed spectral
// locus, and the wavelength annotations into the figure.
func drawChromaticityDiagram(f *chart.Figure, d diagramSpec, cmfs *colorimetry.CMFS, transform diagramTransform) error {
	img, err := diagramBackground(f.Settings.ResourcesDir, d.background, cmfs.Name)
	if err != nil {
		return err
	}
	if img != nil {
		f.Plot.Add(plotter.NewImage(img, 0, 0, 1, 1))
	}

	locus := newSpectralLocus(cmfs, transform)

	boundary := make(plotter.XYs, 0, len(locus.points)+1)
	for _, p := range locus.points {
		boundary = append(boundary, plotter.XY{X: p.X, Y: p.Y})
	}
	boundary = append(boundary, boundary[0])
	line, err := plotter.NewLine(boundary)
	if err != nil {
		return err
	}
	line.Color = color.Black
	line.Width = vg.Points(2)
	f.Plot.Add(line)

	var textXYs plotter.XYs
	var texts []string
	var alignments []bool
	for _, wl := range d.labels {
		label, ok := placeWavelengthLabel(locus, wl)
		if !ok {
			continue
		}

		dot, err := plotter.NewScatter(plotter.XYs{
			{X: label.Point.X, Y: label.Point.Y},
		})
		if err != nil {
			return err
		}
		dot.GlyphStyle = draw.GlyphStyle{
			Color:  color.Black,
			Radius: vg.Points(2),
			Shape:  draw.CircleGlyph{},
		}
		f.Plot.Add(dot)

		tick, err := plotter.NewLine(plotter.XYs{
			{X: label.Point.X, Y: label.Point.Y},
			{X: label.TickEnd.X, Y: label.TickEnd.Y},
		})
		if err != nil {
			return err
		}
		tick.Color = color.Black
		tick.Width = vg.Points(1.5)
		f.Plot.Add(tick)

		textXYs = append(textXYs, plotter.XY{X: label.TextPos.X, Y: label.TextPos.Y})
		texts = append(texts, fmt.Sprintf("%g", label.Wavelength))
		alignments = append(alignments, label.AlignLeft)
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: textXYs, Labels: texts})
	if err != nil {
		return err
	}
	for i, alignLeft := range alignments {
		labels.TextStyle[i].YAlign = ptext.YCenter
		if alignLeft {
			labels.TextStyle[i].XAlign = ptext.XLeft
		} else {
			labels.TextStyle[i].XAlign = ptext.XRight
		}
	}
	f.Plot.Add(labels)

	return nil
}

// CIE1931ChromaticityDiagramPlot displays the CIE 1931 chromaticity diagram
// under the given observer.
func CIE1931ChromaticityDiagramPlot(cmfsName string, opts ...chart.Option) error {
	cmfs, err := observer(cmfsName)
	if err != nil {
		return err
	}

	s := diagramSettings(cie1931Diagram, cmfsName).Apply(opts...)
	f := chart.New(s)
	if err := drawChromaticityDiagram(f, cie1931Diagram, cmfs, transform1931()); err != nil {
		return err
	}
	return finish(f)
}

// CIE1960UCSChromaticityDiagramPlot displays the CIE 1960 UCS chromaticity
// diagram under the given observer.
func CIE1960UCSChromaticityDiagramPlot(cmfsName string, opts ...chart.Option) error {
	cmfs, err := observer(cmfsName)
	if err != nil {
		return err
	}

	s := diagramSettings(cie1960Diagram, cmfsName).Apply(opts...)
	f := chart.New(s)
	if err := drawChromaticityDiagram(f, cie1960Diagram, cmfs, transform1960()); err != nil {
		return err
	}
	return finish(f)
}

// CIE1976UCSChromaticityDiagramPlot displays the CIE 1976 UCS chromaticity
// diagram under the given observer.
func CIE1976UCSChromaticityDiagramPlot(cmfsName string, opts ...chart.Option) error {
	cmfs, err := observer(cmfsName)
	if err != nil {
		return err
	}
	transform, err := transform1976()
	if err != nil {
		return err
	}

	s := diagramSettings(cie1976Diagram, cmfsName).Apply(opts...)
	f := chart.New(s)
	if err := drawChromaticityDiagram(f, cie1976Diagram, cmfs, transform); err != nil {
		return err
	}
	return finish(f)
}

// drawDiagramColours scatters one coloured marker per grid point of the unit
// square falling inside the spectral locus. toxy recovers the CIE xy
// chromaticity of a diagram coordinate for the marker colour.
func drawDiagramColours(f *chart.Figure, locus *spectralLocus, surface, spacing float64, message string, toxy func(colorimetry.Vec2) colorimetry.Vec2) error {
	columns := int(1 / spacing)
	bar := progress.New(columns, message)
	bar.Start()
	defer bar.Done()

	var pts plotter.XYs
	var colours []color.RGBA
	for i := 0.0; i < 1; i += spacing {
		for j := 0.0; j < 1; j += spacing {
			p := colorimetry.Vec2{X: i, Y: j}
			if !locus.contains(p) {
				continue
			}
			pts = append(pts, plotter.XY{X: i, Y: j})

			xyz := colorimetry.XyToXYZ(toxy(p))
			rgb := colorimetry.NormaliseRGB(colorimetry.XYZTosRGB(xyz))
			colours = append(colours, rgba(rgb))
		}
		bar.Increment()
	}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	radius := vg.Points(math.Sqrt(surface / math.Pi))
	scatter.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		return draw.GlyphStyle{
			Color:  colours[i],
			Radius: radius,
			Shape:  draw.CircleGlyph{},
		}
	}
	f.Plot.Add(scatter)
	return nil
}

// diagramColoursSettings are the figure defaults of the colours sweeps: an
// undecorated unit square rendered large enough to act as a diagram
// background.
func diagramColoursSettings() chart.Settings {
	s := chart.DefaultSettings()
	s.NoTicks = true
	s.BoundingBox = &[4]float64{0, 1, 0, 1}
	s.FigureWidth = 32
	s.FigureHeight = 32
	return s
}

// CIE1931ChromaticityDiagramColoursPlot sweeps the CIE 1931 chromaticity
// diagram colours: one marker of the given surface per spacing step of the
// unit square inside the spectral locus.
func CIE1931ChromaticityDiagramColoursPlot(surface, spacing float64, cmfsName string, opts ...chart.Option) error {
	cmfs, err := observer(cmfsName)
	if err != nil {
		return err
	}

	s := diagramColoursSettings().Apply(opts...)
	f := chart.New(s)
	locus := newSpectralLocus(cmfs, transform1931())
	err = drawDiagramColours(f, locus, surface, spacing,
		"CIE 1931 chromaticity diagram colours",
		func(p colorimetry.Vec2) colorimetry.Vec2 { return p })
	if err != nil {
		return err
	}
	return finish(f)
}

// CIE1960UCSChromaticityDiagramColoursPlot sweeps the CIE 1960 UCS
// chromaticity diagram colours.
func CIE1960UCSChromaticityDiagramColoursPlot(surface, spacing float64, cmfsName string, opts ...chart.Option) error {
	cmfs, err := observer(cmfsName)
	if err != nil {
		return err
	}

	s := diagramColoursSettings().Apply(opts...)
	f := chart.New(s)
	locus := newSpectralLocus(cmfs, transform1960())
	err = drawDiagramColours(f, locus, surface, spacing,
		"CIE 1960 UCS chromaticity diagram colours",
		colorimetry.UCSuvToxy)
	if err != nil {
		return err
	}
	return finish(f)
}

// CIE1976UCSChromaticityDiagramColoursPlot sweeps the CIE 1976 UCS
// chromaticity diagram colours.
func CIE1976UCSChromaticityDiagramColoursPlot(surface, spacing float64, cmfsName string, opts ...chart.Option) error {
	cmfs, err := observer(cmfsName)
	if err != nil {
		return err
	}
	transform, err := transform1976()
	if err != nil {
		return err
	}

	s := diagramColoursSettings().Apply(opts...)
	f := chart.New(s)
	locus := newSpectralLocus(cmfs, transform)
	err = drawDiagramColours(f, locus, surface, spacing,
		"CIE 1976 UCS chromaticity diagram colours",
		colorimetry.LuvuvToxy)
	if err != nil {
		return err
	}
	return finish(f)
}

// ColourspacesCIE1931ChromaticityDiagramPlot displays RGB colourspace gamuts
// as primary triangles with whitepoint markers on the CIE 1931 chromaticity
// diagram. The name "Pointer Gamut" selects the Pointer gamut boundary
// instead of an RGB colourspace. Each colourspace takes a random mid-range
// colour so overlapping gamuts stay distinguishable.
func ColourspacesCIE1931ChromaticityDiagramPlot(colourspaceNames []string, cmfsName string, opts ...chart.Option) error {
	if colourspaceNames == nil {
		colourspaceNames = []string{"sRGB", "ACES RGB", dataset.PointerGamutName}
	}
	cmfs, err := observer(cmfsName)
	if err != nil {
		return err
	}

	s := diagramSettings(cie1931Diagram, cmfsName)
	s.Title = fmt.Sprintf("%s - %s", joinNames(colourspaceNames), cmfsName)
	s.Legend = true
	s.LegendLocation = chart.LegendUpperRight
	s = s.Apply(opts...)

	f := chart.New(s)
	if err := drawChromaticityDiagram(f, cie1931Diagram, cmfs, transform1931()); err != nil {
		return err
	}

	limits := cie1931Diagram.box
	for _, name := range colourspaceNames {
		if name == dataset.PointerGamutName {
			if err := addPointerGamut(f); err != nil {
				return err
			}
			continue
		}

		space, err := dataset.Colourspaces.Get(name)
		if err != nil {
			return err
		}
		if err := addColourspaceGamut(f, space, &limits); err != nil {
			return err
		}
	}

	f.Settings.BoundingBox = nil
	f.Settings.Limits = limits
	f.Settings.Margins = [4]float64{-0.05, 0.05, -0.05, 0.05}
	f.Settings.XTighten = true
	f.Settings.YTighten = true

	return finish(f)
}

func joinNames(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}

// addPointerGamut draws the closed Pointer gamut boundary in light grey.
func addPointerGamut(f *chart.Figure) error {
	pts := make(plotter.XYs, 0, len(dataset.PointerGamut)+1)
	for _, p := range dataset.PointerGamut {
		pts = append(pts, plotter.XY{X: p.X, Y: p.Y})
	}
	pts = append(pts, pts[0])

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.Color = color.Gray{Y: 242}
	line.Width = vg.Points(2)
	f.Plot.Add(line)
	f.Plot.Legend.Add(dataset.PointerGamutName, line)
	return nil
}

// addColourspaceGamut draws the primaries triangle and whitepoint of an RGB
// colourspace and widens limits to cover the primaries.
func addColourspaceGamut(f *chart.Figure, space *dataset.RGBColourspace, limits *[4]float64) error {
	c := color.RGBA{
		R: uint8(64 + rand.Intn(161)),
		G: uint8(64 + rand.Intn(161)),
		B: uint8(64 + rand.Intn(161)),
		A: 255,
	}

	triangle := make(plotter.XYs, 0, 4)
	for _, p := range space.Primaries {
		triangle = append(triangle, plotter.XY{X: p.X, Y: p.Y})
	}
	triangle = append(triangle, triangle[0])

	line, scatter, err := plotter.NewLinePoints(triangle)
	if err != nil {
		return err
	}
	line.Color = c
	line.Width = vg.Points(2)
	scatter.GlyphStyle = draw.GlyphStyle{
		Color:  c,
		Radius: vg.Points(2.5),
		Shape:  draw.CircleGlyph{},
	}
	f.Plot.Add(line, scatter)
	f.Plot.Legend.Add(space.Name, line)

	white, err := plotter.NewScatter(plotter.XYs{
		{X: space.Whitepoint.X, Y: space.Whitepoint.Y},
	})
	if err != nil {
		return err
	}
	white.GlyphStyle = scatter.GlyphStyle
	f.Plot.Add(white)

	for _, p := range space.Primaries {
		limits[0] = math.Min(limits[0], p.X)
		limits[1] = math.Max(limits[1], p.X)
		limits[2] = math.Min(limits[2], p.Y)
		limits[3] = math.Max(limits[3], p.Y)
	}
	return nil
}

// Planckian locus sampling and the iso-temperature marks.
var (
	planckianMarkTemperatures = []float64{1667, 2000, 2500, 3000, 4000,
		6000, 10000}
)

const (
	planckianStartK = 1667.0
	planckianEndK   = 100000.0
	planckianStepK  = 250.0
)

// drawPlanckianLocus draws the locus line, the iso-temperature marks with
// their kelvin captions, and the named illuminant points. project maps a CIE
// 1960 uv locus coordinate into the diagram; duv is the iso-mark half-length
// in uv units.
func drawPlanckianLocus(f *chart.Figure, cmfs *colorimetry.CMFS, illuminants []string, duv float64, project func(colorimetry.Vec2) colorimetry.Vec2) error {
	var pts plotter.XYs
	for t := planckianStartK; t <= planckianEndK; t += planckianStepK {
		p := project(colorimetry.CCTTouv(t, 0, cmfs))
		pts = append(pts, plotter.XY{X: p.X, Y: p.Y})
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.Color = color.Black
	line.Width = vg.Points(2)
	f.Plot.Add(line)

	var markXYs plotter.XYs
	var markTexts []string
	for _, t := range planckianMarkTemperatures {
		p0 := project(colorimetry.CCTTouv(t, -duv, cmfs))
		p1 := project(colorimetry.CCTTouv(t, duv, cmfs))

		mark, err := plotter.NewLine(plotter.XYs{
			{X: p0.X, Y: p0.Y},
			{X: p1.X, Y: p1.Y},
		})
		if err != nil {
			return err
		}
		mark.Color = color.Black
		mark.Width = vg.Points(2)
		f.Plot.Add(mark)

		markXYs = append(markXYs, plotter.XY{X: p0.X, Y: p0.Y})
		markTexts = append(markTexts, fmt.Sprintf("%gK", t))
	}
	marks, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    markXYs,
		Labels: markTexts,
	})
	if err != nil {
		return err
	}
	marks.Offset = vg.Point{X: 0, Y: vg.Points(-10)}
	f.Plot.Add(marks)

	var ilXYs plotter.XYs
	var ilTexts []string
	for _, name := range illuminants {
		xy, err := dataset.IlluminantChromaticity(cmfs.Name, name)
		if err != nil {
			return err
		}
		p := project(colorimetry.XyTouv(xy))

		dot, err := plotter.NewScatter(plotter.XYs{{X: p.X, Y: p.Y}})
		if err != nil {
			return err
		}
		dot.GlyphStyle = draw.GlyphStyle{
			Color:  color.White,
			Radius: vg.Points(2.5),
			Shape:  draw.CircleGlyph{},
		}
		f.Plot.Add(dot)

		ilXYs = append(ilXYs, plotter.XY{X: p.X, Y: p.Y})
		ilTexts = append(ilTexts, name)
	}
	if len(ilTexts) > 0 {
		names, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    ilXYs,
			Labels: ilTexts,
		})
		if err != nil {
			return err
		}
		names.Offset = vg.Point{X: vg.Points(-50), Y: vg.Points(30)}
		f.Plot.Add(names)
	}
	return nil
}

// planckianTitle composes "A, B, C Illuminants - Planckian Locus" over the
// diagram's own title line.
func planckianTitle(illuminants []string, d diagramSpec) string {
	base := fmt.Sprintf("%s - %s", d.title, dataset.CIE1931Observer)
	if len(illuminants) == 0 {
		return "Planckian Locus\n " + base
	}
	return fmt.Sprintf("%s Illuminants - Planckian Locus\n %s",
		joinNames(illuminants), base)
}

// PlanckianLocusCIE1931ChromaticityDiagramPlot displays the Planckian locus
// and the given factory illuminants on the CIE 1931 chromaticity diagram.
func PlanckianLocusCIE1931ChromaticityDiagramPlot(illuminants []string, opts ...chart.Option) error {
	if illuminants == nil {
		illuminants = []string{"A", "B", "C"}
	}
	cmfs, err := observer(dataset.CIE1931Observer)
	if err != nil {
		return err
	}

	s := diagramSettings(cie1931Diagram, dataset.CIE1931Observer)
	s.Title = planckianTitle(illuminants, cie1931Diagram)
	s = s.Apply(opts...)

	f := chart.New(s)
	if err := drawChromaticityDiagram(f, cie1931Diagram, cmfs, transform1931()); err != nil {
		return err
	}
	if err := drawPlanckianLocus(f, cmfs, illuminants, 0.025,
		colorimetry.UCSuvToxy); err != nil {
		return err
	}
	return finish(f)
}

// PlanckianLocusCIE1960UCSChromaticityDiagramPlot displays the Planckian
// locus and the given factory illuminants on the CIE 1960 UCS chromaticity
// diagram.
func PlanckianLocusCIE1960UCSChromaticityDiagramPlot(illuminants []string, opts ...chart.Option) error {
	if illuminants == nil {
		illuminants = []string{"A", "C", "E"}
	}
	cmfs, err := observer(dataset.CIE1931Observer)
	if err != nil {
		return err
	}

	s := diagramSettings(cie1960Diagram, dataset.CIE1931Observer)
	s.Title = planckianTitle(illuminants, cie1960Diagram)
	s = s.Apply(opts...)

	f := chart.New(s)
	if err := drawChromaticityDiagram(f, cie1960Diagram, cmfs, transform1960()); err != nil {
		return err
	}
	identity := func(p colorimetry.Vec2) colorimetry.Vec2 { return p }
	if err := drawPlanckianLocus(f, cmfs, illuminants, 0.05, identity); err != nil {
		return err
	}
	return finish(f)
}
