package chart

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// Figure is a chart under assembly: the gonum plot plus the settings that
// will decorate and output it.
type Figure struct {
	Plot     *plot.Plot
	Settings Settings

	cycle int
}

// New creates a figure with the given settings.
func New(settings Settings) *Figure {
	return &Figure{
		Plot:     plot.New(),
		Settings: settings,
	}
}

// Colour cycle for unlabelled series, matching the classic
// red/green/blue/cyan/magenta/yellow/black rotation.
var colourCycle = []color.RGBA{
	{R: 255, A: 255},
	{G: 128, A: 255},
	{B: 255, A: 255},
	{G: 192, B: 192, A: 255},
	{R: 192, B: 192, A: 255},
	{R: 192, G: 192, A: 255},
	{A: 255},
}

// NextColour returns the next colour in the cycle.
func (f *Figure) NextColour() color.RGBA {
	c := colourCycle[f.cycle%len(colourCycle)]
	f.cycle++
	return c
}

// ApplyAspect decorates the figure: title, axis labels, legend placement,
// tick visibility, grid, zero axis lines, and the equal-aspect constraint.
func ApplyAspect(f *Figure) {
	s := f.Settings
	p := f.Plot

	p.Title.Text = s.Title
	p.X.Label.Text = s.XLabel
	p.Y.Label.Text = s.YLabel

	if s.Legend {
		switch s.LegendLocation {
		case LegendUpperLeft:
			p.Legend.Top, p.Legend.Left = true, true
		case LegendLowerLeft:
			p.Legend.Top, p.Legend.Left = false, true
		case LegendLowerRight:
			p.Legend.Top, p.Legend.Left = false, false
		default:
			p.Legend.Top, p.Legend.Left = true, false
		}
	}

	if s.NoTicks || s.NoXTicks {
		p.X.Tick.Marker = plot.ConstantTicks(nil)
	}
	if s.NoTicks || s.NoYTicks {
		p.Y.Tick.Marker = plot.ConstantTicks(nil)
	}

	if s.Grid {
		p.Add(plotter.NewGrid())
	}

	if s.XAxisLine {
		addZeroLine(f, true)
	}
	if s.YAxisLine {
		addZeroLine(f, false)
	}

	if s.EqualAspect {
		equaliseRanges(f)
	}
}

// addZeroLine draws a black line through zero across the current range of the
// other axis.
func addZeroLine(f *Figure, horizontal bool) {
	p := f.Plot

	var lo, hi float64
	if horizontal {
		lo, hi = p.X.Min, p.X.Max
	} else {
		lo, hi = p.Y.Min, p.Y.Max
	}
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo >= hi {
		return
	}

	var pts plotter.XYs
	if horizontal {
		pts = plotter.XYs{{X: lo, Y: 0}, {X: hi, Y: 0}}
	} else {
		pts = plotter.XYs{{X: 0, Y: lo}, {X: 0, Y: hi}}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return
	}
	line.Color = color.Black
	p.Add(line)
}

// equaliseRanges widens the shorter axis range so a data unit spans the same
// on-screen length on both axes, given the figure proportions.
func equaliseRanges(f *Figure) {
	p := f.Plot
	if math.IsInf(p.X.Min, 0) || math.IsInf(p.Y.Min, 0) {
		return
	}

	xr := p.X.Max - p.X.Min
	yr := p.Y.Max - p.Y.Min
	if xr <= 0 || yr <= 0 || f.Settings.FigureHeight <= 0 {
		return
	}

	aspect := f.Settings.FigureWidth / f.Settings.FigureHeight
	if xr/yr < aspect {
		want := yr * aspect
		mid := (p.X.Min + p.X.Max) / 2
		p.X.Min = mid - want/2
		p.X.Max = mid + want/2
	} else {
		want := xr / aspect
		mid := (p.Y.Min + p.Y.Max) / 2
		p.Y.Min = mid - want/2
		p.Y.Max = mid + want/2
	}
}

// ApplyBoundingBox fixes the axis ranges: an explicit bounding box wins,
// otherwise each tightened axis is clamped to its limits plus margins and the
// rest stays autoscaled.
func ApplyBoundingBox(f *Figure) {
	s := f.Settings
	p := f.Plot

	if s.BoundingBox != nil {
		b := *s.BoundingBox
		p.X.Min, p.X.Max = b[0], b[1]
		p.Y.Min, p.Y.Max = b[2], b[3]
		return
	}

	if s.XTighten {
		p.X.Min = s.Limits[0] + s.Margins[0]
		p.X.Max = s.Limits[1] + s.Margins[1]
	}
	if s.YTighten {
		p.Y.Min = s.Limits[2] + s.Margins[2]
		p.Y.Max = s.Limits[3] + s.Margins[3]
	}
}
