// Package chart assembles and renders 2D figures for colour science plots.
// It wraps a gonum/plot figure with a typed settings block so every plot call
// carries its own decoration and output options.
package chart

// LegendLocation places the figure legend within the plot area.
type LegendLocation string

const (
	LegendUpperRight LegendLocation = "upper right"
	LegendUpperLeft  LegendLocation = "upper left"
	LegendLowerRight LegendLocation = "lower right"
	LegendLowerLeft  LegendLocation = "lower left"
)

// Settings enumerates every recognized figure option.
// Plot functions start from their own defaults and let callers override
// individual fields through Option values; nothing is process-global.
type Settings struct {
	// Title is displayed above the plot area.
	Title string

	// XLabel and YLabel are the axis labels.
	XLabel string
	YLabel string

	// Legend displays the legend when series carry labels.
	Legend bool

	// LegendLocation places the legend.
	// Default: upper right.
	LegendLocation LegendLocation

	// NoTicks hides the tick marks and labels on both axes.
	// NoXTicks and NoYTicks hide a single axis.
	NoTicks  bool
	NoXTicks bool
	NoYTicks bool

	// Grid displays background grid lines.
	Grid bool

	// XAxisLine and YAxisLine draw a black line through zero on the
	// respective axis.
	XAxisLine bool
	YAxisLine bool

	// EqualAspect forces x and y data units to the same on-screen length by
	// widening the shorter axis range.
	EqualAspect bool

	// BoundingBox explicitly fixes the axis ranges as
	// [xmin, xmax, ymin, ymax]. When set it wins over Limits and Margins.
	BoundingBox *[4]float64

	// Limits is the data extent [xmin, xmax, ymin, ymax] used when
	// tightening an axis.
	Limits [4]float64

	// Margins is added to Limits per component when tightening.
	Margins [4]float64

	// XTighten and YTighten clamp the respective axis to Limits+Margins
	// instead of autoscaling.
	XTighten bool
	YTighten bool

	// Standalone finishes the figure: render to Filename, or open the
	// interactive viewer when Filename is empty. When false the caller keeps
	// drawing and Display is a no-op.
	Standalone bool

	// Filename is the output path; the extension selects the format
	// (.png or .svg).
	Filename string

	// FigureWidth and FigureHeight are the figure size in inches.
	// Default: 14 x 7.
	FigureWidth  float64
	FigureHeight float64

	// DPI is the raster resolution for PNG output.
	// Default: 96.
	DPI float64

	// ResourcesDir locates bundled bitmap resources such as the chromaticity
	// diagram backgrounds. Empty means no resources: plots that would use a
	// background bitmap draw without one.
	ResourcesDir string
}

// DefaultSettings returns a Settings with sensible defaults.
func DefaultSettings() Settings {
	return Settings{
		Legend:         false,
		LegendLocation: LegendUpperRight,
		Standalone:     true,
		FigureWidth:    14,
		FigureHeight:   7,
		DPI:            96,
	}
}

// Option overrides a single settings field. Plot functions apply options over
// their per-plot defaults in call order.
type Option func(*Settings)

// Apply returns a copy of s with all options applied.
func (s Settings) Apply(opts ...Option) Settings {
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithTitle sets the figure title.
func WithTitle(title string) Option {
	return func(s *Settings) { s.Title = title }
}

// WithXLabel sets the x axis label.
func WithXLabel(label string) Option {
	return func(s *Settings) { s.XLabel = label }
}

// WithYLabel sets the y axis label.
func WithYLabel(label string) Option {
	return func(s *Settings) { s.YLabel = label }
}

// WithLegend toggles the legend.
func WithLegend(enabled bool) Option {
	return func(s *Settings) { s.Legend = enabled }
}

// WithLegendLocation places the legend.
func WithLegendLocation(loc LegendLocation) Option {
	return func(s *Settings) { s.LegendLocation = loc }
}

// WithNoTicks hides the ticks on both axes.
func WithNoTicks() Option {
	return func(s *Settings) { s.NoTicks = true }
}

// WithGrid toggles the background grid.
func WithGrid(enabled bool) Option {
	return func(s *Settings) { s.Grid = enabled }
}

// WithEqualAspect forces equal data-unit length on both axes.
func WithEqualAspect() Option {
	return func(s *Settings) { s.EqualAspect = true }
}

// WithBoundingBox fixes the axis ranges to [xmin, xmax, ymin, ymax].
func WithBoundingBox(xmin, xmax, ymin, ymax float64) Option {
	return func(s *Settings) {
		s.BoundingBox = &[4]float64{xmin, xmax, ymin, ymax}
	}
}

// WithStandalone toggles figure finishing.
func WithStandalone(standalone bool) Option {
	return func(s *Settings) { s.Standalone = standalone }
}

// WithFilename sets the output path; the extension selects the format.
func WithFilename(filename string) Option {
	return func(s *Settings) { s.Filename = filename }
}

// WithFigureSize sets the figure size in inches.
func WithFigureSize(width, height float64) Option {
	return func(s *Settings) {
		s.FigureWidth = width
		s.FigureHeight = height
	}
}

// WithDPI sets the raster resolution for PNG output.
func WithDPI(dpi float64) Option {
	return func(s *Settings) { s.DPI = dpi }
}

// WithResourcesDir locates bundled bitmap resources.
func WithResourcesDir(dir string) Option {
	return func(s *Settings) { s.ResourcesDir = dir }
}
