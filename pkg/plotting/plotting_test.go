package plotting

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kovidgoyal/imaging"

	"github.com/spectraplot/spectraplot/pkg/chart"
	"github.com/spectraplot/spectraplot/pkg/colorimetry"
	"github.com/spectraplot/spectraplot/pkg/dataset"
	"github.com/spectraplot/spectraplot/pkg/errors"
)

// renderTo returns options writing a small figure to the given path.
func renderTo(path string) []chart.Option {
	return []chart.Option{
		chart.WithFilename(path),
		chart.WithFigureSize(4, 3),
		chart.WithDPI(72),
	}
}

func assertRendered(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected output file at %s: %v", path, err)
	}
	if info.Size() == 0 {
		t.Fatalf("expected non-empty output file at %s", path)
	}
}

// ---- Colour parameter plots ----

func TestColourParametersPlot_RendersPNG(t *testing.T) {
	params := []ColourParameter{
		{X: 0, RGB: colorimetry.RGB{1, 0, 0}, Y0: Float(0.1), Y1: Float(0.9)},
		{X: 1, RGB: colorimetry.RGB{0, 1, 0}, Y0: Float(0.2), Y1: Float(0.8)},
		{X: 2, RGB: colorimetry.RGB{0, 0, 1}, Y0: Float(0.3), Y1: Float(0.7)},
	}

	path := filepath.Join(t.TempDir(), "parameters.png")
	if err := ColourParametersPlot(params, true, true, renderTo(path)...); err != nil {
		t.Fatalf("plot failed: %v", err)
	}
	assertRendered(t, path)
}

func TestSingleColourPlot_RendersSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swatch.svg")
	param := ColourParameter{Name: "neutral 5", RGB: colorimetry.RGB{0.5, 0.5, 0.5}}
	if err := SingleColourPlot(param, renderTo(path)...); err != nil {
		t.Fatalf("plot failed: %v", err)
	}
	assertRendered(t, path)
}

func TestSwatchLimits(t *testing.T) {
	tests := []struct {
		name   string
		count  int
		layout SwatchLayout
		want   [4]float64
	}{
		{
			name:   "single swatch",
			count:  1,
			layout: DefaultSwatchLayout(),
			want:   [4]float64{0, 1, 0, 1},
		},
		{
			name:  "checker grid",
			count: 24,
			layout: SwatchLayout{
				Width: 1, Height: 1, Spacing: 0.25, Across: 6,
			},
			want: [4]float64{0, 7.25, -3.75, 1},
		},
		{
			name:  "partial last row",
			count: 4,
			layout: SwatchLayout{
				Width: 1, Height: 1, Spacing: 0, Across: 3,
			},
			want: [4]float64{0, 3, -1, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := swatchLimits(tt.count, tt.layout)
			if got != tt.want {
				t.Errorf("expected limits %v, got %v", tt.want, got)
			}
		})
	}
}

func TestColourCheckerPlot_UnknownChecker(t *testing.T) {
	err := ColourCheckerPlot("Bogus Checker", chart.WithStandalone(false))
	if err == nil {
		t.Fatal("expected an error for an unknown colour checker")
	}
	pe, ok := errors.AsPlotError(err)
	if !ok {
		t.Fatalf("expected a structured error, got %T", err)
	}
	if pe.Code != errors.ErrColourCheckerNotFound {
		t.Errorf("expected code %s, got %s", errors.ErrColourCheckerNotFound, pe.Code)
	}
	if len(pe.ValidNames) == 0 {
		t.Error("expected the error to list valid checker names")
	}
}

func TestColourCheckerPlot_Renders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checker.png")
	if err := ColourCheckerPlot("ColorChecker 2005", renderTo(path)...); err != nil {
		t.Fatalf("plot failed: %v", err)
	}
	assertRendered(t, path)
}

// ---- Spectral plots ----

func TestSingleSPDPlot_UnknownObserver(t *testing.T) {
	spd := colorimetry.NewSPD("test", map[float64]float64{400: 1, 500: 2, 600: 1})
	err := SingleSPDPlot(spd, "Bogus Observer", chart.WithStandalone(false))
	if !errors.IsNotFound(err) {
		t.Fatalf("expected a lookup error listing valid names, got %v", err)
	}
}

func TestSingleSPDPlot_Renders(t *testing.T) {
	spd := colorimetry.NewSPD("Sample", map[float64]float64{
		400: 0.2, 450: 0.5, 500: 0.9, 550: 1.0, 600: 0.7, 650: 0.3, 700: 0.1,
	})
	path := filepath.Join(t.TempDir(), "spd.png")
	if err := SingleSPDPlot(spd, dataset.CIE1931Observer, renderTo(path)...); err != nil {
		t.Fatalf("plot failed: %v", err)
	}
	assertRendered(t, path)
}

func TestMultiIlluminantsRelativeSPDPlot_Renders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "illuminants.png")
	err := MultiIlluminantsRelativeSPDPlot([]string{"A", "D65"}, renderTo(path)...)
	if err != nil {
		t.Fatalf("plot failed: %v", err)
	}
	assertRendered(t, path)
}

func TestMultiCMFSPlot_Renders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cmfs.png")
	names := []string{dataset.CIE1931Observer, dataset.CIE1964Observer}
	if err := MultiCMFSPlot(names, renderTo(path)...); err != nil {
		t.Fatalf("plot failed: %v", err)
	}
	assertRendered(t, path)
}

func TestVisibleSpectrumPlot_Renders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spectrum.png")
	if err := VisibleSpectrumPlot(dataset.CIE1931Observer, renderTo(path)...); err != nil {
		t.Fatalf("plot failed: %v", err)
	}
	assertRendered(t, path)
}

// ---- Chromaticity diagrams ----

func TestCIE1931ChromaticityDiagramPlot_NoResources(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diagram.png")
	err := CIE1931ChromaticityDiagramPlot(dataset.CIE1931Observer, renderTo(path)...)
	if err != nil {
		t.Fatalf("plot failed: %v", err)
	}
	assertRendered(t, path)
}

func TestCIE1931ChromaticityDiagramPlot_MissingBackground(t *testing.T) {
	opts := append(renderTo(filepath.Join(t.TempDir(), "diagram.png")),
		chart.WithResourcesDir(t.TempDir()))
	err := CIE1931ChromaticityDiagramPlot(dataset.CIE1931Observer, opts...)
	if err == nil {
		t.Fatal("expected an error for a missing background bitmap")
	}
	pe, ok := errors.AsPlotError(err)
	if !ok || pe.Code != errors.ErrResourceNotFound {
		t.Errorf("expected code %s, got %v", errors.ErrResourceNotFound, err)
	}
}

func TestCIE1931ChromaticityDiagramPlot_WithBackground(t *testing.T) {
	resources := t.TempDir()
	name := "CIE_1931_Chromaticity_Diagram_" +
		strings.ReplaceAll(dataset.CIE1931Observer, " ", "_") + "_Small.png"
	img := imaging.New(16, 16, color.NRGBA{R: 200, G: 200, B: 200, A: 255})
	if err := imaging.Save(img, filepath.Join(resources, name)); err != nil {
		t.Fatalf("writing test bitmap: %v", err)
	}

	path := filepath.Join(t.TempDir(), "diagram.png")
	opts := append(renderTo(path), chart.WithResourcesDir(resources))
	if err := CIE1931ChromaticityDiagramPlot(dataset.CIE1931Observer, opts...); err != nil {
		t.Fatalf("plot failed: %v", err)
	}
	assertRendered(t, path)
}

func TestCIE1960UCSChromaticityDiagramColoursPlot_CoarseSweep(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colours.png")
	err := CIE1960UCSChromaticityDiagramColoursPlot(1.25, 0.05,
		dataset.CIE1931Observer, renderTo(path)...)
	if err != nil {
		t.Fatalf("plot failed: %v", err)
	}
	assertRendered(t, path)
}

func TestColourspacesDiagramPlot_Renders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colourspaces.png")
	names := []string{"sRGB", "ACES RGB", dataset.PointerGamutName}
	err := ColourspacesCIE1931ChromaticityDiagramPlot(names,
		dataset.CIE1931Observer, renderTo(path)...)
	if err != nil {
		t.Fatalf("plot failed: %v", err)
	}
	assertRendered(t, path)
}

func TestColourspacesDiagramPlot_UnknownColourspace(t *testing.T) {
	err := ColourspacesCIE1931ChromaticityDiagramPlot([]string{"Bogus RGB"},
		dataset.CIE1931Observer, chart.WithStandalone(false))
	if !errors.IsNotFound(err) {
		t.Fatalf("expected a lookup error listing valid names, got %v", err)
	}
}

func TestPlanckianLocusPlot_UnknownIlluminant(t *testing.T) {
	err := PlanckianLocusCIE1931ChromaticityDiagramPlot([]string{"Z"},
		chart.WithStandalone(false))
	if err == nil {
		t.Fatal("expected an error for an unknown illuminant")
	}
	pe, ok := errors.AsPlotError(err)
	if !ok {
		t.Fatalf("expected a structured error, got %T", err)
	}
	if pe.Code != errors.ErrIlluminantNotFound {
		t.Errorf("expected code %s, got %s", errors.ErrIlluminantNotFound, pe.Code)
	}
	if len(pe.ValidNames) == 0 {
		t.Error("expected the error to list valid illuminant names")
	}
}

func TestPlanckianLocusCIE1960UCSPlot_Renders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planckian.png")
	err := PlanckianLocusCIE1960UCSChromaticityDiagramPlot(nil, renderTo(path)...)
	if err != nil {
		t.Fatalf("plot failed: %v", err)
	}
	assertRendered(t, path)
}

// ---- Function curves ----

func TestMultiLightnessFunctionPlot_Defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lightness.png")
	if err := MultiLightnessFunctionPlot(nil, renderTo(path)...); err != nil {
		t.Fatalf("plot failed: %v", err)
	}
	assertRendered(t, path)
}

func TestMultiMunsellValueFunctionPlot_UnknownFunction(t *testing.T) {
	err := MultiMunsellValueFunctionPlot([]string{"Munsell Value Bogus"},
		chart.WithStandalone(false))
	if !errors.IsNotFound(err) {
		t.Fatalf("expected a lookup error listing valid names, got %v", err)
	}
}

func TestMultiTransferFunctionPlot_Inverse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transfer.png")
	err := MultiTransferFunctionPlot([]string{"sRGB", "Rec. 709"}, true,
		renderTo(path)...)
	if err != nil {
		t.Fatalf("plot failed: %v", err)
	}
	assertRendered(t, path)
}

// ---- Blackbody and colour rendering ----

func TestBlackbodyColoursPlot_Renders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blackbody.png")
	err := BlackbodyColoursPlot(1000, 4000, 500, dataset.CIE1931Observer,
		renderTo(path)...)
	if err != nil {
		t.Fatalf("plot failed: %v", err)
	}
	assertRendered(t, path)
}

func TestBlackbodySpectralRadiancePlot_Renders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "radiance.png")
	err := BlackbodySpectralRadiancePlot(3500, dataset.CIE1931Observer, "",
		renderTo(path)...)
	if err != nil {
		t.Fatalf("plot failed: %v", err)
	}
	assertRendered(t, path)
}

func TestColourRenderingIndexBarsPlot_Renders(t *testing.T) {
	source, err := dataset.IlluminantsRelativeSPDs.Get("F2")
	if err != nil {
		t.Fatalf("illuminant lookup failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "cri.png")
	if err := ColourRenderingIndexBarsPlot(source, renderTo(path)...); err != nil {
		t.Fatalf("plot failed: %v", err)
	}
	assertRendered(t, path)
}

func TestColourRenderingIndexBarsPlot_NilSource(t *testing.T) {
	if err := ColourRenderingIndexBarsPlot(nil, chart.WithStandalone(false)); err == nil {
		t.Fatal("expected an error for a nil source distribution")
	}
}

// ---- Helpers ----

func TestTitleCase(t *testing.T) {
	tests := []struct{ in, want string }{
		{"dark skin", "Dark Skin"},
		{"bluish green", "Bluish Green"},
		{"white 9.5 (.05 d)", "White 9.5 (.05 D)"},
	}
	for _, tt := range tests {
		if got := titleCase(tt.in); got != tt.want {
			t.Errorf("titleCase(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestNormaliseAll(t *testing.T) {
	colours := normaliseAll([]colorimetry.RGB{
		{0.5, 0.25, 0}, {2, 1, 0.5},
	})
	if colours[1][0] != 1 {
		t.Errorf("expected brightest component normalised to 1, got %g", colours[1][0])
	}
	if colours[0][0] != 0.25 {
		t.Errorf("expected global scaling, got %g", colours[0][0])
	}
}
