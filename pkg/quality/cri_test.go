package quality

import (
	"math"
	"testing"

	"github.com/spectraplot/spectraplot/pkg/colorimetry"
	"github.com/spectraplot/spectraplot/pkg/dataset"
)

func observer1931(t *testing.T) *colorimetry.CMFS {
	t.Helper()
	cmfs, err := dataset.CMFS.Get(dataset.CIE1931Observer)
	if err != nil {
		t.Fatal(err)
	}
	return cmfs
}

// -----------------------------------------------------------------------------
// CCT Tests
// -----------------------------------------------------------------------------

func TestCCTMcCamy_D65(t *testing.T) {
	cct := CCTMcCamy(colorimetry.Vec2{X: 0.31271, Y: 0.32902})
	if math.Abs(cct-6504) > 50 {
		t.Errorf("expected D65 near 6504 K, got %v", cct)
	}
}

func TestCCTMcCamy_IlluminantA(t *testing.T) {
	cct := CCTMcCamy(colorimetry.Vec2{X: 0.44757, Y: 0.40745})
	if math.Abs(cct-2856) > 60 {
		t.Errorf("expected illuminant A near 2856 K, got %v", cct)
	}
}

func TestCCTMcCamy_BlackbodyRoundTrip(t *testing.T) {
	cmfs := observer1931(t)
	for _, temp := range []float64{2500, 3000, 4000, 6500} {
		spd := colorimetry.BlackbodySPD(temp, 380, 780, 5)
		xy := colorimetry.XYZToxy(illuminantXYZ(spd, cmfs))
		cct := CCTMcCamy(xy)
		if math.Abs(cct-temp)/temp > 0.02 {
			t.Errorf("blackbody %vK: recovered CCT %v", temp, cct)
		}
	}
}

// -----------------------------------------------------------------------------
// CRI Tests
// -----------------------------------------------------------------------------

// A Planckian radiator is its own reference below 5000 K, so it must score a
// near-perfect general index regardless of the sample set.
func TestColourRenderingIndex_BlackbodyNearPerfect(t *testing.T) {
	cmfs := observer1931(t)
	spd := colorimetry.BlackbodySPD(3000, 380, 780, 10)

	result, err := ColourRenderingIndex(spd, cmfs)
	if err != nil {
		t.Fatal(err)
	}
	if result.Ra < 98 || result.Ra > 100.5 {
		t.Errorf("expected Ra near 100 for a blackbody source, got %v", result.Ra)
	}
	for _, s := range result.Samples {
		if s.Ri < 97 {
			t.Errorf("sample %d (%s): expected near-perfect Ri, got %v", s.Index, s.Name, s.Ri)
		}
	}
}

func TestColourRenderingIndex_SampleCountAndOrder(t *testing.T) {
	cmfs := observer1931(t)
	spd, err := dataset.IlluminantsRelativeSPDs.Get("F2")
	if err != nil {
		t.Fatal(err)
	}

	result, err := ColourRenderingIndex(spd, cmfs)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Samples) != 8 {
		t.Fatalf("expected 8 test colour samples, got %d", len(result.Samples))
	}
	for i, s := range result.Samples {
		if s.Index != i+1 {
			t.Errorf("sample %d carries index %d", i, s.Index)
		}
		if s.XYZ == (colorimetry.XYZ{}) {
			t.Errorf("sample %d has no tristimulus for bar colouring", s.Index)
		}
	}
}

// A narrow-band source renders worse than a broadband one.
func TestColourRenderingIndex_NarrowBandScoresLower(t *testing.T) {
	cmfs := observer1931(t)

	broadband := colorimetry.BlackbodySPD(4000, 380, 780, 10)
	broad, err := ColourRenderingIndex(broadband, cmfs)
	if err != nil {
		t.Fatal(err)
	}

	fluorescent, err := dataset.IlluminantsRelativeSPDs.Get("F2")
	if err != nil {
		t.Fatal(err)
	}
	narrow, err := ColourRenderingIndex(fluorescent, cmfs)
	if err != nil {
		t.Fatal(err)
	}

	if narrow.Ra >= broad.Ra {
		t.Errorf("expected F2 (Ra=%v) below a blackbody (Ra=%v)", narrow.Ra, broad.Ra)
	}
}

func TestColourRenderingIndex_EmptySource(t *testing.T) {
	cmfs := observer1931(t)
	if _, err := ColourRenderingIndex(nil, cmfs); err == nil {
		t.Error("expected an error for a nil source")
	}
	empty := colorimetry.NewSPD("empty", nil)
	if _, err := ColourRenderingIndex(empty, cmfs); err == nil {
		t.Error("expected an error for an empty source")
	}
}

// -----------------------------------------------------------------------------
// Test Colour Sample Tests
// -----------------------------------------------------------------------------

func TestTestColourSamples_ShapeAndRange(t *testing.T) {
	samples := TestColourSamples()
	if len(samples) != 8 {
		t.Fatalf("expected 8 samples, got %d", len(samples))
	}
	for _, s := range samples {
		start, end, steps := s.Shape()
		if start != 380 || end != 780 || steps != 10 {
			t.Errorf("%s: expected shape 380..780 step 10, got %v..%v step %v",
				s.Name, start, end, steps)
		}
		for _, wl := range s.Wavelengths() {
			v := s.Value(wl)
			if v <= 0 || v >= 1 {
				t.Errorf("%s: reflectance %v at %v nm outside (0, 1)", s.Name, v, wl)
			}
		}
	}
}
