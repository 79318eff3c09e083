// Package colorimetry tests for spectral distributions and blackbody helpers.
package colorimetry

import (
	"math"
	"testing"
)

func testCMFS() *CMFS {
	// Small synthetic observer, 10 nm steps.
	data := map[float64]XYZ{
		400: {0.01, 0.00, 0.07},
		410: {0.04, 0.00, 0.21},
		420: {0.13, 0.01, 0.65},
		430: {0.28, 0.01, 1.39},
		440: {0.35, 0.02, 1.77},
		450: {0.34, 0.04, 1.77},
	}
	return NewCMFS("Synthetic Observer", [3]string{"x", "y", "z"}, data)
}

// -----------------------------------------------------------------------------
// SPD Tests
// -----------------------------------------------------------------------------

func TestSPD_WavelengthsSorted(t *testing.T) {
	spd := NewSPD("Custom", map[float64]float64{440: 0.05, 400: 0.06, 420: 0.06})

	wls := spd.Wavelengths()
	for i := 1; i < len(wls); i++ {
		if wls[i] <= wls[i-1] {
			t.Fatalf("expected strictly increasing wavelengths, got %v", wls)
		}
	}
}

func TestSPD_ValueInterpolates(t *testing.T) {
	spd := NewSPD("Custom", map[float64]float64{400: 0, 420: 1})

	if got := spd.Value(410); !almostEqual(got, 0.5, tolerance) {
		t.Errorf("expected midpoint 0.5, got %v", got)
	}
	if got := spd.Value(400); got != 0 {
		t.Errorf("expected exact sample 0, got %v", got)
	}
	if got := spd.Value(390); got != 0 {
		t.Errorf("expected 0 outside range, got %v", got)
	}
}

func TestSPD_Shape(t *testing.T) {
	spd := NewSPD("Custom", map[float64]float64{400: 1, 420: 1, 425: 1})
	start, end, steps := spd.Shape()

	if start != 400 || end != 425 {
		t.Errorf("expected range 400..425, got %v..%v", start, end)
	}
	if steps != 5 {
		t.Errorf("expected smallest step 5, got %v", steps)
	}
}

func TestSPD_Interpolate(t *testing.T) {
	spd := NewSPD("Custom", map[float64]float64{400: 0, 420: 2})
	out := spd.Interpolate(400, 420, 5)

	if got := len(out.Wavelengths()); got != 5 {
		t.Fatalf("expected 5 samples, got %d", got)
	}
	if got := out.Value(405); !almostEqual(got, 0.5, tolerance) {
		t.Errorf("expected 0.5 at 405, got %v", got)
	}
}

func TestSPD_CloneIsIndependent(t *testing.T) {
	spd := NewSPD("Custom", map[float64]float64{400: 1})
	c := spd.Clone()
	c.values[400] = 2

	if got := spd.Value(400); got != 1 {
		t.Errorf("expected original untouched, got %v", got)
	}
}

// -----------------------------------------------------------------------------
// CMFS Tests
// -----------------------------------------------------------------------------

func TestWavelengthToXYZ_ExactAndInterpolated(t *testing.T) {
	cmfs := testCMFS()

	got := WavelengthToXYZ(420, cmfs)
	if !almostEqual(got[2], 0.65, tolerance) {
		t.Errorf("expected exact table value, got %v", got)
	}

	mid := WavelengthToXYZ(415, cmfs)
	if !almostEqual(mid[0], (0.04+0.13)/2, tolerance) {
		t.Errorf("expected linear interpolation, got %v", mid)
	}

	low := WavelengthToXYZ(300, cmfs)
	if low != (XYZ{0.01, 0.00, 0.07}) {
		t.Errorf("expected clamp to first sample, got %v", low)
	}
}

func TestSpectralToXYZ_FlatEqualsWhite(t *testing.T) {
	cmfs := testCMFS()
	flat := NewSPD("Flat", map[float64]float64{
		400: 1, 410: 1, 420: 1, 430: 1, 440: 1, 450: 1,
	})

	xyz := SpectralToXYZ(flat, cmfs, nil)
	if !almostEqual(xyz[1], 100, 1e-9) {
		t.Errorf("expected perfect reflector Y=100, got %v", xyz[1])
	}
}

// -----------------------------------------------------------------------------
// Blackbody Tests
// -----------------------------------------------------------------------------

func TestPlanckianRadiance_WienDisplacement(t *testing.T) {
	// Peak wavelength for 5000 K is near 580 nm (Wien: 2.898e-3 / T).
	const temperature = 5000.0
	peak := 2.898e-3 / temperature * 1e9

	vPeak := PlanckianRadiance(peak, temperature)
	if PlanckianRadiance(peak-100, temperature) >= vPeak {
		t.Error("expected radiance below peak at shorter wavelength")
	}
	if PlanckianRadiance(peak+150, temperature) >= vPeak {
		t.Error("expected radiance below peak at longer wavelength")
	}
}

func TestPlanckianRadiance_MonotonicInTemperature(t *testing.T) {
	if PlanckianRadiance(560, 3000) >= PlanckianRadiance(560, 6000) {
		t.Error("expected radiance to grow with temperature")
	}
}

func TestBlackbodySPD_Shape(t *testing.T) {
	spd := BlackbodySPD(3500, 360, 830, 5)
	start, end, steps := spd.Shape()

	if start != 360 || end != 830 || steps != 5 {
		t.Errorf("expected shape 360..830 step 5, got %v..%v step %v", start, end, steps)
	}
	if spd.Name != "3500K Blackbody" {
		t.Errorf("unexpected name %q", spd.Name)
	}
}

func TestCCTTouv_DuvOffsetsAboveLocus(t *testing.T) {
	cmfs := testCMFSFullRange()

	onLocus := CCTTouv(4000, 0, cmfs)
	above := CCTTouv(4000, 0.02, cmfs)
	below := CCTTouv(4000, -0.02, cmfs)

	if above.Y <= onLocus.Y {
		t.Errorf("expected positive duv above locus: %v vs %v", above, onLocus)
	}
	if below.Y >= onLocus.Y {
		t.Errorf("expected negative duv below locus: %v vs %v", below, onLocus)
	}

	d := above.Sub(onLocus).Norm()
	if math.Abs(d-0.02) > 1e-9 {
		t.Errorf("expected offset magnitude 0.02, got %v", d)
	}
}

func testCMFSFullRange() *CMFS {
	// Coarse synthetic observer spanning the visible range; enough structure
	// for the Planckian locus helpers to have a stable tangent.
	data := map[float64]XYZ{}
	for wl := 400.0; wl <= 700; wl += 10 {
		g := func(center, width float64) float64 {
			d := (wl - center) / width
			return math.Exp(-d * d)
		}
		data[wl] = XYZ{
			g(600, 50) + 0.35*g(440, 30),
			g(555, 50),
			1.8 * g(450, 30),
		}
	}
	return NewCMFS("Synthetic Full Range", [3]string{"x", "y", "z"}, data)
}
