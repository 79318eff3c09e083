package plotting

import (
	"testing"

	"github.com/spectraplot/spectraplot/pkg/colorimetry"
	"github.com/spectraplot/spectraplot/pkg/dataset"
)

func testObserver(t *testing.T) *colorimetry.CMFS {
	t.Helper()
	cmfs, err := dataset.CMFS.Get(dataset.CIE1931Observer)
	if err != nil {
		t.Fatalf("observer lookup failed: %v", err)
	}
	return cmfs
}

func diagramTransforms(t *testing.T) map[string]diagramTransform {
	t.Helper()
	t1976, err := transform1976()
	if err != nil {
		t.Fatalf("1976 transform: %v", err)
	}
	return map[string]diagramTransform{
		"CIE 1931":     transform1931(),
		"CIE 1960 UCS": transform1960(),
		"CIE 1976 UCS": t1976,
	}
}

// ---- Locus geometry ----

func TestSpectralLocus_OrderedAndComplete(t *testing.T) {
	cmfs := testObserver(t)
	locus := newSpectralLocus(cmfs, transform1931())

	if len(locus.points) != len(cmfs.Wavelengths()) {
		t.Fatalf("expected %d locus points, got %d",
			len(cmfs.Wavelengths()), len(locus.points))
	}
	for i := 1; i < len(locus.wavelengths); i++ {
		if locus.wavelengths[i] <= locus.wavelengths[i-1] {
			t.Errorf("wavelengths not strictly increasing at index %d: %g <= %g",
				i, locus.wavelengths[i], locus.wavelengths[i-1])
		}
	}
}

func TestSpectralLocus_ContainsWhitepointNotCorners(t *testing.T) {
	cmfs := testObserver(t)
	locus := newSpectralLocus(cmfs, transform1931())

	if !locus.contains(colorimetry.EqualEnergy) {
		t.Error("expected equal-energy point inside the CIE 1931 locus")
	}
	for _, p := range []colorimetry.Vec2{
		{X: 0.9, Y: 0.9}, {X: 0.01, Y: 0.9}, {X: 0.9, Y: 0.01},
	} {
		if locus.contains(p) {
			t.Errorf("expected point %+v outside the locus", p)
		}
	}
}

// ---- Label placement ----

func TestPlaceWavelengthLabel_NormalsPointOutward(t *testing.T) {
	cmfs := testObserver(t)

	labelSets := map[string][]float64{
		"CIE 1931":     cie1931Diagram.labels,
		"CIE 1960 UCS": cie1960Diagram.labels,
		"CIE 1976 UCS": cie1976Diagram.labels,
	}

	for name, transform := range diagramTransforms(t) {
		locus := newSpectralLocus(cmfs, transform)
		for _, wl := range labelSets[name] {
			label, ok := placeWavelengthLabel(locus, wl)
			if !ok {
				t.Errorf("%s: wavelength %g not a table sample", name, wl)
				continue
			}
			outward := label.Point.Sub(colorimetry.EqualEnergy)
			if outward.Dot(label.Normal) < 0 {
				t.Errorf("%s: normal at %g nm points inward", name, wl)
			}
		}
	}
}

func TestPlaceWavelengthLabel_OffsetMagnitude(t *testing.T) {
	cmfs := testObserver(t)
	locus := newSpectralLocus(cmfs, transform1931())

	label, ok := placeWavelengthLabel(locus, 520)
	if !ok {
		t.Fatal("expected 520 nm to be a table sample")
	}
	if got := label.Normal.Norm(); got < 0.039 || got > 0.041 {
		t.Errorf("expected normal length 1/25, got %g", got)
	}

	tick := label.TickEnd.Sub(label.Point).Norm()
	text := label.TextPos.Sub(label.Point).Norm()
	if tick >= text {
		t.Errorf("expected tick (%g) shorter than text offset (%g)", tick, text)
	}
}

func TestPlaceWavelengthLabel_AlignmentFollowsNormal(t *testing.T) {
	cmfs := testObserver(t)

	for name, transform := range diagramTransforms(t) {
		locus := newSpectralLocus(cmfs, transform)
		for _, wl := range cie1931Diagram.labels {
			label, ok := placeWavelengthLabel(locus, wl)
			if !ok {
				continue
			}
			if label.AlignLeft != (label.Normal.X >= 0) {
				t.Errorf("%s: alignment at %g nm does not follow the normal direction",
					name, wl)
			}
		}
	}
}

func TestPlaceWavelengthLabel_LongWavelengthEdge(t *testing.T) {
	cmfs := testObserver(t)
	locus := newSpectralLocus(cmfs, transform1931())

	// 700 nm sits on the nearly flat long-wavelength edge of the CIE 1931
	// locus: the outward normal must point right and the text align left.
	label, ok := placeWavelengthLabel(locus, 700)
	if !ok {
		t.Fatal("expected 700 nm to be a table sample")
	}
	if label.Normal.X < 0 {
		t.Errorf("expected outward normal pointing right at 700 nm, got %+v",
			label.Normal)
	}
	if !label.AlignLeft {
		t.Error("expected left-aligned text at 700 nm")
	}
}

func TestPlaceWavelengthLabel_NonSampleWavelength(t *testing.T) {
	cmfs := testObserver(t)
	locus := newSpectralLocus(cmfs, transform1931())

	if _, ok := placeWavelengthLabel(locus, 522.5); ok {
		t.Error("expected miss for a wavelength between table samples")
	}
}
