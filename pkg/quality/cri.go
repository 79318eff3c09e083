// Package quality computes colour rendering quality metrics for light
// sources, following the CIE 13.3 colour rendering index method.
package quality

import (
	"math"

	"github.com/spectraplot/spectraplot/pkg/colorimetry"
	"github.com/spectraplot/spectraplot/pkg/dataset"
	"github.com/spectraplot/spectraplot/pkg/errors"
)

// SampleResult is the rendering score of a single test colour sample.
type SampleResult struct {
	Index int
	Name  string
	Ri    float64

	// XYZ is the sample's tristimulus under the test source, kept so plots
	// can colour the per-sample bars.
	XYZ colorimetry.XYZ
}

// Result is the outcome of a colour rendering index computation.
type Result struct {
	Name    string
	CCT     float64
	Ra      float64
	Samples []SampleResult
}

// CCTMcCamy approximates the correlated colour temperature of a chromaticity
// coordinate with McCamy's cubic (valid roughly 2000..12500 K).
func CCTMcCamy(xy colorimetry.Vec2) float64 {
	n := (xy.X - 0.3320) / (0.1858 - xy.Y)
	return 449*math.Pow(n, 3) + 3525*math.Pow(n, 2) + 6823.3*n + 5520.33
}

// ColourRenderingIndex computes the CIE 13.3 general colour rendering index
// Ra of a light source and the special indices Ri of the eight test colour
// samples.
//
// The reference illuminant is a Planckian radiator at the source's correlated
// colour temperature below 5000 K, and CIE illuminant D65 above.
func ColourRenderingIndex(source *colorimetry.SPD, cmfs *colorimetry.CMFS) (*Result, error) {
	if source == nil || len(source.Wavelengths()) == 0 {
		return nil, errors.New(errors.ErrResourceDecodeFailed, errors.CategoryInternal,
			"colour rendering index needs a sampled source distribution")
	}

	testXYZ := illuminantXYZ(source, cmfs)
	testuv := colorimetry.UCSTouv(colorimetry.XYZToUCS(testXYZ))

	cct := CCTMcCamy(colorimetry.XYZToxy(testXYZ))

	reference, err := referenceIlluminant(cct)
	if err != nil {
		return nil, err
	}
	refXYZ := illuminantXYZ(reference, cmfs)
	refuv := colorimetry.UCSTouv(colorimetry.XYZToUCS(refXYZ))

	ct, dt := vonKriesCD(testuv)
	cr, dr := vonKriesCD(refuv)

	samples := TestColourSamples()
	result := &Result{
		Name:    source.Name,
		CCT:     cct,
		Samples: make([]SampleResult, 0, len(samples)),
	}

	var sum float64
	for i, tcs := range samples {
		underTest := colorimetry.SpectralToXYZ(tcs, cmfs, source)
		underRef := colorimetry.SpectralToXYZ(tcs, cmfs, reference)

		uvTest := colorimetry.UCSTouv(colorimetry.XYZToUCS(underTest))
		uvRef := colorimetry.UCSTouv(colorimetry.XYZToUCS(underRef))

		// Chromatic adaptation of the test-source appearance to the
		// reference white.
		adapted := vonKriesAdapt(uvTest, ct, dt, cr, dr)

		ut, vt, wt := uvwStar(adapted, underTest[1], refuv)
		ur, vr, wr := uvwStar(uvRef, underRef[1], refuv)

		deltaE := math.Sqrt(
			(ur-ut)*(ur-ut) + (vr-vt)*(vr-vt) + (wr-wt)*(wr-wt))
		ri := 100 - 4.6*deltaE
		sum += ri

		result.Samples = append(result.Samples, SampleResult{
			Index: i + 1,
			Name:  tcs.Name,
			Ri:    ri,
			XYZ:   underTest,
		})
	}

	result.Ra = sum / float64(len(samples))
	return result, nil
}

// illuminantXYZ integrates a source distribution against the observer with a
// perfect reflector, so the source itself lands at Y = 100.
func illuminantXYZ(source *colorimetry.SPD, cmfs *colorimetry.CMFS) colorimetry.XYZ {
	start, end, steps := cmfs.Shape()
	data := make(map[float64]float64)
	for wl := start; wl <= end+steps/2; wl += steps {
		data[wl] = 1
	}
	return colorimetry.SpectralToXYZ(colorimetry.NewSPD("perfect reflector", data), cmfs, source)
}

// referenceIlluminant picks the CIE 13.3 reference for a correlated colour
// temperature.
func referenceIlluminant(cct float64) (*colorimetry.SPD, error) {
	if cct < 5000 {
		return colorimetry.BlackbodySPD(cct, 380, 780, 10), nil
	}
	return dataset.IlluminantsRelativeSPDs.Get("D65")
}

// vonKriesCD returns the c and d chromatic adaptation terms of a CIE 1960 uv
// coordinate.
func vonKriesCD(uv colorimetry.Vec2) (c, d float64) {
	c = (4 - uv.X - 10*uv.Y) / uv.Y
	d = (1.708*uv.Y + 0.404 - 1.481*uv.X) / uv.Y
	return c, d
}

// vonKriesAdapt maps a sample chromaticity seen under the test source to its
// corresponding colour under the reference illuminant.
func vonKriesAdapt(uv colorimetry.Vec2, ct, dt, cr, dr float64) colorimetry.Vec2 {
	ci, di := vonKriesCD(uv)
	cScaled := cr / ct * ci
	dScaled := dr / dt * di
	denom := 16.518 + 1.481*cScaled - dScaled
	return colorimetry.Vec2{
		X: (10.872 + 0.404*cScaled - 4*dScaled) / denom,
		Y: 5.520 / denom,
	}
}

// uvwStar returns the CIE 1964 U*V*W* coordinates of a uv chromaticity and
// luminance against a reference white.
func uvwStar(uv colorimetry.Vec2, Y float64, white colorimetry.Vec2) (u, v, w float64) {
	w = 25*math.Cbrt(Y) - 17
	u = 13 * w * (uv.X - white.X)
	v = 13 * w * (uv.Y - white.Y)
	return u, v, w
}
