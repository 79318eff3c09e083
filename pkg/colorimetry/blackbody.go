package colorimetry

import (
	"fmt"
	"math"
)

// Physical constants for Planck's law (2018 CODATA).
const (
	planckConstant    = 6.62607015e-34 // J s
	lightSpeed        = 2.99792458e8   // m / s
	boltzmannConstant = 1.380649e-23   // J / K
)

// PlanckianRadiance returns the spectral radiance of a blackbody at the given
// wavelength (nm) and temperature (K), in W / (sr m^2) / m.
func PlanckianRadiance(wavelength, temperature float64) float64 {
	l := wavelength * 1e-9
	c1 := 2 * planckConstant * lightSpeed * lightSpeed
	c2 := planckConstant * lightSpeed / boltzmannConstant
	return c1 / (math.Pow(l, 5) * (math.Exp(c2/(l*temperature)) - 1))
}

// BlackbodySPD samples Planck's law over the given spectral shape and returns
// the resulting spectral power distribution.
func BlackbodySPD(temperature, start, end, steps float64) *SPD {
	data := make(map[float64]float64)
	for wl := start; wl <= end+steps/2; wl += steps {
		data[wl] = PlanckianRadiance(wl, temperature)
	}
	return NewSPD(fmt.Sprintf("%gK Blackbody", temperature), data)
}

// CCTTouv converts a correlated colour temperature to CIE 1960 UCS uv
// chromaticity coordinates on the Planckian locus. A non-zero duv offsets the
// coordinate perpendicular to the locus, positive above it (towards larger v).
func CCTTouv(cct, duv float64, cmfs *CMFS) Vec2 {
	uv := planckianuv(cct, cmfs)
	if duv == 0 {
		return uv
	}

	// Local tangent from a small temperature step along the locus.
	next := planckianuv(cct*1.01, cmfs)
	tangent := next.Sub(uv).Normalised()
	normal := Vec2{-tangent.Y, tangent.X}
	if normal.Y < 0 {
		normal = normal.Scale(-1)
	}
	return uv.Add(normal.Scale(duv))
}

func planckianuv(cct float64, cmfs *CMFS) Vec2 {
	start, end, steps := cmfs.Shape()
	spd := BlackbodySPD(cct, start, end, steps)
	return UCSTouv(XYZToUCS(SpectralToXYZ(spd, cmfs, nil)))
}
