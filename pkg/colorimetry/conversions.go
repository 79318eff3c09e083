// Package colorimetry provides the colour-space conversion bridge used by the
// plotting functions. Conversions are pure functions over plain float data
// and assume well-formed input; there is no error path.
package colorimetry

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// XYZ is a CIE XYZ tristimulus triple.
type XYZ [3]float64

// RGB is an output-referred RGB triple, nominally in [0, 1].
type RGB [3]float64

// Vec2 is a 2D chromaticity coordinate or offset vector.
type Vec2 struct {
	X float64
	Y float64
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Norm returns the Euclidean length of v.
func (v Vec2) Norm() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalised returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec2) Normalised() Vec2 {
	n := v.Norm()
	if n == 0 {
		return v
	}
	return Vec2{v.X / n, v.Y / n}
}

// EqualEnergy is the chromaticity of the theoretical equal-energy stimulus,
// used as the "inside" reference when orienting spectral locus normals.
var EqualEnergy = Vec2{1.0 / 3.0, 1.0 / 3.0}

// -----------------------------------------------------------------------------
// CIE xy
// -----------------------------------------------------------------------------

// XYZToxy converts CIE XYZ tristimulus values to xy chromaticity coordinates.
func XYZToxy(v XYZ) Vec2 {
	sum := v[0] + v[1] + v[2]
	if sum == 0 {
		return Vec2{}
	}
	return Vec2{v[0] / sum, v[1] / sum}
}

// XyToXYZ converts xy chromaticity coordinates to CIE XYZ tristimulus values
// with unit luminance.
func XyToXYZ(c Vec2) XYZ {
	return XyYToXYZ(c, 1)
}

// XyYToXYZ converts CIE xyY colourspace values to XYZ tristimulus values.
func XyYToXYZ(c Vec2, Y float64) XYZ {
	if c.Y == 0 {
		return XYZ{}
	}
	return XYZ{
		c.X * Y / c.Y,
		Y,
		(1 - c.X - c.Y) * Y / c.Y,
	}
}

// -----------------------------------------------------------------------------
// CIE 1960 UCS
// -----------------------------------------------------------------------------

// XYZToUCS converts CIE XYZ tristimulus values to CIE 1960 UCS UVW values.
func XYZToUCS(v XYZ) XYZ {
	return XYZ{
		2 * v[0] / 3,
		v[1],
		(-v[0] + 3*v[1] + v[2]) / 2,
	}
}

// UCSTouv converts CIE 1960 UCS UVW values to uv chromaticity coordinates.
func UCSTouv(v XYZ) Vec2 {
	sum := v[0] + v[1] + v[2]
	if sum == 0 {
		return Vec2{}
	}
	return Vec2{v[0] / sum, v[1] / sum}
}

// UCSuvToxy converts CIE 1960 UCS uv chromaticity coordinates to CIE xy
// chromaticity coordinates.
func UCSuvToxy(c Vec2) Vec2 {
	d := 2*c.X - 8*c.Y + 4
	return Vec2{3 * c.X / d, 2 * c.Y / d}
}

// XyTouv converts CIE xy chromaticity coordinates to CIE 1960 UCS uv.
func XyTouv(c Vec2) Vec2 {
	return UCSTouv(XYZToUCS(XyToXYZ(c)))
}

// -----------------------------------------------------------------------------
// CIE 1976 Luv / u'v'
// -----------------------------------------------------------------------------

// CIE epsilon and kappa constants from the Luv / Lab definitions.
const (
	cieEpsilon = 216.0 / 24389.0
	cieKappa   = 24389.0 / 27.0
)

// Luv is a CIE 1976 L*u*v* triple.
type Luv [3]float64

// XYZToLuv converts CIE XYZ tristimulus values to CIE 1976 L*u*v* values
// relative to the given reference white chromaticity.
func XYZToLuv(v XYZ, white Vec2) Luv {
	wXYZ := XyToXYZ(white)

	yr := v[1] / wXYZ[1]
	var L float64
	if yr > cieEpsilon {
		L = 116*math.Cbrt(yr) - 16
	} else {
		L = cieKappa * yr
	}

	u, vv := primeUV(v)
	un, vn := primeUV(wXYZ)

	return Luv{L, 13 * L * (u - un), 13 * L * (vv - vn)}
}

// LuvToXYZ converts CIE 1976 L*u*v* values back to XYZ tristimulus values
// relative to the given reference white chromaticity.
func LuvToXYZ(l Luv, white Vec2) XYZ {
	wXYZ := XyToXYZ(white)

	var Y float64
	if l[0] > cieKappa*cieEpsilon {
		f := (l[0] + 16) / 116
		Y = f * f * f
	} else {
		Y = l[0] / cieKappa
	}
	Y *= wXYZ[1]

	if l[0] == 0 {
		return XYZ{0, 0, 0}
	}

	un, vn := primeUV(wXYZ)
	u := l[1]/(13*l[0]) + un
	v := l[2]/(13*l[0]) + vn

	X := Y * 9 * u / (4 * v)
	Z := Y * (12 - 3*u - 20*v) / (4 * v)
	return XYZ{X, Y, Z}
}

// LuvTouv converts CIE 1976 L*u*v* values to u'v' chromaticity coordinates.
func LuvTouv(l Luv, white Vec2) Vec2 {
	u, v := primeUV(LuvToXYZ(l, white))
	return Vec2{u, v}
}

// XYZTouvPrime converts CIE XYZ tristimulus values directly to CIE 1976 UCS
// u'v' chromaticity coordinates.
func XYZTouvPrime(v XYZ) Vec2 {
	u, vv := primeUV(v)
	return Vec2{u, vv}
}

// LuvuvToxy converts CIE 1976 UCS u'v' chromaticity coordinates to CIE xy
// chromaticity coordinates.
func LuvuvToxy(c Vec2) Vec2 {
	d := 6*c.X - 16*c.Y + 12
	return Vec2{9 * c.X / d, 4 * c.Y / d}
}

func primeUV(v XYZ) (float64, float64) {
	d := v[0] + 15*v[1] + 3*v[2]
	if d == 0 {
		return 0, 0
	}
	return 4 * v[0] / d, 9 * v[1] / d
}

// -----------------------------------------------------------------------------
// Output-referred RGB
// -----------------------------------------------------------------------------

// XYZTosRGB converts CIE XYZ tristimulus values to gamma-encoded sRGB,
// clamped to [0, 1].
func XYZTosRGB(v XYZ) RGB {
	c := colorful.Xyz(v[0], v[1], v[2]).Clamped()
	return RGB{c.R, c.G, c.B}
}

// NormaliseRGB scales an RGB triple so its largest component is 1.
// Non-positive triples are returned unchanged.
func NormaliseRGB(c RGB) RGB {
	m := math.Max(c[0], math.Max(c[1], c[2]))
	if m <= 0 {
		return c
	}
	return RGB{c[0] / m, c[1] / m, c[2] / m}
}

// ClampRGB clamps every component of c to [0, 1].
func ClampRGB(c RGB) RGB {
	for i, v := range c {
		c[i] = math.Max(0, math.Min(1, v))
	}
	return c
}
