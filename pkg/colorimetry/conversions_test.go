// Package colorimetry tests for chromaticity conversion round trips.
package colorimetry

import (
	"math"
	"testing"
)

const tolerance = 1e-10

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// -----------------------------------------------------------------------------
// xy Tests
// -----------------------------------------------------------------------------

func TestXYZToxy_RoundTrip(t *testing.T) {
	cases := []XYZ{
		{0.4124, 0.2126, 0.0193},
		{0.9505, 1.0, 1.089},
		{0.1, 0.2, 0.3},
		{1, 1, 1},
	}
	for _, xyz := range cases {
		xy := XYZToxy(xyz)
		back := XYZToxy(XyYToXYZ(xy, xyz[1]))
		if !almostEqual(xy.X, back.X, tolerance) || !almostEqual(xy.Y, back.Y, tolerance) {
			t.Errorf("xy round trip for %v: expected %v, got %v", xyz, xy, back)
		}
	}
}

func TestXYZToxy_ZeroSum(t *testing.T) {
	xy := XYZToxy(XYZ{0, 0, 0})
	if xy.X != 0 || xy.Y != 0 {
		t.Errorf("expected zero chromaticity for black, got %v", xy)
	}
}

func TestXyYToXYZ_KnownValue(t *testing.T) {
	// D65 whitepoint at unit luminance.
	xyz := XyYToXYZ(Vec2{0.31271, 0.32902}, 1)
	if !almostEqual(xyz[1], 1, tolerance) {
		t.Errorf("expected Y=1, got %v", xyz[1])
	}
	if !almostEqual(xyz[0], 0.31271/0.32902, 1e-9) {
		t.Errorf("unexpected X: %v", xyz[0])
	}
}

// -----------------------------------------------------------------------------
// CIE 1960 UCS Tests
// -----------------------------------------------------------------------------

func TestUCSuv_RoundTrip(t *testing.T) {
	cases := []Vec2{
		{0.3127, 0.329},
		{0.4476, 0.4074},
		{0.2, 0.5},
		{1.0 / 3.0, 1.0 / 3.0},
	}
	for _, xy := range cases {
		uv := XyTouv(xy)
		back := UCSuvToxy(uv)
		if !almostEqual(xy.X, back.X, tolerance) || !almostEqual(xy.Y, back.Y, tolerance) {
			t.Errorf("uv round trip for %v: got %v", xy, back)
		}
	}
}

// -----------------------------------------------------------------------------
// CIE 1976 Luv Tests
// -----------------------------------------------------------------------------

func TestLuv_RoundTrip(t *testing.T) {
	white := Vec2{0.31271, 0.32902}
	cases := []XYZ{
		{0.4124, 0.2126, 0.0193},
		{0.3, 0.4, 0.2},
		{0.9505, 1.0, 1.089},
	}
	for _, xyz := range cases {
		luv := XYZToLuv(xyz, white)
		back := LuvToXYZ(luv, white)
		for i := range xyz {
			if !almostEqual(xyz[i], back[i], 1e-9) {
				t.Errorf("Luv round trip for %v: got %v", xyz, back)
				break
			}
		}
	}
}

func TestLuvuvToxy_RoundTrip(t *testing.T) {
	cases := []Vec2{
		{0.3127, 0.329},
		{0.25, 0.45},
		{0.45, 0.35},
	}
	for _, xy := range cases {
		uv := XYZTouvPrime(XyToXYZ(xy))
		back := LuvuvToxy(uv)
		if !almostEqual(xy.X, back.X, tolerance) || !almostEqual(xy.Y, back.Y, tolerance) {
			t.Errorf("u'v' round trip for %v: got %v", xy, back)
		}
	}
}

func TestXYZToLuv_WhiteIsAchromatic(t *testing.T) {
	white := Vec2{0.31271, 0.32902}
	luv := XYZToLuv(XyToXYZ(white), white)
	if !almostEqual(luv[0], 100, 1e-9) {
		t.Errorf("expected L*=100 for reference white, got %v", luv[0])
	}
	if !almostEqual(luv[1], 0, 1e-9) || !almostEqual(luv[2], 0, 1e-9) {
		t.Errorf("expected u*=v*=0 for reference white, got %v", luv)
	}
}

// -----------------------------------------------------------------------------
// RGB Tests
// -----------------------------------------------------------------------------

func TestXYZTosRGB_Clamped(t *testing.T) {
	rgb := XYZTosRGB(XYZ{1.2, 1.1, 1.3})
	for i, v := range rgb {
		if v < 0 || v > 1 {
			t.Errorf("component %d out of range: %v", i, v)
		}
	}
}

func TestNormaliseRGB(t *testing.T) {
	got := NormaliseRGB(RGB{0.2, 0.5, 0.1})
	if !almostEqual(got[1], 1, tolerance) {
		t.Errorf("expected max component 1, got %v", got)
	}
	if !almostEqual(got[0], 0.4, tolerance) {
		t.Errorf("expected proportional scaling, got %v", got)
	}

	black := NormaliseRGB(RGB{0, 0, 0})
	if black != (RGB{0, 0, 0}) {
		t.Errorf("expected black unchanged, got %v", black)
	}
}

// -----------------------------------------------------------------------------
// Vec2 Tests
// -----------------------------------------------------------------------------

func TestVec2_Normalised(t *testing.T) {
	v := Vec2{3, 4}.Normalised()
	if !almostEqual(v.Norm(), 1, tolerance) {
		t.Errorf("expected unit length, got %v", v.Norm())
	}

	zero := Vec2{}.Normalised()
	if zero != (Vec2{}) {
		t.Errorf("expected zero vector unchanged, got %v", zero)
	}
}

func TestVec2_Dot(t *testing.T) {
	if got := (Vec2{1, 0}).Dot(Vec2{0, 1}); got != 0 {
		t.Errorf("expected orthogonal dot 0, got %v", got)
	}
	if got := (Vec2{2, 3}).Dot(Vec2{4, -1}); got != 5 {
		t.Errorf("expected 5, got %v", got)
	}
}
