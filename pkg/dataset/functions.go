package dataset

import (
	"math"

	"github.com/spectraplot/spectraplot/pkg/errors"
)

// ScalarFunction maps a luminance value to a perceptual quantity.
// Luminance Y is expressed on the 0..100 domain throughout.
type ScalarFunction func(Y float64) float64

// LightnessFunctions is the registry of factory Lightness functions.
var LightnessFunctions = NewRegistry[ScalarFunction](
	errors.ErrLightnessFunctionNotFound, "Lightness functions")

// MunsellValueFunctions is the registry of factory Munsell value functions.
var MunsellValueFunctions = NewRegistry[ScalarFunction](
	errors.ErrMunsellFunctionNotFound, "Munsell value functions")

// lightness1976 is the CIE 1976 Lightness L* of a luminance value relative
// to a perfect reflector.
func lightness1976(Y float64) float64 {
	yr := Y / 100
	if yr > 216.0/24389.0 {
		return 116*math.Cbrt(yr) - 16
	}
	return 24389.0 / 27.0 * yr
}

// lightnessWyszecki1964 is Wyszecki's 1964 W correlate, valid for
// 1% < Y < 98%.
func lightnessWyszecki1964(Y float64) float64 {
	return 25*math.Cbrt(Y) - 17
}

// lightnessGlasser1958 is the Glasser et al. 1958 Lightness correlate.
func lightnessGlasser1958(Y float64) float64 {
	return 25.29*math.Cbrt(Y) - 18.38
}

// munsellValuePriest1920 is the Priest et al. 1920 Munsell value estimate.
func munsellValuePriest1920(Y float64) float64 {
	return 10 * math.Sqrt(Y/100)
}

// munsellValueMcCamy1987 is the McCamy 1987 Munsell value estimate
// (ASTM D1535-related fitting).
func munsellValueMcCamy1987(Y float64) float64 {
	if Y <= 0.9 {
		return 0.87445 * math.Pow(Y, 0.9967)
	}
	return 2.49268*math.Cbrt(Y) - 1.5614 -
		0.985/(math.Pow(0.1073*Y-3.084, 2)+7.54) +
		0.0133/math.Pow(Y, 2.3) +
		0.0084*math.Sin(4.1*math.Cbrt(Y)+1) +
		(0.0221/Y)*math.Sin(0.39*(Y-2)) -
		(0.037/(0.44*Y))*math.Sin(1.28*(Y-0.53))
}

// astmD1535Polynomial is the ASTM D1535-08 luminance of a Munsell value.
func astmD1535Polynomial(v float64) float64 {
	return 1.1914*v - 0.22533*math.Pow(v, 2) + 0.23352*math.Pow(v, 3) -
		0.020484*math.Pow(v, 4) + 0.00081939*math.Pow(v, 5)
}

// munsellValueASTMD153508 inverts the ASTM D1535-08 quintic by bisection.
// The polynomial is monotonic on the 0..10 value range.
func munsellValueASTMD153508(Y float64) float64 {
	lo, hi := 0.0, 10.0
	for i := 0; i < 100; i++ {
		mid := (lo + hi) / 2
		if astmD1535Polynomial(mid) < Y {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

func init() {
	LightnessFunctions.Register("Lightness 1976", lightness1976)
	LightnessFunctions.Register("Lightness Wyszecki 1964", lightnessWyszecki1964)
	LightnessFunctions.Register("Lightness Glasser 1958", lightnessGlasser1958)

	MunsellValueFunctions.Register("Munsell Value ASTM D1535-08", munsellValueASTMD153508)
	MunsellValueFunctions.Register("Munsell Value McCamy 1987", munsellValueMcCamy1987)
	MunsellValueFunctions.Register("Munsell Value Priest 1920", munsellValuePriest1920)
}
