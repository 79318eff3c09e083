package dataset

import (
	"github.com/spectraplot/spectraplot/pkg/colorimetry"
	"github.com/spectraplot/spectraplot/pkg/errors"
)

// Illuminants maps observer name to the chromaticity coordinates of the
// factory illuminants under that observer.
var Illuminants = NewRegistry[*Registry[colorimetry.Vec2]](
	errors.ErrIlluminantNotFound, "observers")

// IlluminantsRelativeSPDs is the registry of factory illuminant relative
// spectral power distributions.
var IlluminantsRelativeSPDs = NewRegistry[*colorimetry.SPD](
	errors.ErrIlluminantNotFound, "illuminants")

var illuminants1931 = map[string]colorimetry.Vec2{
	"A":   {X: 0.44757, Y: 0.40745},
	"B":   {X: 0.34842, Y: 0.35161},
	"C":   {X: 0.31006, Y: 0.31616},
	"D50": {X: 0.34570, Y: 0.35850},
	"D55": {X: 0.33242, Y: 0.34743},
	"D65": {X: 0.31271, Y: 0.32902},
	"D75": {X: 0.29902, Y: 0.31485},
	"E":   {X: 1.0 / 3.0, Y: 1.0 / 3.0},
	"F2":  {X: 0.37208, Y: 0.37529},
}

var illuminants1964 = map[string]colorimetry.Vec2{
	"A":   {X: 0.45117, Y: 0.40594},
	"B":   {X: 0.34980, Y: 0.35270},
	"C":   {X: 0.31039, Y: 0.31905},
	"D50": {X: 0.34773, Y: 0.35952},
	"D55": {X: 0.33411, Y: 0.34877},
	"D65": {X: 0.31382, Y: 0.33100},
	"D75": {X: 0.29968, Y: 0.31740},
	"E":   {X: 1.0 / 3.0, Y: 1.0 / 3.0},
	"F2":  {X: 0.37925, Y: 0.36733},
}

// CIE illuminant D65 relative spectral power distribution, 10 nm,
// normalised to 100 at 560 nm.
var d65SPD = map[float64]float64{
	380: 49.98, 390: 54.65, 400: 82.75, 410: 91.49, 420: 93.43,
	430: 86.68, 440: 104.86, 450: 117.01, 460: 117.81, 470: 114.86,
	480: 115.92, 490: 108.81, 500: 109.35, 510: 107.80, 520: 104.79,
	530: 107.69, 540: 104.41, 550: 104.05, 560: 100.00, 570: 96.33,
	580: 95.79, 590: 88.69, 600: 90.01, 610: 89.60, 620: 87.70,
	630: 83.29, 640: 83.70, 650: 80.03, 660: 80.21, 670: 82.28,
	680: 78.28, 690: 69.72, 700: 71.61, 710: 74.35, 720: 61.60,
	730: 69.89, 740: 75.09, 750: 63.59, 760: 46.42, 770: 66.81,
	780: 63.38,
}

// CIE illuminant C relative spectral power distribution, 10 nm.
var cSPD = map[float64]float64{
	380: 33.00, 390: 47.40, 400: 63.30, 410: 80.60, 420: 98.10,
	430: 112.40, 440: 121.50, 450: 124.00, 460: 123.10, 470: 123.80,
	480: 123.90, 490: 120.70, 500: 112.10, 510: 102.30, 520: 96.90,
	530: 98.00, 540: 102.10, 550: 105.20, 560: 105.30, 570: 102.30,
	580: 97.80, 590: 93.20, 600: 89.70, 610: 88.40, 620: 88.10,
	630: 88.00, 640: 87.80, 650: 88.20, 660: 87.90, 670: 86.30,
	680: 84.00, 690: 80.20, 700: 76.30, 710: 72.40, 720: 68.30,
	730: 64.40, 740: 61.50, 750: 59.20, 760: 58.10, 770: 58.20,
	780: 59.10,
}

// CIE illuminant F2 (cool white fluorescent) relative spectral power
// distribution, 10 nm. The mercury emission lines near 436 and 546 nm show
// up as spikes on this grid.
var f2SPD = map[float64]float64{
	380: 1.18, 390: 1.48, 400: 1.84, 410: 2.15, 420: 3.44,
	430: 15.69, 440: 3.85, 450: 3.74, 460: 4.19, 470: 4.62,
	480: 5.06, 490: 5.62, 500: 6.63, 510: 7.62, 520: 8.59,
	530: 9.31, 540: 10.21, 550: 44.12, 560: 11.22, 570: 11.21,
	580: 27.64, 590: 9.78, 600: 8.73, 610: 7.51, 620: 6.14,
	630: 4.86, 640: 3.72, 650: 2.78, 660: 2.03, 670: 1.45,
	680: 1.02, 690: 0.71, 700: 0.49, 710: 0.33, 720: 0.22,
	730: 0.15, 740: 0.10, 750: 0.07, 760: 0.05, 770: 0.03,
	780: 0.02,
}

// CIE illuminant B (direct sunlight) relative spectral power distribution,
// 10 nm.
var bSPD = map[float64]float64{
	380: 22.40, 390: 31.30, 400: 41.30, 410: 52.10, 420: 63.20,
	430: 73.10, 440: 80.80, 450: 85.40, 460: 88.30, 470: 92.00,
	480: 95.20, 490: 96.50, 500: 94.20, 510: 90.70, 520: 89.50,
	530: 92.20, 540: 96.90, 550: 101.00, 560: 102.80, 570: 102.60,
	580: 101.00, 590: 99.20, 600: 98.00, 610: 98.50, 620: 99.70,
	630: 101.00, 640: 102.20, 650: 103.90, 660: 105.00, 670: 104.90,
	680: 103.90, 690: 101.60, 700: 99.10, 710: 96.20, 720: 92.90,
	730: 89.40, 740: 86.90, 750: 85.20, 760: 84.70, 770: 85.40,
	780: 87.00,
}

// illuminantA samples Planck's law at 2856 K, normalised to 100 at 560 nm,
// which is the CIE definition of illuminant A.
func illuminantA() *colorimetry.SPD {
	const temperature = 2856.0
	ref := colorimetry.PlanckianRadiance(560, temperature)
	data := make(map[float64]float64)
	for wl := 380.0; wl <= 780; wl += 10 {
		data[wl] = 100 * colorimetry.PlanckianRadiance(wl, temperature) / ref
	}
	return colorimetry.NewSPD("A", data)
}

func illuminantE() *colorimetry.SPD {
	data := make(map[float64]float64)
	for wl := 380.0; wl <= 780; wl += 10 {
		data[wl] = 100
	}
	return colorimetry.NewSPD("E", data)
}

// IlluminantChromaticity returns the chromaticity coordinates of a factory
// illuminant under the named observer.
func IlluminantChromaticity(observer, illuminant string) (colorimetry.Vec2, error) {
	table, err := Illuminants.Get(observer)
	if err != nil {
		return colorimetry.Vec2{}, err
	}
	return table.Get(illuminant)
}

func init() {
	t1931 := NewRegistry[colorimetry.Vec2](errors.ErrIlluminantNotFound, "illuminants")
	for name, xy := range illuminants1931 {
		t1931.Register(name, xy)
	}
	t1964 := NewRegistry[colorimetry.Vec2](errors.ErrIlluminantNotFound, "illuminants")
	for name, xy := range illuminants1964 {
		t1964.Register(name, xy)
	}
	Illuminants.Register(CIE1931Observer, t1931)
	Illuminants.Register(CIE1964Observer, t1964)

	IlluminantsRelativeSPDs.Register("A", illuminantA())
	IlluminantsRelativeSPDs.Register("B", colorimetry.NewSPD("B", bSPD))
	IlluminantsRelativeSPDs.Register("C", colorimetry.NewSPD("C", cSPD))
	IlluminantsRelativeSPDs.Register("D65", colorimetry.NewSPD("D65", d65SPD))
	IlluminantsRelativeSPDs.Register("E", illuminantE())
	IlluminantsRelativeSPDs.Register("F2", colorimetry.NewSPD("F2", f2SPD))
}
