package plotting

import (
	"sort"

	"github.com/spectraplot/spectraplot/pkg/colorimetry"
)

// diagramTransform projects a tristimulus value into the 2D chromaticity
// space of a diagram.
type diagramTransform func(colorimetry.XYZ) colorimetry.Vec2

// spectralLocus is the monochromatic boundary of a chromaticity diagram:
// one coordinate per colour matching function sample, ordered by strictly
// increasing wavelength and closed by connecting the last point back to the
// first.
type spectralLocus struct {
	wavelengths []float64
	points      []colorimetry.Vec2
	byWL        map[float64]colorimetry.Vec2
}

// newSpectralLocus projects every sample of the colour matching functions
// through the diagram transform. The table is assumed well formed; there is
// no error path.
func newSpectralLocus(cmfs *colorimetry.CMFS, transform diagramTransform) *spectralLocus {
	wls := cmfs.Wavelengths()
	l := &spectralLocus{
		wavelengths: wls,
		points:      make([]colorimetry.Vec2, 0, len(wls)),
		byWL:        make(map[float64]colorimetry.Vec2, len(wls)),
	}
	for _, wl := range wls {
		xyz, _ := cmfs.ValueAt(wl)
		p := transform(xyz)
		l.points = append(l.points, p)
		l.byWL[wl] = p
	}
	return l
}

// at returns the boundary coordinate of an exactly sampled wavelength.
func (l *spectralLocus) at(wl float64) (colorimetry.Vec2, bool) {
	p, ok := l.byWL[wl]
	return p, ok
}

// wavelengthLabel is a placed diagram annotation: a tick segment from the
// boundary point and the text position with its horizontal alignment.
type wavelengthLabel struct {
	Wavelength float64
	Point      colorimetry.Vec2
	Normal     colorimetry.Vec2
	TickEnd    colorimetry.Vec2
	TextPos    colorimetry.Vec2
	AlignLeft  bool
}

// Label offset scaling: the outward normal is normalised then divided by 25;
// the tick stops at 0.75 of it and the text sits at the full offset.
const (
	labelOffsetScale = 1.0 / 25.0
	labelTickFactor  = 0.75
)

// placeWavelengthLabel computes the outward annotation for a label
// wavelength. The local tangent is the vector from the label's own sample to
// the next table sample, clamped to the last sample at the table end; of the
// two 90 degree rotations, the normal pointing away from the equal-energy
// point is kept. The text aligns left when the normal points to the right so
// it never overlaps the curve.
//
// The second return is false when the wavelength is not an exact table
// sample: the label sets are hardcoded per diagram, so a miss is a
// configuration defect, not a runtime error.
func placeWavelengthLabel(l *spectralLocus, wl float64) (wavelengthLabel, bool) {
	point, ok := l.at(wl)
	if !ok {
		return wavelengthLabel{}, false
	}

	i := sort.SearchFloat64s(l.wavelengths, wl)
	index := i + 1
	left := l.wavelengths[index-1]
	right := l.wavelengths[len(l.wavelengths)-1]
	if index < len(l.wavelengths) {
		right = l.wavelengths[index]
	}

	d := l.byWL[right].Sub(l.byWL[left])
	direction := colorimetry.Vec2{X: -d.Y, Y: d.X}

	outward := point.Sub(colorimetry.EqualEnergy).Normalised()
	normal := direction
	if outward.Dot(direction.Normalised()) <= 0 {
		normal = colorimetry.Vec2{X: d.Y, Y: -d.X}
	}
	normal = normal.Normalised().Scale(labelOffsetScale)

	return wavelengthLabel{
		Wavelength: wl,
		Point:      point,
		Normal:     normal,
		TickEnd:    point.Add(normal.Scale(labelTickFactor)),
		TextPos:    point.Add(normal),
		AlignLeft:  normal.X >= 0,
	}, true
}

// contains reports whether a point lies inside the closed locus polygon,
// by even-odd ray crossing.
func (l *spectralLocus) contains(p colorimetry.Vec2) bool {
	inside := false
	n := len(l.points)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := l.points[i], l.points[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}
