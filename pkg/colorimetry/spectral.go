package colorimetry

import (
	"math"
	"sort"
)

// SPD is a spectral power distribution: power sampled against wavelength in
// nanometres. Wavelengths are kept sorted ascending.
type SPD struct {
	Name string

	wavelengths []float64
	values      map[float64]float64
}

// NewSPD creates a spectral power distribution from a wavelength to power
// mapping.
func NewSPD(name string, data map[float64]float64) *SPD {
	s := &SPD{
		Name:        name,
		wavelengths: make([]float64, 0, len(data)),
		values:      make(map[float64]float64, len(data)),
	}
	for wl, v := range data {
		s.wavelengths = append(s.wavelengths, wl)
		s.values[wl] = v
	}
	sort.Float64s(s.wavelengths)
	return s
}

// Wavelengths returns the sampled wavelengths in ascending order.
// The returned slice is shared; callers must not modify it.
func (s *SPD) Wavelengths() []float64 {
	return s.wavelengths
}

// Value returns the power at the given wavelength, interpolating linearly
// between samples. Wavelengths outside the sampled range return 0.
func (s *SPD) Value(wl float64) float64 {
	if len(s.wavelengths) == 0 {
		return 0
	}
	if v, ok := s.values[wl]; ok {
		return v
	}
	first, last := s.wavelengths[0], s.wavelengths[len(s.wavelengths)-1]
	if wl < first || wl > last {
		return 0
	}
	i := sort.SearchFloat64s(s.wavelengths, wl)
	lo, hi := s.wavelengths[i-1], s.wavelengths[i]
	t := (wl - lo) / (hi - lo)
	return s.values[lo] + t*(s.values[hi]-s.values[lo])
}

// Shape returns the start and end wavelengths and the smallest sampling step.
func (s *SPD) Shape() (start, end, steps float64) {
	if len(s.wavelengths) == 0 {
		return 0, 0, 0
	}
	start = s.wavelengths[0]
	end = s.wavelengths[len(s.wavelengths)-1]
	steps = math.Inf(1)
	for i := 1; i < len(s.wavelengths); i++ {
		if d := s.wavelengths[i] - s.wavelengths[i-1]; d < steps {
			steps = d
		}
	}
	if math.IsInf(steps, 1) {
		steps = 0
	}
	return start, end, steps
}

// Clone returns an independent copy of the distribution.
func (s *SPD) Clone() *SPD {
	c := &SPD{
		Name:        s.Name,
		wavelengths: append([]float64(nil), s.wavelengths...),
		values:      make(map[float64]float64, len(s.values)),
	}
	for wl, v := range s.values {
		c.values[wl] = v
	}
	return c
}

// Interpolate resamples the distribution linearly on the given range and step
// and returns the resampled distribution.
func (s *SPD) Interpolate(start, end, steps float64) *SPD {
	data := make(map[float64]float64)
	for wl := start; wl <= end+steps/2; wl += steps {
		data[wl] = s.Value(wl)
	}
	return NewSPD(s.Name, data)
}

// CMFS is a set of colour matching functions: per-wavelength XYZ tristimulus
// weights for a standard observer. Wavelengths are kept sorted ascending.
type CMFS struct {
	Name   string
	Labels [3]string

	wavelengths []float64
	values      map[float64]XYZ
}

// NewCMFS creates a colour matching functions set from a wavelength to XYZ
// mapping.
func NewCMFS(name string, labels [3]string, data map[float64]XYZ) *CMFS {
	c := &CMFS{
		Name:        name,
		Labels:      labels,
		wavelengths: make([]float64, 0, len(data)),
		values:      make(map[float64]XYZ, len(data)),
	}
	for wl, v := range data {
		c.wavelengths = append(c.wavelengths, wl)
		c.values[wl] = v
	}
	sort.Float64s(c.wavelengths)
	return c
}

// Wavelengths returns the sampled wavelengths in ascending order.
// The returned slice is shared; callers must not modify it.
func (c *CMFS) Wavelengths() []float64 {
	return c.wavelengths
}

// ValueAt returns the tristimulus weights for an exactly sampled wavelength.
// The second return reports whether the wavelength is present in the table.
func (c *CMFS) ValueAt(wl float64) (XYZ, bool) {
	v, ok := c.values[wl]
	return v, ok
}

// Shape returns the start and end wavelengths and the smallest sampling step.
func (c *CMFS) Shape() (start, end, steps float64) {
	if len(c.wavelengths) == 0 {
		return 0, 0, 0
	}
	start = c.wavelengths[0]
	end = c.wavelengths[len(c.wavelengths)-1]
	steps = math.Inf(1)
	for i := 1; i < len(c.wavelengths); i++ {
		if d := c.wavelengths[i] - c.wavelengths[i-1]; d < steps {
			steps = d
		}
	}
	if math.IsInf(steps, 1) {
		steps = 0
	}
	return start, end, steps
}

// Axis returns the per-wavelength weights of a single matching function,
// 0 for x, 1 for y, 2 for z, in wavelength order.
func (c *CMFS) Axis(i int) []float64 {
	out := make([]float64, len(c.wavelengths))
	for j, wl := range c.wavelengths {
		out[j] = c.values[wl][i]
	}
	return out
}

// WavelengthToXYZ returns the tristimulus weights at the given wavelength,
// interpolating linearly between table samples. Wavelengths outside the table
// range are clamped to the nearest sample.
func WavelengthToXYZ(wl float64, cmfs *CMFS) XYZ {
	wls := cmfs.wavelengths
	if len(wls) == 0 {
		return XYZ{}
	}
	if v, ok := cmfs.values[wl]; ok {
		return v
	}
	if wl <= wls[0] {
		return cmfs.values[wls[0]]
	}
	if wl >= wls[len(wls)-1] {
		return cmfs.values[wls[len(wls)-1]]
	}
	i := sort.SearchFloat64s(wls, wl)
	lo, hi := wls[i-1], wls[i]
	t := (wl - lo) / (hi - lo)
	a, b := cmfs.values[lo], cmfs.values[hi]
	return XYZ{
		a[0] + t*(b[0]-a[0]),
		a[1] + t*(b[1]-a[1]),
		a[2] + t*(b[2]-a[2]),
	}
}

// SpectralToXYZ integrates a spectral power distribution against the colour
// matching functions, optionally weighted by an illuminant, and returns XYZ
// tristimulus values normalised so a perfect reflector under the illuminant
// has Y = 100.
func SpectralToXYZ(spd *SPD, cmfs *CMFS, illuminant *SPD) XYZ {
	var out XYZ
	var norm float64

	for _, wl := range cmfs.wavelengths {
		w := cmfs.values[wl]
		i := 1.0
		if illuminant != nil {
			i = illuminant.Value(wl)
		}
		v := spd.Value(wl)
		out[0] += v * i * w[0]
		out[1] += v * i * w[1]
		out[2] += v * i * w[2]
		norm += i * w[1]
	}

	if norm == 0 {
		return XYZ{}
	}
	k := 100 / norm
	return XYZ{out[0] * k, out[1] * k, out[2] * k}
}
