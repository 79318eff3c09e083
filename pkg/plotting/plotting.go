// Package plotting renders colour science datasets as 2D charts: spectral
// power distributions, chromaticity diagrams, colour swatches and checkers,
// perceptual function curves, blackbody colours, and colour rendering index
// bars.
//
// Every plot function follows the same shape: resolve named datasets, build
// the chart geometry, merge its per-plot default settings with the caller's
// options, then fix the bounding box, decorate, and display. Dataset lookups
// fail fast with an error listing the valid names; no drawing happens after
// a failed lookup unless the lookup occurs mid-draw, in which case the
// partially assembled figure is discarded with the error.
package plotting

import (
	"image/color"
	"strings"

	"github.com/spectraplot/spectraplot/pkg/chart"
	"github.com/spectraplot/spectraplot/pkg/colorimetry"
	"github.com/spectraplot/spectraplot/pkg/dataset"
)

// finish runs the common tail of every plot function.
func finish(f *chart.Figure) error {
	chart.ApplyBoundingBox(f)
	chart.ApplyAspect(f)
	return chart.Display(f)
}

// rgba converts a clamped RGB triple to a drawing colour.
func rgba(rgb colorimetry.RGB) color.RGBA {
	c := colorimetry.ClampRGB(rgb)
	return color.RGBA{
		R: uint8(c[0]*255 + 0.5),
		G: uint8(c[1]*255 + 0.5),
		B: uint8(c[2]*255 + 0.5),
		A: 255,
	}
}

// normaliseAll scales a set of RGB triples by their global maximum so the
// brightest component lands at 1, then clamps.
func normaliseAll(colours []colorimetry.RGB) []colorimetry.RGB {
	max := 0.0
	for _, c := range colours {
		for _, v := range c {
			if v > max {
				max = v
			}
		}
	}
	out := make([]colorimetry.RGB, len(colours))
	for i, c := range colours {
		if max > 0 {
			c = colorimetry.RGB{c[0] / max, c[1] / max, c[2] / max}
		}
		out[i] = colorimetry.ClampRGB(c)
	}
	return out
}

// titleCase uppercases the first letter of every word, for colour checker
// patch captions.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// observer resolves a colour matching functions name.
func observer(name string) (*colorimetry.CMFS, error) {
	return dataset.CMFS.Get(name)
}
