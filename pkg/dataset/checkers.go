package dataset

import (
	"github.com/spectraplot/spectraplot/pkg/colorimetry"
	"github.com/spectraplot/spectraplot/pkg/errors"
)

// ColourCheckerPatch is a single colour rendition chart patch, given as xyY
// under the checker's reference illuminant.
type ColourCheckerPatch struct {
	Index int
	Label string
	XY    colorimetry.Vec2
	Y     float64
}

// ColourChecker is a colour rendition chart: an ordered set of patches and
// the chromaticity of the illuminant the data is referenced to.
type ColourChecker struct {
	Name       string
	Patches    []ColourCheckerPatch
	Illuminant colorimetry.Vec2
}

// ColourCheckers is the registry of factory colour rendition charts.
var ColourCheckers = NewRegistry[*ColourChecker](
	errors.ErrColourCheckerNotFound, "colour checkers")

var colorChecker2005 = []ColourCheckerPatch{
	{1, "dark skin", colorimetry.Vec2{X: 0.4316, Y: 0.3777}, 0.1008},
	{2, "light skin", colorimetry.Vec2{X: 0.4197, Y: 0.3744}, 0.3495},
	{3, "blue sky", colorimetry.Vec2{X: 0.2760, Y: 0.3016}, 0.1836},
	{4, "foliage", colorimetry.Vec2{X: 0.3703, Y: 0.4499}, 0.1325},
	{5, "blue flower", colorimetry.Vec2{X: 0.2999, Y: 0.2856}, 0.2304},
	{6, "bluish green", colorimetry.Vec2{X: 0.2848, Y: 0.3911}, 0.4178},
	{7, "orange", colorimetry.Vec2{X: 0.5295, Y: 0.4055}, 0.3118},
	{8, "purplish blue", colorimetry.Vec2{X: 0.2305, Y: 0.2106}, 0.1126},
	{9, "moderate red", colorimetry.Vec2{X: 0.5012, Y: 0.3273}, 0.1938},
	{10, "purple", colorimetry.Vec2{X: 0.3319, Y: 0.2482}, 0.0637},
	{11, "yellow green", colorimetry.Vec2{X: 0.3984, Y: 0.5008}, 0.4446},
	{12, "orange yellow", colorimetry.Vec2{X: 0.4957, Y: 0.4427}, 0.4357},
	{13, "blue", colorimetry.Vec2{X: 0.2018, Y: 0.1692}, 0.0575},
	{14, "green", colorimetry.Vec2{X: 0.3253, Y: 0.5032}, 0.2318},
	{15, "red", colorimetry.Vec2{X: 0.5686, Y: 0.3303}, 0.1257},
	{16, "yellow", colorimetry.Vec2{X: 0.4697, Y: 0.4734}, 0.5981},
	{17, "magenta", colorimetry.Vec2{X: 0.4159, Y: 0.2688}, 0.2009},
	{18, "cyan", colorimetry.Vec2{X: 0.2131, Y: 0.3023}, 0.1930},
	{19, "white 9.5 (.05 D)", colorimetry.Vec2{X: 0.3469, Y: 0.3608}, 0.9131},
	{20, "neutral 8 (.23 D)", colorimetry.Vec2{X: 0.3440, Y: 0.3584}, 0.5894},
	{21, "neutral 6.5 (.44 D)", colorimetry.Vec2{X: 0.3432, Y: 0.3581}, 0.3632},
	{22, "neutral 5 (.70 D)", colorimetry.Vec2{X: 0.3446, Y: 0.3579}, 0.1915},
	{23, "neutral 3.5 (1.05 D)", colorimetry.Vec2{X: 0.3401, Y: 0.3548}, 0.0883},
	{24, "black 2 (1.5 D)", colorimetry.Vec2{X: 0.3406, Y: 0.3537}, 0.0311},
}

var babelColorAverage = []ColourCheckerPatch{
	{1, "dark skin", colorimetry.Vec2{X: 0.4325, Y: 0.3788}, 0.1034},
	{2, "light skin", colorimetry.Vec2{X: 0.4191, Y: 0.3748}, 0.3525},
	{3, "blue sky", colorimetry.Vec2{X: 0.2761, Y: 0.3004}, 0.1886},
	{4, "foliage", colorimetry.Vec2{X: 0.3700, Y: 0.4501}, 0.1329},
	{5, "blue flower", colorimetry.Vec2{X: 0.3020, Y: 0.2877}, 0.2356},
	{6, "bluish green", colorimetry.Vec2{X: 0.2856, Y: 0.3910}, 0.4182},
	{7, "orange", colorimetry.Vec2{X: 0.5291, Y: 0.4075}, 0.3143},
	{8, "purplish blue", colorimetry.Vec2{X: 0.2339, Y: 0.2155}, 0.1149},
	{9, "moderate red", colorimetry.Vec2{X: 0.5008, Y: 0.3293}, 0.1986},
	{10, "purple", colorimetry.Vec2{X: 0.3326, Y: 0.2556}, 0.0666},
	{11, "yellow green", colorimetry.Vec2{X: 0.3989, Y: 0.4998}, 0.4439},
	{12, "orange yellow", colorimetry.Vec2{X: 0.4962, Y: 0.4428}, 0.4393},
	{13, "blue", colorimetry.Vec2{X: 0.2040, Y: 0.1696}, 0.0579},
	{14, "green", colorimetry.Vec2{X: 0.3270, Y: 0.5033}, 0.2307},
	{15, "red", colorimetry.Vec2{X: 0.5709, Y: 0.3298}, 0.1246},
	{16, "yellow", colorimetry.Vec2{X: 0.4694, Y: 0.4732}, 0.5977},
	{17, "magenta", colorimetry.Vec2{X: 0.4177, Y: 0.2704}, 0.2001},
	{18, "cyan", colorimetry.Vec2{X: 0.2151, Y: 0.3037}, 0.1918},
	{19, "white 9.5 (.05 D)", colorimetry.Vec2{X: 0.3488, Y: 0.3628}, 0.9129},
	{20, "neutral 8 (.23 D)", colorimetry.Vec2{X: 0.3451, Y: 0.3596}, 0.5885},
	{21, "neutral 6.5 (.44 D)", colorimetry.Vec2{X: 0.3446, Y: 0.3590}, 0.3595},
	{22, "neutral 5 (.70 D)", colorimetry.Vec2{X: 0.3438, Y: 0.3589}, 0.1912},
	{23, "neutral 3.5 (1.05 D)", colorimetry.Vec2{X: 0.3423, Y: 0.3576}, 0.0893},
	{24, "black 2 (1.5 D)", colorimetry.Vec2{X: 0.3439, Y: 0.3565}, 0.0320},
}

func init() {
	c := illuminants1931["C"]
	ColourCheckers.Register("ColorChecker 2005", &ColourChecker{
		Name:       "ColorChecker 2005",
		Patches:    colorChecker2005,
		Illuminant: c,
	})
	ColourCheckers.Register("BabelColor Average", &ColourChecker{
		Name:       "BabelColor Average",
		Patches:    babelColorAverage,
		Illuminant: c,
	})
}
