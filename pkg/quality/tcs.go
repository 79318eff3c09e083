package quality

import "github.com/spectraplot/spectraplot/pkg/colorimetry"

// Test colour sample reflectance spectra for the colour rendering index,
// sampled every 10 nm on 380..780 nm. The eight samples are moderately
// saturated Munsell chips spanning the hue circle.
var tcsNames = [8]string{
	"TCS01 7.5 R 6/4",
	"TCS02 5 Y 6/4",
	"TCS03 5 GY 6/8",
	"TCS04 2.5 G 6/6",
	"TCS05 10 BG 6/4",
	"TCS06 5 PB 6/8",
	"TCS07 2.5 P 6/8",
	"TCS08 10 P 6/8",
}

var tcsReflectances = [8][41]float64{
	// TCS01: light greyish red.
	{
		0.219, 0.252, 0.256, 0.252, 0.244, 0.237, 0.230, 0.225, 0.220, 0.216,
		0.214, 0.216, 0.223, 0.226, 0.225, 0.227, 0.236, 0.253, 0.272, 0.298,
		0.341, 0.390, 0.424, 0.442, 0.450, 0.451, 0.451, 0.451, 0.451, 0.451,
		0.450, 0.450, 0.451, 0.451, 0.453, 0.454, 0.455, 0.457, 0.458, 0.460,
		0.462,
	},
	// TCS02: dark greyish yellow.
	{
		0.070, 0.079, 0.089, 0.101, 0.111, 0.116, 0.118, 0.120, 0.121, 0.122,
		0.122, 0.122, 0.123, 0.127, 0.138, 0.164, 0.207, 0.264, 0.329, 0.394,
		0.452, 0.500, 0.538, 0.567, 0.583, 0.593, 0.600, 0.604, 0.607, 0.608,
		0.609, 0.610, 0.610, 0.611, 0.611, 0.612, 0.612, 0.612, 0.612, 0.612,
		0.612,
	},
	// TCS03: strong yellow green.
	{
		0.065, 0.068, 0.070, 0.072, 0.073, 0.073, 0.074, 0.077, 0.085, 0.109,
		0.148, 0.198, 0.287, 0.384, 0.434, 0.442, 0.431, 0.405, 0.365, 0.326,
		0.293, 0.269, 0.256, 0.250, 0.254, 0.264, 0.272, 0.278, 0.284, 0.292,
		0.300, 0.310, 0.320, 0.330, 0.343, 0.359, 0.377, 0.394, 0.410, 0.426,
		0.441,
	},
	// TCS04: moderate yellowish green.
	{
		0.074, 0.083, 0.093, 0.105, 0.116, 0.121, 0.124, 0.126, 0.128, 0.131,
		0.135, 0.144, 0.161, 0.209, 0.268, 0.312, 0.330, 0.333, 0.317, 0.288,
		0.252, 0.217, 0.189, 0.167, 0.152, 0.144, 0.142, 0.141, 0.141, 0.141,
		0.143, 0.147, 0.152, 0.154, 0.157, 0.159, 0.164, 0.170, 0.176, 0.183,
		0.190,
	},
	// TCS05: light bluish green.
	{
		0.295, 0.306, 0.310, 0.312, 0.313, 0.315, 0.319, 0.322, 0.326, 0.330,
		0.334, 0.339, 0.346, 0.352, 0.360, 0.369, 0.381, 0.394, 0.403, 0.410,
		0.415, 0.418, 0.419, 0.417, 0.413, 0.409, 0.403, 0.396, 0.389, 0.381,
		0.372, 0.363, 0.353, 0.342, 0.331, 0.320, 0.308, 0.296, 0.284, 0.271,
		0.260,
	},
	// TCS06: light blue.
	{
		0.151, 0.203, 0.265, 0.339, 0.410, 0.464, 0.492, 0.508, 0.517, 0.524,
		0.531, 0.538, 0.544, 0.551, 0.556, 0.556, 0.554, 0.549, 0.541, 0.531,
		0.519, 0.504, 0.488, 0.469, 0.450, 0.431, 0.414, 0.395, 0.377, 0.358,
		0.341, 0.325, 0.309, 0.293, 0.279, 0.265, 0.253, 0.241, 0.229, 0.220,
		0.216,
	},
	// TCS07: light violet.
	{
		0.378, 0.459, 0.524, 0.546, 0.551, 0.555, 0.559, 0.560, 0.561, 0.558,
		0.556, 0.551, 0.544, 0.535, 0.522, 0.506, 0.488, 0.469, 0.448, 0.429,
		0.408, 0.385, 0.363, 0.341, 0.324, 0.311, 0.301, 0.291, 0.283, 0.273,
		0.265, 0.260, 0.257, 0.257, 0.259, 0.260, 0.260, 0.258, 0.256, 0.254,
		0.252,
	},
	// TCS08: light reddish purple.
	{
		0.104, 0.129, 0.170, 0.240, 0.319, 0.416, 0.462, 0.482, 0.490, 0.488,
		0.482, 0.473, 0.462, 0.450, 0.439, 0.426, 0.413, 0.397, 0.382, 0.366,
		0.352, 0.337, 0.325, 0.310, 0.299, 0.289, 0.283, 0.276, 0.270, 0.262,
		0.256, 0.251, 0.250, 0.251, 0.254, 0.258, 0.264, 0.274, 0.284, 0.295,
		0.316,
	},
}

// TestColourSamples returns the eight CRI test colour sample reflectance
// spectra.
func TestColourSamples() []*colorimetry.SPD {
	out := make([]*colorimetry.SPD, len(tcsReflectances))
	for i, refl := range tcsReflectances {
		data := make(map[float64]float64, len(refl))
		for j, v := range refl {
			data[380+float64(j)*10] = v
		}
		out[i] = colorimetry.NewSPD(tcsNames[i], data)
	}
	return out
}
