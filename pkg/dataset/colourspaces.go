package dataset

import (
	"math"

	"github.com/spectraplot/spectraplot/pkg/colorimetry"
	"github.com/spectraplot/spectraplot/pkg/errors"
)

// TransferFunction encodes a linear value for display, or decodes it back
// when used as an inverse.
type TransferFunction func(float64) float64

// RGBColourspace describes an RGB colourspace by its primaries, whitepoint,
// and opto-electronic transfer functions.
type RGBColourspace struct {
	Name                    string
	Primaries               [3]colorimetry.Vec2
	Whitepoint              colorimetry.Vec2
	TransferFunction        TransferFunction
	InverseTransferFunction TransferFunction
}

// Colourspaces is the registry of factory RGB colourspaces.
var Colourspaces = NewRegistry[*RGBColourspace](
	errors.ErrColourspaceNotFound, "colourspaces")

// PointerGamutName selects the Pointer gamut overlay instead of an RGB
// colourspace in the chromaticity diagram plots.
const PointerGamutName = "Pointer Gamut"

// PointerGamut is the boundary of the gamut of real surface colours
// (Pointer 1980), as xy chromaticity coordinates.
var PointerGamut = []colorimetry.Vec2{
	{X: 0.659, Y: 0.316}, {X: 0.634, Y: 0.351}, {X: 0.594, Y: 0.391},
	{X: 0.557, Y: 0.427}, {X: 0.523, Y: 0.462}, {X: 0.482, Y: 0.491},
	{X: 0.444, Y: 0.515}, {X: 0.409, Y: 0.546}, {X: 0.371, Y: 0.558},
	{X: 0.332, Y: 0.573}, {X: 0.288, Y: 0.584}, {X: 0.242, Y: 0.576},
	{X: 0.202, Y: 0.530}, {X: 0.177, Y: 0.454}, {X: 0.151, Y: 0.389},
	{X: 0.151, Y: 0.330}, {X: 0.162, Y: 0.295}, {X: 0.157, Y: 0.266},
	{X: 0.159, Y: 0.245}, {X: 0.142, Y: 0.214}, {X: 0.141, Y: 0.195},
	{X: 0.129, Y: 0.168}, {X: 0.138, Y: 0.141}, {X: 0.145, Y: 0.129},
	{X: 0.145, Y: 0.106}, {X: 0.161, Y: 0.094}, {X: 0.188, Y: 0.084},
	{X: 0.252, Y: 0.104}, {X: 0.324, Y: 0.127}, {X: 0.393, Y: 0.165},
	{X: 0.451, Y: 0.199}, {X: 0.508, Y: 0.226},
}

func srgbEncode(v float64) float64 {
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

func srgbDecode(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func rec709Encode(v float64) float64 {
	if v < 0.018 {
		return 4.5 * v
	}
	return 1.099*math.Pow(v, 0.45) - 0.099
}

func rec709Decode(v float64) float64 {
	if v < 0.081 {
		return v / 4.5
	}
	return math.Pow((v+0.099)/1.099, 1/0.45)
}

func gammaEncode(gamma float64) TransferFunction {
	return func(v float64) float64 {
		if v < 0 {
			return 0
		}
		return math.Pow(v, 1/gamma)
	}
}

func gammaDecode(gamma float64) TransferFunction {
	return func(v float64) float64 {
		if v < 0 {
			return 0
		}
		return math.Pow(v, gamma)
	}
}

func prophotoEncode(v float64) float64 {
	if v < 0.001953125 {
		return 16 * v
	}
	return math.Pow(v, 1/1.8)
}

func prophotoDecode(v float64) float64 {
	if v < 0.03125 {
		return v / 16
	}
	return math.Pow(v, 1.8)
}

func linear(v float64) float64 { return v }

func init() {
	d65 := illuminants1931["D65"]
	d50 := illuminants1931["D50"]

	Colourspaces.Register("sRGB", &RGBColourspace{
		Name: "sRGB",
		Primaries: [3]colorimetry.Vec2{
			{X: 0.6400, Y: 0.3300},
			{X: 0.3000, Y: 0.6000},
			{X: 0.1500, Y: 0.0600},
		},
		Whitepoint:              d65,
		TransferFunction:        srgbEncode,
		InverseTransferFunction: srgbDecode,
	})

	Colourspaces.Register("Rec. 709", &RGBColourspace{
		Name: "Rec. 709",
		Primaries: [3]colorimetry.Vec2{
			{X: 0.6400, Y: 0.3300},
			{X: 0.3000, Y: 0.6000},
			{X: 0.1500, Y: 0.0600},
		},
		Whitepoint:              d65,
		TransferFunction:        rec709Encode,
		InverseTransferFunction: rec709Decode,
	})

	Colourspaces.Register("Adobe RGB 1998", &RGBColourspace{
		Name: "Adobe RGB 1998",
		Primaries: [3]colorimetry.Vec2{
			{X: 0.6400, Y: 0.3300},
			{X: 0.2100, Y: 0.7100},
			{X: 0.1500, Y: 0.0600},
		},
		Whitepoint:              d65,
		TransferFunction:        gammaEncode(563.0 / 256.0),
		InverseTransferFunction: gammaDecode(563.0 / 256.0),
	})

	Colourspaces.Register("ACES RGB", &RGBColourspace{
		Name: "ACES RGB",
		Primaries: [3]colorimetry.Vec2{
			{X: 0.73470, Y: 0.26530},
			{X: 0.00000, Y: 1.00000},
			{X: 0.00010, Y: -0.07700},
		},
		Whitepoint:              colorimetry.Vec2{X: 0.32168, Y: 0.33767},
		TransferFunction:        linear,
		InverseTransferFunction: linear,
	})

	Colourspaces.Register("ProPhoto RGB", &RGBColourspace{
		Name: "ProPhoto RGB",
		Primaries: [3]colorimetry.Vec2{
			{X: 0.7347, Y: 0.2653},
			{X: 0.1596, Y: 0.8404},
			{X: 0.0366, Y: 0.0001},
		},
		Whitepoint:              d50,
		TransferFunction:        prophotoEncode,
		InverseTransferFunction: prophotoDecode,
	})
}
