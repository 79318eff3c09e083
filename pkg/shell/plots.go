package shell

import (
	"strconv"
	"strings"

	"github.com/spectraplot/spectraplot/pkg/chart"
	"github.com/spectraplot/spectraplot/pkg/dataset"
	"github.com/spectraplot/spectraplot/pkg/errors"
	"github.com/spectraplot/spectraplot/pkg/plotting"
)

// plotEntry binds a shell plot name to its renderer. Arguments after the plot
// name are joined and split on commas, so dataset names containing spaces
// work without quoting: /plot illuminants A, D65.
type plotEntry struct {
	name     string
	usage    string
	describe string
	run      func(args []string, opts ...chart.Option) error
}

var plotCatalog = []plotEntry{
	{
		name:     "visible-spectrum",
		describe: "The visible spectrum colours",
		run: func(args []string, opts ...chart.Option) error {
			return plotting.VisibleSpectrumPlot(dataset.CIE1931Observer, opts...)
		},
	},
	{
		name:     "cmfs",
		usage:    "[observer, ...]",
		describe: "Colour matching functions",
		run: func(args []string, opts ...chart.Option) error {
			return plotting.MultiCMFSPlot(splitNames(args), opts...)
		},
	},
	{
		name:     "illuminant",
		usage:    "<name>",
		describe: "A single illuminant relative SPD",
		run: func(args []string, opts ...chart.Option) error {
			name, err := requireName(args, "illuminant")
			if err != nil {
				return err
			}
			return plotting.SingleIlluminantRelativeSPDPlot(
				name, dataset.CIE1931Observer, opts...)
		},
	},
	{
		name:     "illuminants",
		usage:    "[name, ...]",
		describe: "Illuminant relative SPDs",
		run: func(args []string, opts ...chart.Option) error {
			return plotting.MultiIlluminantsRelativeSPDPlot(splitNames(args), opts...)
		},
	},
	{
		name:     "checker",
		usage:    "[name]",
		describe: "Colour checker swatches",
		run: func(args []string, opts ...chart.Option) error {
			name := strings.Join(args, " ")
			if name == "" {
				name = "ColorChecker 2005"
			}
			return plotting.ColourCheckerPlot(name, opts...)
		},
	},
	{
		name:     "diagram-1931",
		describe: "CIE 1931 chromaticity diagram",
		run: func(args []string, opts ...chart.Option) error {
			return plotting.CIE1931ChromaticityDiagramPlot(dataset.CIE1931Observer, opts...)
		},
	},
	{
		name:     "diagram-1960",
		describe: "CIE 1960 UCS chromaticity diagram",
		run: func(args []string, opts ...chart.Option) error {
			return plotting.CIE1960UCSChromaticityDiagramPlot(dataset.CIE1931Observer, opts...)
		},
	},
	{
		name:     "diagram-1976",
		describe: "CIE 1976 UCS chromaticity diagram",
		run: func(args []string, opts ...chart.Option) error {
			return plotting.CIE1976UCSChromaticityDiagramPlot(dataset.CIE1931Observer, opts...)
		},
	},
	{
		name:     "diagram-colours-1931",
		usage:    "[surface spacing]",
		describe: "CIE 1931 diagram colour sweep",
		run: func(args []string, opts ...chart.Option) error {
			surface, spacing, err := sweepArgs(args)
			if err != nil {
				return err
			}
			return plotting.CIE1931ChromaticityDiagramColoursPlot(
				surface, spacing, dataset.CIE1931Observer, opts...)
		},
	},
	{
		name:     "diagram-colours-1960",
		usage:    "[surface spacing]",
		describe: "CIE 1960 UCS diagram colour sweep",
		run: func(args []string, opts ...chart.Option) error {
			surface, spacing, err := sweepArgs(args)
			if err != nil {
				return err
			}
			return plotting.CIE1960UCSChromaticityDiagramColoursPlot(
				surface, spacing, dataset.CIE1931Observer, opts...)
		},
	},
	{
		name:     "diagram-colours-1976",
		usage:    "[surface spacing]",
		describe: "CIE 1976 UCS diagram colour sweep",
		run: func(args []string, opts ...chart.Option) error {
			surface, spacing, err := sweepArgs(args)
			if err != nil {
				return err
			}
			return plotting.CIE1976UCSChromaticityDiagramColoursPlot(
				surface, spacing, dataset.CIE1931Observer, opts...)
		},
	},
	{
		name:     "colourspaces",
		usage:    "[name, ...]",
		describe: "RGB colourspace gamuts in the CIE 1931 diagram",
		run: func(args []string, opts ...chart.Option) error {
			return plotting.ColourspacesCIE1931ChromaticityDiagramPlot(
				splitNames(args), dataset.CIE1931Observer, opts...)
		},
	},
	{
		name:     "planckian-1931",
		usage:    "[illuminant, ...]",
		describe: "Planckian locus in the CIE 1931 diagram",
		run: func(args []string, opts ...chart.Option) error {
			return plotting.PlanckianLocusCIE1931ChromaticityDiagramPlot(
				splitNames(args), opts...)
		},
	},
	{
		name:     "planckian-1960",
		usage:    "[illuminant, ...]",
		describe: "Planckian locus in the CIE 1960 UCS diagram",
		run: func(args []string, opts ...chart.Option) error {
			return plotting.PlanckianLocusCIE1960UCSChromaticityDiagramPlot(
				splitNames(args), opts...)
		},
	},
	{
		name:     "lightness",
		usage:    "[function, ...]",
		describe: "Lightness functions",
		run: func(args []string, opts ...chart.Option) error {
			return plotting.MultiLightnessFunctionPlot(splitNames(args), opts...)
		},
	},
	{
		name:     "munsell",
		usage:    "[function, ...]",
		describe: "Munsell value functions",
		run: func(args []string, opts ...chart.Option) error {
			return plotting.MultiMunsellValueFunctionPlot(splitNames(args), opts...)
		},
	},
	{
		name:     "transfer",
		usage:    "[--inverse] [colourspace, ...]",
		describe: "Colourspace transfer functions",
		run: func(args []string, opts ...chart.Option) error {
			inverse := false
			if len(args) > 0 && args[0] == "--inverse" {
				inverse = true
				args = args[1:]
			}
			return plotting.MultiTransferFunctionPlot(splitNames(args), inverse, opts...)
		},
	},
	{
		name:     "blackbody-colours",
		usage:    "[start end steps]",
		describe: "Blackbody colours over a temperature range",
		run: func(args []string, opts ...chart.Option) error {
			values, err := floatArgs(args, 3)
			if err != nil {
				return err
			}
			return plotting.BlackbodyColoursPlot(
				values[0], values[1], values[2], dataset.CIE1931Observer, opts...)
		},
	},
	{
		name:     "blackbody-radiance",
		usage:    "[temperature]",
		describe: "Blackbody spectral radiance",
		run: func(args []string, opts ...chart.Option) error {
			values, err := floatArgs(args, 1)
			if err != nil {
				return err
			}
			return plotting.BlackbodySpectralRadiancePlot(
				values[0], dataset.CIE1931Observer, "", opts...)
		},
	},
	{
		name:     "cri",
		usage:    "<illuminant>",
		describe: "Colour rendering index bars",
		run: func(args []string, opts ...chart.Option) error {
			name, err := requireName(args, "illuminant")
			if err != nil {
				return err
			}
			spd, err := dataset.IlluminantsRelativeSPDs.Get(name)
			if err != nil {
				return err
			}
			return plotting.ColourRenderingIndexBarsPlot(spd, opts...)
		},
	},
}

// lookupPlot finds a catalog entry by name.
func lookupPlot(name string) (*plotEntry, error) {
	for i := range plotCatalog {
		if plotCatalog[i].name == name {
			return &plotCatalog[i], nil
		}
	}
	return nil, errors.NotFound(errors.ErrCommandNotFound,
		"plots", name, plotNames())
}

func plotNames() []string {
	names := make([]string, len(plotCatalog))
	for i, entry := range plotCatalog {
		names[i] = entry.name
	}
	return names
}

// splitNames joins the raw arguments and splits them on commas, so names
// containing spaces survive word splitting. An empty argument list returns
// nil, which selects each plot's default names.
func splitNames(args []string) []string {
	joined := strings.TrimSpace(strings.Join(args, " "))
	if joined == "" {
		return nil
	}
	var names []string
	for _, part := range strings.Split(joined, ",") {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}

func requireName(args []string, what string) (string, error) {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return "", errors.New(errors.ErrCommandMissingArgs, errors.CategoryCommand,
			"missing "+what+" name")
	}
	return name, nil
}

// sweepArgs parses the optional surface and spacing arguments of the diagram
// colour sweeps. With no arguments both default to the reference values.
func sweepArgs(args []string) (surface, spacing float64, err error) {
	surface, spacing = 1.25, 0.00075
	if len(args) == 0 {
		return surface, spacing, nil
	}
	values, err := floatArgs(args, 2)
	if err != nil {
		return 0, 0, err
	}
	if values[0] != 0 {
		surface = values[0]
	}
	if values[1] != 0 {
		spacing = values[1]
	}
	return surface, spacing, nil
}

// floatArgs parses up to n numeric arguments, leaving missing ones zero.
func floatArgs(args []string, n int) ([]float64, error) {
	values := make([]float64, n)
	if len(args) > n {
		args = args[:n]
	}
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCommandInvalidSyntax,
				errors.CategoryCommand, "expected a numeric argument").
				WithContext("argument", arg)
		}
		values[i] = v
	}
	return values, nil
}
