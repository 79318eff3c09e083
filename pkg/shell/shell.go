// Package shell provides the interactive REPL for spectraplot.
package shell

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chzyer/readline"

	"github.com/spectraplot/spectraplot/pkg/chart"
	"github.com/spectraplot/spectraplot/pkg/config"
	"github.com/spectraplot/spectraplot/pkg/dataset"
	"github.com/spectraplot/spectraplot/pkg/errors"
)

// Shell is the interactive command-line interface.
type Shell struct {
	cfg      *config.Config
	rl       *readline.Instance
	prompter Prompter
	out      io.Writer
}

// New creates a new interactive shell.
func New(cfg *config.Config) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[32mspectraplot>\033[0m ",
		HistoryFile:     cfg.Shell.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    NewShellCompleter(),
	})
	if err != nil {
		return nil, err
	}

	return &Shell{
		cfg:      cfg,
		rl:       rl,
		prompter: NewInteractivePrompter(),
		out:      os.Stdout,
	}, nil
}

// Run starts the interactive loop.
func (s *Shell) Run(ctx context.Context) error {
	defer s.rl.Close()

	fmt.Fprintln(s.out, "Commands: /plots, /plot, /save, /datasets, /help, /quit")
	fmt.Fprintln(s.out)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			if err == io.EOF {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if err := s.handleCommand(line); err != nil {
			if err == errQuit {
				return nil
			}
			errors.DefaultFormatter().Print(err)
		}
	}
}

var errQuit = fmt.Errorf("quit")

func (s *Shell) handleCommand(line string) error {
	parts := strings.Fields(line)
	cmd := parts[0]

	switch cmd {
	case "/quit", "/exit", "/q":
		return errQuit

	case "/help", "/h":
		s.printHelp()

	case "/plots":
		s.printPlots()

	case "/plot":
		return s.handlePlot(parts[1:])

	case "/save":
		return s.handleSave(parts[1:])

	case "/datasets":
		return s.printDatasets(parts[1:])

	default:
		return errors.New(errors.ErrCommandNotFound, errors.CategoryCommand,
			"unknown command").WithContext("command", cmd)
	}

	return nil
}

// chartOptions are the chart options derived from the configuration, plus the
// output destination for the rendered figure. An empty filename opens the
// interactive viewer.
func chartOptions(cfg *config.Config, filename string) []chart.Option {
	return []chart.Option{
		chart.WithFigureSize(cfg.Figure.Width, cfg.Figure.Height),
		chart.WithDPI(cfg.Figure.DPI),
		chart.WithResourcesDir(cfg.Resources.Dir),
		chart.WithFilename(filename),
	}
}

func (s *Shell) plotOptions(filename string) []chart.Option {
	return chartOptions(s.cfg, filename)
}

// RunOnce renders a single catalog plot without starting the shell. With list
// set it prints the plot catalog instead.
func RunOnce(cfg *config.Config, output string, list bool, args []string) error {
	if list {
		s := &Shell{cfg: cfg, out: os.Stdout}
		s.printPlots()
		return nil
	}

	entry, err := lookupPlot(args[0])
	if err != nil {
		return err
	}

	filename := output
	if filename == "" && !cfg.Output.Viewer {
		filename = filepath.Join(cfg.Output.Directory, args[0]+"."+cfg.Output.Format)
	}

	if err := entry.run(args[1:], chartOptions(cfg, filename)...); err != nil {
		return err
	}
	if filename != "" {
		fmt.Printf("Wrote %s\n", filename)
	}
	return nil
}

// handlePlot renders a catalog plot, either into the interactive viewer or
// into the configured output directory.
func (s *Shell) handlePlot(args []string) error {
	if len(args) < 1 {
		return errors.New(errors.ErrCommandMissingArgs, errors.CategoryCommand,
			"usage: /plot <name> [args]")
	}

	entry, err := lookupPlot(args[0])
	if err != nil {
		return err
	}

	filename := ""
	if !s.cfg.Output.Viewer {
		filename = filepath.Join(s.cfg.Output.Directory,
			args[0]+"."+s.cfg.Output.Format)
	}

	if err := entry.run(args[1:], s.plotOptions(filename)...); err != nil {
		return err
	}
	if filename != "" {
		fmt.Fprintf(s.out, "Wrote %s\n", filename)
	}
	return nil
}

// handleSave renders a catalog plot to an explicit path, confirming before
// overwriting an existing file.
func (s *Shell) handleSave(args []string) error {
	if len(args) < 2 {
		return errors.New(errors.ErrCommandMissingArgs, errors.CategoryCommand,
			"usage: /save <name> <path> [args]")
	}

	entry, err := lookupPlot(args[0])
	if err != nil {
		return err
	}
	path := args[1]

	if _, err := os.Stat(path); err == nil {
		ok, err := s.prompter.Confirm(fmt.Sprintf("Overwrite %s?", path))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(s.out, "Cancelled.")
			return nil
		}
	}

	if err := entry.run(args[2:], s.plotOptions(path)...); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Wrote %s\n", path)
	return nil
}

// datasetKinds maps the /datasets argument to a name lister.
var datasetKinds = map[string]func() []string{
	"cmfs":         func() []string { return dataset.CMFS.Names() },
	"illuminants":  func() []string { return dataset.IlluminantsRelativeSPDs.Names() },
	"colourspaces": func() []string { return dataset.Colourspaces.Names() },
	"checkers":     func() []string { return dataset.ColourCheckers.Names() },
	"lightness":    func() []string { return dataset.LightnessFunctions.Names() },
	"munsell":      func() []string { return dataset.MunsellValueFunctions.Names() },
}

func (s *Shell) printDatasets(args []string) error {
	if len(args) == 0 {
		for _, kind := range datasetKindNames() {
			s.printDatasetKind(kind)
		}
		return nil
	}

	if _, ok := datasetKinds[args[0]]; !ok {
		return errors.NotFound(errors.ErrCommandInvalidSyntax,
			"dataset kinds", args[0], datasetKindNames())
	}
	s.printDatasetKind(args[0])
	return nil
}

func (s *Shell) printDatasetKind(kind string) {
	names := datasetKinds[kind]()
	sort.Strings(names)
	fmt.Fprintf(s.out, "%s:\n", kind)
	for _, name := range names {
		fmt.Fprintf(s.out, "  %s\n", name)
	}
}

func (s *Shell) printPlots() {
	fmt.Fprintln(s.out, "Plots:")
	for _, entry := range plotCatalog {
		usage := entry.name
		if entry.usage != "" {
			usage += " " + entry.usage
		}
		fmt.Fprintf(s.out, "  %-28s %s\n", usage, entry.describe)
	}
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, "Commands:")
	fmt.Fprintln(s.out, "  /plots                - List available plots")
	fmt.Fprintln(s.out, "  /plot <name> [args]   - Render a plot")
	fmt.Fprintln(s.out, "  /save <name> <path>   - Render a plot to a file")
	fmt.Fprintln(s.out, "  /datasets [kind]      - List factory datasets")
	fmt.Fprintln(s.out, "  /quit                 - Exit")
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Tip: Use Tab to autocomplete /commands and plot names")
}
