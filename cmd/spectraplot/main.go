// Spectraplot - Colour Science Plotting
//
// Spectraplot renders colour science figures: spectral power distributions,
// colour matching functions, chromaticity diagrams, the Planckian locus,
// colour checkers, and colour rendering index bars.
//
// Usage:
//
//	spectraplot                          Start the interactive shell
//	spectraplot <plot> [args]            Render a single plot and exit
//	spectraplot -list                    List available plots
//	spectraplot -o out.png <plot>        Render to an explicit path
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spectraplot/spectraplot/pkg/config"
	"github.com/spectraplot/spectraplot/pkg/errors"
	"github.com/spectraplot/spectraplot/pkg/shell"
)

const version = "1.0.0"

func main() {
	configPath := flag.String("config", "", "Config file path (default: ~/.config/spectraplot/config.yaml)")
	initConfig := flag.Bool("init", false, "Initialize default config file")
	showVersion := flag.Bool("version", false, "Show version and exit")
	listPlots := flag.Bool("list", false, "List available plots and exit")
	output := flag.String("o", "", "Output path for a single plot")
	flag.Parse()

	if *showVersion {
		fmt.Printf("spectraplot %s\n", version)
		os.Exit(0)
	}

	// Determine config path
	cfgPath := *configPath
	if cfgPath == "" {
		cfgPath = config.DefaultConfigPath()
	}

	// Initialize config if requested
	if *initConfig {
		if err := config.InitConfig(cfgPath); err != nil {
			errors.DefaultFormatter().Print(err)
			os.Exit(1)
		}
		fmt.Printf("Config initialized at: %s\n", cfgPath)
		fmt.Println("Edit this file to configure figure size, output, and resources.")
		os.Exit(0)
	}

	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		errors.DefaultFormatter().Print(err)
		os.Exit(1)
	}

	// Non-interactive mode: render the named plot and exit.
	if *listPlots || flag.NArg() > 0 {
		if err := shell.RunOnce(cfg, *output, *listPlots, flag.Args()); err != nil {
			errors.DefaultFormatter().Print(err)
			os.Exit(1)
		}
		return
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nShutting down...")
		cancel()
	}()

	fmt.Printf("spectraplot %s\n", version)
	if _, err := os.Stat(cfgPath); err == nil {
		fmt.Printf("Config: %s\n", cfgPath)
	} else {
		fmt.Printf("Config: (using defaults, run -init to create)\n")
	}
	fmt.Println()

	sh, err := shell.New(cfg)
	if err != nil {
		fmt.Printf("Failed to create shell: %v\n", err)
		os.Exit(1)
	}

	if err := sh.Run(ctx); err != nil && err != context.Canceled {
		errors.DefaultFormatter().Print(err)
		os.Exit(1)
	}

	fmt.Println("Goodbye!")
}
