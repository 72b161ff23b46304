// Package main is the entry point for the gesturekit terminal demo.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/gesturekit/internal/app"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Ensure the terminal is restored on all exit paths
	defer application.Shutdown()

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-signals
		application.Shutdown()
	}()

	if err := application.Run(); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func parseFlags() app.Options {
	var opts app.Options
	var showVersion bool
	var showHelp bool

	flag.IntVar(&opts.Speed, "speed", 0, "Pacing speed scalar (0 uses the default)")
	flag.StringVar(&opts.ModelPath, "model", "", "Path to a pacing model (libsvm text or Lua)")
	flag.StringVar(&opts.ModelPath, "m", "", "Path to a pacing model (shorthand)")
	flag.BoolVar(&opts.SmoothScroll, "smooth", false, "Animate coarse scroll deltas")
	flag.IntVar(&opts.Lines, "lines", 500, "Number of content lines to generate")
	flag.StringVar(&opts.LogFile, "log-file", "", "Write structured logs to this file")
	flag.StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Gesturekit - gesture dispatch and frame pacing demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: gesturekit [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  gesturekit                          Run with pacing disabled\n")
		fmt.Fprintf(os.Stderr, "  gesturekit -m model.svm -speed 200  Throttle frames via an SVR model\n")
		fmt.Fprintf(os.Stderr, "  gesturekit -smooth                  Animate coarse scroll deltas\n")
		fmt.Fprintf(os.Stderr, "  gesturekit -log-file demo.log -log-level debug\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("Gesturekit %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	// Validate log level
	switch opts.LogLevel {
	case "debug", "info", "warn", "error":
		// Valid
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		os.Exit(1)
	}

	return opts
}
