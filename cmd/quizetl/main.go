package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/jagdpruefer/quizetl/pkg/config"
	"github.com/jagdpruefer/quizetl/pkg/etl"
	"github.com/jagdpruefer/quizetl/pkg/logger"
	"github.com/jagdpruefer/quizetl/pkg/preview"
	"github.com/jagdpruefer/quizetl/pkg/table"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("quizetl", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "", "Path to a YAML config with paths and column roles (optional)")
	dataDir := flags.String("data-dir", "", "Directory holding questions.csv and the outputs (default: data)")
	verbose := flags.Bool("verbose", false, "Enable verbose output")
	previewRows := flags.Int("preview", 5, "Number of records to preview after the run (0 disables)")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		cfg = loaded
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}

	log := logger.New(stdout, *verbose)
	normalizer := etl.NewNormalizer(cfg, log)

	result, err := normalizer.Run()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", describe(err))
		return 1
	}

	if *previewRows > 0 && len(result.Records) > 0 {
		fmt.Fprintln(stdout, preview.Render(result.Records, *previewRows, !isTerminal(stdout)))
	}
	return 0
}

// describe prefixes fatal errors with their kind
func describe(err error) string {
	var cfgErr *table.ConfigurationError
	var parseErr *table.ParseError
	switch {
	case errors.As(err, &cfgErr):
		return "configuration: " + err.Error()
	case errors.As(err, &parseErr):
		return "malformed input: " + err.Error()
	default:
		return err.Error()
	}
}

func isTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
