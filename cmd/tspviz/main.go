// Command tspviz renders the best solutions of a results file as PNG images.
//
//	tspviz --input results.json --output plots/
//
// Node data locations, figure settings and logging are read from tspviz.toml
// in the working directory when present; built-in defaults apply otherwise.
package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/MichalRedm/evolutionary-computation/batch"
	"github.com/MichalRedm/evolutionary-computation/config"
	"github.com/MichalRedm/evolutionary-computation/logging"
)

func main() {
	input := flag.String("input", "", "Path to the input JSON results file (required)")
	output := flag.String("output", "", "Directory to save output PNG files (required)")
	flag.Parse()

	if *input == "" || *output == "" {
		fmt.Fprintln(os.Stderr, "tspviz: --input and --output are required")
		flag.Usage()
		os.Exit(2)
	}

	cfg, fromFile, err := config.LoadOrDefault(config.DefaultFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger, logFile := logging.New(cfg, os.Stderr)
	defer logFile.Close()
	// Fatalf exits without running deferred calls.
	log.RegisterExitHandler(func() { _ = logFile.Close() })
	if fromFile {
		logger.Debugf("Configuration read from %s", config.DefaultFile)
	}

	runner, err := batch.NewRunner(cfg, batch.WithLogger(logger))
	if err != nil {
		logger.Fatalf("Invalid configuration: %v", err)
	}
	if _, err = runner.Run(*input, *output); err != nil {
		logger.Fatalf("Rendering failed: %v", err)
	}
}
