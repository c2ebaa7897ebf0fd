// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/knight-moves-go/internal/config"
)

var (
	// Input options
	queryFile = flag.String("f", "", "File of queries, one 'START END' pair per line ('-' for stdin)")
	tableFrom = flag.String("table", "", "Print the knight distance table from this square")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	algebraic    = flag.Bool("alg", false, "Write squares in algebraic notation (a1..h8)")
	showStats    = flag.Bool("stats", false, "Include the number of searched squares in each result")

	// Batch options
	workers       = flag.Int("workers", 0, "Number of worker goroutines for batch queries (0 = auto-detect based on CPU cores)")
	noCache       = flag.Bool("nocache", false, "Disable memoization of repeated queries")
	cacheCapacity = flag.Int("cache", 0, "Maximum cached results (0 = unlimited)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	logLevel  = flag.String("loglevel", "warn", "Diagnostic level: debug, info, warn, error")
	logFormat = flag.String("logformat", "text", "Diagnostic format: text or json")
	logCaller = flag.Bool("logcaller", false, "Include source location in diagnostics")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no summary line)")
	verbose = flag.Bool("v", false, "Per-query diagnostics at info level")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyOutputFlags(cfg)
	applyBatchFlags(cfg)
	applyLoggingFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
}

// applyOutputFlags configures output format settings.
func applyOutputFlags(cfg *config.Config) {
	if *jsonOutput {
		cfg.Output.Format = config.JSON
	} else {
		cfg.Output.Format = config.Text
	}
	if *algebraic {
		cfg.Output.Notation = config.Algebraic
	} else {
		cfg.Output.Notation = config.Coordinates
	}
	cfg.Output.IncludeStats = *showStats
}

// applyBatchFlags configures worker and cache settings.
func applyBatchFlags(cfg *config.Config) {
	cfg.Batch.Workers = *workers
	cfg.Batch.UseCache = !*noCache
	cfg.Batch.CacheCapacity = *cacheCapacity
}

// applyLoggingFlags configures diagnostics.
func applyLoggingFlags(cfg *config.Config) {
	cfg.Logging.Level = *logLevel
	cfg.Logging.Format = *logFormat
	cfg.Logging.IncludeCaller = *logCaller
	if *verbose && *logLevel == "warn" {
		cfg.Logging.Level = "info"
	}
}
