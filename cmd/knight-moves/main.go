// knight-moves finds the shortest knight path between two chessboard squares.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/lgbarn/knight-moves-go/internal/config"
	"github.com/lgbarn/knight-moves-go/internal/logging"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("knight-moves-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	closers := setupLogFile(cfg)
	closers = append(closers, setupOutputFile(cfg)...)
	defer closeAll(closers)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeAll(closers)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging, cfg.LogFile).With("run_id", uuid.NewString())
	ctx := NewProcessingContext(cfg, logger)

	if *queryFile == "-" && cfg.Verbosity > 0 && term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(cfg.LogFile, "Reading queries from the terminal, one 'START END' per line (Ctrl-D to finish).")
	}

	status := run(ctx, flag.Args(), os.Stdin)
	closeAll(closers)
	os.Exit(status)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) []io.Closer {
	if *logFile == "" {
		return nil
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
	return []io.Closer{file}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) []io.Closer {
	if *outputFile == "" {
		return nil
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
	return []io.Closer{file}
}

// closeAll closes each closer once; later calls are no-ops.
func closeAll(closers []io.Closer) {
	for i, c := range closers {
		if c != nil {
			c.Close() //nolint:errcheck,gosec // G104: cleanup on exit
			closers[i] = nil
		}
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: knight-moves [options] [START END]\n\n")
	fmt.Fprintf(os.Stderr, "Finds the shortest knight path between two squares of a chessboard.\n")
	fmt.Fprintf(os.Stderr, "With no squares and no -f file, runs the built-in demo queries.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nSquare formats:\n")
	fmt.Fprintf(os.Stderr, "  0,0  [0,0]  [ 0, 0 ]  (0,0)   file,rank from 0 to 7\n")
	fmt.Fprintf(os.Stderr, "  a1 .. h8                      algebraic\n")
}
