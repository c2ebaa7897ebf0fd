// processor.go - Query collection, evaluation and output
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/lgbarn/knight-moves-go/internal/board"
	"github.com/lgbarn/knight-moves-go/internal/cache"
	"github.com/lgbarn/knight-moves-go/internal/config"
	"github.com/lgbarn/knight-moves-go/internal/errors"
	"github.com/lgbarn/knight-moves-go/internal/output"
	"github.com/lgbarn/knight-moves-go/internal/pathfind"
	"github.com/lgbarn/knight-moves-go/internal/query"
	"github.com/lgbarn/knight-moves-go/internal/worker"
)

// demoQueries run when no squares and no query file are given.
var demoQueries = []query.Query{
	query.New(board.Sq(0, 0), board.Sq(1, 2)),
	query.New(board.Sq(0, 0), board.Sq(3, 3)),
	query.New(board.Sq(3, 3), board.Sq(3, 3)),
	query.New(board.Sq(0, 0), board.Sq(7, 7)),
}

// ProcessingContext holds all processing state
type ProcessingContext struct {
	cfg    *config.Config
	finder *pathfind.Finder
	cache  *cache.PathCache // nil when caching is disabled
	logger *slog.Logger
}

// NewProcessingContext creates the state shared by every query in a run.
func NewProcessingContext(cfg *config.Config, logger *slog.Logger) *ProcessingContext {
	ctx := &ProcessingContext{
		cfg:    cfg,
		finder: pathfind.NewFinder(),
		logger: logger,
	}
	if cfg.Batch.UseCache {
		ctx.cache = cache.New(cfg.Batch.CacheCapacity)
	}
	return ctx
}

// runStats counts query outcomes for the summary line.
type runStats struct {
	queries     int
	found       int
	unreachable int
	failed      int
}

// run executes one invocation and returns the process exit status.
func run(ctx *ProcessingContext, args []string, stdin io.Reader) int {
	if *tableFrom != "" {
		return runTable(ctx, *tableFrom)
	}

	queries, err := collectQueries(args, *queryFile, stdin)
	if err != nil {
		fmt.Fprintf(ctx.cfg.LogFile, "Error: %v\n", err)
		return 1
	}

	w := output.NewWriter(ctx.cfg.OutputFile, ctx.cfg)
	stats, err := processQueries(queries, ctx, w)
	if closeErr := w.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintf(ctx.cfg.LogFile, "Error writing output: %v\n", err)
		return 1
	}

	reportStatistics(stats, ctx)
	if stats.failed > 0 {
		return 1
	}
	return 0
}

// collectQueries picks the query source: a file, two positional squares,
// or the demo set.
func collectQueries(args []string, file string, stdin io.Reader) ([]query.Query, error) {
	if file != "" {
		if len(args) > 0 {
			return nil, errors.Wrapf(errors.ErrInvalidInput, "unexpected arguments with -f: %v", args)
		}
		return readQueryFile(file, stdin)
	}

	switch len(args) {
	case 0:
		queries := make([]query.Query, len(demoQueries))
		copy(queries, demoQueries)
		return queries, nil
	case 2:
		q, err := query.ParseArgs(args[0], args[1])
		if err != nil {
			return nil, err
		}
		return []query.Query{q}, nil
	default:
		return nil, errors.Wrapf(errors.ErrInvalidInput, "expected START END, got %d argument(s)", len(args))
	}
}

// readQueryFile parses a query file, or stdin when name is "-".
func readQueryFile(name string, stdin io.Reader) ([]query.Query, error) {
	if name == "-" {
		return query.ParseReader(stdin, "stdin")
	}

	file, err := os.Open(name) //nolint:gosec // G304: user-supplied query file is intentional
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return query.ParseReader(file, name)
}

// processQueries answers every query and writes the results in input order.
func processQueries(queries []query.Query, ctx *ProcessingContext, w output.ResultWriter) (runStats, error) {
	numWorkers := ctx.cfg.Batch.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	ctx.logger.Debug("run started", "queries", len(queries), "workers", numWorkers, "cache", ctx.cache != nil)

	var results []worker.ProcessResult
	if len(queries) <= 1 || numWorkers == 1 {
		results = processSequential(queries, ctx)
	} else {
		results = processParallel(queries, ctx, numWorkers)
	}
	return writeResults(results, ctx, w)
}

// processSequential answers queries one at a time on the calling goroutine.
func processSequential(queries []query.Query, ctx *ProcessingContext) []worker.ProcessResult {
	results := make([]worker.ProcessResult, len(queries))
	for i, q := range queries {
		results[i] = processQueryWorker(worker.WorkItem{Query: q, Index: i}, ctx)
	}
	return results
}

// processParallel fans queries out over a worker pool.
func processParallel(queries []query.Query, ctx *ProcessingContext, numWorkers int) []worker.ProcessResult {
	pool := worker.NewPool(
		func(item worker.WorkItem) worker.ProcessResult {
			return processQueryWorker(item, ctx)
		},
		worker.WithWorkers(numWorkers),
		worker.WithBufferSize(ctx.cfg.Batch.BufferSize),
	)
	return pool.RunAll(queries)
}

// processQueryWorker answers a single query, consulting the cache if enabled.
func processQueryWorker(item worker.WorkItem, ctx *ProcessingContext) worker.ProcessResult {
	q := item.Query
	var (
		res pathfind.Result
		err error
	)
	if ctx.cache != nil {
		res, err = ctx.cache.GetOrCompute(q.Start, q.End, ctx.finder.ShortestPath)
	} else {
		res, err = ctx.finder.ShortestPath(q.Start, q.End)
	}
	return worker.ProcessResult{Query: q, Index: item.Index, Result: res, Err: err}
}

// writeResults sends each result to w and tallies the outcomes.
func writeResults(results []worker.ProcessResult, ctx *ProcessingContext, w output.ResultWriter) (runStats, error) {
	stats := runStats{queries: len(results)}

	for _, r := range results {
		logger := ctx.logger.With("query", r.Query.String())
		if r.Query.Source != "" {
			logger = logger.With("source", fmt.Sprintf("%s:%d", r.Query.Source, r.Query.Line))
		}

		var err error
		switch {
		case r.Err != nil:
			stats.failed++
			logger.Warn("query rejected", "error", r.Err)
			err = w.WriteFailure(r.Query.Start, r.Query.End, r.Err)
		case r.Result.Found:
			stats.found++
			logger.Info("path found", "moves", r.Result.Moves(), "expanded", r.Result.Expanded)
			err = w.WriteResult(r.Result)
		default:
			stats.unreachable++
			logger.Info("no path", "expanded", r.Result.Expanded)
			err = w.WriteResult(r.Result)
		}
		if err != nil {
			return stats, err
		}
	}
	return stats, nil
}

// runTable prints the distance table from the named square.
func runTable(ctx *ProcessingContext, text string) int {
	source, err := board.ParseSquare(text)
	if err != nil {
		fmt.Fprintf(ctx.cfg.LogFile, "Error: %v\n", err)
		return 1
	}

	table, err := ctx.finder.DistancesFrom(source)
	if err != nil {
		fmt.Fprintf(ctx.cfg.LogFile, "Error: %v\n", err)
		return 1
	}

	ctx.logger.Debug("distance table", "source", source.String(), "max", table.Max())
	if err := output.WriteTable(ctx.cfg.OutputFile, table, ctx.cfg.Output.Notation); err != nil {
		fmt.Fprintf(ctx.cfg.LogFile, "Error writing output: %v\n", err)
		return 1
	}
	return 0
}

// reportStatistics writes the summary line unless running quietly.
func reportStatistics(stats runStats, ctx *ProcessingContext) {
	if ctx.cfg.Verbosity == 0 {
		return
	}

	noun := "queries"
	if stats.queries == 1 {
		noun = "query"
	}
	fmt.Fprintf(ctx.cfg.LogFile, "%d %s: %d found, %d unreachable, %d failed",
		stats.queries, noun, stats.found, stats.unreachable, stats.failed)
	if ctx.cache != nil {
		hits, misses := ctx.cache.Stats()
		fmt.Fprintf(ctx.cfg.LogFile, " (cache: %d hits, %d misses)", hits, misses)
	}
	fmt.Fprintln(ctx.cfg.LogFile)
}
