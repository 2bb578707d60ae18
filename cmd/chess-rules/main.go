// chess-rules plays moves on a chess board, reports the resulting position
// and counts move paths with perft.
package main

import (
	"context"
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/processing"
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
		fmt.Printf("chess-rules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if err := openStreams(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeOutput(cfg)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeOutput(cfg)
		os.Exit(1)
	}
	closeOutput(cfg)
}

// openStreams replaces the default log and output streams with the files
// named in cfg.
func openStreams(cfg *config.Config) error {
	if cfg.LogFilename != "" {
		f, err := openFile(cfg.LogFilename, cfg.AppendLog)
		if err != nil {
			return fmt.Errorf("log file: %w", err)
		}
		cfg.LogFile = f
	}
	if cfg.OutputFilename != "" {
		f, err := openFile(cfg.OutputFilename, cfg.AppendOutput)
		if err != nil {
			return fmt.Errorf("output file: %w", err)
		}
		cfg.SetOutput(f)
	}
	return nil
}

// openFile creates name, or appends to it when appendMode is set.
func openFile(name string, appendMode bool) (*os.File, error) {
	if appendMode {
		return os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	}
	return os.Create(name)
}

// closeOutput closes output and log files opened by openStreams.
func closeOutput(cfg *config.Config) {
	for _, w := range []io.Writer{cfg.OutputFile, cfg.LogFile} {
		if f, ok := w.(*os.File); ok && f != os.Stdout && f != os.Stderr {
			_ = f.Close()
		}
	}
}

// run replays the configured moves, performs any undo and perft request,
// and writes one report. A contract violation raised by the engine is
// returned as an error.
func run(ctx context.Context, cfg *config.Config) (err error) {
	defer recoverViolation(&err)

	s, err := newState(cfg.Game.StartFEN)
	if err != nil {
		return err
	}

	analysis, err := processing.AnalyzeGame(s, cfg.Game.Moves, cfg.Game.Promotion)
	if cfg.Verbosity > 1 {
		for i, m := range analysis.Applied {
			fmt.Fprintf(cfg.LogFile, "%d: %s\n", i+1, m.Commentary())
		}
	}
	if err != nil {
		return err
	}
	if cfg.Verbosity > 0 && analysis.UnderpromotionFound() {
		fmt.Fprintf(cfg.LogFile, "Note: underpromotion played\n")
	}

	undone, err := processing.UndoMoves(s, cfg.Game.UndoCount)
	if err != nil {
		return err
	}

	report := output.NewReport(s)
	report.Applied = analysis.Applied[:len(analysis.Applied)-len(undone)]
	report.Undone = undone
	report.Positions = analysis.Positions[:len(report.Applied)+1]
	if cfg.Verbosity > 0 && report.Status.IsTerminal() {
		fmt.Fprintf(cfg.LogFile, "Game over: %s\n", report.Status)
	}

	if cfg.Perft.Depth > 0 {
		if err := runPerft(ctx, s, cfg, report); err != nil {
			return err
		}
	}

	w := output.NewWriter(cfg.OutputFile, cfg)
	if err := w.WriteReport(report); err != nil {
		return err
	}
	return w.Close()
}

// recoverViolation turns a contract violation panic into *err. Other
// panics are re-raised.
func recoverViolation(err *error) {
	r := recover()
	if r == nil {
		return
	}
	var ce *errors.ContractError
	if e, ok := r.(error); ok && stderrors.As(e, &ce) {
		*err = ce
		return
	}
	panic(r)
}

// newState starts from fen, or from the initial position when fen is empty.
func newState(fen string) (*engine.State, error) {
	if fen == "" {
		return engine.NewGame(), nil
	}
	return engine.NewGameFromFEN(fen)
}

// runPerft fills in the perft or divide section of report.
func runPerft(ctx context.Context, s *engine.State, cfg *config.Config, report *output.Report) error {
	depth := cfg.Perft.Depth

	if cfg.Perft.Divide {
		d, err := processing.Divide(ctx, s, depth, processing.DivideOptions{
			Workers:      cfg.Perft.Workers,
			CacheEntries: cfg.Perft.CacheEntries,
		})
		if err != nil {
			return err
		}
		report.Divide = d
		if cfg.Verbosity > 0 {
			fmt.Fprintf(cfg.LogFile, "Divide: %d root moves on %d workers\n", len(d.Moves), d.Workers)
			if d.CacheHits+d.CacheMisses > 0 {
				logCache(cfg, d.CacheHits, d.CacheMisses, d.CacheEntries, d.CacheFull)
			}
		}
		return nil
	}

	var nodes uint64
	if cfg.Perft.CacheEntries > 0 {
		cache := hashing.NewNodeCache(cfg.Perft.CacheEntries)
		nodes = engine.PerftCached(s, depth, cache)
		if cfg.Verbosity > 0 {
			hits, misses := cache.Stats()
			logCache(cfg, hits, misses, cache.Len(), cache.IsFull())
		}
	} else {
		nodes = engine.Perft(s, depth)
	}
	report.Perft = &output.PerftResult{Depth: depth, Nodes: nodes}
	return nil
}

func logCache(cfg *config.Config, hits, misses, entries int, full bool) {
	fmt.Fprintf(cfg.LogFile, "Cache: %d hits, %d misses, %d entries\n", hits, misses, entries)
	if full {
		fmt.Fprintf(cfg.LogFile, "Note: perft cache full, raise -cache for deeper searches\n")
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options] [moves...]\n\n")
	fmt.Fprintf(os.Stderr, "Plays coordinate moves (e2e4, a7a8n) and reports the resulting position.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCastling and en passant are not supported.\n")
}
