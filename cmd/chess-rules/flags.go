// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/processing"
)

var (
	// Position options
	startFEN  = flag.String("fen", "", "Starting position in FEN (default: standard initial position)")
	moveList  = flag.String("moves", "", "Moves to play in coordinate notation, e.g. \"e2e4 e7e5\"")
	promotion = flag.String("promote", "q", "Default promotion piece: q, r, b or n")
	undoCount = flag.Int("undo", 0, "Undo the last N moves after playing them")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	listMoves    = flag.Bool("list", false, "List the legal moves of the final position")
	showBoard    = flag.Bool("board", false, "Draw the final position")
	noFEN        = flag.Bool("nofen", false, "Don't output the FEN of the final position")

	// Perft options
	perftDepth   = flag.Int("perft", 0, "Count leaf nodes to this depth")
	divide       = flag.Bool("divide", false, "Break the perft count down by root move")
	workers      = flag.Int("workers", 0, "Number of worker threads for -divide (0 = auto-detect based on CPU cores)")
	cacheEntries = flag.Int("cache", config.DefaultCacheEntries, "Maximum perft cache entries (0 = no cache)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbose   = flag.Bool("verbose", false, "Log each move as it is played")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no diagnostics)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration. Positional
// arguments are appended to the -moves list.
func applyFlags(cfg *config.Config, args []string) error {
	if err := applyGameFlags(cfg, args); err != nil {
		return err
	}
	applyOutputFlags(cfg)
	applyPerftFlags(cfg)
	applyLogFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
	return nil
}

// applyGameFlags configures the starting position and move list.
func applyGameFlags(cfg *config.Config, args []string) error {
	cfg.Game.StartFEN = *startFEN
	cfg.Game.Moves = append(processing.SplitMoveList(*moveList), args...)
	cfg.Game.UndoCount = *undoCount

	piece, err := parsePromotion(*promotion)
	if err != nil {
		return err
	}
	cfg.Game.Promotion = piece
	return nil
}

// applyOutputFlags configures output format and sections.
func applyOutputFlags(cfg *config.Config) {
	if *jsonOutput {
		cfg.Output.Format = config.JSON
	} else {
		cfg.Output.Format = config.Text
	}
	cfg.Output.ListMoves = *listMoves
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.ShowFEN = !*noFEN
	cfg.OutputFilename = *outputFile
	cfg.AppendOutput = *appendOutput
}

// applyPerftFlags configures perft and divide settings.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Divide = *divide
	if *workers > 0 {
		cfg.Perft.Workers = *workers
	}
	cfg.Perft.CacheEntries = *cacheEntries
}

// applyLogFlags picks the log file. -L takes precedence over -l.
func applyLogFlags(cfg *config.Config) {
	switch {
	case *appendLog != "":
		cfg.LogFilename = *appendLog
		cfg.AppendLog = true
	case *logFile != "":
		cfg.LogFilename = *logFile
		cfg.AppendLog = false
	}
}

// parsePromotion reads a promotion letter. Any single piece letter is
// accepted; letters that are not a queen, rook, bishop or knight promote
// to a queen when the move is played.
func parsePromotion(s string) (chess.Piece, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return chess.Queen, nil
	}
	if len(s) != 1 {
		return chess.Empty, fmt.Errorf("promotion %q: %w", s, errors.ErrInvalidConfig)
	}
	return chess.PieceFromLetter(s[0]), nil
}
