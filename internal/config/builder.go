package config

import (
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Game.StartFEN = fen
	return b
}

// WithMoves sets the moves to replay.
func (b *ConfigBuilder) WithMoves(moves ...string) *ConfigBuilder {
	b.cfg.Game.Moves = moves
	return b
}

// WithPromotion sets the default promotion piece.
func (b *ConfigBuilder) WithPromotion(piece chess.Piece) *ConfigBuilder {
	b.cfg.Game.Promotion = piece
	return b
}

// WithUndo sets how many moves to take back after the replay.
func (b *ConfigBuilder) WithUndo(n int) *ConfigBuilder {
	b.cfg.Game.UndoCount = n
	return b
}

// WithPerft enables perft to depth, optionally divided by root move.
func (b *ConfigBuilder) WithPerft(depth int, divide bool) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	b.cfg.Perft.Divide = divide
	return b
}

// WithWorkers sets the number of divide workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithCacheEntries sets the node cache bound.
func (b *ConfigBuilder) WithCacheEntries(n int) *ConfigBuilder {
	b.cfg.Perft.CacheEntries = n
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	if enabled {
		b.cfg.Output.Format = JSON
	} else {
		b.cfg.Output.Format = Text
	}
	return b
}

// ListMoves controls whether the legal moves are listed.
func (b *ConfigBuilder) ListMoves(list bool) *ConfigBuilder {
	b.cfg.Output.ListMoves = list
	return b
}

// ShowBoard controls whether a board diagram is printed.
func (b *ConfigBuilder) ShowBoard(show bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = show
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the diagnostics writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
