package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// OutputFormat selects how results are written.
type OutputFormat int

const (
	Text OutputFormat = iota // Human readable lines
	JSON                     // One JSON document
)

// String returns the string representation of an output format.
func (f OutputFormat) String() string {
	switch f {
	case Text:
		return "text"
	case JSON:
		return "json"
	default:
		return "unknown"
	}
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies text or JSON output
	Format OutputFormat

	// ListMoves includes the legal moves of the final position
	ListMoves bool

	// ShowBoard includes a diagram of the final position
	ShowBoard bool

	// ShowFEN includes the FEN of the final position
	ShowFEN bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:  Text,
		ShowFEN: true,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.Format != Text && o.Format != JSON {
		return fmt.Errorf("output format %d: %w", o.Format, errors.ErrInvalidConfig)
	}
	return nil
}
