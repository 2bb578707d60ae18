package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// DefaultCacheEntries bounds the perft node cache unless overridden.
const DefaultCacheEntries = 1 << 20

// PerftConfig holds settings for move path enumeration.
type PerftConfig struct {
	// Depth of the count; 0 disables perft.
	Depth int

	// Divide reports the count below each root move.
	Divide bool

	// Workers is the number of goroutines used by a divide.
	Workers int

	// CacheEntries bounds the node cache; 0 disables it.
	CacheEntries int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers:      runtime.NumCPU(),
		CacheEntries: DefaultCacheEntries,
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 {
		return fmt.Errorf("perft depth (%d) is negative: %w", p.Depth, errors.ErrInvalidConfig)
	}
	if p.Divide && p.Depth < 1 {
		return fmt.Errorf("divide needs a perft depth of at least 1: %w", errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if p.CacheEntries < 0 {
		return fmt.Errorf("cache entries (%d) is negative: %w", p.CacheEntries, errors.ErrInvalidConfig)
	}
	return nil
}
