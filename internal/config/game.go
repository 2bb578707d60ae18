package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// GameConfig holds settings for setting up and replaying a game.
type GameConfig struct {
	// StartFEN is the position to start from; empty means the standard start.
	StartFEN string

	// Moves are applied in order in coordinate notation ("e2e4", "a7a8n").
	Moves []string

	// Promotion is used for promoting moves without their own letter.
	// Anything that is not a valid choice gives a queen.
	Promotion chess.Piece

	// UndoCount moves are taken back after the replay.
	UndoCount int
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{Promotion: chess.Queen}
}

// Validate checks that the game configuration is valid.
func (g *GameConfig) Validate() error {
	if g.UndoCount < 0 {
		return fmt.Errorf("undo count (%d) is negative: %w", g.UndoCount, errors.ErrInvalidConfig)
	}
	return nil
}
