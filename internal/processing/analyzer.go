// Package processing replays move lists and runs perft divides over a
// worker pool.
package processing

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// GameAnalysis holds analysis results from replaying a move list.
type GameAnalysis struct {
	Applied           []chess.Move
	Status            engine.Status
	HasUnderpromotion bool
	Positions         []uint64 // Zobrist hashes, one per position reached
}

// UnderpromotionFound returns true if any pawn promoted to non-queen.
func (ga *GameAnalysis) UnderpromotionFound() bool {
	return ga.HasUnderpromotion
}

// SplitMoveList splits a whitespace or comma separated list of coordinate
// moves such as "e2e4 e7e5".
func SplitMoveList(list string) []string {
	return strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

// AnalyzeGame applies moves to s in order. A move may carry its own
// promotion letter ("e7e8n"); otherwise defaultPromotion is used. Replay
// stops at the first move that cannot be parsed or is illegal, and that
// error is returned alongside the analysis of the moves applied so far.
// A move listed after checkmate or stalemate is rejected with ErrIllegalMove.
func AnalyzeGame(s *engine.State, moves []string, defaultPromotion chess.Piece) (*GameAnalysis, error) {
	analysis := &GameAnalysis{}

	analysis.Positions = append(analysis.Positions, hashing.GenerateZobristHash(s.Board()))

	for _, text := range moves {
		m, promotion, err := chess.ParseMove(text)
		if err != nil {
			analysis.Status = s.Status()
			return analysis, fmt.Errorf("ply %d: %w", s.Ply()+1, err)
		}
		if promotion == chess.Empty {
			promotion = defaultPromotion
		}
		if !s.HasLegalMoves() {
			analysis.Status = s.Status()
			return analysis, errors.Wrapf(errors.ErrIllegalMove,
				"ply %d: move %q after %s", s.Ply()+1, text, analysis.Status)
		}
		if err := s.ApplyMove(m, promotion); err != nil {
			analysis.Status = s.Status()
			return analysis, err
		}

		history := s.History()
		played := history[len(history)-1]
		analysis.Applied = append(analysis.Applied, played)
		if played.Promotion && played.PromotedTo != chess.Queen {
			analysis.HasUnderpromotion = true
		}

		analysis.Positions = append(analysis.Positions, hashing.GenerateZobristHash(s.Board()))
	}

	analysis.Status = s.Status()
	return analysis, nil
}

// UndoMoves reverts up to n moves and returns the moves that were undone,
// most recent first.
func UndoMoves(s *engine.State, n int) ([]chess.Move, error) {
	undone := make([]chess.Move, 0, n)
	for i := 0; i < n; i++ {
		history := s.History()
		if err := s.Undo(); err != nil {
			return undone, errors.Wrapf(err, "undo %d of %d", i+1, n)
		}
		undone = append(undone, history[len(history)-1])
	}
	return undone, nil
}
