package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Status summarises the position as of the last LegalMoves call.
type Status int

const (
	InProgress Status = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (st Status) String() string {
	switch st {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "in progress"
	}
}

// IsTerminal returns true for checkmate and stalemate.
func (st Status) IsTerminal() bool {
	return st == Checkmate || st == Stalemate
}

// IsCheckmate returns the checkmate flag computed by the last LegalMoves call.
func (s *State) IsCheckmate() bool {
	return s.checkmate
}

// IsStalemate returns the stalemate flag computed by the last LegalMoves call.
func (s *State) IsStalemate() bool {
	return s.stalemate
}

// Status refreshes the legal moves and reports the resulting status.
func (s *State) Status() Status {
	s.LegalMoves()
	switch {
	case s.checkmate:
		return Checkmate
	case s.stalemate:
		return Stalemate
	case s.InCheck():
		return Check
	default:
		return InProgress
	}
}

// ApplyMove plays m if it equals one of the current legal moves. The
// generated move is the one applied, so m only needs its From and To set.
// promotion picks the piece for a promoting pawn; anything other than a
// queen, rook, bishop or knight (including chess.Empty) gives a queen.
//
// A move that is not legal returns a *errors.MoveError wrapping
// ErrIllegalMove and leaves the state unchanged.
//
// ApplyMove does not refresh the checkmate and stalemate flags for the new
// position. IsCheckmate and IsStalemate keep describing the position before
// the move until LegalMoves (or Status) is called again.
func (s *State) ApplyMove(m chess.Move, promotion chess.Piece) error {
	legal, colour := s.LegalMoves()
	for _, candidate := range legal {
		if candidate.Equal(m) {
			s.makeMove(candidate, promotion)
			return nil
		}
	}
	return &errors.MoveError{
		Err:      errors.ErrIllegalMove,
		MoveText: m.String(),
		Ply:      len(s.history),
		ToMove:   colour.String(),
	}
}
