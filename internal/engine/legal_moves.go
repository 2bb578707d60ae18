package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// LegalMoves returns the legal moves for the side to move and the colour
// they were generated for. It also refreshes the checkmate and stalemate
// flags.
//
// Each pseudo-legal candidate is applied, the side to move is flipped back
// so the mover's own king can be queried, and the move is undone. Candidates
// that leave the king attacked are removed in place, walking the list from
// the end so removals do not skip elements.
func (s *State) LegalMoves() ([]chess.Move, chess.Colour) {
	s.checkKings()
	colour := s.board.ToMove
	wasInCheck := s.InCheck()

	moves := s.PseudoLegalMoves()
	for i := len(moves) - 1; i >= 0; i-- {
		if s.exposesKing(moves[i]) {
			moves = append(moves[:i], moves[i+1:]...)
		}
	}

	s.checkmate = len(moves) == 0 && wasInCheck
	s.stalemate = len(moves) == 0 && !wasInCheck
	return moves, colour
}

// exposesKing reports whether m leaves the mover's own king attacked. The
// board is restored before it returns.
func (s *State) exposesKing(m chess.Move) bool {
	s.makeMove(m, chess.Queen)
	s.flipSide()
	inCheck := s.InCheck()
	s.flipSide()
	s.mustUndo()
	return inCheck
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func (s *State) HasLegalMoves() bool {
	for _, m := range s.PseudoLegalMoves() {
		if !s.exposesKing(m) {
			return true
		}
	}
	return false
}

// checkKings requires exactly one king of each colour.
func (s *State) checkKings() {
	for _, colour := range []chess.Colour{chess.Light, chess.Dark} {
		if n := s.board.CountPieces(chess.MakeColouredPiece(colour, chess.King)); n != 1 {
			errors.Violation("LegalMoves", "%d %s kings on the board", n, colour)
		}
	}
}

// mustUndo undoes a move this package has just made.
func (s *State) mustUndo() {
	if err := s.Undo(); err != nil {
		panic(err)
	}
}
