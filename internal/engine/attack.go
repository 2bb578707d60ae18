package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// SquareUnderAttack returns true if sq is the destination of any pseudo-legal
// move of the side not to move. It flips the side to move, generates that
// side's moves and flips back before scanning.
//
// The cost is one full move generation per call, which makes legality
// filtering O(moves * opponent moves).
func (s *State) SquareUnderAttack(sq chess.Square) bool {
	s.flipSide()
	opponentMoves := s.PseudoLegalMoves()
	s.flipSide()

	for _, m := range opponentMoves {
		if m.To == sq {
			return true
		}
	}
	return false
}

// InCheck returns true if the side to move's king is attacked.
func (s *State) InCheck() bool {
	return s.SquareUnderAttack(s.kingSquare(s.board.ToMove))
}

// kingSquare returns the square of colour's king. A missing king is a
// contract violation.
func (s *State) kingSquare(colour chess.Colour) chess.Square {
	sq, ok := s.board.King(colour)
	if !ok {
		errors.Violation("kingSquare", "no %s king on the board", colour)
	}
	return sq
}
