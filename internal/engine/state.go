package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// State is the board state of one game: the board, the history of applied
// moves and the flags computed by the last LegalMoves call.
//
// A State is not safe for concurrent use. LegalMoves temporarily mutates the
// board while it tests candidates, so callers must serialise access or work
// on a Clone.
type State struct {
	board   *chess.Board
	history []chess.Move

	checkmate bool
	stalemate bool

	// Fullmove number and side to move of the starting position.
	firstMove   int
	firstToMove chess.Colour
}

// NewGame returns a State at the standard starting position, light to move.
func NewGame() *State {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return &State{board: board, firstMove: 1, firstToMove: chess.Light}
}

// Board returns a copy of the current board.
func (s *State) Board() *chess.Board {
	return s.board.Copy()
}

// ToMove returns the side to move.
func (s *State) ToMove() chess.Colour {
	return s.board.ToMove
}

// History returns the applied moves, oldest first.
func (s *State) History() []chess.Move {
	history := make([]chess.Move, len(s.history))
	copy(history, s.history)
	return history
}

// Ply returns the number of moves applied so far.
func (s *State) Ply() int {
	return len(s.history)
}

// Clone returns an independent deep copy of the state.
func (s *State) Clone() *State {
	return &State{
		board:       s.board.Copy(),
		history:     s.History(),
		checkmate:   s.checkmate,
		stalemate:   s.stalemate,
		firstMove:   s.firstMove,
		firstToMove: s.firstToMove,
	}
}

// flipSide changes the side to move without touching the grid.
func (s *State) flipSide() {
	s.board.ToMove = s.board.ToMove.Opposite()
}

// makeMove applies m without checking legality. A promotion substitutes
// promotion (defaulting to a queen when it is not a valid choice) for the
// pawn after it has been placed.
//
// The history entry records the kind chosen in PromotedTo.
func (s *State) makeMove(m chess.Move, promotion chess.Piece) {
	s.board.Set(m.From, chess.Empty)
	s.board.Set(m.To, m.Moved)

	if m.Promotion {
		if !chess.IsPromotionChoice(promotion) {
			promotion = chess.Queen
		}
		m.PromotedTo = promotion
		s.board.Set(m.To, chess.MakeColouredPiece(chess.ExtractColour(m.Moved), promotion))
	}

	s.history = append(s.history, m)
	s.flipSide()
}

// Undo reverts the most recent move. A promotion is reverted to the pawn
// that moved. Undo with no moves played returns ErrIllegalState and leaves
// the state unchanged.
func (s *State) Undo() error {
	if len(s.history) == 0 {
		return errors.Wrap(errors.ErrIllegalState, "undo with empty history")
	}
	last := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]

	s.board.Set(last.From, last.Moved)
	s.board.Set(last.To, last.Captured)
	s.flipSide()
	return nil
}

// PseudoLegalMoves returns the pseudo-legal moves of every piece of the side
// to move, scanning the board row by row.
func (s *State) PseudoLegalMoves() []chess.Move {
	moves := make([]chess.Move, 0, 64)
	colour := s.board.ToMove
	for row := 0; row < chess.BoardWidth; row++ {
		for col := 0; col < chess.BoardWidth; col++ {
			sq := chess.Sq(row, col)
			piece := s.board.Get(sq)
			if !chess.IsColoured(piece) || chess.ExtractColour(piece) != colour {
				continue
			}
			moves = GeneratePseudoLegal(s.board, sq, moves)
		}
	}
	return moves
}
