// Package engine provides move generation, legality checking and the
// make/undo protocol for standard chess without castling or en passant.
package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position. Castling
// rights are not part of this engine, so the field is "-".
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

// ColouredPieceToFENLetter returns the FEN letter for a coloured piece:
// uppercase for light, lowercase for dark.
func ColouredPieceToFENLetter(colouredPiece chess.Piece) byte {
	letter := chess.ExtractPiece(colouredPiece).Letter()
	if chess.ExtractColour(colouredPiece) == chess.Dark {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// NewGameFromFEN creates a State from the piece placement and side-to-move
// fields of a FEN string. Castling, en passant and clock fields are accepted
// and ignored. The position must have exactly one king of each colour and the
// side not to move must not be in check.
func NewGameFromFEN(fen string) (*State, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts); err != nil {
		return nil, err
	}
	if err := validateKings(board); err != nil {
		return nil, err
	}

	s := &State{board: board, firstMove: parseFullMoveNumber(parts), firstToMove: board.ToMove}

	s.flipSide()
	opponentInCheck := s.InCheck()
	s.flipSide()
	if opponentInCheck {
		return nil, fmt.Errorf("%s king is in check with %s to move: %w",
			board.ToMove.Opposite(), board.ToMove, errors.ErrInvalidFEN)
	}

	return s, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
// The first rank listed is row 0.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardWidth {
		return fmt.Errorf("%d ranks in placement: %w", len(ranks), errors.ErrInvalidFEN)
	}

	for row, rank := range ranks {
		col := 0
		for _, c := range rank {
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			default:
				piece := chess.PieceFromLetter(byte(c))
				if piece == chess.Empty {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				if col >= chess.BoardWidth {
					return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
				}

				colour := chess.Light
				if unicode.IsLower(c) {
					colour = chess.Dark
				}
				board.Set(chess.Sq(row, col), chess.MakeColouredPiece(colour, piece))
				col++
			}
		}
		if col != chess.BoardWidth {
			return fmt.Errorf("rank %d has %d squares: %w", chess.BoardWidth-row, col, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		board.ToMove = chess.Light
	case "b":
		board.ToMove = chess.Dark
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseFullMoveNumber reads the fullmove field, defaulting to 1.
func parseFullMoveNumber(parts []string) int {
	n := 1
	if len(parts) >= 6 {
		fmt.Sscanf(parts[5], "%d", &n)
	}
	if n < 1 {
		n = 1
	}
	return n
}

// validateKings checks there is exactly one king of each colour.
func validateKings(board *chess.Board) error {
	for _, colour := range []chess.Colour{chess.Light, chess.Dark} {
		if n := board.CountPieces(chess.MakeColouredPiece(colour, chess.King)); n != 1 {
			return fmt.Errorf("%d %s kings: %w", n, colour, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// FEN returns the position as a FEN string. Castling and en passant are
// always "-" and the halfmove clock is 0.
func (s *State) FEN() string {
	var sb strings.Builder

	writePiecePositions(&sb, s.board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, s.board)
	fmt.Fprintf(&sb, " - - 0 %d", s.fullMoveNumber())

	return sb.String()
}

// fullMoveNumber increases after each dark move, counting from the
// position the game started from.
func (s *State) fullMoveNumber() int {
	plies := len(s.history)
	if s.firstToMove == chess.Dark {
		plies++
	}
	return s.firstMove + plies/2
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardWidth; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardWidth; col++ {
			piece := board.Get(chess.Sq(row, col))
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(ColouredPieceToFENLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardWidth-1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.ToMove == chess.Light {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}
