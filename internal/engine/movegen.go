package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

var (
	knightOffsets   = [][2]int{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
	kingOffsets     = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs    = [][2]int{{-1, -1}, {1, 1}, {1, -1}, {-1, 1}}
	orthogonalDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	pawnCaptureCols = []int{-1, 1}
)

// GeneratePseudoLegal appends the pseudo-legal moves of the piece on from to
// moves. The piece must belong to the side to move; anything else is a
// contract violation.
func GeneratePseudoLegal(board *chess.Board, from chess.Square, moves []chess.Move) []chess.Move {
	piece := board.Get(from)
	if !chess.IsColoured(piece) {
		errors.Violation("GeneratePseudoLegal", "no piece on %s", from)
	}
	if chess.ExtractColour(piece) != board.ToMove {
		errors.Violation("GeneratePseudoLegal", "%s on %s does not belong to %s", piece, from, board.ToMove)
	}

	switch chess.ExtractPiece(piece) {
	case chess.Pawn:
		return pawnMoves(board, from, moves)
	case chess.Knight:
		return stepMoves(board, from, knightOffsets, moves)
	case chess.Bishop:
		return slidingMoves(board, from, diagonalDirs, moves)
	case chess.Rook:
		return slidingMoves(board, from, orthogonalDirs, moves)
	case chess.Queen:
		moves = slidingMoves(board, from, diagonalDirs, moves)
		return slidingMoves(board, from, orthogonalDirs, moves)
	case chess.King:
		return stepMoves(board, from, kingOffsets, moves)
	default:
		errors.Violation("GeneratePseudoLegal", "unknown piece %d on %s", piece, from)
		return moves
	}
}

// pawnMoves generates single and double advances and diagonal captures.
// There is no en passant.
func pawnMoves(board *chess.Board, from chess.Square, moves []chess.Move) []chess.Move {
	colour := board.ToMove
	dir := chess.ColourOffset(colour)

	one := from.Offset(dir, 0)
	if board.Get(one) == chess.Empty {
		moves = append(moves, chess.NewMove(board, from, one))

		// Double push from starting row
		if from.Row == chess.PawnStartRow(colour) {
			two := from.Offset(2*dir, 0)
			if board.Get(two) == chess.Empty {
				moves = append(moves, chess.NewMove(board, from, two))
			}
		}
	}

	for _, dc := range pawnCaptureCols {
		to := from.Offset(dir, dc)
		if isEnemy(board.Get(to), colour) {
			moves = append(moves, chess.NewMove(board, from, to))
		}
	}
	return moves
}

// stepMoves generates single-step moves (knight, king) to every on-board
// square not occupied by an ally.
func stepMoves(board *chess.Board, from chess.Square, offsets [][2]int, moves []chess.Move) []chess.Move {
	colour := board.ToMove
	for _, offset := range offsets {
		to := from.Offset(offset[0], offset[1])
		target := board.Get(to)
		if target == chess.Empty || isEnemy(target, colour) {
			moves = append(moves, chess.NewMove(board, from, to))
		}
	}
	return moves
}

// slidingMoves casts a ray in each direction. Empty squares are added, an
// enemy square is added and ends the ray, an ally or the edge ends it.
func slidingMoves(board *chess.Board, from chess.Square, dirs [][2]int, moves []chess.Move) []chess.Move {
	colour := board.ToMove
	for _, dir := range dirs {
		to := from.Offset(dir[0], dir[1])
		for to.OnBoard() {
			target := board.Get(to)
			if target != chess.Empty {
				if isEnemy(target, colour) {
					moves = append(moves, chess.NewMove(board, from, to))
				}
				break // Blocked
			}
			moves = append(moves, chess.NewMove(board, from, to))
			to = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}

// isEnemy reports whether piece is a real piece of the colour opposing colour.
func isEnemy(piece chess.Piece, colour chess.Colour) bool {
	return chess.IsColoured(piece) && chess.ExtractColour(piece) != colour
}
