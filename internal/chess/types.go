// Package chess provides core chess types and operations.
package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Dark Colour = iota
	Light
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == Light {
		return "Light"
	}
	return "Dark"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == Light {
		return Dark
	}
	return Light
}

// Piece represents a chess piece type, or a coloured piece when built
// with MakeColouredPiece.
type Piece int

const (
	Off   Piece = iota // Off the board
	Empty              // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Off", "Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= Pawn<<PieceShift {
		return ExtractColour(p).String() + ExtractPiece(p).String()
	}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', ' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceFromLetter converts a piece letter (either case) to a piece type.
// Returns Empty for anything that is not a piece letter.
func PieceFromLetter(c byte) Piece {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'B', 'b':
		return Bishop
	case 'N', 'n':
		return Knight
	case 'P', 'p':
		return Pawn
	default:
		return Empty
	}
}

// IsPromotionChoice reports whether kind is a piece a pawn may promote to.
func IsPromotionChoice(kind Piece) bool {
	switch kind {
	case Queen, Rook, Bishop, Knight:
		return true
	default:
		return false
	}
}

// BoardWidth is the number of rows and columns on the board.
const BoardWidth = 8

// Back and pawn rows for each colour. Row 0 is dark's back rank.
const (
	DarkBackRow  = 0
	DarkPawnRow  = 1
	LightPawnRow = BoardWidth - 2
	LightBackRow = BoardWidth - 1
)

// ColourOffset returns the row step of a pawn advance: -1 for Light, +1 for Dark.
func ColourOffset(colour Colour) int {
	if colour == Light {
		return -1
	}
	return 1
}

// PawnStartRow returns the row from which pawns of colour may advance two squares.
func PawnStartRow(colour Colour) int {
	if colour == Light {
		return LightPawnRow
	}
	return DarkPawnRow
}

// PromotionRow returns the farthest row for pawns of colour.
func PromotionRow(colour Colour) int {
	if colour == Light {
		return DarkBackRow
	}
	return LightBackRow
}

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) Piece {
	return Piece((int(piece) << PieceShift) | int(colour))
}

// L creates a light piece.
func L(piece Piece) Piece {
	return MakeColouredPiece(Light, piece)
}

// D creates a dark piece.
func D(piece Piece) Piece {
	return MakeColouredPiece(Dark, piece)
}

// ExtractColour extracts the colour from a coloured piece.
func ExtractColour(colouredPiece Piece) Colour {
	return Colour(colouredPiece & 0x01)
}

// ExtractPiece extracts the piece type from a coloured piece.
func ExtractPiece(colouredPiece Piece) Piece {
	return Piece(colouredPiece >> PieceShift)
}

// IsColoured reports whether p is a real piece rather than Empty or Off.
func IsColoured(p Piece) bool {
	kind := ExtractPiece(p)
	return kind >= Pawn && kind <= King
}

// Square is a (row, column) coordinate. Row 0 is dark's back rank and
// column 0 is the a-file.
type Square struct {
	Row int
	Col int
}

// NoSquare marks an absent square, e.g. a missing king.
var NoSquare = Square{Row: -1, Col: -1}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// OnBoard reports whether the square lies inside the board.
func (s Square) OnBoard() bool {
	return s.Row >= 0 && s.Row < BoardWidth && s.Col >= 0 && s.Col < BoardWidth
}

// Offset returns the square dr rows and dc columns away.
func (s Square) Offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// String returns the square in coordinate notation, e.g. "e2".
func (s Square) String() string {
	if !s.OnBoard() {
		return "-"
	}
	return string([]byte{byte('a' + s.Col), byte('8' - s.Row)})
}

// ParseSquare converts coordinate notation ("e2") to a Square.
// Files a-h map to columns 0-7 and ranks 1-8 map to rows 7-0.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("square %q: %w", s, errors.ErrInvalidSquare)
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("square %q: %w", s, errors.ErrInvalidSquare)
	}
	return Square{Row: int('8' - rank), Col: int(file - 'a')}, nil
}
