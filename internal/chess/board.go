package chess

// Board represents the 8x8 grid, the side to move and the king squares.
type Board struct {
	// The board squares, indexed squares[row][col].
	squares [BoardWidth][BoardWidth]Piece

	// Who has the next move.
	ToMove Colour

	// Keep track of where the two kings are for check detection.
	// Indexed by Colour; NoSquare when that king is not on the board.
	kings [2]Square
}

// NewBoard creates a new empty board with light to move.
func NewBoard() *Board {
	b := &Board{
		ToMove: Light,
		kings:  [2]Square{NoSquare, NoSquare},
	}
	for row := 0; row < BoardWidth; row++ {
		for col := 0; col < BoardWidth; col++ {
			b.squares[row][col] = Empty
		}
	}
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	for row := 0; row < BoardWidth; row++ {
		for col := 0; col < BoardWidth; col++ {
			b.Set(Sq(row, col), Empty)
		}
	}

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardWidth; col++ {
		b.Set(Sq(DarkBackRow, col), D(backRank[col]))
		b.Set(Sq(DarkPawnRow, col), D(Pawn))
		b.Set(Sq(LightPawnRow, col), L(Pawn))
		b.Set(Sq(LightBackRow, col), L(backRank[col]))
	}

	b.ToMove = Light
}

// Get returns the piece at sq, or Off when sq is not on the board.
func (b *Board) Get(sq Square) Piece {
	if !sq.OnBoard() {
		return Off
	}
	return b.squares[sq.Row][sq.Col]
}

// Set places a piece at sq. It is the only way to change the grid and keeps
// the king squares in step with it: overwriting a king clears its entry and
// writing a king records its new square.
func (b *Board) Set(sq Square, piece Piece) {
	if !sq.OnBoard() {
		return
	}
	old := b.squares[sq.Row][sq.Col]
	if IsColoured(old) && ExtractPiece(old) == King {
		colour := ExtractColour(old)
		if b.kings[colour] == sq {
			b.kings[colour] = NoSquare
		}
	}
	b.squares[sq.Row][sq.Col] = piece
	if IsColoured(piece) && ExtractPiece(piece) == King {
		b.kings[ExtractColour(piece)] = sq
	}
}

// King returns the square of colour's king and whether it is on the board.
func (b *Board) King(colour Colour) (Square, bool) {
	sq := b.kings[colour]
	return sq, sq != NoSquare
}

// CountPieces returns how many copies of piece are on the board.
func (b *Board) CountPieces(piece Piece) int {
	n := 0
	for row := 0; row < BoardWidth; row++ {
		for col := 0; col < BoardWidth; col++ {
			if b.squares[row][col] == piece {
				n++
			}
		}
	}
	return n
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Equal reports whether two boards hold the same grid, side to move and
// king squares.
func (b *Board) Equal(other *Board) bool {
	return b.squares == other.squares && b.ToMove == other.ToMove && b.kings == other.kings
}
