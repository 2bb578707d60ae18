package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Move describes a single piece relocation. It copies the piece values it
// needs at construction time and holds no reference to the board.
type Move struct {
	// Source square.
	From Square

	// Destination square.
	To Square

	// The piece on the source square when the move was built.
	Moved Piece

	// The piece captured (Empty if no capture).
	Captured Piece

	// True when a pawn reaches the farthest row for its colour.
	Promotion bool

	// Kind the pawn became; only set once a promotion has been played.
	PromotedTo Piece
}

// NewMove builds the move from -> to against the current board contents.
func NewMove(board *Board, from, to Square) Move {
	moved := board.Get(from)
	m := Move{
		From:       from,
		To:         to,
		Moved:      moved,
		Captured:   board.Get(to),
		PromotedTo: Empty,
	}
	if IsColoured(moved) && ExtractPiece(moved) == Pawn {
		m.Promotion = to.Row == PromotionRow(ExtractColour(moved))
	}
	return m
}

// Equal reports whether two moves share origin and destination. Captured
// piece and promotion flag are informational and not compared, so a move
// built without board context still matches a generated one.
func (m Move) Equal(other Move) bool {
	return m.From == other.From && m.To == other.To
}

// IsCapture returns true if this move is a capture.
func (m Move) IsCapture() bool {
	return IsColoured(m.Captured)
}

// String returns the move in coordinate form, e.g. "e2e4", with the
// promoted kind as a lowercase suffix once a promotion has been played
// ("a7a8r").
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if IsPromotionChoice(m.PromotedTo) {
		s += string(m.PromotedTo.Letter() + 'a' - 'A')
	}
	return s
}

// Commentary returns a short description of the move such as
// "N(g1) to f3" or "P(e4) to d5(P captured!)".
func (m Move) Commentary() string {
	s := fmt.Sprintf("%c(%s) to %s", ExtractPiece(m.Moved).Letter(), m.From, m.To)
	if m.IsCapture() {
		s += fmt.Sprintf("(%c captured!)", ExtractPiece(m.Captured).Letter())
	}
	if IsPromotionChoice(m.PromotedTo) {
		s += fmt.Sprintf("(promoted to %c)", m.PromotedTo.Letter())
	}
	return s
}

// ParseMove reads coordinate notation ("e2e4", "e7e8r") into an origin,
// destination and optional promotion kind (Empty when absent). The result
// carries no piece information; pass it to a game to be matched against the
// legal moves.
func ParseMove(s string) (Move, Piece, error) {
	s = strings.TrimSpace(s)
	if len(s) != 4 && len(s) != 5 {
		return Move{}, Empty, fmt.Errorf("move %q: %w", s, errors.ErrInvalidSquare)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, Empty, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, Empty, err
	}
	promotion := Empty
	if len(s) == 5 {
		promotion = PieceFromLetter(s[4])
	}
	return Move{From: from, To: to, Moved: Empty, Captured: Empty, PromotedTo: Empty}, promotion, nil
}
