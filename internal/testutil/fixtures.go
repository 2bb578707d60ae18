package testutil

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Positions shared by the engine, processing and command tests. None of
// them carries castling rights or an en passant square.
const (
	// Light pawn on a7 one step from promotion.
	PromotionFEN = "4k3/P7/8/8/8/8/8/4K3 w - - 0 1"

	// Dark pawn on h2 one step from promotion, with a capture available on g1.
	DarkPromotionFEN = "4k3/8/8/8/8/8/7p/4K1N1 b - - 0 1"

	// Dark to move with no legal moves and not in check.
	StalemateFEN = "k7/2Q5/1K6/8/8/8/8/8 b - - 0 1"

	// Dark rook has mated the light king on h1 along the back rank.
	BackRankMateFEN = "6k1/8/8/8/8/8/6PP/r6K w - - 0 1"

	// Dark to move and mate in one with a8a1.
	BackRankMateInOneFEN = "r5k1/8/8/8/8/8/6PP/7K b - - 0 1"

	// Light knight alone in the centre of the board.
	CentralKnightFEN = "4k3/8/8/8/4N3/8/8/4K3 w - - 0 1"

	// Light bishop on e3 pinned to its king by a dark rook on e8.
	PinnedBishopFEN = "4r1k1/8/8/8/8/4B3/8/4K3 w - - 0 1"
)

// MoveNames formats each value with fmt and returns the strings sorted, so
// move lists can be compared without depending on generation order.
func MoveNames[T fmt.Stringer](moves []T) []string {
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.String()
	}
	slices.Sort(names)
	return names
}
