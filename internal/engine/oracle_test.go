package engine

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// oraclePositions have no castling rights and no en passant square, so the
// legal move sets must agree with a full-rules generator.
var oraclePositions = []string{
	InitialFEN,
	"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w - - 4 4",
	"r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w - - 4 4",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w - - 1 8",
	"4k3/8/8/8/8/8/8/r3K3 w - - 0 1",
	testutil.PromotionFEN,
	testutil.DarkPromotionFEN,
	testutil.PinnedBishopFEN,
	testutil.BackRankMateFEN,
	testutil.BackRankMateInOneFEN,
	testutil.StalemateFEN,
}

// oracleMoves returns the distinct origin-destination pairs dragontoothmg
// generates for b. Its four promotion moves per destination collapse to one.
func oracleMoves(b *dragontoothmg.Board) []string {
	seen := make(map[string]bool)
	for _, m := range b.GenerateLegalMoves() {
		mv := m
		seen[mv.String()[:4]] = true
	}
	names := maps.Keys(seen)
	slices.Sort(names)
	return names
}

// oracleMove finds the dragontoothmg move matching m, preferring a queen
// promotion.
func oracleMove(t *testing.T, b *dragontoothmg.Board, m chess.Move) dragontoothmg.Move {
	t.Helper()
	want := m.String()
	if m.Promotion {
		want += "q"
	}
	for _, candidate := range b.GenerateLegalMoves() {
		mv := candidate
		if mv.String() == want {
			return mv
		}
	}
	t.Fatalf("oracle has no move %s", want)
	return 0
}

// isDoubleStep reports whether m is a two-square pawn advance, after which
// the oracle may offer an en passant capture this engine does not have.
func isDoubleStep(m chess.Move) bool {
	if chess.ExtractPiece(m.Moved) != chess.Pawn {
		return false
	}
	d := m.To.Row - m.From.Row
	return d == 2 || d == -2
}

func TestLegalMoves_MatchOracle(t *testing.T) {
	for _, fen := range oraclePositions {
		t.Run(fen, func(t *testing.T) {
			s := mustFEN(t, fen)
			oracle := dragontoothmg.ParseFen(fen)

			moves, _ := s.LegalMoves()
			require.Equal(t, oracleMoves(&oracle), testutil.MoveNames(moves), "root moves")

			for _, m := range moves {
				if isDoubleStep(m) {
					continue
				}
				unapply := oracle.Apply(oracleMove(t, &oracle, m))
				s.PlayUnchecked(m, chess.Queen)

				replies, _ := s.LegalMoves()
				require.Equal(t, oracleMoves(&oracle), testutil.MoveNames(replies), "replies to %s", m)
				require.Equal(t, len(replies) == 0 && s.InCheck(), oracle.OurKingInCheck() && len(replies) == 0,
					"checkmate after %s", m)

				require.NoError(t, s.Undo())
				unapply()
			}
		})
	}
}
