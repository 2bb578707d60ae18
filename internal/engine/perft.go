package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// NodeCounter caches perft node counts. hashing.NodeCache and
// hashing.ThreadSafeNodeCache both satisfy it.
type NodeCounter interface {
	Lookup(key hashing.NodeKey) (uint64, bool)
	Store(key hashing.NodeKey, nodes uint64)
}

// Perft counts the leaf nodes of the legal move tree to depth. A promotion
// counts once per destination since the engine generates one move for it.
func Perft(s *State, depth int) uint64 {
	return PerftCached(s, depth, nil)
}

// PerftCached is Perft with an optional node cache; cache may be nil.
func PerftCached(s *State, depth int, cache NodeCounter) uint64 {
	if depth <= 0 {
		return 1
	}

	var key hashing.NodeKey
	if cache != nil && depth > 1 {
		key = hashing.KeyFor(s.board, depth)
		if nodes, ok := cache.Lookup(key); ok {
			return nodes
		}
	}

	moves, _ := s.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		s.makeMove(m, chess.Queen)
		nodes += PerftCached(s, depth-1, cache)
		s.mustUndo()
	}

	if cache != nil {
		cache.Store(key, nodes)
	}
	return nodes
}

// DivideResult is the node count below one root move.
type DivideResult struct {
	Move  chess.Move
	Nodes uint64
}

// Divide returns the perft count below each legal root move, in move
// generation order.
func Divide(s *State, depth int) []DivideResult {
	moves, _ := s.LegalMoves()
	results := make([]DivideResult, 0, len(moves))
	for _, m := range moves {
		s.makeMove(m, chess.Queen)
		results = append(results, DivideResult{Move: m, Nodes: Perft(s, depth-1)})
		s.mustUndo()
	}
	return results
}

// PlayUnchecked applies m without a legality check. It exists for callers
// that already hold a move from LegalMoves, such as the parallel perft
// driver, and skips the regeneration that ApplyMove performs.
func (s *State) PlayUnchecked(m chess.Move, promotion chess.Piece) {
	s.makeMove(m, promotion)
}
