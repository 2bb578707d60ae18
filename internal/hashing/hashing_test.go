package hashing

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

func TestZobristHashConsistency(t *testing.T) {
	// Create two identical boards and verify they produce the same hash
	board1 := chess.NewBoard()
	board1.SetupInitialPosition()

	board2 := chess.NewBoard()
	board2.SetupInitialPosition()

	hash1 := GenerateZobristHash(board1)
	hash2 := GenerateZobristHash(board2)

	if hash1 != hash2 {
		t.Errorf("Identical boards produced different hashes: %x != %x", hash1, hash2)
	}
}

func TestZobristHashDifferentPositions(t *testing.T) {
	board1 := chess.NewBoard()
	board1.SetupInitialPosition()

	// Manually move e2 to e4
	board2 := chess.NewBoard()
	board2.SetupInitialPosition()
	board2.Set(chess.Sq(6, 4), chess.Empty)
	board2.Set(chess.Sq(4, 4), chess.L(chess.Pawn))

	if GenerateZobristHash(board1) == GenerateZobristHash(board2) {
		t.Error("Different positions produced the same hash")
	}
}

func TestZobristHashSideToMove(t *testing.T) {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	light := GenerateZobristHash(board)

	board.ToMove = chess.Dark
	dark := GenerateZobristHash(board)

	if light == dark {
		t.Error("Side to move does not change the hash")
	}
}

func TestZobristHashEmptyBoard(t *testing.T) {
	board := chess.NewBoard()
	board.ToMove = chess.Dark
	if got := GenerateZobristHash(board); got != 0 {
		t.Errorf("GenerateZobristHash(empty, dark to move) = %x, want 0", got)
	}
}

func TestWeakHashConsistency(t *testing.T) {
	board1 := chess.NewBoard()
	board1.SetupInitialPosition()

	board2 := chess.NewBoard()
	board2.SetupInitialPosition()

	hash1 := WeakHash(board1)
	hash2 := WeakHash(board2)

	if hash1 != hash2 {
		t.Errorf("Identical boards produced different weak hashes: %x != %x", hash1, hash2)
	}
}

func TestNodeCache(t *testing.T) {
	cache := NewNodeCache(0)
	board := chess.NewBoard()
	board.SetupInitialPosition()

	key := KeyFor(board, 3)
	if _, ok := cache.Lookup(key); ok {
		t.Fatal("Lookup() on empty cache returned ok")
	}

	cache.Store(key, 8902)
	got, ok := cache.Lookup(key)
	if !ok || got != 8902 {
		t.Errorf("Lookup() = (%d, %v), want (8902, true)", got, ok)
	}

	// Same position at another depth is a different entry
	if _, ok := cache.Lookup(KeyFor(board, 2)); ok {
		t.Error("Lookup() at a different depth returned ok")
	}

	hits, misses := cache.Stats()
	if hits != 1 || misses != 2 {
		t.Errorf("Stats() = (%d, %d), want (1, 2)", hits, misses)
	}
}

func TestNodeCacheCapacity(t *testing.T) {
	cache := NewNodeCache(2)
	for depth := 1; depth <= 3; depth++ {
		cache.Store(NodeKey{Hash: 1, Depth: depth}, uint64(depth))
	}

	if cache.Len() != 2 {
		t.Errorf("Len() = %d, want 2", cache.Len())
	}
	if !cache.IsFull() {
		t.Error("IsFull() = false, want true")
	}
	if _, ok := cache.Lookup(NodeKey{Hash: 1, Depth: 3}); ok {
		t.Error("entry stored past capacity")
	}

	// Updating an existing key is still allowed when full
	cache.Store(NodeKey{Hash: 1, Depth: 1}, 99)
	if got, _ := cache.Lookup(NodeKey{Hash: 1, Depth: 1}); got != 99 {
		t.Errorf("Lookup() after update = %d, want 99", got)
	}
}
