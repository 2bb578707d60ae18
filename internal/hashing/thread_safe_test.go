package hashing

import (
	"sync"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

func TestThreadSafeNodeCache_Concurrent(t *testing.T) {
	cache := NewThreadSafeNodeCache(0)
	board := chess.NewBoard()
	board.SetupInitialPosition()

	const numWorkers = 10
	const depths = 20

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for depth := 1; depth <= depths; depth++ {
				key := KeyFor(board, depth)
				if _, ok := cache.Lookup(key); !ok {
					cache.Store(key, uint64(depth))
				}
			}
		}()
	}
	wg.Wait()

	if cache.Len() != depths {
		t.Errorf("Len() = %d, want %d", cache.Len(), depths)
	}

	hits, misses := cache.Stats()
	if hits+misses != numWorkers*depths {
		t.Errorf("hits+misses = %d, want %d", hits+misses, numWorkers*depths)
	}

	for depth := 1; depth <= depths; depth++ {
		got, ok := cache.Lookup(KeyFor(board, depth))
		if !ok || got != uint64(depth) {
			t.Errorf("Lookup(depth %d) = (%d, %v), want (%d, true)", depth, got, ok, depth)
		}
	}
}

func TestThreadSafeNodeCache_Capacity(t *testing.T) {
	cache := NewThreadSafeNodeCache(1)
	cache.Store(NodeKey{Hash: 1, Depth: 1}, 1)
	cache.Store(NodeKey{Hash: 2, Depth: 1}, 2)

	if !cache.IsFull() {
		t.Error("IsFull() = false, want true")
	}
	if cache.Len() != 1 {
		t.Errorf("Len() = %d, want 1", cache.Len())
	}
}
