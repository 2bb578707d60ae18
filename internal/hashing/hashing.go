// Package hashing provides position keys and the node cache used by perft.
package hashing

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// numPieceIndices covers every kind (Pawn..King) in both colours.
const numPieceIndices = 2 * int(chess.NumPieceValues)

var (
	// pieceKeys[square][piece index] holds the Zobrist key of a piece on a square.
	pieceKeys [chess.BoardWidth * chess.BoardWidth][numPieceIndices]uint64
	// lightToMoveKey is XORed in when light is to move.
	lightToMoveKey uint64
)

func init() {
	// Fixed seed so keys are identical across runs.
	state := uint64(0x9E3779B97F4A7C15)
	for sq := range pieceKeys {
		for p := range pieceKeys[sq] {
			pieceKeys[sq][p] = splitMix64(&state)
		}
	}
	lightToMoveKey = splitMix64(&state)
}

// splitMix64 advances state and returns the next pseudo-random value.
func splitMix64(state *uint64) uint64 {
	*state += 0x9E3779B97F4A7C15
	z := *state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// pieceIndex maps a coloured piece onto 0..numPieceIndices-1.
func pieceIndex(piece chess.Piece) int {
	return int(chess.ExtractPiece(piece))*2 + int(chess.ExtractColour(piece))
}

// GenerateZobristHash returns the Zobrist key of the board: every piece on
// its square plus the side to move.
func GenerateZobristHash(board *chess.Board) uint64 {
	var hash uint64
	for row := 0; row < chess.BoardWidth; row++ {
		for col := 0; col < chess.BoardWidth; col++ {
			piece := board.Get(chess.Sq(row, col))
			if !chess.IsColoured(piece) {
				continue
			}
			hash ^= pieceKeys[row*chess.BoardWidth+col][pieceIndex(piece)]
		}
	}
	if board.ToMove == chess.Light {
		hash ^= lightToMoveKey
	}
	return hash
}

// WeakHash is a cheap additive hash of the piece placement, used as a
// second check alongside the Zobrist key.
func WeakHash(board *chess.Board) uint64 {
	var hash uint64
	for row := 0; row < chess.BoardWidth; row++ {
		for col := 0; col < chess.BoardWidth; col++ {
			piece := board.Get(chess.Sq(row, col))
			if !chess.IsColoured(piece) {
				continue
			}
			hash += uint64(piece) * uint64(row*chess.BoardWidth+col+1)
		}
	}
	return hash
}

// NodeKey identifies a perft subtree: a position and the remaining depth.
type NodeKey struct {
	Hash  uint64
	Weak  uint64
	Depth int
}

// KeyFor builds the NodeKey of board searched to depth.
func KeyFor(board *chess.Board, depth int) NodeKey {
	return NodeKey{Hash: GenerateZobristHash(board), Weak: WeakHash(board), Depth: depth}
}

// NodeCache memoises perft node counts. It is not safe for concurrent use;
// see ThreadSafeNodeCache.
type NodeCache struct {
	entries    map[NodeKey]uint64
	maxEntries int
	hits       int
	misses     int
}

// NewNodeCache creates a cache holding at most maxEntries counts.
// maxEntries of 0 means unlimited capacity.
func NewNodeCache(maxEntries int) *NodeCache {
	return &NodeCache{
		entries:    make(map[NodeKey]uint64),
		maxEntries: maxEntries,
	}
}

// Lookup returns the cached count for key.
func (c *NodeCache) Lookup(key NodeKey) (uint64, bool) {
	n, ok := c.entries[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return n, ok
}

// Store records the count for key. Once the cache is full new keys are dropped.
func (c *NodeCache) Store(key NodeKey, nodes uint64) {
	if _, ok := c.entries[key]; !ok && c.IsFull() {
		return
	}
	c.entries[key] = nodes
}

// IsFull returns true if the cache has reached its capacity limit.
// Always returns false for unlimited capacity (maxEntries = 0).
func (c *NodeCache) IsFull() bool {
	return c.maxEntries > 0 && len(c.entries) >= c.maxEntries
}

// Len returns the number of cached entries.
func (c *NodeCache) Len() int {
	return len(c.entries)
}

// Stats returns the number of lookup hits and misses.
func (c *NodeCache) Stats() (hits, misses int) {
	return c.hits, c.misses
}
