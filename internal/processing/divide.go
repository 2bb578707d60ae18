package processing

import (
	"context"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// DivideOptions controls a parallel divide.
type DivideOptions struct {
	// Workers is the number of goroutines searching root moves.
	Workers int

	// CacheEntries bounds the shared node cache; 0 disables caching.
	CacheEntries int
}

// DivideReport is the outcome of a divide: one count per legal root move,
// in move generation order, plus cache statistics.
type DivideReport struct {
	Depth        int
	Moves        []engine.DivideResult
	Total        uint64
	Workers      int
	CacheHits    int
	CacheMisses  int
	CacheEntries int
	CacheFull    bool
}

// ByMove returns the node counts keyed by coordinate move text.
func (r *DivideReport) ByMove() map[string]uint64 {
	counts := make(map[string]uint64, len(r.Moves))
	for _, res := range r.Moves {
		counts[res.Move.String()] = res.Nodes
	}
	return counts
}

// SortedMoveNames returns the root moves' coordinate text in lexical order.
func (r *DivideReport) SortedMoveNames() []string {
	names := maps.Keys(r.ByMove())
	slices.Sort(names)
	return names
}

// Divide counts the perft nodes below each legal root move of s at depth,
// searching the root moves in parallel. s itself is not modified; each root
// move is played on its own clone.
//
// Cancelling ctx stops the search and Divide returns ctx's error.
func Divide(ctx context.Context, s *engine.State, depth int, opts DivideOptions) (*DivideReport, error) {
	if depth < 1 {
		errors.Violation("Divide", "depth %d is below 1", depth)
	}

	root := s.Clone()
	moves, _ := root.LegalMoves()
	report := &DivideReport{Depth: depth, Moves: make([]engine.DivideResult, len(moves))}
	if len(moves) == 0 {
		return report, nil
	}

	var counter engine.NodeCounter
	var cache *hashing.ThreadSafeNodeCache
	if opts.CacheEntries > 0 {
		cache = hashing.NewThreadSafeNodeCache(opts.CacheEntries)
		counter = cache
	}

	processFunc := func(item worker.WorkItem) worker.ProcessResult {
		return worker.ProcessResult{
			Move:  item.Move,
			Index: item.Index,
			Nodes: engine.PerftCached(item.State, item.Depth, counter),
		}
	}

	pool := worker.NewPoolWithOptions(processFunc,
		worker.WithWorkers(opts.Workers),
		worker.WithBufferSize(len(moves)),
		worker.WithContext(ctx),
	)
	pool.Start()
	report.Workers = pool.NumWorkers()

	// The buffer holds every root move, so TrySubmit only fails once the
	// pool is stopped.
	submitted := 0
	for i, m := range moves {
		if ctx.Err() != nil {
			pool.Stop()
		}
		child := root.Clone()
		child.PlayUnchecked(m, chess.Queen)
		if !pool.TrySubmit(worker.WorkItem{State: child, Move: m, Depth: depth - 1, Index: i}) {
			break
		}
		submitted++
	}
	go pool.Close()

	var firstErr error
	for result := range pool.Results() {
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
			}
			continue
		}
		report.Moves[result.Index] = engine.DivideResult{Move: result.Move, Nodes: result.Nodes}
		report.Total += result.Nodes
	}
	if firstErr == nil && submitted < len(moves) {
		firstErr = ctx.Err()
		if firstErr == nil {
			firstErr = worker.ErrStopped
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}

	if cache != nil {
		report.CacheHits, report.CacheMisses = cache.Stats()
		report.CacheEntries = cache.Len()
		report.CacheFull = cache.IsFull()
	}
	return report, nil
}
