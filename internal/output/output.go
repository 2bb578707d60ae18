// Package output formats position reports as text or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/processing"
)

// PerftResult is a plain node count at a fixed depth.
type PerftResult struct {
	Depth int
	Nodes uint64
}

// Report gathers everything printed about one position: the moves that led
// to it, its status and whichever optional sections were requested.
type Report struct {
	Applied    []chess.Move
	Undone     []chess.Move // most recent first
	ToMove     chess.Colour
	Status     engine.Status
	FEN        string
	Board      *chess.Board
	LegalMoves []chess.Move
	Positions  []uint64 // Zobrist keys from the start position to this one
	Perft      *PerftResult
	Divide     *processing.DivideReport
}

// NewReport captures the current position of s. The legal move list is
// always filled in; writers decide whether to print it.
func NewReport(s *engine.State) *Report {
	legal, toMove := s.LegalMoves()
	return &Report{
		ToMove:     toMove,
		Status:     s.Status(),
		FEN:        s.FEN(),
		Board:      s.Board(),
		LegalMoves: legal,
	}
}

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// OutputReport writes r as text, honouring the section switches in cfg.
func OutputReport(r *Report, cfg *config.Config, w io.Writer) {
	if len(r.Applied) > 0 {
		outputMoveList(w, "Moves", r.Applied)
	}
	if len(r.Undone) > 0 {
		outputMoveList(w, "Undone", r.Undone)
	}

	if cfg.Output.ShowBoard && r.Board != nil {
		OutputBoard(w, r.Board)
	}
	if cfg.Output.ShowFEN {
		fmt.Fprintf(w, "FEN: %s\n", r.FEN)
	}
	fmt.Fprintf(w, "To move: %s\n", r.ToMove)
	fmt.Fprintf(w, "Status: %s\n", r.Status)
	if len(r.Positions) > 0 {
		fmt.Fprintf(w, "Key: %016x\n", r.Positions[len(r.Positions)-1])
	}

	if cfg.Output.ListMoves {
		fmt.Fprintf(w, "Legal moves (%d):\n", len(r.LegalMoves))
		ow := NewOutputWriter(w, 80)
		for _, m := range r.LegalMoves {
			ow.Write(m.String())
		}
		if len(r.LegalMoves) > 0 {
			ow.NewLine()
		}
	}

	if r.Perft != nil {
		fmt.Fprintf(w, "Perft(%d): %d\n", r.Perft.Depth, r.Perft.Nodes)
	}
	if r.Divide != nil {
		outputDivide(w, r.Divide)
	}
}

// outputMoveList writes one numbered line of commentary per move.
func outputMoveList(w io.Writer, heading string, moves []chess.Move) {
	fmt.Fprintf(w, "%s:\n", heading)
	for i, m := range moves {
		fmt.Fprintf(w, "%3d. %-6s %s\n", i+1, m.String(), m.Commentary())
	}
}

func outputDivide(w io.Writer, d *processing.DivideReport) {
	counts := d.ByMove()
	for _, name := range d.SortedMoveNames() {
		fmt.Fprintf(w, "%s: %d\n", name, counts[name])
	}
	fmt.Fprintf(w, "\nMoves: %d\n", len(d.Moves))
	fmt.Fprintf(w, "Nodes: %d\n", d.Total)
	if d.CacheHits+d.CacheMisses > 0 {
		fmt.Fprintf(w, "Cache: %d hits, %d misses, %d entries\n", d.CacheHits, d.CacheMisses, d.CacheEntries)
	}
}

// OutputBoard draws the board with rank 8 at the top. Light pieces are
// uppercase, dark pieces lowercase and empty squares dots.
func OutputBoard(w io.Writer, board *chess.Board) {
	var sb strings.Builder
	for row := 0; row < chess.BoardWidth; row++ {
		fmt.Fprintf(&sb, "%d ", chess.BoardWidth-row)
		for col := 0; col < chess.BoardWidth; col++ {
			piece := board.Get(chess.Sq(row, col))
			if piece == chess.Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(engine.ColouredPieceToFENLetter(piece))
			}
			if col < chess.BoardWidth-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	fmt.Fprint(w, sb.String())
}
