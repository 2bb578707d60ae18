package output

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

// JSONReport represents a position report in JSON format.
type JSONReport struct {
	Moves      []JSONMove  `json:"moves,omitempty"`
	Undone     []JSONMove  `json:"undone,omitempty"`
	ToMove     string      `json:"toMove"`
	Status     string      `json:"status"`
	FEN        string      `json:"fen,omitempty"`
	Board      []string    `json:"board,omitempty"`
	LegalMoves []string    `json:"legalMoves,omitempty"`
	Positions  []string    `json:"positionKeys,omitempty"`
	Perft      *JSONPerft  `json:"perft,omitempty"`
	Divide     *JSONDivide `json:"divide,omitempty"`
}

// JSONMove represents a single move in JSON format.
type JSONMove struct {
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Colour     string `json:"colour"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  bool   `json:"promotion,omitempty"`
	PromotedTo string `json:"promotedTo,omitempty"`
	Commentary string `json:"commentary"`
}

// JSONPerft represents a perft count in JSON format.
type JSONPerft struct {
	Depth int    `json:"depth"`
	Nodes uint64 `json:"nodes"`
}

// JSONDivide represents a divide report in JSON format.
type JSONDivide struct {
	Depth        int               `json:"depth"`
	Moves        map[string]uint64 `json:"moves"`
	Total        uint64            `json:"total"`
	Workers      int               `json:"workers"`
	CacheHits    int               `json:"cacheHits,omitempty"`
	CacheMisses  int               `json:"cacheMisses,omitempty"`
	CacheEntries int               `json:"cacheEntries,omitempty"`
	CacheFull    bool              `json:"cacheFull,omitempty"`
}

// JSONOutput represents the top-level JSON output structure.
type JSONOutput struct {
	Reports []*JSONReport `json:"reports"`
}

// ReportToJSON converts a report to its JSON representation, dropping the
// sections cfg switches off.
func ReportToJSON(r *Report, cfg *config.Config) *JSONReport {
	jr := &JSONReport{
		Moves:  convertMoveList(r.Applied),
		Undone: convertMoveList(r.Undone),
		ToMove: colourName(r.ToMove),
		Status: r.Status.String(),
	}

	if cfg.Output.ShowFEN {
		jr.FEN = r.FEN
	}
	if cfg.Output.ShowBoard && r.Board != nil {
		jr.Board = boardRows(r.Board)
	}
	if cfg.Output.ListMoves {
		jr.LegalMoves = make([]string, len(r.LegalMoves))
		for i, m := range r.LegalMoves {
			jr.LegalMoves[i] = m.String()
		}
	}
	for _, key := range r.Positions {
		jr.Positions = append(jr.Positions, fmt.Sprintf("%016x", key))
	}
	if r.Perft != nil {
		jr.Perft = &JSONPerft{Depth: r.Perft.Depth, Nodes: r.Perft.Nodes}
	}
	if r.Divide != nil {
		jr.Divide = &JSONDivide{
			Depth:        r.Divide.Depth,
			Moves:        r.Divide.ByMove(),
			Total:        r.Divide.Total,
			Workers:      r.Divide.Workers,
			CacheHits:    r.Divide.CacheHits,
			CacheMisses:  r.Divide.CacheMisses,
			CacheEntries: r.Divide.CacheEntries,
			CacheFull:    r.Divide.CacheFull,
		}
	}

	return jr
}

// convertMoveList converts a list of moves to JSON format.
func convertMoveList(moves []chess.Move) []JSONMove {
	if len(moves) == 0 {
		return nil
	}
	result := make([]JSONMove, len(moves))
	for i, m := range moves {
		result[i] = convertSingleMove(m)
	}
	return result
}

// convertSingleMove converts a single move to JSON format.
func convertSingleMove(m chess.Move) JSONMove {
	jm := JSONMove{
		UCI:        m.String(),
		From:       m.From.String(),
		To:         m.To.String(),
		Colour:     colourName(chess.ExtractColour(m.Moved)),
		Piece:      pieceTypeName(chess.ExtractPiece(m.Moved)),
		Promotion:  m.Promotion,
		Commentary: m.Commentary(),
	}
	if m.IsCapture() {
		jm.Captured = pieceTypeName(chess.ExtractPiece(m.Captured))
	}
	if chess.IsPromotionChoice(m.PromotedTo) {
		jm.PromotedTo = pieceTypeName(m.PromotedTo)
	}
	return jm
}

// boardRows renders each board row as a FEN-style string of eight
// characters, using '.' for empty squares.
func boardRows(board *chess.Board) []string {
	rows := make([]string, chess.BoardWidth)
	for row := 0; row < chess.BoardWidth; row++ {
		buf := make([]byte, chess.BoardWidth)
		for col := 0; col < chess.BoardWidth; col++ {
			piece := board.Get(chess.Sq(row, col))
			if piece == chess.Empty {
				buf[col] = '.'
				continue
			}
			letter := chess.ExtractPiece(piece).Letter()
			if chess.ExtractColour(piece) == chess.Dark {
				letter += 'a' - 'A'
			}
			buf[col] = letter
		}
		rows[row] = string(buf)
	}
	return rows
}

// colourName returns "light" or "dark".
func colourName(c chess.Colour) string {
	if c == chess.Dark {
		return "dark"
	}
	return "light"
}

// pieceTypeName returns the piece type as a string.
func pieceTypeName(p chess.Piece) string {
	switch p {
	case chess.Pawn:
		return "pawn"
	case chess.Knight:
		return "knight"
	case chess.Bishop:
		return "bishop"
	case chess.Rook:
		return "rook"
	case chess.Queen:
		return "queen"
	case chess.King:
		return "king"
	default:
		return ""
	}
}
