package output

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/processing"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// playedReport replays moves from the starting position and returns the
// resulting report.
func playedReport(t *testing.T, moves ...string) *Report {
	t.Helper()
	s := engine.NewGame()
	analysis, err := processing.AnalyzeGame(s, moves, chess.Queen)
	if err != nil {
		t.Fatalf("AnalyzeGame: %v", err)
	}
	r := NewReport(s)
	r.Applied = analysis.Applied
	return r
}

// TestTextWriter_WriteReport verifies the default text sections
func TestTextWriter_WriteReport(t *testing.T) {
	r := playedReport(t, "e2e4", "e7e5", "g1f3")

	var buf bytes.Buffer
	cfg := config.NewConfig()
	writer := NewTextWriter(&buf, cfg)
	if err := writer.WriteReport(r); err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Moves:",
		"  1. e2e4   P(e2) to e4",
		"  3. g1f3   N(g1) to f3",
		"FEN: rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b - - 0 2",
		"To move: Dark",
		"Status: in progress",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Legal moves") {
		t.Error("legal moves should only be listed on request")
	}
}

// TestTextWriter_Sections verifies the optional sections switch on and off
func TestTextWriter_Sections(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.Config
		want    []string
		notWant []string
	}{
		{
			name:    "board and legal moves",
			cfg:     config.NewConfigBuilder().ShowBoard(true).ListMoves(true).Build(),
			want:    []string{"8 r n b q k b n r", "1 R N B Q K B N R", "  a b c d e f g h", "Legal moves (20):", "a2a3"},
			notWant: nil,
		},
		{
			name: "no FEN",
			cfg: func() *config.Config {
				c := config.NewConfig()
				c.Output.ShowFEN = false
				return c
			}(),
			want:    []string{"Status: in progress"},
			notWant: []string{"FEN:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			OutputReport(NewReport(engine.NewGame()), tt.cfg, &buf)
			out := buf.String()
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
			for _, notWant := range tt.notWant {
				if strings.Contains(out, notWant) {
					t.Errorf("output should not contain %q:\n%s", notWant, out)
				}
			}
		})
	}
}

// TestTextWriter_Terminal verifies checkmate and stalemate are reported
func TestTextWriter_Terminal(t *testing.T) {
	tests := []struct {
		fen  string
		want string
	}{
		{testutil.BackRankMateFEN, "Status: checkmate"},
		{testutil.StalemateFEN, "Status: stalemate"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			s, err := engine.NewGameFromFEN(tt.fen)
			if err != nil {
				t.Fatal(err)
			}
			var buf bytes.Buffer
			cfg := config.NewConfigBuilder().ListMoves(true).Build()
			OutputReport(NewReport(s), cfg, &buf)
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, buf.String())
			}
			if !strings.Contains(buf.String(), "Legal moves (0):") {
				t.Errorf("expected an empty legal move list:\n%s", buf.String())
			}
		})
	}
}

// TestTextWriter_PerftAndDivide verifies node count sections
func TestTextWriter_PerftAndDivide(t *testing.T) {
	s := engine.NewGame()
	divide, err := processing.Divide(context.Background(), s, 1, processing.DivideOptions{Workers: 2})
	if err != nil {
		t.Fatal(err)
	}

	r := NewReport(s)
	r.Perft = &PerftResult{Depth: 2, Nodes: engine.Perft(s, 2)}
	r.Divide = divide

	var buf bytes.Buffer
	OutputReport(r, config.NewConfig(), &buf)
	out := buf.String()
	for _, want := range []string{"Perft(2): 400", "a2a3: 1", "h2h4: 1", "Moves: 20", "Nodes: 20"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "a2a3: 1") > strings.Index(out, "h2h4: 1") {
		t.Error("divide lines should be sorted by move")
	}
	if strings.Contains(out, "Cache:") {
		t.Error("cache line should be omitted when caching is off")
	}
}

// TestTextWriter_Undone verifies undone moves are listed
func TestTextWriter_Undone(t *testing.T) {
	s := engine.NewGame()
	if _, err := processing.AnalyzeGame(s, []string{"e2e4", "d7d5", "e4d5"}, chess.Queen); err != nil {
		t.Fatal(err)
	}
	undone, err := processing.UndoMoves(s, 1)
	if err != nil {
		t.Fatal(err)
	}
	r := NewReport(s)
	r.Undone = undone

	var buf bytes.Buffer
	OutputReport(r, config.NewConfig(), &buf)
	if !strings.Contains(buf.String(), "P(e4) to d5(P captured!)") {
		t.Errorf("undone capture missing:\n%s", buf.String())
	}
}

// TestJSONWriter_WriteReport verifies the batched JSON structure
func TestJSONWriter_WriteReport(t *testing.T) {
	r := playedReport(t, "e2e4", "d7d5", "e4d5")

	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().ListMoves(true).ShowBoard(true).Build()
	writer := NewJSONWriter(&buf, cfg)
	if err := writer.WriteReport(r); err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Error("batch writer should not write before Flush")
	}
	if err := writer.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	var decoded JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(decoded.Reports) != 1 {
		t.Fatalf("got %d reports, want 1", len(decoded.Reports))
	}

	jr := decoded.Reports[0]
	testutil.AssertEqual(t, len(jr.Moves), 3)
	testutil.AssertEqual(t, jr.Moves[2], JSONMove{
		UCI:        "e4d5",
		From:       "e4",
		To:         "d5",
		Colour:     "light",
		Piece:      "pawn",
		Captured:   "pawn",
		Commentary: "P(e4) to d5(P captured!)",
	})
	testutil.AssertEqual(t, jr.ToMove, "dark")
	testutil.AssertEqual(t, jr.Status, "in progress")
	testutil.AssertEqual(t, jr.Board[0], "rnbqkbnr")
	testutil.AssertEqual(t, jr.Board[3], "...P....")
	if len(jr.LegalMoves) == 0 {
		t.Error("legal moves should be listed")
	}
}

// TestJSONWriter_Single verifies single mode writes immediately
func TestJSONWriter_Single(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithJSONOutput(true).Build()

	writer := NewWriter(&buf, cfg)
	if _, ok := writer.(*JSONWriter); !ok {
		t.Fatalf("NewWriter returned %T, want *JSONWriter", writer)
	}
	if err := writer.WriteReport(NewReport(engine.NewGame())); err != nil {
		t.Fatal(err)
	}

	var jr JSONReport
	if err := json.Unmarshal(buf.Bytes(), &jr); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	testutil.AssertEqual(t, jr.FEN, engine.InitialFEN)
	if jr.LegalMoves != nil || jr.Board != nil {
		t.Error("optional sections should be omitted by default")
	}
}

// TestJSONWriter_Promotion verifies promotion and divide fields
func TestJSONWriter_Promotion(t *testing.T) {
	s, err := engine.NewGameFromFEN(testutil.PromotionFEN)
	if err != nil {
		t.Fatal(err)
	}
	analysis, err := processing.AnalyzeGame(s, []string{"a7a8n"}, chess.Queen)
	if err != nil {
		t.Fatal(err)
	}
	r := NewReport(s)
	r.Applied = analysis.Applied
	r.Divide, err = processing.Divide(context.Background(), s, 1, processing.DivideOptions{Workers: 1})
	if err != nil {
		t.Fatal(err)
	}

	jr := ReportToJSON(r, config.NewConfig())
	if !jr.Moves[0].Promotion {
		t.Error("promotion flag should be set")
	}
	testutil.AssertEqual(t, jr.Moves[0].UCI, "a7a8n")
	testutil.AssertEqual(t, jr.Moves[0].PromotedTo, "knight")
	if jr.Divide == nil || jr.Divide.Total != uint64(len(r.Divide.Moves)) {
		t.Errorf("Divide = %+v", jr.Divide)
	}
	testutil.AssertEqual(t, jr.Divide.Workers, 1)
}

// TestJSONWriter_PromotedMoveReplays verifies the reported uci rebuilds the
// position, including the piece chosen
func TestJSONWriter_PromotedMoveReplays(t *testing.T) {
	s, err := engine.NewGameFromFEN(testutil.PromotionFEN)
	if err != nil {
		t.Fatal(err)
	}
	analysis, err := processing.AnalyzeGame(s, []string{"a7a8r"}, chess.Queen)
	if err != nil {
		t.Fatal(err)
	}
	r := NewReport(s)
	r.Applied = analysis.Applied

	var buf bytes.Buffer
	writer := NewJSONWriter(&buf, config.NewConfig())
	if err := writer.WriteReport(r); err != nil {
		t.Fatal(err)
	}
	var jr JSONReport
	if err := json.Unmarshal(buf.Bytes(), &jr); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	testutil.AssertEqual(t, jr.Moves[0].UCI, "a7a8r")
	testutil.AssertEqual(t, jr.Moves[0].PromotedTo, "rook")

	replay, err := engine.NewGameFromFEN(testutil.PromotionFEN)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := processing.AnalyzeGame(replay, []string{jr.Moves[0].UCI}, chess.Queen); err != nil {
		t.Fatalf("replay %s: %v", jr.Moves[0].UCI, err)
	}
	testutil.AssertEqual(t, replay.FEN(), jr.FEN)

	buf.Reset()
	if err := NewTextWriter(&buf, config.NewConfig()).WriteReport(r); err != nil {
		t.Fatal(err)
	}
	testutil.AssertContains(t, buf.String(), "  1. a7a8r  P(a7) to a8(promoted to R)")
}

// TestWriters_PositionKeys verifies the Zobrist keys are reported
func TestWriters_PositionKeys(t *testing.T) {
	s := engine.NewGame()
	analysis, err := processing.AnalyzeGame(s, []string{"g1f3", "g8f6", "f3g1", "f6g8"}, chess.Queen)
	if err != nil {
		t.Fatal(err)
	}
	r := NewReport(s)
	r.Applied = analysis.Applied
	r.Positions = analysis.Positions

	jr := ReportToJSON(r, config.NewConfig())
	if len(jr.Positions) != 5 {
		t.Fatalf("positionKeys has %d entries, want 5", len(jr.Positions))
	}
	testutil.AssertEqual(t, jr.Positions[4], jr.Positions[0])

	var buf bytes.Buffer
	if err := NewTextWriter(&buf, config.NewConfig()).WriteReport(r); err != nil {
		t.Fatal(err)
	}
	testutil.AssertContains(t, buf.String(), "Key: "+jr.Positions[4]+"\n")
}

// TestReportWriter_Interface verifies that writers implement the interface
func TestReportWriter_Interface(t *testing.T) {
	cfg := config.NewConfig()
	var buf bytes.Buffer

	var _ ReportWriter = NewTextWriter(&buf, cfg)
	var _ ReportWriter = NewJSONWriter(&buf, cfg)
}

// TestJSONWriter_Close verifies Close flushes pending reports
func TestJSONWriter_Close(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONWriter(&buf, config.NewConfig())
	if err := writer.WriteReport(NewReport(engine.NewGame())); err != nil {
		t.Fatal(err)
	}
	if err := writer.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"reports"`) {
		t.Errorf("Close did not flush:\n%s", buf.String())
	}

	// Nothing left to write.
	buf.Reset()
	if err := writer.Close(); err != nil || buf.Len() != 0 {
		t.Errorf("second Close wrote %q, err %v", buf.String(), err)
	}
}

// TestOutputWriter_Wrap verifies long lists wrap at the line limit
func TestOutputWriter_Wrap(t *testing.T) {
	var buf bytes.Buffer
	ow := NewOutputWriter(&buf, 10)
	for _, s := range []string{"e2e4", "d2d4", "g1f3"} {
		ow.Write(s)
	}
	ow.NewLine()
	testutil.AssertEqual(t, buf.String(), "e2e4 d2d4\ng1f3\n")
}
