package bench_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"castellan/bench"
	"castellan/board"
)

// Reference figures from https://www.chessprogramming.org/Perft_Results.
func TestPerftDetailed(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		fen   string
		depth int
		want  bench.Results
	}{
		{
			name:  "startpos depth 0",
			fen:   board.DefaultStartingPositionFEN,
			depth: 0,
			want:  bench.Results{Nodes: 1},
		},
		{
			name:  "startpos depth 1",
			fen:   board.DefaultStartingPositionFEN,
			depth: 1,
			want:  bench.Results{Nodes: 20},
		},
		{
			name:  "startpos depth 2",
			fen:   board.DefaultStartingPositionFEN,
			depth: 2,
			want:  bench.Results{Nodes: 400},
		},
		{
			name:  "startpos depth 3",
			fen:   board.DefaultStartingPositionFEN,
			depth: 3,
			want:  bench.Results{Nodes: 8902, Captures: 34, Checks: 12},
		},
		{
			name:  "startpos depth 4",
			fen:   board.DefaultStartingPositionFEN,
			depth: 4,
			want:  bench.Results{Nodes: 197281, Captures: 1576, Checks: 469},
		},
		{
			name:  "kiwipete depth 1",
			fen:   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
			depth: 1,
			want:  bench.Results{Nodes: 48, Captures: 8, Castles: 2},
		},
		{
			name:  "kiwipete depth 2",
			fen:   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
			depth: 2,
			want:  bench.Results{Nodes: 2039, Captures: 351, EnPassants: 1, Castles: 91, Checks: 3},
		},
		{
			name:  "kiwipete depth 3",
			fen:   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
			depth: 3,
			want:  bench.Results{Nodes: 97862, Captures: 17102, EnPassants: 45, Castles: 3162, Checks: 993},
		},
		{
			name:  "position 3 depth 1",
			fen:   "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
			depth: 1,
			want:  bench.Results{Nodes: 14, Captures: 1, Checks: 2},
		},
		{
			name:  "position 3 depth 3",
			fen:   "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
			depth: 3,
			want:  bench.Results{Nodes: 2812, Captures: 209, EnPassants: 2, Checks: 267},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, err := board.NewBoard(board.WithFEN(tt.fen))
			if err != nil {
				t.Fatalf("NewBoard: %v", err)
			}
			got := bench.PerftDetailed(b, tt.depth)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("PerftDetailed mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPerft(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		fen   string
		depth int
		want  uint64
	}{
		{"startpos depth 4", board.DefaultStartingPositionFEN, 4, 197281},
		{"position 3 depth 4", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 4, 43238},
		{"promotion-heavy depth 3", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 3, 62379},
		{"position 6 depth 2", "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10", 2, 2079},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, err := board.NewBoard(board.WithFEN(tt.fen))
			if err != nil {
				t.Fatalf("NewBoard: %v", err)
			}
			if got := bench.Perft(b, tt.depth); got != tt.want {
				t.Errorf("Perft(%d) = %d, want %d", tt.depth, got, tt.want)
			}
		})
	}
}

func TestRun(t *testing.T) {
	t.Parallel()
	out := make(chan string, 32)
	done := make(chan error, 1)
	go func() {
		done <- bench.Run(2, board.DefaultStartingPositionFEN, true, out)
		close(out)
	}()

	var lines []string
	for line := range out {
		lines = append(lines, line)
	}
	if err := <-done; err != nil {
		t.Fatalf("Run: %v", err)
	}
	// 20 root move subtotals plus the summary line.
	if len(lines) != 21 {
		t.Errorf("got %d output lines, want 21", len(lines))
	}
}

func TestRunInvalidFEN(t *testing.T) {
	t.Parallel()
	out := make(chan string, 1)
	if err := bench.Run(1, "not a fen", false, out); err == nil {
		t.Error("Run() accepted malformed FEN")
	}
}
