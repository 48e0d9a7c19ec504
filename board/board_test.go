package board_test

import (
	"testing"

	"castellan/board"
	"castellan/position"
)

func mustBoard(t *testing.T, fen string) *board.Board {
	t.Helper()
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		t.Fatalf("NewBoard(%q): %v", fen, err)
	}
	return b
}

func mustApply(t *testing.T, b *board.Board, notation string) {
	t.Helper()
	mv, err := b.ParseMove(notation)
	if err != nil {
		t.Fatalf("ParseMove(%q): %v", notation, err)
	}
	if !b.Apply(mv) {
		t.Fatalf("Apply(%q) rejected", notation)
	}
}

func TestApply(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		fen   string
		moves []string
		want  string
	}{
		{
			name:  "pawn double push sets en passant target",
			fen:   board.DefaultStartingPositionFEN,
			moves: []string{"e2e4"},
			want:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		},
		{
			name:  "quiet reply clears en passant target",
			fen:   board.DefaultStartingPositionFEN,
			moves: []string{"e2e4", "g8f6"},
			want:  "rnbqkb1r/pppppppp/5n2/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 1 2",
		},
		{
			name:  "en passant capture removes the bypassed pawn",
			fen:   "rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 2",
			moves: []string{"d4e3"},
			want:  "rnbqkbnr/ppp1pppp/8/8/8/4p3/PPPP1PPP/RNBQKBNR w KQkq - 0 3",
		},
		{
			name:  "white kingside castle moves the rook too",
			fen:   "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
			moves: []string{"e1g1"},
			want:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R4RK1 b kq - 1 1",
		},
		{
			name:  "black queenside castle moves the rook too",
			fen:   "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R b KQkq - 0 1",
			moves: []string{"e8c8"},
			want:  "2kr3r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQ - 1 2",
		},
		{
			name:  "promotion replaces the pawn",
			fen:   "4k3/P7/8/8/8/8/8/4K3 w - - 4 40",
			moves: []string{"a7a8q"},
			want:  "Q3k3/8/8/8/8/8/8/4K3 b - - 0 40",
		},
		{
			name:  "underpromotion with capture",
			fen:   "1n2k3/P7/8/8/8/8/8/4K3 w - - 0 1",
			moves: []string{"a7b8n"},
			want:  "1N2k3/8/8/8/8/8/8/4K3 b - - 0 1",
		},
		{
			name:  "king move revokes both rights",
			fen:   "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
			moves: []string{"e1d1"},
			want:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R2K3R b kq - 1 1",
		},
		{
			name:  "rook move revokes its right",
			fen:   "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
			moves: []string{"h1g1"},
			want:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K1R1 b Qkq - 1 1",
		},
		{
			name:  "capturing a rook at home revokes the victim's right",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			moves: []string{"a1a8"},
			want:  "R3k2r/8/8/8/8/8/8/4K2R b Kk - 0 1",
		},
		{
			name:  "capture resets the half move clock",
			fen:   "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2",
			moves: []string{"e4d5"},
			want:  "rnbqkbnr/ppp1pppp/8/3P4/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 2",
		},
		{
			name:  "quiet piece moves advance the half move clock",
			fen:   board.DefaultStartingPositionFEN,
			moves: []string{"g1f3", "g8f6", "b1c3"},
			want:  "rnbqkb1r/pppppppp/5n2/8/8/2N2N2/PPPPPPPP/R1BQKB1R b KQkq - 3 2",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := mustBoard(t, tt.fen)
			for _, notation := range tt.moves {
				mustApply(t, b, notation)
			}
			if got := b.FEN(); got != tt.want {
				t.Errorf("FEN() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApplyRejects(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		mv   board.Move
	}{
		{"empty source square", board.Move{From: position.E4, To: position.E5}},
		{"opponent's piece", board.Move{From: position.E7, To: position.E5}},
		{"off-board destination", board.Move{From: position.E2, To: position.Pos(64)}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, _ := board.NewBoard()
			before := b.FEN()
			if b.Apply(tt.mv) {
				t.Fatal("Apply() accepted an invalid move")
			}
			if got := b.FEN(); got != before {
				t.Errorf("board mutated by rejected move: %q", got)
			}
		})
	}
}

func TestCloneIsolation(t *testing.T) {
	t.Parallel()
	b, _ := board.NewBoard()
	snapshot := b.FEN()

	c := b.Clone()
	mustApply(t, &c, "e2e4")
	mustApply(t, &c, "e7e5")

	if got := b.FEN(); got != snapshot {
		t.Errorf("original mutated through clone: %q", got)
	}
	if c.FEN() == snapshot {
		t.Error("clone did not record the applied moves")
	}
}

func TestApplyNull(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	b.ApplyNull()
	if got := b.Turn(); got != board.SideWhite {
		t.Errorf("Turn() = %s, want %s", got, board.SideWhite)
	}
	if _, ok := b.EnPassantTarget(); ok {
		t.Error("en passant target should be cleared by the null move")
	}
	if got := b.At(position.E4); got.Piece != board.PiecePawn || got.Side != board.SideWhite {
		t.Error("pieces must not move on a null move")
	}
}

func TestReset(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 7 42")
	b.Reset()
	if got := b.FEN(); got != board.DefaultStartingPositionFEN {
		t.Errorf("FEN() after Reset = %q, want %q", got, board.DefaultStartingPositionFEN)
	}
}
