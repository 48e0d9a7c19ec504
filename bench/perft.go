// Package bench walks the legal move tree to fixed depths and counts what it
// finds, for validating move generation against published reference figures.
package bench

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"castellan/board"
	"castellan/movegen"
)

// Results is a perft node breakdown. Moves are classified at the final ply
// only, the convention the published reference tables use. Captures include
// en passant, and Checks counts positions that leave the opponent in check.
type Results struct {
	Nodes      uint64
	Captures   uint64
	EnPassants uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
}

// Perft counts the leaf nodes of the legal move tree at the given depth.
func Perft(b *board.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	mvs := movegen.Legal(b)
	if depth == 1 {
		return uint64(len(mvs))
	}
	var sum uint64
	for _, mv := range mvs {
		bb := b.Clone()
		bb.Apply(mv)
		sum += Perft(&bb, depth-1)
	}
	return sum
}

// PerftDetailed counts leaf nodes like Perft and additionally classifies
// every final-ply move.
func PerftDetailed(b *board.Board, depth int) Results {
	var res Results
	if depth <= 0 {
		res.Nodes = 1
		return res
	}
	runPerftDetailed(b, depth, &res)
	return res
}

func runPerftDetailed(b *board.Board, depth int, res *Results) {
	mvs := movegen.Legal(b)
	if depth == 1 {
		res.Nodes += uint64(len(mvs))
		for _, mv := range mvs {
			classify(b, mv, res)
		}
		return
	}
	for _, mv := range mvs {
		bb := b.Clone()
		bb.Apply(mv)
		runPerftDetailed(&bb, depth-1, res)
	}
}

func classify(b *board.Board, mv board.Move, res *Results) {
	if mv.IsEnPassant {
		res.EnPassants++
		res.Captures++
	} else if !b.At(mv.To).IsEmpty() {
		res.Captures++
	}
	if mv.IsCastle {
		res.Castles++
	}
	if mv.Promotion != board.PieceNone {
		res.Promotions++
	}
	bb := b.Clone()
	bb.Apply(mv)
	if movegen.InCheck(&bb, bb.Turn()) {
		res.Checks++
	}
}

// Run performs a detailed perft over fen, streaming per-root-move subtotals
// when verbose and a summary line to out.
func Run(depth int, fen string, verbose bool, out chan string) error {
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}

	start := time.Now()
	var res Results
	for _, mv := range movegen.Legal(b) {
		bb := b.Clone()
		bb.Apply(mv)

		var child Results
		if depth > 1 {
			child = PerftDetailed(&bb, depth-1)
		} else {
			child.Nodes = 1
			classify(b, mv, &child)
		}
		if verbose {
			out <- fmt.Sprintf("%s: %d", mv.UCI(), child.Nodes)
		}
		res.Nodes += child.Nodes
		res.Captures += child.Captures
		res.EnPassants += child.EnPassants
		res.Castles += child.Castles
		res.Promotions += child.Promotions
		res.Checks += child.Checks
	}
	elapsed := time.Since(start)

	out <- message.NewPrinter(language.English).
		Sprintf("d=%d nodes=%d rate=%dn/s cap=%d enp=%d cas=%d pro=%d chk=%d (%.3fs elapsed)",
			depth, res.Nodes, int(float64(res.Nodes)/elapsed.Seconds()),
			res.Captures, res.EnPassants, res.Castles, res.Promotions, res.Checks, elapsed.Seconds())
	return nil
}
