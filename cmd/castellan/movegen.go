package main

import (
	"fmt"
	"log"
	"strconv"

	"castellan/board"
	"castellan/movegen"
)

func runMovegen(fen string, draw bool) error {
	log.Println("============ movegen")
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	fmt.Println("to move:", b.Turn())
	fmt.Println(b.Dump())
	fmt.Println(b.Draw())
	fmt.Println(movegen.Status(b))
	dumpMoves(b)

	if draw {
		for _, mv := range movegen.Legal(b) {
			bb := b.Clone()
			bb.Apply(mv)
			fmt.Println(mv)
			fmt.Println(bb.Draw())
			fmt.Println(bb.FEN())
		}
	}
	return nil
}

func dumpMoves(b *board.Board) {
	mvs := movegen.Legal(b)
	for i, mv := range mvs {
		capture := !b.At(mv.To).IsEmpty() || mv.IsEnPassant
		fmt.Printf("option %*d: [%s] %s %s => %s (cap=%v) (enp=%v) (cas=%v) (pro=%s)\n",
			len(strconv.Itoa(len(mvs))), i+1, mv.UCI(), b.At(mv.From).Piece, mv.From.Notation(), mv.To.Notation(),
			capture, mv.IsEnPassant, mv.IsCastle, mv.Promotion)
	}
}
