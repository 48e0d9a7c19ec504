package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"castellan/board"
	"castellan/engine"
	"castellan/movegen"
)

// runPlay is a terminal game loop: the user enters moves in long algebraic
// notation and the engine answers at the configured depth.
func runPlay(fen string, depth uint8) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	e := engine.NewEngine(&engine.EngineConfig{})

	fmt.Println(b.Draw())
	fmt.Println(b.FEN())

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		input := strings.TrimSpace(scanner.Text())

		switch args := strings.Split(input, " "); args[0] {
		case "":
		case "help":
			fmt.Println("commands: <move> | fen | status | reset | quit")
		case "fen":
			fmt.Println(b.FEN())
		case "status":
			fmt.Println(movegen.Status(b))
		case "reset":
			b.Reset()
			fmt.Println(b.Draw())
		case "quit":
			return nil
		default:
			if !movegen.MakeMove(b, args[0]) {
				fmt.Println("illegal move:", args[0])
				continue
			}
			fmt.Println(b.Draw())
			if done := reportStatus(b); done {
				return nil
			}

			reply, score, err := e.FindBestMove(ctx, b, depth)
			if err != nil {
				return err
			}
			b.Apply(reply)
			fmt.Printf(">>> %s (%+d)\n", reply, score)
			fmt.Println(b.Draw())
			if done := reportStatus(b); done {
				return nil
			}
		}
	}
}

func reportStatus(b *board.Board) bool {
	switch st := movegen.Status(b); st {
	case movegen.StatusCheckmate, movegen.StatusStalemate:
		fmt.Println("game over:", st)
		return true
	case movegen.StatusCheck:
		fmt.Println(st)
		return false
	default:
		return false
	}
}
