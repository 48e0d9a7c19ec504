package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"castellan/board"
	"castellan/uci"
)

const (
	exitOK  = 0
	exitErr = 1
)

var (
	movegenRun  = flag.Bool("movegen", false, "run movegen mode")
	movegenDraw = flag.Bool("movegen.draw", false, "draw applied moves in movegen mode")

	perftRun   = flag.Bool("perft", false, "run perft mode")
	perftDepth = flag.Int("perft.depth", 5, "perft depth")

	playRun   = flag.Bool("play", false, "run interactive play mode")
	playDepth = flag.Int("play.depth", 4, "engine search depth in play mode")
)

func main() {
	flag.Parse()

	if err := realMain(flag.Args()); err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func realMain(args []string) error {
	fen := board.DefaultStartingPositionFEN
	if len(args) > 0 {
		fen = strings.Join(args, " ")
	}
	if *movegenRun {
		return runMovegen(fen, *movegenDraw)
	}
	if *perftRun {
		return runPerft(*perftDepth, fen)
	}
	if *playRun {
		return runPlay(fen, uint8(*playDepth))
	}

	return runUCI()
}

func runUCI() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return uci.NewInterface(os.Stdin, os.Stdout).Run(ctx)
}
