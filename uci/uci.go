// Package uci speaks a subset of the Universal Chess Interface protocol over
// a line-based reader/writer pair.
package uci

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"castellan/bench"
	"castellan/board"
	"castellan/engine"
	"castellan/movegen"
)

var (
	EngineName   = "Castellan"
	EngineAuthor = "Castellan authors"

	defaultOptions = options{
		depth: 4,
	}
)

const (
	minDepth = 1
	maxDepth = 6
)

type options struct {
	depth uint8
}

type Interface struct {
	in  io.Reader
	out io.Writer

	board   *board.Board
	engine  *engine.Engine
	options options
}

func NewInterface(in io.Reader, out io.Writer) *Interface {
	return &Interface{
		in:      in,
		out:     out,
		options: defaultOptions,
	}
}

// Run reads commands line by line until quit or EOF. Searches run to their
// fixed depth; cancelling ctx aborts a search in flight and ends the loop.
func (i *Interface) Run(ctx context.Context) error {
	i.reset()

	scanner := bufio.NewScanner(i.in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		cmd := strings.TrimSpace(scanner.Text())
		if cmd == "" {
			continue
		}

		switch args := strings.Split(cmd, " "); args[0] {
		case "uci":
			i.commandUCI()
		case "ucinewgame":
			i.reset()
		case "isready":
			i.commandReady()
		case "setoption":
			i.commandSetOption(args[1:])
		case "position":
			i.commandPosition(args[1:])
		case "d":
			i.commandDraw()
		case "go":
			i.commandGo(ctx, args[1:])
		case "quit":
			return nil
		}
	}
	return scanner.Err()
}

func (i *Interface) commandUCI() {
	i.println(fmt.Sprintf("id name %s", EngineName))
	i.println(fmt.Sprintf("id author %s", EngineAuthor))
	i.println(fmt.Sprintf("option name Depth type spin default %d min %d max %d", defaultOptions.depth, minDepth, maxDepth))
	i.println("uciok")
}

func (i *Interface) commandReady() {
	if i.board != nil && i.engine != nil {
		i.println("readyok")
	}
}

func (i *Interface) commandSetOption(args []string) {
	if len(args) < 4 || args[0] != "name" || args[2] != "value" {
		return
	}
	switch name, valueStr := strings.ToLower(args[1]), args[3]; name {
	case "depth":
		value, err := strconv.ParseUint(valueStr, 10, 8)
		if err != nil || value < minDepth || value > maxDepth {
			return
		}
		i.options.depth = uint8(value)
	}
}

// commandPosition handles "position startpos" and "position fen ...", each
// optionally followed by "moves" and a list of moves to replay.
func (i *Interface) commandPosition(args []string) {
	if len(args) == 0 {
		return
	}

	var fen string
	var moves []string
	switch args[0] {
	case "startpos":
		fen = board.DefaultStartingPositionFEN
		moves = args[1:]
	case "fen":
		rest := args[1:]
		for n, arg := range rest {
			if arg == "moves" {
				fen = strings.Join(rest[:n], " ")
				moves = rest[n:]
				break
			}
		}
		if fen == "" {
			fen = strings.Join(rest, " ")
		}
	default:
		return
	}

	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return
	}
	if len(moves) > 0 {
		if moves[0] != "moves" {
			return
		}
		for _, notation := range moves[1:] {
			if !movegen.MakeMove(b, notation) {
				return
			}
		}
	}
	i.board = b
}

func (i *Interface) commandDraw() {
	i.println(i.board.Draw())
}

func (i *Interface) commandGo(ctx context.Context, args []string) {
	depth := i.options.depth
	if len(args) > 0 {
		switch mode := args[0]; mode {
		case "perft":
			if len(args) != 2 {
				return
			}
			d, err := strconv.Atoi(args[1])
			if err != nil || d < 1 {
				return
			}
			out := make(chan string, 64)
			done := make(chan struct{})
			go func() {
				defer close(done)
				for s := range out {
					i.println(s)
				}
			}()
			_ = bench.Run(d, i.board.FEN(), true, out)
			close(out)
			<-done
			return
		case "depth":
			if len(args) != 2 {
				return
			}
			d, err := strconv.ParseUint(args[1], 10, 8)
			if err != nil || d < minDepth || d > maxDepth {
				return
			}
			depth = uint8(d)
		default:
			return
		}
	}

	mv, _, err := i.engine.FindBestMove(ctx, i.board, depth)
	if err != nil || mv.IsNull() {
		i.println("bestmove 0000")
		return
	}
	i.println(fmt.Sprintf("bestmove %s", mv.UCI()))
}

func (i *Interface) reset() {
	i.commandPosition([]string{"startpos"})
	i.engine = engine.NewEngine(&engine.EngineConfig{
		Logger: i.println,
	})
}

func (i *Interface) println(a ...any) {
	fmt.Fprintln(i.out, a...)
}
