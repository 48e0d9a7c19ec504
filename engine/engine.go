// Package engine implements position evaluation and a fixed-depth
// alpha-beta minimax search over the movegen legal move set.
package engine

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"castellan/board"
	"castellan/movegen"
)

const (
	ScoreInfinite int32 = math.MaxInt32

	// Mate scores sit far outside any material evaluation and carry the
	// remaining depth, so mates found closer to the root score higher and
	// the search prefers the faster mate.
	scoreCheckmate int32 = 100000

	scoreMoveCaptureVictimWeight = 10
	scoreMovePromotion           = 900
	scoreMoveEnPassant           = 100
	scoreMoveCastle              = 50
)

func DefaultLogger(a ...any) {
	fmt.Println(a...)
}

type EngineConfig struct {
	Logger func(...any)
}

type Engine struct {
	nodes       uint64
	elapsedTime time.Duration
	logger      func(...any)
}

func NewEngine(cfg *EngineConfig) *Engine {
	if cfg.Logger == nil {
		cfg.Logger = DefaultLogger
	}
	return &Engine{
		logger: cfg.Logger,
	}
}

// FindBestMove searches the position to the given fixed depth and returns the
// best move with its score in centipawns from White's perspective. When no
// legal move exists, or depth is zero, the null move is returned together
// with the position's terminal or static score. The search aborts with the
// context's error as soon as ctx is cancelled.
func (e *Engine) FindBestMove(ctx context.Context, b *board.Board, depth uint8) (board.Move, int32, error) {
	e.nodes = 0
	e.elapsedTime = 0
	startTime := time.Now()

	mvs := movegen.Legal(b)
	if depth == 0 || len(mvs) == 0 {
		return board.Move{}, e.terminal(b, depth), nil
	}
	orderMoves(b, mvs)

	maximising := b.Turn() == board.SideWhite
	var bestMove board.Move
	bestScore := -ScoreInfinite
	if !maximising {
		bestScore = ScoreInfinite
	}
	for _, mv := range mvs {
		next := b.Clone()
		if !next.Apply(mv) {
			continue
		}
		score, err := e.minimax(ctx, &next, depth-1, -ScoreInfinite, ScoreInfinite)
		if err != nil {
			return board.Move{}, 0, err
		}
		if maximising && score > bestScore || !maximising && score < bestScore {
			bestScore = score
			bestMove = mv
		}
	}

	e.elapsedTime = time.Since(startTime)
	e.logger(message.NewPrinter(language.English).
		Sprintf("depth:%d best:%s score:%s nodes:%d (%.0fn/s) t:%s",
			depth, bestMove, formatScore(bestScore), e.nodes,
			float64(e.nodes)/(e.elapsedTime+1).Seconds(), e.elapsedTime))
	return bestMove, bestScore, nil
}

// minimax searches depth plies below b with alpha-beta pruning. Scores are
// always from White's perspective; the side to move decides whether the node
// maximises or minimises.
func (e *Engine) minimax(ctx context.Context, b *board.Board, depth uint8, alpha, beta int32) (int32, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	default:
	}
	e.nodes++

	mvs := movegen.Legal(b)
	if len(mvs) == 0 {
		return e.terminal(b, depth), nil
	}
	if depth == 0 {
		return Evaluate(b), nil
	}
	orderMoves(b, mvs)

	if b.Turn() == board.SideWhite {
		best := -ScoreInfinite
		for _, mv := range mvs {
			next := b.Clone()
			if !next.Apply(mv) {
				continue
			}
			score, err := e.minimax(ctx, &next, depth-1, alpha, beta)
			if err != nil {
				return 0, err
			}
			best = max(best, score)
			alpha = max(alpha, score)
			if beta <= alpha {
				break
			}
		}
		return best, nil
	}

	best := ScoreInfinite
	for _, mv := range mvs {
		next := b.Clone()
		if !next.Apply(mv) {
			continue
		}
		score, err := e.minimax(ctx, &next, depth-1, alpha, beta)
		if err != nil {
			return 0, err
		}
		best = min(best, score)
		beta = min(beta, score)
		if beta <= alpha {
			break
		}
	}
	return best, nil
}

// terminal scores a position with no legal continuation for the side to
// move, or a leaf reached at depth zero. A mated White scores negative, a
// mated Black positive, stalemate is a dead draw.
func (e *Engine) terminal(b *board.Board, depth uint8) int32 {
	switch movegen.Status(b) {
	case movegen.StatusCheckmate:
		mate := scoreCheckmate + int32(depth)
		if b.Turn() == board.SideWhite {
			return -mate
		}
		return mate
	case movegen.StatusStalemate:
		return 0
	default:
		return Evaluate(b)
	}
}

// orderMoves sorts mvs in place, best candidates first: captures by victim
// value times ten minus attacker value, with flat bonuses for promotions,
// en passant and castling. Quiet moves keep their generation order.
func orderMoves(b *board.Board, mvs []board.Move) {
	sort.SliceStable(mvs, func(i, j int) bool {
		return scoreMove(b, mvs[i]) > scoreMove(b, mvs[j])
	})
}

// formatScore renders centipawn scores plainly and mate scores with their
// distance from the horizon.
func formatScore(s int32) string {
	if abs(s) >= scoreCheckmate {
		return fmt.Sprintf("mate(%+d)", s)
	}
	return fmt.Sprintf("cp(%+d)", s)
}

func scoreMove(b *board.Board, mv board.Move) int32 {
	var score int32
	if target := b.At(mv.To); !target.IsEmpty() {
		score += scoreMaterial[target.Piece]*scoreMoveCaptureVictimWeight - scoreMaterial[b.At(mv.From).Piece]
	}
	if mv.Promotion != board.PieceNone {
		score += scoreMovePromotion
	}
	if mv.IsEnPassant {
		score += scoreMoveEnPassant
	}
	if mv.IsCastle {
		score += scoreMoveCastle
	}
	return score
}
