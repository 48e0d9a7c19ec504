package board

import (
	"errors"
	"fmt"

	"castellan/position"
)

var (
	// ErrInvalidMove represents a malformed move notation error.
	ErrInvalidMove = errors.New("invalid move")
)

// Move is a self-contained move value. The IsCastle and IsEnPassant flags
// select the alternate apply semantics (rook co-movement and captured-pawn
// removal off the destination square, respectively).
type Move struct {
	From, To  position.Pos
	Promotion Piece

	IsCastle    bool
	IsEnPassant bool
}

func (m Move) String() string {
	return m.UCI()
}

// UCI returns the move in long algebraic notation: source square, destination
// square and an optional promotion letter, e.g. "e2e4" or "e7e8q".
func (m Move) UCI() string {
	return m.From.Notation() + m.To.Notation() + m.Promotion.SymbolPromotion()
}

func (m Move) Equals(o Move) bool {
	return m == o
}

// IsNull reports whether the move is the null move, returned by search when
// no legal move exists.
func (m Move) IsNull() bool {
	return m == Move{}
}

// ParseMove parses long algebraic notation ("e2e4", "e7e8q") against the
// current position. The castle and en-passant flags are derived from the
// board: a king moving two files castles, a pawn moving diagonally onto the
// en-passant target captures en passant. Only syntax is validated here;
// legality is the move generator's concern.
func (b *Board) ParseMove(notation string) (Move, error) {
	if len(notation) != 4 && len(notation) != 5 {
		return Move{}, ErrInvalidMove
	}
	from, err := position.NewPosFromNotation(notation[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %v", ErrInvalidMove, err)
	}
	to, err := position.NewPosFromNotation(notation[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %v", ErrInvalidMove, err)
	}

	mv := Move{From: from, To: to}
	if len(notation) == 5 {
		switch notation[4] {
		case 'n':
			mv.Promotion = PieceKnight
		case 'b':
			mv.Promotion = PieceBishop
		case 'r':
			mv.Promotion = PieceRook
		case 'q':
			mv.Promotion = PieceQueen
		default:
			return Move{}, ErrInvalidMove
		}
	}

	src := b.At(from)
	if src.Piece == PieceKing && from.Rank() == to.Rank() && absPos(from.File()-to.File()) == 2 {
		mv.IsCastle = true
	}
	if src.Piece == PiecePawn && from.File() != to.File() && b.At(to).IsEmpty() && b.enPassant == to {
		mv.IsEnPassant = true
	}
	return mv, nil
}

func absPos(p position.Pos) position.Pos {
	if p < 0 {
		return -p
	}
	return p
}
