package movegen

import (
	"castellan/board"
	"castellan/position"
)

// IsSquareAttacked reports whether any piece of side by attacks target.
// Occupancy of target does not matter: pawn attacks count only along the
// capture diagonals, never the push squares.
func IsSquareAttacked(b *board.Board, target position.Pos, by board.Side) bool {
	// pawn attacks, looked up from the target backwards
	pawnRank := offset{0, -1}
	if by == board.SideBlack {
		pawnRank = offset{0, 1}
	}
	for _, df := range [2]position.Pos{-1, 1} {
		if from, ok := step(target, offset{df, pawnRank.rank}); ok {
			if sq := b.At(from); sq.Piece == board.PiecePawn && sq.Side == by {
				return true
			}
		}
	}

	for _, o := range knightOffsets {
		if from, ok := step(target, o); ok {
			if sq := b.At(from); sq.Piece == board.PieceKnight && sq.Side == by {
				return true
			}
		}
	}

	for _, o := range kingOffsets {
		if from, ok := step(target, o); ok {
			if sq := b.At(from); sq.Piece == board.PieceKing && sq.Side == by {
				return true
			}
		}
	}

	if slideAttacked(b, target, by, diagonalDirections[:], board.PieceBishop) {
		return true
	}
	return slideAttacked(b, target, by, lateralDirections[:], board.PieceRook)
}

// slideAttacked walks each direction until a piece blocks the ray, matching
// either the given slider or a queen of side by.
func slideAttacked(b *board.Board, target position.Pos, by board.Side, directions []offset, slider board.Piece) bool {
	for _, d := range directions {
		p := target
		for {
			next, ok := step(p, d)
			if !ok {
				break
			}
			p = next
			sq := b.At(p)
			if sq.IsEmpty() {
				continue
			}
			if sq.Side == by && (sq.Piece == slider || sq.Piece == board.PieceQueen) {
				return true
			}
			break
		}
	}
	return false
}

// KingSquare returns the square holding side's king. A well-formed board
// always has exactly one; ok is false only on a corrupted one.
func KingSquare(b *board.Board, side board.Side) (position.Pos, bool) {
	for p := position.Pos(0); p < position.Total; p++ {
		if sq := b.At(p); sq.Piece == board.PieceKing && sq.Side == side {
			return p, true
		}
	}
	return 0, false
}

// InCheck reports whether side's king is currently attacked.
func InCheck(b *board.Board, side board.Side) bool {
	king, ok := KingSquare(b, side)
	if !ok {
		return false
	}
	return IsSquareAttacked(b, king, side.Opposite())
}
