// Package movegen enumerates chess moves and answers attack queries. It is
// the single source of truth for legality: the board package applies moves,
// this package decides which moves may be applied.
package movegen

import (
	"castellan/board"
	"castellan/position"
)

type offset struct {
	file, rank position.Pos
}

var (
	knightOffsets = [8]offset{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
	diagonalDirections = [4]offset{
		{1, 1}, {1, -1}, {-1, -1}, {-1, 1},
	}
	lateralDirections = [4]offset{
		{1, 0}, {0, 1}, {-1, 0}, {0, -1},
	}
	kingOffsets = [8]offset{
		{1, 1}, {1, 0}, {1, -1}, {0, -1},
		{-1, -1}, {-1, 0}, {-1, 1}, {0, 1},
	}
)

// step moves from p by o, reporting whether the destination is on the board.
func step(p position.Pos, o offset) (position.Pos, bool) {
	f := p.File() + o.file
	r := p.Rank() + o.rank
	if f < 0 || f >= position.Width || r < 0 || r >= position.Width {
		return 0, false
	}
	return r*position.Width + f, true
}

// PseudoLegal generates every move for the side to move that obeys piece
// movement rules, without testing whether the mover's king is left in check.
// Output order is generation order: ascending board index, per-piece
// generator order, then castling and en-passant candidates.
func PseudoLegal(b *board.Board) []board.Move {
	var mvs []board.Move
	turn := b.Turn()
	for from := position.Pos(0); from < position.Total; from++ {
		sq := b.At(from)
		if sq.IsEmpty() || sq.Side != turn {
			continue
		}
		switch sq.Piece {
		case board.PiecePawn:
			mvs = appendPawnMoves(b, from, mvs)
		case board.PieceKnight:
			mvs = appendHopMoves(b, from, knightOffsets[:], mvs)
		case board.PieceBishop:
			mvs = appendSlideMoves(b, from, diagonalDirections[:], mvs)
		case board.PieceRook:
			mvs = appendSlideMoves(b, from, lateralDirections[:], mvs)
		case board.PieceQueen:
			mvs = appendSlideMoves(b, from, diagonalDirections[:], mvs)
			mvs = appendSlideMoves(b, from, lateralDirections[:], mvs)
		case board.PieceKing:
			mvs = appendHopMoves(b, from, kingOffsets[:], mvs)
		}
	}
	mvs = appendCastleMoves(b, mvs)
	mvs = appendEnPassantMoves(b, mvs)
	return mvs
}

func appendPawnMoves(b *board.Board, from position.Pos, mvs []board.Move) []board.Move {
	side := b.At(from).Side
	forward := offset{0, 1}
	startRank, promoteRank := position.Rank2, position.Rank8
	if side == board.SideBlack {
		forward = offset{0, -1}
		startRank, promoteRank = position.Rank7, position.Rank1
	}

	// advances
	if to, ok := step(from, forward); ok && b.At(to).IsEmpty() {
		mvs = appendPawnAdvance(from, to, promoteRank, mvs)
		if from.Rank() == startRank {
			if dbl, ok := step(to, forward); ok && b.At(dbl).IsEmpty() {
				mvs = append(mvs, board.Move{From: from, To: dbl})
			}
		}
	}

	// diagonal captures
	for _, df := range [2]position.Pos{-1, 1} {
		to, ok := step(from, offset{df, forward.rank})
		if !ok {
			continue
		}
		target := b.At(to)
		if target.IsEmpty() || target.Side == side {
			continue
		}
		mvs = appendPawnAdvance(from, to, promoteRank, mvs)
	}
	return mvs
}

// appendPawnAdvance emits either the plain move or the four promotion
// variants when the destination is the far rank.
func appendPawnAdvance(from, to position.Pos, promoteRank position.Pos, mvs []board.Move) []board.Move {
	if to.Rank() != promoteRank {
		return append(mvs, board.Move{From: from, To: to})
	}
	for _, p := range board.PromoteCandidates {
		mvs = append(mvs, board.Move{From: from, To: to, Promotion: p})
	}
	return mvs
}

func appendHopMoves(b *board.Board, from position.Pos, offsets []offset, mvs []board.Move) []board.Move {
	side := b.At(from).Side
	for _, o := range offsets {
		to, ok := step(from, o)
		if !ok {
			continue
		}
		if target := b.At(to); target.IsEmpty() || target.Side != side {
			mvs = append(mvs, board.Move{From: from, To: to})
		}
	}
	return mvs
}

func appendSlideMoves(b *board.Board, from position.Pos, directions []offset, mvs []board.Move) []board.Move {
	side := b.At(from).Side
	for _, d := range directions {
		to := from
		for {
			next, ok := step(to, d)
			if !ok {
				break
			}
			to = next
			target := b.At(to)
			if target.IsEmpty() {
				mvs = append(mvs, board.Move{From: from, To: to})
				continue
			}
			if target.Side != side {
				mvs = append(mvs, board.Move{From: from, To: to})
			}
			break
		}
	}
	return mvs
}

// appendCastleMoves adds castling candidates: the right must be held, every
// square strictly between king and rook empty, and the king's origin, transit
// and destination squares unattacked.
func appendCastleMoves(b *board.Board, mvs []board.Move) []board.Move {
	side := b.Turn()
	if !b.CastleRights().IsSideAllowed(side) {
		return mvs
	}
	rank := position.Rank1
	kingside, queenside := board.CastleDirectionWhiteKingside, board.CastleDirectionWhiteQueenside
	if side == board.SideBlack {
		rank = position.Rank8
		kingside, queenside = board.CastleDirectionBlackKingside, board.CastleDirectionBlackQueenside
	}
	at := func(f position.Pos) position.Pos { return rank*position.Width + f }
	empty := func(files ...position.Pos) bool {
		for _, f := range files {
			if !b.At(at(f)).IsEmpty() {
				return false
			}
		}
		return true
	}
	safe := func(files ...position.Pos) bool {
		opponent := side.Opposite()
		for _, f := range files {
			if IsSquareAttacked(b, at(f), opponent) {
				return false
			}
		}
		return true
	}

	if b.CastleRights().IsAllowed(kingside) &&
		empty(position.FileF, position.FileG) &&
		safe(position.FileE, position.FileF, position.FileG) {
		mvs = append(mvs, board.Move{From: at(position.FileE), To: at(position.FileG), IsCastle: true})
	}
	if b.CastleRights().IsAllowed(queenside) &&
		empty(position.FileB, position.FileC, position.FileD) &&
		safe(position.FileE, position.FileD, position.FileC) {
		mvs = append(mvs, board.Move{From: at(position.FileE), To: at(position.FileC), IsCastle: true})
	}
	return mvs
}

// appendEnPassantMoves adds captures onto the en-passant target square by
// pawns adjacent in file on the rank the capture starts from.
func appendEnPassantMoves(b *board.Board, mvs []board.Move) []board.Move {
	target, ok := b.EnPassantTarget()
	if !ok {
		return mvs
	}
	side := b.Turn()
	fromRank := target.Rank() - 1
	if side == board.SideBlack {
		fromRank = target.Rank() + 1
	}
	if fromRank < 0 || fromRank >= position.Width {
		return mvs
	}
	for _, df := range [2]position.Pos{-1, 1} {
		f := target.File() + df
		if f < 0 || f >= position.Width {
			continue
		}
		from := fromRank*position.Width + f
		if sq := b.At(from); sq.Piece == board.PiecePawn && sq.Side == side {
			mvs = append(mvs, board.Move{From: from, To: target, IsEnPassant: true})
		}
	}
	return mvs
}
