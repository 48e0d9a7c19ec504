package engine

import (
	"castellan/board"
	"castellan/movegen"
	"castellan/position"
)

var (
	scoreMaterial = [6 + 1]int32{
		board.PiecePawn:   100,
		board.PieceKnight: 320,
		board.PieceBishop: 330,
		board.PieceRook:   500,
		board.PieceQueen:  900,
		board.PieceKing:   0, // both kings always on the board, material cancels
	}

	// Piece-square tables in centipawns, written rank 8 first so they read
	// like a board from White's side. Black looks its squares up through the
	// vertical mirror.
	scorePiecePosition = [6 + 1][64]int32{
		board.PiecePawn: {
			0, 0, 0, 0, 0, 0, 0, 0,
			10, 10, 10, 10, 10, 10, 10, 10,
			5, 5, 8, 12, 12, 8, 5, 5,
			2, 2, 4, 10, 10, 4, 2, 2,
			1, 1, 2, 5, 5, 2, 1, 1,
			0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, -2, -2, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0,
		},
		board.PieceKnight: {
			-50, -40, -30, -30, -30, -30, -40, -50,
			-40, -20, 0, 0, 0, 0, -20, -40,
			-30, 0, 10, 15, 15, 10, 0, -30,
			-30, 5, 15, 20, 20, 15, 5, -30,
			-30, 0, 15, 20, 20, 15, 0, -30,
			-30, 5, 10, 15, 15, 10, 5, -30,
			-40, -20, 0, 5, 5, 0, -20, -40,
			-50, -40, -30, -30, -30, -30, -40, -50,
		},
		board.PieceBishop: {
			-20, -10, -10, -10, -10, -10, -10, -20,
			-10, 5, 0, 0, 0, 0, 5, -10,
			-10, 10, 10, 10, 10, 10, 10, -10,
			-10, 0, 10, 10, 10, 10, 0, -10,
			-10, 5, 5, 10, 10, 5, 5, -10,
			-10, 0, 5, 10, 10, 5, 0, -10,
			-10, 0, 0, 0, 0, 0, 0, -10,
			-20, -10, -10, -10, -10, -10, -10, -20,
		},
		board.PieceRook: {
			0, 0, 5, 10, 10, 5, 0, 0,
			-5, 0, 0, 0, 0, 0, 0, -5,
			-5, 0, 0, 0, 0, 0, 0, -5,
			-5, 0, 0, 0, 0, 0, 0, -5,
			-5, 0, 0, 0, 0, 0, 0, -5,
			-5, 0, 0, 0, 0, 0, 0, -5,
			5, 10, 10, 10, 10, 10, 10, 5,
			0, 0, 0, 0, 0, 0, 0, 0,
		},
		board.PieceQueen: {
			-20, -10, -10, -5, -5, -10, -10, -20,
			-10, 0, 0, 0, 0, 0, 0, -10,
			-10, 0, 5, 5, 5, 5, 0, -10,
			-5, 0, 5, 5, 5, 5, 0, -5,
			0, 0, 5, 5, 5, 5, 0, -5,
			-10, 5, 5, 5, 5, 5, 0, -10,
			-10, 0, 5, 0, 0, 0, 0, -10,
			-20, -10, -10, -5, -5, -10, -10, -20,
		},
		board.PieceKing: {
			-30, -40, -40, -50, -50, -40, -40, -30,
			-30, -40, -40, -50, -50, -40, -40, -30,
			-30, -40, -40, -50, -50, -40, -40, -30,
			-30, -40, -40, -50, -50, -40, -40, -30,
			-20, -30, -30, -40, -40, -30, -30, -20,
			-10, -20, -20, -20, -20, -20, -20, -10,
			20, 20, 0, 0, 0, 0, 20, 20,
			20, 30, 10, 0, 0, 10, 30, 20,
		},
	}
)

const (
	scoreCastleRight  int32 = 20
	scoreDoubledPawn  int32 = 10
	scoreMobilityUnit int32 = 1
)

// pstIndex maps a square to its slot in the rank-8-first tables. White reads
// the table as printed, Black through the vertical mirror so that both sides
// see the same values from their own perspective.
func pstIndex(p position.Pos, side board.Side) int {
	if side == board.SideWhite {
		return int((position.Width-1-p.Rank())*position.Width + p.File())
	}
	return int(p.Rank()*position.Width + p.File())
}

// Evaluate scores the position in centipawns from White's perspective:
// positive favours White, negative favours Black. The score combines
// material, piece placement, retained castling rights, doubled pawns and a
// legal-mobility differential.
func Evaluate(b *board.Board) int32 {
	var score int32
	for p := position.Pos(0); p < position.Total; p++ {
		sq := b.At(p)
		if sq.IsEmpty() {
			continue
		}
		value := scoreMaterial[sq.Piece] + scorePiecePosition[sq.Piece][pstIndex(p, sq.Side)]
		if sq.Side == board.SideWhite {
			score += value
		} else {
			score -= value
		}
	}
	score += evaluateCastleRights(b)
	score += evaluatePawnStructure(b)
	score += evaluateMobility(b)
	return score
}

func evaluateCastleRights(b *board.Board) int32 {
	var score int32
	rights := b.CastleRights()
	if rights.IsAllowed(board.CastleDirectionWhiteKingside) {
		score += scoreCastleRight
	}
	if rights.IsAllowed(board.CastleDirectionWhiteQueenside) {
		score += scoreCastleRight
	}
	if rights.IsAllowed(board.CastleDirectionBlackKingside) {
		score -= scoreCastleRight
	}
	if rights.IsAllowed(board.CastleDirectionBlackQueenside) {
		score -= scoreCastleRight
	}
	return score
}

// evaluatePawnStructure penalises doubled pawns, 10 centipawns per pawn
// beyond the first on a file, signed against the side owning the stack.
func evaluatePawnStructure(b *board.Board) int32 {
	var score int32
	for f := position.Pos(0); f < position.Width; f++ {
		var white, black int32
		for r := position.Pos(0); r < position.Width; r++ {
			sq := b.At(r*position.Width + f)
			if sq.Piece != board.PiecePawn {
				continue
			}
			if sq.Side == board.SideWhite {
				white++
			} else {
				black++
			}
		}
		if white > 1 {
			score -= scoreDoubledPawn * (white - 1)
		}
		if black > 1 {
			score += scoreDoubledPawn * (black - 1)
		}
	}
	return score
}

// evaluateMobility counts legal moves for the side to move and, on a
// null-moved copy, for the opponent, returning the white-minus-black
// differential.
func evaluateMobility(b *board.Board) int32 {
	own := int32(len(movegen.Legal(b)))
	swapped := b.Clone()
	swapped.ApplyNull()
	opponent := int32(len(movegen.Legal(&swapped)))

	mobility := own - opponent
	if b.Turn() == board.SideBlack {
		mobility = -mobility
	}
	return scoreMobilityUnit * mobility
}
