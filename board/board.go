package board

import (
	"fmt"
	"strings"

	"castellan/position"
)

const (
	Width      = position.Width
	TotalCells = position.Total

	DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	flagNoEnPassant position.Pos = -1
)

// Board holds a full chess position: piece placement, side to move, castling
// rights, en-passant target and move clocks. All fields are value types, so a
// plain struct copy yields an independent position; hypothetical
// continuations are explored on copies, never on shared state.
//
// Board knows how to apply a move and how to serialise itself. Attack
// detection and legality are the movegen package's responsibility.
type Board struct {
	squares [TotalCells]Square

	turn           Side
	castleRights   CastleRights
	enPassant      position.Pos
	halfMoveClock  uint16
	fullMoveNumber uint16
}

type boardConfig struct {
	fen string
}

type BoardOption func(*boardConfig)

func WithFEN(fen string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.fen = fen
	}
}

func NewBoard(opts ...BoardOption) (*Board, error) {
	cfg := &boardConfig{
		fen: DefaultStartingPositionFEN,
	}
	for _, f := range opts {
		f(cfg)
	}
	b := &Board{}
	if err := UnmarshalFEN(cfg.fen, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Reset reinitialises the board to the standard starting position.
func (b *Board) Reset() {
	b.squares = [TotalCells]Square{}
	backRank := [Width]Piece{
		PieceRook, PieceKnight, PieceBishop, PieceQueen,
		PieceKing, PieceBishop, PieceKnight, PieceRook,
	}
	for f := position.Pos(0); f < Width; f++ {
		b.squares[position.Rank1*Width+f] = Square{Piece: backRank[f], Side: SideWhite}
		b.squares[position.Rank2*Width+f] = Square{Piece: PiecePawn, Side: SideWhite}
		b.squares[position.Rank7*Width+f] = Square{Piece: PiecePawn, Side: SideBlack}
		b.squares[position.Rank8*Width+f] = Square{Piece: backRank[f], Side: SideBlack}
	}
	b.turn = SideWhite
	b.castleRights = 0
	for _, d := range []CastleDirection{
		CastleDirectionWhiteKingside,
		CastleDirectionWhiteQueenside,
		CastleDirectionBlackKingside,
		CastleDirectionBlackQueenside,
	} {
		b.castleRights.Set(d, true)
	}
	b.enPassant = flagNoEnPassant
	b.halfMoveClock = 0
	b.fullMoveNumber = 1
}

// Clone returns an independent copy of the position.
func (b *Board) Clone() Board {
	return *b
}

// At returns the content of the given square.
func (b *Board) At(p position.Pos) Square {
	if !p.Valid() {
		return Square{}
	}
	return b.squares[p]
}

func (b *Board) Turn() Side {
	return b.turn
}

func (b *Board) CastleRights() CastleRights {
	return b.castleRights
}

// EnPassantTarget returns the current en-passant target square, if any.
func (b *Board) EnPassantTarget() (position.Pos, bool) {
	return b.enPassant, b.enPassant != flagNoEnPassant
}

func (b *Board) HalfMoveClock() uint16 {
	return b.halfMoveClock
}

func (b *Board) FullMoveNumber() uint16 {
	return b.fullMoveNumber
}

// Apply mutates the position by the given move. It fails, leaving the state
// untouched, when the source square is empty or holds a piece of the side not
// to move. No further validation happens here: callers apply moves that the
// generator already vetted, and castling relocation in particular assumes its
// transit checks were done upstream.
func (b *Board) Apply(mv Move) bool {
	if !mv.From.Valid() || !mv.To.Valid() {
		return false
	}
	src := b.squares[mv.From]
	if src.IsEmpty() || src.Side != b.turn {
		return false
	}

	switch {
	case mv.IsCastle:
		rookFrom, rookTo := castleRookHops(mv)
		b.squares[mv.To] = src
		b.squares[mv.From] = Square{}
		b.squares[rookTo] = b.squares[rookFrom]
		b.squares[rookFrom] = Square{}
		b.enPassant = flagNoEnPassant
		b.halfMoveClock++
	case mv.IsEnPassant:
		b.squares[mv.To] = src
		b.squares[mv.From] = Square{}
		// The captured pawn sits one rank behind the target, toward the mover.
		if b.turn == SideWhite {
			b.squares[mv.To-Width] = Square{}
		} else {
			b.squares[mv.To+Width] = Square{}
		}
		b.enPassant = flagNoEnPassant
		b.halfMoveClock = 0
	default:
		isCapture := !b.squares[mv.To].IsEmpty()
		if src.Piece == PiecePawn && absPos(mv.To.Rank()-mv.From.Rank()) == 2 {
			b.enPassant = (mv.From + mv.To) / 2
		} else {
			b.enPassant = flagNoEnPassant
		}
		if mv.Promotion != PieceNone {
			b.squares[mv.To] = Square{Piece: mv.Promotion, Side: src.Side}
		} else {
			b.squares[mv.To] = src
		}
		b.squares[mv.From] = Square{}
		if isCapture || src.Piece == PiecePawn {
			b.halfMoveClock = 0
		} else {
			b.halfMoveClock++
		}
	}

	b.updateCastleRights(mv)
	if b.turn == SideBlack {
		b.fullMoveNumber++
	}
	b.turn = b.turn.Opposite()
	return true
}

// ApplyNull flips the side to move without touching the pieces, clearing the
// en-passant target. Used to measure the opponent's mobility on a copy.
func (b *Board) ApplyNull() {
	b.enPassant = flagNoEnPassant
	b.turn = b.turn.Opposite()
}

// castleRookHops derives the rook relocation from the king's hop.
func castleRookHops(mv Move) (from, to position.Pos) {
	if mv.To > mv.From { // kingside
		return mv.From + 3, mv.From + 1
	}
	return mv.From - 4, mv.From - 1
}

// updateCastleRights revokes rights whose king or rook home square is the
// source or destination of the move. The destination case covers rooks
// captured at home.
func (b *Board) updateCastleRights(mv Move) {
	for _, p := range [2]position.Pos{mv.From, mv.To} {
		switch p {
		case position.E1:
			b.castleRights.Set(CastleDirectionWhiteKingside, false)
			b.castleRights.Set(CastleDirectionWhiteQueenside, false)
		case position.A1:
			b.castleRights.Set(CastleDirectionWhiteQueenside, false)
		case position.H1:
			b.castleRights.Set(CastleDirectionWhiteKingside, false)
		case position.E8:
			b.castleRights.Set(CastleDirectionBlackKingside, false)
			b.castleRights.Set(CastleDirectionBlackQueenside, false)
		case position.A8:
			b.castleRights.Set(CastleDirectionBlackQueenside, false)
		case position.H8:
			b.castleRights.Set(CastleDirectionBlackKingside, false)
		}
	}
}

func (b *Board) DebugString() string {
	ep := "-"
	if b.enPassant != flagNoEnPassant {
		ep = b.enPassant.Notation()
	}
	return fmt.Sprintf("turn: %s\ncast: %s\nenp:  %s\nhalf: %4d\nfull: %4d",
		b.turn, b.castleRights, ep, b.halfMoveClock, b.fullMoveNumber)
}

// Dump returns a plain ASCII rendering of the board.
func (b *Board) Dump() string {
	builder := strings.Builder{}
	for r := Width - 1; r >= 0; r-- {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", r+1))
		for f := position.Pos(0); f < Width; f++ {
			sq := b.squares[r*Width+f]
			sym := " "
			if !sq.IsEmpty() {
				sym = sq.Piece.SymbolFEN(sq.Side)
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for f := position.Pos(0); f < Width; f++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", f.FileNotation()))
	}
	return builder.String()
}
