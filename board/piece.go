package board

type Piece uint8

const (
	PieceNone Piece = iota
	PiecePawn
	PieceKnight
	PieceBishop
	PieceRook
	PieceQueen
	PieceKing
)

// PromoteCandidates lists the pieces a pawn may promote to, in the order
// promotion moves are generated.
var PromoteCandidates = []Piece{PieceQueen, PieceRook, PieceBishop, PieceKnight}

func (p Piece) String() string {
	return p.Name()
}

func (p Piece) Name() string {
	switch p {
	case PiecePawn:
		return "Pawn"
	case PieceKnight:
		return "Knight"
	case PieceBishop:
		return "Bishop"
	case PieceRook:
		return "Rook"
	case PieceQueen:
		return "Queen"
	case PieceKing:
		return "King"
	default:
		return ""
	}
}

func (p Piece) SymbolFEN(s Side) string {
	var sym rune
	switch p {
	case PiecePawn:
		sym = 'P'
	case PieceKnight:
		sym = 'N'
	case PieceBishop:
		sym = 'B'
	case PieceRook:
		sym = 'R'
	case PieceQueen:
		sym = 'Q'
	case PieceKing:
		sym = 'K'
	default:
		return ""
	}
	if s == SideBlack {
		sym |= 0x20 // lowercase is +32 uppercase
	}
	return string(sym)
}

// SymbolPromotion returns the lowercase letter used for the piece in move
// notation ("e7e8q"), or "" for pieces that are not promotion candidates.
func (p Piece) SymbolPromotion() string {
	switch p {
	case PieceKnight:
		return "n"
	case PieceBishop:
		return "b"
	case PieceRook:
		return "r"
	case PieceQueen:
		return "q"
	default:
		return ""
	}
}

func (p Piece) SymbolUnicode(s Side) string {
	switch s {
	case SideWhite:
		switch p {
		case PiecePawn:
			return "♙"
		case PieceKnight:
			return "♘"
		case PieceBishop:
			return "♗"
		case PieceRook:
			return "♖"
		case PieceQueen:
			return "♕"
		case PieceKing:
			return "♔"
		default:
			return ""
		}
	case SideBlack:
		switch p {
		case PiecePawn:
			return "♟"
		case PieceKnight:
			return "♞"
		case PieceBishop:
			return "♝"
		case PieceRook:
			return "♜"
		case PieceQueen:
			return "♛"
		case PieceKing:
			return "♚"
		default:
			return ""
		}
	default:
		return ""
	}
}

// Square is the content of one board cell.
type Square struct {
	Piece Piece
	Side  Side
}

func (sq Square) IsEmpty() bool {
	return sq.Piece == PieceNone
}
