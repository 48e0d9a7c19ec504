package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"castellan/position"
)

var (
	ErrInvalidFEN = errors.New("invalid fen")
)

// UnmarshalFEN fills b from a six-field FEN string.
func UnmarshalFEN(fen string, b *Board) error {
	if b == nil {
		return fmt.Errorf("invalid board")
	}
	segments := strings.Split(fen, " ")
	if len(segments) != 6 {
		return fmt.Errorf("%w: incorrect number of segments", ErrInvalidFEN)
	}

	var squares [TotalCells]Square
	rows := strings.Split(segments[0], "/")
	if len(rows) != int(Width) {
		return fmt.Errorf("%w: invalid board configuration", ErrInvalidFEN)
	}
	var kings [3]int
	for r := position.Pos(0); r < Width; r++ {
		row := rows[Width-r-1]
		ptr := -1
		for f := position.Pos(0); f < Width; f++ {
			ptr++
			if ptr >= len(row) {
				return fmt.Errorf("%w: missing cells", ErrInvalidFEN)
			}
			var s Side
			var p Piece
			switch cell := rune(row[ptr]); cell {
			case 'P':
				s, p = SideWhite, PiecePawn
			case 'N':
				s, p = SideWhite, PieceKnight
			case 'B':
				s, p = SideWhite, PieceBishop
			case 'R':
				s, p = SideWhite, PieceRook
			case 'Q':
				s, p = SideWhite, PieceQueen
			case 'K':
				s, p = SideWhite, PieceKing
			case 'p':
				s, p = SideBlack, PiecePawn
			case 'n':
				s, p = SideBlack, PieceKnight
			case 'b':
				s, p = SideBlack, PieceBishop
			case 'r':
				s, p = SideBlack, PieceRook
			case 'q':
				s, p = SideBlack, PieceQueen
			case 'k':
				s, p = SideBlack, PieceKing
			default:
				if cell != '0' && unicode.IsDigit(cell) {
					skip := position.Pos(cell - '0')
					if skip != 0 && f+skip-1 < Width {
						f += skip - 1
						continue
					}
					return fmt.Errorf("%w: skip out of bounds", ErrInvalidFEN)
				}
				return fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidFEN, string(cell))
			}
			squares[r*Width+f] = Square{Piece: p, Side: s}
			if p == PieceKing {
				kings[s]++
			}
		}
	}
	if kings[SideWhite] != 1 || kings[SideBlack] != 1 {
		return fmt.Errorf("%w: each side needs exactly one king", ErrInvalidFEN)
	}

	var turn Side
	switch segments[1] {
	case "w":
		turn = SideWhite
	case "b":
		turn = SideBlack
	default:
		return fmt.Errorf("%w: invalid turn", ErrInvalidFEN)
	}

	var castleRights CastleRights
	if len(segments[2]) > 4 {
		return fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
	}
crLoop:
	for i, e := range segments[2] {
		switch e {
		case 'K':
			castleRights.Set(CastleDirectionWhiteKingside, true)
		case 'Q':
			castleRights.Set(CastleDirectionWhiteQueenside, true)
		case 'k':
			castleRights.Set(CastleDirectionBlackKingside, true)
		case 'q':
			castleRights.Set(CastleDirectionBlackQueenside, true)
		default:
			if i == 0 && e == '-' {
				break crLoop
			}
			return fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
		}
	}

	enPassant := flagNoEnPassant
	if segments[3] != "-" {
		pos, err := position.NewPosFromNotation(segments[3])
		if err != nil {
			return fmt.Errorf("%w: invalid enpassant square: %v", ErrInvalidFEN, err)
		}
		if r := pos.Rank(); r != position.Rank3 && r != position.Rank6 {
			return fmt.Errorf("%w: invalid enpassant square", ErrInvalidFEN)
		}
		enPassant = pos
	}

	halfMoveClock, err := strconv.ParseUint(segments[4], 10, 16)
	if err != nil {
		return fmt.Errorf("%w: invalid half move clock", ErrInvalidFEN)
	}

	fullMoveNumber, err := strconv.ParseUint(segments[5], 10, 16)
	if err != nil {
		return fmt.Errorf("%w: invalid full move number", ErrInvalidFEN)
	}

	b.squares = squares
	b.turn = turn
	b.castleRights = castleRights
	b.enPassant = enPassant
	b.halfMoveClock = uint16(halfMoveClock)
	b.fullMoveNumber = uint16(fullMoveNumber)
	return nil
}

// FEN serialises the position into the standard six-field notation.
func (b *Board) FEN() string {
	builder := strings.Builder{}
	for r := Width - 1; r >= 0; r-- {
		skip := 0
		for f := position.Pos(0); f < Width; f++ {
			sq := b.squares[r*Width+f]
			if sq.IsEmpty() {
				skip++
				continue
			}
			if skip != 0 {
				_, _ = builder.WriteRune(rune('0' + skip))
				skip = 0
			}
			_, _ = builder.WriteString(sq.Piece.SymbolFEN(sq.Side))
		}
		if skip != 0 {
			_, _ = builder.WriteRune(rune('0' + skip))
		}
		if r > 0 {
			_, _ = builder.WriteRune('/')
		}
	}

	if b.turn == SideWhite {
		_, _ = builder.WriteString(" w ")
	} else {
		_, _ = builder.WriteString(" b ")
	}

	_, _ = builder.WriteString(b.castleRights.String())
	_, _ = builder.WriteRune(' ')

	if b.enPassant == flagNoEnPassant {
		_, _ = builder.WriteRune('-')
	} else {
		_, _ = builder.WriteString(b.enPassant.Notation())
	}

	_, _ = builder.WriteString(fmt.Sprintf(" %d %d", b.halfMoveClock, b.fullMoveNumber))

	return builder.String()
}
