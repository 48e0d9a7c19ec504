package board

type CastleDirection uint8

const (
	CastleDirectionUnknown CastleDirection = iota
	CastleDirectionWhiteKingside
	CastleDirectionWhiteQueenside
	CastleDirectionBlackKingside
	CastleDirectionBlackQueenside
)

var maskCastleRights = [5]CastleRights{
	CastleDirectionWhiteKingside:  0b1000,
	CastleDirectionWhiteQueenside: 0b0100,
	CastleDirectionBlackKingside:  0b0010,
	CastleDirectionBlackQueenside: 0b0001,
}

func (d CastleDirection) String() string {
	switch d {
	case CastleDirectionWhiteKingside:
		return "White 0-0"
	case CastleDirectionWhiteQueenside:
		return "White 0-0-0"
	case CastleDirectionBlackKingside:
		return "Black 0-0"
	case CastleDirectionBlackQueenside:
		return "Black 0-0-0"
	default:
		return ""
	}
}

func (d CastleDirection) IsWhite() bool {
	return d == CastleDirectionWhiteKingside || d == CastleDirectionWhiteQueenside
}

func (d CastleDirection) IsKingside() bool {
	return d == CastleDirectionWhiteKingside || d == CastleDirectionBlackKingside
}

// CastleRights packs the four independent castling rights into one bitmask.
type CastleRights uint8

func (c *CastleRights) Set(d CastleDirection, allow bool) {
	if allow {
		*c |= maskCastleRights[d]
	} else {
		*c &^= maskCastleRights[d]
	}
}

func (c CastleRights) IsAllowed(d CastleDirection) bool {
	return c&maskCastleRights[d] != 0
}

func (c CastleRights) IsSideAllowed(s Side) bool {
	if s == SideWhite {
		return c&(maskCastleRights[CastleDirectionWhiteKingside]|maskCastleRights[CastleDirectionWhiteQueenside]) != 0
	}
	return c&(maskCastleRights[CastleDirectionBlackKingside]|maskCastleRights[CastleDirectionBlackQueenside]) != 0
}

func (c CastleRights) String() string {
	if c == 0 {
		return "-"
	}
	s := ""
	if c.IsAllowed(CastleDirectionWhiteKingside) {
		s += "K"
	}
	if c.IsAllowed(CastleDirectionWhiteQueenside) {
		s += "Q"
	}
	if c.IsAllowed(CastleDirectionBlackKingside) {
		s += "k"
	}
	if c.IsAllowed(CastleDirectionBlackQueenside) {
		s += "q"
	}
	return s
}
