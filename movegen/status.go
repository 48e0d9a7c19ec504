package movegen

import "castellan/board"

// GameStatus describes the state of the game for the side to move.
type GameStatus uint8

const (
	StatusOngoing GameStatus = iota
	StatusCheck
	StatusCheckmate
	StatusStalemate
)

func (s GameStatus) String() string {
	switch s {
	case StatusOngoing:
		return "Ongoing"
	case StatusCheck:
		return "Check"
	case StatusCheckmate:
		return "Checkmate"
	case StatusStalemate:
		return "Stalemate"
	}
	return ""
}

// Status classifies b for the side to move. Checkmate and stalemate both
// require an empty legal move set and differ only in whether the king is
// attacked.
func Status(b *board.Board) GameStatus {
	check := InCheck(b, b.Turn())
	if len(Legal(b)) == 0 {
		if check {
			return StatusCheckmate
		}
		return StatusStalemate
	}
	if check {
		return StatusCheck
	}
	return StatusOngoing
}
