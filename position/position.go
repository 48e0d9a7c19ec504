package position

import (
	"errors"
)

const (
	// Width is the number of files and ranks on the board.
	Width Pos = 8
	// Total is the number of squares on the board.
	Total = Width * Width
)

var (
	// ErrInvalidNotation represents an invalid square notation error.
	ErrInvalidNotation = errors.New("invalid notation")
)

// Pos is a square index in [0, 64), laid out rank-major: index = rank*8 + file.
type Pos int8

func NewPosFromNotation(n string) (Pos, error) {
	if len(n) != 2 {
		return 0, ErrInvalidNotation
	}
	file, err := fileFromNotation(n[0])
	if err != nil {
		return 0, err
	}
	rank, err := rankFromNotation(n[1])
	if err != nil {
		return 0, err
	}
	return rank*Width + file, nil
}

func (p Pos) String() string {
	return p.Notation()
}

func (p Pos) Notation() string {
	if !p.Valid() {
		return ""
	}
	return string(rune('a'+p.File())) + string(rune('1'+p.Rank()))
}

func (p Pos) Valid() bool {
	return p >= 0 && p < Total
}

func (p Pos) File() Pos {
	return p % Width
}

func (p Pos) Rank() Pos {
	return p / Width
}

// FileNotation returns the letter of the square's file.
func (p Pos) FileNotation() string {
	if p < 0 || p >= Width {
		return ""
	}
	return string(rune('a' + p))
}

// RankNotation returns the digit of the square's rank.
func (p Pos) RankNotation() string {
	if p < 0 || p >= Width {
		return ""
	}
	return string(rune('1' + p))
}

func fileFromNotation(c byte) (Pos, error) {
	f := Pos(c - 'a')
	if f < 0 || f >= Width {
		return 0, ErrInvalidNotation
	}
	return f, nil
}

func rankFromNotation(c byte) (Pos, error) {
	r := Pos(c-'0') - 1
	if r < 0 || r >= Width {
		return 0, ErrInvalidNotation
	}
	return r, nil
}
