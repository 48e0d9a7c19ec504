package movegen

import "castellan/board"

// Legal generates every legal move for the side to move: the pseudo-legal
// set filtered by playing each move on a copy and rejecting those that
// leave the mover's own king attacked.
func Legal(b *board.Board) []board.Move {
	pseudo := PseudoLegal(b)
	mvs := make([]board.Move, 0, len(pseudo))
	side := b.Turn()
	for _, mv := range pseudo {
		next := b.Clone()
		if !next.Apply(mv) {
			continue
		}
		if InCheck(&next, side) {
			continue
		}
		mvs = append(mvs, mv)
	}
	return mvs
}

// IsLegal reports whether mv is among the legal moves of b. Matching is
// structural: from, to, promotion piece and the castle and en-passant flags
// must all agree.
func IsLegal(b *board.Board, mv board.Move) bool {
	for _, legal := range Legal(b) {
		if legal.Equals(mv) {
			return true
		}
	}
	return false
}

// MakeMove parses notation, checks legality and applies the move to b.
// On any failure b is left untouched and false is returned.
func MakeMove(b *board.Board, notation string) bool {
	mv, err := b.ParseMove(notation)
	if err != nil {
		return false
	}
	if !IsLegal(b, mv) {
		return false
	}
	return b.Apply(mv)
}
