package rules

import "golang.org/x/exp/slices"

// IsCheckResolved plays from->to on a copy of b and reports whether the King of
// color c is safe afterwards. A position without that King is never resolved.
func IsCheckResolved(b Board, to, from Position, c Color) bool {
	after := MakeMove(b, to, from)
	king, ok := after.KingPosition(c)
	if !ok {
		return false
	}
	return !InCheck(after, king, c)
}

// LegalMoves returns the moves of the piece on pos that leave its own King out of
// check, tagged with whether each is a castle.
func LegalMoves(b Board, pos Position) []Move {
	p := b.at(pos)
	if p == nil {
		return nil
	}
	piece := *p
	var moves []Move
	for _, to := range LegalTargets(b, pos) {
		if !IsCheckResolved(b, to, pos, piece.Color) {
			continue
		}
		moves = append(moves, Move{From: pos, To: to, IsCastle: IsCastle(piece, to)})
	}
	return moves
}

// IsLegal reports whether from->to is among the legal moves of the piece on from.
func IsLegal(b Board, from, to Position) bool {
	return slices.IndexFunc(LegalMoves(b, from), func(m Move) bool {
		return m.To == to
	}) >= 0
}

// HasLegalMove reports whether color c has at least one legal move anywhere.
func HasLegalMove(b Board, c Color) bool {
	for _, p := range b.Pieces(c) {
		if len(LegalMoves(b, p.Position)) > 0 {
			return true
		}
	}
	return false
}
