package rules

// attackTargets returns the squares p threatens. It matches LegalTargets for
// every kind except Pawn, whose diagonals count as threatened whether or not
// they are occupied.
func attackTargets(b *Board, p Piece) []Position {
	switch p.Kind {
	case Pawn:
		return pawnAttacks(p)
	case Knight:
		return knightTargets(b, p)
	case Bishop:
		return slideTargets(b, p, bishopDirs)
	case Rook:
		return slideTargets(b, p, rookDirs)
	case Queen:
		return slideTargets(b, p, queenDirs)
	case King:
		// Kings are never scanned as attackers; generating their targets would
		// recurse back into InCheck.
		return nil
	}
	return nil
}

// InCheck reports whether the square kingPos, holding a King of color c, is
// attacked by any opposing piece other than the opposing King.
func InCheck(b Board, kingPos Position, c Color) bool {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b.cells[row][col]
			if p == nil || p.Color == c || p.Kind == King {
				continue
			}
			for _, target := range attackTargets(&b, *p) {
				if target == kingPos {
					return true
				}
			}
		}
	}
	return false
}

// Checkmate reports whether the King of color c on kingPos is in check with no
// way out. The King's own legal moves, castling included, are tried first; then
// every pseudo-legal move of every other piece of color c is played on a scratch
// board and the king square re-tested. Nothing is cached between calls.
func Checkmate(b Board, kingPos Position, c Color) bool {
	if !InCheck(b, kingPos, c) {
		return false
	}
	if len(LegalMoves(b, kingPos)) != 0 {
		return false
	}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b.cells[row][col]
			if p == nil || p.Color != c || p.Kind == King {
				continue
			}
			for _, target := range LegalTargets(b, p.Position) {
				scratch := b.relocate(p.Position, target)
				if !InCheck(scratch, kingPos, c) {
					return false
				}
			}
		}
	}
	return true
}

// stepEscapes is the self-filtered part of kingTargets, without castling.
func stepEscapes(b *Board, king Piece) []Position {
	var escapes []Position
	for _, target := range stepTargets(b, king, kingDirs) {
		if !InCheck(MakeMove(*b, target, king.Position), target, king.Color) {
			escapes = append(escapes, target)
		}
	}
	return escapes
}
