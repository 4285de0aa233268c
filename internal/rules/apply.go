package rules

// MakeMove returns a copy of b with the piece on from moved to to. The piece at
// the destination is a fresh value; Kings and Rooks are marked as moved, and a
// Pawn reaching either back rank is replaced by a Queen of its color. Anything
// standing on to is discarded.
func MakeMove(b Board, to, from Position) Board {
	p := b.at(from)
	if p == nil {
		return b
	}
	moved := Piece{Kind: p.Kind, Color: p.Color, Position: to}
	if moved.Kind.tracksMovement() {
		moved.HasMoved = true
	}
	if moved.Kind == Pawn && (to.Row == 0 || to.Row == 7) {
		moved.Kind = Queen
	}
	b.cells[from.Row][from.Col] = nil
	b.Place(moved)
	return b
}

// Castle moves the King of color c to kingTo and the matching Rook to the square
// beside it on the side it came from. kingTo must be one of (7,6), (7,2) for
// White or (0,6), (0,2) for Black; anything else returns b unchanged.
func Castle(b Board, kingTo Position, c Color) Board {
	side, ok := castleSideFor(kingTo, c)
	if !ok {
		return b
	}
	row := homeRank(c)
	b = MakeMove(b, kingTo, Position{Row: row, Col: 4})
	return MakeMove(b, Position{Row: row, Col: side.rookTo}, Position{Row: row, Col: side.rookFrom})
}

// CastleRookMove returns the Rook's from and to squares for a castling King
// landing on kingTo.
func CastleRookMove(kingTo Position, c Color) (from, to Position, ok bool) {
	side, ok := castleSideFor(kingTo, c)
	if !ok {
		return Position{}, Position{}, false
	}
	row := homeRank(c)
	return Position{Row: row, Col: side.rookFrom}, Position{Row: row, Col: side.rookTo}, true
}

// Apply commits m, routing castling moves through Castle.
func Apply(b Board, m Move) Board {
	if m.IsCastle {
		if p := b.at(m.From); p != nil {
			return Castle(b, m.To, p.Color)
		}
		return b
	}
	return MakeMove(b, m.To, m.From)
}
