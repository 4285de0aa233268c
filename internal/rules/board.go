package rules

// Board is an 8x8 grid of optional pieces plus a cached king square per color.
// It is a value: assigning or passing a Board copies the grid, and the engine
// never mutates a Piece after placing it, so a copy can be probed freely
// without touching the caller's position.
type Board struct {
	cells [8][8]*Piece
	kings [2]Position
}

var backRank = [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard returns the standard starting position.
func NewBoard() Board {
	var b Board
	for col, kind := range backRank {
		b.Place(Piece{Kind: kind, Color: Black, Position: Position{Row: 0, Col: col}})
		b.Place(Piece{Kind: Pawn, Color: Black, Position: Position{Row: 1, Col: col}})
		b.Place(Piece{Kind: Pawn, Color: White, Position: Position{Row: 6, Col: col}})
		b.Place(Piece{Kind: kind, Color: White, Position: Position{Row: 7, Col: col}})
	}
	return b
}

// EmptyBoard returns a board with no pieces, for building constructed positions.
func EmptyBoard() Board {
	return Board{}
}

// Place puts a copy of p on the cell named by p.Position, replacing any occupant.
func (b *Board) Place(p Piece) {
	if !p.Position.InBounds() {
		return
	}
	piece := p
	b.cells[p.Position.Row][p.Position.Col] = &piece
	if p.Kind == King {
		b.kings[p.Color] = p.Position
	}
}

// At returns the occupant of pos, if any.
func (b Board) At(pos Position) (Piece, bool) {
	p := b.at(pos)
	if p == nil {
		return Piece{}, false
	}
	return *p, true
}

func (b *Board) at(pos Position) *Piece {
	if !pos.InBounds() {
		return nil
	}
	return b.cells[pos.Row][pos.Col]
}

func (b *Board) empty(pos Position) bool {
	return b.at(pos) == nil
}

// enemyAt reports whether pos holds a piece of the opposite color to c.
func (b *Board) enemyAt(pos Position, c Color) bool {
	p := b.at(pos)
	return p != nil && p.Color != c
}

// Pieces returns every piece of the given color in row-major order.
func (b Board) Pieces(c Color) []Piece {
	var out []Piece
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if p := b.cells[row][col]; p != nil && p.Color == c {
				out = append(out, *p)
			}
		}
	}
	return out
}

// KingPosition returns the square of the King of color c. The cached square is
// used when it still holds that King; otherwise the grid is scanned.
func (b Board) KingPosition(c Color) (Position, bool) {
	cached := b.kings[c]
	if p := b.at(cached); p != nil && p.Kind == King && p.Color == c {
		return cached, true
	}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if p := b.cells[row][col]; p != nil && p.Kind == King && p.Color == c {
				return p.Position, true
			}
		}
	}
	return Position{}, false
}

// relocate moves whatever stands on from onto to without promotion or flag
// updates. The captured occupant, if any, is discarded.
func (b Board) relocate(from, to Position) Board {
	p := b.at(from)
	if p == nil {
		return b
	}
	moved := *p
	moved.Position = to
	b.cells[from.Row][from.Col] = nil
	b.Place(moved)
	return b
}
