package rules

var (
	rookDirs   = []Position{{Row: 1, Col: 0}, {Row: -1, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: -1}}
	bishopDirs = []Position{{Row: 1, Col: 1}, {Row: 1, Col: -1}, {Row: -1, Col: 1}, {Row: -1, Col: -1}}
	queenDirs  = append(append([]Position{}, rookDirs...), bishopDirs...)
	kingDirs   = queenDirs
	knightDirs = []Position{
		{Row: -1, Col: -2}, {Row: 1, Col: -2}, {Row: -2, Col: -1}, {Row: 2, Col: -1},
		{Row: -2, Col: 1}, {Row: 2, Col: 1}, {Row: -1, Col: 2}, {Row: 1, Col: 2},
	}
)

// LegalTargets returns the pseudo-legal destinations of the piece on pos: moves
// that obey the piece's geometry and capture rules. Only King targets are also
// screened for the mover's own safety. An empty cell yields nil.
func LegalTargets(b Board, pos Position) []Position {
	p := b.at(pos)
	if p == nil {
		return nil
	}
	switch p.Kind {
	case Pawn:
		return pawnTargets(&b, *p)
	case Knight:
		return knightTargets(&b, *p)
	case Bishop:
		return slideTargets(&b, *p, bishopDirs)
	case Rook:
		return slideTargets(&b, *p, rookDirs)
	case Queen:
		return slideTargets(&b, *p, queenDirs)
	case King:
		return kingTargets(&b, *p)
	}
	return nil
}

// pawnForward is the row delta of a pawn advancing for color c.
func pawnForward(c Color) int {
	if c == White {
		return -1
	}
	return 1
}

// pawnStartRow is the rank a pawn of color c may double-step from.
func pawnStartRow(c Color) int {
	if c == White {
		return 6
	}
	return 1
}

func pawnTargets(b *Board, p Piece) []Position {
	var targets []Position
	dir := pawnForward(p.Color)

	one := p.Position.offset(dir, 0)
	if one.InBounds() && b.empty(one) {
		targets = append(targets, one)
		two := p.Position.offset(2*dir, 0)
		if p.Position.Row == pawnStartRow(p.Color) && b.empty(two) {
			targets = append(targets, two)
		}
	}
	for _, dCol := range []int{-1, 1} {
		diag := p.Position.offset(dir, dCol)
		if diag.InBounds() && b.enemyAt(diag, p.Color) {
			targets = append(targets, diag)
		}
	}
	return targets
}

// pawnAttacks returns both forward diagonals whether or not they are occupied.
// Check detection must use this instead of pawnTargets.
func pawnAttacks(p Piece) []Position {
	var targets []Position
	dir := pawnForward(p.Color)
	for _, dCol := range []int{-1, 1} {
		diag := p.Position.offset(dir, dCol)
		if diag.InBounds() {
			targets = append(targets, diag)
		}
	}
	return targets
}

func knightTargets(b *Board, p Piece) []Position {
	return stepTargets(b, p, knightDirs)
}

// stepTargets returns the in-bounds single steps that do not land on a friendly piece.
func stepTargets(b *Board, p Piece, dirs []Position) []Position {
	var targets []Position
	for _, dir := range dirs {
		target := p.Position.offset(dir.Row, dir.Col)
		if !target.InBounds() {
			continue
		}
		if b.empty(target) || b.enemyAt(target, p.Color) {
			targets = append(targets, target)
		}
	}
	return targets
}

// slideTargets ray-casts along dirs. A ray ends at the first occupied cell, which
// is included only when it holds an enemy piece.
func slideTargets(b *Board, p Piece, dirs []Position) []Position {
	var targets []Position
	for _, dir := range dirs {
		target := p.Position.offset(dir.Row, dir.Col)
		for target.InBounds() {
			if b.empty(target) {
				targets = append(targets, target)
			} else {
				if b.enemyAt(target, p.Color) {
					targets = append(targets, target)
				}
				break
			}
			target = target.offset(dir.Row, dir.Col)
		}
	}
	return targets
}

func kingTargets(b *Board, p Piece) []Position {
	return append(stepEscapes(b, p), castleTargets(b, p)...)
}

type castleSide struct {
	kingCol  int
	rookFrom int
	rookTo   int
	between  []int
}

var (
	kingSide  = castleSide{kingCol: 6, rookFrom: 7, rookTo: 5, between: []int{5, 6}}
	queenSide = castleSide{kingCol: 2, rookFrom: 0, rookTo: 3, between: []int{1, 2, 3}}
)

// castleTargets appends the castling destinations available to an unmoved King on
// its home square. Neither the King's current square nor the squares it crosses
// are tested for attack.
func castleTargets(b *Board, p Piece) []Position {
	row := homeRank(p.Color)
	if p.HasMoved || p.Position != (Position{Row: row, Col: 4}) {
		return nil
	}
	var targets []Position
	for _, side := range []castleSide{kingSide, queenSide} {
		if castlePathClear(b, row, side) && friendlyRookAt(b, Position{Row: row, Col: side.rookFrom}, p.Color) {
			targets = append(targets, Position{Row: row, Col: side.kingCol})
		}
	}
	return targets
}

func castlePathClear(b *Board, row int, side castleSide) bool {
	for _, col := range side.between {
		if !b.empty(Position{Row: row, Col: col}) {
			return false
		}
	}
	return true
}

func friendlyRookAt(b *Board, pos Position, c Color) bool {
	r := b.at(pos)
	return r != nil && r.Kind == Rook && r.Color == c
}

// castleSideFor returns the side whose King destination is to, if to is one of
// the canonical castling squares for color c.
func castleSideFor(to Position, c Color) (castleSide, bool) {
	if to.Row != homeRank(c) {
		return castleSide{}, false
	}
	switch to.Col {
	case kingSide.kingCol:
		return kingSide, true
	case queenSide.kingCol:
		return queenSide, true
	}
	return castleSide{}, false
}

// IsCastle reports whether moving p to the given square is a castling move: p is
// an unmoved King on its home square and to is one of its color's castling destinations.
func IsCastle(p Piece, to Position) bool {
	if p.Kind != King || p.HasMoved || p.Position != (Position{Row: homeRank(p.Color), Col: 4}) {
		return false
	}
	_, ok := castleSideFor(to, p.Color)
	return ok
}
