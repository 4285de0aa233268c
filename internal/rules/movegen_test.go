package rules

import "testing"

func TestLegalTargets_StayOnBoardAndAvoidFriendlyPieces(t *testing.T) {
	boards := map[string]Board{
		"start": NewBoard(),
		"middlegame": boardWith(
			piece(King, White, 7, 6), piece(Rook, White, 7, 5), piece(Queen, White, 4, 3),
			piece(Bishop, White, 5, 2), piece(Knight, White, 5, 5), piece(Pawn, White, 6, 6),
			piece(King, Black, 0, 6), piece(Rook, Black, 0, 3), piece(Queen, Black, 3, 4),
			piece(Knight, Black, 2, 2), piece(Pawn, Black, 1, 6), piece(Bishop, Black, 1, 1),
		),
	}

	for name, b := range boards {
		t.Run(name, func(t *testing.T) {
			for _, c := range []Color{White, Black} {
				for _, p := range b.Pieces(c) {
					for _, target := range LegalTargets(b, p.Position) {
						if !target.InBounds() {
							t.Errorf("%s %s at %v: target %v off board", c, p.Kind, p.Position, target)
						}
						if occ, ok := b.At(target); ok && occ.Color == c {
							t.Errorf("%s %s at %v: target %v holds friendly %s", c, p.Kind, p.Position, target, occ.Kind)
						}
					}
				}
			}
		})
	}
}

func TestLegalTargets_EmptyCell(t *testing.T) {
	if got := LegalTargets(NewBoard(), pos(4, 4)); got != nil {
		t.Errorf("LegalTargets(empty cell) = %v, want nil", got)
	}
}

func TestSlidingPiecesStopAtFirstObstruction(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		want []Position
	}{
		{
			name: "rook",
			kind: Rook,
			want: []Position{
				pos(3, 4), pos(2, 4),
				pos(5, 4), pos(6, 4), pos(7, 4),
				pos(4, 3), pos(4, 2), pos(4, 1), pos(4, 0),
				pos(4, 5),
			},
		},
		{
			name: "bishop",
			kind: Bishop,
			want: []Position{
				pos(3, 3), pos(2, 2), pos(1, 1), pos(0, 0),
				pos(3, 5), pos(2, 6),
				pos(5, 3), pos(6, 2), pos(7, 1),
				pos(5, 5), pos(6, 6), pos(7, 7),
			},
		},
		{
			name: "queen",
			kind: Queen,
			want: []Position{
				pos(3, 4), pos(2, 4),
				pos(5, 4), pos(6, 4), pos(7, 4),
				pos(4, 3), pos(4, 2), pos(4, 1), pos(4, 0),
				pos(4, 5),
				pos(3, 3), pos(2, 2), pos(1, 1), pos(0, 0),
				pos(3, 5), pos(2, 6),
				pos(5, 3), pos(6, 2), pos(7, 1),
				pos(5, 5), pos(6, 6), pos(7, 7),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardWith(
				piece(tt.kind, White, 4, 4),
				piece(Pawn, White, 4, 6),   // friendly blocker on the row
				piece(Pawn, Black, 2, 4),   // enemy on the file
				piece(Knight, Black, 2, 6), // enemy on a diagonal
				piece(Knight, White, 1, 7), // behind the enemy knight
			)
			assertTargets(t, LegalTargets(b, pos(4, 4)), tt.want)
		})
	}
}

func TestKnightInCorner(t *testing.T) {
	b := boardWith(piece(Knight, Black, 0, 0))
	assertTargets(t, LegalTargets(b, pos(0, 0)), []Position{pos(1, 2), pos(2, 1)})
}

func TestKnightSkipsFriendlyButCapturesEnemy(t *testing.T) {
	b := boardWith(
		piece(Knight, White, 0, 0),
		piece(Pawn, White, 1, 2),
		piece(Pawn, Black, 2, 1),
	)
	assertTargets(t, LegalTargets(b, pos(0, 0)), []Position{pos(2, 1)})
}

func TestPawnTargets(t *testing.T) {
	tests := []struct {
		name   string
		pieces []Piece
		from   Position
		want   []Position
	}{
		{
			name:   "white double step from home rank",
			pieces: []Piece{piece(Pawn, White, 6, 3)},
			from:   pos(6, 3),
			want:   []Position{pos(5, 3), pos(4, 3)},
		},
		{
			name:   "white single step off home rank",
			pieces: []Piece{piece(Pawn, White, 5, 3)},
			from:   pos(5, 3),
			want:   []Position{pos(4, 3)},
		},
		{
			name:   "double step blocked on second square",
			pieces: []Piece{piece(Pawn, White, 6, 3), piece(Knight, Black, 4, 3)},
			from:   pos(6, 3),
			want:   []Position{pos(5, 3)},
		},
		{
			name:   "blocked directly ahead",
			pieces: []Piece{piece(Pawn, White, 6, 3), piece(Knight, White, 5, 3)},
			from:   pos(6, 3),
			want:   nil,
		},
		{
			name:   "diagonal only onto enemy",
			pieces: []Piece{piece(Pawn, White, 4, 3), piece(Pawn, Black, 3, 2), piece(Pawn, White, 3, 4), piece(Rook, Black, 3, 3)},
			from:   pos(4, 3),
			want:   []Position{pos(3, 2)},
		},
		{
			name:   "black moves down the board",
			pieces: []Piece{piece(Pawn, Black, 1, 0), piece(Bishop, White, 2, 1)},
			from:   pos(1, 0),
			want:   []Position{pos(2, 0), pos(3, 0), pos(2, 1)},
		},
		{
			name:   "pawn on last rank has no forward move",
			pieces: []Piece{piece(Pawn, Black, 7, 4)},
			from:   pos(7, 4),
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardWith(tt.pieces...)
			assertTargets(t, LegalTargets(b, tt.from), tt.want)
		})
	}
}

func TestStartingPositionKing(t *testing.T) {
	b := NewBoard()
	king, ok := b.KingPosition(White)
	if !ok {
		t.Fatal("KingPosition(White) not found on start board")
	}
	if king != pos(7, 4) {
		t.Fatalf("KingPosition(White) = %v, want (7,4)", king)
	}
	if got := LegalTargets(b, king); len(got) != 0 {
		t.Errorf("LegalTargets(white king) = %v, want none", got)
	}
	if InCheck(b, king, White) {
		t.Error("InCheck(start, white king) = true, want false")
	}
}

func TestKingAvoidsPawnAttackedSquares(t *testing.T) {
	b := boardWith(
		piece(King, White, 7, 4),
		piece(Pawn, Black, 5, 4),
		piece(King, Black, 0, 4),
	)
	// (6,3) and (6,5) are empty but covered by the pawn's diagonals.
	assertTargets(t, LegalTargets(b, pos(7, 4)), []Position{pos(6, 4), pos(7, 3), pos(7, 5)})
}

func TestCastlingTargets(t *testing.T) {
	whiteBack := func(extra ...Piece) Board {
		pieces := append([]Piece{
			piece(King, White, 7, 4), piece(Rook, White, 7, 0), piece(Rook, White, 7, 7),
			piece(King, Black, 0, 4), piece(Rook, Black, 0, 0), piece(Rook, Black, 0, 7),
		}, extra...)
		return boardWith(pieces...)
	}

	tests := []struct {
		name  string
		board Board
		king  Position
		want  []Position
	}{
		{
			name:  "white both sides",
			board: whiteBack(),
			king:  pos(7, 4),
			want:  []Position{pos(6, 3), pos(6, 4), pos(6, 5), pos(7, 3), pos(7, 5), pos(7, 6), pos(7, 2)},
		},
		{
			name:  "black both sides",
			board: whiteBack(),
			king:  pos(0, 4),
			want:  []Position{pos(1, 3), pos(1, 4), pos(1, 5), pos(0, 3), pos(0, 5), pos(0, 6), pos(0, 2)},
		},
		{
			name:  "queen side path blocked on b-file",
			board: whiteBack(piece(Knight, White, 7, 1)),
			king:  pos(7, 4),
			want:  []Position{pos(6, 3), pos(6, 4), pos(6, 5), pos(7, 3), pos(7, 5), pos(7, 6)},
		},
		{
			name:  "enemy rook in corner",
			board: boardWith(piece(King, White, 7, 4), piece(Rook, Black, 7, 7), piece(King, Black, 0, 0)),
			king:  pos(7, 4),
			want:  []Position{pos(6, 3), pos(6, 4), pos(6, 5)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTargets(t, LegalTargets(tt.board, tt.king), tt.want)
		})
	}
}

func TestCastlingRequiresUnmovedKing(t *testing.T) {
	b := boardWith(
		Piece{Kind: King, Color: White, Position: pos(7, 4), HasMoved: true},
		piece(Rook, White, 7, 7),
		piece(King, Black, 0, 4),
	)
	for _, target := range LegalTargets(b, pos(7, 4)) {
		if target == pos(7, 6) {
			t.Fatalf("moved king offered castling target %v", target)
		}
	}
}

func TestIsCastle(t *testing.T) {
	tests := []struct {
		name  string
		piece Piece
		to    Position
		want  bool
	}{
		{"white king side", piece(King, White, 7, 4), pos(7, 6), true},
		{"white queen side", piece(King, White, 7, 4), pos(7, 2), true},
		{"black king side", piece(King, Black, 0, 4), pos(0, 6), true},
		{"black queen side", piece(King, Black, 0, 4), pos(0, 2), true},
		{"ordinary king step", piece(King, White, 7, 4), pos(7, 5), false},
		{"moved king", Piece{Kind: King, Color: White, Position: pos(7, 4), HasMoved: true}, pos(7, 6), false},
		{"wrong rank for color", piece(King, Black, 0, 4), pos(7, 6), false},
		{"rook onto castling square", piece(Rook, White, 7, 7), pos(7, 6), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCastle(tt.piece, tt.to); got != tt.want {
				t.Errorf("IsCastle(%v, %v) = %v, want %v", tt.piece.Kind, tt.to, got, tt.want)
			}
		})
	}
}
