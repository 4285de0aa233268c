package rules

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// boardWith builds a position from pieces; Position fields must be set.
func boardWith(pieces ...Piece) Board {
	b := EmptyBoard()
	for _, p := range pieces {
		b.Place(p)
	}
	return b
}

func piece(kind Kind, color Color, row, col int) Piece {
	return Piece{Kind: kind, Color: color, Position: pos(row, col)}
}

var sortPositions = cmpopts.SortSlices(func(a, b Position) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
})

func assertTargets(t *testing.T, got, want []Position) {
	t.Helper()
	if diff := cmp.Diff(want, got, sortPositions, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("targets mismatch (-want +got):\n%s", diff)
	}
}
