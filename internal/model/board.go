package model

import "github.com/VVain716/chess/internal/rules"

// BoardState is the client view of a rules.Board: an 8x8 grid of nullable pieces
// indexed [row][col], plus both king squares.
type BoardState struct {
	Board             [][]*rules.Piece `json:"board"`
	BlackKingPosition rules.Position   `json:"blackKingPosition"`
	WhiteKingPosition rules.Position   `json:"whiteKingPosition"`
}

func newBoardState(b rules.Board) *BoardState {
	state := &BoardState{}
	for row := 0; row < 8; row++ {
		cells := make([]*rules.Piece, 8)
		for col := 0; col < 8; col++ {
			if p, ok := b.At(rules.Position{Row: row, Col: col}); ok {
				cells[col] = &p
			}
		}
		state.Board = append(state.Board, cells)
	}
	state.WhiteKingPosition, _ = b.KingPosition(rules.White)
	state.BlackKingPosition, _ = b.KingPosition(rules.Black)
	return state
}
