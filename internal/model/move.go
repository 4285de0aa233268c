package model

import "github.com/VVain716/chess/internal/rules"

// WSMove is a move request from a client. Promotion is always to a Queen, so
// there is no promotion field.
type WSMove struct {
	From rules.Position `json:"from"`
	To   rules.Position `json:"to"`
}

type CastleRookMove struct {
	From rules.Position `json:"from"`
	To   rules.Position `json:"to"`
}

type Ply struct {
	Piece          rules.Piece     `json:"piece"`
	From           rules.Position  `json:"from"`
	To             rules.Position  `json:"to"`
	CapturedPiece  *rules.Piece    `json:"capturedPiece"`
	CastleRookMove *CastleRookMove `json:"castleRookMove"`
	Promotion      bool            `json:"promotion"`
}

// Move pairs White's ply with Black's reply; BlackPly is nil until Black moves.
type Move struct {
	WhitePly Ply  `json:"whitePly"`
	BlackPly *Ply `json:"blackPly"`
}

type SimpleMove struct {
	From rules.Position `json:"from"`
	To   rules.Position `json:"to"`
}
