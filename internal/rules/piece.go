// Package rules implements the chess rules engine: board model, pseudo-legal move
// generation, check and checkmate detection, and move application.
//
// Every function is total over well-formed input. Callers validate coordinates,
// ownership and turn order before calling in; the engine never returns errors.
package rules

import (
	"encoding/json"
	"fmt"
)

type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Color) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "white":
		*c = White
	case "black":
		*c = Black
	default:
		return fmt.Errorf("unknown color %q", s)
	}
	return nil
}

// Kind is a closed set; every switch over it lists all six cases.
type Kind uint8

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindNames = [...]string{
	Pawn:   "pawn",
	Knight: "knight",
	Bishop: "bishop",
	Rook:   "rook",
	Queen:  "queen",
	King:   "king",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for i, name := range kindNames {
		if name == s {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown piece kind %q", s)
}

// tracksMovement reports whether HasMoved matters for the kind (castling rights).
func (k Kind) tracksMovement() bool {
	return k == King || k == Rook
}

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < 8 && p.Col >= 0 && p.Col < 8
}

func (p Position) offset(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

type Piece struct {
	Kind     Kind     `json:"type"`
	Color    Color    `json:"color"`
	Position Position `json:"position"`
	HasMoved bool     `json:"hasMoved"`
}

type Move struct {
	From     Position `json:"from"`
	To       Position `json:"to"`
	IsCastle bool     `json:"isCastle"`
}

// homeRank is the back rank of the given color.
func homeRank(c Color) int {
	if c == White {
		return 7
	}
	return 0
}
