package model

import "github.com/VVain716/chess/internal/rules"

// Player is a waiting or seated participant, identified by the id the client
// sends in X-Player-ID.
type Player struct {
	ID string
}

type ClientPlayer struct {
	ID    string      `json:"name"`
	Color rules.Color `json:"color"`
}
