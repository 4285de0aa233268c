package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/VVain716/chess/internal/apperr"
	"github.com/VVain716/chess/internal/model"
	"github.com/VVain716/chess/internal/rules"
	"github.com/google/uuid"
)

func TestCreateGame_Duplicate(t *testing.T) {
	gm := NewGameManager(time.Second)
	if err := gm.CreateGame("g1"); err != nil {
		t.Fatalf("CreateGame error: %v", err)
	}
	if err := gm.CreateGame("g1"); !errors.Is(err, apperr.ErrDuplicateGame) {
		t.Errorf("second CreateGame error = %v, want ErrDuplicateGame", err)
	}
}

func TestGetGame_Unknown(t *testing.T) {
	gm := NewGameManager(time.Second)
	if _, err := gm.GetGame("nope"); !errors.Is(err, apperr.ErrGameNotFound) {
		t.Errorf("GetGame error = %v, want ErrGameNotFound", err)
	}
	if err := gm.MakeMove("nope", "w", model.WSMove{}); !errors.Is(err, apperr.ErrGameNotFound) {
		t.Errorf("MakeMove error = %v, want ErrGameNotFound", err)
	}
}

func TestMatchmakingPairsPlayers(t *testing.T) {
	gm := NewGameManager(10 * time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go gm.Start(ctx)

	channels := map[string]chan string{}
	for _, id := range []string{"a", "b"} {
		ch := make(chan string, 1)
		channels[id] = ch
		if err := gm.RegisterMatchmakingChannel(id, ch); err != nil {
			t.Fatalf("RegisterMatchmakingChannel(%s) error: %v", id, err)
		}
		if err := gm.JoinMatchmaking(id); err != nil {
			t.Fatalf("JoinMatchmaking(%s) error: %v", id, err)
		}
	}

	events := map[string]model.MatchFoundEvent{}
	for id, ch := range channels {
		select {
		case raw := <-ch:
			var ev model.MatchFoundEvent
			if err := json.Unmarshal([]byte(raw), &ev); err != nil {
				t.Fatalf("decode event for %s: %v", id, err)
			}
			events[id] = ev
		case <-time.After(2 * time.Second):
			t.Fatalf("no match event for %s", id)
		}
	}

	if events["a"].GameID != events["b"].GameID {
		t.Fatalf("players matched into different games: %+v", events)
	}
	if events["a"].Color != rules.White || events["b"].Color != rules.Black {
		t.Errorf("colors = %s, %s; want white, black", events["a"].Color, events["b"].Color)
	}
	game, err := gm.GetGame(events["a"].GameID)
	if err != nil {
		t.Fatalf("matched game not registered: %v", err)
	}
	if !game.IsPlayerInGame("a") || !game.IsPlayerInGame("b") {
		t.Error("matched players not seated")
	}
}

func TestUnregisterMatchmakingChannelLeavesQueue(t *testing.T) {
	gm := NewGameManager(time.Second)
	if err := gm.JoinMatchmaking("a"); err != nil {
		t.Fatalf("JoinMatchmaking error: %v", err)
	}
	gm.UnregisterMatchmakingChannel("a")
	if gm.queue.Size() != 0 {
		t.Errorf("queue size = %d, want 0", gm.queue.Size())
	}
}

func TestGameServiceFlow(t *testing.T) {
	gs := NewGameService(NewGameManager(time.Second))

	gameID, err := gs.CreateGame()
	if err != nil {
		t.Fatalf("CreateGame error: %v", err)
	}
	if _, err := uuid.Parse(gameID); err != nil {
		t.Errorf("game id %q is not a uuid: %v", gameID, err)
	}

	if c, err := gs.JoinGame(gameID, "w"); err != nil || c != rules.White {
		t.Fatalf("JoinGame(w) = %v, %v", c, err)
	}
	if _, err := gs.JoinGame("missing", "w"); !errors.Is(err, apperr.ErrGameNotFound) {
		t.Errorf("JoinGame(missing) error = %v, want ErrGameNotFound", err)
	}

	e2e4 := model.WSMove{From: rules.Position{Row: 6, Col: 4}, To: rules.Position{Row: 4, Col: 4}}
	if err := gs.HandleMove(gameID, "w", e2e4); err != nil {
		t.Fatalf("HandleMove error: %v", err)
	}
	if err := gs.HandleMove(gameID, "w", e2e4); !errors.Is(err, apperr.ErrNotYourTurn) {
		t.Errorf("second HandleMove error = %v, want ErrNotYourTurn", err)
	}

	state, err := gs.GetGameState(gameID)
	if err != nil {
		t.Fatalf("GetGameState error: %v", err)
	}
	if state.ToMove != rules.Black {
		t.Errorf("ToMove = %s, want black", state.ToMove)
	}
}
