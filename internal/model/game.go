package model

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/VVain716/chess/internal/apperr"
	"github.com/VVain716/chess/internal/rules"
	"github.com/VVain716/chess/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/exp/slices"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCheckmate Status = "checkmate"
	StatusStalemate Status = "stalemate"
)

// Sender is the part of a websocket connection a game broadcasts through.
type Sender interface {
	WriteJSON(v interface{}) error
}

// The connections for a specific game
type GameConnections struct {
	connections map[string]Sender // playerID -> connection
	mu          sync.RWMutex
	send        sync.Mutex // held from snapshot to last write, so broadcasts never reorder
}

// Game owns the live board of one match and the players watching it. The board
// is only ever replaced with the snapshot returned by the rules engine.
type Game struct {
	ID          string
	mu          sync.Mutex
	board       rules.Board
	state       GameState
	connections *GameConnections
}

type GameState struct {
	Sound          string         `json:"sound"`
	Board          *BoardState    `json:"boardState"`
	ToMove         rules.Color    `json:"toMove"`
	MoveHistory    []Move         `json:"moveHistory"`
	CapturedPieces CapturedPieces `json:"capturedPieces"`
	IsCheck        bool           `json:"isCheck"`
	Status         Status         `json:"status"`
	Winner         *rules.Color   `json:"winner"`
	Players        Players        `json:"players"`
	LastMove       *SimpleMove    `json:"lastMove"`
}

type Players struct {
	White ClientPlayer `json:"white"`
	Black ClientPlayer `json:"black"`
}

// CapturedPieces lists the pieces each side has taken.
type CapturedPieces struct {
	White []rules.Piece `json:"white"`
	Black []rules.Piece `json:"black"`
}

func NewGame(id string) *Game {
	board := rules.NewBoard()
	return &Game{
		ID:          id,
		board:       board,
		state:       newGameState(board),
		connections: NewGameConnections(),
	}
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]Sender),
	}
}

func newGameState(board rules.Board) GameState {
	return GameState{
		Board:       newBoardState(board),
		ToMove:      rules.White,
		MoveHistory: make([]Move, 0),
		CapturedPieces: CapturedPieces{
			White: make([]rules.Piece, 0),
			Black: make([]rules.Piece, 0),
		},
		Status: StatusActive,
	}
}

// AddPlayer seats playerID: the first seat is White, the second Black. Rejoining
// returns the seat already held.
func (g *Game) AddPlayer(playerID string) (rules.Color, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if c, ok := g.seatOf(playerID); ok {
		return c, nil
	}
	if g.state.Players.White.ID == "" {
		g.state.Players.White = ClientPlayer{ID: playerID, Color: rules.White}
		return rules.White, nil
	}
	if g.state.Players.Black.ID == "" {
		g.state.Players.Black = ClientPlayer{ID: playerID, Color: rules.Black}
		return rules.Black, nil
	}
	return rules.White, apperr.ErrGameFull
}

// GetState returns a snapshot that later moves do not modify.
func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	state := g.state
	state.MoveHistory = slices.Clone(g.state.MoveHistory)
	state.CapturedPieces.White = slices.Clone(g.state.CapturedPieces.White)
	state.CapturedPieces.Black = slices.Clone(g.state.CapturedPieces.Black)
	return state
}

func (g *Game) IsPlayerInGame(playerID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, ok := g.seatOf(playerID)
	return ok
}

func (g *Game) seatOf(playerID string) (rules.Color, bool) {
	if playerID == "" {
		return rules.White, false
	}
	if g.state.Players.White.ID == playerID {
		return rules.White, true
	}
	if g.state.Players.Black.ID == playerID {
		return rules.Black, true
	}
	return rules.White, false
}

func (g *Game) canSpectate() bool {
	return g.state.Players.White.ID == "" || g.state.Players.Black.ID == ""
}

// LegalMoves returns the legal moves of the piece on pos, which must belong to
// the side to move.
func (g *Game) LegalMoves(pos rules.Position) ([]rules.Move, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkSelection(pos); err != nil {
		return nil, err
	}
	moves := rules.LegalMoves(g.board, pos)
	if moves == nil {
		moves = []rules.Move{}
	}
	return moves, nil
}

func (g *Game) checkSelection(pos rules.Position) error {
	if g.state.Status != StatusActive {
		return apperr.ErrGameOver
	}
	if !pos.InBounds() {
		return fmt.Errorf("select %v: %w", pos, apperr.ErrOutOfBounds)
	}
	piece, ok := g.board.At(pos)
	if !ok {
		return fmt.Errorf("select %v: %w", pos, apperr.ErrEmptySquare)
	}
	if piece.Color != g.state.ToMove {
		return fmt.Errorf("select %v: %w", pos, apperr.ErrWrongPiece)
	}
	return nil
}

// MakeMove validates move for playerID against the legal moves on offer and
// commits it.
func (g *Game) MakeMove(playerID string, move WSMove) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	color, seated := g.seatOf(playerID)
	if !seated {
		return apperr.ErrNotInGame
	}
	if g.state.Status == StatusActive && color != g.state.ToMove {
		return apperr.ErrNotYourTurn
	}
	if err := g.checkSelection(move.From); err != nil {
		return err
	}
	if !move.To.InBounds() {
		return fmt.Errorf("move to %v: %w", move.To, apperr.ErrOutOfBounds)
	}

	legal := rules.LegalMoves(g.board, move.From)
	i := slices.IndexFunc(legal, func(m rules.Move) bool { return m.To == move.To })
	if i < 0 {
		return fmt.Errorf("%v -> %v: %w", move.From, move.To, apperr.ErrIllegalMove)
	}

	g.executeMove(legal[i])
	go g.broadcastState()
	return nil
}

func (g *Game) executeMove(m rules.Move) {
	piece, _ := g.board.At(m.From)
	ply := Ply{Piece: piece, From: m.From, To: m.To}

	g.state.Sound = "move"
	if captured, ok := g.board.At(m.To); ok {
		ply.CapturedPiece = &captured
		g.state.Sound = "capture"
		switch piece.Color {
		case rules.White:
			g.state.CapturedPieces.White = append(g.state.CapturedPieces.White, captured)
		case rules.Black:
			g.state.CapturedPieces.Black = append(g.state.CapturedPieces.Black, captured)
		}
	}
	if m.IsCastle {
		if from, to, ok := rules.CastleRookMove(m.To, piece.Color); ok {
			ply.CastleRookMove = &CastleRookMove{From: from, To: to}
		}
		g.state.Sound = "castle"
	}

	g.board = rules.Apply(g.board, m)

	if landed, ok := g.board.At(m.To); ok && piece.Kind == rules.Pawn && landed.Kind == rules.Queen {
		ply.Promotion = true
	}

	if piece.Color == rules.White {
		g.state.MoveHistory = append(g.state.MoveHistory, Move{WhitePly: ply})
	} else if n := len(g.state.MoveHistory); n > 0 && g.state.MoveHistory[n-1].BlackPly == nil {
		g.state.MoveHistory[n-1].BlackPly = &ply
	} else {
		g.state.MoveHistory = append(g.state.MoveHistory, Move{BlackPly: &ply})
	}

	g.state.ToMove = piece.Color.Opponent()
	g.state.LastMove = &SimpleMove{From: m.From, To: m.To}
	g.state.Board = newBoardState(g.board)
	g.updateStatus(piece.Color)
}

// updateStatus recomputes check, checkmate and stalemate for the side to move
// after mover has played.
func (g *Game) updateStatus(mover rules.Color) {
	side := g.state.ToMove
	king, ok := g.board.KingPosition(side)
	if !ok {
		log.Errorf("game %s: no %s king on board", g.ID, side)
		return
	}

	g.state.IsCheck = rules.InCheck(g.board, king, side)
	if g.state.IsCheck {
		g.state.Sound = "check"
	}

	switch {
	case g.state.IsCheck && rules.Checkmate(g.board, king, side):
		g.finish(StatusCheckmate, &mover)
	case !rules.HasLegalMove(g.board, side):
		if g.state.IsCheck {
			g.finish(StatusCheckmate, &mover)
		} else {
			g.finish(StatusStalemate, nil)
		}
	}
}

func (g *Game) finish(status Status, winner *rules.Color) {
	g.state.Status = status
	g.state.Winner = winner
	log.Infow("game over", "game", g.ID, "status", status, "winner", winner)
}

func (g *Game) RegisterConnection(playerID string, conn Sender) error {
	g.mu.Lock()
	_, seated := g.seatOf(playerID)
	isAuthorized := seated || g.canSpectate()
	g.mu.Unlock()

	if !isAuthorized {
		return fmt.Errorf("register %s: %w", playerID, apperr.ErrNotInGame)
	}

	g.connections.mu.Lock()
	if _, exists := g.connections.connections[playerID]; exists {
		g.connections.mu.Unlock()
		return fmt.Errorf("register %s: %w", playerID, apperr.ErrDuplicateConnection)
	}

	g.connections.connections[playerID] = conn
	g.connections.mu.Unlock()
	log.Debugw("registered connection", "game", g.ID, "player", playerID)

	go g.broadcastState()
	return nil
}

// UnregisterConnection removes conn for playerID. A connection registered later
// under the same id is left in place.
func (g *Game) UnregisterConnection(playerID string, conn Sender) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	if current, exists := g.connections.connections[playerID]; exists && current == conn {
		log.Debugw("unregistered connection", "game", g.ID, "player", playerID)
		delete(g.connections.connections, playerID)
	}
}

// broadcastState sends the current state to every registered connection and
// drops connections whose write fails.
func (g *Game) broadcastState() {
	g.connections.send.Lock()
	defer g.connections.send.Unlock()

	state := g.GetState()
	payload, err := json.Marshal(state)
	if err != nil {
		log.Errorf("game %s: marshal state: %v", g.ID, err)
		return
	}
	msg := ws.Message{Type: ws.MessageTypeGameState, Payload: json.RawMessage(payload)}

	g.connections.mu.RLock()
	active := make(map[string]Sender, len(g.connections.connections))
	for playerID, conn := range g.connections.connections {
		active[playerID] = conn
	}
	g.connections.mu.RUnlock()

	for playerID, conn := range active {
		if err := conn.WriteJSON(msg); err != nil {
			log.Warnw("dropping connection", "game", g.ID, "player", playerID, "err", err)
			g.UnregisterConnection(playerID, conn)
		}
	}
}
