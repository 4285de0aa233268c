package service

import (
	"fmt"

	"github.com/VVain716/chess/internal/model"
	"github.com/VVain716/chess/internal/rules"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) JoinGame(gameID string, playerID string) (rules.Color, error) {
	color, err := gs.gameManager.AddPlayerToGame(gameID, playerID)
	if err != nil {
		return color, fmt.Errorf("join game %s: %w", gameID, err)
	}
	log.Infow("player joined", "game", gameID, "player", playerID, "color", color)
	return color, nil
}

func (gs *GameService) CreateGame() (string, error) {
	gameID := uuid.New().String()

	if err := gs.gameManager.CreateGame(gameID); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}
	log.Infow("game created", "game", gameID)
	return gameID, nil
}

func (gs *GameService) JoinMatchmaking(playerID string) error {
	if err := gs.gameManager.JoinMatchmaking(playerID); err != nil {
		return fmt.Errorf("join matchmaking: %w", err)
	}
	return nil
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	return gs.gameManager.GetGameState(gameID)
}

func (gs *GameService) LegalMoves(gameID string, pos rules.Position) ([]rules.Move, error) {
	return gs.gameManager.LegalMoves(gameID, pos)
}

func (gs *GameService) HandleMove(gameID string, playerID string, move model.WSMove) error {
	if err := gs.gameManager.MakeMove(gameID, playerID, move); err != nil {
		return fmt.Errorf("move %v -> %v: %w", move.From, move.To, err)
	}
	return nil
}

func (gs *GameService) RegisterConnection(gameID string, playerID string, conn model.Sender) error {
	return gs.gameManager.RegisterConnection(gameID, playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, playerID string, conn model.Sender) {
	gs.gameManager.UnregisterConnection(gameID, playerID, conn)
}

func (gs *GameService) RegisterMatchmakingChannel(playerID string, ch chan string) error {
	return gs.gameManager.RegisterMatchmakingChannel(playerID, ch)
}

func (gs *GameService) UnregisterMatchmakingChannel(playerID string) {
	gs.gameManager.UnregisterMatchmakingChannel(playerID)
}
