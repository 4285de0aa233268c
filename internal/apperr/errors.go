// Package apperr defines the sentinel errors the game shell returns and maps them
// to HTTP status codes. Wrap them with fmt.Errorf("...: %w", err) to add context;
// callers inspect them with errors.Is.
package apperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

var (
	// ErrGameNotFound indicates an unknown game id.
	ErrGameNotFound = errors.New("game not found")

	// ErrDuplicateGame indicates a game id collision on create.
	ErrDuplicateGame = errors.New("game already exists")

	// ErrGameFull indicates both seats are taken.
	ErrGameFull = errors.New("game is full")

	// ErrNotInGame indicates the player holds no seat in the game.
	ErrNotInGame = errors.New("player not in game")

	// ErrGameOver indicates the game has already reached checkmate or stalemate.
	ErrGameOver = errors.New("game is over")

	// ErrNotYourTurn indicates the player moved out of turn.
	ErrNotYourTurn = errors.New("not your turn")

	// ErrOutOfBounds indicates a coordinate outside the 8x8 board.
	ErrOutOfBounds = errors.New("square out of bounds")

	// ErrEmptySquare indicates a selection of an empty cell.
	ErrEmptySquare = errors.New("no piece at from square")

	// ErrWrongPiece indicates a selection of a piece that does not belong to the side to move.
	ErrWrongPiece = errors.New("piece belongs to the other side")

	// ErrIllegalMove indicates a destination outside the offered legal moves.
	ErrIllegalMove = errors.New("illegal move")

	// ErrDuplicateConnection indicates a second live socket for a player already connected to the game.
	ErrDuplicateConnection = errors.New("connection already exists")

	// ErrAlreadyQueued indicates a second matchmaking request from the same player.
	ErrAlreadyQueued = errors.New("player already in queue")

	// ErrInvalidConfig indicates a malformed configuration value.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Status returns the HTTP status code for err.
func Status(err error) int {
	switch {
	case err == nil:
		return fiber.StatusOK
	case errors.Is(err, ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrNotInGame):
		return fiber.StatusForbidden
	case errors.Is(err, ErrGameFull),
		errors.Is(err, ErrDuplicateGame),
		errors.Is(err, ErrAlreadyQueued),
		errors.Is(err, ErrDuplicateConnection),
		errors.Is(err, ErrGameOver),
		errors.Is(err, ErrNotYourTurn):
		return fiber.StatusConflict
	case errors.Is(err, ErrOutOfBounds),
		errors.Is(err, ErrEmptySquare),
		errors.Is(err, ErrWrongPiece),
		errors.Is(err, ErrIllegalMove):
		return fiber.StatusUnprocessableEntity
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
