package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/fairgame-io/gametable/internal/repositories/game Repository

import (
	"context"

	"github.com/fairgame-io/gametable/internal/models"
)

// Repository defines the interface for the game registry
type Repository interface {
	// NextID allocates the next game identifier. IDs start at 1 and are
	// never reused.
	NextID(ctx context.Context) (uint64, error)

	// SaveGame persists a game
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error)
}
