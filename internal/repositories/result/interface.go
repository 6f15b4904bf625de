package result

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/fairgame-io/gametable/internal/repositories/result Repository

import (
	"context"

	"github.com/fairgame-io/gametable/internal/models"
)

// Repository defines the interface for the result store. A result is
// written exactly once per game and never updated.
type Repository interface {
	// SaveResult persists a result record
	SaveResult(ctx context.Context, input *SaveResultInput) error

	// GetResult retrieves a result record by game ID
	GetResult(ctx context.Context, input *GetResultInput) (*models.Result, error)
}
