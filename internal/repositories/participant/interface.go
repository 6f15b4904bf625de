package participant

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/fairgame-io/gametable/internal/repositories/participant Repository

import (
	"context"

	"github.com/fairgame-io/gametable/internal/models"
)

// Repository defines the interface for the participant ledger
type Repository interface {
	// SaveParticipation persists a participation record
	SaveParticipation(ctx context.Context, input *SaveParticipationInput) error

	// GetParticipation retrieves a participation record by game ID and player ID
	GetParticipation(ctx context.Context, input *GetParticipationInput) (*models.Participation, error)
}
