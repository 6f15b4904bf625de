package asset

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/fairgame-io/gametable/internal/repositories/asset Repository

import (
	"context"

	"github.com/fairgame-io/gametable/internal/models"
)

// Repository defines the interface for the asset registry
type Repository interface {
	// SaveAsset persists an asset record
	SaveAsset(ctx context.Context, input *SaveAssetInput) error

	// GetAsset retrieves an asset by game ID and asset ID
	GetAsset(ctx context.Context, input *GetAssetInput) (*models.Asset, error)
}
