package asset

import "github.com/fairgame-io/gametable/internal/models"

type SaveAssetInput struct {
	Asset *models.Asset
}

type GetAssetInput struct {
	GameID  uint64
	AssetID uint64
}
