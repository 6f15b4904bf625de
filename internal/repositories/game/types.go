package game

import "github.com/fairgame-io/gametable/internal/models"

type SaveGameInput struct {
	Game *models.Game
}

type GetGameInput struct {
	GameID uint64
}
