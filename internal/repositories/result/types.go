package result

import "github.com/fairgame-io/gametable/internal/models"

type SaveResultInput struct {
	Result *models.Result
}

type GetResultInput struct {
	GameID uint64
}
