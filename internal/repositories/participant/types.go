package participant

import "github.com/fairgame-io/gametable/internal/models"

type SaveParticipationInput struct {
	Participation *models.Participation
}

type GetParticipationInput struct {
	GameID   uint64
	PlayerID string
}
