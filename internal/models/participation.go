package models

import (
	"time"
)

// Participation represents a player's membership in a specific game
// and whether they have withdrawn winnings. A player may join a given
// game at most once.
type Participation struct {
	// ID is a unique identifier for this participation record
	ID string

	// GameID is the ID of the game the player joined
	GameID uint64

	// PlayerID is the principal of the player
	PlayerID string

	// JoinedAt is when the player joined the game
	JoinedAt time.Time

	// HasClaimed indicates whether the player has claimed the prize.
	// Moves from false to true exactly once.
	HasClaimed bool
}
