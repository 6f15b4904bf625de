package models

import (
	"time"
)

// Result records the outcome of a resolved game. At most one exists per
// game and it is immutable once written.
type Result struct {
	// GameID is the ID of the resolved game
	GameID uint64

	// Winner is the principal declared as winner, or nil for a draw or
	// void outcome
	Winner *string

	// RandomSeed is the revealed preimage of the game's commit hash
	RandomSeed []byte

	// OutcomeData is an opaque payload describing the game-specific
	// result, e.g. symbols or ranks
	OutcomeData string

	// ResolvedAt is when the game was resolved
	ResolvedAt time.Time
}
