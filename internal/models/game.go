package models

import (
	"time"
)

// GameState represents the lifecycle state of a game
type GameState string

const (
	// GameStatePending indicates a game is accepting players
	GameStatePending GameState = "pending"

	// GameStateActive indicates a game is in progress
	GameStateActive GameState = "active"

	// GameStateCompleted indicates a game has been resolved
	GameStateCompleted GameState = "completed"
)

// CommitHashSize is the required length of a commit digest in bytes
const CommitHashSize = 32

// Game represents one wagered contest with an entry fee, player cap,
// and lifecycle state
type Game struct {
	// ID is the monotonically increasing identifier assigned at creation
	ID uint64

	// Creator is the principal that created the game
	Creator string

	// State is the current lifecycle state of the game
	State GameState

	// GameType is an opaque label describing the kind of contest
	GameType string

	// EntryFee is the stake each player escrows on join, in fixed-point
	// currency units
	EntryFee uint64

	// MaxPlayers is the player cap, at least 2
	MaxPlayers int

	// CurrentPlayers is the number of players that have joined
	CurrentPlayers int

	// PrizePool is the accumulated entry fees, always
	// CurrentPlayers * EntryFee
	PrizePool uint64

	// CommitHash is the digest the creator committed to before the
	// outcome was known
	CommitHash []byte

	// CreatedAt is when the game was created
	CreatedAt time.Time

	// UpdatedAt is when the game was last updated
	UpdatedAt time.Time
}
