package engine

import (
	"github.com/fairgame-io/gametable/internal/common/clock"
	"github.com/fairgame-io/gametable/internal/common/uuid"
	"github.com/fairgame-io/gametable/internal/hash"
	"github.com/fairgame-io/gametable/internal/models"
	assetRepo "github.com/fairgame-io/gametable/internal/repositories/asset"
	gameRepo "github.com/fairgame-io/gametable/internal/repositories/game"
	participantRepo "github.com/fairgame-io/gametable/internal/repositories/participant"
	resultRepo "github.com/fairgame-io/gametable/internal/repositories/result"
)

const (
	// MaxGameTypeLen is the maximum length of a game type label
	MaxGameTypeLen = 32

	// MaxMetadataURLLen is the maximum length of an asset metadata URL
	MaxMetadataURLLen = 256

	// MinPlayers is the smallest player cap a game may be created with,
	// and the minimum number of joined players required to start
	MinPlayers = 2
)

// Config holds the dependencies of the engine
type Config struct {
	// Repository dependencies
	GameRepo        gameRepo.Repository
	ParticipantRepo participantRepo.Repository
	ResultRepo      resultRepo.Repository
	AssetRepo       assetRepo.Repository

	// Collaborator dependencies
	Hasher        hash.Hasher
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// CreateGameInput contains parameters for creating a new game
type CreateGameInput struct {
	// CallerID is the principal creating the game; they become the
	// game's creator
	CallerID string

	// GameType is an opaque label for the kind of contest
	GameType string

	// EntryFee is the stake each joining player escrows
	EntryFee uint64

	// MaxPlayers is the player cap, at least 2
	MaxPlayers int

	// CommitHash is the 32-byte digest of the secret seed, fixed before
	// any player joins
	CommitHash []byte
}

// CreateGameOutput contains the result of creating a new game
type CreateGameOutput struct {
	// GameID is the identifier allocated to the new game
	GameID uint64
}

// JoinGameInput contains parameters for joining a game
type JoinGameInput struct {
	// CallerID is the principal joining the game
	CallerID string

	// GameID is the game to join
	GameID uint64
}

// JoinGameOutput contains the result of joining a game
type JoinGameOutput struct {
	// Success indicates the caller joined and their fee was escrowed
	Success bool
}

// StartGameInput contains parameters for starting a game
type StartGameInput struct {
	// CallerID is the principal requesting the start; must be the creator
	CallerID string

	// GameID is the game to start
	GameID uint64
}

// StartGameOutput contains the result of starting a game
type StartGameOutput struct {
	Success bool
}

// ResolveGameInput contains parameters for resolving a game
type ResolveGameInput struct {
	// CallerID is the principal resolving the game; must be the creator
	CallerID string

	// GameID is the game to resolve
	GameID uint64

	// Seed is the revealed preimage of the game's commit hash
	Seed []byte

	// OutcomeData is an opaque payload describing the outcome
	OutcomeData string

	// Winner is the declared winner, or nil for a draw or void outcome
	Winner *string
}

// ResolveGameOutput contains the result of resolving a game
type ResolveGameOutput struct {
	Success bool
}

// ClaimPrizeInput contains parameters for claiming a prize
type ClaimPrizeInput struct {
	// CallerID is the principal claiming; must be the declared winner
	CallerID string

	// GameID is the game to claim the prize for
	GameID uint64
}

// ClaimPrizeOutput contains the result of claiming a prize
type ClaimPrizeOutput struct {
	Success bool

	// Prize is the pool amount owed to the winner. The engine does not
	// move funds; the caller executes the transfer with this amount.
	Prize uint64
}

// MintGameAssetInput contains parameters for minting an asset
type MintGameAssetInput struct {
	// CallerID is the principal minting; must be the game creator
	CallerID string

	// GameID is the game the asset is scoped to
	GameID uint64

	// AssetID is the asset's identifier within the game
	AssetID uint64

	// TokenID is an opaque external token reference
	TokenID uint64

	// MetadataURL points at the asset's metadata
	MetadataURL string
}

// MintGameAssetOutput contains the result of minting an asset
type MintGameAssetOutput struct {
	Success bool
}

// TransferGameAssetInput contains parameters for transferring an asset
type TransferGameAssetInput struct {
	// CallerID is the principal transferring; must be the current owner
	CallerID string

	// GameID is the game the asset is scoped to
	GameID uint64

	// AssetID is the asset's identifier within the game
	AssetID uint64

	// RecipientID is the principal receiving ownership
	RecipientID string
}

// TransferGameAssetOutput contains the result of transferring an asset
type TransferGameAssetOutput struct {
	Success bool
}

// GetGameInfoInput identifies the game to look up
type GetGameInfoInput struct {
	GameID uint64
}

// GetGameInfoOutput carries the stored game, nil when absent
type GetGameInfoOutput struct {
	Game *models.Game
}

// GetGameResultInput identifies the game whose result to look up
type GetGameResultInput struct {
	GameID uint64
}

// GetGameResultOutput carries the stored result, nil when absent
type GetGameResultOutput struct {
	Result *models.Result
}

// GetGameAssetInput identifies the asset to look up
type GetGameAssetInput struct {
	GameID  uint64
	AssetID uint64
}

// GetGameAssetOutput carries the stored asset, nil when absent
type GetGameAssetOutput struct {
	Asset *models.Asset
}

// GetPlayerStatusInput identifies the participation record to look up
type GetPlayerStatusInput struct {
	GameID   uint64
	PlayerID string
}

// GetPlayerStatusOutput carries the stored participation, nil when absent
type GetPlayerStatusOutput struct {
	Participation *models.Participation
}
