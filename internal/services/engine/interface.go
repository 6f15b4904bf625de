package engine

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/fairgame-io/gametable/internal/services/engine Service

// Service is the game lifecycle engine: the single entry point through
// which the game registry, participant ledger, result store and asset
// registry are mutated. Mutating operations run one at a time; a failed
// precondition leaves all four ledgers untouched.
type Service interface {
	// CreateGame registers a new game in the Pending state and returns
	// its identifier
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// JoinGame escrows the caller's entry fee and records their
	// participation in a Pending game
	JoinGame(ctx context.Context, input *JoinGameInput) (*JoinGameOutput, error)

	// StartGame moves a Pending game with enough players to Active
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// ResolveGame verifies the revealed seed against the game's commit
	// hash, records the result and moves the game to Completed
	ResolveGame(ctx context.Context, input *ResolveGameInput) (*ResolveGameOutput, error)

	// ClaimPrize gates the winner's single withdrawal and returns the
	// amount owed; moving funds is the caller's responsibility
	ClaimPrize(ctx context.Context, input *ClaimPrizeInput) (*ClaimPrizeOutput, error)

	// MintGameAsset creates a collectible owned by the game creator
	MintGameAsset(ctx context.Context, input *MintGameAssetInput) (*MintGameAssetOutput, error)

	// TransferGameAsset moves ownership of an asset to a recipient
	TransferGameAsset(ctx context.Context, input *TransferGameAssetInput) (*TransferGameAssetOutput, error)

	// GetGameInfo returns the game record, or nil if it does not exist
	GetGameInfo(ctx context.Context, input *GetGameInfoInput) (*GetGameInfoOutput, error)

	// GetGameResult returns the result record, or nil if the game has
	// not been resolved
	GetGameResult(ctx context.Context, input *GetGameResultInput) (*GetGameResultOutput, error)

	// GetGameAsset returns the asset record, or nil if it does not exist
	GetGameAsset(ctx context.Context, input *GetGameAssetInput) (*GetGameAssetOutput, error)

	// GetPlayerStatus returns the player's participation record, or nil
	// if they never joined
	GetPlayerStatus(ctx context.Context, input *GetPlayerStatusInput) (*GetPlayerStatusOutput, error)
}
