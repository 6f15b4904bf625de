package engine

import (
	"bytes"
	"context"
	"errors"
	"sync"

	"github.com/fairgame-io/gametable/internal/common/clock"
	"github.com/fairgame-io/gametable/internal/common/uuid"
	"github.com/fairgame-io/gametable/internal/hash"
	"github.com/fairgame-io/gametable/internal/models"
	assetRepo "github.com/fairgame-io/gametable/internal/repositories/asset"
	gameRepo "github.com/fairgame-io/gametable/internal/repositories/game"
	participantRepo "github.com/fairgame-io/gametable/internal/repositories/participant"
	resultRepo "github.com/fairgame-io/gametable/internal/repositories/result"
)

// service implements the Service interface
type service struct {
	gameRepo        gameRepo.Repository
	participantRepo participantRepo.Repository
	resultRepo      resultRepo.Repository
	assetRepo       assetRepo.Repository
	hasher          hash.Hasher
	clock           clock.Clock
	uuidGenerator   uuid.UUID

	// mu serializes mutating transactions. Every mutating operation
	// reads committed state, evaluates all preconditions, then writes;
	// holding mu for the whole transaction keeps that sequence atomic
	// with respect to other transactions.
	mu sync.Mutex
}

// New creates a new game lifecycle engine
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}

	if cfg.ParticipantRepo == nil {
		return nil, ErrNilParticipantRepo
	}

	if cfg.ResultRepo == nil {
		return nil, ErrNilResultRepo
	}

	if cfg.AssetRepo == nil {
		return nil, ErrNilAssetRepo
	}

	if cfg.Hasher == nil {
		return nil, ErrNilHasher
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		gameRepo:        cfg.GameRepo,
		participantRepo: cfg.ParticipantRepo,
		resultRepo:      cfg.ResultRepo,
		assetRepo:       cfg.AssetRepo,
		hasher:          cfg.Hasher,
		clock:           cfg.Clock,
		uuidGenerator:   cfg.UUIDGenerator,
	}, nil
}

// CreateGame registers a new Pending game and allocates its identifier
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.CallerID == "" {
		return nil, ErrEmptyCaller
	}

	if len(input.GameType) > MaxGameTypeLen {
		return nil, ErrGameTypeTooLong
	}

	if input.MaxPlayers < MinPlayers {
		return nil, ErrInvalidMaxPlayers
	}

	if len(input.CommitHash) != models.CommitHashSize {
		return nil, ErrInvalidCommitHash
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Allocate the next game ID. IDs start at 1 and are never reused.
	gameID, err := s.gameRepo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	game := &models.Game{
		ID:             gameID,
		Creator:        input.CallerID,
		State:          models.GameStatePending,
		GameType:       input.GameType,
		EntryFee:       input.EntryFee,
		MaxPlayers:     input.MaxPlayers,
		CurrentPlayers: 0,
		PrizePool:      0,
		CommitHash:     input.CommitHash,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Game: game,
	})
	if err != nil {
		return nil, err
	}

	return &CreateGameOutput{
		GameID: gameID,
	}, nil
}

// JoinGame records the caller's participation in a Pending game and
// escrows their entry fee into the prize pool
func (s *service) JoinGame(ctx context.Context, input *JoinGameInput) (*JoinGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.CallerID == "" {
		return nil, ErrEmptyCaller
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	// Only Pending games accept players
	if game.State != models.GameStatePending {
		return nil, ErrInvalidState
	}

	if game.CurrentPlayers >= game.MaxPlayers {
		return nil, ErrGameFull
	}

	// A player may join a given game at most once
	_, err = s.participantRepo.GetParticipation(ctx, &participantRepo.GetParticipationInput{
		GameID:   input.GameID,
		PlayerID: input.CallerID,
	})
	if err == nil {
		return nil, ErrAlreadyJoined
	}
	if !errors.Is(err, participantRepo.ErrParticipationNotFound) {
		return nil, err
	}

	// Escrow the entry fee with checked addition; overflow rejects the
	// transaction rather than wrapping.
	newPool := game.PrizePool + game.EntryFee
	if newPool < game.PrizePool {
		return nil, ErrArithmeticOverflow
	}

	now := s.clock.Now()
	participation := &models.Participation{
		ID:         s.uuidGenerator.NewUUID(),
		GameID:     input.GameID,
		PlayerID:   input.CallerID,
		JoinedAt:   now,
		HasClaimed: false,
	}

	err = s.participantRepo.SaveParticipation(ctx, &participantRepo.SaveParticipationInput{
		Participation: participation,
	})
	if err != nil {
		return nil, err
	}

	game.CurrentPlayers++
	game.PrizePool = newPool
	game.UpdatedAt = now

	err = s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Game: game,
	})
	if err != nil {
		return nil, err
	}

	return &JoinGameOutput{
		Success: true,
	}, nil
}

// StartGame moves a Pending game to Active. Only the creator may start,
// and only with at least two joined players.
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.CallerID == "" {
		return nil, ErrEmptyCaller
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if game.Creator != input.CallerID {
		return nil, ErrUnauthorized
	}

	if game.State != models.GameStatePending {
		return nil, ErrInvalidState
	}

	if game.CurrentPlayers < MinPlayers {
		return nil, ErrInsufficientPlayers
	}

	game.State = models.GameStateActive
	game.UpdatedAt = s.clock.Now()

	err = s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Game: game,
	})
	if err != nil {
		return nil, err
	}

	return &StartGameOutput{
		Success: true,
	}, nil
}

// ResolveGame verifies the revealed seed against the commit hash,
// records the result and moves the game to Completed
func (s *service) ResolveGame(ctx context.Context, input *ResolveGameInput) (*ResolveGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.CallerID == "" {
		return nil, ErrEmptyCaller
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if game.Creator != input.CallerID {
		return nil, ErrUnauthorized
	}

	if game.State != models.GameStateActive {
		return nil, ErrInvalidState
	}

	// Commit-reveal check: the seed must be the preimage of the digest
	// the creator committed to at creation. A mismatch is rejected
	// before anything is written.
	if !bytes.Equal(s.hasher.Sum(input.Seed), game.CommitHash) {
		return nil, ErrCommitMismatch
	}

	now := s.clock.Now()
	result := &models.Result{
		GameID:      input.GameID,
		Winner:      input.Winner,
		RandomSeed:  input.Seed,
		OutcomeData: input.OutcomeData,
		ResolvedAt:  now,
	}

	err = s.resultRepo.SaveResult(ctx, &resultRepo.SaveResultInput{
		Result: result,
	})
	if err != nil {
		// An Active game cannot have a result yet; an existing record
		// means the ledgers disagree about this game's state
		if errors.Is(err, resultRepo.ErrResultExists) {
			return nil, ErrInvalidState
		}
		return nil, err
	}

	game.State = models.GameStateCompleted
	game.UpdatedAt = now

	err = s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Game: game,
	})
	if err != nil {
		return nil, err
	}

	return &ResolveGameOutput{
		Success: true,
	}, nil
}

// ClaimPrize gates the single authorized withdrawal for a resolved
// game. Preconditions are checked in a fixed order so each failure has
// a distinct reason; funds movement is the caller's responsibility.
func (s *service) ClaimPrize(ctx context.Context, input *ClaimPrizeInput) (*ClaimPrizeOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.CallerID == "" {
		return nil, ErrEmptyCaller
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	result, err := s.resultRepo.GetResult(ctx, &resultRepo.GetResultInput{
		GameID: input.GameID,
	})
	if err != nil {
		if errors.Is(err, resultRepo.ErrResultNotFound) {
			return nil, ErrNotResolved
		}
		return nil, err
	}

	participation, err := s.participantRepo.GetParticipation(ctx, &participantRepo.GetParticipationInput{
		GameID:   input.GameID,
		PlayerID: input.CallerID,
	})
	if err != nil {
		if errors.Is(err, participantRepo.ErrParticipationNotFound) {
			return nil, ErrNotParticipant
		}
		return nil, err
	}

	// A stored result implies the game is Completed
	if game.State != models.GameStateCompleted {
		return nil, ErrInvalidState
	}

	if result.Winner == nil {
		return nil, ErrNoWinner
	}

	if *result.Winner != input.CallerID {
		return nil, ErrNotWinner
	}

	if participation.HasClaimed {
		return nil, ErrAlreadyClaimed
	}

	participation.HasClaimed = true

	err = s.participantRepo.SaveParticipation(ctx, &participantRepo.SaveParticipationInput{
		Participation: participation,
	})
	if err != nil {
		return nil, err
	}

	return &ClaimPrizeOutput{
		Success: true,
		Prize:   game.PrizePool,
	}, nil
}

// MintGameAsset creates a collectible scoped to a game, owned by the
// game's creator. Assets are independent of the game's lifecycle state.
func (s *service) MintGameAsset(ctx context.Context, input *MintGameAssetInput) (*MintGameAssetOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.CallerID == "" {
		return nil, ErrEmptyCaller
	}

	if len(input.MetadataURL) > MaxMetadataURLLen {
		return nil, ErrMetadataURLTooLong
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if game.Creator != input.CallerID {
		return nil, ErrUnauthorized
	}

	// (game ID, asset ID) must be unique
	_, err = s.assetRepo.GetAsset(ctx, &assetRepo.GetAssetInput{
		GameID:  input.GameID,
		AssetID: input.AssetID,
	})
	if err == nil {
		return nil, ErrDuplicateAssetID
	}
	if !errors.Is(err, assetRepo.ErrAssetNotFound) {
		return nil, err
	}

	asset := &models.Asset{
		ID:          s.uuidGenerator.NewUUID(),
		GameID:      input.GameID,
		AssetID:     input.AssetID,
		Owner:       game.Creator,
		TokenID:     input.TokenID,
		MetadataURL: input.MetadataURL,
		MintedAt:    s.clock.Now(),
	}

	err = s.assetRepo.SaveAsset(ctx, &assetRepo.SaveAssetInput{
		Asset: asset,
	})
	if err != nil {
		return nil, err
	}

	return &MintGameAssetOutput{
		Success: true,
	}, nil
}

// TransferGameAsset moves exclusive ownership of an asset to a
// recipient. Only the current owner may transfer.
func (s *service) TransferGameAsset(ctx context.Context, input *TransferGameAssetInput) (*TransferGameAssetOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.CallerID == "" {
		return nil, ErrEmptyCaller
	}

	if input.RecipientID == "" {
		return nil, ErrEmptyRecipient
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	asset, err := s.assetRepo.GetAsset(ctx, &assetRepo.GetAssetInput{
		GameID:  input.GameID,
		AssetID: input.AssetID,
	})
	if err != nil {
		if errors.Is(err, assetRepo.ErrAssetNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, err
	}

	if asset.Owner != input.CallerID {
		return nil, ErrNotAssetOwner
	}

	asset.Owner = input.RecipientID

	err = s.assetRepo.SaveAsset(ctx, &assetRepo.SaveAssetInput{
		Asset: asset,
	})
	if err != nil {
		return nil, err
	}

	return &TransferGameAssetOutput{
		Success: true,
	}, nil
}

// GetGameInfo returns the stored game record. Absence is a nil record,
// not an error.
func (s *service) GetGameInfo(ctx context.Context, input *GetGameInfoInput) (*GetGameInfoOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{
		GameID: input.GameID,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return &GetGameInfoOutput{}, nil
		}
		return nil, err
	}

	return &GetGameInfoOutput{
		Game: game,
	}, nil
}

// GetGameResult returns the stored result record, nil when the game has
// not been resolved
func (s *service) GetGameResult(ctx context.Context, input *GetGameResultInput) (*GetGameResultOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	result, err := s.resultRepo.GetResult(ctx, &resultRepo.GetResultInput{
		GameID: input.GameID,
	})
	if err != nil {
		if errors.Is(err, resultRepo.ErrResultNotFound) {
			return &GetGameResultOutput{}, nil
		}
		return nil, err
	}

	return &GetGameResultOutput{
		Result: result,
	}, nil
}

// GetGameAsset returns the stored asset record, nil when absent
func (s *service) GetGameAsset(ctx context.Context, input *GetGameAssetInput) (*GetGameAssetOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	asset, err := s.assetRepo.GetAsset(ctx, &assetRepo.GetAssetInput{
		GameID:  input.GameID,
		AssetID: input.AssetID,
	})
	if err != nil {
		if errors.Is(err, assetRepo.ErrAssetNotFound) {
			return &GetGameAssetOutput{}, nil
		}
		return nil, err
	}

	return &GetGameAssetOutput{
		Asset: asset,
	}, nil
}

// GetPlayerStatus returns the stored participation record, nil when the
// player never joined
func (s *service) GetPlayerStatus(ctx context.Context, input *GetPlayerStatusInput) (*GetPlayerStatusOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	participation, err := s.participantRepo.GetParticipation(ctx, &participantRepo.GetParticipationInput{
		GameID:   input.GameID,
		PlayerID: input.PlayerID,
	})
	if err != nil {
		if errors.Is(err, participantRepo.ErrParticipationNotFound) {
			return &GetPlayerStatusOutput{}, nil
		}
		return nil, err
	}

	return &GetPlayerStatusOutput{
		Participation: participation,
	}, nil
}

// getGame loads a game and maps repository absence to the engine's
// NotFound error
func (s *service) getGame(ctx context.Context, gameID uint64) (*models.Game, error) {
	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{
		GameID: gameID,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	return game, nil
}
