package engine

import (
	"context"
	"crypto/sha256"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/fairgame-io/gametable/internal/common/clock"
	"github.com/fairgame-io/gametable/internal/common/uuid"
	"github.com/fairgame-io/gametable/internal/hash"
	"github.com/fairgame-io/gametable/internal/models"
	assetRepo "github.com/fairgame-io/gametable/internal/repositories/asset"
	gameRepo "github.com/fairgame-io/gametable/internal/repositories/game"
	participantRepo "github.com/fairgame-io/gametable/internal/repositories/participant"
	resultRepo "github.com/fairgame-io/gametable/internal/repositories/result"
)

// LifecycleTestSuite drives the engine end to end against Redis-backed
// ledgers and the real SHA-256 hasher.
type LifecycleTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	engine Service
	ctx    context.Context

	creator string
	player1 string
	player2 string
	player3 string

	seed   []byte
	commit []byte
}

func (s *LifecycleTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	games, err := gameRepo.NewRedis(&gameRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	participants, err := participantRepo.NewRedis(&participantRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	results, err := resultRepo.NewRedis(&resultRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	assets, err := assetRepo.NewRedis(&assetRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	engine, err := New(&Config{
		GameRepo:        games,
		ParticipantRepo: participants,
		ResultRepo:      results,
		AssetRepo:       assets,
		Hasher:          hash.New(),
		Clock:           &clock.DefaultClock{},
		UUIDGenerator:   uuid.New(),
	})
	s.Require().NoError(err)
	s.engine = engine

	s.ctx = context.Background()
	s.creator = "deployer"
	s.player1 = "player-1"
	s.player2 = "player-2"
	s.player3 = "player-3"

	s.seed = []byte("the-secret-seed-fixed-in-advance")
	digest := sha256.Sum256(s.seed)
	s.commit = digest[:]
}

func (s *LifecycleTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestLifecycleTestSuite(t *testing.T) {
	suite.Run(t, new(LifecycleTestSuite))
}

func (s *LifecycleTestSuite) createGame() uint64 {
	output, err := s.engine.CreateGame(s.ctx, &CreateGameInput{
		CallerID:   s.creator,
		GameType:   "coin-flip",
		EntryFee:   10000000,
		MaxPlayers: 2,
		CommitHash: s.commit,
	})
	s.Require().NoError(err)
	return output.GameID
}

func (s *LifecycleTestSuite) joinBoth(gameID uint64) {
	for _, player := range []string{s.player1, s.player2} {
		_, err := s.engine.JoinGame(s.ctx, &JoinGameInput{CallerID: player, GameID: gameID})
		s.Require().NoError(err)
	}
}

func (s *LifecycleTestSuite) gameInfo(gameID uint64) *models.Game {
	output, err := s.engine.GetGameInfo(s.ctx, &GetGameInfoInput{GameID: gameID})
	s.Require().NoError(err)
	s.Require().NotNil(output.Game)
	return output.Game
}

func (s *LifecycleTestSuite) TestCreateGameAssignsFirstID() {
	gameID := s.createGame()
	s.Equal(uint64(1), gameID)

	game := s.gameInfo(gameID)
	s.Equal(s.creator, game.Creator)
	s.Equal(models.GameStatePending, game.State)
	s.Equal("coin-flip", game.GameType)
	s.Equal(uint64(10000000), game.EntryFee)
	s.Equal(0, game.CurrentPlayers)
	s.Equal(uint64(0), game.PrizePool)
	s.Equal(s.commit, game.CommitHash)
}

func (s *LifecycleTestSuite) TestGameIDsAreSequential() {
	s.Equal(uint64(1), s.createGame())
	s.Equal(uint64(2), s.createGame())
	s.Equal(uint64(3), s.createGame())
}

func (s *LifecycleTestSuite) TestPlayersJoinAndEscrowFees() {
	gameID := s.createGame()
	s.joinBoth(gameID)

	game := s.gameInfo(gameID)
	s.Equal(2, game.CurrentPlayers)
	s.Equal(uint64(20000000), game.PrizePool)

	// The pool always equals players times fee
	s.Equal(uint64(game.CurrentPlayers)*game.EntryFee, game.PrizePool)

	// A third player bounces off the cap
	_, err := s.engine.JoinGame(s.ctx, &JoinGameInput{CallerID: s.player3, GameID: gameID})
	s.Equal(ErrGameFull, err)

	// Joining twice is rejected and does not double-fund
	_, err = s.engine.JoinGame(s.ctx, &JoinGameInput{CallerID: s.player1, GameID: gameID})
	s.Equal(ErrAlreadyJoined, err)

	game = s.gameInfo(gameID)
	s.Equal(2, game.CurrentPlayers)
	s.Equal(uint64(20000000), game.PrizePool)
}

func (s *LifecycleTestSuite) TestStartGameRequiresCreatorAndPlayers() {
	gameID := s.createGame()

	// Too few players
	_, err := s.engine.StartGame(s.ctx, &StartGameInput{CallerID: s.creator, GameID: gameID})
	s.Equal(ErrInsufficientPlayers, err)

	s.joinBoth(gameID)

	// Only the creator may start
	_, err = s.engine.StartGame(s.ctx, &StartGameInput{CallerID: s.player1, GameID: gameID})
	s.Equal(ErrUnauthorized, err)
	s.Equal(models.GameStatePending, s.gameInfo(gameID).State)

	_, err = s.engine.StartGame(s.ctx, &StartGameInput{CallerID: s.creator, GameID: gameID})
	s.Require().NoError(err)
	s.Equal(models.GameStateActive, s.gameInfo(gameID).State)

	// A second start fails and the state does not regress
	_, err = s.engine.StartGame(s.ctx, &StartGameInput{CallerID: s.creator, GameID: gameID})
	s.Equal(ErrInvalidState, err)
	s.Equal(models.GameStateActive, s.gameInfo(gameID).State)
}

func (s *LifecycleTestSuite) TestResolveAndClaim() {
	gameID := s.createGame()
	s.joinBoth(gameID)
	_, err := s.engine.StartGame(s.ctx, &StartGameInput{CallerID: s.creator, GameID: gameID})
	s.Require().NoError(err)

	// A seed that does not hash to the commitment is rejected and
	// leaves everything untouched
	_, err = s.engine.ResolveGame(s.ctx, &ResolveGameInput{
		CallerID:    s.creator,
		GameID:      gameID,
		Seed:        []byte("a-forged-seed"),
		OutcomeData: "{}",
		Winner:      &s.player2,
	})
	s.Equal(ErrCommitMismatch, err)
	s.Equal(models.GameStateActive, s.gameInfo(gameID).State)

	resultOutput, err := s.engine.GetGameResult(s.ctx, &GetGameResultInput{GameID: gameID})
	s.Require().NoError(err)
	s.Nil(resultOutput.Result)

	// The true seed resolves the game
	outcome := `{"gameType":"coin-flip","face":"heads"}`
	_, err = s.engine.ResolveGame(s.ctx, &ResolveGameInput{
		CallerID:    s.creator,
		GameID:      gameID,
		Seed:        s.seed,
		OutcomeData: outcome,
		Winner:      &s.player1,
	})
	s.Require().NoError(err)
	s.Equal(models.GameStateCompleted, s.gameInfo(gameID).State)

	resultOutput, err = s.engine.GetGameResult(s.ctx, &GetGameResultInput{GameID: gameID})
	s.Require().NoError(err)
	s.Require().NotNil(resultOutput.Result)
	s.Require().NotNil(resultOutput.Result.Winner)
	s.Equal(s.player1, *resultOutput.Result.Winner)
	s.Equal(s.seed, resultOutput.Result.RandomSeed)
	s.Equal(outcome, resultOutput.Result.OutcomeData)

	// The winner claims exactly once
	claimOutput, err := s.engine.ClaimPrize(s.ctx, &ClaimPrizeInput{CallerID: s.player1, GameID: gameID})
	s.Require().NoError(err)
	s.True(claimOutput.Success)
	s.Equal(uint64(20000000), claimOutput.Prize)

	statusOutput, err := s.engine.GetPlayerStatus(s.ctx, &GetPlayerStatusInput{GameID: gameID, PlayerID: s.player1})
	s.Require().NoError(err)
	s.Require().NotNil(statusOutput.Participation)
	s.True(statusOutput.Participation.HasClaimed)

	// A retry fails, as does a claim by the loser
	_, err = s.engine.ClaimPrize(s.ctx, &ClaimPrizeInput{CallerID: s.player1, GameID: gameID})
	s.Equal(ErrAlreadyClaimed, err)

	_, err = s.engine.ClaimPrize(s.ctx, &ClaimPrizeInput{CallerID: s.player2, GameID: gameID})
	s.Equal(ErrNotWinner, err)
}

func (s *LifecycleTestSuite) TestResolveDrawBlocksClaims() {
	gameID := s.createGame()
	s.joinBoth(gameID)
	_, err := s.engine.StartGame(s.ctx, &StartGameInput{CallerID: s.creator, GameID: gameID})
	s.Require().NoError(err)

	_, err = s.engine.ResolveGame(s.ctx, &ResolveGameInput{
		CallerID:    s.creator,
		GameID:      gameID,
		Seed:        s.seed,
		OutcomeData: `{"draw":true}`,
		Winner:      nil,
	})
	s.Require().NoError(err)

	resultOutput, err := s.engine.GetGameResult(s.ctx, &GetGameResultInput{GameID: gameID})
	s.Require().NoError(err)
	s.Require().NotNil(resultOutput.Result)
	s.Nil(resultOutput.Result.Winner)

	// Nobody can claim a winnerless pot
	_, err = s.engine.ClaimPrize(s.ctx, &ClaimPrizeInput{CallerID: s.player1, GameID: gameID})
	s.Equal(ErrNoWinner, err)

	_, err = s.engine.ClaimPrize(s.ctx, &ClaimPrizeInput{CallerID: s.player2, GameID: gameID})
	s.Equal(ErrNoWinner, err)
}

func (s *LifecycleTestSuite) TestClaimBeforeResolution() {
	gameID := s.createGame()
	s.joinBoth(gameID)

	_, err := s.engine.ClaimPrize(s.ctx, &ClaimPrizeInput{CallerID: s.player1, GameID: gameID})
	s.Equal(ErrNotResolved, err)

	_, err = s.engine.ClaimPrize(s.ctx, &ClaimPrizeInput{CallerID: s.player1, GameID: 404})
	s.Equal(ErrGameNotFound, err)
}

func (s *LifecycleTestSuite) TestAssetMintAndTransfer() {
	gameID := s.createGame()

	_, err := s.engine.MintGameAsset(s.ctx, &MintGameAssetInput{
		CallerID:    s.creator,
		GameID:      gameID,
		AssetID:     101,
		TokenID:     1,
		MetadataURL: "ipfs://QmHash123",
	})
	s.Require().NoError(err)

	assetOutput, err := s.engine.GetGameAsset(s.ctx, &GetGameAssetInput{GameID: gameID, AssetID: 101})
	s.Require().NoError(err)
	s.Require().NotNil(assetOutput.Asset)
	s.Equal(s.creator, assetOutput.Asset.Owner)
	s.Equal(uint64(1), assetOutput.Asset.TokenID)
	s.Equal("ipfs://QmHash123", assetOutput.Asset.MetadataURL)

	// Re-minting the same asset ID is rejected
	_, err = s.engine.MintGameAsset(s.ctx, &MintGameAssetInput{
		CallerID: s.creator,
		GameID:   gameID,
		AssetID:  101,
	})
	s.Equal(ErrDuplicateAssetID, err)

	// Only the creator may mint
	_, err = s.engine.MintGameAsset(s.ctx, &MintGameAssetInput{
		CallerID: s.player1,
		GameID:   gameID,
		AssetID:  102,
	})
	s.Equal(ErrUnauthorized, err)

	// Ownership transfers to player1
	_, err = s.engine.TransferGameAsset(s.ctx, &TransferGameAssetInput{
		CallerID:    s.creator,
		GameID:      gameID,
		AssetID:     101,
		RecipientID: s.player1,
	})
	s.Require().NoError(err)

	assetOutput, err = s.engine.GetGameAsset(s.ctx, &GetGameAssetInput{GameID: gameID, AssetID: 101})
	s.Require().NoError(err)
	s.Equal(s.player1, assetOutput.Asset.Owner)

	// The previous owner can no longer transfer it
	_, err = s.engine.TransferGameAsset(s.ctx, &TransferGameAssetInput{
		CallerID:    s.creator,
		GameID:      gameID,
		AssetID:     101,
		RecipientID: s.player2,
	})
	s.Equal(ErrNotAssetOwner, err)
}

func (s *LifecycleTestSuite) TestReadProjectionsReturnNilForAbsent() {
	gameOutput, err := s.engine.GetGameInfo(s.ctx, &GetGameInfoInput{GameID: 404})
	s.Require().NoError(err)
	s.Nil(gameOutput.Game)

	resultOutput, err := s.engine.GetGameResult(s.ctx, &GetGameResultInput{GameID: 404})
	s.Require().NoError(err)
	s.Nil(resultOutput.Result)

	assetOutput, err := s.engine.GetGameAsset(s.ctx, &GetGameAssetInput{GameID: 404, AssetID: 1})
	s.Require().NoError(err)
	s.Nil(assetOutput.Asset)

	statusOutput, err := s.engine.GetPlayerStatus(s.ctx, &GetPlayerStatusInput{GameID: 404, PlayerID: "nobody"})
	s.Require().NoError(err)
	s.Nil(statusOutput.Participation)
}
