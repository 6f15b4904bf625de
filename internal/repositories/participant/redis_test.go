package participant

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/fairgame-io/gametable/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetParticipation() {
	participation := &models.Participation{
		ID:         "test-participation-id",
		GameID:     1,
		PlayerID:   "test-player-id",
		JoinedAt:   s.testNow,
		HasClaimed: false,
	}

	err := s.repo.SaveParticipation(context.Background(), &SaveParticipationInput{
		Participation: participation,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetParticipation(context.Background(), &GetParticipationInput{
		GameID:   1,
		PlayerID: "test-player-id",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("test-participation-id", retrieved.ID)
	s.Equal(uint64(1), retrieved.GameID)
	s.Equal("test-player-id", retrieved.PlayerID)
	s.False(retrieved.HasClaimed)
	s.Equal(s.testNow.Unix(), retrieved.JoinedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestSaveParticipationMarksClaim() {
	participation := &models.Participation{
		ID:       "test-participation-id",
		GameID:   1,
		PlayerID: "test-player-id",
		JoinedAt: s.testNow,
	}

	err := s.repo.SaveParticipation(context.Background(), &SaveParticipationInput{
		Participation: participation,
	})
	s.Require().NoError(err)

	// Flip the claim flag and save again
	participation.HasClaimed = true
	err = s.repo.SaveParticipation(context.Background(), &SaveParticipationInput{
		Participation: participation,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetParticipation(context.Background(), &GetParticipationInput{
		GameID:   1,
		PlayerID: "test-player-id",
	})
	s.Require().NoError(err)
	s.True(retrieved.HasClaimed)
}

func (s *RedisRepositoryTestSuite) TestGetParticipationNotFound() {
	_, err := s.repo.GetParticipation(context.Background(), &GetParticipationInput{
		GameID:   1,
		PlayerID: "unknown-player",
	})
	s.Require().Error(err)
	s.Equal(ErrParticipationNotFound, err)
}

func (s *RedisRepositoryTestSuite) TestParticipationsAreScopedByGame() {
	participation := &models.Participation{
		ID:       "test-participation-id",
		GameID:   1,
		PlayerID: "test-player-id",
		JoinedAt: s.testNow,
	}

	err := s.repo.SaveParticipation(context.Background(), &SaveParticipationInput{
		Participation: participation,
	})
	s.Require().NoError(err)

	// Same player, different game
	_, err = s.repo.GetParticipation(context.Background(), &GetParticipationInput{
		GameID:   2,
		PlayerID: "test-player-id",
	})
	s.Require().Error(err)
	s.Equal(ErrParticipationNotFound, err)
}
