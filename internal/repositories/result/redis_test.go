package result

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

func (s *RedisRepositoryTestSuite) TestSaveAndGetResult() {
	winner := "test-winner-id"
	result := &models.Result{
		GameID:      1,
		Winner:      &winner,
		RandomSeed:  []byte("test-seed"),
		OutcomeData: `{"symbols":["7","7","7"]}`,
		ResolvedAt:  s.testNow,
	}

	err := s.repo.SaveResult(context.Background(), &SaveResultInput{
		Result: result,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetResult(context.Background(), &GetResultInput{
		GameID: 1,
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal(uint64(1), retrieved.GameID)
	s.Require().NotNil(retrieved.Winner)
	s.Equal("test-winner-id", *retrieved.Winner)
	s.Equal([]byte("test-seed"), retrieved.RandomSeed)
	s.Equal(`{"symbols":["7","7","7"]}`, retrieved.OutcomeData)
	s.Equal(s.testNow.Unix(), retrieved.ResolvedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestSaveResultWithoutWinner() {
	// A draw produces a result with no winner
	result := &models.Result{
		GameID:      2,
		Winner:      nil,
		RandomSeed:  []byte("test-seed"),
		OutcomeData: `{"draw":true}`,
		ResolvedAt:  s.testNow,
	}

	err := s.repo.SaveResult(context.Background(), &SaveResultInput{
		Result: result,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetResult(context.Background(), &GetResultInput{
		GameID: 2,
	})
	s.Require().NoError(err)
	s.Nil(retrieved.Winner)
}

func (s *RedisRepositoryTestSuite) TestSaveResultIsWriteOnce() {
	result := &models.Result{
		GameID:      1,
		RandomSeed:  []byte("test-seed"),
		OutcomeData: "first",
		ResolvedAt:  s.testNow,
	}

	err := s.repo.SaveResult(context.Background(), &SaveResultInput{
		Result: result,
	})
	s.Require().NoError(err)

	// A second write for the same game must be rejected
	second := &models.Result{
		GameID:      1,
		RandomSeed:  []byte("other-seed"),
		OutcomeData: "second",
		ResolvedAt:  s.testNow,
	}

	err = s.repo.SaveResult(context.Background(), &SaveResultInput{
		Result: second,
	})
	s.Require().Error(err)
	s.Equal(ErrResultExists, err)

	// The original record is untouched
	retrieved, err := s.repo.GetResult(context.Background(), &GetResultInput{
		GameID: 1,
	})
	s.Require().NoError(err)
	s.Equal("first", retrieved.OutcomeData)
}

func (s *RedisRepositoryTestSuite) TestGetResultNotFound() {
	_, err := s.repo.GetResult(context.Background(), &GetResultInput{
		GameID: 42,
	})
	s.Require().Error(err)
	s.Equal(ErrResultNotFound, err)
}
