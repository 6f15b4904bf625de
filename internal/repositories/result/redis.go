package result

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/fairgame-io/gametable/internal/models"
)

// Key prefix for Redis
const resultKeyPrefix = "result:"

// ErrResultNotFound is returned when a result is not found
var ErrResultNotFound = errors.New("result not found")

// ErrResultExists is returned when a result already exists for the game
var ErrResultExists = errors.New("result already exists")

// Config holds configuration for the Redis result repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed result repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveResult persists a result record to Redis. Results are immutable:
// writing a second result for the same game fails with ErrResultExists.
func (r *redisRepository) SaveResult(ctx context.Context, input *SaveResultInput) error {
	if input == nil || input.Result == nil {
		return errors.New("input and result cannot be nil")
	}

	resultJSON, err := json.Marshal(input.Result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	resultKey := fmt.Sprintf("%s%d", resultKeyPrefix, input.Result.GameID)
	set, err := r.client.SetNX(ctx, resultKey, resultJSON, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}
	if !set {
		return ErrResultExists
	}

	return nil
}

// GetResult retrieves a result record by game ID from Redis
func (r *redisRepository) GetResult(ctx context.Context, input *GetResultInput) (*models.Result, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	resultKey := fmt.Sprintf("%s%d", resultKeyPrefix, input.GameID)
	resultJSON, err := r.client.Get(ctx, resultKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrResultNotFound
		}
		return nil, fmt.Errorf("failed to get result: %w", err)
	}

	var result models.Result
	if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result: %w", err)
	}

	return &result, nil
}
