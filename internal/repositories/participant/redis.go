package participant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/fairgame-io/gametable/internal/models"
)

// Key prefix for Redis. Records are keyed by (game ID, player ID).
const participationKeyPrefix = "participation:"

// ErrParticipationNotFound is returned when a participation record is not found
var ErrParticipationNotFound = errors.New("participation not found")

// Config holds configuration for the Redis participant repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed participant repository
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

func participationKey(gameID uint64, playerID string) string {
	return fmt.Sprintf("%s%d:%s", participationKeyPrefix, gameID, playerID)
}

// SaveParticipation persists a participation record to Redis
func (r *redisRepository) SaveParticipation(ctx context.Context, input *SaveParticipationInput) error {
	if input == nil || input.Participation == nil {
		return errors.New("input and participation cannot be nil")
	}

	// Marshal the participation to JSON
	participationJSON, err := json.Marshal(input.Participation)
	if err != nil {
		return fmt.Errorf("failed to marshal participation: %w", err)
	}

	key := participationKey(input.Participation.GameID, input.Participation.PlayerID)
	if err := r.client.Set(ctx, key, participationJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save participation: %w", err)
	}

	return nil
}

// GetParticipation retrieves a participation record from Redis
func (r *redisRepository) GetParticipation(ctx context.Context, input *GetParticipationInput) (*models.Participation, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	participationJSON, err := r.client.Get(ctx, participationKey(input.GameID, input.PlayerID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrParticipationNotFound
		}
		return nil, fmt.Errorf("failed to get participation: %w", err)
	}

	var participation models.Participation
	if err := json.Unmarshal([]byte(participationJSON), &participation); err != nil {
		return nil, fmt.Errorf("failed to unmarshal participation: %w", err)
	}

	return &participation, nil
}
