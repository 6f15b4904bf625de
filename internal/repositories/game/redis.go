package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/fairgame-io/gametable/internal/models"
)

const (
	// Key prefixes for Redis
	gameKeyPrefix = "game:"
	lastGameIDKey = "last_game_id"
)

// ErrGameNotFound is returned when a game is not found
var ErrGameNotFound = errors.New("game not found")

// Config holds configuration for the Redis game repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed game repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
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

// NextID allocates the next game identifier by incrementing the
// last-game-id counter. The first allocated ID is 1.
func (r *redisRepository) NextID(ctx context.Context) (uint64, error) {
	id, err := r.client.Incr(ctx, lastGameIDKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to allocate game ID: %w", err)
	}

	return uint64(id), nil
}

// SaveGame persists a game to Redis
func (r *redisRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}

	// Marshal the game to JSON
	gameJSON, err := json.Marshal(input.Game)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	// Save the game. Games are never deleted, so no expiration.
	gameKey := fmt.Sprintf("%s%d", gameKeyPrefix, input.Game.ID)
	if err := r.client.Set(ctx, gameKey, gameJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

// GetGame retrieves a game by ID from Redis
func (r *redisRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	// Get the game from Redis
	gameKey := fmt.Sprintf("%s%d", gameKeyPrefix, input.GameID)
	gameJSON, err := r.client.Get(ctx, gameKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	// Unmarshal the game from JSON
	var game models.Game
	if err := json.Unmarshal([]byte(gameJSON), &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, nil
}
