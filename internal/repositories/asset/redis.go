package asset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/fairgame-io/gametable/internal/models"
)

// Key prefix for Redis. Assets are keyed by (game ID, asset ID).
const assetKeyPrefix = "asset:"

// ErrAssetNotFound is returned when an asset is not found
var ErrAssetNotFound = errors.New("asset not found")

// Config holds configuration for the Redis asset repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed asset repository
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

func assetKey(gameID, assetID uint64) string {
	return fmt.Sprintf("%s%d:%d", assetKeyPrefix, gameID, assetID)
}

// SaveAsset persists an asset record to Redis
func (r *redisRepository) SaveAsset(ctx context.Context, input *SaveAssetInput) error {
	if input == nil || input.Asset == nil {
		return errors.New("input and asset cannot be nil")
	}

	assetJSON, err := json.Marshal(input.Asset)
	if err != nil {
		return fmt.Errorf("failed to marshal asset: %w", err)
	}

	key := assetKey(input.Asset.GameID, input.Asset.AssetID)
	if err := r.client.Set(ctx, key, assetJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save asset: %w", err)
	}

	return nil
}

// GetAsset retrieves an asset record from Redis
func (r *redisRepository) GetAsset(ctx context.Context, input *GetAssetInput) (*models.Asset, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	assetJSON, err := r.client.Get(ctx, assetKey(input.GameID, input.AssetID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrAssetNotFound
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}

	var asset models.Asset
	if err := json.Unmarshal([]byte(assetJSON), &asset); err != nil {
		return nil, fmt.Errorf("failed to unmarshal asset: %w", err)
	}

	return &asset, nil
}
