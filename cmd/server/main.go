package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/fairgame-io/gametable/internal/common/clock"
	"github.com/fairgame-io/gametable/internal/common/uuid"
	"github.com/fairgame-io/gametable/internal/config"
	"github.com/fairgame-io/gametable/internal/handlers/rest"
	"github.com/fairgame-io/gametable/internal/hash"
	assetRepo "github.com/fairgame-io/gametable/internal/repositories/asset"
	gameRepo "github.com/fairgame-io/gametable/internal/repositories/game"
	participantRepo "github.com/fairgame-io/gametable/internal/repositories/participant"
	resultRepo "github.com/fairgame-io/gametable/internal/repositories/result"
	"github.com/fairgame-io/gametable/internal/services/engine"
)

func main() {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	games, err := gameRepo.NewRedis(&gameRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create game repository: %v", err)
	}

	participants, err := participantRepo.NewRedis(&participantRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create participant repository: %v", err)
	}

	results, err := resultRepo.NewRedis(&resultRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create result repository: %v", err)
	}

	assets, err := assetRepo.NewRedis(&assetRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create asset repository: %v", err)
	}

	// Initialize the lifecycle engine
	svc, err := engine.New(&engine.Config{
		GameRepo:        games,
		ParticipantRepo: participants,
		ResultRepo:      results,
		AssetRepo:       assets,
		Hasher:          hash.New(),
		Clock:           &clock.DefaultClock{},
		UUIDGenerator:   uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	// Initialize the REST handler
	handler, err := rest.New(&rest.Config{
		Engine: svc,
	})
	if err != nil {
		log.Fatalf("Failed to create REST handler: %v", err)
	}

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler.Routes(),
	}

	go func() {
		log.Printf("Listening on %s", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}

	log.Println("Server has been shut down")
}
