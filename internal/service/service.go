package service

import (
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"

	"safequeue-viz/config"
	"safequeue-viz/internal/logger"
)

// Service bundles the shared infrastructure handles.
type Service struct {
	Redis  *redis.Client
	Logger logger.Logger
}

func NewService(cfg *config.Config) (*Service, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return nil, fmt.Errorf("REDIS_URL environment variable is not set")
	}

	redisOptions, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("error parsing REDIS_URL: %w", err)
	}

	redisClient := redis.NewClient(redisOptions)

	level := logger.LogLevel(cfg.LogLevel)
	if level == "" {
		level = logger.InfoLogLevel
	}

	l := logger.New(&logger.Config{
		Level:       level,
		Development: os.Getenv("ENV") != "production",
		LogFile:     "./logs/safequeue.log",
		MaxSize:     100,
		MaxBackups:  3,
		MaxAge:      28,
		Compress:    true,
	})

	return &Service{
		Redis:  redisClient,
		Logger: l,
	}, nil
}
