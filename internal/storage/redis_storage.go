package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"safequeue-viz/internal/logger"
	"safequeue-viz/internal/model"
	"safequeue-viz/internal/queue"
	"safequeue-viz/utils"
)

// Views older than this are considered stale and expire on their own
// if polling stops.
const viewTTL = 24 * time.Hour

// SafeStorage handles the Redis operations for per-safe queue state.
// Everything is keyed by (chainID, safe address), written whole on
// every poll tick; the last write wins when ticks race.
type SafeStorage struct {
	rdb    *redis.Client
	logger logger.Logger
}

func NewSafeStorage(rdb *redis.Client, l logger.Logger) *SafeStorage {
	return &SafeStorage{rdb: rdb, logger: l}
}

// StoreQueueView stores the latest grouped queue view for a safe and
// registers the safe in the watched set.
func (s *SafeStorage) StoreQueueView(ctx context.Context, view *queue.QueueView) error {
	data, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("error marshaling queue view: %w", err)
	}

	key := utils.RedisQueueViewKey(view.ChainID, view.SafeAddress)

	pipe := s.rdb.Pipeline()
	pipe.Set(ctx, key, data, viewTTL)
	pipe.SAdd(ctx, utils.RedisWatchedSafesKey(), fmt.Sprintf("%s:%s", view.ChainID, view.SafeAddress))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("error storing queue view under %s: %w", key, err)
	}

	return nil
}

// QueueView reads a safe's latest grouped queue view. A safe that was
// never polled yields redis.Nil.
func (s *SafeStorage) QueueView(ctx context.Context, chainID, safeAddress string) (*queue.QueueView, error) {
	key := utils.RedisQueueViewKey(chainID, safeAddress)

	data, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		return nil, err
	}

	var view queue.QueueView
	if err := json.Unmarshal([]byte(data), &view); err != nil {
		return nil, fmt.Errorf("error unmarshaling queue view from %s: %w", key, err)
	}

	return &view, nil
}

// StorePendingActions stores the badge counts for a safe.
func (s *SafeStorage) StorePendingActions(ctx context.Context, chainID, safeAddress string, actions queue.PendingActions) error {
	data, err := json.Marshal(actions)
	if err != nil {
		return fmt.Errorf("error marshaling pending actions: %w", err)
	}

	key := utils.RedisPendingKey(chainID, safeAddress)
	if err := s.rdb.Set(ctx, key, data, viewTTL).Err(); err != nil {
		return fmt.Errorf("error storing pending actions under %s: %w", key, err)
	}

	return nil
}

// PendingActions reads a safe's badge counts.
func (s *SafeStorage) PendingActions(ctx context.Context, chainID, safeAddress string) (*queue.PendingActions, error) {
	key := utils.RedisPendingKey(chainID, safeAddress)

	data, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		return nil, err
	}

	var actions queue.PendingActions
	if err := json.Unmarshal([]byte(data), &actions); err != nil {
		return nil, fmt.Errorf("error unmarshaling pending actions from %s: %w", key, err)
	}

	return &actions, nil
}

// StoreSafeInfo caches a safe's on-chain record between polls.
func (s *SafeStorage) StoreSafeInfo(ctx context.Context, chainID string, info *model.SafeInfo) error {
	data, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("error marshaling safe info: %w", err)
	}

	key := utils.RedisSafeInfoKey(chainID, utils.ChecksumAddress(info.Address.Value))
	if err := s.rdb.Set(ctx, key, data, viewTTL).Err(); err != nil {
		return fmt.Errorf("error storing safe info under %s: %w", key, err)
	}

	return nil
}

// SafeInfo reads a safe's cached on-chain record.
func (s *SafeStorage) SafeInfo(ctx context.Context, chainID, safeAddress string) (*model.SafeInfo, error) {
	key := utils.RedisSafeInfoKey(chainID, safeAddress)

	data, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		return nil, err
	}

	var info model.SafeInfo
	if err := json.Unmarshal([]byte(data), &info); err != nil {
		return nil, fmt.Errorf("error unmarshaling safe info from %s: %w", key, err)
	}

	return &info, nil
}

// WatchedSafes lists the chainId:address pairs that have ever been
// polled.
func (s *SafeStorage) WatchedSafes(ctx context.Context) ([]string, error) {
	members, err := s.rdb.SMembers(ctx, utils.RedisWatchedSafesKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("error reading watched safes: %w", err)
	}
	return members, nil
}
