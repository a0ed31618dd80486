package service

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"safequeue-viz/internal/logger"
	"safequeue-viz/internal/queue"
	"safequeue-viz/internal/storage"
	"safequeue-viz/utils"
)

// ErrSafeNotWatched is returned for a safe that was never polled.
var ErrSafeNotWatched = errors.New("safe is not being watched")

// QueueService serves the stored queue views and badge counts to the
// API layer.
type QueueService struct {
	store  *storage.SafeStorage
	logger logger.Logger
}

func NewQueueService(r *redis.Client, l logger.Logger) *QueueService {
	return &QueueService{
		store:  storage.NewSafeStorage(r, l),
		logger: l,
	}
}

// GetQueue returns the latest grouped queue view of a safe.
func (qs *QueueService) GetQueue(ctx context.Context, chainID, safeAddress string) (*queue.QueueView, error) {
	view, err := qs.store.QueueView(ctx, chainID, utils.ChecksumAddress(safeAddress))
	if errors.Is(err, redis.Nil) {
		return nil, ErrSafeNotWatched
	}
	if err != nil {
		qs.logger.Error("error reading queue view", logger.Fields{
			"chainId": chainID,
			"safe":    safeAddress,
			"error":   err.Error(),
		})
		return nil, err
	}

	return view, nil
}

// GetPendingActions returns the latest badge counts of a safe.
func (qs *QueueService) GetPendingActions(ctx context.Context, chainID, safeAddress string) (*queue.PendingActions, error) {
	actions, err := qs.store.PendingActions(ctx, chainID, utils.ChecksumAddress(safeAddress))
	if errors.Is(err, redis.Nil) {
		return nil, ErrSafeNotWatched
	}
	if err != nil {
		qs.logger.Error("error reading pending actions", logger.Fields{
			"chainId": chainID,
			"safe":    safeAddress,
			"error":   err.Error(),
		})
		return nil, err
	}

	return actions, nil
}

// GetWatchedSafes lists every chainId:address pair the poller has
// written a view for.
func (qs *QueueService) GetWatchedSafes(ctx context.Context) ([]string, error) {
	return qs.store.WatchedSafes(ctx)
}
