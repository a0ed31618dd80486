// Package transactions polls the gateway for every watched safe and
// keeps the stored queue views and badge counts fresh.
package transactions

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/redis/go-redis/v9"

	"safequeue-viz/config"
	"safequeue-viz/internal/api"
	"safequeue-viz/internal/gateway"
	"safequeue-viz/internal/logger"
	"safequeue-viz/internal/model"
	"safequeue-viz/internal/queue"
	"safequeue-viz/internal/service"
	"safequeue-viz/internal/storage"
	"safequeue-viz/utils"
)

// Poll starts one polling loop per watched safe. Loops stop when ctx
// is cancelled; wg joins them on shutdown.
func Poll(ctx context.Context, cfg *config.Config, srvc *service.Service, hub *api.Hub, wg *sync.WaitGroup) {
	client := gateway.NewClient(cfg.Gateway.BaseURL, cfg.Gateway.AuthHeaders)

	for _, safe := range cfg.Safes {
		wg.Add(1)
		go func(safe config.WatchedSafe) {
			defer wg.Done()
			pollSafe(ctx, safe, cfg, client, srvc, hub)
		}(safe)
	}
}

func pollSafe(ctx context.Context, safe config.WatchedSafe, cfg *config.Config, client *gateway.Client, srvc *service.Service, hub *api.Hub) {
	l := srvc.Logger.WithFields(logger.Fields{
		"chainId": safe.ChainID,
		"safe":    safe.Address,
	})

	interval, err := cfg.PollInterval()
	if err != nil {
		l.Error("error parsing polling interval, using 15s", logger.Fields{"error": err.Error()})
		interval = 15 * time.Second
	}
	timeout, err := cfg.PollTimeout()
	if err != nil {
		l.Error("error parsing polling timeout, using 10s", logger.Fields{"error": err.Error()})
		timeout = 10 * time.Second
	}

	store := storage.NewSafeStorage(srvc.Redis, l)
	addr := common.HexToAddress(safe.Address)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	l.Info("watching safe queue", logger.Fields{"interval": interval.String()})

	// First refresh happens immediately rather than one interval in.
	refresh(ctx, safe, addr, cfg, client, store, hub, l, timeout)

	for {
		select {
		case <-ctx.Done():
			l.Info("stopping safe queue poller")
			return
		case <-ticker.C:
			refresh(ctx, safe, addr, cfg, client, store, hub, l, timeout)
		}
	}
}

func refresh(
	ctx context.Context,
	safe config.WatchedSafe,
	addr common.Address,
	cfg *config.Config,
	client *gateway.Client,
	store *storage.SafeStorage,
	hub *api.Hub,
	l logger.Logger,
	timeout time.Duration,
) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	info := refreshSafeInfo(ctx, safe, addr, client, store, l)
	isOwner := safe.Signer != "" && info != nil && utils.ContainsAddress(info.Owners, safe.Signer)

	firstPage, err := client.QueuedTransactions(ctx, safe.ChainID, addr, "")
	if err != nil {
		l.Error("error fetching queued transactions", logger.Fields{"error": err.Error()})
		return
	}

	// Badge counts derive from the first page only; the page-size cap
	// depends on the first page's Next cursor.
	actions := queue.AggregatePendingActions(firstPage, safe.Signer, isOwner)

	merged, err := followPages(ctx, safe.ChainID, addr, client, firstPage, cfg.PageLimit)
	if err != nil {
		l.Error("error following queue pages, grouping partial queue", logger.Fields{"error": err.Error()})
		merged = firstPage
	}

	view := queue.BuildView(safe.ChainID, addr.Hex(), merged, l)

	if err := store.StoreQueueView(ctx, &view); err != nil {
		l.Error("error storing queue view", logger.Fields{"error": err.Error()})
	}
	if err := store.StorePendingActions(ctx, safe.ChainID, addr.Hex(), actions); err != nil {
		l.Error("error storing pending actions", logger.Fields{"error": err.Error()})
	}

	hub.Broadcast(&view)

	l.Debug("safe queue refreshed", logger.Fields{
		"amount":      view.Amount,
		"totalQueued": actions.TotalQueued,
	})
}

// followPages extends the first page with up to pageLimit-1 further
// pages of the queue.
func followPages(ctx context.Context, chainID string, addr common.Address, client *gateway.Client, first *model.TransactionListPage, pageLimit int) (*model.TransactionListPage, error) {
	merged := &model.TransactionListPage{
		Results: append([]model.TransactionListItem{}, first.Results...),
		Next:    first.Next,
	}

	for fetched := 1; merged.Next != "" && fetched < pageLimit; fetched++ {
		page, err := client.QueuedTransactions(ctx, chainID, addr, merged.Next)
		if err != nil {
			return nil, err
		}
		merged.Results = append(merged.Results, page.Results...)
		merged.Next = page.Next
	}

	return merged, nil
}

// refreshSafeInfo fetches the safe's owner set, falling back to the
// cached record when the gateway is unreachable.
func refreshSafeInfo(ctx context.Context, safe config.WatchedSafe, addr common.Address, client *gateway.Client, store *storage.SafeStorage, l logger.Logger) *model.SafeInfo {
	info, err := client.SafeInfo(ctx, safe.ChainID, addr)
	if err == nil {
		if storeErr := store.StoreSafeInfo(ctx, safe.ChainID, info); storeErr != nil {
			l.Warn("error caching safe info", logger.Fields{"error": storeErr.Error()})
		}
		return info
	}

	l.Warn("error fetching safe info, trying cache", logger.Fields{"error": err.Error()})

	cached, cacheErr := store.SafeInfo(ctx, safe.ChainID, addr.Hex())
	if cacheErr != nil {
		if !errors.Is(cacheErr, redis.Nil) {
			l.Error("error reading cached safe info", logger.Fields{"error": cacheErr.Error()})
		}
		return nil
	}

	return cached
}
