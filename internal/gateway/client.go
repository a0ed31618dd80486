// Package gateway is a thin client for the Safe Client Gateway REST
// API. It only covers the endpoints the queue view needs.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"safequeue-viz/internal/model"
)

// Client talks to one Safe Client Gateway deployment.
type Client struct {
	baseURL     string
	authHeaders map[string]string
	httpClient  *http.Client
}

func NewClient(baseURL string, authHeaders map[string]string) *Client {
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		authHeaders: authHeaders,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// QueuedTransactions fetches one page of a safe's transaction queue.
// pageURL is the opaque cursor from a previous page's Next field; pass
// "" for the first page.
func (c *Client) QueuedTransactions(ctx context.Context, chainID string, safe common.Address, pageURL string) (*model.TransactionListPage, error) {
	url := pageURL
	if url == "" {
		url = fmt.Sprintf("%s/v1/chains/%s/safes/%s/transactions/queued", c.baseURL, chainID, safe.Hex())
	}

	var page model.TransactionListPage
	if err := c.getJSON(ctx, url, &page); err != nil {
		return nil, fmt.Errorf("failed to fetch queued transactions: %w", err)
	}

	return &page, nil
}

// QueuedTransactionsAll follows the queue's page cursors, concatenating
// results, until the queue is exhausted or pageLimit pages were read.
// The returned page keeps the last Next cursor so callers can tell a
// truncated read from a complete one.
func (c *Client) QueuedTransactionsAll(ctx context.Context, chainID string, safe common.Address, pageLimit int) (*model.TransactionListPage, error) {
	merged := &model.TransactionListPage{}
	pageURL := ""

	for fetched := 0; pageLimit <= 0 || fetched < pageLimit; fetched++ {
		page, err := c.QueuedTransactions(ctx, chainID, safe, pageURL)
		if err != nil {
			return nil, err
		}

		merged.Results = append(merged.Results, page.Results...)
		merged.Next = page.Next

		if page.Next == "" {
			break
		}
		pageURL = page.Next
	}

	return merged, nil
}

// SafeInfo fetches the safe's on-chain record (owners, threshold).
func (c *Client) SafeInfo(ctx context.Context, chainID string, safe common.Address) (*model.SafeInfo, error) {
	url := fmt.Sprintf("%s/v1/chains/%s/safes/%s", c.baseURL, chainID, safe.Hex())

	var info model.SafeInfo
	if err := c.getJSON(ctx, url, &info); err != nil {
		return nil, fmt.Errorf("failed to fetch safe info: %w", err)
	}

	return &info, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	for k, v := range c.authHeaders {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
