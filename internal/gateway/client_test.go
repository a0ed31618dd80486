package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSafe = "0xA063Cb7CFd8E57c30c788A0572CBbf2129ae56B6"

func TestQueuedTransactions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, fmt.Sprintf("/v1/chains/1/safes/%s/transactions/queued", common.HexToAddress(testSafe).Hex()), r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"next": "",
			"results": [
				{"type": "LABEL", "label": "Next"},
				{"type": "CONFLICT_HEADER", "nonce": 7},
				{"type": "TRANSACTION", "conflictType": "End", "transaction": {
					"id": "multisig_0xsafe_0xhash",
					"timestamp": 1700000000000,
					"txStatus": "AWAITING_CONFIRMATIONS",
					"txInfo": {"type": "Transfer"},
					"executionInfo": {
						"type": "MULTISIG",
						"nonce": 7,
						"confirmationsRequired": 2,
						"confirmationsSubmitted": 1,
						"missingSigners": [{"value": "0x1111111111111111111111111111111111111111"}]
					}
				}}
			]
		}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, map[string]string{"X-Api-Key": "secret"})

	page, err := client.QueuedTransactions(context.Background(), "1", common.HexToAddress(testSafe), "")
	require.NoError(t, err)

	require.Len(t, page.Results, 3)
	assert.Equal(t, "", page.Next)

	tx := page.Results[2]
	require.NotNil(t, tx.Transaction)
	assert.Equal(t, int64(1700000000000), tx.Transaction.Timestamp)
	require.NotNil(t, tx.Transaction.ExecutionInfo)
	assert.Equal(t, uint64(7), tx.Transaction.ExecutionInfo.Nonce)
	require.Len(t, tx.Transaction.ExecutionInfo.MissingSigners, 1)
}

func TestQueuedTransactionsAllFollowsCursors(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/page2":
			fmt.Fprint(w, `{"results": [{"type": "LABEL", "label": "Queued"}]}`)
		default:
			fmt.Fprintf(w, `{"next": "%s/page2", "results": [{"type": "LABEL", "label": "Next"}]}`, server.URL)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	page, err := client.QueuedTransactionsAll(context.Background(), "1", common.HexToAddress(testSafe), 5)
	require.NoError(t, err)

	assert.Len(t, page.Results, 2)
	assert.Equal(t, "", page.Next)
}

func TestQueuedTransactionsAllHonorsPageLimit(t *testing.T) {
	var server *httptest.Server
	calls := 0
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"next": "%s/more", "results": [{"type": "LABEL", "label": "Next"}]}`, server.URL)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	page, err := client.QueuedTransactionsAll(context.Background(), "1", common.HexToAddress(testSafe), 3)
	require.NoError(t, err)

	assert.Equal(t, 3, calls)
	assert.Len(t, page.Results, 3)
	// the cursor survives so callers can tell the read was truncated
	assert.NotEmpty(t, page.Next)
}

func TestSafeInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, fmt.Sprintf("/v1/chains/1/safes/%s", common.HexToAddress(testSafe).Hex()), r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{
			"address": {"value": "%s"},
			"chainId": "1",
			"nonce": 12,
			"threshold": 2,
			"owners": [
				{"value": "0x1111111111111111111111111111111111111111"},
				{"value": "0x2222222222222222222222222222222222222222"}
			]
		}`, testSafe)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	info, err := client.SafeInfo(context.Background(), "1", common.HexToAddress(testSafe))
	require.NoError(t, err)

	assert.Equal(t, testSafe, info.Address.Value)
	assert.Equal(t, 2, info.Threshold)
	assert.Len(t, info.Owners, 2)
}

func TestGatewayErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "safe not found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	_, err := client.QueuedTransactions(context.Background(), "1", common.HexToAddress(testSafe), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code: 404")

	_, err = client.SafeInfo(context.Background(), "1", common.HexToAddress(testSafe))
	require.Error(t, err)
}
