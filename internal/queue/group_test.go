package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safequeue-viz/internal/model"
)

func txItem(id string, timestamp int64, conflict model.ConflictType) model.TransactionListItem {
	return model.TransactionListItem{
		Type:         model.TypeTransaction,
		ConflictType: conflict,
		Transaction: &model.TransactionSummary{
			ID:        id,
			Timestamp: timestamp,
			TxStatus:  model.StatusAwaitingConfirmations,
			TxInfo:    model.TransactionInfo{Type: model.TxInfoTransfer},
			ExecutionInfo: &model.ExecutionInfo{
				Type:                  model.ExecutionMultisig,
				ConfirmationsRequired: 2,
			},
		},
	}
}

func minedTxItem(id, txHash string, timestamp int64) model.TransactionListItem {
	item := txItem(id, timestamp, model.ConflictNone)
	item.Transaction.TxHash = txHash
	return item
}

func labelItem(label model.LabelValue) model.TransactionListItem {
	return model.TransactionListItem{Type: model.TypeLabel, Label: label}
}

func conflictHeaderItem(nonce uint64) model.TransactionListItem {
	return model.TransactionListItem{Type: model.TypeConflictHeader, Nonce: nonce}
}

func dateLabelItem(timestamp int64) model.TransactionListItem {
	return model.TransactionListItem{Type: model.TypeDateLabel, Timestamp: timestamp}
}

func countTransactions(items []GroupedItem) int {
	total := 0
	for _, item := range items {
		total += item.Size()
	}
	return total
}

func TestGroupConflicts(t *testing.T) {
	items := []model.TransactionListItem{
		labelItem(model.LabelNext),
		conflictHeaderItem(7),
		txItem("tx-old", 100, model.ConflictHasNext),
		txItem("tx-new", 200, model.ConflictEnd),
		labelItem(model.LabelQueued),
		txItem("tx-solo", 300, model.ConflictNone),
	}

	grouped := GroupConflicts(items)

	require.Len(t, grouped, 4)
	assert.False(t, grouped[0].IsGroup())
	assert.True(t, IsLabelListItem(grouped[0].Item))

	require.True(t, grouped[1].IsGroup())
	require.Len(t, grouped[1].Group, 2)
	// newest first inside a conflict group
	assert.Equal(t, "tx-new", grouped[1].Group[0].Transaction.ID)
	assert.Equal(t, "tx-old", grouped[1].Group[1].Transaction.ID)

	assert.True(t, IsLabelListItem(grouped[2].Item))
	assert.Equal(t, "tx-solo", grouped[3].Item.Transaction.ID)

	// every input transaction is accounted for exactly once
	assert.Equal(t, 3, countTransactions(grouped))
}

func TestGroupConflictsStableSortOnTies(t *testing.T) {
	items := []model.TransactionListItem{
		conflictHeaderItem(1),
		txItem("first", 100, model.ConflictHasNext),
		txItem("second", 100, model.ConflictHasNext),
		txItem("third", 100, model.ConflictEnd),
	}

	grouped := GroupConflicts(items)

	require.Len(t, grouped, 1)
	require.True(t, grouped[0].IsGroup())
	// equal timestamps keep their server order
	assert.Equal(t, "first", grouped[0].Group[0].Transaction.ID)
	assert.Equal(t, "second", grouped[0].Group[1].Transaction.ID)
	assert.Equal(t, "third", grouped[0].Group[2].Transaction.ID)
}

func TestGroupConflictsEmptyGroupPropagates(t *testing.T) {
	items := []model.TransactionListItem{
		conflictHeaderItem(4),
		txItem("unrelated", 100, model.ConflictNone),
	}

	grouped := GroupConflicts(items)

	require.Len(t, grouped, 2)
	assert.True(t, grouped[0].IsGroup())
	assert.Empty(t, grouped[0].Group)
	assert.Equal(t, "unrelated", grouped[1].Item.Transaction.ID)
}

func TestGroupConflictsTransactionWithoutHeaderStaysStandalone(t *testing.T) {
	// HasNext without a preceding header has no group to join
	items := []model.TransactionListItem{
		txItem("stray", 100, model.ConflictHasNext),
		txItem("solo", 200, model.ConflictNone),
	}

	grouped := GroupConflicts(items)

	require.Len(t, grouped, 2)
	assert.False(t, grouped[0].IsGroup())
	assert.False(t, grouped[1].IsGroup())
}

func TestGroupBulkMergesAdjacentSameHash(t *testing.T) {
	items := []model.TransactionListItem{
		minedTxItem("id1", "0x123", 100),
		minedTxItem("id2", "0x123", 100),
		minedTxItem("id3", "0x456", 200),
	}

	grouped := GroupBulk(GroupConflicts(items))

	require.Len(t, grouped, 2)
	require.True(t, grouped[0].IsGroup())
	require.Len(t, grouped[0].Group, 2)
	assert.Equal(t, "id1", grouped[0].Group[0].Transaction.ID)
	assert.Equal(t, "id2", grouped[0].Group[1].Transaction.ID)
	assert.False(t, grouped[1].IsGroup())
	assert.Equal(t, "id3", grouped[1].Item.Transaction.ID)
}

func TestGroupBulkNonAdjacentSameHashStaysStandalone(t *testing.T) {
	items := []model.TransactionListItem{
		minedTxItem("id1", "0x123", 100),
		minedTxItem("id2", "0x456", 150),
		minedTxItem("id3", "0x123", 200),
	}

	grouped := GroupBulk(GroupConflicts(items))

	require.Len(t, grouped, 3)
	for _, item := range grouped {
		assert.False(t, item.IsGroup())
	}
}

func TestGroupBulkUnminedTransactionsNeverMerge(t *testing.T) {
	// queued proposals have no mined hash yet
	items := []model.TransactionListItem{
		txItem("id1", 100, model.ConflictNone),
		txItem("id2", 150, model.ConflictNone),
	}

	grouped := GroupBulk(GroupConflicts(items))

	require.Len(t, grouped, 2)
	assert.False(t, grouped[0].IsGroup())
	assert.False(t, grouped[1].IsGroup())
}

func TestGroupBulkPassesConflictGroupsThrough(t *testing.T) {
	items := []model.TransactionListItem{
		conflictHeaderItem(9),
		txItem("c1", 100, model.ConflictHasNext),
		txItem("c2", 200, model.ConflictEnd),
		minedTxItem("b1", "0xabc", 300),
		minedTxItem("b2", "0xabc", 300),
	}

	grouped := GroupAll(items)

	require.Len(t, grouped, 2)
	require.True(t, grouped[0].IsGroup())
	assert.Len(t, grouped[0].Group, 2)
	require.True(t, grouped[1].IsGroup())
	assert.Len(t, grouped[1].Group, 2)
	assert.Equal(t, 4, countTransactions(grouped))
}

func TestGroupBulkGrowsBeyondTwo(t *testing.T) {
	items := []model.TransactionListItem{
		minedTxItem("id1", "0x123", 100),
		minedTxItem("id2", "0x123", 100),
		minedTxItem("id3", "0x123", 100),
	}

	grouped := GroupBulk(GroupConflicts(items))

	require.Len(t, grouped, 1)
	require.True(t, grouped[0].IsGroup())
	assert.Len(t, grouped[0].Group, 3)
}

func TestGroupAllPreservesTransactionCount(t *testing.T) {
	items := []model.TransactionListItem{
		dateLabelItem(1),
		labelItem(model.LabelNext),
		conflictHeaderItem(1),
		txItem("a", 10, model.ConflictHasNext),
		txItem("b", 20, model.ConflictEnd),
		labelItem(model.LabelQueued),
		dateLabelItem(2),
		minedTxItem("c", "0x1", 30),
		minedTxItem("d", "0x1", 30),
		txItem("e", 40, model.ConflictNone),
	}

	grouped := GroupAll(items)

	assert.Equal(t, 5, countTransactions(grouped))
}
