package queue

import (
	"sort"

	"safequeue-viz/internal/model"
)

// GroupedItem is either a single page entry or an ordered run of
// transactions folded into one unit. Exactly one of Item and Group is
// meaningful; a group with no members is still a group (a conflict
// header the gateway emitted with no followers), and consumers must
// tolerate it.
type GroupedItem struct {
	Item  *model.TransactionListItem  `json:"item,omitempty"`
	Group []model.TransactionListItem `json:"group,omitempty"`
}

// IsGroup reports whether the entry is a folded run rather than a
// single page entry.
func (g GroupedItem) IsGroup() bool {
	return g.Item == nil
}

// Size is the number of individual transactions the entry contributes
// to badge counts.
func (g GroupedItem) Size() int {
	if g.IsGroup() {
		return len(g.Group)
	}
	if IsTransactionListItem(g.Item) {
		return 1
	}
	return 0
}

// GroupConflicts folds the server-ordered page entries into same-nonce
// conflict groups. A CONFLICT_HEADER opens a new group; the contiguous
// run of transactions after it whose conflictType is not None belongs
// to that group. Every other entry passes through standalone. Each
// group is then ordered newest first; the sort is stable so entries
// sharing a timestamp keep their server order.
func GroupConflicts(items []model.TransactionListItem) []GroupedItem {
	grouped := make([]GroupedItem, 0, len(items))

	for i := range items {
		item := &items[i]
		switch {
		case IsConflictHeaderListItem(item):
			grouped = append(grouped, GroupedItem{Group: []model.TransactionListItem{}})

		case IsTransactionListItem(item) && item.ConflictType != model.ConflictNone &&
			len(grouped) > 0 && grouped[len(grouped)-1].IsGroup():
			last := &grouped[len(grouped)-1]
			last.Group = append(last.Group, *item)

		default:
			grouped = append(grouped, GroupedItem{Item: item})
		}
	}

	for i := range grouped {
		if !grouped[i].IsGroup() {
			continue
		}
		group := grouped[i].Group
		sort.SliceStable(group, func(a, b int) bool {
			return group[a].Transaction.Timestamp > group[b].Transaction.Timestamp
		})
	}

	return grouped
}

// GroupBulk merges strictly adjacent standalone transactions sharing a
// mined transaction hash into bulk groups; the gateway always emits the
// legs of a batched execution contiguously. Conflict groups and
// non-transaction entries pass through untouched, and an intervening
// entry of any kind breaks adjacency.
func GroupBulk(items []GroupedItem) []GroupedItem {
	grouped := make([]GroupedItem, 0, len(items))

	for _, item := range items {
		if item.IsGroup() || !IsTransactionListItem(item.Item) {
			grouped = append(grouped, item)
			continue
		}

		hash := item.Item.Transaction.TxHash
		if hash != "" && len(grouped) > 0 {
			prev := &grouped[len(grouped)-1]
			if merged := mergeByHash(prev, item.Item, hash); merged {
				continue
			}
		}

		grouped = append(grouped, item)
	}

	return grouped
}

// mergeByHash appends tx to prev when prev holds the same mined hash,
// either as a standalone transaction (which becomes a two-member bulk
// group) or as a group whose first member carries the hash.
func mergeByHash(prev *GroupedItem, tx *model.TransactionListItem, hash string) bool {
	if !prev.IsGroup() {
		if IsTransactionListItem(prev.Item) && prev.Item.Transaction.TxHash == hash {
			*prev = GroupedItem{Group: []model.TransactionListItem{*prev.Item, *tx}}
			return true
		}
		return false
	}
	if len(prev.Group) > 0 && prev.Group[0].Transaction != nil && prev.Group[0].Transaction.TxHash == hash {
		prev.Group = append(prev.Group, *tx)
		return true
	}
	return false
}

// GroupAll runs the two grouping passes in their required order.
func GroupAll(items []model.TransactionListItem) []GroupedItem {
	return GroupBulk(GroupConflicts(items))
}
