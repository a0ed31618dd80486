package queue

import (
	"strconv"

	"safequeue-viz/internal/model"
)

// PageSize is the gateway's queued-transactions page size. Once a full
// page arrives with a further page behind it, the badge stops counting
// and renders "20+".
const PageSize = 20

// PendingActions are the badge counts derived from one queue page.
// TotalQueued is a display string: "" for an empty queue, the literal
// count, or "<N>+" once the count fills a page and more pages exist.
// TotalToSign is only present when the wallet is a safe owner.
type PendingActions struct {
	TotalQueued string `json:"totalQueued"`
	TotalToSign *int   `json:"totalToSign,omitempty"`
}

// AggregatePendingActions computes the badge counts for one page of the
// queue. Queued counts every individual transaction after conflict
// grouping. To-sign counts the wallet's missing signatures within the
// first conflict group of the page only; a page without a conflict
// group yields no to-sign count at all.
func AggregatePendingActions(page *model.TransactionListPage, wallet string, isOwner bool) PendingActions {
	if page == nil {
		return PendingActions{}
	}

	grouped := GroupConflicts(page.Results)

	queued := 0
	for _, item := range grouped {
		queued += item.Size()
	}

	actions := PendingActions{TotalQueued: formatQueued(queued, page.Next != "")}

	if !isOwner {
		return actions
	}

	for _, item := range grouped {
		if !item.IsGroup() {
			continue
		}
		toSign := 0
		for i := range item.Group {
			if IsSignable(item.Group[i].Transaction, wallet) {
				toSign++
			}
		}
		actions.TotalToSign = &toSign
		break
	}

	return actions
}

func formatQueued(count int, hasMore bool) string {
	switch {
	case count == 0:
		return ""
	case hasMore && count >= PageSize:
		return strconv.Itoa(count) + "+"
	default:
		return strconv.Itoa(count)
	}
}
