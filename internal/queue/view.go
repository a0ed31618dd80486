package queue

import (
	"time"

	"safequeue-viz/internal/logger"
	"safequeue-viz/internal/model"
)

// QueueView is the render-ready queue of one safe: the sectioned,
// grouped transactions plus the badge total. It is rebuilt whole on
// every poll tick and never mutated in place.
type QueueView struct {
	ChainID     string    `json:"chainId"`
	SafeAddress string    `json:"safeAddress"`
	UpdatedAt   int64     `json:"updatedAt"`
	Amount      int       `json:"amount"`
	Sections    []Section `json:"sections"`
}

// BuildView runs the full grouping pipeline over one fetched queue:
// conflict grouping, bulk grouping, then section assignment.
func BuildView(chainID, safeAddress string, page *model.TransactionListPage, log logger.Logger) QueueView {
	var items []model.TransactionListItem
	if page != nil {
		items = page.Results
	}

	split := SplitSections(GroupAll(items), TitleReadyToExecute, TitleConfirmationNeeded, log)

	return QueueView{
		ChainID:     chainID,
		SafeAddress: safeAddress,
		UpdatedAt:   time.Now().Unix(),
		Amount:      split.Amount,
		Sections:    split.Sections,
	}
}
