package queue

import (
	"safequeue-viz/internal/logger"
	"safequeue-viz/internal/model"
)

// Presentation titles for the two queue segments.
const (
	TitleReadyToExecute     = "Ready to execute"
	TitleConfirmationNeeded = "Confirmation needed"
)

// Section is one named, ordered slice of the grouped queue.
type Section struct {
	Title string        `json:"title"`
	Data  []GroupedItem `json:"data"`
}

// SectionSplit is the render-ready queue: the two sections in display
// order plus the total number of individual transactions across them.
type SectionSplit struct {
	Amount   int       `json:"amount"`
	Sections []Section `json:"sections"`
}

// SplitSections distributes the grouped entries into the two segments
// the gateway's Next/Queued labels delimit. Amount counts individual
// transactions, never groups. Entries arriving before the first label
// have no section to live in and are skipped; that only happens when
// the gateway page is malformed, so it is logged rather than dropped
// silently.
func SplitSections(items []GroupedItem, nextTitle, queuedTitle string, log logger.Logger) SectionSplit {
	sections := []Section{
		{Title: nextTitle, Data: []GroupedItem{}},
		{Title: queuedTitle, Data: []GroupedItem{}},
	}

	var current *Section
	amount := 0

	for _, item := range items {
		if !item.IsGroup() {
			switch {
			case IsLabelListItem(item.Item):
				if item.Item.Label == model.LabelQueued {
					current = &sections[1]
				} else {
					current = &sections[0]
				}
				continue
			case IsDateLabel(item.Item):
				continue
			case !IsTransactionListItem(item.Item):
				if log != nil {
					log.Warn("skipping list item of unknown type", logger.Fields{"type": item.Item.Type})
				}
				continue
			}
		}

		if current == nil {
			if log != nil {
				log.Warn("transaction entry precedes first section label, skipping")
			}
			continue
		}

		current.Data = append(current.Data, item)
		amount += item.Size()
	}

	return SectionSplit{Amount: amount, Sections: sections}
}
