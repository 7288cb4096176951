package types

import "time"

// HistoryEntry is one completed calculation. Expression and Result are
// display text, e.g. `5' 3 1/2" + 2 1/4"` and `65 3/4"`.
type HistoryEntry struct {
	ID         HistoryID `json:"id"`
	Expression string    `json:"expression"`
	Result     string    `json:"result"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NewHistoryEntry is the input for recording a calculation.
type NewHistoryEntry struct {
	Expression string `json:"expression"`
	Result     string `json:"result"`
}
