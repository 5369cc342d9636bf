package events

import "time"

// EntryRejected is published when a semantically invalid entry is dropped
// from a batch (mutation on a locked account, withdrawal with insufficient
// funds). The entry is skipped and processing continues; this event is the
// audit trail for the skip.
type EntryRejected struct {
	BatchID    string    `json:"batch_id"`
	AccountID  uint16    `json:"account_id"`
	EntryID    uint32    `json:"entry_id"`
	Type       string    `json:"type"`
	Reason     string    `json:"reason"`
	OccurredAt time.Time `json:"occurred_at"`
}
