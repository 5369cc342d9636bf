package models

// SnapshotRow is one account's final reported state after a batch completes.
type SnapshotRow struct {
	AccountID AccountID
	Available Money
	Held      Money
	Total     Money
	Locked    bool
}
