package ledger

import "github.com/davegarred/transactions/internal/models"

// Bank owns the accounts seen during a run, keyed by account id. Accounts
// are created lazily on first reference and never removed. A Bank is an
// explicitly constructed value with no internal locking: callers feed it one
// entry at a time, in batch order, from a single goroutine.
type Bank struct {
	accounts map[models.AccountID]*Account
}

func NewBank() *Bank {
	return &Bank{
		accounts: make(map[models.AccountID]*Account),
	}
}

// Apply routes an entry to its account, constructing the account on first
// sight. The Bank itself cannot fail on a semantically valid entry; every
// per-entry decision is the account's.
func (b *Bank) Apply(entry models.LedgerEntry) Outcome {
	acct, ok := b.accounts[entry.AccountID]
	if !ok {
		acct = NewAccount(entry.AccountID)
		b.accounts[entry.AccountID] = acct
	}
	return acct.Apply(entry)
}

// Account returns the account for id, if one has been created.
func (b *Bank) Account(id models.AccountID) (*Account, bool) {
	acct, ok := b.accounts[id]
	return acct, ok
}

// Len returns the number of accounts seen so far.
func (b *Bank) Len() int {
	return len(b.accounts)
}

// Snapshot returns one row per known account. Row order is unspecified;
// consumers must treat the result as a set.
func (b *Bank) Snapshot() []models.SnapshotRow {
	rows := make([]models.SnapshotRow, 0, len(b.accounts))
	for id, acct := range b.accounts {
		rows = append(rows, models.SnapshotRow{
			AccountID: id,
			Available: acct.Available(),
			Held:      acct.Held(),
			Total:     acct.Total(),
			Locked:    acct.Locked(),
		})
	}
	return rows
}
