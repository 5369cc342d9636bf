package ledger

import "github.com/davegarred/transactions/internal/models"

// Account holds one client's ledger state: the entries backing the available
// balance, the entries currently under dispute, and the lock flag.
//
// An entry id lives in at most one of active/held at any time. Per id the
// lifecycle is: absent -> active (deposit/withdrawal) -> held (dispute) ->
// active (resolve) or gone (chargeback, which locks the account).
type Account struct {
	id     models.AccountID
	active map[models.EntryID]models.LedgerEntry
	held   map[models.EntryID]models.LedgerEntry
	locked bool
}

func NewAccount(id models.AccountID) *Account {
	return &Account{
		id:     id,
		active: make(map[models.EntryID]models.LedgerEntry),
		held:   make(map[models.EntryID]models.LedgerEntry),
	}
}

func (a *Account) ID() models.AccountID {
	return a.id
}

// Apply is the single mutation entry point. A locked account rejects
// everything. Deposits are recorded as given; the account layer does not
// police amount signs. Withdrawals are checked against the available
// balance and, when rejected, never enter the ledger. Dispute moves an
// active entry to held, resolve moves it back, and chargeback removes a
// held entry and locks the account. A dispute, resolve, or chargeback whose
// referenced id is not in the required state has no effect; in particular a
// chargeback on an id that is not under dispute does NOT lock the account.
func (a *Account) Apply(entry models.LedgerEntry) Outcome {
	if a.locked {
		return OutcomeRejectedLocked
	}

	switch entry.Type {
	case models.EntryDeposit:
		a.active[entry.EntryID] = entry
		return OutcomeApplied

	case models.EntryWithdrawal:
		if a.Available().LessThan(entry.Amount) {
			return OutcomeRejectedInsufficientFunds
		}
		// Recorded like a deposit so a later dispute can reference it.
		a.active[entry.EntryID] = entry
		return OutcomeApplied

	case models.EntryDispute:
		prior, ok := a.active[entry.EntryID]
		if !ok {
			return OutcomeNoop
		}
		delete(a.active, entry.EntryID)
		a.held[entry.EntryID] = prior
		return OutcomeApplied

	case models.EntryResolve:
		prior, ok := a.held[entry.EntryID]
		if !ok {
			return OutcomeNoop
		}
		delete(a.held, entry.EntryID)
		a.active[entry.EntryID] = prior
		return OutcomeApplied

	case models.EntryChargeback:
		if _, ok := a.held[entry.EntryID]; !ok {
			return OutcomeNoop
		}
		delete(a.held, entry.EntryID)
		a.locked = true
		return OutcomeApplied
	}
	return OutcomeNoop
}

// Available is the signed sum over active entries: deposits count positive,
// withdrawals negative.
func (a *Account) Available() models.Money {
	return sumEntries(a.active)
}

// Held is the signed sum over disputed entries, same sign rule.
func (a *Account) Held() models.Money {
	return sumEntries(a.held)
}

func (a *Account) Total() models.Money {
	return a.Available().Add(a.Held())
}

func (a *Account) Locked() bool {
	return a.locked
}

func sumEntries(entries map[models.EntryID]models.LedgerEntry) models.Money {
	var sum models.Money
	for _, e := range entries {
		switch e.Type {
		case models.EntryDeposit:
			sum = sum.Add(e.Amount)
		case models.EntryWithdrawal:
			sum = sum.Sub(e.Amount)
		}
	}
	return sum
}
