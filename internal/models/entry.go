package models

// AccountID uniquely identifies a client account within a batch.
type AccountID uint16

// EntryID uniquely identifies a deposit or withdrawal within an account's
// namespace. Dispute, resolve, and chargeback entries reuse the id of the
// entry they act on.
type EntryID uint32

// EntryType enumerates the five transaction kinds in an input batch.
type EntryType uint8

const (
	EntryDeposit EntryType = iota + 1
	EntryWithdrawal
	EntryDispute
	EntryResolve
	EntryChargeback
)

func (t EntryType) String() string {
	switch t {
	case EntryDeposit:
		return "deposit"
	case EntryWithdrawal:
		return "withdrawal"
	case EntryDispute:
		return "dispute"
	case EntryResolve:
		return "resolve"
	case EntryChargeback:
		return "chargeback"
	}
	return "unknown"
}

// LedgerEntry is one validated transaction record from the input batch.
// Only deposits and withdrawals carry an amount and are retained by an
// account; the other three types are control signals that reference a prior
// entry by id and are not themselves stored.
type LedgerEntry struct {
	Type      EntryType
	AccountID AccountID
	EntryID   EntryID
	Amount    Money // zero for dispute/resolve/chargeback
}
