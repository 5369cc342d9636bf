package ledger

// Outcome reports what Apply did with an entry. Rejections are non-fatal:
// the entry is dropped, the rest of the batch continues, and the caller
// decides whether to log, count, or publish the event. The state machine
// itself performs no I/O.
type Outcome uint8

const (
	// OutcomeApplied means the entry mutated account state.
	OutcomeApplied Outcome = iota
	// OutcomeNoop means a dispute, resolve, or chargeback referenced an id
	// that was not in the required state. The referenced entry may simply
	// not exist; nothing is synthesized and nothing changes.
	OutcomeNoop
	// OutcomeRejectedLocked means the account is locked and refuses all
	// further mutation.
	OutcomeRejectedLocked
	// OutcomeRejectedInsufficientFunds means a withdrawal exceeded the
	// available balance and was not recorded.
	OutcomeRejectedInsufficientFunds
)

// Rejected reports whether the entry was refused outright, as opposed to
// applied or silently ignored.
func (o Outcome) Rejected() bool {
	return o == OutcomeRejectedLocked || o == OutcomeRejectedInsufficientFunds
}

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeNoop:
		return "no effect"
	case OutcomeRejectedLocked:
		return "account locked"
	case OutcomeRejectedInsufficientFunds:
		return "insufficient funds"
	}
	return "unknown"
}
