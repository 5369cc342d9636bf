package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/davegarred/transactions/internal/models"
)

// RowError reports a malformed row. Structural errors are fatal to the whole
// batch: processing stops and no snapshot is produced.
type RowError struct {
	Row int // zero-based data row index, header excluded
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Scanner reads transaction rows from a CSV stream with the header
// `type, client, tx, amount`. Rows may carry three or four fields: the
// amount column is required for deposits and withdrawals and must be absent
// or empty for disputes, resolves, and chargebacks.
type Scanner struct {
	r          *csv.Reader
	row        int
	skipHeader bool
}

func NewScanner(r io.Reader) *Scanner {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return &Scanner{r: cr, skipHeader: true}
}

// Next returns the next validated entry. It returns io.EOF at end of input
// and a *RowError for a malformed row.
func (s *Scanner) Next() (models.LedgerEntry, error) {
	if s.skipHeader {
		if _, err := s.r.Read(); err != nil {
			if err == io.EOF {
				return models.LedgerEntry{}, io.EOF
			}
			return models.LedgerEntry{}, &RowError{Row: 0, Err: err}
		}
		s.skipHeader = false
	}

	idx := s.row
	s.row++

	record, err := s.r.Read()
	if err != nil {
		if err == io.EOF {
			return models.LedgerEntry{}, io.EOF
		}
		return models.LedgerEntry{}, &RowError{Row: idx, Err: err}
	}

	entry, err := parseRecord(record)
	if err != nil {
		return models.LedgerEntry{}, &RowError{Row: idx, Err: err}
	}
	return entry, nil
}

func parseRecord(record []string) (models.LedgerEntry, error) {
	if len(record) < 3 || len(record) > 4 {
		return models.LedgerEntry{}, fmt.Errorf("expected 3 or 4 fields, got %d", len(record))
	}

	client, err := strconv.ParseUint(strings.TrimSpace(record[1]), 10, 16)
	if err != nil {
		return models.LedgerEntry{}, fmt.Errorf("invalid client id %q: %w", record[1], err)
	}
	tx, err := strconv.ParseUint(strings.TrimSpace(record[2]), 10, 32)
	if err != nil {
		return models.LedgerEntry{}, fmt.Errorf("invalid transaction id %q: %w", record[2], err)
	}

	var amount string
	if len(record) == 4 {
		amount = strings.TrimSpace(record[3])
	}

	entry := models.LedgerEntry{
		AccountID: models.AccountID(client),
		EntryID:   models.EntryID(tx),
	}

	kind := strings.ToLower(strings.TrimSpace(record[0]))
	switch {
	case kind == "deposit" && amount != "":
		entry.Type = models.EntryDeposit
	case kind == "withdrawal" && amount != "":
		entry.Type = models.EntryWithdrawal
	case kind == "dispute" && amount == "":
		entry.Type = models.EntryDispute
	case kind == "resolve" && amount == "":
		entry.Type = models.EntryResolve
	case kind == "chargeback" && amount == "":
		entry.Type = models.EntryChargeback
	default:
		return models.LedgerEntry{}, fmt.Errorf("unknown transaction type %q with amount %q", record[0], amount)
	}

	if amount != "" {
		m, err := models.ParseMoney(amount)
		if err != nil {
			return models.LedgerEntry{}, fmt.Errorf("invalid amount %q: %w", amount, err)
		}
		entry.Amount = m
	}
	return entry, nil
}
