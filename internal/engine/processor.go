package engine

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/davegarred/transactions/internal/ingest"
	"github.com/davegarred/transactions/internal/interfaces"
	"github.com/davegarred/transactions/internal/ledger"
	"github.com/davegarred/transactions/internal/models"
	"github.com/davegarred/transactions/internal/models/events"
)

// Processor folds one batch into a Bank as a strict sequential fold: entry
// N's effect is fully applied before entry N+1 is read, because disputes,
// resolves, and chargebacks depend on the exact current account state.
// Per-entry outcomes are routed to the diagnostic log and, for rejections,
// to the audit publisher.
type Processor struct {
	bank    *ledger.Bank
	log     zerolog.Logger
	audit   interfaces.EventPublisher
	topic   string
	batchID uuid.UUID
}

func NewProcessor(bank *ledger.Bank, log zerolog.Logger, audit interfaces.EventPublisher, topic string) *Processor {
	return &Processor{
		bank:    bank,
		log:     log,
		audit:   audit,
		topic:   topic,
		batchID: uuid.New(),
	}
}

// BatchID identifies this run on log lines, audit events, and exported
// snapshots.
func (p *Processor) BatchID() string {
	return p.batchID.String()
}

// ProcessBatch applies every row of r in order. A structural (parse) error
// aborts the batch and is returned with its row index; semantic rejections
// drop the single entry and processing continues.
func (p *Processor) ProcessBatch(ctx context.Context, r io.Reader) error {
	scanner := ingest.NewScanner(r)
	processed, rejected := 0, 0

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		entry, err := scanner.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		outcome := p.bank.Apply(entry)
		processed++

		switch {
		case outcome.Rejected():
			rejected++
			p.reportRejection(entry, outcome)
		case outcome == ledger.OutcomeNoop:
			p.log.Debug().
				Uint16("client", uint16(entry.AccountID)).
				Uint32("tx", uint32(entry.EntryID)).
				Str("type", entry.Type.String()).
				Msg("entry had no effect")
		}
	}

	p.log.Info().
		Str("batch_id", p.BatchID()).
		Int("processed", processed).
		Int("rejected", rejected).
		Int("accounts", p.bank.Len()).
		Msg("batch complete")
	return nil
}

// Snapshot reads out the final per-account state.
func (p *Processor) Snapshot() []models.SnapshotRow {
	return p.bank.Snapshot()
}

func (p *Processor) reportRejection(entry models.LedgerEntry, outcome ledger.Outcome) {
	p.log.Warn().
		Uint16("client", uint16(entry.AccountID)).
		Uint32("tx", uint32(entry.EntryID)).
		Str("type", entry.Type.String()).
		Str("reason", outcome.String()).
		Msg("entry rejected")

	evt := events.EntryRejected{
		BatchID:    p.BatchID(),
		AccountID:  uint16(entry.AccountID),
		EntryID:    uint32(entry.EntryID),
		Type:       entry.Type.String(),
		Reason:     outcome.String(),
		OccurredAt: time.Now().UTC(),
	}
	if err := p.audit.Publish(p.topic, evt); err != nil {
		p.log.Error().Err(err).Msg("audit publish failed")
	}
}
