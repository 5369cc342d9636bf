package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"

	"github.com/davegarred/transactions/internal/config"
	"github.com/davegarred/transactions/internal/engine"
	"github.com/davegarred/transactions/internal/events"
	"github.com/davegarred/transactions/internal/events/kafka"
	"github.com/davegarred/transactions/internal/interfaces"
	"github.com/davegarred/transactions/internal/ledger"
	"github.com/davegarred/transactions/internal/logger"
	"github.com/davegarred/transactions/internal/report"
	"github.com/davegarred/transactions/internal/storage/postgres"
)

// Expects a single argument: the filename of the transaction batch to
// process. Parse errors abort the run with exit code 1 and no snapshot;
// semantic errors (insufficient funds, locked accounts) are logged to stderr
// and never halt processing. The final snapshot is written to stdout as CSV.
func main() {
	log := logger.New()

	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <filename>\n", os.Args[0])
		os.Exit(1)
	}
	filename := os.Args[1]

	cfg := config.Load()

	var audit interfaces.EventPublisher = events.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		pub := kafka.NewPublisher(cfg.KafkaBrokers, cfg.AuditTopic)
		defer pub.Close()
		audit = pub
	}

	file, err := os.Open(filename)
	if err != nil {
		log.Error().Err(err).Str("file", filename).Msg("file not found or is unreadable")
		os.Exit(1)
	}
	defer file.Close()

	ctx := context.Background()
	proc := engine.NewProcessor(ledger.NewBank(), log, audit, cfg.AuditTopic)

	if err := proc.ProcessBatch(ctx, file); err != nil {
		log.Error().Err(err).Str("file", filename).Msg("batch aborted")
		os.Exit(1)
	}

	rows := proc.Snapshot()
	if err := report.WriteCSV(os.Stdout, rows); err != nil {
		log.Error().Err(err).Msg("failed to write report")
		os.Exit(1)
	}

	if cfg.PostgresDSN != "" {
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			log.Error().Err(err).Msg("failed to open snapshot database")
			os.Exit(1)
		}
		defer db.Close()

		store := postgres.NewSnapshotStore(db)
		if err := store.SaveSnapshot(ctx, proc.BatchID(), rows); err != nil {
			log.Error().Err(err).Msg("failed to export snapshot")
			os.Exit(1)
		}
	}
}
