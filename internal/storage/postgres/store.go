package postgres

import (
	"context"
	"database/sql"

	"github.com/davegarred/transactions/internal/interfaces"
	"github.com/davegarred/transactions/internal/models"
)

// SnapshotStore exports a batch's final snapshot to Postgres. One run, one
// transaction: either every account row lands or none do.
type SnapshotStore struct {
	db *sql.DB
}

func NewSnapshotStore(db *sql.DB) *SnapshotStore {
	return &SnapshotStore{
		db: db,
	}
}

func (p *SnapshotStore) SaveSnapshot(ctx context.Context, batchID string, rows []models.SnapshotRow) error {
	const query = `INSERT INTO account_snapshots (batch_id, account_id, available, held, total, locked)
	VALUES ($1,$2,$3,$4,$5,$6)`

	dbTx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			dbTx.Rollback()
		}
	}()

	for _, row := range rows {
		_, err = dbTx.ExecContext(ctx, query,
			batchID,
			int64(row.AccountID),
			row.Available.Decimal(),
			row.Held.Decimal(),
			row.Total.Decimal(),
			row.Locked,
		)
		if err != nil {
			return err
		}
	}

	err = dbTx.Commit()
	return err
}

var _ interfaces.SnapshotStore = (*SnapshotStore)(nil)
