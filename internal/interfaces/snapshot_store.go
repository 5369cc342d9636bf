package interfaces

import (
	"context"

	"github.com/davegarred/transactions/internal/models"
)

// SnapshotStore receives the final per-account snapshot of one batch run.
// It is a reporting sink: the engine never reads ledger state back from it.
type SnapshotStore interface {
	SaveSnapshot(ctx context.Context, batchID string, rows []models.SnapshotRow) error
}
