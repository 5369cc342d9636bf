package memory

import (
	"context"
	"sync"

	"github.com/davegarred/transactions/internal/interfaces"
	"github.com/davegarred/transactions/internal/models"
)

// SnapshotStore is an in-memory implementation of interfaces.SnapshotStore,
// used by tests and dry runs. It is safe for concurrent use.
type SnapshotStore struct {
	mu        sync.Mutex
	snapshots map[string][]models.SnapshotRow // keyed by batch id
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{
		snapshots: make(map[string][]models.SnapshotRow),
	}
}

// SaveSnapshot stores a copy of the rows under the batch id. Saving the same
// batch id twice replaces the earlier snapshot.
func (m *SnapshotStore) SaveSnapshot(ctx context.Context, batchID string, rows []models.SnapshotRow) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := make([]models.SnapshotRow, len(rows))
	copy(copied, rows)
	m.snapshots[batchID] = copied
	return nil
}

// Snapshot returns a copy of the rows saved for a batch, so callers cannot
// mutate internal state.
func (m *SnapshotStore) Snapshot(batchID string) ([]models.SnapshotRow, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rows, ok := m.snapshots[batchID]
	if !ok {
		return nil, false
	}
	copied := make([]models.SnapshotRow, len(rows))
	copy(copied, rows)
	return copied, true
}

var _ interfaces.SnapshotStore = (*SnapshotStore)(nil)
