package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davegarred/transactions/internal/models"
)

func TestSaveAndReadBack(t *testing.T) {
	store := NewSnapshotStore()
	rows := []models.SnapshotRow{
		{AccountID: 1, Available: models.MoneyFromFloat(1.5), Total: models.MoneyFromFloat(1.5)},
	}

	require.NoError(t, store.SaveSnapshot(context.Background(), "batch-1", rows))

	saved, ok := store.Snapshot("batch-1")
	require.True(t, ok)
	assert.Equal(t, rows, saved)

	_, ok = store.Snapshot("batch-2")
	assert.False(t, ok)
}

func TestSnapshotReturnsACopy(t *testing.T) {
	store := NewSnapshotStore()
	rows := []models.SnapshotRow{{AccountID: 1}}
	require.NoError(t, store.SaveSnapshot(context.Background(), "batch-1", rows))

	saved, _ := store.Snapshot("batch-1")
	saved[0].AccountID = 99

	again, _ := store.Snapshot("batch-1")
	assert.Equal(t, models.AccountID(1), again[0].AccountID)
}
