package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davegarred/transactions/internal/models"
)

func TestWriteCSV(t *testing.T) {
	// deliberately out of order; the writer sorts by account id
	rows := []models.SnapshotRow{
		{
			AccountID: 2,
			Available: models.MoneyFromFloat(2.0),
			Held:      models.MoneyFromFloat(0.5),
			Total:     models.MoneyFromFloat(2.5),
			Locked:    true,
		},
		{
			AccountID: 1,
			Available: models.MoneyFromFloat(1.5),
			Held:      models.Money{},
			Total:     models.MoneyFromFloat(1.5),
			Locked:    false,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows))

	want := "client,available,held,total,locked\n" +
		"1,1.5,0,1.5,false\n" +
		"2,2,0.5,2.5,true\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSVFourFractionalDigits(t *testing.T) {
	rows := []models.SnapshotRow{
		{
			AccountID: 9,
			Available: models.MoneyFromUnits(123455241),
			Held:      models.MoneyFromUnits(-5241),
			Total:     models.MoneyFromUnits(123450000),
			Locked:    false,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows))

	want := "client,available,held,total,locked\n" +
		"9,12345.5241,-0.5241,12345,false\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSVEmptySnapshot(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "client,available,held,total,locked\n", buf.String())
}
