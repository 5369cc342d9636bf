package report

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"

	"github.com/davegarred/transactions/internal/models"
)

// WriteCSV renders the final snapshot: a header row followed by one row per
// account. Decimal columns carry at most four fractional digits. Rows are
// sorted by account id for stable operator output, but consumers must not
// rely on ordering.
func WriteCSV(w io.Writer, rows []models.SnapshotRow) error {
	sorted := make([]models.SnapshotRow, len(rows))
	copy(sorted, rows)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].AccountID < sorted[j].AccountID
	})

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return err
	}
	for _, row := range sorted {
		record := []string{
			strconv.FormatUint(uint64(row.AccountID), 10),
			row.Available.String(),
			row.Held.String(),
			row.Total.String(),
			strconv.FormatBool(row.Locked),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
