// Package export renders read-only report data for external consumers.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/Juanes-GOAT/Maintenance-Management-2.0/internal/models"
)

// WriteHistoryCSV writes the maintenance history as CSV with a header
// row. An unassigned technician renders as "Unassigned", matching the list
// views.
func WriteHistoryCSV(w io.Writer, entries []models.HistoryEntry) error {
	cw := csv.NewWriter(w)
	header := []string{"order_id", "equipment", "type", "completed_at", "technician", "notes"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, e := range entries {
		technician := e.Technician
		if technician == "" {
			technician = "Unassigned"
		}
		row := []string{
			strconv.Itoa(e.OrderID),
			e.EquipmentName,
			string(e.Type),
			e.CompletedAt.Format(time.RFC3339),
			technician,
			e.Notes,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row for order %d: %w", e.OrderID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
