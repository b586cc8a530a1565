package render

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/sprillex/hahealth/internal/model"
)

// BPExportFilename is the canonical name for the blood-pressure export.
const BPExportFilename = "blood_pressure_history.csv"

var bpCSVHeader = []string{"Date", "Systolic", "Diastolic", "Pulse", "Location", "Stress Level", "Meds Taken Before"}

// WriteBPHistoryCSV writes the blood-pressure history in the documented
// column order with CRLF line endings. An empty history is refused so no
// header-only file gets produced.
func WriteBPHistoryCSV(w io.Writer, history []model.BloodPressure) error {
	if len(history) == 0 {
		return fmt.Errorf("no blood pressure history to export")
	}
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.Write(bpCSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, bp := range history {
		row := []string{
			bp.Timestamp,
			fmt.Sprintf("%d", bp.Systolic),
			fmt.Sprintf("%d", bp.Diastolic),
			fmt.Sprintf("%d", bp.Pulse),
			bp.Location,
			fmt.Sprintf("%d", bp.StressLevel),
			bp.MedsTakenBefore,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
