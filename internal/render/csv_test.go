package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sprillex/hahealth/internal/model"
)

func TestWriteBPHistoryCSVRefusesEmptyHistory(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	if err := WriteBPHistoryCSV(&buf, nil); err == nil {
		t.Fatal("expected error for empty history")
	}
	if buf.Len() != 0 {
		t.Fatalf("no output expected on refusal, got %q", buf.String())
	}
}

func TestWriteBPHistoryCSVFormat(t *testing.T) {
	t.Parallel()
	history := []model.BloodPressure{
		{Timestamp: "2025-03-01 08:00", Systolic: 120, Diastolic: 80, Pulse: 62, Location: "Home", StressLevel: 1, MedsTakenBefore: "N/A"},
		{Timestamp: "2025-03-02 08:05", Systolic: 131, Diastolic: 84, Pulse: 66, Location: "Office", StressLevel: 3, MedsTakenBefore: "Lisinopril"},
	}
	var buf bytes.Buffer
	if err := WriteBPHistoryCSV(&buf, history); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "\r\n") {
		t.Fatal("expected CRLF line endings")
	}
	lines := strings.Split(strings.TrimRight(out, "\r\n"), "\r\n")
	if len(lines) != len(history)+1 {
		t.Fatalf("expected %d lines, got %d", len(history)+1, len(lines))
	}
	if lines[0] != "Date,Systolic,Diastolic,Pulse,Location,Stress Level,Meds Taken Before" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if lines[1] != "2025-03-01 08:00,120,80,62,Home,1,N/A" {
		t.Fatalf("unexpected row: %q", lines[1])
	}
}
