package ui

import (
	"fmt"
	"io"

	"github.com/sprillex/hahealth/internal/model"
	"github.com/sprillex/hahealth/internal/render"
)

func renderReports(w io.Writer, adherence model.AdherenceReport, compliance []model.ComplianceRow, vacs []model.VaccinationStatus, bpHistory []model.BloodPressure, exHistory []model.ExerciseLog) {
	fmt.Fprintf(w, "Doses logged: %d\n", adherence.TotalDosesLogged)
	if len(compliance) > 0 {
		fmt.Fprintln(w, "MEDICATION\tEXPECTED\tTAKEN\tCOMPLIANCE")
		for _, row := range compliance {
			fmt.Fprintf(w, "%s\t%d\t%d\t%.0f%%\n", row.MedName, row.Expected, row.Taken, row.Percent)
		}
	}
	if len(vacs) > 0 {
		render.VaccinationReportTable(w, vacs)
	}
	if len(bpHistory) > 0 {
		fmt.Fprintln(w, "Blood pressure history:")
		render.BPHistoryTable(w, bpHistory)
	}
	if len(exHistory) > 0 {
		fmt.Fprintln(w, "Exercise history:")
		render.ExerciseTable(w, exHistory)
	}
}

func renderMQTTStatus(w io.Writer, status model.MQTTStatus) {
	state := "disconnected"
	if status.Connected {
		state = "connected"
	}
	fmt.Fprintf(w, "MQTT: %s", state)
	if status.Broker != "" {
		fmt.Fprintf(w, " (%s)", status.Broker)
	}
	fmt.Fprintln(w)
	if status.LastError != "" {
		fmt.Fprintf(w, "Last error: %s\n", status.LastError)
	}
}
