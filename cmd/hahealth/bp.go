package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/sprillex/hahealth/internal/model"
	"github.com/sprillex/hahealth/internal/ui"
)

var bpCmd = &cobra.Command{
	Use:   "bp",
	Short: "Log and review blood pressure",
}

var (
	bpSystolic   int
	bpDiastolic  int
	bpPulse      int
	bpLocation   string
	bpStress     int
	bpMedsBefore string
)

var bpLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Record a blood pressure reading",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, ctrl *ui.Controller) error {
			return ctrl.LogBP(ctx, model.BloodPressure{
				Systolic:        bpSystolic,
				Diastolic:       bpDiastolic,
				Pulse:           bpPulse,
				Location:        bpLocation,
				StressLevel:     bpStress,
				MedsTakenBefore: bpMedsBefore,
			})
		})
	},
}

var bpHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show blood pressure history",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, ctrl *ui.Controller) error {
			return ctrl.ShowBPHistory(ctx)
		})
	},
}

var bpExportOut string

var bpExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export blood pressure history as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, ctrl *ui.Controller) error {
			return ctrl.ExportBPHistory(ctx, bpExportOut)
		})
	},
}

func init() {
	rootCmd.AddCommand(bpCmd)
	bpCmd.AddCommand(bpLogCmd, bpHistoryCmd, bpExportCmd)

	bpLogCmd.Flags().IntVar(&bpSystolic, "systolic", 0, "Systolic mmHg")
	bpLogCmd.Flags().IntVar(&bpDiastolic, "diastolic", 0, "Diastolic mmHg")
	bpLogCmd.Flags().IntVar(&bpPulse, "pulse", 0, "Pulse bpm")
	bpLogCmd.Flags().StringVar(&bpLocation, "location", "Manual", "Where the reading was taken")
	bpLogCmd.Flags().IntVar(&bpStress, "stress", 0, "Stress level 0-10")
	bpLogCmd.Flags().StringVar(&bpMedsBefore, "meds-before", "N/A", "Medications taken before the reading")
	_ = bpLogCmd.MarkFlagRequired("systolic")
	_ = bpLogCmd.MarkFlagRequired("diastolic")
	_ = bpLogCmd.MarkFlagRequired("pulse")

	bpExportCmd.Flags().StringVar(&bpExportOut, "out", "", "Output file (default blood_pressure_history.csv)")
}
