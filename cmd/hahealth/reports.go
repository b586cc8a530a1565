package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/sprillex/hahealth/internal/ui"
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Show adherence, compliance, and vaccination reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, ctrl *ui.Controller) error {
			return ctrl.ShowReports(ctx)
		})
	},
}

func init() {
	rootCmd.AddCommand(reportsCmd)
}
