package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sprillex/hahealth/internal/render"
	"github.com/sprillex/hahealth/internal/targets"
	"github.com/sprillex/hahealth/internal/ui"
)

var (
	dashboardDate string
	dashboardBack int
	dashboardSVG  string
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the daily summary with calorie and macro gauges",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, ctrl *ui.Controller) error {
			if dashboardDate != "" {
				if err := validDate(dashboardDate); err != nil {
					return err
				}
				if err := ctrl.Session.SetDashboardDate(dashboardDate); err != nil {
					return err
				}
			}
			if dashboardBack != 0 {
				ctrl.Session.ShiftDashboardDate(-dashboardBack)
			}
			if err := ctrl.ShowDashboard(ctx); err != nil {
				return err
			}
			if dashboardSVG != "" {
				return writeCalorieGauge(ctx, ctrl, dashboardSVG)
			}
			return nil
		})
	},
}

// writeCalorieGauge exports the calorie gauge as a standalone SVG, the
// same arc the web dashboard drew.
func writeCalorieGauge(ctx context.Context, ctrl *ui.Controller, path string) error {
	summary, err := ctrl.API.DailySummary(ctx, ctrl.Session.DashboardDate())
	if err != nil {
		return err
	}
	tg := targets.Compute(ctrl.Session.User(), time.Now())
	svg := render.GaugeSVG("Calories", summary.CaloriesConsumed, float64(tg.Calories))
	if err := os.WriteFile(path, []byte(svg), 0o644); err != nil {
		return fmt.Errorf("write gauge svg: %w", err)
	}
	return nil
}

var viewCmd = &cobra.Command{
	Use:       "view <name>",
	Short:     "Open a named view (dashboard, medications, nutrition, health-logs, reports, settings, admin)",
	Args:      cobra.ExactArgs(1),
	ValidArgs: viewNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, ctrl *ui.Controller) error {
			return ctrl.ShowView(ctx, ui.View(args[0]))
		})
	},
}

func viewNames() []string {
	names := make([]string, 0, len(ui.Views))
	for _, v := range ui.Views {
		names = append(names, string(v))
	}
	return names
}

func init() {
	rootCmd.AddCommand(dashboardCmd, viewCmd)

	dashboardCmd.Flags().StringVar(&dashboardDate, "date", "", "Date YYYY-MM-DD (default today)")
	dashboardCmd.Flags().IntVar(&dashboardBack, "back", 0, "Days back from the selected date")
	dashboardCmd.Flags().StringVar(&dashboardSVG, "svg", "", "Write the calorie gauge SVG to this file")
}
