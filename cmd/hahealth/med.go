package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/sprillex/hahealth/internal/model"
	"github.com/sprillex/hahealth/internal/ui"
)

var medCmd = &cobra.Command{
	Use:   "med",
	Short: "Manage medications and the dose log",
}

var (
	medName      string
	medFrequency string
	medType      string
	medInventory int
	medRefills   int
	medRefillQty int
	medStart     string
	medEnd       string
	medMorning   bool
	medAfternoon bool
	medEvening   bool
	medBedtime   bool
)

var medListCmd = &cobra.Command{
	Use:   "list",
	Short: "List medications",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, ctrl *ui.Controller) error {
			return ctrl.ShowMedications(ctx)
		})
	},
}

func medFromFlags() model.Medication {
	return model.Medication{
		Name:             medName,
		Frequency:        medFrequency,
		Type:             medType,
		CurrentInventory: medInventory,
		RefillsRemaining: medRefills,
		RefillQty:        medRefillQty,
		StartDate:        medStart,
		EndDate:          medEnd,
		Morning:          medMorning,
		Afternoon:        medAfternoon,
		Evening:          medEvening,
		Bedtime:          medBedtime,
	}
}

var medAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a medication",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, ctrl *ui.Controller) error {
			med := medFromFlags()
			med.MedID = 0
			return ctrl.SaveMedication(ctx, med)
		})
	},
}

// mergeMedication fills every field the user did not pass from the
// existing record, so a partial edit never blanks the rest. changed
// reports whether the named flag was set on the command line.
func mergeMedication(existing, edited model.Medication, changed func(string) bool) model.Medication {
	if !changed("name") {
		edited.Name = existing.Name
	}
	if !changed("frequency") {
		edited.Frequency = existing.Frequency
	}
	if !changed("type") {
		edited.Type = existing.Type
	}
	if !changed("inventory") {
		edited.CurrentInventory = existing.CurrentInventory
	}
	if !changed("refills") {
		edited.RefillsRemaining = existing.RefillsRemaining
	}
	if !changed("refill-qty") {
		edited.RefillQty = existing.RefillQty
	}
	if !changed("start") {
		edited.StartDate = existing.StartDate
	}
	if !changed("end") {
		edited.EndDate = existing.EndDate
	}
	if !changed("morning") {
		edited.Morning = existing.Morning
	}
	if !changed("afternoon") {
		edited.Afternoon = existing.Afternoon
	}
	if !changed("evening") {
		edited.Evening = existing.Evening
	}
	if !changed("bedtime") {
		edited.Bedtime = existing.Bedtime
	}
	return edited
}

var medUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a medication in place",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("medication id", args[0])
		if err != nil {
			return err
		}
		return withSession(cmd, func(ctx context.Context, ctrl *ui.Controller) error {
			// The in-place edit needs the identifier from a prior list
			// fetch; load the list first so the index can vouch for it.
			if err := ctrl.ShowMedications(ctx); err != nil {
				return err
			}
			med := medFromFlags()
			med.MedID = id
			if existing, ok := ctrl.Medication(id); ok {
				med = mergeMedication(existing, med, cmd.Flags().Changed)
			}
			return ctrl.SaveMedication(ctx, med)
		})
	},
}

var medRefillCmd = &cobra.Command{
	Use:   "refill <id>",
	Short: "Refill a medication from its refill quantity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("medication id", args[0])
		if err != nil {
			return err
		}
		return withSession(cmd, func(ctx context.Context, ctrl *ui.Controller) error {
			if err := ctrl.ShowMedications(ctx); err != nil {
				return err
			}
			return ctrl.Refill(ctx, id)
		})
	},
}

var medTakeWindow string

var medTakeCmd = &cobra.Command{
	Use:   "take <id>",
	Short: "Record a dose as taken",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("medication id", args[0])
		if err != nil {
			return err
		}
		window, err := ui.ParseDoseWindow(medTakeWindow)
		if err != nil {
			return err
		}
		return withSession(cmd, func(ctx context.Context, ctrl *ui.Controller) error {
			return ctrl.LogDose(ctx, id, window)
		})
	},
}

var medLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the dose log",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, ctrl *ui.Controller) error {
			return ctrl.ShowDoseLogs(ctx)
		})
	},
}

var medLogUpdateWindow string

var medLogUpdateCmd = &cobra.Command{
	Use:   "log-update <id>",
	Short: "Move a dose entry to a different window",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("dose entry id", args[0])
		if err != nil {
			return err
		}
		window, err := ui.ParseDoseWindow(medLogUpdateWindow)
		if err != nil {
			return err
		}
		return withSession(cmd, func(ctx context.Context, ctrl *ui.Controller) error {
			if err := ctrl.ShowDoseLogs(ctx); err != nil {
				return err
			}
			return ctrl.UpdateDoseLog(ctx, model.DoseLog{LogID: id, Window: window})
		})
	},
}

var medLogDeleteCmd = &cobra.Command{
	Use:   "log-delete <id>",
	Short: "Delete a dose entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("dose entry id", args[0])
		if err != nil {
			return err
		}
		return withSession(cmd, func(ctx context.Context, ctrl *ui.Controller) error {
			return ctrl.DeleteDoseLog(ctx, id)
		})
	},
}

func init() {
	rootCmd.AddCommand(medCmd)
	medCmd.AddCommand(medListCmd, medAddCmd, medUpdateCmd, medRefillCmd, medTakeCmd, medLogCmd, medLogUpdateCmd, medLogDeleteCmd)

	for _, c := range []*cobra.Command{medAddCmd, medUpdateCmd} {
		c.Flags().StringVar(&medName, "name", "", "Medication name")
		c.Flags().StringVar(&medFrequency, "frequency", "", "Frequency label (e.g. daily)")
		c.Flags().StringVar(&medType, "type", "", "Medication type")
		c.Flags().IntVar(&medInventory, "inventory", 0, "Current inventory count")
		c.Flags().IntVar(&medRefills, "refills", 0, "Refills remaining")
		c.Flags().IntVar(&medRefillQty, "refill-qty", 0, "Quantity added per refill")
		c.Flags().StringVar(&medStart, "start", "", "Active from date YYYY-MM-DD")
		c.Flags().StringVar(&medEnd, "end", "", "Active to date YYYY-MM-DD")
		c.Flags().BoolVar(&medMorning, "morning", false, "Scheduled in the morning window")
		c.Flags().BoolVar(&medAfternoon, "afternoon", false, "Scheduled in the afternoon window")
		c.Flags().BoolVar(&medEvening, "evening", false, "Scheduled in the evening window")
		c.Flags().BoolVar(&medBedtime, "bedtime", false, "Scheduled in the bedtime window")
	}
	_ = medAddCmd.MarkFlagRequired("name")

	medTakeCmd.Flags().StringVar(&medTakeWindow, "window", "", "Dose window: morning, afternoon, evening, bedtime")
	_ = medTakeCmd.MarkFlagRequired("window")
	medLogUpdateCmd.Flags().StringVar(&medLogUpdateWindow, "window", "", "Dose window: morning, afternoon, evening, bedtime")
	_ = medLogUpdateCmd.MarkFlagRequired("window")
}
