package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sprillex/hahealth/internal/model"
	"github.com/sprillex/hahealth/internal/ui"
	"github.com/sprillex/hahealth/internal/units"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show and update your profile and settings",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the profile with derived nutrition targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, ctrl *ui.Controller) error {
			return ctrl.ShowSettings(ctx)
		})
	},
}

var (
	profileWeight      float64
	profileHeight      float64
	profileGoalWeight  float64
	profileUnits       string
	profileGender      string
	profileDOB         string
	profileBirthYear   int
	profileCalorieGoal int
	profileTimezone    string
)

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update profile fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, ctrl *ui.Controller) error {
			// Inputs arrive in the profile's display units and are
			// converted to metric before they leave the client.
			imperial := ctrl.Session.User().UnitSystem == model.UnitImperial

			var update model.ProfileUpdate
			if cmd.Flags().Changed("weight") {
				kg := units.InputWeightKg(profileWeight, imperial)
				update.WeightKg = &kg
			}
			if cmd.Flags().Changed("height") {
				cm := units.InputHeightCm(profileHeight, imperial)
				update.HeightCm = &cm
			}
			if cmd.Flags().Changed("goal-weight") {
				kg := units.InputWeightKg(profileGoalWeight, imperial)
				update.GoalWeightKg = &kg
			}
			if cmd.Flags().Changed("units") {
				if profileUnits != model.UnitMetric && profileUnits != model.UnitImperial {
					return fmt.Errorf("invalid unit system %q (expected METRIC or IMPERIAL)", profileUnits)
				}
				update.UnitSystem = &profileUnits
			}
			if cmd.Flags().Changed("gender") {
				update.Gender = &profileGender
			}
			if cmd.Flags().Changed("birth-date") {
				if err := validDate(profileDOB); err != nil {
					return err
				}
				update.DateOfBirth = &profileDOB
			}
			if cmd.Flags().Changed("birth-year") {
				update.BirthYear = &profileBirthYear
			}
			if cmd.Flags().Changed("calorie-goal") {
				update.CalorieGoal = &profileCalorieGoal
			}
			if cmd.Flags().Changed("timezone") {
				update.Timezone = &profileTimezone
			}
			return ctrl.UpdateProfile(ctx, update)
		})
	},
}

var profilePasswordCmd = &cobra.Command{
	Use:   "password",
	Short: "Change the account password",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, ctrl *ui.Controller) error {
			current, err := promptLine(cmd, "Current password")
			if err != nil {
				return err
			}
			next, err := promptLine(cmd, "New password")
			if err != nil {
				return err
			}
			confirm, err := promptLine(cmd, "Confirm new password")
			if err != nil {
				return err
			}
			return ctrl.ChangePassword(ctx, current, next, confirm)
		})
	},
}

var (
	scheduleMorning   string
	scheduleAfternoon string
	scheduleEvening   string
	scheduleBedtime   string
)

var profileScheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Set the dose window start times",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, ctrl *ui.Controller) error {
			var update model.ProfileUpdate
			if cmd.Flags().Changed("morning") {
				update.MorningStart = &scheduleMorning
			}
			if cmd.Flags().Changed("afternoon") {
				update.AfternoonStart = &scheduleAfternoon
			}
			if cmd.Flags().Changed("evening") {
				update.EveningStart = &scheduleEvening
			}
			if cmd.Flags().Changed("bedtime") {
				update.BedtimeStart = &scheduleBedtime
			}
			return ctrl.UpdateProfile(ctx, update)
		})
	},
}

var themeCmd = &cobra.Command{
	Use:   "theme [light|dark|system]",
	Short: "Show or set the theme preference",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, ctrl *ui.Controller) error {
			if len(args) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Active theme: %s\n", ctrl.ActiveTheme())
				return nil
			}
			return ctrl.SetTheme(ctx, args[0])
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileShowCmd, profileUpdateCmd, profilePasswordCmd, profileScheduleCmd, themeCmd)

	profileUpdateCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Weight in your display units")
	profileUpdateCmd.Flags().Float64Var(&profileHeight, "height", 0, "Height in your display units")
	profileUpdateCmd.Flags().Float64Var(&profileGoalWeight, "goal-weight", 0, "Goal weight in your display units")
	profileUpdateCmd.Flags().StringVar(&profileUnits, "units", "", "Unit system: METRIC or IMPERIAL")
	profileUpdateCmd.Flags().StringVar(&profileGender, "gender", "", "Gender")
	profileUpdateCmd.Flags().StringVar(&profileDOB, "birth-date", "", "Date of birth YYYY-MM-DD")
	profileUpdateCmd.Flags().IntVar(&profileBirthYear, "birth-year", 0, "Birth year (legacy; prefer --birth-date)")
	profileUpdateCmd.Flags().IntVar(&profileCalorieGoal, "calorie-goal", 0, "Daily calorie goal (overrides the estimate)")
	profileUpdateCmd.Flags().StringVar(&profileTimezone, "timezone", "", "IANA timezone name")

	profileScheduleCmd.Flags().StringVar(&scheduleMorning, "morning", "", "Morning window start HH:MM")
	profileScheduleCmd.Flags().StringVar(&scheduleAfternoon, "afternoon", "", "Afternoon window start HH:MM")
	profileScheduleCmd.Flags().StringVar(&scheduleEvening, "evening", "", "Evening window start HH:MM")
	profileScheduleCmd.Flags().StringVar(&scheduleBedtime, "bedtime", "", "Bedtime window start HH:MM")
}
