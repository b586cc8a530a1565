package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/sprillex/hahealth/internal/model"
	"github.com/sprillex/hahealth/internal/ui"
)

var exerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Log and review exercise sessions",
}

var (
	exerciseActivity string
	exerciseMinutes  float64
	exerciseCalories float64
)

var exerciseLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Record an exercise session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, ctrl *ui.Controller) error {
			return ctrl.LogExercise(ctx, model.ExerciseLog{
				ActivityType:    exerciseActivity,
				DurationMinutes: exerciseMinutes,
				CaloriesBurned:  exerciseCalories,
			})
		})
	},
}

var exerciseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent exercise sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, ctrl *ui.Controller) error {
			return ctrl.ShowHealthLogs(ctx)
		})
	},
}

// mergeExercise keeps the existing record's values for any flag the
// user did not pass.
func mergeExercise(existing, edited model.ExerciseLog, changed func(string) bool) model.ExerciseLog {
	if !changed("activity") {
		edited.ActivityType = existing.ActivityType
	}
	if !changed("minutes") {
		edited.DurationMinutes = existing.DurationMinutes
	}
	if !changed("calories") {
		edited.CaloriesBurned = existing.CaloriesBurned
	}
	return edited
}

var exerciseUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an exercise session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("exercise id", args[0])
		if err != nil {
			return err
		}
		return withSession(cmd, func(ctx context.Context, ctrl *ui.Controller) error {
			if err := ctrl.ShowHealthLogs(ctx); err != nil {
				return err
			}
			ex := model.ExerciseLog{
				ExerciseID:      id,
				ActivityType:    exerciseActivity,
				DurationMinutes: exerciseMinutes,
				CaloriesBurned:  exerciseCalories,
			}
			if existing, ok := ctrl.Exercise(id); ok {
				ex = mergeExercise(existing, ex, cmd.Flags().Changed)
			}
			return ctrl.UpdateExercise(ctx, ex)
		})
	},
}

var exerciseDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an exercise session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("exercise id", args[0])
		if err != nil {
			return err
		}
		return withSession(cmd, func(ctx context.Context, ctrl *ui.Controller) error {
			return ctrl.DeleteExercise(ctx, id)
		})
	},
}

var exerciseHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show exercise history",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, ctrl *ui.Controller) error {
			return ctrl.ShowExerciseHistory(ctx)
		})
	},
}

func init() {
	rootCmd.AddCommand(exerciseCmd)
	exerciseCmd.AddCommand(exerciseLogCmd, exerciseListCmd, exerciseUpdateCmd, exerciseDeleteCmd, exerciseHistoryCmd)

	for _, c := range []*cobra.Command{exerciseLogCmd, exerciseUpdateCmd} {
		c.Flags().StringVar(&exerciseActivity, "activity", "", "Activity type (e.g. walking)")
		c.Flags().Float64Var(&exerciseMinutes, "minutes", 0, "Duration in minutes")
		c.Flags().Float64Var(&exerciseCalories, "calories", 0, "Calories burned (optional, server estimates when omitted)")
	}
	_ = exerciseLogCmd.MarkFlagRequired("activity")
	_ = exerciseLogCmd.MarkFlagRequired("minutes")
}
