package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/sprillex/hahealth/internal/model"
	"github.com/sprillex/hahealth/internal/ui"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Search the food database and manage the food log",
}

var foodSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search foods by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, ctrl *ui.Controller) error {
			return ctrl.SearchFoods(ctx, args[0])
		})
	},
}

var foodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List known foods",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, ctrl *ui.Controller) error {
			return ctrl.ShowNutrition(ctx)
		})
	},
}

var (
	foodName     string
	foodBarcode  string
	foodCalories float64
	foodProtein  float64
	foodFat      float64
	foodCarbs    float64
	foodFiber    float64
)

var foodAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a custom food",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, ctrl *ui.Controller) error {
			return ctrl.CreateFood(ctx, model.FoodItem{
				FoodName: foodName,
				Barcode:  foodBarcode,
				Calories: foodCalories,
				Protein:  foodProtein,
				Fat:      foodFat,
				Carbs:    foodCarbs,
				Fiber:    foodFiber,
			})
		})
	},
}

var (
	foodLogName     string
	foodLogBarcode  string
	foodLogServing  float64
	foodLogQuantity float64
	foodLogMeal     string
)

var foodLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Record a food log entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, ctrl *ui.Controller) error {
			return ctrl.LogFood(ctx, model.FoodLogRequest{
				FoodName:    foodLogName,
				Barcode:     foodLogBarcode,
				ServingSize: foodLogServing,
				Quantity:    foodLogQuantity,
				MealID:      foodLogMeal,
			})
		})
	},
}

var foodEntryCmd = &cobra.Command{
	Use:   "entry <id>",
	Short: "Show a food log entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("food entry id", args[0])
		if err != nil {
			return err
		}
		return withSession(cmd, func(ctx context.Context, ctrl *ui.Controller) error {
			return ctrl.ShowFoodLog(ctx, id)
		})
	},
}

var foodEntryQuantity float64

var foodEntryUpdateCmd = &cobra.Command{
	Use:   "entry-update <id>",
	Short: "Update a food log entry's quantity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("food entry id", args[0])
		if err != nil {
			return err
		}
		return withSession(cmd, func(ctx context.Context, ctrl *ui.Controller) error {
			return ctrl.UpdateFoodLog(ctx, model.FoodLogEntry{EntryID: id, Quantity: foodEntryQuantity})
		})
	},
}

var foodEntryDeleteCmd = &cobra.Command{
	Use:   "entry-delete <id>",
	Short: "Delete a food log entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("food entry id", args[0])
		if err != nil {
			return err
		}
		return withSession(cmd, func(ctx context.Context, ctrl *ui.Controller) error {
			return ctrl.DeleteFoodLog(ctx, id)
		})
	},
}

func init() {
	rootCmd.AddCommand(foodCmd)
	foodCmd.AddCommand(foodSearchCmd, foodListCmd, foodAddCmd, foodLogCmd, foodEntryCmd, foodEntryUpdateCmd, foodEntryDeleteCmd)

	foodAddCmd.Flags().StringVar(&foodName, "name", "", "Food name")
	foodAddCmd.Flags().StringVar(&foodBarcode, "barcode", "", "Barcode (optional)")
	foodAddCmd.Flags().Float64Var(&foodCalories, "calories", 0, "Calories per serving")
	foodAddCmd.Flags().Float64Var(&foodProtein, "protein", 0, "Protein g")
	foodAddCmd.Flags().Float64Var(&foodFat, "fat", 0, "Fat g")
	foodAddCmd.Flags().Float64Var(&foodCarbs, "carbs", 0, "Carbs g")
	foodAddCmd.Flags().Float64Var(&foodFiber, "fiber", 0, "Fiber g")
	_ = foodAddCmd.MarkFlagRequired("name")

	foodLogCmd.Flags().StringVar(&foodLogName, "name", "", "Food name (or use --barcode)")
	foodLogCmd.Flags().StringVar(&foodLogBarcode, "barcode", "", "Barcode")
	foodLogCmd.Flags().Float64Var(&foodLogServing, "serving", 1, "Serving size")
	foodLogCmd.Flags().Float64Var(&foodLogQuantity, "quantity", 1, "Number of servings")
	foodLogCmd.Flags().StringVar(&foodLogMeal, "meal", "Snack", "Meal: Breakfast, Lunch, Dinner, Snack")

	foodEntryUpdateCmd.Flags().Float64Var(&foodEntryQuantity, "quantity", 1, "Number of servings")
	_ = foodEntryUpdateCmd.MarkFlagRequired("quantity")
}
