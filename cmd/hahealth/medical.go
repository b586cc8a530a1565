package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/sprillex/hahealth/internal/model"
	"github.com/sprillex/hahealth/internal/ui"
)

var allergyCmd = &cobra.Command{
	Use:   "allergy",
	Short: "Manage allergy records",
}

var (
	allergyAllergen string
	allergyReaction string
	allergySeverity string
	allergyNotes    string
)

var allergyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List allergies",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, ctrl *ui.Controller) error {
			return ctrl.ShowAllergies(ctx)
		})
	},
}

var allergyAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an allergy",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, ctrl *ui.Controller) error {
			return ctrl.SaveAllergy(ctx, model.Allergy{
				Allergen: allergyAllergen,
				Reaction: allergyReaction,
				Severity: allergySeverity,
				Notes:    allergyNotes,
			})
		})
	},
}

// mergeAllergy keeps the existing record's values for any flag the user
// did not pass.
func mergeAllergy(existing, edited model.Allergy, changed func(string) bool) model.Allergy {
	if !changed("allergen") {
		edited.Allergen = existing.Allergen
	}
	if !changed("reaction") {
		edited.Reaction = existing.Reaction
	}
	if !changed("severity") {
		edited.Severity = existing.Severity
	}
	if !changed("notes") {
		edited.Notes = existing.Notes
	}
	return edited
}

var allergyUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an allergy",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("allergy id", args[0])
		if err != nil {
			return err
		}
		return withSession(cmd, func(ctx context.Context, ctrl *ui.Controller) error {
			if err := ctrl.ShowAllergies(ctx); err != nil {
				return err
			}
			allergy := model.Allergy{
				AllergyID: id,
				Allergen:  allergyAllergen,
				Reaction:  allergyReaction,
				Severity:  allergySeverity,
				Notes:     allergyNotes,
			}
			if existing, ok := ctrl.Allergy(id); ok {
				allergy = mergeAllergy(existing, allergy, cmd.Flags().Changed)
			}
			return ctrl.SaveAllergy(ctx, allergy)
		})
	},
}

var allergyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an allergy",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("allergy id", args[0])
		if err != nil {
			return err
		}
		return withSession(cmd, func(ctx context.Context, ctrl *ui.Controller) error {
			return ctrl.DeleteAllergy(ctx, id)
		})
	},
}

var vaccinationCmd = &cobra.Command{
	Use:   "vaccination",
	Short: "Log vaccinations and review their status",
}

var (
	vaccinationType  string
	vaccinationDate  string
	vaccinationNotes string
)

var vaccinationAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a vaccination",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validDate(vaccinationDate); err != nil {
			return err
		}
		return withSession(cmd, func(ctx context.Context, ctrl *ui.Controller) error {
			return ctrl.LogVaccination(ctx, model.Vaccination{
				VaccineType:      vaccinationType,
				DateAdministered: vaccinationDate,
				Notes:            vaccinationNotes,
			})
		})
	},
}

var vaccinationReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show vaccination status report",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, ctrl *ui.Controller) error {
			return ctrl.ShowReports(ctx)
		})
	},
}

func init() {
	rootCmd.AddCommand(allergyCmd, vaccinationCmd)
	allergyCmd.AddCommand(allergyListCmd, allergyAddCmd, allergyUpdateCmd, allergyDeleteCmd)
	vaccinationCmd.AddCommand(vaccinationAddCmd, vaccinationReportCmd)

	for _, c := range []*cobra.Command{allergyAddCmd, allergyUpdateCmd} {
		c.Flags().StringVar(&allergyAllergen, "allergen", "", "Allergen name")
		c.Flags().StringVar(&allergyReaction, "reaction", "", "Reaction description")
		c.Flags().StringVar(&allergySeverity, "severity", "", "Severity (mild, moderate, severe)")
		c.Flags().StringVar(&allergyNotes, "notes", "", "Notes")
	}
	_ = allergyAddCmd.MarkFlagRequired("allergen")

	vaccinationAddCmd.Flags().StringVar(&vaccinationType, "type", "", "Vaccine type (e.g. Influenza, Tdap, Shingles Dose 1)")
	vaccinationAddCmd.Flags().StringVar(&vaccinationDate, "date", "", "Date administered YYYY-MM-DD")
	vaccinationAddCmd.Flags().StringVar(&vaccinationNotes, "notes", "", "Notes")
	_ = vaccinationAddCmd.MarkFlagRequired("type")
	_ = vaccinationAddCmd.MarkFlagRequired("date")
}
