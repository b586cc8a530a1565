package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/sprillex/hahealth/internal/model"
	"github.com/sprillex/hahealth/internal/targets"
	"github.com/sprillex/hahealth/internal/units"
)

// MedicationCards renders the medication list the way the dashboard
// showed its cards: name, frequency, type, stock, refills, and the dose
// windows the medication is scheduled into.
func MedicationCards(w io.Writer, meds []model.Medication) {
	if len(meds) == 0 {
		fmt.Fprintln(w, "No medications on file.")
		return
	}
	for _, m := range meds {
		fmt.Fprintf(w, "[%d] %s\n", m.MedID, m.Name)
		fmt.Fprintf(w, "    Freq: %s | Type: %s\n", m.Frequency, m.Type)
		fmt.Fprintf(w, "    Stock: %d (Refills: %d)\n", m.CurrentInventory, m.RefillsRemaining)
		if windows := doseWindowLabels(m); windows != "" {
			fmt.Fprintf(w, "    Windows: %s\n", windows)
		}
		if m.StartDate != "" || m.EndDate != "" {
			fmt.Fprintf(w, "    Active: %s .. %s\n", m.StartDate, m.EndDate)
		}
	}
}

func doseWindowLabels(m model.Medication) string {
	var out []string
	for _, w := range []struct {
		name string
		on   bool
	}{
		{"morning", m.Morning},
		{"afternoon", m.Afternoon},
		{"evening", m.Evening},
		{"bedtime", m.Bedtime},
	} {
		if w.on {
			out = append(out, w.name)
		}
	}
	return strings.Join(out, ", ")
}

func BPHistoryTable(w io.Writer, history []model.BloodPressure) {
	fmt.Fprintln(w, "DATE\tSYS\tDIA\tPULSE\tLOCATION\tSTRESS\tMEDS BEFORE")
	for _, bp := range history {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\t%d\t%s\n",
			bp.Timestamp, bp.Systolic, bp.Diastolic, bp.Pulse, bp.Location, bp.StressLevel, bp.MedsTakenBefore)
	}
}

func ExerciseTable(w io.Writer, logs []model.ExerciseLog) {
	fmt.Fprintln(w, "ID\tDATE\tACTIVITY\tMIN\tKCAL")
	for _, e := range logs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.0f\t%.0f\n",
			e.ExerciseID, e.Timestamp, e.ActivityType, e.DurationMinutes, e.CaloriesBurned)
	}
}

func FoodTable(w io.Writer, entries []model.FoodLogEntry) {
	fmt.Fprintln(w, "ID\tMEAL\tFOOD\tQTY\tKCAL\tP\tC\tF")
	for _, f := range entries {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.1f\t%.0f\t%.1f\t%.1f\t%.1f\n",
			f.EntryID, f.MealID, f.FoodName, f.Quantity, f.Calories, f.Protein, f.Carbs, f.Fat)
	}
}

func FoodSearchTable(w io.Writer, items []model.FoodItem) {
	fmt.Fprintln(w, "ID\tFOOD\tKCAL\tP\tC\tF\tSOURCE")
	for _, f := range items {
		fmt.Fprintf(w, "%d\t%s\t%.0f\t%.1f\t%.1f\t%.1f\t%s\n",
			f.FoodID, f.FoodName, f.Calories, f.Protein, f.Carbs, f.Fat, f.Source)
	}
}

func AllergyTable(w io.Writer, allergies []model.Allergy) {
	fmt.Fprintln(w, "ID\tALLERGEN\tREACTION\tSEVERITY\tNOTES")
	for _, a := range allergies {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", a.AllergyID, a.Allergen, a.Reaction, a.Severity, a.Notes)
	}
}

func VaccinationReportTable(w io.Writer, rows []model.VaccinationStatus) {
	fmt.Fprintln(w, "VACCINE\tLAST DATE\tSTATUS\tNEXT DUE")
	for _, r := range rows {
		last := r.LastDate
		if last == "" {
			last = "-"
		}
		next := r.NextDue
		if next == "" {
			next = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.VaccineType, last, r.Status, next)
	}
}

func DoseLogTable(w io.Writer, logs []model.DoseLog) {
	fmt.Fprintln(w, "ID\tMEDICATION\tWINDOW\tTAKEN AT")
	for _, d := range logs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", d.LogID, d.MedName, d.Window, d.TakenAt)
	}
}

// DailySummaryView renders the dashboard for one date: the BP reading,
// calorie and macro gauges against the profile-derived targets, and the
// day's exercise and food lists.
func DailySummaryView(w io.Writer, s model.DailySummary, tg targets.NutritionTargets) {
	fmt.Fprintf(w, "Summary for %s\n", s.Date)
	if s.BloodPressure != nil {
		fmt.Fprintf(w, "BP: %d/%d pulse %d\n",
			s.BloodPressure.Systolic, s.BloodPressure.Diastolic, s.BloodPressure.Pulse)
	} else {
		fmt.Fprintln(w, "BP: no reading")
	}
	fmt.Fprintln(w, GaugeBar("Calories", s.CaloriesConsumed, float64(tg.Calories), 20))
	fmt.Fprintln(w, GaugeBar("Protein", s.ProteinG, float64(tg.Protein.HighG), 20))
	fmt.Fprintln(w, GaugeBar("Carbs", s.CarbsG, float64(tg.Carbs.HighG), 20))
	fmt.Fprintln(w, GaugeBar("Fat", s.FatG, float64(tg.Fat.HighG), 20))
	fmt.Fprintf(w, "Burned: %.0f kcal\n", s.CaloriesBurned)
	if len(s.Exercises) > 0 {
		fmt.Fprintln(w, "Exercise:")
		ExerciseTable(w, s.Exercises)
	}
	if len(s.Foods) > 0 {
		fmt.Fprintln(w, "Food:")
		FoodTable(w, s.Foods)
	}
}

// ProfileView renders the profile with quantities converted to the
// profile's display unit system.
func ProfileView(w io.Writer, p model.Profile, tg targets.NutritionTargets) {
	imperial := p.UnitSystem == model.UnitImperial
	weight, weightUnit := units.DisplayWeight(p.WeightKg, imperial)
	height, heightUnit := units.DisplayHeight(p.HeightCm, imperial)

	fmt.Fprintf(w, "Name: %s\n", p.Name)
	fmt.Fprintf(w, "Units: %s\n", p.UnitSystem)
	fmt.Fprintf(w, "Weight: %.1f %s\n", weight, weightUnit)
	fmt.Fprintf(w, "Height: %.1f %s\n", height, heightUnit)
	if p.GoalWeightKg != nil {
		goal, unit := units.DisplayWeight(*p.GoalWeightKg, imperial)
		fmt.Fprintf(w, "Goal weight: %.1f %s\n", goal, unit)
	}
	if p.Timezone != "" {
		fmt.Fprintf(w, "Timezone: %s\n", p.Timezone)
	}
	fmt.Fprintf(w, "Daily target: %d kcal (BMR %.0f)\n", tg.Calories, tg.BMR)
	fmt.Fprintf(w, "Protein %d-%d g | Carbs %d-%d g | Fat %d-%d g | Fiber >= %d g\n",
		tg.Protein.LowG, tg.Protein.HighG, tg.Carbs.LowG, tg.Carbs.HighG,
		tg.Fat.LowG, tg.Fat.HighG, tg.FiberMin)
	if p.MorningStart != "" || p.AfternoonStart != "" || p.EveningStart != "" || p.BedtimeStart != "" {
		fmt.Fprintf(w, "Dose windows: morning %s | afternoon %s | evening %s | bedtime %s\n",
			p.MorningStart, p.AfternoonStart, p.EveningStart, p.BedtimeStart)
	}
}
