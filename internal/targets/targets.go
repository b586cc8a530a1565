// Package targets derives daily nutrition targets from the user profile
// using the Mifflin-St Jeor estimate. All functions are pure; missing
// profile data degrades to zero targets rather than failing.
package targets

import (
	"math"
	"time"

	"github.com/sprillex/hahealth/internal/model"
)

// Activity multiplier applied to BMR for the sedentary baseline TDEE.
const activityFactor = 1.2

// Macro bands as fractions of target calories, with the usual kcal/g
// densities (protein and carbs 4, fat 9).
const (
	proteinLowPct  = 0.15
	proteinHighPct = 0.20
	fatLowPct      = 0.20
	fatHighPct     = 0.35
	carbsLowPct    = 0.45
	carbsHighPct   = 0.65
)

type MacroRange struct {
	LowG  int
	HighG int
}

type NutritionTargets struct {
	BMR      float64
	Calories int
	Protein  MacroRange
	Fat      MacroRange
	Carbs    MacroRange
	FiberMin int
}

// AgeYears computes the user's age at now. A full date_of_birth wins over
// the legacy birth_year, which only supports a whole-year estimate.
func AgeYears(p model.Profile, now time.Time) int {
	if p.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", p.DateOfBirth)
		if err == nil {
			years := now.Year() - dob.Year()
			if now.YearDay() < dob.YearDay() {
				years--
			}
			if years < 0 {
				years = 0
			}
			return years
		}
	}
	if p.BirthYear != nil {
		years := now.Year() - *p.BirthYear
		if years < 0 {
			years = 0
		}
		return years
	}
	return 0
}

// BMR implements Mifflin-St Jeor: 10w + 6.25h - 5a, plus 5 for male and
// minus 161 otherwise.
func BMR(weightKg, heightCm float64, ageYears int, gender string) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(ageYears)
	if gender == "male" {
		return base + 5
	}
	return base - 161
}

// TargetCalories is round(BMR x 1.2) unless the profile carries an
// explicit calorie goal, which overrides the estimate.
func TargetCalories(bmr float64, calorieGoal *int) int {
	if calorieGoal != nil && *calorieGoal > 0 {
		return *calorieGoal
	}
	return int(math.Round(bmr * activityFactor))
}

// Compute derives the full set of daily targets for a profile.
func Compute(p model.Profile, now time.Time) NutritionTargets {
	bmr := BMR(p.WeightKg, p.HeightCm, AgeYears(p, now), p.Gender)
	cal := TargetCalories(bmr, p.CalorieGoal)
	return NutritionTargets{
		BMR:      bmr,
		Calories: cal,
		Protein:  macroRange(cal, proteinLowPct, proteinHighPct, 4),
		Fat:      macroRange(cal, fatLowPct, fatHighPct, 9),
		Carbs:    macroRange(cal, carbsLowPct, carbsHighPct, 4),
		FiberMin: FiberMinG(cal),
	}
}

// FiberMinG is the 14 g per 1000 kcal guideline, rounded.
func FiberMinG(targetCalories int) int {
	return int(math.Round(float64(targetCalories) / 1000 * 14))
}

func macroRange(calories int, lowPct, highPct, kcalPerG float64) MacroRange {
	return MacroRange{
		LowG:  int(math.Round(float64(calories) * lowPct / kcalPerG)),
		HighG: int(math.Round(float64(calories) * highPct / kcalPerG)),
	}
}
