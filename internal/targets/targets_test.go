package targets

import (
	"testing"
	"time"

	"github.com/sprillex/hahealth/internal/model"
)

func TestBMRMaleReferenceCase(t *testing.T) {
	t.Parallel()
	// 10*80 + 6.25*180 - 5*30 + 5
	if got := BMR(80, 180, 30, "male"); got != 1780 {
		t.Fatalf("expected BMR 1780, got %v", got)
	}
}

func TestBMRNonMaleSubtracts161(t *testing.T) {
	t.Parallel()
	if got := BMR(80, 180, 30, "female"); got != 1614 {
		t.Fatalf("expected BMR 1614, got %v", got)
	}
}

func TestTargetCaloriesFromBMR(t *testing.T) {
	t.Parallel()
	if got := TargetCalories(1780, nil); got != 2136 {
		t.Fatalf("expected 2136 kcal, got %d", got)
	}
}

func TestExplicitCalorieGoalOverridesEstimate(t *testing.T) {
	t.Parallel()
	goal := 1800
	if got := TargetCalories(1780, &goal); got != 1800 {
		t.Fatalf("expected goal override 1800, got %d", got)
	}
}

func TestMacroBandsForReferenceCalories(t *testing.T) {
	t.Parallel()
	p := model.Profile{
		WeightKg:    80,
		HeightCm:    180,
		Gender:      "male",
		DateOfBirth: "1995-06-01",
	}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	got := Compute(p, now)
	if got.Calories != 2136 {
		t.Fatalf("expected 2136 kcal, got %d", got.Calories)
	}
	if got.Protein.LowG != 80 || got.Protein.HighG != 107 {
		t.Fatalf("protein band: expected 80-107, got %d-%d", got.Protein.LowG, got.Protein.HighG)
	}
	if got.Fat.LowG != 47 || got.Fat.HighG != 83 {
		t.Fatalf("fat band: expected 47-83, got %d-%d", got.Fat.LowG, got.Fat.HighG)
	}
	if got.Carbs.LowG != 240 || got.Carbs.HighG != 347 {
		t.Fatalf("carbs band: expected 240-347, got %d-%d", got.Carbs.LowG, got.Carbs.HighG)
	}
	if got.FiberMin != 30 {
		t.Fatalf("fiber minimum: expected 30, got %d", got.FiberMin)
	}
}

func TestAgeYearsPrefersDateOfBirth(t *testing.T) {
	t.Parallel()
	year := 1990
	p := model.Profile{DateOfBirth: "1995-09-15", BirthYear: &year}
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	if got := AgeYears(p, now); got != 29 {
		t.Fatalf("expected age 29 from date_of_birth, got %d", got)
	}
}

func TestAgeYearsFallsBackToBirthYear(t *testing.T) {
	t.Parallel()
	year := 1990
	p := model.Profile{BirthYear: &year}
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	if got := AgeYears(p, now); got != 35 {
		t.Fatalf("expected age 35 from birth_year, got %d", got)
	}
}

func TestAgeYearsWithoutBirthDataIsZero(t *testing.T) {
	t.Parallel()
	if got := AgeYears(model.Profile{}, time.Now()); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}
