package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sprillex/hahealth/internal/model"
)

func changedOnly(names ...string) func(string) bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return func(name string) bool { return set[name] }
}

func TestMergeMedicationPreservesScheduleOnPartialEdit(t *testing.T) {
	existing := model.Medication{
		MedID: 1, Name: "Lisinopril", Frequency: "daily", Type: "tablet",
		CurrentInventory: 12, RefillsRemaining: 2, RefillQty: 90,
		StartDate: "2025-01-01", EndDate: "2025-12-31",
		Morning: true, Bedtime: true,
	}
	edited := model.Medication{MedID: 1, CurrentInventory: 20}

	merged := mergeMedication(existing, edited, changedOnly("inventory"))

	assert.Equal(t, 20, merged.CurrentInventory)
	assert.Equal(t, "Lisinopril", merged.Name)
	assert.Equal(t, "daily", merged.Frequency)
	assert.Equal(t, "tablet", merged.Type)
	assert.Equal(t, 2, merged.RefillsRemaining)
	assert.Equal(t, 90, merged.RefillQty)
	assert.Equal(t, "2025-01-01", merged.StartDate)
	assert.Equal(t, "2025-12-31", merged.EndDate)
	assert.True(t, merged.Morning)
	assert.False(t, merged.Afternoon)
	assert.False(t, merged.Evening)
	assert.True(t, merged.Bedtime)
}

func TestMergeMedicationAppliesEveryChangedFlag(t *testing.T) {
	existing := model.Medication{MedID: 1, Name: "Old", Morning: true}
	edited := model.Medication{MedID: 1, Name: "New", Morning: false, Evening: true}

	merged := mergeMedication(existing, edited, changedOnly("name", "morning", "evening"))

	assert.Equal(t, "New", merged.Name)
	assert.False(t, merged.Morning, "an explicit --morning=false must stick")
	assert.True(t, merged.Evening)
}

func TestMergeExercisePreservesUneditedFields(t *testing.T) {
	existing := model.ExerciseLog{ExerciseID: 5, ActivityType: "walking", DurationMinutes: 30, CaloriesBurned: 120}
	edited := model.ExerciseLog{ExerciseID: 5, DurationMinutes: 45}

	merged := mergeExercise(existing, edited, changedOnly("minutes"))

	assert.Equal(t, "walking", merged.ActivityType)
	assert.Equal(t, 45.0, merged.DurationMinutes)
	assert.Equal(t, 120.0, merged.CaloriesBurned)
}

func TestMergeAllergyPreservesUneditedFields(t *testing.T) {
	existing := model.Allergy{AllergyID: 3, Allergen: "Penicillin", Reaction: "hives", Severity: "severe", Notes: "since 2019"}
	edited := model.Allergy{AllergyID: 3, Severity: "moderate"}

	merged := mergeAllergy(existing, edited, changedOnly("severity"))

	assert.Equal(t, "Penicillin", merged.Allergen)
	assert.Equal(t, "hives", merged.Reaction)
	assert.Equal(t, "moderate", merged.Severity)
	assert.Equal(t, "since 2019", merged.Notes)
}
