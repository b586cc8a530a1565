package ui

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/sprillex/hahealth/internal/model"
	"github.com/sprillex/hahealth/internal/render"
	"github.com/sprillex/hahealth/internal/store"
)

const defaultRefillQuantity = 30

// SaveMedication creates or updates a medication. Updates resolve through
// the index maintained by the last list fetch; an identifier the index
// does not know is rejected before any request goes out.
func (c *Controller) SaveMedication(ctx context.Context, med model.Medication) error {
	if med.MedID != 0 {
		if _, ok := c.meds[med.MedID]; !ok {
			err := fmt.Errorf("medication %d is not in the current list; refresh medications first", med.MedID)
			c.Notifier.Notify("save medication", render.Failure(err))
			return err
		}
		saved, err := c.API.UpdateMedication(ctx, med)
		if err != nil {
			c.Notifier.Notify("save medication", render.Failure(err))
			return err
		}
		c.meds[saved.MedID] = saved
		c.Notifier.Notify("save medication", render.Success("updated "+saved.Name))
		return c.ShowMedications(ctx)
	}

	saved, err := c.API.CreateMedication(ctx, med)
	if err != nil {
		c.Notifier.Notify("save medication", render.Failure(err))
		return err
	}
	c.Notifier.Notify("save medication", render.Success("added "+saved.Name))
	return c.ShowMedications(ctx)
}

// Refill posts the medication's own refill quantity, falling back to the
// historical default of 30.
func (c *Controller) Refill(ctx context.Context, medID int64) error {
	qty := defaultRefillQuantity
	if med, ok := c.meds[medID]; ok && med.RefillQty > 0 {
		qty = med.RefillQty
	}
	med, err := c.API.RefillMedication(ctx, medID, qty)
	if err != nil {
		c.Notifier.Notify("refill medication", render.Failure(err))
		return err
	}
	c.meds[med.MedID] = med
	c.Notifier.Notify("refill medication", render.Success(fmt.Sprintf("%s stock now %d", med.Name, med.CurrentInventory)))
	return c.ShowMedications(ctx)
}

func (c *Controller) LogBP(ctx context.Context, bp model.BloodPressure) error {
	if _, err := c.API.LogBloodPressure(ctx, bp); err != nil {
		c.Notifier.Notify("log blood pressure", render.Failure(err))
		return err
	}
	c.Notifier.Notify("log blood pressure", render.Success(fmt.Sprintf("%d/%d recorded", bp.Systolic, bp.Diastolic)))
	return nil
}

func (c *Controller) LogExercise(ctx context.Context, ex model.ExerciseLog) error {
	if _, err := c.API.LogExercise(ctx, ex); err != nil {
		c.Notifier.Notify("log exercise", render.Failure(err))
		return err
	}
	c.Notifier.Notify("log exercise", render.Success(ex.ActivityType+" recorded"))
	return nil
}

func (c *Controller) UpdateExercise(ctx context.Context, ex model.ExerciseLog) error {
	if _, ok := c.exercise[ex.ExerciseID]; !ok {
		err := fmt.Errorf("exercise %d is not in the current list; refresh health logs first", ex.ExerciseID)
		c.Notifier.Notify("update exercise", render.Failure(err))
		return err
	}
	saved, err := c.API.UpdateExercise(ctx, ex)
	if err != nil {
		c.Notifier.Notify("update exercise", render.Failure(err))
		return err
	}
	c.exercise[saved.ExerciseID] = saved
	c.Notifier.Notify("update exercise", render.Success("updated"))
	return nil
}

func (c *Controller) DeleteExercise(ctx context.Context, id int64) error {
	if err := c.API.DeleteExercise(ctx, id); err != nil {
		c.Notifier.Notify("delete exercise", render.Failure(err))
		return err
	}
	delete(c.exercise, id)
	c.Notifier.Notify("delete exercise", render.Success("deleted"))
	return nil
}

func (c *Controller) LogFood(ctx context.Context, entry model.FoodLogRequest) error {
	if err := c.API.LogFood(ctx, entry); err != nil {
		c.Notifier.Notify("log food", render.Failure(err))
		return err
	}
	c.Notifier.Notify("log food", render.Success(entry.MealID+" entry recorded"))
	return nil
}

func (c *Controller) CreateFood(ctx context.Context, food model.FoodItem) error {
	saved, err := c.API.CreateFood(ctx, food)
	if err != nil {
		c.Notifier.Notify("add food", render.Failure(err))
		return err
	}
	c.Notifier.Notify("add food", render.Success("added "+saved.FoodName))
	return nil
}

func (c *Controller) ShowFoodLog(ctx context.Context, id int64) error {
	entry, err := c.API.GetFoodLog(ctx, id)
	if err != nil {
		c.Notifier.Notify("load food entry", render.Failure(err))
		return err
	}
	render.FoodTable(c.Out, []model.FoodLogEntry{entry})
	return nil
}

func (c *Controller) UpdateFoodLog(ctx context.Context, entry model.FoodLogEntry) error {
	saved, err := c.API.UpdateFoodLog(ctx, entry)
	if err != nil {
		c.Notifier.Notify("update food entry", render.Failure(err))
		return err
	}
	c.Notifier.Notify("update food entry", render.Success("updated "+saved.FoodName))
	return nil
}

func (c *Controller) DeleteFoodLog(ctx context.Context, id int64) error {
	if err := c.API.DeleteFoodLog(ctx, id); err != nil {
		c.Notifier.Notify("delete food entry", render.Failure(err))
		return err
	}
	c.Notifier.Notify("delete food entry", render.Success("deleted"))
	return nil
}

func (c *Controller) SearchFoods(ctx context.Context, query string) error {
	items, err := c.API.SearchFoods(ctx, query)
	if err != nil {
		c.Notifier.Notify("search foods", render.Failure(err))
		return err
	}
	render.FoodSearchTable(c.Out, items)
	return nil
}

func (c *Controller) ShowBPHistory(ctx context.Context) error {
	history, err := c.API.BPHistory(ctx)
	if err != nil {
		c.Notifier.Notify("load blood pressure history", render.Failure(err))
		return err
	}
	render.BPHistoryTable(c.Out, history)
	return nil
}

func (c *Controller) ShowExerciseHistory(ctx context.Context) error {
	logs, err := c.API.ExerciseHistory(ctx)
	if err != nil {
		c.Notifier.Notify("load exercise history", render.Failure(err))
		return err
	}
	render.ExerciseTable(c.Out, logs)
	return nil
}

func (c *Controller) LogDose(ctx context.Context, medID int64, window string) error {
	log := model.DoseLog{MedID: medID, Window: window}
	if _, err := c.API.LogDose(ctx, log); err != nil {
		c.Notifier.Notify("log dose", render.Failure(err))
		return err
	}
	c.Notifier.Notify("log dose", render.Success("dose recorded"))
	return nil
}

func (c *Controller) ShowDoseLogs(ctx context.Context) error {
	logs, err := c.API.ListDoseLogs(ctx)
	if err != nil {
		c.Notifier.Notify("load dose log", render.Failure(err))
		return err
	}
	c.indexDoseLogs(logs)
	render.DoseLogTable(c.Out, logs)
	return nil
}

func (c *Controller) UpdateDoseLog(ctx context.Context, log model.DoseLog) error {
	existing, ok := c.doseLogs[log.LogID]
	if !ok {
		err := fmt.Errorf("dose entry %d is not in the current list; refresh the dose log first", log.LogID)
		c.Notifier.Notify("update dose entry", render.Failure(err))
		return err
	}
	if log.MedID == 0 {
		log.MedID = existing.MedID
	}
	saved, err := c.API.UpdateDoseLog(ctx, log)
	if err != nil {
		c.Notifier.Notify("update dose entry", render.Failure(err))
		return err
	}
	c.doseLogs[saved.LogID] = saved
	c.Notifier.Notify("update dose entry", render.Success("updated"))
	return nil
}

func (c *Controller) DeleteDoseLog(ctx context.Context, id int64) error {
	if err := c.API.DeleteDoseLog(ctx, id); err != nil {
		c.Notifier.Notify("delete dose entry", render.Failure(err))
		return err
	}
	delete(c.doseLogs, id)
	c.Notifier.Notify("delete dose entry", render.Success("deleted"))
	return nil
}

func (c *Controller) ShowAllergies(ctx context.Context) error {
	allergies, err := c.API.ListAllergies(ctx)
	if err != nil {
		c.Notifier.Notify("load allergies", render.Failure(err))
		return err
	}
	c.indexAllergies(allergies)
	render.AllergyTable(c.Out, allergies)
	return nil
}

func (c *Controller) SaveAllergy(ctx context.Context, allergy model.Allergy) error {
	if allergy.AllergyID != 0 {
		if _, ok := c.allergies[allergy.AllergyID]; !ok {
			err := fmt.Errorf("allergy %d is not in the current list; refresh allergies first", allergy.AllergyID)
			c.Notifier.Notify("save allergy", render.Failure(err))
			return err
		}
		saved, err := c.API.UpdateAllergy(ctx, allergy)
		if err != nil {
			c.Notifier.Notify("save allergy", render.Failure(err))
			return err
		}
		c.allergies[saved.AllergyID] = saved
		c.Notifier.Notify("save allergy", render.Success("updated "+saved.Allergen))
		return nil
	}
	saved, err := c.API.CreateAllergy(ctx, allergy)
	if err != nil {
		c.Notifier.Notify("save allergy", render.Failure(err))
		return err
	}
	c.allergies[saved.AllergyID] = saved
	c.Notifier.Notify("save allergy", render.Success("added "+saved.Allergen))
	return nil
}

func (c *Controller) DeleteAllergy(ctx context.Context, id int64) error {
	if err := c.API.DeleteAllergy(ctx, id); err != nil {
		c.Notifier.Notify("delete allergy", render.Failure(err))
		return err
	}
	delete(c.allergies, id)
	c.Notifier.Notify("delete allergy", render.Success("deleted"))
	return nil
}

func (c *Controller) LogVaccination(ctx context.Context, vac model.Vaccination) error {
	if _, err := c.API.LogVaccination(ctx, vac); err != nil {
		c.Notifier.Notify("log vaccination", render.Failure(err))
		return err
	}
	c.Notifier.Notify("log vaccination", render.Success(vac.VaccineType+" recorded"))
	return nil
}

// UpdateProfile pushes a profile change and refreshes the cached user.
func (c *Controller) UpdateProfile(ctx context.Context, update model.ProfileUpdate) error {
	profile, err := c.API.UpdateUser(ctx, update)
	if err != nil {
		c.Notifier.Notify("update profile", render.Failure(err))
		return err
	}
	c.Session.SetUser(profile)
	c.Notifier.Notify("update profile", render.Success("saved"))
	return nil
}

func (c *Controller) ChangePassword(ctx context.Context, current, newPassword, confirm string) error {
	if err := c.API.ChangePassword(ctx, current, newPassword, confirm); err != nil {
		c.Notifier.Notify("change password", render.Failure(err))
		return err
	}
	c.Notifier.Notify("change password", render.Success("updated"))
	return nil
}

// SetTheme applies the preference locally first, then persists it to the
// server profile best-effort. A persist failure is logged, never
// surfaced, and does not roll the local preference back.
func (c *Controller) SetTheme(ctx context.Context, pref string) error {
	if !render.ValidTheme(pref) {
		err := fmt.Errorf("invalid theme %q (expected light, dark, or system)", pref)
		c.Notifier.Notify("set theme", render.Failure(err))
		return err
	}
	if err := c.Store.Set(store.KeyTheme, pref); err != nil {
		c.Notifier.Notify("set theme", render.Failure(err))
		return err
	}
	c.Notifier.Notify("set theme", render.Success(pref))

	update := model.ProfileUpdate{Theme: &pref}
	if _, err := c.API.UpdateUser(ctx, update); err != nil {
		c.Logger.Warn("persist theme to profile failed", zap.String("theme", pref), zap.Error(err))
	}
	return nil
}

// ActiveTheme resolves the effective palette from the stored preference.
func (c *Controller) ActiveTheme() string {
	pref, err := c.Store.Get(store.KeyTheme)
	if err != nil {
		c.Logger.Warn("read theme preference failed", zap.Error(err))
		pref = model.ThemeSystem
	}
	return render.ResolveTheme(pref, render.SystemPrefersDark)
}

// ExportBPHistory fetches the full history and writes the CSV file. An
// empty history is refused before any file is created.
func (c *Controller) ExportBPHistory(ctx context.Context, path string) error {
	history, err := c.API.BPHistory(ctx)
	if err != nil {
		c.Notifier.Notify("export blood pressure history", render.Failure(err))
		return err
	}
	if len(history) == 0 {
		err := fmt.Errorf("no blood pressure history to export")
		c.Notifier.Notify("export blood pressure history", render.Failure(err))
		return err
	}
	if path == "" {
		path = render.BPExportFilename
	}
	f, err := os.Create(path)
	if err != nil {
		c.Notifier.Notify("export blood pressure history", render.Failure(err))
		return err
	}
	defer f.Close()
	if err := render.WriteBPHistoryCSV(f, history); err != nil {
		c.Notifier.Notify("export blood pressure history", render.Failure(err))
		return err
	}
	c.Notifier.Notify("export blood pressure history",
		render.Success(fmt.Sprintf("%d rows written to %s", len(history), path)))
	return nil
}

// ShiftDashboardDate moves only the dashboard's date context and
// reloads that single view.
func (c *Controller) ShiftDashboardDate(ctx context.Context, days int) error {
	c.Session.ShiftDashboardDate(days)
	return c.ShowDashboard(ctx)
}

// ParseDoseWindow validates a dose window name.
func ParseDoseWindow(name string) (string, error) {
	for _, w := range model.DoseWindows {
		if w == name {
			return w, nil
		}
	}
	return "", fmt.Errorf("invalid dose window %q (expected morning, afternoon, evening, or bedtime)", name)
}
