// Package ui is the view controller: it owns the session state, wires
// the named views to their data fetches, and keeps the per-view record
// indexes that edit and refill operations resolve identifiers through.
package ui

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/sprillex/hahealth/internal/api"
	"github.com/sprillex/hahealth/internal/model"
	"github.com/sprillex/hahealth/internal/render"
	"github.com/sprillex/hahealth/internal/session"
	"github.com/sprillex/hahealth/internal/store"
	"github.com/sprillex/hahealth/internal/targets"
)

type View string

const (
	ViewDashboard   View = "dashboard"
	ViewMedications View = "medications"
	ViewNutrition   View = "nutrition"
	ViewHealthLogs  View = "health-logs"
	ViewReports     View = "reports"
	ViewSettings    View = "settings"
	ViewAdmin       View = "admin"
)

// Views lists every reachable view. There are no transition guards; any
// view is reachable from any other.
var Views = []View{
	ViewDashboard, ViewMedications, ViewNutrition,
	ViewHealthLogs, ViewReports, ViewSettings, ViewAdmin,
}

type Controller struct {
	Session  *session.Session
	API      *api.Client
	Store    *store.Store
	Notifier render.Notifier
	Logger   *zap.Logger
	Out      io.Writer

	current View
	gen     map[View]uint64

	meds      map[int64]model.Medication
	allergies map[int64]model.Allergy
	exercise  map[int64]model.ExerciseLog
	doseLogs  map[int64]model.DoseLog
}

func NewController(sess *session.Session, client *api.Client, st *store.Store, notifier render.Notifier, logger *zap.Logger, out io.Writer) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		Session:   sess,
		API:       client,
		Store:     st,
		Notifier:  notifier,
		Logger:    logger,
		Out:       out,
		gen:       make(map[View]uint64),
		meds:      make(map[int64]model.Medication),
		allergies: make(map[int64]model.Allergy),
		exercise:  make(map[int64]model.ExerciseLog),
		doseLogs:  make(map[int64]model.DoseLog),
	}
}

// beginFetch switches to a view and bumps its request generation. The
// returned generation must still be current when the response is applied;
// stale responses from superseded navigations are dropped instead of
// overwriting newer state.
func (c *Controller) beginFetch(v View) uint64 {
	c.current = v
	c.gen[v]++
	return c.gen[v]
}

func (c *Controller) stillCurrent(v View, gen uint64) bool {
	if c.gen[v] == gen {
		return true
	}
	c.Logger.Debug("dropping stale response",
		zap.String("view", string(v)),
		zap.Uint64("generation", gen),
		zap.Uint64("current", c.gen[v]))
	return false
}

func (c *Controller) CurrentView() View { return c.current }

// ShowView makes the named view current and runs its associated
// fetches. Entering reports triggers both the compliance and the
// history fetches.
func (c *Controller) ShowView(ctx context.Context, v View) error {
	switch v {
	case ViewDashboard:
		return c.ShowDashboard(ctx)
	case ViewMedications:
		return c.ShowMedications(ctx)
	case ViewNutrition:
		return c.ShowNutrition(ctx)
	case ViewHealthLogs:
		return c.ShowHealthLogs(ctx)
	case ViewReports:
		return c.ShowReports(ctx)
	case ViewSettings:
		return c.ShowSettings(ctx)
	case ViewAdmin:
		return c.ShowAdmin(ctx)
	}
	return &UnknownViewError{Name: string(v)}
}

type UnknownViewError struct{ Name string }

func (e *UnknownViewError) Error() string { return "unknown view " + e.Name }

func (c *Controller) ShowDashboard(ctx context.Context) error {
	gen := c.beginFetch(ViewDashboard)
	date := c.Session.DashboardDate()
	summary, err := c.API.DailySummary(ctx, date)
	if err != nil {
		c.Notifier.Notify("load dashboard", render.Failure(err))
		return err
	}
	if !c.stillCurrent(ViewDashboard, gen) {
		return nil
	}
	tg := targets.Compute(c.Session.User(), time.Now())
	render.DailySummaryView(c.Out, summary, tg)
	return nil
}

func (c *Controller) ShowMedications(ctx context.Context) error {
	gen := c.beginFetch(ViewMedications)
	meds, err := c.API.ListMedications(ctx)
	if err != nil {
		c.Notifier.Notify("load medications", render.Failure(err))
		return err
	}
	if !c.stillCurrent(ViewMedications, gen) {
		return nil
	}
	c.indexMedications(meds)
	render.MedicationCards(c.Out, meds)
	return nil
}

func (c *Controller) ShowNutrition(ctx context.Context) error {
	gen := c.beginFetch(ViewNutrition)
	foods, err := c.API.ListFoods(ctx)
	if err != nil {
		c.Notifier.Notify("load nutrition", render.Failure(err))
		return err
	}
	if !c.stillCurrent(ViewNutrition, gen) {
		return nil
	}
	render.FoodSearchTable(c.Out, foods)
	return nil
}

func (c *Controller) ShowHealthLogs(ctx context.Context) error {
	gen := c.beginFetch(ViewHealthLogs)
	history, err := c.API.BPHistory(ctx)
	if err != nil {
		c.Notifier.Notify("load blood pressure history", render.Failure(err))
		return err
	}
	logs, err := c.API.ListExercise(ctx)
	if err != nil {
		c.Notifier.Notify("load exercise log", render.Failure(err))
		return err
	}
	if !c.stillCurrent(ViewHealthLogs, gen) {
		return nil
	}
	c.indexExercise(logs)
	render.BPHistoryTable(c.Out, history)
	render.ExerciseTable(c.Out, logs)
	return nil
}

// ShowReports runs every fetch the reports view is scoped to: the
// compliance set (adherence, per-medication compliance, vaccinations)
// and the full blood-pressure and exercise histories.
func (c *Controller) ShowReports(ctx context.Context) error {
	gen := c.beginFetch(ViewReports)
	adherence, err := c.API.AdherenceReport(ctx)
	if err != nil {
		c.Notifier.Notify("load adherence report", render.Failure(err))
		return err
	}
	compliance, err := c.API.ComplianceReport(ctx)
	if err != nil {
		c.Notifier.Notify("load compliance report", render.Failure(err))
		return err
	}
	vacs, err := c.API.VaccinationReport(ctx)
	if err != nil {
		c.Notifier.Notify("load vaccination report", render.Failure(err))
		return err
	}
	bpHistory, err := c.API.BPHistory(ctx)
	if err != nil {
		c.Notifier.Notify("load blood pressure history", render.Failure(err))
		return err
	}
	exHistory, err := c.API.ExerciseHistory(ctx)
	if err != nil {
		c.Notifier.Notify("load exercise history", render.Failure(err))
		return err
	}
	if !c.stillCurrent(ViewReports, gen) {
		return nil
	}
	renderReports(c.Out, adherence, compliance, vacs, bpHistory, exHistory)
	return nil
}

func (c *Controller) ShowSettings(ctx context.Context) error {
	gen := c.beginFetch(ViewSettings)
	profile, err := c.API.CurrentUser(ctx)
	if err != nil {
		c.Notifier.Notify("load profile", render.Failure(err))
		return err
	}
	if !c.stillCurrent(ViewSettings, gen) {
		return nil
	}
	c.Session.SetUser(profile)
	render.ProfileView(c.Out, profile, targets.Compute(profile, time.Now()))
	return nil
}

func (c *Controller) ShowAdmin(ctx context.Context) error {
	gen := c.beginFetch(ViewAdmin)
	status, err := c.API.MQTTStatus(ctx)
	if err != nil {
		c.Notifier.Notify("load broker status", render.Failure(err))
		return err
	}
	if !c.stillCurrent(ViewAdmin, gen) {
		return nil
	}
	renderMQTTStatus(c.Out, status)
	return nil
}

func (c *Controller) indexMedications(meds []model.Medication) {
	c.meds = make(map[int64]model.Medication, len(meds))
	for _, m := range meds {
		c.meds[m.MedID] = m
	}
}

func (c *Controller) indexExercise(logs []model.ExerciseLog) {
	c.exercise = make(map[int64]model.ExerciseLog, len(logs))
	for _, e := range logs {
		c.exercise[e.ExerciseID] = e
	}
}

func (c *Controller) indexDoseLogs(logs []model.DoseLog) {
	c.doseLogs = make(map[int64]model.DoseLog, len(logs))
	for _, d := range logs {
		c.doseLogs[d.LogID] = d
	}
}

func (c *Controller) indexAllergies(allergies []model.Allergy) {
	c.allergies = make(map[int64]model.Allergy, len(allergies))
	for _, a := range allergies {
		c.allergies[a.AllergyID] = a
	}
}

// Medication looks a record up in the in-memory index populated by the
// last list fetch.
func (c *Controller) Medication(id int64) (model.Medication, bool) {
	m, ok := c.meds[id]
	return m, ok
}

func (c *Controller) Exercise(id int64) (model.ExerciseLog, bool) {
	e, ok := c.exercise[id]
	return e, ok
}

func (c *Controller) Allergy(id int64) (model.Allergy, bool) {
	a, ok := c.allergies[id]
	return a, ok
}
