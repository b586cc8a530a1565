package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sprillex/hahealth/internal/model"
)

func (c *Client) LogBloodPressure(ctx context.Context, bp model.BloodPressure) (model.BloodPressure, error) {
	var out model.BloodPressure
	if err := c.doJSON(ctx, http.MethodPost, "/log/bp", bp, &out); err != nil {
		return model.BloodPressure{}, err
	}
	return out, nil
}

func (c *Client) BPHistory(ctx context.Context) ([]model.BloodPressure, error) {
	var history []model.BloodPressure
	if err := c.doJSON(ctx, http.MethodGet, "/log/history/bp", nil, &history); err != nil {
		return nil, err
	}
	return history, nil
}

func (c *Client) LogExercise(ctx context.Context, ex model.ExerciseLog) (model.ExerciseLog, error) {
	var out model.ExerciseLog
	if err := c.doJSON(ctx, http.MethodPost, "/log/exercise", ex, &out); err != nil {
		return model.ExerciseLog{}, err
	}
	return out, nil
}

func (c *Client) ListExercise(ctx context.Context) ([]model.ExerciseLog, error) {
	var logs []model.ExerciseLog
	if err := c.doJSON(ctx, http.MethodGet, "/log/exercise", nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (c *Client) UpdateExercise(ctx context.Context, ex model.ExerciseLog) (model.ExerciseLog, error) {
	if ex.ExerciseID == 0 {
		return model.ExerciseLog{}, fmt.Errorf("exercise id is required for update")
	}
	var out model.ExerciseLog
	path := fmt.Sprintf("/log/exercise/%d", ex.ExerciseID)
	if err := c.doJSON(ctx, http.MethodPut, path, ex, &out); err != nil {
		return model.ExerciseLog{}, err
	}
	return out, nil
}

func (c *Client) DeleteExercise(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/log/exercise/%d", id), nil, nil)
}

func (c *Client) ExerciseHistory(ctx context.Context) ([]model.ExerciseLog, error) {
	var logs []model.ExerciseLog
	if err := c.doJSON(ctx, http.MethodGet, "/log/history/exercise", nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// DailySummary fetches the server-computed aggregate for one date
// (YYYY-MM-DD).
func (c *Client) DailySummary(ctx context.Context, date string) (model.DailySummary, error) {
	var out model.DailySummary
	path := "/log/summary?" + url.Values{"date_str": {date}}.Encode()
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return model.DailySummary{}, err
	}
	return out, nil
}

func (c *Client) AdherenceReport(ctx context.Context) (model.AdherenceReport, error) {
	var out model.AdherenceReport
	if err := c.doJSON(ctx, http.MethodGet, "/log/reports/adherence", nil, &out); err != nil {
		return model.AdherenceReport{}, err
	}
	return out, nil
}

func (c *Client) ComplianceReport(ctx context.Context) ([]model.ComplianceRow, error) {
	var out []model.ComplianceRow
	if err := c.doJSON(ctx, http.MethodGet, "/log/reports/compliance", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateFoodLog(ctx context.Context, entry model.FoodLogEntry) (model.FoodLogEntry, error) {
	if entry.EntryID == 0 {
		return model.FoodLogEntry{}, fmt.Errorf("food log id is required for update")
	}
	var out model.FoodLogEntry
	path := fmt.Sprintf("/log/food/%d", entry.EntryID)
	if err := c.doJSON(ctx, http.MethodPut, path, entry, &out); err != nil {
		return model.FoodLogEntry{}, err
	}
	return out, nil
}

func (c *Client) GetFoodLog(ctx context.Context, id int64) (model.FoodLogEntry, error) {
	var out model.FoodLogEntry
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/log/food/%d", id), nil, &out); err != nil {
		return model.FoodLogEntry{}, err
	}
	return out, nil
}

func (c *Client) DeleteFoodLog(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/log/food/%d", id), nil, nil)
}
